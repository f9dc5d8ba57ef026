package components

import (
	"hass-backend/internal/pkg/clock"
	"hass-backend/internal/usecase/commands"
	"hass-backend/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthUseCase,
		commands.NewSubscriptionUseCase,
		commands.NewRequestUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSubscriptionQueries,
		queries.NewRequestQueries,
		queries.NewCatalogQueries,
		queries.NewCustomerQueries,
	),
)
