package components

import (
	"hass-backend/internal/handler"
	"hass-backend/internal/handler/api"
	"hass-backend/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewSubscriptionHandler,
		api.NewCustomerHandler,
		api.NewWorkerHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
