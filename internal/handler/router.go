package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hass-backend/internal/domain/principal"
	"hass-backend/internal/handler/api"
	"hass-backend/internal/handler/middleware"
	"hass-backend/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	catalogHandler *api.CatalogHandler,
	subscriptionHandler *api.SubscriptionHandler,
	customerHandler *api.CustomerHandler,
	workerHandler *api.WorkerHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, catalogHandler, subscriptionHandler, customerHandler, workerHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	catalogHandler *api.CatalogHandler,
	subscriptionHandler *api.SubscriptionHandler,
	customerHandler *api.CustomerHandler,
	workerHandler *api.WorkerHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/:role/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/customer/signup", Handler: authHandler.SignupCustomer},
				{Method: http.MethodGet, Path: "/customer/signup/check", Handler: authHandler.CheckLoginID},
			})
		}

		catalog := apiGroup.Group("/catalog")
		{
			addRoutes(catalog, []route{
				{Method: http.MethodGet, Path: "/models", Handler: catalogHandler.ListModels},
				{Method: http.MethodGet, Path: "/stock", Handler: catalogHandler.StockSummary},
			})
		}

		subscriptions := apiGroup.Group("/subscriptions")
		subscriptions.Use(authMiddleware.RequireAuth())
		{
			addRoutes(subscriptions, []route{
				{
					Method: http.MethodPost, Path: "", Handler: subscriptionHandler.Subscribe,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(principal.RoleCustomer)},
				},
				{
					Method: http.MethodPost, Path: "/:id/extend", Handler: subscriptionHandler.Extend,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(principal.RoleCustomer, principal.RoleCompany)},
				},
				{
					Method: http.MethodPost, Path: "/:id/return", Handler: subscriptionHandler.CreateReturn,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(principal.RoleCustomer, principal.RoleCompany)},
				},
				{
					Method: http.MethodGet, Path: "", Handler: subscriptionHandler.ListActive,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(principal.RoleCompany)},
				},
				{
					Method: http.MethodGet, Path: "/expiring", Handler: subscriptionHandler.ListExpiring,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(principal.RoleCompany)},
				},
			})
		}

		customers := apiGroup.Group("/customers")
		customers.Use(authMiddleware.RequireAuth())
		{
			addRoutes(customers, []route{
				{
					Method: http.MethodGet, Path: "", Handler: customerHandler.ListCustomers,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(principal.RoleCompany)},
				},
				{
					Method: http.MethodGet, Path: "/me/subscriptions", Handler: customerHandler.MySubscriptions,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(principal.RoleCustomer)},
				},
				{
					Method: http.MethodGet, Path: "/me/requests", Handler: customerHandler.MyRequests,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(principal.RoleCustomer)},
				},
			})
		}

		requests := apiGroup.Group("/requests")
		requests.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(principal.RoleCustomer))
		{
			addRoutes(requests, []route{
				{Method: http.MethodPost, Path: "/repair", Handler: customerHandler.CreateRepair},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: customerHandler.CancelRequest},
			})
		}

		worker := apiGroup.Group("/worker")
		worker.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(principal.RoleWorker, principal.RoleCompany))
		{
			addRoutes(worker, []route{
				{Method: http.MethodGet, Path: "/requests", Handler: workerHandler.ListRequests},
				{Method: http.MethodGet, Path: "/requests/:id", Handler: workerHandler.GetRequest},
				{Method: http.MethodGet, Path: "/requests/:id/preferences", Handler: workerHandler.ListPreferenceDates},
				{Method: http.MethodGet, Path: "/requests/:id/visit", Handler: workerHandler.GetVisit},
				{Method: http.MethodGet, Path: "/requests/:id/qualified-workers", Handler: workerHandler.QualifiedWorkers},
				// the principal becomes the visit's worker, so these stay
				// closed to the company role
				{
					Method: http.MethodPost, Path: "/requests/:id/accept", Handler: workerHandler.AcceptRequest,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(principal.RoleWorker)},
				},
				{
					Method: http.MethodPost, Path: "/requests/:id/complete", Handler: workerHandler.CompleteVisit,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(principal.RoleWorker)},
				},
				{Method: http.MethodGet, Path: "/summary/stock", Handler: workerHandler.StockSummary},
				{Method: http.MethodGet, Path: "/summary/requests", Handler: workerHandler.RequestCounts},
				{Method: http.MethodGet, Path: "/products", Handler: workerHandler.ListProducts},
				{Method: http.MethodGet, Path: "/products/:serial", Handler: workerHandler.GetProduct},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		}
	}
}

func chainHandlers(handlers ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range handlers {
			if c.IsAborted() {
				return
			}
			h(c)
		}
	}
}
