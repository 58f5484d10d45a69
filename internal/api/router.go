package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/symmetrical-potato/web/internal/api/cookie"
	"github.com/symmetrical-potato/web/internal/api/handler"
	"github.com/symmetrical-potato/web/internal/api/middleware"
	"github.com/symmetrical-potato/web/internal/api/render"
	"github.com/symmetrical-potato/web/internal/api/session"
	"github.com/symmetrical-potato/web/internal/core/domain"
	"github.com/symmetrical-potato/web/internal/core/ports"
	"github.com/symmetrical-potato/web/internal/pkg/config"
)

// RouterConfig wires the router's collaborators.
type RouterConfig struct {
	Config *config.Config
	// NewBackend binds a backend client to a request bearer.
	NewBackend func(bearer string) ports.Backend
	Limiter    ports.LoginLimiter
	Redis      *redis.Client
	Log        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(rc RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = render.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(rc.Log)

	codec := cookie.NewCodec(rc.Config.CookieSecret, rc.Config.IsProduction())
	sessions := session.NewStore(codec)

	// --- Global middleware ---
	// The prometheus middleware registers into its own registry so that
	// constructing multiple routers (tests) never double-registers; the
	// /metrics handler exposes both it and the default registry.
	promRegistry := prometheus.NewRegistry()
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "http",
		Registerer: promRegistry,
	}))
	e.Use(middleware.BuildScope(middleware.ScopeConfig{
		Codec:      codec,
		Sessions:   sessions,
		NewBackend: rc.NewBackend,
		Log:        rc.Log,
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(codec, sessions, rc.Limiter, rc.Log)
	dashboardHandler := handler.NewDashboardHandler(sessions)
	mapHandler := handler.NewMapHandler(sessions)
	preferencesHandler := handler.NewPreferencesHandler(codec, sessions)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(rc.Redis)

	// --- Public routes ---
	e.GET("/login", authHandler.LoginForm)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)
	e.GET("/register", authHandler.RegisterForm)
	e.POST("/register", authHandler.Register)
	e.GET("/forgotten-password", authHandler.ForgottenPasswordForm)
	e.POST("/forgotten-password", authHandler.ForgottenPassword)
	e.POST("/preferences", preferencesHandler.Update)

	// --- Authenticated routes ---
	e.GET("/dashboard", dashboardHandler.Show, middleware.RequireUser())

	mapGroup := e.Group("/map", middleware.RequireUser())
	mapGroup.GET("/:placeId", mapHandler.Place)
	mapGroup.POST("/:placeId/heist/:heistId/join", mapHandler.Join, middleware.RequireRole("/dashboard", domain.RoleHeister))
	mapGroup.POST("/:placeId/heist/:heistId/leave", mapHandler.Leave, middleware.RequireRole("/dashboard", domain.RoleHeister))
	mapGroup.POST("/:placeId/heist/:heistId/delete", mapHandler.Delete, middleware.RequireRole("/dashboard", domain.RoleContractor))

	// --- Admin back-office ---
	admin := e.Group("/admin", middleware.RequireAdmin())

	assets := handler.NewAdminAssetsHandler(sessions)
	admin.GET("/assets", assets.List)
	admin.GET("/assets/:id/edit", assets.EditForm)
	admin.POST("/assets/:id/edit", assets.Edit)
	admin.POST("/assets/:id/delete", assets.Delete)

	establishments := handler.NewAdminEstablishmentsHandler(sessions)
	admin.GET("/establishments", establishments.List)
	admin.GET("/establishments/:id/edit", establishments.EditForm)
	admin.POST("/establishments/:id/edit", establishments.Edit)
	admin.POST("/establishments/:id/delete", establishments.Delete)

	heists := handler.NewAdminHeistsHandler(sessions)
	admin.GET("/heists", heists.List)
	admin.GET("/heists/:id/edit", heists.EditForm)
	admin.POST("/heists/:id/edit", heists.Edit)
	admin.POST("/heists/:id/delete", heists.Delete)

	locations := handler.NewAdminLocationsHandler(sessions)
	admin.GET("/locations", locations.List)
	admin.GET("/locations/:id/edit", locations.EditForm)
	admin.POST("/locations/:id/edit", locations.Edit)
	admin.POST("/locations/:id/delete", locations.Delete)

	users := handler.NewAdminUsersHandler(sessions)
	admin.GET("/users", users.List)
	admin.GET("/users/:id/edit", users.EditForm)
	admin.POST("/users/:id/edit", users.Edit)
	admin.POST("/users/:id/delete", users.Delete)

	contractorRequests := handler.NewAdminContractorRequestsHandler(sessions)
	admin.GET("/contractor_requests", contractorRequests.List)
	admin.GET("/contractor_requests/:id/edit", contractorRequests.EditForm)
	admin.POST("/contractor_requests/:id/edit", contractorRequests.Edit)
	admin.POST("/contractor_requests/:id/delete", contractorRequests.Delete)

	// --- Probes and metrics ---
	e.GET("/api/healthz", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{
			promRegistry,
			prometheus.DefaultGatherer,
		},
	}))

	return e
}
