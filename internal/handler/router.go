package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"open-classrooms/internal/handler/api"
	"open-classrooms/internal/handler/middleware"
	"open-classrooms/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, healthHandler *api.HealthHandler, refreshHandler *api.RefreshHandler, availabilityHandler *api.AvailabilityHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, healthHandler, refreshHandler, availabilityHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, healthHandler *api.HealthHandler, refreshHandler *api.RefreshHandler, availabilityHandler *api.AvailabilityHandler) {
	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodGet, Path: "/", Handler: healthHandler.Root},
		{Method: http.MethodGet, Path: "/health", Handler: healthHandler.Health},
	})

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/refresh", Handler: refreshHandler.Refresh},
			{Method: http.MethodGet, Path: "/last-updated", Handler: availabilityHandler.GetLastUpdated},
			{Method: http.MethodGet, Path: "/cooldown-status", Handler: availabilityHandler.GetCooldownStatus},
			{Method: http.MethodGet, Path: "/open-classrooms", Handler: availabilityHandler.GetOpenClassrooms},
		})
	}
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
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
