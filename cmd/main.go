package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"open-classrooms/cmd/bootstrap"
	_ "open-classrooms/docs"
	"open-classrooms/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// Redis readiness may take REDIS_PING_ATTEMPTS pings before giving up.
const (
	startTimeout = time.Minute
	stopTimeout  = 15 * time.Second
)

func init() {
	// release mode unless GIN_MODE says otherwise, so a missing setting never exposes debug output
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           open-classrooms
// @version         1.0
// @description     Real-time classroom availability

// @BasePath  /
// @schemes http https
func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			listenAddr := ":" + cfg.Server.Port
			logger.Info("Starting server", "address", listenAddr, "mode", gin.Mode())
			go func() {
				if err := engine.Run(listenAddr); err != nil {
					logger.Error("Server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("Stopping server")
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.Provide(
			func() *gin.Engine {
				return gin.New()
			},
		),
		fx.Invoke(
			startServer,
			bootstrap.RegisterWakeRefresh,
		),
		fx.StartTimeout(startTimeout),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("Failed to start application", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		slog.Error("Failed to stop application", "error", err)
	}

	slog.Info("Application stopped")
}
