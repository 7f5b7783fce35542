package bootstrap

import (
	"context"
	"log/slog"

	"open-classrooms/internal/usecase/commands"

	"go.uber.org/fx"
)

// RegisterWakeRefresh catches up on a day that started while the process was not running. It runs
// in the background so the server starts answering right away; reads that arrive meanwhile join
// the same refresh. Stopping the app cancels it and waits for it to return, bounded by the stop
// timeout.
func RegisterWakeRefresh(lc fx.Lifecycle, cmds commands.RefreshCommands, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				refreshed, err := cmds.RefreshOnWake(ctx)
				switch {
				case err != nil && ctx.Err() != nil:
					logger.Warn("Wake-up refresh interrupted by shutdown", "error", err)
				case err != nil:
					logger.Error("Wake-up refresh failed", "error", err)
				case refreshed:
					logger.Info("Wake-up refresh completed")
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
