package bootstrap

import (
	"context"

	"hutbook/internal/pkg/config"
	"hutbook/internal/scheduler"
	"hutbook/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewSweeper,
	),
	fx.Invoke(registerSweeper),
)

func NewSweeper(sweepUseCase commands.SweepUseCase, cfg config.Config) *scheduler.Sweeper {
	return scheduler.NewSweeper(sweepUseCase, cfg.Booking)
}

func registerSweeper(lc fx.Lifecycle, sweeper *scheduler.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return sweeper.Start()
		},
		OnStop: func(_ context.Context) error {
			sweeper.Stop()
			return nil
		},
	})
}
