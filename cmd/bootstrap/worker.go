package bootstrap

import (
	"context"

	"raffle-core/internal/pkg/config"
	"raffle-core/internal/usecase/commands"
	"raffle-core/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewSweeper,
	),
	fx.Invoke(StartSweeper),
)

func NewSweeper(
	sweeps commands.SweepCommands,
	fulfillment commands.FulfillmentCommands,
	cfg config.Config,
) *worker.Sweeper {
	return worker.NewSweeper(sweeps, fulfillment, cfg.Reservation)
}

func StartSweeper(lc fx.Lifecycle, sweeper *worker.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sweeper.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			select {
			case <-sweeper.Stop().Done():
			case <-ctx.Done():
			}
			return nil
		},
	})
}
