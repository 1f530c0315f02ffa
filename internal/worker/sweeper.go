package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"raffle-core/internal/pkg/config"
	"raffle-core/internal/usecase/commands"
)

const jobTimeout = 30 * time.Second

// Sweeper runs the background maintenance passes on a fixed interval:
// releasing expired holds, transitioning raffle windows, forfeiting lapsed
// claim windows, and draining the fulfillment queue. Every pass uses
// SKIP LOCKED batches, so multiple instances can run the same schedule
// without stepping on each other.
type Sweeper struct {
	cron        *cron.Cron
	sweeps      commands.SweepCommands
	fulfillment commands.FulfillmentCommands
	cfg         config.ReservationConfig
}

func NewSweeper(
	sweeps commands.SweepCommands,
	fulfillment commands.FulfillmentCommands,
	cfg config.ReservationConfig,
) *Sweeper {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(slog.Default().Handler(), slog.LevelInfo))
	return &Sweeper{
		cron:        cron.New(cron.WithChain(cron.Recover(cronLogger))),
		sweeps:      sweeps,
		fulfillment: fulfillment,
		cfg:         cfg,
	}
}

func (s *Sweeper) Start() {
	every := cron.Every(s.cfg.SweepEvery)
	batch := int32(s.cfg.SweepBatch)

	s.cron.Schedule(every, cron.FuncJob(func() {
		s.run("reservation expiry", func(ctx context.Context) error {
			_, err := s.sweeps.ExpireReservations(ctx, batch)
			return err
		})
	}))

	s.cron.Schedule(every, cron.FuncJob(func() {
		s.run("raffle window transition", func(ctx context.Context) error {
			_, err := s.sweeps.TransitionRaffleWindows(ctx)
			return err
		})
	}))

	s.cron.Schedule(every, cron.FuncJob(func() {
		s.run("claim window expiry", func(ctx context.Context) error {
			_, err := s.sweeps.ExpireClaimWindows(ctx, batch)
			return err
		})
	}))

	s.cron.Schedule(every, cron.FuncJob(func() {
		s.run("fulfillment batch", func(ctx context.Context) error {
			_, err := s.fulfillment.ProcessBatch(ctx, batch)
			return err
		})
	}))

	s.cron.Start()
	slog.Info("background sweeper started", "interval", s.cfg.SweepEvery)
}

// Stop stops scheduling new runs and returns a context that is done once
// in-flight jobs finish.
func (s *Sweeper) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Sweeper) run(name string, fn func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if err := fn(ctx); err != nil {
		slog.Error("sweep pass failed", "pass", name, "error", err)
	}
}
