package commands

import (
	"context"
	"log/slog"

	"raffle-core/internal/pkg/clock"
	"raffle-core/internal/pkg/errs"
	"raffle-core/internal/usecase/shared"
)

// SweepCommands are the scheduled maintenance passes: releasing expired
// holds, moving raffles along their time window, and forfeiting prizes whose
// claim window lapsed. Each pass is safe to run concurrently with user
// traffic and with other sweepers.
type SweepCommands interface {
	ExpireReservations(ctx context.Context, batchSize int32) (int, error)
	TransitionRaffleWindows(ctx context.Context) (int64, error)
	ExpireClaimWindows(ctx context.Context, batchSize int32) (int, error)
}

type sweepCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSweepCommands(u shared.UnitOfWork, clk clock.Clock) SweepCommands {
	return &sweepCommandsImpl{uow: u, clock: clk}
}

// ExpireReservations claims a batch of lapsed holds and returns their tickets
// to the pool. Row claiming skips locked rows, so overlapping sweep runs
// never double-release a hold.
func (c *sweepCommandsImpl) ExpireReservations(ctx context.Context, batchSize int32) (int, error) {
	released := 0

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		holds, err := tx.Reservations().ClaimExpiredBatch(ctx, c.clock.Now(), batchSize)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}

		for _, hold := range holds {
			if err := tx.Raffles().ReleaseTickets(ctx, hold.RaffleID, hold.Quantity); err != nil {
				return errs.Mark(err, ErrDatabaseOperation)
			}
		}
		released = len(holds)
		return nil
	})
	if err != nil {
		return 0, err
	}

	if released > 0 {
		slog.Info("expired reservations released", "count", released)
	}
	return released, nil
}

// TransitionRaffleWindows ends raffles past their window and opens
// coming_soon raffles whose window has started.
func (c *sweepCommandsImpl) TransitionRaffleWindows(ctx context.Context) (int64, error) {
	var moved int64

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()

		ended, err := tx.Raffles().EndOverdue(ctx, now)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		activated, err := tx.Raffles().ActivateDue(ctx, now)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}

		moved = ended + activated
		if moved > 0 {
			slog.Info("raffle windows transitioned", "ended", ended, "activated", activated)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return moved, nil
}

// ExpireClaimWindows forfeits discovered prizes whose claim deadline passed:
// the instance is retired for good and the ticket loses its prize link.
func (c *sweepCommandsImpl) ExpireClaimWindows(ctx context.Context, batchSize int32) (int, error) {
	forfeited := 0

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		overdue, err := tx.Prizes().ExpireOverdueDiscoveries(ctx, c.clock.Now(), batchSize)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}

		for _, d := range overdue {
			if err := tx.Tickets().ForfeitPrize(ctx, d.TicketID); err != nil {
				return errs.Mark(err, ErrDatabaseOperation)
			}
		}
		forfeited = len(overdue)
		return nil
	})
	if err != nil {
		return 0, err
	}

	if forfeited > 0 {
		slog.Info("claim windows expired", "count", forfeited)
	}
	return forfeited, nil
}
