package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"raffle-core/internal/domain/raffle"
	reqdto "raffle-core/internal/handler/dto/request"
	"raffle-core/internal/infra"
	"raffle-core/internal/pkg/clock"
	"raffle-core/internal/pkg/errs"
	"raffle-core/internal/usecase/queries"
	"raffle-core/internal/usecase/shared"
)

const fulfillmentKindRefund = "refund_batch"

type RaffleAdminCommands interface {
	CreateRaffle(ctx context.Context, req reqdto.CreateRaffleRequest) (*queries.RaffleView, error)
	ChangeStatus(ctx context.Context, raffleID uuid.UUID, req reqdto.ChangeRaffleStatusRequest) (*queries.RaffleView, error)
}

type raffleAdminCommandsImpl struct {
	uow   shared.UnitOfWork
	cache queries.CatalogCache
	clock clock.Clock
}

func NewRaffleAdminCommands(u shared.UnitOfWork, cache queries.CatalogCache, clk clock.Clock) RaffleAdminCommands {
	return &raffleAdminCommandsImpl{uow: u, cache: cache, clock: clk}
}

func (c *raffleAdminCommandsImpl) CreateRaffle(
	ctx context.Context,
	req reqdto.CreateRaffleRequest,
) (*queries.RaffleView, error) {
	raf, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Raffles().Create(ctx, raf); err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return raffleView(raf), nil
}

// ChangeStatus drives the operator side of the raffle lifecycle. Cancelling
// voids all outstanding tickets, kills live holds, and queues the refund
// batch; the monotonic transition rules live in the domain entity.
func (c *raffleAdminCommandsImpl) ChangeStatus(
	ctx context.Context,
	raffleID uuid.UUID,
	req reqdto.ChangeRaffleStatusRequest,
) (*queries.RaffleView, error) {
	next, err := raffle.NewStatus(req.Status)
	if err != nil {
		return nil, err
	}

	var view *queries.RaffleView

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		raf, err := tx.Raffles().FindByIDForUpdate(ctx, raffleID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRaffleNotFound
			}
			return errs.Mark(err, ErrDatabaseOperation)
		}

		now := c.clock.Now()
		if err := raf.ValidateTransition(next, now); err != nil {
			return err
		}
		if err := tx.Raffles().UpdateStatus(ctx, raffleID, next); err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}

		if next == raffle.StatusCancelled {
			if err := c.cancelSideEffects(ctx, tx, raffleID); err != nil {
				return err
			}
		}

		view = raffleView(raf)
		view.Status = next.String()
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.cache.Invalidate(ctx, raffleID)
	return view, nil
}

func (c *raffleAdminCommandsImpl) cancelSideEffects(ctx context.Context, tx shared.Tx, raffleID uuid.UUID) error {
	now := c.clock.Now()

	voided, err := tx.Tickets().VoidUnresolvedByRaffle(ctx, raffleID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperation)
	}
	cancelled, err := tx.Reservations().CancelActiveByRaffle(ctx, raffleID, now)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperation)
	}

	slog.Info("raffle cancelled",
		"raffle_id", raffleID,
		"voided_tickets", voided,
		"cancelled_holds", cancelled)

	if voided == 0 {
		return nil
	}

	payload, err := json.Marshal(map[string]any{
		"raffle_id":      raffleID,
		"voided_tickets": voided,
	})
	if err != nil {
		return errs.Wrap(err, "failed to marshal refund payload")
	}
	if err := tx.Fulfillments().Enqueue(ctx, fulfillmentKindRefund, payload, now); err != nil {
		return errs.Mark(err, ErrDatabaseOperation)
	}
	return nil
}

func raffleView(raf *raffle.Raffle) *queries.RaffleView {
	return &queries.RaffleView{
		ID:               raf.ID(),
		Title:            raf.Title(),
		TicketPriceCents: raf.TicketPriceCents(),
		TotalTickets:     raf.TotalTickets(),
		AvailableTickets: raf.AvailableTickets(),
		MaxPerBuyer:      raf.MaxPerBuyer(),
		StartsAt:         raf.StartsAt(),
		EndsAt:           raf.EndsAt(),
		Status:           raf.Status().String(),
		PoolID:           raf.PoolID(),
		CreatedAt:        raf.CreatedAt(),
		UpdatedAt:        raf.UpdatedAt(),
	}
}
