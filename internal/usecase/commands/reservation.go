package commands

import (
	"context"

	"github.com/google/uuid"

	"raffle-core/internal/domain/reservation"
	reqdto "raffle-core/internal/handler/dto/request"
	"raffle-core/internal/infra"
	"raffle-core/internal/pkg/clock"
	"raffle-core/internal/pkg/errs"
	"raffle-core/internal/usecase/queries"
	"raffle-core/internal/usecase/shared"
)

var (
	ErrRaffleNotFound      = errs.New("raffle not found")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrInsufficientTickets = errs.New("not enough tickets available")
	ErrNotReservationOwner = errs.New("reservation belongs to another buyer")
	ErrDomainValidation    = errs.New("domain validation error")
	ErrDatabaseOperation   = errs.New("database operation failed")
)

type ReservationCommands interface {
	ReserveTickets(ctx context.Context, req reqdto.ReserveTicketsRequest, buyerID uuid.UUID) (*queries.ReservationView, error)
	CancelReservation(ctx context.Context, reservationID, buyerID uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow                shared.UnitOfWork
	reservationFactory *reservation.Factory
	reservationQueries queries.ReservationQueries
	clock              clock.Clock
}

func NewReservationCommands(
	u shared.UnitOfWork,
	factory *reservation.Factory,
	reservationQueries queries.ReservationQueries,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:                u,
		reservationFactory: factory,
		reservationQueries: reservationQueries,
		clock:              clk,
	}
}

// ReserveTickets takes a time-boxed hold on quantity tickets. The raffle row
// is locked for the whole transaction so the per-buyer count, the domain
// checks, and the counter decrement see one consistent state; the guarded
// decrement is what makes the last ticket go to exactly one buyer.
func (c *reservationCommandsImpl) ReserveTickets(
	ctx context.Context,
	req reqdto.ReserveTicketsRequest,
	buyerID uuid.UUID,
) (*queries.ReservationView, error) {
	var reservationID uuid.UUID

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		raf, err := tx.Raffles().FindByIDForUpdate(ctx, req.RaffleID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRaffleNotFound
			}
			return errs.Mark(err, ErrDatabaseOperation)
		}

		held, err := tx.Reads().HeldQuantity(ctx, req.RaffleID, buyerID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}

		res, err := c.reservationFactory.CreateReservation(raf, buyerID, req.Quantity, held)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := tx.Raffles().HoldTickets(ctx, req.RaffleID, req.Quantity); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrInsufficientTickets
			}
			return errs.Mark(err, ErrDatabaseOperation)
		}

		reservationID, err = tx.Reservations().Create(ctx, res)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.reservationQueries.GetByIDSystem(ctx, reservationID)
}

// CancelReservation releases an active hold and returns its tickets to the
// pool. Cancelling an already-resolved hold is a no-op, so retried cancels
// never double-release tickets.
func (c *reservationCommandsImpl) CancelReservation(ctx context.Context, reservationID, buyerID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByIDForUpdate(ctx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperation)
		}

		if res.BuyerID() != buyerID {
			return ErrNotReservationOwner
		}
		if res.Status().IsResolved() {
			return nil
		}

		now := c.clock.Now()
		// An expired-but-unswept hold resolves as expired, not cancelled.
		status := reservation.StatusCancelled
		if res.HasExpired(now) {
			status = reservation.StatusExpired
		}

		if err := tx.Reservations().Resolve(ctx, reservationID, status, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		if err := tx.Raffles().ReleaseTickets(ctx, res.RaffleID(), res.Quantity()); err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		return nil
	})
}
