package commands

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"raffle-core/internal/domain/buyer"
	"raffle-core/internal/domain/payment"
	"raffle-core/internal/domain/reservation"
	"raffle-core/internal/domain/ticket"
	reqdto "raffle-core/internal/handler/dto/request"
	"raffle-core/internal/infra"
	"raffle-core/internal/pkg/clock"
	"raffle-core/internal/pkg/errs"
	"raffle-core/internal/usecase/queries"
	"raffle-core/internal/usecase/shared"
)

var (
	ErrIntentNotFound     = errs.New("payment intent not found")
	ErrInsufficientCredit = errs.New("insufficient credit balance")
)

const creditKindPurchase = "purchase"

// ConfirmIntentResult carries the minted tickets; IsReplayed marks a repeat
// confirmation of an already-settled intent, which returns the original
// tickets instead of failing.
type ConfirmIntentResult struct {
	Intent     *queries.IntentView       `json:"intent"`
	Tickets    []*queries.TicketListItem `json:"tickets"`
	IsReplayed bool                      `json:"is_replayed"`
}

type PaymentCommands interface {
	CreateIntent(ctx context.Context, req reqdto.CreateIntentRequest, buyerID uuid.UUID) (*queries.IntentView, error)
	ConfirmIntent(ctx context.Context, intentID uuid.UUID, req reqdto.ConfirmIntentRequest, buyerID uuid.UUID) (*ConfirmIntentResult, error)
}

type paymentCommandsImpl struct {
	uow   shared.UnitOfWork
	cache queries.CatalogCache
	clock clock.Clock
}

func NewPaymentCommands(u shared.UnitOfWork, cache queries.CatalogCache, clk clock.Clock) PaymentCommands {
	return &paymentCommandsImpl{uow: u, cache: cache, clock: clk}
}

// CreateIntent opens a payment for an active hold. A pending intent already
// open for the same reservation is returned as-is so retries never produce
// two charges.
func (c *paymentCommandsImpl) CreateIntent(
	ctx context.Context,
	req reqdto.CreateIntentRequest,
	buyerID uuid.UUID,
) (*queries.IntentView, error) {
	var view *queries.IntentView

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByIDForUpdate(ctx, req.ReservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperation)
		}
		if res.BuyerID() != buyerID {
			return ErrNotReservationOwner
		}

		now := c.clock.Now()
		if err := res.CanConfirm(now); err != nil {
			return err
		}

		// Only a pending intent is reused; a failed one never blocks the
		// buyer from opening a fresh one on the same hold.
		existing, err := tx.Payments().FindByReservationID(ctx, req.ReservationID)
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		if existing != nil {
			view = intentView(existing)
			return nil
		}

		intent := payment.NewIntent(res.ID(), res.AmountCents(), now)
		if _, err := tx.Payments().CreateIntent(ctx, intent); err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		view = intentView(intent)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// ConfirmIntent settles the payment and, on success, mints the reservation's
// tickets in status sold. Confirming an already-confirmed intent replays the
// original result; everything else happens exactly once inside one
// transaction, keyed by the row locks on the intent and its reservation.
func (c *paymentCommandsImpl) ConfirmIntent(
	ctx context.Context,
	intentID uuid.UUID,
	req reqdto.ConfirmIntentRequest,
	buyerID uuid.UUID,
) (*ConfirmIntentResult, error) {
	var (
		result   *ConfirmIntentResult
		raffleID uuid.UUID
		soldOut  bool
	)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		intent, err := tx.Payments().FindByIDForUpdate(ctx, intentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrIntentNotFound
			}
			return errs.Mark(err, ErrDatabaseOperation)
		}

		res, err := tx.Reservations().FindByIDForUpdate(ctx, intent.ReservationID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		if res.BuyerID() != buyerID {
			return ErrNotReservationOwner
		}

		if intent.Status() == payment.StatusConfirmed {
			result, err = c.replayResult(ctx, tx, intent)
			return err
		}
		if err := intent.EnsurePending(); err != nil {
			return err
		}

		now := c.clock.Now()
		if err := res.CanConfirm(now); err != nil {
			// A dead hold fails the intent and releases the tickets right
			// here instead of waiting for the sweeper.
			if errors.Is(err, reservation.ErrReservationExpired) {
				if failErr := c.failAndRelease(ctx, tx, intent, res, "reservation expired"); failErr != nil {
					return failErr
				}
			}
			return err
		}

		if !req.Succeeded() {
			reason := "payment declined"
			if req.FailureReason != nil {
				reason = *req.FailureReason
			}
			// Only the intent fails. The hold stays alive until its TTL or
			// an explicit cancel, so the buyer can retry with another
			// payment method.
			if err := tx.Payments().MarkFailed(ctx, intent.ID(), reason); err != nil {
				return errs.Mark(err, ErrDatabaseOperation)
			}
			return payment.ErrPaymentFailed
		}

		if req.Outcome != nil && *req.Outcome == reqdto.OutcomeCredit {
			if err := c.debitCredit(ctx, tx, buyerID, intent, now); err != nil {
				return err
			}
		}

		if err := tx.Payments().MarkConfirmed(ctx, intentID, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		if err := tx.Reservations().Resolve(ctx, res.ID(), reservation.StatusConfirmed, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}

		tickets, err := c.mintTickets(ctx, tx, res, now)
		if err != nil {
			return err
		}

		raffleID = res.RaffleID()
		soldOut, err = tx.Raffles().MarkSoldOutIfDepleted(ctx, raffleID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}

		if err := c.enqueueReceipt(ctx, tx, intent, res, now); err != nil {
			return err
		}

		result = &ConfirmIntentResult{
			Intent:  confirmedView(intent, now),
			Tickets: ticketListItems(tickets),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if soldOut {
		c.cache.Invalidate(ctx, raffleID)
	}
	return result, nil
}

func (c *paymentCommandsImpl) replayResult(
	ctx context.Context,
	tx shared.Tx,
	intent *payment.Intent,
) (*ConfirmIntentResult, error) {
	snapshots, err := tx.Reads().TicketsByReservationID(ctx, intent.ReservationID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}

	items := make([]*queries.TicketListItem, 0, len(snapshots))
	for _, s := range snapshots {
		items = append(items, &queries.TicketListItem{
			ID:            s.ID,
			RaffleID:      s.RaffleID,
			DisplayNumber: displayNumber(s.RaffleID, s.Number),
			Status:        s.Status,
			InstantWin:    s.InstantWin,
			PurchasedAt:   s.PurchasedAt,
		})
	}

	return &ConfirmIntentResult{
		Intent:     intentView(intent),
		Tickets:    items,
		IsReplayed: true,
	}, nil
}

func (c *paymentCommandsImpl) failAndRelease(
	ctx context.Context,
	tx shared.Tx,
	intent *payment.Intent,
	res *reservation.Reservation,
	reason string,
) error {
	now := c.clock.Now()
	if err := tx.Payments().MarkFailed(ctx, intent.ID(), reason); err != nil {
		return errs.Mark(err, ErrDatabaseOperation)
	}

	status := reservation.StatusCancelled
	if res.HasExpired(now) {
		status = reservation.StatusExpired
	}
	if err := tx.Reservations().Resolve(ctx, res.ID(), status, now); err != nil {
		return errs.Mark(err, ErrDatabaseOperation)
	}
	if err := tx.Raffles().ReleaseTickets(ctx, res.RaffleID(), res.Quantity()); err != nil {
		return errs.Mark(err, ErrDatabaseOperation)
	}
	return nil
}

func (c *paymentCommandsImpl) debitCredit(
	ctx context.Context,
	tx shared.Tx,
	buyerID uuid.UUID,
	intent *payment.Intent,
	now time.Time,
) error {
	if err := tx.Credits().Debit(ctx, buyerID, intent.AmountCents()); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return errs.Mark(buyer.ErrInsufficientCredit, ErrInsufficientCredit)
		}
		return errs.Mark(err, ErrDatabaseOperation)
	}
	entry := &shared.CreditEntry{
		BuyerID:     buyerID,
		AmountCents: -intent.AmountCents(),
		Kind:        creditKindPurchase,
		ReferenceID: intent.ID(),
		CreatedAt:   now,
	}
	if err := tx.Credits().RecordTransaction(ctx, entry); err != nil {
		return errs.Mark(err, ErrDatabaseOperation)
	}
	return nil
}

func (c *paymentCommandsImpl) mintTickets(
	ctx context.Context,
	tx shared.Tx,
	res *reservation.Reservation,
	now time.Time,
) ([]*ticket.Ticket, error) {
	start, err := tx.Raffles().NextTicketNumbers(ctx, res.RaffleID(), res.Quantity())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}

	tickets := make([]*ticket.Ticket, 0, res.Quantity())
	for i := int32(0); i < res.Quantity(); i++ {
		tk, err := ticket.MintSold(res.RaffleID(), res.BuyerID(), start+i, now)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
		tickets = append(tickets, tk)
	}

	if err := tx.Tickets().MintBatch(ctx, res.ID(), tickets); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	return tickets, nil
}

func (c *paymentCommandsImpl) enqueueReceipt(
	ctx context.Context,
	tx shared.Tx,
	intent *payment.Intent,
	res *reservation.Reservation,
	now time.Time,
) error {
	payload, err := json.Marshal(map[string]any{
		"intent_id":      intent.ID(),
		"reservation_id": res.ID(),
		"amount_cents":   intent.AmountCents(),
	})
	if err != nil {
		return errs.Wrap(err, "failed to marshal receipt payload")
	}
	if err := tx.Fulfillments().Enqueue(ctx, "receipt_email", payload, now); err != nil {
		return errs.Mark(err, ErrDatabaseOperation)
	}
	return nil
}

func intentView(intent *payment.Intent) *queries.IntentView {
	return &queries.IntentView{
		ID:            intent.ID(),
		ReservationID: intent.ReservationID(),
		AmountCents:   intent.AmountCents(),
		Status:        intent.Status().String(),
		FailureReason: intent.FailureReason(),
		CreatedAt:     intent.CreatedAt(),
		ConfirmedAt:   intent.ConfirmedAt(),
	}
}

func confirmedView(intent *payment.Intent, confirmedAt time.Time) *queries.IntentView {
	view := intentView(intent)
	view.Status = payment.StatusConfirmed.String()
	view.ConfirmedAt = &confirmedAt
	return view
}

func ticketListItems(tickets []*ticket.Ticket) []*queries.TicketListItem {
	items := make([]*queries.TicketListItem, 0, len(tickets))
	for _, tk := range tickets {
		items = append(items, &queries.TicketListItem{
			ID:            tk.ID(),
			RaffleID:      tk.RaffleID(),
			DisplayNumber: tk.DisplayNumber(),
			Status:        tk.Status().String(),
			InstantWin:    tk.InstantWin(),
			PurchasedAt:   tk.PurchasedAt(),
		})
	}
	return items
}

func displayNumber(raffleID uuid.UUID, number int32) string {
	return ticket.FormatDisplayNumber(raffleID, number)
}
