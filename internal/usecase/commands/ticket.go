package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"raffle-core/internal/domain/prize"
	"raffle-core/internal/domain/ticket"
	reqdto "raffle-core/internal/handler/dto/request"
	"raffle-core/internal/infra"
	"raffle-core/internal/pkg/clock"
	"raffle-core/internal/pkg/draw"
	"raffle-core/internal/pkg/errs"
	"raffle-core/internal/usecase/shared"
)

var (
	ErrTicketNotFound  = errs.New("ticket not found")
	ErrPoolNotAssigned = errs.New("raffle has no prize pool assigned")
)

const (
	creditKindPrize = "prize_credit"

	fulfillmentKindPrize = "prize_fulfillment"
)

// RevealResult is the outcome of the one-time odds draw on a ticket.
type RevealResult struct {
	TicketID      uuid.UUID  `json:"ticket_id"`
	DisplayNumber string     `json:"display_number"`
	InstantWin    bool       `json:"instant_win"`
	PrizeName     *string    `json:"prize_name,omitempty"`
	InstanceRef   *string    `json:"instance_ref,omitempty"`
	ClaimDeadline *time.Time `json:"claim_deadline,omitempty"`
	AutoClaimed   bool       `json:"auto_claimed"`
	RevealedAt    time.Time  `json:"revealed_at"`
}

type ClaimResult struct {
	TicketID    uuid.UUID `json:"ticket_id"`
	InstanceRef string    `json:"instance_ref"`
	PrizeName   string    `json:"prize_name"`
	ValueType   string    `json:"value_type"`
	ValueCents  int64     `json:"value_cents"`
	ClaimedAt   time.Time `json:"claimed_at"`
}

type TicketCommands interface {
	Reveal(ctx context.Context, ticketID, buyerID uuid.UUID) (*RevealResult, error)
	Claim(ctx context.Context, ticketID uuid.UUID, req reqdto.ClaimPrizeRequest, buyerID uuid.UUID) (*ClaimResult, error)
}

type ticketCommandsImpl struct {
	uow    shared.UnitOfWork
	source draw.Source
	clock  clock.Clock
}

func NewTicketCommands(u shared.UnitOfWork, source draw.Source, clk clock.Clock) TicketCommands {
	return &ticketCommandsImpl{uow: u, source: source, clock: clk}
}

// Reveal runs the single odds draw for a sold ticket. The ticket row lock
// plus the sold→revealed guard make the draw exactly-once; the seed and roll
// are recorded so any outcome can be audited later.
func (c *ticketCommandsImpl) Reveal(ctx context.Context, ticketID, buyerID uuid.UUID) (*RevealResult, error) {
	var result *RevealResult

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		tk, err := tx.Tickets().FindByIDForUpdate(ctx, ticketID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrTicketNotFound
			}
			return errs.Mark(err, ErrDatabaseOperation)
		}
		if err := tk.CanReveal(buyerID); err != nil {
			return err
		}

		raf, err := tx.Reads().RaffleByID(ctx, tk.RaffleID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		if raf.PoolID == nil {
			return ErrPoolNotAssigned
		}

		entries, err := tx.Prizes().AvailableInstantWins(ctx, *raf.PoolID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}

		seed, err := c.source.Seed()
		if err != nil {
			return err
		}
		roll := draw.Roll(seed)

		weighted := make([]draw.Weighted, 0, len(entries))
		byID := make(map[uuid.UUID]*shared.InstanceWeight, len(entries))
		for _, e := range entries {
			weighted = append(weighted, draw.Weighted{ID: e.InstanceID, Odds: e.Odds})
			byID[e.InstanceID] = e
		}

		now := c.clock.Now()
		wonID, won := draw.Pick(roll, weighted)

		if won {
			result, err = c.settleWin(ctx, tx, tk, byID[wonID], now)
			if err != nil {
				return err
			}
			// settleWin downgrades to a loss when the instance was taken by
			// a concurrent reveal.
			won = result.InstantWin
		}
		if !won {
			if err := tx.Tickets().MarkRevealed(ctx, ticketID, false, nil, now); err != nil {
				return revealedConflict(err)
			}
			result = &RevealResult{
				TicketID:      ticketID,
				DisplayNumber: tk.DisplayNumber(),
				RevealedAt:    now,
			}
		}

		audit := &shared.DrawAudit{
			TicketID:  ticketID,
			RaffleID:  tk.RaffleID(),
			PoolID:    *raf.PoolID,
			Seed:      seed,
			Roll:      roll,
			CreatedAt: now,
		}
		if result.InstantWin {
			audit.WonInstanceID = &wonID
		}
		if err := tx.DrawAudits().Record(ctx, audit); err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *ticketCommandsImpl) settleWin(
	ctx context.Context,
	tx shared.Tx,
	tk *ticket.Ticket,
	won *shared.InstanceWeight,
	now time.Time,
) (*RevealResult, error) {
	tpl, err := tx.Prizes().FindTemplateByID(ctx, won.TemplateID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}

	deadline := tpl.ClaimDeadlineFrom(now)
	if err := tx.Prizes().MarkDiscovered(ctx, won.InstanceID, tk.ID(), deadline, now); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			// A concurrent reveal claimed this instance between the listing
			// and the guarded update. The prize is conserved; this ticket
			// simply loses.
			slog.Info("prize instance lost to concurrent reveal",
				"ticket_id", tk.ID(),
				"instance_id", won.InstanceID)
			return &RevealResult{
				TicketID:      tk.ID(),
				DisplayNumber: tk.DisplayNumber(),
			}, nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}

	instanceID := won.InstanceID
	if err := tx.Tickets().MarkRevealed(ctx, tk.ID(), true, &instanceID, now); err != nil {
		return nil, revealedConflict(err)
	}

	name := tpl.Name()
	result := &RevealResult{
		TicketID:      tk.ID(),
		DisplayNumber: tk.DisplayNumber(),
		InstantWin:    true,
		PrizeName:     &name,
		ClaimDeadline: &deadline,
		RevealedAt:    now,
	}

	if tpl.AutoClaimCredit() {
		if err := c.autoClaimCredit(ctx, tx, tk, tpl, instanceID, now); err != nil {
			return nil, err
		}
		result.AutoClaimed = true
		result.ClaimDeadline = nil
	}
	return result, nil
}

// autoClaimCredit settles templates flagged for immediate credit payout in
// the same transaction as the reveal, skipping the claim window entirely.
func (c *ticketCommandsImpl) autoClaimCredit(
	ctx context.Context,
	tx shared.Tx,
	tk *ticket.Ticket,
	tpl *prize.Template,
	instanceID uuid.UUID,
	now time.Time,
) error {
	if err := tx.Prizes().MarkInstanceClaimed(ctx, instanceID, prize.ValueCredit, now); err != nil {
		return errs.Mark(err, ErrDatabaseOperation)
	}
	if err := tx.Tickets().MarkClaimed(ctx, tk.ID(), now); err != nil {
		return errs.Mark(err, ErrDatabaseOperation)
	}
	return c.payoutCredit(ctx, tx, tk.BuyerID(), tpl.CreditValueCents(), instanceID, now)
}

// Claim converts a discovered instant-win prize into the buyer's chosen
// payout form, exactly once and only inside the claim window.
func (c *ticketCommandsImpl) Claim(
	ctx context.Context,
	ticketID uuid.UUID,
	req reqdto.ClaimPrizeRequest,
	buyerID uuid.UUID,
) (*ClaimResult, error) {
	valueType, err := prize.NewValueType(req.ValueType)
	if err != nil {
		return nil, err
	}

	var result *ClaimResult

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		tk, err := tx.Tickets().FindByIDForUpdate(ctx, ticketID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrTicketNotFound
			}
			return errs.Mark(err, ErrDatabaseOperation)
		}
		if err := tk.CanClaim(buyerID); err != nil {
			return err
		}

		inst, err := tx.Prizes().FindInstanceByIDForUpdate(ctx, *tk.PrizeInstanceID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		tpl, err := tx.Prizes().FindTemplateByID(ctx, inst.TemplateID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}

		now := c.clock.Now()
		if err := inst.Claim(valueType, now); err != nil {
			return err
		}

		if err := tx.Prizes().MarkInstanceClaimed(ctx, inst.ID(), valueType, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		if err := tx.Tickets().MarkClaimed(ctx, ticketID, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}

		valueCents, err := tpl.ValueCents(valueType)
		if err != nil {
			return err
		}

		if valueType == prize.ValueCredit {
			if err := c.payoutCredit(ctx, tx, buyerID, valueCents, inst.ID(), now); err != nil {
				return err
			}
		} else {
			if err := c.enqueueFulfillment(ctx, tx, inst.ID(), valueType, valueCents, now); err != nil {
				return err
			}
		}

		result = &ClaimResult{
			TicketID:    ticketID,
			InstanceRef: inst.Ref(),
			PrizeName:   tpl.Name(),
			ValueType:   valueType.String(),
			ValueCents:  valueCents,
			ClaimedAt:   now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *ticketCommandsImpl) payoutCredit(
	ctx context.Context,
	tx shared.Tx,
	buyerID uuid.UUID,
	amountCents int64,
	instanceID uuid.UUID,
	now time.Time,
) error {
	if err := tx.Credits().Credit(ctx, buyerID, amountCents); err != nil {
		return errs.Mark(err, ErrDatabaseOperation)
	}
	entry := &shared.CreditEntry{
		BuyerID:     buyerID,
		AmountCents: amountCents,
		Kind:        creditKindPrize,
		ReferenceID: instanceID,
		CreatedAt:   now,
	}
	if err := tx.Credits().RecordTransaction(ctx, entry); err != nil {
		return errs.Mark(err, ErrDatabaseOperation)
	}
	return nil
}

func (c *ticketCommandsImpl) enqueueFulfillment(
	ctx context.Context,
	tx shared.Tx,
	instanceID uuid.UUID,
	valueType prize.ValueType,
	valueCents int64,
	now time.Time,
) error {
	payload, err := json.Marshal(map[string]any{
		"instance_id": instanceID,
		"value_type":  valueType.String(),
		"value_cents": valueCents,
	})
	if err != nil {
		return errs.Wrap(err, "failed to marshal fulfillment payload")
	}
	if err := tx.Fulfillments().Enqueue(ctx, fulfillmentKindPrize, payload, now); err != nil {
		return errs.Mark(err, ErrDatabaseOperation)
	}
	return nil
}

func revealedConflict(err error) error {
	if infra.IsKind(err, infra.KindConflict) {
		return ticket.ErrAlreadyRevealed
	}
	return errs.Mark(err, ErrDatabaseOperation)
}
