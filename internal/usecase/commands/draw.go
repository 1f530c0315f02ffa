package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"raffle-core/internal/domain/raffle"
	"raffle-core/internal/domain/ticket"
	"raffle-core/internal/infra"
	"raffle-core/internal/pkg/clock"
	"raffle-core/internal/pkg/draw"
	"raffle-core/internal/pkg/errs"
	"raffle-core/internal/usecase/shared"
)

var (
	ErrRaffleNotDrawable = errs.New("raffle must be sold out or ended to run the draw")
	ErrNoEligibleTickets = errs.New("no eligible tickets for the draw")
)

// DrawWinner is one resolved draw-win prize: the ticket it landed on and the
// claim window the winner now has.
type DrawWinner struct {
	TicketID      uuid.UUID `json:"ticket_id"`
	BuyerID       uuid.UUID `json:"buyer_id"`
	DisplayNumber string    `json:"display_number"`
	PrizeName     string    `json:"prize_name"`
	ClaimDeadline time.Time `json:"claim_deadline"`
}

type DrawResult struct {
	RaffleID uuid.UUID     `json:"raffle_id"`
	Winners  []*DrawWinner `json:"winners"`
	DrawnAt  time.Time     `json:"drawn_at"`
}

// DrawCommands resolves the pool's draw-win prizes over a finished raffle's
// tickets. Reveal-time odds never touch draw wins; they exist only for this
// operation.
type DrawCommands interface {
	ExecuteDraw(ctx context.Context, raffleID uuid.UUID) (*DrawResult, error)
}

type drawCommandsImpl struct {
	uow    shared.UnitOfWork
	source draw.Source
	clock  clock.Clock
}

func NewDrawCommands(u shared.UnitOfWork, source draw.Source, clk clock.Clock) DrawCommands {
	return &drawCommandsImpl{uow: u, source: source, clock: clk}
}

// ExecuteDraw picks one winning ticket per remaining draw-win instance,
// uniformly over the raffle's prize-less sold and revealed tickets. A ticket
// wins at most once per draw; every pick is seeded and audited the same way
// reveal rolls are. Running the draw again resolves only instances still
// available, so a retry never reassigns a prize.
func (c *drawCommandsImpl) ExecuteDraw(ctx context.Context, raffleID uuid.UUID) (*DrawResult, error) {
	var result *DrawResult

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		raf, err := tx.Raffles().FindByIDForUpdate(ctx, raffleID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRaffleNotFound
			}
			return errs.Mark(err, ErrDatabaseOperation)
		}
		if raf.Status() != raffle.StatusSoldOut && raf.Status() != raffle.StatusEnded {
			return ErrRaffleNotDrawable
		}
		if raf.PoolID() == nil {
			return ErrPoolNotAssigned
		}

		candidates, err := tx.Prizes().AvailableDrawWins(ctx, *raf.PoolID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}

		entries, err := tx.Tickets().ListDrawEligible(ctx, raffleID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		if len(entries) == 0 {
			return ErrNoEligibleTickets
		}

		now := c.clock.Now()
		result = &DrawResult{RaffleID: raffleID, Winners: []*DrawWinner{}, DrawnAt: now}

		for _, inst := range candidates {
			if len(entries) == 0 {
				break
			}

			seed, err := c.source.Seed()
			if err != nil {
				return err
			}
			roll := draw.Roll(seed)
			idx := int(roll / 100 * float64(len(entries)))
			if idx >= len(entries) {
				idx = len(entries) - 1
			}
			winner := entries[idx]

			tpl, err := tx.Prizes().FindTemplateByID(ctx, inst.TemplateID)
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperation)
			}
			deadline := tpl.ClaimDeadlineFrom(now)

			if err := tx.Prizes().MarkDiscovered(ctx, inst.InstanceID, winner.TicketID, deadline, now); err != nil {
				return errs.Mark(err, ErrDatabaseOperation)
			}
			if err := tx.Tickets().AwardDrawPrize(ctx, winner.TicketID, inst.InstanceID, now); err != nil {
				return errs.Mark(err, ErrDatabaseOperation)
			}

			instanceID := inst.InstanceID
			audit := &shared.DrawAudit{
				TicketID:      winner.TicketID,
				RaffleID:      raffleID,
				PoolID:        *raf.PoolID(),
				Seed:          seed,
				Roll:          roll,
				WonInstanceID: &instanceID,
				CreatedAt:     now,
			}
			if err := tx.DrawAudits().Record(ctx, audit); err != nil {
				return errs.Mark(err, ErrDatabaseOperation)
			}

			result.Winners = append(result.Winners, &DrawWinner{
				TicketID:      winner.TicketID,
				BuyerID:       winner.BuyerID,
				DisplayNumber: ticket.FormatDisplayNumber(raffleID, winner.Number),
				PrizeName:     tpl.Name(),
				ClaimDeadline: deadline,
			})

			// Each ticket wins at most once per draw.
			entries = append(entries[:idx], entries[idx+1:]...)
		}

		slog.Info("draw executed",
			"raffle_id", raffleID,
			"winners", len(result.Winners))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
