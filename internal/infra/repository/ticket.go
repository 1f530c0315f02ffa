package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"raffle-core/internal/domain/ticket"
	"raffle-core/internal/infra"
	"raffle-core/internal/infra/db"
	"raffle-core/internal/usecase/shared"
)

type TicketRepository struct {
	db db.DBTX
}

func NewTicketRepository(dbtx db.DBTX) shared.TicketRepository {
	return &TicketRepository{db: dbtx}
}

func (r *TicketRepository) MintBatch(ctx context.Context, reservationID uuid.UUID, tickets []*ticket.Ticket) error {
	const q = `
		INSERT INTO tickets (
			id, raffle_id, buyer_id, reservation_id, ticket_number, status, purchased_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	for _, t := range tickets {
		_, err := r.db.Exec(ctx, q,
			t.ID(), t.RaffleID(), t.BuyerID(), reservationID,
			t.Number(), string(t.Status()), t.PurchasedAt())
		if err != nil {
			return infra.WrapRepoErr("failed to mint ticket", err)
		}
	}
	return nil
}

func (r *TicketRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error) {
	const q = `
		SELECT id, raffle_id, buyer_id, ticket_number, status, is_revealed,
		       instant_win, prize_instance_id, purchased_at, revealed_at, claimed_at
		FROM tickets
		WHERE id = $1
		FOR UPDATE`

	var (
		tid, raffleID, buyerID uuid.UUID
		number                 int32
		status                 string
		isRevealed, instantWin bool
		prizeInstanceID        *uuid.UUID
		purchasedAt            time.Time
		revealedAt, claimedAt  *time.Time
	)
	err := r.db.QueryRow(ctx, q, id).Scan(&tid, &raffleID, &buyerID, &number, &status,
		&isRevealed, &instantWin, &prizeInstanceID, &purchasedAt, &revealedAt, &claimedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find ticket", err)
	}

	return ticket.ReconstructTicket(tid, raffleID, buyerID, number, ticket.Status(status),
		isRevealed, instantWin, prizeInstanceID, purchasedAt, revealedAt, claimedAt), nil
}

func (r *TicketRepository) MarkRevealed(ctx context.Context, id uuid.UUID, instantWin bool, prizeInstanceID *uuid.UUID, revealedAt time.Time) error {
	const q = `
		UPDATE tickets
		SET status = 'revealed', is_revealed = TRUE, instant_win = $2,
		    prize_instance_id = $3, revealed_at = $4
		WHERE id = $1 AND status = 'sold'`

	tag, err := r.db.Exec(ctx, q, id, instantWin, prizeInstanceID, revealedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to reveal ticket", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("ticket already revealed", infra.KindConflict)
	}
	return nil
}

func (r *TicketRepository) MarkClaimed(ctx context.Context, id uuid.UUID, claimedAt time.Time) error {
	const q = `
		UPDATE tickets
		SET status = 'claimed', claimed_at = $2
		WHERE id = $1 AND status = 'revealed'`

	tag, err := r.db.Exec(ctx, q, id, claimedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to claim ticket", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("ticket not claimable", infra.KindConflict)
	}
	return nil
}

func (r *TicketRepository) VoidUnresolvedByRaffle(ctx context.Context, raffleID uuid.UUID) (int64, error) {
	const q = `
		UPDATE tickets
		SET status = 'void'
		WHERE raffle_id = $1 AND status IN ('sold', 'revealed')`

	tag, err := r.db.Exec(ctx, q, raffleID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to void tickets for raffle", err)
	}
	return tag.RowsAffected(), nil
}

// ListDrawEligible locks the candidate tickets so the draw serializes with
// concurrent reveals on the same raffle.
func (r *TicketRepository) ListDrawEligible(ctx context.Context, raffleID uuid.UUID) ([]*shared.DrawEntry, error) {
	const q = `
		SELECT id, buyer_id, ticket_number
		FROM tickets
		WHERE raffle_id = $1 AND status IN ('sold', 'revealed')
		  AND prize_instance_id IS NULL
		ORDER BY ticket_number
		FOR UPDATE`

	rows, err := r.db.Query(ctx, q, raffleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list draw-eligible tickets", err)
	}
	defer rows.Close()

	var entries []*shared.DrawEntry
	for rows.Next() {
		e := &shared.DrawEntry{}
		if err := rows.Scan(&e.TicketID, &e.BuyerID, &e.Number); err != nil {
			return nil, infra.WrapRepoErr("failed to scan draw-eligible ticket", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read draw-eligible tickets", err)
	}
	return entries, nil
}

func (r *TicketRepository) AwardDrawPrize(ctx context.Context, id, instanceID uuid.UUID, awardedAt time.Time) error {
	const q = `
		UPDATE tickets
		SET status = 'revealed', is_revealed = TRUE,
		    prize_instance_id = $2, revealed_at = COALESCE(revealed_at, $3)
		WHERE id = $1 AND status IN ('sold', 'revealed')
		  AND prize_instance_id IS NULL`

	tag, err := r.db.Exec(ctx, q, id, instanceID, awardedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to award draw prize", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("ticket already holds a prize", infra.KindConflict)
	}
	return nil
}

func (r *TicketRepository) ForfeitPrize(ctx context.Context, id uuid.UUID) error {
	const q = `
		UPDATE tickets
		SET instant_win = FALSE, prize_instance_id = NULL
		WHERE id = $1 AND status = 'revealed'`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to forfeit ticket prize", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("ticket not in revealed state", infra.KindConflict)
	}
	return nil
}
