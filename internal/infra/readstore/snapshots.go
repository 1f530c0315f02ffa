package readstore

import (
	"context"

	"github.com/google/uuid"

	"raffle-core/internal/infra"
	"raffle-core/internal/infra/db"
	"raffle-core/internal/usecase/shared"
)

// SnapshotReadStore serves the validation reads commands run before and
// inside their transactions. Everything here is a plain read; locking is the
// write repositories' job.
type SnapshotReadStore struct {
	db db.DBTX
}

func NewSnapshotReadStore(dbtx db.DBTX) *SnapshotReadStore {
	return &SnapshotReadStore{db: dbtx}
}

func (r *SnapshotReadStore) RaffleByID(ctx context.Context, id uuid.UUID) (*shared.RaffleSnapshot, error) {
	const q = `
		SELECT id, title, ticket_price_cents, total_tickets, available_tickets,
		       max_per_buyer, starts_at, ends_at, status, pool_id, created_at, updated_at
		FROM raffles
		WHERE id = $1`

	s := &shared.RaffleSnapshot{}
	err := r.db.QueryRow(ctx, q, id).Scan(&s.ID, &s.Title, &s.TicketPriceCents,
		&s.TotalTickets, &s.AvailableTickets, &s.MaxPerBuyer,
		&s.StartsAt, &s.EndsAt, &s.Status, &s.PoolID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find raffle snapshot", err)
	}
	return s, nil
}

func (r *SnapshotReadStore) BuyerByID(ctx context.Context, id uuid.UUID) (*shared.BuyerSnapshot, error) {
	const q = `SELECT id, email, role, credit_cents FROM buyers WHERE id = $1`

	s := &shared.BuyerSnapshot{}
	err := r.db.QueryRow(ctx, q, id).Scan(&s.ID, &s.Email, &s.Role, &s.CreditCents)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find buyer snapshot", err)
	}
	return s, nil
}

func (r *SnapshotReadStore) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	const q = `
		SELECT id, raffle_id, buyer_id, quantity, amount_cents, status,
		       expires_at, created_at, resolved_at
		FROM reservations
		WHERE id = $1`

	s := &shared.ReservationSnapshot{}
	err := r.db.QueryRow(ctx, q, id).Scan(&s.ID, &s.RaffleID, &s.BuyerID, &s.Quantity,
		&s.AmountCents, &s.Status, &s.ExpiresAt, &s.CreatedAt, &s.ResolvedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation snapshot", err)
	}
	return s, nil
}

func (r *SnapshotReadStore) IntentByID(ctx context.Context, id uuid.UUID) (*shared.IntentSnapshot, error) {
	const q = `
		SELECT id, reservation_id, amount_cents, status, failure_reason, created_at, confirmed_at
		FROM payment_intents
		WHERE id = $1`

	s := &shared.IntentSnapshot{}
	err := r.db.QueryRow(ctx, q, id).Scan(&s.ID, &s.ReservationID, &s.AmountCents,
		&s.Status, &s.FailureReason, &s.CreatedAt, &s.ConfirmedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find intent snapshot", err)
	}
	return s, nil
}

// HeldQuantity is what the per-buyer cap is checked against: tickets already
// sold plus quantities still held by live reservations.
func (r *SnapshotReadStore) HeldQuantity(ctx context.Context, raffleID, buyerID uuid.UUID) (int32, error) {
	const q = `
		SELECT
			COALESCE((SELECT COUNT(*) FROM tickets
			          WHERE raffle_id = $1 AND buyer_id = $2 AND status <> 'void'), 0)
			+
			COALESCE((SELECT SUM(quantity) FROM reservations
			          WHERE raffle_id = $1 AND buyer_id = $2 AND status = 'active'), 0)`

	var held int32
	if err := r.db.QueryRow(ctx, q, raffleID, buyerID).Scan(&held); err != nil {
		return 0, infra.WrapRepoErr("failed to count held quantity", err)
	}
	return held, nil
}

func (r *SnapshotReadStore) TicketsByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*shared.TicketSnapshot, error) {
	const q = `
		SELECT id, raffle_id, buyer_id, ticket_number, status, instant_win,
		       prize_instance_id, purchased_at
		FROM tickets
		WHERE reservation_id = $1
		ORDER BY ticket_number`

	rows, err := r.db.Query(ctx, q, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservation tickets", err)
	}
	defer rows.Close()

	var snaps []*shared.TicketSnapshot
	for rows.Next() {
		s := &shared.TicketSnapshot{}
		if err := rows.Scan(&s.ID, &s.RaffleID, &s.BuyerID, &s.Number, &s.Status,
			&s.InstantWin, &s.PrizeInstanceID, &s.PurchasedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan ticket snapshot", err)
		}
		snaps = append(snaps, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation tickets", err)
	}
	return snaps, nil
}

func (r *SnapshotReadStore) PoolByID(ctx context.Context, id uuid.UUID) (*shared.PoolSnapshot, error) {
	const q = `
		SELECT id, name, status, total_instances, instant_win_count, draw_win_count,
		       odds_total, retail_total_cents, cash_total_cents, credit_total_cents, raffle_id
		FROM prize_pools
		WHERE id = $1`

	s := &shared.PoolSnapshot{}
	err := r.db.QueryRow(ctx, q, id).Scan(&s.ID, &s.Name, &s.Status, &s.TotalInstances,
		&s.InstantWinCount, &s.DrawWinCount, &s.OddsTotal, &s.RetailTotalCents,
		&s.CashTotalCents, &s.CreditTotalCents, &s.RaffleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find pool snapshot", err)
	}
	return s, nil
}

func (r *SnapshotReadStore) TemplateByID(ctx context.Context, id uuid.UUID) (*shared.TemplateSnapshot, error) {
	const q = `
		SELECT id, name, tier, prize_type, retail_value_cents, cash_value_cents,
		       credit_value_cents, claim_deadline_hours, auto_claim_credit, status
		FROM prize_templates
		WHERE id = $1`

	s := &shared.TemplateSnapshot{}
	err := r.db.QueryRow(ctx, q, id).Scan(&s.ID, &s.Name, &s.Tier, &s.PrizeType,
		&s.RetailValueCents, &s.CashValueCents, &s.CreditValueCents,
		&s.ClaimDeadlineHours, &s.AutoClaimCredit, &s.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find template snapshot", err)
	}
	return s, nil
}
