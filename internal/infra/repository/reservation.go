package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"raffle-core/internal/domain/reservation"
	"raffle-core/internal/infra"
	"raffle-core/internal/infra/db"
	"raffle-core/internal/usecase/shared"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) shared.ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	const q = `
		INSERT INTO reservations (
			id, raffle_id, buyer_id, quantity, amount_cents, status, expires_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q,
		res.ID(), res.RaffleID(), res.BuyerID(), res.Quantity(),
		res.AmountCents(), string(res.Status()), res.ExpiresAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	const q = `
		SELECT id, raffle_id, buyer_id, quantity, amount_cents, status,
		       expires_at, created_at, resolved_at
		FROM reservations
		WHERE id = $1
		FOR UPDATE`

	var (
		resID, raffleID, buyerID uuid.UUID
		quantity                 int32
		amountCents              int64
		status                   string
		expiresAt, createdAt     time.Time
		resolvedAt               *time.Time
	)
	err := r.db.QueryRow(ctx, q, id).Scan(&resID, &raffleID, &buyerID, &quantity,
		&amountCents, &status, &expiresAt, &createdAt, &resolvedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	return reservation.ReconstructReservation(resID, raffleID, buyerID, quantity,
		amountCents, reservation.Status(status), expiresAt, createdAt, resolvedAt), nil
}

func (r *ReservationRepository) Resolve(ctx context.Context, id uuid.UUID, status reservation.Status, resolvedAt time.Time) error {
	const q = `
		UPDATE reservations
		SET status = $2, resolved_at = $3
		WHERE id = $1 AND status = 'active'`

	tag, err := r.db.Exec(ctx, q, id, string(status), resolvedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to resolve reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("reservation already resolved", infra.KindConflict)
	}
	return nil
}

// ClaimExpiredBatch uses SKIP LOCKED so concurrent sweepers partition the
// backlog instead of blocking on each other's rows.
func (r *ReservationRepository) ClaimExpiredBatch(ctx context.Context, now time.Time, limit int32) ([]*shared.ExpiredHold, error) {
	const q = `
		UPDATE reservations
		SET status = 'expired', resolved_at = $1
		WHERE id IN (
			SELECT id FROM reservations
			WHERE status = 'active' AND expires_at <= $1
			ORDER BY expires_at
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, raffle_id, quantity`

	rows, err := r.db.Query(ctx, q, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim expired reservations", err)
	}
	defer rows.Close()

	var holds []*shared.ExpiredHold
	for rows.Next() {
		h := &shared.ExpiredHold{}
		if err := rows.Scan(&h.ReservationID, &h.RaffleID, &h.Quantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan expired reservation", err)
		}
		holds = append(holds, h)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read expired reservations", err)
	}
	return holds, nil
}

func (r *ReservationRepository) CancelActiveByRaffle(ctx context.Context, raffleID uuid.UUID, resolvedAt time.Time) (int64, error) {
	const q = `
		UPDATE reservations
		SET status = 'cancelled', resolved_at = $2
		WHERE raffle_id = $1 AND status = 'active'`

	tag, err := r.db.Exec(ctx, q, raffleID, resolvedAt)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cancel reservations for raffle", err)
	}
	return tag.RowsAffected(), nil
}
