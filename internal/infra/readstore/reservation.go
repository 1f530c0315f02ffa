package readstore

import (
	"context"

	"github.com/google/uuid"

	"raffle-core/internal/infra"
	"raffle-core/internal/infra/db"
	"raffle-core/internal/usecase/queries"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	const q = `
		SELECT res.id, res.raffle_id, r.title, res.buyer_id, res.quantity,
		       res.amount_cents, res.status, res.expires_at, res.created_at, res.resolved_at
		FROM reservations res
		JOIN raffles r ON r.id = res.raffle_id
		WHERE res.id = $1`

	v := &queries.ReservationView{}
	err := r.db.QueryRow(ctx, q, id).Scan(&v.ID, &v.RaffleID, &v.RaffleTitle, &v.BuyerID,
		&v.Quantity, &v.AmountCents, &v.Status, &v.ExpiresAt, &v.CreatedAt, &v.ResolvedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation view", err)
	}
	return v, nil
}

func (r *ReservationReadStore) ListByBuyer(ctx context.Context, buyerID uuid.UUID, limit int32) ([]*queries.ReservationView, error) {
	const q = `
		SELECT res.id, res.raffle_id, r.title, res.buyer_id, res.quantity,
		       res.amount_cents, res.status, res.expires_at, res.created_at, res.resolved_at
		FROM reservations res
		JOIN raffles r ON r.id = res.raffle_id
		WHERE res.buyer_id = $1
		ORDER BY res.created_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, q, buyerID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var views []*queries.ReservationView
	for rows.Next() {
		v := &queries.ReservationView{}
		if err := rows.Scan(&v.ID, &v.RaffleID, &v.RaffleTitle, &v.BuyerID, &v.Quantity,
			&v.AmountCents, &v.Status, &v.ExpiresAt, &v.CreatedAt, &v.ResolvedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation view", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation list", err)
	}
	return views, nil
}
