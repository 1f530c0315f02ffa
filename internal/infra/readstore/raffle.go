package readstore

import (
	"context"

	"github.com/google/uuid"

	"raffle-core/internal/infra"
	"raffle-core/internal/infra/db"
	"raffle-core/internal/usecase/queries"
)

type RaffleReadStore struct {
	db db.DBTX
}

func NewRaffleReadStore(dbtx db.DBTX) *RaffleReadStore {
	return &RaffleReadStore{db: dbtx}
}

func (r *RaffleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RaffleView, error) {
	const q = `
		SELECT id, title, ticket_price_cents, total_tickets, available_tickets,
		       max_per_buyer, starts_at, ends_at, status, pool_id, created_at, updated_at
		FROM raffles
		WHERE id = $1`

	v := &queries.RaffleView{}
	err := r.db.QueryRow(ctx, q, id).Scan(&v.ID, &v.Title, &v.TicketPriceCents,
		&v.TotalTickets, &v.AvailableTickets, &v.MaxPerBuyer,
		&v.StartsAt, &v.EndsAt, &v.Status, &v.PoolID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find raffle view", err)
	}
	return v, nil
}

func (r *RaffleReadStore) List(ctx context.Context, statuses []string, limit int32) ([]*queries.RaffleListItem, error) {
	const q = `
		SELECT id, title, ticket_price_cents, available_tickets, total_tickets,
		       starts_at, ends_at, status
		FROM raffles
		WHERE cardinality($1::text[]) = 0 OR status = ANY($1)
		ORDER BY starts_at DESC
		LIMIT $2`

	if statuses == nil {
		statuses = []string{}
	}
	rows, err := r.db.Query(ctx, q, statuses, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list raffles", err)
	}
	defer rows.Close()

	var items []*queries.RaffleListItem
	for rows.Next() {
		item := &queries.RaffleListItem{}
		if err := rows.Scan(&item.ID, &item.Title, &item.TicketPriceCents,
			&item.AvailableTickets, &item.TotalTickets,
			&item.StartsAt, &item.EndsAt, &item.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan raffle list item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read raffle list", err)
	}
	return items, nil
}

// Stats reads the counter row and the ticket aggregates in one statement so
// the held count (total minus available minus sold) is internally consistent.
func (r *RaffleReadStore) Stats(ctx context.Context, id uuid.UUID) (*queries.RaffleStatsView, error) {
	const q = `
		SELECT r.id, r.total_tickets, r.available_tickets,
		       COUNT(t.id) FILTER (WHERE t.status <> 'void')      AS sold,
		       COUNT(t.id) FILTER (WHERE t.is_revealed)           AS revealed,
		       COUNT(t.id) FILTER (WHERE t.instant_win)           AS instant_wins,
		       COUNT(DISTINCT t.buyer_id)                         AS unique_buyers,
		       COALESCE(SUM(r.ticket_price_cents) FILTER (WHERE t.status <> 'void'), 0) AS revenue
		FROM raffles r
		LEFT JOIN tickets t ON t.raffle_id = r.id
		WHERE r.id = $1
		GROUP BY r.id`

	v := &queries.RaffleStatsView{}
	err := r.db.QueryRow(ctx, q, id).Scan(&v.RaffleID, &v.TotalTickets, &v.AvailableTickets,
		&v.SoldTickets, &v.RevealedTickets, &v.InstantWins, &v.UniqueBuyers, &v.RevenueCents)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read raffle stats", err)
	}

	held := v.TotalTickets - v.AvailableTickets - v.SoldTickets
	if held < 0 {
		held = 0
	}
	v.HeldTickets = held
	return v, nil
}
