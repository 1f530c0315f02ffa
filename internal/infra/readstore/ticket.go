package readstore

import (
	"context"

	"github.com/google/uuid"

	"raffle-core/internal/domain/ticket"
	"raffle-core/internal/infra"
	"raffle-core/internal/infra/db"
	"raffle-core/internal/usecase/queries"
)

type TicketReadStore struct {
	db db.DBTX
}

func NewTicketReadStore(dbtx db.DBTX) *TicketReadStore {
	return &TicketReadStore{db: dbtx}
}

func (r *TicketReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TicketView, error) {
	const q = `
		SELECT t.id, t.raffle_id, r.title, t.ticket_number, t.status, t.instant_win,
		       pt.name, t.purchased_at, t.revealed_at, t.claimed_at
		FROM tickets t
		JOIN raffles r ON r.id = t.raffle_id
		LEFT JOIN prize_instances pi ON pi.id = t.prize_instance_id
		LEFT JOIN prize_templates pt ON pt.id = pi.template_id
		WHERE t.id = $1`

	v := &queries.TicketView{}
	var number int32
	err := r.db.QueryRow(ctx, q, id).Scan(&v.ID, &v.RaffleID, &v.RaffleTitle, &number,
		&v.Status, &v.InstantWin, &v.PrizeName, &v.PurchasedAt, &v.RevealedAt, &v.ClaimedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find ticket view", err)
	}
	v.DisplayNumber = ticket.FormatDisplayNumber(v.RaffleID, number)
	return v, nil
}

func (r *TicketReadStore) FindOwnerID(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	const q = `SELECT buyer_id FROM tickets WHERE id = $1`

	var ownerID uuid.UUID
	if err := r.db.QueryRow(ctx, q, id).Scan(&ownerID); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to find ticket owner", err)
	}
	return ownerID, nil
}

func (r *TicketReadStore) ListByBuyer(ctx context.Context, buyerID uuid.UUID, limit int32) ([]*queries.TicketListItem, error) {
	const q = `
		SELECT id, raffle_id, ticket_number, status, instant_win, purchased_at
		FROM tickets
		WHERE buyer_id = $1
		ORDER BY purchased_at DESC, ticket_number
		LIMIT $2`

	return r.listItems(ctx, q, buyerID, limit)
}

func (r *TicketReadStore) ListByBuyerAndRaffle(ctx context.Context, buyerID, raffleID uuid.UUID) ([]*queries.TicketListItem, error) {
	const q = `
		SELECT id, raffle_id, ticket_number, status, instant_win, purchased_at
		FROM tickets
		WHERE buyer_id = $1 AND raffle_id = $2
		ORDER BY ticket_number`

	return r.listItems(ctx, q, buyerID, raffleID)
}

func (r *TicketReadStore) listItems(ctx context.Context, q string, args ...any) ([]*queries.TicketListItem, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tickets", err)
	}
	defer rows.Close()

	var items []*queries.TicketListItem
	for rows.Next() {
		item := &queries.TicketListItem{}
		var number int32
		if err := rows.Scan(&item.ID, &item.RaffleID, &number, &item.Status,
			&item.InstantWin, &item.PurchasedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan ticket list item", err)
		}
		item.DisplayNumber = ticket.FormatDisplayNumber(item.RaffleID, number)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read ticket list", err)
	}
	return items, nil
}
