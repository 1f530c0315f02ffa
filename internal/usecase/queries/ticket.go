package queries

import (
	"context"

	"github.com/google/uuid"
)

type TicketQueries interface {
	GetByID(ctx context.Context, actorID, id uuid.UUID) (*TicketView, error)
	ListByBuyer(ctx context.Context, buyerID uuid.UUID, limit int) ([]*TicketListItem, error)
	ListByBuyerAndRaffle(ctx context.Context, buyerID, raffleID uuid.UUID) ([]*TicketListItem, error)
}

type TicketViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TicketView, error)
	FindOwnerID(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	ListByBuyer(ctx context.Context, buyerID uuid.UUID, limit int32) ([]*TicketListItem, error)
	ListByBuyerAndRaffle(ctx context.Context, buyerID, raffleID uuid.UUID) ([]*TicketListItem, error)
}

type ticketQueriesImpl struct {
	repo TicketViewRepo
}

func NewTicketQueries(repo TicketViewRepo) TicketQueries {
	return &ticketQueriesImpl{repo: repo}
}

func (q *ticketQueriesImpl) GetByID(ctx context.Context, actorID, id uuid.UUID) (*TicketView, error) {
	ownerID, err := q.repo.FindOwnerID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ownerID != actorID {
		return nil, ErrForbidden
	}
	return q.repo.FindByID(ctx, id)
}

func (q *ticketQueriesImpl) ListByBuyer(ctx context.Context, buyerID uuid.UUID, limit int) ([]*TicketListItem, error) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	return q.repo.ListByBuyer(ctx, buyerID, int32(limit))
}

func (q *ticketQueriesImpl) ListByBuyerAndRaffle(ctx context.Context, buyerID, raffleID uuid.UUID) ([]*TicketListItem, error) {
	return q.repo.ListByBuyerAndRaffle(ctx, buyerID, raffleID)
}
