package queries

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

const defaultListLimit = 50

type RaffleQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RaffleView, error)
	List(ctx context.Context, statuses []string, limit int) ([]*RaffleListItem, error)
	Stats(ctx context.Context, id uuid.UUID) (*RaffleStatsView, error)
}

type RaffleViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RaffleView, error)
	List(ctx context.Context, statuses []string, limit int32) ([]*RaffleListItem, error)
	Stats(ctx context.Context, id uuid.UUID) (*RaffleStatsView, error)
}

// CatalogCache fronts the raffle catalog reads. A cache failure is never an
// error here; reads fall through to the database.
type CatalogCache interface {
	GetRaffle(ctx context.Context, id uuid.UUID) (*RaffleView, bool)
	SetRaffle(ctx context.Context, view *RaffleView)
	Invalidate(ctx context.Context, id uuid.UUID)
}

type raffleQueriesImpl struct {
	repo  RaffleViewRepo
	cache CatalogCache
}

func NewRaffleQueries(repo RaffleViewRepo, cache CatalogCache) RaffleQueries {
	return &raffleQueriesImpl{repo: repo, cache: cache}
}

func (q *raffleQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RaffleView, error) {
	if view, ok := q.cache.GetRaffle(ctx, id); ok {
		return view, nil
	}

	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	q.cache.SetRaffle(ctx, view)
	return view, nil
}

func (q *raffleQueriesImpl) List(ctx context.Context, statuses []string, limit int) ([]*RaffleListItem, error) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	// Safe conversion: limit is clamped to defaultListLimit above
	return q.repo.List(ctx, statuses, int32(limit))
}

func (q *raffleQueriesImpl) Stats(ctx context.Context, id uuid.UUID) (*RaffleStatsView, error) {
	stats, err := q.repo.Stats(ctx, id)
	if err != nil {
		return nil, err
	}
	if stats.SoldTickets+stats.AvailableTickets+stats.HeldTickets != stats.TotalTickets {
		slog.Warn("raffle ticket counts do not reconcile",
			"raffle_id", id,
			"sold", stats.SoldTickets,
			"available", stats.AvailableTickets,
			"held", stats.HeldTickets,
			"total", stats.TotalTickets)
	}
	return stats, nil
}
