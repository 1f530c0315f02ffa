package queries

import (
	"context"

	"github.com/google/uuid"

	"raffle-core/internal/pkg/errs"
)

var ErrForbidden = errs.New("not allowed to view this resource")

type PrizeQueries interface {
	ListWonByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*WonPrizeView, error)
	GetPool(ctx context.Context, id uuid.UUID) (*PoolView, error)
	ListPools(ctx context.Context, limit int) ([]*PoolView, error)
	ListTemplates(ctx context.Context, limit int) ([]*TemplateView, error)
}

type PrizeViewRepo interface {
	ListWonByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*WonPrizeView, error)
	FindPoolByID(ctx context.Context, id uuid.UUID) (*PoolView, error)
	ListPools(ctx context.Context, limit int32) ([]*PoolView, error)
	ListTemplates(ctx context.Context, limit int32) ([]*TemplateView, error)
}

type prizeQueriesImpl struct {
	repo PrizeViewRepo
}

func NewPrizeQueries(repo PrizeViewRepo) PrizeQueries {
	return &prizeQueriesImpl{repo: repo}
}

func (q *prizeQueriesImpl) ListWonByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*WonPrizeView, error) {
	return q.repo.ListWonByBuyer(ctx, buyerID)
}

func (q *prizeQueriesImpl) GetPool(ctx context.Context, id uuid.UUID) (*PoolView, error) {
	return q.repo.FindPoolByID(ctx, id)
}

func (q *prizeQueriesImpl) ListPools(ctx context.Context, limit int) ([]*PoolView, error) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	return q.repo.ListPools(ctx, int32(limit))
}

func (q *prizeQueriesImpl) ListTemplates(ctx context.Context, limit int) ([]*TemplateView, error) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	return q.repo.ListTemplates(ctx, int32(limit))
}
