package commands

import (
	"context"

	"github.com/google/uuid"

	"raffle-core/internal/domain/prize"
	reqdto "raffle-core/internal/handler/dto/request"
	"raffle-core/internal/infra"
	"raffle-core/internal/pkg/errs"
	"raffle-core/internal/usecase/queries"
	"raffle-core/internal/usecase/shared"
)

var (
	ErrPoolNotFound     = errs.New("prize pool not found")
	ErrTemplateNotFound = errs.New("prize template not found")
)

// LockPoolResult surfaces what the pool looked like at lock time; warnings
// flag thin pools without blocking the lock.
type LockPoolResult struct {
	Pool     *queries.PoolView `json:"pool"`
	Warnings []string          `json:"warnings,omitempty"`
}

type PrizeAdminCommands interface {
	CreateTemplate(ctx context.Context, req reqdto.CreateTemplateRequest) (*queries.TemplateView, error)
	CreatePool(ctx context.Context, req reqdto.CreatePoolRequest) (*queries.PoolView, error)
	AllocatePrizes(ctx context.Context, poolID uuid.UUID, req reqdto.AllocatePrizesRequest) (*queries.PoolView, error)
	LockPool(ctx context.Context, poolID uuid.UUID) (*LockPoolResult, error)
	AssignPool(ctx context.Context, poolID uuid.UUID, req reqdto.AssignPoolRequest) (*queries.PoolView, error)
}

type prizeAdminCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewPrizeAdminCommands(u shared.UnitOfWork) PrizeAdminCommands {
	return &prizeAdminCommandsImpl{uow: u}
}

func (c *prizeAdminCommandsImpl) CreateTemplate(
	ctx context.Context,
	req reqdto.CreateTemplateRequest,
) (*queries.TemplateView, error) {
	tpl, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Prizes().CreateTemplate(ctx, tpl); err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return templateView(tpl), nil
}

func (c *prizeAdminCommandsImpl) CreatePool(
	ctx context.Context,
	req reqdto.CreatePoolRequest,
) (*queries.PoolView, error) {
	pool, err := prize.NewPool(req.Name)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Prizes().CreatePool(ctx, pool); err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return poolView(pool), nil
}

// AllocatePrizes stamps quantity instances of a template into an unlocked
// pool. Instance values are frozen copies of the template at allocation time;
// odds resolve per instance, splitting the collective mass evenly unless the
// request spells them out.
func (c *prizeAdminCommandsImpl) AllocatePrizes(
	ctx context.Context,
	poolID uuid.UUID,
	req reqdto.AllocatePrizesRequest,
) (*queries.PoolView, error) {
	var view *queries.PoolView

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		pool, err := tx.Prizes().FindPoolByIDForUpdate(ctx, poolID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPoolNotFound
			}
			return errs.Mark(err, ErrDatabaseOperation)
		}

		tpl, err := tx.Prizes().FindTemplateByID(ctx, req.TemplateID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrTemplateNotFound
			}
			return errs.Mark(err, ErrDatabaseOperation)
		}
		if err := tpl.EnsureActive(); err != nil {
			return err
		}

		odds, err := prize.SplitOdds(req.CollectiveOdds, req.Quantity, req.IndividualOdds)
		if err != nil {
			return err
		}
		if err := pool.CanAllocate(req.CollectiveOdds); err != nil {
			return err
		}

		seqBase, err := tx.Prizes().CountInstances(ctx, poolID, req.TemplateID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}

		instances := make([]*prize.Instance, 0, req.Quantity)
		for i := int32(0); i < req.Quantity; i++ {
			inst, err := prize.NewInstance(poolID, req.TemplateID, odds[i], seqBase+i+1)
			if err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
			instances = append(instances, inst)
		}

		if err := tx.Prizes().InsertInstances(ctx, instances); err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}

		pool.ApplyAllocation(tpl, req.Quantity, req.CollectiveOdds)
		if err := tx.Prizes().SavePool(ctx, pool); err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}

		view = poolView(pool)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (c *prizeAdminCommandsImpl) LockPool(ctx context.Context, poolID uuid.UUID) (*LockPoolResult, error) {
	var result *LockPoolResult

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		pool, err := tx.Prizes().FindPoolByIDForUpdate(ctx, poolID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPoolNotFound
			}
			return errs.Mark(err, ErrDatabaseOperation)
		}

		report, err := pool.Lock()
		if err != nil {
			return err
		}
		if err := tx.Prizes().SavePool(ctx, pool); err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}

		result = &LockPoolResult{
			Pool:     poolView(pool),
			Warnings: report.Warnings,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AssignPool binds a locked pool to a raffle; both sides validate, so a pool
// can back exactly one raffle and only drafts can take a pool.
func (c *prizeAdminCommandsImpl) AssignPool(
	ctx context.Context,
	poolID uuid.UUID,
	req reqdto.AssignPoolRequest,
) (*queries.PoolView, error) {
	var view *queries.PoolView

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		pool, err := tx.Prizes().FindPoolByIDForUpdate(ctx, poolID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPoolNotFound
			}
			return errs.Mark(err, ErrDatabaseOperation)
		}
		raf, err := tx.Raffles().FindByIDForUpdate(ctx, req.RaffleID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRaffleNotFound
			}
			return errs.Mark(err, ErrDatabaseOperation)
		}

		if err := raf.AssignPool(poolID); err != nil {
			return err
		}
		if err := pool.Assign(req.RaffleID); err != nil {
			return err
		}

		if err := tx.Prizes().SavePool(ctx, pool); err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		if err := tx.Raffles().AssignPool(ctx, req.RaffleID, poolID); err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}

		view = poolView(pool)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func poolView(pool *prize.Pool) *queries.PoolView {
	return &queries.PoolView{
		ID:               pool.ID(),
		Name:             pool.Name(),
		Status:           string(pool.Status()),
		TotalInstances:   pool.TotalInstances(),
		InstantWinCount:  pool.InstantWinCount(),
		DrawWinCount:     pool.DrawWinCount(),
		OddsTotal:        pool.OddsTotal(),
		RetailTotalCents: pool.RetailTotalCents(),
		CashTotalCents:   pool.CashTotalCents(),
		CreditTotalCents: pool.CreditTotalCents(),
		RaffleID:         pool.RaffleID(),
		CreatedAt:        pool.CreatedAt(),
	}
}

func templateView(tpl *prize.Template) *queries.TemplateView {
	return &queries.TemplateView{
		ID:                 tpl.ID(),
		Name:               tpl.Name(),
		Tier:               tpl.Tier().String(),
		PrizeType:          tpl.PrizeType().String(),
		RetailValueCents:   tpl.RetailValueCents(),
		CashValueCents:     tpl.CashValueCents(),
		CreditValueCents:   tpl.CreditValueCents(),
		ClaimDeadlineHours: tpl.ClaimDeadlineHours(),
		AutoClaimCredit:    tpl.AutoClaimCredit(),
		Status:             string(tpl.Status()),
		CreatedAt:          tpl.CreatedAt(),
	}
}
