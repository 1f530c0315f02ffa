package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"raffle-core/internal/domain/prize"
	"raffle-core/internal/infra"
	"raffle-core/internal/infra/db"
	"raffle-core/internal/usecase/shared"
)

type PrizeRepository struct {
	db db.DBTX
}

func NewPrizeRepository(dbtx db.DBTX) shared.PrizeRepository {
	return &PrizeRepository{db: dbtx}
}

func (r *PrizeRepository) CreateTemplate(ctx context.Context, tpl *prize.Template) (uuid.UUID, error) {
	const q = `
		INSERT INTO prize_templates (
			id, name, tier, prize_type, retail_value_cents, cash_value_cents,
			credit_value_cents, claim_deadline_hours, auto_claim_credit, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q,
		tpl.ID(), tpl.Name(), string(tpl.Tier()), string(tpl.PrizeType()),
		tpl.RetailValueCents(), tpl.CashValueCents(), tpl.CreditValueCents(),
		tpl.ClaimDeadlineHours(), tpl.AutoClaimCredit(), string(tpl.Status()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create prize template", err)
	}
	return id, nil
}

func (r *PrizeRepository) FindTemplateByID(ctx context.Context, id uuid.UUID) (*prize.Template, error) {
	const q = `
		SELECT id, name, tier, prize_type, retail_value_cents, cash_value_cents,
		       credit_value_cents, claim_deadline_hours, auto_claim_credit, status,
		       created_at, updated_at
		FROM prize_templates
		WHERE id = $1`

	var (
		tplID                uuid.UUID
		name                 string
		tier, prizeType      string
		retail, cash, credit int64
		deadlineHours        int32
		autoClaim            bool
		status               string
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, q, id).Scan(&tplID, &name, &tier, &prizeType,
		&retail, &cash, &credit, &deadlineHours, &autoClaim, &status, &createdAt, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find prize template", err)
	}

	return prize.ReconstructTemplate(tplID, name, prize.Tier(tier), prize.Type(prizeType),
		retail, cash, credit, deadlineHours, autoClaim,
		prize.TemplateStatus(status), createdAt, updatedAt), nil
}

func (r *PrizeRepository) CreatePool(ctx context.Context, pool *prize.Pool) (uuid.UUID, error) {
	const q = `
		INSERT INTO prize_pools (
			id, name, status, total_instances, instant_win_count, draw_win_count,
			odds_total, retail_total_cents, cash_total_cents, credit_total_cents
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q,
		pool.ID(), pool.Name(), string(pool.Status()),
		pool.TotalInstances(), pool.InstantWinCount(), pool.DrawWinCount(),
		pool.OddsTotal(), pool.RetailTotalCents(), pool.CashTotalCents(), pool.CreditTotalCents(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create prize pool", err)
	}
	return id, nil
}

func (r *PrizeRepository) CountInstances(ctx context.Context, poolID, templateID uuid.UUID) (int32, error) {
	const q = `SELECT COUNT(*) FROM prize_instances WHERE pool_id = $1 AND template_id = $2`

	var count int32
	if err := r.db.QueryRow(ctx, q, poolID, templateID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count prize instances", err)
	}
	return count, nil
}

func (r *PrizeRepository) FindPoolByIDForUpdate(ctx context.Context, id uuid.UUID) (*prize.Pool, error) {
	const q = `
		SELECT id, name, status, total_instances, instant_win_count, draw_win_count,
		       odds_total, retail_total_cents, cash_total_cents, credit_total_cents,
		       raffle_id, created_at, updated_at
		FROM prize_pools
		WHERE id = $1
		FOR UPDATE`

	var (
		poolID               uuid.UUID
		name, status         string
		total, instant, draw int32
		oddsTotal            float64
		retail, cash, credit int64
		raffleID             *uuid.UUID
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, q, id).Scan(&poolID, &name, &status, &total, &instant, &draw,
		&oddsTotal, &retail, &cash, &credit, &raffleID, &createdAt, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find prize pool", err)
	}

	return prize.ReconstructPool(poolID, name, prize.PoolStatus(status), total, instant, draw,
		oddsTotal, retail, cash, credit, raffleID, createdAt, updatedAt), nil
}

func (r *PrizeRepository) SavePool(ctx context.Context, pool *prize.Pool) error {
	const q = `
		UPDATE prize_pools
		SET name = $2, status = $3, total_instances = $4, instant_win_count = $5,
		    draw_win_count = $6, odds_total = $7, retail_total_cents = $8,
		    cash_total_cents = $9, credit_total_cents = $10, raffle_id = $11,
		    updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q,
		pool.ID(), pool.Name(), string(pool.Status()),
		pool.TotalInstances(), pool.InstantWinCount(), pool.DrawWinCount(),
		pool.OddsTotal(), pool.RetailTotalCents(), pool.CashTotalCents(),
		pool.CreditTotalCents(), pool.RaffleID())
	if err != nil {
		return infra.WrapRepoErr("failed to save prize pool", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("prize pool not found for save", infra.KindNotFound)
	}
	return nil
}

func (r *PrizeRepository) InsertInstances(ctx context.Context, instances []*prize.Instance) error {
	const q = `
		INSERT INTO prize_instances (id, instance_ref, pool_id, template_id, odds, status)
		VALUES ($1, $2, $3, $4, $5, $6)`

	for _, ins := range instances {
		_, err := r.db.Exec(ctx, q,
			ins.ID(), ins.Ref(), ins.PoolID(), ins.TemplateID(),
			ins.Odds(), string(ins.Status()))
		if err != nil {
			return infra.WrapRepoErr("failed to insert prize instance", err)
		}
	}
	return nil
}

func (r *PrizeRepository) AvailableInstantWins(ctx context.Context, poolID uuid.UUID) ([]*shared.InstanceWeight, error) {
	const q = `
		SELECT i.id, i.template_id, i.odds
		FROM prize_instances i
		JOIN prize_templates t ON t.id = i.template_id
		WHERE i.pool_id = $1 AND i.status = 'available' AND t.prize_type = 'instant_win'
		ORDER BY i.instance_ref`

	rows, err := r.db.Query(ctx, q, poolID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available instant wins", err)
	}
	defer rows.Close()

	var weights []*shared.InstanceWeight
	for rows.Next() {
		w := &shared.InstanceWeight{}
		if err := rows.Scan(&w.InstanceID, &w.TemplateID, &w.Odds); err != nil {
			return nil, infra.WrapRepoErr("failed to scan instance weight", err)
		}
		weights = append(weights, w)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read instance weights", err)
	}
	return weights, nil
}

func (r *PrizeRepository) AvailableDrawWins(ctx context.Context, poolID uuid.UUID) ([]*shared.InstanceWeight, error) {
	const q = `
		SELECT i.id, i.template_id, i.odds
		FROM prize_instances i
		JOIN prize_templates t ON t.id = i.template_id
		WHERE i.pool_id = $1 AND i.status = 'available' AND t.prize_type = 'draw_win'
		ORDER BY i.instance_ref`

	rows, err := r.db.Query(ctx, q, poolID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available draw wins", err)
	}
	defer rows.Close()

	var weights []*shared.InstanceWeight
	for rows.Next() {
		w := &shared.InstanceWeight{}
		if err := rows.Scan(&w.InstanceID, &w.TemplateID, &w.Odds); err != nil {
			return nil, infra.WrapRepoErr("failed to scan draw-win instance", err)
		}
		weights = append(weights, w)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read draw-win instances", err)
	}
	return weights, nil
}

// MarkDiscovered races concurrent reveals of the same instance; the status
// guard lets exactly one of them bind the prize.
func (r *PrizeRepository) MarkDiscovered(ctx context.Context, instanceID, ticketID uuid.UUID, deadline, discoveredAt time.Time) error {
	const q = `
		UPDATE prize_instances
		SET status = 'discovered', ticket_id = $2, claim_deadline = $3,
		    discovered_at = $4, updated_at = now()
		WHERE id = $1 AND status = 'available'`

	tag, err := r.db.Exec(ctx, q, instanceID, ticketID, deadline, discoveredAt)
	if err != nil {
		return infra.WrapRepoErr("failed to mark instance discovered", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("prize instance no longer available", infra.KindConflict)
	}
	return nil
}

func (r *PrizeRepository) FindInstanceByIDForUpdate(ctx context.Context, id uuid.UUID) (*prize.Instance, error) {
	const q = `
		SELECT id, instance_ref, pool_id, template_id, odds, status, ticket_id,
		       discovered_at, claim_deadline, claimed_at, claimed_value_type,
		       created_at, updated_at
		FROM prize_instances
		WHERE id = $1
		FOR UPDATE`

	var (
		insID, poolID, templateID            uuid.UUID
		ref                                  string
		odds                                 float64
		status                               string
		ticketID                             *uuid.UUID
		discoveredAt, claimDeadline, claimed *time.Time
		claimedValueType                     *string
		createdAt, updatedAt                 time.Time
	)
	err := r.db.QueryRow(ctx, q, id).Scan(&insID, &ref, &poolID, &templateID, &odds, &status,
		&ticketID, &discoveredAt, &claimDeadline, &claimed, &claimedValueType, &createdAt, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find prize instance", err)
	}

	var vt *prize.ValueType
	if claimedValueType != nil {
		v := prize.ValueType(*claimedValueType)
		vt = &v
	}
	return prize.ReconstructInstance(insID, ref, poolID, templateID, odds,
		prize.InstanceStatus(status), ticketID, discoveredAt, claimDeadline, claimed,
		vt, createdAt, updatedAt), nil
}

func (r *PrizeRepository) MarkInstanceClaimed(ctx context.Context, instanceID uuid.UUID, valueType prize.ValueType, claimedAt time.Time) error {
	const q = `
		UPDATE prize_instances
		SET status = 'claimed', claimed_value_type = $2, claimed_at = $3, updated_at = now()
		WHERE id = $1 AND status = 'discovered'`

	tag, err := r.db.Exec(ctx, q, instanceID, string(valueType), claimedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to mark instance claimed", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("prize instance not in discovered state", infra.KindConflict)
	}
	return nil
}

// ExpireOverdueDiscoveries forfeits lapsed discoveries. The instance is
// terminal after this: it keeps its ticket binding and discovery timestamps
// but never returns to the pool. SKIP LOCKED partitions the backlog between
// concurrent sweepers.
func (r *PrizeRepository) ExpireOverdueDiscoveries(ctx context.Context, now time.Time, limit int32) ([]*shared.ExpiredDiscovery, error) {
	const q = `
		UPDATE prize_instances
		SET status = 'forfeited', updated_at = now()
		WHERE id IN (
			SELECT id FROM prize_instances
			WHERE status = 'discovered' AND claim_deadline <= $1
			ORDER BY claim_deadline
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, ticket_id, pool_id`

	rows, err := r.db.Query(ctx, q, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to forfeit overdue discoveries", err)
	}
	defer rows.Close()

	var expired []*shared.ExpiredDiscovery
	for rows.Next() {
		d := &shared.ExpiredDiscovery{}
		if err := rows.Scan(&d.InstanceID, &d.TicketID, &d.PoolID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan overdue discovery", err)
		}
		expired = append(expired, d)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read overdue discoveries", err)
	}
	return expired, nil
}
