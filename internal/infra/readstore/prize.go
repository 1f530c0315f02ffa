package readstore

import (
	"context"

	"github.com/google/uuid"

	"raffle-core/internal/infra"
	"raffle-core/internal/infra/db"
	"raffle-core/internal/usecase/queries"
)

type PrizeReadStore struct {
	db db.DBTX
}

func NewPrizeReadStore(dbtx db.DBTX) *PrizeReadStore {
	return &PrizeReadStore{db: dbtx}
}

func (r *PrizeReadStore) ListWonByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*queries.WonPrizeView, error) {
	const q = `
		SELECT pi.id, pi.instance_ref, pt.name, pt.tier, pi.status, t.id, ra.title,
		       pt.retail_value_cents, pt.cash_value_cents, pt.credit_value_cents,
		       pi.claim_deadline, pi.claimed_value_type, pi.discovered_at
		FROM prize_instances pi
		JOIN tickets t ON t.id = pi.ticket_id
		JOIN raffles ra ON ra.id = t.raffle_id
		JOIN prize_templates pt ON pt.id = pi.template_id
		WHERE t.buyer_id = $1 AND pi.status IN ('discovered', 'claimed')
		ORDER BY pi.discovered_at DESC`

	rows, err := r.db.Query(ctx, q, buyerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list won prizes", err)
	}
	defer rows.Close()

	var views []*queries.WonPrizeView
	for rows.Next() {
		v := &queries.WonPrizeView{}
		if err := rows.Scan(&v.InstanceID, &v.InstanceRef, &v.PrizeName, &v.Tier, &v.Status,
			&v.TicketID, &v.RaffleTitle, &v.RetailCents, &v.CashCents, &v.CreditCents,
			&v.ClaimDeadline, &v.ClaimedValue, &v.DiscoveredAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan won prize", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read won prizes", err)
	}
	return views, nil
}

func (r *PrizeReadStore) FindPoolByID(ctx context.Context, id uuid.UUID) (*queries.PoolView, error) {
	const q = `
		SELECT id, name, status, total_instances, instant_win_count, draw_win_count,
		       odds_total, retail_total_cents, cash_total_cents, credit_total_cents,
		       raffle_id, created_at
		FROM prize_pools
		WHERE id = $1`

	v := &queries.PoolView{}
	err := r.db.QueryRow(ctx, q, id).Scan(&v.ID, &v.Name, &v.Status, &v.TotalInstances,
		&v.InstantWinCount, &v.DrawWinCount, &v.OddsTotal, &v.RetailTotalCents,
		&v.CashTotalCents, &v.CreditTotalCents, &v.RaffleID, &v.CreatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find pool view", err)
	}
	return v, nil
}

func (r *PrizeReadStore) ListPools(ctx context.Context, limit int32) ([]*queries.PoolView, error) {
	const q = `
		SELECT id, name, status, total_instances, instant_win_count, draw_win_count,
		       odds_total, retail_total_cents, cash_total_cents, credit_total_cents,
		       raffle_id, created_at
		FROM prize_pools
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, q, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pools", err)
	}
	defer rows.Close()

	var views []*queries.PoolView
	for rows.Next() {
		v := &queries.PoolView{}
		if err := rows.Scan(&v.ID, &v.Name, &v.Status, &v.TotalInstances,
			&v.InstantWinCount, &v.DrawWinCount, &v.OddsTotal, &v.RetailTotalCents,
			&v.CashTotalCents, &v.CreditTotalCents, &v.RaffleID, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pool view", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read pool list", err)
	}
	return views, nil
}

func (r *PrizeReadStore) ListTemplates(ctx context.Context, limit int32) ([]*queries.TemplateView, error) {
	const q = `
		SELECT id, name, tier, prize_type, retail_value_cents, cash_value_cents,
		       credit_value_cents, claim_deadline_hours, auto_claim_credit, status, created_at
		FROM prize_templates
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, q, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list templates", err)
	}
	defer rows.Close()

	var views []*queries.TemplateView
	for rows.Next() {
		v := &queries.TemplateView{}
		if err := rows.Scan(&v.ID, &v.Name, &v.Tier, &v.PrizeType, &v.RetailValueCents,
			&v.CashValueCents, &v.CreditValueCents, &v.ClaimDeadlineHours,
			&v.AutoClaimCredit, &v.Status, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan template view", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read template list", err)
	}
	return views, nil
}
