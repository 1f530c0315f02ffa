//go:build unit || e2e

package builder

import (
	"time"

	domprize "raffle-core/internal/domain/prize"

	"github.com/google/uuid"
)

type TemplateBuilder struct {
	Name               string
	Tier               domprize.Tier
	PrizeType          domprize.Type
	RetailValueCents   int64
	CashValueCents     int64
	CreditValueCents   int64
	ClaimDeadlineHours int32
	AutoClaimCredit    bool
}

func NewTemplateBuilder() *TemplateBuilder {
	return &TemplateBuilder{
		Name:               "Wireless Headphones",
		Tier:               domprize.TierGold,
		PrizeType:          domprize.TypeInstantWin,
		RetailValueCents:   15000,
		CashValueCents:     10000,
		CreditValueCents:   12000,
		ClaimDeadlineHours: 72,
		AutoClaimCredit:    false,
	}
}

func (b *TemplateBuilder) With(mutate func(*TemplateBuilder)) *TemplateBuilder {
	mutate(b)
	return b
}

func (b *TemplateBuilder) BuildDomain() (*domprize.Template, error) {
	return domprize.NewTemplate(
		b.Name, b.Tier, b.PrizeType,
		b.RetailValueCents, b.CashValueCents, b.CreditValueCents,
		b.ClaimDeadlineHours, b.AutoClaimCredit,
	)
}

type PoolBuilder struct {
	ID               uuid.UUID
	Name             string
	Status           domprize.PoolStatus
	TotalInstances   int32
	InstantWinCount  int32
	DrawWinCount     int32
	OddsTotal        float64
	RetailTotalCents int64
	CashTotalCents   int64
	CreditTotalCents int64
	RaffleID         *uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewPoolBuilder() *PoolBuilder {
	now := time.Now()
	return &PoolBuilder{
		ID:        uuid.New(),
		Name:      "Summer Pool",
		Status:    domprize.PoolUnlocked,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *PoolBuilder) With(mutate func(*PoolBuilder)) *PoolBuilder {
	mutate(b)
	return b
}

func (b *PoolBuilder) BuildDomain() (*domprize.Pool, error) {
	return domprize.NewPool(b.Name)
}

func (b *PoolBuilder) BuildReconstructed() *domprize.Pool {
	return domprize.ReconstructPool(
		b.ID, b.Name, b.Status,
		b.TotalInstances, b.InstantWinCount, b.DrawWinCount,
		b.OddsTotal,
		b.RetailTotalCents, b.CashTotalCents, b.CreditTotalCents,
		b.RaffleID,
		b.CreatedAt, b.UpdatedAt,
	)
}
