package request

import (
	"strings"

	"github.com/google/uuid"

	"raffle-core/internal/domain/prize"
)

type CreateTemplateRequest struct {
	Name               string `json:"name" binding:"required"`
	Tier               string `json:"tier" binding:"required"`
	PrizeType          string `json:"prize_type" binding:"required"`
	RetailValueCents   int64  `json:"retail_value_cents" binding:"min=0"`
	CashValueCents     int64  `json:"cash_value_cents" binding:"min=0"`
	CreditValueCents   int64  `json:"credit_value_cents" binding:"min=0"`
	ClaimDeadlineHours int32  `json:"claim_deadline_hours" binding:"required,min=1"`
	AutoClaimCredit    bool   `json:"auto_claim_credit"`
}

func (r CreateTemplateRequest) ToDomain() (*prize.Template, error) {
	tier, err := prize.NewTier(r.Tier)
	if err != nil {
		return nil, err
	}
	prizeType, err := prize.NewType(r.PrizeType)
	if err != nil {
		return nil, err
	}
	return prize.NewTemplate(
		strings.TrimSpace(r.Name),
		tier,
		prizeType,
		r.RetailValueCents,
		r.CashValueCents,
		r.CreditValueCents,
		r.ClaimDeadlineHours,
		r.AutoClaimCredit,
	)
}

type CreatePoolRequest struct {
	Name string `json:"name" binding:"required"`
}

type AllocatePrizesRequest struct {
	TemplateID     uuid.UUID `json:"template_id" binding:"required"`
	Quantity       int32     `json:"quantity" binding:"required,min=1"`
	CollectiveOdds float64   `json:"collective_odds" binding:"required,gt=0"`
	// IndividualOdds optionally overrides the even split; it must sum to
	// CollectiveOdds.
	IndividualOdds []float64 `json:"individual_odds,omitempty"`
}

type AssignPoolRequest struct {
	RaffleID uuid.UUID `json:"raffle_id" binding:"required"`
}

type ClaimPrizeRequest struct {
	ValueType string `json:"value_type" binding:"required"`
}
