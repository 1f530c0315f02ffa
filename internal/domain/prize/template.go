package prize

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTemplateName = errors.New("template name is required")
	ErrNegativeValue     = errors.New("prize values cannot be negative")
	ErrValueAboveRetail  = errors.New("cash and credit values cannot exceed retail value")
	ErrInvalidDeadline   = errors.New("claim deadline hours must be at least 1")
	ErrTemplateNotActive = errors.New("prize template is not active")
)

// Template defines what a prize IS; instances allocated into pools carry a
// frozen copy of its values so later template edits cannot change a live
// pool.
type Template struct {
	id                 uuid.UUID
	name               string
	tier               Tier
	prizeType          Type
	retailValueCents   int64
	cashValueCents     int64
	creditValueCents   int64
	claimDeadlineHours int32
	autoClaimCredit    bool
	status             TemplateStatus
	createdAt          time.Time
	updatedAt          time.Time
}

func NewTemplate(
	name string,
	tier Tier,
	prizeType Type,
	retailValueCents, cashValueCents, creditValueCents int64,
	claimDeadlineHours int32,
	autoClaimCredit bool,
) (*Template, error) {
	if name == "" {
		return nil, ErrEmptyTemplateName
	}
	if !tier.IsValid() {
		return nil, ErrInvalidTier
	}
	if !prizeType.IsValid() {
		return nil, ErrInvalidType
	}
	if retailValueCents < 0 || cashValueCents < 0 || creditValueCents < 0 {
		return nil, ErrNegativeValue
	}
	if cashValueCents > retailValueCents || creditValueCents > retailValueCents {
		return nil, ErrValueAboveRetail
	}
	if claimDeadlineHours < 1 {
		return nil, ErrInvalidDeadline
	}

	return &Template{
		id:                 uuid.New(),
		name:               name,
		tier:               tier,
		prizeType:          prizeType,
		retailValueCents:   retailValueCents,
		cashValueCents:     cashValueCents,
		creditValueCents:   creditValueCents,
		claimDeadlineHours: claimDeadlineHours,
		autoClaimCredit:    autoClaimCredit,
		status:             TemplateActive,
	}, nil
}

func ReconstructTemplate(
	id uuid.UUID,
	name string,
	tier Tier,
	prizeType Type,
	retailValueCents, cashValueCents, creditValueCents int64,
	claimDeadlineHours int32,
	autoClaimCredit bool,
	status TemplateStatus,
	createdAt, updatedAt time.Time,
) *Template {
	return &Template{
		id:                 id,
		name:               name,
		tier:               tier,
		prizeType:          prizeType,
		retailValueCents:   retailValueCents,
		cashValueCents:     cashValueCents,
		creditValueCents:   creditValueCents,
		claimDeadlineHours: claimDeadlineHours,
		autoClaimCredit:    autoClaimCredit,
		status:             status,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func (t *Template) EnsureActive() error {
	if t.status != TemplateActive {
		return ErrTemplateNotActive
	}
	return nil
}

// ValueCents returns the payout amount for the chosen form.
func (t *Template) ValueCents(v ValueType) (int64, error) {
	switch v {
	case ValueRetail:
		return t.retailValueCents, nil
	case ValueCash:
		return t.cashValueCents, nil
	case ValueCredit:
		return t.creditValueCents, nil
	default:
		return 0, ErrInvalidValueType
	}
}

func (t *Template) ClaimDeadlineFrom(discoveredAt time.Time) time.Time {
	return discoveredAt.Add(time.Duration(t.claimDeadlineHours) * time.Hour)
}

func (t *Template) ID() uuid.UUID             { return t.id }
func (t *Template) Name() string              { return t.name }
func (t *Template) Tier() Tier                { return t.tier }
func (t *Template) PrizeType() Type           { return t.prizeType }
func (t *Template) RetailValueCents() int64   { return t.retailValueCents }
func (t *Template) CashValueCents() int64     { return t.cashValueCents }
func (t *Template) CreditValueCents() int64   { return t.creditValueCents }
func (t *Template) ClaimDeadlineHours() int32 { return t.claimDeadlineHours }
func (t *Template) AutoClaimCredit() bool     { return t.autoClaimCredit }
func (t *Template) Status() TemplateStatus    { return t.status }
func (t *Template) CreatedAt() time.Time      { return t.createdAt }
func (t *Template) UpdatedAt() time.Time      { return t.updatedAt }
