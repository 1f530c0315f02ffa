package prize

import "errors"

var (
	ErrInvalidTier      = errors.New("invalid prize tier")
	ErrInvalidType      = errors.New("invalid prize type")
	ErrInvalidValueType = errors.New("invalid claim value type")
)

type Tier string

const (
	TierPlatinum Tier = "platinum"
	TierGold     Tier = "gold"
	TierSilver   Tier = "silver"
	TierBronze   Tier = "bronze"
)

func (t Tier) String() string {
	return string(t)
}

func (t Tier) IsValid() bool {
	switch t {
	case TierPlatinum, TierGold, TierSilver, TierBronze:
		return true
	default:
		return false
	}
}

func NewTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.IsValid() {
		return "", ErrInvalidTier
	}
	return t, nil
}

type Type string

const (
	TypeInstantWin Type = "instant_win"
	TypeDrawWin    Type = "draw_win"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	return t == TypeInstantWin || t == TypeDrawWin
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}

type TemplateStatus string

const (
	TemplateActive   TemplateStatus = "active"
	TemplateInactive TemplateStatus = "inactive"
	TemplateDepleted TemplateStatus = "depleted"
	TemplateExpired  TemplateStatus = "expired"
)

type PoolStatus string

const (
	PoolUnlocked PoolStatus = "unlocked"
	PoolLocked   PoolStatus = "locked"
	PoolAssigned PoolStatus = "assigned"
)

type InstanceStatus string

const (
	InstanceAvailable  InstanceStatus = "available"
	InstanceDiscovered InstanceStatus = "discovered"
	InstanceClaimed    InstanceStatus = "claimed"
	InstanceForfeited  InstanceStatus = "forfeited"
)

// ValueType is the payout form a winner converts a discovered prize into.
type ValueType string

const (
	ValueRetail ValueType = "retail"
	ValueCash   ValueType = "cash"
	ValueCredit ValueType = "credit"
)

func (v ValueType) String() string {
	return string(v)
}

func (v ValueType) IsValid() bool {
	switch v {
	case ValueRetail, ValueCash, ValueCredit:
		return true
	default:
		return false
	}
}

func NewValueType(s string) (ValueType, error) {
	v := ValueType(s)
	if !v.IsValid() {
		return "", ErrInvalidValueType
	}
	return v, nil
}
