package prize

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInstanceNotAvailable  = errors.New("prize instance is not available")
	ErrInstanceNotDiscovered = errors.New("prize instance has not been discovered")
	ErrInstanceClaimed       = errors.New("prize instance already claimed")
	ErrInstanceForfeited     = errors.New("prize instance was forfeited")
	ErrClaimDeadlinePassed   = errors.New("claim deadline has passed")
)

// Instance is one winnable unit inside a pool. It moves strictly forward:
// available → discovered (bound to the revealing ticket) → claimed, or
// forfeited when the claim window lapses. It never re-enters the pool.
type Instance struct {
	id               uuid.UUID
	ref              string
	poolID           uuid.UUID
	templateID       uuid.UUID
	odds             float64
	status           InstanceStatus
	ticketID         *uuid.UUID
	discoveredAt     *time.Time
	claimDeadline    *time.Time
	claimedAt        *time.Time
	claimedValueType *ValueType
	createdAt        time.Time
	updatedAt        time.Time
}

// NewInstance allocates one unit. seq numbers instances within a
// pool/template pair to build the human-readable reference.
func NewInstance(poolID, templateID uuid.UUID, odds float64, seq int32) (*Instance, error) {
	if odds <= 0 {
		return nil, ErrInvalidOdds
	}
	return &Instance{
		id:         uuid.New(),
		ref:        InstanceRef(poolID, templateID, seq),
		poolID:     poolID,
		templateID: templateID,
		odds:       odds,
		status:     InstanceAvailable,
	}, nil
}

// InstanceRef builds the operator-facing instance reference.
func InstanceRef(poolID, templateID uuid.UUID, seq int32) string {
	return fmt.Sprintf("%s-%s-%03d", poolID.String()[:8], templateID.String()[:8], seq)
}

func ReconstructInstance(
	id uuid.UUID,
	ref string,
	poolID, templateID uuid.UUID,
	odds float64,
	status InstanceStatus,
	ticketID *uuid.UUID,
	discoveredAt, claimDeadline, claimedAt *time.Time,
	claimedValueType *ValueType,
	createdAt, updatedAt time.Time,
) *Instance {
	return &Instance{
		id:               id,
		ref:              ref,
		poolID:           poolID,
		templateID:       templateID,
		odds:             odds,
		status:           status,
		ticketID:         ticketID,
		discoveredAt:     discoveredAt,
		claimDeadline:    claimDeadline,
		claimedAt:        claimedAt,
		claimedValueType: claimedValueType,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// Discover binds the instance to the revealing ticket and starts the claim
// window.
func (i *Instance) Discover(ticketID uuid.UUID, tpl *Template, now time.Time) error {
	if i.status != InstanceAvailable {
		return ErrInstanceNotAvailable
	}
	id := ticketID
	deadline := tpl.ClaimDeadlineFrom(now)
	i.status = InstanceDiscovered
	i.ticketID = &id
	i.discoveredAt = &now
	i.claimDeadline = &deadline
	return nil
}

// Claim finalizes the winner's payout choice. Exactly one value type may ever
// be chosen; the deadline is enforced here so an expired discovery cannot be
// converted.
func (i *Instance) Claim(valueType ValueType, now time.Time) error {
	switch i.status {
	case InstanceClaimed:
		return ErrInstanceClaimed
	case InstanceForfeited:
		return ErrInstanceForfeited
	case InstanceAvailable:
		return ErrInstanceNotDiscovered
	}
	if !valueType.IsValid() {
		return ErrInvalidValueType
	}
	if i.claimDeadline != nil && now.After(*i.claimDeadline) {
		return ErrClaimDeadlinePassed
	}
	vt := valueType
	i.status = InstanceClaimed
	i.claimedAt = &now
	i.claimedValueType = &vt
	return nil
}

// Forfeit retires a discovered instance whose claim window lapsed. The
// instance keeps its ticket binding for audit but can never be won or
// claimed again.
func (i *Instance) Forfeit() error {
	if i.status != InstanceDiscovered {
		return ErrInstanceNotDiscovered
	}
	i.status = InstanceForfeited
	return nil
}

func (i *Instance) ID() uuid.UUID                { return i.id }
func (i *Instance) Ref() string                  { return i.ref }
func (i *Instance) PoolID() uuid.UUID            { return i.poolID }
func (i *Instance) TemplateID() uuid.UUID        { return i.templateID }
func (i *Instance) Odds() float64                { return i.odds }
func (i *Instance) Status() InstanceStatus       { return i.status }
func (i *Instance) TicketID() *uuid.UUID         { return i.ticketID }
func (i *Instance) DiscoveredAt() *time.Time     { return i.discoveredAt }
func (i *Instance) ClaimDeadline() *time.Time    { return i.claimDeadline }
func (i *Instance) ClaimedAt() *time.Time        { return i.claimedAt }
func (i *Instance) ClaimedValueType() *ValueType { return i.claimedValueType }
