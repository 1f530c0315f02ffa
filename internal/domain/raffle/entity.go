package raffle

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus       = errors.New("invalid raffle status")
	ErrInvalidTransition   = errors.New("invalid raffle status transition")
	ErrInvalidTimeWindow   = errors.New("end time must be after start time")
	ErrInvalidTicketCounts = errors.New("available tickets cannot exceed total")
	ErrInvalidTicketPrice  = errors.New("ticket price cannot be negative")
	ErrInvalidPerBuyerMax  = errors.New("per-buyer limit must be at least 1")
	ErrEmptyTitle          = errors.New("raffle title is required")
	ErrActivationWindow    = errors.New("raffle can only be activated inside its time window")
	ErrActivationNeedsPool = errors.New("raffle cannot be activated without an assigned prize pool")
	ErrComingSoonAfterOpen = errors.New("cannot set coming_soon after the raffle has opened")
)

type Raffle struct {
	id               uuid.UUID
	title            string
	ticketPriceCents int64
	totalTickets     int32
	availableTickets int32
	maxPerBuyer      int32
	startsAt         time.Time
	endsAt           time.Time
	status           Status
	poolID           *uuid.UUID
	createdAt        time.Time
	updatedAt        time.Time
}

func NewRaffle(
	title string,
	ticketPriceCents int64,
	totalTickets int32,
	maxPerBuyer int32,
	startsAt, endsAt time.Time,
) (*Raffle, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if ticketPriceCents < 0 {
		return nil, ErrInvalidTicketPrice
	}
	if totalTickets < 1 {
		return nil, ErrInvalidTicketCounts
	}
	if maxPerBuyer < 1 {
		return nil, ErrInvalidPerBuyerMax
	}
	if !endsAt.After(startsAt) {
		return nil, ErrInvalidTimeWindow
	}

	return &Raffle{
		id:               uuid.New(),
		title:            title,
		ticketPriceCents: ticketPriceCents,
		totalTickets:     totalTickets,
		availableTickets: totalTickets,
		maxPerBuyer:      maxPerBuyer,
		startsAt:         startsAt,
		endsAt:           endsAt,
		status:           StatusDraft,
	}, nil
}

func ReconstructRaffle(
	id uuid.UUID,
	title string,
	ticketPriceCents int64,
	totalTickets, availableTickets, maxPerBuyer int32,
	startsAt, endsAt time.Time,
	status Status,
	poolID *uuid.UUID,
	createdAt, updatedAt time.Time,
) (*Raffle, error) {
	if availableTickets < 0 || availableTickets > totalTickets {
		return nil, ErrInvalidTicketCounts
	}
	return &Raffle{
		id:               id,
		title:            title,
		ticketPriceCents: ticketPriceCents,
		totalTickets:     totalTickets,
		availableTickets: availableTickets,
		maxPerBuyer:      maxPerBuyer,
		startsAt:         startsAt,
		endsAt:           endsAt,
		status:           status,
		poolID:           poolID,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

// CanPurchaseAt reports whether tickets can be held or sold right now.
func (r *Raffle) CanPurchaseAt(now time.Time) bool {
	return r.status == StatusActive &&
		!now.Before(r.startsAt) &&
		now.Before(r.endsAt)
}

// ValidateTransition enforces the monotonic lifecycle. Cancellation is
// allowed from any non-terminal state; every other move must go forward
// along the declared order and satisfy the time-window/pool gates.
func (r *Raffle) ValidateTransition(next Status, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if r.status.IsTerminal() {
		return ErrInvalidTransition
	}
	if next == StatusCancelled {
		return nil
	}

	from, ok := statusOrder[r.status]
	to, okNext := statusOrder[next]
	if !ok || !okNext || to <= from {
		return ErrInvalidTransition
	}

	switch next {
	case StatusComingSoon:
		if !now.Before(r.startsAt) {
			return ErrComingSoonAfterOpen
		}
	case StatusActive:
		if now.Before(r.startsAt) || !now.Before(r.endsAt) {
			return ErrActivationWindow
		}
		if r.poolID == nil {
			return ErrActivationNeedsPool
		}
	}
	return nil
}

func (r *Raffle) AssignPool(poolID uuid.UUID) error {
	if r.status != StatusDraft && r.status != StatusComingSoon {
		return ErrInvalidTransition
	}
	id := poolID
	r.poolID = &id
	return nil
}

func (r *Raffle) SoldCount() int32 {
	return r.totalTickets - r.availableTickets
}

func (r *Raffle) ID() uuid.UUID           { return r.id }
func (r *Raffle) Title() string           { return r.title }
func (r *Raffle) TicketPriceCents() int64 { return r.ticketPriceCents }
func (r *Raffle) TotalTickets() int32     { return r.totalTickets }
func (r *Raffle) AvailableTickets() int32 { return r.availableTickets }
func (r *Raffle) MaxPerBuyer() int32      { return r.maxPerBuyer }
func (r *Raffle) StartsAt() time.Time     { return r.startsAt }
func (r *Raffle) EndsAt() time.Time       { return r.endsAt }
func (r *Raffle) Status() Status          { return r.status }
func (r *Raffle) PoolID() *uuid.UUID      { return r.poolID }
func (r *Raffle) CreatedAt() time.Time    { return r.createdAt }
func (r *Raffle) UpdatedAt() time.Time    { return r.updatedAt }
