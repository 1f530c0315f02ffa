package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
	ErrExceedsPerBuyerMax  = errors.New("quantity exceeds per-buyer ticket limit")
	ErrRaffleNotActive     = errors.New("raffle is not open for purchase")
	ErrTooCloseToEnd       = errors.New("too close to raffle end time")
	ErrAlreadyResolved     = errors.New("reservation is already resolved")
	ErrReservationExpired  = errors.New("reservation has expired")
	ErrInvalidHoldDuration = errors.New("hold duration must be positive")
)

// Reservation is a time-boxed hold on N tickets pending payment. It exists
// only between "buyer commits to buy" and payment resolution or expiry; the
// ticket counter it decremented is restored when the hold is released.
type Reservation struct {
	id          uuid.UUID
	raffleID    uuid.UUID
	buyerID     uuid.UUID
	quantity    int32
	amountCents int64
	status      Status
	expiresAt   time.Time
	createdAt   time.Time
	resolvedAt  *time.Time
}

func ReconstructReservation(
	id, raffleID, buyerID uuid.UUID,
	quantity int32,
	amountCents int64,
	status Status,
	expiresAt, createdAt time.Time,
	resolvedAt *time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		raffleID:    raffleID,
		buyerID:     buyerID,
		quantity:    quantity,
		amountCents: amountCents,
		status:      status,
		expiresAt:   expiresAt,
		createdAt:   createdAt,
		resolvedAt:  resolvedAt,
	}
}

func (r *Reservation) HasExpired(now time.Time) bool {
	return now.After(r.expiresAt)
}

// CanConfirm gates payment confirmation: the hold must still be active and
// inside its window.
func (r *Reservation) CanConfirm(now time.Time) error {
	if r.status.IsResolved() {
		return ErrAlreadyResolved
	}
	if r.HasExpired(now) {
		return ErrReservationExpired
	}
	return nil
}

func (r *Reservation) ID() uuid.UUID          { return r.id }
func (r *Reservation) RaffleID() uuid.UUID    { return r.raffleID }
func (r *Reservation) BuyerID() uuid.UUID     { return r.buyerID }
func (r *Reservation) Quantity() int32        { return r.quantity }
func (r *Reservation) AmountCents() int64     { return r.amountCents }
func (r *Reservation) Status() Status         { return r.status }
func (r *Reservation) ExpiresAt() time.Time   { return r.expiresAt }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }
func (r *Reservation) ResolvedAt() *time.Time { return r.resolvedAt }
