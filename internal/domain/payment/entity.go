package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyConfirmed = errors.New("payment intent already confirmed")
	ErrAlreadyFailed    = errors.New("payment intent already failed")
	ErrNotPending       = errors.New("payment intent is not pending")
	ErrPaymentFailed    = errors.New("payment declined")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// Intent is the idempotency anchor for the purchase pipeline: confirmation
// side effects (charge, mint, release) are keyed by its id so an at-least-once
// retry never charges or mints twice.
type Intent struct {
	id            uuid.UUID
	reservationID uuid.UUID
	amountCents   int64
	status        Status
	failureReason *string
	createdAt     time.Time
	confirmedAt   *time.Time
}

func NewIntent(reservationID uuid.UUID, amountCents int64, now time.Time) *Intent {
	return &Intent{
		id:            uuid.New(),
		reservationID: reservationID,
		amountCents:   amountCents,
		status:        StatusPending,
		createdAt:     now,
	}
}

func ReconstructIntent(
	id, reservationID uuid.UUID,
	amountCents int64,
	status Status,
	failureReason *string,
	createdAt time.Time,
	confirmedAt *time.Time,
) *Intent {
	return &Intent{
		id:            id,
		reservationID: reservationID,
		amountCents:   amountCents,
		status:        status,
		failureReason: failureReason,
		createdAt:     createdAt,
		confirmedAt:   confirmedAt,
	}
}

// EnsurePending distinguishes the replay case (already confirmed) from a
// terminal failure so confirm can be retried safely.
func (i *Intent) EnsurePending() error {
	switch i.status {
	case StatusPending:
		return nil
	case StatusConfirmed:
		return ErrAlreadyConfirmed
	default:
		return ErrAlreadyFailed
	}
}

func (i *Intent) ID() uuid.UUID            { return i.id }
func (i *Intent) ReservationID() uuid.UUID { return i.reservationID }
func (i *Intent) AmountCents() int64       { return i.amountCents }
func (i *Intent) Status() Status           { return i.status }
func (i *Intent) FailureReason() *string   { return i.failureReason }
func (i *Intent) CreatedAt() time.Time     { return i.createdAt }
func (i *Intent) ConfirmedAt() *time.Time  { return i.confirmedAt }
