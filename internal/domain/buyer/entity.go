package buyer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInsufficientCredit = errors.New("insufficient credit balance")
	ErrNegativeAmount     = errors.New("amount cannot be negative")
)

// Buyer carries the credit balance that payments and prize claims settle
// against. The authoritative balance lives in the database row; this entity
// only validates moves before they are applied.
type Buyer struct {
	id          uuid.UUID
	email       string
	role        Role
	creditCents int64
	createdAt   time.Time
	updatedAt   time.Time
}

func ReconstructBuyer(id uuid.UUID, email string, role Role, creditCents int64, createdAt, updatedAt time.Time) *Buyer {
	return &Buyer{
		id:          id,
		email:       email,
		role:        role,
		creditCents: creditCents,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (b *Buyer) CanDebit(amountCents int64) error {
	if amountCents < 0 {
		return ErrNegativeAmount
	}
	if b.creditCents < amountCents {
		return ErrInsufficientCredit
	}
	return nil
}

func (b *Buyer) ID() uuid.UUID      { return b.id }
func (b *Buyer) Email() string      { return b.email }
func (b *Buyer) Role() Role         { return b.role }
func (b *Buyer) CreditCents() int64 { return b.creditCents }
