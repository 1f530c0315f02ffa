package reservation

import (
	"time"

	"github.com/google/uuid"

	"raffle-core/internal/domain/raffle"
	"raffle-core/internal/pkg/clock"
)

// HoldPolicy fixes how long a hold lives and how close to the raffle end a
// new hold may still be taken.
type HoldPolicy struct {
	TTL          time.Duration
	MinTimeToEnd time.Duration
}

type Factory struct {
	Clock  clock.Clock
	Policy HoldPolicy
}

func NewFactory(clk clock.Clock, policy HoldPolicy) (*Factory, error) {
	if policy.TTL <= 0 {
		return nil, ErrInvalidHoldDuration
	}
	return &Factory{Clock: clk, Policy: policy}, nil
}

// CreateReservation validates the hold against the raffle's window and the
// buyer's remaining allowance, then prices it. Capacity itself is not checked
// here: the authoritative available-tickets counter is decremented by the
// repository in the same transaction that persists the hold.
func (f *Factory) CreateReservation(
	raf *raffle.Raffle,
	buyerID uuid.UUID,
	quantity int32,
	alreadyHeld int32, // buyer's sold tickets plus live holds for this raffle
) (*Reservation, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	now := f.Clock.Now()
	if !raf.CanPurchaseAt(now) {
		return nil, ErrRaffleNotActive
	}
	if alreadyHeld+quantity > raf.MaxPerBuyer() {
		return nil, ErrExceedsPerBuyerMax
	}

	expiresAt := now.Add(f.Policy.TTL)
	timeToEnd := raf.EndsAt().Sub(now)
	if timeToEnd < f.Policy.TTL {
		if timeToEnd <= f.Policy.MinTimeToEnd {
			return nil, ErrTooCloseToEnd
		}
		// Shorten the hold so it cannot outlive the raffle.
		expiresAt = raf.EndsAt().Add(-f.Policy.MinTimeToEnd / 2)
	}

	return &Reservation{
		id:          uuid.New(),
		raffleID:    raf.ID(),
		buyerID:     buyerID,
		quantity:    quantity,
		amountCents: int64(quantity) * raf.TicketPriceCents(),
		status:      StatusActive,
		expiresAt:   expiresAt,
		createdAt:   now,
	}, nil
}
