package ticket

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyRevealed  = errors.New("ticket already revealed")
	ErrNotRevealed      = errors.New("ticket has not been revealed")
	ErrNoPrizeWon       = errors.New("ticket did not win a prize")
	ErrAlreadyClaimed   = errors.New("ticket prize already claimed")
	ErrTicketVoid       = errors.New("ticket is void")
	ErrNotTicketOwner   = errors.New("ticket belongs to another buyer")
	ErrInvalidTicketNum = errors.New("ticket number must be positive")
)

// Ticket rows come into existence at payment confirmation, already sold; the
// pre-sale "available" population is the raffle's authoritative counter, not
// ticket rows. From there the state machine is
// sold → revealed → claimed, with void reachable only through raffle
// cancellation.
type Ticket struct {
	id              uuid.UUID
	raffleID        uuid.UUID
	buyerID         uuid.UUID
	number          int32
	status          Status
	isRevealed      bool
	instantWin      bool
	prizeInstanceID *uuid.UUID
	purchasedAt     time.Time
	revealedAt      *time.Time
	claimedAt       *time.Time
}

func MintSold(raffleID, buyerID uuid.UUID, number int32, now time.Time) (*Ticket, error) {
	if number < 1 {
		return nil, ErrInvalidTicketNum
	}
	return &Ticket{
		id:          uuid.New(),
		raffleID:    raffleID,
		buyerID:     buyerID,
		number:      number,
		status:      StatusSold,
		purchasedAt: now,
	}, nil
}

func ReconstructTicket(
	id, raffleID, buyerID uuid.UUID,
	number int32,
	status Status,
	isRevealed, instantWin bool,
	prizeInstanceID *uuid.UUID,
	purchasedAt time.Time,
	revealedAt, claimedAt *time.Time,
) *Ticket {
	return &Ticket{
		id:              id,
		raffleID:        raffleID,
		buyerID:         buyerID,
		number:          number,
		status:          status,
		isRevealed:      isRevealed,
		instantWin:      instantWin,
		prizeInstanceID: prizeInstanceID,
		purchasedAt:     purchasedAt,
		revealedAt:      revealedAt,
		claimedAt:       claimedAt,
	}
}

// CanReveal guards the single odds draw: only an unrevealed sold ticket owned
// by the caller may be revealed, and a second call is an error rather than a
// silent no-op so the draw can never be replayed.
func (t *Ticket) CanReveal(callerID uuid.UUID) error {
	if t.buyerID != callerID {
		return ErrNotTicketOwner
	}
	switch t.status {
	case StatusSold:
		return nil
	case StatusVoid:
		return ErrTicketVoid
	default:
		return ErrAlreadyRevealed
	}
}

// CanClaim guards prize conversion on a revealed ticket holding a prize,
// whether it came from the reveal draw or the end-of-raffle draw.
func (t *Ticket) CanClaim(callerID uuid.UUID) error {
	if t.buyerID != callerID {
		return ErrNotTicketOwner
	}
	switch t.status {
	case StatusClaimed:
		return ErrAlreadyClaimed
	case StatusVoid:
		return ErrTicketVoid
	case StatusSold:
		return ErrNotRevealed
	}
	// Instant and draw wins both bind a prize instance; no binding, no claim.
	if t.prizeInstanceID == nil {
		return ErrNoPrizeWon
	}
	return nil
}

// FormatDisplayNumber renders the buyer-facing ticket reference, unique
// within the raffle.
func FormatDisplayNumber(raffleID uuid.UUID, number int32) string {
	return fmt.Sprintf("%s-%03d", raffleID.String()[:8], number)
}

func (t *Ticket) DisplayNumber() string {
	return FormatDisplayNumber(t.raffleID, t.number)
}

func (t *Ticket) ID() uuid.UUID               { return t.id }
func (t *Ticket) RaffleID() uuid.UUID         { return t.raffleID }
func (t *Ticket) BuyerID() uuid.UUID          { return t.buyerID }
func (t *Ticket) Number() int32               { return t.number }
func (t *Ticket) Status() Status              { return t.status }
func (t *Ticket) IsRevealed() bool            { return t.isRevealed }
func (t *Ticket) InstantWin() bool            { return t.instantWin }
func (t *Ticket) PrizeInstanceID() *uuid.UUID { return t.prizeInstanceID }
func (t *Ticket) PurchasedAt() time.Time      { return t.purchasedAt }
func (t *Ticket) RevealedAt() *time.Time      { return t.revealedAt }
func (t *Ticket) ClaimedAt() *time.Time       { return t.claimedAt }
