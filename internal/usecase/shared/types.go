package shared

import (
	"time"

	"github.com/google/uuid"
)

type RaffleSnapshot struct {
	ID               uuid.UUID
	Title            string
	TicketPriceCents int64
	TotalTickets     int32
	AvailableTickets int32
	MaxPerBuyer      int32
	StartsAt         time.Time
	EndsAt           time.Time
	Status           string
	PoolID           *uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type BuyerSnapshot struct {
	ID          uuid.UUID
	Email       string
	Role        string
	CreditCents int64
}

type ReservationSnapshot struct {
	ID          uuid.UUID
	RaffleID    uuid.UUID
	BuyerID     uuid.UUID
	Quantity    int32
	AmountCents int64
	Status      string
	ExpiresAt   time.Time
	CreatedAt   time.Time
	ResolvedAt  *time.Time
}

type IntentSnapshot struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	AmountCents   int64
	Status        string
	FailureReason *string
	CreatedAt     time.Time
	ConfirmedAt   *time.Time
}

type TicketSnapshot struct {
	ID              uuid.UUID
	RaffleID        uuid.UUID
	BuyerID         uuid.UUID
	Number          int32
	Status          string
	InstantWin      bool
	PrizeInstanceID *uuid.UUID
	PurchasedAt     time.Time
}

type PoolSnapshot struct {
	ID               uuid.UUID
	Name             string
	Status           string
	TotalInstances   int32
	InstantWinCount  int32
	DrawWinCount     int32
	OddsTotal        float64
	RetailTotalCents int64
	CashTotalCents   int64
	CreditTotalCents int64
	RaffleID         *uuid.UUID
}

type TemplateSnapshot struct {
	ID                 uuid.UUID
	Name               string
	Tier               string
	PrizeType          string
	RetailValueCents   int64
	CashValueCents     int64
	CreditValueCents   int64
	ClaimDeadlineHours int32
	AutoClaimCredit    bool
	Status             string
}

// InstanceWeight is the slice of an undiscovered instance the reveal draw
// rolls against.
type InstanceWeight struct {
	InstanceID uuid.UUID
	TemplateID uuid.UUID
	Odds       float64
}

// DrawEntry is one ticket eligible for the end-of-raffle draw.
type DrawEntry struct {
	TicketID uuid.UUID
	BuyerID  uuid.UUID
	Number   int32
}

// ExpiredHold is one reservation claimed by the expiry sweep, carrying just
// enough to restore the raffle counter.
type ExpiredHold struct {
	ReservationID uuid.UUID
	RaffleID      uuid.UUID
	Quantity      int32
}

// ExpiredDiscovery is a discovered prize whose claim window lapsed.
type ExpiredDiscovery struct {
	InstanceID uuid.UUID
	TicketID   uuid.UUID
	PoolID     uuid.UUID
}

type CreditEntry struct {
	BuyerID     uuid.UUID
	AmountCents int64 // negative for debits
	Kind        string
	ReferenceID uuid.UUID
	CreatedAt   time.Time
}

// DrawAudit preserves the inputs of one reveal roll so any draw can be
// replayed after the fact.
type DrawAudit struct {
	TicketID      uuid.UUID
	RaffleID      uuid.UUID
	PoolID        uuid.UUID
	Seed          uint64
	Roll          float64
	WonInstanceID *uuid.UUID
	CreatedAt     time.Time
}

type FulfillmentJob struct {
	ID      uuid.UUID
	Kind    string
	Payload []byte
	RunAt   time.Time
}
