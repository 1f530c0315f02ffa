package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type RaffleView struct {
	ID               uuid.UUID  `json:"id"`
	Title            string     `json:"title"`
	TicketPriceCents int64      `json:"ticket_price_cents"`
	TotalTickets     int32      `json:"total_tickets"`
	AvailableTickets int32      `json:"available_tickets"`
	MaxPerBuyer      int32      `json:"max_per_buyer"`
	StartsAt         time.Time  `json:"starts_at"`
	EndsAt           time.Time  `json:"ends_at"`
	Status           string     `json:"status"`
	PoolID           *uuid.UUID `json:"pool_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type RaffleListItem struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	TicketPriceCents int64     `json:"ticket_price_cents"`
	AvailableTickets int32     `json:"available_tickets"`
	TotalTickets     int32     `json:"total_tickets"`
	StartsAt         time.Time `json:"starts_at"`
	EndsAt           time.Time `json:"ends_at"`
	Status           string    `json:"status"`
}

// RaffleStatsView aggregates sales progress for one raffle.
type RaffleStatsView struct {
	RaffleID         uuid.UUID `json:"raffle_id"`
	TotalTickets     int32     `json:"total_tickets"`
	SoldTickets      int32     `json:"sold_tickets"`
	AvailableTickets int32     `json:"available_tickets"`
	HeldTickets      int32     `json:"held_tickets"`
	RevealedTickets  int32     `json:"revealed_tickets"`
	InstantWins      int32     `json:"instant_wins"`
	UniqueBuyers     int32     `json:"unique_buyers"`
	RevenueCents     int64     `json:"revenue_cents"`
}

type TicketView struct {
	ID            uuid.UUID  `json:"id"`
	RaffleID      uuid.UUID  `json:"raffle_id"`
	RaffleTitle   string     `json:"raffle_title"`
	DisplayNumber string     `json:"display_number"`
	Status        string     `json:"status"`
	InstantWin    bool       `json:"instant_win"`
	PrizeName     *string    `json:"prize_name,omitempty"`
	PurchasedAt   time.Time  `json:"purchased_at"`
	RevealedAt    *time.Time `json:"revealed_at,omitempty"`
	ClaimedAt     *time.Time `json:"claimed_at,omitempty"`
}

type TicketListItem struct {
	ID            uuid.UUID `json:"id"`
	RaffleID      uuid.UUID `json:"raffle_id"`
	DisplayNumber string    `json:"display_number"`
	Status        string    `json:"status"`
	InstantWin    bool      `json:"instant_win"`
	PurchasedAt   time.Time `json:"purchased_at"`
}

type ReservationView struct {
	ID          uuid.UUID  `json:"id"`
	RaffleID    uuid.UUID  `json:"raffle_id"`
	RaffleTitle string     `json:"raffle_title"`
	BuyerID     uuid.UUID  `json:"buyer_id"`
	Quantity    int32      `json:"quantity"`
	AmountCents int64      `json:"amount_cents"`
	Status      string     `json:"status"`
	ExpiresAt   time.Time  `json:"expires_at"`
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

type IntentView struct {
	ID            uuid.UUID  `json:"id"`
	ReservationID uuid.UUID  `json:"reservation_id"`
	AmountCents   int64      `json:"amount_cents"`
	Status        string     `json:"status"`
	FailureReason *string    `json:"failure_reason,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	ConfirmedAt   *time.Time `json:"confirmed_at,omitempty"`
}

type WonPrizeView struct {
	InstanceID    uuid.UUID  `json:"instance_id"`
	InstanceRef   string     `json:"instance_ref"`
	PrizeName     string     `json:"prize_name"`
	Tier          string     `json:"tier"`
	Status        string     `json:"status"`
	TicketID      uuid.UUID  `json:"ticket_id"`
	RaffleTitle   string     `json:"raffle_title"`
	RetailCents   int64      `json:"retail_value_cents"`
	CashCents     int64      `json:"cash_value_cents"`
	CreditCents   int64      `json:"credit_value_cents"`
	ClaimDeadline *time.Time `json:"claim_deadline,omitempty"`
	ClaimedValue  *string    `json:"claimed_value_type,omitempty"`
	DiscoveredAt  *time.Time `json:"discovered_at,omitempty"`
}

type PoolView struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Status           string     `json:"status"`
	TotalInstances   int32      `json:"total_instances"`
	InstantWinCount  int32      `json:"instant_win_count"`
	DrawWinCount     int32      `json:"draw_win_count"`
	OddsTotal        float64    `json:"odds_total"`
	RetailTotalCents int64      `json:"retail_total_cents"`
	CashTotalCents   int64      `json:"cash_total_cents"`
	CreditTotalCents int64      `json:"credit_total_cents"`
	RaffleID         *uuid.UUID `json:"raffle_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

type TemplateView struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Tier               string    `json:"tier"`
	PrizeType          string    `json:"prize_type"`
	RetailValueCents   int64     `json:"retail_value_cents"`
	CashValueCents     int64     `json:"cash_value_cents"`
	CreditValueCents   int64     `json:"credit_value_cents"`
	ClaimDeadlineHours int32     `json:"claim_deadline_hours"`
	AutoClaimCredit    bool      `json:"auto_claim_credit"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

type Cursor struct {
	After string
}
