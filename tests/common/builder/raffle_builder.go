//go:build unit || e2e

package builder

import (
	"time"

	domraffle "raffle-core/internal/domain/raffle"

	"github.com/google/uuid"
)

type RaffleBuilder struct {
	ID               uuid.UUID
	Title            string
	TicketPriceCents int64
	TotalTickets     int32
	AvailableTickets int32
	MaxPerBuyer      int32
	StartsAt         time.Time
	EndsAt           time.Time
	Status           domraffle.Status
	PoolID           *uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewRaffleBuilder() *RaffleBuilder {
	now := time.Now()
	poolID := uuid.New()
	return &RaffleBuilder{
		ID:               uuid.New(),
		Title:            "Summer Mega Raffle",
		TicketPriceCents: 500,
		TotalTickets:     100,
		AvailableTickets: 100,
		MaxPerBuyer:      10,
		StartsAt:         now.Add(-time.Hour),
		EndsAt:           now.Add(24 * time.Hour),
		Status:           domraffle.StatusActive,
		PoolID:           &poolID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (b *RaffleBuilder) With(mutate func(*RaffleBuilder)) *RaffleBuilder {
	mutate(b)
	return b
}

// BuildDomain runs the creation path, producing a fresh draft raffle.
func (b *RaffleBuilder) BuildDomain() (*domraffle.Raffle, error) {
	return domraffle.NewRaffle(b.Title, b.TicketPriceCents, b.TotalTickets, b.MaxPerBuyer, b.StartsAt, b.EndsAt)
}

// BuildReconstructed hydrates a raffle as the repository would, letting tests
// start from any lifecycle state.
func (b *RaffleBuilder) BuildReconstructed() (*domraffle.Raffle, error) {
	return domraffle.ReconstructRaffle(
		b.ID, b.Title, b.TicketPriceCents,
		b.TotalTickets, b.AvailableTickets, b.MaxPerBuyer,
		b.StartsAt, b.EndsAt, b.Status, b.PoolID,
		b.CreatedAt, b.UpdatedAt,
	)
}
