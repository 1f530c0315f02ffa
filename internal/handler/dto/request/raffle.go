package request

import (
	"strings"
	"time"

	"raffle-core/internal/domain/raffle"
)

type CreateRaffleRequest struct {
	Title            string    `json:"title" binding:"required"`
	TicketPriceCents int64     `json:"ticket_price_cents" binding:"min=0"`
	TotalTickets     int32     `json:"total_tickets" binding:"required,min=1"`
	MaxPerBuyer      int32     `json:"max_per_buyer" binding:"required,min=1"`
	StartsAt         time.Time `json:"starts_at" binding:"required"`
	EndsAt           time.Time `json:"ends_at" binding:"required"`
}

func (r CreateRaffleRequest) ToDomain() (*raffle.Raffle, error) {
	return raffle.NewRaffle(
		strings.TrimSpace(r.Title),
		r.TicketPriceCents,
		r.TotalTickets,
		r.MaxPerBuyer,
		r.StartsAt,
		r.EndsAt,
	)
}

type ChangeRaffleStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
