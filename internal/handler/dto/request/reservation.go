package request

import (
	"github.com/google/uuid"
)

type ReserveTicketsRequest struct {
	RaffleID uuid.UUID `json:"raffle_id" binding:"required"`
	Quantity int32     `json:"quantity" binding:"required,min=1"`
}
