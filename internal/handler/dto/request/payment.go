package request

import (
	"github.com/google/uuid"
)

const (
	OutcomeSuccess = "success"
	OutcomeCredit  = "credit"
	OutcomeFailure = "failure"
)

type CreateIntentRequest struct {
	ReservationID uuid.UUID `json:"reservation_id" binding:"required"`
}

// ConfirmIntentRequest carries the simulated gateway outcome. Outcome
// defaults to success when omitted; "credit" settles from the buyer's
// credit balance instead of the external gateway.
type ConfirmIntentRequest struct {
	Outcome       *string `json:"outcome,omitempty"`
	FailureReason *string `json:"failure_reason,omitempty"`
}

func (r ConfirmIntentRequest) Succeeded() bool {
	return r.Outcome == nil || *r.Outcome == OutcomeSuccess || *r.Outcome == OutcomeCredit
}
