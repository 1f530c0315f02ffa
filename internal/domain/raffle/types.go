package raffle

type Status string

const (
	StatusDraft      Status = "draft"
	StatusComingSoon Status = "coming_soon"
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusSoldOut    Status = "sold_out"
	StatusEnded      Status = "ended"
	StatusCancelled  Status = "cancelled"
)

// statusOrder fixes the monotonic lifecycle. Transitions only move forward
// along this order; cancelled is the one exception, reachable from any
// non-terminal state.
var statusOrder = map[Status]int{
	StatusDraft:      0,
	StatusComingSoon: 1,
	StatusActive:     2,
	StatusInactive:   3,
	StatusSoldOut:    4,
	StatusEnded:      5,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusComingSoon, StatusActive, StatusInactive,
		StatusSoldOut, StatusEnded, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusEnded || s == StatusCancelled
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
