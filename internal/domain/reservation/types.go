package reservation

type Status string

const (
	StatusActive    Status = "active"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

// IsResolved reports whether the hold has been released one way or another.
func (s Status) IsResolved() bool {
	return s != StatusActive
}
