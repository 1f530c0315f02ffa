package ticket

type Status string

const (
	StatusSold     Status = "sold"
	StatusRevealed Status = "revealed"
	StatusClaimed  Status = "claimed"
	StatusVoid     Status = "void"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusSold, StatusRevealed, StatusClaimed, StatusVoid:
		return true
	default:
		return false
	}
}
