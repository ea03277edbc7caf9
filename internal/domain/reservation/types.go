package reservation

type Status string

const (
	StatusActive    Status = "active"
	StatusCommitted Status = "committed"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCommitted, StatusCancelled, StatusExpired:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status can no longer change.
func (s Status) IsTerminal() bool {
	return s == StatusCommitted || s == StatusCancelled || s == StatusExpired
}

// ReleasesCurrentStock is true only for fulfilled reservations; every other
// transition out of active hands the quantity back to available stock.
func (s Status) ReleasesCurrentStock() bool {
	return s == StatusCommitted
}
