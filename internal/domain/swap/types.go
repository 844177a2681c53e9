package swap

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status is final. Once a request leaves
// PENDING it is immutable.
func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// CanResolve reports whether a request in status s may move to the given
// resolution. PENDING → ACCEPTED and PENDING → REJECTED are the only
// transitions this type has.
func (s Status) CanResolve(to Status) bool {
	return s == StatusPending && to.IsTerminal()
}
