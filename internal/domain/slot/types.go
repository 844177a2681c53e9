package slot

type Status string

const (
	StatusBusy        Status = "BUSY"
	StatusSwappable   Status = "SWAPPABLE"
	StatusSwapPending Status = "SWAP_PENDING"
)

func (s Status) String() string {
	return string(s)
}

// NewStatus parses a wire status string.
func NewStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func (s Status) IsValid() bool {
	switch s {
	case StatusBusy, StatusSwappable, StatusSwapPending:
		return true
	default:
		return false
	}
}

// Actor identifies who is driving a status transition. Owners flip slots
// between BUSY and SWAPPABLE; only the swap coordinator may move slots in or
// out of SWAP_PENDING.
type Actor int

const (
	ActorOwner Actor = iota
	ActorCoordinator
)

type transition struct {
	from Status
	to   Status
}

// The full transition table. Anything not listed here is invalid, which makes
// this the single source of truth instead of status-string checks scattered
// across handlers.
var allowed = map[transition]Actor{
	{StatusBusy, StatusSwappable}:        ActorOwner,
	{StatusSwappable, StatusBusy}:        ActorOwner,
	{StatusSwappable, StatusSwapPending}: ActorCoordinator,
	{StatusSwapPending, StatusBusy}:      ActorCoordinator,
	{StatusSwapPending, StatusSwappable}: ActorCoordinator,
}

// CanTransition reports whether actor may move a slot from one status to
// another. Self-transitions are permitted for owners so that partial updates
// resubmitting the current status are not rejected.
func CanTransition(from, to Status, actor Actor) bool {
	if from == to {
		return from != StatusSwapPending
	}
	requiredActor, ok := allowed[transition{from, to}]
	if !ok {
		return false
	}
	return actor == requiredActor
}
