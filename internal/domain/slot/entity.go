package slot

import (
	"strings"
	"time"

	"slotswapper/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle        = errs.New("title cannot be empty")
	ErrInvalidTimeRange  = errs.New("start time must be before end time")
	ErrInvalidStatus     = errs.New("invalid slot status")
	ErrInvalidTransition = errs.New("invalid status transition")
	ErrLockedBySwap      = errs.New("slot is locked by a pending swap")
	ErrCoordinatorOnly   = errs.New("status is reserved for the swap coordinator")
)

type Slot struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	title     string
	startTime time.Time
	endTime   time.Time
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// New creates an owner-initiated slot. SWAP_PENDING is not creatable here:
// only the coordinator moves slots into that status.
func New(ownerID uuid.UUID, title string, startTime, endTime time.Time, status Status, now time.Time) (*Slot, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if !startTime.Before(endTime) {
		return nil, ErrInvalidTimeRange
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if status == StatusSwapPending {
		return nil, ErrCoordinatorOnly
	}

	return &Slot{
		id:        uuid.New(),
		ownerID:   ownerID,
		title:     title,
		startTime: startTime,
		endTime:   endTime,
		status:    status,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(id, ownerID uuid.UUID, title string, startTime, endTime time.Time, status Status, createdAt, updatedAt time.Time) *Slot {
	return &Slot{
		id:        id,
		ownerID:   ownerID,
		title:     title,
		startTime: startTime,
		endTime:   endTime,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ApplyOwnerUpdate validates an owner edit against the state machine and
// returns the updated slot. Every owner edit is rejected while the slot is
// locked by a pending swap.
func (s *Slot) ApplyOwnerUpdate(title *string, startTime, endTime *time.Time, status *Status, now time.Time) (*Slot, error) {
	if s.status == StatusSwapPending {
		return nil, ErrLockedBySwap
	}

	next := *s

	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if trimmed == "" {
			return nil, ErrEmptyTitle
		}
		next.title = trimmed
	}
	if startTime != nil {
		next.startTime = *startTime
	}
	if endTime != nil {
		next.endTime = *endTime
	}
	if !next.startTime.Before(next.endTime) {
		return nil, ErrInvalidTimeRange
	}
	if status != nil {
		if !status.IsValid() {
			return nil, ErrInvalidStatus
		}
		if !CanTransition(s.status, *status, ActorOwner) {
			return nil, ErrInvalidTransition
		}
		next.status = *status
	}

	next.updatedAt = now
	return &next, nil
}

// CanDelete reports whether the owner may delete the slot.
func (s *Slot) CanDelete() error {
	if s.status == StatusSwapPending {
		return ErrLockedBySwap
	}
	return nil
}

func (s *Slot) ID() uuid.UUID        { return s.id }
func (s *Slot) OwnerID() uuid.UUID   { return s.ownerID }
func (s *Slot) Title() string        { return s.title }
func (s *Slot) StartTime() time.Time { return s.startTime }
func (s *Slot) EndTime() time.Time   { return s.endTime }
func (s *Slot) Status() Status       { return s.status }
func (s *Slot) CreatedAt() time.Time { return s.createdAt }
func (s *Slot) UpdatedAt() time.Time { return s.updatedAt }
