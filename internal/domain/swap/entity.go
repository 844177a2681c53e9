package swap

import (
	"time"

	"slotswapper/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSelfSwap        = errs.New("cannot swap slots with yourself")
	ErrSameSlot        = errs.New("a swap needs two distinct slots")
	ErrAlreadyResolved = errs.New("swap request already resolved")
)

// Request is a proposed exchange of slot ownership between two users. It is
// never deleted; resolved requests stay behind as an audit trail.
type Request struct {
	id              uuid.UUID
	requesterID     uuid.UUID
	ownerID         uuid.UUID
	requesterSlotID uuid.UUID
	ownerSlotID     uuid.UUID
	status          Status
	createdAt       time.Time
	resolvedAt      *time.Time
}

func NewRequest(requesterID, requesterSlotID, ownerID, ownerSlotID uuid.UUID, now time.Time) (*Request, error) {
	if requesterID == ownerID {
		return nil, ErrSelfSwap
	}
	if requesterSlotID == ownerSlotID {
		return nil, ErrSameSlot
	}

	return &Request{
		id:              uuid.New(),
		requesterID:     requesterID,
		ownerID:         ownerID,
		requesterSlotID: requesterSlotID,
		ownerSlotID:     ownerSlotID,
		status:          StatusPending,
		createdAt:       now,
	}, nil
}

func Reconstruct(id, requesterID, ownerID, requesterSlotID, ownerSlotID uuid.UUID, status Status, createdAt time.Time, resolvedAt *time.Time) *Request {
	return &Request{
		id:              id,
		requesterID:     requesterID,
		ownerID:         ownerID,
		requesterSlotID: requesterSlotID,
		ownerSlotID:     ownerSlotID,
		status:          status,
		createdAt:       createdAt,
		resolvedAt:      resolvedAt,
	}
}

// Resolve moves the request into a terminal status. Calling it on an already
// resolved request fails; the effect is never re-applied.
func (r *Request) Resolve(to Status, now time.Time) error {
	if !r.status.CanResolve(to) {
		return ErrAlreadyResolved
	}
	r.status = to
	r.resolvedAt = &now
	return nil
}

func (r *Request) ID() uuid.UUID              { return r.id }
func (r *Request) RequesterID() uuid.UUID     { return r.requesterID }
func (r *Request) OwnerID() uuid.UUID         { return r.ownerID }
func (r *Request) RequesterSlotID() uuid.UUID { return r.requesterSlotID }
func (r *Request) OwnerSlotID() uuid.UUID     { return r.ownerSlotID }
func (r *Request) Status() Status             { return r.status }
func (r *Request) CreatedAt() time.Time       { return r.createdAt }
func (r *Request) ResolvedAt() *time.Time     { return r.resolvedAt }
