package queries

import (
	"context"
	"time"

	"slotswapper/internal/infra"
	"slotswapper/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrSwapRequestNotFound = errs.New("swap request not found")

// SwapRequestView expands both slots and the counterpart user in one
// read-time join so clients never chase identifiers.
type SwapRequestView struct {
	ID             uuid.UUID  `json:"id"`
	Status         string     `json:"status"`
	RequesterID    uuid.UUID  `json:"requester_id"`
	RequesterName  string     `json:"requester_name"`
	RequesterEmail string     `json:"requester_email"`
	OwnerID        uuid.UUID  `json:"owner_id"`
	OwnerName      string     `json:"owner_name"`
	OwnerEmail     string     `json:"owner_email"`
	RequesterSlot  SlotView   `json:"requester_slot"`
	OwnerSlot      SlotView   `json:"owner_slot"`
	CreatedAt      time.Time  `json:"created_at"`
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
}

type SwapReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SwapRequestView, error)
	FindPendingByOwner(ctx context.Context, ownerID uuid.UUID) ([]*SwapRequestView, error)
	FindPendingByRequester(ctx context.Context, requesterID uuid.UUID) ([]*SwapRequestView, error)
}

type SwapQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SwapRequestView, error)
	ListIncoming(ctx context.Context, ownerID uuid.UUID) ([]*SwapRequestView, error)
	ListOutgoing(ctx context.Context, requesterID uuid.UUID) ([]*SwapRequestView, error)
}

type swapQueriesImpl struct {
	store SwapReadStore
}

func NewSwapQueries(store SwapReadStore) SwapQueries {
	return &swapQueriesImpl{store: store}
}

func (q *swapQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SwapRequestView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSwapRequestNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *swapQueriesImpl) ListIncoming(ctx context.Context, ownerID uuid.UUID) ([]*SwapRequestView, error) {
	return q.store.FindPendingByOwner(ctx, ownerID)
}

func (q *swapQueriesImpl) ListOutgoing(ctx context.Context, requesterID uuid.UUID) ([]*SwapRequestView, error) {
	return q.store.FindPendingByRequester(ctx, requesterID)
}
