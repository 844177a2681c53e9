package queries

import (
	"context"
	"time"

	"slotswapper/internal/infra"
	"slotswapper/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrSlotNotFound = errs.New("slot not found")

// Read models (DTOs for the read side)
type SlotView struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SwappableSlotView is a read-time join of a slot with its owner, replacing
// the original's document population.
type SwappableSlotView struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	OwnerName  string    `json:"owner_name"`
	OwnerEmail string    `json:"owner_email"`
	Title      string    `json:"title"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Status     string    `json:"status"`
}

type SlotReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*SlotView, error)
	FindSwappableExcluding(ctx context.Context, excludeOwnerID uuid.UUID) ([]*SwappableSlotView, error)
}

type SlotQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
	ListOwn(ctx context.Context, ownerID uuid.UUID) ([]*SlotView, error)
	ListSwappable(ctx context.Context, excludeOwnerID uuid.UUID) ([]*SwappableSlotView, error)
}

type slotQueriesImpl struct {
	store SlotReadStore
}

func NewSlotQueries(store SlotReadStore) SlotQueries {
	return &slotQueriesImpl{store: store}
}

func (q *slotQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SlotView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *slotQueriesImpl) ListOwn(ctx context.Context, ownerID uuid.UUID) ([]*SlotView, error) {
	return q.store.FindByOwner(ctx, ownerID)
}

func (q *slotQueriesImpl) ListSwappable(ctx context.Context, excludeOwnerID uuid.UUID) ([]*SwappableSlotView, error) {
	return q.store.FindSwappableExcluding(ctx, excludeOwnerID)
}
