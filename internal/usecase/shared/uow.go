package shared

import (
	"context"
	"time"

	"slotswapper/internal/domain/slot"
	"slotswapper/internal/domain/swap"

	"github.com/google/uuid"
)

// UnitOfWork runs coordinator writes as one atomic transaction. Every read a
// write decision depends on happens inside the same transaction, so stale-read
// races are resolved by the storage layer, not by in-process locking.
type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Slots() SlotRepository
	Swaps() SwapRepository
}

// SlotRepository is the write side of the Slot Store. Status-changing methods
// take the expected current status and must report a conflict when the row no
// longer matches it — that compare-and-swap is what keeps two concurrent
// proposals from both claiming the same slot.
type SlotRepository interface {
	Create(ctx context.Context, s *slot.Slot) error
	Get(ctx context.Context, id uuid.UUID) (*SlotSnapshot, error)
	Update(ctx context.Context, s *slot.Slot, expected slot.Status) error
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to slot.Status, now time.Time) error
	TransferOwner(ctx context.Context, id, newOwnerID uuid.UUID, from, to slot.Status, now time.Time) error
	Delete(ctx context.Context, id uuid.UUID, expected slot.Status) error
}

// SwapRepository is the write side of the Swap Request Store. Requests are
// append-and-resolve only; there is no delete.
type SwapRepository interface {
	Create(ctx context.Context, r *swap.Request) error
	Get(ctx context.Context, id uuid.UUID) (*SwapSnapshot, error)
	Resolve(ctx context.Context, id uuid.UUID, to swap.Status, now time.Time) error
}
