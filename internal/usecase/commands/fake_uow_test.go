//go:build unit

package commands_test

import (
	"context"
	"errors"
	"time"

	"slotswapper/internal/domain/slot"
	"slotswapper/internal/domain/swap"
	"slotswapper/internal/infra"
	"slotswapper/internal/usecase/queries"
	"slotswapper/internal/usecase/shared"

	"github.com/google/uuid"
)

var errNoRows = errors.New("no rows")

// fakeStore is an in-memory stand-in for the database. The fake unit of work
// hands transactions a deep copy and commits it back only on success, so
// rollback behavior is observable in tests.
type fakeStore struct {
	slots map[uuid.UUID]shared.SlotSnapshot
	swaps map[uuid.UUID]shared.SwapSnapshot
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		slots: make(map[uuid.UUID]shared.SlotSnapshot),
		swaps: make(map[uuid.UUID]shared.SwapSnapshot),
	}
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	for id, snap := range s.slots {
		c.slots[id] = snap
	}
	for id, snap := range s.swaps {
		c.swaps[id] = snap
	}
	return c
}

func (s *fakeStore) addSlot(ownerID uuid.UUID, status slot.Status) uuid.UUID {
	id := uuid.New()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s.slots[id] = shared.SlotSnapshot{
		ID:        id,
		OwnerID:   ownerID,
		Title:     "Slot " + id.String()[:8],
		StartTime: now,
		EndTime:   now.Add(time.Hour),
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return id
}

type fakeUoW struct {
	store *fakeStore
}

func newFakeUoW(store *fakeStore) *fakeUoW {
	return &fakeUoW{store: store}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	work := u.store.clone()
	if err := fn(ctx, &fakeTx{store: work}); err != nil {
		return err
	}
	*u.store = *work
	return nil
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Slots() shared.SlotRepository { return &fakeSlotRepo{store: t.store} }
func (t *fakeTx) Swaps() shared.SwapRepository { return &fakeSwapRepo{store: t.store} }

type fakeSlotRepo struct {
	store *fakeStore
}

func (r *fakeSlotRepo) Create(_ context.Context, s *slot.Slot) error {
	r.store.slots[s.ID()] = shared.SlotSnapshot{
		ID:        s.ID(),
		OwnerID:   s.OwnerID(),
		Title:     s.Title(),
		StartTime: s.StartTime(),
		EndTime:   s.EndTime(),
		Status:    s.Status(),
		CreatedAt: s.CreatedAt(),
		UpdatedAt: s.UpdatedAt(),
	}
	return nil
}

func (r *fakeSlotRepo) Get(_ context.Context, id uuid.UUID) (*shared.SlotSnapshot, error) {
	snap, ok := r.store.slots[id]
	if !ok {
		return nil, infra.WrapRepoErr("slot not found", errNoRows, infra.KindNotFound)
	}
	return &snap, nil
}

func (r *fakeSlotRepo) Update(_ context.Context, s *slot.Slot, expected slot.Status) error {
	snap, ok := r.store.slots[s.ID()]
	if !ok || snap.Status != expected {
		return infra.WrapRepoErr("slot status changed", errNoRows, infra.KindConflict)
	}
	snap.Title = s.Title()
	snap.StartTime = s.StartTime()
	snap.EndTime = s.EndTime()
	snap.Status = s.Status()
	snap.UpdatedAt = s.UpdatedAt()
	r.store.slots[s.ID()] = snap
	return nil
}

func (r *fakeSlotRepo) UpdateStatus(_ context.Context, id uuid.UUID, from, to slot.Status, now time.Time) error {
	snap, ok := r.store.slots[id]
	if !ok || snap.Status != from {
		return infra.WrapRepoErr("slot status changed", errNoRows, infra.KindConflict)
	}
	snap.Status = to
	snap.UpdatedAt = now
	r.store.slots[id] = snap
	return nil
}

func (r *fakeSlotRepo) TransferOwner(_ context.Context, id, newOwnerID uuid.UUID, from, to slot.Status, now time.Time) error {
	snap, ok := r.store.slots[id]
	if !ok || snap.Status != from {
		return infra.WrapRepoErr("slot status changed", errNoRows, infra.KindConflict)
	}
	snap.OwnerID = newOwnerID
	snap.Status = to
	snap.UpdatedAt = now
	r.store.slots[id] = snap
	return nil
}

func (r *fakeSlotRepo) Delete(_ context.Context, id uuid.UUID, expected slot.Status) error {
	snap, ok := r.store.slots[id]
	if !ok || snap.Status != expected {
		return infra.WrapRepoErr("slot status changed", errNoRows, infra.KindConflict)
	}
	delete(r.store.slots, id)
	return nil
}

type fakeSwapRepo struct {
	store *fakeStore
}

func (r *fakeSwapRepo) Create(_ context.Context, req *swap.Request) error {
	// Mirrors the partial unique indexes on pending slot references.
	for _, existing := range r.store.swaps {
		if existing.Status != swap.StatusPending {
			continue
		}
		for _, slotID := range []uuid.UUID{req.RequesterSlotID(), req.OwnerSlotID()} {
			if existing.RequesterSlotID == slotID || existing.OwnerSlotID == slotID {
				return infra.WrapRepoErr("slot already has a pending request", errNoRows, infra.KindDuplicateKey)
			}
		}
	}
	r.store.swaps[req.ID()] = shared.SwapSnapshot{
		ID:              req.ID(),
		RequesterID:     req.RequesterID(),
		OwnerID:         req.OwnerID(),
		RequesterSlotID: req.RequesterSlotID(),
		OwnerSlotID:     req.OwnerSlotID(),
		Status:          req.Status(),
		CreatedAt:       req.CreatedAt(),
		ResolvedAt:      req.ResolvedAt(),
	}
	return nil
}

func (r *fakeSwapRepo) Get(_ context.Context, id uuid.UUID) (*shared.SwapSnapshot, error) {
	snap, ok := r.store.swaps[id]
	if !ok {
		return nil, infra.WrapRepoErr("swap request not found", errNoRows, infra.KindNotFound)
	}
	return &snap, nil
}

func (r *fakeSwapRepo) Resolve(_ context.Context, id uuid.UUID, to swap.Status, now time.Time) error {
	snap, ok := r.store.swaps[id]
	if !ok || snap.Status != swap.StatusPending {
		return infra.WrapRepoErr("swap request already resolved", errNoRows, infra.KindConflict)
	}
	snap.Status = to
	snap.ResolvedAt = &now
	r.store.swaps[id] = snap
	return nil
}

// Read-side fakes assembled from the same store so the commands' post-commit
// reads observe committed state only.

type fakeSlotQueries struct {
	store *fakeStore
}

func (q *fakeSlotQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.SlotView, error) {
	snap, ok := q.store.slots[id]
	if !ok {
		return nil, queries.ErrSlotNotFound
	}
	view := slotViewFrom(snap)
	return &view, nil
}

func (q *fakeSlotQueries) ListOwn(_ context.Context, ownerID uuid.UUID) ([]*queries.SlotView, error) {
	result := make([]*queries.SlotView, 0)
	for _, snap := range q.store.slots {
		if snap.OwnerID == ownerID {
			view := slotViewFrom(snap)
			result = append(result, &view)
		}
	}
	return result, nil
}

func (q *fakeSlotQueries) ListSwappable(_ context.Context, excludeOwnerID uuid.UUID) ([]*queries.SwappableSlotView, error) {
	result := make([]*queries.SwappableSlotView, 0)
	for _, snap := range q.store.slots {
		if snap.Status == slot.StatusSwappable && snap.OwnerID != excludeOwnerID {
			result = append(result, &queries.SwappableSlotView{
				ID:        snap.ID,
				OwnerID:   snap.OwnerID,
				Title:     snap.Title,
				StartTime: snap.StartTime,
				EndTime:   snap.EndTime,
				Status:    snap.Status.String(),
			})
		}
	}
	return result, nil
}

type fakeSwapQueries struct {
	store *fakeStore
}

func (q *fakeSwapQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.SwapRequestView, error) {
	snap, ok := q.store.swaps[id]
	if !ok {
		return nil, queries.ErrSwapRequestNotFound
	}
	return q.viewFrom(snap), nil
}

func (q *fakeSwapQueries) ListIncoming(_ context.Context, ownerID uuid.UUID) ([]*queries.SwapRequestView, error) {
	result := make([]*queries.SwapRequestView, 0)
	for _, snap := range q.store.swaps {
		if snap.OwnerID == ownerID && snap.Status == swap.StatusPending {
			result = append(result, q.viewFrom(snap))
		}
	}
	return result, nil
}

func (q *fakeSwapQueries) ListOutgoing(_ context.Context, requesterID uuid.UUID) ([]*queries.SwapRequestView, error) {
	result := make([]*queries.SwapRequestView, 0)
	for _, snap := range q.store.swaps {
		if snap.RequesterID == requesterID && snap.Status == swap.StatusPending {
			result = append(result, q.viewFrom(snap))
		}
	}
	return result, nil
}

func (q *fakeSwapQueries) viewFrom(snap shared.SwapSnapshot) *queries.SwapRequestView {
	view := &queries.SwapRequestView{
		ID:          snap.ID,
		Status:      snap.Status.String(),
		RequesterID: snap.RequesterID,
		OwnerID:     snap.OwnerID,
		CreatedAt:   snap.CreatedAt,
		ResolvedAt:  snap.ResolvedAt,
	}
	if s, ok := q.store.slots[snap.RequesterSlotID]; ok {
		view.RequesterSlot = slotViewFrom(s)
	}
	if s, ok := q.store.slots[snap.OwnerSlotID]; ok {
		view.OwnerSlot = slotViewFrom(s)
	}
	return view
}

func slotViewFrom(snap shared.SlotSnapshot) queries.SlotView {
	return queries.SlotView{
		ID:        snap.ID,
		OwnerID:   snap.OwnerID,
		Title:     snap.Title,
		StartTime: snap.StartTime,
		EndTime:   snap.EndTime,
		Status:    snap.Status.String(),
		CreatedAt: snap.CreatedAt,
		UpdatedAt: snap.UpdatedAt,
	}
}
