package shared

import (
	"time"

	"slotswapper/internal/domain/slot"
	"slotswapper/internal/domain/swap"

	"github.com/google/uuid"
)

// Write-side snapshots keep the coordinator on identifiers and statuses only;
// expanded views belong to the read side.
type SlotSnapshot struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Title     string
	StartTime time.Time
	EndTime   time.Time
	Status    slot.Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SwapSnapshot struct {
	ID              uuid.UUID
	RequesterID     uuid.UUID
	OwnerID         uuid.UUID
	RequesterSlotID uuid.UUID
	OwnerSlotID     uuid.UUID
	Status          swap.Status
	CreatedAt       time.Time
	ResolvedAt      *time.Time
}

func (s *SlotSnapshot) ToDomain() *slot.Slot {
	return slot.Reconstruct(s.ID, s.OwnerID, s.Title, s.StartTime, s.EndTime, s.Status, s.CreatedAt, s.UpdatedAt)
}

func (s *SwapSnapshot) ToDomain() *swap.Request {
	return swap.Reconstruct(s.ID, s.RequesterID, s.OwnerID, s.RequesterSlotID, s.OwnerSlotID, s.Status, s.CreatedAt, s.ResolvedAt)
}
