package response

import (
	"time"

	"slotswapper/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SlotResponse struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"ownerId"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SwappableSlotResponse struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"ownerId"`
	OwnerName  string    `json:"ownerName"`
	OwnerEmail string    `json:"ownerEmail"`
	Title      string    `json:"title"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Status     string    `json:"status"`
}

func FromSlotView(v *queries.SlotView) *SlotResponse {
	var resp SlotResponse
	// Copy cannot fail between addressable structs whose matching fields
	// share types.
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromSlotViews(views []*queries.SlotView) []*SlotResponse {
	result := make([]*SlotResponse, len(views))
	for i, v := range views {
		result[i] = FromSlotView(v)
	}
	return result
}

func FromSwappableSlotView(v *queries.SwappableSlotView) *SwappableSlotResponse {
	var resp SwappableSlotResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromSwappableSlotViews(views []*queries.SwappableSlotView) []*SwappableSlotResponse {
	result := make([]*SwappableSlotResponse, len(views))
	for i, v := range views {
		result[i] = FromSwappableSlotView(v)
	}
	return result
}
