package response

import (
	"time"

	"slotswapper/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SwapRequestResponse struct {
	ID             uuid.UUID    `json:"id"`
	Status         string       `json:"status"`
	RequesterID    uuid.UUID    `json:"requesterId"`
	RequesterName  string       `json:"requesterName"`
	RequesterEmail string       `json:"requesterEmail"`
	OwnerID        uuid.UUID    `json:"ownerId"`
	OwnerName      string       `json:"ownerName"`
	OwnerEmail     string       `json:"ownerEmail"`
	RequesterSlot  SlotResponse `json:"requesterSlot"`
	OwnerSlot      SlotResponse `json:"ownerSlot"`
	CreatedAt      time.Time    `json:"createdAt"`
	ResolvedAt     *time.Time   `json:"resolvedAt,omitempty"`
}

func FromSwapRequestView(v *queries.SwapRequestView) *SwapRequestResponse {
	var resp SwapRequestResponse
	// Copy cannot fail between addressable structs whose matching fields
	// share types.
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromSwapRequestViews(views []*queries.SwapRequestView) []*SwapRequestResponse {
	result := make([]*SwapRequestResponse, len(views))
	for i, v := range views {
		result[i] = FromSwapRequestView(v)
	}
	return result
}
