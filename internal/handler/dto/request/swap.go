package request

import (
	"github.com/google/uuid"
)

type CreateSwapRequest struct {
	MySlotID    uuid.UUID `json:"mySlotId" binding:"required"`
	TheirSlotID uuid.UUID `json:"theirSlotId" binding:"required"`
}

// Accepted is a pointer so an explicit false survives required validation.
type SwapResponseRequest struct {
	Accepted *bool `json:"accepted" binding:"required"`
}
