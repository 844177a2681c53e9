package request

import (
	"time"

	"slotswapper/internal/domain/slot"
)

type CreateSlotRequest struct {
	Title     string    `json:"title" binding:"required"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
	Status    *string   `json:"status,omitempty"`
}

type UpdateSlotRequest struct {
	Title     *string    `json:"title,omitempty"`
	StartTime *time.Time `json:"startTime,omitempty"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	Status    *string    `json:"status,omitempty"`
}

// ParseStatus validates the optional status string against the slot state set.
func ParseStatus(raw *string) (*slot.Status, error) {
	if raw == nil {
		return nil, nil
	}
	status, err := slot.NewStatus(*raw)
	if err != nil {
		return nil, err
	}
	return &status, nil
}
