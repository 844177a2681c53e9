//go:build unit

package slot_test

import (
	"testing"
	"time"

	"slotswapper/internal/domain/slot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTimes() (time.Time, time.Time) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return start, start.Add(time.Hour)
}

func TestNew(t *testing.T) {
	ownerID := uuid.New()
	now := time.Now()
	start, end := validTimes()

	t.Run("basic success case", func(t *testing.T) {
		actual, err := slot.New(ownerID, "Standup", start, end, slot.StatusBusy, now)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, ownerID, actual.OwnerID())
		assert.Equal(t, "Standup", actual.Title())
		assert.Equal(t, slot.StatusBusy, actual.Status())
		assert.Equal(t, now, actual.CreatedAt())
		assert.Equal(t, now, actual.UpdatedAt())
	})

	t.Run("title is trimmed", func(t *testing.T) {
		actual, err := slot.New(ownerID, "  Standup  ", start, end, slot.StatusSwappable, now)
		require.NoError(t, err)
		assert.Equal(t, "Standup", actual.Title())
	})

	cases := []struct {
		name   string
		title  string
		start  time.Time
		end    time.Time
		status slot.Status
		errIs  error
	}{
		{
			name:   "empty title",
			title:  "",
			start:  start,
			end:    end,
			status: slot.StatusBusy,
			errIs:  slot.ErrEmptyTitle,
		},
		{
			name:   "whitespace only title",
			title:  "   ",
			start:  start,
			end:    end,
			status: slot.StatusBusy,
			errIs:  slot.ErrEmptyTitle,
		},
		{
			name:   "start equals end",
			title:  "Standup",
			start:  start,
			end:    start,
			status: slot.StatusBusy,
			errIs:  slot.ErrInvalidTimeRange,
		},
		{
			name:   "start after end",
			title:  "Standup",
			start:  end,
			end:    start,
			status: slot.StatusBusy,
			errIs:  slot.ErrInvalidTimeRange,
		},
		{
			name:   "unknown status",
			title:  "Standup",
			start:  start,
			end:    end,
			status: slot.Status("FREE"),
			errIs:  slot.ErrInvalidStatus,
		},
		{
			name:   "swap pending is coordinator only",
			title:  "Standup",
			start:  start,
			end:    end,
			status: slot.StatusSwapPending,
			errIs:  slot.ErrCoordinatorOnly,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := slot.New(ownerID, c.title, c.start, c.end, c.status, now)
			require.Nil(t, actual)
			require.ErrorIs(t, err, c.errIs)
		})
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name  string
		from  slot.Status
		to    slot.Status
		actor slot.Actor
		want  bool
	}{
		{"owner opens slot for swapping", slot.StatusBusy, slot.StatusSwappable, slot.ActorOwner, true},
		{"owner withdraws slot", slot.StatusSwappable, slot.StatusBusy, slot.ActorOwner, true},
		{"owner cannot lock slot", slot.StatusSwappable, slot.StatusSwapPending, slot.ActorOwner, false},
		{"owner cannot unlock slot", slot.StatusSwapPending, slot.StatusSwappable, slot.ActorOwner, false},
		{"owner resubmits current status", slot.StatusBusy, slot.StatusBusy, slot.ActorOwner, true},
		{"owner resubmits swappable", slot.StatusSwappable, slot.StatusSwappable, slot.ActorOwner, true},
		{"no self transition while locked", slot.StatusSwapPending, slot.StatusSwapPending, slot.ActorOwner, false},
		{"coordinator locks slot", slot.StatusSwappable, slot.StatusSwapPending, slot.ActorCoordinator, true},
		{"coordinator settles accepted swap", slot.StatusSwapPending, slot.StatusBusy, slot.ActorCoordinator, true},
		{"coordinator releases rejected swap", slot.StatusSwapPending, slot.StatusSwappable, slot.ActorCoordinator, true},
		{"coordinator cannot lock busy slot", slot.StatusBusy, slot.StatusSwapPending, slot.ActorCoordinator, false},
		{"coordinator does not handle owner moves", slot.StatusBusy, slot.StatusSwappable, slot.ActorCoordinator, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, slot.CanTransition(c.from, c.to, c.actor))
		})
	}
}

func TestApplyOwnerUpdate(t *testing.T) {
	ownerID := uuid.New()
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := created.Add(24 * time.Hour)
	start, end := validTimes()

	newSlot := func(status slot.Status) *slot.Slot {
		return slot.Reconstruct(uuid.New(), ownerID, "Standup", start, end, status, created, created)
	}

	strPtr := func(s string) *string { return &s }
	statusPtr := func(s slot.Status) *slot.Status { return &s }

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		updated, err := newSlot(slot.StatusBusy).ApplyOwnerUpdate(strPtr("Retro"), nil, nil, nil, now)
		require.NoError(t, err)

		assert.Equal(t, "Retro", updated.Title())
		assert.Equal(t, start, updated.StartTime())
		assert.Equal(t, end, updated.EndTime())
		assert.Equal(t, slot.StatusBusy, updated.Status())
		assert.Equal(t, now, updated.UpdatedAt())
		assert.Equal(t, created, updated.CreatedAt())
	})

	t.Run("owner opens slot for swapping", func(t *testing.T) {
		updated, err := newSlot(slot.StatusBusy).ApplyOwnerUpdate(nil, nil, nil, statusPtr(slot.StatusSwappable), now)
		require.NoError(t, err)
		assert.Equal(t, slot.StatusSwappable, updated.Status())
	})

	t.Run("every edit is rejected while locked", func(t *testing.T) {
		updated, err := newSlot(slot.StatusSwapPending).ApplyOwnerUpdate(strPtr("Retro"), nil, nil, nil, now)
		require.Nil(t, updated)
		require.ErrorIs(t, err, slot.ErrLockedBySwap)
	})

	t.Run("owner cannot move slot into swap pending", func(t *testing.T) {
		updated, err := newSlot(slot.StatusSwappable).ApplyOwnerUpdate(nil, nil, nil, statusPtr(slot.StatusSwapPending), now)
		require.Nil(t, updated)
		require.ErrorIs(t, err, slot.ErrInvalidTransition)
	})

	t.Run("resubmitting the current status is not a transition", func(t *testing.T) {
		updated, err := newSlot(slot.StatusSwappable).ApplyOwnerUpdate(nil, nil, nil, statusPtr(slot.StatusSwappable), now)
		require.NoError(t, err)
		assert.Equal(t, slot.StatusSwappable, updated.Status())
	})

	t.Run("merged time range must stay valid", func(t *testing.T) {
		badStart := end.Add(time.Hour)
		updated, err := newSlot(slot.StatusBusy).ApplyOwnerUpdate(nil, &badStart, nil, nil, now)
		require.Nil(t, updated)
		require.ErrorIs(t, err, slot.ErrInvalidTimeRange)
	})

	t.Run("empty new title is rejected", func(t *testing.T) {
		updated, err := newSlot(slot.StatusBusy).ApplyOwnerUpdate(strPtr("  "), nil, nil, nil, now)
		require.Nil(t, updated)
		require.ErrorIs(t, err, slot.ErrEmptyTitle)
	})
}

func TestCanDelete(t *testing.T) {
	ownerID := uuid.New()
	start, end := validTimes()
	now := time.Now()

	t.Run("deletable while busy or swappable", func(t *testing.T) {
		for _, status := range []slot.Status{slot.StatusBusy, slot.StatusSwappable} {
			s := slot.Reconstruct(uuid.New(), ownerID, "Standup", start, end, status, now, now)
			assert.NoError(t, s.CanDelete())
		}
	})

	t.Run("locked slot cannot be deleted", func(t *testing.T) {
		s := slot.Reconstruct(uuid.New(), ownerID, "Standup", start, end, slot.StatusSwapPending, now, now)
		assert.ErrorIs(t, s.CanDelete(), slot.ErrLockedBySwap)
	})
}
