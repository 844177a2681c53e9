package commands

import (
	"context"
	"time"

	"slotswapper/internal/domain/slot"
	"slotswapper/internal/infra"
	"slotswapper/internal/pkg/clock"
	"slotswapper/internal/usecase/queries"
	"slotswapper/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateSlotParams struct {
	Title     string
	StartTime time.Time
	EndTime   time.Time
	Status    *slot.Status
}

type UpdateSlotParams struct {
	Title     *string
	StartTime *time.Time
	EndTime   *time.Time
	Status    *slot.Status
}

type SlotCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, params CreateSlotParams) (*queries.SlotView, error)
	Update(ctx context.Context, ownerID, slotID uuid.UUID, params UpdateSlotParams) (*queries.SlotView, error)
	Delete(ctx context.Context, ownerID, slotID uuid.UUID) error
}

type slotUseCaseImpl struct {
	uow         shared.UnitOfWork
	slotQueries queries.SlotQueries
	clock       clock.Clock
}

func NewSlotUseCase(uow shared.UnitOfWork, slotQueries queries.SlotQueries, clk clock.Clock) SlotCommands {
	return &slotUseCaseImpl{uow: uow, slotQueries: slotQueries, clock: clk}
}

func (uc *slotUseCaseImpl) Create(ctx context.Context, ownerID uuid.UUID, params CreateSlotParams) (*queries.SlotView, error) {
	status := slot.StatusBusy
	if params.Status != nil {
		status = *params.Status
	}

	entity, err := slot.New(ownerID, params.Title, params.StartTime, params.EndTime, status, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Slots().Create(ctx, entity)
	})
	if err != nil {
		return nil, err
	}

	return uc.slotQueries.GetByID(ctx, entity.ID())
}

// Update applies an owner edit. The domain entity enforces the state machine
// (SWAP_PENDING freezes the slot; status changes must be owner transitions)
// and the write is guarded by the status read in the same transaction, so a
// proposal racing this edit cannot slip in between.
func (uc *slotUseCaseImpl) Update(ctx context.Context, ownerID, slotID uuid.UUID, params UpdateSlotParams) (*queries.SlotView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Slots().Get(ctx, slotID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSlotNotFound
			}
			return err
		}
		if snap.OwnerID != ownerID {
			return ErrSlotNotFound
		}

		updated, err := snap.ToDomain().ApplyOwnerUpdate(params.Title, params.StartTime, params.EndTime, params.Status, uc.clock.Now())
		if err != nil {
			return err
		}

		if err := tx.Slots().Update(ctx, updated, snap.Status); err != nil {
			return markConflict(err, ErrSwapConflict)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.slotQueries.GetByID(ctx, slotID)
}

func (uc *slotUseCaseImpl) Delete(ctx context.Context, ownerID, slotID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Slots().Get(ctx, slotID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSlotNotFound
			}
			return err
		}
		if snap.OwnerID != ownerID {
			return ErrSlotNotFound
		}
		if err := snap.ToDomain().CanDelete(); err != nil {
			return err
		}

		if err := tx.Slots().Delete(ctx, slotID, snap.Status); err != nil {
			return markConflict(err, ErrSwapConflict)
		}
		return nil
	})
}
