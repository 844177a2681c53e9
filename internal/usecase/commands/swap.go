package commands

import (
	"context"

	"slotswapper/internal/domain/slot"
	"slotswapper/internal/domain/swap"
	"slotswapper/internal/infra"
	"slotswapper/internal/pkg/clock"
	"slotswapper/internal/pkg/errs"
	"slotswapper/internal/usecase/queries"
	"slotswapper/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSlotNotFound     = errs.New("slot not found")
	ErrSlotNotSwappable = errs.New("slot is not swappable")
	ErrSelfSwap         = errs.New("cannot swap with your own slot")
	ErrRequestNotFound  = errs.New("swap request not found")
	ErrNotRequestOwner  = errs.New("not the owner of this swap request")
	ErrAlreadyResolved  = errs.New("swap request already resolved")
	ErrSwapConflict     = errs.New("swap conflicts with a concurrent operation")
)

type SwapCommands interface {
	Propose(ctx context.Context, requesterID, requesterSlotID, ownerSlotID uuid.UUID) (*queries.SwapRequestView, error)
	Respond(ctx context.Context, responderID, requestID uuid.UUID, accept bool) (*queries.SwapRequestView, error)
}

// swapUseCaseImpl is the swap coordinator. Each operation runs as one
// transaction: every read it decides on and every write it performs either
// all become visible together or not at all.
type swapUseCaseImpl struct {
	uow         shared.UnitOfWork
	swapQueries queries.SwapQueries
	clock       clock.Clock
}

func NewSwapUseCase(uow shared.UnitOfWork, swapQueries queries.SwapQueries, clk clock.Clock) SwapCommands {
	return &swapUseCaseImpl{uow: uow, swapQueries: swapQueries, clock: clk}
}

func (uc *swapUseCaseImpl) Propose(ctx context.Context, requesterID, requesterSlotID, ownerSlotID uuid.UUID) (*queries.SwapRequestView, error) {
	now := uc.clock.Now()

	var requestID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		mine, err := tx.Slots().Get(ctx, requesterSlotID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSlotNotFound
			}
			return err
		}
		// A slot the caller does not own reads as absent, so slot existence
		// cannot be probed through other users' identifiers.
		if mine.OwnerID != requesterID {
			return ErrSlotNotFound
		}
		if mine.Status != slot.StatusSwappable {
			return ErrSlotNotSwappable
		}

		theirs, err := tx.Slots().Get(ctx, ownerSlotID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSlotNotFound
			}
			return err
		}
		if theirs.Status != slot.StatusSwappable {
			return ErrSlotNotSwappable
		}
		if theirs.OwnerID == requesterID {
			return ErrSelfSwap
		}

		request, err := swap.NewRequest(requesterID, mine.ID, theirs.OwnerID, theirs.ID, now)
		if err != nil {
			return err
		}

		// Claim both slots with status guards. A concurrent proposal that
		// already claimed either slot makes the guard miss, which aborts and
		// rolls back this whole transaction.
		if err := tx.Slots().UpdateStatus(ctx, mine.ID, slot.StatusSwappable, slot.StatusSwapPending, now); err != nil {
			return markConflict(err, ErrSlotNotSwappable)
		}
		if err := tx.Slots().UpdateStatus(ctx, theirs.ID, slot.StatusSwappable, slot.StatusSwapPending, now); err != nil {
			return markConflict(err, ErrSlotNotSwappable)
		}

		if err := tx.Swaps().Create(ctx, request); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrSwapConflict
			}
			return err
		}

		requestID = request.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The view is read after commit; an error past this point means the
	// proposal applied but could not be reported back.
	return uc.swapQueries.GetByID(ctx, requestID)
}

func (uc *swapUseCaseImpl) Respond(ctx context.Context, responderID, requestID uuid.UUID, accept bool) (*queries.SwapRequestView, error) {
	now := uc.clock.Now()

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		request, err := tx.Swaps().Get(ctx, requestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRequestNotFound
			}
			return err
		}
		if request.OwnerID != responderID {
			return ErrNotRequestOwner
		}
		if request.Status != swap.StatusPending {
			return ErrAlreadyResolved
		}

		// Both slots must still exist; a missing one is a non-retryable
		// data-loss condition, not a state conflict.
		requesterSlot, err := tx.Slots().Get(ctx, request.RequesterSlotID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSlotNotFound
			}
			return err
		}
		ownerSlot, err := tx.Slots().Get(ctx, request.OwnerSlotID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSlotNotFound
			}
			return err
		}

		if accept {
			// Exchange owners and park both slots as BUSY.
			if err := tx.Slots().TransferOwner(ctx, requesterSlot.ID, request.OwnerID, slot.StatusSwapPending, slot.StatusBusy, now); err != nil {
				return markConflict(err, ErrSwapConflict)
			}
			if err := tx.Slots().TransferOwner(ctx, ownerSlot.ID, request.RequesterID, slot.StatusSwapPending, slot.StatusBusy, now); err != nil {
				return markConflict(err, ErrSwapConflict)
			}
			if err := tx.Swaps().Resolve(ctx, request.ID, swap.StatusAccepted, now); err != nil {
				return markConflict(err, ErrAlreadyResolved)
			}
			return nil
		}

		// Reject: release both slots back to the open pool.
		if err := tx.Slots().UpdateStatus(ctx, requesterSlot.ID, slot.StatusSwapPending, slot.StatusSwappable, now); err != nil {
			return markConflict(err, ErrSwapConflict)
		}
		if err := tx.Slots().UpdateStatus(ctx, ownerSlot.ID, slot.StatusSwapPending, slot.StatusSwappable, now); err != nil {
			return markConflict(err, ErrSwapConflict)
		}
		if err := tx.Swaps().Resolve(ctx, request.ID, swap.StatusRejected, now); err != nil {
			return markConflict(err, ErrAlreadyResolved)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Post-commit read, same as Propose: a failure here does not undo the
	// resolution.
	return uc.swapQueries.GetByID(ctx, requestID)
}

// markConflict translates a CAS miss into the caller-facing sentinel; other
// repository failures pass through untouched.
func markConflict(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindConflict) {
		return sentinel
	}
	return err
}
