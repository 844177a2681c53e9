package repository

import (
	"context"
	"errors"
	"time"

	"slotswapper/internal/domain/swap"
	"slotswapper/internal/infra"
	"slotswapper/internal/infra/db"
	"slotswapper/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SwapRepository struct {
	db db.DBTX
}

func NewSwapRepository(dbtx db.DBTX) *SwapRepository {
	return &SwapRepository{db: dbtx}
}

func (r *SwapRepository) Create(ctx context.Context, req *swap.Request) error {
	const query = `
		INSERT INTO swap_requests (id, requester_id, owner_id, requester_slot_id, owner_slot_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		req.ID(), req.RequesterID(), req.OwnerID(), req.RequesterSlotID(), req.OwnerSlotID(), req.Status().String(), req.CreatedAt())
	if err != nil {
		return wrapPgErr("failed to create swap request", err)
	}
	return nil
}

func (r *SwapRepository) Get(ctx context.Context, id uuid.UUID) (*shared.SwapSnapshot, error) {
	const query = `
		SELECT id, requester_id, owner_id, requester_slot_id, owner_slot_id, status, created_at, resolved_at
		FROM swap_requests
		WHERE id = $1
	`

	var (
		snap   shared.SwapSnapshot
		status string
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.RequesterID, &snap.OwnerID, &snap.RequesterSlotID, &snap.OwnerSlotID, &status, &snap.CreatedAt, &snap.ResolvedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("swap request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find swap request", err)
	}
	snap.Status = swap.Status(status)
	return &snap, nil
}

// Resolve moves a PENDING request to a terminal status. The status guard in
// the WHERE clause makes a lost double-resolve race surface as a conflict
// instead of overwriting the first resolution.
func (r *SwapRepository) Resolve(ctx context.Context, id uuid.UUID, to swap.Status, now time.Time) error {
	const query = `
		UPDATE swap_requests
		SET status = $1, resolved_at = $2
		WHERE id = $3 AND status = $4
	`

	tag, err := r.db.Exec(ctx, query, to.String(), now, id, swap.StatusPending.String())
	if err != nil {
		return wrapPgErr("failed to resolve swap request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("swap request already resolved", nil, infra.KindConflict)
	}
	return nil
}
