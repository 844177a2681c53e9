package readstore

import (
	"context"
	"errors"

	"slotswapper/internal/infra"
	"slotswapper/internal/infra/db"
	"slotswapper/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// swapRequestColumns expands both slots and both users in one query, the
// read-time join that replaces the original's per-reference population.
// Inner joins are safe here: requests are only read while pending or right
// after being written, before either slot can be deleted.
const swapRequestColumns = `
	SELECT
		r.id, r.status, r.created_at, r.resolved_at,
		r.requester_id, ru.name, ru.email,
		r.owner_id, ou.name, ou.email,
		rs.id, rs.owner_id, rs.title, rs.start_time, rs.end_time, rs.status, rs.created_at, rs.updated_at,
		os.id, os.owner_id, os.title, os.start_time, os.end_time, os.status, os.created_at, os.updated_at
	FROM swap_requests r
	JOIN users ru ON ru.id = r.requester_id
	JOIN users ou ON ou.id = r.owner_id
	JOIN slots rs ON rs.id = r.requester_slot_id
	JOIN slots os ON os.id = r.owner_slot_id
`

type SwapReadStore struct {
	db db.DBTX
}

func NewSwapReadStore(dbtx db.DBTX) *SwapReadStore {
	return &SwapReadStore{db: dbtx}
}

func (r *SwapReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SwapRequestView, error) {
	query := swapRequestColumns + ` WHERE r.id = $1`

	view, err := scanSwapRequestRow(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("swap request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find swap request by id", err)
	}
	return view, nil
}

func (r *SwapReadStore) FindPendingByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.SwapRequestView, error) {
	query := swapRequestColumns + ` WHERE r.owner_id = $1 AND r.status = 'PENDING' ORDER BY r.created_at DESC`
	return r.list(ctx, query, ownerID)
}

func (r *SwapReadStore) FindPendingByRequester(ctx context.Context, requesterID uuid.UUID) ([]*queries.SwapRequestView, error) {
	query := swapRequestColumns + ` WHERE r.requester_id = $1 AND r.status = 'PENDING' ORDER BY r.created_at DESC`
	return r.list(ctx, query, requesterID)
}

func (r *SwapReadStore) list(ctx context.Context, query string, arg any) ([]*queries.SwapRequestView, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list swap requests", err)
	}
	defer rows.Close()

	result := make([]*queries.SwapRequestView, 0)
	for rows.Next() {
		view, err := scanSwapRequestRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan swap request row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate swap request rows", err)
	}
	return result, nil
}

func scanSwapRequestRow(row pgx.Row) (*queries.SwapRequestView, error) {
	var view queries.SwapRequestView
	err := row.Scan(
		&view.ID, &view.Status, &view.CreatedAt, &view.ResolvedAt,
		&view.RequesterID, &view.RequesterName, &view.RequesterEmail,
		&view.OwnerID, &view.OwnerName, &view.OwnerEmail,
		&view.RequesterSlot.ID, &view.RequesterSlot.OwnerID, &view.RequesterSlot.Title,
		&view.RequesterSlot.StartTime, &view.RequesterSlot.EndTime, &view.RequesterSlot.Status,
		&view.RequesterSlot.CreatedAt, &view.RequesterSlot.UpdatedAt,
		&view.OwnerSlot.ID, &view.OwnerSlot.OwnerID, &view.OwnerSlot.Title,
		&view.OwnerSlot.StartTime, &view.OwnerSlot.EndTime, &view.OwnerSlot.Status,
		&view.OwnerSlot.CreatedAt, &view.OwnerSlot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
