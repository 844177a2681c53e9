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

type SlotReadStore struct {
	db db.DBTX
}

func NewSlotReadStore(dbtx db.DBTX) *SlotReadStore {
	return &SlotReadStore{db: dbtx}
}

func (r *SlotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SlotView, error) {
	const query = `
		SELECT id, owner_id, title, start_time, end_time, status, created_at, updated_at
		FROM slots
		WHERE id = $1
	`

	var view queries.SlotView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.OwnerID, &view.Title, &view.StartTime, &view.EndTime, &view.Status, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot by id", err)
	}
	return &view, nil
}

func (r *SlotReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.SlotView, error) {
	const query = `
		SELECT id, owner_id, title, start_time, end_time, status, created_at, updated_at
		FROM slots
		WHERE owner_id = $1
		ORDER BY start_time ASC
	`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots by owner", err)
	}
	defer rows.Close()

	result := make([]*queries.SlotView, 0)
	for rows.Next() {
		var view queries.SlotView
		if err := rows.Scan(
			&view.ID, &view.OwnerID, &view.Title, &view.StartTime, &view.EndTime, &view.Status, &view.CreatedAt, &view.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slot rows", err)
	}
	return result, nil
}

func (r *SlotReadStore) FindSwappableExcluding(ctx context.Context, excludeOwnerID uuid.UUID) ([]*queries.SwappableSlotView, error) {
	const query = `
		SELECT s.id, s.owner_id, u.name, u.email, s.title, s.start_time, s.end_time, s.status
		FROM slots s
		JOIN users u ON u.id = s.owner_id
		WHERE s.owner_id <> $1 AND s.status = 'SWAPPABLE'
		ORDER BY s.start_time ASC
	`

	rows, err := r.db.Query(ctx, query, excludeOwnerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list swappable slots", err)
	}
	defer rows.Close()

	result := make([]*queries.SwappableSlotView, 0)
	for rows.Next() {
		var view queries.SwappableSlotView
		if err := rows.Scan(
			&view.ID, &view.OwnerID, &view.OwnerName, &view.OwnerEmail, &view.Title, &view.StartTime, &view.EndTime, &view.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan swappable slot row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate swappable slot rows", err)
	}
	return result, nil
}
