package repository

import (
	"context"
	"errors"
	"time"

	"slotswapper/internal/domain/slot"
	"slotswapper/internal/infra"
	"slotswapper/internal/infra/db"
	"slotswapper/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

type SlotRepository struct {
	db db.DBTX
}

func NewSlotRepository(dbtx db.DBTX) *SlotRepository {
	return &SlotRepository{db: dbtx}
}

func (r *SlotRepository) Create(ctx context.Context, s *slot.Slot) error {
	const query = `
		INSERT INTO slots (id, owner_id, title, start_time, end_time, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		s.ID(), s.OwnerID(), s.Title(), s.StartTime(), s.EndTime(), s.Status().String(), s.CreatedAt(), s.UpdatedAt())
	if err != nil {
		return wrapPgErr("failed to create slot", err)
	}
	return nil
}

func (r *SlotRepository) Get(ctx context.Context, id uuid.UUID) (*shared.SlotSnapshot, error) {
	const query = `
		SELECT id, owner_id, title, start_time, end_time, status, created_at, updated_at
		FROM slots
		WHERE id = $1
	`

	var (
		snap   shared.SlotSnapshot
		status string
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.OwnerID, &snap.Title, &snap.StartTime, &snap.EndTime, &status, &snap.CreatedAt, &snap.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot", err)
	}
	snap.Status = slot.Status(status)
	return &snap, nil
}

// Update rewrites owner-editable fields, guarded by the status the caller
// read inside the same transaction. Zero rows means the row vanished or its
// status changed underneath us.
func (r *SlotRepository) Update(ctx context.Context, s *slot.Slot, expected slot.Status) error {
	const query = `
		UPDATE slots
		SET title = $1, start_time = $2, end_time = $3, status = $4, updated_at = $5
		WHERE id = $6 AND status = $7
	`

	tag, err := r.db.Exec(ctx, query,
		s.Title(), s.StartTime(), s.EndTime(), s.Status().String(), s.UpdatedAt(), s.ID(), expected.String())
	if err != nil {
		return wrapPgErr("failed to update slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

// UpdateStatus is the compare-and-swap the coordinator's atomicity rests on:
// the write only lands if the row still carries the expected status.
func (r *SlotRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to slot.Status, now time.Time) error {
	const query = `
		UPDATE slots
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
	`

	tag, err := r.db.Exec(ctx, query, to.String(), now, id, from.String())
	if err != nil {
		return wrapPgErr("failed to update slot status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

func (r *SlotRepository) TransferOwner(ctx context.Context, id, newOwnerID uuid.UUID, from, to slot.Status, now time.Time) error {
	const query = `
		UPDATE slots
		SET owner_id = $1, status = $2, updated_at = $3
		WHERE id = $4 AND status = $5
	`

	tag, err := r.db.Exec(ctx, query, newOwnerID, to.String(), now, id, from.String())
	if err != nil {
		return wrapPgErr("failed to transfer slot ownership", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

func (r *SlotRepository) Delete(ctx context.Context, id uuid.UUID, expected slot.Status) error {
	const query = `DELETE FROM slots WHERE id = $1 AND status = $2`

	tag, err := r.db.Exec(ctx, query, id, expected.String())
	if err != nil {
		return wrapPgErr("failed to delete slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

func wrapPgErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgErrCodeForeignKeyViolation:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
