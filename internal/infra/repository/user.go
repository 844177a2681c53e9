package repository

import (
	"context"
	"errors"
	"time"

	"slotswapper/internal/infra"
	"slotswapper/internal/infra/db"
	"slotswapper/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, name, email, passwordHash string, now time.Time) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, name, email, passwordHash, now).Scan(&id); err != nil {
		return uuid.Nil, wrapPgErr("failed to create user", err)
	}
	return id, nil
}

// FindByEmail returns the user view together with the stored password hash;
// the hash never travels further than the auth usecase.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*queries.UserView, string, error) {
	const query = `
		SELECT id, name, email, password_hash
		FROM users
		WHERE email = $1
	`

	var (
		view queries.UserView
		hash string
	)
	err := r.db.QueryRow(ctx, query, email).Scan(&view.ID, &view.Name, &view.Email, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &view, hash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	const query = `
		SELECT id, name, email
		FROM users
		WHERE id = $1
	`

	var view queries.UserView
	err := r.db.QueryRow(ctx, query, id).Scan(&view.ID, &view.Name, &view.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return &view, nil
}
