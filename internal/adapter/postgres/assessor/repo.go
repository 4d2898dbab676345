// Package assessor persists assessor accounts.
package assessor

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/akarpov/resilience-backend/internal/adapter/postgres"
	"github.com/akarpov/resilience-backend/internal/domain"
)

// Repo provides assessor account persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new assessor repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createAssessorSQL = `
INSERT INTO assessors (name, password_hash)
VALUES ($1, $2)
RETURNING id, created_at`

// Create inserts a new assessor account. A duplicate name yields
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, a domain.Assessor) (domain.Assessor, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	err := querier.QueryRow(ctx, createAssessorSQL, a.Name, a.PasswordHash).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return domain.Assessor{}, postgres.MapError(err, "assessor", uuid.Nil)
	}

	return a, nil
}

const getAssessorByNameSQL = `
SELECT id, name, password_hash, created_at
FROM assessors
WHERE name = $1`

// GetByName returns the assessor with the given name, or domain.ErrNotFound.
func (r *Repo) GetByName(ctx context.Context, name string) (domain.Assessor, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var a domain.Assessor
	err := querier.QueryRow(ctx, getAssessorByNameSQL, name).
		Scan(&a.ID, &a.Name, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		return domain.Assessor{}, postgres.MapError(err, "assessor", uuid.Nil)
	}

	return a, nil
}

const getAssessorByIDSQL = `
SELECT id, name, password_hash, created_at
FROM assessors
WHERE id = $1`

// GetByID returns the assessor with the given ID, or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Assessor, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var a domain.Assessor
	err := querier.QueryRow(ctx, getAssessorByIDSQL, id).
		Scan(&a.ID, &a.Name, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		return domain.Assessor{}, postgres.MapError(err, "assessor", id)
	}

	return a, nil
}
