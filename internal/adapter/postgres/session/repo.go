// Package session persists assessment sessions.
package session

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/akarpov/resilience-backend/internal/adapter/postgres"
	"github.com/akarpov/resilience-backend/internal/domain"
)

// Repo provides assessment session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Filter narrows List results. Nil fields match everything.
type Filter struct {
	Assessor     *string
	Organization *string
}

const createSessionSQL = `
INSERT INTO assessment_sessions (name, assessor, organization, notes)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at`

// Create inserts a new session and returns it with its generated fields set.
func (r *Repo) Create(ctx context.Context, s domain.AssessmentSession) (domain.AssessmentSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	err := querier.QueryRow(ctx, createSessionSQL,
		s.Name, s.Assessor, s.Organization, s.Notes,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return domain.AssessmentSession{}, postgres.MapError(err, "assessment_session", uuid.Nil)
	}

	return s, nil
}

const getSessionSQL = `
SELECT id, name, assessor, organization, notes, created_at
FROM assessment_sessions
WHERE id = $1`

// GetByID returns the session with the given ID, or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.AssessmentSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		s                             domain.AssessmentSession
		assessor, organization, notes pgtype.Text
	)
	err := querier.QueryRow(ctx, getSessionSQL, id).Scan(
		&s.ID, &s.Name, &assessor, &organization, &notes, &s.CreatedAt,
	)
	if err != nil {
		return domain.AssessmentSession{}, postgres.MapError(err, "assessment_session", id)
	}

	if assessor.Valid {
		s.Assessor = &assessor.String
	}
	if organization.Valid {
		s.Organization = &organization.String
	}
	if notes.Valid {
		s.Notes = &notes.String
	}

	return s, nil
}

// List returns sessions matching the filter, newest first.
func (r *Repo) List(ctx context.Context, filter Filter) ([]domain.AssessmentSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	builder := psql.
		Select("id", "name", "assessor", "organization", "notes", "created_at").
		From("assessment_sessions").
		OrderBy("created_at DESC", "id")

	if filter.Assessor != nil {
		builder = builder.Where(sq.Eq{"assessor": *filter.Assessor})
	}
	if filter.Organization != nil {
		builder = builder.Where(sq.Eq{"organization": *filter.Organization})
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("list sessions: build: %w", err)
	}

	rows, err := querier.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	result := []domain.AssessmentSession{}
	for rows.Next() {
		var (
			s                             domain.AssessmentSession
			assessor, organization, notes pgtype.Text
		)
		if err := rows.Scan(&s.ID, &s.Name, &assessor, &organization, &notes, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("list sessions: scan: %w", err)
		}
		if assessor.Valid {
			s.Assessor = &assessor.String
		}
		if organization.Valid {
			s.Organization = &organization.String
		}
		if notes.Valid {
			s.Notes = &notes.String
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	return result, nil
}

const existingIDsSQL = `
SELECT id
FROM assessment_sessions
WHERE id = ANY ($1)`

// ExistingIDs reports which of the given session IDs are present.
func (r *Repo) ExistingIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, existingIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("existing session ids: %w", err)
	}
	defer rows.Close()

	found := map[uuid.UUID]bool{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("existing session ids: scan: %w", err)
		}
		found[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("existing session ids: %w", err)
	}

	return found, nil
}
