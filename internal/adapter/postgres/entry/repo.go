// Package entry persists assessment entries (one rating per session/topic pair).
package entry

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/akarpov/resilience-backend/internal/adapter/postgres"
	"github.com/akarpov/resilience-backend/internal/domain"
)

// Repo provides assessment entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const upsertEntrySQL = `
INSERT INTO assessment_entries (
    session_id, topic_id,
    current_maturity, current_is_na,
    desired_maturity, desired_is_na,
    computed_score, comment, evidence_links, progress_state
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (session_id, topic_id) DO UPDATE SET
    current_maturity = EXCLUDED.current_maturity,
    current_is_na    = EXCLUDED.current_is_na,
    desired_maturity = EXCLUDED.desired_maturity,
    desired_is_na    = EXCLUDED.desired_is_na,
    computed_score   = EXCLUDED.computed_score,
    comment          = EXCLUDED.comment,
    evidence_links   = EXCLUDED.evidence_links,
    progress_state   = EXCLUDED.progress_state,
    updated_at       = now()
RETURNING id, created_at, updated_at`

// Upsert inserts the entry, or replaces the existing entry for the same
// session/topic pair. RecordRating semantics: the latest write wins wholesale,
// fields absent from the new rating are cleared rather than merged.
func (r *Repo) Upsert(ctx context.Context, e domain.AssessmentEntry) (domain.AssessmentEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	err := querier.QueryRow(ctx, upsertEntrySQL,
		e.SessionID, e.TopicID,
		e.CurrentMaturity, e.CurrentIsNA,
		e.DesiredMaturity, e.DesiredIsNA,
		scoreParam(e.ComputedScore), e.Comment, joinLinks(e.EvidenceLinks), e.ProgressState.String(),
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return domain.AssessmentEntry{}, postgres.MapError(err, "assessment_entry", e.SessionID)
	}

	return e, nil
}

const entryColumns = `
    id, session_id, topic_id,
    current_maturity, current_is_na,
    desired_maturity, desired_is_na,
    computed_score::float8, comment, evidence_links, progress_state,
    created_at, updated_at`

const getEntrySQL = `
SELECT` + entryColumns + `
FROM assessment_entries
WHERE session_id = $1 AND topic_id = $2`

// GetBySessionAndTopic returns the entry for one session/topic pair,
// or domain.ErrNotFound.
func (r *Repo) GetBySessionAndTopic(ctx context.Context, sessionID, topicID uuid.UUID) (domain.AssessmentEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEntry(querier.QueryRow(ctx, getEntrySQL, sessionID, topicID))
	if err != nil {
		return domain.AssessmentEntry{}, postgres.MapError(err, "assessment_entry", sessionID)
	}

	return e, nil
}

const listBySessionSQL = `
SELECT` + entryColumns + `
FROM assessment_entries
WHERE session_id = $1
ORDER BY created_at, id`

// ListBySession returns every entry of one session.
func (r *Repo) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.AssessmentEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listBySessionSQL, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	result := []domain.AssessmentEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("list entries: scan: %w", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return result, nil
}

const listBySessionsSQL = `
SELECT` + entryColumns + `
FROM assessment_entries
WHERE session_id = ANY ($1)
ORDER BY session_id, created_at, id`

// ListBySessions returns every entry of the given sessions, in one query.
func (r *Repo) ListBySessions(ctx context.Context, sessionIDs []uuid.UUID) ([]domain.AssessmentEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listBySessionsSQL, sessionIDs)
	if err != nil {
		return nil, fmt.Errorf("list entries by sessions: %w", err)
	}
	defer rows.Close()

	result := []domain.AssessmentEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("list entries by sessions: scan: %w", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list entries by sessions: %w", err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (domain.AssessmentEntry, error) {
	var (
		e domain.AssessmentEntry

		currentMaturity, desiredMaturity pgtype.Int4
		computedScore                    pgtype.Float8
		comment, evidenceLinks           pgtype.Text
		progressState                    string
	)
	if err := row.Scan(
		&e.ID, &e.SessionID, &e.TopicID,
		&currentMaturity, &e.CurrentIsNA,
		&desiredMaturity, &e.DesiredIsNA,
		&computedScore, &comment, &evidenceLinks, &progressState,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return domain.AssessmentEntry{}, err
	}

	if currentMaturity.Valid {
		v := int(currentMaturity.Int32)
		e.CurrentMaturity = &v
	}
	if desiredMaturity.Valid {
		v := int(desiredMaturity.Int32)
		e.DesiredMaturity = &v
	}
	if computedScore.Valid {
		// ck_entry_scores guarantees the stored value is in range.
		s, err := domain.ScoreFromFloat(computedScore.Float64)
		if err != nil {
			return domain.AssessmentEntry{}, fmt.Errorf("computed_score out of range: %w", err)
		}
		e.ComputedScore = &s
	}
	if comment.Valid {
		e.Comment = &comment.String
	}
	if evidenceLinks.Valid {
		e.EvidenceLinks = splitLinks(evidenceLinks.String)
	}
	e.ProgressState = domain.ProgressState(progressState)

	return e, nil
}

// scoreParam converts a Score to the float value stored in the
// numeric(3, 2) column, keeping NULL for nil.
func scoreParam(s *domain.Score) *float64 {
	if s == nil {
		return nil
	}
	v := s.Float64()
	return &v
}

// Evidence links are stored newline-joined in a single text column.

func joinLinks(links []string) *string {
	if len(links) == 0 {
		return nil
	}
	joined := strings.Join(links, "\n")
	return &joined
}

func splitLinks(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
