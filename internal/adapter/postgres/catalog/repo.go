// Package catalog implements the read side of the assessment catalog
// (dimensions, themes, topics, rating scale) plus the idempotent writes
// used by seeding. The catalog is created once and read-only afterwards,
// so there are no update or delete operations.
package catalog

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/akarpov/resilience-backend/internal/adapter/postgres"
	"github.com/akarpov/resilience-backend/internal/domain"
)

// Repo provides catalog persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const listDimensionsSQL = `
SELECT id, name, description, created_at
FROM dimensions
ORDER BY name`

// ListDimensions returns all dimensions ordered by name.
// Returns an empty slice (not nil) for an empty catalog.
func (r *Repo) ListDimensions(ctx context.Context) ([]domain.Dimension, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listDimensionsSQL)
	if err != nil {
		return nil, fmt.Errorf("list dimensions: %w", err)
	}
	defer rows.Close()

	result := []domain.Dimension{}
	for rows.Next() {
		var (
			d           domain.Dimension
			description pgtype.Text
		)
		if err := rows.Scan(&d.ID, &d.Name, &description, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("list dimensions: scan: %w", err)
		}
		if description.Valid {
			d.Description = &description.String
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list dimensions: %w", err)
	}

	return result, nil
}

const listThemesSQL = `
SELECT id, dimension_id, name, description, category, created_at
FROM themes
ORDER BY name`

// ListThemes returns all themes ordered by name.
func (r *Repo) ListThemes(ctx context.Context) ([]domain.Theme, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listThemesSQL)
	if err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}
	defer rows.Close()

	result := []domain.Theme{}
	for rows.Next() {
		t, err := scanTheme(rows)
		if err != nil {
			return nil, fmt.Errorf("list themes: scan: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}

	return result, nil
}

const listTopicsSQL = `
SELECT id, theme_id, name, impact, benefits, basic, advanced, evidence, regulations, created_at
FROM topics
ORDER BY name`

// ListTopics returns all topics ordered by name.
func (r *Repo) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listTopicsSQL)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	defer rows.Close()

	result := []domain.Topic{}
	for rows.Next() {
		t, err := scanTopic(rows)
		if err != nil {
			return nil, fmt.Errorf("list topics: scan: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	return result, nil
}

const listTopicIDsSQL = `SELECT id FROM topics ORDER BY name`

// ListTopicIDs returns the IDs of every topic in the catalog, name-ordered.
func (r *Repo) ListTopicIDs(ctx context.Context) ([]uuid.UUID, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listTopicIDsSQL)
	if err != nil {
		return nil, fmt.Errorf("list topic ids: %w", err)
	}
	defer rows.Close()

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("list topic ids: scan: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list topic ids: %w", err)
	}

	return ids, nil
}

const countTopicsByThemeSQL = `
SELECT theme_id, count(*)
FROM topics
GROUP BY theme_id`

// CountTopicsByTheme returns the number of topics per theme. Themes with no
// topics are absent from the map; callers must treat a missing key as zero.
func (r *Repo) CountTopicsByTheme(ctx context.Context) (map[uuid.UUID]int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, countTopicsByThemeSQL)
	if err != nil {
		return nil, fmt.Errorf("count topics by theme: %w", err)
	}
	defer rows.Close()

	counts := map[uuid.UUID]int{}
	for rows.Next() {
		var (
			themeID uuid.UUID
			count   int
		)
		if err := rows.Scan(&themeID, &count); err != nil {
			return nil, fmt.Errorf("count topics by theme: scan: %w", err)
		}
		counts[themeID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count topics by theme: %w", err)
	}

	return counts, nil
}

const countTopicsSQL = `SELECT count(*) FROM topics`

// CountTopics returns the total number of topics in the catalog.
func (r *Repo) CountTopics(ctx context.Context) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countTopicsSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("count topics: %w", err)
	}

	return count, nil
}

const ratingScaleSQL = `
SELECT level, label, description
FROM rating_scale
ORDER BY level`

// RatingScale returns the 5-level rating scale ordered by level.
func (r *Repo) RatingScale(ctx context.Context) ([]domain.RatingScaleLevel, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, ratingScaleSQL)
	if err != nil {
		return nil, fmt.Errorf("rating scale: %w", err)
	}
	defer rows.Close()

	result := []domain.RatingScaleLevel{}
	for rows.Next() {
		var (
			l           domain.RatingScaleLevel
			description pgtype.Text
		)
		if err := rows.Scan(&l.Level, &l.Label, &description); err != nil {
			return nil, fmt.Errorf("rating scale: scan: %w", err)
		}
		if description.Valid {
			l.Description = &description.String
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rating scale: %w", err)
	}

	return result, nil
}

const listExplanationsSQL = `
SELECT id, topic_id, level, text
FROM explanations
WHERE topic_id = $1
ORDER BY level`

// ListExplanations returns the level guidance bullets for a topic.
func (r *Repo) ListExplanations(ctx context.Context, topicID uuid.UUID) ([]domain.Explanation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listExplanationsSQL, topicID)
	if err != nil {
		return nil, fmt.Errorf("list explanations: %w", err)
	}
	defer rows.Close()

	result := []domain.Explanation{}
	for rows.Next() {
		var e domain.Explanation
		if err := rows.Scan(&e.ID, &e.TopicID, &e.Level, &e.Text); err != nil {
			return nil, fmt.Errorf("list explanations: scan: %w", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list explanations: %w", err)
	}

	return result, nil
}

const listThemeGuidanceSQL = `
SELECT theme_id, level, guidance
FROM theme_level_guidance
ORDER BY theme_id, level`

// ListThemeLevelGuidance returns every per-level guidance text, across all themes.
func (r *Repo) ListThemeLevelGuidance(ctx context.Context) ([]domain.ThemeLevelGuidance, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listThemeGuidanceSQL)
	if err != nil {
		return nil, fmt.Errorf("list theme guidance: %w", err)
	}
	defer rows.Close()

	result := []domain.ThemeLevelGuidance{}
	for rows.Next() {
		var g domain.ThemeLevelGuidance
		if err := rows.Scan(&g.ThemeID, &g.Level, &g.Text); err != nil {
			return nil, fmt.Errorf("list theme guidance: scan: %w", err)
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list theme guidance: %w", err)
	}

	return result, nil
}

const listAllExplanationsSQL = `
SELECT id, topic_id, level, text
FROM explanations
ORDER BY topic_id, level`

// ListAllExplanations returns every guidance bullet, across all topics.
func (r *Repo) ListAllExplanations(ctx context.Context) ([]domain.Explanation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listAllExplanationsSQL)
	if err != nil {
		return nil, fmt.Errorf("list all explanations: %w", err)
	}
	defer rows.Close()

	result := []domain.Explanation{}
	for rows.Next() {
		var e domain.Explanation
		if err := rows.Scan(&e.ID, &e.TopicID, &e.Level, &e.Text); err != nil {
			return nil, fmt.Errorf("list all explanations: scan: %w", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list all explanations: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Seeding writes (idempotent)
// ---------------------------------------------------------------------------

// EnsureDimension inserts a dimension by name if absent and returns its ID.
func (r *Repo) EnsureDimension(ctx context.Context, name string) (uuid.UUID, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sqlStr, args, err := psql.
		Insert("dimensions").
		Columns("name").
		Values(name).
		Suffix("ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("ensure dimension: build: %w", err)
	}

	var id uuid.UUID
	if err := querier.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		return uuid.Nil, postgres.MapError(err, "dimension", uuid.Nil)
	}

	return id, nil
}

// EnsureTheme inserts a theme by (dimension, name) if absent and returns its ID.
func (r *Repo) EnsureTheme(ctx context.Context, dimensionID uuid.UUID, name string) (uuid.UUID, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sqlStr, args, err := psql.
		Insert("themes").
		Columns("dimension_id", "name").
		Values(dimensionID, name).
		Suffix("ON CONFLICT ON CONSTRAINT uq_theme_dimension_name DO UPDATE SET name = EXCLUDED.name RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("ensure theme: build: %w", err)
	}

	var id uuid.UUID
	if err := querier.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		return uuid.Nil, postgres.MapError(err, "theme", dimensionID)
	}

	return id, nil
}

// EnsureTopic inserts a topic by (theme, name) if absent and returns its ID.
// Optional metadata columns are only written when non-nil, so reseeding never
// blanks out previously loaded guidance.
func (r *Repo) EnsureTopic(ctx context.Context, themeID uuid.UUID, topic domain.Topic) (uuid.UUID, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	builder := psql.
		Insert("topics").
		Columns("theme_id", "name", "description", "impact", "benefits", "basic", "advanced", "evidence", "regulations").
		Values(themeID, topic.Name, nil, topic.Impact, topic.Benefits, topic.Basic, topic.Advanced, topic.Evidence, topic.Regulations).
		Suffix("ON CONFLICT ON CONSTRAINT uq_topic_theme_name DO UPDATE SET name = EXCLUDED.name RETURNING id")

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("ensure topic: build: %w", err)
	}

	var id uuid.UUID
	if err := querier.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		return uuid.Nil, postgres.MapError(err, "topic", themeID)
	}

	return id, nil
}

// EnsureRatingScale inserts any missing rating scale rows.
func (r *Repo) EnsureRatingScale(ctx context.Context, levels []domain.RatingScaleLevel) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	for _, l := range levels {
		sqlStr, args, err := psql.
			Insert("rating_scale").
			Columns("level", "label", "description").
			Values(l.Level, l.Label, l.Description).
			Suffix("ON CONFLICT (level) DO NOTHING").
			ToSql()
		if err != nil {
			return fmt.Errorf("ensure rating scale: build: %w", err)
		}
		if _, err := querier.Exec(ctx, sqlStr, args...); err != nil {
			return postgres.MapError(err, "rating_scale", uuid.Nil)
		}
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanTheme(rows pgx.Rows) (domain.Theme, error) {
	var (
		t                     domain.Theme
		description, category pgtype.Text
		createdAt             time.Time
	)
	if err := rows.Scan(&t.ID, &t.DimensionID, &t.Name, &description, &category, &createdAt); err != nil {
		return domain.Theme{}, err
	}
	t.CreatedAt = createdAt
	if description.Valid {
		t.Description = &description.String
	}
	if category.Valid {
		t.Category = &category.String
	}
	return t, nil
}

func scanTopic(rows pgx.Rows) (domain.Topic, error) {
	var (
		t domain.Topic

		impact, benefits, basic, advanced, evidence, regulations pgtype.Text
	)
	if err := rows.Scan(
		&t.ID, &t.ThemeID, &t.Name,
		&impact, &benefits, &basic, &advanced, &evidence, &regulations,
		&t.CreatedAt,
	); err != nil {
		return domain.Topic{}, err
	}

	if impact.Valid {
		t.Impact = &impact.String
	}
	if benefits.Valid {
		t.Benefits = &benefits.String
	}
	if basic.Valid {
		t.Basic = &basic.String
	}
	if advanced.Valid {
		t.Advanced = &advanced.String
	}
	if evidence.Valid {
		t.Evidence = &evidence.String
	}
	if regulations.Valid {
		t.Regulations = &regulations.String
	}

	return t, nil
}
