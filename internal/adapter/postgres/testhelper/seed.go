package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akarpov/resilience-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedDimension creates a dimension. Returns the filled domain.Dimension.
func SeedDimension(t *testing.T, pool *pgxpool.Pool) domain.Dimension {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	dim := domain.Dimension{
		ID:        uuid.New(),
		Name:      "Dimension " + uniqueSuffix(),
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO dimensions (id, name, created_at) VALUES ($1, $2, $3)`,
		dim.ID, dim.Name, dim.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDimension: %v", err)
	}

	return dim
}

// SeedTheme creates a theme under the given dimension.
func SeedTheme(t *testing.T, pool *pgxpool.Pool, dimensionID uuid.UUID) domain.Theme {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	theme := domain.Theme{
		ID:          uuid.New(),
		DimensionID: dimensionID,
		Name:        "Theme " + uniqueSuffix(),
		CreatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO themes (id, dimension_id, name, created_at) VALUES ($1, $2, $3, $4)`,
		theme.ID, theme.DimensionID, theme.Name, theme.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTheme: %v", err)
	}

	return theme
}

// SeedTopic creates a topic under the given theme.
func SeedTopic(t *testing.T, pool *pgxpool.Pool, themeID uuid.UUID) domain.Topic {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	topic := domain.Topic{
		ID:        uuid.New(),
		ThemeID:   themeID,
		Name:      "Topic " + uniqueSuffix(),
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO topics (id, theme_id, name, created_at) VALUES ($1, $2, $3, $4)`,
		topic.ID, topic.ThemeID, topic.Name, topic.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTopic: %v", err)
	}

	return topic
}

// SeedSession creates an assessment session.
func SeedSession(t *testing.T, pool *pgxpool.Pool) domain.AssessmentSession {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	session := domain.AssessmentSession{
		ID:        uuid.New(),
		Name:      "Session " + uniqueSuffix(),
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO assessment_sessions (id, name, created_at) VALUES ($1, $2, $3)`,
		session.ID, session.Name, session.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSession: %v", err)
	}

	return session
}

// SeedCatalog creates a dimension with one theme and the requested number of
// topics. Returns the theme and its topics, a convenient fixture for scoring
// and entry tests.
func SeedCatalog(t *testing.T, pool *pgxpool.Pool, topicCount int) (domain.Theme, []domain.Topic) {
	t.Helper()

	dim := SeedDimension(t, pool)
	theme := SeedTheme(t, pool, dim.ID)

	topics := make([]domain.Topic, topicCount)
	for i := range topics {
		topics[i] = SeedTopic(t, pool, theme.ID)
	}

	return theme, topics
}
