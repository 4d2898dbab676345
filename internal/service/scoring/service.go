// Package scoring computes per-theme and per-dimension maturity aggregates
// for an assessment session.
package scoring

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/akarpov/resilience-backend/internal/domain"
)

type sessionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.AssessmentSession, error)
}

type catalogRepo interface {
	ListDimensions(ctx context.Context) ([]domain.Dimension, error)
	ListThemes(ctx context.Context) ([]domain.Theme, error)
	ListTopics(ctx context.Context) ([]domain.Topic, error)
	CountTopicsByTheme(ctx context.Context) (map[uuid.UUID]int, error)
}

type entryRepo interface {
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.AssessmentEntry, error)
}

// AverageRow is one aggregated score row: a theme or a dimension.
// Average is nil when no rated entries back the row; Coverage is the share
// of catalog topics that received a rating, in [0, 1].
type AverageRow struct {
	ID       uuid.UUID
	Name     string
	Average  *float64
	Coverage float64
}

// Service provides the scoring read path.
type Service struct {
	sessions sessionRepo
	catalog  catalogRepo
	entries  entryRepo
	log      *slog.Logger
}

// NewService creates a new scoring service.
func NewService(
	log *slog.Logger,
	sessions sessionRepo,
	catalog catalogRepo,
	entries entryRepo,
) *Service {
	return &Service{
		sessions: sessions,
		catalog:  catalog,
		entries:  entries,
		log:      log.With("service", "scoring"),
	}
}
