// Package catalog serves the assessment catalog read model and loads
// catalog content from CSV files.
package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/akarpov/resilience-backend/internal/domain"
)

type catalogRepo interface {
	ListDimensions(ctx context.Context) ([]domain.Dimension, error)
	ListThemes(ctx context.Context) ([]domain.Theme, error)
	ListTopics(ctx context.Context) ([]domain.Topic, error)
	ListThemeLevelGuidance(ctx context.Context) ([]domain.ThemeLevelGuidance, error)
	ListAllExplanations(ctx context.Context) ([]domain.Explanation, error)
	RatingScale(ctx context.Context) ([]domain.RatingScaleLevel, error)

	EnsureDimension(ctx context.Context, name string) (uuid.UUID, error)
	EnsureTheme(ctx context.Context, dimensionID uuid.UUID, name string) (uuid.UUID, error)
	EnsureTopic(ctx context.Context, themeID uuid.UUID, topic domain.Topic) (uuid.UUID, error)
	EnsureRatingScale(ctx context.Context, levels []domain.RatingScaleLevel) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides catalog operations.
type Service struct {
	catalog catalogRepo
	tx      txManager
	log     *slog.Logger
}

// NewService creates a new catalog service.
func NewService(log *slog.Logger, catalog catalogRepo, tx txManager) *Service {
	return &Service{
		catalog: catalog,
		tx:      tx,
		log:     log.With("service", "catalog"),
	}
}

// RatingScale returns the 5-level rating scale.
func (s *Service) RatingScale(ctx context.Context) ([]domain.RatingScaleLevel, error) {
	levels, err := s.catalog.RatingScale(ctx)
	if err != nil {
		return nil, fmt.Errorf("rating scale: %w", err)
	}
	return levels, nil
}
