// Package assessment manages assessment sessions and their ratings:
// session CRUD, rating upserts and master-session synthesis.
package assessment

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/akarpov/resilience-backend/internal/adapter/postgres/session"
	"github.com/akarpov/resilience-backend/internal/domain"
)

type sessionRepo interface {
	Create(ctx context.Context, s domain.AssessmentSession) (domain.AssessmentSession, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.AssessmentSession, error)
	List(ctx context.Context, filter session.Filter) ([]domain.AssessmentSession, error)
	ExistingIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error)
}

type entryRepo interface {
	Upsert(ctx context.Context, e domain.AssessmentEntry) (domain.AssessmentEntry, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.AssessmentEntry, error)
	ListBySessions(ctx context.Context, sessionIDs []uuid.UUID) ([]domain.AssessmentEntry, error)
}

type catalogRepo interface {
	ListTopicIDs(ctx context.Context) ([]uuid.UUID, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides assessment session operations.
type Service struct {
	sessions sessionRepo
	entries  entryRepo
	catalog  catalogRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new assessment service.
func NewService(
	log *slog.Logger,
	sessions sessionRepo,
	entries entryRepo,
	catalog catalogRepo,
	tx txManager,
) *Service {
	return &Service{
		sessions: sessions,
		entries:  entries,
		catalog:  catalog,
		tx:       tx,
		log:      log.With("service", "assessment"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
