package assessment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/akarpov/resilience-backend/internal/adapter/postgres/session"
	"github.com/akarpov/resilience-backend/internal/domain"
)

// CreateSession creates a new, empty assessment session.
func (s *Service) CreateSession(ctx context.Context, input CreateSessionInput) (domain.AssessmentSession, error) {
	if err := input.Validate(); err != nil {
		return domain.AssessmentSession{}, err
	}

	created, err := s.sessions.Create(ctx, domain.AssessmentSession{
		Name:         strings.TrimSpace(input.Name),
		Assessor:     trimOrNil(input.Assessor),
		Organization: trimOrNil(input.Organization),
		Notes:        trimOrNil(input.Notes),
	})
	if err != nil {
		return domain.AssessmentSession{}, fmt.Errorf("create session: %w", err)
	}

	s.log.InfoContext(ctx, "session created",
		slog.String("session_id", created.ID.String()),
		slog.String("name", created.Name),
	)

	return created, nil
}

// GetSession returns one session by ID.
func (s *Service) GetSession(ctx context.Context, id uuid.UUID) (domain.AssessmentSession, error) {
	sess, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return domain.AssessmentSession{}, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

// ListSessions returns sessions matching the filter, newest first.
func (s *Service) ListSessions(ctx context.Context, filter ListSessionsFilter) ([]domain.AssessmentSession, error) {
	result, err := s.sessions.List(ctx, session.Filter{
		Assessor:     trimOrNil(filter.Assessor),
		Organization: trimOrNil(filter.Organization),
	})
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return result, nil
}

// ListEntries returns every rating recorded in a session.
// The session must exist; an unknown ID yields domain.ErrNotFound.
func (s *Service) ListEntries(ctx context.Context, sessionID uuid.UUID) ([]domain.AssessmentEntry, error) {
	if _, err := s.sessions.GetByID(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	entries, err := s.entries.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}
