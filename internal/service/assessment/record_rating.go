package assessment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/akarpov/resilience-backend/internal/domain"
)

// RecordRating upserts the rating of one topic within a session. The write is
// keyed by (session, topic): a repeated rating replaces the previous one
// wholesale, so two assessors racing on the same topic resolve to last write
// wins instead of a uniqueness error.
func (s *Service) RecordRating(ctx context.Context, sessionID uuid.UUID, input RecordRatingInput) (domain.AssessmentEntry, error) {
	if err := input.Validate(); err != nil {
		return domain.AssessmentEntry{}, err
	}

	if _, err := s.sessions.GetByID(ctx, sessionID); err != nil {
		return domain.AssessmentEntry{}, fmt.Errorf("get session: %w", err)
	}

	entry := domain.AssessmentEntry{
		SessionID:       sessionID,
		TopicID:         input.TopicID,
		CurrentMaturity: input.CurrentMaturity,
		CurrentIsNA:     input.CurrentIsNA,
		DesiredMaturity: input.DesiredMaturity,
		DesiredIsNA:     input.DesiredIsNA,
		Comment:         trimOrNil(input.Comment),
		EvidenceLinks:   input.EvidenceLinks,
		ProgressState:   input.ProgressState,
	}
	if input.ComputedScore != nil {
		score, err := domain.ScoreFromFloat(*input.ComputedScore)
		if err != nil {
			return domain.AssessmentEntry{}, err
		}
		entry.ComputedScore = &score
	}

	if err := entry.Validate(); err != nil {
		return domain.AssessmentEntry{}, err
	}

	saved, err := s.entries.Upsert(ctx, entry)
	if err != nil {
		return domain.AssessmentEntry{}, fmt.Errorf("upsert entry: %w", err)
	}

	s.log.InfoContext(ctx, "rating recorded",
		slog.String("session_id", sessionID.String()),
		slog.String("topic_id", input.TopicID.String()),
		slog.String("progress_state", saved.ProgressState.String()),
	)

	return saved, nil
}
