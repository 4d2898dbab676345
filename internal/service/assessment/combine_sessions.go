package assessment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/akarpov/resilience-backend/internal/domain"
)

const noRatingsComment = "No ratings available in source sessions"

// CombineSessions synthesizes a master session from several source sessions:
// for every catalog topic, the effective scores of the source entries are
// averaged into a computed score. Topics no source session rated become N/A
// entries, so the master session always carries one entry per topic.
//
// The master session and all its entries are written in one transaction.
func (s *Service) CombineSessions(ctx context.Context, input CombineSessionsInput) (domain.AssessmentSession, error) {
	if err := input.Validate(); err != nil {
		return domain.AssessmentSession{}, err
	}

	existing, err := s.sessions.ExistingIDs(ctx, input.SourceSessionIDs)
	if err != nil {
		return domain.AssessmentSession{}, fmt.Errorf("check source sessions: %w", err)
	}
	for _, id := range input.SourceSessionIDs {
		if !existing[id] {
			return domain.AssessmentSession{}, fmt.Errorf("source session %s: %w", id, domain.ErrNotFound)
		}
	}

	topicIDs, err := s.catalog.ListTopicIDs(ctx)
	if err != nil {
		return domain.AssessmentSession{}, fmt.Errorf("list topics: %w", err)
	}
	if len(topicIDs) == 0 {
		return domain.AssessmentSession{}, domain.ErrNoTopics
	}

	sourceEntries, err := s.entries.ListBySessions(ctx, input.SourceSessionIDs)
	if err != nil {
		return domain.AssessmentSession{}, fmt.Errorf("list source entries: %w", err)
	}

	scoresByTopic := map[uuid.UUID][]float64{}
	for i := range sourceEntries {
		if score := sourceEntries[i].EffectiveScore(); score != nil {
			scoresByTopic[sourceEntries[i].TopicID] = append(scoresByTopic[sourceEntries[i].TopicID], score.Float64())
		}
	}

	var master domain.AssessmentSession
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		master, createErr = s.sessions.Create(txCtx, domain.AssessmentSession{
			Name:         strings.TrimSpace(input.Name),
			Assessor:     trimOrNil(input.Assessor),
			Organization: trimOrNil(input.Organization),
			Notes:        trimOrNil(input.Notes),
		})
		if createErr != nil {
			return fmt.Errorf("create master session: %w", createErr)
		}

		for _, topicID := range topicIDs {
			entry, buildErr := combinedEntry(master.ID, topicID, scoresByTopic[topicID], len(input.SourceSessionIDs))
			if buildErr != nil {
				return buildErr
			}
			if _, upsertErr := s.entries.Upsert(txCtx, entry); upsertErr != nil {
				return fmt.Errorf("write combined entry for topic %s: %w", topicID, upsertErr)
			}
		}

		return nil
	})
	if err != nil {
		return domain.AssessmentSession{}, err
	}

	s.log.InfoContext(ctx, "sessions combined",
		slog.String("master_session_id", master.ID.String()),
		slog.Int("source_sessions", len(input.SourceSessionIDs)),
		slog.Int("topics", len(topicIDs)),
		slog.Int("rated_topics", len(scoresByTopic)),
	)

	return master, nil
}

// combinedEntry builds the master-session entry for one topic.
func combinedEntry(sessionID, topicID uuid.UUID, scores []float64, sourceCount int) (domain.AssessmentEntry, error) {
	if len(scores) == 0 {
		comment := noRatingsComment
		return domain.AssessmentEntry{
			SessionID:     sessionID,
			TopicID:       topicID,
			CurrentIsNA:   true,
			DesiredIsNA:   true,
			Comment:       &comment,
			ProgressState: domain.ProgressNotStarted,
		}, nil
	}

	var sum float64
	for _, v := range scores {
		sum += v
	}
	computed, err := domain.ScoreFromFloat(sum / float64(len(scores)))
	if err != nil {
		return domain.AssessmentEntry{}, fmt.Errorf("average score for topic %s: %w", topicID, err)
	}

	level := computed.Level()
	comment := fmt.Sprintf("Combined %d rating(s) from %d session(s)", len(scores), sourceCount)

	return domain.AssessmentEntry{
		SessionID:       sessionID,
		TopicID:         topicID,
		CurrentMaturity: &level,
		DesiredMaturity: &level,
		ComputedScore:   &computed,
		Comment:         &comment,
		ProgressState:   domain.ProgressComplete,
	}, nil
}
