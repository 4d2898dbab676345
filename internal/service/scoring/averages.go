package scoring

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/akarpov/resilience-backend/internal/domain"
)

// ThemeAverages returns one row per catalog theme, name-ascending.
// The session must exist; an unknown ID yields domain.ErrNotFound rather
// than an empty result.
func (s *Service) ThemeAverages(ctx context.Context, sessionID uuid.UUID) ([]AverageRow, error) {
	if _, err := s.sessions.GetByID(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	themes, err := s.catalog.ListThemes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}

	return s.themeRows(ctx, sessionID, themes)
}

// DimensionAverages returns one row per catalog dimension, name-ascending.
// A dimension's average is the unweighted mean of its themes' non-nil
// averages; its coverage is the unweighted mean of its themes' coverages.
func (s *Service) DimensionAverages(ctx context.Context, sessionID uuid.UUID) ([]AverageRow, error) {
	if _, err := s.sessions.GetByID(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	dimensions, err := s.catalog.ListDimensions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list dimensions: %w", err)
	}
	themes, err := s.catalog.ListThemes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}

	themeRows, err := s.themeRows(ctx, sessionID, themes)
	if err != nil {
		return nil, err
	}

	rowByTheme := make(map[uuid.UUID]AverageRow, len(themeRows))
	for _, row := range themeRows {
		rowByTheme[row.ID] = row
	}

	result := make([]AverageRow, 0, len(dimensions))
	for _, dim := range dimensions {
		row := AverageRow{ID: dim.ID, Name: dim.Name}

		var (
			avgSum, covSum float64
			avgCount       int
			themeCount     int
		)
		for _, theme := range themes {
			if theme.DimensionID != dim.ID {
				continue
			}
			tr := rowByTheme[theme.ID]
			themeCount++
			covSum += tr.Coverage
			if tr.Average != nil {
				avgSum += *tr.Average
				avgCount++
			}
		}

		if themeCount > 0 {
			row.Coverage = covSum / float64(themeCount)
		}
		if avgCount > 0 {
			avg := avgSum / float64(avgCount)
			row.Average = &avg
		}

		result = append(result, row)
	}

	return result, nil
}

// themeRows aggregates entry scores into one row per given theme.
// themes must already be in the desired order.
func (s *Service) themeRows(ctx context.Context, sessionID uuid.UUID, themes []domain.Theme) ([]AverageRow, error) {
	topics, err := s.catalog.ListTopics(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	topicCounts, err := s.catalog.CountTopicsByTheme(ctx)
	if err != nil {
		return nil, fmt.Errorf("count topics: %w", err)
	}
	entries, err := s.entries.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	themeByTopic := make(map[uuid.UUID]uuid.UUID, len(topics))
	for _, topic := range topics {
		themeByTopic[topic.ID] = topic.ThemeID
	}

	type accum struct {
		sum   float64
		rated int
	}
	byTheme := map[uuid.UUID]*accum{}
	for i := range entries {
		score := entries[i].EffectiveScore()
		if score == nil {
			continue
		}
		themeID, ok := themeByTopic[entries[i].TopicID]
		if !ok {
			continue
		}
		acc := byTheme[themeID]
		if acc == nil {
			acc = &accum{}
			byTheme[themeID] = acc
		}
		acc.sum += score.Float64()
		acc.rated++
	}

	result := make([]AverageRow, 0, len(themes))
	for _, theme := range themes {
		row := AverageRow{ID: theme.ID, Name: theme.Name}

		if acc := byTheme[theme.ID]; acc != nil && acc.rated > 0 {
			avg := acc.sum / float64(acc.rated)
			row.Average = &avg
			if total := topicCounts[theme.ID]; total > 0 {
				row.Coverage = float64(acc.rated) / float64(total)
			}
		}

		result = append(result, row)
	}

	return result, nil
}
