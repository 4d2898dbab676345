package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/akarpov/resilience-backend/internal/domain"
)

// Tree returns the full catalog as nested dimensions, each with its themes
// and each theme with its topics, guidance and explanations. Everything is
// name-ascending (levels ascending for guidance and explanations).
func (s *Service) Tree(ctx context.Context) ([]domain.Dimension, error) {
	dimensions, err := s.catalog.ListDimensions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list dimensions: %w", err)
	}
	themes, err := s.catalog.ListThemes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}
	topics, err := s.catalog.ListTopics(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	guidance, err := s.catalog.ListThemeLevelGuidance(ctx)
	if err != nil {
		return nil, fmt.Errorf("list theme guidance: %w", err)
	}
	explanations, err := s.catalog.ListAllExplanations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list explanations: %w", err)
	}

	explByTopic := map[uuid.UUID][]domain.Explanation{}
	for _, e := range explanations {
		explByTopic[e.TopicID] = append(explByTopic[e.TopicID], e)
	}

	topicsByTheme := map[uuid.UUID][]domain.Topic{}
	for _, topic := range topics {
		topic.Explanations = explByTopic[topic.ID]
		topicsByTheme[topic.ThemeID] = append(topicsByTheme[topic.ThemeID], topic)
	}

	guidanceByTheme := map[uuid.UUID][]domain.ThemeLevelGuidance{}
	for _, g := range guidance {
		guidanceByTheme[g.ThemeID] = append(guidanceByTheme[g.ThemeID], g)
	}

	themesByDimension := map[uuid.UUID][]domain.Theme{}
	for _, theme := range themes {
		theme.Topics = topicsByTheme[theme.ID]
		theme.LevelGuidance = guidanceByTheme[theme.ID]
		themesByDimension[theme.DimensionID] = append(themesByDimension[theme.DimensionID], theme)
	}

	result := make([]domain.Dimension, 0, len(dimensions))
	for _, dim := range dimensions {
		dim.Themes = themesByDimension[dim.ID]
		result = append(result, dim)
	}

	return result, nil
}
