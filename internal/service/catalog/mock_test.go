package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/akarpov/resilience-backend/internal/domain"
)

var _ catalogRepo = &catalogRepoMock{}

type catalogRepoMock struct {
	ListDimensionsFunc         func(ctx context.Context) ([]domain.Dimension, error)
	ListThemesFunc             func(ctx context.Context) ([]domain.Theme, error)
	ListTopicsFunc             func(ctx context.Context) ([]domain.Topic, error)
	ListThemeLevelGuidanceFunc func(ctx context.Context) ([]domain.ThemeLevelGuidance, error)
	ListAllExplanationsFunc    func(ctx context.Context) ([]domain.Explanation, error)
	RatingScaleFunc            func(ctx context.Context) ([]domain.RatingScaleLevel, error)
	EnsureDimensionFunc        func(ctx context.Context, name string) (uuid.UUID, error)
	EnsureThemeFunc            func(ctx context.Context, dimensionID uuid.UUID, name string) (uuid.UUID, error)
	EnsureTopicFunc            func(ctx context.Context, themeID uuid.UUID, topic domain.Topic) (uuid.UUID, error)
	EnsureRatingScaleFunc      func(ctx context.Context, levels []domain.RatingScaleLevel) error

	calls struct {
		EnsureDimension []struct {
			Name string
		}
		EnsureTheme []struct {
			DimensionID uuid.UUID
			Name        string
		}
		EnsureTopic []struct {
			ThemeID uuid.UUID
			Topic   domain.Topic
		}
		EnsureRatingScale []struct {
			Levels []domain.RatingScaleLevel
		}
	}
	lockEnsureDimension   sync.RWMutex
	lockEnsureTheme       sync.RWMutex
	lockEnsureTopic       sync.RWMutex
	lockEnsureRatingScale sync.RWMutex
}

func (mock *catalogRepoMock) ListDimensions(ctx context.Context) ([]domain.Dimension, error) {
	if mock.ListDimensionsFunc == nil {
		panic("catalogRepoMock.ListDimensionsFunc: method is nil but catalogRepo.ListDimensions was just called")
	}
	return mock.ListDimensionsFunc(ctx)
}

func (mock *catalogRepoMock) ListThemes(ctx context.Context) ([]domain.Theme, error) {
	if mock.ListThemesFunc == nil {
		panic("catalogRepoMock.ListThemesFunc: method is nil but catalogRepo.ListThemes was just called")
	}
	return mock.ListThemesFunc(ctx)
}

func (mock *catalogRepoMock) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	if mock.ListTopicsFunc == nil {
		panic("catalogRepoMock.ListTopicsFunc: method is nil but catalogRepo.ListTopics was just called")
	}
	return mock.ListTopicsFunc(ctx)
}

func (mock *catalogRepoMock) ListThemeLevelGuidance(ctx context.Context) ([]domain.ThemeLevelGuidance, error) {
	if mock.ListThemeLevelGuidanceFunc == nil {
		panic("catalogRepoMock.ListThemeLevelGuidanceFunc: method is nil but catalogRepo.ListThemeLevelGuidance was just called")
	}
	return mock.ListThemeLevelGuidanceFunc(ctx)
}

func (mock *catalogRepoMock) ListAllExplanations(ctx context.Context) ([]domain.Explanation, error) {
	if mock.ListAllExplanationsFunc == nil {
		panic("catalogRepoMock.ListAllExplanationsFunc: method is nil but catalogRepo.ListAllExplanations was just called")
	}
	return mock.ListAllExplanationsFunc(ctx)
}

func (mock *catalogRepoMock) RatingScale(ctx context.Context) ([]domain.RatingScaleLevel, error) {
	if mock.RatingScaleFunc == nil {
		panic("catalogRepoMock.RatingScaleFunc: method is nil but catalogRepo.RatingScale was just called")
	}
	return mock.RatingScaleFunc(ctx)
}

func (mock *catalogRepoMock) EnsureDimension(ctx context.Context, name string) (uuid.UUID, error) {
	if mock.EnsureDimensionFunc == nil {
		panic("catalogRepoMock.EnsureDimensionFunc: method is nil but catalogRepo.EnsureDimension was just called")
	}
	callInfo := struct{ Name string }{Name: name}
	mock.lockEnsureDimension.Lock()
	mock.calls.EnsureDimension = append(mock.calls.EnsureDimension, callInfo)
	mock.lockEnsureDimension.Unlock()
	return mock.EnsureDimensionFunc(ctx, name)
}

func (mock *catalogRepoMock) EnsureDimensionCalls() []struct {
	Name string
} {
	mock.lockEnsureDimension.RLock()
	calls := mock.calls.EnsureDimension
	mock.lockEnsureDimension.RUnlock()
	return calls
}

func (mock *catalogRepoMock) EnsureTheme(ctx context.Context, dimensionID uuid.UUID, name string) (uuid.UUID, error) {
	if mock.EnsureThemeFunc == nil {
		panic("catalogRepoMock.EnsureThemeFunc: method is nil but catalogRepo.EnsureTheme was just called")
	}
	callInfo := struct {
		DimensionID uuid.UUID
		Name        string
	}{DimensionID: dimensionID, Name: name}
	mock.lockEnsureTheme.Lock()
	mock.calls.EnsureTheme = append(mock.calls.EnsureTheme, callInfo)
	mock.lockEnsureTheme.Unlock()
	return mock.EnsureThemeFunc(ctx, dimensionID, name)
}

func (mock *catalogRepoMock) EnsureThemeCalls() []struct {
	DimensionID uuid.UUID
	Name        string
} {
	mock.lockEnsureTheme.RLock()
	calls := mock.calls.EnsureTheme
	mock.lockEnsureTheme.RUnlock()
	return calls
}

func (mock *catalogRepoMock) EnsureTopic(ctx context.Context, themeID uuid.UUID, topic domain.Topic) (uuid.UUID, error) {
	if mock.EnsureTopicFunc == nil {
		panic("catalogRepoMock.EnsureTopicFunc: method is nil but catalogRepo.EnsureTopic was just called")
	}
	callInfo := struct {
		ThemeID uuid.UUID
		Topic   domain.Topic
	}{ThemeID: themeID, Topic: topic}
	mock.lockEnsureTopic.Lock()
	mock.calls.EnsureTopic = append(mock.calls.EnsureTopic, callInfo)
	mock.lockEnsureTopic.Unlock()
	return mock.EnsureTopicFunc(ctx, themeID, topic)
}

func (mock *catalogRepoMock) EnsureTopicCalls() []struct {
	ThemeID uuid.UUID
	Topic   domain.Topic
} {
	mock.lockEnsureTopic.RLock()
	calls := mock.calls.EnsureTopic
	mock.lockEnsureTopic.RUnlock()
	return calls
}

func (mock *catalogRepoMock) EnsureRatingScale(ctx context.Context, levels []domain.RatingScaleLevel) error {
	if mock.EnsureRatingScaleFunc == nil {
		panic("catalogRepoMock.EnsureRatingScaleFunc: method is nil but catalogRepo.EnsureRatingScale was just called")
	}
	callInfo := struct{ Levels []domain.RatingScaleLevel }{Levels: levels}
	mock.lockEnsureRatingScale.Lock()
	mock.calls.EnsureRatingScale = append(mock.calls.EnsureRatingScale, callInfo)
	mock.lockEnsureRatingScale.Unlock()
	return mock.EnsureRatingScaleFunc(ctx, levels)
}

func (mock *catalogRepoMock) EnsureRatingScaleCalls() []struct {
	Levels []domain.RatingScaleLevel
} {
	mock.lockEnsureRatingScale.RLock()
	calls := mock.calls.EnsureRatingScale
	mock.lockEnsureRatingScale.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}
