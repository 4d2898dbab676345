package scoring

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/akarpov/resilience-backend/internal/domain"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (domain.AssessmentSession, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *sessionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.AssessmentSession, error) {
	if mock.GetByIDFunc == nil {
		panic("sessionRepoMock.GetByIDFunc: method is nil but sessionRepo.GetByID was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *sessionRepoMock) GetByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ catalogRepo = &catalogRepoMock{}

type catalogRepoMock struct {
	ListDimensionsFunc     func(ctx context.Context) ([]domain.Dimension, error)
	ListThemesFunc         func(ctx context.Context) ([]domain.Theme, error)
	ListTopicsFunc         func(ctx context.Context) ([]domain.Topic, error)
	CountTopicsByThemeFunc func(ctx context.Context) (map[uuid.UUID]int, error)
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

func (mock *catalogRepoMock) CountTopicsByTheme(ctx context.Context) (map[uuid.UUID]int, error) {
	if mock.CountTopicsByThemeFunc == nil {
		panic("catalogRepoMock.CountTopicsByThemeFunc: method is nil but catalogRepo.CountTopicsByTheme was just called")
	}
	return mock.CountTopicsByThemeFunc(ctx)
}

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	ListBySessionFunc func(ctx context.Context, sessionID uuid.UUID) ([]domain.AssessmentEntry, error)

	calls struct {
		ListBySession []struct {
			SessionID uuid.UUID
		}
	}
	lockListBySession sync.RWMutex
}

func (mock *entryRepoMock) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.AssessmentEntry, error) {
	if mock.ListBySessionFunc == nil {
		panic("entryRepoMock.ListBySessionFunc: method is nil but entryRepo.ListBySession was just called")
	}
	callInfo := struct{ SessionID uuid.UUID }{SessionID: sessionID}
	mock.lockListBySession.Lock()
	mock.calls.ListBySession = append(mock.calls.ListBySession, callInfo)
	mock.lockListBySession.Unlock()
	return mock.ListBySessionFunc(ctx, sessionID)
}

func (mock *entryRepoMock) ListBySessionCalls() []struct {
	SessionID uuid.UUID
} {
	mock.lockListBySession.RLock()
	calls := mock.calls.ListBySession
	mock.lockListBySession.RUnlock()
	return calls
}
