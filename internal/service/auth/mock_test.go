package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/akarpov/resilience-backend/internal/domain"
)

var _ assessorRepo = &assessorRepoMock{}

type assessorRepoMock struct {
	CreateFunc    func(ctx context.Context, a domain.Assessor) (domain.Assessor, error)
	GetByNameFunc func(ctx context.Context, name string) (domain.Assessor, error)

	calls struct {
		Create []struct {
			Assessor domain.Assessor
		}
		GetByName []struct {
			Name string
		}
	}
	lockCreate    sync.RWMutex
	lockGetByName sync.RWMutex
}

func (mock *assessorRepoMock) Create(ctx context.Context, a domain.Assessor) (domain.Assessor, error) {
	if mock.CreateFunc == nil {
		panic("assessorRepoMock.CreateFunc: method is nil but assessorRepo.Create was just called")
	}
	callInfo := struct{ Assessor domain.Assessor }{Assessor: a}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *assessorRepoMock) CreateCalls() []struct {
	Assessor domain.Assessor
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *assessorRepoMock) GetByName(ctx context.Context, name string) (domain.Assessor, error) {
	if mock.GetByNameFunc == nil {
		panic("assessorRepoMock.GetByNameFunc: method is nil but assessorRepo.GetByName was just called")
	}
	callInfo := struct{ Name string }{Name: name}
	mock.lockGetByName.Lock()
	mock.calls.GetByName = append(mock.calls.GetByName, callInfo)
	mock.lockGetByName.Unlock()
	return mock.GetByNameFunc(ctx, name)
}

func (mock *assessorRepoMock) GetByNameCalls() []struct {
	Name string
} {
	mock.lockGetByName.RLock()
	calls := mock.calls.GetByName
	mock.lockGetByName.RUnlock()
	return calls
}

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateAccessTokenFunc func(assessorID uuid.UUID, name string) (string, error)

	calls struct {
		GenerateAccessToken []struct {
			AssessorID uuid.UUID
			Name       string
		}
	}
	lockGenerateAccessToken sync.RWMutex
}

func (mock *jwtManagerMock) GenerateAccessToken(assessorID uuid.UUID, name string) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock.GenerateAccessTokenFunc: method is nil but jwtManager.GenerateAccessToken was just called")
	}
	callInfo := struct {
		AssessorID uuid.UUID
		Name       string
	}{AssessorID: assessorID, Name: name}
	mock.lockGenerateAccessToken.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, callInfo)
	mock.lockGenerateAccessToken.Unlock()
	return mock.GenerateAccessTokenFunc(assessorID, name)
}

func (mock *jwtManagerMock) GenerateAccessTokenCalls() []struct {
	AssessorID uuid.UUID
	Name       string
} {
	mock.lockGenerateAccessToken.RLock()
	calls := mock.calls.GenerateAccessToken
	mock.lockGenerateAccessToken.RUnlock()
	return calls
}
