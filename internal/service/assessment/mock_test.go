package assessment

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/akarpov/resilience-backend/internal/adapter/postgres/session"
	"github.com/akarpov/resilience-backend/internal/domain"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateFunc      func(ctx context.Context, s domain.AssessmentSession) (domain.AssessmentSession, error)
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (domain.AssessmentSession, error)
	ListFunc        func(ctx context.Context, filter session.Filter) ([]domain.AssessmentSession, error)
	ExistingIDsFunc func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error)

	calls struct {
		Create []struct {
			Session domain.AssessmentSession
		}
		GetByID []struct {
			ID uuid.UUID
		}
		List []struct {
			Filter session.Filter
		}
		ExistingIDs []struct {
			IDs []uuid.UUID
		}
	}
	lockCreate      sync.RWMutex
	lockGetByID     sync.RWMutex
	lockList        sync.RWMutex
	lockExistingIDs sync.RWMutex
}

func (mock *sessionRepoMock) Create(ctx context.Context, s domain.AssessmentSession) (domain.AssessmentSession, error) {
	if mock.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	callInfo := struct{ Session domain.AssessmentSession }{Session: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *sessionRepoMock) CreateCalls() []struct {
	Session domain.AssessmentSession
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *sessionRepoMock) List(ctx context.Context, filter session.Filter) ([]domain.AssessmentSession, error) {
	if mock.ListFunc == nil {
		panic("sessionRepoMock.ListFunc: method is nil but sessionRepo.List was just called")
	}
	callInfo := struct{ Filter session.Filter }{Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *sessionRepoMock) ListCalls() []struct {
	Filter session.Filter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *sessionRepoMock) ExistingIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	if mock.ExistingIDsFunc == nil {
		panic("sessionRepoMock.ExistingIDsFunc: method is nil but sessionRepo.ExistingIDs was just called")
	}
	callInfo := struct{ IDs []uuid.UUID }{IDs: ids}
	mock.lockExistingIDs.Lock()
	mock.calls.ExistingIDs = append(mock.calls.ExistingIDs, callInfo)
	mock.lockExistingIDs.Unlock()
	return mock.ExistingIDsFunc(ctx, ids)
}

func (mock *sessionRepoMock) ExistingIDsCalls() []struct {
	IDs []uuid.UUID
} {
	mock.lockExistingIDs.RLock()
	calls := mock.calls.ExistingIDs
	mock.lockExistingIDs.RUnlock()
	return calls
}

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	UpsertFunc         func(ctx context.Context, e domain.AssessmentEntry) (domain.AssessmentEntry, error)
	ListBySessionFunc  func(ctx context.Context, sessionID uuid.UUID) ([]domain.AssessmentEntry, error)
	ListBySessionsFunc func(ctx context.Context, sessionIDs []uuid.UUID) ([]domain.AssessmentEntry, error)

	calls struct {
		Upsert []struct {
			Entry domain.AssessmentEntry
		}
		ListBySession []struct {
			SessionID uuid.UUID
		}
		ListBySessions []struct {
			SessionIDs []uuid.UUID
		}
	}
	lockUpsert         sync.RWMutex
	lockListBySession  sync.RWMutex
	lockListBySessions sync.RWMutex
}

func (mock *entryRepoMock) Upsert(ctx context.Context, e domain.AssessmentEntry) (domain.AssessmentEntry, error) {
	if mock.UpsertFunc == nil {
		panic("entryRepoMock.UpsertFunc: method is nil but entryRepo.Upsert was just called")
	}
	callInfo := struct{ Entry domain.AssessmentEntry }{Entry: e}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, e)
}

func (mock *entryRepoMock) UpsertCalls() []struct {
	Entry domain.AssessmentEntry
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
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

func (mock *entryRepoMock) ListBySessions(ctx context.Context, sessionIDs []uuid.UUID) ([]domain.AssessmentEntry, error) {
	if mock.ListBySessionsFunc == nil {
		panic("entryRepoMock.ListBySessionsFunc: method is nil but entryRepo.ListBySessions was just called")
	}
	callInfo := struct{ SessionIDs []uuid.UUID }{SessionIDs: sessionIDs}
	mock.lockListBySessions.Lock()
	mock.calls.ListBySessions = append(mock.calls.ListBySessions, callInfo)
	mock.lockListBySessions.Unlock()
	return mock.ListBySessionsFunc(ctx, sessionIDs)
}

func (mock *entryRepoMock) ListBySessionsCalls() []struct {
	SessionIDs []uuid.UUID
} {
	mock.lockListBySessions.RLock()
	calls := mock.calls.ListBySessions
	mock.lockListBySessions.RUnlock()
	return calls
}

var _ catalogRepo = &catalogRepoMock{}

type catalogRepoMock struct {
	ListTopicIDsFunc func(ctx context.Context) ([]uuid.UUID, error)
}

func (mock *catalogRepoMock) ListTopicIDs(ctx context.Context) ([]uuid.UUID, error) {
	if mock.ListTopicIDsFunc == nil {
		panic("catalogRepoMock.ListTopicIDsFunc: method is nil but catalogRepo.ListTopicIDs was just called")
	}
	return mock.ListTopicIDsFunc(ctx)
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
