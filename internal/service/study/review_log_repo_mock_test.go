package study

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/yomi-backend/internal/domain"
)

var _ reviewLogRepo = &reviewLogRepoMock{}

type reviewLogRepoMock struct {
	CreateFunc          func(ctx context.Context, log *domain.ReviewLog) (*domain.ReviewLog, error)
	GetByCardIDFunc     func(ctx context.Context, cardID uuid.UUID, limit int, offset int) ([]*domain.ReviewLog, int, error)
	ListByCardIDFunc    func(ctx context.Context, cardID uuid.UUID) ([]*domain.ReviewLog, error)
	GetLastByCardIDFunc func(ctx context.Context, cardID uuid.UUID) (*domain.ReviewLog, error)
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			Log *domain.ReviewLog
		}
		GetByCardID []struct {
			Ctx    context.Context
			CardID uuid.UUID
			Limit  int
			Offset int
		}
		ListByCardID []struct {
			Ctx    context.Context
			CardID uuid.UUID
		}
		GetLastByCardID []struct {
			Ctx    context.Context
			CardID uuid.UUID
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockCreate          sync.RWMutex
	lockGetByCardID     sync.RWMutex
	lockListByCardID    sync.RWMutex
	lockGetLastByCardID sync.RWMutex
	lockDelete          sync.RWMutex
}

func (mock *reviewLogRepoMock) Create(ctx context.Context, log *domain.ReviewLog) (*domain.ReviewLog, error) {
	if mock.CreateFunc == nil {
		panic("reviewLogRepoMock.CreateFunc: method is nil but reviewLogRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Log *domain.ReviewLog
	}{Ctx: ctx, Log: log}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, log)
}

func (mock *reviewLogRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Log *domain.ReviewLog
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reviewLogRepoMock) GetByCardID(ctx context.Context, cardID uuid.UUID, limit int, offset int) ([]*domain.ReviewLog, int, error) {
	if mock.GetByCardIDFunc == nil {
		panic("reviewLogRepoMock.GetByCardIDFunc: method is nil but reviewLogRepo.GetByCardID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CardID uuid.UUID
		Limit  int
		Offset int
	}{Ctx: ctx, CardID: cardID, Limit: limit, Offset: offset}
	mock.lockGetByCardID.Lock()
	mock.calls.GetByCardID = append(mock.calls.GetByCardID, callInfo)
	mock.lockGetByCardID.Unlock()
	return mock.GetByCardIDFunc(ctx, cardID, limit, offset)
}

func (mock *reviewLogRepoMock) GetByCardIDCalls() []struct {
	Ctx    context.Context
	CardID uuid.UUID
	Limit  int
	Offset int
} {
	mock.lockGetByCardID.RLock()
	calls := mock.calls.GetByCardID
	mock.lockGetByCardID.RUnlock()
	return calls
}

func (mock *reviewLogRepoMock) ListByCardID(ctx context.Context, cardID uuid.UUID) ([]*domain.ReviewLog, error) {
	if mock.ListByCardIDFunc == nil {
		panic("reviewLogRepoMock.ListByCardIDFunc: method is nil but reviewLogRepo.ListByCardID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CardID uuid.UUID
	}{Ctx: ctx, CardID: cardID}
	mock.lockListByCardID.Lock()
	mock.calls.ListByCardID = append(mock.calls.ListByCardID, callInfo)
	mock.lockListByCardID.Unlock()
	return mock.ListByCardIDFunc(ctx, cardID)
}

func (mock *reviewLogRepoMock) ListByCardIDCalls() []struct {
	Ctx    context.Context
	CardID uuid.UUID
} {
	mock.lockListByCardID.RLock()
	calls := mock.calls.ListByCardID
	mock.lockListByCardID.RUnlock()
	return calls
}

func (mock *reviewLogRepoMock) GetLastByCardID(ctx context.Context, cardID uuid.UUID) (*domain.ReviewLog, error) {
	if mock.GetLastByCardIDFunc == nil {
		panic("reviewLogRepoMock.GetLastByCardIDFunc: method is nil but reviewLogRepo.GetLastByCardID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CardID uuid.UUID
	}{Ctx: ctx, CardID: cardID}
	mock.lockGetLastByCardID.Lock()
	mock.calls.GetLastByCardID = append(mock.calls.GetLastByCardID, callInfo)
	mock.lockGetLastByCardID.Unlock()
	return mock.GetLastByCardIDFunc(ctx, cardID)
}

func (mock *reviewLogRepoMock) GetLastByCardIDCalls() []struct {
	Ctx    context.Context
	CardID uuid.UUID
} {
	mock.lockGetLastByCardID.RLock()
	calls := mock.calls.GetLastByCardID
	mock.lockGetLastByCardID.RUnlock()
	return calls
}

func (mock *reviewLogRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("reviewLogRepoMock.DeleteFunc: method is nil but reviewLogRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *reviewLogRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
