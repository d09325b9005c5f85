package study

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/yomi-backend/internal/domain"
)

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	GetByIDFunc          func(ctx context.Context, userID uuid.UUID, cardID uuid.UUID) (*domain.Card, error)
	GetByIDForUpdateFunc func(ctx context.Context, userID uuid.UUID, cardID uuid.UUID) (*domain.Card, error)
	GetByKeyFunc         func(ctx context.Context, userID uuid.UUID, wordID int64, readingIndex int) (*domain.Card, error)
	CreateFunc           func(ctx context.Context, card *domain.Card) (*domain.Card, error)
	UpdateFunc           func(ctx context.Context, card *domain.Card) (*domain.Card, error)
	DeleteFunc           func(ctx context.Context, userID uuid.UUID, cardID uuid.UUID) error
	GetDueFunc           func(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]*domain.Card, error)

	calls struct {
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			CardID uuid.UUID
		}
		GetByIDForUpdate []struct {
			Ctx    context.Context
			UserID uuid.UUID
			CardID uuid.UUID
		}
		GetByKey []struct {
			Ctx          context.Context
			UserID       uuid.UUID
			WordID       int64
			ReadingIndex int
		}
		Create []struct {
			Ctx  context.Context
			Card *domain.Card
		}
		Update []struct {
			Ctx  context.Context
			Card *domain.Card
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			CardID uuid.UUID
		}
		GetDue []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Now    time.Time
			Limit  int
		}
	}
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockGetByKey         sync.RWMutex
	lockCreate           sync.RWMutex
	lockUpdate           sync.RWMutex
	lockDelete           sync.RWMutex
	lockGetDue           sync.RWMutex
}

func (mock *cardRepoMock) GetByID(ctx context.Context, userID uuid.UUID, cardID uuid.UUID) (*domain.Card, error) {
	if mock.GetByIDFunc == nil {
		panic("cardRepoMock.GetByIDFunc: method is nil but cardRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		CardID uuid.UUID
	}{Ctx: ctx, UserID: userID, CardID: cardID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, cardID)
}

func (mock *cardRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	CardID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *cardRepoMock) GetByIDForUpdate(ctx context.Context, userID uuid.UUID, cardID uuid.UUID) (*domain.Card, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("cardRepoMock.GetByIDForUpdateFunc: method is nil but cardRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		CardID uuid.UUID
	}{Ctx: ctx, UserID: userID, CardID: cardID}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, userID, cardID)
}

func (mock *cardRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	CardID uuid.UUID
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *cardRepoMock) GetByKey(ctx context.Context, userID uuid.UUID, wordID int64, readingIndex int) (*domain.Card, error) {
	if mock.GetByKeyFunc == nil {
		panic("cardRepoMock.GetByKeyFunc: method is nil but cardRepo.GetByKey was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		UserID       uuid.UUID
		WordID       int64
		ReadingIndex int
	}{Ctx: ctx, UserID: userID, WordID: wordID, ReadingIndex: readingIndex}
	mock.lockGetByKey.Lock()
	mock.calls.GetByKey = append(mock.calls.GetByKey, callInfo)
	mock.lockGetByKey.Unlock()
	return mock.GetByKeyFunc(ctx, userID, wordID, readingIndex)
}

func (mock *cardRepoMock) GetByKeyCalls() []struct {
	Ctx          context.Context
	UserID       uuid.UUID
	WordID       int64
	ReadingIndex int
} {
	mock.lockGetByKey.RLock()
	calls := mock.calls.GetByKey
	mock.lockGetByKey.RUnlock()
	return calls
}

func (mock *cardRepoMock) Create(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	if mock.CreateFunc == nil {
		panic("cardRepoMock.CreateFunc: method is nil but cardRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Card *domain.Card
	}{Ctx: ctx, Card: card}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, card)
}

func (mock *cardRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Card *domain.Card
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *cardRepoMock) Update(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	if mock.UpdateFunc == nil {
		panic("cardRepoMock.UpdateFunc: method is nil but cardRepo.Update was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Card *domain.Card
	}{Ctx: ctx, Card: card}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, card)
}

func (mock *cardRepoMock) UpdateCalls() []struct {
	Ctx  context.Context
	Card *domain.Card
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *cardRepoMock) Delete(ctx context.Context, userID uuid.UUID, cardID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("cardRepoMock.DeleteFunc: method is nil but cardRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		CardID uuid.UUID
	}{Ctx: ctx, UserID: userID, CardID: cardID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, cardID)
}

func (mock *cardRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	CardID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *cardRepoMock) GetDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]*domain.Card, error) {
	if mock.GetDueFunc == nil {
		panic("cardRepoMock.GetDueFunc: method is nil but cardRepo.GetDue was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Now    time.Time
		Limit  int
	}{Ctx: ctx, UserID: userID, Now: now, Limit: limit}
	mock.lockGetDue.Lock()
	mock.calls.GetDue = append(mock.calls.GetDue, callInfo)
	mock.lockGetDue.Unlock()
	return mock.GetDueFunc(ctx, userID, now, limit)
}

func (mock *cardRepoMock) GetDueCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Now    time.Time
	Limit  int
} {
	mock.lockGetDue.RLock()
	calls := mock.calls.GetDue
	mock.lockGetDue.RUnlock()
	return calls
}
