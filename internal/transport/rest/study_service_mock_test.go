package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/yomi-backend/internal/domain"
	"github.com/heartmarshall/yomi-backend/internal/service/study"
)

var _ studyService = &studyServiceMock{}

type studyServiceMock struct {
	CreateCardFunc     func(ctx context.Context, input study.CreateCardInput) (*domain.Card, error)
	GetCardFunc        func(ctx context.Context, input study.CardIDInput) (*domain.CardView, error)
	GetCardByWordFunc  func(ctx context.Context, input study.GetCardByWordInput) (*domain.CardView, error)
	DeleteCardFunc     func(ctx context.Context, input study.CardIDInput) error
	ReviewCardFunc     func(ctx context.Context, input study.ReviewCardInput) (*domain.Card, error)
	UndoReviewFunc     func(ctx context.Context, input study.CardIDInput) (*domain.Card, error)
	RescheduleCardFunc func(ctx context.Context, input study.CardIDInput) (*domain.Card, error)
	PreviewCardFunc    func(ctx context.Context, input study.CardIDInput) ([]domain.ReviewOutcome, error)
	GetStudyQueueFunc  func(ctx context.Context, input study.GetQueueInput) ([]*domain.Card, error)
	GetCardHistoryFunc func(ctx context.Context, input study.GetCardHistoryInput) ([]*domain.ReviewLog, int, error)

	calls struct {
		CreateCard []struct {
			Ctx   context.Context
			Input study.CreateCardInput
		}
		GetCard []struct {
			Ctx   context.Context
			Input study.CardIDInput
		}
		GetCardByWord []struct {
			Ctx   context.Context
			Input study.GetCardByWordInput
		}
		DeleteCard []struct {
			Ctx   context.Context
			Input study.CardIDInput
		}
		ReviewCard []struct {
			Ctx   context.Context
			Input study.ReviewCardInput
		}
		UndoReview []struct {
			Ctx   context.Context
			Input study.CardIDInput
		}
		RescheduleCard []struct {
			Ctx   context.Context
			Input study.CardIDInput
		}
		PreviewCard []struct {
			Ctx   context.Context
			Input study.CardIDInput
		}
		GetStudyQueue []struct {
			Ctx   context.Context
			Input study.GetQueueInput
		}
		GetCardHistory []struct {
			Ctx   context.Context
			Input study.GetCardHistoryInput
		}
	}
	lockCreateCard     sync.RWMutex
	lockGetCard        sync.RWMutex
	lockGetCardByWord  sync.RWMutex
	lockDeleteCard     sync.RWMutex
	lockReviewCard     sync.RWMutex
	lockUndoReview     sync.RWMutex
	lockRescheduleCard sync.RWMutex
	lockPreviewCard    sync.RWMutex
	lockGetStudyQueue  sync.RWMutex
	lockGetCardHistory sync.RWMutex
}

func (mock *studyServiceMock) CreateCard(ctx context.Context, input study.CreateCardInput) (*domain.Card, error) {
	if mock.CreateCardFunc == nil {
		panic("studyServiceMock.CreateCardFunc: method is nil but studyService.CreateCard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.CreateCardInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateCard.Lock()
	mock.calls.CreateCard = append(mock.calls.CreateCard, callInfo)
	mock.lockCreateCard.Unlock()
	return mock.CreateCardFunc(ctx, input)
}

func (mock *studyServiceMock) CreateCardCalls() []struct {
	Ctx   context.Context
	Input study.CreateCardInput
} {
	mock.lockCreateCard.RLock()
	calls := mock.calls.CreateCard
	mock.lockCreateCard.RUnlock()
	return calls
}

func (mock *studyServiceMock) GetCard(ctx context.Context, input study.CardIDInput) (*domain.CardView, error) {
	if mock.GetCardFunc == nil {
		panic("studyServiceMock.GetCardFunc: method is nil but studyService.GetCard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.CardIDInput
	}{Ctx: ctx, Input: input}
	mock.lockGetCard.Lock()
	mock.calls.GetCard = append(mock.calls.GetCard, callInfo)
	mock.lockGetCard.Unlock()
	return mock.GetCardFunc(ctx, input)
}

func (mock *studyServiceMock) GetCardCalls() []struct {
	Ctx   context.Context
	Input study.CardIDInput
} {
	mock.lockGetCard.RLock()
	calls := mock.calls.GetCard
	mock.lockGetCard.RUnlock()
	return calls
}

func (mock *studyServiceMock) GetCardByWord(ctx context.Context, input study.GetCardByWordInput) (*domain.CardView, error) {
	if mock.GetCardByWordFunc == nil {
		panic("studyServiceMock.GetCardByWordFunc: method is nil but studyService.GetCardByWord was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.GetCardByWordInput
	}{Ctx: ctx, Input: input}
	mock.lockGetCardByWord.Lock()
	mock.calls.GetCardByWord = append(mock.calls.GetCardByWord, callInfo)
	mock.lockGetCardByWord.Unlock()
	return mock.GetCardByWordFunc(ctx, input)
}

func (mock *studyServiceMock) GetCardByWordCalls() []struct {
	Ctx   context.Context
	Input study.GetCardByWordInput
} {
	mock.lockGetCardByWord.RLock()
	calls := mock.calls.GetCardByWord
	mock.lockGetCardByWord.RUnlock()
	return calls
}

func (mock *studyServiceMock) DeleteCard(ctx context.Context, input study.CardIDInput) error {
	if mock.DeleteCardFunc == nil {
		panic("studyServiceMock.DeleteCardFunc: method is nil but studyService.DeleteCard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.CardIDInput
	}{Ctx: ctx, Input: input}
	mock.lockDeleteCard.Lock()
	mock.calls.DeleteCard = append(mock.calls.DeleteCard, callInfo)
	mock.lockDeleteCard.Unlock()
	return mock.DeleteCardFunc(ctx, input)
}

func (mock *studyServiceMock) DeleteCardCalls() []struct {
	Ctx   context.Context
	Input study.CardIDInput
} {
	mock.lockDeleteCard.RLock()
	calls := mock.calls.DeleteCard
	mock.lockDeleteCard.RUnlock()
	return calls
}

func (mock *studyServiceMock) ReviewCard(ctx context.Context, input study.ReviewCardInput) (*domain.Card, error) {
	if mock.ReviewCardFunc == nil {
		panic("studyServiceMock.ReviewCardFunc: method is nil but studyService.ReviewCard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.ReviewCardInput
	}{Ctx: ctx, Input: input}
	mock.lockReviewCard.Lock()
	mock.calls.ReviewCard = append(mock.calls.ReviewCard, callInfo)
	mock.lockReviewCard.Unlock()
	return mock.ReviewCardFunc(ctx, input)
}

func (mock *studyServiceMock) ReviewCardCalls() []struct {
	Ctx   context.Context
	Input study.ReviewCardInput
} {
	mock.lockReviewCard.RLock()
	calls := mock.calls.ReviewCard
	mock.lockReviewCard.RUnlock()
	return calls
}

func (mock *studyServiceMock) UndoReview(ctx context.Context, input study.CardIDInput) (*domain.Card, error) {
	if mock.UndoReviewFunc == nil {
		panic("studyServiceMock.UndoReviewFunc: method is nil but studyService.UndoReview was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.CardIDInput
	}{Ctx: ctx, Input: input}
	mock.lockUndoReview.Lock()
	mock.calls.UndoReview = append(mock.calls.UndoReview, callInfo)
	mock.lockUndoReview.Unlock()
	return mock.UndoReviewFunc(ctx, input)
}

func (mock *studyServiceMock) UndoReviewCalls() []struct {
	Ctx   context.Context
	Input study.CardIDInput
} {
	mock.lockUndoReview.RLock()
	calls := mock.calls.UndoReview
	mock.lockUndoReview.RUnlock()
	return calls
}

func (mock *studyServiceMock) RescheduleCard(ctx context.Context, input study.CardIDInput) (*domain.Card, error) {
	if mock.RescheduleCardFunc == nil {
		panic("studyServiceMock.RescheduleCardFunc: method is nil but studyService.RescheduleCard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.CardIDInput
	}{Ctx: ctx, Input: input}
	mock.lockRescheduleCard.Lock()
	mock.calls.RescheduleCard = append(mock.calls.RescheduleCard, callInfo)
	mock.lockRescheduleCard.Unlock()
	return mock.RescheduleCardFunc(ctx, input)
}

func (mock *studyServiceMock) RescheduleCardCalls() []struct {
	Ctx   context.Context
	Input study.CardIDInput
} {
	mock.lockRescheduleCard.RLock()
	calls := mock.calls.RescheduleCard
	mock.lockRescheduleCard.RUnlock()
	return calls
}

func (mock *studyServiceMock) PreviewCard(ctx context.Context, input study.CardIDInput) ([]domain.ReviewOutcome, error) {
	if mock.PreviewCardFunc == nil {
		panic("studyServiceMock.PreviewCardFunc: method is nil but studyService.PreviewCard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.CardIDInput
	}{Ctx: ctx, Input: input}
	mock.lockPreviewCard.Lock()
	mock.calls.PreviewCard = append(mock.calls.PreviewCard, callInfo)
	mock.lockPreviewCard.Unlock()
	return mock.PreviewCardFunc(ctx, input)
}

func (mock *studyServiceMock) PreviewCardCalls() []struct {
	Ctx   context.Context
	Input study.CardIDInput
} {
	mock.lockPreviewCard.RLock()
	calls := mock.calls.PreviewCard
	mock.lockPreviewCard.RUnlock()
	return calls
}

func (mock *studyServiceMock) GetStudyQueue(ctx context.Context, input study.GetQueueInput) ([]*domain.Card, error) {
	if mock.GetStudyQueueFunc == nil {
		panic("studyServiceMock.GetStudyQueueFunc: method is nil but studyService.GetStudyQueue was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.GetQueueInput
	}{Ctx: ctx, Input: input}
	mock.lockGetStudyQueue.Lock()
	mock.calls.GetStudyQueue = append(mock.calls.GetStudyQueue, callInfo)
	mock.lockGetStudyQueue.Unlock()
	return mock.GetStudyQueueFunc(ctx, input)
}

func (mock *studyServiceMock) GetStudyQueueCalls() []struct {
	Ctx   context.Context
	Input study.GetQueueInput
} {
	mock.lockGetStudyQueue.RLock()
	calls := mock.calls.GetStudyQueue
	mock.lockGetStudyQueue.RUnlock()
	return calls
}

func (mock *studyServiceMock) GetCardHistory(ctx context.Context, input study.GetCardHistoryInput) ([]*domain.ReviewLog, int, error) {
	if mock.GetCardHistoryFunc == nil {
		panic("studyServiceMock.GetCardHistoryFunc: method is nil but studyService.GetCardHistory was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.GetCardHistoryInput
	}{Ctx: ctx, Input: input}
	mock.lockGetCardHistory.Lock()
	mock.calls.GetCardHistory = append(mock.calls.GetCardHistory, callInfo)
	mock.lockGetCardHistory.Unlock()
	return mock.GetCardHistoryFunc(ctx, input)
}

func (mock *studyServiceMock) GetCardHistoryCalls() []struct {
	Ctx   context.Context
	Input study.GetCardHistoryInput
} {
	mock.lockGetCardHistory.RLock()
	calls := mock.calls.GetCardHistory
	mock.lockGetCardHistory.RUnlock()
	return calls
}
