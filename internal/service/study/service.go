// Package study orchestrates card scheduling: it loads cards, runs the FSRS
// scheduler and persists the result together with a review log.
package study

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/yomi-backend/internal/domain"
	"github.com/heartmarshall/yomi-backend/internal/service/study/fsrs"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type cardRepo interface {
	GetByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error)
	GetByIDForUpdate(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error)
	GetByKey(ctx context.Context, userID uuid.UUID, wordID int64, readingIndex int) (*domain.Card, error)
	Create(ctx context.Context, card *domain.Card) (*domain.Card, error)
	Update(ctx context.Context, card *domain.Card) (*domain.Card, error)
	Delete(ctx context.Context, userID, cardID uuid.UUID) error
	GetDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]*domain.Card, error)
}

type reviewLogRepo interface {
	Create(ctx context.Context, log *domain.ReviewLog) (*domain.ReviewLog, error)
	GetByCardID(ctx context.Context, cardID uuid.UUID, limit, offset int) ([]*domain.ReviewLog, int, error)
	ListByCardID(ctx context.Context, cardID uuid.UUID) ([]*domain.ReviewLog, error)
	GetLastByCardID(ctx context.Context, cardID uuid.UUID) (*domain.ReviewLog, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

const (
	defaultQueueLimit   = 50
	defaultHistoryLimit = 50
)

// Service implements the study business logic.
type Service struct {
	cards      cardRepo
	reviews    reviewLogRepo
	tx         txManager
	log        *slog.Logger
	scheduler  *fsrs.Scheduler
	undoWindow time.Duration
	now        func() time.Time
}

// NewService creates a new Study service. An empty cfg.Weights selects the
// default FSRS-6 weights.
func NewService(
	log *slog.Logger,
	cards cardRepo,
	reviews reviewLogRepo,
	tx txManager,
	cfg domain.SRSConfig,
	opts ...fsrs.Option,
) (*Service, error) {
	scheduler, err := fsrs.NewScheduler(parametersFromConfig(cfg), opts...)
	if err != nil {
		return nil, fmt.Errorf("build scheduler: %w", err)
	}

	return &Service{
		cards:      cards,
		reviews:    reviews,
		tx:         tx,
		log:        log.With("service", "study"),
		scheduler:  scheduler,
		undoWindow: cfg.UndoWindow,
		now:        time.Now,
	}, nil
}

func parametersFromConfig(cfg domain.SRSConfig) fsrs.Parameters {
	params := fsrs.Parameters{
		W:                cfg.Weights,
		DesiredRetention: cfg.DesiredRetention,
		LearningSteps:    cfg.LearningSteps,
		RelearningSteps:  cfg.RelearningSteps,
		MaxIntervalDays:  cfg.MaxIntervalDays,
		EnableFuzz:       cfg.EnableFuzz,
	}
	if len(params.W) == 0 {
		params.W = fsrs.DefaultWeightsSlice()
	}
	return params
}
