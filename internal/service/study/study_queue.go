package study

import (
	"context"
	"fmt"

	"github.com/heartmarshall/yomi-backend/internal/domain"
)

// GetStudyQueue returns the current user's cards that are due now, most
// overdue first.
func (s *Service) GetStudyQueue(ctx context.Context, input GetQueueInput) ([]*domain.Card, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultQueueLimit
	}

	cards, err := s.cards.GetDue(ctx, uid, s.now().UTC(), limit)
	if err != nil {
		return nil, fmt.Errorf("get due cards: %w", err)
	}

	return cards, nil
}

// GetCardHistory returns a page of a card's review logs, newest first, and
// the total number of logs.
func (s *Service) GetCardHistory(ctx context.Context, input GetCardHistoryInput) ([]*domain.ReviewLog, int, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, 0, err
	}

	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	// Ownership check.
	if _, err := s.cards.GetByID(ctx, uid, input.CardID); err != nil {
		return nil, 0, fmt.Errorf("get card: %w", err)
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultHistoryLimit
	}

	logs, total, err := s.reviews.GetByCardID(ctx, input.CardID, limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("get review logs: %w", err)
	}

	return logs, total, nil
}
