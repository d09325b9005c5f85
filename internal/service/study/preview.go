package study

import (
	"context"
	"fmt"

	"github.com/heartmarshall/yomi-backend/internal/domain"
	"github.com/heartmarshall/yomi-backend/internal/service/study/fsrs"
)

// PreviewCard shows the next state and due time for every grade without
// changing anything. Outcomes are ordered AGAIN, HARD, GOOD, EASY.
func (s *Service) PreviewCard(ctx context.Context, input CardIDInput) ([]domain.ReviewOutcome, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	card, err := s.cards.GetByID(ctx, uid, input.CardID)
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}

	now := s.now().UTC()
	next, err := s.scheduler.PreviewCard(cardToFSRS(card), now)
	if err != nil {
		return nil, fmt.Errorf("preview card: %w", err)
	}

	outcomes := make([]domain.ReviewOutcome, 0, len(fsrs.Ratings))
	for _, rating := range fsrs.Ratings {
		c := next[rating]
		outcomes = append(outcomes, domain.ReviewOutcome{
			Grade:    mapRatingToGrade(rating),
			State:    c.State,
			Due:      c.Due,
			Interval: c.Due.Sub(now),
		})
	}

	return outcomes, nil
}
