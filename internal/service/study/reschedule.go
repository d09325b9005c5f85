package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/yomi-backend/internal/domain"
)

// RescheduleCard rebuilds a card's schedule by replaying its whole review
// history through the current scheduler. Used after the scheduler
// configuration changes.
func (s *Service) RescheduleCard(ctx context.Context, input CardIDInput) (*domain.Card, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		updated  *domain.Card
		replayed int
	)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		card, getErr := s.cards.GetByIDForUpdate(txCtx, uid, input.CardID)
		if getErr != nil {
			return fmt.Errorf("get card: %w", getErr)
		}

		logs, listErr := s.reviews.ListByCardID(txCtx, card.ID)
		if listErr != nil {
			return fmt.Errorf("list review logs: %w", listErr)
		}
		replayed = len(logs)

		result, replayErr := s.scheduler.RescheduleCard(cardToFSRS(card), logsToFSRS(logs))
		if replayErr != nil {
			return fmt.Errorf("replay reviews: %w", replayErr)
		}

		next := applyFSRS(card, result)
		next.UpdatedAt = s.now().UTC()

		var updateErr error
		updated, updateErr = s.cards.Update(txCtx, next)
		if updateErr != nil {
			return fmt.Errorf("update card: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "card rescheduled",
		slog.String("user_id", uid.String()),
		slog.String("card_id", input.CardID.String()),
		slog.Int("reviews_replayed", replayed),
		slog.String("state", string(updated.State)),
	)

	return updated, nil
}
