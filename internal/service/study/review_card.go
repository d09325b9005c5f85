package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/yomi-backend/internal/domain"
)

// ReviewCard records a review and reschedules the card. The card row is
// locked for the duration of the transaction, so concurrent reviews of the
// same card are applied one after another.
func (s *Service) ReviewCard(ctx context.Context, input ReviewCardInput) (*domain.Card, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		before  *domain.Card
		updated *domain.Card
	)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		card, getErr := s.cards.GetByIDForUpdate(txCtx, uid, input.CardID)
		if getErr != nil {
			return fmt.Errorf("get card: %w", getErr)
		}
		before = card

		now := s.now().UTC()
		result, reviewLog, reviewErr := s.scheduler.ReviewCard(cardToFSRS(card), mapGradeToRating(input.Grade), now, input.DurationMs)
		if reviewErr != nil {
			return fmt.Errorf("schedule review: %w", reviewErr)
		}

		next := applyFSRS(card, result)
		next.UpdatedAt = now

		var updateErr error
		updated, updateErr = s.cards.Update(txCtx, next)
		if updateErr != nil {
			return fmt.Errorf("update card: %w", updateErr)
		}

		_, logErr := s.reviews.Create(txCtx, &domain.ReviewLog{
			ID:         uuid.New(),
			CardID:     card.ID,
			Grade:      input.Grade,
			PrevState:  card.Snapshot(),
			DurationMs: reviewLog.DurationMs,
			ReviewedAt: reviewLog.ReviewedAt,
		})
		if logErr != nil {
			return fmt.Errorf("create review log: %w", logErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	attrs := []any{
		slog.String("user_id", uid.String()),
		slog.String("card_id", input.CardID.String()),
		slog.String("grade", string(input.Grade)),
		slog.String("old_state", string(before.State)),
		slog.String("new_state", string(updated.State)),
		slog.Time("due", updated.Due),
	}
	if updated.Memory != nil {
		attrs = append(attrs, slog.Float64("stability", updated.Memory.Stability))
	}
	s.log.InfoContext(ctx, "card reviewed", attrs...)

	return updated, nil
}
