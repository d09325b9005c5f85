package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/yomi-backend/internal/domain"
)

// UndoReview reverts the last review of a card within the undo window.
func (s *Service) UndoReview(ctx context.Context, input CardIDInput) (*domain.Card, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		restored    *domain.Card
		undoneGrade domain.ReviewGrade
	)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		card, cardErr := s.cards.GetByIDForUpdate(txCtx, uid, input.CardID)
		if cardErr != nil {
			return fmt.Errorf("get card: %w", cardErr)
		}

		lastLog, logErr := s.reviews.GetLastByCardID(txCtx, card.ID)
		if logErr != nil {
			if errors.Is(logErr, domain.ErrNotFound) {
				return domain.NewValidationError("card_id", "card has no reviews to undo")
			}
			return fmt.Errorf("get last review: %w", logErr)
		}

		if lastLog.PrevState == nil {
			return domain.NewValidationError("review", "review cannot be undone")
		}
		if s.now().Sub(lastLog.ReviewedAt) > s.undoWindow {
			return domain.NewValidationError("review", "undo window expired")
		}

		next := *card
		next.Restore(lastLog.PrevState)
		next.UpdatedAt = s.now().UTC()

		var restoreErr error
		restored, restoreErr = s.cards.Update(txCtx, &next)
		if restoreErr != nil {
			return fmt.Errorf("restore card: %w", restoreErr)
		}

		if deleteErr := s.reviews.Delete(txCtx, lastLog.ID); deleteErr != nil {
			return fmt.Errorf("delete review log: %w", deleteErr)
		}

		undoneGrade = lastLog.Grade
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "review undone",
		slog.String("user_id", uid.String()),
		slog.String("card_id", input.CardID.String()),
		slog.String("undone_grade", string(undoneGrade)),
		slog.String("restored_state", string(restored.State)),
	)

	return restored, nil
}
