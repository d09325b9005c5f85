package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/yomi-backend/internal/domain"
	"github.com/heartmarshall/yomi-backend/internal/service/study/fsrs"
)

// CreateCard creates a fresh card for one reading of a word. A card for the
// same word and reading must not already exist.
func (s *Service) CreateCard(ctx context.Context, input CreateCardInput) (*domain.Card, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	fresh := fsrs.NewCard(uuid.New(), now)

	card, err := s.cards.Create(ctx, applyFSRS(&domain.Card{
		ID:           fresh.ID,
		UserID:       uid,
		WordID:       input.WordID,
		ReadingIndex: input.ReadingIndex,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, fresh))
	if err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}

	s.log.InfoContext(ctx, "card created",
		slog.String("user_id", uid.String()),
		slog.String("card_id", card.ID.String()),
		slog.Int64("word_id", input.WordID),
		slog.Int("reading_index", input.ReadingIndex),
	)

	return card, nil
}

// GetCard returns a card of the current user with its current retrievability.
func (s *Service) GetCard(ctx context.Context, input CardIDInput) (*domain.CardView, error) {
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

	return s.view(card), nil
}

// GetCardByWord returns the card for a word reading of the current user.
func (s *Service) GetCardByWord(ctx context.Context, input GetCardByWordInput) (*domain.CardView, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	card, err := s.cards.GetByKey(ctx, uid, input.WordID, input.ReadingIndex)
	if err != nil {
		return nil, fmt.Errorf("get card by word: %w", err)
	}

	return s.view(card), nil
}

// DeleteCard deletes a card. Its review logs go with it.
func (s *Service) DeleteCard(ctx context.Context, input CardIDInput) error {
	uid, err := userID(ctx)
	if err != nil {
		return err
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.cards.Delete(ctx, uid, input.CardID); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}

	s.log.InfoContext(ctx, "card deleted",
		slog.String("user_id", uid.String()),
		slog.String("card_id", input.CardID.String()),
	)

	return nil
}

func (s *Service) view(card *domain.Card) *domain.CardView {
	return &domain.CardView{
		Card:           *card,
		Retrievability: s.scheduler.Retrievability(cardToFSRS(card), s.now().UTC()),
	}
}
