package study

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/yomi-backend/internal/domain"
	"github.com/heartmarshall/yomi-backend/internal/service/study/fsrs"
	"github.com/heartmarshall/yomi-backend/pkg/ctxutil"
)

// cardToFSRS copies the scheduling fields of a persisted card.
func cardToFSRS(card *domain.Card) fsrs.Card {
	return fsrs.Card{
		ID:         card.ID,
		State:      card.State,
		Step:       card.Step,
		Memory:     card.Memory,
		Due:        card.Due,
		LastReview: card.LastReview,
	}.Clone()
}

// applyFSRS returns a copy of card carrying the scheduling fields of result.
func applyFSRS(card *domain.Card, result fsrs.Card) *domain.Card {
	out := *card
	c := result.Clone()
	out.State = c.State
	out.Step = c.Step
	out.Memory = c.Memory
	out.Due = c.Due
	out.LastReview = c.LastReview
	return &out
}

func logsToFSRS(logs []*domain.ReviewLog) []fsrs.ReviewLog {
	out := make([]fsrs.ReviewLog, 0, len(logs))
	for _, l := range logs {
		out = append(out, fsrs.ReviewLog{
			CardID:     l.CardID,
			Rating:     mapGradeToRating(l.Grade),
			ReviewedAt: l.ReviewedAt,
			DurationMs: l.DurationMs,
		})
	}
	return out
}

// mapGradeToRating maps domain ReviewGrade to FSRS Rating.
func mapGradeToRating(grade domain.ReviewGrade) fsrs.Rating {
	switch grade {
	case domain.ReviewGradeAgain:
		return fsrs.Again
	case domain.ReviewGradeHard:
		return fsrs.Hard
	case domain.ReviewGradeGood:
		return fsrs.Good
	case domain.ReviewGradeEasy:
		return fsrs.Easy
	default:
		return 0
	}
}

func mapRatingToGrade(rating fsrs.Rating) domain.ReviewGrade {
	switch rating {
	case fsrs.Again:
		return domain.ReviewGradeAgain
	case fsrs.Hard:
		return domain.ReviewGradeHard
	case fsrs.Good:
		return domain.ReviewGradeGood
	default:
		return domain.ReviewGradeEasy
	}
}

// userID extracts the authenticated user's ID from context.
func userID(ctx context.Context) (uuid.UUID, error) {
	uid, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return uid, nil
}
