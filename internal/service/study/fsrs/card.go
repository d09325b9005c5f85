package fsrs

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/yomi-backend/internal/domain"
)

// Memory is the established memory model of a card: stability in days and
// difficulty on a 1..10 scale. A card with a nil Memory has never been reviewed.
type Memory = domain.MemoryState

// Card is the scheduling snapshot of a single flashcard.
type Card struct {
	ID         uuid.UUID
	State      domain.CardState
	Step       *int // nil when State is Review
	Memory     *Memory
	Due        time.Time
	LastReview *time.Time
}

// NewCard returns a fresh card in the Learning state, due at now.
func NewCard(id uuid.UUID, now time.Time) Card {
	step := 0
	return Card{
		ID:    id,
		State: domain.CardStateLearning,
		Step:  &step,
		Due:   now,
	}
}

// Clone returns a deep copy of the card.
func (c Card) Clone() Card {
	out := c
	if c.Step != nil {
		v := *c.Step
		out.Step = &v
	}
	if c.Memory != nil {
		v := *c.Memory
		out.Memory = &v
	}
	if c.LastReview != nil {
		v := *c.LastReview
		out.LastReview = &v
	}
	return out
}

// ReviewLog records one review produced by the scheduler.
type ReviewLog struct {
	CardID     uuid.UUID
	Rating     Rating
	ReviewedAt time.Time
	DurationMs *int
}
