package domain

import (
	"time"

	"github.com/google/uuid"
)

// MemoryState is the learned memory model of a card. A card that has never
// been reviewed carries no MemoryState at all.
type MemoryState struct {
	Stability  float64 `json:"stability"`
	Difficulty float64 `json:"difficulty"`
}

// Card is a user's flashcard for one reading of one word.
type Card struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	WordID       int64
	ReadingIndex int
	State        CardState
	Step         *int
	Memory       *MemoryState
	Due          time.Time
	LastReview   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsDue returns true if the card needs review at the given time.
func (c *Card) IsDue(now time.Time) bool {
	return !c.Due.After(now)
}

// Snapshot captures the scheduling fields of the card.
func (c *Card) Snapshot() *CardSnapshot {
	snap := &CardSnapshot{
		State: c.State,
		Due:   c.Due,
	}
	if c.Step != nil {
		step := *c.Step
		snap.Step = &step
	}
	if c.Memory != nil {
		m := *c.Memory
		snap.Memory = &m
	}
	if c.LastReview != nil {
		lr := *c.LastReview
		snap.LastReview = &lr
	}
	return snap
}

// Restore overwrites the scheduling fields of the card with the snapshot.
func (c *Card) Restore(snap *CardSnapshot) {
	c.State = snap.State
	c.Due = snap.Due
	c.Step = nil
	c.Memory = nil
	c.LastReview = nil
	if snap.Step != nil {
		step := *snap.Step
		c.Step = &step
	}
	if snap.Memory != nil {
		m := *snap.Memory
		c.Memory = &m
	}
	if snap.LastReview != nil {
		lr := *snap.LastReview
		c.LastReview = &lr
	}
}

// ReviewLog records a single review event for a card.
type ReviewLog struct {
	ID         uuid.UUID
	CardID     uuid.UUID
	Grade      ReviewGrade
	PrevState  *CardSnapshot
	DurationMs *int
	ReviewedAt time.Time
}

// CardSnapshot captures the scheduling state of a card before a review (for undo).
type CardSnapshot struct {
	State      CardState    `json:"state"`
	Step       *int         `json:"step,omitempty"`
	Memory     *MemoryState `json:"memory,omitempty"`
	Due        time.Time    `json:"due"`
	LastReview *time.Time   `json:"last_review,omitempty"`
}
