package study

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/yomi-backend/internal/domain"
)

const maxDurationMs = 600_000

// CreateCardInput holds the parameters for creating a card.
type CreateCardInput struct {
	WordID       int64
	ReadingIndex int
}

// Validate checks all fields and collects all errors.
func (i *CreateCardInput) Validate() error {
	var errs domain.FieldErrors

	if i.WordID <= 0 {
		errs.Add("word_id", "must be positive")
	}
	if i.ReadingIndex < 0 || i.ReadingIndex > 255 {
		errs.Add("reading_index", "must be between 0 and 255")
	}

	return errs.Err()
}

// CardIDInput identifies a single card of the current user.
type CardIDInput struct {
	CardID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *CardIDInput) Validate() error {
	if i.CardID == uuid.Nil {
		return domain.NewValidationError("card_id", "required")
	}
	return nil
}

// GetCardByWordInput looks a card up by its word and reading.
type GetCardByWordInput = CreateCardInput

// ReviewCardInput holds the parameters for reviewing a card.
type ReviewCardInput struct {
	CardID     uuid.UUID
	Grade      domain.ReviewGrade
	DurationMs *int
}

// Validate checks all fields and collects all errors.
func (i *ReviewCardInput) Validate() error {
	var errs domain.FieldErrors

	if i.CardID == uuid.Nil {
		errs.Add("card_id", "required")
	}
	if !i.Grade.IsValid() {
		errs.Add("grade", "must be AGAIN, HARD, GOOD, or EASY")
	}
	if i.DurationMs != nil && *i.DurationMs < 0 {
		errs.Add("duration_ms", "must be non-negative")
	}
	if i.DurationMs != nil && *i.DurationMs > maxDurationMs {
		errs.Add("duration_ms", "max 10 minutes")
	}

	return errs.Err()
}

// GetQueueInput holds the parameters for fetching the study queue.
type GetQueueInput struct {
	Limit int
}

// Validate checks all fields and collects all errors.
func (i *GetQueueInput) Validate() error {
	if i.Limit < 0 || i.Limit > 200 {
		return domain.NewValidationError("limit", "must be between 0 and 200")
	}
	return nil
}

// GetCardHistoryInput holds the parameters for fetching card review history.
type GetCardHistoryInput struct {
	CardID uuid.UUID
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i *GetCardHistoryInput) Validate() error {
	var errs domain.FieldErrors

	if i.CardID == uuid.Nil {
		errs.Add("card_id", "required")
	}
	if i.Limit < 0 || i.Limit > 200 {
		errs.Add("limit", "must be between 0 and 200")
	}
	if i.Offset < 0 {
		errs.Add("offset", "must be >= 0")
	}

	return errs.Err()
}
