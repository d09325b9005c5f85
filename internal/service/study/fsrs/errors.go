package fsrs

import "errors"

var (
	ErrNonUTCTime        = errors.New("fsrs: review time must be in UTC")
	ErrInvalidParameters = errors.New("fsrs: invalid scheduler parameters")
	ErrInvalidRating     = errors.New("fsrs: invalid rating")
	ErrInvalidCardState  = errors.New("fsrs: invalid card state")
	ErrCardMismatch      = errors.New("fsrs: review log belongs to another card")
)
