package domain

import "time"

// SRSConfig holds the process-wide scheduler configuration.
type SRSConfig struct {
	DesiredRetention float64
	MaxIntervalDays  int
	EnableFuzz       bool
	LearningSteps    []time.Duration
	RelearningSteps  []time.Duration
	Weights          []float64
	UndoWindow       time.Duration
}

// CardView is a card together with its current probability of recall.
type CardView struct {
	Card           Card
	Retrievability float64
}

// ReviewOutcome is where a card would land if it were reviewed now with Grade.
type ReviewOutcome struct {
	Grade    ReviewGrade
	State    CardState
	Due      time.Time
	Interval time.Duration
}
