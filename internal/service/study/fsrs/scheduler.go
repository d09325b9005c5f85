package fsrs

import (
	"fmt"
	"slices"
	"time"

	"github.com/heartmarshall/yomi-backend/internal/domain"
)

const (
	learning   = domain.CardStateLearning
	review     = domain.CardStateReview
	relearning = domain.CardStateRelearning
)

// Parameters holds all scheduler configuration.
type Parameters struct {
	W                []float64
	DesiredRetention float64
	LearningSteps    []time.Duration
	RelearningSteps  []time.Duration
	MaxIntervalDays  int
	EnableFuzz       bool
}

// DefaultParameters returns the FSRS-6 defaults with fuzzing enabled.
func DefaultParameters() Parameters {
	return Parameters{
		W:                DefaultWeightsSlice(),
		DesiredRetention: DefaultDesiredRetention,
		LearningSteps:    DefaultLearningSteps(),
		RelearningSteps:  DefaultRelearningSteps(),
		MaxIntervalDays:  DefaultMaxIntervalDays,
		EnableFuzz:       true,
	}
}

// Validate checks that p can drive a Scheduler.
func (p Parameters) Validate() error {
	if err := ValidateWeights(p.W); err != nil {
		return err
	}
	if p.DesiredRetention <= 0 || p.DesiredRetention >= 1 {
		return fmt.Errorf("%w: desired retention %v must be in (0, 1)", ErrInvalidParameters, p.DesiredRetention)
	}
	if p.MaxIntervalDays < 1 {
		return fmt.Errorf("%w: maximum interval %d must be at least 1", ErrInvalidParameters, p.MaxIntervalDays)
	}
	for i, s := range p.LearningSteps {
		if s <= 0 {
			return fmt.Errorf("%w: learning step %d must be positive", ErrInvalidParameters, i)
		}
	}
	for i, s := range p.RelearningSteps {
		if s <= 0 {
			return fmt.Errorf("%w: relearning step %d must be positive", ErrInvalidParameters, i)
		}
	}
	return nil
}

func (p Parameters) clone() Parameters {
	out := p
	out.W = slices.Clone(p.W)
	out.LearningSteps = slices.Clone(p.LearningSteps)
	out.RelearningSteps = slices.Clone(p.RelearningSteps)
	return out
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithRand sets the random source used for interval fuzzing.
func WithRand(rng RandSource) Option {
	return func(s *Scheduler) {
		s.rng = rng
	}
}

// Scheduler computes the next state of a card after a review.
// It is safe for concurrent use as long as its RandSource is.
type Scheduler struct {
	params Parameters
	rng    RandSource
}

// NewScheduler validates params and builds a Scheduler.
func NewScheduler(params Parameters, opts ...Option) (*Scheduler, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	s := &Scheduler{params: params.clone()}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = newLockedRand()
	}
	return s, nil
}

// Parameters returns a copy of the scheduler configuration.
func (s *Scheduler) Parameters() Parameters {
	return s.params.clone()
}

// ReviewCard applies rating to card at reviewedAt and returns the updated card
// together with a log of the review. The input card is not modified.
func (s *Scheduler) ReviewCard(card Card, rating Rating, reviewedAt time.Time, durationMs *int) (Card, ReviewLog, error) {
	if reviewedAt.Location() != time.UTC {
		return Card{}, ReviewLog{}, fmt.Errorf("%w: got %s", ErrNonUTCTime, reviewedAt.Location())
	}
	if !rating.IsValid() {
		return Card{}, ReviewLog{}, fmt.Errorf("%w: %d", ErrInvalidRating, int(rating))
	}
	if !card.State.IsValid() {
		return Card{}, ReviewLog{}, fmt.Errorf("%w: unknown state %q", ErrInvalidCardState, card.State)
	}
	if card.Memory == nil && card.State != learning {
		return Card{}, ReviewLog{}, fmt.Errorf("%w: %s card without memory", ErrInvalidCardState, card.State)
	}

	c := card.Clone()
	s.updateMemory(&c, rating, reviewedAt)

	interval := s.transition(&c, rating)
	if s.params.EnableFuzz && c.State == review {
		interval = ApplyFuzz(interval, s.params.MaxIntervalDays, s.rng)
	}

	c.Due = reviewedAt.Add(interval)
	c.LastReview = &reviewedAt

	log := ReviewLog{
		CardID:     c.ID,
		Rating:     rating,
		ReviewedAt: reviewedAt,
	}
	if durationMs != nil {
		d := *durationMs
		log.DurationMs = &d
	}
	return c, log, nil
}

// Retrievability returns the probability of recalling card at now.
func (s *Scheduler) Retrievability(card Card, now time.Time) float64 {
	return Retrievability(s.params.W, card, now)
}

// PreviewCard returns the card that each rating would produce at now.
func (s *Scheduler) PreviewCard(card Card, now time.Time) (map[Rating]Card, error) {
	out := make(map[Rating]Card, len(Ratings))
	for _, r := range Ratings {
		c, _, err := s.ReviewCard(card, r, now, nil)
		if err != nil {
			return nil, err
		}
		out[r] = c
	}
	return out, nil
}

// RescheduleCard rebuilds the scheduling state of card by replaying logs,
// in chronological order, on a fresh card with the same ID.
func (s *Scheduler) RescheduleCard(card Card, logs []ReviewLog) (Card, error) {
	ordered := slices.Clone(logs)
	slices.SortStableFunc(ordered, func(a, b ReviewLog) int {
		return a.ReviewedAt.Compare(b.ReviewedAt)
	})

	c := NewCard(card.ID, card.Due)
	for _, l := range ordered {
		if l.CardID != card.ID {
			return Card{}, fmt.Errorf("%w: card %s, log %s", ErrCardMismatch, card.ID, l.CardID)
		}
		next, _, err := s.ReviewCard(c, l.Rating, l.ReviewedAt.UTC(), l.DurationMs)
		if err != nil {
			return Card{}, fmt.Errorf("replay review at %s: %w", l.ReviewedAt, err)
		}
		c = next
	}
	return c, nil
}

// updateMemory sets the stability and difficulty that result from the review.
func (s *Scheduler) updateMemory(c *Card, rating Rating, reviewedAt time.Time) {
	w := s.params.W

	switch {
	case c.Memory == nil:
		c.Memory = &Memory{
			Stability:  InitialStability(w, rating),
			Difficulty: InitialDifficulty(w, rating),
		}
	case c.LastReview != nil && elapsedDays(*c.LastReview, reviewedAt) < 1:
		c.Memory = &Memory{
			Stability:  ShortTermStability(w, c.Memory.Stability, rating),
			Difficulty: NextDifficulty(w, c.Memory.Difficulty, rating),
		}
	default:
		r := Retrievability(w, *c, reviewedAt)
		c.Memory = &Memory{
			Stability:  NextStability(w, c.Memory.Difficulty, c.Memory.Stability, r, rating),
			Difficulty: NextDifficulty(w, c.Memory.Difficulty, rating),
		}
	}
}

// move is one cell of the transition table.
type move struct {
	state  domain.CardState
	rating Rating
}

// transition moves c to its next state and returns the interval until the
// next review. c.Memory must already reflect the review.
func (s *Scheduler) transition(c *Card, rating Rating) time.Duration {
	steps := s.stepsFor(c.State)
	step := 0
	if c.Step != nil {
		step = *c.Step
	}

	if c.State.HasStep() && (len(steps) == 0 || (step >= len(steps) && rating != Again)) {
		return s.graduate(c)
	}

	switch (move{c.State, rating}) {
	case move{learning, Again}, move{relearning, Again}:
		c.Step = intPtr(0)
		return steps[0]

	case move{learning, Hard}, move{relearning, Hard}:
		switch {
		case step == 0 && len(steps) == 1:
			return steps[0] * 3 / 2
		case step == 0:
			return (steps[0] + steps[1]) / 2
		default:
			return steps[step]
		}

	case move{learning, Good}, move{relearning, Good}:
		if step+1 == len(steps) {
			return s.graduate(c)
		}
		c.Step = intPtr(step + 1)
		return steps[step+1]

	case move{learning, Easy}, move{relearning, Easy}:
		return s.graduate(c)

	case move{review, Again}:
		if len(s.params.RelearningSteps) == 0 {
			return s.reviewInterval(c)
		}
		c.State = relearning
		c.Step = intPtr(0)
		return s.params.RelearningSteps[0]

	case move{review, Hard}, move{review, Good}, move{review, Easy}:
		return s.reviewInterval(c)
	}

	// ReviewCard validates state and rating, so the table above is exhaustive.
	panic(fmt.Sprintf("fsrs: no transition for %s/%s", c.State, rating))
}

func (s *Scheduler) stepsFor(state domain.CardState) []time.Duration {
	if state == relearning {
		return s.params.RelearningSteps
	}
	return s.params.LearningSteps
}

func (s *Scheduler) graduate(c *Card) time.Duration {
	c.State = review
	c.Step = nil
	return s.reviewInterval(c)
}

func (s *Scheduler) reviewInterval(c *Card) time.Duration {
	days := NextIntervalDays(s.params.W, c.Memory.Stability, s.params.DesiredRetention, s.params.MaxIntervalDays)
	return time.Duration(days) * day
}

func intPtr(v int) *int { return &v }
