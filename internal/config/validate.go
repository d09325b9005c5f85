package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/yomi-backend/internal/service/study/fsrs"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %s)", c.Auth.AccessTokenTTL)
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.SRS.validate(); err != nil {
		return fmt.Errorf("srs: %w", err)
	}

	return nil
}

func (s *SRSConfig) validate() error {
	if s.DesiredRetention <= 0 || s.DesiredRetention >= 1 {
		return fmt.Errorf("desired_retention must be in (0, 1) (got %v)", s.DesiredRetention)
	}
	if s.MaxIntervalDays <= 0 {
		return fmt.Errorf("max_interval_days must be > 0 (got %d)", s.MaxIntervalDays)
	}
	if s.UndoWindow < 0 {
		return fmt.Errorf("undo_window must be >= 0 (got %s)", s.UndoWindow)
	}

	steps, err := ParseSteps(s.LearningStepsRaw)
	if err != nil {
		return fmt.Errorf("learning_steps: %w", err)
	}
	s.LearningSteps = steps

	steps, err = ParseSteps(s.RelearningStepsRaw)
	if err != nil {
		return fmt.Errorf("relearning_steps: %w", err)
	}
	s.RelearningSteps = steps

	weights, err := ParseWeights(s.WeightsRaw)
	if err != nil {
		return fmt.Errorf("weights: %w", err)
	}
	s.Weights = weights

	return nil
}

// ParseSteps parses a comma-separated string of durations (e.g. "1m,10m")
// into a slice of time.Duration. An empty string returns a nil slice, which
// makes new or lapsed cards skip straight to review.
func ParseSteps(raw string) ([]time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	steps := make([]time.Duration, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		d, err := time.ParseDuration(p)
		if err != nil {
			return nil, fmt.Errorf("invalid duration %q: %w", p, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("step %q must be positive", p)
		}
		steps = append(steps, d)
	}

	return steps, nil
}

// ParseWeights parses a comma-separated FSRS weight vector. An empty string
// returns nil so the scheduler falls back to its defaults.
func ParseWeights(raw string) ([]float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	weights := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q: %w", p, err)
		}
		weights = append(weights, v)
	}

	if err := fsrs.ValidateWeights(weights); err != nil {
		return nil, err
	}

	return weights, nil
}
