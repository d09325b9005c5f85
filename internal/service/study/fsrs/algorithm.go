package fsrs

import (
	"fmt"
	"math"
	"time"
)

// InitialDifficulty returns the starting difficulty for a given first rating.
//
//	D0(G) = w4 - exp(w5 * (G - 1)) + 1
//	clamped to [1, 10]
func InitialDifficulty(w []float64, rating Rating) float64 {
	d := w[4] - math.Exp(w[5]*float64(rating-1)) + 1
	return clampDifficulty(d)
}

// NextDifficulty calculates the new difficulty after a review.
//
//	delta  = -w6 * (G - 3)
//	damped = D + (10 - D) * delta / 9
//	D'     = w7 * D0(Easy) + (1 - w7) * damped
//	clamped to [1, 10]
func NextDifficulty(w []float64, d float64, rating Rating) float64 {
	delta := -w[6] * (float64(rating) - 3)
	damped := d + (10-d)*delta/9
	next := w[7]*InitialDifficulty(w, Easy) + (1-w[7])*damped
	return clampDifficulty(next)
}

// InitialStability returns the starting stability for a given first rating.
//
//	S0(G) = w[G-1]
func InitialStability(w []float64, rating Rating) float64 {
	return math.Max(StabilityMin, w[int(rating)-1])
}

// ShortTermStability calculates stability for a repeat review on the same day.
//
//	inc = exp(w17 * (G - 3 + w18)) * S^(-w19)
//	inc = max(inc, 1) for Good and Easy
//	S'  = S * inc
func ShortTermStability(w []float64, s float64, rating Rating) float64 {
	inc := math.Exp(w[17]*(float64(rating)-3+w[18])) * math.Pow(s, -w[19])
	if rating >= Good {
		inc = math.Max(inc, 1)
	}
	return math.Max(StabilityMin, s*inc)
}

// NextStability calculates stability after a review on a later day.
//
// Again:
//
//	S'f = w11 * D^(-w12) * ((S+1)^w13 - 1) * exp(w14*(1-R))
//	S'  = min(S'f, S / exp(w17*w18))
//
// Hard, Good, Easy:
//
//	S' = S * (1 + exp(w8) * (11-D) * S^(-w9) * (exp(w10*(1-R)) - 1) * hardPenalty * easyBonus)
func NextStability(w []float64, d, s, r float64, rating Rating) float64 {
	if rating == Again {
		longTerm := w[11] *
			math.Pow(d, -w[12]) *
			(math.Pow(s+1, w[13]) - 1) *
			math.Exp((1-r)*w[14])
		shortTermCap := s / math.Exp(w[17]*w[18])
		return math.Max(StabilityMin, math.Min(longTerm, shortTermCap))
	}

	hardPenalty := 1.0
	if rating == Hard {
		hardPenalty = w[15]
	}
	easyBonus := 1.0
	if rating == Easy {
		easyBonus = w[16]
	}

	next := s * (1 +
		math.Exp(w[8])*
			(11-d)*
			math.Pow(s, -w[9])*
			(math.Exp((1-r)*w[10])-1)*
			hardPenalty*
			easyBonus)

	return math.Max(StabilityMin, next)
}

// forgettingCurve returns (decay, factor) for the power forgetting curve,
// chosen so that R(S, S) = 0.9.
func forgettingCurve(w []float64) (decay, factor float64) {
	decay = -w[20]
	factor = math.Pow(0.9, 1/decay) - 1
	return decay, factor
}

// Retrievability returns the probability of recalling the card at now.
// A card that has never been reviewed has retrievability 0.
//
//	R(t, S) = (1 + factor * t / S)^decay
func Retrievability(w []float64, card Card, now time.Time) float64 {
	if card.Memory == nil || card.LastReview == nil {
		return 0
	}
	elapsed := max(0, elapsedDays(*card.LastReview, now))
	decay, factor := forgettingCurve(w)
	return math.Pow(1+factor*float64(elapsed)/card.Memory.Stability, decay)
}

// NextIntervalDays returns the number of days until retrievability falls to
// desiredRetention, rounded and clamped to [1, maxInterval].
//
//	I(S, r) = S / factor * (r^(1/decay) - 1)
func NextIntervalDays(w []float64, s, desiredRetention float64, maxInterval int) int {
	decay, factor := forgettingCurve(w)
	interval := s / factor * (math.Pow(desiredRetention, 1/decay) - 1)
	days := int(math.Round(interval))
	return min(max(1, days), maxInterval)
}

// ValidateWeights checks that w has 21 finite entries with positive initial stabilities.
func ValidateWeights(w []float64) error {
	if len(w) != WeightCount {
		return fmt.Errorf("%w: expected %d weights, got %d", ErrInvalidParameters, WeightCount, len(w))
	}
	for i, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: weight w[%d] is invalid: %v", ErrInvalidParameters, i, v)
		}
	}
	if w[0] <= 0 || w[1] <= 0 || w[2] <= 0 || w[3] <= 0 {
		return fmt.Errorf("%w: initial stability weights w[0]-w[3] must be positive", ErrInvalidParameters)
	}
	if w[20] <= 0 {
		return fmt.Errorf("%w: decay weight w[20] must be positive", ErrInvalidParameters)
	}
	return nil
}

// elapsedDays returns the number of whole days between from and to.
func elapsedDays(from, to time.Time) int {
	return int(math.Floor(float64(to.Sub(from)) / float64(day)))
}

// clampDifficulty constrains difficulty to [1, 10].
func clampDifficulty(d float64) float64 {
	return math.Max(1, math.Min(10, d))
}
