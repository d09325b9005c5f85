// Package fsrs implements the FSRS-6 spaced repetition scheduler.
//
// All functions are pure: cards are values, a review returns a new card and
// never touches its input. The only source of nondeterminism is interval
// fuzzing, which draws from a RandSource owned by the Scheduler.
package fsrs

import (
	"math"
	"time"
)

// WeightCount is the number of model weights FSRS-6 expects.
const WeightCount = 21

// StabilityMin is the floor for stability values.
const StabilityMin = 0.001

// DefaultWeights are the default FSRS-6 model weights (w[0]..w[20]).
var DefaultWeights = [WeightCount]float64{
	0.2172,  // w0  - initial stability for Again
	1.1771,  // w1  - initial stability for Hard
	3.2602,  // w2  - initial stability for Good
	16.1507, // w3  - initial stability for Easy
	7.0114,  // w4  - initial difficulty mean reversion
	0.57,    // w5  - initial difficulty slope
	2.0966,  // w6  - difficulty update step
	0.0069,  // w7  - difficulty mean reversion weight
	1.5261,  // w8  - recall stability: exp(w8)
	0.112,   // w9  - recall stability: S^(-w9)
	1.0178,  // w10 - recall stability: exp(w10*(1-R)) - 1
	1.849,   // w11 - forget stability: multiplier
	0.1133,  // w12 - forget stability: D^(-w12)
	0.3127,  // w13 - forget stability: (S+1)^w13 - 1
	2.2934,  // w14 - forget stability: exp(w14*(1-R))
	0.2191,  // w15 - recall stability: hard penalty
	3.0004,  // w16 - recall stability: easy bonus
	0.7536,  // w17 - short-term stability / forget cap
	0.3332,  // w18 - short-term stability / forget cap
	0.1437,  // w19 - short-term stability: S^(-w19)
	0.2,     // w20 - forgetting curve decay
}

// DefaultWeightsSlice returns a fresh copy of DefaultWeights.
func DefaultWeightsSlice() []float64 {
	w := make([]float64, WeightCount)
	copy(w, DefaultWeights[:])
	return w
}

// Scheduler defaults.
const (
	DefaultDesiredRetention = 0.9
	DefaultMaxIntervalDays  = 36500
)

// DefaultLearningSteps returns the default learning steps (1m, 10m).
func DefaultLearningSteps() []time.Duration {
	return []time.Duration{time.Minute, 10 * time.Minute}
}

// DefaultRelearningSteps returns the default relearning steps (10m).
func DefaultRelearningSteps() []time.Duration {
	return []time.Duration{10 * time.Minute}
}

// FuzzRange defines one band of the 3-tier fuzz system.
type FuzzRange struct {
	Start  float64
	End    float64
	Factor float64
}

var fuzzRanges = []FuzzRange{
	{Start: 2.5, End: 7.0, Factor: 0.15},
	{Start: 7.0, End: 20.0, Factor: 0.10},
	{Start: 20.0, End: math.Inf(1), Factor: 0.05},
}

const day = 24 * time.Hour
