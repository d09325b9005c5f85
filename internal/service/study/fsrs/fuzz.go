package fsrs

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"
)

// RandSource produces uniformly distributed floats in [0, 1).
// *rand.Rand from math/rand and math/rand/v2 both satisfy it.
type RandSource interface {
	Float64() float64
}

// lockedRand makes a *rand.Rand safe for concurrent use by one Scheduler.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func newLockedRand() *lockedRand {
	//nolint:gosec // interval jitter, not cryptographic
	return &lockedRand{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

// fuzzRange returns the bounds, in whole days, that a fuzzed interval of
// days may fall into.
func fuzzRange(days float64, maxInterval int) (minIvl, maxIvl int) {
	delta := 1.0
	for _, r := range fuzzRanges {
		delta += r.Factor * math.Max(math.Min(days, r.End)-r.Start, 0)
	}

	minIvl = max(2, int(math.Round(days-delta)))
	maxIvl = min(int(math.Round(days+delta)), maxInterval)
	minIvl = min(minIvl, maxIvl)
	return minIvl, maxIvl
}

// ApplyFuzz jitters a review interval so cards scheduled together drift apart.
// Intervals shorter than 2.5 days are returned unchanged.
func ApplyFuzz(interval time.Duration, maxInterval int, rng RandSource) time.Duration {
	days := float64(interval / day)
	if days < 2.5 {
		return interval
	}

	minIvl, maxIvl := fuzzRange(days, maxInterval)

	fuzzed := rng.Float64()*float64(maxIvl-minIvl+1) + float64(minIvl)
	fuzzedDays := min(int(math.Round(fuzzed)), maxInterval)

	return time.Duration(fuzzedDays) * day
}
