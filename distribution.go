package fault

import (
	"errors"
	"math/rand/v2"
	"time"
)

// Distribution produces one sampled delay duration per call.
//
// Sample must be safe for concurrent use and must not keep mutable state
// across calls.
type Distribution interface {
	Sample() time.Duration
}

// DistributionFunc adapts a function to the Distribution interface.
type DistributionFunc func() time.Duration

// Sample invokes the function.
func (f DistributionFunc) Sample() time.Duration {
	return f()
}

// ErrInvalidRange is returned when a latency range has a negative lower
// bound or a lower bound at or above the upper bound.
var ErrInvalidRange = errors.New("invalid latency range")

// Uniform returns a Distribution that samples uniformly from the half-open
// interval [low, high). The upper bound is exclusive.
//
// Uniform returns ErrInvalidRange when low is negative or low >= high.
func Uniform(low, high time.Duration) (Distribution, error) {
	if low < 0 || low >= high {
		return nil, ErrInvalidRange
	}
	return DistributionFunc(func() time.Duration {
		return low + rand.N(high-low)
	}), nil
}

// Fixed returns a Distribution that always samples the same duration.
func Fixed(d time.Duration) Distribution {
	return DistributionFunc(func() time.Duration { return d })
}
