package fault

import (
	"context"
	"time"
)

// Default latency parameters used by DefaultLatencyLayer.
const (
	DefaultLatencyProbability = 0.1
	DefaultLatencyLow         = 100 * time.Millisecond
	DefaultLatencyHigh        = 200 * time.Millisecond
)

// LatencyLayer configures latency injection. Like ErrorLayer it is an
// immutable value; With methods return modified copies and one layer may
// be applied to many inner handlers.
type LatencyLayer[Req, Resp any] struct {
	decider      Decider[Req]
	distribution Distribution
}

// NewLatencyLayer creates a LatencyLayer that delays roughly probability
// of all calls by a duration sampled uniformly from [low, high).
//
// The probability is the chance that a call is delayed, bound between 0
// and 1; out-of-range probabilities clamp to never or always. A negative
// low or low >= high returns ErrInvalidRange.
func NewLatencyLayer[Req, Resp any](probability float64, low, high time.Duration) (*LatencyLayer[Req, Resp], error) {
	dist, err := Uniform(low, high)
	if err != nil {
		return nil, err
	}
	return &LatencyLayer[Req, Resp]{
		decider:      Probability[Req](probability),
		distribution: dist,
	}, nil
}

// DefaultLatencyLayer creates a LatencyLayer with a 10% probability of
// injecting 100 to 200 milliseconds of latency.
func DefaultLatencyLayer[Req, Resp any]() *LatencyLayer[Req, Resp] {
	l, err := NewLatencyLayer[Req, Resp](DefaultLatencyProbability, DefaultLatencyLow, DefaultLatencyHigh)
	if err != nil {
		panic("fault: default latency layer: " + err.Error())
	}
	return l
}

// WithDecider returns a copy of the layer that uses d to decide when to
// delay.
func (l *LatencyLayer[Req, Resp]) WithDecider(d Decider[Req]) *LatencyLayer[Req, Resp] {
	c := *l
	c.decider = d
	return &c
}

// WithDistribution returns a copy of the layer that samples delays from
// dist.
func (l *LatencyLayer[Req, Resp]) WithDistribution(dist Distribution) *LatencyLayer[Req, Resp] {
	c := *l
	c.distribution = dist
	return &c
}

// Apply wraps inner with latency injection.
func (l *LatencyLayer[Req, Resp]) Apply(inner Handler[Req, Resp]) *LatencyService[Req, Resp] {
	return &LatencyService[Req, Resp]{
		inner:        inner,
		decider:      l.decider,
		distribution: l.distribution,
	}
}

// Middleware returns the layer as a Middleware for use with Stack.
func (l *LatencyLayer[Req, Resp]) Middleware() Middleware[Req, Resp] {
	return func(inner Handler[Req, Resp]) Handler[Req, Resp] {
		return l.Apply(inner)
	}
}

// LatencyService wraps an inner handler and delays a fraction of calls
// before delegating. The result is never altered, only its arrival time.
// Safe for concurrent use when the inner handler is.
type LatencyService[Req, Resp any] struct {
	inner        Handler[Req, Resp]
	decider      Decider[Req]
	distribution Distribution
}

// Call decides whether to delay req. If the decider fires, the call waits
// for a sampled duration before delegating; the wait is a timer select
// against ctx, so concurrent calls keep progressing and cancellation
// abandons both the delay and the not-yet-started inner call. Otherwise
// the call is delegated immediately.
func (s *LatencyService[Req, Resp]) Call(ctx context.Context, req Req) (Resp, error) {
	if s.decider.Decide(req) {
		if err := sleep(ctx, s.distribution.Sample()); err != nil {
			var zero Resp
			return zero, err
		}
	}
	return s.inner.Call(ctx, req)
}

// Ready reports the inner handler's readiness.
func (s *LatencyService[Req, Resp]) Ready(ctx context.Context) error {
	return ready(ctx, s.inner)
}

// sleep waits for d or returns early with ctx.Err() on cancellation.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
