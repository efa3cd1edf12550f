package fault

import "context"

// Generator synthesizes the injected error for a request. The returned
// error is handed to the caller verbatim; the core never wraps it.
type Generator[Req any] func(req Req) error

// ErrorLayer configures error injection. It is an immutable value: the
// With methods return modified copies, and one layer may be applied to any
// number of inner handlers, producing independent services.
type ErrorLayer[Req, Resp any] struct {
	decider  Decider[Req]
	generate Generator[Req]
}

// NewErrorLayer creates an ErrorLayer that injects generate(req) for
// roughly probability of all calls.
//
// The probability is the chance that a call results in an injected error,
// bound between 0 and 1. A probability of 0.5 means that 50% of the calls
// to the service return an injected error. Out-of-range probabilities
// clamp to never or always.
func NewErrorLayer[Req, Resp any](probability float64, generate Generator[Req]) *ErrorLayer[Req, Resp] {
	return &ErrorLayer[Req, Resp]{
		decider:  Probability[Req](probability),
		generate: generate,
	}
}

// WithDecider returns a copy of the layer that uses d to decide when to
// inject.
func (l *ErrorLayer[Req, Resp]) WithDecider(d Decider[Req]) *ErrorLayer[Req, Resp] {
	c := *l
	c.decider = d
	return &c
}

// WithGenerator returns a copy of the layer that uses generate to build
// injected errors.
func (l *ErrorLayer[Req, Resp]) WithGenerator(generate Generator[Req]) *ErrorLayer[Req, Resp] {
	c := *l
	c.generate = generate
	return &c
}

// Apply wraps inner with error injection.
func (l *ErrorLayer[Req, Resp]) Apply(inner Handler[Req, Resp]) *ErrorService[Req, Resp] {
	return &ErrorService[Req, Resp]{
		inner:    inner,
		decider:  l.decider,
		generate: l.generate,
	}
}

// Middleware returns the layer as a Middleware for use with Stack.
func (l *ErrorLayer[Req, Resp]) Middleware() Middleware[Req, Resp] {
	return func(inner Handler[Req, Resp]) Handler[Req, Resp] {
		return l.Apply(inner)
	}
}

// ErrorService wraps an inner handler and short-circuits a fraction of
// calls with a generated error instead of invoking it. Safe for concurrent
// use when the inner handler is; the service itself holds no per-call
// state.
type ErrorService[Req, Resp any] struct {
	inner    Handler[Req, Resp]
	decider  Decider[Req]
	generate Generator[Req]
}

// Call decides whether to inject a fault for req. If the decider fires,
// the inner handler is not invoked and the generated error is returned.
// Otherwise the call is delegated verbatim and the inner outcome, success
// or error, is returned unchanged.
func (s *ErrorService[Req, Resp]) Call(ctx context.Context, req Req) (Resp, error) {
	if s.decider.Decide(req) {
		var zero Resp
		return zero, s.generate(req)
	}
	return s.inner.Call(ctx, req)
}

// Ready reports the inner handler's readiness.
func (s *ErrorService[Req, Resp]) Ready(ctx context.Context) error {
	return ready(ctx, s.inner)
}
