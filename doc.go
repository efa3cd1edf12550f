// Package fault implements probabilistic fault injection for resilience testing.
//
// fault wraps any request handler with composable injectors that corrupt its
// behavior on purpose:
//
//   - Error Injection: Short-circuit a fraction of calls with a synthetic error
//   - Latency Injection: Delay a fraction of calls before delegating
//   - Composable Layers: Stack injectors and other middleware in any order
//   - Custom Deciders: Trigger faults by probability or by request content
//   - Zero Dependencies: Only the Go standard library
//
// # Quick Start
//
// Wrap a handler so that 10% of calls fail with a synthetic error:
//
//	layer := fault.NewErrorLayer[Request, Response](0.1, func(req Request) error {
//	    return errors.New("injected failure")
//	})
//	service := layer.Apply(inner)
//
//	resp, err := service.Call(ctx, req)
//
// Add 200 to 500 milliseconds of latency to 10% of calls:
//
//	layer, err := fault.NewLatencyLayer[Request, Response](0.1, 200*time.Millisecond, 500*time.Millisecond)
//	if err != nil {
//	    return err
//	}
//	service := layer.Apply(inner)
//
// # Handlers
//
// An injector wraps anything that satisfies Handler, and its services
// satisfy Handler themselves, so injectors nest freely. Plain functions
// adapt via HandlerFunc:
//
//	inner := fault.HandlerFunc[string, string](func(ctx context.Context, req string) (string, error) {
//	    return client.Lookup(ctx, req)
//	})
//
// # Layers and Services
//
// A Layer is an immutable configuration value. Applying it to an inner
// handler produces a Service, the live wrapper. One layer may be applied to
// any number of handlers; the resulting services are fully independent and
// each call is decided on its own, with no state carried between calls.
//
// # Deciders
//
// A Decider answers "should a fault trigger for this request?". The default
// is a constant-probability sampler, but any predicate over the request
// works:
//
//	// Only inject for a specific tenant.
//	layer = layer.WithDecider(fault.DeciderFunc[Request](func(req Request) bool {
//	    return req.Tenant == "canary"
//	}))
//
// Probability values outside [0, 1] clamp: at or below 0 never fires, at or
// above 1 always fires. Always, Never, and Not cover the common fixed and
// inverted cases.
//
// # Distributions
//
// A Distribution produces one sampled delay per call. Uniform samples from
// a half-open range [low, high); Fixed always returns the same duration,
// which keeps timing tests deterministic:
//
//	layer = layer.WithDistribution(fault.Fixed(250 * time.Millisecond))
//
// A range with low >= high is rejected at construction with
// ErrInvalidRange.
//
// # Composition
//
// Stack applies middleware so the first listed wraps the outermost:
//
//	h := fault.Stack(inner,
//	    errorLayer.Middleware(),
//	    latencyLayer.Middleware(),
//	)
//
// # Cancellation
//
// A pending injected delay is a timer select against the call's context.
// If the caller gives up while the delay is pending, the delay and the
// not-yet-started inner call are both abandoned and ctx.Err() is returned;
// the inner handler is never invoked.
//
// # Error Semantics
//
// An injected error is built entirely by the caller-supplied Generator and
// is returned as-is, indistinguishable in shape from a genuine inner
// error. Errors from the inner handler pass through untouched: fault never
// wraps, retries, logs, or suppresses. Resilience policy belongs to the
// surrounding layers under test, not to the injector.
//
// # Testing
//
// Use Always with Fixed to make injected behavior deterministic:
//
//	layer, _ := fault.NewLatencyLayer[Req, Resp](0, 0, time.Millisecond)
//	layer = layer.
//	    WithDecider(fault.Always[Req]()).
//	    WithDistribution(fault.Fixed(50 * time.Millisecond))
//
// # Best Practices
//
// 1. Keep probabilities low in shared environments; even 1% surfaces most
// retry and timeout bugs over enough traffic.
//
// 2. Prefer request-based deciders for targeted experiments so only canary
// traffic is affected.
//
// 3. Generate errors that mimic the real failure modes of the wrapped
// dependency, since downstream handling is exactly what is under test.
//
// 4. Stack a latency injector inside an error injector to exercise slow
// failures, the variant that trips the most timeout handling.
package fault
