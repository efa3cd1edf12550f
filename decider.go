package fault

import "math/rand/v2"

// Decider decides whether a fault should be injected for a given request.
//
// Decide must be safe for concurrent use. It may consume entropy but must
// not keep mutable state across calls; every call is decided independently.
type Decider[Req any] interface {
	Decide(req Req) bool
}

// DeciderFunc adapts a predicate over the request to the Decider interface.
type DeciderFunc[Req any] func(req Req) bool

// Decide invokes the predicate.
func (f DeciderFunc[Req]) Decide(req Req) bool {
	return f(req)
}

// Probability returns a Decider that fires for roughly p of all calls,
// ignoring the request. Each call draws an independent uniform sample in
// [0, 1) and fires when the sample is below p.
//
// Values of p at or below 0 never fire and values at or above 1 always
// fire; out-of-range probabilities clamp rather than error.
//
// The sample comes from the math/rand/v2 top-level source, which is safe
// for concurrent use without a shared lock.
func Probability[Req any](p float64) Decider[Req] {
	return DeciderFunc[Req](func(Req) bool {
		return rand.Float64() < p
	})
}

// Always returns a Decider that fires for every request.
func Always[Req any]() Decider[Req] {
	return DeciderFunc[Req](func(Req) bool { return true })
}

// Never returns a Decider that fires for no request.
func Never[Req any]() Decider[Req] {
	return DeciderFunc[Req](func(Req) bool { return false })
}

// Not inverts a Decider.
func Not[Req any](d Decider[Req]) Decider[Req] {
	return DeciderFunc[Req](func(req Req) bool {
		return !d.Decide(req)
	})
}
