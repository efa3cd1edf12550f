package fault

import "context"

// Handler is the generic request-handling capability that injectors wrap.
// Implementations must be safe for concurrent calls if the surrounding
// application makes concurrent calls.
type Handler[Req, Resp any] interface {
	// Call processes a request and returns a response or an error.
	Call(ctx context.Context, req Req) (Resp, error)
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc[Req, Resp any] func(ctx context.Context, req Req) (Resp, error)

// Call invokes the function.
func (f HandlerFunc[Req, Resp]) Call(ctx context.Context, req Req) (Resp, error) {
	return f(ctx, req)
}

// Readier is implemented by handlers that expose a readiness probe.
// A nil return means the handler can accept a call.
//
// Injector services always implement Readier: they delegate to the inner
// handler when it implements Readier and report ready otherwise, so a
// wrapper never claims readiness its inner handler denies.
type Readier interface {
	Ready(ctx context.Context) error
}

// ready probes h if it implements Readier.
func ready(ctx context.Context, h any) error {
	if r, ok := h.(Readier); ok {
		return r.Ready(ctx)
	}
	return nil
}

// Middleware wraps a Handler with additional behavior.
type Middleware[Req, Resp any] func(Handler[Req, Resp]) Handler[Req, Resp]

// Stack composes middleware around a handler. The first middleware becomes
// the outermost wrapper, so calls flow first -> last -> handler:
//
//	h := fault.Stack(inner, errorLayer.Middleware(), latencyLayer.Middleware())
func Stack[Req, Resp any](h Handler[Req, Resp], mws ...Middleware[Req, Resp]) Handler[Req, Resp] {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
