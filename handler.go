package collabkit

import "context"

// Handler processes a single inbound message. Handle is invoked once per
// message by the dispatch loop; a returned error marks that one message as
// failed without affecting the loop. Implementations need not be safe for
// concurrent use: a dispatcher never overlaps Handle invocations.
type Handler[M any] interface {
	Handle(ctx context.Context, msg M) error
}

// HandlerFunc adapts func(ctx, msg) error to Handler.
type HandlerFunc[M any] func(ctx context.Context, msg M) error

func (f HandlerFunc[M]) Handle(ctx context.Context, msg M) error { return f(ctx, msg) }
