package collabkit

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ygrebnov/collabkit/metrics"
)

// dispatcher reads messages from its source channel and hands them to the
// handler one at a time, in arrival order. It never starts the next handler
// invocation before the current one returns. The loop stops when the source
// is closed or when ctx.Done() is observed between messages; it never closes
// the source channel and never drains remaining messages after cancellation.

type dispatcher[M any] struct {
	messages <-chan M
	handler  Handler[M]
	logger   *zap.Logger
	recorder metrics.Recorder
}

func newDispatcher[M any](messages <-chan M, handler Handler[M], cfg *config) *dispatcher[M] {
	return &dispatcher[M]{
		messages: messages,
		handler:  handler,
		logger:   cfg.logger,
		recorder: cfg.recorder,
	}
}

// HandleMessages spawns a detached dispatch loop over the messages channel
// and returns immediately; the caller does not await the loop's completion.
// A handler error marks that single message as failed (logged, counted) and
// the loop continues with the next message. The loop terminates when the
// channel is closed, meaning no further messages will ever arrive, or when
// ctx is canceled.
//
// The returned error covers construction only: nil handler or source, or an
// invalid option. Independent dispatchers may run concurrently; each instance
// on its own never overlaps handler invocations.
func HandleMessages[M any](ctx context.Context, handler Handler[M], messages <-chan M, opts ...Option) error {
	if handler == nil {
		return ErrNilHandler
	}
	if messages == nil {
		return ErrNilMessageSource
	}

	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}

	go newDispatcher(messages, handler, &cfg).run(ctx)
	return nil
}

// run executes the dispatch loop until source exhaustion or cancellation.
func (d *dispatcher[M]) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-d.messages:
			if !ok {
				// source exhausted, no more messages will arrive
				return
			}
			start := time.Now()
			if err := d.handler.Handle(ctx, msg); err != nil {
				d.recorder.MessageFailed(time.Since(start))
				d.logger.Error("error handling message", zap.Error(err))
				continue
			}
			d.recorder.MessageHandled(time.Since(start))
		}
	}
}
