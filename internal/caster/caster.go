package caster

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Host is the dispatch surface a platform adapter consumes: inbound contexts
// go in through DispatchIncoming, replies come back out through
// DispatchOutcoming, and the adapter installs its capability-checking
// middleware on Outcoming.
type Host interface {
	ID() string
	DispatchIncoming(ctx context.Context, msg Context)
	DispatchOutcoming(ctx context.Context, msg Context) error
	Outcoming() *Outcoming
}

// IncomingHandler receives one inbound canonical context.
type IncomingHandler func(ctx context.Context, msg Context)

// Caster is a reference Host implementation: a flat list of incoming handlers
// plus the outcoming chain. It is enough to wire an adapter to application
// logic in-process.
type Caster struct {
	id        string
	logger    *slog.Logger
	outcoming *Outcoming

	mu       sync.Mutex
	incoming []IncomingHandler
}

// New creates a Caster with a unique host id.
func New(log *slog.Logger) *Caster {
	if log == nil {
		log = slog.Default()
	}
	id := uuid.NewString()
	return &Caster{
		id:        id,
		logger:    log.With(slog.String("component", "caster"), slog.String("host_id", id)),
		outcoming: &Outcoming{},
	}
}

func (c *Caster) ID() string {
	return c.id
}

// OnIncoming registers a handler for inbound contexts.
func (c *Caster) OnIncoming(fn IncomingHandler) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	c.incoming = append(c.incoming, fn)
	c.mu.Unlock()
}

// DispatchIncoming hands the context to every registered handler in order.
// Fire-and-forget: handler outcomes are not reported back to the adapter.
func (c *Caster) DispatchIncoming(ctx context.Context, msg Context) {
	c.mu.Lock()
	handlers := make([]IncomingHandler, len(c.incoming))
	copy(handlers, c.incoming)
	c.mu.Unlock()

	c.logger.Debug("dispatch incoming",
		slog.String("platform", msg.PlatformName()),
		slog.String("from", msg.From().ID),
		slog.Int("handlers", len(handlers)))
	for _, fn := range handlers {
		fn(ctx, msg)
	}
}

// DispatchOutcoming runs the context through the outcoming chain and returns
// the first failure.
func (c *Caster) DispatchOutcoming(ctx context.Context, msg Context) error {
	return c.outcoming.Dispatch(ctx, msg)
}

func (c *Caster) Outcoming() *Outcoming {
	return c.outcoming
}
