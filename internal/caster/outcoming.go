package caster

import (
	"context"
	"sync"
)

// Platform is what the host knows about a subscribed platform adapter.
// Adapters are compared by identity when middleware entries are removed, so a
// Platform implementation must be comparable (pointer receivers qualify).
type Platform interface {
	PlatformName() string
	PlatformID() string
	Subscribe(ctx context.Context, host Host) error
	Unsubscribe(ctx context.Context, host Host) error
}

// Middleware handles one outgoing context. A middleware that does not own the
// context calls next to hand it to the rest of the chain; the owning
// middleware performs the transport calls and does not call next.
type Middleware func(ctx context.Context, msg Context, next func() error) error

type outcomingEntry struct {
	platform Platform
	fn       Middleware
}

// Outcoming is the host's outgoing middleware chain, keyed by platform
// instance. Entries run in registration order.
type Outcoming struct {
	mu      sync.Mutex
	entries []outcomingEntry
}

// AddPlatform installs fn for the given platform instance. Re-adding the same
// instance replaces its entry in place, keeping registration idempotent.
func (o *Outcoming) AddPlatform(p Platform, fn Middleware) {
	if p == nil || fn == nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, entry := range o.entries {
		if entry.platform == p {
			o.entries[i].fn = fn
			return
		}
	}
	o.entries = append(o.entries, outcomingEntry{platform: p, fn: fn})
}

// RemovePlatform drops the entry for the given platform instance, if any.
func (o *Outcoming) RemovePlatform(p Platform) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, entry := range o.entries {
		if entry.platform == p {
			o.entries = append(o.entries[:i], o.entries[i+1:]...)
			return
		}
	}
}

// Len reports the number of installed entries.
func (o *Outcoming) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.entries)
}

// Dispatch runs the context through the chain. The entry list is snapshotted
// first so AddPlatform/RemovePlatform cannot invalidate an in-flight dispatch.
func (o *Outcoming) Dispatch(ctx context.Context, msg Context) error {
	o.mu.Lock()
	entries := make([]outcomingEntry, len(o.entries))
	copy(entries, o.entries)
	o.mu.Unlock()

	var run func(i int) error
	run = func(i int) error {
		if i >= len(entries) {
			return nil
		}
		return entries[i].fn(ctx, msg, func() error {
			return run(i + 1)
		})
	}
	return run(0)
}
