package discord

import (
	"context"
	"log/slog"
	"sync"

	"github.com/castery/caster-discord/internal/caster"
)

// Platform owns the transport handle and the subscription lifecycle: the
// connection is opened when the first host subscribes and closed when the last
// one unsubscribes. All subscribed hosts share the one connection.
type Platform struct {
	logger    *slog.Logger
	matcher   *prefixMatcher
	transport transport

	// lifecycle serializes subscribe/unsubscribe so the started flag and the
	// connection state cannot diverge under concurrent transitions.
	lifecycle sync.Mutex

	mu          sync.Mutex
	opts        Options
	subscribers map[string]caster.Host
	started     bool

	removeOnMessage func()
}

// NewPlatform builds a platform from options. The transport connection is not
// opened until the first Subscribe.
func NewPlatform(opts Options, log *slog.Logger) (*Platform, error) {
	if log == nil {
		log = slog.Default()
	}
	logger := log.With(slog.String("adapter", PlatformName))
	tr, err := newSession(opts.Adapter.Token, logger)
	if err != nil {
		return nil, err
	}
	return newPlatform(opts, tr, logger)
}

func newPlatform(opts Options, tr transport, logger *slog.Logger) (*Platform, error) {
	opts = opts.withDefaults()
	matcher, err := newPrefixMatcher(opts.Prefix)
	if err != nil {
		return nil, err
	}
	p := &Platform{
		logger:      logger,
		matcher:     matcher,
		transport:   tr,
		opts:        opts,
		subscribers: map[string]caster.Host{},
	}
	p.removeOnMessage = tr.OnMessage(p.handleMessage)
	return p, nil
}

func (p *Platform) PlatformName() string { return PlatformName }

func (p *Platform) PlatformID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.opts.ID
}

// Started reports whether the transport connection is live.
func (p *Platform) Started() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.started
}

// Subscribe adds the host to the subscriber set, starting the transport if
// this is the first subscriber, and installs the outgoing middleware on the
// host. Subscribing an already-subscribed host is a no-op beyond refreshing
// its middleware entry.
func (p *Platform) Subscribe(ctx context.Context, host caster.Host) error {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()

	p.mu.Lock()
	p.subscribers[host.ID()] = host
	started := p.started
	p.mu.Unlock()

	if !started {
		if err := p.start(ctx); err != nil {
			p.mu.Lock()
			delete(p.subscribers, host.ID())
			p.mu.Unlock()
			return err
		}
	}

	host.Outcoming().AddPlatform(p, p.outgoing)
	p.logger.Info("host subscribed", slog.String("host_id", host.ID()))
	return nil
}

// Unsubscribe removes the host and its middleware entry, stopping the
// transport when the last subscriber leaves. Unsubscribing an absent host is a
// no-op.
func (p *Platform) Unsubscribe(ctx context.Context, host caster.Host) error {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()

	host.Outcoming().RemovePlatform(p)

	p.mu.Lock()
	delete(p.subscribers, host.ID())
	empty := len(p.subscribers) == 0
	started := p.started
	p.mu.Unlock()

	p.logger.Info("host unsubscribed", slog.String("host_id", host.ID()))
	if empty && started {
		return p.stop()
	}
	return nil
}

func (p *Platform) start(ctx context.Context) error {
	if err := p.transport.Login(ctx); err != nil {
		return err
	}
	p.mu.Lock()
	if p.opts.ID == "" {
		// No identity configured: adopt the transport-assigned one.
		p.opts.ID = p.transport.SelfID()
	}
	p.started = true
	id := p.opts.ID
	p.mu.Unlock()
	p.logger.Info("transport started", slog.String("platform_id", id))
	return nil
}

func (p *Platform) stop() error {
	err := p.transport.Close()
	p.mu.Lock()
	p.started = false
	p.mu.Unlock()
	p.logger.Info("transport stopped")
	return err
}

// handleMessage routes one inbound event: bot/self authors and bodies without
// a recognized command prefix are dropped silently, everything else becomes
// one fresh context per subscribed host.
func (p *Platform) handleMessage(ev Event) {
	msg := ev.Message
	if msg == nil || msg.Author == nil {
		return
	}
	if msg.Author.Bot || msg.Author.ID == p.transport.SelfID() {
		return
	}
	stripped, ok := p.matcher.Match(msg.Content)
	if !ok {
		return
	}

	// Snapshot the subscriber set: dispatch must not race a concurrent
	// unsubscribe iterating the same map.
	p.mu.Lock()
	id := p.opts.ID
	hosts := make([]caster.Host, 0, len(p.subscribers))
	for _, host := range p.subscribers {
		hosts = append(hosts, host)
	}
	p.mu.Unlock()

	ctx := context.Background()
	for _, host := range hosts {
		text := stripped
		go host.DispatchIncoming(ctx, NewMessageContext(host, id, ev, &text))
	}
}

// outgoing is the middleware installed per subscribing host. Contexts for
// other platforms pass through untouched; own contexts are validated against
// the capability tables before any transport call, then attachments go out
// concurrently followed by the text.
func (p *Platform) outgoing(ctx context.Context, msg caster.Context, next func() error) error {
	if msg.PlatformName() != PlatformName || msg.PlatformID() != p.PlatformID() {
		return next()
	}

	if !supportedContextTypes.Supports(msg.Type()) {
		return &caster.UnsupportedContextTypeError{Type: msg.Type()}
	}
	attachments := msg.Attachments()
	for _, att := range attachments {
		if !supportedAttachmentTypes.Supports(att.Type) {
			return &caster.UnsupportedAttachmentTypeError{Type: att.Type}
		}
	}

	channelID := msg.To().ID
	if len(attachments) > 0 {
		var wg sync.WaitGroup
		errs := make([]error, len(attachments))
		for i, att := range attachments {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs[i] = p.transport.SendFile(ctx, channelID, att.Name, att.Source)
			}()
		}
		wg.Wait()
		for _, err := range errs {
			if err != nil {
				return err
			}
		}
	}

	if msg.Text() != "" {
		return p.transport.SendText(ctx, channelID, msg.Text())
	}
	return nil
}
