package discord

import (
	"context"
	"fmt"

	"github.com/castery/caster-discord/internal/caster"
)

// MessageContext is the canonical representation of one Discord message. One
// instance is built per inbound event and per outgoing send; instances are
// never shared between hosts or reused across calls.
type MessageContext struct {
	host       caster.Host
	platformID string

	from        caster.Peer
	to          caster.Peer
	sender      caster.Peer
	text        string
	stripped    *string
	attachments []caster.Attachment

	raw Event
}

// NewMessageContext builds a context from an inbound transport event.
// stripped carries the pre-computed command body; nil means the event did not
// match a recognized prefix.
func NewMessageContext(host caster.Host, platformID string, ev Event, stripped *string) *MessageContext {
	c := &MessageContext{
		host:       host,
		platformID: platformID,
		sender:     caster.Peer{Type: "user"},
		stripped:   stripped,
		raw:        ev,
	}
	if msg := ev.Message; msg != nil {
		c.from = caster.Peer{
			ID:   msg.ChannelID,
			Type: remapChannelKind(ev.ChannelKind),
		}
		if msg.Author != nil {
			c.sender.ID = msg.Author.ID
		}
		c.text = msg.Content
	}
	return c
}

func (c *MessageContext) PlatformName() string { return PlatformName }

func (c *MessageContext) PlatformID() string { return c.platformID }

// Type reports the canonical context kind; this adapter only produces plain
// messages.
func (c *MessageContext) Type() string { return caster.ContextTypeMessage }

func (c *MessageContext) Text() string { return c.text }

func (c *MessageContext) From() caster.Peer { return c.from }

func (c *MessageContext) To() caster.Peer { return c.to }

func (c *MessageContext) Sender() caster.Peer { return c.sender }

func (c *MessageContext) Attachments() []caster.Attachment { return c.attachments }

// StrippedText returns the message body with its command prefix removed. ok is
// false when the body did not start with a recognized prefix.
func (c *MessageContext) StrippedText() (string, bool) {
	if c.stripped == nil {
		return "", false
	}
	return *c.stripped, true
}

// Raw returns the originating transport event, retained for reply
// construction.
func (c *MessageContext) Raw() Event { return c.raw }

func (c *MessageContext) SupportedContextTypes() caster.CapabilityTable {
	return supportedContextTypes
}

func (c *MessageContext) SupportedAttachmentTypes() caster.CapabilityTable {
	return supportedAttachmentTypes
}

// SendOptions carries an outgoing payload. Attachment is the convenience
// single-attachment form; it is promoted into Attachments before dispatch.
type SendOptions struct {
	Text        string
	Attachment  *caster.Attachment
	Attachments []caster.Attachment
}

func (o SendOptions) normalizedAttachments() []caster.Attachment {
	if o.Attachment == nil {
		return o.Attachments
	}
	out := make([]caster.Attachment, 0, len(o.Attachments)+1)
	out = append(out, *o.Attachment)
	return append(out, o.Attachments...)
}

// Send sends text back to the originating channel.
func (c *MessageContext) Send(ctx context.Context, text string) error {
	return c.SendWith(ctx, SendOptions{Text: text})
}

// SendWith builds a fresh outgoing context from the retained raw event,
// targets it at the originating channel and hands it to the host's outcoming
// pipeline. The error is whatever the pipeline (ultimately the transport call)
// returns.
func (c *MessageContext) SendWith(ctx context.Context, opts SendOptions) error {
	c.to = c.from
	c.text = opts.Text

	out := NewMessageContext(c.host, c.platformID, c.raw, nil)
	out.to = c.from
	out.text = opts.Text
	if attachments := opts.normalizedAttachments(); len(attachments) > 0 {
		out.attachments = attachments
	}
	return c.host.DispatchOutcoming(ctx, out)
}

// Reply is Send with the original sender mentioned in front of the text.
func (c *MessageContext) Reply(ctx context.Context, text string) error {
	return c.ReplyWith(ctx, SendOptions{Text: text})
}

// ReplyWith is SendWith with the sender mention prepended.
func (c *MessageContext) ReplyWith(ctx context.Context, opts SendOptions) error {
	opts.Text = fmt.Sprintf("<@%s>, %s", c.sender.ID, opts.Text)
	return c.SendWith(ctx, opts)
}
