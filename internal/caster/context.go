// Package caster defines the dispatch-host surface a platform adapter is
// written against: the canonical message-context contract, capability tables,
// the platform-keyed outcoming middleware chain, and a small reference host.
package caster

import (
	"context"
	"io"
)

// ContextTypeMessage is the canonical context kind for plain chat messages.
const ContextTypeMessage = "message"

// Peer identifies one side of a conversation (a channel or a user).
type Peer struct {
	ID   string
	Type string
}

// Attachment is an outgoing binary payload with a declared kind.
type Attachment struct {
	Type   string
	Name   string
	Source io.Reader
}

// Context is the canonical, platform-agnostic view of one message moving
// through the host. A platform adapter produces contexts for inbound events
// and consumes them again in its outcoming middleware.
type Context interface {
	PlatformName() string
	PlatformID() string

	// Type reports the canonical context kind, e.g. ContextTypeMessage.
	Type() string

	Text() string
	From() Peer
	To() Peer
	Sender() Peer
	Attachments() []Attachment

	SupportedContextTypes() CapabilityTable
	SupportedAttachmentTypes() CapabilityTable

	Send(ctx context.Context, text string) error
	Reply(ctx context.Context, text string) error
}
