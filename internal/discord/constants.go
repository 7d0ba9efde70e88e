// Package discord implements the Discord platform adapter: it normalizes
// gateway message events into canonical contexts, validates outgoing contexts
// against its capability tables, and performs the transport calls.
package discord

import "github.com/castery/caster-discord/internal/caster"

// PlatformName is the fixed platform name this adapter reports.
const PlatformName = "discord"

// DefaultPrefix is used when the options carry no command prefixes.
var DefaultPrefix = []string{"!"}

var supportedContextTypes = caster.DefaultSupportedContextTypes(caster.CapabilityTable{
	caster.ContextTypeMessage: true,
})

var supportedAttachmentTypes = caster.DefaultSupportedAttachmentTypes(caster.CapabilityTable{
	caster.AttachmentImage:    true,
	caster.AttachmentVideo:    true,
	caster.AttachmentDocument: true,
})

// Transport channel kinds are passed through to from.Type verbatim except for
// plain text channels, which map to the generic "channel" kind.
var channelKindRemap = map[string]string{
	"text": "channel",
}

func remapChannelKind(kind string) string {
	if mapped, ok := channelKindRemap[kind]; ok {
		return mapped
	}
	return kind
}
