package caster

// Known attachment kinds shared across adapters.
const (
	AttachmentImage    = "image"
	AttachmentVideo    = "video"
	AttachmentAudio    = "audio"
	AttachmentVoice    = "voice"
	AttachmentDocument = "document"
	AttachmentSticker  = "sticker"
)

// CapabilityTable maps a canonical kind to whether the adapter supports it.
// Tables are built once at adapter construction and must not be mutated after.
type CapabilityTable map[string]bool

// Supports reports whether the kind is declared supported. Unknown kinds are
// unsupported.
func (t CapabilityTable) Supports(kind string) bool {
	return t[kind]
}

// DefaultSupportedContextTypes returns the base context-kind table with the
// given overrides applied. The base declares every known kind unsupported;
// adapters enable what they can actually deliver.
func DefaultSupportedContextTypes(overrides CapabilityTable) CapabilityTable {
	base := CapabilityTable{
		ContextTypeMessage: false,
	}
	return merged(base, overrides)
}

// DefaultSupportedAttachmentTypes returns the base attachment-kind table with
// the given overrides applied.
func DefaultSupportedAttachmentTypes(overrides CapabilityTable) CapabilityTable {
	base := CapabilityTable{
		AttachmentImage:    false,
		AttachmentVideo:    false,
		AttachmentAudio:    false,
		AttachmentVoice:    false,
		AttachmentDocument: false,
		AttachmentSticker:  false,
	}
	return merged(base, overrides)
}

func merged(base, overrides CapabilityTable) CapabilityTable {
	out := make(CapabilityTable, len(base)+len(overrides))
	for kind, ok := range base {
		out[kind] = ok
	}
	for kind, ok := range overrides {
		out[kind] = ok
	}
	return out
}
