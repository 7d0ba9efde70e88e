package discord

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
)

// Options configures one platform instance.
type Options struct {
	// ID is the platform instance identifier. Empty means the adapter adopts
	// the transport-assigned bot user id after login.
	ID string `json:"id,omitempty"`

	Adapter AdapterOptions `json:"adapter"`

	// Prefix is the ordered list of literal command prefixes. Empty means
	// DefaultPrefix.
	Prefix []string `json:"prefix,omitempty"`
}

// AdapterOptions carries the transport credentials.
type AdapterOptions struct {
	Token string `json:"token"`
}

func (o Options) withDefaults() Options {
	if len(o.Prefix) == 0 {
		o.Prefix = append([]string(nil), DefaultPrefix...)
	}
	return o
}

// optionsSchema is the published shape of the adapter's options. Token
// presence is deliberately not required here; a missing token surfaces as a
// login failure, not a validation error.
var optionsSchema = &jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"id": {Types: []string{"string", "null"}},
		"adapter": {
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"token": {Type: "string"},
			},
		},
		"prefix": {
			Type:  "array",
			Items: &jsonschema.Schema{Type: "string"},
		},
	},
	Required: []string{"adapter"},
}

var resolvedOptionsSchema = sync.OnceValues(func() (*jsonschema.Resolved, error) {
	return optionsSchema.Resolve(nil)
})

// ParseOptions validates raw JSON options against the schema and decodes them.
func ParseOptions(raw []byte) (Options, error) {
	resolved, err := resolvedOptionsSchema()
	if err != nil {
		return Options{}, fmt.Errorf("resolve options schema: %w", err)
	}
	var instance any
	if err := json.Unmarshal(raw, &instance); err != nil {
		return Options{}, fmt.Errorf("decode options: %w", err)
	}
	if err := resolved.Validate(instance); err != nil {
		return Options{}, fmt.Errorf("invalid options: %w", err)
	}
	var opts Options
	if err := json.Unmarshal(raw, &opts); err != nil {
		return Options{}, fmt.Errorf("decode options: %w", err)
	}
	return opts, nil
}

// Validate checks already-typed options against the schema.
func (o Options) Validate() error {
	raw, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("encode options: %w", err)
	}
	_, err = ParseOptions(raw)
	return err
}
