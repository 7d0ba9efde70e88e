package discord

import (
	"testing"
)

func TestParseOptions(t *testing.T) {
	t.Parallel()

	opts, err := ParseOptions([]byte(`{"id":"123","adapter":{"token":"abc"},"prefix":["!","/"]}`))
	if err != nil {
		t.Fatalf("ParseOptions: %v", err)
	}
	if opts.ID != "123" || opts.Adapter.Token != "abc" {
		t.Fatalf("unexpected options: %+v", opts)
	}
	if len(opts.Prefix) != 2 || opts.Prefix[0] != "!" || opts.Prefix[1] != "/" {
		t.Fatalf("unexpected prefix list: %v", opts.Prefix)
	}
}

func TestParseOptionsRejectsWrongTypes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
	}{
		{name: "numeric id", raw: `{"id":5,"adapter":{}}`},
		{name: "missing adapter", raw: `{"id":"123"}`},
		{name: "prefix not a list", raw: `{"adapter":{},"prefix":"!"}`},
		{name: "adapter not an object", raw: `{"adapter":"token"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseOptions([]byte(tc.raw)); err == nil {
				t.Fatalf("expected validation error for %s", tc.raw)
			}
		})
	}
}

func TestOptionsValidate(t *testing.T) {
	t.Parallel()

	opts := Options{Adapter: AdapterOptions{Token: "abc"}}
	if err := opts.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestOptionsWithDefaults(t *testing.T) {
	t.Parallel()

	opts := Options{}.withDefaults()
	if len(opts.Prefix) != 1 || opts.Prefix[0] != "!" {
		t.Fatalf("expected default prefix list, got %v", opts.Prefix)
	}

	opts = Options{Prefix: []string{"?"}}.withDefaults()
	if len(opts.Prefix) != 1 || opts.Prefix[0] != "?" {
		t.Fatalf("configured prefix must win, got %v", opts.Prefix)
	}
}
