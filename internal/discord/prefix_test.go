package discord

import "testing"

func TestPrefixMatcher(t *testing.T) {
	t.Parallel()

	matcher, err := newPrefixMatcher([]string{"!", "/"})
	if err != nil {
		t.Fatalf("newPrefixMatcher: %v", err)
	}

	cases := []struct {
		name string
		body string
		want string
		ok   bool
	}{
		{name: "command", body: "!ping", want: "ping", ok: true},
		{name: "alternate prefix", body: "/ping", want: "ping", ok: true},
		{name: "separators stripped", body: "!, ping", want: "ping", ok: true},
		{name: "bare prefix", body: "!", ok: false},
		{name: "no prefix", body: "hello", ok: false},
		{name: "prefix not at start", body: "say !ping", ok: false},
		{name: "empty body", body: "", ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := matcher.Match(tc.body)
			if ok != tc.ok {
				t.Fatalf("Match(%q) ok = %v, want %v", tc.body, ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("Match(%q) = %q, want %q", tc.body, got, tc.want)
			}
		})
	}
}

func TestPrefixMatcherCaseInsensitive(t *testing.T) {
	t.Parallel()

	matcher, err := newPrefixMatcher([]string{"bot"})
	if err != nil {
		t.Fatalf("newPrefixMatcher: %v", err)
	}

	stripped, ok := matcher.Match("BOT ping")
	if !ok {
		t.Fatalf("expected case-insensitive match")
	}
	if stripped != "ping" {
		t.Fatalf("stripped = %q, want %q", stripped, "ping")
	}
}

func TestPrefixMatcherQuotesLiterals(t *testing.T) {
	t.Parallel()

	// "." must match literally, not as a regexp wildcard.
	matcher, err := newPrefixMatcher([]string{"."})
	if err != nil {
		t.Fatalf("newPrefixMatcher: %v", err)
	}
	if _, ok := matcher.Match("xping"); ok {
		t.Fatalf("metacharacter prefix must be quoted")
	}
	if _, ok := matcher.Match(".ping"); !ok {
		t.Fatalf("literal dot prefix must match")
	}
}

func TestPrefixMatcherRejectsEmptyInput(t *testing.T) {
	t.Parallel()

	if _, err := newPrefixMatcher(nil); err == nil {
		t.Fatalf("expected error for empty prefix list")
	}
	if _, err := newPrefixMatcher([]string{""}); err == nil {
		t.Fatalf("expected error for empty prefix literal")
	}
}
