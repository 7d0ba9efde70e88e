package discord

import (
	"fmt"
	"regexp"
	"strings"
)

// prefixMatcher is the compiled pattern pair for command detection: hasPrefix
// decides whether a body is a command at all, strip removes the matched prefix
// plus any run of comma/space separators.
type prefixMatcher struct {
	has   *regexp.Regexp
	strip *regexp.Regexp
}

// newPrefixMatcher compiles the pair from an ordered list of literal prefixes.
// Matching is case-insensitive and anchored at the start; a body consisting of
// a bare prefix with nothing after it is not a command.
func newPrefixMatcher(prefixes []string) (*prefixMatcher, error) {
	if len(prefixes) == 0 {
		return nil, fmt.Errorf("at least one command prefix is required")
	}
	quoted := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		if p == "" {
			return nil, fmt.Errorf("command prefix must not be empty")
		}
		quoted = append(quoted, regexp.QuoteMeta(p))
	}
	union := strings.Join(quoted, "|")

	has, err := regexp.Compile(`(?is)^(?:` + union + `).`)
	if err != nil {
		return nil, fmt.Errorf("compile prefix pattern: %w", err)
	}
	strip, err := regexp.Compile(`(?i)^(?:` + union + `)?[, ]*`)
	if err != nil {
		return nil, fmt.Errorf("compile strip pattern: %w", err)
	}
	return &prefixMatcher{has: has, strip: strip}, nil
}

// Match reports whether text starts with a recognized prefix followed by at
// least one more character, and if so returns the text with the prefix and
// leading separators removed.
func (m *prefixMatcher) Match(text string) (string, bool) {
	if !m.has.MatchString(text) {
		return "", false
	}
	return m.strip.ReplaceAllString(text, ""), true
}
