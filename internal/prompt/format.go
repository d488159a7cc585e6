package prompt

import (
	"strings"
)

const (
	// SourceSeparator joins terms before translation
	SourceSeparator = ","
	// TargetSeparator joins terms after translation
	TargetSeparator = ", "
)

// Lines splits a text area's content into keyword lines. The text is trimmed
// as a whole first; an empty text still yields a single empty line.
func Lines(text string) []string {
	return strings.Split(strings.TrimSpace(text), "\n")
}

// FormatSource builds the pre-translation prompt from keyword lines
func FormatSource(lines []string) string {
	terms := make([]string, 0, len(lines))
	for _, line := range lines {
		terms = append(terms, ParseKeyword(line).Term())
	}
	return strings.Join(terms, SourceSeparator)
}

// FormatTarget builds the final prompt from translated segments. Segments
// that are already wrapped in parentheses are kept as they are, which makes
// the pass idempotent on its own output.
func FormatTarget(segments []string) string {
	terms := make([]string, 0, len(segments))
	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		if isWrapped(segment) {
			terms = append(terms, segment)
			continue
		}
		terms = append(terms, ParseKeyword(segment).Term())
	}
	return strings.Join(terms, TargetSeparator)
}

// Segments splits a prompt on commas. Segments are not trimmed.
func Segments(prompt string) []string {
	return strings.Split(prompt, ",")
}
