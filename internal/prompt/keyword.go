package prompt

import (
	"strings"
)

// Keyword is a single prompt term with an optional weight
type Keyword struct {
	Base     string
	Weight   string
	Weighted bool
}

// ParseKeyword parses a keyword line. Only the rightmost colon separates the
// weight, so bases containing colons are kept intact.
func ParseKeyword(line string) Keyword {
	line = strings.TrimSpace(line)

	idx := strings.LastIndex(line, ":")
	if idx < 0 {
		return Keyword{Base: line}
	}

	return Keyword{
		Base:     strings.TrimSpace(line[:idx]),
		Weight:   strings.TrimSpace(line[idx+1:]),
		Weighted: true,
	}
}

// Term renders the keyword as "(base)" or "(base:weight)"
func (k Keyword) Term() string {
	if k.Weighted {
		return "(" + k.Base + ":" + k.Weight + ")"
	}
	return "(" + k.Base + ")"
}

// isWrapped reports whether a trimmed segment is already a formatted term
func isWrapped(s string) bool {
	return strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")")
}
