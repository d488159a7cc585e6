package prompt

import (
	"testing"
)

func TestParseKeyword(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Keyword
	}{
		{"plain", "cat", Keyword{Base: "cat"}},
		{"plain with spaces", "  black cat \t", Keyword{Base: "black cat"}},
		{"weighted", "foo:1.2", Keyword{Base: "foo", Weight: "1.2", Weighted: true}},
		{"weighted with spaces", " foo : 1.2 ", Keyword{Base: "foo", Weight: "1.2", Weighted: true}},
		{"rightmost colon only", "a:b:2", Keyword{Base: "a:b", Weight: "2", Weighted: true}},
		{"non numeric weight", "dog:heavy", Keyword{Base: "dog", Weight: "heavy", Weighted: true}},
		{"empty weight", "dog:", Keyword{Base: "dog", Weight: "", Weighted: true}},
		{"empty base", ":0.5", Keyword{Base: "", Weight: "0.5", Weighted: true}},
		{"empty", "", Keyword{}},
		{"whitespace only", "   ", Keyword{}},
		{"japanese", "猫:1.3", Keyword{Base: "猫", Weight: "1.3", Weighted: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseKeyword(tt.line)
			if got != tt.want {
				t.Errorf("ParseKeyword(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestKeywordTerm(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"cat", "(cat)"},
		{"foo:1.2", "(foo:1.2)"},
		{"a:b:2", "(a:b:2)"},
		{"", "()"},
		{"  ", "()"},
		{"dog:", "(dog:)"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := ParseKeyword(tt.line).Term(); got != tt.want {
				t.Errorf("Term() for %q = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}
