// Package keywordfile reads keyword lists for the headless mode.
package keywordfile

import (
	"fmt"
	"os"
	"strings"
)

// Read reads keywords from a file, one per line. Supported line formats are
// the same as in the GUI keyword field:
//   - plain keyword: "青い空"
//   - weighted keyword: "青い空:1.2" (weight after the last colon)
//
// Blank lines are skipped and Windows line endings are accepted.
func Read(filename string) ([]string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read keyword file: %w", err)
	}

	return Parse(string(content)), nil
}

// Parse splits text into non-blank keyword lines
func Parse(text string) []string {
	var keywords []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}
		keywords = append(keywords, line)
	}
	return keywords
}
