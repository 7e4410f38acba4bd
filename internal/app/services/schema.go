package services

import (
	"fmt"
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeHeader cleans a raw column header: carriage returns are dropped,
// line feeds become spaces, whitespace runs collapse to one space and the
// result is trimmed. The result may be empty.
func NormalizeHeader(raw string) string {
	s := strings.ReplaceAll(raw, "\r", "")
	s = strings.ReplaceAll(s, "\n", " ")
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeHeaders normalizes a header row and makes every name unique.
// Blank header cells are named "Unnamed: <index>"; repeated names get
// ".1", ".2", ... suffixes in order of appearance.
func NormalizeHeaders(raw []string) []string {
	out := make([]string, len(raw))
	seen := make(map[string]int, len(raw))
	for i, h := range raw {
		name := NormalizeHeader(h)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if n, dup := seen[name]; dup {
			candidate := fmt.Sprintf("%s.%d", name, n)
			for {
				if _, taken := seen[candidate]; !taken {
					break
				}
				n++
				candidate = fmt.Sprintf("%s.%d", name, n)
			}
			seen[name] = n + 1
			name = candidate
		}
		seen[name] = 1
		out[i] = name
	}
	return out
}
