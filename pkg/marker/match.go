// Package marker finds configured marker strings in lines of text files.
package marker

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Match is a line containing a marker.
// Prefix is the part of the line before the marker without trailing spaces,
// and Text is the rest of the line from the marker without surrounding spaces.
type Match struct {
	Line   int
	Column int
	Marker string
	Prefix string
	Text   string
}

// MatchLine returns the match of the first marker in markers which occurs in line.
// The order of markers decides which marker wins when several of them occur,
// even if a later marker starts earlier in the line.
// It returns nil if no marker occurs.
func MatchLine(line string, markers []string) *Match {
	for _, m := range markers {
		if m == "" {
			continue
		}
		idx := strings.Index(line, m)
		if idx == -1 {
			continue
		}
		return &Match{
			Column: utf8.RuneCountInString(line[:idx]) + 1,
			Marker: m,
			Prefix: strings.TrimRightFunc(line[:idx], unicode.IsSpace),
			Text:   strings.TrimSpace(line[idx:]),
		}
	}
	return nil
}
