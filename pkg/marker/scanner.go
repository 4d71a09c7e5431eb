package marker

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrInvalidUTF8 is returned when a file isn't valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("the file isn't valid UTF-8")

var (
	bomUTF16BE = []byte{0xfe, 0xff}
	bomUTF16LE = []byte{0xff, 0xfe}
)

// Scanner reads files and finds markers in them.
type Scanner struct {
	fs afero.Fs
}

func NewScanner(fs afero.Fs) *Scanner {
	return &Scanner{fs: fs}
}

// ScanFile returns the matches in the file in ascending line order.
// When the file can't be read or decoded, it returns nil and the error,
// so a file contributes either all of its matches or none of them.
// Lines end with "\n", "\r\n" or a lone "\r", and have no length limit.
func (s *Scanner) ScanFile(path string, markers []string) ([]*Match, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open a file: %w", err)
	}
	defer f.Close()
	raw := bufio.NewReader(f)
	if err := checkUTF16BOM(raw); err != nil {
		return nil, err
	}
	// Only a UTF-8 BOM can remain, and it is dropped.
	reader := bufio.NewReader(transform.NewReader(raw, unicode.BOMOverride(transform.Nop)))
	var matches []*Match
	lineNumber := 0
	for {
		chunk, err := reader.ReadString('\n')
		if chunk != "" {
			for _, line := range splitLines(chunk) {
				lineNumber++
				if !utf8.ValidString(line) {
					return nil, fmt.Errorf("decode line %d: %w", lineNumber, ErrInvalidUTF8)
				}
				m := MatchLine(line, markers)
				if m == nil {
					continue
				}
				m.Line = lineNumber
				matches = append(matches, m)
			}
		}
		if errors.Is(err, io.EOF) {
			return matches, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read a file: %w", err)
		}
	}
}

// checkUTF16BOM fails on files starting with a UTF-16 byte order mark.
func checkUTF16BOM(r *bufio.Reader) error {
	b, err := r.Peek(len(bomUTF16BE))
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read a file: %w", err)
	}
	if bytes.Equal(b, bomUTF16BE) || bytes.Equal(b, bomUTF16LE) {
		return fmt.Errorf("UTF-16 byte order mark: %w", ErrInvalidUTF8)
	}
	return nil
}

// splitLines splits a chunk ending with at most one "\n" into lines
// without their terminators. A lone "\r" also ends a line.
func splitLines(chunk string) []string {
	chunk = strings.TrimSuffix(chunk, "\n")
	chunk = strings.TrimSuffix(chunk, "\r")
	return strings.Split(chunk, "\r")
}
