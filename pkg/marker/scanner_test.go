package marker_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/markfind/pkg/marker"
)

func TestScanner_ScanFile(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name      string
		content   string
		markers   []string
		exp       []*marker.Match
		isErr     bool
		errTarget error
	}{
		{
			name: "matches in line order",
			content: `label start:
    # TODO: write the intro
    e "Hello"
    jump end # FIXME wrong label
`,
			markers: []string{"TODO:", "FIXME"},
			exp: []*marker.Match{
				{Line: 2, Column: 7, Marker: "TODO:", Prefix: "    #", Text: "TODO: write the intro"},
				{Line: 4, Column: 16, Marker: "FIXME", Prefix: "    jump end #", Text: "FIXME wrong label"},
			},
		},
		{
			name:    "no match",
			content: "label start:\n    return\n",
			markers: []string{"TODO"},
			exp:     nil,
		},
		{
			name:    "crlf",
			content: "a TODO x\r\nb\r\n",
			markers: []string{"TODO"},
			exp: []*marker.Match{
				{Line: 1, Column: 3, Marker: "TODO", Prefix: "a", Text: "TODO x"},
			},
		},
		{
			name:    "utf-8 bom is dropped",
			content: "\xef\xbb\xbfTODO first\n",
			markers: []string{"TODO"},
			exp: []*marker.Match{
				{Line: 1, Column: 1, Marker: "TODO", Text: "TODO first"},
			},
		},
		{
			name:    "lone cr ends a line",
			content: "a\rb TODO\r",
			markers: []string{"TODO"},
			exp: []*marker.Match{
				{Line: 2, Column: 3, Marker: "TODO", Prefix: "b", Text: "TODO"},
			},
		},
		{
			name:    "blank lines are counted",
			content: "\n\r\n\rx TODO",
			markers: []string{"TODO"},
			exp: []*marker.Match{
				{Line: 4, Column: 3, Marker: "TODO", Prefix: "x", Text: "TODO"},
			},
		},
		{
			name:    "long line",
			content: "TODO first\n" + strings.Repeat("x", 2*1024*1024) + "\nTODO last\n",
			markers: []string{"TODO"},
			exp: []*marker.Match{
				{Line: 1, Column: 1, Marker: "TODO", Text: "TODO first"},
				{Line: 3, Column: 1, Marker: "TODO", Text: "TODO last"},
			},
		},
		{
			name:      "utf-16le bom is an error",
			content:   "\xff\xfea\x00 \x00T\x00O\x00D\x00O\x00\n\x00",
			markers:   []string{"TODO"},
			isErr:     true,
			errTarget: marker.ErrInvalidUTF8,
		},
		{
			name:      "utf-16be bom is an error",
			content:   "\xfe\xff\x00a\x00 \x00T\x00O\x00D\x00O\x00\n",
			markers:   []string{"TODO"},
			isErr:     true,
			errTarget: marker.ErrInvalidUTF8,
		},
		{
			name:      "invalid utf-8 discards the file",
			content:   "TODO ok\nbad \xff TODO\n",
			markers:   []string{"TODO"},
			isErr:     true,
			errTarget: marker.ErrInvalidUTF8,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			if err := afero.WriteFile(fs, "game/script.rpy", []byte(d.content), 0o644); err != nil {
				t.Fatal(err)
			}
			got, err := marker.NewScanner(fs).ScanFile("game/script.rpy", d.markers)
			if d.isErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, d.errTarget) {
					t.Fatalf("wanted %v, got %v", d.errTarget, err)
				}
				if got != nil {
					t.Fatalf("matches must be nil on error: %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(d.exp, got); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestScanner_ScanFile_notFound(t *testing.T) {
	t.Parallel()
	got, err := marker.NewScanner(afero.NewMemMapFs()).ScanFile("missing.rpy", []string{"TODO"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if got != nil {
		t.Fatalf("matches must be nil on error: %+v", got)
	}
}
