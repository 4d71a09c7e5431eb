package marker_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/suzuki-shunsuke/markfind/pkg/marker"
)

func TestMatchLine(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name    string
		line    string
		markers []string
		exp     *marker.Match
	}{
		{
			name:    "prefix and marker text are trimmed",
			line:    "foo # TODO: fix bar",
			markers: []string{"TODO:"},
			exp: &marker.Match{
				Column: 7,
				Marker: "TODO:",
				Prefix: "foo #",
				Text:   "TODO: fix bar",
			},
		},
		{
			name:    "no marker",
			line:    `    e "Hello"`,
			markers: []string{"TODO", "FIXME"},
			exp:     nil,
		},
		{
			name:    "the first marker in the list wins even if another marker starts earlier",
			line:    "x FIXME y TODO z",
			markers: []string{"TODO", "FIXME"},
			exp: &marker.Match{
				Column: 11,
				Marker: "TODO",
				Prefix: "x FIXME y",
				Text:   "TODO z",
			},
		},
		{
			name:    "the first occurrence of the marker is used",
			line:    "TODO a TODO b",
			markers: []string{"TODO"},
			exp: &marker.Match{
				Column: 1,
				Marker: "TODO",
				Text:   "TODO a TODO b",
			},
		},
		{
			name:    "surrounding spaces",
			line:    "\t$ x = 1   # HACK   ",
			markers: []string{"# HACK"},
			exp: &marker.Match{
				Column: 12,
				Marker: "# HACK",
				Prefix: "\t$ x = 1",
				Text:   "# HACK",
			},
		},
		{
			name:    "column counts characters",
			line:    "привет TODO",
			markers: []string{"TODO"},
			exp: &marker.Match{
				Column: 8,
				Marker: "TODO",
				Prefix: "привет",
				Text:   "TODO",
			},
		},
		{
			name:    "empty markers are skipped",
			line:    "label start: # TODO",
			markers: []string{"", "TODO"},
			exp: &marker.Match{
				Column: 16,
				Marker: "TODO",
				Prefix: "label start: #",
				Text:   "TODO",
			},
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			got := marker.MatchLine(d.line, d.markers)
			if diff := cmp.Diff(d.exp, got); diff != "" {
				t.Error(diff)
			}
		})
	}
}
