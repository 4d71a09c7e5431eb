package report

import (
	"path/filepath"

	"github.com/suzuki-shunsuke/markfind/pkg/marker"
	"github.com/suzuki-shunsuke/markfind/pkg/sarif"
)

const ruleMarker = "marker"

// SARIF converts the result to a SARIF log with a result per match.
func SARIF(result *marker.Result, version string) *sarif.Log {
	results := make([]*sarif.Result, 0, result.MatchCount())
	for _, file := range result.Files {
		for _, m := range file.Matches {
			results = append(results, &sarif.Result{
				RuleID:  ruleMarker,
				Level:   "note",
				Message: &sarif.Message{Text: "Marker " + m.Marker + " is found: " + m.Text},
				Locations: []*sarif.Location{
					{
						PhysicalLocation: &sarif.PhysicalLocation{
							ArtifactLocation: &sarif.ArtifactLocation{
								URI: filepath.ToSlash(file.Path),
							},
							Region: &sarif.Region{
								StartLine:   m.Line,
								StartColumn: m.Column,
								Snippet:     &sarif.Message{Text: m.Text},
							},
						},
					},
				},
			})
		}
	}
	return &sarif.Log{
		Schema:  sarif.Schema,
		Version: sarif.Version,
		Runs: []*sarif.Run{
			{
				Tool: &sarif.Tool{
					Driver: &sarif.Driver{
						Name:           "markfind",
						InformationURI: "https://github.com/suzuki-shunsuke/markfind",
						Version:        version,
						Rules: []*sarif.Rule{
							{
								ID:               ruleMarker,
								ShortDescription: &sarif.Message{Text: "A configured marker is found in a script"},
							},
						},
					},
				},
				Results: results,
			},
		},
	}
}
