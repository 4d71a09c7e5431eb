// Package report formats scan results.
// Files are written in the order of the scan result, which is the order of
// the directory walk. The formatters never sort.
package report

import (
	"fmt"
	"strings"

	"github.com/suzuki-shunsuke/markfind/pkg/marker"
)

const separator = "<hr>"

// Markdown formats the result as Markdown with embedded HTML, which renders
// well in GitHub job summaries and comments.
// Each file gets a header, three lines per match and a separator.
func Markdown(result *marker.Result) string {
	lines := make([]string, 0, len(result.Files)*2+result.MatchCount()*3) //nolint:mnd
	for _, file := range result.Files {
		lines = append(lines, fmt.Sprintf("<h2> 🔵 Markers in file: %s</h2>", file.Path))
		for _, m := range file.Matches {
			lines = append(lines,
				fmt.Sprintf("🔴 Line %d<br />", m.Line),
				fmt.Sprintf("🟡 Main part: %s<br />", m.Prefix),
				fmt.Sprintf("🟢 Marker: %s<br />", m.Text),
			)
		}
		lines = append(lines, separator)
	}
	return strings.Join(lines, "\n")
}
