package di

import (
	"github.com/suzuki-shunsuke/markfind/pkg/cli/flag"
)

// Flags holds the command line flags and the environment of a scan.
type Flags struct {
	*flag.GlobalFlags

	Format    string
	PRComment bool
	PR        int
	Args      []string

	Folder  string
	PWD     string
	Version string

	IsGitHubActions  bool
	StepSummary      string
	GitHubRepository string
	GitHubEventPath  string
}

// PersistReport reports whether the report is appended to the report file.
func (f *Flags) PersistReport() bool {
	return f.StepSummary != ""
}
