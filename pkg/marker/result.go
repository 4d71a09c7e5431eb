package marker

import (
	"github.com/hashicorp/go-multierror"
)

// FileResult is the list of matches found in a file.
type FileResult struct {
	Path    string
	Matches []*Match
}

// Result is the outcome of a scan.
// Files keeps the order in which files were added, which is the order of
// the directory walk. Files without matches are never stored.
type Result struct {
	Files  []*FileResult
	Errors *multierror.Error
}

// Add stores the matches of a file. Files without matches are ignored.
func (r *Result) Add(path string, matches []*Match) {
	if len(matches) == 0 {
		return
	}
	r.Files = append(r.Files, &FileResult{
		Path:    path,
		Matches: matches,
	})
}

// AddError records a failure to scan a file.
func (r *Result) AddError(err error) {
	r.Errors = multierror.Append(r.Errors, err)
}

// Err returns the aggregated errors or nil.
func (r *Result) Err() error {
	return r.Errors.ErrorOrNil()
}

func (r *Result) Empty() bool {
	return len(r.Files) == 0
}

func (r *Result) MatchCount() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Matches)
	}
	return n
}
