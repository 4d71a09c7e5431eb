// Package scan implements the default markfind command.
// It reads markers from the markers file, walks the target directory for
// Ren'Py scripts, finds markers line by line and outputs the report.
// Recoverable failures (an unreadable markers file, an unreadable script)
// never stop the command. They are collected and printed to stdout.
package scan

import (
	"context"
	"io"

	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/markfind/pkg/config"
	"github.com/suzuki-shunsuke/markfind/pkg/github"
	"github.com/suzuki-shunsuke/markfind/pkg/marker"
)

type Controller struct {
	fs        afero.Fs
	cfgFinder ConfigFinder
	cfgReader ConfigReader
	scanner   FileScanner
	writer    ReportWriter
	commenter Commenter
	html      HTMLRenderer
	param     *ParamScan
	logger    *Logger
}

type ConfigFinder interface {
	Find(configFilePath string) (string, error)
}

type ConfigReader interface {
	Read(cfg *config.Config, configFilePath string) error
}

type FileScanner interface {
	ScanFile(path string, markers []string) ([]*marker.Match, error)
}

type ReportWriter interface {
	Append(report string) error
}

type Commenter interface {
	Post(ctx context.Context, pr *github.PullRequest, body string) error
}

type HTMLRenderer interface {
	Render(markdown string) (string, error)
}

// Dependencies groups the collaborators of the controller.
// Writer, Commenter and HTML may be nil when the feature isn't used.
type Dependencies struct {
	Fs        afero.Fs
	CfgFinder ConfigFinder
	CfgReader ConfigReader
	Scanner   FileScanner
	Writer    ReportWriter
	Commenter Commenter
	HTML      HTMLRenderer
}

func New(deps *Dependencies, param *ParamScan) *Controller {
	return &Controller{
		fs:        deps.Fs,
		cfgFinder: deps.CfgFinder,
		cfgReader: deps.CfgReader,
		scanner:   deps.Scanner,
		writer:    deps.Writer,
		commenter: deps.Commenter,
		html:      deps.HTML,
		param:     param,
		logger:    NewLogger(param.Stdout),
	}
}

// ParamScan is the input of a scan decided at startup.
type ParamScan struct {
	Folder         string
	ConfigFilePath string
	Version        string
	Format         string
	// PersistReport appends the report to the report file.
	// It is enabled when GITHUB_STEP_SUMMARY is set.
	PersistReport bool
	PullRequest   *github.PullRequest
	Stdout        io.Writer
}
