// Package di creates and wires together the dependencies of a scan.
package di

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/markfind/pkg/config"
	"github.com/suzuki-shunsuke/markfind/pkg/controller/scan"
	"github.com/suzuki-shunsuke/markfind/pkg/github"
	"github.com/suzuki-shunsuke/markfind/pkg/marker"
	"github.com/suzuki-shunsuke/markfind/pkg/report"
	"github.com/suzuki-shunsuke/markfind/pkg/summary"
)

// Run scans flags.Folder.
func Run(ctx context.Context, logE *logrus.Entry, fs afero.Fs, flags *Flags, secrets *Secrets) error {
	if err := scan.ValidateFormat(flags.Format); err != nil {
		return fmt.Errorf("validate --format: %w", err)
	}
	param := &scan.ParamScan{
		Folder:         flags.Folder,
		ConfigFilePath: flags.Markers,
		Version:        flags.Version,
		Format:         flags.Format,
		PersistReport:  flags.PersistReport(),
		PullRequest:    setupPullRequest(fs, logE, flags, secrets.GitHubToken),
		Stdout:         os.Stdout,
	}
	reportPath := filepath.Join(flags.PWD, summary.FileName)
	deps := &scan.Dependencies{
		Fs:        fs,
		CfgFinder: config.NewFinder(fs),
		CfgReader: config.NewReader(fs),
		Scanner:   marker.NewScanner(fs),
		Writer:    summary.NewWriter(fs, reportPath, summary.NewFileLock(reportPath)),
		HTML:      report.NewHTMLRenderer(),
	}
	if param.PullRequest != nil {
		gh := github.New(ctx, secrets.GitHubToken)
		deps.Commenter = github.NewCommenter(gh.Issues)
	}
	return scan.New(deps, param).Run(ctx, logE) //nolint:wrapcheck
}
