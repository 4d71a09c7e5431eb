// Package scan implements the default markfind command, which scans a
// directory of Ren'Py scripts for markers.
package scan

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/markfind/pkg/cli/flag"
	"github.com/suzuki-shunsuke/markfind/pkg/di"
	"github.com/suzuki-shunsuke/markfind/pkg/log"
	"github.com/urfave/cli/v3"
)

// ErrUsage is returned when the command line arguments are invalid.
var ErrUsage = errors.New("invalid usage")

type runner struct {
	logE        *logrus.Entry
	globalFlags *flag.GlobalFlags
	version     string
}

func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags, version string) *cli.Command {
	r := &runner{
		logE:        logE,
		globalFlags: globalFlags,
		version:     version,
	}
	return r.Command()
}

func (r *runner) Command() *cli.Command {
	flags := &di.Flags{GlobalFlags: r.globalFlags}
	return &cli.Command{
		Name:      "markfind",
		Usage:     "Find markers in Ren'Py scripts",
		UsageText: "markfind [global options] <folder>",
		Description: `Search *.rpy files under <folder> for the markers listed in the markers file.

$ markfind game

The markers file is a YAML file with a list of literal strings.

markers:
  - "TODO:"
  - "FIXME"

If GITHUB_STEP_SUMMARY is set, the report is appended to report.md in the current directory.
`,
		Action: func(ctx context.Context, _ *cli.Command) error {
			return r.action(ctx, flags)
		},
		Flags: append(r.globalFlags.Flags(), []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "Output the report to stdout. One of markdown, html, and sarif",
				Destination: &flags.Format,
			},
			&cli.BoolFlag{
				Name:        "pr-comment",
				Usage:       "Post the report as a pull request comment on GitHub Actions",
				Destination: &flags.PRComment,
			},
			&cli.IntFlag{
				Name:        "pr",
				Usage:       "GitHub pull request number",
				Destination: &flags.PR,
			},
		}...),
		Arguments: []cli.Argument{
			&cli.StringArgs{
				Name:        "folder",
				Max:         1,
				Destination: &flags.Args,
			},
		},
	}
}

func (r *runner) action(ctx context.Context, flags *di.Flags) error {
	log.SetLevel(r.globalFlags.LogLevel, r.logE)
	if err := log.SetOutput(r.logE, r.globalFlags.LogFile); err != nil {
		return fmt.Errorf("set up the log file: %w", err)
	}
	fs := afero.NewOsFs()
	folder, err := getFolder(fs, flags.Args)
	if err != nil {
		return err
	}
	flags.Folder = folder
	flags.Version = r.version
	pwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get the current directory: %w", err)
	}
	flags.PWD = pwd
	di.SetEnv(flags, os.Getenv)
	secrets := &di.Secrets{}
	secrets.SetFromEnv(os.Getenv)
	return di.Run(ctx, r.logE, fs, flags, secrets) //nolint:wrapcheck
}

// getFolder validates the positional argument.
func getFolder(fs afero.Fs, args []string) (string, error) {
	if len(args) != 1 || args[0] == "" {
		return "", fmt.Errorf("%w: the folder argument is required", ErrUsage)
	}
	folder := args[0]
	f, err := afero.DirExists(fs, folder)
	if err != nil {
		return "", fmt.Errorf("check if the folder exists: %w", err)
	}
	if !f {
		return "", fmt.Errorf("%w: the path '%s' isn't a directory", ErrUsage, folder)
	}
	return folder, nil
}
