// Package cli defines the markfind command line interface.
package cli

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/markfind/pkg/cli/flag"
	"github.com/suzuki-shunsuke/markfind/pkg/cli/initcmd"
	"github.com/suzuki-shunsuke/markfind/pkg/cli/scan"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/urfave"
	"github.com/urfave/cli/v3"
)

// Run runs markfind. Scanning is the default action, and init and version are subcommands.
func Run(ctx context.Context, logE *logrus.Entry, ldFlags *urfave.LDFlags, args ...string) error {
	return New(logE, ldFlags).Run(ctx, args) //nolint:wrapcheck
}

func New(logE *logrus.Entry, ldFlags *urfave.LDFlags) *cli.Command {
	globalFlags := &flag.GlobalFlags{}
	cmd := scan.New(logE, globalFlags, ldFlags.Version)
	cmd.Version = ldFlags.Version + " (" + ldFlags.Commit + ")"
	cmd.EnableShellCompletion = true
	cmd.Commands = []*cli.Command{
		initcmd.New(logE, globalFlags),
		newVersionCommand(),
	}
	return cmd
}
