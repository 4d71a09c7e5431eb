// Package initcmd implements the 'markfind init' command.
package initcmd

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/markfind/pkg/cli/flag"
	"github.com/suzuki-shunsuke/markfind/pkg/config"
	"github.com/suzuki-shunsuke/markfind/pkg/controller/initcmd"
	"github.com/suzuki-shunsuke/markfind/pkg/log"
	"github.com/urfave/cli/v3"
)

type Flags struct {
	Markers []string
	Args    []string
}

func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags) *cli.Command {
	r := &runner{
		logE:        logE,
		globalFlags: globalFlags,
	}
	return r.Command()
}

type runner struct {
	logE        *logrus.Entry
	globalFlags *flag.GlobalFlags
}

func (r *runner) Command() *cli.Command {
	flags := &Flags{}
	return &cli.Command{
		Name:  "init",
		Usage: "Create markers.yml if it doesn't exist",
		Description: `Create markers.yml if it doesn't exist

$ markfind init

You can also pass the markers file path.

$ markfind init game/markers.yml

Markers passed with -marker are added to the file even if the file exists.
Comments in the file are kept.

$ markfind init -marker "TODO:" -marker "# TRANSLATE"
`,
		Action: func(_ context.Context, _ *cli.Command) error {
			return r.action(flags)
		},
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:        "marker",
				Usage:       "A marker added to the markers file",
				Destination: &flags.Markers,
			},
		},
		Arguments: []cli.Argument{
			&cli.StringArgs{
				Name:        "path",
				Max:         1,
				Destination: &flags.Args,
			},
		},
	}
}

func (r *runner) action(flags *Flags) error {
	log.SetLevel(r.globalFlags.LogLevel, r.logE)
	configFilePath := ""
	if len(flags.Args) > 0 {
		configFilePath = flags.Args[0]
	}
	if configFilePath == "" {
		configFilePath = r.globalFlags.Markers
	}
	fs := afero.NewOsFs()
	configFilePath, err := config.NewFinder(fs).Find(configFilePath)
	if err != nil {
		return fmt.Errorf("find a markers file: %w", err)
	}
	ctrl := initcmd.New(fs)
	if err := ctrl.Init(configFilePath, flags.Markers); err != nil {
		return fmt.Errorf("initialize a markers file: %w", err)
	}
	r.logE.WithField("markers_file", configFilePath).Debug("initialized a markers file")
	return nil
}
