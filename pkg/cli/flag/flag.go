// Package flag defines flags shared by markfind commands.
package flag

import (
	"strings"

	"github.com/suzuki-shunsuke/markfind/pkg/config"
	"github.com/urfave/cli/v3"
)

type GlobalFlags struct {
	LogLevel string
	LogFile  string
	Markers  string
}

func (gf *GlobalFlags) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level",
			Sources:     cli.EnvVars("MARKFIND_LOG_LEVEL"),
			Destination: &gf.LogLevel,
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "write logs to a rotated file too",
			Sources:     cli.EnvVars("MARKFIND_LOG_FILE"),
			Destination: &gf.LogFile,
		},
		&cli.StringFlag{
			Name:        "markers",
			Aliases:     []string{"m"},
			Usage:       "markers file path. By default, " + strings.Join(config.Paths, ", ") + " are searched in order",
			Sources:     cli.EnvVars("MARKFIND_MARKERS"),
			Destination: &gf.Markers,
		},
	}
}
