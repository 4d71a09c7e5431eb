package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"github.com/suzuki-shunsuke/markfind/pkg/cli"
	"github.com/suzuki-shunsuke/markfind/pkg/cli/scan"
	"github.com/suzuki-shunsuke/markfind/pkg/log"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/urfave"
)

var (
	version = ""
	commit  = "" //nolint:gochecknoglobals
	date    = "" //nolint:gochecknoglobals
)

const exitCodeUsage = 2

func main() {
	logE := log.New(version)
	if err := core(logE); err != nil {
		if errors.Is(err, scan.ErrUsage) {
			logE.Error(err.Error())
			os.Exit(exitCodeUsage)
		}
		logerr.WithError(logE, err).Fatal("markfind failed")
	}
}

func core(logE *logrus.Entry) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return cli.Run(ctx, logE, &urfave.LDFlags{ //nolint:wrapcheck
		Version: version,
		Commit:  commit,
		Date:    date,
	}, os.Args...)
}
