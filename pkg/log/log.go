// Package log creates the logrus entry shared by all markfind commands.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFileMaxSizeMB  = 10
	logFileMaxBackups = 3
	logFileMaxAgeDays = 28
	dirPermission     = 0o755
)

// New returns a logrus entry writing text logs to stderr.
func New(version string) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{})
	return logger.WithFields(logrus.Fields{
		"version": version,
		"program": "markfind",
	})
}

// SetLevel sets the log level. An empty level keeps the current one.
func SetLevel(level string, logE *logrus.Entry) {
	if level == "" {
		return
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logE.WithField("log_level", level).WithError(err).Error("the log level is invalid")
		return
	}
	logE.Logger.Level = lvl
}

// SetOutput tees logs into a rotating log file in addition to stderr.
func SetOutput(logE *logrus.Entry, logFile string) error {
	if logFile == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(logFile), dirPermission); err != nil {
		return fmt.Errorf("create a directory for the log file: %w", err)
	}
	w := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    logFileMaxSizeMB,
		MaxBackups: logFileMaxBackups,
		MaxAge:     logFileMaxAgeDays,
		Compress:   true,
	}
	logE.Logger.SetOutput(io.MultiWriter(os.Stderr, w))
	return nil
}
