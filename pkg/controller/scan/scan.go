package scan

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/markfind/pkg/config"
	"github.com/suzuki-shunsuke/markfind/pkg/marker"
)

const (
	MsgNoMarkers = "marker list is empty or file unreadable"
	MsgNoMatches = "no markers found"
)

// Run scans the folder and outputs the report.
// An empty marker list and a scan without matches aren't errors.
// Errors are returned only when the report can't be output.
func (c *Controller) Run(ctx context.Context, logE *logrus.Entry) error {
	markers := c.readMarkers(logE)
	if len(markers) == 0 {
		c.logger.Notice(MsgNoMarkers)
		return nil
	}
	result := c.scan(logE, markers)
	if err := result.Err(); err != nil {
		for _, e := range result.Errors.Errors {
			c.logger.Error("read a file", e)
		}
	}
	if result.Empty() {
		c.logger.Notice(MsgNoMatches)
		return nil
	}
	logE.WithFields(logrus.Fields{
		"files":   len(result.Files),
		"matches": result.MatchCount(),
	}).Debug("markers are found")
	return c.output(ctx, logE, result)
}

// readMarkers returns the configured markers.
// A markers file which can't be found, read or validated is reported and
// treated as an empty marker list.
func (c *Controller) readMarkers(logE *logrus.Entry) []string {
	cfg, err := c.readConfig()
	if err != nil {
		c.logger.Error("load the markers file", err)
		return nil
	}
	logE.WithFields(logrus.Fields{
		"markers_file": c.param.ConfigFilePath,
		"markers":      len(cfg.Markers),
	}).Debug("read the markers file")
	return cfg.Markers
}

func (c *Controller) readConfig() (*config.Config, error) {
	p, err := c.cfgFinder.Find(c.param.ConfigFilePath)
	if err != nil {
		return nil, fmt.Errorf("find a markers file: %w", err)
	}
	c.param.ConfigFilePath = p
	cfg := &config.Config{}
	if err := c.cfgReader.Read(cfg, p); err != nil {
		return nil, fmt.Errorf("read a markers file: %w", err)
	}
	if err := cfg.Init(c.param.Version); err != nil {
		return nil, fmt.Errorf("validate a markers file: %w", err)
	}
	return cfg, nil
}

func (c *Controller) scan(logE *logrus.Entry, markers []string) *marker.Result {
	result := &marker.Result{}
	for _, file := range c.enumerateFiles(logE, c.param.Folder) {
		matches, err := c.scanner.ScanFile(file, markers)
		if err != nil {
			result.AddError(fmt.Errorf("%s: %w", file, err))
			continue
		}
		logE.WithFields(logrus.Fields{
			"file":    file,
			"matches": len(matches),
		}).Debug("scanned a file")
		result.Add(file, matches)
	}
	return result
}
