package scan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/markfind/pkg/marker"
	"github.com/suzuki-shunsuke/markfind/pkg/report"
)

const (
	FormatNone     = ""
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatSARIF    = "sarif"
)

// ValidateFormat returns an error if the output format is unknown.
func ValidateFormat(format string) error {
	switch format {
	case FormatNone, FormatMarkdown, FormatHTML, FormatSARIF:
		return nil
	default:
		return errors.New("format must be markdown, html, or sarif")
	}
}

// output persists, prints and posts the report.
// By default the report is only persisted, and only when PersistReport is true.
func (c *Controller) output(ctx context.Context, logE *logrus.Entry, result *marker.Result) error {
	md := report.Markdown(result)
	if c.param.PersistReport {
		if err := c.writer.Append(md); err != nil {
			return fmt.Errorf("append the report: %w", err)
		}
		logE.Debug("appended the report")
	}
	if err := c.print(result, md); err != nil {
		return err
	}
	if c.param.PullRequest != nil {
		if err := c.commenter.Post(ctx, c.param.PullRequest, md); err != nil {
			return fmt.Errorf("post the report to the pull request: %w", err)
		}
		logE.WithField("pr", c.param.PullRequest.Number).Info("posted the report to the pull request")
	}
	return nil
}

func (c *Controller) print(result *marker.Result, md string) error {
	switch c.param.Format {
	case FormatMarkdown:
		fmt.Fprintln(c.param.Stdout, md)
	case FormatHTML:
		s, err := c.html.Render(md)
		if err != nil {
			return fmt.Errorf("render the report: %w", err)
		}
		fmt.Fprintln(c.param.Stdout, s)
	case FormatSARIF:
		encoder := json.NewEncoder(c.param.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report.SARIF(result, c.param.Version)); err != nil {
			return fmt.Errorf("encode SARIF: %w", err)
		}
	}
	return nil
}
