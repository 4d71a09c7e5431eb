package report

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// HTMLRenderer converts the Markdown report to sanitized HTML.
type HTMLRenderer struct {
	md        goldmark.Markdown
	sanitizer *bluemonday.Policy
}

func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{
		md: goldmark.New(
			goldmark.WithRendererOptions(
				html.WithXHTML(),
				// the report embeds HTML tags. Lines of scripts are sanitized afterwards.
				html.WithUnsafe(),
			),
		),
		sanitizer: bluemonday.UGCPolicy(),
	}
}

func (r *HTMLRenderer) Render(markdown string) (string, error) {
	buf := &bytes.Buffer{}
	if err := r.md.Convert([]byte(markdown), buf); err != nil {
		return "", fmt.Errorf("convert the report to HTML: %w", err)
	}
	return r.sanitizer.Sanitize(buf.String()), nil
}
