// Package markdown renders the authored prose fields to HTML fragments.
package markdown

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Renderer converts markdown to HTML. Raw HTML in the source is dropped.
type Renderer struct {
	md goldmark.Markdown
}

// New returns a Renderer with GitHub-flavoured markdown and code
// highlighting in the given chroma style.
func New(style string) *Renderer {
	if style == "" {
		style = "github"
	}
	return &Renderer{md: goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)}
}

// Render converts src to an HTML fragment.
func (r *Renderer) Render(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(strings.TrimSpace(buf.String())), nil
}

// RenderAll converts each source in order.
func (r *Renderer) RenderAll(srcs []string) ([]template.HTML, error) {
	out := make([]template.HTML, 0, len(srcs))
	for i, s := range srcs {
		h, err := r.Render(s)
		if err != nil {
			return nil, fmt.Errorf("paragraph %d: %w", i, err)
		}
		out = append(out, h)
	}
	return out, nil
}
