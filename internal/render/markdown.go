// Package render converts page markdown to HTML using goldmark.
//
// Raw HTML in page content passes through unsanitized. The store is
// single-user and content is the user's own, so the output is treated as
// trusted; callers embedding it elsewhere need their own sanitizer.
package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer is a stateless markdown-to-HTML converter; a single instance
// can be shared without locking.
type Renderer struct {
	engine goldmark.Markdown
}

// New constructs a Renderer with GFM extensions, autolinks, task lists,
// and raw HTML passthrough.
func New() *Renderer {
	return &Renderer{
		engine: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Linkify,
				extension.TaskList,
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
	}
}

// Render converts markdown source to HTML.
func (r *Renderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.engine.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}
