package markdown

import (
	"bytes"
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// DefaultHighlightStyle is the chroma style used for fenced code blocks.
const DefaultHighlightStyle = "github"

// GFM renders full GitHub Flavored Markdown with goldmark. It is used for
// documents that go beyond the subset Converter understands, such as build
// instructions with tables and fenced code.
type GFM struct {
	md goldmark.Markdown
}

type gfmOptions struct {
	style  string
	unsafe bool
}

// GFMOption configures a GFM renderer.
type GFMOption func(*gfmOptions)

// WithHighlightStyle selects the chroma style for code blocks.
func WithHighlightStyle(style string) GFMOption {
	return func(o *gfmOptions) {
		if style != "" {
			o.style = style
		}
	}
}

// WithRawHTML passes raw HTML in the document through to the output.
func WithRawHTML() GFMOption {
	return func(o *gfmOptions) {
		o.unsafe = true
	}
}

// NewGFM creates a goldmark-backed renderer.
func NewGFM(opts ...GFMOption) *GFM {
	o := gfmOptions{style: DefaultHighlightStyle}
	for _, opt := range opts {
		opt(&o)
	}

	var rendererOpts []goldmark.Option
	if o.unsafe {
		rendererOpts = append(rendererOpts, goldmark.WithRendererOptions(html.WithUnsafe()))
	}

	md := goldmark.New(append([]goldmark.Option{
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(o.style),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	}, rendererOpts...)...)

	return &GFM{md: md}
}

// Render implements Renderer.
func (g *GFM) Render(w io.Writer, markdown string) error {
	if err := g.md.Convert([]byte(markdown), w); err != nil {
		return fmt.Errorf("converting markdown: %w", err)
	}
	return nil
}

// Convert renders markdown to a string.
func (g *GFM) Convert(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := g.Render(&buf, markdown); err != nil {
		return "", err
	}
	return buf.String(), nil
}
