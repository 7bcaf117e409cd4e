// Package markdown converts a restricted Markdown subset into HTML fragments.
//
// The subset covers ATX headings of level 1 to 3, unordered list items,
// paragraphs and four inline spans: links, inline code, bold and italic.
// Anything else is emitted as escaped paragraph text. Documents that need the
// full CommonMark/GFM grammar go through GFM instead.
package markdown

import (
	"io"
	"regexp"
	"strings"
	"unicode"
)

// Renderer writes the HTML rendering of a Markdown document to w.
type Renderer interface {
	Render(w io.Writer, markdown string) error
}

var (
	lineBreak = regexp.MustCompile(`\r?\n`)

	heading3 = regexp.MustCompile(`^###\s+(.*)$`)
	heading2 = regexp.MustCompile(`^##\s+(.*)$`)
	heading1 = regexp.MustCompile(`^#\s+(.*)$`)
	listItem = regexp.MustCompile(`^[-*]\s+(.*)$`)

	// Most specific first.
	headings = []struct {
		tag string
		re  *regexp.Regexp
	}{
		{"h3", heading3},
		{"h2", heading2},
		{"h1", heading1},
	}

	// ***Title*** on a line of its own.
	tripleStar = regexp.MustCompile(`^\*\*\*([^*].*?)\*\*\*$`)
)

// Converter turns Markdown text into a string of HTML fragments. It holds no
// state between calls and may be shared between goroutines.
type Converter struct {
	tripleStarHeadings bool
}

// Option configures a Converter.
type Option func(*Converter)

// WithTripleStarHeadings makes a line consisting only of ***text*** render
// as an <h4> heading.
func WithTripleStarHeadings() Option {
	return func(c *Converter) {
		c.tripleStarHeadings = true
	}
}

// New creates a Converter with the given options.
func New(opts ...Option) *Converter {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultConverter = New()

// Convert converts markdown with the default Converter.
func Convert(markdown string) string {
	return defaultConverter.Convert(markdown)
}

// Convert scans markdown line by line. Each line is classified on its own:
// blank, heading (### before ## before #), list item, or paragraph. Runs of
// list items share one <ul>, which any other kind of line closes.
func (c *Converter) Convert(markdown string) string {
	if markdown == "" {
		return ""
	}

	var b strings.Builder
	inList := false
	closeList := func() {
		if inList {
			b.WriteString("</ul>")
			inList = false
		}
	}

	for _, raw := range lineBreak.Split(markdown, -1) {
		line := strings.TrimRightFunc(raw, unicode.IsSpace)
		if line == "" {
			closeList()
			continue
		}

		if c.tripleStarHeadings {
			if m := tripleStar.FindStringSubmatch(line); m != nil {
				closeList()
				writeElement(&b, "h4", m[1])
				continue
			}
		}

		if tag, text, ok := matchHeading(line); ok {
			closeList()
			writeElement(&b, tag, text)
			continue
		}

		if m := listItem.FindStringSubmatch(line); m != nil {
			if !inList {
				b.WriteString("<ul>")
				inList = true
			}
			writeElement(&b, "li", m[1])
			continue
		}

		closeList()
		writeElement(&b, "p", line)
	}
	closeList()

	return b.String()
}

// Render implements Renderer.
func (c *Converter) Render(w io.Writer, markdown string) error {
	_, err := io.WriteString(w, c.Convert(markdown))
	return err
}

func matchHeading(line string) (tag, text string, ok bool) {
	if !strings.HasPrefix(line, "#") {
		return "", "", false
	}
	for _, h := range headings {
		if m := h.re.FindStringSubmatch(line); m != nil {
			return h.tag, m[1], true
		}
	}
	return "", "", false
}

func writeElement(b *strings.Builder, tag, text string) {
	b.WriteString("<" + tag + ">")
	b.WriteString(Inline(text))
	b.WriteString("</" + tag + ">")
}
