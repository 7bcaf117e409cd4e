package markdown

import (
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"only blank lines", "\n   \n\t\n", ""},
		{"h1", "# Title", "<h1>Title</h1>"},
		{"h2", "## Section", "<h2>Section</h2>"},
		{"h3", "### Added", "<h3>Added</h3>"},
		{"h3 never h2 or list", "### Title", "<h3>Title</h3>"},
		{"heading needs space", "#Title", "<p>#Title</p>"},
		{"level four is a paragraph", "#### Deep", "<p>#### Deep</p>"},
		{"trailing whitespace stripped", "## Section   \t", "<h2>Section</h2>"},
		{"paragraph fallback", "Just text.", "<p>Just text.</p>"},
		{"pure inline markup is a paragraph", "**bold**", "<p><strong>bold</strong></p>"},
		{
			"list grouping",
			"- a\n- b\n- c",
			"<ul><li>a</li><li>b</li><li>c</li></ul>",
		},
		{
			"star list marker",
			"* a\n- b",
			"<ul><li>a</li><li>b</li></ul>",
		},
		{
			"blank line splits lists",
			"- a\n\n- b",
			"<ul><li>a</li></ul><ul><li>b</li></ul>",
		},
		{
			"heading closes list",
			"- a\n## Next",
			"<ul><li>a</li></ul><h2>Next</h2>",
		},
		{
			"paragraph closes list",
			"- a\ntext",
			"<ul><li>a</li></ul><p>text</p>",
		},
		{
			"list open at end of input is closed",
			"intro\n- a",
			"<p>intro</p><ul><li>a</li></ul>",
		},
		{
			"every paragraph line is its own paragraph",
			"one\ntwo",
			"<p>one</p><p>two</p>",
		},
		{
			"crlf line endings",
			"# Title\r\n\r\n- a\r\n- b\r\n",
			"<h1>Title</h1><ul><li>a</li><li>b</li></ul>",
		},
		{
			"heading text is inline formatted",
			"## [V1.0](http://x)",
			`<h2><a href="http://x" target="_blank" rel="noopener noreferrer">V1.0</a></h2>`,
		},
		{
			"list marker without space is a paragraph",
			"-dash",
			"<p>-dash</p>",
		},
		{
			"triple star is not a heading by default",
			"***Note***",
			"<p><strong><em>Note</em></strong></p>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Convert(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Convert(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestConvertEndToEnd(t *testing.T) {
	input := "# Title\n\n## Section\n\n- one\n- two\n\nSome *italic* and **bold** and `code`.\n"
	want := "<h1>Title</h1><h2>Section</h2><ul><li>one</li><li>two</li></ul>" +
		"<p>Some <em>italic</em> and <strong>bold</strong> and <code>code</code>.</p>"

	if diff := cmp.Diff(want, Convert(input)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertEscapesText(t *testing.T) {
	inputs := []string{
		"a < b && c > d",
		"# <script>alert(1)</script>",
		"- x <b>bold?</b> & more",
		"[<x>](http://a.b/?q=<y>)",
		"`<tag>` and **<em>**",
	}
	for _, in := range inputs {
		got := Convert(in)
		text := stripKnownTags(got)
		if strings.ContainsAny(text, "<>") {
			t.Errorf("Convert(%q) = %q: raw angle bracket outside emitted tags", in, got)
		}
		if strings.Contains(entity.ReplaceAllString(text, ""), "&") {
			t.Errorf("Convert(%q) = %q: unescaped ampersand", in, got)
		}
	}
}

var entity = regexp.MustCompile(`&(?:amp|lt|gt|#34|#42);`)

// stripKnownTags removes the tags the converter emits.
func stripKnownTags(s string) string {
	for _, tag := range []string{"h1", "h2", "h3", "h4", "p", "ul", "li", "code", "strong", "em", "a"} {
		s = strings.ReplaceAll(s, "</"+tag+">", "")
		s = strings.ReplaceAll(s, "<"+tag+">", "")
	}
	for {
		i := strings.Index(s, "<a href=")
		if i < 0 {
			break
		}
		j := strings.Index(s[i:], ">")
		s = s[:i] + s[i+j+1:]
	}
	return s
}

func TestConvertHeadingPrecedence(t *testing.T) {
	got := Convert("### Title")
	if strings.Count(got, "<h3>") != 1 {
		t.Errorf("got %q, want exactly one <h3>", got)
	}
	for _, tag := range []string{"<h2>", "<h1>", "<li>", "<p>"} {
		if strings.Contains(got, tag) {
			t.Errorf("got %q, should not contain %s", got, tag)
		}
	}
}

func TestConvertDeterministic(t *testing.T) {
	input := "# A\n- x\n- *y*\n\n[l](t) `c` **b**\n"
	first := Convert(input)
	c := New()
	for i := 0; i < 3; i++ {
		if got := c.Convert(input); got != first {
			t.Fatalf("run %d = %q, want %q", i, got, first)
		}
	}
}

func TestConvertConcurrent(t *testing.T) {
	docs := []string{
		"# One\n- a\n- b",
		"## Two\n\ntext **x**",
		"### Three\n* [go](http://go.dev)",
	}
	want := make([]string, len(docs))
	for i, d := range docs {
		want[i] = Convert(d)
	}

	c := New()
	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		for i, d := range docs {
			wg.Add(1)
			go func(i int, d string) {
				defer wg.Done()
				if got := c.Convert(d); got != want[i] {
					t.Errorf("concurrent Convert(%q) = %q, want %q", d, got, want[i])
				}
			}(i, d)
		}
	}
	wg.Wait()
}

func TestTripleStarHeadings(t *testing.T) {
	c := New(WithTripleStarHeadings())
	tests := []struct {
		input, want string
	}{
		{"***Chapter One***", "<h4>Chapter One</h4>"},
		{"- a\n***Part***\n- b", "<ul><li>a</li></ul><h4>Part</h4><ul><li>b</li></ul>"},
		{"***not*** a heading", "<p><strong><em>not</em></strong> a heading</p>"},
		{"# Still h1", "<h1>Still h1</h1>"},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, c.Convert(tt.input)); diff != "" {
			t.Errorf("Convert(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestConverterRender(t *testing.T) {
	var b strings.Builder
	if err := New().Render(&b, "- x"); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if b.String() != "<ul><li>x</li></ul>" {
		t.Errorf("Render wrote %q", b.String())
	}
}
