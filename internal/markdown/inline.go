package markdown

import (
	"regexp"
	"strings"
)

var (
	escapeHTML = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

	linkSpan   = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	codeSpan     = regexp.MustCompile("`([^`]+)`")
	strongEmSpan = regexp.MustCompile(`\*\*\*(.+?)\*\*\*`)
	strongSpan   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	emSpan       = regexp.MustCompile(`\*(.+?)\*`)
)

// Inline applies the inline pass to one line of text: HTML escaping, then
// links, inline code, bold and italic, in that order. Later passes see the
// output of earlier ones, so markers inside a link target are still
// substituted. Asterisks inside code spans are written as &#42; and so are
// left alone by the emphasis passes.
//
// All patterns run on Go's RE2 engine, which matches in time linear in the
// input; pathological runs of asterisks cannot make it backtrack.
func Inline(text string) string {
	out := escapeHTML.Replace(text)

	out = linkSpan.ReplaceAllStringFunc(out, func(m string) string {
		sub := linkSpan.FindStringSubmatch(m)
		href := strings.ReplaceAll(sub[2], `"`, "&#34;")
		return `<a href="` + href + `" target="_blank" rel="noopener noreferrer">` + sub[1] + `</a>`
	})
	out = codeSpan.ReplaceAllStringFunc(out, func(m string) string {
		code := codeSpan.FindStringSubmatch(m)[1]
		return "<code>" + strings.ReplaceAll(code, "*", "&#42;") + "</code>"
	})
	out = strongEmSpan.ReplaceAllString(out, "<strong><em>${1}</em></strong>")
	out = strongSpan.ReplaceAllString(out, "<strong>${1}</strong>")
	out = emSpan.ReplaceAllString(out, "<em>${1}</em>")

	return out
}
