package site

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/ziadkadry99/docmap/internal/overview"
)

// maxSearchContent bounds the text stored per search entry.
const maxSearchContent = 2000

// SearchEntry represents a single searchable page or section.
type SearchEntry struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}

// markdownSearchEntry extracts title, summary and content from a markdown
// document. The title is the first H1, the summary the first non-heading
// line after it.
func markdownSearchEntry(outPath, fallbackTitle, md string) SearchEntry {
	entry := SearchEntry{Path: outPath}

	var text []string
	for _, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if entry.Title == "" && strings.HasPrefix(trimmed, "# ") {
			entry.Title = strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
			continue
		}
		plain := strings.TrimSpace(strings.TrimLeft(trimmed, "#-* "))
		if plain == "" {
			continue
		}
		if entry.Summary == "" && !strings.HasPrefix(trimmed, "#") {
			entry.Summary = plain
		}
		text = append(text, plain)
	}

	if entry.Title == "" {
		entry.Title = fallbackTitle
	}
	entry.Content = truncate(strings.Join(text, " "), maxSearchContent)
	return entry
}

// overviewSearchEntries returns one entry per section of the overview page,
// linking to the section anchor.
func overviewSearchEntries(outPath string, p *overview.Page) []SearchEntry {
	var entries []SearchEntry
	for _, s := range p.Sections {
		var text []string
		text = append(text, s.Body...)
		for _, it := range s.Items {
			text = append(text, strings.TrimSpace(it.Strong+" "+it.Text))
		}
		for _, l := range s.Links {
			text = append(text, l.Label)
		}
		switch s.Type {
		case overview.SectionFileMap:
			if p.FileMap != nil {
				for _, g := range p.FileMap.Groups {
					for _, it := range g.Items {
						text = append(text, it.FullPath())
					}
				}
			}
		case overview.SectionFileDescriptions:
			if p.FileDescriptions != nil {
				for _, c := range p.FileDescriptions.Categories {
					for _, it := range c.Items {
						text = append(text, it.Name+" "+it.Description)
					}
				}
			}
		}

		entry := SearchEntry{
			Path:    outPath + "#" + s.ID,
			Title:   s.NavText(),
			Content: truncate(strings.Join(text, " "), maxSearchContent),
		}
		if len(s.Body) > 0 {
			entry.Summary = s.Body[0]
		}
		entries = append(entries, entry)
	}
	return entries
}

// WriteSearchIndex serializes the search index as indented JSON.
func WriteSearchIndex(entries []SearchEntry) ([]byte, error) {
	if entries == nil {
		entries = []SearchEntry{}
	}
	return json.MarshalIndent(entries, "", "  ")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	// Back up to a rune boundary.
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

