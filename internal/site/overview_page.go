package site

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/ziadkadry99/docmap/internal/markdown"
	"github.com/ziadkadry99/docmap/internal/overview"
)

// sectionTemplates maps a section type to the template that renders it.
// Unknown types fall back to paragraphs.
var sectionTemplates = map[overview.SectionType]string{
	overview.SectionParagraphs:       "section-paragraphs",
	overview.SectionFunFact:          "section-paragraphs",
	overview.SectionDesignApproach:   "section-design",
	overview.SectionHelpfulLinks:     "section-links",
	overview.SectionBuilding:         "section-links",
	overview.SectionFeatures:         "section-features",
	overview.SectionBullets:          "section-bullets",
	overview.SectionGallery:          "section-gallery",
	overview.SectionFileMap:          "section-filemap",
	overview.SectionFileDescriptions: "section-descriptions",
}

// sectionView is what a section template sees.
type sectionView struct {
	overview.Section
	Heading          string
	FileMap          *overview.FileMap
	FileDescriptions *overview.FileDescriptions
}

// renderedSection is one finished section of the page.
type renderedSection struct {
	ID   string
	HTML template.HTML
}

type overviewView struct {
	Project  overview.Project
	Hero     *overview.Hero
	NavTitle string
	Nav      []overview.Section
	Sections []renderedSection
	Gallery  bool
}

// overviewPage returns the overview with FileFilter applied to its file map.
// g.Overview itself is not modified.
func (g *SiteGenerator) overviewPage() (*overview.Page, error) {
	p := g.Overview
	if g.FileFilter == "" || p.FileMap == nil {
		return p, nil
	}
	groups, err := p.FileMap.Filter(g.FileFilter)
	if err != nil {
		return nil, err
	}
	fm := *p.FileMap
	fm.Groups = groups
	filtered := *p
	filtered.FileMap = &fm
	return &filtered, nil
}

func (g *SiteGenerator) renderOverview(tmpl *template.Template, links []navLink, p *overview.Page) error {
	view := overviewView{
		Project:  p.Project,
		Hero:     p.Hero,
		NavTitle: p.NavigationTitle,
		Nav:      p.NavSections(),
	}
	if view.NavTitle == "" {
		view.NavTitle = "On this page"
	}

	for _, s := range p.Sections {
		html, err := renderSection(tmpl, p, s)
		if err != nil {
			return fmt.Errorf("section %q: %w", s.ID, err)
		}
		view.Sections = append(view.Sections, renderedSection{ID: s.ID, HTML: html})
		if s.Type == overview.SectionGallery && len(s.Images) > 0 {
			view.Gallery = true
		}
	}

	var content bytes.Buffer
	if err := tmpl.ExecuteTemplate(&content, "overview", view); err != nil {
		return err
	}

	title := p.Project.Title
	if title == "" {
		title = g.ProjectName
	}
	return g.writePage(tmpl, overviewPage, layoutData{
		Title:     title + " – Doc Map",
		Links:     links,
		Active:    overviewPage,
		MainClass: "overview",
		Content:   template.HTML(content.String()),
	})
}

func renderSection(tmpl *template.Template, p *overview.Page, s overview.Section) (template.HTML, error) {
	name, ok := sectionTemplates[s.Type]
	if !ok {
		name = "section-paragraphs"
	}
	view := sectionView{
		Section:          s,
		Heading:          s.DisplayTitle(),
		FileMap:          p.FileMap,
		FileDescriptions: p.FileDescriptions,
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, view); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// inlineHTML formats a line of prose with the Markdown inline pass. The pass
// escapes its input, so the result is safe to emit unescaped.
func inlineHTML(s string) template.HTML {
	return template.HTML(markdown.Inline(s))
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("site").Funcs(template.FuncMap{
		"inline": inlineHTML,
	}).Parse(pageTemplates)
	if err != nil {
		return nil, fmt.Errorf("parsing page templates: %w", err)
	}
	return tmpl, nil
}
