// Package site generates the static documentation site: an overview page
// built from structured content, a changelog page converted from Markdown,
// and any extra Markdown pages found in a docs directory.
package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/ziadkadry99/docmap/internal/config"
	"github.com/ziadkadry99/docmap/internal/markdown"
	"github.com/ziadkadry99/docmap/internal/overview"
	"github.com/ziadkadry99/docmap/internal/progress"
	"github.com/ziadkadry99/docmap/internal/source"
	"github.com/ziadkadry99/docmap/internal/walker"
)

const (
	overviewPage  = "index.html"
	changelogPage = "changelog.html"
	searchIndex   = "search-index.json"
)

// SiteGenerator writes the static site into OutputDir.
type SiteGenerator struct {
	OutputDir   string
	ProjectName string

	// Changelog is converted with Renderer into changelog.html when set.
	Changelog source.Source
	Renderer  markdown.Renderer

	// Overview is rendered into index.html when set. A non-empty FileFilter
	// narrows its file map to the matching files (see overview.FileMap.Filter).
	Overview   *overview.Page
	FileFilter string

	// DocsDir holds extra .md pages, rendered with DocsRenderer under docs/.
	// Pages matching a DocsExclude glob are skipped.
	DocsDir      string
	DocsExclude  []string
	DocsRenderer markdown.Renderer

	// FetchTimeout bounds the changelog fetch; zero means no limit.
	FetchTimeout time.Duration

	Logger *log.Logger

	// Progress is told about each page as it is written; nil reports nothing.
	Progress progress.Reporter
}

// PageError reports a page that was written in a degraded form because its
// document could not be acquired.
type PageError struct {
	Page   string
	Source string
	Err    error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("%s: loading %s: %v", e.Page, e.Source, e.Err)
}

func (e *PageError) Unwrap() error { return e.Err }

// NewSiteGenerator creates a SiteGenerator with the default renderers.
func NewSiteGenerator(outputDir, projectName string) *SiteGenerator {
	return &SiteGenerator{
		OutputDir:    outputDir,
		ProjectName:  projectName,
		Renderer:     markdown.New(),
		DocsRenderer: markdown.NewGFM(),
		Logger:       log.Default(),
	}
}

// FromConfig wires a SiteGenerator from configuration. client is used for
// remote changelogs and may be nil.
func FromConfig(cfg *config.Config, client *http.Client) (*SiteGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	g := NewSiteGenerator(cfg.OutputDir, cfg.ProjectName)
	g.DocsDir = cfg.DocsDir
	g.DocsExclude = cfg.DocsExclude
	g.FetchTimeout = cfg.FetchTimeout
	g.Progress = progress.New(cfg.Progress, os.Stderr, g.Logger)
	g.FileFilter = cfg.FileFilter

	gfmOpts := []markdown.GFMOption{markdown.WithHighlightStyle(cfg.HighlightStyle)}
	if cfg.DocsRawHTML {
		gfmOpts = append(gfmOpts, markdown.WithRawHTML())
	}
	g.DocsRenderer = markdown.NewGFM(gfmOpts...)

	switch cfg.Renderer {
	case config.RendererGFM:
		g.Renderer = g.DocsRenderer
	default:
		var opts []markdown.Option
		if cfg.TripleStarHeadings {
			opts = append(opts, markdown.WithTripleStarHeadings())
		}
		g.Renderer = markdown.New(opts...)
	}

	if cfg.Changelog != "" {
		src, err := source.Open(cfg.Changelog, client)
		if err != nil {
			return nil, err
		}
		g.Changelog = src
	}

	if cfg.Overview != "" {
		page, err := overview.Load(cfg.Overview)
		if err != nil {
			return nil, err
		}
		g.Overview = page
	}

	return g, nil
}

// Generate writes the site and returns the number of pages written. Pages
// whose source could not be fetched are still written with an error panel;
// their failures are returned together after everything else is done.
func (g *SiteGenerator) Generate(ctx context.Context) (int, error) {
	docPaths, err := g.collectDocs()
	if err != nil {
		return 0, err
	}
	if g.Overview == nil && g.Changelog == nil && len(docPaths) == 0 {
		return 0, fmt.Errorf("nothing to generate: no overview, changelog or markdown pages")
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}
	if err := g.writeFile("style.css", []byte(cssContent)); err != nil {
		return 0, err
	}
	if err := g.writeFile("script.js", []byte(jsContent)); err != nil {
		return 0, err
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return 0, err
	}

	docs, err := g.loadDocs(docPaths)
	if err != nil {
		return 0, err
	}
	links := g.topLinks(docs)

	var (
		pages   int
		entries []SearchEntry
		failed  []error
	)
	report := g.Progress
	if report == nil {
		report = progress.Nop{}
	}
	total := len(docs.pages)
	if g.Overview != nil {
		total++
	}
	if g.Changelog != nil {
		total++
	}
	report.Start(total)
	defer report.Finish()

	if g.Overview != nil {
		page, err := g.overviewPage()
		if err != nil {
			return pages, fmt.Errorf("rendering %s: %w", overviewPage, err)
		}
		if err := g.renderOverview(tmpl, links, page); err != nil {
			return pages, fmt.Errorf("rendering %s: %w", overviewPage, err)
		}
		entries = append(entries, overviewSearchEntries(overviewPage, page)...)
		pages++
		report.Update(pages, overviewPage)
	}

	if g.Changelog != nil {
		entry, pageErr, err := g.renderChangelog(ctx, tmpl, links)
		if err != nil {
			return pages, fmt.Errorf("rendering %s: %w", changelogPage, err)
		}
		if pageErr != nil {
			g.logf("changelog unavailable: %v", pageErr)
			failed = append(failed, pageErr)
		} else {
			entries = append(entries, entry)
		}
		pages++
		report.Update(pages, changelogPage)
	}

	for _, d := range docs.pages {
		if err := g.renderDoc(tmpl, links, docs.tree, d); err != nil {
			return pages, fmt.Errorf("rendering %s: %w", d.relPath, err)
		}
		entries = append(entries, markdownSearchEntry(d.outPath, d.title, d.content))
		pages++
		report.Update(pages, d.outPath)
	}

	data, err := WriteSearchIndex(entries)
	if err != nil {
		return pages, fmt.Errorf("building search index: %w", err)
	}
	if err := g.writeFile(searchIndex, data); err != nil {
		return pages, fmt.Errorf("writing search index: %w", err)
	}

	return pages, errors.Join(failed...)
}

// collectDocs lists the markdown pages under DocsDir as sorted slash paths.
func (g *SiteGenerator) collectDocs() ([]string, error) {
	if g.DocsDir == "" {
		return nil, nil
	}
	files, err := walker.Walk(walker.WalkerConfig{RootDir: g.DocsDir, Exclude: g.DocsExclude})
	if err != nil {
		return nil, fmt.Errorf("collecting docs: %w", err)
	}
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.RelPath
	}
	return paths, nil
}

type docPage struct {
	relPath string
	outPath string
	title   string
	content string
}

type docSet struct {
	tree  *DocTree
	pages []docPage
}

func (g *SiteGenerator) loadDocs(paths []string) (*docSet, error) {
	set := &docSet{}
	if len(paths) == 0 {
		return set, nil
	}
	labels := make(map[string]string, len(paths))
	byPath := make(map[string]docPage, len(paths))
	for _, rel := range paths {
		data, err := os.ReadFile(filepath.Join(g.DocsDir, filepath.FromSlash(rel)))
		if err != nil {
			return nil, err
		}
		d := docPage{
			relPath: rel,
			outPath: docsPrefix + mdPathToHTML(rel),
			title:   extractTitle(string(data), rel),
			content: string(data),
		}
		labels[rel] = d.title
		byPath[rel] = d
	}
	set.tree = BuildTree(paths, labels)
	for _, rel := range set.tree.Pages() {
		set.pages = append(set.pages, byPath[rel])
	}
	return set, nil
}

// navLink is an entry in the top bar.
type navLink struct {
	Label string
	Href  string
}

func (g *SiteGenerator) topLinks(docs *docSet) []navLink {
	var links []navLink
	if g.Overview != nil {
		links = append(links, navLink{Label: "Overview", Href: overviewPage})
	}
	if g.Changelog != nil {
		links = append(links, navLink{Label: "Changelog", Href: changelogPage})
	}
	if len(docs.pages) > 0 {
		home := docs.pages[0].outPath
		for _, d := range docs.pages {
			if d.relPath == "index.md" {
				home = d.outPath
			}
		}
		links = append(links, navLink{Label: "Docs", Href: home})
	}
	return links
}

// layoutData is passed to the page layout template.
type layoutData struct {
	Title       string
	ProjectName string
	BasePath    string
	HomeHref    string
	Links       []navLink
	Active      string
	MainID      string
	MainClass   string
	TreeHTML    template.HTML
	Content     template.HTML
}

func (g *SiteGenerator) writePage(tmpl *template.Template, outPath string, data layoutData) error {
	data.ProjectName = g.ProjectName
	data.BasePath = basePathFor(outPath)
	if len(data.Links) > 0 {
		data.HomeHref = data.Links[0].Href
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return err
	}
	return g.writeFile(outPath, buf.Bytes())
}

// changelogView feeds the changelog template.
type changelogView struct {
	HTML   template.HTML
	Source string
	Err    string
}

func (g *SiteGenerator) renderChangelog(ctx context.Context, tmpl *template.Template, links []navLink) (SearchEntry, *PageError, error) {
	if g.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.FetchTimeout)
		defer cancel()
	}

	view := changelogView{Source: g.Changelog.Name()}
	title := "Changelog"
	var entry SearchEntry
	var pageErr *PageError

	md, err := g.Changelog.Fetch(ctx)
	if err != nil {
		pageErr = &PageError{Page: changelogPage, Source: g.Changelog.Name(), Err: err}
		view.Err = err.Error()
	} else {
		var buf bytes.Buffer
		if err := g.renderer().Render(&buf, md); err != nil {
			return entry, nil, err
		}
		view.HTML = template.HTML(buf.String())
		title = extractTitle(md, "Changelog")
		entry = markdownSearchEntry(changelogPage, title, md)
	}

	var content bytes.Buffer
	if err := tmpl.ExecuteTemplate(&content, "changelog", view); err != nil {
		return entry, nil, err
	}

	err = g.writePage(tmpl, changelogPage, layoutData{
		Title:     title + " – " + g.ProjectName,
		Links:     links,
		Active:    changelogPage,
		MainID:    "changelogRoot",
		MainClass: "changelog",
		Content:   template.HTML(content.String()),
	})
	return entry, pageErr, err
}

func (g *SiteGenerator) renderDoc(tmpl *template.Template, links []navLink, tree *DocTree, d docPage) error {
	var buf bytes.Buffer
	if err := g.docsRenderer().Render(&buf, d.content); err != nil {
		return err
	}
	return g.writePage(tmpl, d.outPath, layoutData{
		Title:     d.title + " – " + g.ProjectName,
		Links:     links,
		Active:    links[len(links)-1].Href,
		MainClass: "page-content",
		TreeHTML:  template.HTML(tree.ToHTML(d.relPath, basePathFor(d.outPath))),
		Content:   template.HTML(rewriteMDLinks(buf.String())),
	})
}

func (g *SiteGenerator) renderer() markdown.Renderer {
	if g.Renderer == nil {
		return markdown.New()
	}
	return g.Renderer
}

func (g *SiteGenerator) docsRenderer() markdown.Renderer {
	if g.DocsRenderer == nil {
		return markdown.NewGFM()
	}
	return g.DocsRenderer
}

// writeFile writes data to a path relative to OutputDir.
func (g *SiteGenerator) writeFile(rel string, data []byte) error {
	out := filepath.Join(g.OutputDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}
	g.logf("wrote %s (%s)", rel, humanize.Bytes(uint64(len(data))))
	return nil
}

func (g *SiteGenerator) logf(format string, args ...any) {
	if g.Logger != nil {
		g.Logger.Printf(format, args...)
	}
}

// extractTitle pulls the first # heading from markdown content, or falls
// back to the file name without extension.
func extractTitle(content, relPath string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return strings.TrimSuffix(filepath.Base(relPath), ".md")
}

// mdHref matches an href attribute in rendered HTML.
var mdHref = regexp.MustCompile(`href="([^"]*)"`)

// rewriteMDLinks points relative .md links at the generated .html pages.
// Links with a scheme or host are left as they are.
func rewriteMDLinks(content string) string {
	return mdHref.ReplaceAllStringFunc(content, func(attr string) string {
		href := mdHref.FindStringSubmatch(attr)[1]
		u, err := url.Parse(html.UnescapeString(href))
		if err != nil || u.Scheme != "" || u.Host != "" || !strings.HasSuffix(u.Path, ".md") {
			return attr
		}
		path, frag, hasFrag := strings.Cut(href, "#")
		if !strings.HasSuffix(path, ".md") {
			return attr
		}
		out := strings.TrimSuffix(path, ".md") + ".html"
		if hasFrag {
			out += "#" + frag
		}
		return `href="` + out + `"`
	})
}
