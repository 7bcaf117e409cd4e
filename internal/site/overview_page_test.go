package site

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/ziadkadry99/docmap/internal/overview"
	"github.com/ziadkadry99/docmap/internal/source"
)

const overviewYAML = `
project:
  title: Untitled Adventure Game
  subtitle: 2D | C++ · SFML 3.x
hero:
  heading: Untitled Adventure Game
  grid:
    - label: Build system
      value: CMake ≥ 3.28
sections:
  - id: about
    navLabel: About
    type: paragraphs
    title: About
    body:
      - A story-driven <adventure> game.
  - id: design
    type: designApproach
    body:
      - Scenes are **owned** by the ` + "`SceneManager`" + `.
  - id: links
    type: helpfulLinks
    links:
      - label: Latest build
        href: https://example.com/releases/latest
        note: Contains the compiled .exe
  - id: gallery
    type: gallery
    includeInNav: false
    images:
      - src: gallery/1.png
        caption: Main Menu
  - id: docmap
    type: fileMap
fileMap:
  groups:
    - id: include
      title: include/
      tag: Headers
      items:
        - name: GameEngine.h
          pathPrefix: include/
          copyPath: include/GameEngine.h
`

func TestGenerateOverview(t *testing.T) {
	page, err := overview.Parse([]byte(overviewYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	outputDir := t.TempDir()
	gen := NewSiteGenerator(outputDir, "Demo")
	gen.Overview = page
	gen.Changelog = source.Literal{Text: "# Changelog\n"}
	gen.Logger = nil

	pages, err := gen.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if pages != 2 {
		t.Errorf("pages = %d, want 2", pages)
	}

	doc := readDoc(t, filepath.Join(outputDir, "index.html"))

	if got := doc.Find("title").Text(); got != "Untitled Adventure Game – Doc Map" {
		t.Errorf("title = %q", got)
	}
	if got := doc.Find(".hero-grid-value").Text(); got != "CMake ≥ 3.28" {
		t.Errorf("grid value = %q", got)
	}

	var nav []string
	doc.Find("#sideNav a").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		nav = append(nav, href+"="+s.Text())
	})
	want := "#about=About,#design=Design Approach,#links=Helpful Links,#docmap=Document Map"
	if strings.Join(nav, ",") != want {
		t.Errorf("nav = %v, want %s", nav, want)
	}

	// Plain paragraphs are escaped text.
	about := doc.Find("section#about p").Text()
	if about != "A story-driven <adventure> game." {
		t.Errorf("about = %q", about)
	}
	if doc.Find("section#about adventure").Length() != 0 {
		t.Error("paragraph text should not be parsed as markup")
	}

	// Design paragraphs go through the inline pass.
	design := doc.Find("section#design")
	if design.Find("h2").Text() != "Design Approach" {
		t.Errorf("design heading = %q", design.Find("h2").Text())
	}
	if design.Find("strong").Text() != "owned" || design.Find("code").Text() != "SceneManager" {
		t.Errorf("design html = %q", design.Text())
	}

	link := doc.Find("section#links a")
	if target, _ := link.Attr("target"); target != "_blank" {
		t.Errorf("link target = %q", target)
	}
	if rel, _ := link.Attr("rel"); rel != "noopener noreferrer" {
		t.Errorf("link rel = %q", rel)
	}

	if doc.Find("#lightbox").Length() != 1 {
		t.Error("gallery should add the lightbox")
	}
	if src, _ := doc.Find("section#gallery img").Attr("src"); src != "gallery/1.png" {
		t.Errorf("image src = %q", src)
	}

	item := doc.Find("section#docmap li.file-item")
	if key, _ := item.Attr("data-file"); key != "include/gameengine.h" {
		t.Errorf("data-file = %q", key)
	}
	if p, _ := item.Find(".copy-btn").Attr("data-path"); p != "include/GameEngine.h" {
		t.Errorf("copy path = %q", p)
	}
	if doc.Find("#fileSearchInput").Length() != 1 {
		t.Error("file map should have a filter input")
	}

	if doc.Find(`.top-links a.active[href="index.html"]`).Length() != 1 {
		t.Error("overview link should be active")
	}

	data, err := os.ReadFile(filepath.Join(outputDir, "search-index.json"))
	if err != nil {
		t.Fatal(err)
	}
	var entries []SearchEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("search index: %v", err)
	}
	// Five overview sections plus the changelog.
	if len(entries) != 6 {
		t.Fatalf("entries = %d, want 6", len(entries))
	}
	if entries[0].Path != "index.html#about" || entries[0].Title != "About" {
		t.Errorf("first entry = %+v", entries[0])
	}
	if !strings.Contains(entries[4].Content, "include/GameEngine.h") {
		t.Errorf("file map entry content = %q", entries[4].Content)
	}
	if entries[5].Path != "changelog.html" {
		t.Errorf("last entry path = %q", entries[5].Path)
	}
}

func TestRenderSectionUnknownType(t *testing.T) {
	tmpl, err := parseTemplates()
	if err != nil {
		t.Fatal(err)
	}
	s := overview.Section{ID: "x", Type: "mystery", Title: "Odd", Body: []string{"one", "two"}}
	html, err := renderSection(tmpl, &overview.Page{}, s)
	if err != nil {
		t.Fatalf("renderSection: %v", err)
	}
	if !strings.Contains(string(html), "<h2>Odd</h2>") || strings.Count(string(html), "<p>") != 2 {
		t.Errorf("html = %q", html)
	}
}

func TestGenerateOverviewFileFilter(t *testing.T) {
	page, err := overview.Parse([]byte(overviewYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	page.FileMap.Groups = append(page.FileMap.Groups, overview.FileGroup{
		ID:    "core",
		Title: "src/core/",
		Items: []overview.FileItem{
			{Name: "GameEngine.cpp", PathPrefix: "src/core/"},
			{Name: "SceneManager.cpp", PathPrefix: "src/core/"},
		},
	})

	outputDir := t.TempDir()
	gen := NewSiteGenerator(outputDir, "Demo")
	gen.Overview = page
	gen.FileFilter = "src/**/scene*"
	gen.Logger = nil

	if _, err := gen.Generate(context.Background()); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	doc := readDoc(t, filepath.Join(outputDir, "index.html"))
	var keys []string
	doc.Find("li.file-item").Each(func(_ int, s *goquery.Selection) {
		k, _ := s.Attr("data-file")
		keys = append(keys, k)
	})
	if strings.Join(keys, ",") != "src/core/scenemanager.cpp" {
		t.Errorf("file items = %v, want only src/core/scenemanager.cpp", keys)
	}
	if doc.Find("#files-include").Length() != 0 {
		t.Error("groups with no matching files should be dropped")
	}
	if len(page.FileMap.Groups) != 2 || len(page.FileMap.Groups[1].Items) != 2 {
		t.Error("filtering should not modify the configured overview")
	}

	data, err := os.ReadFile(filepath.Join(outputDir, "search-index.json"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "GameEngine") {
		t.Error("search index should only list the filtered files")
	}

	gen.FileFilter = "src/[core"
	if _, err := gen.Generate(context.Background()); err == nil {
		t.Error("Generate should fail on a bad file filter")
	}
}
