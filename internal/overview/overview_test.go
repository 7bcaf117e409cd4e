package overview

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/go-cmp/cmp"
)

const sampleJSON = `{
  "project": {"title": "Untitled Adventure Game", "subtitle": "2D | C++ · SFML 3.x", "pill": "Norse-inspired story"},
  "hero": {
    "heading": "Untitled Adventure Game",
    "metaTags": ["Language: C++17"],
    "grid": [{"label": "Build system", "value": "CMake ≥ 3.28", "note": "VS Code friendly"}]
  },
  "navigationTitle": "On this page",
  "sections": [
    {"id": "about", "navLabel": "About", "title": "About", "type": "paragraphs", "body": ["Hello **world**."]},
    {"id": "features", "title": "Features", "type": "features",
     "items": [{"strong": "Custom Window System", "text": "Borderless window"}], "chips": ["C++17"]},
    {"id": "prereqs", "title": "Prerequisites", "type": "bullets", "items": ["C++17 compiler", "CMake 3.28"]},
    {"id": "docmap", "title": "Document Map", "type": "fileMap"},
    {"id": "hidden", "title": "Hidden", "type": "funFact", "includeInNav": false}
  ],
  "fileMap": {
    "groups": [
      {"id": "include", "title": "include/", "tag": "Headers", "items": [
        {"name": "GameEngine.h", "pathPrefix": "include/", "copyPath": "include/GameEngine.h"},
        {"name": "Button.h", "pathPrefix": "include/"}
      ]},
      {"id": "core", "title": "src/core/", "items": [
        {"name": "GameEngine.cpp", "pathPrefix": "src/core/"},
        {"name": "SceneManager.cpp", "pathPrefix": "src/core/"}
      ]}
    ]
  }
}`

func TestParseJSON(t *testing.T) {
	p, err := Parse([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if p.Project.Title != "Untitled Adventure Game" {
		t.Errorf("Project.Title = %q", p.Project.Title)
	}
	if p.Hero.Grid[0].Value != "CMake ≥ 3.28" {
		t.Errorf("grid value = %q", p.Hero.Grid[0].Value)
	}
	if len(p.Sections) != 5 {
		t.Fatalf("sections = %d, want 5", len(p.Sections))
	}

	features := p.Sections[1].Items
	if diff := cmp.Diff([]Item{{Strong: "Custom Window System", Text: "Borderless window"}}, features); diff != "" {
		t.Errorf("feature items (-want +got):\n%s", diff)
	}
	bullets := p.Sections[2].Items
	if diff := cmp.Diff([]Item{{Text: "C++17 compiler"}, {Text: "CMake 3.28"}}, bullets); diff != "" {
		t.Errorf("bullet items (-want +got):\n%s", diff)
	}
}

func TestParseYAML(t *testing.T) {
	src := `
project:
  title: Demo
sections:
  - id: links
    type: helpfulLinks
    links:
      - label: Latest build
        href: https://example.com/releases/latest
        note: Contains the compiled .exe
  - id: gallery
    type: gallery
    images:
      - src: gallery/1.png
        caption: Main Menu
`
	p, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := p.Sections[0].Links[0].Href; got != "https://example.com/releases/latest" {
		t.Errorf("link href = %q", got)
	}
	if got := p.Sections[1].Images[0].Caption; got != "Main Menu" {
		t.Errorf("caption = %q", got)
	}
}

func TestParseBadItem(t *testing.T) {
	_, err := Parse([]byte("sections:\n  - id: x\n    items:\n      - [a, b]\n"))
	if err == nil || !strings.Contains(err.Error(), "string or a mapping") {
		t.Errorf("Parse err = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		page    Page
		wantErr string
	}{
		{"ok", Page{Sections: []Section{{ID: "a"}, {ID: "b"}}}, ""},
		{"missing id", Page{Sections: []Section{{Title: "x"}}}, "id is required"},
		{"duplicate", Page{Sections: []Section{{ID: "a"}, {ID: "a"}}}, "duplicate id"},
		{"file map missing", Page{Sections: []Section{{ID: "m", Type: SectionFileMap}}}, "needs a fileMap"},
		{"descriptions missing", Page{Sections: []Section{{ID: "d", Type: SectionFileDescriptions}}}, "needs fileDescriptions"},
	}
	for _, tt := range tests {
		err := tt.page.Validate()
		if tt.wantErr == "" {
			if err != nil {
				t.Errorf("%s: Validate = %v", tt.name, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("%s: Validate = %v, want %q", tt.name, err, tt.wantErr)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "page.json")
	if err := os.WriteFile(good, []byte(sampleJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(good); err != nil {
		t.Errorf("Load: %v", err)
	}

	bad := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(bad, []byte("sections:\n  - type: fileMap\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load should fail validation")
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load missing = %v, want os.ErrNotExist", err)
	}
}

func TestNavSections(t *testing.T) {
	p, err := Parse([]byte(sampleJSON))
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, s := range p.NavSections() {
		got = append(got, s.NavText())
	}
	want := []string{"About", "Features", "Prerequisites", "Document Map"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("nav (-want +got):\n%s", diff)
	}
	if (Section{ID: "only-id"}).NavText() != "only-id" {
		t.Error("NavText should fall back to id")
	}
	if got := (Section{ID: "g", Type: SectionGallery}).NavText(); got != "Gallery" {
		t.Errorf("NavText = %q, want the default title for the type", got)
	}
}

func TestFilter(t *testing.T) {
	p, err := Parse([]byte(sampleJSON))
	if err != nil {
		t.Fatal(err)
	}

	keys := func(groups []FileGroup) []string {
		var out []string
		for _, g := range groups {
			for _, it := range g.Items {
				out = append(out, it.Key())
			}
		}
		return out
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"include/gameengine.h", "include/button.h", "src/core/gameengine.cpp", "src/core/scenemanager.cpp"}},
		{"GameEngine", []string{"include/gameengine.h", "src/core/gameengine.cpp"}},
		{"  src/core  ", []string{"src/core/gameengine.cpp", "src/core/scenemanager.cpp"}},
		{"**/*.h", []string{"include/gameengine.h", "include/button.h"}},
		{"src/**/scene*", []string{"src/core/scenemanager.cpp"}},
		{"nothing", nil},
	}
	for _, tt := range tests {
		groups, err := p.FileMap.Filter(tt.query)
		if err != nil {
			t.Errorf("Filter(%q): %v", tt.query, err)
			continue
		}
		if diff := cmp.Diff(tt.want, keys(groups)); diff != "" {
			t.Errorf("Filter(%q) (-want +got):\n%s", tt.query, diff)
		}
	}

	groups, _ := p.FileMap.Filter("*.h")
	if len(groups) != 0 {
		t.Errorf("*.h should not cross directories, got %d groups", len(groups))
	}

	if _, err := p.FileMap.Filter("src/[core"); !errors.Is(err, doublestar.ErrBadPattern) {
		t.Errorf("bad pattern err = %v", err)
	}

	var nilMap *FileMap
	if groups, err := nilMap.Filter("x"); groups != nil || err != nil {
		t.Errorf("nil map Filter = %v, %v", groups, err)
	}
}
