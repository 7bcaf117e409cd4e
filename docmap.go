// Package docmap converts changelogs written in a small Markdown subset to
// HTML and builds a static documentation site around them: a project
// overview page, a changelog page and any extra Markdown pages.
//
// Most callers need only Convert, or LoadConfig followed by Generate.
package docmap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/ziadkadry99/docmap/internal/config"
	"github.com/ziadkadry99/docmap/internal/markdown"
	"github.com/ziadkadry99/docmap/internal/overview"
	"github.com/ziadkadry99/docmap/internal/site"
	"github.com/ziadkadry99/docmap/internal/source"
)

type (
	// Converter renders the restricted Markdown subset.
	Converter = markdown.Converter
	// Option configures a Converter.
	Option = markdown.Option
	// Renderer is implemented by Converter and GFM.
	Renderer = markdown.Renderer
	// GFM renders full GitHub Flavored Markdown.
	GFM = markdown.GFM
	// GFMOption configures a GFM renderer.
	GFMOption = markdown.GFMOption

	// Config is the contents of a .docmap.yml file.
	Config = config.Config

	// SiteGenerator writes the static site.
	SiteGenerator = site.SiteGenerator
	// PageError reports a page written with an error panel.
	PageError = site.PageError

	// Overview is the structured content of the overview page.
	Overview = overview.Page

	// Source supplies a Markdown document.
	Source = source.Source
	// StatusError is returned for a non-2xx HTTP fetch.
	StatusError = source.StatusError
)

// DefaultConfigFile is the configuration file name looked up by callers.
const DefaultConfigFile = config.DefaultFileName

// Convert renders markdown with the default Converter.
func Convert(md string) string { return markdown.Convert(md) }

// Inline applies only the inline formatting pass to one line of text.
func Inline(text string) string { return markdown.Inline(text) }

// New creates a Converter.
func New(opts ...Option) *Converter { return markdown.New(opts...) }

// WithTripleStarHeadings renders a line that is only ***text*** as <h4>.
func WithTripleStarHeadings() Option { return markdown.WithTripleStarHeadings() }

// NewGFM creates a goldmark-backed renderer.
func NewGFM(opts ...GFMOption) *GFM { return markdown.NewGFM(opts...) }

// WithHighlightStyle selects the chroma style for fenced code.
func WithHighlightStyle(style string) GFMOption { return markdown.WithHighlightStyle(style) }

// WithRawHTML passes raw HTML through to the output.
func WithRawHTML() GFMOption { return markdown.WithRawHTML() }

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config { return config.DefaultConfig() }

// LoadConfig reads path (missing means defaults) and applies DOCMAP_*
// environment overrides.
func LoadConfig(path string) (*Config, error) { return config.Load(path) }

// InitConfig loads the configuration at path. When the file does not exist
// yet it is created from DefaultConfig and created reports true.
func InitConfig(path string) (cfg *Config, created bool, err error) {
	if _, err := os.Stat(path); err == nil {
		cfg, err := config.Load(path)
		return cfg, false, err
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, false, fmt.Errorf("accessing config %s: %w", path, err)
	}

	cfg = config.DefaultConfig()
	if err := cfg.Save(path); err != nil {
		return nil, false, err
	}
	return cfg, true, nil
}

// ParseOverview decodes overview content from YAML or JSON.
func ParseOverview(data []byte) (*Overview, error) { return overview.Parse(data) }

// OpenSource returns a Source for a file path or an http(s) URL.
func OpenSource(ref string, client *http.Client) (Source, error) {
	return source.Open(ref, client)
}

// NewSiteGenerator creates a SiteGenerator with the default renderers.
func NewSiteGenerator(outputDir, projectName string) *SiteGenerator {
	return site.NewSiteGenerator(outputDir, projectName)
}

// FromConfig wires a SiteGenerator from cfg. client fetches remote
// changelogs and may be nil.
func FromConfig(cfg *Config, client *http.Client) (*SiteGenerator, error) {
	return site.FromConfig(cfg, client)
}

// Generate builds the site described by cfg using http.DefaultClient and
// returns the number of pages written.
func Generate(ctx context.Context, cfg *Config) (int, error) {
	gen, err := site.FromConfig(cfg, http.DefaultClient)
	if err != nil {
		return 0, err
	}
	return gen.Generate(ctx)
}
