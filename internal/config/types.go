package config

import (
	"time"

	"github.com/ziadkadry99/docmap/internal/progress"
)

// RendererType selects the Markdown renderer used for the changelog page.
type RendererType string

const (
	// RendererSimple is the line-scanning converter for the restricted subset.
	RendererSimple RendererType = "simple"
	// RendererGFM is the goldmark-backed GitHub Flavored Markdown renderer.
	RendererGFM RendererType = "gfm"
)

// Config is the top-level docmap configuration, corresponding to .docmap.yml.
type Config struct {
	ProjectName        string        `yaml:"project_name" koanf:"project_name"`
	OutputDir          string        `yaml:"output_dir" koanf:"output_dir"`
	Changelog          string        `yaml:"changelog" koanf:"changelog"`
	Overview           string        `yaml:"overview" koanf:"overview"`
	DocsDir            string        `yaml:"docs_dir" koanf:"docs_dir"`
	DocsExclude        []string      `yaml:"docs_exclude,omitempty" koanf:"docs_exclude"`
	DocsRawHTML        bool          `yaml:"docs_raw_html" koanf:"docs_raw_html"`
	FileFilter         string        `yaml:"file_filter,omitempty" koanf:"file_filter"`
	Renderer           RendererType  `yaml:"renderer" koanf:"renderer"`
	TripleStarHeadings bool          `yaml:"triple_star_headings" koanf:"triple_star_headings"`
	HighlightStyle     string        `yaml:"highlight_style" koanf:"highlight_style"`
	FetchTimeout       time.Duration `yaml:"fetch_timeout" koanf:"fetch_timeout"`
	Progress           progress.Mode `yaml:"progress" koanf:"progress"`
}
