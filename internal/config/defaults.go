package config

import (
	"time"

	"github.com/ziadkadry99/docmap/internal/progress"
)

// DefaultFileName is the configuration file looked up in the project root.
const DefaultFileName = ".docmap.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ProjectName:    "Documentation",
		OutputDir:      "site",
		Changelog:      "CHANGELOG.md",
		Renderer:       RendererSimple,
		HighlightStyle: "github",
		FetchTimeout:   15 * time.Second,
		Progress:       progress.ModeNone,
	}
}
