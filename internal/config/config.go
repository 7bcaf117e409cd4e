package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/docmap/internal/progress"
	"github.com/ziadkadry99/docmap/internal/walker"
)

// EnvPrefix marks environment variables that override file settings.
const EnvPrefix = "DOCMAP_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (DOCMAP_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	// A missing file means defaults plus environment.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// DOCMAP_OUTPUT_DIR -> output_dir, etc.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validRenderers = map[RendererType]bool{
	RendererSimple: true,
	RendererGFM:    true,
}

var validProgress = map[progress.Mode]bool{
	progress.ModeNone: true,
	progress.ModeLog:  true,
	progress.ModeBar:  true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	if c.Changelog == "" && c.Overview == "" && c.DocsDir == "" {
		return fmt.Errorf("nothing to generate: set at least one of changelog, overview, docs_dir")
	}

	if c.Renderer != "" && !validRenderers[c.Renderer] {
		return fmt.Errorf("invalid renderer %q: must be one of simple, gfm", c.Renderer)
	}

	if p, ok := walker.ValidatePatterns(c.DocsExclude); !ok {
		return fmt.Errorf("invalid docs_exclude pattern %q", p)
	}

	if q := strings.ToLower(strings.TrimSpace(c.FileFilter)); strings.ContainsAny(q, "*?[{") {
		if _, ok := walker.ValidatePatterns([]string{q}); !ok {
			return fmt.Errorf("invalid file_filter pattern %q", c.FileFilter)
		}
	}

	if c.Progress != "" && !validProgress[c.Progress] {
		return fmt.Errorf("invalid progress %q: must be one of none, log, bar", c.Progress)
	}

	if c.FetchTimeout < 0 {
		return fmt.Errorf("fetch_timeout must be non-negative")
	}

	return nil
}

