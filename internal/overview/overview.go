package overview

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Parse decodes page content. JSON input is accepted as well as YAML.
func Parse(data []byte) (*Page, error) {
	var p Page
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding overview content: %w", err)
	}
	return &p, nil
}

// Load reads and decodes the content file at path, then validates it.
func Load(path string) (*Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading overview %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Validate checks that section IDs are present and unique, and that sections
// which draw on page-level data have it.
func (p *Page) Validate() error {
	var errs []error
	seen := make(map[string]bool)
	for i, s := range p.Sections {
		if s.ID == "" {
			errs = append(errs, fmt.Errorf("section %d: id is required", i))
			continue
		}
		if seen[s.ID] {
			errs = append(errs, fmt.Errorf("section %q: duplicate id", s.ID))
		}
		seen[s.ID] = true

		switch s.Type {
		case SectionFileMap:
			if p.FileMap == nil {
				errs = append(errs, fmt.Errorf("section %q: type fileMap needs a fileMap", s.ID))
			}
		case SectionFileDescriptions:
			if p.FileDescriptions == nil {
				errs = append(errs, fmt.Errorf("section %q: type fileDescriptions needs fileDescriptions", s.ID))
			}
		}
	}
	return errors.Join(errs...)
}

// NavSections returns the sections shown in the side navigation, in order.
func (p *Page) NavSections() []Section {
	var out []Section
	for _, s := range p.Sections {
		if s.InNav() {
			out = append(out, s)
		}
	}
	return out
}

// FullPath is the item's prefix joined with its name.
func (f FileItem) FullPath() string {
	return f.PathPrefix + f.Name
}

// Key is the lower-cased full path the page filters on.
func (f FileItem) Key() string {
	return strings.ToLower(f.FullPath())
}

// Filter returns the groups with only the items matching query. An empty
// query matches everything. A query containing glob metacharacters is
// matched as a doublestar pattern against the whole key; any other query is
// a case-insensitive substring test. Groups with no matching items are
// dropped.
func (m *FileMap) Filter(query string) ([]FileGroup, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if m == nil {
		return nil, nil
	}
	if query == "" {
		return m.Groups, nil
	}

	match := func(key string) (bool, error) {
		return strings.Contains(key, query), nil
	}
	if strings.ContainsAny(query, "*?[{") {
		if !doublestar.ValidatePattern(query) {
			return nil, fmt.Errorf("invalid file filter %q: %w", query, doublestar.ErrBadPattern)
		}
		match = func(key string) (bool, error) {
			return doublestar.Match(query, key)
		}
	}

	var out []FileGroup
	for _, g := range m.Groups {
		var items []FileItem
		for _, it := range g.Items {
			ok, err := match(it.Key())
			if err != nil {
				return nil, fmt.Errorf("matching %q: %w", it.FullPath(), err)
			}
			if ok {
				items = append(items, it)
			}
		}
		if len(items) > 0 {
			g.Items = items
			out = append(out, g)
		}
	}
	return out, nil
}
