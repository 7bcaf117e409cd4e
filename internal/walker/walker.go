// Package walker discovers the Markdown pages under a documentation
// directory.
package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultMaxFileSize is the largest page Walk will return (4 MB).
const DefaultMaxFileSize int64 = 4 << 20

// DefaultInclude matches every Markdown file.
var DefaultInclude = []string{"**/*.md"}

// FileInfo describes one page found during traversal.
type FileInfo struct {
	Path    string // Path on disk.
	RelPath string // Slash-separated path relative to the root directory.
	Size    int64
}

// WalkerConfig controls the behaviour of the Walk function.
type WalkerConfig struct {
	RootDir     string   // Root directory to walk.
	Include     []string // Glob patterns, only matching files are returned (empty = DefaultInclude).
	Exclude     []string // Glob patterns, matching files are skipped.
	MaxFileSize int64    // Larger files are skipped (0 = use default).
}

// Walk traverses the tree rooted at config.RootDir and returns the pages
// that pass filtering, sorted by RelPath. Hidden and default-excluded
// directories are skipped, and a .gitignore at the root is honoured.
func Walk(config WalkerConfig) ([]FileInfo, error) {
	root := config.RootDir
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("walker: %w", err)
	}

	include := config.Include
	if len(include) == 0 {
		include = DefaultInclude
	}
	maxSize := config.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	ignored := loadGitignore(filepath.Join(root, ".gitignore"))

	var files []FileInfo
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if d.IsDir() {
			if path != root && shouldExcludeDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if matchesGitignore(rel, ignored) {
			return nil
		}
		if !MatchesInclude(rel, include) || MatchesExclude(rel, config.Exclude) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.Size() > maxSize {
			return nil
		}

		files = append(files, FileInfo{Path: path, RelPath: rel, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walker: traversal: %w", err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })
	return files, nil
}

// loadGitignore reads a .gitignore file and returns its non-empty,
// non-comment lines as patterns.
func loadGitignore(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var patterns []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}

// matchesGitignore checks if a relative path matches any gitignore pattern.
// Patterns without a slash match any path component; a trailing slash
// restricts the pattern to directories.
func matchesGitignore(relPath string, patterns []string) bool {
	parts := strings.Split(relPath, "/")
	for _, pattern := range patterns {
		dirOnly := strings.HasSuffix(pattern, "/")
		pattern = strings.TrimSuffix(pattern, "/")

		if strings.Contains(pattern, "/") {
			pattern = strings.TrimPrefix(pattern, "/")
			if matchPath(pattern, relPath) || matchPath(pattern+"/**", relPath) {
				return true
			}
			continue
		}

		comps := parts
		if dirOnly {
			comps = parts[:len(parts)-1]
		}
		for _, part := range comps {
			if matchPath(pattern, part) {
				return true
			}
		}
	}
	return false
}
