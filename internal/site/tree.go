package site

import (
	"fmt"
	"html"
	"path"
	"sort"
	"strings"
)

// docsPrefix is the output folder for pages rendered from DocsDir.
const docsPrefix = "docs/"

// DocTree is a node in the sidebar tree of extra documentation pages.
type DocTree struct {
	Name     string
	Label    string // Display text: the page's first H1, or a prettified directory name.
	Path     string // Slash-separated path relative to DocsDir.
	IsDir    bool
	Children []*DocTree
}

// BuildTree arranges slash-separated markdown paths into a tree. labels maps
// a path to its display label and may be nil.
func BuildTree(paths []string, labels map[string]string) *DocTree {
	root := &DocTree{Name: "docs", IsDir: true}

	for _, p := range paths {
		parts := strings.Split(p, "/")
		node := root
		for i, part := range parts {
			last := i == len(parts)-1
			child := node.child(part)
			if child == nil {
				child = &DocTree{Name: part, IsDir: !last, Path: strings.Join(parts[:i+1], "/")}
				if last {
					child.Label = labels[p]
				} else {
					child.Label = prettyDirName(part)
				}
				node.Children = append(node.Children, child)
			}
			node = child
		}
	}

	root.sort()
	return root
}

func (t *DocTree) child(name string) *DocTree {
	for _, c := range t.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// sort orders children directories first, then by name, recursively.
func (t *DocTree) sort() {
	sort.Slice(t.Children, func(i, j int) bool {
		a, b := t.Children[i], t.Children[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		return a.Name < b.Name
	})
	for _, c := range t.Children {
		if c.IsDir {
			c.sort()
		}
	}
}

// Pages returns the file paths in display order.
func (t *DocTree) Pages() []string {
	var out []string
	for _, c := range t.Children {
		if c.IsDir {
			out = append(out, c.Pages()...)
		} else {
			out = append(out, c.Path)
		}
	}
	return out
}

// ToHTML renders the tree as nested lists. activePath marks the current page
// and expands its ancestors; basePath leads from the current page back to
// the site root.
func (t *DocTree) ToHTML(activePath, basePath string) string {
	open := make(map[string]bool)
	for dir := path.Dir(activePath); dir != "." && dir != "/"; dir = path.Dir(dir) {
		open[dir] = true
	}

	var b strings.Builder
	b.WriteString(`<div class="side-nav-title">Docs</div>` + "\n")
	t.writeChildren(&b, activePath, basePath, open)
	return b.String()
}

func (t *DocTree) writeChildren(b *strings.Builder, activePath, basePath string, open map[string]bool) {
	if len(t.Children) == 0 {
		return
	}
	b.WriteString("<ul>\n")
	for _, c := range t.Children {
		if c.IsDir {
			class := "dir"
			if open[c.Path] {
				class += " expanded"
			}
			fmt.Fprintf(b, `<li class="%s"><span class="dir-toggle">%s</span>`+"\n", class, html.EscapeString(c.Label))
			c.writeChildren(b, activePath, basePath, open)
			b.WriteString("</li>\n")
			continue
		}

		label := c.Label
		if label == "" {
			label = strings.TrimSuffix(c.Name, ".md")
		}
		active := ""
		if c.Path == activePath {
			active = ` class="active"`
		}
		href := basePath + docsPrefix + mdPathToHTML(c.Path)
		fmt.Fprintf(b, `<li class="file"><a href="%s"%s>%s</a></li>`+"\n",
			html.EscapeString(href), active, html.EscapeString(label))
	}
	b.WriteString("</ul>\n")
}

// mdPathToHTML swaps a trailing .md for .html.
func mdPathToHTML(p string) string {
	if strings.HasSuffix(p, ".md") {
		return strings.TrimSuffix(p, ".md") + ".html"
	}
	return p
}

// prettyDirName title-cases the words of a hyphen or underscore slug.
func prettyDirName(name string) string {
	words := strings.FieldsFunc(name, func(c rune) bool {
		return c == '-' || c == '_'
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// basePathFor returns the "../" prefix that leads from outPath to the root.
func basePathFor(outPath string) string {
	return strings.Repeat("../", strings.Count(outPath, "/"))
}
