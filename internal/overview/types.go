// Package overview holds the content model of a project doc-map page: a
// header, a hero banner, an ordered list of typed sections, a browsable file
// map and per-file descriptions.
package overview

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SectionType selects how a section is rendered.
type SectionType string

const (
	SectionParagraphs       SectionType = "paragraphs"
	SectionHelpfulLinks     SectionType = "helpfulLinks"
	SectionDesignApproach   SectionType = "designApproach"
	SectionFeatures         SectionType = "features"
	SectionBuilding         SectionType = "building"
	SectionBullets          SectionType = "bullets"
	SectionFileMap          SectionType = "fileMap"
	SectionGallery          SectionType = "gallery"
	SectionFileDescriptions SectionType = "fileDescriptions"
	SectionFunFact          SectionType = "funFact"
)

// Page is the whole content object of an overview page.
type Page struct {
	Project          Project           `yaml:"project"`
	Hero             *Hero             `yaml:"hero"`
	NavigationTitle  string            `yaml:"navigationTitle"`
	Sections         []Section         `yaml:"sections"`
	FileMap          *FileMap          `yaml:"fileMap"`
	FileDescriptions *FileDescriptions `yaml:"fileDescriptions"`
}

// Project is the page header.
type Project struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Pill     string `yaml:"pill"`
	TopChip  string `yaml:"topChip"`
}

// Hero is the banner below the header.
type Hero struct {
	Heading       string     `yaml:"heading"`
	Tagline       string     `yaml:"tagline"`
	MetaTags      []string   `yaml:"metaTags"`
	Badges        []string   `yaml:"badges"`
	SnapshotLabel string     `yaml:"snapshotLabel"`
	SnapshotBadge string     `yaml:"snapshotBadge"`
	Grid          []GridItem `yaml:"grid"`
}

// GridItem is one cell of the hero snapshot grid.
type GridItem struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	Note  string `yaml:"note"`
}

// Section is one block of the page body.
type Section struct {
	ID           string      `yaml:"id"`
	NavLabel     string      `yaml:"navLabel"`
	Title        string      `yaml:"title"`
	Type         SectionType `yaml:"type"`
	Body         []string    `yaml:"body"`
	Items        []Item      `yaml:"items"`
	Chips        []string    `yaml:"chips"`
	Links        []Link      `yaml:"links"`
	Images       []Image     `yaml:"images"`
	IncludeInNav *bool       `yaml:"includeInNav"`
}

// defaultTitles are used for sections of these types that have no title.
var defaultTitles = map[SectionType]string{
	SectionHelpfulLinks:     "Helpful Links",
	SectionDesignApproach:   "Design Approach",
	SectionBuilding:         "Building",
	SectionGallery:          "Gallery",
	SectionFileMap:          "Document Map",
	SectionFileDescriptions: "File Descriptions",
}

// DisplayTitle is the section's title, or the default title for its type.
func (s Section) DisplayTitle() string {
	if s.Title != "" {
		return s.Title
	}
	return defaultTitles[s.Type]
}

// NavText is the label used for the section in the side navigation.
func (s Section) NavText() string {
	if s.NavLabel != "" {
		return s.NavLabel
	}
	if t := s.DisplayTitle(); t != "" {
		return t
	}
	return s.ID
}

// InNav reports whether the section appears in the side navigation.
func (s Section) InNav() bool {
	return s.IncludeInNav == nil || *s.IncludeInNav
}

// Item is a list entry. Bullet sections list plain strings; feature sections
// list {strong, text} pairs. Both decode into Item.
type Item struct {
	Strong string `yaml:"strong"`
	Text   string `yaml:"text"`
}

// UnmarshalYAML accepts either a scalar or a mapping.
func (it *Item) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		it.Text = value.Value
		return nil
	case yaml.MappingNode:
		type plain Item
		var p plain
		if err := value.Decode(&p); err != nil {
			return err
		}
		*it = Item(p)
		return nil
	}
	return fmt.Errorf("line %d: list item must be a string or a mapping", value.Line)
}

// Link is an external or relative link with an optional note.
type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
	Note  string `yaml:"note"`
}

// Image is a gallery entry.
type Image struct {
	Src     string `yaml:"src"`
	Caption string `yaml:"caption"`
}

// FileMap is the browsable map of the project's files.
type FileMap struct {
	IntroParagraphs   []string    `yaml:"introParagraphs"`
	FolderOverview    []Folder    `yaml:"folderOverview"`
	AfterOverviewText string      `yaml:"afterOverviewText"`
	Groups            []FileGroup `yaml:"groups"`
}

// Folder describes a top-level folder.
type Folder struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// FileGroup is a titled list of files, usually one folder.
type FileGroup struct {
	ID    string     `yaml:"id"`
	Title string     `yaml:"title"`
	Tag   string     `yaml:"tag"`
	Items []FileItem `yaml:"items"`
}

// FileItem is one file in the map.
type FileItem struct {
	Name       string `yaml:"name"`
	PathPrefix string `yaml:"pathPrefix"`
	Href       string `yaml:"href"`
	Note       string `yaml:"note"`
	CopyPath   string `yaml:"copyPath"`
}

// FileDescriptions groups prose descriptions of files by category.
type FileDescriptions struct {
	Categories []Category `yaml:"categories"`
}

// Category is a titled list of described entries.
type Category struct {
	Title string   `yaml:"title"`
	Items []Folder `yaml:"items"`
}
