// internal/domain/models/category.go
package models

// CategoryID identifies a category. Values are lowercase slugs and are
// compared exactly (case-sensitive).
type CategoryID string

// CategoryAll is the query-only wildcard meaning "no category filter".
// It is present in the category set but never used as a resource's category.
const CategoryAll CategoryID = "all"

// Canonical category identifiers for the compiled-in catalog.
const (
	CategoryDevOps   CategoryID = "devops"
	CategoryFrontend CategoryID = "frontend"
	CategoryBackend  CategoryID = "backend"
	CategoryCloud    CategoryID = "cloud"
)

// IconRef names an icon glyph rendered by the templates (e.g. "server").
type IconRef string

// Category is a coarse topical grouping used as a filter dimension.
type Category struct {
	ID    CategoryID `yaml:"id" json:"id"`
	Name  string     `yaml:"name" json:"name"`
	Icon  IconRef    `yaml:"icon" json:"icon"`
	Color string     `yaml:"color" json:"color"` // gradient classes, e.g. "from-blue-500 to-cyan-500"
}

// IsAll reports whether c is the wildcard category.
func (c Category) IsAll() bool {
	return c.ID == CategoryAll
}
