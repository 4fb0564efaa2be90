// internal/app/store/catalog/catalogstore.go
package catalogstore

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dalemusser/techhub/internal/app/system/icons"
	"github.com/dalemusser/techhub/internal/domain/models"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed seed/catalog.yaml
var seedYAML []byte

// versionNamespace scopes catalog version tokens (uuid v5).
var versionNamespace = uuid.MustParse("6f1c7d2e-3a41-4b8e-9c55-0d2a7e4b91f3")

var (
	ErrDuplicateResourceID = errors.New("duplicate resource id")
	ErrDuplicateCategoryID = errors.New("duplicate category id")
	ErrUnknownCategory     = errors.New("resource references an unknown category")
	ErrWildcardCategory    = errors.New("resource uses the wildcard category")
	ErrMissingAllCategory  = errors.New("category set has no \"all\" entry")
	ErrEmptyTitle          = errors.New("resource title is required")
	ErrEmptyCategoryID     = errors.New("category id is required")
)

// Catalog is the immutable set of resources and categories.
//
// It is built once at startup and shared read-only by every handler, so no
// locking is needed. Accessors return copies; callers cannot change the
// catalog through them.
type Catalog struct {
	resources  []models.Resource
	categories []models.Category

	resourceIdx map[int]int
	categoryIdx map[models.CategoryID]int

	icons   *icons.Registry
	version string
}

type seedFile struct {
	Categories []models.Category `yaml:"categories"`
	Resources  []models.Resource `yaml:"resources"`
}

// New validates resources and categories and builds a Catalog from copies
// of them. Order is kept as given.
func New(resources []models.Resource, categories []models.Category) (*Catalog, error) {
	c := &Catalog{
		resources:   make([]models.Resource, 0, len(resources)),
		categories:  make([]models.Category, 0, len(categories)),
		resourceIdx: make(map[int]int, len(resources)),
		categoryIdx: make(map[models.CategoryID]int, len(categories)),
	}

	for _, cat := range categories {
		if strings.TrimSpace(string(cat.ID)) == "" {
			return nil, ErrEmptyCategoryID
		}
		if _, dup := c.categoryIdx[cat.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCategoryID, cat.ID)
		}
		c.categoryIdx[cat.ID] = len(c.categories)
		c.categories = append(c.categories, cat)
	}
	if _, ok := c.categoryIdx[models.CategoryAll]; !ok {
		return nil, ErrMissingAllCategory
	}

	for _, r := range resources {
		if strings.TrimSpace(r.Title) == "" {
			return nil, fmt.Errorf("%w: id %d", ErrEmptyTitle, r.ID)
		}
		if _, dup := c.resourceIdx[r.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateResourceID, r.ID)
		}
		if r.Category == models.CategoryAll {
			return nil, fmt.Errorf("%w: id %d", ErrWildcardCategory, r.ID)
		}
		if _, ok := c.categoryIdx[r.Category]; !ok {
			return nil, fmt.Errorf("%w: id %d uses %q", ErrUnknownCategory, r.ID, r.Category)
		}
		c.resourceIdx[r.ID] = len(c.resources)
		c.resources = append(c.resources, r.Clone())
	}

	reg, err := icons.NewRegistry(c.categories)
	if err != nil {
		return nil, fmt.Errorf("icon registry: %w", err)
	}
	c.icons = reg

	v, err := versionOf(c.resources, c.categories)
	if err != nil {
		return nil, err
	}
	c.version = v

	return c, nil
}

// Load parses a YAML catalog document and builds a Catalog from it.
// Unknown fields are rejected.
func Load(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sf seedFile
	if err := dec.Decode(&sf); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(sf.Resources, sf.Categories)
}

// Default builds the compiled-in catalog.
func Default() (*Catalog, error) {
	return Load(seedYAML)
}

// versionOf derives a deterministic token from the catalog contents. The
// catalog never changes at runtime, so the token is constant per build.
func versionOf(resources []models.Resource, categories []models.Category) (string, error) {
	b, err := json.Marshal(seedFile{Categories: categories, Resources: resources})
	if err != nil {
		return "", fmt.Errorf("encode catalog for version: %w", err)
	}
	return uuid.NewSHA1(versionNamespace, b).String(), nil
}

// Resources returns the resources in catalog order.
func (c *Catalog) Resources() []models.Resource {
	out := make([]models.Resource, len(c.resources))
	for i, r := range c.resources {
		out[i] = r.Clone()
	}
	return out
}

// Categories returns the categories in display order, "all" included.
func (c *Catalog) Categories() []models.Category {
	return append([]models.Category(nil), c.categories...)
}

// Resource looks up a resource by id.
func (c *Catalog) Resource(id int) (models.Resource, bool) {
	i, ok := c.resourceIdx[id]
	if !ok {
		return models.Resource{}, false
	}
	return c.resources[i].Clone(), true
}

// Category looks up a category by id.
func (c *Catalog) Category(id models.CategoryID) (models.Category, bool) {
	i, ok := c.categoryIdx[id]
	if !ok {
		return models.Category{}, false
	}
	return c.categories[i], true
}

// Icons returns the category icon registry.
func (c *Catalog) Icons() *icons.Registry {
	return c.icons
}

// Version returns the catalog version token.
func (c *Catalog) Version() string {
	return c.version
}

// Len returns the number of resources.
func (c *Catalog) Len() int {
	return len(c.resources)
}
