// Package icons maps category ids to the icon glyphs the templates draw.
//
// The mapping is explicit and finite: a Registry is built from the category
// set at startup and refuses categories whose icon is missing or unknown.
// Lookups for ids that are not in the registry return Default.
package icons

import (
	"errors"
	"fmt"

	"github.com/dalemusser/techhub/internal/domain/models"
)

// Glyphs drawn by the templates.
const (
	BookOpen   models.IconRef = "book-open"
	Server     models.IconRef = "server"
	Code       models.IconRef = "code"
	Database   models.IconRef = "database"
	Cloud      models.IconRef = "cloud"
	Search     models.IconRef = "search"
	Star       models.IconRef = "star"
	TrendingUp models.IconRef = "trending-up"
	Clock      models.IconRef = "clock"
	Users      models.IconRef = "users"
	ArrowRight models.IconRef = "arrow-right"
)

// Default is returned for category ids the registry does not know.
const Default = BookOpen

var known = map[models.IconRef]bool{
	BookOpen:   true,
	Server:     true,
	Code:       true,
	Database:   true,
	Cloud:      true,
	Search:     true,
	Star:       true,
	TrendingUp: true,
	Clock:      true,
	Users:      true,
	ArrowRight: true,
}

var (
	ErrMissingIcon = errors.New("category has no icon")
	ErrUnknownIcon = errors.New("category icon is not a known glyph")
)

// Known reports whether ref is a glyph the templates can draw.
func Known(ref models.IconRef) bool {
	return known[ref]
}

// Registry is an immutable category id -> icon mapping.
type Registry struct {
	byCategory map[models.CategoryID]models.IconRef
}

// NewRegistry builds a registry covering every category in cats.
func NewRegistry(cats []models.Category) (*Registry, error) {
	m := make(map[models.CategoryID]models.IconRef, len(cats))
	for _, c := range cats {
		if c.Icon == "" {
			return nil, fmt.Errorf("%w: %q", ErrMissingIcon, c.ID)
		}
		if !Known(c.Icon) {
			return nil, fmt.Errorf("%w: %q uses %q", ErrUnknownIcon, c.ID, c.Icon)
		}
		m[c.ID] = c.Icon
	}
	return &Registry{byCategory: m}, nil
}

// For returns the icon for id, or Default if id is not registered.
// A nil registry always returns Default.
func (r *Registry) For(id models.CategoryID) models.IconRef {
	if r == nil {
		return Default
	}
	if ref, ok := r.byCategory[id]; ok {
		return ref
	}
	return Default
}

// Len returns the number of registered categories.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.byCategory)
}
