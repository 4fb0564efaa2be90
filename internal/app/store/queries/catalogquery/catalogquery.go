// internal/app/store/queries/catalogquery/catalogquery.go
package catalogquery

import (
	"strings"

	catalogstore "github.com/dalemusser/techhub/internal/app/store/catalog"
	"github.com/dalemusser/techhub/internal/app/system/icons"
	"github.com/dalemusser/techhub/internal/domain/models"
)

// Query is the filter state owned by the presentation layer.
//
// The zero value is not "show everything": an empty Category matches no
// resource. Use Normalize (or set Category to models.CategoryAll) for the
// unfiltered view.
type Query struct {
	Category models.CategoryID
	Search   string
}

// Normalize returns q with an empty Category replaced by the wildcard.
// Search is left untouched; whitespace is significant to substring matching.
func (q Query) Normalize() Query {
	if q.Category == "" {
		q.Category = models.CategoryAll
	}
	return q
}

// Result is everything a page or API response needs for one query.
type Result struct {
	Query Query

	// Resources is the filtered list, in catalog order.
	Resources []models.Resource

	// Featured is computed from the whole catalog and ignores Query.
	Featured []models.Resource

	// Category describes Query.Category for headings. For ids not in the
	// catalog it is the wildcard descriptor and Known is false.
	Category models.Category
	Known    bool
}

// Count returns the number of filtered resources.
func (r Result) Count() int {
	return len(r.Resources)
}

// Filter returns the resources matching both the category and the search
// text, in their original order.
//
// selected == "all" matches every category; any other value must equal the
// resource's category exactly. An empty search matches everything; otherwise
// the lower-cased search must be a substring of the lower-cased title,
// description, or at least one tag.
func Filter(resources []models.Resource, selected models.CategoryID, search string) []models.Resource {
	needle := strings.ToLower(search)
	out := make([]models.Resource, 0, len(resources))
	for _, r := range resources {
		if matchesCategory(r, selected) && matchesSearch(r, needle) {
			out = append(out, r)
		}
	}
	return out
}

// Featured returns every featured resource in catalog order. It does not
// look at any filter state.
func Featured(resources []models.Resource) []models.Resource {
	out := make([]models.Resource, 0, len(resources))
	for _, r := range resources {
		if r.Featured {
			out = append(out, r)
		}
	}
	return out
}

// IconFor returns the icon of the category with the given id, or
// icons.Default when no such category exists.
func IconFor(categories []models.Category, id models.CategoryID) models.IconRef {
	for _, c := range categories {
		if c.ID == id && c.Icon != "" {
			return c.Icon
		}
	}
	return icons.Default
}

// Run evaluates q against the catalog.
func Run(c *catalogstore.Catalog, q Query) Result {
	q = q.Normalize()
	all := c.Resources()

	res := Result{
		Query:     q,
		Resources: Filter(all, q.Category, q.Search),
		Featured:  Featured(all),
	}
	if cat, ok := c.Category(q.Category); ok {
		res.Category, res.Known = cat, true
	} else {
		res.Category, _ = c.Category(models.CategoryAll)
	}
	return res
}

func matchesCategory(r models.Resource, selected models.CategoryID) bool {
	return selected == models.CategoryAll || r.Category == selected
}

// matchesSearch expects needle to be lower-cased already.
func matchesSearch(r models.Resource, needle string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Title), needle) ||
		strings.Contains(strings.ToLower(r.Description), needle) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
