// internal/app/features/browse/browse.go
package browse

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	catalogstore "github.com/dalemusser/techhub/internal/app/store/catalog"
	"github.com/dalemusser/techhub/internal/app/store/queries/catalogquery"
	"github.com/dalemusser/techhub/internal/app/system/viewdata"
	"github.com/dalemusser/techhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – hero search, category bar, featured, results grid                    |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeBrowse renders the browse page for ?category=<id>&q=<text>.
// An HTMX request targeting the results section gets that snippet plus
// out-of-band copies of the category bar and category input.
func (h *Handler) ServeBrowse(w http.ResponseWriter, r *http.Request) {
	q := parseQuery(r)
	res := catalogquery.Run(h.Catalog, q)

	h.Log.Debug("catalog browse",
		zap.String("category", string(res.Query.Category)),
		zap.String("q", res.Query.Search),
		zap.Int("count", res.Count()))
	if !res.Known {
		h.Log.Warn("browse: unknown category", zap.String("category", string(res.Query.Category)))
	}

	data := buildBrowseData(viewdata.NewBaseVM(r, pageTitle(res)), h.Catalog, res)

	if isResultsSwap(r) {
		data.NavOOB = true
		templates.RenderSnippet(w, "catalog_swap", data)
		return
	}

	templates.Render(w, r, "catalog_browse", data)
}

// isResultsSwap reports whether r is an HTMX request for the results section.
func isResultsSwap(r *http.Request) bool {
	return r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == resultsTarget
}

// parseQuery reads the filter state from the request. The search text is
// used verbatim; only the category id is trimmed.
func parseQuery(r *http.Request) catalogquery.Query {
	return catalogquery.Query{
		Category: models.CategoryID(query.Get(r, "category")),
		Search:   r.URL.Query().Get("q"),
	}.Normalize()
}

func pageTitle(res catalogquery.Result) string {
	if res.Known && !res.Category.IsAll() {
		return res.Category.Name
	}
	return "Browse"
}

func buildBrowseData(base viewdata.BaseVM, cat *catalogstore.Catalog, res catalogquery.Result) browseData {
	categories := cat.Categories()
	reg := cat.Icons()

	tabs := make([]categoryTab, 0, len(categories))
	for _, c := range categories {
		tabs = append(tabs, categoryTab{
			ID:     c.ID,
			Name:   c.Name,
			Icon:   reg.For(c.ID),
			Color:  c.Color,
			Active: c.ID == res.Query.Category,
			URL:    browseURL(c.ID, res.Query.Search),
		})
	}

	data := browseData{
		BaseVM:     base,
		Q:          res.Query.Search,
		Category:   res.Query.Category,
		Categories: tabs,
		Results:    buildResults(cat, res),
	}

	if res.Query.Category == models.CategoryAll {
		data.ShowFeatured = true
		data.Featured = cards(cat, res.Featured, featuredTagLimit)
	}

	return data
}

func buildResults(cat *catalogstore.Catalog, res catalogquery.Result) resultsVM {
	heading := "Resources"
	switch {
	case res.Query.Category == models.CategoryAll:
		heading = "All Resources"
	case res.Known:
		heading = res.Category.Name + " Resources"
	}

	n := res.Count()
	return resultsVM{
		Heading:    heading,
		CountLabel: countLabel(n),
		Count:      n,
		Empty:      n == 0,
		Cards:      cards(cat, res.Resources, gridTagLimit),
	}
}

func cards(cat *catalogstore.Catalog, rs []models.Resource, tagLimit int) []resourceCard {
	reg := cat.Icons()
	out := make([]resourceCard, 0, len(rs))
	for _, r := range rs {
		out = append(out, newCard(r, reg.For(r.Category), tagLimit))
	}
	return out
}

func newCard(r models.Resource, icon models.IconRef, tagLimit int) resourceCard {
	tags := r.Tags
	more := 0
	if len(tags) > tagLimit {
		more = len(tags) - tagLimit
		tags = tags[:tagLimit]
	}

	typ := r.Type
	if typ == "" {
		typ = models.DefaultResourceType
	}

	return resourceCard{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Author:      r.Author,
		ReadTime:    r.ReadTime,
		Type:        typ,
		Popularity:  strconv.FormatFloat(r.Popularity, 'f', -1, 64),
		Icon:        icon,
		Featured:    r.Featured,
		Tags:        append([]string(nil), tags...),
		MoreTags:    more,
	}
}

func countLabel(n int) string {
	if n == 1 {
		return "1 resource found"
	}
	return fmt.Sprintf("%d resources found", n)
}

// browseURL links to the page with the given category, keeping the search.
func browseURL(id models.CategoryID, search string) string {
	v := url.Values{}
	v.Set("category", string(id))
	if search != "" {
		v.Set("q", search)
	}
	return "/?" + v.Encode()
}
