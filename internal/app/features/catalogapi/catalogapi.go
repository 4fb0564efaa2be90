// internal/app/features/catalogapi/catalogapi.go
package catalogapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/techhub/internal/app/store/queries/catalogquery"
	"github.com/dalemusser/techhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ListCategories handles GET /api/categories.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	h.writeOK(w, r, categoriesResponse{Categories: h.Catalog.Categories()})
}

// ListResources handles GET /api/resources?category=<id>&q=<text>.
// A missing category means "all".
func (h *Handler) ListResources(w http.ResponseWriter, r *http.Request) {
	q := catalogquery.Query{
		Category: models.CategoryID(strings.TrimSpace(r.URL.Query().Get("category"))),
		Search:   r.URL.Query().Get("q"),
	}
	res := catalogquery.Run(h.Catalog, q)

	h.Log.Debug("api: list resources",
		zap.String("category", string(res.Query.Category)),
		zap.String("q", res.Query.Search),
		zap.Int("count", res.Count()))

	h.writeOK(w, r, resourcesResponse{
		Resources: h.withIcons(res.Resources),
		Count:     res.Count(),
		Category:  res.Query.Category,
		Query:     res.Query.Search,
	})
}

// GetResource handles GET /api/resources/{id}.
func (h *Handler) GetResource(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		h.Log.Warn("api: bad resource id", zap.String("id", raw))
		writeError(w, http.StatusBadRequest, "resource id must be an integer")
		return
	}

	res, ok := h.Catalog.Resource(id)
	if !ok {
		writeError(w, http.StatusNotFound, "resource not found")
		return
	}
	h.writeOK(w, r, h.withIcon(res))
}

// ListFeatured handles GET /api/featured. Filters do not apply.
func (h *Handler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	h.writeOK(w, r, featuredResponse{
		Resources: h.withIcons(catalogquery.Featured(h.Catalog.Resources())),
	})
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "not found")
}

func (h *Handler) withIcon(r models.Resource) resourceJSON {
	if r.Tags == nil {
		r.Tags = []string{}
	}
	return resourceJSON{Resource: r, Icon: h.Catalog.Icons().For(r.Category)}
}

func (h *Handler) withIcons(rs []models.Resource) []resourceJSON {
	out := make([]resourceJSON, 0, len(rs))
	for _, r := range rs {
		out = append(out, h.withIcon(r))
	}
	return out
}
