// internal/app/features/catalogapi/routes.go
package catalogapi

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter serving the catalog API (mounted under /api).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.NotFound(h.notFound)

	r.Get("/categories", h.ListCategories)
	r.Get("/resources", h.ListResources)
	r.Get("/resources/{id}", h.GetResource)
	r.Get("/featured", h.ListFeatured)
	return r
}
