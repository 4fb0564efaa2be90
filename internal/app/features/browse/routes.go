// internal/app/features/browse/routes.go
package browse

import "github.com/go-chi/chi/v5"

// Routes returns the browse router (mounted at "/").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeBrowse)
	return r
}
