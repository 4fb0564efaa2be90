// internal/app/features/catalogapi/handler.go
package catalogapi

import (
	"encoding/json"
	"net/http"
	"strings"

	catalogstore "github.com/dalemusser/techhub/internal/app/store/catalog"
	"go.uber.org/zap"
)

// Handler serves the read-only JSON view of the catalog.
type Handler struct {
	Catalog *catalogstore.Catalog
	Log     *zap.Logger
}

// NewHandler constructs a catalog API Handler.
func NewHandler(cat *catalogstore.Catalog, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog: cat,
		Log:     logger,
	}
}

// etag returns the quoted entity tag for the current catalog.
func (h *Handler) etag() string {
	return `"` + h.Catalog.Version() + `"`
}

// writeOK answers 304 when the client already holds this catalog version
// and writes data as a 200 otherwise. Only successful responses carry the
// ETag; error bodies are never cached.
func (h *Handler) writeOK(w http.ResponseWriter, r *http.Request, data any) {
	tag := h.etag()
	w.Header().Set("ETag", tag)
	if etagMatch(r.Header.Get("If-None-Match"), tag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

// etagMatch reports whether an If-None-Match header value matches tag. The
// header may list several tags; comparison is weak, so W/"x" matches "x".
func etagMatch(header, tag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == strings.TrimPrefix(tag, "W/") {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
