package health

import (
	"encoding/json"
	"net/http"

	catalogstore "github.com/dalemusser/techhub/internal/app/store/catalog"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Catalog *catalogstore.Catalog
	Log     *zap.Logger
}

// NewHandler constructs a health Handler with the loaded catalog and logger.
func NewHandler(cat *catalogstore.Catalog, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog: cat,
		Log:     logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status         string `json:"status"`
	Resources      int    `json:"resources"`
	Categories     int    `json:"categories"`
	CatalogVersion string `json:"catalog_version,omitempty"`
	Message        string `json:"message,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "resources":8, "categories":5, "catalog_version":"…" }
//
// Without a catalog: 503 and
//
//	{ "status":"error", "message":"Catalog not loaded" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.Catalog == nil {
		h.Log.Error("health-check: catalog not loaded")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(healthResponse{
			Status:  "error",
			Message: "Catalog not loaded",
		})
		return
	}

	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:         "ok",
		Resources:      h.Catalog.Len(),
		Categories:     len(h.Catalog.Categories()),
		CatalogVersion: h.Catalog.Version(),
	})
}
