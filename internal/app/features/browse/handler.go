// internal/app/features/browse/handler.go
package browse

import (
	catalogstore "github.com/dalemusser/techhub/internal/app/store/catalog"
	"go.uber.org/zap"
)

// Handler serves the catalog browse page.
type Handler struct {
	Catalog *catalogstore.Catalog
	Log     *zap.Logger
}

func NewHandler(cat *catalogstore.Catalog, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog: cat,
		Log:     logger,
	}
}
