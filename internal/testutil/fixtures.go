package testutil

import (
	"context"
	"net/http"
	"testing"

	catalogstore "github.com/dalemusser/techhub/internal/app/store/catalog"
	"github.com/dalemusser/techhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// DefaultCatalog returns the compiled-in catalog, failing the test if it
// does not load.
func DefaultCatalog(t *testing.T) *catalogstore.Catalog {
	t.Helper()
	c, err := catalogstore.Default()
	if err != nil {
		t.Fatalf("catalogstore.Default() error = %v", err)
	}
	return c
}

// Categories returns the standard five categories in display order.
func Categories() []models.Category {
	return []models.Category{
		{ID: models.CategoryAll, Name: "All Topics", Icon: "book-open"},
		{ID: models.CategoryDevOps, Name: "DevOps", Icon: "server"},
		{ID: models.CategoryFrontend, Name: "Frontend", Icon: "code"},
		{ID: models.CategoryBackend, Name: "Backend", Icon: "database"},
		{ID: models.CategoryCloud, Name: "Cloud", Icon: "cloud"},
	}
}

// NewCatalog builds a catalog of the given resources over the standard
// categories, failing the test on a validation error.
func NewCatalog(t *testing.T, resources ...models.Resource) *catalogstore.Catalog {
	t.Helper()
	c, err := catalogstore.New(resources, Categories())
	if err != nil {
		t.Fatalf("catalogstore.New() error = %v", err)
	}
	return c
}

// Resource returns a minimal valid resource; callers override fields.
func Resource(id int, title string, category models.CategoryID, tags ...string) models.Resource {
	return models.Resource{
		ID:         id,
		Title:      title,
		Category:   category,
		Tags:       tags,
		Author:     "Test Author",
		ReadTime:   "5 min",
		Popularity: 4.5,
		Type:       models.DefaultResourceType,
	}
}
