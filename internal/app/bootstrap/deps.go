// internal/app/bootstrap/deps.go
package bootstrap

import catalogstore "github.com/dalemusser/techhub/internal/app/store/catalog"

// CatalogDeps holds the back-end dependencies for the app. The catalog is
// compiled in, so the "DB" WAFFLE connects is the loaded, validated catalog.
type CatalogDeps struct {
	Catalog *catalogstore.Catalog
}
