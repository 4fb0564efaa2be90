// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	browsefeature "github.com/dalemusser/techhub/internal/app/features/browse"
	catalogapifeature "github.com/dalemusser/techhub/internal/app/features/catalogapi"
	errorsfeature "github.com/dalemusser/techhub/internal/app/features/errors"
	healthfeature "github.com/dalemusser/techhub/internal/app/features/health"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, catalog loading and Startup have
// completed. TechHub boots the template engine, then mounts health, static
// assets, the JSON API (when enabled), the browse page and a 404 page.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps CatalogDeps, logger *zap.Logger) (http.Handler, error) {
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	return newRouter(appCfg, deps, logger), nil
}

// newRouter mounts the feature routers. It needs no template engine, so
// tests can exercise routing directly.
func newRouter(appCfg AppConfig, deps CatalogDeps, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Unmatched paths, including those under mounted feature routers
	errorsHandler := errorsfeature.NewHandler(logger)
	r.NotFound(errorsHandler.NotFound)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Catalog, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets (icon sprite) with pre-compressed file support
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Read-only JSON view of the catalog
	if appCfg.APIEnabled {
		apiHandler := catalogapifeature.NewHandler(deps.Catalog, logger)
		r.Mount("/api", catalogapifeature.Routes(apiHandler))
	}

	// Browse page
	browseHandler := browsefeature.NewHandler(deps.Catalog, logger)
	r.Mount("/", browsefeature.Routes(browseHandler))

	return r
}
