// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/techhub/internal/app/resources"
	"github.com/dalemusser/techhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after the catalog is
// loaded but before the HTTP handler is built: it registers the shared
// page chrome and publishes the configured site settings.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps CatalogDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()
	viewdata.Init(appCfg.siteSettings())

	logger.Info("site settings applied",
		zap.String("site_name", viewdata.Settings().SiteName),
		zap.Bool("api_enabled", appCfg.APIEnabled))
	return nil
}
