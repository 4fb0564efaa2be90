// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown tears down app resources. The catalog lives in memory, so there
// is nothing to close; the hook only records the version that was served.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps CatalogDeps, logger *zap.Logger) error {
	if deps.Catalog != nil {
		logger.Info("techhub shutting down", zap.String("catalog_version", deps.Catalog.Version()))
	}
	return nil
}
