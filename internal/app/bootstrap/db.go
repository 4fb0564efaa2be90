// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	catalogstore "github.com/dalemusser/techhub/internal/app/store/catalog"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB loads the compiled-in catalog. A catalog that fails validation
// aborts startup.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (CatalogDeps, error) {
	cat, err := catalogstore.Default()
	if err != nil {
		logger.Error("catalog load failed", zap.Error(err))
		return CatalogDeps{}, fmt.Errorf("load catalog: %w", err)
	}

	logger.Info("catalog loaded",
		zap.Int("resources", cat.Len()),
		zap.Int("categories", len(cat.Categories())),
		zap.String("version", cat.Version()))

	return CatalogDeps{Catalog: cat}, nil
}

// EnsureSchema checks that a catalog is present and every category resolves
// to an icon.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps CatalogDeps, logger *zap.Logger) error {
	if deps.Catalog == nil {
		return errors.New("catalog not loaded")
	}
	if n, want := deps.Catalog.Icons().Len(), len(deps.Catalog.Categories()); n != want {
		return fmt.Errorf("icon registry has %d entries for %d categories", n, want)
	}
	return nil
}
