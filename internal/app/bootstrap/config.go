// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"strings"

	"github.com/dalemusser/techhub/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for TechHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: site_name, api_enabled, etc.
//   - Environment variables: TECHHUB_SITE_NAME, TECHHUB_API_ENABLED, etc.
//   - Command-line flags: --site_name, --api_enabled, etc.
var appConfigKeys = []config.AppKey{
	{Name: "site_name", Default: models.DefaultSiteName, Desc: "Site name shown in the header and footer"},
	{Name: "site_tagline", Default: models.DefaultTagline, Desc: "Hero tagline under the site name"},
	{Name: "search_placeholder", Default: models.DefaultSearchPlaceholder, Desc: "Search box placeholder text"},
	{Name: "footer_html", Default: "", Desc: "Extra footer markup (sanitized)"},

	{Name: "api_enabled", Default: true, Desc: "Mount the read-only JSON API under /api"},
}

// ErrEmptySiteName is returned by ValidateConfig when site_name is blank.
var ErrEmptySiteName = errors.New("site_name must not be empty")

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env files, config files,
// environment variables (WAFFLE_* for core, TECHHUB_* for app) and flags,
// merged with precedence flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "TECHHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		SiteName:          strings.TrimSpace(appValues.String("site_name")),
		SiteTagline:       appValues.String("site_tagline"),
		SearchPlaceholder: appValues.String("search_placeholder"),
		FooterHTML:        appValues.String("footer_html"),
		APIEnabled:        appValues.Bool("api_enabled"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if strings.TrimSpace(appCfg.SiteName) == "" {
		logger.Error("invalid app config", zap.Error(ErrEmptySiteName))
		return ErrEmptySiteName
	}
	return nil
}
