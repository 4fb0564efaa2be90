// internal/app/bootstrap/appconfig.go
package bootstrap

import "github.com/dalemusser/techhub/internal/domain/models"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like ports, TLS,
// logging level and request limits. AppConfig carries what is specific to
// TechHub: the text shown in the page chrome and whether the JSON API is
// mounted.
type AppConfig struct {
	// Page chrome
	SiteName          string // Shown in the hero, page titles and footer
	SiteTagline       string // Hero tagline under the site name
	SearchPlaceholder string // Placeholder text for the search box
	FooterHTML        string // Operator-supplied footer markup (sanitized before rendering)

	// APIEnabled mounts the read-only JSON API under /api.
	APIEnabled bool
}

// siteSettings converts the chrome fields into the shape viewdata uses.
func (c AppConfig) siteSettings() models.SiteSettings {
	return models.SiteSettings{
		SiteName:          c.SiteName,
		Tagline:           c.SiteTagline,
		SearchPlaceholder: c.SearchPlaceholder,
		FooterHTML:        c.FooterHTML,
	}
}
