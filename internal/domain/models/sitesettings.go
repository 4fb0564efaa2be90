// internal/domain/models/sitesettings.go
package models

// SiteSettings holds the display settings shown in the page chrome.
// They come from app configuration at startup; nothing edits them at runtime.
type SiteSettings struct {
	SiteName          string
	Tagline           string
	SearchPlaceholder string

	// FooterHTML is operator-supplied markup; it is sanitized before rendering.
	FooterHTML string
}

// DefaultSiteName is the site name used when none is configured.
const DefaultSiteName = "TechHub Platform"

// DefaultTagline is the hero tagline used when none is configured.
const DefaultTagline = "Discover cutting-edge resources, tutorials, and insights for developers, DevOps engineers, and tech enthusiasts."

// DefaultSearchPlaceholder is the search box placeholder used when none is configured.
const DefaultSearchPlaceholder = "Search for tutorials, guides, technologies..."

// DefaultFooterTagline is shown under the site name in the footer.
const DefaultFooterTagline = "Empowering developers with cutting-edge knowledge and resources"
