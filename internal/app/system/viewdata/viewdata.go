// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"html/template"
	"net/http"
	"sync"

	"github.com/dalemusser/techhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/techhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/httpnav"
)

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title"),
//	}
type BaseVM struct {
	// Site settings (from config)
	SiteName          string
	Tagline           string
	SearchPlaceholder string
	FooterTagline     string
	FooterHTML        template.HTML

	// Page context
	Title       string
	CurrentPath string
}

var (
	mu       sync.RWMutex
	settings = defaultSettings()
)

func defaultSettings() models.SiteSettings {
	return models.SiteSettings{
		SiteName:          models.DefaultSiteName,
		Tagline:           models.DefaultTagline,
		SearchPlaceholder: models.DefaultSearchPlaceholder,
	}
}

// Init sets the site settings used by every page.
// Call this once at startup from bootstrap. Empty fields keep their defaults.
func Init(s models.SiteSettings) {
	d := defaultSettings()
	if s.SiteName == "" {
		s.SiteName = d.SiteName
	}
	if s.Tagline == "" {
		s.Tagline = d.Tagline
	}
	if s.SearchPlaceholder == "" {
		s.SearchPlaceholder = d.SearchPlaceholder
	}

	mu.Lock()
	defer mu.Unlock()
	settings = s
}

// Settings returns the current site settings.
func Settings() models.SiteSettings {
	mu.RLock()
	defer mu.RUnlock()
	return settings
}

// NewBaseVM creates a fully populated BaseVM for a page.
func NewBaseVM(r *http.Request, title string) BaseVM {
	s := Settings()
	return BaseVM{
		SiteName:          s.SiteName,
		Tagline:           s.Tagline,
		SearchPlaceholder: s.SearchPlaceholder,
		FooterTagline:     models.DefaultFooterTagline,
		FooterHTML:        htmlsanitize.SanitizeToHTML(s.FooterHTML),
		Title:             title,
		CurrentPath:       httpnav.CurrentPath(r),
	}
}
