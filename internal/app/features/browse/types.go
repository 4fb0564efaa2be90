// internal/app/features/browse/types.go
package browse

import (
	"github.com/dalemusser/techhub/internal/app/system/viewdata"
	"github.com/dalemusser/techhub/internal/domain/models"
)

// Number of tags shown on a card before collapsing into "+N more".
const (
	featuredTagLimit = 3
	gridTagLimit     = 2
)

// resultsTarget is the HX-Target id of the results section.
const resultsTarget = "catalog-results"

// categoryTab is one button in the category bar.
type categoryTab struct {
	ID     models.CategoryID
	Name   string
	Icon   models.IconRef
	Color  string
	Active bool
	URL    string
}

// resourceCard is a resource prepared for display.
type resourceCard struct {
	ID          int
	Title       string
	Description string
	Author      string
	ReadTime    string
	Type        string
	Popularity  string
	Icon        models.IconRef
	Featured    bool
	Tags        []string
	MoreTags    int // tags hidden behind "+N more"
}

// resultsVM is the filtered grid; it is also rendered alone for HTMX swaps.
type resultsVM struct {
	Heading    string
	CountLabel string
	Count      int
	Empty      bool
	Cards      []resourceCard
}

// browseData is the view model for the browse page.
type browseData struct {
	viewdata.BaseVM

	Q        string
	Category models.CategoryID

	Categories []categoryTab

	// Featured is shown only for the unfiltered category view.
	ShowFeatured bool
	Featured     []resourceCard

	Results resultsVM

	// NavOOB marks the category bar and the hidden category input for an
	// out-of-band swap, so an HTMX results update also refreshes the
	// search text carried by the tab links.
	NavOOB bool
}
