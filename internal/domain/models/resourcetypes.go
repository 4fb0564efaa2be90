// internal/domain/models/resourcetypes.go
package models

// Resource type labels used by the compiled-in catalog.
//
// Type is free-form display text; these constants only name the values the
// seed uses so tests and the CLI can refer to them.
const (
	ResourceTypeTutorial = "Tutorial"
	ResourceTypeGuide    = "Guide"
	ResourceTypeWorkshop = "Workshop"
	ResourceTypeOverview = "Overview"
	ResourceTypeDeepDive = "Deep Dive"
)

// DefaultResourceType is shown when a resource carries no type label.
const DefaultResourceType = "Article"
