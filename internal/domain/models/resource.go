// internal/domain/models/resource.go
package models

// Resource is a single catalog entry (article, tutorial, guide).
//
// Resources are built once from the compiled-in seed and never change.
// ReadTime, Popularity and Type are display-only; nothing sorts or
// computes on them.
type Resource struct {
	ID          int        `yaml:"id" json:"id"`
	Title       string     `yaml:"title" json:"title"`
	Description string     `yaml:"description" json:"description"`
	Category    CategoryID `yaml:"category" json:"category"`
	Author      string     `yaml:"author" json:"author"`
	ReadTime    string     `yaml:"read_time" json:"read_time"`   // e.g. "12 min"
	Popularity  float64    `yaml:"popularity" json:"popularity"` // ~4.0-5.0
	Tags        []string   `yaml:"tags" json:"tags"`             // may be empty
	Featured    bool       `yaml:"featured" json:"featured"`
	Type        string     `yaml:"type" json:"type"` // e.g. "Tutorial", "Guide"
}

// Clone returns a copy of r whose Tags slice is not shared with r.
func (r Resource) Clone() Resource {
	if r.Tags != nil {
		r.Tags = append([]string(nil), r.Tags...)
	}
	return r
}
