// internal/app/features/browse/templates.go
package browse

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "browse",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
