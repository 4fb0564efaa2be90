// internal/app/features/catalogapi/types.go
package catalogapi

import "github.com/dalemusser/techhub/internal/domain/models"

// resourceJSON is a resource plus its resolved category icon.
type resourceJSON struct {
	models.Resource
	Icon models.IconRef `json:"icon"`
}

type categoriesResponse struct {
	Categories []models.Category `json:"categories"`
}

type resourcesResponse struct {
	Resources []resourceJSON    `json:"resources"`
	Count     int               `json:"count"`
	Category  models.CategoryID `json:"category"`
	Query     string            `json:"query"`
}

type featuredResponse struct {
	Resources []resourceJSON `json:"resources"`
}
