package browse

import (
	"bytes"
	"html/template"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/dalemusser/techhub/internal/app/resources"
	"github.com/dalemusser/techhub/internal/app/store/queries/catalogquery"
	"github.com/dalemusser/techhub/internal/app/system/icons"
	"github.com/dalemusser/techhub/internal/app/system/viewdata"
	"github.com/dalemusser/techhub/internal/domain/models"
	"github.com/dalemusser/techhub/internal/testutil"
	"go.uber.org/zap"
)

func build(t *testing.T, category models.CategoryID, search string) browseData {
	t.Helper()
	c := testutil.DefaultCatalog(t)
	res := catalogquery.Run(c, catalogquery.Query{Category: category, Search: search})
	req := httptest.NewRequest("GET", "/", nil)
	return buildBrowseData(viewdata.NewBaseVM(req, pageTitle(res)), c, res)
}

func cardIDs(cs []resourceCard) []int {
	out := make([]int, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}

func TestNewHandler(t *testing.T) {
	h := NewHandler(testutil.DefaultCatalog(t), zap.NewNop())
	if h == nil || h.Catalog == nil || h.Log == nil {
		t.Fatal("NewHandler() returned an incomplete handler")
	}
}

func TestParseQuery(t *testing.T) {
	tests := []struct {
		target string
		want   catalogquery.Query
	}{
		{"/", catalogquery.Query{Category: "all"}},
		{"/?category=devops", catalogquery.Query{Category: "devops"}},
		{"/?category=frontend&q=React", catalogquery.Query{Category: "frontend", Search: "React"}},
		{"/?q=Modern+JS", catalogquery.Query{Category: "all", Search: "Modern JS"}},
	}
	for _, tt := range tests {
		req := httptest.NewRequest("GET", tt.target, nil)
		if got := parseQuery(req); got != tt.want {
			t.Errorf("parseQuery(%q) = %+v, want %+v", tt.target, got, tt.want)
		}
	}
}

func TestBuildBrowseData_AllCategories(t *testing.T) {
	data := build(t, models.CategoryAll, "")

	if !data.ShowFeatured {
		t.Error("ShowFeatured = false for the all view")
	}
	if got := cardIDs(data.Featured); !reflect.DeepEqual(got, []int{1, 2, 5}) {
		t.Errorf("Featured = %v, want [1 2 5]", got)
	}
	if data.Results.Heading != "All Resources" {
		t.Errorf("Heading = %q", data.Results.Heading)
	}
	if data.Results.CountLabel != "8 resources found" {
		t.Errorf("CountLabel = %q", data.Results.CountLabel)
	}
	if len(data.Categories) != 5 {
		t.Fatalf("Categories len = %d, want 5", len(data.Categories))
	}
	if !data.Categories[0].Active || data.Categories[1].Active {
		t.Error("only the all tab should be active")
	}
	if data.Title != "Browse" {
		t.Errorf("Title = %q, want Browse", data.Title)
	}
}

func TestBuildBrowseData_CategoryHidesFeaturedSection(t *testing.T) {
	data := build(t, models.CategoryDevOps, "")

	if data.ShowFeatured || len(data.Featured) != 0 {
		t.Error("featured section should be hidden when a category is selected")
	}
	if data.Results.Heading != "DevOps Resources" {
		t.Errorf("Heading = %q, want DevOps Resources", data.Results.Heading)
	}
	if got := cardIDs(data.Results.Cards); !reflect.DeepEqual(got, []int{1, 2, 6}) {
		t.Errorf("Cards = %v, want [1 2 6]", got)
	}
	if data.Title != "DevOps" {
		t.Errorf("Title = %q, want DevOps", data.Title)
	}
}

// The featured list does not follow the search text.
func TestBuildBrowseData_FeaturedIgnoresSearch(t *testing.T) {
	data := build(t, models.CategoryAll, "react")

	if got := cardIDs(data.Results.Cards); !reflect.DeepEqual(got, []int{3}) {
		t.Errorf("Cards = %v, want [3]", got)
	}
	if got := cardIDs(data.Featured); !reflect.DeepEqual(got, []int{1, 2, 5}) {
		t.Errorf("Featured = %v, want [1 2 5] regardless of search", got)
	}
	if data.Results.CountLabel != "1 resource found" {
		t.Errorf("CountLabel = %q, want singular", data.Results.CountLabel)
	}
}

func TestBuildBrowseData_Empty(t *testing.T) {
	data := build(t, models.CategoryFrontend, "docker")
	if !data.Results.Empty || data.Results.Count != 0 {
		t.Errorf("Results = %+v, want empty", data.Results)
	}
	if data.Results.CountLabel != "0 resources found" {
		t.Errorf("CountLabel = %q", data.Results.CountLabel)
	}
}

func TestBuildBrowseData_UnknownCategory(t *testing.T) {
	data := build(t, "quantum", "")
	if data.ShowFeatured {
		t.Error("featured section should be hidden for an unknown category")
	}
	if data.Results.Heading != "Resources" {
		t.Errorf("Heading = %q, want Resources", data.Results.Heading)
	}
	if !data.Results.Empty {
		t.Error("unknown category should match nothing")
	}
	for _, tab := range data.Categories {
		if tab.Active {
			t.Errorf("tab %q is active for an unknown category", tab.ID)
		}
	}
}

func TestCategoryTabsKeepSearch(t *testing.T) {
	data := build(t, models.CategoryAll, "ci/cd")
	want := map[models.CategoryID]string{
		"all":    "/?category=all&q=ci%2Fcd",
		"devops": "/?category=devops&q=ci%2Fcd",
	}
	for _, tab := range data.Categories {
		if w, ok := want[tab.ID]; ok && tab.URL != w {
			t.Errorf("tab %q URL = %q, want %q", tab.ID, tab.URL, w)
		}
	}

	plain := build(t, models.CategoryAll, "")
	if plain.Categories[1].URL != "/?category=devops" {
		t.Errorf("URL without search = %q", plain.Categories[1].URL)
	}
}

func TestNewCard(t *testing.T) {
	r := models.Resource{
		ID:         9,
		Title:      "Go Concurrency",
		Category:   "quantum",
		Popularity: 4.25,
		Tags:       []string{"Go", "Channels", "Goroutines", "Sync"},
	}

	c := newCard(r, icons.Default, gridTagLimit)
	if !reflect.DeepEqual(c.Tags, []string{"Go", "Channels"}) {
		t.Errorf("Tags = %v", c.Tags)
	}
	if c.MoreTags != 2 {
		t.Errorf("MoreTags = %d, want 2", c.MoreTags)
	}
	if c.Type != models.DefaultResourceType {
		t.Errorf("Type = %q, want default", c.Type)
	}
	if c.Popularity != "4.25" {
		t.Errorf("Popularity = %q", c.Popularity)
	}

	c.Tags[0] = "changed"
	if r.Tags[0] != "Go" {
		t.Error("card tags share storage with the resource")
	}

	untagged := newCard(models.Resource{ID: 10, Title: "x"}, icons.Default, featuredTagLimit)
	if len(untagged.Tags) != 0 || untagged.MoreTags != 0 {
		t.Errorf("untagged card = %+v", untagged)
	}
}

func TestCards_UnknownCategoryIconFallsBack(t *testing.T) {
	c := testutil.DefaultCatalog(t)
	got := cards(c, []models.Resource{{ID: 1, Title: "x", Category: "quantum"}}, gridTagLimit)
	if got[0].Icon != icons.Default {
		t.Errorf("Icon = %q, want default", got[0].Icon)
	}
}

func parseTemplates(t *testing.T) *template.Template {
	t.Helper()
	tmpl, err := template.ParseFS(resources.FS, "templates/*.gohtml")
	if err != nil {
		t.Fatalf("parse shared templates: %v", err)
	}
	if tmpl, err = tmpl.ParseFS(FS, "templates/*.gohtml"); err != nil {
		t.Fatalf("parse browse templates: %v", err)
	}
	return tmpl
}

func TestTemplates_RenderPage(t *testing.T) {
	tmpl := parseTemplates(t)
	data := build(t, models.CategoryAll, "")

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "catalog_browse", data); err != nil {
		t.Fatalf("execute catalog_browse: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"TechHub Platform",
		"Featured Resources",
		"All Resources",
		"8 resources found",
		"Complete Docker Guide for Developers",
		`id="catalog-results"`,
		"+1 more",
		"/static/icons.svg#server",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestTemplates_RenderEmptyResults(t *testing.T) {
	tmpl := parseTemplates(t)
	data := build(t, models.CategoryFrontend, "docker")

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "catalog_results", data); err != nil {
		t.Fatalf("execute catalog_results: %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, "No resources found") {
		t.Error("empty state missing")
	}
	if strings.Contains(html, "Featured Resources") {
		t.Error("results snippet should not include the featured section")
	}
}

func TestIsResultsSwap(t *testing.T) {
	tests := []struct {
		name string
		req  *http.Request
		want bool
	}{
		{"results target", testutil.NewHTMXRequest("/?q=docker", resultsTarget), true},
		{"other target", testutil.NewHTMXRequest("/?q=docker", "sidebar"), false},
		{"plain request", testutil.NewRequest("GET", "/?q=docker"), false},
	}
	for _, tt := range tests {
		if got := isResultsSwap(tt.req); got != tt.want {
			t.Errorf("%s: isResultsSwap() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestTemplates_ResultsSwapRefreshesCategoryBar(t *testing.T) {
	tmpl := parseTemplates(t)
	data := build(t, models.CategoryAll, "docker")
	data.NavOOB = true

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "catalog_swap", data); err != nil {
		t.Fatalf("execute catalog_swap: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		`id="catalog-results"`,
		`id="catalog-nav"`,
		`href="/?category=devops&amp;q=docker"`,
		`href="/?category=frontend&amp;q=docker"`,
		`id="catalog-category"`,
		`hx-swap-oob="true"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("swap snippet missing %q", want)
		}
	}
	if strings.Contains(html, "Featured Resources") {
		t.Error("swap snippet should not include the featured section")
	}
}

func TestTemplates_FullPageHasNoOutOfBandSwap(t *testing.T) {
	tmpl := parseTemplates(t)
	data := build(t, models.CategoryDevOps, "docker")

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "catalog_browse", data); err != nil {
		t.Fatalf("execute catalog_browse: %v", err)
	}
	html := buf.String()
	if strings.Contains(html, "hx-swap-oob") {
		t.Error("full page should not mark elements for out-of-band swap")
	}
	if !strings.Contains(html, `href="/?category=cloud&amp;q=docker"`) {
		t.Error("category bar should keep the search text")
	}
}
