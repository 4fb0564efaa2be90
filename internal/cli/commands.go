package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dalemusser/techhub/internal/app/store/queries/catalogquery"
	"github.com/dalemusser/techhub/internal/domain/models"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

type categoryRow struct {
	models.Category `yaml:",inline"`
	Resources       int `json:"resources" yaml:"resources"`
}

type searchOutput struct {
	Category  models.CategoryID `json:"category" yaml:"category"`
	Query     string            `json:"query" yaml:"query"`
	Count     int               `json:"count" yaml:"count"`
	Resources []models.Resource `json:"resources" yaml:"resources"`
}

func newCategoriesCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories with their resource counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := opts.loadCatalog()
			if err != nil {
				return err
			}

			resources := cat.Resources()
			rows := make([]categoryRow, 0, len(cat.Categories()))
			for _, c := range cat.Categories() {
				rows = append(rows, categoryRow{
					Category:  c,
					Resources: len(catalogquery.Filter(resources, c.ID, "")),
				})
			}

			return render(cmd.OutOrStdout(), opts.output, rows, func(t *tablewriter.Table) {
				t.Header("ID", "Name", "Icon", "Resources")
				for _, r := range rows {
					t.Append(string(r.ID), r.Name, string(r.Icon), strconv.Itoa(r.Resources))
				}
			})
		},
	}
}

func newSearchCommand(opts *options) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Filter resources by category and search text",
		Long: `Filter resources the way the browse page does. The words of the query
are joined with single spaces and matched case-insensitively against titles,
descriptions and tags.`,
		Example: `  catalogctl search kubernetes
  catalogctl search -c frontend react
  catalogctl search -c devops -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := opts.loadCatalog()
			if err != nil {
				return err
			}

			res := catalogquery.Run(cat, catalogquery.Query{
				Category: models.CategoryID(strings.TrimSpace(category)),
				Search:   strings.Join(args, " "),
			})
			out := searchOutput{
				Category:  res.Query.Category,
				Query:     res.Query.Search,
				Count:     res.Count(),
				Resources: emptyTags(res.Resources),
			}

			return render(cmd.OutOrStdout(), opts.output, out, func(t *tablewriter.Table) {
				resourceTable(t, out.Resources)
				t.Footer("", fmt.Sprintf("%d found", out.Count), "", "", "")
			})
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", string(models.CategoryAll), "category id to filter by")
	return cmd
}

func newFeaturedCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "featured",
		Short: "List featured resources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := opts.loadCatalog()
			if err != nil {
				return err
			}

			featured := emptyTags(catalogquery.Featured(cat.Resources()))
			return render(cmd.OutOrStdout(), opts.output, featured, func(t *tablewriter.Table) {
				resourceTable(t, featured)
			})
		},
	}
}

func newShowCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("resource id must be an integer: %q", args[0])
			}

			cat, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			res, ok := cat.Resource(id)
			if !ok {
				return fmt.Errorf("resource %d not found", id)
			}
			res = emptyTags([]models.Resource{res})[0]

			return render(cmd.OutOrStdout(), opts.output, res, func(t *tablewriter.Table) {
				t.Header("Field", "Value")
				t.Append("ID", strconv.Itoa(res.ID))
				t.Append("Title", res.Title)
				t.Append("Category", string(res.Category))
				t.Append("Icon", string(cat.Icons().For(res.Category)))
				t.Append("Type", res.Type)
				t.Append("Author", res.Author)
				t.Append("Read Time", res.ReadTime)
				t.Append("Rating", formatRating(res.Popularity))
				t.Append("Tags", strings.Join(res.Tags, ", "))
				t.Append("Featured", strconv.FormatBool(res.Featured))
				t.Append("Description", res.Description)
			})
		},
	}
}

func newVersionCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the catalog version token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cat.Version())
			return err
		},
	}
}

func resourceTable(t *tablewriter.Table, resources []models.Resource) {
	t.Header("ID", "Title", "Category", "Type", "Rating")
	for _, r := range resources {
		t.Append(strconv.Itoa(r.ID), r.Title, string(r.Category), r.Type, formatRating(r.Popularity))
	}
}

func formatRating(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// emptyTags replaces nil tag lists so JSON prints [] rather than null.
func emptyTags(rs []models.Resource) []models.Resource {
	for i := range rs {
		if rs[i].Tags == nil {
			rs[i].Tags = []string{}
		}
	}
	return rs
}
