package cli

import (
	"fmt"
	"os"

	catalogstore "github.com/dalemusser/techhub/internal/app/store/catalog"
	"github.com/spf13/cobra"
)

// options holds the global flags shared by every subcommand.
type options struct {
	output      string
	catalogFile string
}

// NewRootCommand builds the catalogctl command tree. Each call returns a
// fresh tree, so tests can run commands without shared flag state.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "catalogctl",
		Short: "Query the TechHub resource catalog",
		Long: `catalogctl runs the same category and search filters as the TechHub
browse page against the compiled-in catalog, or against a catalog YAML file
given with --catalog, and prints the results as a table, JSON or YAML.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := parseFormat(opts.output)
			return err
		},
	}

	root.PersistentFlags().StringVarP(&opts.output, "output", "o", string(formatTable), "output format (table, json, yaml)")
	root.PersistentFlags().StringVar(&opts.catalogFile, "catalog", "", "catalog YAML file (default is the compiled-in catalog)")

	root.AddCommand(
		newCategoriesCommand(opts),
		newSearchCommand(opts),
		newFeaturedCommand(opts),
		newShowCommand(opts),
		newVersionCommand(opts),
	)
	return root
}

// Execute runs the command tree. It is called by main.main().
func Execute() error {
	return NewRootCommand().Execute()
}

// loadCatalog returns the catalog selected by --catalog.
func (o *options) loadCatalog() (*catalogstore.Catalog, error) {
	if o.catalogFile == "" {
		return catalogstore.Default()
	}
	data, err := os.ReadFile(o.catalogFile)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	cat, err := catalogstore.Load(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", o.catalogFile, err)
	}
	return cat, nil
}
