package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/okayjack/internal/config"
	"github.com/dmitrymomot/okayjack/pkg/directive"
)

var ErrUnsupportedFormat = errors.New("unsupported output format")

// globalOptions are shared by every subcommand.
type globalOptions struct {
	catalogPath string
	envFiles    []string
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "okayjack",
		Short: "Resolve htmx success/error directives and serve the polls demo",
		Long: `okayjack turns hx-success-*, hx-error-* and custom hx-* attributes found on
an element or its ancestors into the request headers the Okayjack middleware
reads on the server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "YAML directive catalog (default: built-in catalog, or $OKAYJACK_CATALOG)")
	root.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", nil, "dotenv files to load before reading the environment")

	root.AddCommand(
		newResolveCommand(opts),
		newKeysCommand(opts),
		newServeCommand(opts),
	)
	return root
}

// load reads configuration and applies flag overrides.
func (o *globalOptions) load() (config.Config, error) {
	cfg, err := config.Load(o.envFiles...)
	if err != nil {
		return config.Config{}, err
	}
	if o.catalogPath != "" {
		cfg.CatalogPath = o.catalogPath
	}
	return cfg, nil
}

func (o *globalOptions) catalog() (directive.Catalog, error) {
	cfg, err := o.load()
	if err != nil {
		return directive.Catalog{}, err
	}
	return cfg.Catalog()
}
