package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newKeysCommand(global *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List the header keys of the directive catalog in resolution order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := global.catalog()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "text":
				for _, e := range catalog.Entries() {
					fmt.Fprintf(out, "%s\t%s\n", e.Key, e.Variant)
				}
				return nil
			case "json":
				return json.NewEncoder(out).Encode(catalog.Keys())
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(catalog); err != nil {
					return fmt.Errorf("encode catalog: %w", err)
				}
				return enc.Close()
			default:
				return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", "text", "output format: text, json or yaml")
	return cmd
}
