package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/okayjack/pkg/directive"
	"github.com/dmitrymomot/okayjack/pkg/dom"
)

var ErrElementNotFound = errors.New("element not found")

func newResolveCommand(global *globalOptions) *cobra.Command {
	var (
		file   string
		id     string
		format string
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the headers a request triggered by an element would carry",
		Example: `  okayjack resolve --file page.html --id vote-form
  curl -s localhost:8080/polls/1 | okayjack resolve --file - --id vote-form --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "text" && format != "json" {
				return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
			}

			catalog, err := global.catalog()
			if err != nil {
				return err
			}

			in, closeFn, err := openInput(cmd, file)
			if err != nil {
				return err
			}
			defer closeFn()

			headers, err := resolveDocument(in, id, catalog)
			if err != nil {
				return err
			}
			return writeHeaders(cmd.OutOrStdout(), headers, format)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", `HTML document, "-" for stdin`)
	cmd.Flags().StringVar(&id, "id", "", "id of the triggering element")
	cmd.Flags().StringVarP(&format, "format", "o", "text", "output format: text or json")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func openInput(cmd *cobra.Command, file string) (io.Reader, func(), error) {
	if file == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, nil, fmt.Errorf("open document: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func resolveDocument(r io.Reader, id string, catalog directive.Catalog) (directive.Headers, error) {
	root, err := dom.Parse(r)
	if err != nil {
		return nil, err
	}

	el, ok := dom.FindByID(root, id)
	if !ok {
		return nil, fmt.Errorf("%w: #%s", ErrElementNotFound, id)
	}

	headers := directive.Headers{}
	directive.Resolve(el, headers, catalog)
	return headers, nil
}

func writeHeaders(w io.Writer, headers directive.Headers, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(headers)
	}

	for _, k := range headers.SortedKeys() {
		if _, err := fmt.Fprintf(w, "%s: %s\n", k, headers[k]); err != nil {
			return err
		}
	}
	return nil
}
