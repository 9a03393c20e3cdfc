package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/okayjack/examples/polls"
	"github.com/dmitrymomot/okayjack/internal/server"
	"github.com/dmitrymomot/okayjack/middlewares"
)

const sentryFlushTimeout = 2 * time.Second

func newServeCommand(global *globalOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the polls demo server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := global.load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}

			catalog, err := cfg.Catalog()
			if err != nil {
				return err
			}

			log := cfg.Logger("polls", middlewares.RequestIDExtractor())

			router, err := polls.NewRouter(polls.NewSeededStore(),
				polls.WithLogger(log),
				polls.WithCatalog(catalog),
				polls.WithErrorStatusRewrite(cfg.RewriteErrorStatus),
			)
			if err != nil {
				return err
			}

			log.Info("directive catalog loaded",
				slog.Int("keys", catalog.Len()),
				slog.String("path", cfg.CatalogPath),
			)

			return server.Run(cmd.Context(), router,
				server.WithAddr(cfg.Addr),
				server.WithLogger(log),
				server.WithShutdownTimeout(cfg.ShutdownTimeout),
				server.WithShutdownHook(func(context.Context) error {
					sentry.Flush(sentryFlushTimeout)
					return nil
				}),
			)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: $ADDR or :8080)")
	return cmd
}
