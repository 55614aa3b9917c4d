// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/brandcraft/internal/secrets"
	"github.com/pdiddy/brandcraft/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the brand API and the static front end over HTTP",
	Long: `Serve starts the HTTP API:

  POST /generate-brand-names-local   names for a product_category
  POST /generate-logo-svg            logo markup (query parameters or JSON)
  POST /generate-color-palette       one curated palette
  GET  /contrast?color=              text color for a background
  GET  /healthz                      liveness

and serves index.html and /static/ assets from the static directory. When an
API key is configured (server.api_key or .secrets/brandcraft-api-key), the
generation routes require "Authorization: Bearer <key>" and the front end is
not served, since it sends no credentials.

The server shuts down gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8000)")
	serveCmd.Flags().String("static-dir", "", "directory holding index.html and static assets (default frontend)")

	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("server.static_dir", serveCmd.Flags().Lookup("static-dir"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	st, err := newStudio()
	if err != nil {
		return err
	}

	cfg := appConfig.Server
	cfg.APIKey = loadedSecrets.Get(secrets.APIKeyName, cfg.APIKey)
	if cfg.APIKey == "" {
		logger.Warn("no API key configured; generation routes are open")
	} else {
		logger.Info("API key configured; front end disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting server",
		zap.String("addr", cfg.Addr),
		zap.String("static_dir", cfg.StaticDir),
		zap.Bool("auth", cfg.APIKey != ""))
	return server.New(cfg, st, logger).Run(ctx)
}
