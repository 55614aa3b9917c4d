// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the brandcraft CLI. Each brand
// operation is a subcommand; serve exposes the same operations over HTTP.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/brandcraft/internal/catalog"
	"github.com/pdiddy/brandcraft/internal/entropy"
	"github.com/pdiddy/brandcraft/internal/logging"
	"github.com/pdiddy/brandcraft/internal/secrets"
	"github.com/pdiddy/brandcraft/internal/studio"
	"github.com/pdiddy/brandcraft/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const secretsDir = ".secrets/"

var (
	// appConfig is resolved from defaults, config file, env, and flags in
	// PersistentPreRunE.
	appConfig types.Config

	// loadedSecrets holds credentials read from .secrets/ at startup.
	loadedSecrets secrets.Secrets

	logger = zap.NewNop()
)

// rootCmd is the base command for the brandcraft CLI.
var rootCmd = &cobra.Command{
	Use:   "brandcraft",
	Short: "Generate brand names, logos, and color palettes",
	Long: `brandcraft generates starter brand identities for small businesses:
candidate names built from per-category word tables, simple vector logos,
curated three-color palettes, and readable text colors for any background.

Run a single operation with names, logo, palette, or contrast, or start the
HTTP API and front end with serve.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		appConfig = cfg

		l, err := logging.New(cfg.Log)
		if err != nil {
			return err
		}
		logger = l

		s, err := secrets.Load(secretsDir, logger)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			logger.Debug("loaded secrets", zap.Strings("names", s.Names()))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./brandcraft.yaml or ~/.config/brandcraft/config.yaml)")
	rootCmd.PersistentFlags().String("catalog", "", "YAML file overriding the built-in name, typography, and palette tables")
	rootCmd.PersistentFlags().Uint64("seed", 0, "seed for reproducible output (0 picks a random seed)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	_ = viper.BindPFlag("catalog_file", rootCmd.PersistentFlags().Lookup("catalog"))
	_ = viper.BindPFlag("names.seed", rootCmd.PersistentFlags().Lookup("seed"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	// .env only fills variables that are not already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: reading .env: %v\n", err)
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("brandcraft")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "brandcraft"))
		}
	}

	setDefaults(viper.GetViper(), types.DefaultConfig())
	viper.SetEnvPrefix("BRANDCRAFT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	_ = viper.BindEnv("server.api_key", "BRANDCRAFT_SERVER_API_KEY", "BRANDCRAFT_API_KEY")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setDefaults registers every config key so env overrides reach Unmarshal.
func setDefaults(v *viper.Viper, d types.Config) {
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.static_dir", d.Server.StaticDir)
	v.SetDefault("server.api_key", d.Server.APIKey)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.idle_timeout", d.Server.IdleTimeout)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("names.max_attempts", d.Names.MaxAttempts)
	v.SetDefault("names.seed", d.Names.Seed)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("catalog_file", d.CatalogFile)
}

func resolveConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding configuration: %w", err)
	}
	return cfg, nil
}

// newStudio builds a Studio from the resolved configuration.
func newStudio() (*studio.Studio, error) {
	cat := catalog.Default()
	if appConfig.CatalogFile != "" {
		c, err := catalog.Load(appConfig.CatalogFile)
		if err != nil {
			return nil, err
		}
		cat = c
		logger.Debug("catalog loaded", zap.String("path", appConfig.CatalogFile))
	}
	return studio.New(cat, entropy.New(appConfig.Names.Seed), appConfig.Names, logger), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
