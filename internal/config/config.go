// Package config loads runtime settings for the okayjack binaries from the
// environment and optional .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/okayjack/pkg/directive"
	"github.com/dmitrymomot/okayjack/pkg/logger"
)

// DefaultEnvFile is read by Load when no files are given. A missing default
// file is not an error.
const DefaultEnvFile = ".env"

// Config holds settings shared by the CLI and the demo server.
type Config struct {
	Addr      string `env:"ADDR" envDefault:":8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	// CatalogPath points to a YAML directive catalog. Empty means the default catalog.
	CatalogPath        string        `env:"OKAYJACK_CATALOG"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	RewriteErrorStatus bool          `env:"REWRITE_ERROR_STATUS" envDefault:"false"`

	Sentry logger.SentryConfig
}

// Load reads the given .env files (DefaultEnvFile when none) and parses the
// process environment on top of them. Process variables win over file values.
func Load(files ...string) (Config, error) {
	fileEnv, err := readEnvFiles(files)
	if err != nil {
		return Config{}, err
	}

	environ := fileEnv
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			environ[k] = v
		}
	}

	return Parse(environ)
}

// Parse builds a Config from an explicit variable set.
func Parse(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.ShutdownTimeout <= 0 {
		return Config{}, fmt.Errorf("parse config: SHUTDOWN_TIMEOUT must be positive, got %s", cfg.ShutdownTimeout)
	}
	return cfg, nil
}

func readEnvFiles(files []string) (map[string]string, error) {
	if len(files) == 0 {
		vars, err := godotenv.Read(DefaultEnvFile)
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", DefaultEnvFile, err)
		}
		return vars, nil
	}

	vars, err := godotenv.Read(files...)
	if err != nil {
		return nil, fmt.Errorf("read env files: %w", err)
	}
	return vars, nil
}

// Catalog returns the directive catalog named by CatalogPath, or the default
// catalog when the path is empty.
func (c Config) Catalog() (directive.Catalog, error) {
	if c.CatalogPath == "" {
		return directive.DefaultCatalog(), nil
	}

	f, err := os.Open(c.CatalogPath)
	if err != nil {
		return directive.Catalog{}, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	cat, err := directive.LoadCatalog(f)
	if err != nil {
		return directive.Catalog{}, fmt.Errorf("load catalog %s: %w", c.CatalogPath, err)
	}
	return cat, nil
}

// Logger builds the application logger. Records go to Sentry as well when a
// DSN is configured.
func (c Config) Logger(component string, extractors ...logger.ContextExtractor) *slog.Logger {
	return logger.NewWithSentry(logger.Config{
		Component: component,
		Format:    logger.ParseFormat(c.LogFormat),
		Level:     logger.ParseLevel(c.LogLevel),
	}, c.Sentry, extractors...)
}
