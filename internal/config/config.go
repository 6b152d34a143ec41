package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"perf-bi/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the configs package for defaults.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is attached
	// to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server (HTTP_*).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_*).
	Log configs.Logger `envPrefix:"LOG_"`

	// Store selects the notes/flags backend (STORE_*).
	Store configs.Store `envPrefix:"STORE_"`

	// Psql configures the PostgreSQL connection (PSQL_*).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// SQLite configures the file-backed store (SQLITE_*).
	SQLite configs.SQLite `envPrefix:"SQLITE_"`

	// Sheets configures the spreadsheet data API (SHEETS_*).
	Sheets configs.Sheets `envPrefix:"SHEETS_"`

	// Report configures the aggregation engine (REPORT_*).
	Report configs.Report `envPrefix:"REPORT_"`
}

// Load reads configuration from environment variables into a Config. When
// REPORT_ALIAS_FILE is set the file is read and merged into the report
// section. The reporting timezone is validated eagerly so a typo fails at
// startup rather than on the first request.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if cfg.Report.AliasFile != "" {
		af, err := LoadAliasFile(cfg.Report.AliasFile)
		if err != nil {
			return cfg, err
		}
		cfg.Report = af.MergeInto(cfg.Report)
	}
	if _, err := cfg.Report.Location(); err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
