package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perf-bi/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, configs.StoreMemory, cfg.Store.Kind())
	assert.Equal(t, "America/Los_Angeles", cfg.Report.Timezone)
	assert.Equal(t, 30, cfg.Report.Horizon())
	assert.Equal(t, 3, cfg.Sheets.Retries)
	assert.Equal(t, "perf-bi.db", cfg.SQLite.Path)
	assert.Equal(t, "localhost:5432", cfg.Psql.Addr.Host)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("STORE_DRIVER", "sqlite3")
	t.Setenv("REPORT_TIMEZONE", "UTC")
	t.Setenv("REPORT_HORIZON_DAYS", "-1")
	t.Setenv("REPORT_OFFER_ALIASES", "SB:Solar Banner,AQ:Auto Quotes")
	t.Setenv("REPORT_OFFER_SUFFIXES", " Edge| v2")
	t.Setenv("SHEETS_TIMEOUT", "2s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, configs.StoreSQLite, cfg.Store.Kind())
	assert.Equal(t, 30, cfg.Report.Horizon())
	assert.Equal(t, map[string]string{"SB": "Solar Banner", "AQ": "Auto Quotes"}, cfg.Report.OfferAliases)
	assert.Equal(t, []string{" Edge", " v2"}, cfg.Report.OfferSuffixes)
	assert.Equal(t, 2*time.Second, cfg.Sheets.Timeout)

	loc, err := cfg.Report.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestLoadRejectsBadTimezone(t *testing.T) {
	t.Setenv("REPORT_TIMEZONE", "Mars/Olympus_Mons")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadMergesAliasFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
fuzzy_distance = 2
suffixes = [" Edge"]
offers = ["Debt Relief"]

[aliases]
"AQ" = "Auto Quotes Pro"
"HW" = "Home Warranty"
`), 0o600))

	t.Setenv("REPORT_ALIAS_FILE", path)
	t.Setenv("REPORT_OFFER_ALIASES", "AQ:Auto Quotes,SB:Solar Banner")
	t.Setenv("REPORT_KNOWN_OFFERS", "Solar Banner")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Report.FuzzyDistance)
	assert.Equal(t, []string{" Edge"}, cfg.Report.OfferSuffixes)
	assert.Equal(t, []string{"Solar Banner", "Debt Relief"}, cfg.Report.KnownOffers)
	assert.Equal(t, "Solar Banner", cfg.Report.OfferAliases["SB"])
	assert.Equal(t, "Auto Quotes Pro", cfg.Report.OfferAliases["aq"])
	assert.Equal(t, "Home Warranty", cfg.Report.OfferAliases["hw"])
	_, shadowed := cfg.Report.OfferAliases["AQ"]
	assert.False(t, shadowed)
}

func TestLoadAliasFileMissing(t *testing.T) {
	_, err := LoadAliasFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoggerLevels(t *testing.T) {
	for in, want := range map[string]string{"debug": "DEBUG", "WARN": "WARN", "err": "ERROR", "bogus": "INFO"} {
		assert.Equal(t, want, configs.Logger{Level: in}.SlogLevel().String(), in)
	}
}
