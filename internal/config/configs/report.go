package configs

import (
	"fmt"
	"time"
)

// Report holds the knobs of the aggregation engine. Timezone is the single
// reporting timezone used for every day comparison. OfferAliases maps
// offer name variants to canonical labels ("X Banner Edge:X Banner,...");
// AliasFile may point to a TOML/YAML/JSON file with the same data, which
// is merged over the env values.
type Report struct {
	Timezone      string            `env:"TIMEZONE" envDefault:"America/Los_Angeles"`
	HorizonDays   int               `env:"HORIZON_DAYS" envDefault:"30"`
	OfferAliases  map[string]string `env:"OFFER_ALIASES"`
	OfferSuffixes []string          `env:"OFFER_SUFFIXES" envSeparator:"|"`
	KnownOffers   []string          `env:"KNOWN_OFFERS" envSeparator:"|"`
	FuzzyDistance int               `env:"FUZZY_DISTANCE" envDefault:"0"`
	AliasFile     string            `env:"ALIAS_FILE"`
	// Strict logs every malformed cell as a warning. Returned values are
	// the same in both modes.
	Strict bool `env:"STRICT" envDefault:"false"`
	// CacheResults memoises decoded datasets by content hash.
	CacheResults bool `env:"CACHE_RESULTS" envDefault:"false"`
}

// Location resolves Timezone.
func (c Report) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("report timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Horizon returns HorizonDays, defaulting to 30 when unset or invalid.
func (c Report) Horizon() int {
	if c.HorizonDays <= 0 {
		return 30
	}
	return c.HorizonDays
}
