package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"perf-bi/internal/config/configs"
)

// AliasFile is the on-disk form of the offer normalisation table:
//
//	fuzzy_distance = 2
//	suffixes = [" Edge"]
//	offers = ["Solar Banner", "Auto Quotes"]
//
//	[aliases]
//	"Solar Banner Edge" = "Solar Banner"
//
// Any format viper understands (TOML, YAML, JSON) may be used.
type AliasFile struct {
	Aliases       map[string]string
	Suffixes      []string
	Offers        []string
	FuzzyDistance int
}

// LoadAliasFile reads an alias table from path.
func LoadAliasFile(path string) (AliasFile, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return AliasFile{}, fmt.Errorf("read alias file: %w", err)
	}
	return AliasFile{
		// viper lowercases map keys; alias lookup is case-insensitive anyway.
		Aliases:       v.GetStringMapString("aliases"),
		Suffixes:      v.GetStringSlice("suffixes"),
		Offers:        v.GetStringSlice("offers"),
		FuzzyDistance: v.GetInt("fuzzy_distance"),
	}, nil
}

// MergeInto overlays the file onto r. File aliases win over env aliases
// with the same variant; suffixes and offers are appended.
func (f AliasFile) MergeInto(r configs.Report) configs.Report {
	merged := make(map[string]string, len(r.OfferAliases)+len(f.Aliases))
	for k, v := range r.OfferAliases {
		merged[k] = v
	}
	for k, v := range f.Aliases {
		for existing := range merged {
			if strings.EqualFold(existing, k) {
				delete(merged, existing)
			}
		}
		merged[k] = v
	}
	r.OfferAliases = merged
	r.OfferSuffixes = append(append([]string(nil), r.OfferSuffixes...), f.Suffixes...)
	r.KnownOffers = append(append([]string(nil), r.KnownOffers...), f.Offers...)
	if f.FuzzyDistance > 0 {
		r.FuzzyDistance = f.FuzzyDistance
	}
	return r
}
