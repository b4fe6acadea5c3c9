package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/ChrisMcGann/modmatch/pkg/core"
	"github.com/ChrisMcGann/modmatch/pkg/sequence"
)

// Config holds all runtime configuration for a matching run.
// Values are populated from .modmatch.yaml, MODMATCH_* env vars, and CLI flags.
type Config struct {
	Catalog          string              `mapstructure:"catalog"`
	DecimalSeparator string              `mapstructure:"decimal_separator"`
	Locale           string              `mapstructure:"locale"`
	StaticMods       []string            `mapstructure:"static_mods"`
	HeavyMods        map[string][]string `mapstructure:"heavy_mods"`
	StrictSettings   bool                `mapstructure:"strict_settings"`
	Workers          int                 `mapstructure:"workers"`
	KeepGoing        bool                `mapstructure:"keep_going"`
	Verbose          bool                `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("catalog", "")
	viper.SetDefault("decimal_separator", "")
	viper.SetDefault("locale", "")
	viper.SetDefault("static_mods", []string{})
	viper.SetDefault("heavy_mods", map[string][]string{})
	viper.SetDefault("strict_settings", false)
	viper.SetDefault("workers", 1)
	viper.SetDefault("keep_going", false)
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.Workers < 1 {
		return Config{}, fmt.Errorf("workers must be at least 1, got %d", cfg.Workers)
	}
	return cfg, nil
}

// Separator returns the decimal separator numeric annotations are written
// with: the explicit override, else the locale's, else ".".
func (c Config) Separator() (string, error) {
	if c.DecimalSeparator != "" {
		return c.DecimalSeparator, nil
	}
	return sequence.LocaleDecimalSeparator(c.Locale)
}

// LoadCatalog returns the built-in catalog with the configured catalog file
// merged over it.
func (c Config) LoadCatalog() (*core.Catalog, error) {
	cat := core.DefaultCatalog()
	if c.Catalog != "" {
		if err := cat.LoadFile(c.Catalog); err != nil {
			return nil, err
		}
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

// Settings resolves the configured modification names against cat.
func (c Config) Settings(cat *core.Catalog) (*core.Settings, error) {
	return core.ResolveSettings(cat, c.StaticMods, c.HeavyMods)
}
