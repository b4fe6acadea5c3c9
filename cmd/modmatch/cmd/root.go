// Package cmd provides CLI command implementations
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ChrisMcGann/modmatch/internal/config"
	"github.com/ChrisMcGann/modmatch/pkg/core"
)

var (
	// Persistent flags
	configFile string
	heavyMods  []string
)

var rootCmd = &cobra.Command{
	Use:   "modmatch",
	Short: "modmatch - modified peptide sequence matcher",
	Long: `modmatch interprets the modification annotations of peptide sequences such as
PEPM[Oxidation]K, AC[57.02146]DEFK{8.014199} or PEPS(unimod:21)K and reconciles
them with a UniMod catalog and the configured static and isotope-label modifications.

Annotations:
- [..] and (..) mark light (structural) modifications, {..} heavy labels
- the content is a mass delta, a modification name or unimod:<id>
- annotations that cannot be interpreted are reported once per batch`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(simplifyCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(catalogCmd)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default .modmatch.yaml)")
	flags.String("catalog", "", "Modification catalog file (.csv, .toml, .yaml) merged over the built-in UniMod subset")
	flags.String("locale", "", "Locale numeric annotations are written in, e.g. de-DE")
	flags.String("decimal-separator", "", "Decimal separator of numeric annotations (overrides --locale)")
	flags.StringSlice("static", nil, "Static (structural) modification names")
	flags.StringArrayVar(&heavyMods, "heavy", nil, "Isotope label modification as label=Name (repeatable)")
	flags.Bool("strict", false, "Track sequences the settings cannot explain instead of resolving them against the catalog")
	flags.BoolP("verbose", "v", false, "verbose output")

	bindFlags(flags, map[string]string{
		"catalog":           "catalog",
		"locale":            "locale",
		"decimal-separator": "decimal_separator",
		"static":            "static_mods",
		"strict":            "strict_settings",
		"verbose":           "verbose",
	})
}

// bindFlags lets each flag override the config key it maps to.
func bindFlags(fs *pflag.FlagSet, keys map[string]string) {
	for flag, key := range keys {
		if err := viper.BindPFlag(key, fs.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", flag, err))
		}
	}
}

func initConfig() {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".modmatch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("MODMATCH")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// runtime is everything a command needs to match sequences.
type runtime struct {
	cfg      config.Config
	catalog  *core.Catalog
	settings *core.Settings
	sep      string
	logger   *slog.Logger
}

func loadRuntime() (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if len(heavyMods) > 0 {
		cfg.HeavyMods, err = parseHeavyMods(heavyMods)
		if err != nil {
			return nil, err
		}
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cat, err := cfg.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	settings, err := cfg.Settings(cat)
	if err != nil {
		return nil, fmt.Errorf("invalid modification settings: %w", err)
	}
	sep, err := cfg.Separator()
	if err != nil {
		return nil, err
	}

	logger.Debug("configuration loaded",
		"config", viper.ConfigFileUsed(),
		"catalog_entries", cat.Len(),
		"static_mods", len(settings.Static),
		"label_types", strings.Join(settings.LabelTypes(), ","),
		"decimal_separator", sep)

	return &runtime{cfg: cfg, catalog: cat, settings: settings, sep: sep, logger: logger}, nil
}

// parseHeavyMods turns "label=Name" flag values into a label type map.
func parseHeavyMods(values []string) (map[string][]string, error) {
	out := make(map[string][]string)
	for _, v := range values {
		label, name, ok := strings.Cut(v, "=")
		label, name = strings.TrimSpace(label), strings.TrimSpace(name)
		if !ok || label == "" || name == "" {
			return nil, fmt.Errorf("invalid --heavy value '%s', expected label=Name", v)
		}
		out[label] = append(out[label], name)
	}
	return out, nil
}
