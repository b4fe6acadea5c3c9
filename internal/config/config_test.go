package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper() {
	viper.Reset()
}

func TestLoad_Defaults(t *testing.T) {
	resetViper()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Catalog", cfg.Catalog, ""},
		{"DecimalSeparator", cfg.DecimalSeparator, ""},
		{"Locale", cfg.Locale, ""},
		{"StrictSettings", cfg.StrictSettings, false},
		{"Workers", cfg.Workers, 1},
		{"KeepGoing", cfg.KeepGoing, false},
		{"Verbose", cfg.Verbose, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{
			name:   "catalog",
			envKey: "MODMATCH_CATALOG",
			envVal: "/etc/mods.toml",
			field:  func(c Config) any { return c.Catalog },
			want:   "/etc/mods.toml",
		},
		{
			name:   "locale",
			envKey: "MODMATCH_LOCALE",
			envVal: "de-DE",
			field:  func(c Config) any { return c.Locale },
			want:   "de-DE",
		},
		{
			name:   "workers",
			envKey: "MODMATCH_WORKERS",
			envVal: "4",
			field:  func(c Config) any { return c.Workers },
			want:   4,
		},
		{
			name:   "strict_settings",
			envKey: "MODMATCH_STRICT_SETTINGS",
			envVal: "true",
			field:  func(c Config) any { return c.StrictSettings },
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper()
			viper.SetEnvPrefix("MODMATCH")
			viper.AutomaticEnv()

			t.Setenv(tt.envKey, tt.envVal)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			got := tt.field(cfg)
			if got != tt.want {
				t.Errorf("%s: got %v (%T), want %v (%T)", tt.name, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	resetViper()

	path := filepath.Join(t.TempDir(), ".modmatch.yaml")
	data := []byte(`static_mods:
  - Carbamidomethyl
heavy_mods:
  heavy:
    - Label:13C(6)15N(2)
    - Label:13C(6)15N(4)
decimal_separator: ","
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig() error = %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"Carbamidomethyl"}, cfg.StaticMods); diff != "" {
		t.Errorf("StaticMods mismatch (-want +got):\n%s", diff)
	}
	wantHeavy := map[string][]string{"heavy": {"Label:13C(6)15N(2)", "Label:13C(6)15N(4)"}}
	if diff := cmp.Diff(wantHeavy, cfg.HeavyMods); diff != "" {
		t.Errorf("HeavyMods mismatch (-want +got):\n%s", diff)
	}

	sep, err := cfg.Separator()
	if err != nil || sep != "," {
		t.Errorf("Separator() = %q, %v, want \",\"", sep, err)
	}

	cat, err := cfg.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	settings, err := cfg.Settings(cat)
	if err != nil {
		t.Fatalf("Settings() error = %v", err)
	}
	if len(settings.Static) != 1 || len(settings.Heavy["heavy"]) != 2 {
		t.Errorf("Settings() = %+v", settings)
	}
}

func TestLoad_InvalidWorkers(t *testing.T) {
	resetViper()
	viper.Set("workers", 0)
	if _, err := Load(); err == nil {
		t.Error("Load() with zero workers succeeded")
	}
}

func TestSeparatorFromLocale(t *testing.T) {
	tests := []struct {
		cfg  Config
		want string
	}{
		{Config{}, "."},
		{Config{Locale: "en-US"}, "."},
		{Config{Locale: "de-DE"}, ","},
		{Config{Locale: "de-DE", DecimalSeparator: "."}, "."},
	}
	for _, tt := range tests {
		got, err := tt.cfg.Separator()
		if err != nil {
			t.Fatalf("Separator() error = %v", err)
		}
		if got != tt.want {
			t.Errorf("Separator(%+v) = %q, want %q", tt.cfg, got, tt.want)
		}
	}
}
