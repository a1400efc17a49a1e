package pagebuilder

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables that override the
// config file, e.g. PAGEBUILDER_ADDR.
const EnvPrefix = "PAGEBUILDER_"

// Config holds all configuration for a pagebuilder server.
type Config struct {
	Addr         string `koanf:"addr"`          // Listen address (default ":3000")
	DatabasePath string `koanf:"database_path"` // SQLite path (default "data/pagebuilder.db")

	SessionSecret string `koanf:"session_secret"` // Required: session encryption secret
	CookieSecure  bool   `koanf:"cookie_secure"`  // Set true for HTTPS

	SaveInterval time.Duration `koanf:"save_interval"` // Autosave period (default 10s)
	IdleTTL      time.Duration `koanf:"idle_ttl"`      // Evict unused workspaces after (default 30m)
	NoticeTTL    time.Duration `koanf:"notice_ttl"`    // Notification lifetime (default 3s)

	// StrictChoices rejects theme colors and SEO categories that the editor
	// does not offer.
	StrictChoices bool `koanf:"strict_choices"`

	ExportLimit  int           `koanf:"export_limit"`  // Exports per client per window (default 10)
	ExportWindow time.Duration `koanf:"export_window"` // (default 1m)
}

func (c *Config) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/pagebuilder.db"
	}
	if c.SaveInterval == 0 {
		c.SaveInterval = 10 * time.Second
	}
	if c.IdleTTL == 0 {
		c.IdleTTL = 30 * time.Minute
	}
	if c.NoticeTTL == 0 {
		c.NoticeTTL = 3 * time.Second
	}
	if c.ExportLimit == 0 {
		c.ExportLimit = 10
	}
	if c.ExportWindow == 0 {
		c.ExportWindow = time.Minute
	}
}

// DefaultConfig returns a Config with every optional field filled in.
func DefaultConfig() Config {
	var c Config
	c.setDefaults()
	return c
}

// LoadConfig reads configuration from the YAML file at path, if it exists,
// then overlays PAGEBUILDER_* environment variables. An empty path skips
// the file.
func LoadConfig(path string) (Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return cfg, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return cfg, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshalling config: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

// Validate checks the values that have no usable default.
func (c Config) Validate() error {
	var errs []error
	if c.SessionSecret == "" {
		errs = append(errs, errors.New("session_secret is required"))
	}
	if c.SaveInterval < 0 {
		errs = append(errs, fmt.Errorf("save_interval must be positive, got %s", c.SaveInterval))
	}
	if c.ExportLimit < 0 {
		errs = append(errs, fmt.Errorf("export_limit must not be negative, got %d", c.ExportLimit))
	}
	return errors.Join(errs...)
}

// fileConfig is the on-disk shape written by Save. Durations are kept as
// strings so the file stays readable and loads back through koanf.
type fileConfig struct {
	Addr          string `yaml:"addr"`
	DatabasePath  string `yaml:"database_path"`
	SessionSecret string `yaml:"session_secret"`
	CookieSecure  bool   `yaml:"cookie_secure"`
	SaveInterval  string `yaml:"save_interval"`
	IdleTTL       string `yaml:"idle_ttl"`
	NoticeTTL     string `yaml:"notice_ttl"`
	StrictChoices bool   `yaml:"strict_choices"`
	ExportLimit   int    `yaml:"export_limit"`
	ExportWindow  string `yaml:"export_window"`
}

// Save writes the configuration to the given YAML file path.
func (c Config) Save(path string) error {
	data, err := yamlv3.Marshal(fileConfig{
		Addr:          c.Addr,
		DatabasePath:  c.DatabasePath,
		SessionSecret: c.SessionSecret,
		CookieSecure:  c.CookieSecure,
		SaveInterval:  c.SaveInterval.String(),
		IdleTTL:       c.IdleTTL.String(),
		NoticeTTL:     c.NoticeTTL.String(),
		StrictChoices: c.StrictChoices,
		ExportLimit:   c.ExportLimit,
		ExportWindow:  c.ExportWindow.String(),
	})
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithClock replaces the wall clock used for autosave, notifications and
// rate limiting.
func WithClock(clock clockwork.Clock) Option {
	return func(a *App) {
		a.clock = clock
	}
}
