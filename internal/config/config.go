// Package config loads the dispatchiq configuration from
// ~/.dispatchiq/config.yaml, with DISPATCHIQ_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the resolved application configuration.
type Config struct {
	DataDir  string `mapstructure:"data_dir"`
	OrderIDs string `mapstructure:"order_ids"` // "sequential" or "random"
	Log      Log    `mapstructure:"log"`
	Org      Org    `mapstructure:"org"`
}

// Log controls logger construction.
type Log struct {
	Level  string `mapstructure:"level"`  // zap level name
	Format string `mapstructure:"format"` // "console" or "json"
}

// Org carries shop identity stamped into fresh registries.
type Org struct {
	Name     string `mapstructure:"name"`
	Currency string `mapstructure:"currency"`
}

// Defaults returns the configuration used when no file exists.
func Defaults() Config {
	return Config{
		DataDir:  defaultDataDir(),
		OrderIDs: "sequential",
		Log: Log{
			Level:  "info",
			Format: "console",
		},
		Org: Org{
			Name:     "North Texas Fleet & Refrigeration",
			Currency: "USD",
		},
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".dispatchiq"
	}
	return filepath.Join(home, ".dispatchiq")
}

// Load reads the config file if present, layering environment overrides on
// the defaults. A missing file is not an error.
func Load() (Config, error) {
	return LoadWith(viper.New(), "")
}

// LoadWith loads configuration through the given viper instance. An explicit
// cfgFile overrides the search path; tests pass their own instance and path.
func LoadWith(v *viper.Viper, cfgFile string) (Config, error) {
	defaults := Defaults()
	v.SetDefault("data_dir", defaults.DataDir)
	v.SetDefault("order_ids", defaults.OrderIDs)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("org.name", defaults.Org.Name)
	v.SetDefault("org.currency", defaults.Org.Currency)

	v.SetEnvPrefix("DISPATCHIQ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(defaultDataDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.OrderIDs != "sequential" && cfg.OrderIDs != "random" {
		return Config{}, fmt.Errorf("invalid order_ids %q: want sequential or random", cfg.OrderIDs)
	}

	return cfg, nil
}

// RegistryPath returns the snapshot document path under the data dir.
func (c Config) RegistryPath() string {
	return filepath.Join(c.DataDir, "registry.json")
}

// DatabasePath returns the snapshot history database path under the data dir.
func (c Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "dispatchiq.db")
}
