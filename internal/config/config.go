// Package config provides configuration management.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"fabric-price/core/types"
	"fabric-price/internal/errors"
	"fabric-price/internal/logging"
)

// EnvPrefix prefixes every environment override, e.g. FABRIC_HTTP_ADDR.
const EnvPrefix = "FABRIC"

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `mapstructure:"version"`

	// Pricing contains pricing configuration
	Pricing PricingConfig `mapstructure:"pricing"`

	// Output contains output configuration
	Output OutputConfig `mapstructure:"output"`

	// HTTP contains API server configuration
	HTTP HTTPConfig `mapstructure:"http"`

	// Logging contains logging configuration
	Logging logging.Config `mapstructure:"logging"`
}

// PricingConfig contains pricing-related settings
type PricingConfig struct {
	// Currency is the currency prices are reported in
	Currency types.Currency `mapstructure:"currency"`

	// StrictRanges rejects gsm/width outside the supported ranges
	StrictRanges bool `mapstructure:"strict_ranges"`

	// DefaultModel is used when a request names no model
	DefaultModel types.Model `mapstructure:"default_model"`

	// TableFile replaces the built-in catalog with an XLSX price table
	TableFile string `mapstructure:"table_file"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `mapstructure:"default_format"`

	// NoColor disables ANSI colors in cli output
	NoColor bool `mapstructure:"no_color"`
}

// HTTPConfig contains API server settings
type HTTPConfig struct {
	Addr            string        `mapstructure:"addr"`
	Metrics         bool          `mapstructure:"metrics"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Pricing: PricingConfig{
			Currency:     types.CurrencyVND,
			StrictRanges: true,
			DefaultModel: types.ModelTable,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
		},
		HTTP: HTTPConfig{
			Addr:            ":8080",
			Metrics:         true,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns $HOME/.fabric-price.yaml
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".fabric-price.yaml")
}

// Settings flattens the config into viper keys
func (c *Config) Settings() map[string]interface{} {
	return map[string]interface{}{
		"version":               c.Version,
		"pricing.currency":      string(c.Pricing.Currency),
		"pricing.strict_ranges": c.Pricing.StrictRanges,
		"pricing.default_model": string(c.Pricing.DefaultModel),
		"pricing.table_file":    c.Pricing.TableFile,
		"output.default_format": c.Output.DefaultFormat,
		"output.no_color":       c.Output.NoColor,
		"http.addr":             c.HTTP.Addr,
		"http.metrics":          c.HTTP.Metrics,
		"http.read_timeout":     c.HTTP.ReadTimeout.String(),
		"http.write_timeout":    c.HTTP.WriteTimeout.String(),
		"http.shutdown_timeout": c.HTTP.ShutdownTimeout.String(),
		"logging.level":         c.Logging.Level,
		"logging.format":        c.Logging.Format,
		"logging.output":        c.Logging.Output,
		"logging.development":   c.Logging.Development,
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range Default().Settings() {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load loads configuration from a file, then applies FABRIC_* env overrides.
// An empty path or a missing file yields defaults plus env.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, errors.Config("failed to read "+path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Config("failed to stat "+path, err)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errors.Config("failed to decode configuration", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	switch c.Pricing.Currency {
	case types.CurrencyVND, types.CurrencyUSD:
	default:
		return errors.Newf(errors.TypeConfig, "unsupported currency %q", c.Pricing.Currency)
	}
	if _, err := types.ParseModel(string(c.Pricing.DefaultModel)); err != nil {
		return errors.Wrap(errors.TypeConfig, "invalid pricing.default_model", err)
	}
	return nil
}

// Save saves configuration to a file; the extension picks the format.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Config("failed to create config directory", err)
	}

	v := viper.New()
	for key, value := range c.Settings() {
		v.Set(key, value)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return errors.Config("failed to write "+path, err)
	}
	return nil
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
