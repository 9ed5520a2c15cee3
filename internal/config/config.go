// Package config loads wordfreq settings from defaults, an optional config
// file, WORDFREQ_* environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is wrapped by every validation error.
var ErrInvalidConfig = errors.New("invalid config")

const envPrefix = "WORDFREQ"

// Sort orders accepted by Config.Sort.
const (
	SortByCount = "count"
	SortByWord  = "word"
)

// Config holds the options of a counting run.
type Config struct {
	// Words shorter than this many runes are skipped
	MinLength int `mapstructure:"min_length"`

	// Fold words to a common case before counting
	FoldCase bool `mapstructure:"fold_case"`

	// Words never counted; compared after folding
	Stopwords []string `mapstructure:"stopwords"`

	// Words deleted from the totals before reporting
	Remove []string `mapstructure:"remove"`

	// Number of rows printed when sorting by count, 0 prints all
	Top int `mapstructure:"top"`

	// Report order, "count" or "word"
	Sort string `mapstructure:"sort"`

	// Append a distinct/total summary line to the report
	Summary bool `mapstructure:"summary"`

	// Check tree invariants after counting
	Verify bool `mapstructure:"verify"`

	// Log level spec, see logging.InitFromSpec
	LogLevel string `mapstructure:"log_level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		MinLength: 1,
		FoldCase:  true,
		Top:       0,
		Sort:      SortByCount,
		LogLevel:  "warning",
	}
}

// New returns a viper instance seeded with the defaults and bound to the
// WORDFREQ_* environment.
func New() *viper.Viper {
	v := viper.New()
	d := DefaultConfig()
	v.SetDefault("min_length", d.MinLength)
	v.SetDefault("fold_case", d.FoldCase)
	v.SetDefault("top", d.Top)
	v.SetDefault("sort", d.Sort)
	v.SetDefault("summary", d.Summary)
	v.SetDefault("verify", d.Verify)
	v.SetDefault("log_level", d.LogLevel)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// List keys have no default, so bind them to be seen by Unmarshal.
	_ = v.BindEnv("stopwords")
	_ = v.BindEnv("remove")
	return v
}

// BindFlags makes flags override file and environment values. Flag names use
// dashes where config keys use underscores.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		if bindErr := v.BindPFlag(key, f); bindErr != nil {
			err = fmt.Errorf("bind flag %s: %w", f.Name, bindErr)
		}
	})
	return err
}

// Load reads the config file at path, if any, and decodes the merged
// settings of v.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks option ranges.
func (c *Config) Validate() error {
	if c.MinLength < 1 {
		return fmt.Errorf("%w: min_length must be at least 1, got %d", ErrInvalidConfig, c.MinLength)
	}
	if c.Top < 0 {
		return fmt.Errorf("%w: top must not be negative, got %d", ErrInvalidConfig, c.Top)
	}
	switch c.Sort {
	case SortByCount, SortByWord:
	default:
		return fmt.Errorf("%w: sort must be %q or %q, got %q", ErrInvalidConfig, SortByCount, SortByWord, c.Sort)
	}
	return nil
}
