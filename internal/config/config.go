// internal/config/config.go
// Package config loads gostats settings from defaults, an optional config
// file, GOSTATS_* environment variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/mwiater/gostats/internal/logger"
	"github.com/mwiater/gostats/internal/report"
	"github.com/mwiater/gostats/stats"
)

// Keys used in config files, environment variables and flag bindings.
const (
	KeyConfig    = "config"
	KeyStats     = "stats"
	KeyFormat    = "format"
	KeyPrecision = "precision"
	KeyLogLevel  = "log_level"
	KeyDebug     = "debug"

	EnvPrefix = "GOSTATS"
)

// ErrInvalidConfig wraps every validation failure returned by Load.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the effective settings.
type Config struct {
	Stats     []string
	Format    report.Format
	Precision int
	LogLevel  string
	Debug     bool
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyStats, stats.Names())
	v.SetDefault(KeyFormat, string(report.FormatTable))
	v.SetDefault(KeyPrecision, -1)
	v.SetDefault(KeyLogLevel, logger.DefaultLevel)
	v.SetDefault(KeyDebug, false)
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()
	Setup(v)
	return v
}

// Setup applies defaults and environment handling to an existing instance,
// such as the global one returned by viper.GetViper.
func Setup(v *viper.Viper) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// ReadFile merges the config file at path into v. An empty path is a no-op.
// The format is taken from the file extension.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("could not read config file: %w", err)
	}
	return nil
}

// Load reads the effective settings from v and validates them.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Stats:     splitNames(v.GetStringSlice(KeyStats)),
		Precision: v.GetInt(KeyPrecision),
		LogLevel:  v.GetString(KeyLogLevel),
		Debug:     v.GetBool(KeyDebug),
	}

	f, err := report.ParseFormat(v.GetString(KeyFormat))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	cfg.Format = f

	if len(cfg.Stats) == 0 {
		cfg.Stats = stats.Names()
	}
	if err := stats.Validate(cfg.Stats...); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if cfg.Precision > 17 {
		return Config{}, fmt.Errorf("%w: precision %d exceeds 17 digits", ErrInvalidConfig, cfg.Precision)
	}
	return cfg, nil
}

// splitNames accepts both repeated values and comma-separated lists, so
// GOSTATS_STATS=mean,median behaves like --stat mean --stat median.
func splitNames(in []string) []string {
	var out []string
	for _, s := range in {
		for _, n := range strings.Split(s, ",") {
			if n = strings.TrimSpace(n); n != "" {
				out = append(out, strings.ToLower(n))
			}
		}
	}
	return out
}
