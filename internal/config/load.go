package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "PERIODIC"

var (
	// ErrReadConfig indicates the config file could not be read or parsed.
	ErrReadConfig = errors.New("config: cannot read config file")
	// ErrInvalidConfig indicates the merged configuration failed validation.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// FlagKeys maps configuration keys to the command-line flags bound to them.
var FlagKeys = map[string]string{
	"log.level":    "log-level",
	"log.format":   "log-format",
	"scan.workers": "workers",
	"scan.rule":    "rule",
	"scan.collect": "collect",
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	workers := runtime.GOMAXPROCS(0)
	if workers > 1024 {
		workers = 1024
	}

	return Config{
		Log:  LogConfig{Level: "info", Format: "text"},
		Scan: ScanConfig{Workers: workers, Rule: "at-least-twice"},
	}
}

// Load merges defaults, the optional file at path, PERIODIC_* environment
// variables and any flags in flags named in FlagKeys, then validates the result.
// An empty path skips the file; a nil flags skips flag binding.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	d := Defaults()
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("scan.workers", d.Scan.Workers)
	v.SetDefault("scan.rule", d.Scan.Rule)
	v.SetDefault("scan.collect", d.Scan.Collect)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrReadConfig, path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range FlagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("config: bind flag %q: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}
