// Package config provides configuration loading and management for vitrina.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/dbmrq/vitrina/internal/assortment"
	verrors "github.com/dbmrq/vitrina/internal/errors"
)

const (
	// DefaultConfigPath is the default path to the config file relative to the working directory.
	DefaultConfigPath = ".vitrina/config.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "VITRINA"
)

// Loader handles loading configuration from files and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, NewConfig())

	return &Loader{v: v}
}

// setDefaults registers every key so that AutomaticEnv can override keys
// that are absent from the file.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("source.location", cfg.Source.Location)
	v.SetDefault("source.timeout", cfg.Source.Timeout)
	v.SetDefault("source.retries", cfg.Source.Retries)

	v.SetDefault("display.locale", cfg.Display.Locale)
	v.SetDefault("display.currency", cfg.Display.Currency)
	v.SetDefault("display.placeholder", cfg.Display.Placeholder)

	v.SetDefault("gallery.transition", cfg.Gallery.Transition)
	v.SetDefault("gallery.swipe_threshold", cfg.Gallery.SwipeThreshold)
	v.SetDefault("gallery.units_per_cell", cfg.Gallery.UnitsPerCell)

	v.SetDefault("home.scroll_step", cfg.Home.ScrollStep)
	v.SetDefault("assortment.default_sort", string(cfg.Assortment.DefaultSort))

	v.SetDefault("check.concurrency", cfg.Check.Concurrency)
	v.SetDefault("check.rate_per_second", cfg.Check.RatePerSecond)
	v.SetDefault("check.probe_images", cfg.Check.ProbeImages)

	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.dir", cfg.Log.Dir)
	v.SetDefault("log.json", cfg.Log.JSON)
}

// LoadConfig loads configuration from path, merges environment variables,
// applies defaults and validates the result.
//
// If path is empty, DefaultConfigPath is used and a missing file is not an
// error: vitrina runs on defaults. An explicit path must exist.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	required := path != ""
	if path == "" {
		path = DefaultConfigPath
	}

	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) || required {
			return nil, &LoadError{
				Path:    path,
				Message: "config file not found",
				Err:     err,
			}
		}
	} else {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, &LoadError{
				Path:    path,
				Message: "failed to read config file",
				Err:     verrors.ConfigParseError(path, err),
			}
		}
	}

	cfg := &Config{}
	if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to parse config file",
			Err:     verrors.ConfigParseError(path, err),
		}
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "configuration validation failed",
			Err:     asCatalogError(err),
		}
	}

	return cfg, nil
}

// asCatalogError reports the first validation failure with its accepted
// values; the rest are listed in the details.
func asCatalogError(err error) error {
	var verrs ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	first := verrs[0]
	ce := verrors.ConfigValidationError(first.Field, first.Message, first.Options)
	for _, e := range verrs[1:] {
		ce.WithDetails(e.Field, e.Message)
	}
	return ce
}

// LoadEnvFiles loads KEY=VALUE pairs from the given .env files into the
// process environment without overriding variables that are already set.
// Missing files are skipped.
func LoadEnvFiles(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// viperDecodeHook composes the standard mapstructure hooks with ours.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		stringToSortModeHookFunc(),
	)
}

func stringToSortModeHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf(assortment.SortMode("")) {
			return data, nil
		}
		return assortment.SortMode(strings.ToLower(strings.TrimSpace(data.(string)))), nil
	}
}

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is reports every load error as a configuration error.
func (e *LoadError) Is(target error) bool {
	return target == verrors.ErrConfig
}

// Load is a convenience function that creates a new Loader and loads configuration.
// If path is empty, the optional DefaultConfigPath is used.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}

