// Package config provides configuration data structures for vitrina.
package config

import (
	"fmt"
	"time"

	"github.com/dbmrq/vitrina/internal/assortment"
	"github.com/dbmrq/vitrina/internal/card"
	"github.com/dbmrq/vitrina/internal/gallery"
	"github.com/dbmrq/vitrina/internal/logging"
	"github.com/dbmrq/vitrina/internal/source"
	"github.com/dbmrq/vitrina/internal/view"
)

// Config represents the complete vitrina configuration loaded from .vitrina/config.yaml.
type Config struct {
	Source     SourceConfig     `yaml:"source"     json:"source"     mapstructure:"source"`
	Display    DisplayConfig    `yaml:"display"    json:"display"    mapstructure:"display"`
	Gallery    GalleryConfig    `yaml:"gallery"    json:"gallery"    mapstructure:"gallery"`
	Home       HomeConfig       `yaml:"home"       json:"home"       mapstructure:"home"`
	Assortment AssortmentConfig `yaml:"assortment" json:"assortment" mapstructure:"assortment"`
	Check      CheckConfig      `yaml:"check"      json:"check"      mapstructure:"check"`
	Log        LogConfig        `yaml:"log"        json:"log"        mapstructure:"log"`
}

// SourceConfig configures where the catalog document comes from.
type SourceConfig struct {
	// Location is a file path or an http(s) URL (default: stock.json).
	Location string `yaml:"location" json:"location" mapstructure:"location"`
	// Timeout bounds one load, retries included (default: 15s).
	Timeout time.Duration `yaml:"timeout" json:"timeout" mapstructure:"timeout"`
	// Retries is the number of extra HTTP attempts per load (default: 0).
	Retries int `yaml:"retries" json:"retries" mapstructure:"retries"`
}

// DisplayConfig configures card rendering.
type DisplayConfig struct {
	// Locale selects digit grouping for prices (default: ru).
	Locale string `yaml:"locale" json:"locale" mapstructure:"locale"`
	// Currency is appended to every price after a space (default: ₽).
	Currency string `yaml:"currency" json:"currency" mapstructure:"currency"`
	// Placeholder is the image shown for products without images.
	Placeholder string `yaml:"placeholder" json:"placeholder" mapstructure:"placeholder"`
}

// GalleryConfig configures the modal image gallery.
type GalleryConfig struct {
	// Transition is the slide duration (default: 300ms).
	Transition time.Duration `yaml:"transition" json:"transition" mapstructure:"transition"`
	// SwipeThreshold is the minimum displacement, in swipe units, that navigates (default: 50).
	SwipeThreshold float64 `yaml:"swipe_threshold" json:"swipe_threshold" mapstructure:"swipe_threshold"`
	// UnitsPerCell converts one terminal column of mouse drag into swipe units (default: 8).
	UnitsPerCell float64 `yaml:"units_per_cell" json:"units_per_cell" mapstructure:"units_per_cell"`
}

// HomeConfig configures the homepage carousels.
type HomeConfig struct {
	// ScrollStep is the carousel scroll distance in columns per button press (default: 20).
	ScrollStep int `yaml:"scroll_step" json:"scroll_step" mapstructure:"scroll_step"`
}

// AssortmentConfig configures the assortment grid.
type AssortmentConfig struct {
	// DefaultSort is the sort mode selected on startup (default: none).
	DefaultSort assortment.SortMode `yaml:"default_sort" json:"default_sort" mapstructure:"default_sort"`
}

// CheckConfig configures `vitrina check`.
type CheckConfig struct {
	// Concurrency caps simultaneous image probes (default: 4).
	Concurrency int `yaml:"concurrency" json:"concurrency" mapstructure:"concurrency"`
	// RatePerSecond caps image probes per second (default: 10).
	RatePerSecond int `yaml:"rate_per_second" json:"rate_per_second" mapstructure:"rate_per_second"`
	// ProbeImages enables image probes without the --probe flag.
	ProbeImages bool `yaml:"probe_images" json:"probe_images" mapstructure:"probe_images"`
}

// LogConfig configures file logging.
type LogConfig struct {
	// Level is debug, info, warn or error (default: info).
	Level string `yaml:"level" json:"level" mapstructure:"level"`
	// Dir is the log directory (default: .vitrina/logs).
	Dir string `yaml:"dir" json:"dir" mapstructure:"dir"`
	// JSON switches the log format to JSON.
	JSON bool `yaml:"json" json:"json" mapstructure:"json"`
}

// Default values.
const (
	DefaultUnitsPerCell  = 8.0
	DefaultConcurrency   = 4
	DefaultRatePerSecond = 10
	DefaultLogLevel      = "info"
	DefaultLogDir        = ".vitrina/logs"
)

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Location: source.DefaultLocation,
			Timeout:  source.DefaultTimeout,
			Retries:  source.DefaultRetries,
		},
		Display: DisplayConfig{
			Locale:      card.DefaultLocale,
			Currency:    card.DefaultCurrency,
			Placeholder: card.DefaultPlaceholder,
		},
		Gallery: GalleryConfig{
			Transition:     gallery.DefaultTransitionDuration,
			SwipeThreshold: gallery.DefaultSwipeThreshold,
			UnitsPerCell:   DefaultUnitsPerCell,
		},
		Home: HomeConfig{
			ScrollStep: view.DefaultScrollStep,
		},
		Assortment: AssortmentConfig{
			DefaultSort: assortment.SortNone,
		},
		Check: CheckConfig{
			Concurrency:   DefaultConcurrency,
			RatePerSecond: DefaultRatePerSecond,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
			Dir:   DefaultLogDir,
		},
	}
}

// ApplyDefaults applies default values to any unset fields.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.Source.Location == "" {
		c.Source.Location = defaults.Source.Location
	}
	if c.Source.Timeout == 0 {
		c.Source.Timeout = defaults.Source.Timeout
	}

	if c.Display.Locale == "" {
		c.Display.Locale = defaults.Display.Locale
	}
	if c.Display.Currency == "" {
		c.Display.Currency = defaults.Display.Currency
	}
	if c.Display.Placeholder == "" {
		c.Display.Placeholder = defaults.Display.Placeholder
	}

	if c.Gallery.Transition == 0 {
		c.Gallery.Transition = defaults.Gallery.Transition
	}
	if c.Gallery.SwipeThreshold == 0 {
		c.Gallery.SwipeThreshold = defaults.Gallery.SwipeThreshold
	}
	if c.Gallery.UnitsPerCell == 0 {
		c.Gallery.UnitsPerCell = defaults.Gallery.UnitsPerCell
	}

	if c.Home.ScrollStep == 0 {
		c.Home.ScrollStep = defaults.Home.ScrollStep
	}
	if c.Assortment.DefaultSort == "" {
		c.Assortment.DefaultSort = defaults.Assortment.DefaultSort
	}

	if c.Check.Concurrency == 0 {
		c.Check.Concurrency = defaults.Check.Concurrency
	}
	if c.Check.RatePerSecond == 0 {
		c.Check.RatePerSecond = defaults.Check.RatePerSecond
	}

	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.Dir == "" {
		c.Log.Dir = defaults.Log.Dir
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
	// Options lists the accepted values, when the field is an enumeration.
	Options []string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors
	add := func(field, format string, args ...any) {
		errs = append(errs, &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if c.Source.Timeout < 0 {
		add("source.timeout", "must be non-negative")
	}
	if c.Source.Retries < 0 {
		add("source.retries", "must be non-negative")
	}

	if c.Gallery.Transition < 0 {
		add("gallery.transition", "must be non-negative")
	}
	if c.Gallery.SwipeThreshold <= 0 {
		add("gallery.swipe_threshold", "must be positive")
	}
	if c.Gallery.UnitsPerCell <= 0 {
		add("gallery.units_per_cell", "must be positive")
	}

	if c.Home.ScrollStep <= 0 {
		add("home.scroll_step", "must be positive")
	}

	if c.Assortment.DefaultSort != "" && !c.Assortment.DefaultSort.IsValid() {
		add("assortment.default_sort", "unknown sort mode %q", c.Assortment.DefaultSort)
		errs[len(errs)-1].Options = []string{"none", "asc", "desc"}
	}

	if c.Check.Concurrency <= 0 {
		add("check.concurrency", "must be positive")
	}
	if c.Check.RatePerSecond <= 0 {
		add("check.rate_per_second", "must be positive")
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		add("log.level", "unknown level %q", c.Log.Level)
		errs[len(errs)-1].Options = []string{"debug", "info", "warn", "error"}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SourceOptions returns the catalog loader configuration.
func (c *Config) SourceOptions() source.Config {
	return source.Config{
		Timeout: c.Source.Timeout,
		Retries: c.Source.Retries,
	}
}

// CardOptions returns the card renderer configuration.
func (c *Config) CardOptions() card.Config {
	return card.Config{
		Locale:      c.Display.Locale,
		Currency:    c.Display.Currency,
		Placeholder: c.Display.Placeholder,
	}
}

// ViewOptions returns the view controller configuration.
func (c *Config) ViewOptions() view.Options {
	return view.Options{
		ScrollStep: c.Home.ScrollStep,
		Sort:       c.Assortment.DefaultSort,
	}
}

// GalleryOptions returns the gallery engine options.
func (c *Config) GalleryOptions() []gallery.Option {
	return []gallery.Option{
		gallery.WithDuration(c.Gallery.Transition),
		gallery.WithSwipeThreshold(c.Gallery.SwipeThreshold),
	}
}

// LoggingOptions returns the logger configuration. An unknown level falls
// back to info; Validate reports it.
func (c *Config) LoggingOptions() *logging.Config {
	lc := logging.DefaultConfig()
	if level, err := logging.ParseLevel(c.Log.Level); err == nil {
		lc.Level = level
	}
	if c.Log.Dir != "" {
		lc.LogDir = c.Log.Dir
	}
	lc.JSONFormat = c.Log.JSON
	return lc
}
