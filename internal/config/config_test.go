package config

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dbmrq/vitrina/internal/assortment"
	"github.com/dbmrq/vitrina/internal/logging"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	if cfg.Source.Location != "stock.json" {
		t.Errorf("expected source.location stock.json, got %q", cfg.Source.Location)
	}
	if cfg.Source.Timeout != 15*time.Second {
		t.Errorf("expected source.timeout 15s, got %v", cfg.Source.Timeout)
	}
	if cfg.Source.Retries != 0 {
		t.Errorf("loads should be one-shot by default, got source.retries %d", cfg.Source.Retries)
	}
	if cfg.Display.Locale != "ru" || cfg.Display.Currency != "₽" {
		t.Errorf("unexpected display defaults: %+v", cfg.Display)
	}
	if cfg.Display.Placeholder != "placeholder.png" {
		t.Errorf("expected placeholder.png, got %q", cfg.Display.Placeholder)
	}
	if cfg.Gallery.Transition != 300*time.Millisecond {
		t.Errorf("expected gallery.transition 300ms, got %v", cfg.Gallery.Transition)
	}
	if cfg.Gallery.SwipeThreshold != 50 {
		t.Errorf("expected gallery.swipe_threshold 50, got %v", cfg.Gallery.SwipeThreshold)
	}
	if cfg.Home.ScrollStep != 20 {
		t.Errorf("expected home.scroll_step 20, got %d", cfg.Home.ScrollStep)
	}
	if cfg.Assortment.DefaultSort != assortment.SortNone {
		t.Errorf("expected default sort none, got %q", cfg.Assortment.DefaultSort)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{
		Source:  SourceConfig{Location: "https://example.com/stock.json"},
		Display: DisplayConfig{Currency: "EUR"},
	}
	cfg.ApplyDefaults()

	if cfg.Source.Location != "https://example.com/stock.json" {
		t.Errorf("explicit location was overwritten: %q", cfg.Source.Location)
	}
	if cfg.Display.Currency != "EUR" {
		t.Errorf("explicit currency was overwritten: %q", cfg.Display.Currency)
	}
	if cfg.Display.Locale != "ru" {
		t.Errorf("expected locale default, got %q", cfg.Display.Locale)
	}
	if cfg.Source.Timeout == 0 || cfg.Gallery.Transition == 0 || cfg.Home.ScrollStep == 0 {
		t.Errorf("zero values should be defaulted: %+v", cfg)
	}
	if cfg.Log.Dir != ".vitrina/logs" {
		t.Errorf("expected log dir default, got %q", cfg.Log.Dir)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"negative timeout", func(c *Config) { c.Source.Timeout = -time.Second }, "source.timeout"},
		{"negative retries", func(c *Config) { c.Source.Retries = -1 }, "source.retries"},
		{"negative transition", func(c *Config) { c.Gallery.Transition = -1 }, "gallery.transition"},
		{"zero threshold", func(c *Config) { c.Gallery.SwipeThreshold = 0 }, "gallery.swipe_threshold"},
		{"zero units per cell", func(c *Config) { c.Gallery.UnitsPerCell = 0 }, "gallery.units_per_cell"},
		{"zero scroll step", func(c *Config) { c.Home.ScrollStep = 0 }, "home.scroll_step"},
		{"bad sort", func(c *Config) { c.Assortment.DefaultSort = "cheapest" }, "assortment.default_sort"},
		{"zero concurrency", func(c *Config) { c.Check.Concurrency = 0 }, "check.concurrency"},
		{"zero rate", func(c *Config) { c.Check.RatePerSecond = 0 }, "check.rate_per_second"},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidationErrors, got %T", err)
			}
			if verrs[0].Field != tt.field {
				t.Errorf("field = %q, want %q", verrs[0].Field, tt.field)
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	if got := (ValidationErrors{}).Error(); got != "" {
		t.Errorf("empty errors = %q", got)
	}

	one := ValidationErrors{{Field: "a", Message: "bad"}}
	if got := one.Error(); got != "a: bad" {
		t.Errorf("single error = %q", got)
	}

	two := ValidationErrors{{Field: "a", Message: "bad"}, {Field: "b", Message: "worse"}}
	got := two.Error()
	if !strings.HasPrefix(got, "multiple validation errors:") || !strings.Contains(got, "- b: worse") {
		t.Errorf("multiple errors = %q", got)
	}
}

func TestOptionConversions(t *testing.T) {
	cfg := NewConfig()
	cfg.Display.Locale = "en"
	cfg.Home.ScrollStep = 12
	cfg.Assortment.DefaultSort = assortment.SortDesc
	cfg.Log.Level = "debug"
	cfg.Log.Dir = "/tmp/vitrina-logs"
	cfg.Log.JSON = true

	if got := cfg.CardOptions(); got.Locale != "en" || got.Currency != "₽" {
		t.Errorf("CardOptions() = %+v", got)
	}
	if got := cfg.ViewOptions(); got.ScrollStep != 12 || got.Sort != assortment.SortDesc {
		t.Errorf("ViewOptions() = %+v", got)
	}
	if got := cfg.SourceOptions(); got.Timeout != cfg.Source.Timeout || got.Retries != cfg.Source.Retries {
		t.Errorf("SourceOptions() = %+v", got)
	}
	if got := cfg.GalleryOptions(); len(got) != 2 {
		t.Errorf("GalleryOptions() returned %d options", len(got))
	}

	lc := cfg.LoggingOptions()
	if lc.Level != logging.LevelDebug || lc.LogDir != "/tmp/vitrina-logs" || !lc.JSONFormat {
		t.Errorf("LoggingOptions() = %+v", lc)
	}
}
