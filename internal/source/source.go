// Package source fetches the catalog document from a local file or an HTTP
// URL. The document is fetched once per load; every failure is a fatal load
// error for the caller.
package source

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"resty.dev/v3"

	"github.com/dbmrq/vitrina/internal/catalog"
	verrors "github.com/dbmrq/vitrina/internal/errors"
	"github.com/dbmrq/vitrina/internal/logging"
)

// Defaults for the loader.
const (
	DefaultLocation = "stock.json"
	DefaultTimeout  = 15 * time.Second
	DefaultRetries  = 0
)

// Config configures a Loader.
type Config struct {
	// Timeout bounds one complete load, retries included.
	Timeout time.Duration
	// Retries is the number of extra HTTP attempts per load. Zero, the
	// default, makes one load exactly one request.
	Retries int
}

// DefaultConfig returns the default loader configuration.
func DefaultConfig() Config {
	return Config{
		Timeout: DefaultTimeout,
		Retries: DefaultRetries,
	}
}

// Loader reads catalog documents.
type Loader struct {
	client  *resty.Client
	timeout time.Duration
}

// NewLoader creates a loader with its own HTTP client.
func NewLoader(cfg Config) *Loader {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}

	client := resty.New().
		SetRetryCount(cfg.Retries).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(3*time.Second).
		SetHeader("Accept", "application/json")

	return &Loader{
		client:  client,
		timeout: cfg.Timeout,
	}
}

// Close releases the HTTP client.
func (l *Loader) Close() error {
	return l.client.Close()
}

// Client returns the underlying HTTP client, shared with the image prober.
func (l *Loader) Client() *resty.Client {
	return l.client
}

// IsRemote reports whether location is an HTTP(S) URL.
func IsRemote(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Load fetches and decodes the catalog document at location.
func (l *Loader) Load(ctx context.Context, location string) (*catalog.Document, error) {
	data, err := l.Fetch(ctx, location)
	if err != nil {
		return nil, err
	}

	doc, err := catalog.Decode(data)
	if err != nil {
		logging.Error("catalog document rejected", "source", location, "error", err)
		return nil, err
	}

	logging.Info("catalog loaded",
		"source", location,
		"products", len(doc.Stock),
		"groups", len(doc.Main.Groups),
	)
	return doc, nil
}

// Fetch returns the raw bytes at location.
func (l *Loader) Fetch(ctx context.Context, location string) ([]byte, error) {
	if location == "" {
		location = DefaultLocation
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	start := time.Now()
	var (
		data []byte
		err  error
	)
	if IsRemote(location) {
		data, err = l.fetchHTTP(ctx, location)
	} else {
		data, err = l.fetchFile(ctx, location)
	}
	if err != nil {
		logging.Error("catalog fetch failed", "source", location, "error", err)
		return nil, err
	}

	logging.Debug("catalog fetched",
		"source", location,
		"bytes", len(data),
		"elapsed", time.Since(start),
	)
	return data, nil
}

func (l *Loader) fetchHTTP(ctx context.Context, url string) ([]byte, error) {
	resp, err := l.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, verrors.SourceUnreachable(url, verrors.OperationTimeout("catalog fetch", l.timeout))
		}
		return nil, verrors.SourceUnreachable(url, err)
	}
	if resp.IsError() {
		return nil, verrors.SourceStatus(url, resp.StatusCode())
	}
	return []byte(resp.String()), nil
}

func (l *Loader) fetchFile(ctx context.Context, location string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, verrors.SourceUnreachable(location, err)
	}

	path := strings.TrimPrefix(location, "file://")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, verrors.SourceUnreachable(location, err)
	}
	return data, nil
}
