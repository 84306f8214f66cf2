// Package check inspects a loaded catalog for problems the browser hides:
// homepage ids that resolve to nothing, groups that end up empty, products
// without images, and image references that cannot be fetched.
package check

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/ratelimit"
	"golang.org/x/sync/errgroup"
	"resty.dev/v3"

	"github.com/dbmrq/vitrina/internal/catalog"
	"github.com/dbmrq/vitrina/internal/logging"
	"github.com/dbmrq/vitrina/internal/source"
)

// GroupReport describes how one homepage group resolved.
type GroupReport struct {
	Title    string `json:"title"`
	Items    int    `json:"items"`
	Resolved int    `json:"resolved"`
	Missing  []int  `json:"missing,omitempty"`
}

// Hidden reports whether the group resolves to no products and is left off
// the homepage.
func (g GroupReport) Hidden() bool {
	return g.Resolved == 0
}

// ProbeResult is the outcome of fetching one image reference.
type ProbeResult struct {
	Image     string `json:"image"`
	Target    string `json:"target"`
	ProductID int    `json:"product_id"`
	Status    int    `json:"status,omitempty"`
	Error     string `json:"error,omitempty"`
}

// OK reports whether the image was reachable.
func (r ProbeResult) OK() bool {
	return r.Error == "" && r.Status < 400
}

// Report is the result of a catalog check.
type Report struct {
	Source        string        `json:"source"`
	Products      int           `json:"products"`
	Groups        []GroupReport `json:"groups"`
	WithoutImages []int         `json:"without_images,omitempty"`
	Probes        []ProbeResult `json:"probes,omitempty"`
}

// Inspect builds the structural part of the report. Duplicate ids and bad
// prices never get this far: decoding rejects them.
func Inspect(location string, store *catalog.Store) *Report {
	r := &Report{Source: location, Products: store.Len()}

	for _, g := range store.Groups() {
		items, missing := store.Resolve(g)
		r.Groups = append(r.Groups, GroupReport{
			Title:    g.Title,
			Items:    len(g.Items),
			Resolved: len(items),
			Missing:  missing,
		})
	}
	for _, p := range store.Products() {
		if !p.HasImages() {
			r.WithoutImages = append(r.WithoutImages, p.ID)
		}
	}
	return r
}

// Missing returns the total number of unresolved homepage ids.
func (r *Report) Missing() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Missing)
	}
	return n
}

// BrokenImages returns the failed probes.
func (r *Report) BrokenImages() []ProbeResult {
	var out []ProbeResult
	for _, p := range r.Probes {
		if !p.OK() {
			out = append(out, p)
		}
	}
	return out
}

// Healthy reports whether no image probe failed. Missing homepage ids and
// products without images are warnings: the browser tolerates them.
func (r *Report) Healthy() bool {
	return len(r.BrokenImages()) == 0
}

// WriteText prints the report for humans.
func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Source:   %s\n", r.Source)
	fmt.Fprintf(&b, "Products: %d\n", r.Products)
	b.WriteString("\nHomepage groups:\n")
	if len(r.Groups) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, g := range r.Groups {
		mark := "✓"
		switch {
		case g.Hidden():
			mark = "✗"
		case len(g.Missing) > 0:
			mark = "!"
		}
		fmt.Fprintf(&b, "  %s %s: %d/%d resolved", mark, g.Title, g.Resolved, g.Items)
		if len(g.Missing) > 0 {
			fmt.Fprintf(&b, ", missing ids %s", joinInts(g.Missing))
		}
		if g.Hidden() {
			b.WriteString(" (hidden)")
		}
		b.WriteString("\n")
	}

	if len(r.WithoutImages) > 0 {
		fmt.Fprintf(&b, "\nProducts without images (placeholder shown): %s\n", joinInts(r.WithoutImages))
	}

	if len(r.Probes) > 0 {
		broken := r.BrokenImages()
		fmt.Fprintf(&b, "\nImages probed: %d, broken: %d\n", len(r.Probes), len(broken))
		for _, p := range broken {
			reason := p.Error
			if reason == "" {
				reason = fmt.Sprintf("status %d", p.Status)
			}
			fmt.Fprintf(&b, "  ✗ #%d %s: %s\n", p.ProductID, p.Image, reason)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ", ")
}

// ProberConfig configures image probes.
type ProberConfig struct {
	// Concurrency caps simultaneous probes.
	Concurrency int
	// RatePerSecond caps probes started per second.
	RatePerSecond int
}

// Prober fetches image references relative to the catalog location.
type Prober struct {
	client      *resty.Client
	base        string
	concurrency int
	limiter     ratelimit.Limiter
}

// NewProber creates a prober. Relative image references resolve against
// location: as URLs when the catalog is remote, as paths next to the
// catalog file otherwise.
func NewProber(client *resty.Client, location string, cfg ProberConfig) *Prober {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	if cfg.RatePerSecond <= 0 {
		cfg.RatePerSecond = 1
	}
	return &Prober{
		client:      client,
		base:        location,
		concurrency: cfg.Concurrency,
		limiter:     ratelimit.New(cfg.RatePerSecond),
	}
}

type probeJob struct {
	productID int
	image     string
}

// Probe checks every image of every product. Results keep dataset order.
// Individual failures are recorded in the results; the returned error is
// only the context's.
func (p *Prober) Probe(ctx context.Context, products []catalog.Product) ([]ProbeResult, error) {
	var jobs []probeJob
	for _, prod := range products {
		for _, img := range prod.Images {
			jobs = append(jobs, probeJob{productID: prod.ID, image: img})
		}
	}

	results := make([]ProbeResult, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = p.probeOne(gctx, job)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	broken := 0
	for _, r := range results {
		if !r.OK() {
			broken++
		}
	}
	logging.Info("image probe finished", "images", len(results), "broken", broken)
	return results, nil
}

func (p *Prober) probeOne(ctx context.Context, job probeJob) ProbeResult {
	res := ProbeResult{Image: job.image, ProductID: job.productID}

	target, remote, err := p.resolve(job.image)
	res.Target = target
	if err != nil {
		res.Error = err.Error()
		return res
	}

	if !remote {
		if _, err := os.Stat(target); err != nil {
			res.Error = "file not found"
		}
		return res
	}

	p.limiter.Take()
	resp, err := p.client.R().SetContext(ctx).Head(target)
	if err == nil && resp.StatusCode() == http.StatusMethodNotAllowed {
		p.limiter.Take()
		resp, err = p.client.R().SetContext(ctx).Get(target)
	}
	if err != nil {
		res.Error = err.Error()
		logging.Debug("image probe failed", "image", target, "error", err)
		return res
	}
	res.Status = resp.StatusCode()
	return res
}

// resolve returns the probe target for an image reference and whether it
// is fetched over HTTP.
func (p *Prober) resolve(image string) (string, bool, error) {
	if source.IsRemote(image) {
		return image, true, nil
	}
	if source.IsRemote(p.base) {
		base, err := url.Parse(p.base)
		if err != nil {
			return "", false, err
		}
		ref, err := url.Parse(image)
		if err != nil {
			return "", false, err
		}
		return base.ResolveReference(ref).String(), true, nil
	}

	if filepath.IsAbs(image) {
		return image, false, nil
	}
	dir := filepath.Dir(strings.TrimPrefix(p.base, "file://"))
	return filepath.Join(dir, image), false, nil
}

// Run inspects the store and, when prober is non-nil, probes every image.
func Run(ctx context.Context, location string, store *catalog.Store, prober *Prober) (*Report, error) {
	report := Inspect(location, store)
	if prober == nil {
		return report, nil
	}
	probes, err := prober.Probe(ctx, store.Products())
	if err != nil {
		return nil, err
	}
	report.Probes = probes
	return report, nil
}
