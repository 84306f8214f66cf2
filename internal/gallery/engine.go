// Package gallery implements the product modal's image gallery: the current
// image index with wrap-around navigation, and the slide transition between
// images modeled as layers on a horizontal surface.
//
// Every layer is a two-phase state machine. An entering layer slides from the
// trailing edge to the center and settles there; when the next navigation
// happens the centered layer starts leaving toward the opposite edge and stays
// on the surface until its deferred detach runs. Detach is addressed by layer
// id, so overlapping removals from rapid navigation never touch each other's
// layers.
package gallery

import (
	"slices"
	"time"

	"github.com/dbmrq/vitrina/internal/catalog"
)

// Direction is a navigation intent.
type Direction int

const (
	// Next moves to the following image; it enters from the right.
	Next Direction = iota
	// Prev moves to the preceding image; it enters from the left.
	Prev
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	if d == Prev {
		return "prev"
	}
	return "next"
}

// Sign is +1 for Next and -1 for Prev.
func (d Direction) Sign() int {
	if d == Prev {
		return -1
	}
	return 1
}

// DefaultTransitionDuration is how long a slide takes.
const DefaultTransitionDuration = 300 * time.Millisecond

// Phase is the animation phase of a layer.
type Phase int

const (
	// PhaseCentered is a layer resting at the center.
	PhaseCentered Phase = iota
	// PhaseEntering is a layer sliding in toward the center.
	PhaseEntering
	// PhaseLeaving is a layer sliding out, waiting to be detached.
	PhaseLeaving
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhaseLeaving:
		return "leaving"
	default:
		return "centered"
	}
}

// Layer is one image on the gallery surface. Positions are in viewport
// widths: 0 is centered, +1 is fully off the right edge and -1 fully off the
// left edge.
type Layer struct {
	ID    int
	Image string
	Phase Phase
	From  float64
	To    float64
	Start time.Time
}

// Position returns the layer's horizontal position at now for a transition
// of length d.
func (l Layer) Position(now time.Time, d time.Duration) float64 {
	if l.Phase == PhaseCentered || d <= 0 {
		return l.To
	}
	return l.From + (l.To-l.From)*ease(progress(l.Start, now, d))
}

// Settled reports whether the layer has reached its destination.
func (l Layer) Settled(now time.Time, d time.Duration) bool {
	return l.Phase == PhaseCentered || d <= 0 || progress(l.Start, now, d) >= 1
}

// Placement is a layer positioned for drawing.
type Placement struct {
	ID     int
	Image  string
	Phase  Phase
	Offset float64
}

// Transition describes the visual effect of one navigation. LeavingID is zero
// when no image was displayed before.
type Transition struct {
	Direction   Direction
	Index       int
	Entering    Layer
	LeavingID   int
	DetachAfter time.Duration
}

// Animated reports whether the transition slides. The first image after Open
// appears centered without animation.
func (t Transition) Animated() bool {
	return t.Entering.Phase == PhaseEntering
}

// Engine owns the gallery state of the open modal. It is not safe for
// concurrent use; the UI event loop serializes every call.
type Engine struct {
	images      []string
	index       int
	direction   Direction
	firstRender bool
	open        bool

	layers   []Layer
	lastID   int
	duration time.Duration
	swipe    float64
	now      func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithDuration sets the slide duration.
func WithDuration(d time.Duration) Option {
	return func(e *Engine) {
		if d >= 0 {
			e.duration = d
		}
	}
}

// WithSwipeThreshold sets the minimum swipe displacement.
func WithSwipeThreshold(units float64) Option {
	return func(e *Engine) {
		if units >= 0 {
			e.swipe = units
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// New creates a closed gallery engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		duration: DefaultTransitionDuration,
		swipe:    DefaultSwipeThreshold,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Open resets the gallery to the product's first image and displays it
// without a transition. A product without images opens an empty gallery.
func (e *Engine) Open(p catalog.Product) {
	e.OpenImages(p.Images)
}

// OpenImages is Open for a bare image list.
func (e *Engine) OpenImages(images []string) {
	e.images = slices.Clone(images)
	e.index = 0
	e.direction = Next
	e.firstRender = true
	e.layers = nil
	e.open = true

	e.display(Next)
}

// Close discards the gallery state. Pending detaches become no-ops.
func (e *Engine) Close() {
	e.images = nil
	e.index = 0
	e.layers = nil
	e.open = false
}

// Navigate moves one image in dir, wrapping around at both ends. The index
// changes immediately; the returned transition tells the caller which layer to
// detach once the slide is over. With fewer than two images it does nothing
// and returns false.
func (e *Engine) Navigate(dir Direction) (Transition, bool) {
	n := len(e.images)
	if !e.open || n <= 1 {
		return Transition{}, false
	}

	e.index = (e.index + dir.Sign() + n) % n
	e.direction = dir
	return e.display(dir)
}

// Swipe navigates according to a horizontal swipe from startX to endX. See
// SwipeDirection for the mapping.
func (e *Engine) Swipe(startX, endX float64) (Transition, bool) {
	dir, ok := SwipeDirection(startX, endX, e.swipe)
	if !ok {
		return Transition{}, false
	}
	return e.Navigate(dir)
}

// Detach removes a leaving layer from the surface. Unknown ids, including ids
// from before the last Open or Close, are ignored.
func (e *Engine) Detach(id int) bool {
	for i, l := range e.layers {
		if l.ID == id && l.Phase == PhaseLeaving {
			e.layers = slices.Delete(e.layers, i, i+1)
			return true
		}
	}
	return false
}

// display puts the image at the current index on the surface.
func (e *Engine) display(dir Direction) (Transition, bool) {
	if len(e.images) == 0 {
		return Transition{}, false
	}

	now := e.now()
	e.lastID++
	incoming := Layer{
		ID:    e.lastID,
		Image: e.images[e.index],
		Start: now,
	}
	tr := Transition{Direction: dir, Index: e.index}

	if e.firstRender {
		e.firstRender = false
		incoming.Phase = PhaseCentered
		e.layers = []Layer{incoming}
		tr.Entering = incoming
		return tr, true
	}

	incoming.Phase = PhaseEntering
	incoming.From = float64(dir.Sign())
	incoming.To = 0

	if i := e.activeLayer(); i >= 0 {
		old := &e.layers[i]
		old.From = old.Position(now, e.duration)
		old.To = -float64(dir.Sign())
		old.Phase = PhaseLeaving
		old.Start = now
		tr.LeavingID = old.ID
		tr.DetachAfter = e.duration
	}

	e.layers = append(e.layers, incoming)
	tr.Entering = incoming
	return tr, true
}

// activeLayer returns the index of the layer that is not leaving, or -1.
func (e *Engine) activeLayer() int {
	for i := len(e.layers) - 1; i >= 0; i-- {
		if e.layers[i].Phase != PhaseLeaving {
			return i
		}
	}
	return -1
}

// Settle moves entering layers that have arrived by now into the centered
// phase. It returns true when a layer changed phase.
func (e *Engine) Settle(now time.Time) bool {
	changed := false
	for i := range e.layers {
		l := &e.layers[i]
		if l.Phase == PhaseEntering && l.Settled(now, e.duration) {
			l.Phase = PhaseCentered
			l.From = l.To
			changed = true
		}
	}
	return changed
}

// Placements returns the layers positioned at now, oldest first. It does not
// change the engine; phases advance through Settle.
func (e *Engine) Placements(now time.Time) []Placement {
	out := make([]Placement, 0, len(e.layers))
	for _, l := range e.layers {
		out = append(out, Placement{
			ID:     l.ID,
			Image:  l.Image,
			Phase:  l.Phase,
			Offset: l.Position(now, e.duration),
		})
	}
	return out
}

// Animating reports whether any layer is still moving at now.
func (e *Engine) Animating(now time.Time) bool {
	for _, l := range e.layers {
		if !l.Settled(now, e.duration) {
			return true
		}
	}
	return false
}

// Layers returns a copy of the current layers.
func (e *Engine) Layers() []Layer {
	return slices.Clone(e.layers)
}

// IsOpen reports whether a product is open.
func (e *Engine) IsOpen() bool { return e.open }

// Index returns the current image index.
func (e *Engine) Index() int { return e.index }

// Len returns the number of images.
func (e *Engine) Len() int { return len(e.images) }

// Direction returns the direction of the last navigation.
func (e *Engine) Direction() Direction { return e.direction }

// FirstRender reports whether the next display skips the transition.
func (e *Engine) FirstRender() bool { return e.firstRender }

// Duration returns the slide duration.
func (e *Engine) Duration() time.Duration { return e.duration }

// SwipeThreshold returns the minimum swipe displacement.
func (e *Engine) SwipeThreshold() float64 { return e.swipe }

// ControlsVisible reports whether prev/next controls should be shown.
func (e *Engine) ControlsVisible() bool { return len(e.images) > 1 }

// Current returns the image at the current index.
func (e *Engine) Current() (string, bool) {
	if len(e.images) == 0 {
		return "", false
	}
	return e.images[e.index], true
}

func progress(start, now time.Time, d time.Duration) float64 {
	t := float64(now.Sub(start)) / float64(d)
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}

// ease is a cubic ease-in-out curve.
func ease(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}
