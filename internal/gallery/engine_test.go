package gallery

import (
	"math"
	"testing"
	"time"

	"github.com/dbmrq/vitrina/internal/catalog"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestEngine() (*Engine, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	return New(WithClock(clock.Now)), clock
}

func product(images ...string) catalog.Product {
	return catalog.Product{ID: 1, Name: "Шкаф", Images: images}
}

func TestOpen_FirstRenderIsCentered(t *testing.T) {
	e, clock := newTestEngine()
	e.Open(product("a.jpg", "b.jpg", "c.jpg"))

	if !e.IsOpen() {
		t.Fatal("expected gallery to be open")
	}
	if e.Index() != 0 {
		t.Errorf("Index() = %d, want 0", e.Index())
	}
	if e.FirstRender() {
		t.Error("first render should be consumed by Open")
	}

	layers := e.Layers()
	if len(layers) != 1 {
		t.Fatalf("expected 1 layer, got %d", len(layers))
	}
	if layers[0].Phase != PhaseCentered || layers[0].Image != "a.jpg" {
		t.Errorf("unexpected first layer: %+v", layers[0])
	}
	if e.Animating(clock.Now()) {
		t.Error("first image must not animate")
	}
	if cur, ok := e.Current(); !ok || cur != "a.jpg" {
		t.Errorf("Current() = %q, %v", cur, ok)
	}
}

func TestNavigate_WrapAround(t *testing.T) {
	e, _ := newTestEngine()
	e.Open(product("a", "b", "c"))

	if _, ok := e.Navigate(Prev); !ok {
		t.Fatal("expected navigation")
	}
	if e.Index() != 2 {
		t.Errorf("prev from 0: Index() = %d, want 2", e.Index())
	}
	if e.Direction() != Prev {
		t.Errorf("Direction() = %v, want prev", e.Direction())
	}

	e.Navigate(Next)
	if e.Index() != 0 {
		t.Errorf("next from 2: Index() = %d, want 0", e.Index())
	}
}

func TestNavigate_CycleClosure(t *testing.T) {
	for n := 2; n <= 6; n++ {
		images := make([]string, n)
		for i := range images {
			images[i] = string(rune('a' + i))
		}
		for start := 0; start < n; start++ {
			e, _ := newTestEngine()
			e.OpenImages(images)
			for i := 0; i < start; i++ {
				e.Navigate(Next)
			}
			if e.Index() != start {
				t.Fatalf("setup: Index() = %d, want %d", e.Index(), start)
			}
			for i := 0; i < n; i++ {
				e.Navigate(Next)
			}
			if e.Index() != start {
				t.Errorf("n=%d start=%d: after %d next, Index() = %d", n, start, n, e.Index())
			}
		}
	}
}

func TestNavigate_NoOpWithFewImages(t *testing.T) {
	tests := []struct {
		name   string
		images []string
	}{
		{"no images", nil},
		{"single image", []string{"only.jpg"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine()
			e.OpenImages(tt.images)
			before := e.Layers()

			for _, dir := range []Direction{Next, Prev} {
				if _, ok := e.Navigate(dir); ok {
					t.Errorf("Navigate(%v) should be a no-op", dir)
				}
			}
			if e.Index() != 0 {
				t.Errorf("Index() = %d, want 0", e.Index())
			}
			if len(e.Layers()) != len(before) {
				t.Errorf("layers changed: %d -> %d", len(before), len(e.Layers()))
			}
			if e.ControlsVisible() {
				t.Error("controls must be hidden")
			}
		})
	}
}

func TestOpen_NoImages(t *testing.T) {
	e, _ := newTestEngine()
	e.Open(product())

	if len(e.Layers()) != 0 {
		t.Errorf("expected no layers, got %d", len(e.Layers()))
	}
	if _, ok := e.Current(); ok {
		t.Error("Current() should report no image")
	}
	if _, ok := e.Swipe(200, 0); ok {
		t.Error("swipe must be a no-op without images")
	}
}

func TestNavigate_NotOpen(t *testing.T) {
	e, _ := newTestEngine()
	if _, ok := e.Navigate(Next); ok {
		t.Error("closed gallery must not navigate")
	}
}

func TestNavigate_TransitionEdges(t *testing.T) {
	tests := []struct {
		dir       Direction
		enterFrom float64
		leaveTo   float64
	}{
		{Next, 1, -1},
		{Prev, -1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			e, _ := newTestEngine()
			e.Open(product("a", "b", "c"))
			firstID := e.Layers()[0].ID

			tr, ok := e.Navigate(tt.dir)
			if !ok {
				t.Fatal("expected navigation")
			}
			if !tr.Animated() {
				t.Error("navigation after open must animate")
			}
			if tr.Entering.From != tt.enterFrom || tr.Entering.To != 0 {
				t.Errorf("entering %v -> %v, want %v -> 0", tr.Entering.From, tr.Entering.To, tt.enterFrom)
			}
			if tr.LeavingID != firstID {
				t.Errorf("LeavingID = %d, want %d", tr.LeavingID, firstID)
			}
			if tr.DetachAfter != DefaultTransitionDuration {
				t.Errorf("DetachAfter = %v, want %v", tr.DetachAfter, DefaultTransitionDuration)
			}

			layers := e.Layers()
			if len(layers) != 2 {
				t.Fatalf("expected outgoing and incoming layers, got %d", len(layers))
			}
			if layers[0].Phase != PhaseLeaving || layers[0].To != tt.leaveTo {
				t.Errorf("outgoing layer = %+v, want leaving to %v", layers[0], tt.leaveTo)
			}
		})
	}
}

func TestNavigate_IndexUpdatesBeforeAnimationEnds(t *testing.T) {
	e, clock := newTestEngine()
	e.Open(product("a", "b"))

	tr, _ := e.Navigate(Next)
	if e.Index() != 1 || tr.Index != 1 {
		t.Errorf("index must update synchronously, got %d / %d", e.Index(), tr.Index)
	}
	if !e.Animating(clock.Now()) {
		t.Error("expected animation in progress")
	}
	if cur, _ := e.Current(); cur != "b" {
		t.Errorf("Current() = %q, want b", cur)
	}
}

func TestPlacements_NoGapDuringSlide(t *testing.T) {
	e, clock := newTestEngine()
	e.Open(product("a", "b", "c"))
	e.Navigate(Next)

	for step := 0; step <= 10; step++ {
		placements := e.Placements(clock.Now())
		if len(placements) != 2 {
			t.Fatalf("step %d: expected 2 placements, got %d", step, len(placements))
		}
		gap := placements[1].Offset - placements[0].Offset
		if math.Abs(gap-1) > 1e-9 {
			t.Errorf("step %d: incoming must stay adjacent to outgoing, gap = %v", step, gap)
		}
		clock.Advance(DefaultTransitionDuration / 10)
	}

	placements := e.Placements(clock.Now())
	if placements[1].Offset != 0 || placements[1].Phase != PhaseEntering {
		t.Errorf("incoming should rest at the center until settled, got %+v", placements[1])
	}
	if !e.Settle(clock.Now()) {
		t.Error("Settle() should report the arrived layer")
	}
	placements = e.Placements(clock.Now())
	if placements[1].Offset != 0 || placements[1].Phase != PhaseCentered {
		t.Errorf("incoming should settle centered, got %+v", placements[1])
	}
	if e.Settle(clock.Now()) {
		t.Error("a second Settle() should change nothing")
	}
	if placements[0].Offset != -1 {
		t.Errorf("outgoing should end off the left edge, got %v", placements[0].Offset)
	}
	if e.Animating(clock.Now()) {
		t.Error("animation should be over")
	}
}

func TestPlacements_ReadOnly(t *testing.T) {
	e, clock := newTestEngine()
	e.Open(product("a", "b"))
	e.Navigate(Next)
	clock.Advance(2 * DefaultTransitionDuration)

	before := e.Layers()
	e.Placements(clock.Now())
	after := e.Layers()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("Placements() changed layer %d: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestDetach_ByReference(t *testing.T) {
	e, _ := newTestEngine()
	e.Open(product("a", "b", "c"))

	first, _ := e.Navigate(Next)
	second, _ := e.Navigate(Next)
	if first.LeavingID == second.LeavingID {
		t.Fatal("each navigation must retire a different layer")
	}
	if n := len(e.Layers()); n != 3 {
		t.Fatalf("expected 3 layers during overlapping slides, got %d", n)
	}

	// Removals may fire in any order; each removes only its own layer.
	if !e.Detach(second.LeavingID) {
		t.Error("expected second detach to remove its layer")
	}
	if !e.Detach(first.LeavingID) {
		t.Error("expected first detach to remove its layer")
	}
	if e.Detach(first.LeavingID) {
		t.Error("detaching twice must be a no-op")
	}

	layers := e.Layers()
	if len(layers) != 1 || layers[0].Image != "c" {
		t.Errorf("expected only the incoming layer, got %+v", layers)
	}
}

func TestDetach_IgnoresActiveLayer(t *testing.T) {
	e, _ := newTestEngine()
	e.Open(product("a", "b"))
	id := e.Layers()[0].ID

	if e.Detach(id) {
		t.Error("the displayed layer must not be detached")
	}
}

func TestDetach_AfterCloseAndReopen(t *testing.T) {
	e, _ := newTestEngine()
	e.Open(product("a", "b"))
	tr, _ := e.Navigate(Next)

	e.Close()
	if e.IsOpen() || len(e.Layers()) != 0 {
		t.Fatal("Close must discard state")
	}
	if e.Detach(tr.LeavingID) {
		t.Error("stale detach after close must be a no-op")
	}

	e.Open(product("x", "y"))
	if e.Index() != 0 {
		t.Errorf("reopen: Index() = %d, want 0", e.Index())
	}
	if e.Detach(tr.LeavingID) {
		t.Error("stale detach after reopen must be a no-op")
	}
	if n := len(e.Layers()); n != 1 {
		t.Errorf("reopen should show one centered layer, got %d", n)
	}
}

func TestOpen_ResetsAfterNavigation(t *testing.T) {
	e, _ := newTestEngine()
	e.Open(product("a", "b", "c"))
	e.Navigate(Next)
	e.Navigate(Next)

	e.Open(product("d", "e"))
	if e.Index() != 0 {
		t.Errorf("Index() = %d, want 0", e.Index())
	}
	layers := e.Layers()
	if len(layers) != 1 || layers[0].Phase != PhaseCentered || layers[0].Image != "d" {
		t.Errorf("expected single centered layer d, got %+v", layers)
	}
}

func TestOpen_CopiesImages(t *testing.T) {
	e, _ := newTestEngine()
	images := []string{"a", "b"}
	e.OpenImages(images)
	images[0] = "mutated"

	if cur, _ := e.Current(); cur != "a" {
		t.Errorf("engine aliases caller slice, Current() = %q", cur)
	}
}

func TestWithDuration_Zero(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	e := New(WithClock(clock.Now), WithDuration(0))
	e.OpenImages([]string{"a", "b"})
	tr, _ := e.Navigate(Next)

	if e.Animating(clock.Now()) {
		t.Error("zero duration must not animate")
	}
	if tr.DetachAfter != 0 {
		t.Errorf("DetachAfter = %v, want 0", tr.DetachAfter)
	}
}

func TestEase_Bounds(t *testing.T) {
	if ease(0) != 0 || ease(1) != 1 {
		t.Errorf("ease(0)=%v ease(1)=%v", ease(0), ease(1))
	}
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := ease(float64(i) / 100)
		if v < prev {
			t.Fatalf("ease must be monotonic, dropped at %d", i)
		}
		prev = v
	}
}
