package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/dbmrq/vitrina/internal/card"
	"github.com/dbmrq/vitrina/internal/gallery"
)

func TestComposeLine(t *testing.T) {
	tests := []struct {
		name  string
		segs  []segment
		width int
		want  string
	}{
		{"empty", nil, 4, "    "},
		{"single", []segment{{start: 1, text: "ab"}}, 5, " ab  "},
		{"adjacent", []segment{{start: 3, text: "bbb"}, {start: 0, text: "aaa"}}, 6, "aaabbb"},
		{"overlap", []segment{{start: 0, text: "aaaa"}, {start: 2, text: "bb"}}, 6, "aabb  "},
		{"clipped", []segment{{start: 3, text: "xyz"}}, 4, "   x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := composeLine(tt.segs, tt.width); got != tt.want {
				t.Errorf("composeLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderSlide(t *testing.T) {
	out := RenderSlide("img/a.jpg", 20, 5)
	if lipgloss.Width(out) != 20 || lipgloss.Height(out) != 5 {
		t.Errorf("slide size = %dx%d, want 20x5", lipgloss.Width(out), lipgloss.Height(out))
	}
	if !strings.Contains(out, "img/a.jpg") {
		t.Error("slide should show the image reference")
	}
	if RenderSlide("x", 0, 5) != "" {
		t.Error("zero width slide should be empty")
	}
}

func TestRenderGallerySurface(t *testing.T) {
	const w, h = 30, 5

	t.Run("centered", func(t *testing.T) {
		out := RenderGallerySurface([]gallery.Placement{{ID: 1, Image: "a.jpg"}}, w, h)
		if out != RenderSlide("a.jpg", w, h) {
			t.Error("a centered layer should render as the plain slide")
		}
	})

	t.Run("off surface", func(t *testing.T) {
		out := RenderGallerySurface([]gallery.Placement{
			{ID: 1, Image: "a.jpg", Phase: gallery.PhaseLeaving, Offset: -1},
			{ID: 2, Image: "b.jpg", Phase: gallery.PhaseCentered},
		}, w, h)
		if strings.Contains(out, "a.jpg") {
			t.Error("a layer one width away should be clipped")
		}
		if !strings.Contains(out, "b.jpg") {
			t.Error("the centered layer should be visible")
		}
	})

	t.Run("mid slide", func(t *testing.T) {
		out := RenderGallerySurface([]gallery.Placement{
			{ID: 1, Image: "a.jpg", Phase: gallery.PhaseLeaving, Offset: -0.5},
			{ID: 2, Image: "b.jpg", Phase: gallery.PhaseEntering, Offset: 0.5},
		}, w, h)
		lines := strings.Split(out, "\n")
		if len(lines) != h {
			t.Fatalf("surface has %d lines, want %d", len(lines), h)
		}
		for i, line := range lines {
			if got := ansi.StringWidth(line); got != w {
				t.Errorf("line %d width = %d, want %d", i, got, w)
			}
		}
	})

	t.Run("no layers", func(t *testing.T) {
		out := RenderGallerySurface(nil, w, h)
		if strings.TrimSpace(out) != "" {
			t.Error("an empty surface should be blank")
		}
	})
}

func testDetail() card.Detail {
	return card.Detail{
		ProductID:   1,
		Title:       "Шкаф Верона",
		Price:       "45 990 ₽",
		Article:     "Арт: SH-101",
		Description: "Шкаф-купе с зеркалом",
		Cover:       "img/verona-1.jpg",
		Images:      []string{"img/verona-1.jpg", "img/verona-2.jpg"},
	}
}

func TestModalView(t *testing.T) {
	m := NewModal()
	m.SetSize(100, 40)

	gv := GalleryView{
		Placements: []gallery.Placement{{ID: 1, Image: "img/verona-1.jpg"}},
		Index:      0,
		Total:      2,
		Controls:   true,
	}
	out := m.View(testDetail(), gv)

	for _, want := range []string{"Шкаф Верона", "45 990 ₽", "Арт: SH-101", CloseLabel, PrevLabel, NextLabel, "1 / 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("modal should contain %q", want)
		}
	}

	w, h := m.Size()
	if w != lipgloss.Width(out) || h != lipgloss.Height(out) {
		t.Errorf("Size() = %dx%d, rendered %dx%d", w, h, lipgloss.Width(out), lipgloss.Height(out))
	}
	if w != 72 {
		t.Errorf("modal width = %d, want 72", w)
	}

	gv.Controls = false
	out = m.View(testDetail(), gv)
	if strings.Contains(out, PrevLabel) || strings.Contains(out, NextLabel) {
		t.Error("controls should be hidden for a single image")
	}
}

func TestModalSetSize(t *testing.T) {
	m := NewModal()

	m.SetSize(20, 6)
	if m.ContentWidth() != 30-2*modalPadX {
		t.Errorf("narrow content width = %d", m.ContentWidth())
	}
	if m.GalleryHeight() != 3 {
		t.Errorf("short gallery height = %d, want 3", m.GalleryHeight())
	}

	m.SetSize(200, 100)
	if m.ContentWidth() != 72-2*modalPadX {
		t.Errorf("wide content width = %d", m.ContentWidth())
	}
	if m.GalleryHeight() != 9 {
		t.Errorf("tall gallery height = %d, want 9", m.GalleryHeight())
	}
	if m.GalleryWidth() != m.ContentWidth()-2 {
		t.Error("gallery sits inside a one cell frame")
	}
}

func TestModalZoneAt(t *testing.T) {
	m := NewModal()
	m.SetSize(100, 40)
	m.View(testDetail(), GalleryView{Total: 2, Controls: true})

	cw := m.ContentWidth()
	controlsY := modalPadY + m.controlsRow()

	tests := []struct {
		name     string
		x, y     int
		controls bool
		want     ModalZone
	}{
		{"left of box", -1, 5, true, ZoneOutside},
		{"below box", 5, 1000, true, ZoneOutside},
		{"border", 0, 0, true, ZoneInside},
		{"title", modalPadX, modalPadY, true, ZoneInside},
		{"close", modalPadX + cw - 1, modalPadY, true, ZoneClose},
		{"gallery", modalPadX + 5, modalPadY + rowGalleryTop + 1, true, ZoneGallery},
		{"gallery frame", modalPadX, modalPadY + rowGalleryTop + 1, true, ZoneInside},
		{"prev", modalPadX, controlsY, true, ZonePrev},
		{"next", modalPadX + cw - 1, controlsY, true, ZoneNext},
		{"counter", modalPadX + cw/2, controlsY, true, ZoneInside},
		{"prev hidden", modalPadX, controlsY, false, ZoneInside},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.ZoneAt(tt.x, tt.y, tt.controls); got != tt.want {
				t.Errorf("ZoneAt(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
