package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/vitrina/internal/card"
	"github.com/dbmrq/vitrina/internal/gallery"
	"github.com/dbmrq/vitrina/internal/tui/styles"
)

// Modal captions.
const (
	CloseLabel = "✕ Закрыть"
	PrevLabel  = "‹ Назад"
	NextLabel  = "Вперёд ›"
)

// Modal chrome in cells: double border plus padding.
const (
	modalPadX = 1 + 2
	modalPadY = 1 + 1
)

// Rows of the modal content, relative to the first content line.
const (
	rowTitle      = 0
	rowGalleryTop = 2
)

// ModalZone is a clickable region of the modal.
type ModalZone int

const (
	// ZoneOutside is anywhere outside the modal box.
	ZoneOutside ModalZone = iota
	// ZoneInside is inside the box but not on a control.
	ZoneInside
	// ZoneClose is the close control.
	ZoneClose
	// ZonePrev is the previous-image control.
	ZonePrev
	// ZoneNext is the next-image control.
	ZoneNext
	// ZoneGallery is the gallery surface.
	ZoneGallery
)

// GalleryView is the gallery state the modal draws.
type GalleryView struct {
	Placements []gallery.Placement
	Index      int
	Total      int
	Controls   bool
}

// Modal renders the product detail dialog and maps clicks to its controls.
type Modal struct {
	width         int
	galleryHeight int

	// Size of the last rendered box, used for hit testing.
	boxWidth  int
	boxHeight int
}

// NewModal creates a Modal sized for an 80x24 terminal.
func NewModal() *Modal {
	m := &Modal{}
	m.SetSize(80, 24)
	return m
}

// SetSize fits the modal to the terminal.
func (m *Modal) SetSize(termWidth, termHeight int) {
	m.width = min(max(termWidth-4, 30), 72)
	m.galleryHeight = min(max(termHeight/3, 3), 9)
}

// ContentWidth is the width available inside border and padding.
func (m *Modal) ContentWidth() int {
	return m.width - 2*modalPadX
}

// GalleryWidth is the width of the gallery surface inside its frame.
func (m *Modal) GalleryWidth() int {
	return m.ContentWidth() - 2
}

// GalleryHeight is the height of the gallery surface inside its frame.
func (m *Modal) GalleryHeight() int {
	return m.galleryHeight
}

func (m *Modal) controlsRow() int {
	return rowGalleryTop + m.galleryHeight + 2
}

// View renders the modal box.
func (m *Modal) View(d card.Detail, g GalleryView) string {
	cw := m.ContentWidth()

	title := styles.ModalTitleStyle.Render(fit(d.Title, cw-lipgloss.Width(CloseLabel)-2))
	closeCtl := styles.ControlStyle.Render(CloseLabel)
	gap := cw - lipgloss.Width(title) - lipgloss.Width(closeCtl)
	header := title + strings.Repeat(" ", max(gap, 1)) + closeCtl

	surface := RenderGallerySurface(g.Placements, m.GalleryWidth(), m.galleryHeight)
	frame := styles.GalleryFrameStyle.Render(surface)

	var controls string
	if g.Controls {
		counter := styles.MutedTextStyle.Render(fmt.Sprintf("%d / %d", g.Index+1, g.Total))
		prev := styles.ControlStyle.Render(PrevLabel)
		next := styles.ControlStyle.Render(NextLabel)
		space := cw - lipgloss.Width(prev) - lipgloss.Width(next) - lipgloss.Width(counter)
		left := max(space/2, 1)
		right := max(space-left, 1)
		controls = prev + strings.Repeat(" ", left) + counter + strings.Repeat(" ", right) + next
	}

	body := []string{
		header,
		"",
		frame,
		controls,
		"",
		styles.PriceStyle.Render(d.Price),
		styles.MutedTextStyle.Render(d.Article),
	}
	if d.Description != "" {
		body = append(body, "", lipgloss.NewStyle().Width(cw).Render(d.Description))
	}

	box := styles.ModalStyle.Width(m.width - 2).Render(strings.Join(body, "\n"))
	m.boxWidth = lipgloss.Width(box)
	m.boxHeight = lipgloss.Height(box)
	return box
}

// Size returns the size of the last rendered box.
func (m *Modal) Size() (int, int) {
	return m.boxWidth, m.boxHeight
}

// ZoneAt maps a click at x, y relative to the box's top-left corner.
func (m *Modal) ZoneAt(x, y int, controls bool) ModalZone {
	if x < 0 || y < 0 || x >= m.boxWidth || y >= m.boxHeight {
		return ZoneOutside
	}

	cx, cy := x-modalPadX, y-modalPadY
	cw := m.ContentWidth()
	if cx < 0 || cx >= cw {
		return ZoneInside
	}

	switch {
	case cy == rowTitle && cx >= cw-lipgloss.Width(CloseLabel):
		return ZoneClose
	case cy > rowGalleryTop && cy <= rowGalleryTop+m.galleryHeight && cx > 0 && cx < cw-1:
		return ZoneGallery
	case cy == m.controlsRow() && controls:
		if cx < lipgloss.Width(PrevLabel) {
			return ZonePrev
		}
		if cx >= cw-lipgloss.Width(NextLabel) {
			return ZoneNext
		}
	}
	return ZoneInside
}
