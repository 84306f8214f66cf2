package components

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/dbmrq/vitrina/internal/gallery"
	"github.com/dbmrq/vitrina/internal/tui/styles"
)

// RenderSlide draws one gallery image as a width x height block with the
// image reference centered.
func RenderSlide(image string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	label := styles.ImageRefStyle.Render(fit("▣ "+image, width))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, label)
}

// segment is a horizontal run of a slide line placed on the surface.
type segment struct {
	start int
	text  string
}

// RenderGallerySurface composites the gallery layers onto a width x height
// surface. A layer at offset o is shifted by o viewport widths; the parts
// outside the surface are clipped. Empty placements render a blank surface.
func RenderGallerySurface(placements []gallery.Placement, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	slides := make([][]string, len(placements))
	shifts := make([]int, len(placements))
	for i, p := range placements {
		slides[i] = strings.Split(RenderSlide(p.Image, width, height), "\n")
		shifts[i] = int(math.Round(p.Offset * float64(width)))
	}

	lines := make([]string, height)
	for row := range lines {
		var segs []segment
		for i := range placements {
			shift := shifts[i]
			if shift >= width || shift <= -width {
				continue
			}
			line := ""
			if row < len(slides[i]) {
				line = padRight(slides[i][row], width)
			}
			from := max(0, -shift)
			to := min(width, width-shift)
			segs = append(segs, segment{
				start: max(0, shift),
				text:  ansi.Cut(line, from, to),
			})
		}
		lines[row] = composeLine(segs, width)
	}
	return strings.Join(lines, "\n")
}

// composeLine lays segments left to right on a blank line of width cells.
// Where two segments overlap, the later start wins.
func composeLine(segs []segment, width int) string {
	sort.SliceStable(segs, func(i, j int) bool { return segs[i].start < segs[j].start })

	var b strings.Builder
	pos := 0
	for i, s := range segs {
		if s.start > pos {
			b.WriteString(strings.Repeat(" ", s.start-pos))
			pos = s.start
		}
		end := s.start + ansi.StringWidth(s.text)
		if i+1 < len(segs) && segs[i+1].start < end {
			end = segs[i+1].start
		}
		if end > width {
			end = width
		}
		if end <= pos {
			continue
		}
		b.WriteString(ansi.Cut(s.text, pos-s.start, end-s.start))
		pos = end
	}
	if pos < width {
		b.WriteString(strings.Repeat(" ", width-pos))
	}
	return b.String()
}
