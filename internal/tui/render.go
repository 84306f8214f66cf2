package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const resetStyle = "\x1b[0m"

// overlay draws fg on top of bg with its top-left corner at column x, row y.
// The background stays visible around the foreground.
func overlay(bg, fg string, x, y int) string {
	bgLines := strings.Split(bg, "\n")
	for i, fl := range strings.Split(fg, "\n") {
		row := y + i
		if row < 0 || row >= len(bgLines) {
			continue
		}
		bl := bgLines[row]
		fw := ansi.StringWidth(fl)
		left := fitWidth(ansi.Cut(bl, 0, x), x)
		right := ansi.Cut(bl, x+fw, ansi.StringWidth(bl))
		bgLines[row] = left + resetStyle + fl + resetStyle + right
	}
	return strings.Join(bgLines, "\n")
}

// centerOrigin returns the top-left corner that centers a w x h block on a
// width x height screen, never above or left of the origin.
func centerOrigin(width, height, w, h int) (int, int) {
	return max((width-w)/2, 0), max((height-h)/2, 0)
}

// fitWidth pads or cuts s to exactly width cells.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(s)
	switch {
	case w > width:
		return ansi.Cut(s, 0, width)
	case w < width:
		return s + strings.Repeat(" ", width-w)
	default:
		return s
	}
}

// viewport returns height lines of body starting at line offset, padded
// with blank lines at the end.
func viewport(body string, offset, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(body, "\n")
	if offset > len(lines) {
		offset = len(lines)
	}
	lines = lines[offset:]
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
