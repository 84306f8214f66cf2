package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/dbmrq/vitrina/internal/card"
	"github.com/dbmrq/vitrina/internal/tui/styles"
	"github.com/dbmrq/vitrina/internal/view"
)

// ArrowWidth is the width of the scroll button column on each side.
const ArrowWidth = 2

// Carousel arrow glyphs.
const (
	ArrowLeft  = "‹"
	ArrowRight = "›"
)

// CarouselViewport returns the card area width for a carousel drawn in width cells.
func CarouselViewport(width int) int {
	v := width - 2*ArrowWidth
	if v < CardWidth {
		return CardWidth
	}
	return v
}

// RenderCarousel draws a horizontally scrolled strip of cards. The visible
// window starts at offset and is viewport cells wide; hidden affordances
// leave blank columns so the strip does not shift.
func RenderCarousel(cards []card.Card, selected, offset, viewport int, aff view.Affordances) string {
	strip := strings.Split(RenderCardRow(cards, selected), "\n")
	for len(strip) < CardHeight {
		strip = append(strip, "")
	}

	mid := CardHeight / 2
	lines := make([]string, len(strip))
	for i, line := range strip {
		left, right := strings.Repeat(" ", ArrowWidth), strings.Repeat(" ", ArrowWidth)
		if i == mid {
			if aff.Left {
				left = styles.ArrowStyle.Render(ArrowLeft) + " "
			}
			if aff.Right {
				right = " " + styles.ArrowStyle.Render(ArrowRight)
			}
		}
		window := padRight(ansi.Cut(line, offset, offset+viewport), viewport)
		lines[i] = left + window + right
	}
	return strings.Join(lines, "\n")
}

// CarouselHit is what a click on a carousel row landed on.
type CarouselHit int

const (
	// HitNothing is empty space.
	HitNothing CarouselHit = iota
	// HitLeftArrow is the left scroll button.
	HitLeftArrow
	// HitRightArrow is the right scroll button.
	HitRightArrow
	// HitCard is a card; the index is returned alongside.
	HitCard
)

// CarouselHitTest maps column x of a carousel drawn with the given offset
// and viewport to a scroll button or a card index.
func CarouselHitTest(x, offset, viewport, count int, aff view.Affordances) (CarouselHit, int) {
	switch {
	case x < ArrowWidth:
		if aff.Left {
			return HitLeftArrow, 0
		}
		return HitNothing, 0
	case x >= ArrowWidth+viewport:
		if aff.Right {
			return HitRightArrow, 0
		}
		return HitNothing, 0
	}

	pos := x - ArrowWidth + offset
	i := pos / CardSpan
	if i >= count || pos%CardSpan >= CardWidth {
		return HitNothing, 0
	}
	return HitCard, i
}
