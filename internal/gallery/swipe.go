package gallery

import "math"

// DefaultSwipeThreshold is the minimum horizontal displacement, in touch
// coordinate units, that counts as a swipe.
const DefaultSwipeThreshold = 50.0

// SwipeDirection maps a horizontal gesture to a navigation direction.
//
// The displacement is startX - endX. A positive displacement (the finger
// moved left, dragging content toward the start) means Next; a negative one
// means Prev. Displacements smaller than threshold in magnitude are taps, not
// swipes.
func SwipeDirection(startX, endX, threshold float64) (Direction, bool) {
	d := startX - endX
	if d == 0 || math.Abs(d) < threshold {
		return Next, false
	}
	if d > 0 {
		return Next, true
	}
	return Prev, true
}
