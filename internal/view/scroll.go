package view

// DefaultScrollStep is how far one press of a carousel button scrolls, in
// terminal columns.
const DefaultScrollStep = 20

// Affordances tells which carousel scroll buttons are shown.
type Affordances struct {
	Left  bool
	Right bool
}

// Scroller is the horizontal scroll state of one carousel. Button presses
// set a target that the offset approaches over several animation steps.
type Scroller struct {
	offset   int
	target   int
	content  int
	viewport int
}

// NewScroller creates a scroller at the start of its content.
func NewScroller(content, viewport int) *Scroller {
	s := &Scroller{}
	s.Resize(content, viewport)
	return s
}

// Resize updates the content and viewport widths and clamps the position.
func (s *Scroller) Resize(content, viewport int) {
	s.content = max(content, 0)
	s.viewport = max(viewport, 0)
	s.offset = s.clamp(s.offset)
	s.target = s.clamp(s.target)
}

// MaxOffset is the largest valid offset.
func (s *Scroller) MaxOffset() int {
	return max(s.content-s.viewport, 0)
}

// Offset returns the current offset.
func (s *Scroller) Offset() int { return s.offset }

// Target returns the offset the scroller is moving to.
func (s *Scroller) Target() int { return s.target }

// Viewport returns the viewport width.
func (s *Scroller) Viewport() int { return s.viewport }

// Affordances computes button visibility from the current offset. The left
// button hides at the start; the right one hides within one column of the end.
func (s *Scroller) Affordances() Affordances {
	return Affordances{
		Left:  s.offset > 0,
		Right: s.offset < s.MaxOffset()-1,
	}
}

// ScrollBy moves the target by delta columns, clamped to the content.
func (s *Scroller) ScrollBy(delta int) {
	s.target = s.clamp(s.target + delta)
}

// SetOffset jumps straight to x, as a direct scroll event does.
func (s *Scroller) SetOffset(x int) {
	s.offset = s.clamp(x)
	s.target = s.offset
}

// Animating reports whether the offset has not reached the target yet.
func (s *Scroller) Animating() bool {
	return s.offset != s.target
}

// Step advances the offset one animation frame toward the target, covering
// half the remaining distance. It returns true while still moving.
func (s *Scroller) Step() bool {
	diff := s.target - s.offset
	if diff == 0 {
		return false
	}
	move := diff / 2
	if move == 0 {
		move = diff
	}
	s.offset += move
	return s.Animating()
}

func (s *Scroller) clamp(x int) int {
	return min(max(x, 0), s.MaxOffset())
}
