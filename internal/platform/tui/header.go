package tui

// HeaderAnimator slides the level header in from the left when a session
// starts, then idles.
type HeaderAnimator struct {
	SlideTicks int
	Distance   int // Columns travelled during the slide

	tick int
}

// NewHeaderAnimator creates an animator that starts at the beginning of its slide.
func NewHeaderAnimator(slideTicks, distance int) *HeaderAnimator {
	return &HeaderAnimator{
		SlideTicks: max(slideTicks, 0),
		Distance:   max(distance, 0),
	}
}

// Restart rewinds the slide.
func (h *HeaderAnimator) Restart() {
	h.tick = 0
}

// Tick advances the slide by one step.
func (h *HeaderAnimator) Tick() {
	if h.tick < h.SlideTicks {
		h.tick++
	}
}

// Done reports whether the header has reached its resting position.
func (h *HeaderAnimator) Done() bool {
	return h.tick >= h.SlideTicks
}

// Offset returns how many columns left of its resting position the header is.
// Eases out so the header decelerates as it lands.
func (h *HeaderAnimator) Offset() int {
	if h.Done() {
		return 0
	}
	t := float64(h.tick) / float64(h.SlideTicks)
	remaining := (1 - t) * (1 - t)
	return int(remaining*float64(h.Distance) + 0.5)
}
