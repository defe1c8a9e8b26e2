package tui

// PopupKind selects the message a popup carries.
type PopupKind uint8

const (
	PopupGeneric PopupKind = iota
	PopupWin
	PopupLose
)

// String returns the string representation of a popup kind.
func (k PopupKind) String() string {
	switch k {
	case PopupWin:
		return "win"
	case PopupLose:
		return "lose"
	default:
		return "generic"
	}
}

// PopupState is the phase of the popup animation.
type PopupState uint8

const (
	PopupHidden PopupState = iota
	PopupOpening
	PopupShown
	PopupClosing
)

// String returns the string representation of a popup state.
func (s PopupState) String() string {
	switch s {
	case PopupOpening:
		return "opening"
	case PopupShown:
		return "shown"
	case PopupClosing:
		return "closing"
	default:
		return "hidden"
	}
}

// PopupController animates a single modal popup.
// It is advanced one step per Tick from the UI tick loop.
//
// Hidden -> Opening -> Shown -> Closing -> Hidden
//
// A zero HoldTicks keeps the popup Shown until Hide is called.
type PopupController struct {
	OpenTicks  int
	HoldTicks  int
	CloseTicks int

	state PopupState
	kind  PopupKind
	title string
	body  string
	tick  int
}

// NewPopupController creates a hidden popup with the given phase durations.
func NewPopupController(openTicks, holdTicks, closeTicks int) *PopupController {
	return &PopupController{
		OpenTicks:  max(openTicks, 0),
		HoldTicks:  max(holdTicks, 0),
		CloseTicks: max(closeTicks, 0),
	}
}

// Show opens a popup. A popup that is already visible is replaced and the
// opening animation starts over.
func (p *PopupController) Show(kind PopupKind, title, body string) {
	p.kind = kind
	p.title = title
	p.body = body
	p.tick = 0
	p.state = PopupOpening
	if p.OpenTicks == 0 {
		p.state = PopupShown
	}
}

// Hide starts closing the popup. Hiding an already hidden or closing popup
// does nothing.
func (p *PopupController) Hide() {
	switch p.state {
	case PopupHidden, PopupClosing:
		return
	case PopupOpening:
		// Close from the current size rather than jumping to full.
		p.tick = p.CloseTicks - p.tick*p.CloseTicks/max(p.OpenTicks, 1)
	default:
		p.tick = 0
	}
	p.state = PopupClosing
	if p.CloseTicks == 0 {
		p.state = PopupHidden
	}
}

// Tick advances the animation by one step.
func (p *PopupController) Tick() {
	switch p.state {
	case PopupOpening:
		p.tick++
		if p.tick >= p.OpenTicks {
			p.state = PopupShown
			p.tick = 0
		}
	case PopupShown:
		if p.HoldTicks == 0 {
			return
		}
		p.tick++
		if p.tick >= p.HoldTicks {
			p.Hide()
		}
	case PopupClosing:
		p.tick++
		if p.tick >= p.CloseTicks {
			p.state = PopupHidden
			p.tick = 0
		}
	}
}

// State returns the current animation phase.
func (p *PopupController) State() PopupState {
	return p.state
}

// Kind returns the kind of the current or last popup.
func (p *PopupController) Kind() PopupKind {
	return p.kind
}

// Title returns the popup title.
func (p *PopupController) Title() string {
	return p.title
}

// Body returns the popup body text.
func (p *PopupController) Body() string {
	return p.body
}

// Visible reports whether any part of the popup is on screen.
func (p *PopupController) Visible() bool {
	return p.state != PopupHidden
}

// Progress returns how open the popup is, from 0 (hidden) to 1 (shown).
func (p *PopupController) Progress() float64 {
	switch p.state {
	case PopupOpening:
		return float64(p.tick) / float64(max(p.OpenTicks, 1))
	case PopupShown:
		return 1
	case PopupClosing:
		return 1 - float64(p.tick)/float64(max(p.CloseTicks, 1))
	default:
		return 0
	}
}
