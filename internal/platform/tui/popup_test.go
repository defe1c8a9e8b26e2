package tui

import "testing"

func TestPopupLifecycle(t *testing.T) {
	p := NewPopupController(2, 0, 3)

	if p.Visible() || p.State() != PopupHidden {
		t.Fatalf("new popup should be hidden, got %s", p.State())
	}

	p.Show(PopupWin, "Level complete!", "body")
	if p.State() != PopupOpening {
		t.Fatalf("expected opening, got %s", p.State())
	}
	if p.Progress() != 0 {
		t.Errorf("opening should start at progress 0, got %f", p.Progress())
	}

	p.Tick()
	if p.State() != PopupOpening || p.Progress() != 0.5 {
		t.Errorf("expected half-open, got %s %f", p.State(), p.Progress())
	}
	p.Tick()
	if p.State() != PopupShown || p.Progress() != 1 {
		t.Fatalf("expected shown, got %s %f", p.State(), p.Progress())
	}

	// Zero hold keeps the popup up until hidden.
	for i := 0; i < 10; i++ {
		p.Tick()
	}
	if p.State() != PopupShown {
		t.Fatalf("popup with no hold should stay shown, got %s", p.State())
	}

	p.Hide()
	if p.State() != PopupClosing {
		t.Fatalf("expected closing, got %s", p.State())
	}
	for i := 0; i < 3; i++ {
		p.Tick()
	}
	if p.State() != PopupHidden || p.Visible() {
		t.Errorf("expected hidden after close ticks, got %s", p.State())
	}
	if p.Kind() != PopupWin || p.Title() != "Level complete!" {
		t.Errorf("kind and title should survive hiding, got %s %q", p.Kind(), p.Title())
	}
}

func TestPopupHoldAutoCloses(t *testing.T) {
	p := NewPopupController(0, 2, 1)

	p.Show(PopupGeneric, "hi", "")
	if p.State() != PopupShown {
		t.Fatalf("zero open ticks should show immediately, got %s", p.State())
	}

	p.Tick()
	if p.State() != PopupShown {
		t.Fatalf("expected still shown, got %s", p.State())
	}
	p.Tick()
	if p.State() != PopupClosing {
		t.Fatalf("expected closing after hold, got %s", p.State())
	}
	p.Tick()
	if p.State() != PopupHidden {
		t.Errorf("expected hidden, got %s", p.State())
	}
}

func TestPopupShowReplaces(t *testing.T) {
	p := NewPopupController(2, 0, 2)

	p.Show(PopupWin, "first", "")
	p.Tick()
	p.Tick()
	p.Show(PopupLose, "second", "")

	if p.State() != PopupOpening {
		t.Errorf("replacement should restart opening, got %s", p.State())
	}
	if p.Kind() != PopupLose || p.Title() != "second" {
		t.Errorf("popup not replaced: %s %q", p.Kind(), p.Title())
	}
}

func TestPopupHideWhileOpening(t *testing.T) {
	p := NewPopupController(4, 0, 4)

	p.Show(PopupGeneric, "x", "")
	p.Tick() // progress 0.25

	p.Hide()
	if p.State() != PopupClosing {
		t.Fatalf("expected closing, got %s", p.State())
	}
	if got := p.Progress(); got != 0.25 {
		t.Errorf("closing should continue from current size 0.25, got %f", got)
	}
}

func TestPopupHideNoop(t *testing.T) {
	p := NewPopupController(1, 0, 0)

	p.Hide()
	if p.State() != PopupHidden {
		t.Errorf("hiding a hidden popup should do nothing, got %s", p.State())
	}

	p.Show(PopupGeneric, "x", "")
	p.Tick()
	p.Hide()
	if p.State() != PopupHidden {
		t.Errorf("zero close ticks should hide immediately, got %s", p.State())
	}
}

func TestHeaderAnimator(t *testing.T) {
	h := NewHeaderAnimator(4, 20)

	if h.Done() {
		t.Fatal("new animator should not be done")
	}
	if h.Offset() != 20 {
		t.Errorf("expected full offset at start, got %d", h.Offset())
	}

	prev := h.Offset()
	for i := 0; i < 4; i++ {
		h.Tick()
		if h.Offset() > prev {
			t.Errorf("offset must not grow: %d -> %d", prev, h.Offset())
		}
		prev = h.Offset()
	}

	if !h.Done() || h.Offset() != 0 {
		t.Errorf("expected done at offset 0, got done=%v offset=%d", h.Done(), h.Offset())
	}

	h.Tick()
	if h.Offset() != 0 {
		t.Error("idle header should stay put")
	}

	h.Restart()
	if h.Done() || h.Offset() != 20 {
		t.Errorf("restart should rewind, got done=%v offset=%d", h.Done(), h.Offset())
	}
}

func TestHeaderAnimatorNoSlide(t *testing.T) {
	h := NewHeaderAnimator(0, 20)
	if !h.Done() || h.Offset() != 0 {
		t.Errorf("zero slide ticks should start at rest, got %d", h.Offset())
	}
}
