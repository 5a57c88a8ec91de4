package easel

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestViewportMaxScroll(t *testing.T) {
	v := newViewport(800, 600)
	v.ContentHeight = 2000
	if got := v.MaxScroll(); got != 1400 {
		t.Errorf("MaxScroll() = %v, want 1400", got)
	}

	// Content shorter than the window never scrolls.
	v.ContentHeight = 300
	if got := v.MaxScroll(); got != 0 {
		t.Errorf("MaxScroll() = %v, want 0 for short content", got)
	}
}

func TestViewportScrollByClamps(t *testing.T) {
	v := newViewport(800, 600)
	v.ContentHeight = 2000

	v.ScrollBy(-50)
	if v.ScrollY != 0 {
		t.Errorf("ScrollY = %v, want clamp at 0", v.ScrollY)
	}

	v.ScrollBy(99999)
	if v.ScrollY != 1400 {
		t.Errorf("ScrollY = %v, want clamp at MaxScroll", v.ScrollY)
	}
}

func TestViewportScrollToSnaps(t *testing.T) {
	v := newViewport(800, 600)
	v.ContentHeight = 2000

	v.ScrollTo(500, 0, ease.Linear)
	if v.ScrollY != 500 {
		t.Errorf("ScrollY = %v, want immediate snap to 500", v.ScrollY)
	}
	if v.Scrolling() {
		t.Error("zero-duration scroll must not leave a tween in flight")
	}

	// Targets are clamped before the move.
	v.ScrollTo(99999, 0, ease.Linear)
	if v.ScrollY != 1400 {
		t.Errorf("ScrollY = %v, want clamped target", v.ScrollY)
	}
}

func TestViewportScrollToAnimates(t *testing.T) {
	v := newViewport(800, 600)
	v.ContentHeight = 2000

	v.ScrollTo(1000, 1.0, ease.Linear)
	if !v.Scrolling() {
		t.Fatal("expected an in-flight scroll animation")
	}

	v.update(0.5, 0)
	if math.Abs(v.ScrollY-500) > 1 {
		t.Errorf("ScrollY midway = %v, want ~500", v.ScrollY)
	}

	v.update(0.5, 0)
	if math.Abs(v.ScrollY-1000) > 0.5 {
		t.Errorf("ScrollY = %v, want ~1000", v.ScrollY)
	}
	if v.Scrolling() {
		t.Error("finished animation must clear the tween")
	}
}

func TestViewportWheelCancelsAnimation(t *testing.T) {
	v := newViewport(800, 600)
	v.ContentHeight = 2000

	v.ScrollTo(1000, 1.0, ease.Linear)
	v.update(1.0/60, 1) // one notch up mid-flight

	if v.Scrolling() {
		t.Error("manual wheel input must cancel the anchor scroll")
	}
}

func TestViewportWheelMomentum(t *testing.T) {
	v := newViewport(800, 600)
	v.ContentHeight = 2000
	dt := float32(1.0 / 60)

	// One notch down (negative wheel delta) scrolls the page down.
	v.update(dt, -1)
	first := v.ScrollY
	if first <= 0 {
		t.Fatalf("ScrollY = %v after wheel down, want > 0", first)
	}

	// Velocity decays; movement continues but shrinks each tick.
	v.update(dt, 0)
	second := v.ScrollY - first
	if second <= 0 || second >= first {
		t.Errorf("second tick moved %v, want a damped positive step (< %v)", second, first)
	}

	// Eventually the viewport comes to rest.
	for i := 0; i < 600; i++ {
		v.update(dt, 0)
	}
	if v.velocity != 0 {
		t.Errorf("velocity = %v after settling, want 0", v.velocity)
	}
}

func TestViewportScrollToStartIgnoresVelocity(t *testing.T) {
	v := newViewport(800, 600)
	v.ContentHeight = 2000
	v.update(1.0/60, -5)
	if v.velocity == 0 {
		t.Fatal("setup: expected wheel velocity")
	}

	v.ScrollTo(0, 0, ease.Linear)
	if v.velocity != 0 {
		t.Error("ScrollTo must zero any residual wheel velocity")
	}
	if v.ScrollY != 0 {
		t.Errorf("ScrollY = %v, want 0", v.ScrollY)
	}
}

func TestViewportVisibleBounds(t *testing.T) {
	v := newViewport(800, 600)
	v.ContentHeight = 2000
	v.ScrollY = 350

	b := v.VisibleBounds()
	if b.X != 0 || b.Y != 350 || b.Width != 800 || b.Height != 600 {
		t.Errorf("VisibleBounds() = %+v, want {0, 350, 800, 600}", b)
	}
}
