package easel

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	defaultWheelSpeed = 36.0 // pixels per wheel notch
	defaultDamping    = 0.88 // velocity retained per tick
	minScrollVelocity = 0.05 // below this the viewport is considered at rest
)

// Viewport is the scrollable window onto the page. The page content stacks
// vertically; only scroll along Y is modeled.
type Viewport struct {
	// Width and Height are the screen-space dimensions of the visible area.
	Width, Height float64

	// ScrollY is the page-space Y coordinate at the top of the visible area.
	ScrollY float64

	// ContentHeight is the total stacked height of the page. Scrolling is
	// clamped so the visible area stays within [0, ContentHeight].
	ContentHeight float64

	// WheelSpeed converts wheel notches to scroll velocity (pixels per notch).
	WheelSpeed float64

	// Damping is the fraction of scroll velocity retained each tick.
	Damping float64

	velocity    float64
	scrollTween *gween.Tween
}

// newViewport creates a Viewport with default wheel behavior.
func newViewport(width, height float64) *Viewport {
	return &Viewport{
		Width:      width,
		Height:     height,
		WheelSpeed: defaultWheelSpeed,
		Damping:    defaultDamping,
	}
}

// VisibleBounds returns the page-space rectangle currently on screen.
func (v *Viewport) VisibleBounds() Rect {
	return Rect{X: 0, Y: v.ScrollY, Width: v.Width, Height: v.Height}
}

// MaxScroll returns the largest valid ScrollY.
func (v *Viewport) MaxScroll() float64 {
	max := v.ContentHeight - v.Height
	if max < 0 {
		return 0
	}
	return max
}

// ScrollTo animates the viewport to the given page Y over duration seconds.
// The target is clamped into the scrollable range first. A non-positive
// duration snaps immediately.
func (v *Viewport) ScrollTo(y float64, duration float32, easeFn ease.TweenFunc) {
	target := math.Max(0, math.Min(y, v.MaxScroll()))
	v.velocity = 0
	if duration <= 0 {
		v.ScrollY = target
		v.scrollTween = nil
		return
	}
	v.scrollTween = gween.New(float32(v.ScrollY), float32(target), duration, easeFn)
}

// ScrollBy offsets the viewport immediately, clamped into range.
func (v *Viewport) ScrollBy(dy float64) {
	v.ScrollY += dy
	v.clamp()
}

// update advances wheel momentum and scroll animation. Called from Page.Update().
// wheelDY is the raw wheel delta for this tick (positive = scroll up).
func (v *Viewport) update(dt float32, wheelDY float64) {
	if wheelDY != 0 {
		// Manual input cancels an in-flight anchor scroll.
		v.scrollTween = nil
		v.velocity -= wheelDY * v.WheelSpeed
	}

	if v.scrollTween != nil {
		val, done := v.scrollTween.Update(dt)
		v.ScrollY = float64(val)
		if done {
			v.scrollTween = nil
		}
	} else if v.velocity != 0 {
		v.ScrollY += v.velocity
		v.velocity *= v.Damping
		if math.Abs(v.velocity) < minScrollVelocity {
			v.velocity = 0
		}
	}

	v.clamp()
}

// Scrolling reports whether an anchor scroll animation is in flight.
func (v *Viewport) Scrolling() bool {
	return v.scrollTween != nil
}

// clamp restricts ScrollY so the visible area stays within the content.
func (v *Viewport) clamp() {
	if v.ScrollY < 0 {
		v.ScrollY = 0
		v.velocity = 0
	}
	if max := v.MaxScroll(); v.ScrollY > max {
		v.ScrollY = max
		v.velocity = 0
	}
}
