package easel

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPositionReachesTarget(t *testing.T) {
	node := NewContainer("pos")
	node.X = 10
	node.Y = 20

	g := TweenPosition(node, 100, 200, 1.0, ease.Linear)

	// Run for full duration using exact halves to avoid float32 accumulation drift.
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.X-100) > 0.5 {
		t.Errorf("X = %f, want ~100", node.X)
	}
	if math.Abs(node.Y-200) > 0.5 {
		t.Errorf("Y = %f, want ~200", node.Y)
	}
}

func TestTweenScaleReachesTarget(t *testing.T) {
	node := NewContainer("scale")

	g := TweenScale(node, 2.0, 3.0, 0.5, ease.Linear)

	g.Update(0.25)
	g.Update(0.25)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.ScaleX-2.0) > 0.01 {
		t.Errorf("ScaleX = %f, want ~2.0", node.ScaleX)
	}
	if math.Abs(node.ScaleY-3.0) > 0.01 {
		t.Errorf("ScaleY = %f, want ~3.0", node.ScaleY)
	}
}

func TestTweenAlphaReachesTarget(t *testing.T) {
	node := NewContainer("alpha")
	node.Alpha = 0

	g := TweenAlpha(node, 1.0, 0.5, ease.Linear)
	g.Update(0.25)
	if math.Abs(node.Alpha-0.5) > 0.01 {
		t.Errorf("Alpha midway = %f, want ~0.5", node.Alpha)
	}
	g.Update(0.25)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.Alpha-1.0) > 0.01 {
		t.Errorf("Alpha = %f, want ~1.0", node.Alpha)
	}
}

func TestTweenFillReachesTarget(t *testing.T) {
	node := NewBox("fill", 10, 10, Color{0, 0, 0, 1})

	g := TweenFill(node, Color{1, 0.5, 0.25, 1}, 1.0, ease.Linear)
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.Fill.R-1.0) > 0.01 || math.Abs(node.Fill.G-0.5) > 0.01 ||
		math.Abs(node.Fill.B-0.25) > 0.01 {
		t.Errorf("Fill = %+v, want (1, 0.5, 0.25, 1)", node.Fill)
	}
}

func TestTweenDelayHoldsInitialState(t *testing.T) {
	node := NewContainer("delayed")
	node.X = 0

	g := TweenPosition(node, 100, 0, 1.0, ease.Linear)
	g.SetDelay(0.5)

	g.Update(0.25)
	if node.X != 0 {
		t.Errorf("X = %f during delay, want 0", node.X)
	}
	g.Update(0.25)
	if node.X != 0 {
		t.Errorf("X = %f at exact delay expiry, want 0", node.X)
	}
}

func TestTweenDelayCarriesRemainder(t *testing.T) {
	node := NewContainer("remainder")
	node.X = 0

	g := TweenPosition(node, 100, 0, 1.0, ease.Linear)
	g.SetDelay(0.5)

	// One big tick: 0.5 eaten by the delay, 0.5 drives the tween.
	g.Update(1.0)
	if math.Abs(node.X-50) > 1 {
		t.Errorf("X = %f after remainder tick, want ~50", node.X)
	}

	g.Update(0.5)
	if !g.Done {
		t.Fatal("expected Done after delay plus duration")
	}
	if math.Abs(node.X-100) > 0.5 {
		t.Errorf("X = %f, want ~100", node.X)
	}
}

func TestTweenNonPositiveDelayIgnored(t *testing.T) {
	node := NewContainer("nodelay")
	g := TweenAlpha(node, 0, 0.5, ease.Linear)
	g.SetDelay(0)
	g.SetDelay(-1)

	g.Update(0.25)
	g.Update(0.25)
	if !g.Done {
		t.Error("non-positive delays must not defer the tween")
	}
}

func TestTweenStopsOnDisposedNode(t *testing.T) {
	node := NewContainer("doomed")
	g := TweenPosition(node, 100, 100, 1.0, ease.Linear)

	g.Update(0.25)
	node.Dispose()
	g.Update(0.25)

	if !g.Done {
		t.Error("tween on a disposed node must stop")
	}
}

func TestTweenUpdateAfterDoneIsNoop(t *testing.T) {
	node := NewContainer("done")
	g := TweenAlpha(node, 0.5, 0.5, ease.Linear)
	g.Update(0.25)
	g.Update(0.25)
	if !g.Done {
		t.Fatal("setup: tween should be done")
	}

	a := node.Alpha
	g.Update(1.0)
	if node.Alpha != a {
		t.Error("Update after Done must not write fields")
	}
}

func TestTweenMarksNodeDirty(t *testing.T) {
	node := NewContainer("dirty")
	updateWorldTransform(node, identityTransform, 1.0, false)
	if node.transformDirty {
		t.Fatal("setup: node should be clean")
	}

	g := TweenPosition(node, 10, 10, 1.0, ease.Linear)
	g.Update(0.1)
	if !node.transformDirty {
		t.Error("tween writes must mark the node dirty")
	}
}
