package easel

import "testing"

func TestClickFiresOnPressRelease(t *testing.T) {
	p := NewPage(800, 600)
	box := NewBox("button", 200, 100, ColorWhite)
	box.X = 100
	box.Y = 100
	box.Interactable = true
	p.Root().AddChild(box)
	refreshTransforms(p)

	var got *ClickContext
	box.OnClick = func(ctx ClickContext) { got = &ctx }

	p.processPointer(150, 150, true, MouseButtonLeft)
	if got != nil {
		t.Fatal("click must not fire on press alone")
	}
	p.processPointer(150, 150, false, MouseButtonLeft)

	if got == nil {
		t.Fatal("expected a click after press and release")
	}
	if got.Node != box || got.Button != MouseButtonLeft {
		t.Error("click context should name the hit node and button")
	}
	if got.LocalX != 50 || got.LocalY != 50 {
		t.Errorf("local coords = (%v, %v), want (50, 50)", got.LocalX, got.LocalY)
	}
}

func TestClickCancelledByMovingOff(t *testing.T) {
	p := NewPage(800, 600)
	box := NewBox("button", 100, 100, ColorWhite)
	box.Interactable = true
	p.Root().AddChild(box)
	refreshTransforms(p)

	clicked := false
	box.OnClick = func(ClickContext) { clicked = true }

	p.processPointer(50, 50, true, MouseButtonLeft)
	p.processPointer(500, 500, false, MouseButtonLeft)

	if clicked {
		t.Error("releasing off the node must not click")
	}
}

func TestHoverEnterLeave(t *testing.T) {
	p := NewPage(800, 600)
	box := NewBox("card", 100, 100, ColorWhite)
	box.X = 200
	box.Interactable = true
	p.Root().AddChild(box)
	refreshTransforms(p)

	var entered, left int
	box.OnPointerEnter = func(HoverContext) { entered++ }
	box.OnPointerLeave = func(HoverContext) { left++ }

	p.processPointer(250, 50, false, MouseButtonLeft)
	if entered != 1 || left != 0 {
		t.Fatalf("after enter: entered=%d left=%d, want 1/0", entered, left)
	}

	// Moving within the node fires nothing.
	p.processPointer(260, 60, false, MouseButtonLeft)
	if entered != 1 {
		t.Error("moving within the node must not re-enter")
	}

	p.processPointer(10, 10, false, MouseButtonLeft)
	if left != 1 {
		t.Errorf("leave fired %d times, want 1", left)
	}
}

func TestHitTestScrolledCoordinates(t *testing.T) {
	p := NewPage(800, 600)
	p.Viewport().ContentHeight = 2000
	box := NewBox("deep", 100, 100, ColorWhite)
	box.Y = 1000
	box.Interactable = true
	p.Root().AddChild(box)
	refreshTransforms(p)

	clicked := false
	box.OnClick = func(ClickContext) { clicked = true }

	p.Viewport().ScrollY = 980 // node's top now 20px from the screen top
	p.processPointer(50, 50, true, MouseButtonLeft)
	p.processPointer(50, 50, false, MouseButtonLeft)

	if !clicked {
		t.Error("hit testing must account for the scroll offset")
	}
}

func TestHitTestFixedSubtree(t *testing.T) {
	p := NewPage(800, 600)
	p.Viewport().ContentHeight = 2000
	header := NewBox("header", 800, 60, ColorWhite)
	header.Fixed = true
	header.Interactable = true
	p.Root().AddChild(header)
	refreshTransforms(p)

	clicked := false
	header.OnClick = func(ClickContext) { clicked = true }

	// Scrolled deep into the page, the pinned header still sits at the top.
	p.Viewport().ScrollY = 1200
	p.processPointer(400, 30, true, MouseButtonLeft)
	p.processPointer(400, 30, false, MouseButtonLeft)

	if !clicked {
		t.Error("fixed nodes are hit in screen coordinates")
	}
}

func TestFixedSubtreeCallbackCoordinates(t *testing.T) {
	p := NewPage(800, 600)
	p.Viewport().ContentHeight = 2000
	header := NewBox("header", 800, 64, ColorWhite)
	header.Fixed = true
	header.Interactable = true
	p.Root().AddChild(header)
	refreshTransforms(p)

	var click *ClickContext
	var hover *HoverContext
	header.OnClick = func(ctx ClickContext) { click = &ctx }
	header.OnPointerEnter = func(ctx HoverContext) { hover = &ctx }

	// Deep into the page, callbacks on the pinned bar must still see screen
	// coordinates, not the scroll-shifted page coordinates.
	p.Viewport().ScrollY = 1200
	p.processPointer(400, 30, true, MouseButtonLeft)
	p.processPointer(400, 30, false, MouseButtonLeft)

	if click == nil || hover == nil {
		t.Fatal("expected both hover and click on the fixed header")
	}
	if hover.GlobalY != 30 || hover.LocalY != 30 {
		t.Errorf("hover coords GlobalY=%v LocalY=%v, want 30/30", hover.GlobalY, hover.LocalY)
	}
	if click.GlobalX != 400 || click.GlobalY != 30 {
		t.Errorf("click global = (%v, %v), want (400, 30)", click.GlobalX, click.GlobalY)
	}
	if click.LocalX != 400 || click.LocalY != 30 {
		t.Errorf("click local = (%v, %v), want (400, 30) on a 64px bar", click.LocalX, click.LocalY)
	}
}

func TestFixedChildCallbackCoordinates(t *testing.T) {
	p := NewPage(800, 600)
	p.Viewport().ContentHeight = 2000
	header := NewBox("header", 800, 64, ColorWhite)
	header.Fixed = true
	p.Root().AddChild(header)

	// The child itself is not Fixed; it inherits pinning from its parent.
	link := NewBox("link", 80, 24, ColorWhite)
	link.X = 600
	link.Y = 20
	link.Interactable = true
	header.AddChild(link)
	refreshTransforms(p)

	var click *ClickContext
	link.OnClick = func(ctx ClickContext) { click = &ctx }

	p.Viewport().ScrollY = 900
	p.processPointer(640, 30, true, MouseButtonLeft)
	p.processPointer(640, 30, false, MouseButtonLeft)

	if click == nil {
		t.Fatal("expected a click on the pinned child")
	}
	if click.LocalX != 40 || click.LocalY != 10 {
		t.Errorf("click local = (%v, %v), want (40, 10)", click.LocalX, click.LocalY)
	}
}

func TestHitTestTopmostWins(t *testing.T) {
	p := NewPage(800, 600)
	under := NewBox("under", 200, 200, ColorWhite)
	under.Interactable = true
	over := NewBox("over", 200, 200, ColorWhite)
	over.Interactable = true
	over.SetZIndex(10)
	p.Root().AddChild(over)
	p.Root().AddChild(under)
	refreshTransforms(p)

	if hit := p.hitTest(100, 100, 100, 100); hit != over {
		t.Errorf("hit %q, want the higher ZIndex node", hit.Name)
	}
}

func TestHitTestSkipsInvisibleAndNonInteractable(t *testing.T) {
	p := NewPage(800, 600)
	box := NewBox("box", 100, 100, ColorWhite)
	p.Root().AddChild(box)
	refreshTransforms(p)

	if p.hitTest(50, 50, 50, 50) != nil {
		t.Error("non-interactable nodes must not hit")
	}

	box.Interactable = true
	box.Visible = false
	if p.hitTest(50, 50, 50, 50) != nil {
		t.Error("invisible nodes must not hit")
	}
}

func TestInjectClickQueuesAndDrains(t *testing.T) {
	p := NewPage(800, 600)
	box := NewBox("button", 100, 100, ColorWhite)
	box.Interactable = true
	p.Root().AddChild(box)
	refreshTransforms(p)

	clicked := 0
	box.OnClick = func(ClickContext) { clicked++ }

	p.InjectClick(50, 50)
	if len(p.injectQueue) != 2 {
		t.Fatalf("queue holds %d events, want press+release", len(p.injectQueue))
	}

	// One event per tick.
	p.processInput()
	if clicked != 0 || len(p.injectQueue) != 1 {
		t.Fatal("first tick consumes only the press")
	}
	p.processInput()
	if clicked != 1 {
		t.Errorf("clicked %d times, want 1", clicked)
	}
	if len(p.injectQueue) != 0 {
		t.Error("queue should be drained")
	}
}

func TestInjectMoveHovers(t *testing.T) {
	p := NewPage(800, 600)
	box := NewBox("card", 100, 100, ColorWhite)
	box.Interactable = true
	p.Root().AddChild(box)
	refreshTransforms(p)

	entered := false
	box.OnPointerEnter = func(HoverContext) { entered = true }

	p.InjectMove(50, 50)
	p.processInput()

	if !entered {
		t.Error("injected moves should drive hover")
	}
}
