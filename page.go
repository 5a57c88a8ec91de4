package easel

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Page is the top-level object that owns the node tree, the scrolling
// viewport, visibility subscriptions, reveals, sections, and input state.
type Page struct {
	root     *Node
	viewport *Viewport
	debug    bool

	// ClearColor fills the screen before each draw.
	ClearColor Color

	// ScreenshotDir receives labeled frame captures (see Screenshot).
	ScreenshotDir string

	// Visibility subscriptions
	observers  []*VisibilityObserver
	obsScratch []*VisibilityObserver

	// Reveals driven by Update
	reveals []*Reveal

	// Sections and anchors
	sections []*Section
	anchors  map[string]*Section

	// Input state
	pointer     pointerState
	injectQueue []syntheticPointerEvent

	// Render state (set per-frame during Draw)
	cullBounds Rect
	drawCount  int

	screenshotQueue []string
	updateFunc      func() error
	testRunner      *TestRunner
}

// NewPage creates a page with a pre-created root container and a viewport of
// the given screen dimensions.
func NewPage(width, height float64) *Page {
	root := NewContainer("root")
	root.Interactable = true
	return &Page{
		root:          root,
		viewport:      newViewport(width, height),
		anchors:       make(map[string]*Section),
		ClearColor:    Color{1, 1, 1, 1},
		ScreenshotDir: "screenshots",
	}
}

// Root returns the page's root container node.
func (p *Page) Root() *Node {
	return p.root
}

// Viewport returns the page's scrolling viewport.
func (p *Page) Viewport() *Viewport {
	return p.viewport
}

// SetUpdateFunc installs an application callback invoked at the end of every
// Update tick.
func (p *Page) SetUpdateFunc(fn func() error) {
	p.updateFunc = fn
}

// Update advances scrolling, visibility dispatch, reveals, per-node OnUpdate
// hooks, and pointer input for one tick.
func (p *Page) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))

	// Refresh world transforms first so intersection checks and hit testing
	// have accurate positions this tick.
	updateWorldTransform(p.root, identityTransform, 1.0, false)

	_, wheelY := ebiten.Wheel()
	p.viewport.update(dt, wheelY)

	p.dispatchVisibility()
	p.updateReveals(dt)
	p.dispatchOnUpdate(p.root, float64(dt))
	if p.testRunner != nil {
		p.testRunner.step(p)
	}
	p.processInput()

	if p.updateFunc != nil {
		return p.updateFunc()
	}
	return nil
}

// dispatchOnUpdate walks the tree invoking per-node OnUpdate hooks.
func (p *Page) dispatchOnUpdate(n *Node, dt float64) {
	if n.disposed {
		return
	}
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	for _, child := range n.children {
		p.dispatchOnUpdate(child, dt)
	}
}

// Draw renders the page to the given screen image, culling everything
// outside the viewport, then flushes any queued screenshots.
func (p *Page) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if p.debug {
		t0 = time.Now()
	}

	screen.Fill(p.ClearColor.toRGBA())

	// Draw may run before the first Update; cheap when nothing is dirty.
	updateWorldTransform(p.root, identityTransform, 1.0, false)

	p.cullBounds = p.viewport.VisibleBounds()
	p.drawCount = 0
	p.drawNode(screen, p.root, false)

	if p.debug {
		p.debugLog(debugStats{drawTime: time.Since(t0), drawCount: p.drawCount})
	}

	p.flushScreenshots(screen)
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are printed, image load
// failures are logged, and per-frame draw stats go to stderr.
func (p *Page) SetDebugMode(enabled bool) {
	p.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Page debug flag so that node
// operations (which lack a Page pointer) can check it cheaply. Only valid
// with a single Page; multiple Pages with differing debug modes will reflect
// whichever called SetDebugMode last.
var globalDebug bool
