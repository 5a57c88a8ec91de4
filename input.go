package easel

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// pointerState tracks the single mouse pointer across ticks.
type pointerState struct {
	down      bool
	lastX     float64 // screen-space
	lastY     float64
	hitNode   *Node
	hoverNode *Node // last node the pointer was hovering over (for enter/leave)
	button    MouseButton
}

// processInput handles mouse input for one tick. World transforms are already
// refreshed at the start of Page.Update().
func (p *Page) processInput() {
	// Injected events take priority over the real mouse (tests drive these).
	if p.processInjected() {
		return
	}

	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)

	// Detect which button is pressed. If the pointer is already down, the
	// stored button wins so it cannot change mid-interaction.
	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}

	p.processPointer(sx, sy, pressed, button)
}

// processPointer runs the pointer state machine for one screen-space sample.
func (p *Page) processPointer(sx, sy float64, pressed bool, button MouseButton) {
	ps := &p.pointer

	target := p.hitTest(sx, sy, sx, sy+p.viewport.ScrollY)

	// Fire hover enter/leave when the hovered node changes.
	if target != ps.hoverNode {
		if ps.hoverNode != nil && !ps.hoverNode.IsDisposed() {
			p.fireHover(ps.hoverNode.OnPointerLeave, ps.hoverNode, sx, sy)
		}
		if target != nil {
			p.fireHover(target.OnPointerEnter, target, sx, sy)
		}
		ps.hoverNode = target
	}

	if pressed && !ps.down {
		ps.down = true
		ps.button = button
		ps.hitNode = target
	} else if !pressed && ps.down {
		// Click fires on press then release over the same node.
		if ps.hitNode != nil && ps.hitNode == target {
			p.fireClick(target, sx, sy, ps.button)
		}
		ps.down = false
		ps.hitNode = nil
	}

	ps.lastX = sx
	ps.lastY = sy
}

// hitTest returns the topmost interactable node under the pointer. Fixed
// subtrees are tested in screen coordinates, scrolled subtrees in page
// coordinates.
func (p *Page) hitTest(sx, sy, wx, wy float64) *Node {
	return hitNode(p.root, sx, sy, wx, wy, false)
}

func hitNode(n *Node, sx, sy, wx, wy float64, fixed bool) *Node {
	if !n.Visible || n.disposed {
		return nil
	}
	fixed = fixed || n.Fixed

	// Topmost children first.
	kids := n.sortedChildrenList()
	for i := len(kids) - 1; i >= 0; i-- {
		if hit := hitNode(kids[i], sx, sy, wx, wy, fixed); hit != nil {
			return hit
		}
	}

	if !n.Interactable {
		return nil
	}
	w, h := n.Size()
	if w <= 0 || h <= 0 {
		return nil
	}
	x, y := wx, wy
	if fixed {
		x, y = sx, sy
	}
	lx, ly := n.WorldToLocal(x, y)
	if lx >= 0 && lx <= w && ly >= 0 && ly <= h {
		return n
	}
	return nil
}

// --- Event dispatch ---

// inFixedSubtree reports whether n or any ancestor is pinned to the screen.
func inFixedSubtree(n *Node) bool {
	for ; n != nil; n = n.Parent {
		if n.Fixed {
			return true
		}
	}
	return false
}

// pointerCoords resolves a screen-space sample into the node's event space:
// screen coordinates for fixed subtrees, page coordinates otherwise. Must
// match the coordinate space hitNode tested the node in.
func (p *Page) pointerCoords(node *Node, sx, sy float64) (float64, float64) {
	if inFixedSubtree(node) {
		return sx, sy
	}
	return sx, sy + p.viewport.ScrollY
}

func (p *Page) fireHover(fn func(HoverContext), node *Node, sx, sy float64) {
	if fn == nil {
		return
	}
	wx, wy := p.pointerCoords(node, sx, sy)
	lx, ly := node.WorldToLocal(wx, wy)
	fn(HoverContext{
		Node: node, UserData: node.UserData,
		GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly,
	})
}

func (p *Page) fireClick(node *Node, sx, sy float64, button MouseButton) {
	if node.OnClick == nil {
		return
	}
	wx, wy := p.pointerCoords(node, sx, sy)
	lx, ly := node.WorldToLocal(wx, wy)
	node.OnClick(ClickContext{
		Node: node, UserData: node.UserData,
		GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly,
		Button: button,
	})
}
