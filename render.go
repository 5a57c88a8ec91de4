package easel

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// drawNode renders n and its subtree in ZIndex order. fixed carries whether
// an ancestor pinned the subtree to the screen; fixed subtrees ignore the
// page scroll offset.
//
// A page draws dozens of boxes and labels, so commands are submitted directly
// in painter's order rather than collected and batched.
func (p *Page) drawNode(screen *ebiten.Image, n *Node, fixed bool) {
	if !n.Visible {
		return
	}
	fixed = fixed || n.Fixed

	if n.Renderable && !p.culled(n, fixed) {
		switch n.Type {
		case NodeTypeBox:
			p.drawBox(screen, n, fixed)
		case NodeTypeImage:
			p.drawImage(screen, n, fixed)
		case NodeTypeLabel:
			p.drawLabel(screen, n, fixed)
		}
	}

	for _, child := range n.sortedChildrenList() {
		p.drawNode(screen, child, fixed)
	}
}

// culled reports whether the node's box lies entirely outside the visible
// area. Fixed nodes cull against the screen rect; scrolled nodes against the
// viewport's page-space bounds. Nodes without a determinable size are never
// culled.
func (p *Page) culled(n *Node, fixed bool) bool {
	w, h := n.Size()
	if w <= 0 || h <= 0 {
		return false
	}
	bounds := p.cullBounds
	if fixed {
		bounds = Rect{Width: p.viewport.Width, Height: p.viewport.Height}
	}
	return !worldAABB(n.worldTransform, w, h).Intersects(bounds)
}

// worldGeoM builds the ebiten geometry matrix for a node, applying the scroll
// offset unless the subtree is fixed.
func (p *Page) worldGeoM(n *Node, fixed bool) ebiten.GeoM {
	m := n.worldTransform
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	if !fixed {
		g.Translate(0, -p.viewport.ScrollY)
	}
	return g
}

func (p *Page) drawBox(screen *ebiten.Image, n *Node, fixed bool) {
	if n.Width <= 0 || n.Height <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(n.Width, n.Height)
	world := p.worldGeoM(n, fixed)
	op.GeoM.Concat(world)

	a := float32(clamp01(n.Fill.A * n.worldAlpha))
	op.ColorScale.Scale(float32(n.Fill.R)*a, float32(n.Fill.G)*a, float32(n.Fill.B)*a, a)

	screen.DrawImage(whitePixel, op)
	p.drawCount++
}

func (p *Page) drawImage(screen *ebiten.Image, n *Node, fixed bool) {
	if n.img == nil {
		return
	}
	b := n.img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw <= 0 || ih <= 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	// Explicit box dimensions stretch the bitmap.
	if n.Width > 0 && n.Height > 0 {
		op.GeoM.Scale(n.Width/iw, n.Height/ih)
	}
	world := p.worldGeoM(n, fixed)
	op.GeoM.Concat(world)

	a := float32(clamp01(n.Fill.A * n.worldAlpha))
	op.ColorScale.Scale(float32(n.Fill.R)*a, float32(n.Fill.G)*a, float32(n.Fill.B)*a, a)

	screen.DrawImage(n.img, op)
	p.drawCount++
}

func (p *Page) drawLabel(screen *ebiten.Image, n *Node, fixed bool) {
	l := n.Label
	if l == nil || l.Face == nil {
		return
	}
	l.layout()
	if len(l.lines) == 0 {
		return
	}

	world := p.worldGeoM(n, fixed)
	a := float32(clamp01(l.Color.A * n.worldAlpha))
	lineH := l.lineHeight()

	for i, line := range l.lines {
		if line == "" {
			continue
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(l.lineOffsetX(line), float64(i)*lineH)
		op.GeoM.Concat(world)
		op.ColorScale.Scale(float32(l.Color.R)*a, float32(l.Color.G)*a, float32(l.Color.B)*a, a)
		text.Draw(screen, line, l.Face, op)
		p.drawCount++
	}
}
