package easel

import "github.com/tanema/gween/ease"

// Section is a named horizontal band of the page. Sections stack vertically
// in the order they are added and register an anchor for ScrollToSection —
// the page's rendition of in-page anchor navigation.
type Section struct {
	node   *Node
	name   string
	top    float64
	height float64
}

// AddSection appends a section of the given height to the bottom of the page
// and extends the scrollable content. Panics if the name is already taken.
func (p *Page) AddSection(name string, height float64) *Section {
	if _, exists := p.anchors[name]; exists {
		panic("easel: duplicate section name " + name)
	}
	top := p.viewport.ContentHeight
	node := NewContainer("section:" + name)
	node.Y = top
	p.root.AddChild(node)

	s := &Section{node: node, name: name, top: top, height: height}
	p.sections = append(p.sections, s)
	p.anchors[name] = s
	p.viewport.ContentHeight = top + height
	return s
}

// Section returns the named section, or nil.
func (p *Page) Section(name string) *Section {
	return p.anchors[name]
}

// Sections returns the section list in stacking order. The returned slice
// MUST NOT be mutated by the caller.
func (p *Page) Sections() []*Section {
	return p.sections
}

// ScrollToSection smoothly scrolls the viewport to the named section's top.
// Returns false when no such section exists.
func (p *Page) ScrollToSection(name string, duration float32) bool {
	s, ok := p.anchors[name]
	if !ok {
		return false
	}
	p.viewport.ScrollTo(s.top, duration, ease.InOutCubic)
	return true
}

// Node returns the section's container node; section content is added here
// with Y coordinates relative to the section top.
func (s *Section) Node() *Node {
	return s.node
}

// Name returns the anchor name.
func (s *Section) Name() string {
	return s.name
}

// Top returns the section's page-space Y coordinate.
func (s *Section) Top() float64 {
	return s.top
}

// Height returns the section's band height.
func (s *Section) Height() float64 {
	return s.height
}
