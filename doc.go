// Package easel is a retained-mode scrolling-page toolkit for [Ebitengine].
//
// Easel renders long single-page layouts — marketing sites, kiosks, product
// tours — as a vertically scrolling node tree with smooth wheel scrolling,
// named section anchors, scroll-triggered reveal animations, resilient image
// loading with fallbacks, and pointer interaction.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and loop
// for you:
//
//	page := easel.NewPage(960, 600)
//	// ... add sections and nodes ...
//	easel.Run(page, easel.RunConfig{
//		Title: "My Site", Width: 960, Height: 600,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Page.Update] and [Page.Draw] directly:
//
//	type Game struct{ page *easel.Page }
//
//	func (g *Game) Update() error         { return g.page.Update() }
//	func (g *Game) Draw(s *ebiten.Image)  { g.page.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Page tree
//
// Every visual element is a [Node]. Nodes form a tree rooted at [Page.Root].
// Children inherit their parent's transform and alpha. Create nodes with
// typed constructors: [NewContainer], [NewBox], [NewImage], [NewLabel],
// [NewCanvas].
//
// Pages are divided into named [Section] bands added with [Page.AddSection];
// [Page.ScrollToSection] scrolls to a section by name, the page's rendition
// of in-page anchor links. Nodes with Fixed set ignore scrolling, for sticky
// headers and overlays.
//
// # Reveals and visibility
//
// A [VisibilityObserver] watches a node and fires once, the first time enough
// of it scrolls into view. [Reveal] builds on it: wrap a node and it fades
// and slides into place the first time it becomes visible, staying put
// afterward no matter how the page scrolls.
//
// # Images
//
// [NewImage] takes a primary and a fallback source. If the primary fails to
// load, the fallback is substituted once; a second failure renders a neutral
// placeholder. Load failures never take the page down.
//
// [Ebitengine]: https://ebitengine.org
package easel
