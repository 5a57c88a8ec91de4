package easel

import "testing"

func TestAddSectionStacksVertically(t *testing.T) {
	p := NewPage(800, 600)

	hero := p.AddSection("hero", 600)
	services := p.AddSection("services", 900)
	contact := p.AddSection("contact", 500)

	if hero.Top() != 0 || services.Top() != 600 || contact.Top() != 1500 {
		t.Errorf("tops = %v, %v, %v; want 0, 600, 1500",
			hero.Top(), services.Top(), contact.Top())
	}
	if p.Viewport().ContentHeight != 2000 {
		t.Errorf("ContentHeight = %v, want 2000", p.Viewport().ContentHeight)
	}
	if len(p.Sections()) != 3 {
		t.Errorf("Sections() holds %d entries, want 3", len(p.Sections()))
	}
}

func TestAddSectionNodePosition(t *testing.T) {
	p := NewPage(800, 600)
	p.AddSection("hero", 600)
	s := p.AddSection("about", 400)

	if s.Node().Y != 600 {
		t.Errorf("section node Y = %v, want its top", s.Node().Y)
	}
	if s.Node().Parent != p.Root() {
		t.Error("section nodes hang off the page root")
	}
	if s.Height() != 400 || s.Name() != "about" {
		t.Error("section should report its name and height")
	}
}

func TestAddSectionDuplicatePanics(t *testing.T) {
	p := NewPage(800, 600)
	p.AddSection("hero", 600)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for a duplicate section name")
		}
	}()
	p.AddSection("hero", 300)
}

func TestSectionLookup(t *testing.T) {
	p := NewPage(800, 600)
	s := p.AddSection("portfolio", 800)

	if p.Section("portfolio") != s {
		t.Error("Section should find the anchor by name")
	}
	if p.Section("missing") != nil {
		t.Error("unknown names return nil")
	}
}

func TestScrollToSection(t *testing.T) {
	p := NewPage(800, 600)
	p.AddSection("hero", 600)
	p.AddSection("contact", 900)

	if !p.ScrollToSection("contact", 0) {
		t.Fatal("known anchors should scroll")
	}
	if p.Viewport().ScrollY != 600 {
		t.Errorf("ScrollY = %v, want the section top", p.Viewport().ScrollY)
	}

	if p.ScrollToSection("nope", 0) {
		t.Error("unknown anchors report false")
	}
}

func TestScrollToSectionAnimates(t *testing.T) {
	p := NewPage(800, 600)
	p.AddSection("hero", 600)
	p.AddSection("contact", 900)

	p.ScrollToSection("contact", 0.5)
	if !p.Viewport().Scrolling() {
		t.Error("positive duration should start an animated scroll")
	}
}

func TestScrollToSectionClampsToMaxScroll(t *testing.T) {
	p := NewPage(800, 600)
	p.AddSection("hero", 600)
	p.AddSection("short", 100) // top 600, but MaxScroll is only 100

	p.ScrollToSection("short", 0)
	if p.Viewport().ScrollY != 100 {
		t.Errorf("ScrollY = %v, want clamp at MaxScroll", p.Viewport().ScrollY)
	}
}
