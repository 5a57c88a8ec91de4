// Paintco renders a complete single-page marketing site for a painting
// business. All copy comes from the embedded YAML manifest; the layout is a
// vertically scrolling page with a sticky navigation header, scroll-triggered
// reveal animations, resilient portfolio images, and a contact form that
// hands off to the visitor's mail client.
package main

import (
	_ "embed"
	"fmt"
	"log"

	"github.com/brushworks/easel"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	windowTitle = "Harbor Coat Painting"
	showFPS     = false
	screenW     = 960
	screenH     = 640
	headerH     = 64
	marginX     = 80.0
	contentW    = screenW - 2*marginX
)

//go:embed content.yaml
var contentYAML []byte

// palette
var (
	navy   = easel.Color{R: 0.16, G: 0.23, B: 0.29, A: 1}
	cream  = easel.Color{R: 0.97, G: 0.96, B: 0.94, A: 1}
	accent = easel.Color{R: 0.85, G: 0.46, B: 0.25, A: 1}
	sand   = easel.Color{R: 0.90, G: 0.87, B: 0.82, A: 1}
	ink    = easel.Color{R: 0.13, G: 0.13, B: 0.14, A: 1}
	smoke  = easel.Color{R: 0.42, G: 0.42, B: 0.44, A: 1}
)

// site wires the page, the manifest, and the contact form state together.
type site struct {
	page    *easel.Page
	content *easel.SiteContent

	h1     text.Face
	h2     text.Face
	body   text.Face
	bodyLg text.Face
	nav    text.Face
	btn    text.Face
	brand  text.Face

	nameField  *textField
	emailField *textField
	scope      string
	scopeBoxes []*easel.Node
	status     *easel.Node
}

func main() {
	content, err := easel.LoadSiteContent(contentYAML)
	if err != nil {
		log.Fatalf("failed to load site content: %v", err)
	}

	regular, err := easel.NewFaceSource(goregular.TTF)
	if err != nil {
		log.Fatalf("failed to parse font: %v", err)
	}
	bold, err := easel.NewFaceSource(gobold.TTF)
	if err != nil {
		log.Fatalf("failed to parse font: %v", err)
	}

	s := &site{
		page:    easel.NewPage(screenW, screenH),
		content: content,
		h1:      easel.Face(bold, 40),
		h2:      easel.Face(bold, 26),
		body:    easel.Face(regular, 16),
		bodyLg:  easel.Face(regular, 20),
		nav:     easel.Face(regular, 15),
		btn:     easel.Face(bold, 17),
		brand:   easel.Face(bold, 20),
	}
	s.page.ClearColor = cream

	s.buildHero()
	s.buildServices()
	s.buildAbout()
	s.buildPortfolio()
	s.buildTestimonials()
	s.buildContact()
	s.buildHeader() // added last so it draws over everything

	s.page.SetUpdateFunc(s.update)

	if err := easel.Run(s.page, easel.RunConfig{
		Title:   windowTitle,
		Width:   screenW,
		Height:  screenH,
		ShowFPS: showFPS,
	}); err != nil {
		log.Fatal(err)
	}
}

// update drives the focused form field each tick.
func (s *site) update() error {
	s.nameField.update()
	s.emailField.update()
	return nil
}

// --- header ---

func (s *site) buildHeader() {
	bar := easel.NewBox("header", screenW, headerH, navy)
	bar.Fixed = true
	bar.SetZIndex(100)
	s.page.Root().AddChild(bar)

	brand := easel.NewLabel("brand", s.content.Business.Name, s.brand)
	brand.X = marginX
	brand.Y = 20
	brand.Label.Color = easel.ColorWhite
	bar.AddChild(brand)

	links := []struct{ label, anchor string }{
		{"Services", "services"},
		{"About", "about"},
		{"Work", "portfolio"},
		{"Reviews", "testimonials"},
		{"Contact", "contact"},
	}
	x := screenW - marginX
	for i := len(links) - 1; i >= 0; i-- {
		link := links[i]
		l := easel.NewLabel("nav-"+link.anchor, link.label, s.nav)
		w, _ := l.Label.MeasuredSize()
		x -= w
		l.X = x
		l.Y = 24
		l.Label.Color = easel.Color{R: 0.85, G: 0.88, B: 0.90, A: 1}
		l.Interactable = true
		anchor := link.anchor
		l.OnClick = func(easel.ClickContext) {
			s.page.ScrollToSection(anchor, 0.6)
		}
		l.OnPointerEnter = func(easel.HoverContext) { l.Label.Color = easel.ColorWhite }
		l.OnPointerLeave = func(easel.HoverContext) {
			l.Label.Color = easel.Color{R: 0.85, G: 0.88, B: 0.90, A: 1}
		}
		bar.AddChild(l)
		x -= 28
	}
}

// --- hero ---

func (s *site) buildHero() {
	sec := s.page.AddSection("hero", 560)
	root := sec.Node()

	backdrop := easel.NewBox("hero-bg", screenW, 560, navy)
	root.AddChild(backdrop)

	headline := easel.NewLabel("headline", s.content.Hero.Headline, s.h1)
	headline.X = marginX
	headline.Y = 170
	headline.Label.Color = easel.ColorWhite
	headline.Label.SetMaxWidth(contentW * 0.8)
	root.AddChild(headline)
	easel.NewReveal(s.page, headline, easel.RevealConfig{Direction: easel.RevealUp})

	subhead := easel.NewLabel("subhead", s.content.Hero.Subhead, s.bodyLg)
	subhead.X = marginX
	subhead.Y = 280
	subhead.Label.Color = sand
	subhead.Label.SetMaxWidth(contentW * 0.7)
	root.AddChild(subhead)
	easel.NewReveal(s.page, subhead, easel.RevealConfig{Direction: easel.RevealUp, Delay: 0.15})

	cta := s.button(s.content.Hero.CTA, accent, func() {
		s.page.ScrollToSection("contact", 0.8)
	})
	cta.X = marginX
	cta.Y = 370
	root.AddChild(cta)
	easel.NewReveal(s.page, cta, easel.RevealConfig{Direction: easel.RevealUp, Delay: 0.3})

	tagline := easel.NewLabel("tagline", s.content.Business.Tagline, s.body)
	tagline.X = marginX
	tagline.Y = 470
	tagline.Label.Color = smoke
	root.AddChild(tagline)
}

// --- services ---

func (s *site) buildServices() {
	const cardW, cardH, gap = (contentW - 30) / 2, 150.0, 30.0
	rows := (len(s.content.Services) + 1) / 2
	sec := s.page.AddSection("services", 140+float64(rows)*(cardH+gap)+40)
	root := sec.Node()

	root.AddChild(s.heading("What We Do", 60))

	for i, svc := range s.content.Services {
		card := easel.NewBox(fmt.Sprintf("service-%d", i), cardW, cardH, easel.ColorWhite)
		card.X = marginX + float64(i%2)*(cardW+gap)
		card.Y = 140 + float64(i/2)*(cardH+gap)
		root.AddChild(card)

		title := easel.NewLabel("service-title", svc.Title, s.h2)
		title.X = 24
		title.Y = 24
		title.Label.Color = ink
		card.AddChild(title)

		desc := easel.NewLabel("service-desc", svc.Description, s.body)
		desc.X = 24
		desc.Y = 68
		desc.Label.Color = smoke
		desc.Label.SetMaxWidth(cardW - 48)
		card.AddChild(desc)

		stripe := easel.NewBox("service-stripe", 48, 4, accent)
		stripe.X = 24
		stripe.Y = 58
		card.AddChild(stripe)

		easel.NewReveal(s.page, card, easel.RevealConfig{
			Direction: easel.RevealUp,
			Delay:     float32(i%2) * 0.12,
		})
	}
}

// --- about ---

func (s *site) buildAbout() {
	height := 140.0 + float64(len(s.content.About.Paragraphs))*110 + 40
	sec := s.page.AddSection("about", height)
	root := sec.Node()

	bg := easel.NewBox("about-bg", screenW, height, sand)
	root.AddChild(bg)

	root.AddChild(s.heading(s.content.About.Heading, 60))

	for i, para := range s.content.About.Paragraphs {
		p := easel.NewLabel(fmt.Sprintf("about-p%d", i), para, s.body)
		p.X = marginX
		p.Y = 140 + float64(i)*110
		p.Label.Color = ink
		p.Label.SetMaxWidth(contentW * 0.85)
		p.Label.LineSpacing = 1.4
		root.AddChild(p)
		easel.NewReveal(s.page, p, easel.RevealConfig{Direction: easel.RevealUp, Delay: float32(i) * 0.1})
	}
}

// --- portfolio ---

func (s *site) buildPortfolio() {
	const tileW, tileH, gap = (contentW - 30) / 2, 220.0, 30.0
	rows := (len(s.content.Portfolio) + 1) / 2
	sec := s.page.AddSection("portfolio", 140+float64(rows)*(tileH+gap)+40)
	root := sec.Node()

	root.AddChild(s.heading("Recent Work", 60))

	for i, item := range s.content.Portfolio {
		tile := easel.NewImage(item.Title, item.Image, item.FallbackImage, nil)
		tile.SetSize(tileW, tileH)
		tile.X = marginX + float64(i%2)*(tileW+gap)
		tile.Y = 140 + float64(i/2)*(tileH+gap)
		tile.Interactable = true
		root.AddChild(tile)

		// Caption overlay, shown on hover.
		overlay := easel.NewBox("caption-bg", tileW, 56, easel.Color{R: 0.1, G: 0.1, B: 0.11, A: 0.8})
		overlay.Y = tileH - 56
		overlay.Alpha = 0
		tile.AddChild(overlay)

		caption := easel.NewLabel("caption", item.Title+" — "+item.Caption, s.body)
		caption.X = 16
		caption.Y = 18
		caption.Label.Color = easel.ColorWhite
		caption.Label.SetMaxWidth(tileW - 32)
		overlay.AddChild(caption)

		tile.OnPointerEnter = func(easel.HoverContext) { overlay.SetAlpha(1) }
		tile.OnPointerLeave = func(easel.HoverContext) { overlay.SetAlpha(0) }

		dir := easel.RevealLeft
		if i%2 == 1 {
			dir = easel.RevealRight
		}
		easel.NewReveal(s.page, tile, easel.RevealConfig{Direction: dir})
	}
}

// --- testimonials ---

func (s *site) buildTestimonials() {
	const cardH, gap = 130.0, 24.0
	n := len(s.content.Testimonials)
	sec := s.page.AddSection("testimonials", 140+float64(n)*(cardH+gap)+40)
	root := sec.Node()

	bg := easel.NewBox("reviews-bg", screenW, sec.Height(), sand)
	root.AddChild(bg)

	root.AddChild(s.heading("What Neighbors Say", 60))

	for i, tm := range s.content.Testimonials {
		card := easel.NewBox(fmt.Sprintf("review-%d", i), contentW, cardH, easel.ColorWhite)
		card.X = marginX
		card.Y = 140 + float64(i)*(cardH+gap)
		root.AddChild(card)

		quote := easel.NewLabel("quote", "“"+tm.Quote+"”", s.body)
		quote.X = 28
		quote.Y = 24
		quote.Label.Color = ink
		quote.Label.SetMaxWidth(contentW - 56)
		quote.Label.LineSpacing = 1.3
		card.AddChild(quote)

		byline := easel.NewLabel("byline", "— "+tm.Author+", "+tm.Location, s.nav)
		byline.X = 28
		byline.Y = cardH - 36
		byline.Label.Color = smoke
		card.AddChild(byline)

		easel.NewReveal(s.page, card, easel.RevealConfig{
			Direction: easel.RevealUp,
			Delay:     float32(i) * 0.1,
		})
	}
}

// --- contact ---

func (s *site) buildContact() {
	sec := s.page.AddSection("contact", 620)
	root := sec.Node()

	bg := easel.NewBox("contact-bg", screenW, 620, navy)
	root.AddChild(bg)

	head := easel.NewLabel("contact-head", s.content.Contact.Heading, s.h1)
	head.X = marginX
	head.Y = 60
	head.Label.Color = easel.ColorWhite
	root.AddChild(head)

	blurb := easel.NewLabel("contact-blurb", s.content.Contact.Blurb, s.body)
	blurb.X = marginX
	blurb.Y = 130
	blurb.Label.Color = sand
	blurb.Label.SetMaxWidth(contentW * 0.7)
	root.AddChild(blurb)

	s.nameField = s.newTextField(root, "Your name", marginX, 190)
	s.emailField = s.newTextField(root, "Email address", marginX, 260)

	scopeLabel := easel.NewLabel("scope-label", "Project scope", s.nav)
	scopeLabel.X = marginX
	scopeLabel.Y = 330
	scopeLabel.Label.Color = sand
	root.AddChild(scopeLabel)

	x := marginX
	for _, opt := range s.content.Contact.ScopeOptions {
		opt := opt
		b := easel.NewBox("scope-"+opt, 110, 40, easel.Color{R: 0.22, G: 0.30, B: 0.37, A: 1})
		b.X = x
		b.Y = 358
		b.Interactable = true
		b.OnClick = func(easel.ClickContext) { s.selectScope(opt) }
		root.AddChild(b)
		s.scopeBoxes = append(s.scopeBoxes, b)

		l := easel.NewLabel("scope-opt", opt, s.nav)
		l.Label.Color = easel.ColorWhite
		w, _ := l.Label.MeasuredSize()
		l.X = (110 - w) / 2
		l.Y = 12
		b.AddChild(l)

		x += 122
	}

	submit := s.button("Send Request", accent, s.submit)
	submit.X = marginX
	submit.Y = 430
	root.AddChild(submit)

	s.status = easel.NewLabel("status", "", s.body)
	s.status.X = marginX
	s.status.Y = 500
	s.status.Label.Color = sand
	root.AddChild(s.status)

	footer := easel.NewLabel("footer",
		s.content.Business.Name+"  ·  "+s.content.Business.Phone+"  ·  "+s.content.ContactEmail(),
		s.nav)
	footer.X = marginX
	footer.Y = 570
	footer.Label.Color = smoke
	root.AddChild(footer)
}

// submit builds the estimate request and hands it to the mail client. The
// submission is a mailto handoff, not a network request — nothing is sent by
// the site itself.
func (s *site) submit() {
	req := easel.EstimateRequest{
		Name:  s.nameField.value,
		Email: s.emailField.value,
		Scope: s.scope,
	}
	uri := req.MailtoURI(s.content.ContactEmail())
	if err := easel.OpenMailClient(uri); err != nil {
		log.Printf("mail client handoff failed: %v", err)
		s.status.Label.SetContent("Could not open your mail client. Email us at " + s.content.ContactEmail())
		return
	}
	s.status.Label.SetContent("Opening your mail client…")
}

func (s *site) selectScope(opt string) {
	s.scope = opt
	for i, b := range s.scopeBoxes {
		if s.content.Contact.ScopeOptions[i] == opt {
			b.Fill = accent
		} else {
			b.Fill = easel.Color{R: 0.22, G: 0.30, B: 0.37, A: 1}
		}
	}
}

// --- shared widgets ---

// heading creates a section heading at the standard content margin.
func (s *site) heading(content string, y float64) *easel.Node {
	h := easel.NewLabel("heading", content, s.h1)
	h.X = marginX
	h.Y = y
	h.Label.Color = ink
	return h
}

// button creates a clickable pill with a centered label.
func (s *site) button(label string, fill easel.Color, onClick func()) *easel.Node {
	l := easel.NewLabel("button-label", label, s.btn)
	w, _ := l.Label.MeasuredSize()

	b := easel.NewBox("button-"+label, w+56, 52, fill)
	b.Interactable = true
	b.OnClick = func(easel.ClickContext) { onClick() }
	b.OnPointerEnter = func(easel.HoverContext) { b.SetAlpha(0.88) }
	b.OnPointerLeave = func(easel.HoverContext) { b.SetAlpha(1) }

	l.X = 28
	l.Y = 15
	l.Label.Color = easel.ColorWhite
	b.AddChild(l)
	return b
}

// textField is a minimal single-line input: click to focus, type to edit.
type textField struct {
	box         *easel.Node
	label       *easel.Node
	value       string
	placeholder string
	focused     bool
	runes       []rune
}

func (s *site) newTextField(parent *easel.Node, placeholder string, x, y float64) *textField {
	f := &textField{placeholder: placeholder}

	f.box = easel.NewBox("field-"+placeholder, 360, 48, easel.Color{R: 0.22, G: 0.30, B: 0.37, A: 1})
	f.box.X = x
	f.box.Y = y
	f.box.Interactable = true
	f.box.OnClick = func(easel.ClickContext) {
		s.nameField.blur()
		s.emailField.blur()
		f.focused = true
		f.box.Fill = easel.Color{R: 0.28, G: 0.37, B: 0.45, A: 1}
	}
	parent.AddChild(f.box)

	f.label = easel.NewLabel("field-text", placeholder, s.body)
	f.label.X = 16
	f.label.Y = 14
	f.label.Label.Color = smoke
	f.box.AddChild(f.label)

	return f
}

// blur tolerates being called before both fields exist during construction.
func (f *textField) blur() {
	if f == nil {
		return
	}
	f.focused = false
	f.box.Fill = easel.Color{R: 0.22, G: 0.30, B: 0.37, A: 1}
}

func (f *textField) update() {
	if !f.focused {
		return
	}
	f.runes = ebiten.AppendInputChars(f.runes[:0])
	for _, r := range f.runes {
		f.value += string(r)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && f.value != "" {
		r := []rune(f.value)
		f.value = string(r[:len(r)-1])
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		f.blur()
	}

	if f.value == "" {
		f.label.Label.SetContent(f.placeholder)
		f.label.Label.Color = smoke
	} else {
		f.label.Label.SetContent(f.value)
		f.label.Label.Color = easel.ColorWhite
	}
}
