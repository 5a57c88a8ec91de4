package easel

import (
	"strings"
	"testing"
)

const validManifest = `
business:
  name: Harbor Coat Painting
  tagline: Quality finishes, honest prices
  email: hello@harborcoat.example
  phone: (555) 010-7788
hero:
  headline: Transform Your Home
  subhead: Interior and exterior painting done right.
  cta: Get a Free Estimate
services:
  - title: Interior Painting
    description: Walls, ceilings, and trim.
  - title: Exterior Painting
    description: Siding, decks, and fences.
about:
  heading: A Family Business
  paragraphs:
    - Two decades of careful work.
    - Licensed and insured.
portfolio:
  - title: Craftsman Exterior
    caption: Full repaint in sage green
    image: assets/craftsman.jpg
    fallback_image: assets/craftsman-small.jpg
testimonials:
  - quote: They left the place spotless.
    author: Dana R.
    location: Maple Falls
contact:
  heading: Request an Estimate
  blurb: We respond within one business day.
  email: estimates@harborcoat.example
  scope_options:
    - Interior
    - Exterior
    - Both
`

func TestLoadSiteContent(t *testing.T) {
	c, err := LoadSiteContent([]byte(validManifest))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Business.Name != "Harbor Coat Painting" {
		t.Errorf("Business.Name = %q", c.Business.Name)
	}
	if c.Hero.CTA != "Get a Free Estimate" {
		t.Errorf("Hero.CTA = %q", c.Hero.CTA)
	}
	if len(c.Services) != 2 || c.Services[1].Title != "Exterior Painting" {
		t.Errorf("Services = %+v", c.Services)
	}
	if len(c.Portfolio) != 1 || c.Portfolio[0].FallbackImage != "assets/craftsman-small.jpg" {
		t.Errorf("Portfolio = %+v", c.Portfolio)
	}
	if len(c.Contact.ScopeOptions) != 3 {
		t.Errorf("ScopeOptions = %v", c.Contact.ScopeOptions)
	}
}

func TestLoadSiteContentInvalidYAML(t *testing.T) {
	_, err := LoadSiteContent([]byte("business: [unclosed"))
	if err == nil {
		t.Error("expected a parse error")
	}
}

func TestLoadSiteContentValidation(t *testing.T) {
	tests := []struct {
		name    string
		mangle  func(string) string
		wantErr string
	}{
		{
			"missing business name",
			func(s string) string { return strings.Replace(s, "name: Harbor Coat Painting", `name: ""`, 1) },
			"business.name",
		},
		{
			"missing headline",
			func(s string) string { return strings.Replace(s, "headline: Transform Your Home", `headline: ""`, 1) },
			"hero.headline",
		},
		{
			"service without title",
			func(s string) string { return strings.Replace(s, "title: Interior Painting", `title: ""`, 1) },
			"services[0]",
		},
		{
			"portfolio without image",
			func(s string) string { return strings.Replace(s, "image: assets/craftsman.jpg", `image: ""`, 1) },
			"portfolio[0]",
		},
		{
			"portfolio without fallback",
			func(s string) string {
				return strings.Replace(s, "fallback_image: assets/craftsman-small.jpg", `fallback_image: ""`, 1)
			},
			"fallback_image",
		},
		{
			"no contact email anywhere",
			func(s string) string {
				s = strings.Replace(s, "email: hello@harborcoat.example", `email: ""`, 1)
				return strings.Replace(s, "email: estimates@harborcoat.example", `email: ""`, 1)
			},
			"contact email",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSiteContent([]byte(tt.mangle(validManifest)))
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestContactEmailFallback(t *testing.T) {
	c, err := LoadSiteContent([]byte(validManifest))
	if err != nil {
		t.Fatal(err)
	}
	if got := c.ContactEmail(); got != "estimates@harborcoat.example" {
		t.Errorf("ContactEmail() = %q, want contact.email", got)
	}

	c.Contact.Email = ""
	if got := c.ContactEmail(); got != "hello@harborcoat.example" {
		t.Errorf("ContactEmail() = %q, want business.email fallback", got)
	}
}
