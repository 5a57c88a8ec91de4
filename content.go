package easel

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SiteContent is the YAML manifest describing everything a single-page site
// renders: business identity, section copy, portfolio entries, testimonials,
// and the contact block. Sites embed the manifest and build their sections
// from it, keeping copy out of the Go source.
type SiteContent struct {
	Business     BusinessInfo    `yaml:"business"`
	Hero         HeroContent     `yaml:"hero"`
	Services     []ServiceCard   `yaml:"services"`
	About        AboutContent    `yaml:"about"`
	Portfolio    []PortfolioItem `yaml:"portfolio"`
	Testimonials []Testimonial   `yaml:"testimonials"`
	Contact      ContactContent  `yaml:"contact"`
}

// BusinessInfo identifies the business across the page.
type BusinessInfo struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
	Email   string `yaml:"email"`
	Phone   string `yaml:"phone"`
}

// HeroContent is the lead section copy.
type HeroContent struct {
	Headline string `yaml:"headline"`
	Subhead  string `yaml:"subhead"`
	CTA      string `yaml:"cta"`
}

// ServiceCard is one entry in the services grid.
type ServiceCard struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// AboutContent is the about section copy.
type AboutContent struct {
	Heading    string   `yaml:"heading"`
	Paragraphs []string `yaml:"paragraphs"`
}

// PortfolioItem is one image tile in the portfolio grid. Image is the
// primary source; FallbackImage substitutes once on load failure.
type PortfolioItem struct {
	Title         string `yaml:"title"`
	Caption       string `yaml:"caption"`
	Image         string `yaml:"image"`
	FallbackImage string `yaml:"fallback_image"`
}

// Testimonial is one customer quote.
type Testimonial struct {
	Quote    string `yaml:"quote"`
	Author   string `yaml:"author"`
	Location string `yaml:"location"`
}

// ContactContent is the contact form block. ScopeOptions populate the
// project-scope selector; Email receives the mailto submission.
type ContactContent struct {
	Heading      string   `yaml:"heading"`
	Blurb        string   `yaml:"blurb"`
	Email        string   `yaml:"email"`
	ScopeOptions []string `yaml:"scope_options"`
}

// LoadSiteContent parses and validates a YAML site manifest.
func LoadSiteContent(data []byte) (*SiteContent, error) {
	var c SiteContent
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("easel: parse site content: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// validate rejects manifests a site cannot render sensibly.
func (c *SiteContent) validate() error {
	if c.Business.Name == "" {
		return fmt.Errorf("easel: site content: business.name is required")
	}
	if c.Hero.Headline == "" {
		return fmt.Errorf("easel: site content: hero.headline is required")
	}
	for i, s := range c.Services {
		if s.Title == "" {
			return fmt.Errorf("easel: site content: services[%d] has no title", i)
		}
	}
	for i, item := range c.Portfolio {
		if item.Image == "" {
			return fmt.Errorf("easel: site content: portfolio[%d] (%q) has no image", i, item.Title)
		}
		if item.FallbackImage == "" {
			return fmt.Errorf("easel: site content: portfolio[%d] (%q) has no fallback_image", i, item.Title)
		}
	}
	if c.Contact.Email == "" && c.Business.Email == "" {
		return fmt.Errorf("easel: site content: no contact email (set contact.email or business.email)")
	}
	return nil
}

// ContactEmail returns the submission address: contact.email, falling back
// to business.email.
func (c *SiteContent) ContactEmail() string {
	if c.Contact.Email != "" {
		return c.Contact.Email
	}
	return c.Business.Email
}
