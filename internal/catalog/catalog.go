// Package catalog holds the immutable page content: company details,
// palette, health and insurance figures, and the ordered card lists.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidCatalog is returned when a Document fails validation.
var ErrInvalidCatalog = errors.New("invalid catalog")

// dateLayout is the format of InsuranceSummary.NextAdjustmentDate.
const dateLayout = "2006-01-02"

// Catalog is a validated, read-only Document. Accessors return copies, so a
// single Catalog can be shared by every request.
type Catalog struct {
	doc Document
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(DefaultDocument())
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in document is invalid: %v", err))
	}
	return c
}

// New validates doc and returns a Catalog holding a private copy of it.
func New(doc Document) (*Catalog, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &Catalog{doc: doc.clone()}, nil
}

// Load reads a YAML overlay from path on top of the built-in document.
// Lists present in the file replace the defaults wholesale.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	doc := DefaultDocument()
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}

	c, err := New(doc)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Validate checks ranges and that every ordered list has content.
func (d Document) Validate() error {
	if d.Company.Name == "" {
		return fmt.Errorf("%w: company name is required", ErrInvalidCatalog)
	}

	percentages := []struct {
		name  string
		value int
	}{
		{"health.activity_score", d.Health.ActivityScore},
		{"health.sleep_quality", d.Health.SleepQuality},
		{"health.heart_health", d.Health.HeartHealth},
		{"health.stress_level", d.Health.StressLevel},
		{"insurance.coverage_level", d.Insurance.CoverageLevel},
	}
	for _, p := range percentages {
		if p.value < 0 || p.value > 100 {
			return fmt.Errorf("%w: %s must be within 0..100, got %d", ErrInvalidCatalog, p.name, p.value)
		}
	}

	if d.Insurance.CurrentPremium < 0 || d.Insurance.PotentialSavings < 0 {
		return fmt.Errorf("%w: insurance amounts must be non-negative", ErrInvalidCatalog)
	}
	if _, err := time.Parse(dateLayout, d.Insurance.NextAdjustmentDate); err != nil {
		return fmt.Errorf("%w: next_adjustment_date %q is not YYYY-MM-DD", ErrInvalidCatalog, d.Insurance.NextAdjustmentDate)
	}

	lists := map[string]int{
		"services":        len(d.Services),
		"metrics":         len(d.Metrics),
		"recommendations": len(d.Recommendations),
		"technologies":    len(d.Technologies),
		"nav_links":       len(d.NavLinks),
		"quick_actions":   len(d.QuickActions),
		"footer":          len(d.Footer),
	}
	for name, n := range lists {
		if n == 0 {
			return fmt.Errorf("%w: %s must not be empty", ErrInvalidCatalog, name)
		}
	}

	return nil
}

// clone deep-copies every slice in d.
func (d Document) clone() Document {
	out := d
	out.Services = append([]ServiceOffering(nil), d.Services...)
	out.Metrics = append([]MetricTile(nil), d.Metrics...)
	out.Recommendations = append([]string(nil), d.Recommendations...)
	out.Technologies = append([]TechnologyItem(nil), d.Technologies...)
	out.NavLinks = append([]NavLink(nil), d.NavLinks...)
	out.QuickActions = append([]QuickAction(nil), d.QuickActions...)
	out.Footer = make([]FooterSection, len(d.Footer))
	for i, s := range d.Footer {
		out.Footer[i] = FooterSection{Title: s.Title, Items: append([]string(nil), s.Items...)}
	}
	return out
}

// Company returns the brand details.
func (c *Catalog) Company() CompanyInfo { return c.doc.Company }

// Palette returns the gradient classes.
func (c *Catalog) Palette() ThemePalette { return c.doc.Palette }

// Health returns the health gauges.
func (c *Catalog) Health() HealthMetricSet { return c.doc.Health }

// Insurance returns the policy figures.
func (c *Catalog) Insurance() InsuranceSummary { return c.doc.Insurance }

// Services returns the services grid in declaration order.
func (c *Catalog) Services() []ServiceOffering {
	return append([]ServiceOffering(nil), c.doc.Services...)
}

// Metrics returns the hero metric tiles in declaration order.
func (c *Catalog) Metrics() []MetricTile {
	return append([]MetricTile(nil), c.doc.Metrics...)
}

// Recommendations returns the advice list in declaration order.
func (c *Catalog) Recommendations() []string {
	return append([]string(nil), c.doc.Recommendations...)
}

// Technologies returns the technology grid in declaration order.
func (c *Catalog) Technologies() []TechnologyItem {
	return append([]TechnologyItem(nil), c.doc.Technologies...)
}

// NavLinks returns the navigation bar links.
func (c *Catalog) NavLinks() []NavLink {
	return append([]NavLink(nil), c.doc.NavLinks...)
}

// QuickActions returns the dashboard sidebar buttons.
func (c *Catalog) QuickActions() []QuickAction {
	return append([]QuickAction(nil), c.doc.QuickActions...)
}

// FooterSections returns the footer columns, deep-copied.
func (c *Catalog) FooterSections() []FooterSection { return c.doc.clone().Footer }

// Document returns a deep copy of the underlying document, for export.
func (c *Catalog) Document() Document { return c.doc.clone() }
