package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultInsuranceFigures(t *testing.T) {
	c := Default()
	ins := c.Insurance()
	if ins.CurrentPremium != 12500 {
		t.Errorf("CurrentPremium = %d, want 12500", ins.CurrentPremium)
	}
	if ins.PotentialSavings != 3750 {
		t.Errorf("PotentialSavings = %d, want 3750", ins.PotentialSavings)
	}
	if ins.CoverageLevel != 95 {
		t.Errorf("CoverageLevel = %d, want 95", ins.CoverageLevel)
	}
}

func TestDefaultPercentagesInRange(t *testing.T) {
	c := Default()
	for _, g := range c.Health().Gauges() {
		if g.Value < 0 || g.Value > 100 {
			t.Errorf("gauge %s = %d, out of range", g.Key, g.Value)
		}
	}
	if v := c.Insurance().CoverageLevel; v < 0 || v > 100 {
		t.Errorf("coverage = %d, out of range", v)
	}
}

func TestListsNonEmptyAndOrdered(t *testing.T) {
	c := Default()

	if len(c.Services()) != 6 {
		t.Errorf("expected 6 services, got %d", len(c.Services()))
	}
	if len(c.Metrics()) != 4 {
		t.Errorf("expected 4 metric tiles, got %d", len(c.Metrics()))
	}
	if len(c.Recommendations()) != 3 {
		t.Errorf("expected 3 recommendations, got %d", len(c.Recommendations()))
	}
	if len(c.Technologies()) != 4 {
		t.Errorf("expected 4 technologies, got %d", len(c.Technologies()))
	}

	first := c.Services()
	for i := 0; i < 3; i++ {
		again := c.Services()
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("read %d: services[%d] = %+v, want %+v", i, j, again[j], first[j])
			}
		}
	}
	if first[0].Name != "ИнгоЛаб" || first[5].Name != "Международные" {
		t.Errorf("unexpected service order: %q ... %q", first[0].Name, first[5].Name)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := Default()

	svc := c.Services()
	svc[0].Name = "mutated"
	recs := c.Recommendations()
	recs[0] = "mutated"
	footer := c.FooterSections()
	footer[0].Items[0] = "mutated"

	if c.Services()[0].Name == "mutated" {
		t.Error("Services() exposed internal slice")
	}
	if c.Recommendations()[0] == "mutated" {
		t.Error("Recommendations() exposed internal slice")
	}
	if c.FooterSections()[0].Items[0] == "mutated" {
		t.Error("FooterSections() exposed internal slice")
	}
}

func TestNewCopiesInput(t *testing.T) {
	doc := DefaultDocument()
	c, err := New(doc)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	doc.Technologies[0].Title = "mutated"
	if c.Technologies()[0].Title == "mutated" {
		t.Error("New kept a reference to the caller's slice")
	}
}

func TestGaugesOrder(t *testing.T) {
	got := Default().Health().Gauges()
	want := []Gauge{
		{Key: "activity_score", Label: "Активность", Value: 87},
		{Key: "sleep_quality", Label: "Сон", Value: 92},
		{Key: "heart_health", Label: "Сердце", Value: 78},
		{Key: "stress_level", Label: "Стресс", Value: 45},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d gauges, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("gauge[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestPaletteBackground(t *testing.T) {
	p := Default().Palette()
	if p.Background(true) != "from-gray-900 via-blue-900 to-gray-900" {
		t.Errorf("dark background = %q", p.Background(true))
	}
	if p.Background(false) != "from-gray-50 via-blue-50 to-gray-50" {
		t.Errorf("light background = %q", p.Background(false))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Document)
	}{
		{"empty company", func(d *Document) { d.Company.Name = "" }},
		{"activity over 100", func(d *Document) { d.Health.ActivityScore = 101 }},
		{"stress negative", func(d *Document) { d.Health.StressLevel = -1 }},
		{"coverage over 100", func(d *Document) { d.Insurance.CoverageLevel = 150 }},
		{"negative premium", func(d *Document) { d.Insurance.CurrentPremium = -5 }},
		{"bad date", func(d *Document) { d.Insurance.NextAdjustmentDate = "01.12.2025" }},
		{"no services", func(d *Document) { d.Services = nil }},
		{"no recommendations", func(d *Document) { d.Recommendations = []string{} }},
		{"no technologies", func(d *Document) { d.Technologies = nil }},
		{"no metrics", func(d *Document) { d.Metrics = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := DefaultDocument()
			tt.mutate(&doc)
			if _, err := New(doc); !errors.Is(err, ErrInvalidCatalog) {
				t.Errorf("New err = %v, want ErrInvalidCatalog", err)
			}
		})
	}

	if err := DefaultDocument().Validate(); err != nil {
		t.Errorf("default document invalid: %v", err)
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yml")
	overlay := `
company:
  name: Acme Health
insurance:
  current_premium: 20000
recommendations:
  - Sleep more
`
	if err := os.WriteFile(path, []byte(overlay), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if c.Company().Name != "Acme Health" {
		t.Errorf("company name = %q", c.Company().Name)
	}
	if c.Company().FoundingYear != 2025 {
		t.Errorf("founding year = %d, want default 2025", c.Company().FoundingYear)
	}
	if c.Insurance().CurrentPremium != 20000 {
		t.Errorf("premium = %d, want 20000", c.Insurance().CurrentPremium)
	}
	if c.Insurance().PotentialSavings != 3750 {
		t.Errorf("savings = %d, want default 3750", c.Insurance().PotentialSavings)
	}
	if recs := c.Recommendations(); len(recs) != 1 || recs[0] != "Sleep more" {
		t.Errorf("recommendations = %v", recs)
	}
	if len(c.Services()) != 6 {
		t.Errorf("services = %d, want defaults kept", len(c.Services()))
	}
}

func TestLoadRejectsOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yml")
	if err := os.WriteFile(path, []byte("health:\n  sleep_quality: 120\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalidCatalog) {
		t.Errorf("Load err = %v, want ErrInvalidCatalog", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("expected error for missing file")
	}
}
