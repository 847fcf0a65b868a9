package catalog

// CompanyInfo identifies the brand shown in the navigation bar and footer.
type CompanyInfo struct {
	Name         string `yaml:"name" json:"name"`
	Slogan       string `yaml:"slogan" json:"slogan"`
	FoundingYear int    `yaml:"founding_year" json:"founding_year"`
}

// ThemePalette holds the Tailwind gradient classes used across the page.
type ThemePalette struct {
	Primary   string `yaml:"primary" json:"primary"`
	Secondary string `yaml:"secondary" json:"secondary"`
	Dark      string `yaml:"dark" json:"dark"`
	Light     string `yaml:"light" json:"light"`
}

// Background returns the page gradient for the given theme.
func (p ThemePalette) Background(dark bool) string {
	if dark {
		return p.Dark
	}
	return p.Light
}

// HealthMetricSet is the fixed set of health gauges, each a percentage.
type HealthMetricSet struct {
	ActivityScore int `yaml:"activity_score" json:"activity_score"`
	SleepQuality  int `yaml:"sleep_quality" json:"sleep_quality"`
	HeartHealth   int `yaml:"heart_health" json:"heart_health"`
	StressLevel   int `yaml:"stress_level" json:"stress_level"`
}

// Gauge is one labelled health metric.
type Gauge struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Gauges returns the metrics in display order.
func (h HealthMetricSet) Gauges() []Gauge {
	return []Gauge{
		{Key: "activity_score", Label: "Активность", Value: h.ActivityScore},
		{Key: "sleep_quality", Label: "Сон", Value: h.SleepQuality},
		{Key: "heart_health", Label: "Сердце", Value: h.HeartHealth},
		{Key: "stress_level", Label: "Стресс", Value: h.StressLevel},
	}
}

// InsuranceSummary is the policy snapshot shown on the dashboard.
// Amounts are whole roubles.
type InsuranceSummary struct {
	CurrentPremium     int64  `yaml:"current_premium" json:"current_premium"`
	PotentialSavings   int64  `yaml:"potential_savings" json:"potential_savings"`
	CoverageLevel      int    `yaml:"coverage_level" json:"coverage_level"`
	NextAdjustmentDate string `yaml:"next_adjustment_date" json:"next_adjustment_date"`
}

// ServiceOffering is one card of the services grid.
type ServiceOffering struct {
	Name        string `yaml:"name" json:"name"`
	Icon        string `yaml:"icon" json:"icon"`
	Color       string `yaml:"color" json:"color"`
	Description string `yaml:"description" json:"description"`
}

// MetricTile is one card of the hero metrics grid. Value is display text.
type MetricTile struct {
	Icon        string `yaml:"icon" json:"icon"`
	Label       string `yaml:"label" json:"label"`
	Value       string `yaml:"value" json:"value"`
	Description string `yaml:"description" json:"description"`
}

// TechnologyItem is one card of the technology grid.
type TechnologyItem struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Icon        string `yaml:"icon" json:"icon"`
}

// NavLink is a static navigation entry.
type NavLink struct {
	Label string `yaml:"label" json:"label"`
	Href  string `yaml:"href" json:"href"`
}

// QuickAction is a sidebar button on the dashboard.
type QuickAction struct {
	Label string `yaml:"label" json:"label"`
	Color string `yaml:"color" json:"color"`
}

// FooterSection is a titled column of footer links.
type FooterSection struct {
	Title string   `yaml:"title" json:"title"`
	Items []string `yaml:"items" json:"items"`
}

// Document is the serialisable shape of a catalog, as read from YAML.
type Document struct {
	Company         CompanyInfo       `yaml:"company" json:"company"`
	Palette         ThemePalette      `yaml:"palette" json:"palette"`
	Health          HealthMetricSet   `yaml:"health" json:"health"`
	Insurance       InsuranceSummary  `yaml:"insurance" json:"insurance"`
	Services        []ServiceOffering `yaml:"services" json:"services"`
	Metrics         []MetricTile      `yaml:"metrics" json:"metrics"`
	Recommendations []string          `yaml:"recommendations" json:"recommendations"`
	Technologies    []TechnologyItem  `yaml:"technologies" json:"technologies"`
	NavLinks        []NavLink         `yaml:"nav_links" json:"nav_links"`
	QuickActions    []QuickAction     `yaml:"quick_actions" json:"quick_actions"`
	Footer          []FooterSection   `yaml:"footer" json:"footer"`
}
