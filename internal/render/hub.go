package render

import (
	"fmt"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/ingostrakh/insurehub/internal/catalog"
	"github.com/ingostrakh/insurehub/internal/format"
	"github.com/ingostrakh/insurehub/internal/viewstate"
)

// gaugeCircumference is the stroke length of a gauge ring of radius 40.
const gaugeCircumference = 251.2

// GaugeOffset returns the stroke-dashoffset that fills a ring to value percent.
func GaugeOffset(value int) float64 {
	return gaugeCircumference - gaugeCircumference*float64(value)/100
}

// tabInfo is the heading shown for each hub tab.
type tabInfo struct {
	Label    string
	Title    string
	Subtitle string
}

var tabs = map[viewstate.Tab]tabInfo{
	viewstate.TabDashboard: {
		Label:    "Дашборд",
		Title:    "Цифровой хаб страхования",
		Subtitle: "Ваше здоровье в цифрах, ваша защита в реальном времени",
	},
	viewstate.TabServices: {
		Label:    "Сервисы",
		Title:    "Медицинская экосистема",
		Subtitle: "Полный спектр интеллектуальных медицинских решений",
	},
	viewstate.TabTechnologies: {
		Label:    "Технологии",
		Title:    "Технологический стек",
		Subtitle: "Инновации, обеспечивающие вашу безопасность",
	},
}

// hub renders the tab strip and the panel of the active tab.
func hub(st viewstate.State, cat *catalog.Catalog, f *format.Formatter) g.Node {
	info := tabs[st.ActiveTab]

	var panel g.Node
	switch st.ActiveTab {
	case viewstate.TabServices:
		panel = servicesPanel(cat)
	case viewstate.TabTechnologies:
		panel = technologiesPanel(cat)
	default:
		panel = dashboardPanel(cat, f)
	}

	return Section(
		ID("hub"),
		Class("py-16 px-4 sm:px-6 lg:px-8"),
		Div(
			Class("max-w-7xl mx-auto"),
			Div(
				g.Attr("role", "tablist"),
				Class("flex flex-wrap justify-center gap-3 mb-12"),
				g.Map(viewstate.Tabs(), func(t viewstate.Tab) g.Node {
					active := t == st.ActiveTab
					return actionButton(PathSetTabPrefix+string(t),
						g.Attr("role", "tab"),
						ID("tab-"+string(t)),
						g.Attr("aria-selected", fmt.Sprint(active)),
						g.Attr("aria-controls", "panel"),
						c.Classes{
							"px-6 py-3 rounded-full font-semibold transition-all duration-300":    true,
							"bg-gradient-to-r " + cat.Palette().Primary + " text-white shadow-lg": active,
							"border border-gray-600 hover:border-blue-400 hover:text-blue-400":    !active,
						},
						g.Text(tabs[t].Label),
					)
				}),
			),
			Div(
				ID("panel"),
				g.Attr("role", "tabpanel"),
				g.Attr("aria-labelledby", "tab-"+string(st.ActiveTab)),
				g.Attr("data-panel", string(st.ActiveTab)),
				Div(
					Class("animate-fade-up text-center mb-12"),
					H2(
						Class("text-4xl md:text-5xl font-bold mb-4 bg-gradient-to-r from-blue-400 to-red-400 bg-clip-text text-transparent"),
						g.Text(info.Title),
					),
					P(Class("text-xl text-gray-400"), g.Text(info.Subtitle)),
				),
				panel,
			),
		),
	)
}

// card is the frosted container shared by dashboard blocks.
func card(children ...g.Node) g.Node {
	return Div(append([]g.Node{
		Class("bg-gradient-to-br from-gray-800/50 to-gray-900/50 backdrop-blur-xl rounded-3xl p-8 border border-gray-700/50 shadow-xl"),
	}, children...)...)
}

func cardTitle(iconName, iconClass, title string) g.Node {
	return H3(
		Class("text-2xl font-bold mb-6 flex items-center text-white"),
		g.If(iconName != "", icon(iconName, "w-7 h-7 mr-3 "+iconClass)),
		g.Text(title),
	)
}

// analyticsRow is one line of the insurance analytics card.
type analyticsRow struct {
	Label string
	Value string
	Color string
}

func dashboardPanel(cat *catalog.Catalog, f *format.Formatter) g.Node {
	ins := cat.Insurance()

	analytics := []analyticsRow{
		{"Текущая премия", f.Currency(ins.CurrentPremium), "text-blue-400"},
		{"Потенциальная экономия", f.Savings(ins.PotentialSavings), "text-green-400"},
		{"Уровень покрытия", f.Percent(ins.CoverageLevel), "text-yellow-400"},
	}

	return Div(
		ID("dashboard"),
		Class("grid grid-cols-1 lg:grid-cols-3 gap-8"),
		Div(
			Class("lg:col-span-2 space-y-8"),
			card(
				ID("health-metrics"),
				cardTitle("heart", "text-red-400", "Метрики здоровья"),
				Div(
					Class("grid grid-cols-2 md:grid-cols-4 gap-8"),
					g.Map(cat.Health().Gauges(), healthGauge),
				),
			),
			card(
				ID("insurance-analytics"),
				cardTitle("trending-up", "text-green-400", "Страховая аналитика"),
				Div(
					Class("space-y-6"),
					g.Map(analytics, func(row analyticsRow) g.Node {
						return Div(
							Class("flex justify-between items-center p-4 rounded-xl bg-gray-700/30 hover:bg-gray-700/50 transition-colors"),
							Span(Class("text-lg"), g.Text(row.Label)),
							Span(Class("text-2xl font-bold "+row.Color), g.Text(row.Value)),
						)
					}),
					P(
						Class("text-sm text-gray-400"),
						g.Text("Следующая корректировка: "),
						g.El("time", g.Attr("datetime", ins.NextAdjustmentDate), g.Text(ins.NextAdjustmentDate)),
					),
				),
			),
		),
		Div(
			Class("space-y-8"),
			card(
				ID("recommendations"),
				cardTitle("zap", "text-yellow-400", "Рекомендации AI"),
				Div(
					Class("space-y-4"),
					g.Map(cat.Recommendations(), func(rec string) g.Node {
						return Div(
							Class("flex items-start space-x-3 p-4 rounded-xl bg-gray-700/30 hover:bg-gray-700/50 transition-all duration-300 group"),
							icon("award", "w-5 h-5 text-blue-400 mt-0.5 flex-shrink-0 group-hover:scale-110 transition-transform"),
							P(Class("text-sm leading-relaxed group-hover:text-gray-200 transition-colors"), inlineMarkdown(rec)),
						)
					}),
				),
			),
			card(
				ID("quick-actions"),
				cardTitle("", "", "Быстрые действия"),
				Div(
					Class("space-y-4"),
					g.Map(cat.QuickActions(), func(a catalog.QuickAction) g.Node {
						return Button(
							Type("button"),
							Class("w-full bg-gradient-to-r "+a.Color+" text-white p-4 rounded-xl hover:shadow-lg transition-all duration-300 font-medium"),
							g.Text(a.Label),
						)
					}),
				),
			),
		),
	)
}

func healthGauge(gauge catalog.Gauge) g.Node {
	gradientID := "gauge-" + gauge.Key

	return Div(
		Class("text-center group"),
		g.Attr("data-gauge", gauge.Key),
		Div(
			Class("relative w-20 h-20 mx-auto mb-3"),
			g.El("svg",
				Class("w-full h-full transform -rotate-90"),
				g.Attr("viewBox", "0 0 100 100"),
				g.El("circle",
					g.Attr("cx", "50"), g.Attr("cy", "50"), g.Attr("r", "40"),
					g.Attr("stroke", "currentColor"), g.Attr("stroke-width", "8"), g.Attr("fill", "none"),
					Class("text-gray-700"),
				),
				g.El("circle",
					g.Attr("cx", "50"), g.Attr("cy", "50"), g.Attr("r", "40"),
					g.Attr("stroke", "url(#"+gradientID+")"), g.Attr("stroke-width", "8"), g.Attr("fill", "none"),
					g.Attr("stroke-linecap", "round"),
					g.Attr("stroke-dasharray", fmt.Sprintf("%.1f", gaugeCircumference)),
					g.Attr("stroke-dashoffset", fmt.Sprintf("%.2f", GaugeOffset(gauge.Value))),
					Class("transition-all duration-1000 ease-out"),
				),
				g.El("defs",
					g.El("linearGradient",
						ID(gradientID),
						g.Attr("x1", "0%"), g.Attr("y1", "0%"), g.Attr("x2", "100%"), g.Attr("y2", "0%"),
						g.El("stop", g.Attr("offset", "0%"), g.Attr("stop-color", "#3b82f6")),
						g.El("stop", g.Attr("offset", "100%"), g.Attr("stop-color", "#ef4444")),
					),
				),
			),
			Span(
				Class("absolute inset-0 flex items-center justify-center text-lg font-bold text-white"),
				g.Textf("%d%%", gauge.Value),
			),
		),
		P(Class("text-sm text-gray-400 group-hover:text-gray-300 transition-colors capitalize"), g.Text(gauge.Label)),
	)
}

func servicesPanel(cat *catalog.Catalog) g.Node {
	return Div(
		ID("services"),
		Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-6"),
		g.Map(cat.Services(), func(s catalog.ServiceOffering) g.Node {
			return Div(
				Class("service-card bg-gradient-to-br from-gray-800/50 to-gray-900/50 backdrop-blur-xl rounded-3xl p-6 border border-gray-700/50 hover:border-blue-500/50 transition-all duration-300 cursor-pointer group"),
				Div(
					Class("w-16 h-16 rounded-2xl bg-gradient-to-r "+s.Color+" flex items-center justify-center mb-4 group-hover:scale-110 transition-transform duration-300"),
					icon(s.Icon, "w-8 h-8 text-white"),
				),
				H3(Class("text-xl font-bold mb-2 text-white"), g.Text(s.Name)),
				P(Class("text-gray-400 group-hover:text-gray-300 transition-colors"), g.Text(s.Description)),
			)
		}),
	)
}

func technologiesPanel(cat *catalog.Catalog) g.Node {
	return Div(
		ID("technologies"),
		Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-6"),
		g.Map(cat.Technologies(), func(t catalog.TechnologyItem) g.Node {
			return Div(
				Class("tech-card bg-gradient-to-br from-gray-800/50 to-gray-900/50 backdrop-blur-xl rounded-3xl p-6 border border-gray-700/50 hover:border-blue-500/50 transition-all duration-300 text-center group"),
				Div(
					Class("w-14 h-14 mx-auto mb-4 bg-gradient-to-r from-blue-500 to-red-500 rounded-2xl flex items-center justify-center group-hover:scale-110 transition-transform duration-300"),
					icon(t.Icon, "w-7 h-7 text-white"),
				),
				H3(Class("text-lg font-bold mb-2 text-white"), g.Text(t.Title)),
				P(Class("text-gray-400 text-sm group-hover:text-gray-300 transition-colors"), g.Text(t.Description)),
			)
		}),
	)
}
