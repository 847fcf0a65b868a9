// Package render builds the insurance page as a gomponents node tree. Page
// is a pure function of the view state and the catalog.
package render

import (
	"fmt"
	"io"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/ingostrakh/insurehub/internal/catalog"
	"github.com/ingostrakh/insurehub/internal/format"
	"github.com/ingostrakh/insurehub/internal/viewstate"
)

// Form targets for the view-state controls.
const (
	PathToggleTheme   = "/actions/theme"
	PathToggleMenu    = "/actions/menu"
	PathTogglePlaying = "/actions/playing"
	PathSetTabPrefix  = "/actions/tab/"
)

// tailwindCDN is the stylesheet runtime the page classes are written for.
const tailwindCDN = "https://cdn.tailwindcss.com"

// pageStyle complements Tailwind with the entrance animation and the paused
// state driven by the play/pause control.
const pageStyle = `
@keyframes fade-up { from { opacity: 0; transform: translateY(20px); } to { opacity: 1; transform: none; } }
.animate-fade-up { animation: fade-up 0.8s ease-out both; }
#app[data-playing=false] *, #app[data-playing=false] *::before, #app[data-playing=false] *::after {
  animation-play-state: paused !important;
  transition: none !important;
}
`

// liveScript reloads the page when another tab of the same session changes
// the view state.
const liveScript = `
(function () {
  if (!window.WebSocket) return;
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/ws/state");
  var first = true;
  ws.onmessage = function (ev) {
    var msg = JSON.parse(ev.data);
    if (msg.type !== "state") return;
    if (first) { first = false; return; }
    location.reload();
  };
})();
`

// Options controls rendering details that are not part of the view state.
type Options struct {
	// Formatter formats currency and percentages. Defaults to English.
	Formatter *format.Formatter
	// LiveUpdates embeds the websocket client that keeps tabs in sync.
	LiveUpdates bool
}

// Page returns the full HTML document for st.
func Page(st viewstate.State, cat *catalog.Catalog, opts Options) g.Node {
	if opts.Formatter == nil {
		opts.Formatter = format.MustNew("en")
	}

	company := cat.Company()
	palette := cat.Palette()

	root := Div(
		ID("app"),
		c.Classes{
			"min-h-screen transition-all duration-500 bg-gradient-to-br": true,
			palette.Background(st.IsDarkTheme):                           true,
			"text-white":                                                 st.IsDarkTheme,
			"text-gray-900":                                              !st.IsDarkTheme,
		},
		g.Attr("data-theme", themeName(st.IsDarkTheme)),
		g.Attr("data-active-tab", string(st.ActiveTab)),
		g.Attr("data-playing", fmt.Sprint(st.IsPlaying)),
		navBar(st, cat),
		hero(st, cat),
		hub(st, cat, opts.Formatter),
		pageFooter(st, cat),
	)

	return Doctype(
		HTML(
			Lang("ru"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), g.Attr("content", "width=device-width, initial-scale=1")),
				Meta(Name("description"), g.Attr("content", company.Slogan)),
				g.El("title", g.Textf("%s — %s", company.Name, company.Slogan)),
				Script(Src(tailwindCDN)),
				g.El("style", g.Raw(pageStyle)),
			),
			Body(
				root,
				g.If(opts.LiveUpdates, Script(g.Raw(liveScript))),
			),
		),
	)
}

// Render writes the page for st to w.
func Render(w io.Writer, st viewstate.State, cat *catalog.Catalog, opts Options) error {
	if err := Page(st, cat, opts).Render(w); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

func themeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

// actionButton is a single-button form posting to path, so the controls
// work without JavaScript.
func actionButton(path string, button ...g.Node) g.Node {
	return g.El("form",
		Method("post"),
		Action(path),
		Class("inline"),
		Button(append([]g.Node{Type("submit")}, button...)...),
	)
}

func brand(cat *catalog.Catalog) g.Node {
	return Div(
		Class("flex items-center space-x-3"),
		Div(
			Class("w-10 h-10 bg-gradient-to-r "+cat.Palette().Primary+" rounded-xl flex items-center justify-center shadow-lg"),
			icon("shield", "w-6 h-6 text-white"),
		),
		Span(
			Class("text-2xl font-bold bg-gradient-to-r from-blue-400 to-red-400 bg-clip-text text-transparent"),
			g.Text(cat.Company().Name),
		),
	)
}

func navBar(st viewstate.State, cat *catalog.Catalog) g.Node {
	links := cat.NavLinks()

	themeIcon, themeLabel := "moon", "Включить тёмную тему"
	if st.IsDarkTheme {
		themeIcon, themeLabel = "sun", "Включить светлую тему"
	}
	menuIcon, menuLabel := "menu", "Открыть меню"
	if st.IsMenuOpen {
		menuIcon, menuLabel = "x", "Закрыть меню"
	}

	return Nav(
		c.Classes{
			"fixed top-0 w-full z-50 transition-all duration-300 backdrop-blur-xl border-b": true,
			"bg-gray-900/90 border-gray-800":                                                st.IsDarkTheme,
			"bg-white/90 border-gray-200":                                                   !st.IsDarkTheme,
		},
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			Div(
				Class("flex justify-between items-center h-16"),
				brand(cat),
				Div(
					Class("hidden md:flex items-center space-x-8"),
					g.Map(links, func(l catalog.NavLink) g.Node {
						return A(Href(l.Href), Class("hover:text-blue-400 transition-colors font-medium"), g.Text(l.Label))
					}),
				),
				Div(
					Class("flex items-center space-x-3"),
					actionButton(PathToggleTheme,
						ID("theme-toggle"),
						g.Attr("aria-label", themeLabel),
						c.Classes{
							"p-3 rounded-xl transition-colors": true,
							"bg-gray-800 hover:bg-gray-700":    st.IsDarkTheme,
							"bg-gray-200 hover:bg-gray-300":    !st.IsDarkTheme,
						},
						icon(themeIcon, "w-5 h-5"),
					),
					actionButton(PathToggleMenu,
						ID("menu-toggle"),
						g.Attr("aria-label", menuLabel),
						g.Attr("aria-controls", "mobile-menu"),
						g.Attr("aria-expanded", fmt.Sprint(st.IsMenuOpen)),
						Class("md:hidden p-3 rounded-xl transition-colors"),
						icon(menuIcon, "w-5 h-5"),
					),
				),
			),
		),
		g.If(st.IsMenuOpen, Div(
			ID("mobile-menu"),
			c.Classes{
				"md:hidden px-4 pb-4 space-y-2 border-t": true,
				"border-gray-800":                        st.IsDarkTheme,
				"border-gray-200":                        !st.IsDarkTheme,
			},
			g.Map(links, func(l catalog.NavLink) g.Node {
				return A(Href(l.Href), Class("block py-2 hover:text-blue-400 transition-colors font-medium"), g.Text(l.Label))
			}),
		)),
	)
}

func hero(st viewstate.State, cat *catalog.Catalog) g.Node {
	playIcon, playLabel := "play", "Возобновить анимацию"
	if st.IsPlaying {
		playIcon, playLabel = "pause", "Приостановить анимацию"
	}

	return Section(
		ID("hero"),
		Class("pt-28 pb-20 px-4 sm:px-6 lg:px-8"),
		Div(
			Class("max-w-7xl mx-auto"),
			Div(
				Class("text-center mb-16"),
				H1(
					Class("animate-fade-up text-5xl md:text-7xl font-bold mb-6 bg-gradient-to-r from-blue-400 via-red-400 to-blue-400 bg-clip-text text-transparent leading-tight"),
					g.Text("Страхование,"),
					Br(),
					Span(
						Class("bg-gradient-to-r from-blue-600 to-red-500 bg-clip-text text-transparent"),
						g.Text("которое дышит с вами"),
					),
				),
				P(
					Class("animate-fade-up text-xl md:text-2xl text-gray-400 mb-8 max-w-3xl mx-auto leading-relaxed"),
					g.Text("Инновационное динамическое страхование здоровья, адаптирующееся к вашему образу жизни в реальном времени"),
				),
				Div(
					Class("animate-fade-up flex flex-col sm:flex-row gap-4 justify-center items-center"),
					Button(
						Type("button"),
						Class("bg-gradient-to-r "+cat.Palette().Primary+" text-white px-8 py-4 rounded-full text-lg font-semibold hover:shadow-2xl hover:shadow-blue-500/25 transition-all duration-300 flex items-center"),
						g.Text("Начать персонализацию"),
						icon("arrow-right", "w-5 h-5 ml-2"),
					),
					Button(
						Type("button"),
						Class("px-8 py-4 rounded-full text-lg font-semibold border-2 border-gray-600 hover:border-blue-400 hover:text-blue-400 transition-all duration-300"),
						g.Text("Узнать больше"),
					),
					actionButton(PathTogglePlaying,
						ID("play-toggle"),
						g.Attr("aria-label", playLabel),
						g.Attr("aria-pressed", fmt.Sprint(st.IsPlaying)),
						Class("p-4 rounded-full border-2 border-gray-600 hover:border-blue-400 transition-all duration-300"),
						icon(playIcon, "w-5 h-5"),
					),
				),
			),
			metricsGrid(cat),
		),
	)
}

func metricsGrid(cat *catalog.Catalog) g.Node {
	return Div(
		ID("metrics"),
		Class("animate-fade-up relative bg-gradient-to-r "+cat.Palette().Secondary+" backdrop-blur-xl rounded-3xl p-8 border border-gray-700/50 shadow-2xl"),
		Div(
			Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-6"),
			g.Map(cat.Metrics(), func(m catalog.MetricTile) g.Node {
				return Div(
					Class("metric-tile text-center p-6 rounded-2xl bg-gradient-to-br from-gray-700/30 to-gray-800/30 border border-gray-600/30 hover:border-blue-500/50 transition-all duration-300 group"),
					Div(
						Class("w-16 h-16 mx-auto mb-4 rounded-2xl bg-gradient-to-r from-blue-500 to-red-500 flex items-center justify-center group-hover:scale-110 transition-transform duration-300"),
						icon(m.Icon, "w-8 h-8 text-white"),
					),
					H3(Class("text-lg font-semibold mb-2 text-white"), g.Text(m.Label)),
					P(Class("text-2xl font-bold text-blue-400 mb-2"), g.Text(m.Value)),
					P(Class("text-sm text-gray-400"), g.Text(m.Description)),
				)
			}),
		),
	)
}

func pageFooter(st viewstate.State, cat *catalog.Catalog) g.Node {
	company := cat.Company()

	return Footer(
		c.Classes{
			"py-16 px-4 sm:px-6 lg:px-8 border-t": true,
			"border-gray-800":                     st.IsDarkTheme,
			"border-gray-200":                     !st.IsDarkTheme,
		},
		Div(
			Class("max-w-7xl mx-auto"),
			Div(
				Class("grid grid-cols-1 md:grid-cols-4 gap-8 mb-8"),
				Div(
					Div(Class("mb-4"), brand(cat)),
					P(Class("text-gray-400 leading-relaxed"), g.Text(company.Slogan)),
				),
				g.Map(cat.FooterSections(), func(s catalog.FooterSection) g.Node {
					return Div(
						H4(Class("font-semibold mb-4 text-lg"), g.Text(s.Title)),
						Ul(
							Class("space-y-3"),
							g.Map(s.Items, func(item string) g.Node {
								return Li(A(Href("#"), Class("text-gray-400 hover:text-blue-400 transition-colors duration-200"), g.Text(item)))
							}),
						),
					)
				}),
			),
			Div(
				Class("border-t pt-8 text-center text-gray-400"),
				P(ID("copyright"), g.Text(Copyright(company))),
			),
		),
	)
}

// Copyright returns the footer line for company.
func Copyright(company catalog.CompanyInfo) string {
	return fmt.Sprintf("© %d %s. Все права защищены.", company.FoundingYear, company.Name)
}
