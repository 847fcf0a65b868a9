// Package dashboard serves the insurance page and the view-state endpoints
// that drive it.
package dashboard

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ingostrakh/insurehub/internal/catalog"
	"github.com/ingostrakh/insurehub/internal/format"
	"github.com/ingostrakh/insurehub/internal/metrics"
	"github.com/ingostrakh/insurehub/internal/render"
	"github.com/ingostrakh/insurehub/internal/session"
	"github.com/ingostrakh/insurehub/internal/viewstate"
)

// Options configures a Dashboard. Zero values fall back to defaults.
type Options struct {
	CookieName   string
	CookieTTL    time.Duration
	SecureCookie bool
	LiveUpdates  bool
	Formatter    *format.Formatter
	Metrics      *metrics.Metrics
	Logger       *zap.Logger
}

// Dashboard renders the page for each browser session and applies the
// view-state toggles posted by it.
type Dashboard struct {
	catalog  *catalog.Catalog
	sessions *session.Store
	opts     Options
	logger   *zap.Logger
}

// New creates a new Dashboard over an immutable catalog and a session store.
func New(cat *catalog.Catalog, sessions *session.Store, opts Options) *Dashboard {
	if opts.CookieName == "" {
		opts.CookieName = "insurehub_session"
	}
	if opts.Formatter == nil {
		opts.Formatter = format.MustNew("en")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dashboard{
		catalog:  cat,
		sessions: sessions,
		opts:     opts,
		logger:   logger.Named("dashboard"),
	}
}

// RegisterRoutes mounts all dashboard routes onto the given router.
func (d *Dashboard) RegisterRoutes(r chi.Router) {
	r.Get("/", d.ServeIndex)

	r.Post(render.PathToggleTheme, d.handleFormAction(staticAction(viewstate.ActionToggleTheme)))
	r.Post(render.PathToggleMenu, d.handleFormAction(staticAction(viewstate.ActionToggleMenu)))
	r.Post(render.PathTogglePlaying, d.handleFormAction(staticAction(viewstate.ActionTogglePlaying)))
	r.Post(render.PathSetTabPrefix+"{tab}", d.handleFormAction(tabFromPath))

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", d.handleGetState)
		r.Post("/state/{action}", d.handlePostState)
		r.Get("/catalog", d.handleCatalog)
	})

	r.Get("/ws/state", d.handleWebSocket)
}

// sessionID returns the caller's session id, issuing a new cookie when the
// request carries none or a malformed one.
func (d *Dashboard) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(d.opts.CookieName); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}

	id := session.NewID()
	http.SetCookie(w, d.newCookie(id))
	return id
}

func (d *Dashboard) newCookie(id string) *http.Cookie {
	c := &http.Cookie{
		Name:     d.opts.CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   d.opts.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	}
	if d.opts.CookieTTL > 0 {
		c.MaxAge = int(d.opts.CookieTTL.Seconds())
	}
	return c
}
