package dashboard

import (
	"bytes"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/ingostrakh/insurehub/internal/render"
)

// ServeIndex renders the page for the caller's session.
func (d *Dashboard) ServeIndex(w http.ResponseWriter, r *http.Request) {
	id := d.sessionID(w, r)
	st, err := d.sessions.Get(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	start := time.Now()
	var buf bytes.Buffer
	err = render.Render(&buf, st, d.catalog, render.Options{
		Formatter:   d.opts.Formatter,
		LiveUpdates: d.opts.LiveUpdates,
	})
	d.opts.Metrics.ObserveRender(time.Since(start))
	if err != nil {
		d.logger.Error("render failed", zap.Error(err))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(buf.Bytes())
}
