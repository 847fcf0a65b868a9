package dashboard

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ingostrakh/insurehub/internal/viewstate"
)

// stateResponse is the JSON response for the state endpoints.
type stateResponse struct {
	State viewstate.State `json:"state"`
}

// stateRequest is the optional JSON body of POST /api/state/{action}.
type stateRequest struct {
	Tab viewstate.Tab `json:"tab"`
}

// actionResolver extracts the requested action from a request.
type actionResolver func(r *http.Request) viewstate.Action

func staticAction(t viewstate.ActionType) actionResolver {
	return func(*http.Request) viewstate.Action { return viewstate.Action{Type: t} }
}

func tabFromPath(r *http.Request) viewstate.Action {
	return viewstate.Action{Type: viewstate.ActionSetTab, Tab: viewstate.Tab(chi.URLParam(r, "tab"))}
}

// apply runs a on the caller's session and records the outcome.
func (d *Dashboard) apply(id string, a viewstate.Action) (viewstate.State, error) {
	st, err := d.sessions.Apply(id, a)
	d.opts.Metrics.ObserveAction(string(a.Type), err)
	if err != nil {
		d.logger.Debug("view-state action rejected",
			zap.String("action", string(a.Type)),
			zap.String("tab", string(a.Tab)),
			zap.Error(err))
	}
	return st, err
}

// handleFormAction serves the no-JavaScript controls: apply the action,
// then send the browser back to the page.
func (d *Dashboard) handleFormAction(resolve actionResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := d.sessionID(w, r)
		if _, err := d.apply(id, resolve(r)); err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (d *Dashboard) handleGetState(w http.ResponseWriter, r *http.Request) {
	st, err := d.sessions.Get(d.sessionID(w, r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, stateResponse{State: st})
}

func (d *Dashboard) handlePostState(w http.ResponseWriter, r *http.Request) {
	id := d.sessionID(w, r)

	var req stateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	a := viewstate.Action{Type: viewstate.ActionType(chi.URLParam(r, "action")), Tab: req.Tab}
	st, err := d.apply(id, a)
	if err != nil {
		writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, stateResponse{State: st})
}

func (d *Dashboard) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, d.catalog.Document())
}

// statusFor maps view-state errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, viewstate.ErrInvalidTab), errors.Is(err, viewstate.ErrUnknownAction):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
