package dashboard

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ingostrakh/insurehub/internal/session"
	"github.com/ingostrakh/insurehub/internal/viewstate"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// liveRequest is the incoming WebSocket message format.
type liveRequest struct {
	Type viewstate.ActionType `json:"type"` // toggle_theme, toggle_menu, toggle_playing or set_tab
	Tab  viewstate.Tab        `json:"tab,omitempty"`
}

// liveResponse is the outgoing WebSocket message format.
type liveResponse struct {
	Type  string           `json:"type"` // "state" or "error"
	State *viewstate.State `json:"state,omitempty"`
	Error string           `json:"error,omitempty"`
}

// liveConn serialises writes; the reader and the subscription both send.
type liveConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *liveConn) send(resp liveResponse) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(resp)
}

// handleWebSocket pushes every state committed for the caller's session and
// applies the actions the client sends.
func (d *Dashboard) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	id, header := d.liveSessionID(r)

	conn, err := upgrader.Upgrade(w, r, header)
	if err != nil {
		d.logger.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()
	lc := &liveConn{conn: conn}

	updates, cancel := d.sessions.Subscribe(id)
	defer cancel()

	st, err := d.sessions.Get(id)
	if err != nil {
		lc.send(liveResponse{Type: "error", Error: err.Error()})
		return
	}
	if err := lc.send(liveResponse{Type: "state", State: &st}); err != nil {
		return
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		d.readLive(lc, id)
	}()

	for {
		select {
		case st, ok := <-updates:
			if !ok {
				return
			}
			if err := lc.send(liveResponse{Type: "state", State: &st}); err != nil {
				d.logger.Debug("websocket write", zap.Error(err))
				return
			}
		case <-done:
			return
		}
	}
}

// readLive applies client actions until the connection closes. Successful
// actions reach the client through the session subscription.
func (d *Dashboard) readLive(lc *liveConn, id string) {
	for {
		_, msg, err := lc.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				d.logger.Warn("websocket read", zap.Error(err))
			}
			return
		}

		var req liveRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			lc.send(liveResponse{Type: "error", Error: "invalid message format"})
			continue
		}

		if _, err := d.apply(id, viewstate.Action{Type: req.Type, Tab: req.Tab}); err != nil {
			lc.send(liveResponse{Type: "error", Error: err.Error()})
		}
	}
}

// liveSessionID is sessionID for upgrade requests: the cookie has to travel
// in the handshake response headers.
func (d *Dashboard) liveSessionID(r *http.Request) (string, http.Header) {
	if c, err := r.Cookie(d.opts.CookieName); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value, nil
		}
	}
	id := session.NewID()
	return id, http.Header{"Set-Cookie": {d.newCookie(id).String()}}
}
