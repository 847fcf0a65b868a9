package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/ingostrakh/insurehub/internal/catalog"
	"github.com/ingostrakh/insurehub/internal/session"
	"github.com/ingostrakh/insurehub/internal/viewstate"
)

const testCookie = "insurehub_session"

func setupTest(t *testing.T) (*Dashboard, *session.Store) {
	t.Helper()

	store := session.NewStore(session.Config{MaxSessions: 100, TTL: time.Minute})
	d := New(catalog.Default(), store, Options{CookieName: testCookie})
	return d, store
}

func setupRouter(d *Dashboard) chi.Router {
	r := chi.NewRouter()
	d.RegisterRoutes(r)
	return r
}

// newSession loads the page once and returns the session cookie it issued.
func newSession(t *testing.T, r http.Handler) *http.Cookie {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		if c.Name == testCookie {
			return c
		}
	}
	t.Fatal("expected a session cookie")
	return nil
}

func do(r http.Handler, method, path string, cookie *http.Cookie, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestServeIndex(t *testing.T) {
	d, _ := setupTest(t)
	r := setupRouter(d)

	w := do(r, http.MethodGet, "/", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("expected text/html content type, got %q", ct)
	}
	if cc := w.Header().Get("Cache-Control"); cc != "no-store" {
		t.Errorf("expected no-store, got %q", cc)
	}
	body := w.Body.String()
	for _, want := range []string{"ИнгоСтрах", `data-theme="dark"`, `data-active-tab="dashboard"`, "₽12,500"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected page to contain %q", want)
		}
	}
}

func TestServeIndexReusesSession(t *testing.T) {
	d, store := setupTest(t)
	r := setupRouter(d)

	cookie := newSession(t, r)
	w := do(r, http.MethodGet, "/", cookie, "")
	if len(w.Result().Cookies()) != 0 {
		t.Error("expected no new cookie for a known session")
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 session, got %d", store.Len())
	}
}

func TestMalformedCookieGetsNewSession(t *testing.T) {
	d, _ := setupTest(t)
	r := setupRouter(d)

	w := do(r, http.MethodGet, "/", &http.Cookie{Name: testCookie, Value: "not-a-uuid"}, "")
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value == "not-a-uuid" {
		t.Fatalf("expected a fresh session cookie, got %v", cookies)
	}
	if !cookies[0].HttpOnly {
		t.Error("expected HttpOnly cookie")
	}
}

func TestFormActions(t *testing.T) {
	tests := []struct {
		path  string
		check func(viewstate.State) bool
	}{
		{"/actions/theme", func(s viewstate.State) bool { return !s.IsDarkTheme }},
		{"/actions/menu", func(s viewstate.State) bool { return s.IsMenuOpen }},
		{"/actions/playing", func(s viewstate.State) bool { return !s.IsPlaying }},
		{"/actions/tab/services", func(s viewstate.State) bool { return s.ActiveTab == viewstate.TabServices }},
		{"/actions/tab/technologies", func(s viewstate.State) bool { return s.ActiveTab == viewstate.TabTechnologies }},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			d, store := setupTest(t)
			r := setupRouter(d)
			cookie := newSession(t, r)

			w := do(r, http.MethodPost, tt.path, cookie, "")
			if w.Code != http.StatusSeeOther {
				t.Fatalf("expected 303, got %d: %s", w.Code, w.Body.String())
			}
			if loc := w.Header().Get("Location"); loc != "/" {
				t.Errorf("expected redirect to /, got %q", loc)
			}

			st, err := store.Get(cookie.Value)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if !tt.check(st) {
				t.Errorf("unexpected state after %s: %+v", tt.path, st)
			}
		})
	}
}

func TestToggleThemeTwiceRestores(t *testing.T) {
	d, store := setupTest(t)
	r := setupRouter(d)
	cookie := newSession(t, r)

	do(r, http.MethodPost, "/actions/theme", cookie, "")
	do(r, http.MethodPost, "/actions/theme", cookie, "")

	st, _ := store.Get(cookie.Value)
	if st != viewstate.Default() {
		t.Errorf("expected default state, got %+v", st)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	d, _ := setupTest(t)
	r := setupRouter(d)

	alice := newSession(t, r)
	bob := newSession(t, r)
	if alice.Value == bob.Value {
		t.Fatal("expected distinct session ids")
	}

	do(r, http.MethodPost, "/actions/theme", alice, "")

	if body := do(r, http.MethodGet, "/", alice, "").Body.String(); !strings.Contains(body, `data-theme="light"`) {
		t.Error("expected light theme for the toggling session")
	}
	if body := do(r, http.MethodGet, "/", bob, "").Body.String(); !strings.Contains(body, `data-theme="dark"`) {
		t.Error("expected dark theme for the other session")
	}
}

func TestInvalidTabRejected(t *testing.T) {
	d, store := setupTest(t)
	r := setupRouter(d)
	cookie := newSession(t, r)

	do(r, http.MethodPost, "/actions/tab/services", cookie, "")
	w := do(r, http.MethodPost, "/actions/tab/bogus", cookie, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	st, _ := store.Get(cookie.Value)
	if st.ActiveTab != viewstate.TabServices {
		t.Errorf("expected tab to stay services, got %q", st.ActiveTab)
	}
}

func TestGetState(t *testing.T) {
	d, _ := setupTest(t)
	r := setupRouter(d)

	w := do(r, http.MethodGet, "/api/state", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}

	var resp stateResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding state: %v", err)
	}
	if resp.State != viewstate.Default() {
		t.Errorf("expected default state, got %+v", resp.State)
	}
}

func TestPostState(t *testing.T) {
	tests := []struct {
		name   string
		action string
		body   string
		status int
		want   func(viewstate.State) bool
	}{
		{"toggle menu", "toggle_menu", "", http.StatusOK, func(s viewstate.State) bool { return s.IsMenuOpen }},
		{"set tab", "set_tab", `{"tab":"technologies"}`, http.StatusOK, func(s viewstate.State) bool { return s.ActiveTab == viewstate.TabTechnologies }},
		{"invalid tab", "set_tab", `{"tab":"claims"}`, http.StatusBadRequest, nil},
		{"unknown action", "explode", "", http.StatusBadRequest, nil},
		{"bad body", "set_tab", `{"tab":`, http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, store := setupTest(t)
			r := setupRouter(d)
			cookie := newSession(t, r)

			w := do(r, http.MethodPost, "/api/state/"+tt.action, cookie, tt.body)
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, w.Code, w.Body.String())
			}

			if tt.want == nil {
				var resp map[string]string
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("decoding error: %v", err)
				}
				if resp["error"] == "" {
					t.Error("expected an error message")
				}
				st, _ := store.Get(cookie.Value)
				if st != viewstate.Default() {
					t.Errorf("expected state unchanged, got %+v", st)
				}
				return
			}

			var resp stateResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decoding state: %v", err)
			}
			if !tt.want(resp.State) {
				t.Errorf("unexpected state: %+v", resp.State)
			}
		})
	}
}

func TestCatalogEndpoint(t *testing.T) {
	d, _ := setupTest(t)
	r := setupRouter(d)

	w := do(r, http.MethodGet, "/api/catalog", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var doc catalog.Document
	if err := json.NewDecoder(w.Body).Decode(&doc); err != nil {
		t.Fatalf("decoding catalog: %v", err)
	}
	if doc.Company.Name != "ИнгоСтрах" {
		t.Errorf("expected company ИнгоСтрах, got %q", doc.Company.Name)
	}
	if len(doc.Services) != 6 {
		t.Errorf("expected 6 services, got %d", len(doc.Services))
	}
}

func dialLive(t *testing.T, server *httptest.Server, cookie *http.Cookie) (*websocket.Conn, *http.Response) {
	t.Helper()

	header := http.Header{}
	if cookie != nil {
		header.Set("Cookie", cookie.Name+"="+cookie.Value)
	}
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/state"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn, resp
}

func readLiveResponse(t *testing.T, conn *websocket.Conn) liveResponse {
	t.Helper()

	var resp liveResponse
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	return resp
}

func TestWebSocketUpgrade(t *testing.T) {
	d, _ := setupTest(t)
	server := httptest.NewServer(setupRouter(d))
	defer server.Close()

	conn, resp := dialLive(t, server, nil)
	if resp.StatusCode != http.StatusSwitchingProtocols {
		t.Fatalf("expected 101, got %d", resp.StatusCode)
	}

	var issued bool
	for _, c := range resp.Cookies() {
		issued = issued || c.Name == testCookie
	}
	if !issued {
		t.Error("expected the handshake to issue a session cookie")
	}

	first := readLiveResponse(t, conn)
	if first.Type != "state" || first.State == nil || *first.State != viewstate.Default() {
		t.Errorf("expected initial default state, got %+v", first)
	}
}

func TestWebSocketAppliesActions(t *testing.T) {
	d, store := setupTest(t)
	r := setupRouter(d)
	server := httptest.NewServer(r)
	defer server.Close()

	cookie := newSession(t, r)
	conn, _ := dialLive(t, server, cookie)
	readLiveResponse(t, conn)

	if err := conn.WriteJSON(liveRequest{Type: viewstate.ActionSetTab, Tab: viewstate.TabServices}); err != nil {
		t.Fatalf("write: %v", err)
	}
	resp := readLiveResponse(t, conn)
	if resp.Type != "state" || resp.State.ActiveTab != viewstate.TabServices {
		t.Fatalf("expected services tab, got %+v", resp)
	}

	st, _ := store.Get(cookie.Value)
	if st.ActiveTab != viewstate.TabServices {
		t.Errorf("expected store to hold services tab, got %q", st.ActiveTab)
	}
}

func TestWebSocketReceivesFormActions(t *testing.T) {
	d, _ := setupTest(t)
	r := setupRouter(d)
	server := httptest.NewServer(r)
	defer server.Close()

	cookie := newSession(t, r)
	conn, _ := dialLive(t, server, cookie)
	readLiveResponse(t, conn)

	do(r, http.MethodPost, "/actions/playing", cookie, "")

	resp := readLiveResponse(t, conn)
	if resp.Type != "state" || resp.State.IsPlaying {
		t.Errorf("expected paused state pushed, got %+v", resp)
	}
}

func TestWebSocketErrors(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want string
	}{
		{"invalid json", `{"type":`, "invalid message format"},
		{"unknown action", `{"type":"explode"}`, "unknown action"},
		{"invalid tab", `{"type":"set_tab","tab":"claims"}`, "invalid tab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := setupTest(t)
			server := httptest.NewServer(setupRouter(d))
			defer server.Close()

			conn, _ := dialLive(t, server, nil)
			readLiveResponse(t, conn)

			if err := conn.WriteMessage(websocket.TextMessage, []byte(tt.msg)); err != nil {
				t.Fatalf("write: %v", err)
			}
			resp := readLiveResponse(t, conn)
			if resp.Type != "error" {
				t.Fatalf("expected error type, got %q", resp.Type)
			}
			if !strings.Contains(resp.Error, tt.want) {
				t.Errorf("expected %q in error, got %q", tt.want, resp.Error)
			}
		})
	}
}
