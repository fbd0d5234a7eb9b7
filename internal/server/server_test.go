package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/clock"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/nav"
	"github.com/Zachkp/portfolio/internal/viewport"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type client struct {
	t      *testing.T
	srv    *Server
	cookie *http.Cookie
}

func newTestServer(t *testing.T, clk *clock.Manual, logs io.Writer) *Server {
	t.Helper()
	store, err := content.Default()
	require.NoError(t, err)
	if logs == nil {
		logs = io.Discard
	}
	var copts contact.Options
	if clk != nil {
		copts.Clock = clk
	}
	srv, err := New(Options{
		Content:    store,
		Contact:    copts,
		SessionTTL: time.Minute,
		HashSalt:   "test-salt",
		Logger:     log.New(logs, "", 0),
		Now:        func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
	})
	require.NoError(t, err)
	return srv
}

func (c *client) do(method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	c.t.Helper()
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	w := httptest.NewRecorder()
	c.srv.Router().ServeHTTP(w, req)
	for _, ck := range w.Result().Cookies() {
		if ck.Name == sessionCookie {
			c.cookie = ck
		}
	}
	return w
}

func (c *client) scroll(m viewport.Measurement) *httptest.ResponseRecorder {
	b, err := json.Marshal(m)
	require.NoError(c.t, err)
	return c.do(http.MethodPost, "/nav/scroll", bytes.NewReader(b), "application/json")
}

func (c *client) submit(f contact.Fields) *httptest.ResponseRecorder {
	form := url.Values{
		"name":    {f.Name},
		"email":   {f.Email},
		"subject": {f.Subject},
		"message": {f.Message},
	}
	return c.do(http.MethodPost, "/contact", strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
}

func TestHealthCheck(t *testing.T) {
	c := &client{t: t, srv: newTestServer(t, nil, nil)}
	w := c.do(http.MethodGet, "/healthz", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestIndex(t *testing.T) {
	c := &client{t: t, srv: newTestServer(t, nil, nil)}
	w := c.do(http.MethodGet, "/", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, c.cookie, "a session cookie is issued")

	body := w.Body.String()
	for _, want := range []string{
		"Pavithran Rajasekar",
		`id="site-nav"`,
		`id="about"`,
		`id="projects"`,
		`id="skills"`,
		`id="contact"`,
		"Mobile Fitness Tracker",
		"TechCorp Solutions",
		"Currently Exploring",
		"2026",
		"--motion-delay:0.5s",
	} {
		assert.Contains(t, body, want)
	}
}

func TestIndex_CategoryQuery(t *testing.T) {
	c := &client{t: t, srv: newTestServer(t, nil, nil)}
	body := c.do(http.MethodGet, "/?category=Mobile", nil, "").Body.String()
	assert.Contains(t, body, "Mobile Fitness Tracker")
	assert.NotContains(t, body, "E-Commerce Platform")

	body = c.do(http.MethodGet, "/?category=Desktop", nil, "").Body.String()
	assert.Contains(t, body, "E-Commerce Platform", "unknown categories fall back to All")
}

func TestProjectsFragment(t *testing.T) {
	c := &client{t: t, srv: newTestServer(t, nil, nil)}

	w := c.do(http.MethodGet, "/projects?category=Web", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "E-Commerce Platform")
	assert.Contains(t, body, "Portfolio Website")
	assert.NotContains(t, body, "Mobile Fitness Tracker")
	assert.NotContains(t, body, "Design System Library")
	assert.Less(t, strings.Index(body, "E-Commerce Platform"), strings.Index(body, "Data Visualization Dashboard"))

	w = c.do(http.MethodGet, "/projects?category="+url.QueryEscape("UI/UX"), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Design System Library")
	assert.NotContains(t, w.Body.String(), "E-Commerce Platform")

	w = c.do(http.MethodGet, "/projects?category=Games", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNavScroll(t *testing.T) {
	c := &client{t: t, srv: newTestServer(t, nil, nil)}
	c.do(http.MethodGet, "/", nil, "")

	about := viewport.Measurement{
		ScrollY: 1000,
		Sections: map[string]nav.Rect{
			"home":  {Top: -1000, Bottom: -100},
			"about": {Top: -100, Bottom: 1100},
		},
	}
	w := c.scroll(about)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `data-nav-goto="about" class="nav-link text-cyan-400 active" aria-current="true"`)
	assert.Contains(t, w.Body.String(), "backdrop-blur-md")

	w = c.scroll(about)
	assert.Equal(t, http.StatusNoContent, w.Code, "unchanged state is not re-rendered")

	gap := viewport.Measurement{ScrollY: 1050}
	w = c.scroll(gap)
	assert.Equal(t, http.StatusNoContent, w.Code, "no candidate keeps the last section")

	w = c.do(http.MethodPost, "/nav/scroll", strings.NewReader("{"), "application/json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNavMenuAndGoto(t *testing.T) {
	var logs bytes.Buffer
	c := &client{t: t, srv: newTestServer(t, nil, &logs)}
	c.do(http.MethodGet, "/", nil, "")

	w := c.do(http.MethodPost, "/nav/menu", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `id="mobile-menu"`)

	w = c.do(http.MethodPost, "/nav/goto/blog", nil, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, logs.String(), "blog")

	w = c.do(http.MethodPost, "/nav/goto/projects", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `id="mobile-menu"`)

	var cmd viewport.Command
	require.NoError(t, json.Unmarshal([]byte(w.Header().Get(scrollCommandHeader)), &cmd))
	assert.Equal(t, viewport.Command{Target: "#projects", Behavior: nav.BehaviorSmooth, Block: nav.BlockStart}, cmd)
	assert.Contains(t, w.Body.String(), `data-nav-goto="home" class="nav-link text-cyan-400 active"`,
		"active section waits for the next scroll report")

	w = c.do(http.MethodPost, "/nav/top", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var top viewport.Command
	require.NoError(t, json.Unmarshal([]byte(w.Header().Get(scrollCommandHeader)), &top))
	assert.Equal(t, viewport.Command{Y: 0, Behavior: nav.BehaviorSmooth, Block: nav.BlockStart}, top)
}

func TestSessionsAreIsolated(t *testing.T) {
	srv := newTestServer(t, nil, nil)
	a := &client{t: t, srv: srv}
	b := &client{t: t, srv: srv}
	a.do(http.MethodGet, "/", nil, "")
	b.do(http.MethodGet, "/", nil, "")
	require.NotEqual(t, a.cookie.Value, b.cookie.Value)

	w := a.do(http.MethodPost, "/nav/menu", nil, "")
	assert.Contains(t, w.Body.String(), `id="mobile-menu"`)

	w = b.do(http.MethodGet, "/", nil, "")
	assert.NotContains(t, w.Body.String(), `id="mobile-menu"`)
}

func TestContactFlow(t *testing.T) {
	clk := clock.NewManual(time.Unix(0, 0))
	var logs bytes.Buffer
	c := &client{t: t, srv: newTestServer(t, clk, &logs)}
	c.do(http.MethodGet, "/", nil, "")

	w := c.submit(contact.Fields{Name: "Ada", Email: "ada@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `data-state="idle"`)
	assert.Contains(t, w.Body.String(), "Please fill in every field.")
	assert.Contains(t, w.Body.String(), `value="Ada"`)

	full := contact.Fields{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello there"}
	w = c.submit(full)
	assert.Contains(t, w.Body.String(), `data-state="submitting"`)
	assert.Contains(t, w.Body.String(), "Sending...")
	assert.Contains(t, w.Body.String(), `hx-trigger="every 500ms"`)

	w = c.submit(full)
	assert.Contains(t, w.Body.String(), `data-state="submitting"`, "re-entrant submit is ignored")

	clk.Advance(contact.DefaultSubmitDelay)
	w = c.do(http.MethodGet, "/contact-form", nil, "")
	assert.Contains(t, w.Body.String(), `data-state="submitted"`)
	assert.Contains(t, w.Body.String(), "Message sent!")
	assert.Contains(t, logs.String(), "Contact form submitted by Ada")

	clk.Advance(contact.DefaultResetDelay)
	w = c.do(http.MethodGet, "/contact-form", nil, "")
	body := w.Body.String()
	assert.Contains(t, body, `data-state="idle"`)
	assert.NotContains(t, body, "hx-trigger")
	assert.NotContains(t, body, `value="Ada"`, "fields were cleared")
}

func TestSessionSweepReleases(t *testing.T) {
	now := time.Unix(0, 0)
	clk := clock.NewManual(now)
	srv := newTestServer(t, clk, nil)
	srv.sessions.now = func() time.Time { return now }

	s := srv.sessions.get("")
	require.NoError(t, s.contact.Submit(contact.Fields{Name: "a", Email: "b", Subject: "c", Message: "d"}))
	require.True(t, s.nav.Mounted())
	assert.Equal(t, 1, srv.sessions.len())

	now = now.Add(30 * time.Second)
	assert.Equal(t, 0, srv.sessions.sweep())

	now = now.Add(time.Minute)
	assert.Equal(t, 1, srv.sessions.sweep())
	assert.Equal(t, 0, srv.sessions.len())
	assert.False(t, s.nav.Mounted())
	assert.Equal(t, 0, s.viewport.ListenerCount(nav.EventScroll))

	clk.Advance(time.Minute)
	assert.Equal(t, contact.Submitting, s.contact.State(), "timers of released sessions never fire")
}

func TestExpiredCookieGetsNewSession(t *testing.T) {
	now := time.Unix(0, 0)
	srv := newTestServer(t, nil, nil)
	srv.sessions.now = func() time.Time { return now }

	first := srv.sessions.get("")
	assert.Same(t, first, srv.sessions.get(first.id))

	now = now.Add(2 * time.Minute)
	second := srv.sessions.get(first.id)
	assert.NotEqual(t, first.id, second.id)
}

func TestVisitorLog(t *testing.T) {
	var logs bytes.Buffer
	c := &client{t: t, srv: newTestServer(t, nil, &logs)}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.9:1234"
	w := httptest.NewRecorder()
	c.srv.Router().ServeHTTP(w, req)

	assert.Contains(t, logs.String(), "Visit GET /")
	assert.NotContains(t, logs.String(), "203.0.113.9")
	assert.Contains(t, logs.String(), c.srv.visitors.hashIP("203.0.113.9"))

	logs.Reset()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("DNT", "1")
	c.srv.Router().ServeHTTP(httptest.NewRecorder(), req)
	assert.NotContains(t, logs.String(), "Visit")

	c.do(http.MethodGet, "/static/app.js", nil, "")
	assert.NotContains(t, logs.String(), "Visit")
}

func TestStaticAssets(t *testing.T) {
	c := &client{t: t, srv: newTestServer(t, nil, nil)}
	w := c.do(http.MethodGet, "/static/app.js", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/nav/scroll")
}
