package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/nav"
	"github.com/Zachkp/portfolio/internal/viewport"
)

const (
	sessionCookie = "portfolio_session"
	sessionKey    = "session"
)

// session is one visitor's page: its navigation state mirrored from the
// browser and its contact form. Handlers hold mu for the whole request.
type session struct {
	mu       sync.Mutex
	id       string
	viewport *viewport.Remote
	nav      *nav.Controller
	contact  *contact.Machine
	lastSeen time.Time
}

// release unmounts the controller and cancels pending form timers.
func (s *session) release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav.Unmount()
	s.contact.Close()
}

type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	now      func() time.Time
	create   func(id string) *session
}

func newSessionStore(ttl time.Duration, now func() time.Time, create func(id string) *session) *sessionStore {
	return &sessionStore{
		sessions: make(map[string]*session),
		ttl:      ttl,
		now:      now,
		create:   create,
	}
}

// get returns the session for id, creating one under a fresh id when id is
// unknown or expired.
func (st *sessionStore) get(id string) *session {
	st.mu.Lock()
	defer st.mu.Unlock()
	now := st.now()
	if s, ok := st.sessions[id]; ok && now.Sub(s.lastSeen) < st.ttl {
		s.lastSeen = now
		return s
	}
	s := st.create(uuid.NewString())
	s.lastSeen = now
	st.sessions[s.id] = s
	return s
}

func (st *sessionStore) len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// sweep evicts sessions idle for longer than the TTL and releases them.
func (st *sessionStore) sweep() int {
	st.mu.Lock()
	now := st.now()
	var expired []*session
	for id, s := range st.sessions {
		if now.Sub(s.lastSeen) >= st.ttl {
			expired = append(expired, s)
			delete(st.sessions, id)
		}
	}
	st.mu.Unlock()

	for _, s := range expired {
		s.release()
	}
	return len(expired)
}

// closeAll releases every session.
func (st *sessionStore) closeAll() {
	st.mu.Lock()
	all := st.sessions
	st.sessions = make(map[string]*session)
	st.mu.Unlock()

	for _, s := range all {
		s.release()
	}
}

func (st *sessionStore) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(sessionCookie)
		s := st.get(id)
		if s.id != id {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, s.id, int(st.ttl.Seconds()), "/", "", false, true)
		}
		c.Set(sessionKey, s)
		c.Next()
	}
}

func currentSession(c *gin.Context) *session {
	return c.MustGet(sessionKey).(*session)
}
