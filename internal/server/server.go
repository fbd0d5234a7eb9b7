// Package server serves the portfolio page and the endpoints the page's
// script calls to drive navigation, the project filter and the contact form.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/nav"
	"github.com/Zachkp/portfolio/internal/viewport"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Options configures a Server.
type Options struct {
	Content    *content.Store
	Registry   *nav.Registry
	Nav        nav.Options
	Contact    contact.Options
	SessionTTL time.Duration
	HashSalt   string
	Logger     *log.Logger
	Now        func() time.Time
}

// Server is the portfolio HTTP server.
type Server struct {
	opts     Options
	engine   *gin.Engine
	content  *content.Store
	registry *nav.Registry
	sessions *sessionStore
	visitors *visitorLog
	logger   *log.Logger
}

// New builds the gin engine and parses the embedded templates.
func New(opts Options) (*Server, error) {
	if opts.Content == nil {
		return nil, errors.New("server: content store is required")
	}
	if opts.Registry == nil {
		opts.Registry = nav.DefaultRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Nav.Logger == nil {
		opts.Nav.Logger = opts.Logger
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 30 * time.Minute
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &Server{
		opts:     opts,
		content:  opts.Content,
		registry: opts.Registry,
		visitors: newVisitorLog(opts.HashSalt, opts.Logger),
		logger:   opts.Logger,
	}
	s.sessions = newSessionStore(opts.SessionTTL, opts.Now, s.newSession)

	tmpl, err := template.New("").
		Funcs(sprig.HtmlFuncMap()).
		Funcs(template.FuncMap{"motion": motionStyle(opts.Content.Motion())}).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(static))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	page := r.Group("/")
	page.Use(s.visitors.middleware(), s.sessions.middleware())

	page.GET("/", s.handleIndex)
	page.GET("/projects", s.handleProjects)

	page.POST("/nav/scroll", s.handleNavScroll)
	page.POST("/nav/menu", s.handleNavMenu)
	page.POST("/nav/goto/:id", s.handleNavGoto)
	page.POST("/nav/top", s.handleNavTop)

	page.GET("/contact-form", s.handleContactForm)
	page.POST("/contact", s.handleContactSubmit)

	s.engine = r
	return s, nil
}

// Router exposes the engine for tests and embedding.
func (s *Server) Router() *gin.Engine { return s.engine }

func (s *Server) newSession(id string) *session {
	vp := viewport.NewRemote()
	ctrl := nav.NewController(s.registry, vp, s.opts.Nav)
	ctrl.Mount(vp)

	copts := s.opts.Contact
	copts.OnSubmitted = func(f contact.Fields) {
		s.logger.Printf("Contact form submitted by %s (%s): %q", f.Name, f.Email, f.Subject)
	}
	return &session{
		id:       id,
		viewport: vp,
		nav:      ctrl,
		contact:  contact.NewMachine(copts),
	}
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully and
// releases every session.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go s.sweepSessions(ctx)

	errc := make(chan error, 1)
	go func() {
		s.logger.Printf("Serving portfolio on http://localhost%s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		s.sessions.closeAll()
		return err
	case <-ctx.Done():
	}

	s.logger.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	s.sessions.closeAll()
	return err
}

func (s *Server) sweepSessions(ctx context.Context) {
	ticker := time.NewTicker(s.opts.SessionTTL / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.sessions.sweep(); n > 0 {
				s.logger.Printf("Released %d idle sessions", n)
			}
		}
	}
}

// motionStyle renders an element's timing as CSS custom properties.
func motionStyle(table map[string]content.Timing) func(string) template.CSS {
	return func(name string) template.CSS {
		t, ok := table[name]
		if !ok {
			return ""
		}
		easing := t.Easing
		if easing == "" {
			easing = "ease-out"
		}
		return template.CSS(fmt.Sprintf("--motion-duration:%gs;--motion-delay:%gs;--motion-stagger:%gs;--motion-easing:%s;",
			t.Duration, t.Delay, t.Stagger, cssEasing(easing)))
	}
}

func cssEasing(name string) string {
	switch name {
	case "easeOut":
		return "ease-out"
	case "easeIn":
		return "ease-in"
	case "easeInOut":
		return "ease-in-out"
	case "linear":
		return "linear"
	default:
		return name
	}
}
