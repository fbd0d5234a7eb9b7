package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/nav"
	"github.com/Zachkp/portfolio/internal/projects"
	"github.com/Zachkp/portfolio/internal/viewport"
)

const (
	// scrollCommandHeader carries a queued scroll command back to the page
	// script as JSON.
	scrollCommandHeader = "X-Scroll-To"

	// pollInterval is how often a pending contact fragment refreshes itself.
	pollInterval = 500 * time.Millisecond
)

type navItem struct {
	ID     string
	Label  string
	Anchor string
	Active bool
}

type navView struct {
	Items     []navItem
	MenuOpen  bool
	Collapsed bool
}

type projectsView struct {
	Categories []projects.Category
	Selected   projects.Category
	Visible    []content.Project
}

type contactView struct {
	State     string
	Fields    contact.Fields
	Missing   map[string]bool
	CanSubmit bool
	Poll      string
	Profile   content.Profile
	Social    []content.SocialLink
}

type pageData struct {
	Profile     content.Profile
	Nav         navView
	Experience  []content.Experience
	Features    []content.Feature
	Stats       []content.Stat
	Projects    projectsView
	SkillGroups []content.SkillGroup
	Exploring   []string
	GitHub      content.GitHubStats
	Social      []content.SocialLink
	Contact     contactView
	Year        int
}

func (s *Server) navView(st nav.State) navView {
	v := navView{MenuOpen: st.MenuOpen, Collapsed: st.ChromeCollapsed}
	for _, sec := range s.registry.Sections() {
		v.Items = append(v.Items, navItem{
			ID:     sec.ID,
			Label:  sec.Label,
			Anchor: sec.AnchorSelector,
			Active: sec.ID == st.ActiveSectionID,
		})
	}
	return v
}

func (s *Server) projectsView(c projects.Category) projectsView {
	f := projects.NewFilterState()
	visible, err := f.SetCategory(s.content.Projects(), c)
	if err != nil {
		visible = f.Visible(s.content.Projects())
	}
	return projectsView{
		Categories: projects.Categories(),
		Selected:   f.Selected,
		Visible:    visible,
	}
}

func (s *Server) contactView(m *contact.Machine, fieldErr error) contactView {
	v := contactView{
		State:     m.State().String(),
		Fields:    m.Fields(),
		CanSubmit: m.CanSubmit(),
		Poll:      fmt.Sprintf("every %dms", pollInterval.Milliseconds()),
		Profile:   s.content.Profile(),
		Social:    s.content.SocialLinks(),
	}
	var fe *contact.FieldError
	if errors.As(fieldErr, &fe) {
		v.Missing = make(map[string]bool, len(fe.Fields))
		for _, f := range fe.Fields {
			v.Missing[f] = true
		}
	}
	return v
}

func (s *Server) handleIndex(c *gin.Context) {
	sess := currentSession(c)
	category, err := projects.ParseCategory(c.Query("category"))
	if err != nil {
		s.logger.Printf("Ignoring %v", err)
		category = projects.CategoryAll
	}

	sess.mu.Lock()
	data := pageData{
		Profile:     s.content.Profile(),
		Nav:         s.navView(sess.nav.State()),
		Experience:  s.content.Experience(),
		Features:    s.content.Features(),
		Stats:       s.content.Stats(),
		Projects:    s.projectsView(category),
		SkillGroups: s.content.SkillGroups(),
		Exploring:   s.content.Exploring(),
		GitHub:      s.content.GitHub(),
		Social:      s.content.SocialLinks(),
		Contact:     s.contactView(sess.contact, nil),
		Year:        s.opts.Now().Year(),
	}
	sess.mu.Unlock()

	c.HTML(http.StatusOK, "index.html", data)
}

func (s *Server) handleProjects(c *gin.Context) {
	category, err := projects.ParseCategory(c.Query("category"))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	c.HTML(http.StatusOK, "projects.html", s.projectsView(category))
}

type scrollReport struct {
	viewport.Measurement
	Event string `json:"event"`
}

func (s *Server) handleNavScroll(c *gin.Context) {
	var report scrollReport
	if err := c.ShouldBindJSON(&report); err != nil {
		c.String(http.StatusBadRequest, "invalid measurement: %v", err)
		return
	}

	sess := currentSession(c)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	before := sess.nav.State()
	if report.Event == nav.EventResize {
		sess.viewport.Resize(report.Measurement)
	} else {
		sess.viewport.Update(report.Measurement)
	}
	after := sess.nav.State()
	if after == before {
		c.Status(http.StatusNoContent)
		return
	}
	c.HTML(http.StatusOK, "nav.html", s.navView(after))
}

func (s *Server) handleNavMenu(c *gin.Context) {
	sess := currentSession(c)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.nav.ToggleMenu()
	c.HTML(http.StatusOK, "nav.html", s.navView(sess.nav.State()))
}

func (s *Server) handleNavGoto(c *gin.Context) {
	sess := currentSession(c)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.nav.NavigateTo(c.Param("id")); err != nil {
		c.Status(http.StatusNoContent)
		return
	}
	s.writeScrollCommand(c, sess)
	c.HTML(http.StatusOK, "nav.html", s.navView(sess.nav.State()))
}

func (s *Server) handleNavTop(c *gin.Context) {
	sess := currentSession(c)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.nav.ScrollToTop()
	s.writeScrollCommand(c, sess)
	c.HTML(http.StatusOK, "nav.html", s.navView(sess.nav.State()))
}

func (s *Server) writeScrollCommand(c *gin.Context, sess *session) {
	cmd, ok := sess.viewport.TakeCommand()
	if !ok {
		return
	}
	b, err := json.Marshal(cmd)
	if err != nil {
		s.logger.Printf("Error encoding scroll command: %v", err)
		return
	}
	c.Header(scrollCommandHeader, string(b))
}

func (s *Server) handleContactForm(c *gin.Context) {
	sess := currentSession(c)
	c.HTML(http.StatusOK, "contact-form.html", s.contactView(sess.contact, nil))
}

func (s *Server) handleContactSubmit(c *gin.Context) {
	sess := currentSession(c)

	var fields contact.Fields
	if err := c.ShouldBind(&fields); err != nil {
		c.String(http.StatusBadRequest, "invalid form: %v", err)
		return
	}

	err := sess.contact.Submit(fields)
	switch {
	case err == nil:
		s.logger.Printf("Contact form submitting for %s (%s)", fields.Name, fields.Email)
	case errors.Is(err, contact.ErrMissingField):
	case errors.Is(err, contact.ErrBusy), errors.Is(err, contact.ErrClosed):
		s.logger.Printf("Ignoring contact submission: %v", err)
	default:
		s.logger.Printf("Error submitting contact form: %v", err)
	}
	c.HTML(http.StatusOK, "contact-form.html", s.contactView(sess.contact, err))
}
