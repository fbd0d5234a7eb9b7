package nav

import (
	"fmt"
	"log"
)

// DefaultCollapseOffset is the scroll depth after which the header switches
// to its compact, opaque style.
const DefaultCollapseOffset = 50

// State is the navigation UI state owned by a Controller.
type State struct {
	ActiveSectionID string
	MenuOpen        bool
	ChromeCollapsed bool
}

// Options tunes a Controller.
type Options struct {
	TriggerLine    float64
	CollapseOffset float64
	Logger         *log.Logger
}

func (o Options) withDefaults() Options {
	if o.TriggerLine == 0 {
		o.TriggerLine = DefaultTriggerLine
	}
	if o.CollapseOffset == 0 {
		o.CollapseOffset = DefaultCollapseOffset
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}

// Controller owns one page's navigation state. It is not safe for
// concurrent use; callers serialise access.
type Controller struct {
	registry *Registry
	resolver *Resolver
	viewport Viewport
	opts     Options

	state     State
	listeners []func()
}

// NewController returns a controller with the first section active.
func NewController(reg *Registry, vp Viewport, opts Options) *Controller {
	resolver := NewResolver(reg)
	return &Controller{
		registry: reg,
		resolver: resolver,
		viewport: vp,
		opts:     opts.withDefaults(),
		state:    State{ActiveSectionID: resolver.Current()},
	}
}

// Registry returns the sections this controller navigates between.
func (c *Controller) Registry() *Registry { return c.registry }

// State returns a copy of the current state.
func (c *Controller) State() State { return c.state }

// OnScrollSample folds a sample into the state and reports whether anything
// visible changed.
func (c *Controller) OnScrollSample(s Sample) bool {
	next := c.state
	next.ActiveSectionID = c.resolver.Resolve(s.Candidates)
	next.ChromeCollapsed = s.ScrollY > c.opts.CollapseOffset
	if next == c.state {
		return false
	}
	c.state = next
	return true
}

// HandleScroll samples the viewport and applies the result.
func (c *Controller) HandleScroll() bool {
	return c.OnScrollSample(Observe(c.registry, c.viewport, c.opts.TriggerLine))
}

// ToggleMenu flips the mobile menu.
func (c *Controller) ToggleMenu() {
	c.state.MenuOpen = !c.state.MenuOpen
}

// NavigateTo scrolls the section's anchor to the top of the viewport and
// closes the mobile menu. The active section is not changed here; it follows
// from the scroll event the viewport emits afterwards.
func (c *Controller) NavigateTo(id string) error {
	sec, ok := c.registry.Lookup(id)
	if !ok {
		c.opts.Logger.Printf("nav: ignoring navigation to unknown section %q", id)
		return fmt.Errorf("%w: %q", ErrUnknownSection, id)
	}
	c.viewport.ScrollIntoView(sec.AnchorSelector, ScrollOptions{Behavior: BehaviorSmooth, Block: BlockStart})
	c.state.MenuOpen = false
	return nil
}

// ScrollToTop scrolls back to the start of the page and closes the menu.
func (c *Controller) ScrollToTop() {
	c.viewport.ScrollTo(0, ScrollOptions{Behavior: BehaviorSmooth, Block: BlockStart})
	c.state.MenuOpen = false
}

// Mount subscribes to scroll and resize events and takes an initial sample.
// Mounting again first releases the previous subscriptions.
func (c *Controller) Mount(target EventTarget) {
	c.Unmount()
	handler := func() { c.HandleScroll() }
	c.listeners = append(c.listeners,
		target.AddEventListener(EventScroll, handler),
		target.AddEventListener(EventResize, handler),
	)
	c.HandleScroll()
}

// Unmount removes every listener registered by Mount.
func (c *Controller) Unmount() {
	for _, remove := range c.listeners {
		remove()
	}
	c.listeners = nil
}

// Mounted reports whether the controller is listening for events.
func (c *Controller) Mounted() bool { return len(c.listeners) > 0 }
