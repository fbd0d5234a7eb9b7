package viewport

import (
	"github.com/Zachkp/portfolio/internal/nav"
)

// Measurement is what the client script reports after each scroll or resize.
type Measurement struct {
	ScrollY  float64             `json:"scrollY"`
	Sections map[string]nav.Rect `json:"sections"`
}

// Command is a scroll the browser should perform. Target is an anchor
// selector, or empty for an absolute scroll to Y.
type Command struct {
	Target   string       `json:"target,omitempty"`
	Y        float64      `json:"y"`
	Behavior nav.Behavior `json:"behavior"`
	Block    nav.Block    `json:"block"`
}

// Remote mirrors the last measurement a browser sent and queues scroll
// commands for it to pick up. Only the latest command is kept; the browser's
// own smooth scrolling retargets on each new one.
type Remote struct {
	dispatcher
	last    Measurement
	pending *Command
}

// NewRemote returns a viewport with no sections mounted.
func NewRemote() *Remote { return &Remote{} }

// Update stores m and notifies scroll listeners.
func (r *Remote) Update(m Measurement) {
	r.last = m
	r.Dispatch(nav.EventScroll)
}

// Resize stores m and notifies resize listeners.
func (r *Remote) Resize(m Measurement) {
	r.last = m
	r.Dispatch(nav.EventResize)
}

func (r *Remote) ScrollY() float64 { return r.last.ScrollY }

func (r *Remote) Bounds(selector string) (nav.Rect, bool) {
	id, ok := sectionID(selector)
	if !ok {
		return nav.Rect{}, false
	}
	rect, ok := r.last.Sections[id]
	return rect, ok
}

func (r *Remote) ScrollIntoView(selector string, opts nav.ScrollOptions) {
	r.pending = &Command{Target: selector, Behavior: opts.Behavior, Block: opts.Block}
}

func (r *Remote) ScrollTo(y float64, opts nav.ScrollOptions) {
	r.pending = &Command{Y: y, Behavior: opts.Behavior, Block: opts.Block}
}

// TakeCommand returns and clears the queued scroll command.
func (r *Remote) TakeCommand() (Command, bool) {
	if r.pending == nil {
		return Command{}, false
	}
	cmd := *r.pending
	r.pending = nil
	return cmd, true
}
