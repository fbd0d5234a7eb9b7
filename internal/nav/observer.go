package nav

// Rect is a section's vertical extent relative to the top of the viewport.
type Rect struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// Intersects reports whether the horizontal line at y crosses r.
func (r Rect) Intersects(y float64) bool {
	return r.Top <= y && r.Bottom >= y
}

// Behavior and Block mirror the browser's scrollIntoView options.
type (
	Behavior string
	Block    string
)

const (
	BehaviorSmooth  Behavior = "smooth"
	BehaviorInstant Behavior = "instant"

	BlockStart Block = "start"
)

// ScrollOptions describes how a scroll command should be carried out.
type ScrollOptions struct {
	Behavior Behavior `json:"behavior"`
	Block    Block    `json:"block"`
}

// Viewport is the page surface the controller observes and scrolls.
type Viewport interface {
	ScrollY() float64
	// Bounds returns the anchor's rect, or false when it is not mounted.
	Bounds(selector string) (Rect, bool)
	ScrollIntoView(selector string, opts ScrollOptions)
	ScrollTo(y float64, opts ScrollOptions)
}

// Event names dispatched by an EventTarget.
const (
	EventScroll = "scroll"
	EventResize = "resize"
)

// EventTarget delivers scroll and resize notifications. The returned func
// removes the listener.
type EventTarget interface {
	AddEventListener(event string, fn func()) (remove func())
}

// DefaultTriggerLine is the offset from the viewport top, in CSS pixels,
// that decides which section is active.
const DefaultTriggerLine = 100

// Sample is one observation of the page.
type Sample struct {
	ScrollY    float64
	Candidates []string
}

// Observe measures every registered section against the trigger line.
// Sections whose anchor is not mounted are skipped.
func Observe(reg *Registry, vp Viewport, triggerLine float64) Sample {
	s := Sample{ScrollY: vp.ScrollY()}
	for _, sec := range reg.sections {
		rect, ok := vp.Bounds(sec.AnchorSelector)
		if !ok {
			continue
		}
		if rect.Intersects(triggerLine) {
			s.Candidates = append(s.Candidates, sec.ID)
		}
	}
	return s
}
