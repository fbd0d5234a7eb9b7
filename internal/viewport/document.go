package viewport

import (
	"github.com/Zachkp/portfolio/internal/nav"
)

// Block is one section of a simulated page.
type Block struct {
	ID     string
	Height float64
}

// Document is a simulated page made of stacked blocks. Scrolling happens
// instantly and dispatches a scroll event, which closes the
// navigate → scroll → observe loop without a browser.
type Document struct {
	dispatcher
	blocks   []Block
	offsets  map[string]float64
	heights  map[string]float64
	hidden   map[string]bool
	height   float64
	viewport float64
	scrollY  float64
}

// NewDocument lays blocks out top to bottom in a viewport of the given
// height.
func NewDocument(viewportHeight float64, blocks ...Block) *Document {
	d := &Document{
		blocks:   append([]Block(nil), blocks...),
		offsets:  make(map[string]float64, len(blocks)),
		heights:  make(map[string]float64, len(blocks)),
		hidden:   make(map[string]bool),
		viewport: viewportHeight,
	}
	var y float64
	for _, b := range blocks {
		d.offsets[b.ID] = y
		d.heights[b.ID] = b.Height
		y += b.Height
	}
	d.height = y
	return d
}

// Blocks returns the page layout.
func (d *Document) Blocks() []Block { return append([]Block(nil), d.blocks...) }

// MaxScroll is the deepest reachable scroll position.
func (d *Document) MaxScroll() float64 {
	if d.height <= d.viewport {
		return 0
	}
	return d.height - d.viewport
}

// Hide unmounts a block's anchor; Bounds then reports it missing.
func (d *Document) Hide(id string) { d.hidden[id] = true }

// Show remounts a hidden block.
func (d *Document) Show(id string) { delete(d.hidden, id) }

// Offset returns a block's distance from the top of the page.
func (d *Document) Offset(id string) (float64, bool) {
	y, ok := d.offsets[id]
	return y, ok
}

// Resize changes the viewport height and notifies resize listeners.
func (d *Document) Resize(viewportHeight float64) {
	d.viewport = viewportHeight
	d.scrollY = d.clamp(d.scrollY)
	d.Dispatch(nav.EventResize)
}

func (d *Document) ScrollY() float64 { return d.scrollY }

func (d *Document) Bounds(selector string) (nav.Rect, bool) {
	id, ok := sectionID(selector)
	if !ok || d.hidden[id] {
		return nav.Rect{}, false
	}
	off, ok := d.offsets[id]
	if !ok {
		return nav.Rect{}, false
	}
	top := off - d.scrollY
	return nav.Rect{Top: top, Bottom: top + d.heights[id]}, true
}

func (d *Document) ScrollIntoView(selector string, _ nav.ScrollOptions) {
	id, ok := sectionID(selector)
	if !ok || d.hidden[id] {
		return
	}
	if off, ok := d.offsets[id]; ok {
		d.ScrollTo(off, nav.ScrollOptions{})
	}
}

// ScrollTo jumps to y, clamped to the page, and dispatches a scroll event.
func (d *Document) ScrollTo(y float64, _ nav.ScrollOptions) {
	d.scrollY = d.clamp(y)
	d.Dispatch(nav.EventScroll)
}

func (d *Document) clamp(y float64) float64 {
	if y < 0 {
		return 0
	}
	if limit := d.MaxScroll(); y > limit {
		return limit
	}
	return y
}
