// Package viewport provides nav.Viewport implementations: a mirror of a
// remote browser viewport and a simulated document used for offline walks.
package viewport

import "strings"

type listener struct {
	id int
	fn func()
}

// dispatcher is a minimal event target. Listeners run synchronously in
// registration order.
type dispatcher struct {
	seq       int
	listeners map[string][]listener
}

func (d *dispatcher) AddEventListener(event string, fn func()) func() {
	if d.listeners == nil {
		d.listeners = make(map[string][]listener)
	}
	d.seq++
	id := d.seq
	d.listeners[event] = append(d.listeners[event], listener{id: id, fn: fn})
	return func() {
		ls := d.listeners[event]
		for i, l := range ls {
			if l.id == id {
				d.listeners[event] = append(ls[:i:i], ls[i+1:]...)
				return
			}
		}
	}
}

// Dispatch runs every listener registered for event.
func (d *dispatcher) Dispatch(event string) {
	ls := append([]listener(nil), d.listeners[event]...)
	for _, l := range ls {
		l.fn()
	}
}

// ListenerCount reports how many listeners are registered for event.
func (d *dispatcher) ListenerCount(event string) int {
	return len(d.listeners[event])
}

// sectionID maps an anchor selector to the id it targets. Only id selectors
// are supported.
func sectionID(selector string) (string, bool) {
	if !strings.HasPrefix(selector, "#") || len(selector) == 1 {
		return "", false
	}
	return selector[1:], true
}
