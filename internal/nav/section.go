// Package nav tracks which page section is active and owns the navigation
// chrome state (mobile menu, collapsed header).
package nav

import (
	"errors"
	"fmt"
)

// SectionDescriptor names one page section and the anchor that marks it.
type SectionDescriptor struct {
	ID             string
	Label          string
	AnchorSelector string
}

// Registry is the ordered, immutable list of page sections.
type Registry struct {
	sections []SectionDescriptor
	index    map[string]int
}

var (
	ErrEmptyRegistry    = errors.New("nav: registry has no sections")
	ErrUnknownSection   = errors.New("nav: unknown section")
	errDuplicateSection = errors.New("nav: duplicate section id")
)

// NewRegistry validates descs and returns a registry in the given order.
// A descriptor without a selector is anchored at "#<id>".
func NewRegistry(descs ...SectionDescriptor) (*Registry, error) {
	if len(descs) == 0 {
		return nil, ErrEmptyRegistry
	}
	r := &Registry{
		sections: make([]SectionDescriptor, 0, len(descs)),
		index:    make(map[string]int, len(descs)),
	}
	for _, d := range descs {
		if d.ID == "" {
			return nil, fmt.Errorf("nav: section %q has an empty id", d.Label)
		}
		if _, dup := r.index[d.ID]; dup {
			return nil, fmt.Errorf("%w: %s", errDuplicateSection, d.ID)
		}
		if d.AnchorSelector == "" {
			d.AnchorSelector = "#" + d.ID
		}
		if d.Label == "" {
			d.Label = d.ID
		}
		r.index[d.ID] = len(r.sections)
		r.sections = append(r.sections, d)
	}
	return r, nil
}

// DefaultRegistry is the section list of the portfolio page.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(
		SectionDescriptor{ID: "home", Label: "Home"},
		SectionDescriptor{ID: "about", Label: "About"},
		SectionDescriptor{ID: "projects", Label: "Projects"},
		SectionDescriptor{ID: "skills", Label: "Skills"},
		SectionDescriptor{ID: "contact", Label: "Contact"},
	)
	if err != nil {
		panic(err)
	}
	return r
}

// Sections returns a copy of the descriptors in registration order.
func (r *Registry) Sections() []SectionDescriptor {
	out := make([]SectionDescriptor, len(r.sections))
	copy(out, r.sections)
	return out
}

// Lookup returns the descriptor registered under id.
func (r *Registry) Lookup(id string) (SectionDescriptor, bool) {
	i, ok := r.index[id]
	if !ok {
		return SectionDescriptor{}, false
	}
	return r.sections[i], true
}

// Contains reports whether id is registered.
func (r *Registry) Contains(id string) bool {
	_, ok := r.index[id]
	return ok
}

// First returns the first registered section.
func (r *Registry) First() SectionDescriptor { return r.sections[0] }

// Len returns the number of sections.
func (r *Registry) Len() int { return len(r.sections) }
