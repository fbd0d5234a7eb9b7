package nav

// Resolver picks the single active section from a candidate set. When no
// candidate is present it keeps the last id it returned, so the header never
// flickers to an empty state while the trigger line sits between sections.
type Resolver struct {
	registry *Registry
	last     string
}

// NewResolver starts out with the first registered section active.
func NewResolver(reg *Registry) *Resolver {
	return &Resolver{registry: reg, last: reg.First().ID}
}

// Resolve returns the first candidate in registration order, or the
// previous result when none of the candidates is registered.
func (r *Resolver) Resolve(candidates []string) string {
	if len(candidates) == 0 {
		return r.last
	}
	set := make(map[string]struct{}, len(candidates))
	for _, id := range candidates {
		set[id] = struct{}{}
	}
	for _, sec := range r.registry.sections {
		if _, ok := set[sec.ID]; ok {
			r.last = sec.ID
			return r.last
		}
	}
	return r.last
}

// Current returns the last resolved id without sampling.
func (r *Resolver) Current() string { return r.last }
