package detect

import "sync"

// Registry holds detectors in registration order and offers the four
// views the project scanner needs: all, only these ids, all except
// these ids, lookup by id.
type Registry struct {
	mu        sync.RWMutex
	order     []string
	detectors map[string]Detector
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{detectors: make(map[string]Detector)}
}

// NewDefaultRegistry returns a registry pre-loaded with the nine
// built-in detectors, in the table order from the spec.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, d := range builtinDetectors() {
		r.Register(d)
	}
	return r
}

// Register adds d, or replaces an existing detector sharing its id
// while preserving its original position in registration order.
func (r *Registry) Register(d Detector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.detectors[d.ID]; !exists {
		r.order = append(r.order, d.ID)
	}
	r.detectors[d.ID] = d
}

// All returns every registered detector in registration order.
func (r *Registry) All() []Detector {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Detector, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.detectors[id])
	}
	return out
}

// Only returns the registered detectors whose id is in ids, in
// registration order.
func (r *Registry) Only(ids []string) []Detector {
	want := toSet(ids)
	var out []Detector
	for _, d := range r.All() {
		if want[d.ID] {
			out = append(out, d)
		}
	}
	return out
}

// Except returns every registered detector whose id is not in ids, in
// registration order.
func (r *Registry) Except(ids []string) []Detector {
	exclude := toSet(ids)
	var out []Detector
	for _, d := range r.All() {
		if !exclude[d.ID] {
			out = append(out, d)
		}
	}
	return out
}

// Lookup returns the detector registered under id, if any.
func (r *Registry) Lookup(id string) (Detector, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.detectors[id]
	return d, ok
}

func toSet(ids []string) map[string]bool {
	s := make(map[string]bool, len(ids))
	for _, id := range ids {
		s[id] = true
	}
	return s
}
