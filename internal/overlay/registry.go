package overlay

import "sync"

// Registry is an in-memory Surface: the server-side stand-in for a map
// widget's shape layer. The HTTP overlay endpoint draws onto it and
// reads back what is currently visible.
type Registry struct {
	mu     sync.RWMutex
	next   Handle
	shapes map[Handle]Shape
	order  []Handle
}

// NewRegistry creates an empty shape registry.
func NewRegistry() *Registry {
	return &Registry{shapes: make(map[Handle]Shape)}
}

// Draw adds a shape and returns its handle.
func (r *Registry) Draw(s Shape) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	h := r.next
	r.shapes[h] = s
	r.order = append(r.order, h)
	return h
}

// Remove deletes the shape behind a handle. Unknown handles are a no-op.
func (r *Registry) Remove(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.shapes[h]; !ok {
		return
	}
	delete(r.shapes, h)
	for i, o := range r.order {
		if o == h {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Shapes returns the currently drawn shapes in draw order.
func (r *Registry) Shapes() []Shape {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Shape, 0, len(r.shapes))
	for _, h := range r.order {
		if s, ok := r.shapes[h]; ok {
			out = append(out, s)
		}
	}
	return out
}

var _ Surface = (*Registry)(nil)
