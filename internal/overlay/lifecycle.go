package overlay

import (
	"sync"

	"github.com/airaware/cleanmap-backend-go/internal/models"
)

// Handle identifies one shape drawn on a Surface.
type Handle int64

// Surface is the rendering target the lifecycle manager draws onto.
// The map widget on the frontend and the in-memory registry used by the
// HTTP layer both satisfy it.
type Surface interface {
	Draw(Shape) Handle
	Remove(Handle)
}

// Manager owns the engine's shapes on one Surface. It keeps an explicit
// handle set per overlay instance instead of scanning the surface by
// tag, and replaces the whole set on every change. Remove-then-draw
// happens under one lock, so no caller observes a mixed overlay; rapid
// successive Apply calls serialize and the last one wins.
type Manager struct {
	mu      sync.Mutex
	surface Surface
	handles []Handle
}

// NewManager creates a lifecycle manager bound to a surface.
func NewManager(surface Surface) *Manager {
	return &Manager{surface: surface}
}

// Apply replaces the current overlay with the footprint for the given
// reading. On a generator error the previous shapes are still removed
// and nothing is drawn, so a stale overlay never outlives bad input.
func (m *Manager) Apply(anchor models.Anchor, kind models.Kind, value float64) (Overlay, error) {
	return m.apply(func() (Overlay, error) { return Generate(anchor, kind, value) })
}

// ApplyUnstyled is Apply with the neutral-gray render path.
func (m *Manager) ApplyUnstyled(anchor models.Anchor, kind models.Kind, value float64) (Overlay, error) {
	return m.apply(func() (Overlay, error) { return GenerateUnstyled(anchor, kind, value) })
}

func (m *Manager) apply(gen func() (Overlay, error)) (Overlay, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.removeLocked()

	ov, err := gen()
	if err != nil {
		return nil, err
	}
	for _, s := range ov {
		m.handles = append(m.handles, m.surface.Draw(s))
	}
	return ov, nil
}

// Clear removes every engine-owned shape. Call on teardown so a reused
// surface does not leak shapes.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeLocked()
}

func (m *Manager) removeLocked() {
	for _, h := range m.handles {
		m.surface.Remove(h)
	}
	m.handles = m.handles[:0]
}
