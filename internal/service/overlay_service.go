package service

import (
	"github.com/airaware/cleanmap-backend-go/internal/models"
	"github.com/airaware/cleanmap-backend-go/internal/overlay"
)

// OverlayService drives the overlay lifecycle manager against the
// server-side shape registry. Every request fully replaces the drawn
// overlay; the handler returns whatever ended up on the surface.
type OverlayService struct {
	registry *overlay.Registry
	manager  *overlay.Manager
}

// NewOverlayService creates a new overlay service with its own surface.
func NewOverlayService() *OverlayService {
	registry := overlay.NewRegistry()
	return &OverlayService{
		registry: registry,
		manager:  overlay.NewManager(registry),
	}
}

// Apply redraws the footprint for a reading and returns it. With
// unstyled set, the neutral-gray render path is used instead of the
// kind palette.
func (s *OverlayService) Apply(anchor models.Anchor, kind models.Kind, value float64, unstyled bool) (overlay.Overlay, error) {
	if unstyled {
		return s.manager.ApplyUnstyled(anchor, kind, value)
	}
	return s.manager.Apply(anchor, kind, value)
}

// Shapes returns the shapes currently drawn on the surface.
func (s *OverlayService) Shapes() []overlay.Shape {
	return s.registry.Shapes()
}

// Clear tears the overlay down.
func (s *OverlayService) Clear() {
	s.manager.Clear()
}
