package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airaware/cleanmap-backend-go/internal/models"
)

// countingSurface records draw/remove traffic for lifecycle assertions.
type countingSurface struct {
	next    Handle
	live    map[Handle]Shape
	draws   int
	removes int
}

func newCountingSurface() *countingSurface {
	return &countingSurface{live: make(map[Handle]Shape)}
}

func (s *countingSurface) Draw(shape Shape) Handle {
	s.next++
	s.live[s.next] = shape
	s.draws++
	return s.next
}

func (s *countingSurface) Remove(h Handle) {
	delete(s.live, h)
	s.removes++
}

func TestManagerApplyReplacesOverlay(t *testing.T) {
	surface := newCountingSurface()
	m := NewManager(surface)
	anchor := models.Anchor{Lat: 40.0, Lon: -74.0}

	first, err := m.Apply(anchor, models.KindPM25, 60)
	require.NoError(t, err)
	assert.Len(t, surface.live, len(first))
	assert.Equal(t, len(first), surface.draws)
	assert.Equal(t, 0, surface.removes)

	second, err := m.Apply(anchor, models.KindO3, 10)
	require.NoError(t, err)
	assert.Len(t, surface.live, len(second), "only the new overlay may remain")
	assert.Equal(t, len(first), surface.removes, "every previous shape must be removed")
}

func TestManagerErrorLeavesSurfaceEmpty(t *testing.T) {
	surface := newCountingSurface()
	m := NewManager(surface)
	anchor := models.Anchor{Lat: 40.0, Lon: -74.0}

	_, err := m.Apply(anchor, models.KindPM25, 60)
	require.NoError(t, err)

	_, err = m.Apply(anchor, models.Kind("xenon"), 10)
	assert.ErrorIs(t, err, ErrUnsupportedPollutantKind)
	assert.Empty(t, surface.live, "previous shapes stay removed, nothing new drawn")

	// A later valid reading draws again.
	ov, err := m.Apply(anchor, models.KindPM25, 5)
	require.NoError(t, err)
	assert.Len(t, surface.live, len(ov))
}

func TestManagerClear(t *testing.T) {
	surface := newCountingSurface()
	m := NewManager(surface)

	_, err := m.Apply(models.Anchor{Lat: 1, Lon: 2}, models.KindCO, 20)
	require.NoError(t, err)
	m.Clear()
	assert.Empty(t, surface.live)

	// Clear on an empty manager is a no-op.
	m.Clear()
	assert.Empty(t, surface.live)
}

func TestManagerUnstyledPath(t *testing.T) {
	surface := newCountingSurface()
	m := NewManager(surface)

	ov, err := m.ApplyUnstyled(models.Anchor{Lat: 10, Lon: 10}, models.KindNO2, 100)
	require.NoError(t, err)
	assert.Equal(t, NeutralColor, ov[0].Color)
}

func TestRegistryDrawOrder(t *testing.T) {
	r := NewRegistry()
	m := NewManager(r)

	ov, err := m.Apply(models.Anchor{Lat: 40.0, Lon: -74.0}, models.KindPM25, 60)
	require.NoError(t, err)

	shapes := r.Shapes()
	require.Equal(t, len(ov), len(shapes))
	// Draw order is preserved: base first, marker last.
	assert.Equal(t, ov[0], shapes[0])
	assert.Equal(t, ov[len(ov)-1], shapes[len(shapes)-1])

	m.Clear()
	assert.Empty(t, r.Shapes())
}
