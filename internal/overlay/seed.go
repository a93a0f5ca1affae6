package overlay

import (
	"math"

	"github.com/airaware/cleanmap-backend-go/internal/models"
)

// seq is a splitmix64-backed stream of floats in [0, 1), keyed purely by
// the anchor coordinates and the kind. The same key always replays the
// same stream, so a reading's layout survives re-renders and restarts;
// a different anchor or kind yields a visibly different layout. An
// explicit integer mix is used instead of trig identities so the stream
// does not depend on platform float rounding.
type seq struct {
	state uint64
}

func newSeq(anchor models.Anchor, kind models.Kind) *seq {
	h := mix64(math.Float64bits(anchor.Lat))
	h = mix64(h ^ math.Float64bits(anchor.Lon))
	for _, b := range []byte(kind) {
		h = mix64(h ^ uint64(b))
	}
	return &seq{state: h}
}

// next returns the next float in [0, 1).
func (s *seq) next() float64 {
	s.state += 0x9e3779b97f4a7c15
	return float64(mix64(s.state)>>11) / (1 << 53)
}

// between returns the next float scaled to [lo, hi).
func (s *seq) between(lo, hi float64) float64 {
	return lo + s.next()*(hi-lo)
}

// intn returns a deterministic integer in [0, n).
func (s *seq) intn(n int) int {
	return int(s.next() * float64(n))
}

// mix64 is the splitmix64 finalizer.
func mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
