package polyskel

import "github.com/katalvlaran/polyskel/vec2"

// Polygon is a simple, closed, counter-clockwise ring of vertices. The
// first vertex is not repeated at the end.
type Polygon = []vec2.Vec2

// Config is the small, fixed set of scalar knobs Apply needs. Unlike
// engine.ContextOption's functional-options form — appropriate for an
// open-ended, independently-combinable set of Context behaviors —
// Config is a plain struct: its three fields are always supplied
// together and have no meaningful independent defaults a caller would
// reach for one at a time.
type Config struct {
	// Distance is the target absolute offset at which the simulation
	// stops. Use ApplyFullSkeleton to run to natural completion instead
	// of a fixed distance.
	Distance float32

	// DistanceSign is -1 to shrink (inset) or +1 to grow (outset).
	DistanceSign float32

	// Epsilon is the degeneracy tolerance passed to every bisector and
	// split-time computation.
	Epsilon float32
}

// DefaultConfig returns a Config for a full inward shrink: DistanceSign
// -1, Epsilon 1e-4, and Distance left at 0 (the caller must set it, or
// call ApplyFullSkeleton which ignores Distance entirely).
func DefaultConfig() Config {
	return Config{DistanceSign: -1, Epsilon: 1e-4}
}
