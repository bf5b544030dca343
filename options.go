package ink

import "math"

// Options controls stroke tessellation.
// It encapsulates the tunable geometry parameters in a single struct,
// following the tiny-skia/kurbo pattern for unified stroke configuration.
// The zero value is not useful; start from DefaultOptions.
type Options struct {
	// MiterLimit is the maximum ratio of miter length to stroke radius
	// before a corner falls back to a round join. Default: 4.0
	// (common default, matches SVG).
	MiterLimit float64

	// JoinMaxStep is the coarsest angular step, in radians, used when
	// tessellating a round join fan. Default: π/8.
	JoinMaxStep float64

	// JoinMinSteps is the minimum number of triangles in a round join fan.
	// Default: 4.
	JoinMinSteps int

	// CapMaxStep is the coarsest angular step, in radians, used when
	// tessellating a round end cap. Caps span a half turn, so they use a
	// finer step than joins. Default: π/10.
	CapMaxStep float64

	// CapMinSteps is the minimum number of triangles in an end cap fan.
	// Default: 6.
	CapMinSteps int

	// DiscSegments is the fixed triangle count for the single-point disc.
	// A lone point has no directional information to bias tessellation
	// density, so the count is not adaptive. Default: 24.
	DiscSegments int
}

// DefaultOptions returns the tessellation parameters used by BuildMesh.
func DefaultOptions() Options {
	return Options{
		MiterLimit:   4.0,
		JoinMaxStep:  math.Pi / 8,
		JoinMinSteps: 4,
		CapMaxStep:   math.Pi / 10,
		CapMinSteps:  6,
		DiscSegments: 24,
	}
}

// WithMiterLimit returns a copy of the Options with the given miter limit.
// A value of 0 makes every corner a round join.
func (o Options) WithMiterLimit(limit float64) Options {
	o.MiterLimit = limit
	return o
}

// WithJoinSteps returns a copy of the Options with the given join fan
// tessellation parameters.
func (o Options) WithJoinSteps(maxStep float64, minSteps int) Options {
	o.JoinMaxStep = maxStep
	o.JoinMinSteps = minSteps
	return o
}

// WithCapSteps returns a copy of the Options with the given cap fan
// tessellation parameters.
func (o Options) WithCapSteps(maxStep float64, minSteps int) Options {
	o.CapMaxStep = maxStep
	o.CapMinSteps = minSteps
	return o
}

// WithDiscSegments returns a copy of the Options with the given disc
// segment count.
func (o Options) WithDiscSegments(segments int) Options {
	o.DiscSegments = segments
	return o
}
