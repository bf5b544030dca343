package ink

import "math"

const (
	// minSegmentLength floors a segment's length before normalization so
	// coincident consecutive points still yield a finite unit direction.
	minSegmentLength = 1e-6

	// miterDegeneracy is the normal-sum magnitude below which consecutive
	// segments are treated as reversing direction and the corner becomes
	// a round join.
	miterDegeneracy = 1e-4

	// miterDotEpsilon guards the projection of the radius onto the miter
	// direction against division by zero.
	miterDotEpsilon = 1e-6
)

// initialVertexCapacity is the initial capacity of the vertex slice,
// measured in float32 values (not triangles). 6 floats = 1 vertex,
// 18 floats = 1 triangle. 288 floats = 16 triangles, enough for a short
// stroke with caps.
const initialVertexCapacity = 288

// Tessellator converts strokes into triangle meshes.
//
// The tessellator is designed to be reused across strokes: Build resets and
// refills internal scratch buffers, so a long-lived Tessellator amortizes
// allocations to zero. It holds no state between calls beyond those reusable
// buffers and is safe for concurrent use from separate instances.
type Tessellator struct {
	opts Options

	// vertices holds the interleaved output triangle list.
	vertices Mesh

	// Scratch geometry, one entry per segment (dirs, norms) or per point
	// (geoms), reused across Build calls.
	dirs  []Point
	norms []Point
	geoms []pointGeom
}

// NewTessellator creates a tessellator with default options.
func NewTessellator() *Tessellator {
	return NewTessellatorWith(DefaultOptions())
}

// NewTessellatorWith creates a tessellator with the given options.
func NewTessellatorWith(opts Options) *Tessellator {
	return &Tessellator{
		opts:     opts,
		vertices: make(Mesh, 0, initialVertexCapacity),
	}
}

// Options returns the tessellation options in use.
func (t *Tessellator) Options() Options {
	return t.opts
}

// BuildMesh converts a stroke into a flat triangle mesh using default
// options.
//
// points is a flattened sequence of 2D coordinates (x0, y0, x1, y1, ...);
// a trailing unpaired scalar is ignored. widths holds per-point stroke
// diameters and may be shorter than the point count; missing entries default
// to 1. color holds up to 4 RGBA channels; missing r, g, b default to 0 and
// missing alpha to 1.
//
// The returned mesh is freshly allocated and owned by the caller. An empty
// stroke returns an empty mesh; a single point returns a filled disc.
func BuildMesh(points, widths, color []float32) Mesh {
	return NewTessellator().Build(points, widths, color)
}

// Build tessellates a stroke. See BuildMesh for the input contract.
//
// The returned mesh aliases the tessellator's internal buffer and is valid
// until the next Build call; use Clone to retain it longer.
func (t *Tessellator) Build(points, widths, color []float32) Mesh {
	t.reset()

	n := len(points) / 2
	if n == 0 {
		return t.vertices
	}

	col := resolveColor(color)
	at := func(i int) Point {
		return Point{X: float64(points[2*i]), Y: float64(points[2*i+1])}
	}

	if n == 1 {
		t.emitDisc(at(0), radiusAt(widths, 0), col)
		return t.vertices
	}

	// Unit direction and left-hand normal per segment.
	for i := 0; i < n-1; i++ {
		d := at(i + 1).Sub(at(i))
		length := math.Max(d.Length(), minSegmentLength)
		dir := d.Div(length)
		t.dirs = append(t.dirs, dir)
		t.norms = append(t.norms, dir.Perp())
	}

	// Offset geometry and join classification, once per point.
	for i := 0; i < n; i++ {
		p := at(i)
		radius := radiusAt(widths, i)
		switch {
		case i == 0:
			t.geoms = append(t.geoms, endpointGeom(p, t.norms[0], radius))
		case i == n-1:
			t.geoms = append(t.geoms, endpointGeom(p, t.norms[n-2], radius))
		default:
			t.geoms = append(t.geoms,
				classifyJoin(p, t.norms[i-1], t.norms[i], radius, t.opts.MiterLimit))
		}
	}

	// Segment quads. Each quad connects the segment's next-offsets at its
	// start to the prev-offsets at its end, so a round-joined point leaves
	// exactly the wedge that its join fan fills.
	for i := 0; i < n-1; i++ {
		g0 := &t.geoms[i]
		g1 := &t.geoms[i+1]
		t.emitTriangle(g0.leftNext, g0.rightNext, g1.rightPrev, col)
		t.emitTriangle(g0.leftNext, g1.rightPrev, g1.leftPrev, col)
	}

	// Join fans at round-joined interior points.
	for i := 1; i < n-1; i++ {
		if t.geoms[i].join != joinRound {
			continue
		}
		t.emitJoinFan(at(i), radiusAt(widths, i), t.dirs[i-1], t.dirs[i], col)
	}

	// Round caps at both open ends.
	t.emitCap(at(0), t.norms[0], radiusAt(widths, 0), col)
	t.emitCap(at(n-1), t.norms[n-2], radiusAt(widths, n-1), col)

	Logger().Debug("ink: mesh built",
		"points", n,
		"triangles", t.vertices.TriangleCount())
	return t.vertices
}

// reset clears the output and scratch buffers for a new stroke without
// releasing memory.
func (t *Tessellator) reset() {
	t.vertices = t.vertices[:0]
	t.dirs = t.dirs[:0]
	t.norms = t.norms[:0]
	t.geoms = t.geoms[:0]
}

// radiusAt resolves the stroke radius at point i: half the width entry if
// present, otherwise half the default diameter of 1.
func radiusAt(widths []float32, i int) float64 {
	if i < len(widths) {
		return float64(widths[i]) * 0.5
	}
	return 0.5
}

// emitVertex appends one vertex as 6 scalars in (x, y, r, g, b, a) order.
func (t *Tessellator) emitVertex(p Point, col RGBA) {
	t.vertices = append(t.vertices,
		float32(p.X), float32(p.Y), col.R, col.G, col.B, col.A)
}

// emitTriangle appends a triangle as three vertices in caller order.
// No validation, no deduplication.
func (t *Tessellator) emitTriangle(a, b, c Point, col RGBA) {
	t.emitVertex(a, col)
	t.emitVertex(b, col)
	t.emitVertex(c, col)
}
