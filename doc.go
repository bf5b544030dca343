// Package ink converts freehand strokes into triangle meshes for GPU rendering.
//
// # Overview
//
// ink is a Pure Go stroke tessellation library for the GoGPU ecosystem.
// It takes an ordered sequence of 2D sample points with per-point widths and
// a single color, and produces a flat, interleaved vertex buffer ready for
// upload to a GPU: every vertex is 6 float32 values (x, y, r, g, b, a) and
// every 3 consecutive vertices form one triangle.
//
// # Quick Start
//
//	import "github.com/gogpu/ink"
//
//	points := []float32{0, 0, 40, 10, 80, 0}
//	widths := []float32{4, 6, 4}
//	color := []float32{0.1, 0.1, 0.9, 1}
//
//	mesh := ink.BuildMesh(points, widths, color)
//	// mesh.TriangleCount() triangles, upload mesh.Bytes() as a vertex buffer
//
// # Geometry
//
// Strokes are rendered with round end caps. Corners use miter joins up to a
// miter limit of 4, beyond which (or when consecutive segments nearly reverse
// direction) the corner falls back to a round join filled by a triangle fan.
// A single-point stroke produces a filled disc; an empty stroke produces an
// empty mesh. Degenerate inputs never fail: missing widths default to
// diameter 1, missing color channels default to opaque black, zero-length
// segments and zero or negative widths produce well-defined degenerate
// geometry.
//
// # Winding
//
// Triangle winding is not consistent across quads, fans, and caps. Render the
// mesh double-sided (no backface culling). The raster subpackage normalizes
// winding internally for its CPU preview.
//
// # Architecture
//
// The library is organized into:
//   - Public API: BuildMesh, Tessellator, Mesh, IndexedMesh, Options
//   - GPU integration: VertexLayout (gputypes), gpumesh (gpucontext)
//   - CPU preview: raster (golang.org/x/image/vector)
//
// # Determinism
//
// Tessellation is a pure function: identical inputs yield bit-identical
// output, no global state is read or written, and concurrent calls on
// separate Tessellators need no synchronization.
package ink
