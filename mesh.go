package ink

import (
	"encoding/binary"
	"math"
)

// Vertex layout constants for the interleaved mesh format.
// Layout per vertex:
//   - position: 2 x float32 (x, y)
//   - color:    4 x float32 (r, g, b, a)
const (
	// VertexStride is the number of float32 values per vertex.
	VertexStride = 6

	// VertexStrideBytes is the byte stride per vertex.
	VertexStrideBytes = VertexStride * 4

	// TriangleStride is the number of float32 values per triangle.
	TriangleStride = 3 * VertexStride
)

// Mesh is a flat triangle list with interleaved (x, y, r, g, b, a) vertices.
// Every 3 consecutive vertices form one triangle. There is no index buffer;
// every triangle is fully expanded, trading memory for upload simplicity.
//
// The length of a valid Mesh is always a multiple of TriangleStride.
type Mesh []float32

// VertexCount returns the number of vertices in the mesh.
func (m Mesh) VertexCount() int {
	return len(m) / VertexStride
}

// TriangleCount returns the number of triangles in the mesh.
func (m Mesh) TriangleCount() int {
	return len(m) / TriangleStride
}

// Vertex returns the position and color of vertex i.
func (m Mesh) Vertex(i int) (pos Point, col RGBA) {
	v := m[i*VertexStride : i*VertexStride+VertexStride]
	pos = Point{X: float64(v[0]), Y: float64(v[1])}
	col = RGBA{R: v[2], G: v[3], B: v[4], A: v[5]}
	return pos, col
}

// Bounds returns the axis-aligned bounding box of the mesh as
// (minX, minY, maxX, maxY). An empty mesh returns all zeros.
func (m Mesh) Bounds() (minX, minY, maxX, maxY float32) {
	if len(m) < VertexStride {
		return 0, 0, 0, 0
	}
	minX, minY = m[0], m[1]
	maxX, maxY = m[0], m[1]
	for i := VertexStride; i+1 < len(m); i += VertexStride {
		x, y := m[i], m[i+1]
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	return minX, minY, maxX, maxY
}

// Bytes packs the mesh into little-endian bytes suitable for direct upload
// as a GPU vertex buffer. The layout matches VertexLayout.
func (m Mesh) Bytes() []byte {
	buf := make([]byte, len(m)*4)
	for i, v := range m {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

// Clone returns a copy of the mesh.
func (m Mesh) Clone() Mesh {
	out := make(Mesh, len(m))
	copy(out, m)
	return out
}
