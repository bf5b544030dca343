package ink

import (
	"encoding/binary"
	"math"
)

// IndexedMesh is the indexed form of a stroke mesh: deduplicated vertices
// plus a uint32 index buffer, with every 3 consecutive indices forming one
// triangle. It carries the same geometry as the flat Mesh in less memory
// when a stroke has many shared fan centers.
//
// Vertices are deduplicated by exact bit pattern, so the expansion of an
// IndexedMesh reproduces the flat mesh float for float.
type IndexedMesh struct {
	// Vertices is interleaved (x, y, r, g, b, a), VertexStride floats per
	// vertex.
	Vertices []float32

	// Indices references vertices; its length is a multiple of 3.
	Indices []uint32
}

// BuildIndexedMesh tessellates a stroke into an indexed mesh using default
// options. See BuildMesh for the input contract.
func BuildIndexedMesh(points, widths, color []float32) IndexedMesh {
	return NewTessellator().BuildIndexed(points, widths, color)
}

// BuildIndexed tessellates a stroke and deduplicates identical vertices.
// Unlike Build, the returned mesh does not alias the tessellator's internal
// buffers.
func (t *Tessellator) BuildIndexed(points, widths, color []float32) IndexedMesh {
	flat := t.Build(points, widths, color)

	im := IndexedMesh{
		Vertices: make([]float32, 0, len(flat)/2),
		Indices:  make([]uint32, 0, flat.VertexCount()),
	}
	seen := make(map[[VertexStride]uint32]uint32, flat.VertexCount())

	for i := 0; i+VertexStride <= len(flat); i += VertexStride {
		var key [VertexStride]uint32
		for j := 0; j < VertexStride; j++ {
			key[j] = math.Float32bits(flat[i+j])
		}
		idx, ok := seen[key]
		if !ok {
			idx = uint32(len(im.Vertices) / VertexStride)
			seen[key] = idx
			im.Vertices = append(im.Vertices, flat[i:i+VertexStride]...)
		}
		im.Indices = append(im.Indices, idx)
	}
	return im
}

// Expand reconstructs the flat triangle list.
func (im IndexedMesh) Expand() Mesh {
	out := make(Mesh, 0, len(im.Indices)*VertexStride)
	for _, idx := range im.Indices {
		v := im.Vertices[idx*VertexStride : (idx+1)*VertexStride]
		out = append(out, v...)
	}
	return out
}

// VertexCount returns the number of deduplicated vertices.
func (im IndexedMesh) VertexCount() int {
	return len(im.Vertices) / VertexStride
}

// TriangleCount returns the number of triangles.
func (im IndexedMesh) TriangleCount() int {
	return len(im.Indices) / 3
}

// VertexBytes packs the vertex data into little-endian bytes for upload as
// a GPU vertex buffer. The layout matches VertexLayout.
func (im IndexedMesh) VertexBytes() []byte {
	buf := make([]byte, len(im.Vertices)*4)
	for i, v := range im.Vertices {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

// IndexBytes packs the index data into little-endian bytes for upload as a
// GPU index buffer. The format matches MeshIndexFormat.
func (im IndexedMesh) IndexBytes() []byte {
	buf := make([]byte, len(im.Indices)*4)
	for i, idx := range im.Indices {
		binary.LittleEndian.PutUint32(buf[i*4:], idx)
	}
	return buf
}
