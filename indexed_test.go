package ink

import (
	"encoding/binary"
	"slices"
	"testing"
)

func TestBuildIndexedMesh_ExpandRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		points []float32
		widths []float32
	}{
		{"disc", []float32{3, 4}, []float32{2}},
		{"straight", []float32{0, 0, 10, 0}, []float32{2, 2}},
		{"reversal", []float32{0, 0, 10, 0, 0, 0}, []float32{2, 2, 2}},
		{"polyline", []float32{0, 0, 10, 0, 10, 10, 0, 10}, []float32{2, 3, 4, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flat := BuildMesh(tt.points, tt.widths, []float32{1, 0, 0, 1})
			im := BuildIndexedMesh(tt.points, tt.widths, []float32{1, 0, 0, 1})

			if !slices.Equal(im.Expand(), flat) {
				t.Error("Expand() does not reproduce the flat mesh")
			}
			if got, want := len(im.Indices), flat.VertexCount(); got != want {
				t.Errorf("len(Indices) = %d, want %d", got, want)
			}
			if got, want := im.TriangleCount(), flat.TriangleCount(); got != want {
				t.Errorf("TriangleCount() = %d, want %d", got, want)
			}
		})
	}
}

func TestBuildIndexedMesh_Deduplicates(t *testing.T) {
	// A disc shares its center across all 24 triangles and each rim sample
	// across neighbors, so the indexed form must be much smaller.
	flat := BuildMesh([]float32{0, 0}, []float32{4}, nil)
	im := BuildIndexedMesh([]float32{0, 0}, []float32{4}, nil)

	if im.VertexCount() >= flat.VertexCount()/2 {
		t.Errorf("indexed VertexCount() = %d, want well below flat %d",
			im.VertexCount(), flat.VertexCount())
	}
}

func TestBuildIndexedMesh_Empty(t *testing.T) {
	im := BuildIndexedMesh(nil, nil, nil)
	if len(im.Vertices) != 0 || len(im.Indices) != 0 {
		t.Errorf("empty stroke: got %d vertices, %d indices",
			len(im.Vertices), len(im.Indices))
	}
}

func TestIndexedMesh_Bytes(t *testing.T) {
	im := BuildIndexedMesh([]float32{0, 0, 10, 0}, []float32{2, 2}, nil)

	vb := im.VertexBytes()
	if len(vb) != len(im.Vertices)*4 {
		t.Errorf("len(VertexBytes()) = %d, want %d", len(vb), len(im.Vertices)*4)
	}

	ib := im.IndexBytes()
	if len(ib) != len(im.Indices)*4 {
		t.Fatalf("len(IndexBytes()) = %d, want %d", len(ib), len(im.Indices)*4)
	}
	for i, want := range im.Indices {
		if got := binary.LittleEndian.Uint32(ib[i*4:]); got != want {
			t.Errorf("IndexBytes()[%d] = %d, want %d", i, got, want)
		}
	}
}
