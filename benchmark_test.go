package ink

import (
	"math"
	"testing"
)

// syntheticStroke builds a wavy stroke with n samples for benchmarking.
func syntheticStroke(n int) (points, widths []float32) {
	points = make([]float32, 0, n*2)
	widths = make([]float32, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		points = append(points,
			float32(1000*t),
			float32(100*math.Sin(t*8*math.Pi)))
		widths = append(widths, float32(4+3*math.Sin(t*math.Pi)))
	}
	return points, widths
}

// BenchmarkBuildMesh measures one-shot tessellation including the output
// allocation.
func BenchmarkBuildMesh(b *testing.B) {
	sizes := []struct {
		name string
		n    int
	}{
		{"8pts", 8},
		{"64pts", 64},
		{"512pts", 512},
		{"4096pts", 4096},
	}

	color := []float32{0.2, 0.3, 0.8, 1}
	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			points, widths := syntheticStroke(size.n)
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				BuildMesh(points, widths, color)
			}
		})
	}
}

// BenchmarkTessellator_Build measures steady-state tessellation with a
// reused tessellator, where scratch buffers amortize to zero allocations.
func BenchmarkTessellator_Build(b *testing.B) {
	points, widths := syntheticStroke(512)
	color := []float32{0.2, 0.3, 0.8, 1}
	tess := NewTessellator()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tess.Build(points, widths, color)
	}
}

// BenchmarkBuildIndexed measures indexed tessellation including vertex
// deduplication.
func BenchmarkBuildIndexed(b *testing.B) {
	points, widths := syntheticStroke(512)
	color := []float32{0.2, 0.3, 0.8, 1}
	tess := NewTessellator()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tess.BuildIndexed(points, widths, color)
	}
}

// BenchmarkBuildMesh_Disc measures the degenerate single-point path.
func BenchmarkBuildMesh_Disc(b *testing.B) {
	tess := NewTessellator()
	points := []float32{100, 100}
	widths := []float32{8}
	color := []float32{1, 0, 0, 1}
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tess.Build(points, widths, color)
	}
}
