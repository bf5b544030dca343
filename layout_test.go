package ink

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestVertexLayout(t *testing.T) {
	layouts := VertexLayout()
	if len(layouts) != 1 {
		t.Fatalf("len(VertexLayout()) = %d, want 1", len(layouts))
	}

	layout := layouts[0]
	if layout.ArrayStride != VertexStrideBytes {
		t.Errorf("ArrayStride = %d, want %d", layout.ArrayStride, VertexStrideBytes)
	}
	if layout.StepMode != gputypes.VertexStepModeVertex {
		t.Errorf("StepMode = %v, want per-vertex", layout.StepMode)
	}
	if len(layout.Attributes) != 2 {
		t.Fatalf("len(Attributes) = %d, want 2", len(layout.Attributes))
	}

	pos := layout.Attributes[0]
	if pos.Format != gputypes.VertexFormatFloat32x2 || pos.Offset != 0 || pos.ShaderLocation != 0 {
		t.Errorf("position attribute = %+v", pos)
	}

	col := layout.Attributes[1]
	if col.Format != gputypes.VertexFormatFloat32x4 || col.Offset != 8 || col.ShaderLocation != 1 {
		t.Errorf("color attribute = %+v", col)
	}
}

func TestVertexStrideConsistency(t *testing.T) {
	if VertexStrideBytes != VertexStride*4 {
		t.Errorf("VertexStrideBytes = %d, want %d", VertexStrideBytes, VertexStride*4)
	}
	if TriangleStride != 3*VertexStride {
		t.Errorf("TriangleStride = %d, want %d", TriangleStride, 3*VertexStride)
	}
}
