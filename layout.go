package ink

import "github.com/gogpu/gputypes"

// MeshIndexFormat is the index buffer format for IndexedMesh.
const MeshIndexFormat = gputypes.IndexFormatUint32

// VertexLayout returns the vertex buffer layout for the interleaved mesh
// format produced by Build. Matches a VertexInput of:
//
//	location 0: position (vec2<f32>)
//	location 1: color (vec4<f32>)
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStrideBytes,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
				{Format: gputypes.VertexFormatFloat32x4, Offset: 8, ShaderLocation: 1}, // color
			},
		},
	}
}
