package batch

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
)

//go:embed shaders/batch.wgsl
var shaderSource string

// VertexStride is the byte stride per vertex.
// Layout per vertex:
//
//	position (vec4<f32>) = 16 bytes (location 0)
//	color    (vec4<f32>) = 16 bytes (location 1)
//	normal   (vec3<f32>) = 12 bytes (location 2)
//	uv       (vec2<f32>) = 8 bytes  (location 3)
//
// Total = 52 bytes per vertex.
const VertexStride = 52

// Uniform flag bits understood by the batch program.
const (
	FlagLit      uint32 = 1
	FlagTextured uint32 = 2
)

// VertexLayout returns the vertex buffer layout of Batch.Bytes.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 1}, // color
				{Format: gputypes.VertexFormatFloat32x3, Offset: 32, ShaderLocation: 2}, // normal
				{Format: gputypes.VertexFormatFloat32x2, Offset: 44, ShaderLocation: 3}, // uv
			},
		},
	}
}

// ShaderSource returns the WGSL source of the batch program.
func ShaderSource() string {
	return shaderSource
}

// CompileShader compiles the batch program to SPIR-V words.
func CompileShader() ([]uint32, error) {
	spirv, err := naga.Compile(shaderSource)
	if err != nil {
		return nil, fmt.Errorf("batch: compile shader: %w", err)
	}
	words := make([]uint32, len(spirv)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirv[i*4:])
	}
	return words, nil
}

// Bytes encodes the batch vertices in the VertexLayout format.
func (bt *Batch) Bytes() []byte {
	buf := make([]byte, len(bt.Vertices)*VertexStride)
	for i := range bt.Vertices {
		writeVertex(buf[i*VertexStride:], &bt.Vertices[i])
	}
	return buf
}

func writeVertex(buf []byte, v *Vertex) {
	off := 0
	put := func(f float32) {
		binary.LittleEndian.PutUint32(buf[off:off+4], math.Float32bits(f))
		off += 4
	}
	for _, f := range v.Position {
		put(f)
	}
	for _, f := range v.Color {
		put(f)
	}
	for _, f := range v.Normal {
		put(f)
	}
	put(v.TexCoord[0])
	put(v.TexCoord[1])
}

// Primitive returns the primitive state for drawing the batch.
func (bt *Batch) Primitive() gputypes.PrimitiveState {
	p := gputypes.PrimitiveState{
		Topology:  bt.Topology,
		FrontFace: gputypes.FrontFaceCCW,
		CullMode:  gputypes.CullModeNone,
	}
	if bt.State.CullFace && bt.Topology == gputypes.PrimitiveTopologyTriangleList {
		p.CullMode = gputypes.CullModeBack
	}
	return p
}

// Flags returns the uniform flag bits for drawing the batch.
func (bt *Batch) Flags() uint32 {
	var f uint32
	if bt.State.Lit {
		f |= FlagLit
	}
	if bt.State.Textured {
		f |= FlagTextured
	}
	return f
}
