package uifx

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// VertexStride is the size in bytes of one encoded vertex:
// position (3 x float32) + color (4 x float32, normalized) + uv0 (2 x float32).
const VertexStride = 36

// VertexLayout returns the vertex buffer layout matching EncodeVertices.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x4, Offset: 12, ShaderLocation: 1}, // color
				{Format: gputypes.VertexFormatFloat32x2, Offset: 28, ShaderLocation: 2}, // uv0
			},
		},
	}
}

// EncodeVertices packs verts into dst using the VertexLayout format and
// returns the encoded bytes. dst is reused when it has enough capacity.
func EncodeVertices(dst []byte, verts []Vertex) []byte {
	needed := len(verts) * VertexStride
	if cap(dst) < needed {
		dst = make([]byte, needed)
	} else {
		dst = dst[:needed]
	}

	offset := 0
	for i := range verts {
		writeVertex(dst[offset:offset+VertexStride], &verts[i])
		offset += VertexStride
	}
	return dst
}

func writeVertex(buf []byte, v *Vertex) {
	c := v.Color.Float()
	putF32(buf[0:4], v.Position[0])
	putF32(buf[4:8], v.Position[1])
	putF32(buf[8:12], v.Position[2])
	putF32(buf[12:16], c.R)
	putF32(buf[16:20], c.G)
	putF32(buf[20:24], c.B)
	putF32(buf[24:28], c.A)
	putF32(buf[28:32], v.UV0[0])
	putF32(buf[32:36], v.UV0[1])
}

func putF32(b []byte, f float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(f))
}
