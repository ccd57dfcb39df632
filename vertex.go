package uifx

import "golang.org/x/image/math/f32"

// Vertex is a single UI mesh vertex.
//
// Effects read and write Position and Color; the remaining attributes are
// carried through unchanged.
type Vertex struct {
	Position f32.Vec3
	Normal   f32.Vec3
	Tangent  f32.Vec4
	Color    Color32
	UV0      f32.Vec2
	UV1      f32.Vec2
}

// Mesh is a caller-owned triangle mesh. Vertices is a triangle stream (every
// three consecutive vertices form one triangle) and Indices addresses it.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Reset empties the mesh, keeping its backing arrays.
func (m *Mesh) Reset() {
	m.Vertices = m.Vertices[:0]
	m.Indices = m.Indices[:0]
}

// AddQuad appends an axis-aligned quad as two triangles, the way UI graphics
// emit their geometry. lo and hi are opposite corners; uv spans [0,1].
func (m *Mesh) AddQuad(lo, hi f32.Vec2, c Color32) {
	corner := func(x, y, u, v float32) Vertex {
		return Vertex{
			Position: f32.Vec3{x, y, 0},
			Normal:   f32.Vec3{0, 0, -1},
			Tangent:  f32.Vec4{1, 0, 0, -1},
			Color:    c,
			UV0:      f32.Vec2{u, v},
		}
	}
	bl := corner(lo[0], lo[1], 0, 0)
	tl := corner(lo[0], hi[1], 0, 1)
	tr := corner(hi[0], hi[1], 1, 1)
	br := corner(hi[0], lo[1], 1, 0)

	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, bl, tl, tr, tr, br, bl)
	for i := uint32(0); i < 6; i++ {
		m.Indices = append(m.Indices, base+i)
	}
}
