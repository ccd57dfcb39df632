package uifx

import (
	"testing"

	"golang.org/x/image/math/f32"
)

func TestMeshAddQuad(t *testing.T) {
	var m Mesh
	c := Color32{9, 8, 7, 6}
	m.AddQuad(f32.Vec2{1, 2}, f32.Vec2{5, 8}, c)
	m.AddQuad(f32.Vec2{0, 0}, f32.Vec2{1, 1}, c)

	if len(m.Vertices) != 12 || len(m.Indices) != 12 {
		t.Fatalf("got %d vertices, %d indices; want 12, 12", len(m.Vertices), len(m.Indices))
	}
	for i, idx := range m.Indices {
		if idx != uint32(i) {
			t.Errorf("index %d = %d", i, idx)
		}
	}

	// Both triangles wind the same way.
	area := func(a, b, c Vertex) float32 {
		return (b.Position[0]-a.Position[0])*(c.Position[1]-a.Position[1]) -
			(c.Position[0]-a.Position[0])*(b.Position[1]-a.Position[1])
	}
	a1 := area(m.Vertices[0], m.Vertices[1], m.Vertices[2])
	a2 := area(m.Vertices[3], m.Vertices[4], m.Vertices[5])
	if a1 == 0 || (a1 > 0) != (a2 > 0) {
		t.Errorf("inconsistent winding: %v, %v", a1, a2)
	}

	for _, v := range m.Vertices {
		if v.Color != c {
			t.Fatalf("vertex color = %+v, want %+v", v.Color, c)
		}
	}

	m.Reset()
	if len(m.Vertices) != 0 || len(m.Indices) != 0 {
		t.Error("Reset did not empty the mesh")
	}
}
