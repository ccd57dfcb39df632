package uifx

import (
	"golang.org/x/image/math/f32"
)

// Graphic is the owner of a mesh an effect modifies. Effects call
// SetVerticesDirty whenever their configuration changes so the owner can
// schedule a geometry rebuild.
type Graphic interface {
	SetVerticesDirty()
}

// Outline is a gradient outline effect attached to a UI graphic.
//
// Configuration goes through setters: each one records that geometry is
// dirty and notifies the attached Graphic, if any. The render step checks
// Dirty and calls ModifyMesh when it rebuilds the graphic's mesh.
//
// An Outline owns a scratch vertex buffer that is reused across rebuilds.
// It is not safe for concurrent use.
type Outline struct {
	params  OutlineParams
	enabled bool
	dirty   bool
	graphic Graphic

	scratch []Vertex
}

// NewOutline creates an enabled outline effect with the given parameters.
// The distance is clamped as if set through SetDistance.
func NewOutline(p OutlineParams) *Outline {
	p.Distance = ClampDistance(p.Distance)
	return &Outline{params: p, enabled: true, dirty: true}
}

// Attach sets the graphic notified on configuration changes. Pass nil to
// detach. Attaching marks the effect dirty.
func (o *Outline) Attach(g Graphic) {
	o.graphic = g
	o.markDirty()
}

// Params returns the current configuration.
func (o *Outline) Params() OutlineParams { return o.params }

// Gradient returns the outline gradient.
func (o *Outline) Gradient() Gradient { return o.params.Gradient }

// SetGradient replaces the outline gradient.
func (o *Outline) SetGradient(g Gradient) {
	o.params.Gradient = g
	o.markDirty()
}

// Distance returns the clamped outline offset.
func (o *Outline) Distance() f32.Vec2 { return o.params.Distance }

// SetDistance sets the outline offset, clamping each axis to
// [-MaxDistance, MaxDistance].
func (o *Outline) SetDistance(d f32.Vec2) {
	o.params.Distance = ClampDistance(d)
	o.markDirty()
}

// Direction returns the gradient sampling direction.
func (o *Outline) Direction() Direction { return o.params.Direction }

// SetDirection sets the gradient sampling direction.
func (o *Outline) SetDirection(d Direction) {
	o.params.Direction = d
	o.markDirty()
}

// UseGraphicAlpha reports whether outline alpha follows the graphic's alpha.
func (o *Outline) UseGraphicAlpha() bool { return o.params.UseGraphicAlpha }

// SetUseGraphicAlpha toggles alpha modulation by the graphic's alpha.
func (o *Outline) SetUseGraphicAlpha(v bool) {
	o.params.UseGraphicAlpha = v
	o.markDirty()
}

// Layout returns the block layout of generated meshes.
func (o *Outline) Layout() Layout { return o.params.Layout }

// SetLayout sets the block layout of generated meshes.
func (o *Outline) SetLayout(l Layout) {
	o.params.Layout = l
	o.markDirty()
}

// Enabled reports whether ModifyMesh applies the effect.
func (o *Outline) Enabled() bool { return o.enabled }

// SetEnabled enables or disables the effect.
func (o *Outline) SetEnabled(v bool) {
	o.enabled = v
	o.markDirty()
}

// Dirty reports whether configuration changed since the last rebuild.
func (o *Outline) Dirty() bool { return o.dirty }

// ClearDirty resets the dirty flag without rebuilding.
func (o *Outline) ClearDirty() { o.dirty = false }

func (o *Outline) markDirty() {
	o.dirty = true
	if o.graphic != nil {
		o.graphic.SetVerticesDirty()
	}
}

// ModifyMesh applies the outline to m in place.
//
// m.Vertices is read as a triangle stream. On return it holds the five
// outline blocks and m.Indices covers all of them, repeating the original
// index topology per block when m.Indices addressed exactly the original
// vertices, or a plain triangle list otherwise.
//
// A disabled effect leaves m untouched and clears the dirty flag: the
// graphic's own mesh is already current.
func (o *Outline) ModifyMesh(m *Mesh) {
	if !o.enabled {
		o.dirty = false
		return
	}
	if m == nil {
		return
	}

	n := len(m.Vertices)
	before := cap(o.scratch)
	o.scratch = GenerateInto(o.scratch, m.Vertices, o.params)
	if cap(o.scratch) != before {
		Logger().Debug("uifx: outline scratch buffer grown",
			"vertices", n, "capacity", cap(o.scratch))
	}

	var topology []uint32
	if topologyCovers(m.Indices, n) {
		topology = append([]uint32(nil), m.Indices...)
	}

	m.Vertices = append(m.Vertices[:0], o.scratch...)
	m.Indices = BuildIndices(m.Indices, topology, n, outlineBlocks)
	o.dirty = false
}

// topologyCovers reports whether indices is a non-empty triangle index list
// that only addresses vertices [0, n).
func topologyCovers(indices []uint32, n int) bool {
	if len(indices) == 0 || len(indices)%3 != 0 {
		return false
	}
	for _, idx := range indices {
		if int(idx) >= n {
			return false
		}
	}
	return true
}
