package uifx

import (
	"slices"

	"golang.org/x/image/math/f32"
)

// MaxDistance is the largest outline offset, in UI units, along either axis.
const MaxDistance = 600

// outlineBlocks is the number of vertex blocks an outline produces: the
// original geometry plus four offset copies.
const outlineBlocks = 5

// OutlineParams configures the gradient outline transform.
type OutlineParams struct {
	// Gradient colors each offset vertex.
	Gradient Gradient

	// Distance is the offset of the outline copies. Each axis is clamped to
	// [-MaxDistance, MaxDistance] before use.
	Distance f32.Vec2

	// Direction selects the axis the gradient is sampled along.
	Direction Direction

	// UseGraphicAlpha multiplies the gradient alpha by the alpha of the
	// original vertex.
	UseGraphicAlpha bool

	// Layout selects how the copies are arranged. The zero value is
	// LayoutChained.
	Layout Layout
}

// ClampDistance clamps each axis of d to [-MaxDistance, MaxDistance].
func ClampDistance(d f32.Vec2) f32.Vec2 {
	return f32.Vec2{clampAxis(d[0]), clampAxis(d[1])}
}

func clampAxis(v float32) float32 {
	if v < -MaxDistance {
		return -MaxDistance
	}
	if v > MaxDistance {
		return MaxDistance
	}
	return v
}

// offsetPass describes one outline copy: the sign applied to each distance
// axis and the block the copy is read from.
type offsetPass struct {
	sx, sy float32
	source int
}

// chainedPasses write blocks 1 through 4. The first two copies read the
// original block; the last two read the copy written just before them, so
// their offsets compound.
var chainedPasses = [4]offsetPass{
	{sx: +1, sy: +1, source: 0},
	{sx: +1, sy: -1, source: 0},
	{sx: -1, sy: +1, source: 2},
	{sx: -1, sy: -1, source: 3},
}

// underlayPasses write blocks 0 through 3, all read from the original block
// stored last.
var underlayPasses = [4]offsetPass{
	{sx: +1, sy: +1, source: 4},
	{sx: +1, sy: -1, source: 4},
	{sx: -1, sy: +1, source: 4},
	{sx: -1, sy: -1, source: 4},
}

// Generate returns a new vertex stream holding base followed by four
// offset, gradient-colored copies of it. See GenerateInto.
func Generate(base []Vertex, p OutlineParams) []Vertex {
	return GenerateInto(nil, base, p)
}

// GenerateInto writes the outline of base into dst and returns it.
//
// dst is reset to length zero first and grown as needed, so a buffer can be
// reused across calls. base may share memory with dst. The result holds
// 5*len(base) vertices.
//
// With LayoutChained, the first len(base) vertices are base unchanged and
// the four copies follow with offsets (+x,+y), (+x,-y), (-x,+y), (-x,-y).
// The first two copies are offset from the original; the third is offset
// from the second copy and the fourth from the third. For a vertex at (0,0)
// and distance (10,5) the copies land at (10,5), (10,-5), (0,0), (-10,-5).
//
// With LayoutUnderlay, the four copies are each offset from the original
// and the original block comes last.
//
// Each copied vertex is colored by Gradient.Evaluate(t), where t is derived
// from its offset position and Direction. With UseGraphicAlpha the gradient
// alpha is scaled by the alpha of the corresponding original vertex.
func GenerateInto(dst, base []Vertex, p OutlineParams) []Vertex {
	n := len(base)
	dst = dst[:0]
	if n == 0 {
		return dst
	}

	total := outlineBlocks * n
	dst = slices.Grow(dst, total)[:total]

	passes := &chainedPasses
	baseBlock := 0
	if p.Layout == LayoutUnderlay {
		passes = &underlayPasses
		baseBlock = outlineBlocks - 1
	}
	copy(dst[baseBlock*n:(baseBlock+1)*n], base)

	// Evaluate would sort unordered stops on every call.
	if !p.Gradient.sorted() {
		p.Gradient.Stops = sortStops(p.Gradient.Stops)
	}

	dist := ClampDistance(p.Distance)
	block := 0
	for _, pass := range passes {
		if block == baseBlock {
			block++
		}
		offsetBlock(dst, n, block, pass.source, baseBlock, pass.sx*dist[0], pass.sy*dist[1], dist, &p)
		block++
	}
	return dst
}

// offsetBlock writes block dstBlock of out as the source block moved by
// (dx, dy) and recolored from the gradient.
func offsetBlock(out []Vertex, n, dstBlock, srcBlock, baseBlock int, dx, dy float32, dist f32.Vec2, p *OutlineParams) {
	src := out[srcBlock*n : (srcBlock+1)*n]
	orig := out[baseBlock*n : (baseBlock+1)*n]
	dst := out[dstBlock*n : (dstBlock+1)*n]

	for i := range dst {
		v := src[i]
		v.Position[0] += dx
		v.Position[1] += dy

		c := p.Gradient.Evaluate(sampleT(v.Position, dist, p.Direction)).Color32()
		if p.UseGraphicAlpha {
			c.A = uint8(int(c.A) * int(orig[i].Color.A) / 255)
		}
		v.Color = c
		dst[i] = v
	}
}

// sampleT maps an offset position to the gradient parameter for dir.
func sampleT(pos f32.Vec3, dist f32.Vec2, dir Direction) float32 {
	switch dir {
	case TopToBottom:
		return InverseLerp(0, dist[1], -pos[1])
	case BottomToTop:
		return InverseLerp(0, dist[1], pos[1])
	case LeftToRight:
		return InverseLerp(0, dist[0], -pos[0])
	case RightToLeft:
		return InverseLerp(0, dist[0], pos[0])
	}
	return 0
}
