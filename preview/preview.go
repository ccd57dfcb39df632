// Package preview rasterizes uifx meshes in software.
//
// It is meant for inspecting effect output (tests, the demo command, golden
// images), not for production rendering: each triangle is filled with the
// mean of its vertex colors instead of interpolating them.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/vector"

	"github.com/gogpu/uifx"
)

// ErrIndexOutOfRange is returned when an index addresses a vertex past the
// end of the vertex slice.
var ErrIndexOutOfRange = errors.New("preview: index out of range")

// Options controls how UI coordinates map to pixels.
type Options struct {
	// Origin is the pixel position of UI point (0, 0).
	Origin f32.Vec2

	// Scale is the number of pixels per UI unit. Zero means 1.
	Scale float32
}

// NewCanvas returns a w x h image filled with bg.
func NewCanvas(w, h int, bg color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	if bg != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}
	return img
}

// Renderer draws meshes onto one destination image. It reuses its
// rasterizer between triangles and calls; it is not safe for concurrent use.
type Renderer struct {
	dst  draw.Image
	opts Options
	r    *vector.Rasterizer
}

// NewRenderer creates a renderer drawing onto dst.
func NewRenderer(dst draw.Image, opts Options) *Renderer {
	if opts.Scale == 0 {
		opts.Scale = 1
	}
	b := dst.Bounds()
	return &Renderer{dst: dst, opts: opts, r: vector.NewRasterizer(b.Dx(), b.Dy())}
}

// Draw fills the triangles of verts addressed by indices, in order, over
// the destination. A nil indices slice treats verts as a triangle list.
// It returns the number of triangles drawn; zero-area triangles are skipped.
func (p *Renderer) Draw(verts []uifx.Vertex, indices []uint32) (int, error) {
	count := len(indices)
	if indices == nil {
		count = len(verts)
	}

	drawn := 0
	for i := 0; i+2 < count; i += 3 {
		var tri [3]*uifx.Vertex
		for k := range tri {
			idx := i + k
			if indices != nil {
				idx = int(indices[i+k])
			}
			if idx >= len(verts) {
				return drawn, fmt.Errorf("%w: %d >= %d", ErrIndexOutOfRange, idx, len(verts))
			}
			tri[k] = &verts[idx]
		}
		if p.fill(tri) {
			drawn++
		}
	}
	return drawn, nil
}

func (p *Renderer) toPixel(v *uifx.Vertex) (float32, float32) {
	return p.opts.Origin[0] + v.Position[0]*p.opts.Scale,
		p.opts.Origin[1] - v.Position[1]*p.opts.Scale
}

func (p *Renderer) fill(tri [3]*uifx.Vertex) bool {
	x0, y0 := p.toPixel(tri[0])
	x1, y1 := p.toPixel(tri[1])
	x2, y2 := p.toPixel(tri[2])
	if (x1-x0)*(y2-y0)-(x2-x0)*(y1-y0) == 0 {
		return false
	}

	// Rasterize only the triangle's pixel bounds, clipped to the canvas.
	b := p.dst.Bounds()
	box := image.Rect(
		floor(min(x0, x1, x2)), floor(min(y0, y1, y2)),
		ceil(max(x0, x1, x2)), ceil(max(y0, y1, y2)),
	).Intersect(image.Rect(0, 0, b.Dx(), b.Dy()))
	if box.Empty() {
		return true
	}

	ox, oy := float32(box.Min.X), float32(box.Min.Y)
	p.r.Reset(box.Dx(), box.Dy())
	p.r.DrawOp = draw.Over
	p.r.MoveTo(x0-ox, y0-oy)
	p.r.LineTo(x1-ox, y1-oy)
	p.r.LineTo(x2-ox, y2-oy)
	p.r.ClosePath()
	p.r.Draw(p.dst, box.Add(b.Min), image.NewUniform(meanColor(tri)), image.Point{})
	return true
}

func floor(v float32) int { return int(math.Floor(float64(v))) }

func ceil(v float32) int { return int(math.Ceil(float64(v))) }

func meanColor(tri [3]*uifx.Vertex) color.NRGBA {
	var r, g, b, a int
	for _, v := range tri {
		r += int(v.Color.R)
		g += int(v.Color.G)
		b += int(v.Color.B)
		a += int(v.Color.A)
	}
	return color.NRGBA{R: uint8(r / 3), G: uint8(g / 3), B: uint8(b / 3), A: uint8(a / 3)}
}

// Render draws a mesh onto dst in one call.
func Render(dst draw.Image, m *uifx.Mesh, opts Options) (int, error) {
	return NewRenderer(dst, opts).Draw(m.Vertices, m.Indices)
}

// SavePNG encodes img as PNG at path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("preview: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("preview: encode %s: %w", path, err)
	}
	return f.Close()
}
