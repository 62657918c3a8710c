package viz

import (
	"math"

	"github.com/mkovar/fieldsim/internal/entity"
	"github.com/mkovar/fieldsim/internal/geom"
	"github.com/mkovar/fieldsim/internal/world"
)

// Arrow length clamps in sub-pixels, applied to the log-compressed field
// magnitude so weak and strong regions both stay readable.
const (
	minArrowLen = 1.0
	maxArrowLen = 6.0
)

// Renderer draws world snapshots onto a braille canvas. The static subset
// (charges, field markers) is rendered into a cached layer that is rebuilt
// only when the world reports it dirty; each frame stamps the cache and then
// draws the dynamic subset on top.
type Renderer struct {
	width, height int
	size          float64 // world units mapped onto the canvas
	static        *Canvas
	frame         *Canvas
}

func NewRenderer(width, height int, size float64) *Renderer {
	return &Renderer{
		width:  width,
		height: height,
		size:   size,
		static: NewCanvas(width, height),
		frame:  NewCanvas(width, height),
	}
}

// Frame renders the current world state and returns the canvas.
func (r *Renderer) Frame(w *world.World) *Canvas {
	snaps := w.Snapshots()

	if w.StaticDirty() {
		r.static.Clear()
		for _, s := range snaps {
			if !s.Dynamic {
				r.drawStatic(r.static, s)
			}
		}
		w.MarkStaticClean()
	}

	r.frame.CopyFrom(r.static)
	for _, s := range snaps {
		if s.Dynamic {
			r.drawBody(r.frame, s)
		}
	}
	return r.frame
}

func (r *Renderer) drawStatic(c *Canvas, s world.Snapshot) {
	if field, ok := s.Aux[entity.AuxField].(geom.Vec2); ok {
		r.drawArrow(c, s.Position, field)
		return
	}
	if value, ok := s.Aux[entity.AuxCharge].(float64); ok {
		col, row := r.toCell(s.Position)
		c.SetGlyph(col, row, chargeGlyph(value))
	}
}

func (r *Renderer) drawBody(c *Canvas, s world.Snapshot) {
	x, y := r.toSubPixel(s.Position)
	c.Set(x, y)
	if label, ok := s.Aux[entity.AuxLabel].(string); ok && label != "" {
		col, row := r.toCell(s.Position)
		c.SetGlyph(col, row, rune(label[0]))
	}
}

func (r *Renderer) drawArrow(c *Canvas, at geom.Point, field geom.Vec2) {
	mag := field.Norm()
	if mag == 0 {
		return
	}
	length := minArrowLen + math.Log10(1+mag)
	if length > maxArrowLen {
		length = maxArrowLen
	}
	dir := field.Normalize()
	x0, y0 := r.toSubPixel(at)
	x1 := x0 + int(math.Round(dir.X*length))
	y1 := y0 + int(math.Round(dir.Y*length))
	c.DrawLine(x0, y0, x1, y1)
}

// toSubPixel maps a world position into braille sub-pixel coordinates.
func (r *Renderer) toSubPixel(p geom.Point) (int, int) {
	x := int(math.Round(p.X / r.size * float64(r.width*2-1)))
	y := int(math.Round(p.Y / r.size * float64(r.height*4-1)))
	return x, y
}

// toCell maps a world position into canvas cell coordinates.
func (r *Renderer) toCell(p geom.Point) (int, int) {
	x, y := r.toSubPixel(p)
	return x / 2, y / 4
}

func chargeGlyph(value float64) rune {
	switch {
	case value > 0:
		return '+'
	case value < 0:
		return '-'
	default:
		return 'o'
	}
}
