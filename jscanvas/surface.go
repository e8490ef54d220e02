//go:build js && wasm

package jscanvas

import (
	"syscall/js"

	"github.com/antixdev/diagram"
)

// Surface forwards drawing calls to a CanvasRenderingContext2D.
type Surface struct {
	ctx js.Value
}

var _ diagram.Surface = (*Surface)(nil)

// NewSurface wraps a 2d rendering context.
func NewSurface(ctx js.Value) *Surface {
	return &Surface{ctx: ctx}
}

// Context returns the wrapped rendering context.
func (s *Surface) Context() js.Value { return s.ctx }

func (s *Surface) SetFillStyle(c diagram.Color)   { s.ctx.Set("fillStyle", c.CSS()) }
func (s *Surface) SetStrokeStyle(c diagram.Color) { s.ctx.Set("strokeStyle", c.CSS()) }
func (s *Surface) SetLineWidth(w float64)         { s.ctx.Set("lineWidth", w) }

func (s *Surface) SetLineDash(pattern []float64) {
	dash := make([]any, len(pattern))
	for i, v := range pattern {
		dash[i] = v
	}
	s.ctx.Call("setLineDash", dash)
}

func (s *Surface) BeginPath()          { s.ctx.Call("beginPath") }
func (s *Surface) MoveTo(x, y float64) { s.ctx.Call("moveTo", x, y) }
func (s *Surface) LineTo(x, y float64) { s.ctx.Call("lineTo", x, y) }
func (s *Surface) ClosePath()          { s.ctx.Call("closePath") }
func (s *Surface) Fill()               { s.ctx.Call("fill") }
func (s *Surface) Stroke()             { s.ctx.Call("stroke") }

func (s *Surface) Arc(x, y, radius, start, end float64) {
	s.ctx.Call("arc", x, y, radius, start, end)
}

func (s *Surface) Ellipse(x, y, rx, ry, rotation, start, end float64) {
	s.ctx.Call("ellipse", x, y, rx, ry, rotation, start, end)
}

func (s *Surface) FillRect(x, y, w, h float64)   { s.ctx.Call("fillRect", x, y, w, h) }
func (s *Surface) StrokeRect(x, y, w, h float64) { s.ctx.Call("strokeRect", x, y, w, h) }

func (s *Surface) SetFont(f diagram.Font) { s.ctx.Set("font", f.CSS()) }

// MeasureAscent reports actualBoundingBoxAscent from measureText.
func (s *Surface) MeasureAscent(str string) float64 {
	return s.ctx.Call("measureText", str).Get("actualBoundingBoxAscent").Float()
}

func (s *Surface) FillText(str string, x, y float64)   { s.ctx.Call("fillText", str, x, y) }
func (s *Surface) StrokeText(str string, x, y float64) { s.ctx.Call("strokeText", str, x, y) }
