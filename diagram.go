package diagram

import (
	"math"

	"github.com/antixdev/diagram/input"
)

// Diagram draws onto a Surface at a fixed position and size and keeps
// track of pointer and keyboard input for it.
//
// Drawing methods mirror a canvas: they return nothing and pass their
// arguments through without validation. Input methods come from the
// embedded *input.State and are safe for concurrent use; drawing
// methods are not.
type Diagram struct {
	*input.State

	surface Surface

	x, y          int
	width, height int

	font   Font
	ascent float64
}

// New creates a diagram of the given dimensions at (x, y) on s and
// installs the default font (or the one given WithFont).
func New(s Surface, x, y, width, height int, opts ...Option) *Diagram {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	st := o.input
	if st == nil {
		st = input.NewState()
	}
	st.SetBounds(width, height)

	d := &Diagram{
		State:   st,
		surface: s,
		x:       x,
		y:       y,
		width:   width,
		height:  height,
	}
	d.SetFont(o.font.Name, o.font.Height, o.font.Style)

	Logger().Debug("diagram: created",
		"x", x, "y", y, "width", width, "height", height, "font", d.font.CSS())
	return d
}

// X returns the horizontal position the diagram was created at.
func (d *Diagram) X() int { return d.x }

// Y returns the vertical position the diagram was created at.
func (d *Diagram) Y() int { return d.y }

// Width returns the width of the diagram.
func (d *Diagram) Width() int { return d.width }

// Height returns the height of the diagram.
func (d *Diagram) Height() int { return d.height }

// Surface returns the underlying drawing surface.
func (d *Diagram) Surface() Surface { return d.surface }

// Font returns the current font.
func (d *Diagram) Font() Font { return d.font }

// FontAscent returns the cached, rounded ascent of the current font.
// Text is drawn with its baseline at y + FontAscent.
func (d *Diagram) FontAscent() float64 { return d.ascent }

// SetFont sets the font used for text and caches its ascent, measured on
// a '|' glyph so text can be placed by its top edge.
func (d *Diagram) SetFont(name string, height float64, style string) {
	if style == "" {
		style = "normal"
	}
	d.font = Font{Name: name, Height: height, Style: style}
	d.surface.SetFont(d.font)
	d.ascent = math.Round(d.surface.MeasureAscent("|"))
}
