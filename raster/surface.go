package raster

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/antixdev/diagram"
)

// Surface is a software diagram.Surface backed by a gg.Context.
//
// Surface is not safe for concurrent use.
type Surface struct {
	dc       *gg.Context
	ownsDC   bool
	fonts    *FontRegistry
	outlines *text.OutlineExtractor

	fill      gg.RGBA
	stroke    gg.RGBA
	lineWidth float64
	dash      []float64
	path      path

	font diagram.Font
	face text.Face

	err error
}

var _ diagram.Surface = (*Surface)(nil)

// NewSurface creates a width x height surface, initially transparent,
// with black fill and stroke, a line width of 1 and diagram.DefaultFont.
func NewSurface(width, height int, opts ...Option) *Surface {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Surface{
		dc:        o.context,
		fonts:     o.fonts,
		outlines:  text.NewOutlineExtractor(),
		fill:      gg.Black,
		stroke:    gg.Black,
		lineWidth: 1,
	}
	if s.dc == nil {
		s.dc = gg.NewContext(width, height)
		s.ownsDC = true
	}
	if s.fonts == nil {
		s.fonts = DefaultFonts()
	}
	s.SetFont(diagram.DefaultFont)

	diagram.Logger().Debug("raster: surface created",
		"width", s.dc.Width(), "height", s.dc.Height())
	return s
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.dc.Width() }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.dc.Height() }

// Context returns the underlying gg context.
func (s *Surface) Context() *gg.Context { return s.dc }

// Err returns the first error met while drawing, if any. Drawing
// continues after an error; later errors are logged but not kept.
func (s *Surface) Err() error { return s.err }

// Image returns the rendered image.
func (s *Surface) Image() image.Image { return s.dc.Image() }

// EncodePNG writes the rendered image to w as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if err := s.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the rendered image to a PNG file.
func (s *Surface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("raster: save png: %w", err)
	}
	return nil
}

// Close releases the gg context if the surface created it.
func (s *Surface) Close() error {
	s.path.reset()
	s.face = nil
	if !s.ownsDC {
		return nil
	}
	return s.dc.Close()
}

func (s *Surface) fail(op string, err error) {
	if err == nil {
		return
	}
	diagram.Logger().Warn("raster: draw failed", "op", op, "err", err)
	if s.err == nil {
		s.err = fmt.Errorf("raster: %s: %w", op, err)
	}
}

// SetFillStyle sets the fill colour. An unparsable colour is reported
// through Err and leaves the previous colour in place.
func (s *Surface) SetFillStyle(c diagram.Color) {
	rgba, err := toRGBA(c)
	if err != nil {
		s.fail("fillStyle", err)
		return
	}
	s.fill = rgba
}

// SetStrokeStyle sets the stroke colour, with the same error handling
// as SetFillStyle.
func (s *Surface) SetStrokeStyle(c diagram.Color) {
	rgba, err := toRGBA(c)
	if err != nil {
		s.fail("strokeStyle", err)
		return
	}
	s.stroke = rgba
}

// SetLineWidth ignores widths that are not finite and positive.
func (s *Surface) SetLineWidth(w float64) {
	if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return
	}
	s.lineWidth = w
}

// SetLineDash ignores patterns holding a negative or non-finite value.
// An odd-length pattern is repeated to make it even.
func (s *Surface) SetLineDash(pattern []float64) {
	for _, v := range pattern {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return
		}
	}
	dash := append([]float64(nil), pattern...)
	if len(dash)%2 == 1 {
		dash = append(dash, dash...)
	}
	s.dash = dash
}

func (s *Surface) BeginPath()          { s.path.reset() }
func (s *Surface) MoveTo(x, y float64) { s.path.moveTo(x, y) }
func (s *Surface) LineTo(x, y float64) { s.path.lineTo(x, y) }
func (s *Surface) ClosePath()          { s.path.closePath() }

func (s *Surface) Arc(x, y, radius, start, end float64) {
	s.path.ellipse(x, y, radius, radius, 0, start, end)
}

func (s *Surface) Ellipse(x, y, rx, ry, rotation, start, end float64) {
	s.path.ellipse(x, y, rx, ry, rotation, start, end)
}

// Fill fills the current path with the fill colour. The path is kept.
func (s *Surface) Fill() {
	if s.path.empty() {
		return
	}
	s.path.replay(s.dc)
	s.dc.SetFillBrush(gg.Solid(s.fill))
	s.fail("fill", s.dc.Fill())
}

// Stroke strokes the current path with the stroke colour, line width and
// dash pattern. The path is kept.
func (s *Surface) Stroke() {
	if s.path.empty() {
		return
	}
	s.path.replay(s.dc)
	s.applyStroke()
	s.fail("stroke", s.dc.Stroke())
}

// FillRect fills a rectangle without touching the current path.
func (s *Surface) FillRect(x, y, w, h float64) {
	s.dc.ClearPath()
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.SetFillBrush(gg.Solid(s.fill))
	s.fail("fillRect", s.dc.Fill())
}

// StrokeRect strokes a rectangle without touching the current path.
func (s *Surface) StrokeRect(x, y, w, h float64) {
	s.dc.ClearPath()
	s.dc.DrawRectangle(x, y, w, h)
	s.applyStroke()
	s.fail("strokeRect", s.dc.Stroke())
}

func (s *Surface) applyStroke() {
	s.dc.SetStrokeBrush(gg.Solid(s.stroke))
	s.dc.SetLineWidth(s.lineWidth)
	s.dc.SetDash(s.dash...)
}

// SetFont selects the face for f from the font registry. When no face
// can be found the previous font stays active.
func (s *Surface) SetFont(f diagram.Font) {
	face, err := s.fonts.Face(f)
	if err != nil {
		s.fail("font", err)
		return
	}
	s.font = f
	s.face = face
	s.dc.SetFont(face)
}

// Font returns the active font.
func (s *Surface) Font() diagram.Font { return s.font }

// MeasureAscent returns the distance from the baseline to the top of the
// tallest glyph of str, or the face ascent when str has no outlines.
func (s *Surface) MeasureAscent(str string) float64 {
	if s.face == nil {
		return 0
	}
	parsed := s.face.Source().Parsed()
	size := s.face.Size()

	ascent, found := 0.0, false
	for g := range s.face.Glyphs(str) {
		o, err := s.outlines.ExtractOutline(parsed, g.GID, size)
		if err != nil || o == nil || o.IsEmpty() {
			continue
		}
		// Outline coordinates grow downwards.
		if a := -(o.Bounds.MinY + g.Y); !found || a > ascent {
			ascent, found = a, true
		}
	}
	if !found {
		return s.face.Metrics().Ascent
	}
	return ascent
}

// FillText fills str with its baseline at y.
func (s *Surface) FillText(str string, x, y float64) {
	if s.face == nil || str == "" {
		return
	}
	s.dc.SetFillBrush(gg.Solid(s.fill))
	s.dc.DrawString(str, x, y)
}

// StrokeText strokes the glyph outlines of str with its baseline at y.
func (s *Surface) StrokeText(str string, x, y float64) {
	if s.face == nil || str == "" {
		return
	}
	parsed := s.face.Source().Parsed()
	size := s.face.Size()

	s.dc.ClearPath()
	drawn := false
	for g := range s.face.Glyphs(str) {
		o, err := s.outlines.ExtractOutline(parsed, g.GID, size)
		if err != nil || o == nil || o.IsEmpty() {
			continue
		}
		traceOutline(s.dc, o, x+g.X, y+g.Y)
		drawn = true
	}
	if !drawn {
		return
	}
	s.applyStroke()
	s.fail("strokeText", s.dc.Stroke())
}

// traceOutline appends a glyph outline at (ox, oy) to the gg path,
// closing each contour.
func traceOutline(dc *gg.Context, o *text.GlyphOutline, ox, oy float64) {
	open := false
	pt := func(p text.OutlinePoint) (float64, float64) {
		return ox + float64(p.X), oy + float64(p.Y)
	}
	for _, seg := range o.Segments {
		switch seg.Op {
		case text.OutlineOpMoveTo:
			if open {
				dc.ClosePath()
			}
			dc.MoveTo(pt(seg.Points[0]))
			open = true
		case text.OutlineOpLineTo:
			dc.LineTo(pt(seg.Points[0]))
		case text.OutlineOpQuadTo:
			cx, cy := pt(seg.Points[0])
			x, y := pt(seg.Points[1])
			dc.QuadraticTo(cx, cy, x, y)
		case text.OutlineOpCubicTo:
			c1x, c1y := pt(seg.Points[0])
			c2x, c2y := pt(seg.Points[1])
			x, y := pt(seg.Points[2])
			dc.CubicTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if open {
		dc.ClosePath()
	}
}

func toRGBA(c diagram.Color) (gg.RGBA, error) {
	n, err := c.NRGBA()
	if err != nil {
		return gg.RGBA{}, err
	}
	return gg.RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}, nil
}
