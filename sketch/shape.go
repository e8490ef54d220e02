package sketch

import (
	"fmt"

	"github.com/antixdev/diagram"
)

// Kind names a shape type.
type Kind string

// Shape kinds.
const (
	KindLine    Kind = "line"
	KindRect    Kind = "rect"
	KindPixel   Kind = "pixel"
	KindCircle  Kind = "circle"
	KindEllipse Kind = "ellipse"
	KindPoly    Kind = "poly"
	KindText    Kind = "text"
	KindGrid    Kind = "grid"
)

// Mode selects how a shape is painted. The empty mode means ModeDraw.
type Mode string

// Paint modes.
const (
	ModeDraw    Mode = "draw"
	ModeFill    Mode = "fill"
	ModeOutline Mode = "outline"
)

// Shape is one drawing step. Which fields apply depends on Kind:
//
//	line     x, y, x2, y2, stroke
//	rect     x, y, width, height, fill, stroke
//	pixel    x, y, fill
//	circle   x, y, radius, fill, stroke
//	ellipse  x, y, rx, ry, fill, stroke
//	poly     points, fill, stroke
//	text     x, y, text, fill, stroke
//	grid     width, height (cell size), stroke
//
// lineWidth and pattern apply to every stroked shape.
type Shape struct {
	Kind      Kind          `yaml:"kind"`
	Mode      Mode          `yaml:"mode,omitempty"`
	X         float64       `yaml:"x,omitempty"`
	Y         float64       `yaml:"y,omitempty"`
	X2        float64       `yaml:"x2,omitempty"`
	Y2        float64       `yaml:"y2,omitempty"`
	Width     float64       `yaml:"width,omitempty"`
	Height    float64       `yaml:"height,omitempty"`
	Radius    float64       `yaml:"radius,omitempty"`
	RadiusX   float64       `yaml:"rx,omitempty"`
	RadiusY   float64       `yaml:"ry,omitempty"`
	Points    []float64     `yaml:"points,omitempty,flow"`
	Text      string        `yaml:"text,omitempty"`
	Fill      diagram.Color `yaml:"fill,omitempty"`
	Stroke    diagram.Color `yaml:"stroke,omitempty"`
	LineWidth float64       `yaml:"lineWidth,omitempty"`
	Pattern   []float64     `yaml:"pattern,omitempty,flow"`
}

func (s *Shape) mode() Mode {
	if s.Mode == "" {
		return ModeDraw
	}
	return s.Mode
}

// modal reports whether the kind honours fill and outline modes.
func (k Kind) modal() bool {
	switch k {
	case KindRect, KindCircle, KindEllipse, KindPoly, KindText:
		return true
	}
	return false
}

// Validate checks the fields the shape's kind uses.
func (s *Shape) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%s: %s: %w", s.Kind, fmt.Sprintf(format, args...), ErrInvalidShape)
	}

	switch s.Kind {
	case KindLine, KindPixel, KindGrid, KindRect, KindCircle, KindEllipse, KindPoly, KindText:
	default:
		return fmt.Errorf("%q: %w", string(s.Kind), ErrUnknownShape)
	}

	switch m := s.mode(); {
	case m != ModeDraw && m != ModeFill && m != ModeOutline:
		return invalid("unknown mode %q", string(m))
	case m != ModeDraw && !s.Kind.modal():
		return invalid("mode %q not supported", string(m))
	}

	for _, c := range []struct {
		field string
		color diagram.Color
	}{{"fill", s.Fill}, {"stroke", s.Stroke}} {
		if err := checkColor(c.field, c.color); err != nil {
			return fmt.Errorf("%s: %w: %w", s.Kind, ErrInvalidShape, err)
		}
	}
	if s.LineWidth < 0 {
		return invalid("lineWidth %v is negative", s.LineWidth)
	}
	for _, v := range s.Pattern {
		if v < 0 {
			return invalid("pattern %v has a negative entry", s.Pattern)
		}
	}

	switch s.Kind {
	case KindRect:
		if s.Width < 0 || s.Height < 0 {
			return invalid("size %vx%v is negative", s.Width, s.Height)
		}
	case KindCircle:
		if s.Radius <= 0 {
			return invalid("radius %v must be positive", s.Radius)
		}
	case KindEllipse:
		if s.RadiusX <= 0 || s.RadiusY <= 0 {
			return invalid("radii %v, %v must be positive", s.RadiusX, s.RadiusY)
		}
	case KindPoly:
		if len(s.Points) < 4 || len(s.Points)%2 != 0 {
			return invalid("points needs an even count of at least 4, got %d", len(s.Points))
		}
	case KindText:
		if s.Text == "" {
			return invalid("text is empty")
		}
	case KindGrid:
		if s.Width <= 0 || s.Height <= 0 {
			return invalid("cell size %vx%v must be positive", s.Width, s.Height)
		}
	}
	return nil
}

// Draw paints the shape on d. It does not validate.
func (s *Shape) Draw(d *diagram.Diagram) {
	lw, pat := s.LineWidth, s.Pattern
	switch s.Kind {
	case KindLine:
		d.DrawLine(s.X, s.Y, s.X2, s.Y2, s.Stroke, lw, pat...)
	case KindPixel:
		d.PlotPixel(s.X, s.Y, s.Fill)
	case KindGrid:
		d.OverlayGrid(s.Width, s.Height, s.Stroke, pat...)
	case KindRect:
		switch s.mode() {
		case ModeFill:
			d.FillRect(s.X, s.Y, s.Width, s.Height, s.Fill)
		case ModeOutline:
			d.OutlineRect(s.X, s.Y, s.Width, s.Height, s.Fill, s.Stroke, lw, pat...)
		default:
			d.DrawRect(s.X, s.Y, s.Width, s.Height, s.Stroke, lw, pat...)
		}
	case KindCircle:
		switch s.mode() {
		case ModeFill:
			d.FillCircle(s.X, s.Y, s.Radius, s.Fill)
		case ModeOutline:
			d.OutlineCircle(s.X, s.Y, s.Radius, s.Fill, s.Stroke, lw, pat...)
		default:
			d.DrawCircle(s.X, s.Y, s.Radius, s.Stroke, lw, pat...)
		}
	case KindEllipse:
		switch s.mode() {
		case ModeFill:
			d.FillEllipse(s.X, s.Y, s.RadiusX, s.RadiusY, s.Fill)
		case ModeOutline:
			d.OutlineEllipse(s.X, s.Y, s.RadiusX, s.RadiusY, s.Fill, s.Stroke, lw, pat...)
		default:
			d.DrawEllipse(s.X, s.Y, s.RadiusX, s.RadiusY, s.Stroke, lw, pat...)
		}
	case KindPoly:
		switch s.mode() {
		case ModeFill:
			d.FillPoly(s.Points, s.Fill)
		case ModeOutline:
			d.OutlinePoly(s.Points, s.Fill, s.Stroke, lw, pat...)
		default:
			d.DrawPoly(s.Points, s.Stroke, lw, pat...)
		}
	case KindText:
		switch s.mode() {
		case ModeFill:
			d.FillText(s.Text, s.X, s.Y, s.Fill)
		case ModeOutline:
			d.OutlineText(s.Text, s.X, s.Y, s.Fill, s.Stroke, lw, pat...)
		default:
			d.DrawText(s.Text, s.X, s.Y, s.Stroke, lw, pat...)
		}
	}
}
