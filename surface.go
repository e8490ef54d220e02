package diagram

// Surface is an immediate-mode 2D drawing target with the semantics of an
// HTML canvas 2D context:
//   - Fill and Stroke paint the current path without consuming it.
//   - FillRect and StrokeRect paint directly and leave the current path alone.
//   - Arc and Ellipse connect to the current point with a straight line,
//     or start a new subpath when there is none.
//
// Angles are in radians, measured clockwise from the positive X axis
// (Y grows down). Implementations do not validate their arguments.
type Surface interface {
	SetFillStyle(c Color)
	SetStrokeStyle(c Color)
	SetLineWidth(width float64)
	// SetLineDash sets alternating dash and gap lengths.
	// An empty pattern selects solid lines.
	SetLineDash(pattern []float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, radius, start, end float64)
	Ellipse(x, y, radiusX, radiusY, rotation, start, end float64)
	ClosePath()
	Fill()
	Stroke()

	FillRect(x, y, width, height float64)
	StrokeRect(x, y, width, height float64)

	SetFont(f Font)
	// MeasureAscent returns the actual ascent of s above the baseline in
	// the current font.
	MeasureAscent(s string) float64
	// FillText and StrokeText draw s with its baseline at y.
	FillText(s string, x, y float64)
	StrokeText(s string, x, y float64)
}
