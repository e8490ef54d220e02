package diagram

import "math"

// half aligns stroked geometry with pixel centers.
const half = 0.5

// SetFill sets the surface fill color.
func (d *Diagram) SetFill(c Color) {
	d.surface.SetFillStyle(c)
}

// SetStroke sets the surface stroke color.
func (d *Diagram) SetStroke(c Color) {
	d.surface.SetStrokeStyle(c)
}

// setLine prepares stroke color, width and dash pattern.
func (d *Diagram) setLine(c Color, lineWidth float64, pattern []float64) {
	if lineWidth <= 0 {
		lineWidth = 1
	}
	if pattern == nil {
		pattern = []float64{}
	}
	d.SetStroke(c)
	d.surface.SetLineWidth(lineWidth)
	d.surface.SetLineDash(pattern)
}

// Clear fills the entire diagram with c (default "111").
func (d *Diagram) Clear(c Color) {
	d.SetFill(c.Or(DefaultClearColor))
	d.surface.FillRect(0, 0, float64(d.width), float64(d.height))
}

// DrawLine draws a line between (x1, y1) and (x2, y2).
// Default color "ccc".
func (d *Diagram) DrawLine(x1, y1, x2, y2 float64, c Color, lineWidth float64, pattern ...float64) {
	d.setLine(c.Or(DefaultLineColor), lineWidth, pattern)
	d.surface.BeginPath()
	d.surface.MoveTo(x1+half, y1+half)
	d.surface.LineTo(x2+half, y2+half)
	d.surface.Stroke()
}

// DrawRect draws an outlined rectangle. Default color "ce9".
func (d *Diagram) DrawRect(x, y, width, height float64, stroke Color, lineWidth float64, pattern ...float64) {
	d.setLine(stroke.Or(DefaultRectStroke), lineWidth, pattern)
	d.surface.StrokeRect(x+half, y+half, width, height)
}

// FillRect draws a filled rectangle. Default color "563".
func (d *Diagram) FillRect(x, y, width, height float64, c Color) {
	d.SetFill(c.Or(DefaultRectFill))
	d.surface.FillRect(x, y, width, height)
}

// OutlineRect draws a filled and outlined rectangle.
func (d *Diagram) OutlineRect(x, y, width, height float64, fill, stroke Color, lineWidth float64, pattern ...float64) {
	d.FillRect(x, y, width, height, fill)
	d.DrawRect(x, y, width, height, stroke, lineWidth, pattern...)
}

// PlotPixel fills the single pixel at (x, y). Default color "ddd".
func (d *Diagram) PlotPixel(x, y float64, c Color) {
	d.FillRect(x, y, 1, 1, c.Or(DefaultPixelColor))
}

// setArc replaces the current path with a full circle.
func (d *Diagram) setArc(x, y, radius float64) {
	d.surface.BeginPath()
	d.surface.Arc(x+half, y+half, radius, 0, 2*math.Pi)
}

// DrawCircle draws an outlined circle. Default color "8bd".
func (d *Diagram) DrawCircle(x, y, radius float64, stroke Color, lineWidth float64, pattern ...float64) {
	d.setLine(stroke.Or(DefaultCircleStroke), lineWidth, pattern)
	d.setArc(x, y, radius)
	d.surface.Stroke()
}

// FillCircle draws a filled circle. Default color "578".
func (d *Diagram) FillCircle(x, y, radius float64, fill Color) {
	d.SetFill(fill.Or(DefaultCircleFill))
	d.setArc(x, y, radius)
	d.surface.Fill()
}

// OutlineCircle draws a filled and outlined circle.
// The outline strokes the path left behind by the fill.
func (d *Diagram) OutlineCircle(x, y, radius float64, fill, stroke Color, lineWidth float64, pattern ...float64) {
	d.FillCircle(x, y, radius, fill)
	d.setLine(stroke.Or(DefaultCircleStroke), lineWidth, pattern)
	d.surface.Stroke()
}

func (d *Diagram) setEllipse(x, y, radiusX, radiusY float64) {
	d.surface.BeginPath()
	d.surface.Ellipse(x+half, y+half, radiusX, radiusY, 0, 0, 2*math.Pi)
}

// DrawEllipse draws an outlined ellipse. Default color "ddd".
func (d *Diagram) DrawEllipse(x, y, radiusX, radiusY float64, stroke Color, lineWidth float64, pattern ...float64) {
	d.setLine(stroke.Or(DefaultEllipseStroke), lineWidth, pattern)
	d.setEllipse(x, y, radiusX, radiusY)
	d.surface.Stroke()
}

// FillEllipse draws a filled ellipse. Default color "777".
func (d *Diagram) FillEllipse(x, y, radiusX, radiusY float64, fill Color) {
	d.SetFill(fill.Or(DefaultEllipseFill))
	d.setEllipse(x, y, radiusX, radiusY)
	d.surface.Fill()
}

// OutlineEllipse draws a filled and outlined ellipse.
func (d *Diagram) OutlineEllipse(x, y, radiusX, radiusY float64, fill, stroke Color, lineWidth float64, pattern ...float64) {
	d.FillEllipse(x, y, radiusX, radiusY, fill)
	d.setLine(stroke.Or(DefaultEllipseStroke), lineWidth, pattern)
	d.surface.Stroke()
}

// buildPath replaces the current path with a closed polygon through the
// flat vertex list [x0, y0, x1, y1, ...]. The first vertex is used as is,
// the rest are offset by half a pixel. A trailing odd value is ignored.
// It reports false when there is no vertex.
func (d *Diagram) buildPath(vertices []float64) bool {
	if len(vertices) < 2 {
		return false
	}
	d.surface.BeginPath()
	d.surface.MoveTo(vertices[0], vertices[1])
	for i := 2; i+1 < len(vertices); i += 2 {
		d.surface.LineTo(vertices[i]+half, vertices[i+1]+half)
	}
	d.surface.ClosePath()
	return true
}

// DrawPoly draws an outlined polygon. Default color "f9e".
func (d *Diagram) DrawPoly(vertices []float64, stroke Color, lineWidth float64, pattern ...float64) {
	if len(vertices) < 2 {
		return
	}
	d.setLine(stroke.Or(DefaultPolyStroke), lineWidth, pattern)
	d.buildPath(vertices)
	d.surface.Stroke()
}

// FillPoly draws a filled polygon. Default color "857".
func (d *Diagram) FillPoly(vertices []float64, fill Color) {
	if len(vertices) < 2 {
		return
	}
	d.SetFill(fill.Or(DefaultPolyFill))
	d.buildPath(vertices)
	d.surface.Fill()
}

// OutlinePoly draws a filled and outlined polygon.
func (d *Diagram) OutlinePoly(vertices []float64, fill, stroke Color, lineWidth float64, pattern ...float64) {
	if len(vertices) < 2 {
		return
	}
	d.FillPoly(vertices, fill)
	d.setLine(stroke.Or(DefaultPolyStroke), lineWidth, pattern)
	d.surface.Stroke()
}

// OverlayGrid draws grid lines every cellWidth by cellHeight pixels,
// horizontal lines first. Default color "444". A non-positive cell size
// skips that axis.
func (d *Diagram) OverlayGrid(cellWidth, cellHeight float64, c Color, pattern ...float64) {
	c = c.Or(DefaultGridColor)
	w, h := float64(d.width), float64(d.height)
	if cellHeight > 0 {
		for y := cellHeight; y < h; y += cellHeight {
			d.DrawLine(0, y, w, y, c, 1, pattern...)
		}
	}
	if cellWidth > 0 {
		for x := cellWidth; x < w; x += cellWidth {
			d.DrawLine(x, 0, x, h, c, 1, pattern...)
		}
	}
}
