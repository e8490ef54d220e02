package diagram

// DrawText strokes s with its top-left corner at (x, y).
// Default color "ddd".
func (d *Diagram) DrawText(s string, x, y float64, c Color, lineWidth float64, pattern ...float64) {
	d.setLine(c.Or(DefaultTextColor), lineWidth, pattern)
	d.surface.StrokeText(s, x, y+d.ascent)
}

// FillText fills s with its top-left corner at (x, y).
// Default color "ddd".
func (d *Diagram) FillText(s string, x, y float64, c Color) {
	d.SetFill(c.Or(DefaultTextColor))
	d.surface.FillText(s, x, y+d.ascent)
}

// OutlineText fills s, then strokes it. Default colors "ddd" and "fff".
func (d *Diagram) OutlineText(s string, x, y float64, fill, stroke Color, lineWidth float64, pattern ...float64) {
	d.FillText(s, x, y, fill)
	d.DrawText(s, x, y, stroke.Or(DefaultTextOutline), lineWidth, pattern...)
}
