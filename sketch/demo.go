package sketch

// Demo returns a showcase sketch that uses every shape kind and mode,
// laid out for a width x height canvas.
func Demo(width, height int) *Sketch {
	w, h := float64(width), float64(height)
	col := w / 4
	row := h / 3
	r := min(col, row) / 3

	s := &Sketch{
		Width:      width,
		Height:     height,
		Background: "111",
		Font:       &FontSpec{Name: "Courier New", Height: 14, Style: "normal"},
	}
	add := func(shapes ...Shape) {
		s.Shapes = append(s.Shapes, shapes...)
	}

	add(Shape{Kind: KindGrid, Width: col / 4, Height: row / 4, Stroke: "333", Pattern: []float64{2, 2}})

	// Row 1: rectangles and lines.
	add(
		Shape{Kind: KindRect, X: col*0 + 10, Y: 10, Width: col - 20, Height: row - 30},
		Shape{Kind: KindRect, Mode: ModeFill, X: col*1 + 10, Y: 10, Width: col - 20, Height: row - 30},
		Shape{Kind: KindRect, Mode: ModeOutline, X: col*2 + 10, Y: 10, Width: col - 20, Height: row - 30, LineWidth: 3},
		Shape{Kind: KindLine, X: col*3 + 10, Y: 10, X2: w - 10, Y2: row - 20, LineWidth: 2},
		Shape{Kind: KindLine, X: col*3 + 10, Y: row - 20, X2: w - 10, Y2: 10, Pattern: []float64{6, 3}},
	)

	// Row 2: circles and ellipses.
	cy := row + row/2
	add(
		Shape{Kind: KindCircle, X: col/2, Y: cy, Radius: r, LineWidth: 2},
		Shape{Kind: KindCircle, Mode: ModeFill, X: col + col/2, Y: cy, Radius: r},
		Shape{Kind: KindCircle, Mode: ModeOutline, X: 2*col + col/2, Y: cy, Radius: r, LineWidth: 2, Pattern: []float64{4, 2}},
		Shape{Kind: KindEllipse, Mode: ModeOutline, X: 3*col + col/2, Y: cy, RadiusX: r * 1.5, RadiusY: r / 1.5},
	)

	// Row 3: polygons, pixels and text.
	top := 2*row + 10
	tri := func(x float64) []float64 {
		return []float64{x + col/2, top, x + col - 10, 3*row - 30, x + 10, 3*row - 30}
	}
	add(
		Shape{Kind: KindPoly, Points: tri(0), LineWidth: 2},
		Shape{Kind: KindPoly, Mode: ModeFill, Points: tri(col)},
		Shape{Kind: KindPoly, Mode: ModeOutline, Points: tri(2 * col), LineWidth: 2},
	)
	for i := 0; i < 10; i++ {
		add(Shape{Kind: KindPixel, X: 3*col + 10 + float64(i)*4, Y: top})
	}
	add(
		Shape{Kind: KindText, Mode: ModeFill, X: 3*col + 10, Y: top + 10, Text: "fill"},
		Shape{Kind: KindText, X: 3*col + 10, Y: top + 30, Text: "draw"},
		Shape{Kind: KindText, Mode: ModeOutline, X: 3*col + 10, Y: top + 50, Text: "outline"},
	)
	return s
}
