package diagram_test

import (
	"strings"
	"testing"

	"github.com/antixdev/diagram"
	"github.com/antixdev/diagram/input"
	"github.com/antixdev/diagram/recording"
)

// newTestDiagram returns a 100x80 diagram on a fresh recorder with the
// construction commands already discarded.
func newTestDiagram(t *testing.T) (*diagram.Diagram, *recording.Recorder) {
	t.Helper()
	rec := recording.NewRecorder()
	d := diagram.New(rec, 5, 6, 100, 80)
	rec.Reset()
	return d, rec
}

func listing(lines ...string) string {
	return strings.Join(lines, "\n")
}

func TestNew(t *testing.T) {
	rec := recording.NewRecorder()
	d := diagram.New(rec, 5, 6, 100, 80)

	if d.X() != 5 || d.Y() != 6 || d.Width() != 100 || d.Height() != 80 {
		t.Errorf("geometry = (%d, %d, %d, %d), want (5, 6, 100, 80)", d.X(), d.Y(), d.Width(), d.Height())
	}
	if d.Surface() != rec {
		t.Error("Surface() did not return the recorder")
	}
	if got := d.Font(); got != diagram.DefaultFont {
		t.Errorf("Font() = %+v, want %+v", got, diagram.DefaultFont)
	}
	// 14 * 0.7 = 9.8, rounded.
	if got := d.FontAscent(); got != 10 {
		t.Errorf("FontAscent() = %v, want 10", got)
	}
	if got := rec.String(); got != "font = normal 14px Courier New" {
		t.Errorf("construction listing = %q", got)
	}
}

func TestNewOptions(t *testing.T) {
	st := input.NewState()
	rec := recording.NewRecorder()
	d := diagram.New(rec, 0, 0, 10, 10,
		diagram.WithFont(diagram.Font{Name: "monospace", Height: 20}),
		diagram.WithInput(st),
	)

	if d.State != st {
		t.Error("WithInput did not install the given state")
	}
	if got := d.Font(); got.Name != "monospace" || got.Height != 20 || got.Style != "normal" {
		t.Errorf("Font() = %+v", got)
	}

	// Bounds come from the diagram size.
	st.PointerMove(input.PointerEvent{X: 50, Y: 50})
	if d.MouseX() != 9 || d.MouseY() != 9 {
		t.Errorf("pointer = (%v, %v), want clamped (9, 9)", d.MouseX(), d.MouseY())
	}
}

func TestClear(t *testing.T) {
	d, rec := newTestDiagram(t)
	d.Clear("")
	want := listing("fillStyle = #111", "fillRect(0, 0, 100, 80)")
	if got := rec.String(); got != want {
		t.Errorf("Clear listing:\n%s\nwant:\n%s", got, want)
	}
}

func TestDrawLine(t *testing.T) {
	tests := []struct {
		name string
		draw func(d *diagram.Diagram)
		want string
	}{
		{
			name: "defaults",
			draw: func(d *diagram.Diagram) { d.DrawLine(0, 0, 10, 5, "", 0) },
			want: listing(
				"strokeStyle = #ccc",
				"lineWidth = 1",
				"setLineDash([])",
				"beginPath()",
				"moveTo(0.5, 0.5)",
				"lineTo(10.5, 5.5)",
				"stroke()",
			),
		},
		{
			name: "styled",
			draw: func(d *diagram.Diagram) { d.DrawLine(1, 2, 3, 4, "f00", 3, 5, 2) },
			want: listing(
				"strokeStyle = #f00",
				"lineWidth = 3",
				"setLineDash([5, 2])",
				"beginPath()",
				"moveTo(1.5, 2.5)",
				"lineTo(3.5, 4.5)",
				"stroke()",
			),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, rec := newTestDiagram(t)
			tt.draw(d)
			if got := rec.String(); got != tt.want {
				t.Errorf("listing:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestRectangles(t *testing.T) {
	tests := []struct {
		name string
		draw func(d *diagram.Diagram)
		want string
	}{
		{
			name: "DrawRect",
			draw: func(d *diagram.Diagram) { d.DrawRect(10, 20, 30, 40, "", 0) },
			want: listing(
				"strokeStyle = #ce9",
				"lineWidth = 1",
				"setLineDash([])",
				"strokeRect(10.5, 20.5, 30, 40)",
			),
		},
		{
			name: "FillRect",
			draw: func(d *diagram.Diagram) { d.FillRect(10, 20, 30, 40, "abc") },
			want: listing("fillStyle = #abc", "fillRect(10, 20, 30, 40)"),
		},
		{
			name: "OutlineRect",
			draw: func(d *diagram.Diagram) { d.OutlineRect(1, 2, 3, 4, "", "", 2, 1, 1) },
			want: listing(
				"fillStyle = #563",
				"fillRect(1, 2, 3, 4)",
				"strokeStyle = #ce9",
				"lineWidth = 2",
				"setLineDash([1, 1])",
				"strokeRect(1.5, 2.5, 3, 4)",
			),
		},
		{
			name: "PlotPixel",
			draw: func(d *diagram.Diagram) { d.PlotPixel(7, 8, "") },
			want: listing("fillStyle = #ddd", "fillRect(7, 8, 1, 1)"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, rec := newTestDiagram(t)
			tt.draw(d)
			if got := rec.String(); got != tt.want {
				t.Errorf("listing:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestCircles(t *testing.T) {
	const arc = "arc(10.5, 20.5, 5, 0, 6.283185307179586)"
	tests := []struct {
		name string
		draw func(d *diagram.Diagram)
		want string
	}{
		{
			name: "DrawCircle",
			draw: func(d *diagram.Diagram) { d.DrawCircle(10, 20, 5, "", 0) },
			want: listing(
				"strokeStyle = #8bd",
				"lineWidth = 1",
				"setLineDash([])",
				"beginPath()",
				arc,
				"stroke()",
			),
		},
		{
			name: "FillCircle",
			draw: func(d *diagram.Diagram) { d.FillCircle(10, 20, 5, "") },
			want: listing("fillStyle = #578", "beginPath()", arc, "fill()"),
		},
		{
			name: "OutlineCircle",
			draw: func(d *diagram.Diagram) { d.OutlineCircle(10, 20, 5, "000", "fff", 2) },
			want: listing(
				"fillStyle = #000",
				"beginPath()",
				arc,
				"fill()",
				"strokeStyle = #fff",
				"lineWidth = 2",
				"setLineDash([])",
				"stroke()",
			),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, rec := newTestDiagram(t)
			tt.draw(d)
			if got := rec.String(); got != tt.want {
				t.Errorf("listing:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestEllipses(t *testing.T) {
	const ellipse = "ellipse(10.5, 20.5, 6, 3, 0, 0, 6.283185307179586)"
	tests := []struct {
		name string
		draw func(d *diagram.Diagram)
		want string
	}{
		{
			name: "DrawEllipse",
			draw: func(d *diagram.Diagram) { d.DrawEllipse(10, 20, 6, 3, "", 0) },
			want: listing(
				"strokeStyle = #ddd",
				"lineWidth = 1",
				"setLineDash([])",
				"beginPath()",
				ellipse,
				"stroke()",
			),
		},
		{
			name: "FillEllipse",
			draw: func(d *diagram.Diagram) { d.FillEllipse(10, 20, 6, 3, "") },
			want: listing("fillStyle = #777", "beginPath()", ellipse, "fill()"),
		},
		{
			name: "OutlineEllipse",
			draw: func(d *diagram.Diagram) { d.OutlineEllipse(10, 20, 6, 3, "", "", 0) },
			want: listing(
				"fillStyle = #777",
				"beginPath()",
				ellipse,
				"fill()",
				"strokeStyle = #ddd",
				"lineWidth = 1",
				"setLineDash([])",
				"stroke()",
			),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, rec := newTestDiagram(t)
			tt.draw(d)
			if got := rec.String(); got != tt.want {
				t.Errorf("listing:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestPolygons(t *testing.T) {
	// The first vertex is used as is; the rest are offset by half a pixel.
	triangle := []float64{0, 0, 10, 0, 5, 8}
	path := listing(
		"beginPath()",
		"moveTo(0, 0)",
		"lineTo(10.5, 0.5)",
		"lineTo(5.5, 8.5)",
		"closePath()",
	)

	tests := []struct {
		name string
		draw func(d *diagram.Diagram)
		want string
	}{
		{
			name: "DrawPoly",
			draw: func(d *diagram.Diagram) { d.DrawPoly(triangle, "", 0) },
			want: listing("strokeStyle = #f9e", "lineWidth = 1", "setLineDash([])", path, "stroke()"),
		},
		{
			name: "FillPoly",
			draw: func(d *diagram.Diagram) { d.FillPoly(triangle, "") },
			want: listing("fillStyle = #857", path, "fill()"),
		},
		{
			name: "OutlinePoly",
			draw: func(d *diagram.Diagram) { d.OutlinePoly(triangle, "", "", 0) },
			want: listing(
				"fillStyle = #857", path, "fill()",
				"strokeStyle = #f9e", "lineWidth = 1", "setLineDash([])", "stroke()",
			),
		},
		{
			name: "odd trailing value ignored",
			draw: func(d *diagram.Diagram) { d.FillPoly([]float64{0, 0, 4, 4, 9}, "") },
			want: listing(
				"fillStyle = #857",
				"beginPath()",
				"moveTo(0, 0)",
				"lineTo(4.5, 4.5)",
				"closePath()",
				"fill()",
			),
		},
		{
			name: "empty",
			draw: func(d *diagram.Diagram) {
				d.DrawPoly(nil, "", 0)
				d.FillPoly([]float64{1}, "")
				d.OutlinePoly([]float64{}, "", "", 0)
			},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, rec := newTestDiagram(t)
			tt.draw(d)
			if got := rec.String(); got != tt.want {
				t.Errorf("listing:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		name string
		draw func(d *diagram.Diagram)
		want string
	}{
		{
			name: "FillText",
			draw: func(d *diagram.Diagram) { d.FillText("hi", 3, 4, "") },
			want: listing("fillStyle = #ddd", `fillText("hi", 3, 14)`),
		},
		{
			name: "DrawText",
			draw: func(d *diagram.Diagram) { d.DrawText("hi", 3, 4, "", 0) },
			want: listing("strokeStyle = #ddd", "lineWidth = 1", "setLineDash([])", `strokeText("hi", 3, 14)`),
		},
		{
			name: "OutlineText",
			draw: func(d *diagram.Diagram) { d.OutlineText("hi", 0, 0, "", "", 2, 1, 2) },
			want: listing(
				"fillStyle = #ddd",
				`fillText("hi", 0, 10)`,
				"strokeStyle = #fff",
				"lineWidth = 2",
				"setLineDash([1, 2])",
				`strokeText("hi", 0, 10)`,
			),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, rec := newTestDiagram(t)
			tt.draw(d)
			if got := rec.String(); got != tt.want {
				t.Errorf("listing:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestSetFont(t *testing.T) {
	d, rec := newTestDiagram(t)
	rec.SetAscentRatio(0.75)

	d.SetFont("Go Mono", 30, "")

	if got := d.Font(); got != (diagram.Font{Name: "Go Mono", Height: 30, Style: "normal"}) {
		t.Errorf("Font() = %+v", got)
	}
	// 30 * 0.75 = 22.5, rounded half away from zero.
	if got := d.FontAscent(); got != 23 {
		t.Errorf("FontAscent() = %v, want 23", got)
	}
	if got := rec.String(); got != "font = normal 30px Go Mono" {
		t.Errorf("listing = %q", got)
	}
}

func TestOverlayGrid(t *testing.T) {
	d, rec := newTestDiagram(t) // 100x80
	d.OverlayGrid(25, 20, "", 2, 2)

	var moves []string
	for _, c := range rec.Commands() {
		switch c.Type() {
		case recording.CmdMoveTo:
			moves = append(moves, c.String())
		case recording.CmdSetStrokeStyle:
			if c.String() != "strokeStyle = #444" {
				t.Errorf("grid color = %q, want #444", c.String())
			}
		case recording.CmdSetLineDash:
			if c.String() != "setLineDash([2, 2])" {
				t.Errorf("grid dash = %q, want [2, 2]", c.String())
			}
		}
	}

	want := []string{
		// horizontal: y = 20, 40, 60
		"moveTo(0.5, 20.5)",
		"moveTo(0.5, 40.5)",
		"moveTo(0.5, 60.5)",
		// vertical: x = 25, 50, 75
		"moveTo(25.5, 0.5)",
		"moveTo(50.5, 0.5)",
		"moveTo(75.5, 0.5)",
	}
	if strings.Join(moves, "\n") != strings.Join(want, "\n") {
		t.Errorf("grid lines:\n%s\nwant:\n%s", strings.Join(moves, "\n"), strings.Join(want, "\n"))
	}
}

func TestOverlayGridNonPositiveCell(t *testing.T) {
	d, rec := newTestDiagram(t)
	d.OverlayGrid(0, -5, "")
	if rec.Len() != 0 {
		t.Errorf("OverlayGrid(0, -5) recorded %d commands, want 0", rec.Len())
	}
}

func TestSetFillSetStroke(t *testing.T) {
	d, rec := newTestDiagram(t)
	d.SetFill("123")
	d.SetStroke("456")
	want := listing("fillStyle = #123", "strokeStyle = #456")
	if got := rec.String(); got != want {
		t.Errorf("listing:\n%s\nwant:\n%s", got, want)
	}
}

func TestDiagramInput(t *testing.T) {
	d, _ := newTestDiagram(t)

	var moved bool
	d.HandlePointerMove(func(input.PointerEvent) { moved = true })
	d.PointerMove(input.PointerEvent{X: 150, Y: -4})

	if !moved {
		t.Error("move handler not called")
	}
	if got := d.MousePosition(); got.X != 99 || got.Y != 0 {
		t.Errorf("MousePosition() = %v, want (99, 0)", got)
	}
}
