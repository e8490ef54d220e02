//go:build js && wasm

// Command diagram-wasm is an interactive browser demo. It overlays a
// canvas on the page and redraws on every pointer and key event.
//
// Build with:
//
//	GOOS=js GOARCH=wasm go build -o main.wasm ./cmd/diagram-wasm
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/antixdev/diagram"
	"github.com/antixdev/diagram/input"
	"github.com/antixdev/diagram/jscanvas"
)

const (
	width  = 640
	height = 400
)

var buttonNames = [input.NumButtons]string{"primary", "auxiliary", "secondary", "back", "forward"}

func main() {
	diagram.SetLogger(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	c := jscanvas.New(16, 16, width, height)

	var trail []float64
	redraw := func() {
		c.Clear("")
		c.OverlayGrid(32, 32, "", 1, 3)

		p := c.MousePosition()
		if c.Dragging() {
			trail = append(trail, p.X, p.Y)
			if len(trail) > 200 {
				trail = trail[len(trail)-200:]
			}
		}
		if len(trail) >= 4 {
			c.DrawPoly(trail, "", 1)
		}

		fill := diagram.Color("")
		if c.ButtonHeld(input.ButtonPrimary) {
			fill = "c63"
		}
		c.OutlineCircle(p.X, p.Y, 10, fill, "", 2)

		var held []string
		for b, name := range buttonNames {
			if c.ButtonHeld(input.Button(b)) {
				held = append(held, name)
			}
		}
		delta := c.DragDelta()

		lines := []string{
			fmt.Sprintf("pointer  %4.0f %4.0f", p.X, p.Y),
			fmt.Sprintf("buttons  %s", strings.Join(held, " ")),
			fmt.Sprintf("drag     %4.0f %4.0f", delta.X, delta.Y),
			fmt.Sprintf("mods     shift=%t ctrl=%t alt=%t", c.ShiftHeld(), c.CtrlHeld(), c.AltHeld()),
			fmt.Sprintf("space    %t", c.KeyHeld(" ")),
		}
		for i, l := range lines {
			c.FillText(l, 8, 8+float64(i)*(c.FontAscent()+6), "")
		}
	}

	onPointer := func(input.PointerEvent) { redraw() }
	c.HandlePointerMove(onPointer)
	c.HandlePointerDown(func(input.PointerEvent) {
		trail = trail[:0]
		redraw()
	})
	c.HandlePointerUp(onPointer)
	c.HandlePointerLeave(onPointer)
	c.HandleKeyDown(func(e input.KeyEvent) {
		if e.Key == "Escape" {
			trail = trail[:0]
		}
		redraw()
	})
	c.HandleKeyUp(func(input.KeyEvent) { redraw() })

	redraw()
	select {}
}
