// Package jscanvas draws diagrams on an HTML <canvas> element when
// compiled with GOOS=js GOARCH=wasm.
//
// New creates the element, places it over the page at the requested
// position, and wires document key events and canvas pointer events into
// the diagram's input state:
//
//	c := jscanvas.New(10, 10, 640, 480)
//	defer c.Close()
//
//	c.HandlePointerMove(func(e input.PointerEvent) {
//		c.Clear("")
//		c.FillCircle(e.X, e.Y, 8, "")
//	})
//
// Event handlers run on the browser's event loop goroutine and must not
// block.
package jscanvas
