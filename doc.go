// Package diagram provides a simple immediate-mode surface you can draw stuff on.
//
// # Overview
//
// A Diagram wraps a drawing Surface of a fixed position and size and offers
// a handful of convenience primitives on top of it: lines, rectangles,
// pixels, circles, ellipses, polygons, text and a grid overlay. It also
// tracks pointer and keyboard state through the embedded [input.State].
//
// # Quick Start
//
//	import (
//	    "github.com/antixdev/diagram"
//	    "github.com/antixdev/diagram/raster"
//	)
//
//	s := raster.NewSurface(640, 480)
//	defer s.Close()
//
//	d := diagram.New(s, 0, 0, 640, 480)
//	d.Clear("")
//	d.OverlayGrid(32, 32, "", 2, 2)
//	d.OutlineCircle(320, 240, 100, "", "", 2)
//	d.FillText("hello", 10, 10, "")
//
//	_ = s.SavePNG("hello.png")
//
// # Surfaces
//
// Every primitive is a direct forward to the Surface, which follows the
// semantics of an HTML canvas 2D context. Available surfaces:
//   - raster: software rendering via github.com/gogpu/gg
//   - recording: captures typed commands for inspection and playback
//   - jscanvas: a real <canvas> element (js/wasm only)
//
// # Colors and Defaults
//
// Colors are hex strings without the leading '#', such as "ccc" or
// "3c9a55". Every primitive has its own default color, used when the
// Color argument is empty. A line width of zero means 1.
//
// # Coordinate System
//
// Origin (0,0) is at the top-left, X grows right and Y grows down.
// Stroked primitives are offset by half a pixel so one pixel wide lines
// land exactly on pixel rows.
package diagram

// Version is the current version of the library.
const Version = "0.3.0"
