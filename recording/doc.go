// Package recording provides a diagram.Surface that records drawing calls.
//
// The Recorder captures every Surface call as a typed Command instead of
// rasterizing. Commands can be inspected in tests, printed in canvas
// notation, or played back onto any other surface:
//
//	rec := recording.NewRecorder()
//	d := diagram.New(rec, 0, 0, 320, 200)
//	d.OutlineCircle(160, 100, 40, "", "", 2)
//
//	fmt.Println(rec) // fillStyle = #578, beginPath(), arc(...), ...
//
//	img := raster.NewSurface(320, 200)
//	rec.Playback(img)
//
// There is one Command type per Surface method.
//
// # Backends
//
// Output surfaces register under a name and are created with NewBackend.
// The Recorder itself is registered as "listing"; importing
// github.com/antixdev/diagram/raster adds "png".
package recording
