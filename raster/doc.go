// Package raster implements diagram.Surface in software on top of
// github.com/gogpu/gg.
//
// A Surface behaves like an HTML canvas 2D context: the current path
// survives Fill and Stroke, FillRect and StrokeRect leave it alone, and
// text is positioned by its baseline.
//
// Basic usage:
//
//	s := raster.NewSurface(320, 200)
//	defer s.Close()
//
//	d := diagram.New(s, 0, 0, 320, 200)
//	d.Clear("")
//	d.DrawCircle(160, 100, 40, "", 2)
//
//	if err := s.SavePNG("out.png"); err != nil {
//		log.Fatal(err)
//	}
//
// Fonts are resolved through a FontRegistry. DefaultFonts returns a
// registry preloaded with the Go font family, so text works without any
// system fonts installed.
package raster
