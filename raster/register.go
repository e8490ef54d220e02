package raster

import (
	"io"

	"github.com/antixdev/diagram/recording"
)

// BackendName is the name the raster surface is registered under.
const BackendName = "png"

func init() {
	recording.Register(BackendName, func(width, height int) recording.Backend {
		return NewSurface(width, height)
	})
}

var (
	_ recording.FileBackend  = (*Surface)(nil)
	_ recording.ErrorBackend = (*Surface)(nil)
)

// WriteTo encodes the image as PNG to w.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := s.EncodePNG(cw)
	return cw.n, err
}

// SaveToFile is SavePNG.
func (s *Surface) SaveToFile(path string) error {
	return s.SavePNG(path)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
