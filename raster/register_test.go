package raster

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/antixdev/diagram/recording"
)

func TestBackendRegistered(t *testing.T) {
	b, err := recording.NewBackend(BackendName, 24, 16)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	s, ok := b.(*Surface)
	if !ok {
		t.Fatalf("%q backend is %T, want *Surface", BackendName, b)
	}
	if s.Width() != 24 || s.Height() != 16 {
		t.Errorf("size = %dx%d, want 24x16", s.Width(), s.Height())
	}
}

func TestSurface_WriteTo(t *testing.T) {
	s := newTestSurface(t, 8, 8)
	s.SetFillStyle("#f00")
	s.FillRect(0, 0, 8, 8)

	var buf bytes.Buffer
	n, err := s.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo returned %d, wrote %d bytes", n, buf.Len())
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r, _, _, _ := img.At(4, 4).RGBA(); r>>8 < 0xf0 {
		t.Errorf("pixel (4, 4) = %v, want red", img.At(4, 4))
	}
}

func TestSurface_SaveToFile(t *testing.T) {
	s := newTestSurface(t, 8, 8)
	path := filepath.Join(t.TempDir(), "out.png")

	if err := s.SaveToFile(path); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("decode: %v", err)
	}
}
