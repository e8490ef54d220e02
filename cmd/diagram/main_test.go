package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/antixdev/diagram"
	"github.com/antixdev/diagram/recording"
	"github.com/antixdev/diagram/sketch"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"diagram"}, args...))
	return out.String(), err
}

func writeSketch(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

const sceneYAML = `
width: 64
height: 48
shapes:
  - {kind: rect, mode: fill, x: 4, y: 4, width: 10, height: 10, fill: f00}
  - {kind: circle, x: 40, y: 24, radius: 8}
`

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, diagram.Version) {
		t.Errorf("output %q does not contain version %s", out, diagram.Version)
	}
}

func TestRender_Dump(t *testing.T) {
	path := writeSketch(t, sceneYAML)

	out, err := run(t, "render", "--dump", path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"fillStyle = #111", "fillRect(4, 4, 10, 10)", "arc(40.5, 24.5, 8, 0, 6.283185307179586)"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestRender_PNG(t *testing.T) {
	path := writeSketch(t, sceneYAML)
	outPath := filepath.Join(t.TempDir(), "out.png")

	if _, err := run(t, "render", "-o", outPath, path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("bounds = %v, want 64x48", b)
	}
	if r, g, _, _ := img.At(8, 8).RGBA(); r>>8 < 0xf0 || g>>8 > 0x10 {
		t.Errorf("pixel (8, 8) = %v, want red", img.At(8, 8))
	}
}

func TestRender_DefaultOutputName(t *testing.T) {
	path := writeSketch(t, sceneYAML)

	if _, err := run(t, "render", path); err != nil {
		t.Fatal(err)
	}
	want := strings.TrimSuffix(path, ".yaml") + ".png"
	if _, err := os.Stat(want); err != nil {
		t.Errorf("expected %s: %v", want, err)
	}
}

func TestRender_Errors(t *testing.T) {
	if _, err := run(t, "render"); err == nil {
		t.Error("render without a file should fail")
	}

	bad := writeSketch(t, "{width: 10, height: 10, shapes: [{kind: star}]}")
	_, err := run(t, "render", "--dump", bad)
	if err == nil || !strings.Contains(err.Error(), "unknown shape") {
		t.Errorf("render(bad) error = %v", err)
	}
}

func TestDemo_YAML(t *testing.T) {
	out, err := run(t, "demo", "--yaml", "--width", "320", "--height", "240")
	if err != nil {
		t.Fatal(err)
	}
	sk, err := sketch.Load(strings.NewReader(out))
	if err != nil {
		t.Fatalf("demo yaml does not load: %v\n%s", err, out)
	}
	if sk.Width != 320 || sk.Height != 240 {
		t.Errorf("size = %dx%d, want 320x240", sk.Width, sk.Height)
	}
}

func TestDemo_PNG(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "demo.png")
	out, err := run(t, "demo", "-o", outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "640x480") {
		t.Errorf("output = %q", out)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Error(err)
	}
}

func TestDemo_TooSmall(t *testing.T) {
	if _, err := run(t, "demo", "--width", "20", "--yaml"); err == nil {
		t.Error("demo below the minimum size should fail")
	}
}

func TestRender_ListingToFile(t *testing.T) {
	path := writeSketch(t, sceneYAML)
	outPath := filepath.Join(t.TempDir(), "scene.txt")

	if _, err := run(t, "render", "--format", "listing", "-o", outPath, path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "fillRect(4, 4, 10, 10)") {
		t.Errorf("listing file:\n%s", data)
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	path := writeSketch(t, sceneYAML)

	_, err := run(t, "render", "--format", "svg", path)
	if !errors.Is(err, recording.ErrUnknownBackend) {
		t.Errorf("render --format svg error = %v, want ErrUnknownBackend", err)
	}
	if err != nil && !strings.Contains(err.Error(), "listing, png") {
		t.Errorf("error %q does not list the known backends", err)
	}
}
