package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	"github.com/urfave/cli"

	"github.com/antixdev/diagram"
	"github.com/antixdev/diagram/raster"
	"github.com/antixdev/diagram/recording"
	"github.com/antixdev/diagram/sketch"
)

// minDemoSize keeps every showcase shape at a positive size.
const minDemoSize = 160

func renderAction(clictx *cli.Context) error {
	path := clictx.Args().First()
	if path == "" {
		return errors.New("render: missing sketch file")
	}
	sk, err := sketch.LoadFile(path)
	if err != nil {
		return err
	}

	format := clictx.String("format")
	if clictx.Bool("dump") {
		format = recording.ListingBackend
	}
	out := clictx.String("output")
	if out == "" && format == raster.BackendName {
		out = strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
	}
	return render(clictx, sk, format, out)
}

func demoAction(clictx *cli.Context) error {
	w, h := clictx.Int("width"), clictx.Int("height")
	if w < minDemoSize || h < minDemoSize {
		return fmt.Errorf("demo: size %dx%d is below the %dx%d minimum", w, h, minDemoSize, minDemoSize)
	}
	sk := sketch.Demo(w, h)

	if clictx.Bool("yaml") {
		return sk.Encode(clictx.App.Writer)
	}
	return render(clictx, sk, raster.BackendName, clictx.String("output"))
}

// render draws sk on the named backend and writes the result to out, or
// to the app's writer when out is empty.
func render(clictx *cli.Context, sk *sketch.Sketch, format, out string) error {
	b, err := recording.NewBackend(format, sk.Width, sk.Height)
	if err != nil {
		return fmt.Errorf("render: %w (have %s)", err, strings.Join(recording.Backends(), ", "))
	}
	defer b.Close()

	if a := gg.Accelerator(); a != nil && format == raster.BackendName {
		diagram.Logger().Debug("diagram: accelerator registered", "name", a.Name())
	}

	d := diagram.New(b, 0, 0, sk.Width, sk.Height)
	if err := sk.Render(d); err != nil {
		return err
	}
	if eb, ok := b.(recording.ErrorBackend); ok {
		if err := eb.Err(); err != nil {
			return err
		}
	}

	if out == "" {
		_, err := b.WriteTo(clictx.App.Writer)
		return err
	}
	if err := save(b, out); err != nil {
		return err
	}
	fmt.Fprintf(clictx.App.Writer, "wrote %s (%dx%d)\n", out, sk.Width, sk.Height)
	return nil
}

func save(b recording.Backend, path string) error {
	if fb, ok := b.(recording.FileBackend); ok {
		return fb.SaveToFile(path)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := b.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
