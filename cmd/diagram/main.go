// Command diagram renders YAML sketches to PNG files or canvas command
// listings.
//
// Usage:
//
//	diagram render scene.yaml -o scene.png
//	diagram render --format listing scene.yaml
//	diagram render --dump scene.yaml
//	diagram demo --width 800 --height 600
//	diagram version
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/urfave/cli"

	"github.com/antixdev/diagram"
	"github.com/antixdev/diagram/raster"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "diagram:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "diagram"
	app.Usage = "draw YAML sketches with the diagram primitives"
	app.Version = diagram.Version

	verbose := cli.BoolFlag{
		Name:  "verbose",
		Usage: "log drawing and backend activity to stderr",
	}
	output := cli.StringFlag{
		Name:  "output, o",
		Usage: "file to write",
	}

	app.Flags = []cli.Flag{verbose}
	app.Before = func(clictx *cli.Context) error {
		if clictx.Bool("verbose") {
			setupLogging(clictx.App.ErrWriter)
		}
		return nil
	}

	app.Commands = []cli.Command{
		{
			Name:      "render",
			Usage:     "Render a sketch file",
			ArgsUsage: "<scene.yaml>",
			Flags: []cli.Flag{
				output,
				cli.StringFlag{
					Name:  "format, f",
					Value: raster.BackendName,
					Usage: "output backend: png or listing",
				},
				cli.BoolFlag{
					Name:  "dump",
					Usage: "shorthand for --format listing",
				},
			},
			Action: renderAction,
		},
		{
			Name:  "demo",
			Usage: "Render the built-in showcase",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "width", Value: 640, Usage: "canvas width"},
				cli.IntFlag{Name: "height", Value: 480, Usage: "canvas height"},
				cli.StringFlag{Name: "output, o", Value: "demo.png", Usage: "PNG file to write"},
				cli.BoolFlag{Name: "yaml", Usage: "print the showcase as a sketch file instead"},
			},
			Action: demoAction,
		},
		{
			Name:  "version",
			Usage: "Print version information",
			Action: func(clictx *cli.Context) error {
				fmt.Fprintf(clictx.App.Writer, "diagram %s (gg %s)\n", diagram.Version, gg.Version)
				return nil
			},
		},
	}

	return app
}

// setupLogging routes diagram and gg logs to w at debug level.
func setupLogging(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	diagram.SetLogger(l)
	gg.SetLogger(l)
}
