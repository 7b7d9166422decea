// Command pixdemo renders a picture with the pixdraw engine and writes it
// as PNG. Without -scene it draws a built-in demo.
package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/gogpu/pixdraw"
	"github.com/gogpu/pixdraw/surface"
)

// pipeName selects stdout as the output.
const pipeName = "-"

// demoScene is drawn when no scene file is given.
const demoScene = `
background = "midnightblue"

[[shape]]
kind = "filled-rect"
color = "darkslategray"
points = [[10, 10], [309, 60]]

[[shape]]
kind = "text"
color = "white"
points = [[20, 20]]
text = "pixdraw demo\nlines, circles & glyphs"

[[shape]]
kind = "filled-circle"
color = "tomato"
points = [[70, 140]]
radius = 40

[[shape]]
kind = "circle"
color = "gold"
points = [[70, 140]]
radius = 50

[[shape]]
kind = "arc"
color = "lime"
points = [[70, 140]]
radius = 56
mask = 15

[[shape]]
kind = "polygon"
color = "orange"
points = [[180, 90], [230, 190], [130, 190]]

[[shape]]
kind = "rect"
color = "cornflowerblue"
points = [[250, 90], [300, 190]]

[[shape]]
kind = "line"
color = "violet"
points = [[250, 90], [300, 190]]

[[shape]]
kind = "line"
color = "violet"
points = [[300, 90], [250, 190]]
`

func main() {
	var (
		width   = flag.Int("width", 320, "image width")
		height  = flag.Int("height", 240, "image height")
		output  = flag.String("out", "demo.png", "output file, or - for stdout")
		scene   = flag.String("scene", "", "TOML scene file")
		kind    = flag.String("surface", "image", "surface kind: "+strings.Join(surface.Available(), ", "))
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	pixdraw.SetLogger(logger)

	sc, err := openScene(*scene)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}
	if sc.Width <= 0 {
		sc.Width = *width
	}
	if sc.Height <= 0 {
		sc.Height = *height
	}

	s, err := surface.NewByName(*kind, surface.Options{Width: sc.Width, Height: sc.Height})
	if err != nil {
		log.Fatalf("Failed to create surface: %v", err)
	}
	img := surface.Unwrap(s)
	if img == nil {
		log.Fatalf("Surface %q cannot be saved as PNG", *kind)
	}

	dc, err := pixdraw.NewContext(s)
	if err != nil {
		log.Fatalf("Failed to create context: %v", err)
	}
	if err := sc.render(dc); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if rec, ok := s.(*surface.Recorder); ok {
		logger.Info("pixdemo: surface calls",
			"clip_windows", rec.Count(surface.CmdSetClipWindow),
			"solid_runs", rec.Count(surface.CmdWriteSolidRun),
			"raw_writes", rec.Count(surface.CmdWriteRaw))
	}

	if err := writePNG(img, *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	if *output != pipeName {
		log.Printf("Demo saved to %s (%dx%d)\n", *output, sc.Width, sc.Height)
	}
}

func openScene(path string) (*Scene, error) {
	if path == "" {
		return parseScene(demoScene)
	}
	return loadScene(path)
}

// writePNG saves img to path, or streams it to stdout when path is "-".
// Writing binary data to a terminal is refused.
func writePNG(img *surface.ImageSurface, path string) error {
	if path != pipeName {
		return img.SavePNG(path)
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("`-` should be used with a pipe for stdout")
	}
	return img.EncodePNG(os.Stdout)
}
