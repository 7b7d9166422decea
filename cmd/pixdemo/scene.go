package main

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/pixdraw"
	"github.com/gogpu/pixdraw/bitmap"
)

// Scene is a picture described in TOML:
//
//	width = 320
//	height = 240
//	background = "navy"
//
//	[[shape]]
//	kind = "circle"
//	color = "gold"
//	points = [[160, 120]]
//	radius = 40
//
//	[[bitmap]]
//	path = "logo.png"
//	x = 8
//	y = 8
//	fit = [64, 64]
type Scene struct {
	Width      int         `toml:"width"`
	Height     int         `toml:"height"`
	Background string      `toml:"background"`
	Clip       *ClipRegion `toml:"clip"`
	Shapes     []Shape     `toml:"shape"`
	Bitmaps    []Image     `toml:"bitmap"`

	// dir is the directory bitmap paths are resolved against.
	dir string
}

// ClipRegion restricts every shape in the scene. Bitmaps are not clipped.
type ClipRegion struct {
	XMin int `toml:"xmin"`
	YMin int `toml:"ymin"`
	XMax int `toml:"xmax"`
	YMax int `toml:"ymax"`
}

// Shape is one draw call. Which fields matter depends on Kind:
//
//	pixel, circle, filled-circle, arc, text: Points[0] is the position
//	line: Points[0] and Points[1]
//	rect, filled-rect: Points[0] and Points[1] are opposite corners
//	polygon: all Points
type Shape struct {
	Kind   string  `toml:"kind"`
	Color  string  `toml:"color"`
	Points [][]int `toml:"points"`
	Radius int     `toml:"radius"`
	Mask   int     `toml:"mask"`
	Text   string  `toml:"text"`
	Opaque bool    `toml:"opaque"`
}

// Image places a picture file on the scene.
type Image struct {
	Path string `toml:"path"`
	X    int    `toml:"x"`
	Y    int    `toml:"y"`
	Fit  []int  `toml:"fit"`
}

// loadScene reads a TOML scene file.
func loadScene(path string) (*Scene, error) {
	var s Scene
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("decode scene %s: %w", path, err)
	}
	s.dir = filepath.Dir(path)
	return &s, nil
}

// parseScene decodes a scene held in memory. Bitmap paths are relative to
// the working directory.
func parseScene(data string) (*Scene, error) {
	var s Scene
	if _, err := toml.Decode(data, &s); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return &s, nil
}

// render draws the scene on dc, background first, then bitmaps, then shapes
// in file order.
func (s *Scene) render(dc *pixdraw.Context) error {
	if s.Background != "" {
		bg, err := lookupColor(s.Background)
		if err != nil {
			return err
		}
		dc.SetBackground(bg)
	}
	if err := dc.Clear(); err != nil {
		return err
	}

	if s.Clip != nil {
		r := pixdraw.RectOf(s.Clip.XMin, s.Clip.YMin, s.Clip.XMax, s.Clip.YMax)
		if err := dc.SetClippingRegion(r); err != nil {
			return err
		}
	}

	for i, img := range s.Bitmaps {
		if err := s.drawImage(dc, img); err != nil {
			return fmt.Errorf("bitmap %d: %w", i, err)
		}
	}
	for i, sh := range s.Shapes {
		out, err := sh.draw(dc)
		if err != nil {
			return fmt.Errorf("shape %d (%s): %w", i, sh.Kind, err)
		}
		pixdraw.Logger().Debug("pixdemo: shape drawn", "index", i, "kind", sh.Kind, "outcome", out)
	}
	return nil
}

func (s *Scene) drawImage(dc *pixdraw.Context, img Image) error {
	path := img.Path
	if !filepath.IsAbs(path) && s.dir != "" {
		path = filepath.Join(s.dir, path)
	}
	var opts []bitmap.Option
	if len(img.Fit) == 2 {
		opts = append(opts, bitmap.WithFit(img.Fit[0], img.Fit[1]))
	}
	b, err := bitmap.Load(path, opts...)
	if err != nil {
		return err
	}
	_, err = dc.DrawBitmap(img.X, img.Y, b.Width, b.Height, b.Pix)
	return err
}

func (sh Shape) point(i int) (pixdraw.Point, error) {
	if i >= len(sh.Points) || len(sh.Points[i]) != 2 {
		return pixdraw.Point{}, fmt.Errorf("point %d missing or not [x, y]", i)
	}
	return pixdraw.Pt(sh.Points[i][0], sh.Points[i][1]), nil
}

func (sh Shape) points(n int) ([]pixdraw.Point, error) {
	if n < 0 {
		n = len(sh.Points)
	}
	pts := make([]pixdraw.Point, n)
	for i := range pts {
		p, err := sh.point(i)
		if err != nil {
			return nil, err
		}
		pts[i] = p
	}
	return pts, nil
}

func (sh Shape) draw(dc *pixdraw.Context) (pixdraw.Outcome, error) {
	if sh.Color != "" {
		c, err := lookupColor(sh.Color)
		if err != nil {
			return pixdraw.Failed, err
		}
		dc.SetForeground(c)
	}

	need := 1
	switch sh.Kind {
	case "line", "rect", "filled-rect":
		need = 2
	case "polygon":
		need = -1
	}
	pts, err := sh.points(need)
	if err != nil {
		return pixdraw.Failed, err
	}

	switch sh.Kind {
	case "pixel":
		return dc.DrawPixel(pts[0].X, pts[0].Y)
	case "line":
		return dc.DrawLine(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
	case "rect", "filled-rect":
		r := pixdraw.RectOf(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
		if sh.Kind == "rect" {
			return dc.DrawRect(r)
		}
		return dc.DrawRectFilled(r)
	case "circle":
		return dc.DrawCircle(pts[0].X, pts[0].Y, sh.Radius)
	case "filled-circle":
		return dc.DrawCircleFilled(pts[0].X, pts[0].Y, sh.Radius)
	case "arc":
		return dc.DrawPartialCircle(pts[0].X, pts[0].Y, sh.Radius, uint8(sh.Mask))
	case "polygon":
		return dc.DrawPolygon(pts)
	case "text":
		return dc.DrawText(sh.Text, pts[0].X, pts[0].Y, sh.Opaque)
	default:
		return pixdraw.Failed, fmt.Errorf("unknown shape kind %q", sh.Kind)
	}
}

func lookupColor(name string) (pixdraw.Color, error) {
	c, ok := pixdraw.ColorByName(name)
	if !ok {
		return 0, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}
