package pixdraw

import (
	"errors"
	"testing"

	"github.com/gogpu/pixdraw/surface"
)

func TestDrawPixel(t *testing.T) {
	dc, img, rec := newTestContext(t, 16, 16, WithForeground(RGB(0x10, 0x20, 0x30)))

	mustDraw(t, Drawn)(dc.DrawPixel(3, 4))

	want := []surface.Command{
		{Type: surface.CmdSetClipWindow, W: 16, H: 16},
		{Type: surface.CmdWriteSolidRun, X: 3, Y: 4, R: 0x10, G: 0x20, B: 0x30, Count: 1},
	}
	if !sameCommands(rec.Commands(), want) {
		t.Errorf("commands = %v, want %v", rec.Commands(), want)
	}
	if c := img.At(3, 4); c.R != 0x10 || c.G != 0x20 || c.B != 0x30 {
		t.Errorf("pixel = %v", c)
	}
	if n := len(painted(img)); n != 1 {
		t.Errorf("painted %d pixels, want 1", n)
	}
}

func TestDrawPixelColor(t *testing.T) {
	dc, img, _ := newTestContext(t, 16, 16)

	mustDraw(t, Drawn)(dc.DrawPixelColor(0, 15, Blue))

	if c := img.At(0, 15); c.B != 0xff || c.R != 0 || c.G != 0 {
		t.Errorf("pixel = %v, want blue", c)
	}
	if dc.Foreground() != White {
		t.Error("DrawPixelColor changed the foreground color")
	}
}

func TestDrawPixelClip(t *testing.T) {
	clip := Rect{4, 4, 8, 8}

	tests := []struct {
		name string
		x, y int
		want Outcome
	}{
		{"inside", 5, 5, Drawn},
		{"top-left corner", 4, 4, Drawn},
		{"bottom-right corner", 8, 8, Drawn},
		{"left of clip", 3, 5, NothingDrawn},
		{"right of clip", 9, 5, NothingDrawn},
		{"above clip", 5, 3, NothingDrawn},
		{"below clip", 5, 9, NothingDrawn},
		{"negative", -1, -1, NothingDrawn},
		{"off surface", 100, 100, NothingDrawn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dc, img, rec := newTestContext(t, 16, 16, WithClipRegion(clip))
			mustDraw(t, tt.want)(dc.DrawPixel(tt.x, tt.y))

			got := painted(img)
			if tt.want == Drawn && !got[Pt(tt.x, tt.y)] {
				t.Error("pixel not painted")
			}
			if tt.want == NothingDrawn && (len(got) != 0 || len(rec.Commands()) != 0) {
				t.Error("clipped pixel reached the surface")
			}
		})
	}
}

func TestDrawPixelSurfaceFailure(t *testing.T) {
	tests := []struct {
		name   string
		ok     int
		wantOp string
	}{
		{"window", 0, "reset clip window"},
		{"write", 1, "write pixel"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := &failingSurface{ImageSurface: surface.NewImageSurface(8, 8), ok: tt.ok}
			dc, err := NewContext(fs)
			if err != nil {
				t.Fatal(err)
			}
			out, err := dc.DrawPixel(1, 1)
			if out != Failed {
				t.Errorf("outcome = %v, want Failed", out)
			}
			var se *SurfaceError
			if !errors.As(err, &se) || se.Op != tt.wantOp {
				t.Errorf("error = %v, want SurfaceError with op %q", err, tt.wantOp)
			}
		})
	}
}
