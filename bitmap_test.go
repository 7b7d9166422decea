package pixdraw

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/pixdraw/bitmap"
	"github.com/gogpu/pixdraw/surface"
)

func checker(w, h int) *bitmap.Bitmap {
	b := bitmap.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b.Set(x, y, uint8(10+x), uint8(20+y), 0x80)
		}
	}
	return b
}

func TestDrawBitmap(t *testing.T) {
	dc, img, rec := newTestContext(t, 16, 16)
	b := checker(4, 3)

	mustDraw(t, Drawn)(dc.DrawBitmap(5, 6, b.Width, b.Height, b.Pix))

	want := []surface.Command{
		{Type: surface.CmdSetClipWindow, X: 5, Y: 6, W: 4, H: 3},
		{Type: surface.CmdWriteRaw, Count: 12},
		{Type: surface.CmdSetClipWindow, W: 16, H: 16},
	}
	if !sameCommands(rec.Commands(), want) {
		t.Errorf("commands = %v, want %v", rec.Commands(), want)
	}

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			c := img.At(5+x, 6+y)
			if c.R != uint8(10+x) || c.G != uint8(20+y) || c.B != 0x80 {
				t.Errorf("pixel (%d,%d) = %v", 5+x, 6+y, c)
			}
		}
	}
	if n := len(painted(img)); n != 12 {
		t.Errorf("painted %d pixels, want 12", n)
	}
}

func TestDrawBitmapIgnoresClipRegion(t *testing.T) {
	dc, img, _ := newTestContext(t, 16, 16, WithClipRegion(Rect{8, 8, 15, 15}))
	b := checker(2, 2)

	mustDraw(t, Drawn)(dc.DrawBitmap(0, 0, 2, 2, b.Pix))

	if n := len(painted(img)); n != 4 {
		t.Errorf("painted %d pixels outside the clipping region, want 4", n)
	}
}

func TestDrawBitmapErrors(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
		pix        []byte
		wantErr    error
	}{
		{"zero width", 0, 0, 0, 2, make([]byte, 12), ErrInvalidArgument},
		{"negative height", 0, 0, 2, -1, make([]byte, 12), ErrInvalidArgument},
		{"short buffer", 0, 0, 2, 2, make([]byte, 11), ErrInvalidArgument},
		{"nil buffer", 0, 0, 1, 1, nil, ErrInvalidArgument},
		{"size product overflows", 0, 0, math.MaxInt, 2, make([]byte, 12), ErrInvalidArgument},
		{"byte count wraps negative", 0, 0, math.MaxInt/3 + 1, 1, make([]byte, 12), ErrInvalidArgument},
		{"past surface edge", 14, 14, 4, 4, make([]byte, 48), surface.ErrWindowOutOfBounds},
		{"negative origin", -1, 0, 2, 2, make([]byte, 12), surface.ErrWindowOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dc, img, _ := newTestContext(t, 16, 16)
			out, err := dc.DrawBitmap(tt.x, tt.y, tt.w, tt.h, tt.pix)
			if out != Failed || !errors.Is(err, tt.wantErr) {
				t.Errorf("DrawBitmap() = %v, %v; want Failed, %v", out, err, tt.wantErr)
			}
			if len(painted(img)) != 0 {
				t.Error("rejected bitmap painted pixels")
			}
		})
	}
}
