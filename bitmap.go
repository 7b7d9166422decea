package pixdraw

import (
	"fmt"

	"github.com/gogpu/pixdraw/surface"
)

// DrawBitmap copies a w x h block of pixels in the surface's native layout
// (surface.BytesPerPixel bytes each, row major) to (x, y).
//
// The block goes straight through the surface clip window: the clipping
// region is not consulted, only the surface's own bounds. A block that
// does not fit the surface fails with the surface's error.
func (c *Context) DrawBitmap(x, y, w, h int, pix []byte) (Outcome, error) {
	if w <= 0 || h <= 0 {
		return Failed, fmt.Errorf("%w: bitmap size %dx%d", ErrInvalidArgument, w, h)
	}
	if w > len(pix)/surface.BytesPerPixel/h {
		return Failed, fmt.Errorf("%w: bitmap has %d bytes for %dx%d pixels", ErrInvalidArgument, len(pix), w, h)
	}

	if err := c.surface.SetClipWindow(x, y, w, h); err != nil {
		return Failed, c.fail("set clip window", err)
	}
	if err := c.surface.WriteRaw(0, 0, pix, w*h); err != nil {
		return Failed, c.fail("write raw", err)
	}
	if err := c.resetWindow(); err != nil {
		return Failed, err
	}
	return Drawn, nil
}
