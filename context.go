package pixdraw

import (
	"fmt"
	"math"

	"github.com/gogpu/pixdraw/font"
	"github.com/gogpu/pixdraw/surface"
)

// Context is the drawing state for one surface: colors, the clipping
// region, and the collaborators every draw call goes through.
//
// A Context is not safe for concurrent use. Draw calls only read the
// clipping region; it changes only through SetClippingRegion and
// ResetClippingRegion.
type Context struct {
	surface surface.Surface
	font    font.Font
	geom    surface.Geometry

	fg, bg Color
	clip   Rect
}

// NewContext creates a drawing context for s. The surface geometry is
// queried once; the clipping region starts as the whole addressable clip
// area unless WithClipRegion is given.
func NewContext(s surface.Surface, opts ...ContextOption) (*Context, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil surface", ErrInvalidArgument)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.font == nil {
		o.font = font.Basic()
	}

	g := s.Geometry()
	if g.ClipWidth < 2 || g.ClipHeight < 2 {
		return nil, fmt.Errorf("%w: addressable area %dx%d", ErrInvalidClipRegion, g.ClipWidth, g.ClipHeight)
	}
	if g.ClipX < 0 || g.ClipY < 0 || g.ClipMaxX() > math.MaxUint16 || g.ClipMaxY() > math.MaxUint16 {
		return nil, fmt.Errorf("%w: addressable area does not fit 16-bit coordinates", ErrOutOfBounds)
	}

	c := &Context{
		surface: s,
		font:    o.font,
		geom:    g,
		fg:      o.fg,
		bg:      o.bg,
	}
	c.ResetClippingRegion()
	if o.haveClip {
		if err := c.SetClippingRegion(o.clip); err != nil {
			return nil, err
		}
	}

	Logger().Debug("pixdraw: context created",
		"width", g.Width, "height", g.Height,
		"clip", c.clip)
	return c, nil
}

// Surface returns the surface the context draws to.
func (c *Context) Surface() surface.Surface { return c.surface }

// Font returns the glyph table used for text.
func (c *Context) Font() font.Font { return c.font }

// Geometry returns the surface geometry captured at creation.
func (c *Context) Geometry() surface.Geometry { return c.geom }

// Foreground returns the color used by shapes and set glyph bits.
func (c *Context) Foreground() Color { return c.fg }

// SetForeground sets the foreground color.
func (c *Context) SetForeground(col Color) { c.fg = col }

// Background returns the color used by Clear and opaque glyph cells.
func (c *Context) Background() Color { return c.bg }

// SetBackground sets the background color.
func (c *Context) SetBackground(col Color) { c.bg = col }

// ClipRegion returns the active clipping region.
func (c *Context) ClipRegion() Rect { return c.clip }

// SetClippingRegion replaces the clipping region. It returns
// ErrInvalidClipRegion if r has min >= max on either axis and
// ErrOutOfBounds if r exceeds the surface's addressable clip area.
func (c *Context) SetClippingRegion(r Rect) error {
	if r.XMin >= r.XMax || r.YMin >= r.YMax {
		return fmt.Errorf("%w: %+v", ErrInvalidClipRegion, r)
	}
	if int(r.XMin) < c.geom.ClipX || int(r.XMax) > c.geom.ClipMaxX() ||
		int(r.YMin) < c.geom.ClipY || int(r.YMax) > c.geom.ClipMaxY() {
		return fmt.Errorf("%w: clipping region %+v", ErrOutOfBounds, r)
	}
	c.clip = r
	Logger().Debug("pixdraw: clipping region set", "clip", r)
	return nil
}

// ResetClippingRegion sets the clipping region to the surface's full
// addressable clip area.
func (c *Context) ResetClippingRegion() {
	c.clip = Rect{
		XMin: uint16(c.geom.ClipX),
		YMin: uint16(c.geom.ClipY),
		XMax: uint16(c.geom.ClipMaxX()),
		YMax: uint16(c.geom.ClipMaxY()),
	}
}

// Clear fills the addressable clip area with the background color. The
// clipping region is not consulted.
func (c *Context) Clear() error {
	g := c.geom
	return c.fillWindow(g.ClipX, g.ClipY, g.ClipWidth, g.ClipHeight, c.bg)
}

// resetWindow programs the surface clip window to the whole display.
func (c *Context) resetWindow() error {
	if err := c.surface.SetClipWindow(0, 0, c.geom.Width, c.geom.Height); err != nil {
		return c.fail("reset clip window", err)
	}
	return nil
}

// fillWindow writes count pixels of col through a w x h window at (x, y)
// and restores the full-display window afterwards.
func (c *Context) fillWindow(x, y, w, h int, col Color) error {
	if err := c.surface.SetClipWindow(x, y, w, h); err != nil {
		return c.fail("set clip window", err)
	}
	r, g, b := col.Channels()
	if err := c.surface.WriteSolidRun(0, 0, r, g, b, w*h); err != nil {
		return c.fail("write run", err)
	}
	return c.resetWindow()
}

// fail wraps a surface error and logs it.
func (c *Context) fail(op string, err error) error {
	Logger().Warn("pixdraw: surface call failed", "op", op, "err", err)
	return &SurfaceError{Op: op, Err: err}
}
