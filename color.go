package pixdraw

import (
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a 24-bit RGB value packed as 0x00RRGGBB. The top byte is unused.
type Color uint32

// Channel layout of Color.
const (
	RedShift   = 16
	GreenShift = 8
	BlueShift  = 0

	RedMask   Color = 0xff << RedShift
	GreenMask Color = 0xff << GreenShift
	BlueMask  Color = 0xff << BlueShift
)

// Common colors.
const (
	Black Color = 0x000000
	White Color = 0xffffff
	Red   Color = 0xff0000
	Green Color = 0x00ff00
	Blue  Color = 0x0000ff
)

// RGB packs three 8-bit channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(r)<<RedShift | Color(g)<<GreenShift | Color(b)<<BlueShift
}

// Channels splits c into its 8-bit red, green and blue channels.
func (c Color) Channels() (r, g, b uint8) {
	return uint8((c & RedMask) >> RedShift),
		uint8((c & GreenMask) >> GreenShift),
		uint8((c & BlueMask) >> BlueShift)
}

// RGBA implements color.Color. The result is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.Channels()
	r, g, b = uint32(r8), uint32(g8), uint32(b8)
	return r | r<<8, g | g<<8, b | b<<8, 0xffff
}

// FromColor converts a standard color.Color to a Color, dropping alpha.
// The channels are taken without un-premultiplying.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// ColorByName looks up an SVG 1.1 / X11 color name such as "cornflowerblue".
// The lookup ignores case.
func ColorByName(name string) (Color, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return 0, false
	}
	return RGB(c.R, c.G, c.B), true
}
