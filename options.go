package pixdraw

import "github.com/gogpu/pixdraw/font"

// ContextOption configures a Context during creation.
// Use functional options to customize Context behavior.
//
// Example:
//
//	// Defaults: white on black, basicfont 7x13, full clip area
//	dc, err := pixdraw.NewContext(s)
//
//	// Custom colors and a smaller clipping region
//	dc, err := pixdraw.NewContext(s,
//	    pixdraw.WithForeground(pixdraw.Red),
//	    pixdraw.WithClipRegion(pixdraw.Rect{XMin: 10, YMin: 10, XMax: 100, YMax: 80}),
//	)
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	font     font.Font
	fg, bg   Color
	clip     Rect
	haveClip bool
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		font: nil, // Will be set to font.Basic() if nil
		fg:   White,
		bg:   Black,
	}
}

// WithFont sets the glyph table used by DrawChar and DrawString.
func WithFont(f font.Font) ContextOption {
	return func(o *contextOptions) {
		o.font = f
	}
}

// WithForeground sets the initial foreground color.
func WithForeground(c Color) ContextOption {
	return func(o *contextOptions) {
		o.fg = c
	}
}

// WithBackground sets the initial background color.
func WithBackground(c Color) ContextOption {
	return func(o *contextOptions) {
		o.bg = c
	}
}

// WithClipRegion sets the initial clipping region. NewContext fails if the
// region is rejected by SetClippingRegion.
func WithClipRegion(r Rect) ContextOption {
	return func(o *contextOptions) {
		o.clip = r
		o.haveClip = true
	}
}
