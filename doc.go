// Package pixdraw is a small integer 2D rasterizer for pixel displays.
//
// # Overview
//
// pixdraw turns lines, circles, rectangles, polygons, glyphs and raw
// bitmaps into the fewest pixel and run writes a display controller needs.
// Every draw except DrawBitmap respects the Context's clipping region, and
// every draw reports what it did as an Outcome:
//
//   - Drawn: at least one pixel reached the surface
//   - NothingDrawn: everything was clipped away or masked off (not an error)
//   - Failed: paired with a non-nil error
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/pixdraw"
//	    "github.com/gogpu/pixdraw/surface"
//	)
//
//	s := surface.NewImageSurface(320, 240)
//	dc, err := pixdraw.NewContext(s)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	dc.SetForeground(pixdraw.Red)
//	dc.DrawCircle(160, 120, 50)
//	dc.DrawString("hello", 10, 10, false)
//
//	_ = s.SavePNG("hello.png")
//
// # Architecture
//
//   - Public API: Context, Rect, Point, Color, Outcome
//   - surface: the pixel device (SetClipWindow, WriteSolidRun, WriteRaw)
//   - font: fixed-size bitmap glyph tables
//   - bitmap: decoding images into the surface's native pixel layout
//
// Axis-aligned lines and filled rectangles are emitted as single runs;
// general lines are clipped with Cohen–Sutherland and rasterized with
// Bresenham; circles use the integer midpoint recurrence with 8-way
// symmetry.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - All bounds are inclusive
//
// # Errors
//
// Arguments are checked before anything is drawn. Failures are reported
// with the sentinel errors ErrInvalidArgument, ErrInvalidClipRegion,
// ErrOutOfBounds and ErrInvalidChar, or a *SurfaceError wrapping what the
// surface returned. Composite shapes stop at the first failure.
//
// # Concurrency
//
// A Context and its surface must be driven from one goroutine at a time.
package pixdraw
