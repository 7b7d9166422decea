// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

// BytesPerPixel is the size of one pixel in the native layout accepted by
// WriteRaw: 8-bit red, green and blue, in that order.
const BytesPerPixel = 3

// Surface is the addressable pixel device the drawing engine writes to.
//
// A Surface owns a hardware clip window. All writes are expressed relative
// to the window origin: a run of count pixels starts at (x, y) inside the
// window and advances left to right, wrapping to the start of the next
// window row. Pixels that would fall below the window are discarded.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
type Surface interface {
	// SetClipWindow programs the hardware clip window. The window must lie
	// inside the surface; w and h must be positive.
	SetClipWindow(x, y, w, h int) error

	// WriteSolidRun writes count pixels of a single color.
	WriteSolidRun(x, y int, r, g, b uint8, count int) error

	// WriteRaw writes count pixels taken from pix, which holds
	// BytesPerPixel bytes per pixel.
	WriteRaw(x, y int, pix []byte, count int) error

	// Geometry reports the surface size and its addressable clip area.
	Geometry() Geometry
}

// Geometry describes the size of a surface and the part of it that may be
// used as a software clipping region.
type Geometry struct {
	// Width and Height are the full display size in pixels.
	Width, Height int

	// ClipX and ClipY are the origin of the addressable clip area.
	ClipX, ClipY int

	// ClipWidth and ClipHeight are the size of the addressable clip area.
	ClipWidth, ClipHeight int
}

// ClipMaxX returns the last addressable column.
func (g Geometry) ClipMaxX() int {
	return g.ClipX + g.ClipWidth - 1
}

// ClipMaxY returns the last addressable row.
func (g Geometry) ClipMaxY() int {
	return g.ClipY + g.ClipHeight - 1
}

// ResetClipWindow programs the clip window of s to cover the whole display.
func ResetClipWindow(s Surface) error {
	g := s.Geometry()
	return s.SetClipWindow(0, 0, g.Width, g.Height)
}
