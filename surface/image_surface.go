// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// ImageSurface is a CPU-based surface that renders to an *image.RGBA.
//
// It emulates a display controller with a hardware clip window: runs are
// written row-major inside the window and wrap at its right edge. Every
// pixel written is fully opaque.
//
// Example:
//
//	s := surface.NewImageSurface(320, 240)
//	defer s.Close()
//
//	_ = s.WriteSolidRun(10, 10, 255, 0, 0, 50)
//	_ = s.SavePNG("out.png")
type ImageSurface struct {
	img  *image.RGBA
	geom Geometry

	// current hardware clip window
	win image.Rectangle

	// closed tracks if Close has been called
	closed bool
}

// ImageSurfaceOption configures an ImageSurface during creation.
type ImageSurfaceOption func(*ImageSurface)

// WithClipArea restricts the addressable clip area reported by Geometry.
// The area is intersected with the surface bounds; an empty intersection
// leaves the default (whole surface) in place.
func WithClipArea(x, y, w, h int) ImageSurfaceOption {
	return func(s *ImageSurface) {
		r := image.Rect(x, y, x+w, y+h).Intersect(s.img.Rect)
		if r.Empty() {
			return
		}
		s.geom.ClipX, s.geom.ClipY = r.Min.X, r.Min.Y
		s.geom.ClipWidth, s.geom.ClipHeight = r.Dx(), r.Dy()
	}
}

// NewImageSurface creates a new CPU-based surface with the given dimensions.
// The surface starts out opaque black.
func NewImageSurface(width, height int, opts ...ImageSurfaceOption) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return newImageSurface(img, opts)
}

// NewImageSurfaceFromImage creates a surface backed by an existing image.
// The surface will render into the provided image directly.
func NewImageSurfaceFromImage(img *image.RGBA, opts ...ImageSurfaceOption) *ImageSurface {
	if img.Rect.Min != (image.Point{}) {
		img = &image.RGBA{
			Pix:    img.Pix,
			Stride: img.Stride,
			Rect:   image.Rect(0, 0, img.Rect.Dx(), img.Rect.Dy()),
		}
	}
	return newImageSurface(img, opts)
}

func newImageSurface(img *image.RGBA, opts []ImageSurfaceOption) *ImageSurface {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	s := &ImageSurface{
		img: img,
		geom: Geometry{
			Width:      w,
			Height:     h,
			ClipWidth:  w,
			ClipHeight: h,
		},
		win: img.Rect,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Geometry returns the surface size and addressable clip area.
func (s *ImageSurface) Geometry() Geometry {
	return s.geom
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.geom.Width
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.geom.Height
}

// SetClipWindow programs the clip window used by subsequent writes.
func (s *ImageSurface) SetClipWindow(x, y, w, h int) error {
	if s.closed {
		return ErrClosed
	}
	r := image.Rect(x, y, x+w, y+h)
	if w <= 0 || h <= 0 || !r.In(s.img.Rect) {
		return &WindowError{X: x, Y: y, W: w, H: h}
	}
	s.win = r
	return nil
}

// ClipWindow returns the current hardware clip window.
func (s *ImageSurface) ClipWindow() image.Rectangle {
	return s.win
}

// WriteSolidRun writes count pixels of one color starting at (x, y) in
// window coordinates.
func (s *ImageSurface) WriteSolidRun(x, y int, r, g, b uint8, count int) error {
	if s.closed {
		return ErrClosed
	}
	s.walk(x, y, count, func(i, off int) {
		p := s.img.Pix[off : off+4 : off+4]
		p[0], p[1], p[2], p[3] = r, g, b, 0xff
	})
	return nil
}

// WriteRaw writes count pixels from pix starting at (x, y) in window
// coordinates. pix holds BytesPerPixel bytes per pixel.
func (s *ImageSurface) WriteRaw(x, y int, pix []byte, count int) error {
	if s.closed {
		return ErrClosed
	}
	if count < 0 || count > len(pix)/BytesPerPixel {
		return fmt.Errorf("%w: have %d bytes for %d pixels", ErrShortBuffer, len(pix), count)
	}
	s.walk(x, y, count, func(i, off int) {
		src := pix[i*BytesPerPixel : i*BytesPerPixel+BytesPerPixel]
		p := s.img.Pix[off : off+4 : off+4]
		p[0], p[1], p[2], p[3] = src[0], src[1], src[2], 0xff
	})
	return nil
}

// walk visits count window positions starting at (x, y) and calls fn with
// the pixel index and its offset into the image buffer. Positions outside
// the window are skipped.
func (s *ImageSurface) walk(x, y, count int, fn func(i, off int)) {
	ww, wh := s.win.Dx(), s.win.Dy()
	if x < 0 || y < 0 || x >= ww {
		return
	}
	pos := y*ww + x
	for i := 0; i < count; i, pos = i+1, pos+1 {
		row := pos / ww
		if row >= wh {
			return
		}
		px := s.win.Min.X + pos%ww
		py := s.win.Min.Y + row
		fn(i, s.img.PixOffset(px, py))
	}
}

// At returns the color of the pixel at (x, y) in display coordinates.
func (s *ImageSurface) At(x, y int) color.RGBA {
	return s.img.RGBAAt(x, y)
}

// Image returns the underlying image directly (no copy).
// Modifications to the returned image affect the surface.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Snapshot returns a copy of the current surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	cp := image.NewRGBA(s.img.Rect)
	copy(cp.Pix, s.img.Pix)
	return cp
}

// EncodePNG writes the surface contents to w as PNG.
func (s *ImageSurface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

// SavePNG saves the surface contents to a PNG file.
func (s *ImageSurface) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err := s.EncodePNG(bw); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Close releases the surface. Close is idempotent; multiple calls are safe.
func (s *ImageSurface) Close() error {
	s.closed = true
	return nil
}
