// Package bitmap converts images into the native pixel layout accepted by
// surface.Surface.WriteRaw and pixdraw.Context.DrawBitmap.
package bitmap

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp" // register BMP decoder

	"github.com/gogpu/pixdraw/surface"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("bitmap: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("bitmap: empty data")
)

const bpp = surface.BytesPerPixel

// Bitmap is a block of pixels in surface native order: row major,
// surface.BytesPerPixel bytes per pixel.
type Bitmap struct {
	Width, Height int
	Pix           []byte
}

// New allocates a black w x h bitmap.
func New(w, h int) *Bitmap {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Bitmap{Width: w, Height: h, Pix: make([]byte, w*h*bpp)}
}

// Set stores one pixel. Out-of-range positions are ignored.
func (b *Bitmap) Set(x, y int, r, g, bl uint8) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	i := (y*b.Width + x) * bpp
	b.Pix[i], b.Pix[i+1], b.Pix[i+2] = r, g, bl
}

// At returns one pixel. Out-of-range positions return black.
func (b *Bitmap) At(x, y int) (r, g, bl uint8) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return 0, 0, 0
	}
	i := (y*b.Width + x) * bpp
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2]
}

// FromImage converts img, dropping alpha. Translucent pixels keep their
// premultiplied channel values, so they come out darker.
func FromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || bounds.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}

	b := New(bounds.Dx(), bounds.Dy())
	for y := 0; y < b.Height; y++ {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+b.Width*4]
		out := b.Pix[y*b.Width*bpp:]
		for x := 0; x < b.Width; x++ {
			out[x*bpp], out[x*bpp+1], out[x*bpp+2] = row[x*4], row[x*4+1], row[x*4+2]
		}
	}
	return b
}

// Option configures decoding.
type Option func(*options)

type options struct {
	fitW, fitH int
}

// WithFit scales the decoded image down to fit inside w x h, keeping its
// aspect ratio, with Lanczos resampling. Smaller images are left as is.
func WithFit(w, h int) Option {
	return func(o *options) {
		o.fitW, o.fitH = w, h
	}
}

// Decode reads a PNG, JPEG or BMP image from r.
func Decode(r io.Reader, opts ...Option) (*Bitmap, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	img, _, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, ErrUnsupportedFormat
		}
		return nil, fmt.Errorf("bitmap: decode: %w", err)
	}
	if o.fitW > 0 && o.fitH > 0 {
		img = imaging.Fit(img, o.fitW, o.fitH, imaging.Lanczos)
	}
	return FromImage(img), nil
}

// DecodeBytes decodes an in-memory image.
func DecodeBytes(data []byte, opts ...Option) (*Bitmap, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data), opts...)
}

// Load decodes the image file at path.
func Load(path string, opts ...Option) (*Bitmap, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("bitmap: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f, opts...)
}
