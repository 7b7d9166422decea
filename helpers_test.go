package pixdraw

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/pixdraw/surface"
)

// errFake is returned by failingSurface.
var errFake = errors.New("fake surface failure")

// failingSurface forwards to an ImageSurface until ok calls have been made,
// then fails every call.
type failingSurface struct {
	*surface.ImageSurface
	ok    int
	calls int
}

func (f *failingSurface) tick() error {
	f.calls++
	if f.calls > f.ok {
		return errFake
	}
	return nil
}

func (f *failingSurface) SetClipWindow(x, y, w, h int) error {
	if err := f.tick(); err != nil {
		return err
	}
	return f.ImageSurface.SetClipWindow(x, y, w, h)
}

func (f *failingSurface) WriteSolidRun(x, y int, r, g, b uint8, count int) error {
	if err := f.tick(); err != nil {
		return err
	}
	return f.ImageSurface.WriteSolidRun(x, y, r, g, b, count)
}

func (f *failingSurface) WriteRaw(x, y int, pix []byte, count int) error {
	if err := f.tick(); err != nil {
		return err
	}
	return f.ImageSurface.WriteRaw(x, y, pix, count)
}

// tallySurface counts how many times each pixel is written and keeps the
// last color written there.
type tallySurface struct {
	w, h int
	win  image.Rectangle
	hits map[Point]int
	last map[Point]Color
}

func newTallySurface(w, h int) *tallySurface {
	return &tallySurface{
		w: w, h: h,
		win:  image.Rect(0, 0, w, h),
		hits: make(map[Point]int),
		last: make(map[Point]Color),
	}
}

func (s *tallySurface) Geometry() surface.Geometry {
	return surface.Geometry{Width: s.w, Height: s.h, ClipWidth: s.w, ClipHeight: s.h}
}

func (s *tallySurface) SetClipWindow(x, y, w, h int) error {
	r := image.Rect(x, y, x+w, y+h)
	if w <= 0 || h <= 0 || !r.In(image.Rect(0, 0, s.w, s.h)) {
		return surface.ErrWindowOutOfBounds
	}
	s.win = r
	return nil
}

func (s *tallySurface) WriteSolidRun(x, y int, r, g, b uint8, count int) error {
	ww := s.win.Dx()
	for i := 0; i < count; i++ {
		pos := y*ww + x + i
		p := Pt(s.win.Min.X+pos%ww, s.win.Min.Y+pos/ww)
		s.hits[p]++
		s.last[p] = RGB(r, g, b)
	}
	return nil
}

func (s *tallySurface) WriteRaw(x, y int, pix []byte, count int) error {
	for i := 0; i < count; i++ {
		if err := s.WriteSolidRun(x+i, y, pix[i*3], pix[i*3+1], pix[i*3+2], 1); err != nil {
			return err
		}
	}
	return nil
}

// total returns the number of pixel writes.
func (s *tallySurface) total() int {
	n := 0
	for _, c := range s.hits {
		n += c
	}
	return n
}

// newTestContext returns a context over a recorded w x h ImageSurface.
func newTestContext(t *testing.T, w, h int, opts ...ContextOption) (*Context, *surface.ImageSurface, *surface.Recorder) {
	t.Helper()
	img := surface.NewImageSurface(w, h)
	rec := surface.NewRecorder(img)
	dc, err := NewContext(rec, opts...)
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	return dc, img, rec
}

// newTallyContext returns a context over a tallySurface.
func newTallyContext(t *testing.T, w, h int, opts ...ContextOption) (*Context, *tallySurface) {
	t.Helper()
	s := newTallySurface(w, h)
	dc, err := NewContext(s, opts...)
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	return dc, s
}

// painted returns every pixel of s that is not black.
func painted(s *surface.ImageSurface) map[Point]bool {
	set := make(map[Point]bool)
	b := s.Image().Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := s.At(x, y)
			if c.R|c.G|c.B != 0 {
				set[Pt(x, y)] = true
			}
		}
	}
	return set
}

func sameSet(a, b map[Point]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for p := range a {
		if !b[p] {
			return false
		}
	}
	return true
}

func sameCommands(a, b []surface.Command) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// mustDraw fails the test unless a draw call returned want without error.
func mustDraw(t *testing.T, want Outcome) func(Outcome, error) {
	t.Helper()
	return func(got Outcome, err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("draw error = %v", err)
		}
		if got != want {
			t.Fatalf("draw outcome = %v, want %v", got, want)
		}
	}
}
