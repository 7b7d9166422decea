package pixdraw

import "math"

// Rect is an axis-aligned rectangle with inclusive bounds.
type Rect struct {
	XMin, YMin, XMax, YMax uint16
}

// Point is a pixel position. Coordinates may be negative or exceed the
// surface; such points are clipped away by the draw calls.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// RectOf builds a Rect from two corners given as ints. Coordinates are
// clamped to [0, 65535] first, so off-surface corners do not wrap around.
func RectOf(x1, y1, x2, y2 int) Rect {
	return Rect{
		XMin: clampCoord(x1), YMin: clampCoord(y1),
		XMax: clampCoord(x2), YMax: clampCoord(y2),
	}
}

func clampCoord(v int) uint16 {
	return uint16(min(max(v, 0), math.MaxUint16))
}

// Contains reports whether (x, y) lies inside r. All four edges are
// inside.
func (r Rect) Contains(x, y int) bool {
	return x >= int(r.XMin) && x <= int(r.XMax) &&
		y >= int(r.YMin) && y <= int(r.YMax)
}

// Normalize returns a copy of r with min <= max on both axes.
func (r Rect) Normalize() Rect {
	if r.XMin > r.XMax {
		r.XMin, r.XMax = r.XMax, r.XMin
	}
	if r.YMin > r.YMax {
		r.YMin, r.YMax = r.YMax, r.YMin
	}
	return r
}

// Width returns the number of columns covered by a normalized r.
func (r Rect) Width() int {
	return int(r.XMax) - int(r.XMin) + 1
}

// Height returns the number of rows covered by a normalized r.
func (r Rect) Height() int {
	return int(r.YMax) - int(r.YMin) + 1
}

// clampTo narrows r to clip on all four bounds. ok is false when nothing
// of r is left.
func (r Rect) clampTo(clip Rect) (_ Rect, ok bool) {
	if r.XMin < clip.XMin {
		r.XMin = clip.XMin
	}
	if r.XMax > clip.XMax {
		r.XMax = clip.XMax
	}
	if r.YMin < clip.YMin {
		r.YMin = clip.YMin
	}
	if r.YMax > clip.YMax {
		r.YMax = clip.YMax
	}
	return r, r.XMin <= r.XMax && r.YMin <= r.YMax
}

// outcode marks the clip boundaries a point lies beyond.
type outcode uint8

const (
	outLeft  outcode = 1 << iota // x < XMin
	outRight                     // x > XMax
	outBelow                     // y > YMax
	outAbove                     // y < YMin
)

func (r Rect) outcode(x, y int) outcode {
	var code outcode
	if x < int(r.XMin) {
		code |= outLeft
	}
	if x > int(r.XMax) {
		code |= outRight
	}
	if y > int(r.YMax) {
		code |= outBelow
	}
	if y < int(r.YMin) {
		code |= outAbove
	}
	return code
}

// clipLine clips the segment (x1,y1)-(x2,y2) to r with Cohen–Sutherland.
// Moved endpoints land on the exact integer intersection, truncated
// toward zero. ok is false when the segment misses r entirely.
func (r Rect) clipLine(x1, y1, x2, y2 int) (cx1, cy1, cx2, cy2 int, ok bool) {
	code1 := r.outcode(x1, y1)
	code2 := r.outcode(x2, y2)

	for {
		if code1|code2 == 0 {
			return x1, y1, x2, y2, true
		}
		if code1&code2 != 0 {
			return x1, y1, x2, y2, false
		}

		code := code1
		if code == 0 {
			code = code2
		}

		// A set bit guarantees the opposite endpoint is on the other side
		// of that boundary, so the divisor below is never zero.
		var x, y int
		switch {
		case code&outLeft != 0:
			x = int(r.XMin)
			y = y1 + (y2-y1)*(x-x1)/(x2-x1)
		case code&outRight != 0:
			x = int(r.XMax)
			y = y1 + (y2-y1)*(x-x1)/(x2-x1)
		case code&outBelow != 0:
			y = int(r.YMax)
			x = x1 + (x2-x1)*(y-y1)/(y2-y1)
		default:
			y = int(r.YMin)
			x = x1 + (x2-x1)*(y-y1)/(y2-y1)
		}

		if code1 != 0 {
			x1, y1 = x, y
			code1 = r.outcode(x1, y1)
		} else {
			x2, y2 = x, y
			code2 = r.outcode(x2, y2)
		}
	}
}
