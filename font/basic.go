package font

import (
	"fmt"
	"image/color"
	"sync"

	"golang.org/x/image/font/basicfont"
)

var (
	basicOnce sync.Once
	basic     *Fixed
)

// Basic returns the 7x13 fixed font from golang.org/x/image/font/basicfont.
// The table is converted on first use and shared afterwards.
func Basic() *Fixed {
	basicOnce.Do(func() {
		f, err := FromFace(basicfont.Face7x13)
		if err != nil {
			panic(err)
		}
		basic = f
	})
	return basic
}

// FromFace converts a basicfont face into a row table. The cell width is
// the face advance, so inter-glyph spacing is part of each cell. Faces
// wider than MaxWidth are rejected.
func FromFace(face *basicfont.Face) (*Fixed, error) {
	if face == nil || face.Mask == nil {
		return nil, fmt.Errorf("%w: nil face", ErrBadTable)
	}
	width := face.Advance
	if face.Width > width {
		width = face.Width
	}
	if width > MaxWidth {
		return nil, fmt.Errorf("%w: face is %d pixels wide", ErrBadTable, width)
	}

	rows := make([]uint8, face.Height*NumGlyphs)
	b := face.Mask.Bounds()
	for ch := rune(First); ch <= Last; ch++ {
		idx, ok := glyphIndex(face, ch)
		if !ok {
			continue
		}
		for r := 0; r < face.Height; r++ {
			y := b.Min.Y + idx*face.Height + r
			var bits uint8
			for c := 0; c < face.Width; c++ {
				a := color.AlphaModel.Convert(face.Mask.At(b.Min.X+c, y)).(color.Alpha)
				if a.A >= 0x80 {
					bits |= 1 << c
				}
			}
			rows[r*NumGlyphs+int(ch-First)] = bits
		}
	}
	return NewFixed(width, face.Height, rows)
}

// glyphIndex maps ch to its position in the face mask.
func glyphIndex(face *basicfont.Face, ch rune) (int, bool) {
	for _, rg := range face.Ranges {
		if rg.Low <= ch && ch < rg.High {
			return int(ch-rg.Low) + rg.Offset, true
		}
	}
	return 0, false
}
