// Package font provides fixed-size bitmap glyph tables for pixdraw.
//
// A glyph is Height rows of at most 8 columns. Each row is a byte whose
// bit c (least significant first) marks column c as set. Only the visible
// ASCII range ' ' through '~' has glyphs.
package font

import (
	"errors"
	"fmt"
)

// First and Last bound the printable range covered by every Font.
const (
	First = ' '
	Last  = '~'

	// NumGlyphs is the number of glyphs in a complete table.
	NumGlyphs = Last - First + 1

	// MaxWidth is the widest glyph a row byte can describe.
	MaxWidth = 8
)

// ErrBadTable is returned when a raw glyph table has the wrong shape.
var ErrBadTable = errors.New("font: malformed glyph table")

// Font is a fixed-size bitmap glyph table.
type Font interface {
	// Width returns the glyph cell width in pixels.
	Width() int

	// Height returns the glyph cell height in pixels.
	Height() int

	// RowBits returns the column bitmap of one glyph row. It returns 0 for
	// characters outside [First, Last] and rows outside [0, Height).
	RowBits(ch byte, row int) uint8
}

// Fixed is a Font backed by a flat row table. The table is laid out row
// major: all glyphs' row 0, then all glyphs' row 1, and so on, so the byte
// for glyph g at row r lives at r*NumGlyphs + g.
type Fixed struct {
	width, height int
	rows          []uint8
}

// NewFixed builds a Font from a raw row table.
func NewFixed(width, height int, rows []uint8) (*Fixed, error) {
	if width <= 0 || width > MaxWidth || height <= 0 {
		return nil, fmt.Errorf("%w: cell %dx%d", ErrBadTable, width, height)
	}
	if len(rows) != height*NumGlyphs {
		return nil, fmt.Errorf("%w: have %d rows, want %d", ErrBadTable, len(rows), height*NumGlyphs)
	}
	return &Fixed{width: width, height: height, rows: append([]uint8(nil), rows...)}, nil
}

func (f *Fixed) Width() int  { return f.width }
func (f *Fixed) Height() int { return f.height }

func (f *Fixed) RowBits(ch byte, row int) uint8 {
	if ch < First || ch > Last || row < 0 || row >= f.height {
		return 0
	}
	return f.rows[row*NumGlyphs+int(ch-First)]
}
