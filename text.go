package pixdraw

import (
	"fmt"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// LineSpacing is the number of blank rows between lines of a string.
const LineSpacing = 2

// DrawChar draws one glyph with its top-left corner at (x, y). Set glyph
// bits are drawn in the foreground color; clear bits are drawn in the
// background color when opaque is true and left untouched otherwise.
// Characters outside ' ' through '~' return ErrInvalidChar.
func (c *Context) DrawChar(ch byte, x, y int, opaque bool) (Outcome, error) {
	if ch < ' ' || ch > '~' {
		return Failed, fmt.Errorf("%w: %q", ErrInvalidChar, ch)
	}

	w, h := c.font.Width(), c.font.Height()
	drew := false
	for row := 0; row < h; row++ {
		bits := c.font.RowBits(ch, row)
		for col := 0; col < w; col, bits = col+1, bits>>1 {
			var (
				out Outcome
				err error
			)
			switch {
			case bits&1 != 0:
				out, err = c.DrawPixel(x+col, y+row)
			case opaque:
				out, err = c.DrawPixelColor(x+col, y+row, c.bg)
			default:
				continue
			}
			if err != nil {
				return Failed, err
			}
			drew = drew || out == Drawn
		}
	}
	return drawnIf(drew), nil
}

// DrawString draws text starting with its top-left corner at (x0, y0).
// A '\n' moves the cursor back to x0 and down one line; every other byte
// is drawn with DrawChar. The first failing character aborts the string.
func (c *Context) DrawString(text string, x0, y0 int, opaque bool) (Outcome, error) {
	x, y := x0, y0
	drew := false
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if ch == '\n' {
			x = x0
			y += c.font.Height() + LineSpacing
			continue
		}
		out, err := c.DrawChar(ch, x, y, opaque)
		if err != nil {
			return Failed, err
		}
		drew = drew || out == Drawn
		x += c.font.Width()
	}
	return drawnIf(drew), nil
}

// DrawText is DrawString for arbitrary UTF-8 input: the text is first
// passed through FoldASCII so accented letters keep their base glyph and
// anything else without a glyph is dropped. A folding failure returns
// Failed before anything is drawn.
func (c *Context) DrawText(text string, x0, y0 int, opaque bool) (Outcome, error) {
	return c.drawText(text, x0, y0, opaque, asciiFolder())
}

func (c *Context) drawText(text string, x0, y0 int, opaque bool, t transform.Transformer) (Outcome, error) {
	folded, _, err := transform.String(t, text)
	if err != nil {
		return Failed, fmt.Errorf("pixdraw: fold text: %w", err)
	}
	return c.DrawString(folded, x0, y0, opaque)
}

// FoldASCII reduces s to the characters a glyph table can draw. Letters
// are decomposed and their combining marks removed ("café" becomes
// "cafe"); remaining runes outside ' ' through '~' other than '\n' are
// dropped. It returns "" if the text cannot be transformed.
func FoldASCII(s string) string {
	out, _, err := transform.String(asciiFolder(), s)
	if err != nil {
		return ""
	}
	return out
}

// asciiFolder returns a fresh folding chain; chains carry state and are
// not shared.
func asciiFolder() transform.Transformer {
	return transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.Predicate(func(r rune) bool {
			return r != '\n' && (r < ' ' || r > '~')
		})),
	)
}
