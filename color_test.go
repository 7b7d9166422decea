package pixdraw

import (
	"image/color"
	"testing"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color(0)

func TestRGBAndChannels(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    Color
	}{
		{"black", 0, 0, 0, Black},
		{"white", 0xff, 0xff, 0xff, White},
		{"red", 0xff, 0, 0, Red},
		{"green", 0, 0xff, 0, Green},
		{"blue", 0, 0, 0xff, Blue},
		{"mixed", 0x12, 0x34, 0x56, 0x123456},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := RGB(tt.r, tt.g, tt.b)
			if c != tt.want {
				t.Errorf("RGB() = %06x, want %06x", uint32(c), uint32(tt.want))
			}
			r, g, b := c.Channels()
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("Channels() = (%d, %d, %d), want (%d, %d, %d)", r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestColorMasks(t *testing.T) {
	c := Color(0xab123456)
	if c&RedMask>>RedShift != 0x12 || c&GreenMask>>GreenShift != 0x34 || c&BlueMask>>BlueShift != 0x56 {
		t.Errorf("masks split %08x incorrectly", uint32(c))
	}
	if r, g, b := c.Channels(); r != 0x12 || g != 0x34 || b != 0x56 {
		t.Errorf("Channels() read the unused top byte: (%x, %x, %x)", r, g, b)
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := Color(0xff8000).RGBA()
	if r != 0xffff || g != 0x8080 || b != 0 || a != 0xffff {
		t.Errorf("RGBA() = (%#x, %#x, %#x, %#x)", r, g, b, a)
	}
}

func TestFromColor(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want Color
	}{
		{"RGBA", color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff}, 0x123456},
		{"NRGBA opaque", color.NRGBA{R: 0xff, G: 0x80, A: 0xff}, 0xff8000},
		{"gray", color.Gray{Y: 0x40}, 0x404040},
		{"round trip", Color(0x0a0b0c), 0x0a0b0c},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromColor(tt.in); got != tt.want {
				t.Errorf("FromColor() = %06x, want %06x", uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestColorByName(t *testing.T) {
	tests := []struct {
		name   string
		want   Color
		wantOK bool
	}{
		{"red", Red, true},
		{"CornflowerBlue", 0x6495ed, true},
		{"black", Black, true},
		{"not-a-color", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ColorByName(tt.name)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ColorByName(%q) = %06x, %v; want %06x, %v", tt.name, uint32(got), ok, uint32(tt.want), tt.wantOK)
			}
		})
	}
}
