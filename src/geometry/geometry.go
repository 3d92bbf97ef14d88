package geometry

import (
	"fmt"
	"strconv"
	"strings"
)

// Rect is a screen-coordinate rectangle in left/top/right/bottom form.
// Values are caller-supplied and never normalized: Right may be smaller
// than Left, which yields a mirrored or degenerate outline when drawn.
type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

func (r Rect) Width() int32 {
	return r.Right - r.Left
}

func (r Rect) Height() int32 {
	return r.Bottom - r.Top
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{
		X: r.Left + r.Width()/2,
		Y: r.Top + r.Height()/2,
	}
}

// HasArea reports whether both dimensions are non-zero.
func (r Rect) HasArea() bool {
	return r.Width() != 0 && r.Height() != 0
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(l=%d, t=%d, r=%d, b=%d)", r.Left, r.Top, r.Right, r.Bottom)
}

type Point struct {
	X int32
	Y int32
}

// Color is a 24-bit RGB value in COLORREF layout: 0x00BBGGRR.
type Color uint32

const (
	Red   Color = 0x0000FF
	Green Color = 0x00FF00
	Blue  Color = 0xFF0000
)

// RGB packs the three channels into COLORREF layout.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r) | uint32(g)<<8 | uint32(b)<<16)
}

func (c Color) R() uint8 { return uint8(c) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c >> 16) }

// ParseColor accepts "r,g,b" decimal form or "#RRGGBB" hex form.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty color")
	}

	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) != 6 {
			return 0, fmt.Errorf("invalid hex color %q", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid hex color %q", s)
		}
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid color %q, want \"r,g,b\" or \"#RRGGBB\"", s)
	}
	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid color channel %q", p)
		}
		ch[i] = uint8(v)
	}
	return RGB(ch[0], ch[1], ch[2]), nil
}
