package core

import (
	"hexisland/math"
)

type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
	ColorRed   = Color{1, 0, 0, 1}
)

// ColorHex parses "#rrggbb" into an opaque colour. Malformed input yields black.
func ColorHex(s string) Color {
	if len(s) == 7 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return ColorBlack
	}
	var rgb [3]float32
	for i := range rgb {
		hi, ok1 := hexNibble(s[i*2])
		lo, ok2 := hexNibble(s[i*2+1])
		if !ok1 || !ok2 {
			return ColorBlack
		}
		rgb[i] = float32(hi<<4|lo) / 255
	}
	return Color{R: rgb[0], G: rgb[1], B: rgb[2], A: 1}
}

// Scale multiplies RGB by k, leaving alpha untouched.
func (c Color) Scale(k float32) Color {
	return Color{R: c.R * k, G: c.G * k, B: c.B * k, A: c.A}
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// Vertex is the interleaved layout uploaded to the GPU.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	UV       math.Vec2
	Color    Color
}
