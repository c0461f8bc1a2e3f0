package stlview

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

var (
	Transparent = Color{}
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
)

type Color struct {
	R, G, B, A float64
}

func Gray(x float64) Color {
	return Color{x, x, x, 1}
}

func colorFromFloat32(c [3]float32) Color {
	return Color{float64(c[0]), float64(c[1]), float64(c[2]), 1}
}

func (c Color) float32s() [3]float32 {
	return [3]float32{float32(c.R), float32(c.G), float32(c.B)}
}

func MakeColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	const d = 0xffff
	return Color{float64(r) / d, float64(g) / d, float64(b) / d, float64(a) / d}
}

// HexColor parses "rgb", "rrggbb" or "rrggbbaa", with or without '#'.
// Unparseable input yields black.
func HexColor(x string) Color {
	c, err := ParseHexColor(x)
	if err != nil {
		return Black
	}
	return c
}

func ParseHexColor(x string) (Color, error) {
	x = strings.TrimPrefix(x, "#")
	var r, g, b, a int
	a = 255
	var n int
	var err error
	switch len(x) {
	case 3:
		n, err = fmt.Sscanf(x, "%1x%1x%1x", &r, &g, &b)
		r, g, b = r*17, g*17, b*17
	case 6:
		n, err = fmt.Sscanf(x, "%02x%02x%02x", &r, &g, &b)
	case 8:
		n, err = fmt.Sscanf(x, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return Black, fmt.Errorf("stlview: bad hex color %q", x)
	}
	if err != nil || n < 3 {
		return Black, fmt.Errorf("stlview: bad hex color %q", x)
	}
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, float64(a) / 255}, nil
}

func (c Color) NRGBA() color.NRGBA {
	const d = 0xff
	r := Clamp(c.R, 0, 1)
	g := Clamp(c.G, 0, 1)
	b := Clamp(c.B, 0, 1)
	a := Clamp(c.A, 0, 1)
	return color.NRGBA{uint8(r * d), uint8(g * d), uint8(b * d), uint8(a * d)}
}

func (a Color) Opaque() Color {
	return Color{a.R, a.G, a.B, 1}
}

func (a Color) Alpha(alpha float64) Color {
	return Color{a.R, a.G, a.B, alpha}
}

func (a Color) Lerp(b Color, t float64) Color {
	return a.Add(b.Sub(a).MulScalar(t))
}

func (a Color) Add(b Color) Color {
	return Color{a.R + b.R, a.G + b.G, a.B + b.B, a.A + b.A}
}

func (a Color) Sub(b Color) Color {
	return Color{a.R - b.R, a.G - b.G, a.B - b.B, a.A - b.A}
}

func (a Color) Mul(b Color) Color {
	return Color{a.R * b.R, a.G * b.G, a.B * b.B, a.A * b.A}
}

func (a Color) MulScalar(b float64) Color {
	return Color{a.R * b, a.G * b, a.B * b, a.A * b}
}

func (a Color) DivScalar(b float64) Color {
	return Color{a.R / b, a.G / b, a.B / b, a.A / b}
}

func (a Color) Min(b Color) Color {
	return Color{math.Min(a.R, b.R), math.Min(a.G, b.G), math.Min(a.B, b.B), math.Min(a.A, b.A)}
}

func (a Color) Max(b Color) Color {
	return Color{math.Max(a.R, b.R), math.Max(a.G, b.G), math.Max(a.B, b.B), math.Max(a.A, b.A)}
}
