package stlview

import (
	"image"
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"ff0000", Color{1, 0, 0, 1}},
		{"#00ff00", Color{0, 1, 0, 1}},
		{"fff", White},
		{"00000000", Transparent},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if err != nil {
			t.Errorf("ParseHexColor(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{"", "12345", "zz0000"} {
		if _, err := ParseHexColor(in); err == nil {
			t.Errorf("ParseHexColor(%q) error = nil", in)
		}
	}
	if HexColor("nope") != Black {
		t.Error("HexColor of bad input should be black")
	}
}

func TestColorNRGBAClamps(t *testing.T) {
	got := Color{2, -1, 0.5, 1}.NRGBA()
	if got.R != 255 || got.G != 0 || got.A != 255 {
		t.Errorf("NRGBA() = %v", got)
	}
}

func TestImageTextureSample(t *testing.T) {
	im := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	// row 0 is the top of the image, so v=1
	im.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	im.Set(1, 0, color.NRGBA{0, 255, 0, 255})
	im.Set(0, 1, color.NRGBA{0, 0, 255, 255})
	im.Set(1, 1, color.NRGBA{255, 255, 255, 255})
	tex := NewImageTexture(im)

	if got := tex.Sample(0.25, 0.75); got != (Color{1, 0, 0, 1}) {
		t.Errorf("Sample(top-left) = %v", got)
	}
	if got := tex.Sample(0.75, 0.25); got != White {
		t.Errorf("Sample(bottom-right) = %v", got)
	}
	// texel centers sample exactly
	if got := tex.BilinearSample(0.25, 0.25); got != (Color{0, 0, 1, 1}) {
		t.Errorf("BilinearSample(texel center) = %v", got)
	}
	mid := tex.BilinearSample(0.5, 0.75)
	if mid.R < 0.49 || mid.R > 0.51 || mid.G < 0.49 || mid.G > 0.51 {
		t.Errorf("BilinearSample(between red and green) = %v", mid)
	}
}
