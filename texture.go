package stlview

import (
	"bytes"
	"image"
	"math"
)

type Texture interface {
	Sample(u, v float64) Color
	BilinearSample(u, v float64) Color
}

type ImageTexture struct {
	Width  int
	Height int
	Image  image.Image
}

func NewImageTexture(im image.Image) Texture {
	return &ImageTexture{
		Width:  im.Bounds().Dx(),
		Height: im.Bounds().Dy(),
		Image:  im,
	}
}

func LoadTexture(path string) (Texture, error) {
	im, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return NewImageTexture(im), nil
}

func LoadTextureFromBytes(data []byte) (Texture, error) {
	im, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return NewImageTexture(im), nil
}

func (t *ImageTexture) at(x, y int) Color {
	b := t.Image.Bounds()
	return MakeColor(t.Image.At(b.Min.X+x, b.Min.Y+y))
}

// Sample is nearest-neighbour with wrapped coordinates and v pointing up.
func (t *ImageTexture) Sample(u, v float64) Color {
	u = u - math.Floor(u)
	v = 1 - (v - math.Floor(v))
	x := ClampInt(int(u*float64(t.Width)), 0, t.Width-1)
	y := ClampInt(int(v*float64(t.Height)), 0, t.Height-1)
	return t.at(x, y)
}

func (t *ImageTexture) BilinearSample(u, v float64) Color {
	u = u - math.Floor(u)
	v = 1 - (v - math.Floor(v))
	fx := u*float64(t.Width) - 0.5
	fy := v*float64(t.Height) - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)
	x1 := ClampInt(x0+1, 0, t.Width-1)
	y1 := ClampInt(y0+1, 0, t.Height-1)
	x0 = ClampInt(x0, 0, t.Width-1)
	y0 = ClampInt(y0, 0, t.Height-1)
	top := t.at(x0, y0).Lerp(t.at(x1, y0), tx)
	bottom := t.at(x0, y1).Lerp(t.at(x1, y1), tx)
	return top.Lerp(bottom, ty)
}
