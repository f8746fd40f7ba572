package render

import (
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"math"
	"os"
)

// WrapMode controls sampling outside [0, 1].
type WrapMode int

const (
	WrapRepeat WrapMode = iota
	WrapClamp
)

// FilterMode controls magnification filtering.
type FilterMode int

const (
	FilterNearest FilterMode = iota
	FilterBilinear
)

// Texture is an RGB image sampled with UV coordinates. V = 0 is the bottom
// row, matching the mesh UV convention.
type Texture struct {
	Width, Height int
	Pixels        []Color

	WrapU, WrapV WrapMode
	FilterMode   FilterMode

	// RepeatU and RepeatV scale UVs before wrapping; 0 means 1.
	RepeatU, RepeatV float64
}

// NewTexture creates a black texture.
func NewTexture(w, h int) *Texture {
	return &Texture{
		Width:   w,
		Height:  h,
		Pixels:  make([]Color, w*h),
		RepeatU: 1,
		RepeatV: 1,
	}
}

// NewCheckerTexture creates a two-color checkerboard with square cells.
func NewCheckerTexture(w, h, cell int, a, b Color) *Texture {
	t := NewTexture(w, h)
	if cell <= 0 {
		cell = 1
	}
	for y := range h {
		for x := range w {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			t.Pixels[y*w+x] = c
		}
	}
	return t
}

// LoadTexture decodes a PNG or JPEG file.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}
	return TextureFromImage(img), nil
}

// TextureFromImage copies an image into a texture.
func TextureFromImage(img image.Image) *Texture {
	b := img.Bounds()
	t := NewTexture(b.Dx(), b.Dy())
	for y := range t.Height {
		for x := range t.Width {
			r, g, bb, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			t.Pixels[y*t.Width+x] = Color{uint8(r >> 8), uint8(g >> 8), uint8(bb >> 8)}
		}
	}
	return t
}

// GetPixel returns the texel at (x, y), clamping out-of-range coordinates.
func (t *Texture) GetPixel(x, y int) Color {
	x = max(0, min(t.Width-1, x))
	y = max(0, min(t.Height-1, y))
	return t.Pixels[y*t.Width+x]
}

// SetPixel writes the texel at (x, y); out-of-range writes are dropped.
func (t *Texture) SetPixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= t.Width || y >= t.Height {
		return
	}
	t.Pixels[y*t.Width+x] = c
}

// Sample returns the texture color at (u, v).
func (t *Texture) Sample(u, v float64) Color {
	if t.Width == 0 || t.Height == 0 {
		return ColorWhite
	}
	if t.RepeatU != 0 {
		u *= t.RepeatU
	}
	if t.RepeatV != 0 {
		v *= t.RepeatV
	}
	u = wrap(u, t.WrapU)
	v = wrap(v, t.WrapV)

	// flip V: image row 0 is the top
	fx := u * float64(t.Width)
	fy := (1 - v) * float64(t.Height)

	if t.FilterMode == FilterNearest {
		return t.texel(int(math.Floor(fx)), int(math.Floor(fy)))
	}

	fx -= 0.5
	fy -= 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)
	top := lerpColor(t.texel(x0, y0), t.texel(x0+1, y0), tx)
	bot := lerpColor(t.texel(x0, y0+1), t.texel(x0+1, y0+1), tx)
	return lerpColor(top, bot, ty)
}

func (t *Texture) texel(x, y int) Color {
	if t.WrapU == WrapRepeat {
		x = ((x % t.Width) + t.Width) % t.Width
	}
	if t.WrapV == WrapRepeat {
		y = ((y % t.Height) + t.Height) % t.Height
	}
	return t.GetPixel(x, y)
}

func wrap(c float64, mode WrapMode) float64 {
	if mode == WrapClamp {
		return clamp01(c)
	}
	return c - math.Floor(c)
}
