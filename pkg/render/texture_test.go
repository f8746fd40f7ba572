package render

import (
	"image"
	"image/color"
	"testing"
)

func quadTexture() *Texture {
	tex := NewTexture(2, 2)
	tex.SetPixel(0, 0, ColorRed)          // top-left
	tex.SetPixel(1, 0, ColorGreen)        // top-right
	tex.SetPixel(0, 1, ColorBlue)         // bottom-left
	tex.SetPixel(1, 1, RGB(255, 255, 0)) // bottom-right
	tex.FilterMode = FilterNearest
	return tex
}

func TestCheckerTexture(t *testing.T) {
	tex := NewCheckerTexture(16, 16, 8, ColorWhite, ColorBlack)
	if c := tex.GetPixel(4, 4); c != ColorWhite {
		t.Errorf("cell (0,0) = %v, want white", c)
	}
	if c := tex.GetPixel(12, 4); c != ColorBlack {
		t.Errorf("cell (1,0) = %v, want black", c)
	}
	if c := tex.GetPixel(12, 12); c != ColorWhite {
		t.Errorf("cell (1,1) = %v, want white", c)
	}
}

func TestTextureSampleNearest(t *testing.T) {
	tex := quadTexture()
	// V is flipped, so V=1 is image row 0
	tests := []struct {
		name string
		u, v float64
		want Color
	}{
		{"top-left", 0.01, 0.99, ColorRed},
		{"top-right", 0.99, 0.99, ColorGreen},
		{"bottom-left", 0.01, 0.01, ColorBlue},
		{"bottom-right", 0.99, 0.01, RGB(255, 255, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if c := tex.Sample(tt.u, tt.v); c != tt.want {
				t.Errorf("Sample(%v, %v) = %v, want %v", tt.u, tt.v, c, tt.want)
			}
		})
	}
}

func TestTextureWrap(t *testing.T) {
	tex := quadTexture()
	tex.WrapU, tex.WrapV = WrapRepeat, WrapRepeat
	if a, b := tex.Sample(0.01, 0.99), tex.Sample(1.01, 0.99); a != b {
		t.Errorf("repeat: %v != %v", a, b)
	}
	if a, b := tex.Sample(0.01, 0.99), tex.Sample(-0.99, 0.99); a != b {
		t.Errorf("repeat negative: %v != %v", a, b)
	}

	tex.WrapU, tex.WrapV = WrapClamp, WrapClamp
	if c := tex.Sample(-0.5, 0.99); c != ColorRed {
		t.Errorf("clamp low = %v, want red", c)
	}
	if c := tex.Sample(1.5, 0.99); c != ColorGreen {
		t.Errorf("clamp high = %v, want green", c)
	}
}

func TestTextureRepeatScale(t *testing.T) {
	// A 2x2 checker repeated 20 times alternates every 1/40 of the plane.
	tex := NewCheckerTexture(2, 2, 1, ColorWhite, ColorBlack)
	tex.RepeatU, tex.RepeatV = 20, 20
	a := tex.Sample(0.01, 0.01)
	b := tex.Sample(0.01+1.0/40, 0.01)
	if a == b {
		t.Errorf("repeat 20: neighbors both %v, want alternating", a)
	}
}

func TestTextureBilinearMidpoint(t *testing.T) {
	tex := NewTexture(2, 1)
	tex.SetPixel(0, 0, ColorBlack)
	tex.SetPixel(1, 0, ColorWhite)
	tex.WrapU, tex.WrapV = WrapClamp, WrapClamp
	tex.FilterMode = FilterBilinear
	c := tex.Sample(0.5, 0.5)
	if c.R < 120 || c.R > 135 {
		t.Errorf("bilinear midpoint = %v, want mid gray", c)
	}
}

func TestTextureFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(2, 1, color.RGBA{10, 20, 30, 255})
	tex := TextureFromImage(img)
	if tex.Width != 3 || tex.Height != 2 {
		t.Fatalf("size = %dx%d, want 3x2", tex.Width, tex.Height)
	}
	if c := tex.GetPixel(2, 1); c != RGB(10, 20, 30) {
		t.Errorf("GetPixel(2,1) = %v", c)
	}
}

func TestLoadTextureMissing(t *testing.T) {
	if _, err := LoadTexture("does-not-exist.png"); err == nil {
		t.Error("LoadTexture(missing) err = nil")
	}
}

func TestMultiplyColor(t *testing.T) {
	c := RGB(200, 100, 50)
	if got := MultiplyColor(c, 0.5); got != RGB(100, 50, 25) {
		t.Errorf("MultiplyColor(0.5) = %v", got)
	}
	if got := MultiplyColor(c, 2.0); got.R != 255 {
		t.Errorf("MultiplyColor(2.0).R = %d, want 255 (clamped)", got.R)
	}
}

func TestModulateColor(t *testing.T) {
	if got := ModulateColor(ColorWhite, ColorRed); got != ColorRed {
		t.Errorf("ModulateColor(white, red) = %v", got)
	}
	half := RGB(128, 128, 128)
	if got := ModulateColor(half, ColorWhite); got != half {
		t.Errorf("ModulateColor(half, white) = %v, want %v", got, half)
	}
}

func TestLerpColor(t *testing.T) {
	mid := lerpColor(ColorBlack, ColorWhite, 0.5)
	if mid != RGB(127, 127, 127) {
		t.Errorf("lerpColor midpoint = %v, want gray(127)", mid)
	}
	if lerpColor(ColorBlack, ColorWhite, 0) != ColorBlack || lerpColor(ColorBlack, ColorWhite, 1) != ColorWhite {
		t.Error("lerpColor endpoints wrong")
	}
}

func TestHSL(t *testing.T) {
	tests := []struct {
		h, s, l float64
		want    Color
	}{
		{0, 1, 0.5, ColorRed},
		{1.0 / 3, 1, 0.5, ColorGreen},
		{2.0 / 3, 1, 0.5, ColorBlue},
		{1, 1, 0.5, ColorRed}, // wraps
		{0.3, 0, 1, ColorWhite},
		{0.3, 1, 0, ColorBlack},
	}
	for _, tt := range tests {
		if got := HSL(tt.h, tt.s, tt.l); got != tt.want {
			t.Errorf("HSL(%v, %v, %v) = %v, want %v", tt.h, tt.s, tt.l, got, tt.want)
		}
	}
}
