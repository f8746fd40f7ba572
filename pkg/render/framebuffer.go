package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/taigrr/frustum/pkg/viewport"
)

// DefaultDepthBits matches the common 24-bit hardware depth buffer.
const DefaultDepthBits = 24

// Framebuffer holds color and depth for one frame. Depth is stored as
// fixed-point integers of DepthBits bits, so precision loss from extreme
// near/far ratios shows up the same way it does on a GPU.
type Framebuffer struct {
	Width, Height int
	Pixels        []Color
	Depth         []uint32
	BG            color.RGBA

	depthBits int
	depthMax  uint32
}

// NewFramebuffer allocates a framebuffer with a 24-bit depth buffer.
func NewFramebuffer(w, h int) *Framebuffer {
	fb := &Framebuffer{BG: color.RGBA{0, 0, 0, 255}}
	fb.SetDepthBits(DefaultDepthBits)
	fb.Resize(w, h)
	return fb
}

// SetDepthBits sets depth precision, clamped to [8, 32].
func (fb *Framebuffer) SetDepthBits(bits int) {
	bits = max(8, min(32, bits))
	fb.depthBits = bits
	fb.depthMax = uint32((uint64(1) << bits) - 1)
}

// DepthBits returns the depth precision in bits.
func (fb *Framebuffer) DepthBits() int {
	return fb.depthBits
}

// Resize reallocates both buffers. Contents are cleared.
func (fb *Framebuffer) Resize(w, h int) {
	w, h = max(0, w), max(0, h)
	fb.Width, fb.Height = w, h
	fb.Pixels = make([]Color, w*h)
	fb.Depth = make([]uint32, w*h)
	fb.Clear()
}

// PixelSize reports the buffer size; together with SetPixelSize it is the
// backing half of a viewport.Surface.
func (fb *Framebuffer) PixelSize() (int, int) {
	return fb.Width, fb.Height
}

// SetPixelSize is Resize under the viewport.Surface name.
func (fb *Framebuffer) SetPixelSize(w, h int) {
	fb.Resize(w, h)
}

// Bounds returns the whole buffer as a rectangle.
func (fb *Framebuffer) Bounds() viewport.Rect {
	return viewport.Rect{W: fb.Width, H: fb.Height}
}

// Clear fills the color buffer with BG and resets depth to the far value.
func (fb *Framebuffer) Clear() {
	bg := FromRGBA(fb.BG)
	for i := range fb.Pixels {
		fb.Pixels[i] = bg
		fb.Depth[i] = fb.depthMax
	}
}

// ClearRect clears only r (clipped to the buffer) to c and resets its depth.
func (fb *Framebuffer) ClearRect(r viewport.Rect, c Color) {
	r = viewport.ScissorFor(fb.Bounds(), r)
	for y := r.Y; y < r.Bottom(); y++ {
		row := y * fb.Width
		for x := r.X; x < r.Right(); x++ {
			fb.Pixels[row+x] = c
			fb.Depth[row+x] = fb.depthMax
		}
	}
}

// SetPixel writes a color without touching depth.
func (fb *Framebuffer) SetPixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the color at (x, y), or black outside the buffer.
func (fb *Framebuffer) GetPixel(x, y int) Color {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return ColorBlack
	}
	return fb.Pixels[y*fb.Width+x]
}

// QuantizeDepth converts a [0, 1] depth to the stored fixed-point value.
func (fb *Framebuffer) QuantizeDepth(d float64) uint32 {
	if d <= 0 {
		return 0
	}
	if d >= 1 {
		return fb.depthMax
	}
	return uint32(math.Round(d * float64(fb.depthMax)))
}

// DepthTest stores d at (x, y) and reports true if it is strictly nearer
// than what is already there.
func (fb *Framebuffer) DepthTest(x, y int, d float64) bool {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height || d < 0 || d > 1 {
		return false
	}
	q := fb.QuantizeDepth(d)
	i := y*fb.Width + x
	if q >= fb.Depth[i] {
		return false
	}
	fb.Depth[i] = q
	return true
}

// ToImage copies the color buffer into an RGBA image.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for i, c := range fb.Pixels {
		j := i * 4
		img.Pix[j+0] = c.R
		img.Pix[j+1] = c.G
		img.Pix[j+2] = c.B
		img.Pix[j+3] = 255
	}
	return img
}

// SavePNG writes the color buffer to path.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := png.Encode(f, fb.ToImage()); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
