package scene

import (
	"math"

	"github.com/taigrr/frustum/pkg/render"
)

// petalHues are the flower colors used when no textures are given.
var petalHues = [6]float64{0.95, 0.08, 0.15, 0.55, 0.75, 0.85}

// NewPetalTexture draws a six-petal flower of the given hue on a dark
// green background.
func NewPetalTexture(size int, hue float64) *render.Texture {
	size = max(4, size)
	t := render.NewTexture(size, size)
	half := float64(size) / 2
	for y := range size {
		for x := range size {
			dx := (float64(x) + 0.5 - half) / half
			dy := (float64(y) + 0.5 - half) / half
			r := math.Hypot(dx, dy)
			theta := math.Atan2(dy, dx)
			edge := 0.55 + 0.4*math.Abs(math.Cos(3*theta))

			var c render.Color
			switch {
			case r < 0.18:
				c = render.HSL(0.14, 0.9, 0.55-r)
			case r < edge:
				c = render.HSL(hue, 0.8, 0.35+0.3*(1-r/edge))
			default:
				c = render.HSL(0.33, 0.45, 0.12+0.05*math.Sin(9*theta))
			}
			t.SetPixel(x, y, c)
		}
	}
	return t
}
