// Package host drives a scene on a display: the terminal (half-block
// pixels through ansipixels) or no display at all (a fixed number of
// frames written to a PNG). The desktop window host lives in host/window.
package host

import (
	"context"

	"github.com/taigrr/frustum/internal/config"
	"github.com/taigrr/frustum/pkg/render"
	"github.com/taigrr/frustum/pkg/scene"
)

// Run renders headless when cfg asks for it and in the terminal otherwise.
func Run(ctx context.Context, s scene.Scene, cfg config.Config) error {
	if cfg.Headless {
		return RunHeadless(ctx, s, cfg)
	}
	return RunTerminal(ctx, s, cfg)
}

// Surface pairs a framebuffer with the size it is shown at.
type Surface struct {
	fb   *render.Framebuffer
	size func() (int, int)
}

// NewSurface returns a surface backed by fb whose displayed size is
// reported by size.
func NewSurface(fb *render.Framebuffer, size func() (int, int)) *Surface {
	return &Surface{fb: fb, size: size}
}

func (s *Surface) LogicalSize() (int, int) { return s.size() }
func (s *Surface) PixelSize() (int, int)   { return s.fb.PixelSize() }
func (s *Surface) SetPixelSize(w, h int)   { s.fb.SetPixelSize(w, h) }

// NewFramebuffer creates the empty buffer every host starts from; the
// runner sizes it on the first frame. custom reports whether cfg set the
// background color.
func NewFramebuffer(cfg config.Config) (fb *render.Framebuffer, custom bool, err error) {
	fb = render.NewFramebuffer(0, 0)
	fb.SetDepthBits(cfg.DepthBits)
	bg, ok, err := config.ParseColor(cfg.Background)
	if err != nil {
		return nil, false, err
	}
	if ok {
		fb.BG = bg
	}
	return fb, ok, nil
}
