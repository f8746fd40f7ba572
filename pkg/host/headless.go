package host

import (
	"context"
	"fmt"
	"time"

	"fortio.org/log"
	"github.com/taigrr/frustum/internal/config"
	"github.com/taigrr/frustum/pkg/scene"
)

// RunHeadless renders cfg.Frames frames of cfg.Width x cfg.Height at
// cfg.FPS and saves the last one to cfg.Out. Scene time advances by
// exactly 1/FPS per frame so the output does not depend on machine load.
func RunHeadless(ctx context.Context, s scene.Scene, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	fb, _, err := NewFramebuffer(cfg)
	if err != nil {
		return err
	}
	surf := NewSurface(fb, func() (int, int) { return cfg.Width, cfg.Height })
	run := scene.NewRunner(s, surf, fb)

	d := time.Duration(float64(time.Second) / cfg.FPS)
	if d <= 0 {
		return fmt.Errorf("invalid headless fps: %v", cfg.FPS)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	for frame := 0; frame < cfg.Frames; {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if run.Step(float64(frame) / cfg.FPS) {
				log.LogVf("headless buffer sized to %dx%d", fb.Width, fb.Height)
			}
			frame++
		}
	}
	if err := fb.SavePNG(cfg.Out); err != nil {
		return err
	}
	log.Infof("Wrote %s: %s scene, %dx%d, %d frames", cfg.Out, s.Name(), fb.Width, fb.Height, cfg.Frames)
	return nil
}
