package host

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"fortio.org/log"
	"fortio.org/terminal/ansipixels"
	"github.com/taigrr/frustum/internal/config"
	"github.com/taigrr/frustum/pkg/scene"
)

// RunTerminal shows s in the terminal using half-block characters, so the
// render size is one pixel per column and two per row.
func RunTerminal(ctx context.Context, s scene.Scene, cfg config.Config) error {
	fb, customBG, err := NewFramebuffer(cfg)
	if err != nil {
		return err
	}
	ap := ansipixels.NewAnsiPixels(cfg.FPS)
	if err = ap.Open(); err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer func() {
		ap.ShowCursor()
		ap.MouseTrackingOff()
		ap.Out.Flush()
		ap.Restore()
	}()
	ap.SyncBackgroundColor()
	ap.MouseTrackingOn()
	ap.HideCursor()
	if !customBG {
		fb.BG = color.RGBA{ap.Background.R, ap.Background.G, ap.Background.B, 255}
	}

	surf := NewSurface(fb, func() (int, int) { return ap.W, ap.H * 2 })
	run := scene.NewRunner(s, surf, fb)
	hud := NewHUD(s.Name(), time.Now())

	// the runner picks up the new size on its next step
	ap.OnResize = func() error {
		log.LogVf("terminal resized to %dx%d", ap.W, ap.H)
		return nil
	}
	lastX, lastY := 0, 0
	ap.OnMouse = func() {
		w, h := float64(max(1, ap.W)), float64(max(1, ap.H))
		x := float64(ap.Mx) / w
		switch {
		case ap.MouseWheelUp():
			run.Wheel(x, 1)
		case ap.MouseWheelDown():
			run.Wheel(x, -1)
		case ap.LeftDrag():
			run.Drag(x, float64(ap.Mx-lastX)/w, float64(ap.My-lastY)/h)
		}
		lastX, lastY = ap.Mx, ap.My
	}

	start := time.Now()
	err = ap.FPSTicks(func() bool {
		if ctx.Err() != nil {
			return false
		}
		for _, b := range ap.Data {
			switch b {
			case 27, 3, 4: // Escape, Ctrl-C, Ctrl-D
				return false
			case '?':
				hud.Show = !hud.Show
			default:
				run.HandleKey(b)
			}
		}
		if run.Step(time.Since(start).Seconds()) {
			log.LogVf("framebuffer now %dx%d", fb.Width, fb.Height)
		}

		ap.StartSyncMode()
		ap.ClearScreen()
		if err := ap.ShowScaledImage(fb.ToImage()); err != nil {
			log.Errf("show image: %v", err)
			return false
		}
		hud.UpdateFPS(time.Now())
		hud.Draw(ap, s.Panel())
		ap.EndSyncMode()
		return true
	})
	if err != nil {
		return fmt.Errorf("main loop: %w", err)
	}
	return nil
}
