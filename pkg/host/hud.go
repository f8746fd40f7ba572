package host

import (
	"fmt"
	"time"

	"fortio.org/terminal/ansipixels"
	"fortio.org/terminal/ansipixels/tcolor"
	"github.com/taigrr/frustum/pkg/gui"
)

const helpLine = "tab/[ ] select  +/- adjust  {/} x10  ? hud  esc quit"

// HUD renders an overlay with the scene name, frame rate and control
// panel.
type HUD struct {
	Show bool

	scene     string
	fps       float64
	fpsFrames int
	fpsTime   time.Time
}

// NewHUD creates a visible HUD for the named scene.
func NewHUD(scene string, now time.Time) *HUD {
	return &HUD{Show: true, scene: scene, fpsTime: now}
}

// UpdateFPS counts one frame and refreshes the rate once a second.
func (h *HUD) UpdateFPS(now time.Time) {
	h.fpsFrames++
	elapsed := now.Sub(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = now
	}
}

// FPS returns the last measured frame rate.
func (h *HUD) FPS() float64 { return h.fps }

// Status is the plain text form of the overlay, used by the window host.
func (h *HUD) Status(panel *gui.Panel) string {
	s := fmt.Sprintf("%s  %.0f FPS", h.scene, h.fps)
	if panel != nil && panel.Len() > 0 {
		s += "\n" + panel.String()
	}
	return s + "\n" + helpLine
}

// Draw writes the overlay on the terminal's top and bottom rows.
func (h *HUD) Draw(ap *ansipixels.AnsiPixels, panel *gui.Panel) {
	if !h.Show {
		return
	}
	ap.WriteAt(0, 0, tcolor.Green.Foreground()+"%.0f FPS "+tcolor.Reset, h.fps)
	ap.WriteCentered(0, "%s", h.scene)
	ap.WriteRight(0, "%s? hud%s", tcolor.Yellow.Foreground(), tcolor.Reset)
	if panel != nil && panel.Len() > 0 {
		ap.WriteAt(0, ap.H-1, tcolor.Cyan.Foreground()+"%s"+tcolor.Reset, panel.String())
	}
}
