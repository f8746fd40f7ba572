// Package window shows a scene in a resizable desktop window using ebiten.
package window

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/taigrr/frustum/internal/config"
	"github.com/taigrr/frustum/pkg/host"
	"github.com/taigrr/frustum/pkg/render"
	"github.com/taigrr/frustum/pkg/scene"
)

// Run shows s in a resizable desktop window. Every cfg.Scale x
// cfg.Scale block of window pixels is one render pixel.
func Run(ctx context.Context, s scene.Scene, cfg config.Config) error {
	fb, _, err := host.NewFramebuffer(cfg)
	if err != nil {
		return err
	}
	g := newGame(ctx, s, fb, max(1, cfg.Scale))

	ebiten.SetWindowTitle("frustum: " + s.Name())
	ebiten.SetWindowSize(cfg.Width*g.scale, cfg.Height*g.scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.FPSInt())
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

type game struct {
	ctx   context.Context
	run   *scene.Runner
	fb    *render.Framebuffer
	hud   *host.HUD
	scale int
	start time.Time

	// render size derived from the window size in Layout
	w, h int

	img          *ebiten.Image
	chars        []rune
	dragging     bool
	lastX, lastY int
}

func newGame(ctx context.Context, s scene.Scene, fb *render.Framebuffer, scale int) *game {
	now := time.Now()
	g := &game{ctx: ctx, fb: fb, hud: host.NewHUD(s.Name(), now), scale: scale, start: now}
	g.run = scene.NewRunner(s, host.NewSurface(fb, func() (int, int) { return g.w, g.h }), fb)
	return g
}

func (g *game) Update() error {
	if g.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.run.HandleKey('\t')
	}
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		switch {
		case r == '?':
			g.hud.Show = !g.hud.Show
		case r < utf8.RuneSelf:
			g.run.HandleKey(byte(r))
		}
	}
	g.pointer()

	g.run.Step(time.Since(g.start).Seconds())
	g.hud.UpdateFPS(time.Now())
	return nil
}

// pointer turns left-button drags and wheel steps into orbit input.
func (g *game) pointer() {
	x, y := ebiten.CursorPosition()
	w, h := float64(max(1, g.w)), float64(max(1, g.h))
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.dragging {
			g.run.Drag(float64(x)/w, float64(x-g.lastX)/w, float64(y-g.lastY)/h)
		}
		g.dragging = true
	} else {
		g.dragging = false
	}
	g.lastX, g.lastY = x, y

	switch _, dy := ebiten.Wheel(); {
	case dy > 0:
		g.run.Wheel(float64(x)/w, 1)
	case dy < 0:
		g.run.Wheel(float64(x)/w, -1)
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	fb := g.fb
	if fb.Width == 0 || fb.Height == 0 {
		return
	}
	if g.img == nil || g.img.Bounds().Dx() != fb.Width || g.img.Bounds().Dy() != fb.Height {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(fb.Width, fb.Height)
	}
	g.img.WritePixels(fb.ToImage().Pix)
	screen.DrawImage(g.img, nil)
	if g.hud.Show {
		ebitenutil.DebugPrint(screen, g.hud.Status(g.run.Scene.Panel()))
	}
}

// Layout makes the screen one render pixel per scale window pixels. The
// runner resizes the framebuffer to match on its next step.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.w = max(1, outsideWidth/g.scale)
	g.h = max(1, outsideHeight/g.scale)
	return g.w, g.h
}
