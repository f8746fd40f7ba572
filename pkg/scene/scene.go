// Package scene implements the three camera demos and the frame loop that
// keeps them sized to their surface.
package scene

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/taigrr/frustum/pkg/gui"
	"github.com/taigrr/frustum/pkg/math3d"
	"github.com/taigrr/frustum/pkg/models"
	"github.com/taigrr/frustum/pkg/render"
	"github.com/taigrr/frustum/pkg/viewport"
)

// ErrUnknownScene is returned by New for a name not in Names.
var ErrUnknownScene = errors.New("unknown scene")

// Names lists the scenes New accepts.
var Names = []string{"ortho", "split", "depth"}

// Scene is one demo. Resize is called with the framebuffer size whenever
// the backing buffer changed; Update and Render run once per frame.
type Scene interface {
	Name() string
	Resize(w, h int)
	Update(elapsed float64)
	Render(fb *render.Framebuffer)
	Panel() *gui.Panel
	HandleKey(b byte) bool
}

// Dragger is implemented by scenes with pointer controlled cameras. x is
// the pointer position as a fraction of the surface width; dx and dy are
// movements as fractions of the surface size.
type Dragger interface {
	Drag(x, dx, dy float64)
	Wheel(x float64, dir int)
}

// Options configures New.
type Options struct {
	FPS int

	// Textures replace the generated plane textures of the ortho scene.
	Textures  []*render.Texture
	PlaneSize float64

	// Prop is an extra model placed in the split scene.
	Prop *models.Mesh

	LogDepth bool
}

// New creates the named scene.
func New(name string, opts Options) (Scene, error) {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	switch name {
	case "ortho":
		return NewOrtho(opts), nil
	case "split":
		return NewSplit(opts), nil
	case "depth":
		return NewDepth(opts), nil
	}
	return nil, fmt.Errorf("%q (want one of %v): %w", name, Names, ErrUnknownScene)
}

// IsName reports whether name is a known scene.
func IsName(name string) bool {
	return slices.Contains(Names, name)
}

// Runner drives one scene on one surface.
type Runner struct {
	Scene   Scene
	Surface viewport.Surface
	FB      *render.Framebuffer
}

// NewRunner creates a runner. If fb already has a size, the scene is sized
// to it right away.
func NewRunner(s Scene, surface viewport.Surface, fb *render.Framebuffer) *Runner {
	if w, h := fb.PixelSize(); w > 0 && h > 0 {
		s.Resize(w, h)
	}
	return &Runner{Scene: s, Surface: surface, FB: fb}
}

// Step renders one frame: sync the buffer to the surface, let the scene
// react to a size change, advance it to elapsed seconds and draw. It
// reports whether the buffer was resized.
func (r *Runner) Step(elapsed float64) bool {
	resized := viewport.Resize(r.Surface)
	if resized {
		r.Scene.Resize(r.FB.Width, r.FB.Height)
	}
	r.Scene.Update(elapsed)
	r.Scene.Render(r.FB)
	return resized
}

// HandleKey routes panel keys to the scene panel and everything else to the
// scene. It reports whether the key was used.
func (r *Runner) HandleKey(b byte) bool {
	if p := r.Scene.Panel(); p != nil && p.Len() > 0 {
		switch b {
		case '\t', ']':
			p.Next()
			return true
		case '[':
			p.Prev()
			return true
		case '+', '=':
			p.Nudge(1)
			return true
		case '-', '_':
			p.Nudge(-1)
			return true
		case '}':
			p.Nudge(10)
			return true
		case '{':
			p.Nudge(-10)
			return true
		}
	}
	return r.Scene.HandleKey(b)
}

// Drag forwards pointer drags to scenes that support them.
func (r *Runner) Drag(x, dx, dy float64) {
	if d, ok := r.Scene.(Dragger); ok {
		d.Drag(x, dx, dy)
	}
}

// Wheel forwards wheel steps to scenes that support them.
func (r *Runner) Wheel(x float64, dir int) {
	if d, ok := r.Scene.(Dragger); ok {
		d.Wheel(x, dir)
	}
}

// light matches a directional light at (0, 10, 0) aimed at (-5, 0, 0).
var light = math3d.V3(5, 10, 0).Normalize()

// ground builds the 40x40 checkered floor shared by the perspective scenes.
func ground() (*models.Mesh, render.Material) {
	const size = 40
	mesh := models.NewPlane(size, size)
	mesh.Transform(math3d.RotateX(-math.Pi / 2))
	tex := render.NewCheckerTexture(2, 2, 1, render.Hex(0xc0c0c0), render.Hex(0x808080))
	tex.RepeatU, tex.RepeatV = size/2, size/2
	return mesh, render.Material{Texture: tex}
}

// orbitKey maps six keys to yaw and pitch impulses and dolly steps.
func orbitKey(o *render.OrbitControls, b byte, left, right, up, down, in, out byte) bool {
	const impulse = 0.005
	switch b {
	case left:
		o.Rotate(-impulse, 0)
	case right:
		o.Rotate(impulse, 0)
	case up:
		o.Rotate(0, impulse)
	case down:
		o.Rotate(0, -impulse)
	case in:
		o.Dolly(0.8)
	case out:
		o.Dolly(1.25)
	default:
		return false
	}
	return true
}

// drag turns a pointer drag into orbit impulses. A full-width drag swings
// the camera about half a turn once the impulse has decayed.
func drag(o *render.OrbitControls, dx, dy float64) {
	o.Rotate(-dx*math.Pi/30, dy*math.Pi/30)
}

func wheel(o *render.OrbitControls, dir int) {
	if dir > 0 {
		o.Dolly(0.9)
	} else if dir < 0 {
		o.Dolly(1 / 0.9)
	}
}
