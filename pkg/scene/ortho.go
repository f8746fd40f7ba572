package scene

import (
	"github.com/taigrr/frustum/pkg/anim"
	"github.com/taigrr/frustum/pkg/gui"
	"github.com/taigrr/frustum/pkg/math3d"
	"github.com/taigrr/frustum/pkg/models"
	"github.com/taigrr/frustum/pkg/render"
)

const orthoPlanes = 6

// Ortho bounces textured squares around a pixel-space orthographic camera
// whose origin is the top-left corner of the surface.
type Ortho struct {
	cam   *render.Camera
	osc   anim.Oscillator
	size  float64
	plane *models.Mesh
	mats  []render.Material
	panel *gui.Panel

	w, h int

	zoom    anim.Ease
	paused  bool
	clock   float64 // animation time, frozen while paused
	lastRaw float64
}

// NewOrtho creates the scene at the default 300x150 canvas size.
func NewOrtho(opts Options) *Ortho {
	size := opts.PlaneSize
	if !(size > 0) {
		size = 32
	}
	s := &Ortho{
		cam:   render.NewOrthographicCamera(0, 300, 0, 150, -1, 1),
		osc:   anim.NewOscillator(),
		size:  size,
		plane: models.NewPlane(size, size),
		panel: gui.NewPanel(),
		w:     300,
		h:     150,
		zoom:  anim.NewEase(opts.FPS, 1),
	}
	for i := range orthoPlanes {
		var tex *render.Texture
		if len(opts.Textures) > 0 {
			tex = opts.Textures[i%len(opts.Textures)]
		} else {
			tex = NewPetalTexture(64, petalHues[i])
		}
		tex.FilterMode = render.FilterNearest
		s.mats = append(s.mats, render.Material{Texture: tex, Unlit: true})
	}
	s.panel.Add(&gui.Slider{Name: "speed", Min: 0, Max: 1000, Step: 10, Get: s.speed, Set: s.setSpeed})
	s.panel.Add(&gui.Slider{Name: "zoom", Min: 0.25, Max: 4, Step: 0.25, Get: s.zoomTarget, Set: s.setZoom})
	return s
}

func (s *Ortho) speed() float64      { return s.osc.Speed }
func (s *Ortho) setSpeed(v float64)  { s.osc.Speed = v }
func (s *Ortho) zoomTarget() float64 { return s.zoom.Target }
func (s *Ortho) setZoom(v float64)   { s.zoom.Target = v }

// Name implements Scene.
func (s *Ortho) Name() string { return "ortho" }

// Panel implements Scene.
func (s *Ortho) Panel() *gui.Panel { return s.panel }

// Camera returns the orthographic camera.
func (s *Ortho) Camera() *render.Camera { return s.cam }

// Resize maps one world unit to one pixel: right and bottom follow the
// buffer size.
func (s *Ortho) Resize(w, h int) {
	s.w, s.h = w, h
	s.cam.SetOrtho(0, float64(w), 0, float64(h))
	s.cam.UpdateProjectionMatrix()
}

// Update advances the animation clock unless paused and eases the zoom.
func (s *Ortho) Update(elapsed float64) {
	dt := elapsed - s.lastRaw
	s.lastRaw = elapsed
	if !s.paused && dt > 0 {
		s.clock += dt
	}
	if z := s.zoom.Update(); z != s.cam.Zoom() {
		s.cam.SetZoom(z)
		s.cam.UpdateProjectionMatrix()
	}
}

// PlaneOrigins returns the top-left corner of every plane at the current
// animation time.
func (s *Ortho) PlaneOrigins() []math3d.Vec2 {
	var out []math3d.Vec2
	s.panel.Do(func() {
		across := s.osc.Bound(float64(s.w), s.size)
		down := s.osc.Bound(float64(s.h), s.size)
		out = make([]math3d.Vec2, orthoPlanes)
		for i := range out {
			out[i] = s.osc.Position(s.clock, i, across, down)
		}
	})
	return out
}

// Render implements Scene.
func (s *Ortho) Render(fb *render.Framebuffer) {
	fb.Clear()
	r := render.NewRasterizer(s.cam, fb)
	r.Begin()
	half := s.size / 2
	for i, p := range s.PlaneOrigins() {
		// the plane's top-left corner sits on the oscillator point
		m := math3d.Translate(math3d.V3(p.X+half, p.Y+half, 0))
		r.DrawMesh(s.plane, m, s.mats[i])
	}
}

// HandleKey: space pauses, z and x zoom in and out.
func (s *Ortho) HandleKey(b byte) bool {
	switch b {
	case ' ':
		s.paused = !s.paused
	case 'z':
		s.panel.Set("zoom", s.zoom.Target*2)
	case 'x':
		s.panel.Set("zoom", s.zoom.Target/2)
	case 'r':
		s.panel.Set("zoom", 1)
		s.clock = 0
	default:
		return false
	}
	return true
}
