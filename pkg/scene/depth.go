package scene

import (
	"github.com/taigrr/frustum/pkg/gui"
	"github.com/taigrr/frustum/pkg/math3d"
	"github.com/taigrr/frustum/pkg/models"
	"github.com/taigrr/frustum/pkg/render"
	"github.com/taigrr/frustum/pkg/viewport"
)

// DepthSpheres is the number of spheres in the receding row.
const DepthSpheres = 20

// Depth lines up spheres away from a camera with a tiny near plane so the
// depth buffer runs out of precision. Toggling logarithmic depth fixes it.
type Depth struct {
	cam      *render.Camera
	orbit    *render.OrbitControls
	planes   *gui.MinMax
	panel    *gui.Panel
	objects  []object
	logDepth bool
}

// NewDepth builds the ground and the sphere row.
func NewDepth(opts Options) *Depth {
	target := math3d.V3(0, 5, 0)
	cam := render.NewPerspectiveCamera(45, 2, 0.00001, 100)
	cam.SetPosition(math3d.V3(0, 10, 20))

	s := &Depth{
		cam:      cam,
		orbit:    render.NewOrbitControls(cam, target, opts.FPS),
		planes:   gui.NewMinMax(gui.PairFuncs{Get: cam.ClipPlanes, Set: cam.SetClipPlanes}, 0.1),
		panel:    gui.NewPanel(),
		logDepth: opts.LogDepth,
	}
	s.panel.OnChange = cam.UpdateProjectionMatrix
	s.panel.Add(&gui.Slider{Name: "fov", Min: 1, Max: 180, Get: cam.FOVDegrees, Set: cam.SetFOVDegrees})
	s.panel.Add(&gui.Slider{Name: "near", Min: 0.00001, Max: 50, Step: 0.00001, Get: s.planes.Min, Set: s.planes.SetMin})
	s.panel.Add(&gui.Slider{Name: "far", Min: 0.1, Max: 50, Step: 0.1, Get: s.planes.Max, Set: s.planes.SetMax})

	groundMesh, groundMat := ground()
	s.objects = append(s.objects, object{groundMesh, math3d.Identity(), groundMat})
	sphere := models.NewSphere(3, 32, 16)
	for i := range DepthSpheres {
		s.objects = append(s.objects, object{
			mesh:      sphere,
			transform: math3d.Translate(SpherePosition(i)),
			mat:       render.Material{Color: render.HSL(float64(i)*0.73, 1, 0.5)},
		})
	}
	return s
}

// SpherePosition returns the center of sphere i: radius 3, one unit left
// of and two units above the ground, spaced 2.2 radii apart along -Z.
func SpherePosition(i int) math3d.Vec3 {
	const radius = 3
	return math3d.V3(-radius-1, radius+2, float64(i)*radius*-2.2)
}

// Name implements Scene.
func (s *Depth) Name() string { return "depth" }

// Panel implements Scene.
func (s *Depth) Panel() *gui.Panel { return s.panel }

// Camera returns the scene camera.
func (s *Depth) Camera() *render.Camera { return s.cam }

// LogDepth reports whether logarithmic depth is on.
func (s *Depth) LogDepth() bool { return s.logDepth }

// Resize updates the camera aspect to the new buffer shape.
func (s *Depth) Resize(w, h int) {
	aspect, ok := viewport.Aspect(w, h)
	if !ok {
		return
	}
	s.panel.Do(func() {
		s.cam.SetAspectRatio(aspect)
		s.cam.UpdateProjectionMatrix()
	})
}

// Update advances the orbit controls.
func (s *Depth) Update(elapsed float64) {
	s.orbit.Update()
}

// Render implements Scene.
func (s *Depth) Render(fb *render.Framebuffer) {
	fb.Clear()
	r := render.NewRasterizer(s.cam, fb)
	r.LightDir = light
	r.LogarithmicDepth = s.logDepth
	s.panel.Do(r.Begin)
	for _, o := range s.objects {
		r.DrawMesh(o.mesh, o.transform, o.mat)
	}
}

// HandleKey: l toggles logarithmic depth; w a s d q e orbit the camera.
func (s *Depth) HandleKey(b byte) bool {
	if b == 'l' {
		s.logDepth = !s.logDepth
		return true
	}
	return orbitKey(s.orbit, b, 'a', 'd', 'w', 's', 'e', 'q')
}

// Drag orbits the camera.
func (s *Depth) Drag(x, dx, dy float64) { drag(s.orbit, dx, dy) }

// Wheel dollies the camera.
func (s *Depth) Wheel(x float64, dir int) { wheel(s.orbit, dir) }
