package scene

import (
	"github.com/taigrr/frustum/pkg/gui"
	"github.com/taigrr/frustum/pkg/math3d"
	"github.com/taigrr/frustum/pkg/models"
	"github.com/taigrr/frustum/pkg/render"
	"github.com/taigrr/frustum/pkg/viewport"
)

// object is a mesh placed in the world.
type object struct {
	mesh      *models.Mesh
	transform math3d.Mat4
	mat       render.Material
}

// Split shows one scene through two cameras side by side. The right view
// also draws the left camera's frustum.
type Split struct {
	cam1, cam2   *render.Camera
	orbit1       *render.OrbitControls
	orbit2       *render.OrbitControls
	helper       *render.CameraHelper
	planes       *gui.MinMax
	panel        *gui.Panel
	objects      []object
	backgrounds  [2]render.Color
	lastAspects  [2]float64
	showHelperOn [2]bool
}

// NewSplit builds the ground, cube, sphere and optional prop.
func NewSplit(opts Options) *Split {
	target := math3d.V3(0, 5, 0)

	cam1 := render.NewPerspectiveCamera(45, 2, 0.1, 100)
	cam1.SetPosition(math3d.V3(0, 10, 20))
	cam2 := render.NewPerspectiveCamera(60, 2, 0.1, 500)
	cam2.SetPosition(math3d.V3(40, 10, 30))
	cam2.LookAt(target)

	s := &Split{
		cam1:         cam1,
		cam2:         cam2,
		orbit1:       render.NewOrbitControls(cam1, target, opts.FPS),
		orbit2:       render.NewOrbitControls(cam2, target, opts.FPS),
		helper:       render.NewCameraHelper(cam1),
		planes:       gui.NewMinMax(gui.PairFuncs{Get: cam1.ClipPlanes, Set: cam1.SetClipPlanes}, 0.1),
		panel:        gui.NewPanel(),
		backgrounds:  [2]render.Color{render.ColorBlack, render.Hex(0x000040)},
		showHelperOn: [2]bool{false, true},
	}
	s.panel.Add(&gui.Slider{Name: "fov", Min: 1, Max: 180, Get: cam1.FOVDegrees, Set: cam1.SetFOVDegrees})
	s.panel.AddMinMax(s.planes, "near", "far", 0.1, 50, 0.1)

	groundMesh, groundMat := ground()
	s.objects = append(s.objects,
		object{groundMesh, math3d.Identity(), groundMat},
		object{models.NewBox(4, 4, 4), math3d.Translate(math3d.V3(5, 2, 0)), render.Material{Color: render.Hex(0x88aacc)}},
		object{models.NewSphere(3, 32, 16), math3d.Translate(math3d.V3(-4, 5, 0)), render.Material{Color: render.Hex(0xccaa88)}},
	)
	if opts.Prop != nil {
		s.objects = append(s.objects, propObject(opts.Prop))
	}
	return s
}

// propObject fits a loaded model into a 4 unit box standing on the ground
// behind the cube and sphere.
func propObject(m *models.Mesh) object {
	m.FitTo(4)
	mat := render.Material{Color: render.ColorWhite}
	if pm := m.GetMaterial(0); pm != nil {
		mat.Color = render.RGB(
			uint8(pm.BaseColor[0]*255+0.5),
			uint8(pm.BaseColor[1]*255+0.5),
			uint8(pm.BaseColor[2]*255+0.5),
		)
		if pm.BaseMap != nil {
			mat.Texture = render.TextureFromImage(pm.BaseMap)
		}
	}
	return object{m, math3d.Translate(math3d.V3(0, m.Size().Y/2, -8)), mat}
}

// Name implements Scene.
func (s *Split) Name() string { return "split" }

// Panel implements Scene.
func (s *Split) Panel() *gui.Panel { return s.panel }

// Cameras returns the left and right cameras.
func (s *Split) Cameras() (*render.Camera, *render.Camera) { return s.cam1, s.cam2 }

// Helper returns the frustum helper of the left camera.
func (s *Split) Helper() *render.CameraHelper { return s.helper }

// Resize is a no-op: each view derives its aspect from its own rectangle
// every frame.
func (s *Split) Resize(w, h int) {}

// Update advances both orbit controls.
func (s *Split) Update(elapsed float64) {
	s.orbit1.Update()
	s.orbit2.Update()
}

// Views returns the scissor rectangles of the two halves of fb.
func (s *Split) Views(fb *render.Framebuffer) [2]viewport.Rect {
	canvas := fb.Bounds()
	halves := viewport.SplitHorizontal(canvas, 2)
	return [2]viewport.Rect{viewport.ScissorFor(canvas, halves[0]), viewport.ScissorFor(canvas, halves[1])}
}

// Render draws the left camera into the left half and the right camera,
// plus the left camera's helper, into the right half.
func (s *Split) Render(fb *render.Framebuffer) {
	views := s.Views(fb)
	cams := [2]*render.Camera{s.cam1, s.cam2}
	for i, rect := range views {
		aspect, ok := rect.Aspect()
		if !ok {
			continue
		}
		cam := cams[i]
		s.panel.Do(func() {
			cam.SetAspectRatio(aspect)
			cam.UpdateProjectionMatrix()
			if i == 0 {
				s.helper.Update()
			}
		})
		s.lastAspects[i] = aspect
		s.helper.Visible = s.showHelperOn[i]

		fb.ClearRect(rect, s.backgrounds[i])
		r := render.NewRasterizer(cam, fb)
		r.LightDir = light
		r.SetViewport(rect)
		r.SetScissor(rect)
		r.SetScissorTest(true)
		r.Begin()
		for _, o := range s.objects {
			r.DrawMesh(o.mesh, o.transform, o.mat)
		}
		r.DrawCameraHelper(s.helper)
	}
}

// LastAspects returns the aspect ratios used by the previous Render.
func (s *Split) LastAspects() [2]float64 { return s.lastAspects }

// HandleKey: w a s d q e orbit the left camera, i j k l u o the right one.
func (s *Split) HandleKey(b byte) bool {
	return orbitKey(s.orbit1, b, 'a', 'd', 'w', 's', 'e', 'q') ||
		orbitKey(s.orbit2, b, 'j', 'l', 'i', 'k', 'o', 'u')
}

func (s *Split) orbitAt(x float64) *render.OrbitControls {
	if x < 0.5 {
		return s.orbit1
	}
	return s.orbit2
}

// Drag orbits the camera of the half under the pointer.
func (s *Split) Drag(x, dx, dy float64) { drag(s.orbitAt(x), dx*2, dy) }

// Wheel dollies the camera of the half under the pointer.
func (s *Split) Wheel(x float64, dir int) { wheel(s.orbitAt(x), dir) }
