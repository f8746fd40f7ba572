package render

import (
	"math"
	"testing"

	"github.com/taigrr/frustum/pkg/math3d"
)

func TestCameraProjectionIsDeferred(t *testing.T) {
	cam := NewPerspectiveCamera(45, 2, 0.1, 100)
	before := cam.ProjectionMatrix()

	cam.SetAspectRatio(1)
	if !cam.Dirty() {
		t.Fatal("Dirty() = false after SetAspectRatio")
	}
	if cam.ProjectionMatrix() != before {
		t.Error("ProjectionMatrix changed before UpdateProjectionMatrix")
	}
	cam.UpdateProjectionMatrix()
	if cam.Dirty() {
		t.Error("Dirty() = true after UpdateProjectionMatrix")
	}
	if cam.ProjectionMatrix() == before {
		t.Error("ProjectionMatrix unchanged after update")
	}
}

func TestCameraRejectsBadAspect(t *testing.T) {
	cam := NewPerspectiveCamera(45, 2, 0.1, 100)
	for _, a := range []float64{0, -1, math.Inf(1), math.NaN()} {
		cam.SetAspectRatio(a)
		if got := cam.Aspect(); got != 2 {
			t.Errorf("SetAspectRatio(%v): Aspect() = %v, want 2", a, got)
		}
	}
}

func TestCameraFOVDegrees(t *testing.T) {
	cam := NewPerspectiveCamera(45, 2, 0.1, 100)
	if math.Abs(cam.FOVDegrees()-45) > 1e-9 {
		t.Errorf("FOVDegrees() = %v, want 45", cam.FOVDegrees())
	}
	cam.SetFOVDegrees(90)
	if math.Abs(cam.FOV()-math.Pi/2) > 1e-9 {
		t.Errorf("FOV() = %v, want pi/2", cam.FOV())
	}
}

func TestOrthographicCameraPixelSpace(t *testing.T) {
	cam := NewOrthographicCamera(0, 300, 0, 150, -1, 1)
	vp := cam.ViewProjection()
	if got := vp.MulVec3(math3d.V3(0, 0, 0)); !got.ApproxEqual(math3d.V3(-1, 1, 0), 1e-9) {
		t.Errorf("(0,0) -> %v, want top-left (-1,1,0)", got)
	}

	// resize: right/bottom follow the new pixel size
	cam.SetOrtho(0, 600, 0, 300)
	cam.UpdateProjectionMatrix()
	vp = cam.ViewProjection()
	if got := vp.MulVec3(math3d.V3(600, 300, 0)); !got.ApproxEqual(math3d.V3(1, -1, 0), 1e-9) {
		t.Errorf("(600,300) -> %v, want bottom-right (1,-1,0)", got)
	}
}

func TestOrthographicZoom(t *testing.T) {
	cam := NewOrthographicCamera(0, 300, 0, 150, -1, 1)
	cam.SetZoom(2)
	cam.UpdateProjectionMatrix()
	// zooming 2x around the center puts the old quarter point on the edge
	got := cam.ViewProjection().MulVec3(math3d.V3(75, 37.5, 0))
	if !got.ApproxEqual(math3d.V3(-1, 1, 0), 1e-9) {
		t.Errorf("zoomed quarter point -> %v, want (-1,1,0)", got)
	}
	cam.SetZoom(0)
	if cam.Zoom() != 2 {
		t.Errorf("SetZoom(0) accepted: %v", cam.Zoom())
	}
}

func TestCameraClipPlanes(t *testing.T) {
	cam := NewPerspectiveCamera(45, 2, 0.1, 100)
	cam.SetClipPlanes(1, 50)
	if n, f := cam.ClipPlanes(); n != 1 || f != 50 {
		t.Errorf("ClipPlanes() = %v, %v", n, f)
	}
}

func TestFrustumCorners(t *testing.T) {
	cam := NewPerspectiveCamera(90, 1, 1, 10)
	cam.SetPosition(math3d.V3(0, 0, 0))
	cam.LookAt(math3d.V3(0, 0, -1))
	cam.UpdateProjectionMatrix()
	c := cam.FrustumCorners()
	// fov 90, aspect 1: near half-size = 1, far half-size = 10
	if !c[0].ApproxEqual(math3d.V3(-1, -1, -1), 1e-6) {
		t.Errorf("near corner = %v, want (-1,-1,-1)", c[0])
	}
	if !c[6].ApproxEqual(math3d.V3(10, 10, -10), 1e-6) {
		t.Errorf("far corner = %v, want (10,10,-10)", c[6])
	}
}

func TestToViewer(t *testing.T) {
	p := NewPerspectiveCamera(45, 1, 0.1, 100)
	p.SetPosition(math3d.V3(0, 0, 5))
	if got := p.ToViewer(math3d.V3(0, 0, 0)); !got.ApproxEqual(math3d.V3(0, 0, 5), 1e-12) {
		t.Errorf("perspective ToViewer = %v", got)
	}
	o := NewOrthographicCamera(0, 10, 0, 10, -1, 1)
	if got := o.ToViewer(math3d.V3(3, 3, 0)); !got.ApproxEqual(math3d.V3(0, 0, 1), 1e-12) {
		t.Errorf("orthographic ToViewer = %v", got)
	}
}
