package render

import "github.com/taigrr/frustum/pkg/math3d"

// CameraHelper draws another camera's view volume as line segments.
// Update must be called after the watched camera changes.
type CameraHelper struct {
	Camera  *Camera
	Visible bool

	FrustumColor Color
	ConeColor    Color

	corners [8]math3d.Vec3
	apex    math3d.Vec3
}

// NewCameraHelper creates a visible helper for cam.
func NewCameraHelper(cam *Camera) *CameraHelper {
	h := &CameraHelper{
		Camera:       cam,
		Visible:      true,
		FrustumColor: Hex(0xffaa00),
		ConeColor:    Hex(0xff0000),
	}
	h.Update()
	return h
}

// Update re-reads the watched camera.
func (h *CameraHelper) Update() {
	h.corners = h.Camera.FrustumCorners()
	h.apex = h.Camera.Position()
}

// Segments returns the frustum edges followed by the four lines from the
// camera position to the near-plane corners. Orthographic cameras have no
// cone.
func (h *CameraHelper) Segments() [][2]math3d.Vec3 {
	segs := make([][2]math3d.Vec3, 0, len(cubeEdges)+4)
	for _, e := range cubeEdges {
		segs = append(segs, [2]math3d.Vec3{h.corners[e[0]], h.corners[e[1]]})
	}
	if h.Camera.Kind() == Perspective {
		for i := range 4 {
			segs = append(segs, [2]math3d.Vec3{h.apex, h.corners[i]})
		}
	}
	return segs
}

// DrawCameraHelper draws h if it is visible.
func (r *Rasterizer) DrawCameraHelper(h *CameraHelper) {
	if h == nil || !h.Visible {
		return
	}
	for i, s := range h.Segments() {
		c := h.FrustumColor
		if i >= len(cubeEdges) {
			c = h.ConeColor
		}
		r.DrawLine(s[0], s[1], c)
	}
}
