package render

import (
	"math"
	"sync"

	"github.com/taigrr/frustum/pkg/math3d"
)

// Projection selects the camera model.
type Projection int

const (
	Perspective Projection = iota
	Orthographic
)

func (p Projection) String() string {
	if p == Orthographic {
		return "orthographic"
	}
	return "perspective"
}

// Camera holds projection parameters and a look-at pose. Setters only mark
// the projection dirty; ProjectionMatrix keeps returning the previous
// matrix until UpdateProjectionMatrix is called. All methods are safe for
// concurrent use, so a control callback may edit parameters while a frame
// reads them.
type Camera struct {
	mu sync.RWMutex

	kind Projection

	// perspective
	fov    float64 // vertical, radians
	aspect float64

	// orthographic, in world units before zoom
	left, right, top, bottom float64
	zoom                     float64

	near, far float64

	position math3d.Vec3
	target   math3d.Vec3
	up       math3d.Vec3

	proj  math3d.Mat4
	dirty bool
}

// NewCamera creates a 60° perspective camera at (0, 0, 5) looking at the
// origin.
func NewCamera() *Camera {
	return NewPerspectiveCamera(60, 1, 0.1, 100)
}

// NewPerspectiveCamera creates a perspective camera. fovDeg is the vertical
// field of view in degrees.
func NewPerspectiveCamera(fovDeg, aspect, near, far float64) *Camera {
	c := &Camera{
		kind:     Perspective,
		fov:      fovDeg * math.Pi / 180,
		aspect:   aspect,
		near:     near,
		far:      far,
		zoom:     1,
		position: math3d.V3(0, 0, 5),
		up:       math3d.V3(0, 1, 0),
	}
	c.UpdateProjectionMatrix()
	return c
}

// NewOrthographicCamera creates a parallel-projection camera looking down
// -Z from the origin. top may be less than bottom for a y-down pixel space.
func NewOrthographicCamera(left, right, top, bottom, near, far float64) *Camera {
	c := &Camera{
		kind:   Orthographic,
		left:   left,
		right:  right,
		top:    top,
		bottom: bottom,
		near:   near,
		far:    far,
		zoom:   1,
		target: math3d.V3(0, 0, -1),
		up:     math3d.V3(0, 1, 0),
		aspect: 1,
	}
	c.UpdateProjectionMatrix()
	return c
}

// Kind returns the projection model.
func (c *Camera) Kind() Projection {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.kind
}

// SetAspectRatio sets width/height for perspective cameras. Non-finite or
// non-positive values are ignored.
func (c *Camera) SetAspectRatio(aspect float64) {
	if !(aspect > 0) || math.IsInf(aspect, 0) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.dirty = true
}

// Aspect returns the aspect ratio.
func (c *Camera) Aspect() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.aspect
}

// SetFOV sets the vertical field of view in radians.
func (c *Camera) SetFOV(fov float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.dirty = true
}

// FOV returns the vertical field of view in radians.
func (c *Camera) FOV() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fov
}

// SetFOVDegrees sets the vertical field of view in degrees.
func (c *Camera) SetFOVDegrees(deg float64) {
	c.SetFOV(deg * math.Pi / 180)
}

// FOVDegrees returns the vertical field of view in degrees.
func (c *Camera) FOVDegrees() float64 {
	return c.FOV() * 180 / math.Pi
}

// SetClipPlanes sets near and far together.
func (c *Camera) SetClipPlanes(near, far float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near, c.far = near, far
	c.dirty = true
}

// ClipPlanes returns near and far.
func (c *Camera) ClipPlanes() (near, far float64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.near, c.far
}

// SetOrtho sets the orthographic extents.
func (c *Camera) SetOrtho(left, right, top, bottom float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.left, c.right, c.top, c.bottom = left, right, top, bottom
	c.dirty = true
}

// Ortho returns the orthographic extents.
func (c *Camera) Ortho() (left, right, top, bottom float64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.left, c.right, c.top, c.bottom
}

// SetZoom scales orthographic extents around their center (and the field
// of view for perspective cameras). Zoom must be positive.
func (c *Camera) SetZoom(z float64) {
	if !(z > 0) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zoom = z
	c.dirty = true
}

// Zoom returns the zoom factor.
func (c *Camera) Zoom() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.zoom
}

// SetPosition moves the camera.
func (c *Camera) SetPosition(p math3d.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = p
}

// Position returns the camera position.
func (c *Camera) Position() math3d.Vec3 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.position
}

// LookAt points the camera at target.
func (c *Camera) LookAt(target math3d.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = target
}

// Target returns the point the camera looks at.
func (c *Camera) Target() math3d.Vec3 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.target
}

// Dirty reports whether parameters changed since the last
// UpdateProjectionMatrix.
func (c *Camera) Dirty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dirty
}

// UpdateProjectionMatrix rebuilds the projection from the current
// parameters.
func (c *Camera) UpdateProjectionMatrix() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.proj = c.buildProjection()
	c.dirty = false
}

func (c *Camera) buildProjection() math3d.Mat4 {
	if c.kind == Orthographic {
		cx := (c.left + c.right) / 2
		cy := (c.top + c.bottom) / 2
		dx := (c.right - c.left) / (2 * c.zoom)
		dy := (c.top - c.bottom) / (2 * c.zoom)
		return math3d.Orthographic(cx-dx, cx+dx, cy+dy, cy-dy, c.near, c.far)
	}
	fov := 2 * math.Atan(math.Tan(c.fov/2)/c.zoom)
	return math3d.Perspective(fov, c.aspect, c.near, c.far)
}

// ProjectionMatrix returns the matrix built by the last
// UpdateProjectionMatrix.
func (c *Camera) ProjectionMatrix() math3d.Mat4 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.proj
}

// ViewMatrix returns the world-to-camera transform.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return math3d.LookAt(c.position, c.target, c.up)
}

// ViewProjection returns ProjectionMatrix * ViewMatrix.
func (c *Camera) ViewProjection() math3d.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// Forward returns the unit viewing direction.
func (c *Camera) Forward() math3d.Vec3 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.target.Sub(c.position).Normalize()
}

// ToViewer returns the direction from p toward the viewer. For orthographic
// cameras every point sees the viewer along -Forward.
func (c *Camera) ToViewer(p math3d.Vec3) math3d.Vec3 {
	if c.Kind() == Orthographic {
		return c.Forward().Scale(-1)
	}
	return c.Position().Sub(p)
}

// FrustumCorners returns the eight world-space corners of the view volume:
// four on the near plane followed by the matching four on the far plane.
func (c *Camera) FrustumCorners() [8]math3d.Vec3 {
	inv := c.ViewProjection().Inverse()
	ndc := ndcCube()
	var out [8]math3d.Vec3
	for i, p := range ndc {
		out[i] = inv.MulVec3(p)
	}
	return out
}
