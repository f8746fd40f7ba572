package render

import (
	"math"

	"github.com/taigrr/frustum/pkg/anim"
	"github.com/taigrr/frustum/pkg/math3d"
)

const pitchLimit = math.Pi/2 - 0.01

// OrbitControls swings a camera around a target point. Rotation input is
// applied as impulses that decay with a spring, and distance changes ease
// toward their new value.
type OrbitControls struct {
	Camera *Camera
	Target math3d.Vec3

	MinDistance, MaxDistance float64

	yaw, pitch anim.Axis
	distance   anim.Ease
}

// NewOrbitControls derives yaw, pitch and distance from the camera's
// current position relative to target, then points the camera at target.
func NewOrbitControls(cam *Camera, target math3d.Vec3, fps int) *OrbitControls {
	o := &OrbitControls{
		Camera:      cam,
		Target:      target,
		MinDistance: 1,
		MaxDistance: 500,
		yaw:         anim.NewAxis(fps),
		pitch:       anim.NewAxis(fps),
	}
	off := cam.Position().Sub(target)
	dist := off.Len()
	if dist == 0 {
		dist = 1
		off = math3d.V3(0, 0, 1)
	}
	o.yaw.Position = math.Atan2(off.X, off.Z)
	o.pitch.Position = math.Asin(off.Y / dist)
	o.distance = anim.NewEase(fps, dist)
	o.apply()
	return o
}

// Rotate adds angular impulses in radians per frame.
func (o *OrbitControls) Rotate(dYaw, dPitch float64) {
	o.yaw.Impulse(dYaw)
	o.pitch.Impulse(dPitch)
}

// Dolly multiplies the target distance by factor.
func (o *OrbitControls) Dolly(factor float64) {
	if !(factor > 0) {
		return
	}
	d := o.distance.Target * factor
	o.distance.Target = math.Max(o.MinDistance, math.Min(o.MaxDistance, d))
}

// Distance returns the current eased distance.
func (o *OrbitControls) Distance() float64 {
	return o.distance.Value
}

// Update advances the springs one frame and moves the camera.
func (o *OrbitControls) Update() {
	o.yaw.Update()
	o.pitch.Update()
	o.distance.Update()
	o.apply()
}

func (o *OrbitControls) apply() {
	if o.pitch.Position > pitchLimit {
		o.pitch.Position = pitchLimit
		o.pitch.Velocity = 0
	} else if o.pitch.Position < -pitchLimit {
		o.pitch.Position = -pitchLimit
		o.pitch.Velocity = 0
	}
	d := o.distance.Value
	cp := math.Cos(o.pitch.Position)
	off := math3d.V3(
		d*cp*math.Sin(o.yaw.Position),
		d*math.Sin(o.pitch.Position),
		d*cp*math.Cos(o.yaw.Position),
	)
	o.Camera.SetPosition(o.Target.Add(off))
	o.Camera.LookAt(o.Target)
}
