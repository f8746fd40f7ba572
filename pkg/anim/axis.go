package anim

import "github.com/charmbracelet/harmonica"

// Axis tracks position and velocity for one degree of freedom with spring
// decay of the velocity.
type Axis struct {
	Position  float64
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64 // spring velocity of Velocity itself
}

// NewAxis creates an axis whose velocity settles to 0 over roughly a
// quarter second at the given frame rate.
func NewAxis(fps int) Axis {
	if fps <= 0 {
		fps = 60
	}
	return Axis{
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Impulse adds to the current velocity.
func (a *Axis) Impulse(v float64) {
	a.Velocity += v
}

// Update applies velocity to position and decays velocity toward 0.
func (a *Axis) Update() {
	a.Position += a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

// Settled reports whether the axis has effectively stopped.
func (a *Axis) Settled() bool {
	return abs(a.Velocity) < 1e-6 && abs(a.velAccel) < 1e-6
}

// Ease chases a target value with a critically damped spring. Scenes use it
// to glide zoom changes instead of jumping.
type Ease struct {
	Value  float64
	Target float64
	vel    float64
	spring harmonica.Spring
}

// NewEase creates an Ease resting at v.
func NewEase(fps int, v float64) Ease {
	if fps <= 0 {
		fps = 60
	}
	return Ease{
		Value:  v,
		Target: v,
		spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
	}
}

// Update advances one frame and returns the new value.
func (e *Ease) Update() float64 {
	e.Value, e.vel = e.spring.Update(e.Value, e.vel, e.Target)
	return e.Value
}

// Snap jumps straight to the target.
func (e *Ease) Snap() {
	e.Value = e.Target
	e.vel = 0
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
