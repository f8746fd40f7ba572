// Package anim holds the time-driven motion used by the scenes: a bounded
// triangle-wave oscillator for bouncing objects and spring-damped axes for
// camera controls.
package anim

import (
	"math"

	"github.com/taigrr/frustum/pkg/math3d"
)

// Defaults for the bouncing planes of the orthographic scene.
const (
	DefaultSpeed     = 180.0
	DefaultPhaseStep = 300.0
	DefaultMinBound  = 20.0
)

// Oscillate maps t onto a triangle wave that ramps from 0 up to bound and
// back down, with period 2*bound. The result is always in [0, bound].
// Negative t is folded with a floored modulo, so the wave continues
// symmetrically before zero. A non-positive bound yields 0.
func Oscillate(t, bound float64) float64 {
	if !(bound > 0) || math.IsInf(bound, 0) || math.IsNaN(t) || math.IsInf(t, 0) {
		return 0
	}
	span := bound * 2
	wrapped := floorMod(t, span)
	if wrapped < bound {
		return wrapped
	}
	return span - wrapped
}

// floorMod returns x mod m in [0, m) for m > 0.
func floorMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	// r+m can round up to m for tiny negative r
	if r >= m {
		r = 0
	}
	return r
}

// Oscillator drives a set of indexed objects around a rectangle. Each index
// is shifted by PhaseStep so objects never move in lockstep.
type Oscillator struct {
	Speed     float64 // units per second along the wave
	PhaseStep float64 // wave offset added per object index
	MinBound  float64 // smallest travel distance per axis
}

// NewOscillator returns an oscillator with the default speed, phase step and
// minimum bound.
func NewOscillator() Oscillator {
	return Oscillator{
		Speed:     DefaultSpeed,
		PhaseStep: DefaultPhaseStep,
		MinBound:  DefaultMinBound,
	}
}

// Bound returns the travel distance along one axis for an object of size
// objectExtent inside a surface of size surfaceExtent. It never drops below
// MinBound, so objects keep moving on tiny surfaces.
func (o Oscillator) Bound(surfaceExtent, objectExtent float64) float64 {
	return math.Max(o.MinBound, surfaceExtent-objectExtent)
}

// Phase returns the wave parameter for object index at the given time.
func (o Oscillator) Phase(elapsed float64, index int) float64 {
	return elapsed*o.Speed + float64(index)*o.PhaseStep
}

// Position returns the offset of object index after elapsed seconds. Both
// axes share the same phase but reflect at their own bound.
func (o Oscillator) Position(elapsed float64, index int, boundAcross, boundDown float64) math3d.Vec2 {
	t := o.Phase(elapsed, index)
	return math3d.V2(Oscillate(t, boundAcross), Oscillate(t, boundDown))
}
