package anim

import (
	"math"
	"testing"
)

func TestAxisDecays(t *testing.T) {
	a := NewAxis(60)
	a.Impulse(0.5)
	for range 600 {
		a.Update()
	}
	if math.Abs(a.Velocity) > 1e-3 {
		t.Errorf("Velocity after 10s = %v, want ~0", a.Velocity)
	}
	if a.Position <= 0 {
		t.Errorf("Position = %v, want > 0 after positive impulse", a.Position)
	}
}

func TestEaseReachesTarget(t *testing.T) {
	e := NewEase(60, 1)
	e.Target = 3
	for range 600 {
		e.Update()
	}
	if math.Abs(e.Value-3) > 1e-3 {
		t.Errorf("Value = %v, want 3", e.Value)
	}
	e.Target = 5
	e.Snap()
	if e.Value != 5 {
		t.Errorf("Snap: Value = %v, want 5", e.Value)
	}
}
