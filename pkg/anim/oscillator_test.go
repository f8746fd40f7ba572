package anim

import (
	"math"
	"testing"
)

func TestOscillateExamples(t *testing.T) {
	tests := []struct {
		name     string
		t, bound float64
		want     float64
	}{
		{"start", 0, 100, 0},
		{"rising", 50, 100, 50},
		{"reflection", 100, 100, 100},
		{"falling", 150, 100, 50},
		{"full period", 200, 100, 0},
		{"second period", 250, 100, 50},
		{"zero bound", 42, 0, 0},
		{"negative bound", 42, -5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Oscillate(tt.t, tt.bound); got != tt.want {
				t.Errorf("Oscillate(%v, %v) = %v, want %v", tt.t, tt.bound, got, tt.want)
			}
		})
	}
}

func TestOscillateStaysInBounds(t *testing.T) {
	bounds := []float64{0.5, 1, 20, 100, 1234.5}
	for _, b := range bounds {
		for i := range 5000 {
			tm := float64(i) * 0.37
			got := Oscillate(tm, b)
			if got < 0 || got > b {
				t.Fatalf("Oscillate(%v, %v) = %v, outside [0, %v]", tm, b, got, b)
			}
		}
	}
}

func TestOscillatePeriodic(t *testing.T) {
	const b = 100.0
	for i := range 400 {
		tm := float64(i)
		a := Oscillate(tm, b)
		p := Oscillate(tm+2*b, b)
		if a != p {
			t.Errorf("Oscillate(%v) = %v, Oscillate(%v) = %v, want equal", tm, a, tm+2*b, p)
		}
	}
}

func TestOscillateContinuousAtReflection(t *testing.T) {
	const b = 100.0
	const d = 1e-6
	left := Oscillate(b-d, b)
	right := Oscillate(b+d, b)
	if math.Abs(left-b) > 1e-5 || math.Abs(right-b) > 1e-5 {
		t.Errorf("around reflection: left=%v right=%v, want both near %v", left, right, b)
	}
	// and at the wrap back to zero
	low := Oscillate(2*b-d, b)
	high := Oscillate(2*b+d, b)
	if low > 1e-5 || high > 1e-5 {
		t.Errorf("around wrap: %v, %v, want both near 0", low, high)
	}
}

func TestOscillateNegativeTime(t *testing.T) {
	// Floored modulo mirrors the wave: -50 behaves like 150.
	if got := Oscillate(-50, 100); got != 50 {
		t.Errorf("Oscillate(-50, 100) = %v, want 50", got)
	}
	if got := Oscillate(-150, 100); got != 50 {
		t.Errorf("Oscillate(-150, 100) = %v, want 50", got)
	}
	if got := Oscillate(-1e-300, 100); got < 0 || got > 100 {
		t.Errorf("Oscillate(tiny negative) = %v, out of range", got)
	}
}

func TestOscillateNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := Oscillate(v, 10); got != 0 {
			t.Errorf("Oscillate(%v, 10) = %v, want 0", v, got)
		}
	}
}

func TestOscillatorBound(t *testing.T) {
	o := NewOscillator()
	tests := []struct {
		surface, object, want float64
	}{
		{300, 256, 44},
		{256, 256, 20},
		{100, 256, 20},
		{1000, 32, 968},
	}
	for _, tt := range tests {
		if got := o.Bound(tt.surface, tt.object); got != tt.want {
			t.Errorf("Bound(%v, %v) = %v, want %v", tt.surface, tt.object, got, tt.want)
		}
	}
}

func TestOscillatorPosition(t *testing.T) {
	o := Oscillator{Speed: 1, PhaseStep: 0, MinBound: 0}
	got := o.Position(150, 0, 100, 100)
	if got.X != 50 || got.Y != 50 {
		t.Errorf("Position(150) = %v, want (50, 50)", got)
	}

	// axes reflect independently
	got = o.Position(150, 0, 100, 40)
	// 150 mod 80 = 70 >= 40 -> 80 - 70 = 10
	if got.X != 50 || got.Y != 10 {
		t.Errorf("Position(150) with bounds (100,40) = %v, want (50, 10)", got)
	}
}

func TestOscillatorPhaseOffset(t *testing.T) {
	o := NewOscillator()
	p0 := o.Phase(1, 0)
	p2 := o.Phase(1, 2)
	if p2-p0 != 2*DefaultPhaseStep {
		t.Errorf("phase difference = %v, want %v", p2-p0, 2*DefaultPhaseStep)
	}
	a := o.Position(0, 0, 100, 100)
	b := o.Position(0, 1, 100, 100)
	if a == b {
		t.Errorf("objects 0 and 1 share position %v at t=0", a)
	}
}
