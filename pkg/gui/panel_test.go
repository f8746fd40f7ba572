package gui

import (
	"math"
	"strings"
	"sync"
	"testing"
)

func TestSliderClampAndSnap(t *testing.T) {
	var v float64
	s := &Slider{Name: "fov", Min: 1, Max: 180, Step: 1, Get: func() float64 { return v }, Set: func(x float64) { v = x }}
	tests := []struct {
		in, want float64
	}{
		{45, 45},
		{45.4, 45},
		{45.6, 46},
		{0, 1},
		{500, 180},
	}
	for _, tt := range tests {
		s.SetValue(tt.in)
		if v != tt.want {
			t.Errorf("SetValue(%v) -> %v, want %v", tt.in, v, tt.want)
		}
	}
	s.SetValue(math.NaN())
	if v != 180 {
		t.Errorf("NaN should be ignored, got %v", v)
	}
}

func TestSliderNudge(t *testing.T) {
	v := 0.5
	s := &Slider{Name: "near", Min: 0.1, Max: 50, Step: 0.1, Get: func() float64 { return v }, Set: func(x float64) { v = x }}
	s.Nudge(1)
	if math.Abs(v-0.6) > 1e-9 {
		t.Errorf("Nudge(1) = %v, want 0.6", v)
	}
	s.Nudge(-10)
	if math.Abs(v-0.1) > 1e-9 {
		t.Errorf("Nudge(-10) = %v, want 0.1 (clamped)", v)
	}
	if got := s.String(); got != "near 0.1" {
		t.Errorf("String() = %q, want %q", got, "near 0.1")
	}
}

func TestPanelSelectionAndChange(t *testing.T) {
	p := NewPanel()
	pl := &planes{near: 0.1, far: 100}
	fov := 45.0
	changes := 0
	p.OnChange = func() { changes++ }
	p.Add(&Slider{Name: "fov", Min: 1, Max: 180, Step: 1, Get: func() float64 { return fov }, Set: func(x float64) { fov = x }})
	p.AddMinMax(NewMinMax(pl, 0.1), "near", "far", 0.1, 50, 0.1)

	if p.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", p.Len())
	}
	if p.Selected().Name != "fov" {
		t.Errorf("initial selection = %s, want fov", p.Selected().Name)
	}
	p.Nudge(1)
	if fov != 46 {
		t.Errorf("fov = %v, want 46", fov)
	}
	p.Prev()
	if p.Selected().Name != "far" {
		t.Errorf("Prev() wrap = %s, want far", p.Selected().Name)
	}
	p.Next()
	p.Next()
	if p.Selected().Name != "near" {
		t.Errorf("selection = %s, want near", p.Selected().Name)
	}

	// far slider range tops out at 50, so the initial far of 100 is pulled in
	if !p.Set("far", 0.1) {
		t.Fatal("Set(far) = false")
	}
	if math.Abs(pl.far-0.2) > 1e-9 {
		t.Errorf("far = %v, want 0.2 (near + gap)", pl.far)
	}
	if p.Set("missing", 1) {
		t.Error("Set(missing) = true")
	}
	if changes != 2 {
		t.Errorf("OnChange called %d times, want 2", changes)
	}
	if s := p.String(); !strings.Contains(s, "[near 0.1]") {
		t.Errorf("String() = %q, want selected near in brackets", s)
	}
}

func TestPanelConcurrentEdits(t *testing.T) {
	p := NewPanel()
	pl := &planes{near: 1, far: 10}
	p.AddMinMax(NewMinMax(pl, 0.1), "near", "far", 0.1, 50, 0.1)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 200 {
				p.Set("near", float64((i*j)%50))
				p.Set("far", float64((i+j)%50))
			}
		}()
	}
	for range 200 {
		p.Do(func() {
			if pl.far-pl.near < 0.1-1e-9 {
				t.Errorf("observed partial edit: near=%v far=%v", pl.near, pl.far)
			}
		})
	}
	wg.Wait()
}
