package gui

import (
	"fmt"
	"math"
	"strconv"
)

// Slider binds a bounded numeric control to a getter/setter pair.
type Slider struct {
	Name string
	Min  float64
	Max  float64
	Step float64 // 0 means continuous
	Get  func() float64
	Set  func(float64)
}

// Value returns the bound property.
func (s *Slider) Value() float64 {
	return s.Get()
}

// SetValue clamps v into [Min, Max], snaps it to Step relative to Min and
// writes it through.
func (s *Slider) SetValue(v float64) {
	if math.IsNaN(v) {
		return
	}
	v = math.Max(s.Min, math.Min(s.Max, v))
	if s.Step > 0 {
		n := math.Round((v - s.Min) / s.Step)
		v = s.Min + n*s.Step
		v = math.Max(s.Min, math.Min(s.Max, v))
	}
	s.Set(v)
}

// Nudge moves the value by dir steps (or 1% of the range when continuous).
func (s *Slider) Nudge(dir int) {
	step := s.Step
	if step <= 0 {
		step = (s.Max - s.Min) / 100
	}
	s.SetValue(s.Get() + float64(dir)*step)
}

// String renders "name value" with as many decimals as the step needs.
func (s *Slider) String() string {
	return fmt.Sprintf("%s %s", s.Name, strconv.FormatFloat(s.Get(), 'f', s.decimals(), 64))
}

func (s *Slider) decimals() int {
	if s.Step <= 0 {
		return 2
	}
	d := 0
	for step := s.Step; step < 1 && d < 8; step *= 10 {
		d++
	}
	return d
}
