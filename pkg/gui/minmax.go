// Package gui binds user-editable controls to numeric properties. It has no
// widgets of its own; hosts map keys or clicks onto Panel and Slider calls.
package gui

import "math"

// Pair is two dependent numeric properties that are read and written
// together, such as a camera's near and far planes.
type Pair interface {
	Bounds() (low, high float64)
	SetBounds(low, high float64)
}

// PairFuncs adapts a getter and setter to Pair.
type PairFuncs struct {
	Get func() (low, high float64)
	Set func(low, high float64)
}

func (p PairFuncs) Bounds() (float64, float64) { return p.Get() }
func (p PairFuncs) SetBounds(low, high float64) { p.Set(low, high) }

// MinMax edits the two halves of a Pair independently while keeping
// high >= low + gap. Raising low pushes high up; lowering high below the
// gap is undone by re-applying the current low.
type MinMax struct {
	pair Pair
	gap  float64
}

// NewMinMax wraps p. A negative gap is treated as zero.
func NewMinMax(p Pair, minGap float64) *MinMax {
	return &MinMax{pair: p, gap: math.Max(0, minGap)}
}

// Gap returns the minimum distance kept between low and high.
func (m *MinMax) Gap() float64 { return m.gap }

// Min returns the low property.
func (m *MinMax) Min() float64 {
	low, _ := m.pair.Bounds()
	return low
}

// Max returns the high property.
func (m *MinMax) Max() float64 {
	_, high := m.pair.Bounds()
	return high
}

// SetMin sets low to v and raises high only if it would sit closer than the
// gap.
func (m *MinMax) SetMin(v float64) {
	_, high := m.pair.Bounds()
	m.pair.SetBounds(m.repair(v, high))
}

// SetMax sets high to v, then re-applies the current low so the gap holds
// even when v is too small.
func (m *MinMax) SetMax(v float64) {
	low, _ := m.pair.Bounds()
	m.pair.SetBounds(m.repair(low, v))
}

// repair returns the pair SetMin(low) would produce after high was written.
// Doing it in one step keeps each edit a single SetBounds call.
func (m *MinMax) repair(low, high float64) (float64, float64) {
	return low, math.Max(high, low+m.gap)
}
