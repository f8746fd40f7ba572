package gui

import (
	"strings"
	"sync"
)

// Panel is an ordered list of sliders with a selection cursor. Edits and
// frame reads go through the same mutex so a frame never observes half of
// an edit.
type Panel struct {
	mu       sync.Mutex
	sliders  []*Slider
	selected int

	// OnChange runs after every edit, still under the panel lock.
	OnChange func()
}

// NewPanel creates an empty panel.
func NewPanel() *Panel {
	return &Panel{}
}

// Add appends a slider and returns it.
func (p *Panel) Add(s *Slider) *Slider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sliders = append(p.sliders, s)
	return s
}

// AddMinMax adds a "low" and "high" slider pair driven through m. Both
// sliders share the range [lo, hi] and step.
func (p *Panel) AddMinMax(m *MinMax, lowName, highName string, lo, hi, step float64) {
	p.Add(&Slider{Name: lowName, Min: lo, Max: hi, Step: step, Get: m.Min, Set: m.SetMin})
	p.Add(&Slider{Name: highName, Min: lo, Max: hi, Step: step, Get: m.Max, Set: m.SetMax})
}

// Len returns the number of sliders.
func (p *Panel) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.sliders)
}

// Next moves the selection forward, wrapping around.
func (p *Panel) Next() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.sliders) > 0 {
		p.selected = (p.selected + 1) % len(p.sliders)
	}
}

// Prev moves the selection backward, wrapping around.
func (p *Panel) Prev() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if n := len(p.sliders); n > 0 {
		p.selected = (p.selected - 1 + n) % n
	}
}

// Selected returns the selected slider, or nil for an empty panel.
func (p *Panel) Selected() *Slider {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.sliders) == 0 {
		return nil
	}
	return p.sliders[p.selected]
}

// Nudge moves the selected slider by dir steps.
func (p *Panel) Nudge(dir int) {
	p.edit(func(s *Slider) { s.Nudge(dir) })
}

// Set writes v to the named slider. It reports whether the slider exists.
func (p *Panel) Set(name string, v float64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range p.sliders {
		if s.Name == name {
			s.SetValue(v)
			if p.OnChange != nil {
				p.OnChange()
			}
			return true
		}
	}
	return false
}

// Do runs fn under the panel lock. Frame code reads the bound properties
// inside Do so it sees either all of an edit or none of it.
func (p *Panel) Do(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn()
}

// String renders every slider on one line, the selected one in brackets.
func (p *Panel) String() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	parts := make([]string, len(p.sliders))
	for i, s := range p.sliders {
		if i == p.selected {
			parts[i] = "[" + s.String() + "]"
		} else {
			parts[i] = " " + s.String() + " "
		}
	}
	return strings.Join(parts, " ")
}

func (p *Panel) edit(fn func(*Slider)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.sliders) == 0 {
		return
	}
	fn(p.sliders[p.selected])
	if p.OnChange != nil {
		p.OnChange()
	}
}
