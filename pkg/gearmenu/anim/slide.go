// Package anim holds per-screen entrance animation state.
package anim

// SlideIn is an offset that starts off screen and decays linearly to zero.
type SlideIn struct {
	Start float64
	Step  float64
	value float64
}

func NewSlideIn(start, step float64) *SlideIn {
	return &SlideIn{Start: start, Step: step, value: start}
}

func (s *SlideIn) Value() float64 {
	return s.value
}

func (s *SlideIn) Done() bool {
	return s.value == 0
}

// Advance moves the offset one step toward zero. It never goes negative.
func (s *SlideIn) Advance() {
	s.value -= s.Step
	if s.value < 0 {
		s.value = 0
	}
}

func (s *SlideIn) Reset() {
	s.value = s.Start
}

// Track is the set of slide-ins belonging to one screen, keyed by name.
type Track struct {
	order   []string
	offsets map[string]*SlideIn
}

func NewTrack() *Track {
	return &Track{offsets: make(map[string]*SlideIn)}
}

// Add registers a slide-in under name, replacing any previous one.
func (t *Track) Add(name string, start, step float64) *SlideIn {
	s := NewSlideIn(start, step)
	if _, exists := t.offsets[name]; !exists {
		t.order = append(t.order, name)
	}
	t.offsets[name] = s
	return s
}

// Offset returns the current value of the named slide-in, or 0 if none exists.
func (t *Track) Offset(name string) float64 {
	if s, ok := t.offsets[name]; ok {
		return s.Value()
	}
	return 0
}

func (t *Track) Advance() {
	for _, name := range t.order {
		t.offsets[name].Advance()
	}
}

func (t *Track) Reset() {
	for _, name := range t.order {
		t.offsets[name].Reset()
	}
}

func (t *Track) Done() bool {
	for _, name := range t.order {
		if !t.offsets[name].Done() {
			return false
		}
	}
	return true
}
