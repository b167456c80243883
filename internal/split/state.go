package split

import "math"

// DefaultFraction is the split point used when neither a stored nor an
// explicit fraction is given.
const DefaultFraction = 0.5

// Fraction is the committed divider position as a share of the split length
// allocated to primary. It only changes when a drag ends, on resize
// reconciliation, or by external assignment.
type Fraction struct {
	value *Value[float64]
}

// NewFraction creates a Fraction. A value loaded from store wins over f.
func NewFraction(f float64, store Store[float64]) *Fraction {
	v := NewValue(clampUnit(f), store)
	v.current = clampUnit(v.current)
	return &Fraction{value: v}
}

func (f *Fraction) Get() float64 { return f.value.Get() }

// Set stores x clamped into [0,1].
func (f *Fraction) Set(x float64) { f.value.Set(clampUnit(x)) }

func (f *Fraction) Subscribe(fn func(float64)) func() { return f.value.Subscribe(fn) }

// Hide records which side, if any, is hidden, plus one slot of history so a
// bare Toggle can undo the last change.
type Hide struct {
	value    *Value[Side]
	previous Side
}

// NewHide creates a Hide. A stored non-None side wins over side. When
// nothing ends up hidden, the first Toggle hides Secondary.
func NewHide(side Side, store Store[Side]) *Hide {
	v := NewValue(side, store)
	if v.current == None {
		v.current = side
	}
	h := &Hide{value: v}
	if v.current == None {
		h.previous = Secondary
	}
	return h
}

// Side returns the hidden side, or None when both sides are visible.
func (h *Hide) Side() Side { return h.value.Get() }

// Set hides side (None shows both). The replaced value becomes the target
// of the next Toggle. Setting the current value is a no-op.
func (h *Hide) Set(side Side) {
	old := h.value.Get()
	if h.value.Set(side) {
		h.previous = old
	}
}

func (h *Hide) Hide(side Side) { h.Set(side) }

func (h *Hide) Show() { h.Set(None) }

// Toggle re-applies the previous value, alternating between the last
// hidden side and both visible.
func (h *Hide) Toggle() { h.Set(h.previous) }

// ToggleSide hides side unless it is already the hidden side, in which case
// both sides are shown.
func (h *Hide) ToggleSide(side Side) {
	if h.value.Get() == side {
		h.Set(None)
		return
	}
	h.Set(side)
}

func (h *Hide) Subscribe(fn func(Side)) func() { return h.value.Subscribe(fn) }

func clampUnit(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	return math.Max(0, math.Min(1, f))
}
