package split

// DragState is the state of a DragMachine.
type DragState int

const (
	Idle DragState = iota
	Dragging
)

func (s DragState) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// DragMachine turns a stream of pointer positions along the split axis into
// a constrained live fraction. Every drag that starts is committed by End;
// there is no cancel. Positions must be fed in the order they were received
// because each move is applied relative to the previous one.
type DragMachine struct {
	constraints Constraints
	state       DragState

	// live is the constrained fraction shown during the drag.
	live float64
	// full is the unconstrained pointer fraction, used for drag-to-hide.
	full float64

	origin      float64
	previous    float64
	hasPrevious bool
}

// NewDragMachine returns an idle machine using c.
func NewDragMachine(c Constraints) *DragMachine {
	return &DragMachine{constraints: c}
}

func (m *DragMachine) State() DragState { return m.state }

func (m *DragMachine) Dragging() bool { return m.state == Dragging }

// Live returns the constrained fraction of the drag in progress.
func (m *DragMachine) Live() float64 { return m.live }

// Full returns the unconstrained fraction of the drag in progress.
func (m *DragMachine) Full() float64 { return m.full }

// Begin starts a drag at pointer with the divider at fraction.
func (m *DragMachine) Begin(pointer, fraction float64) {
	fraction = clampUnit(fraction)
	m.state = Dragging
	m.live = fraction
	m.full = fraction
	m.origin = pointer
	m.hasPrevious = false
}

// Move applies the pointer movement since the previous event to the split
// of the given length and returns the new live fraction. The delta is added
// to the unconstrained location, not the clamped one. Moves while idle are
// ignored.
func (m *DragMachine) Move(pointer, length float64) float64 {
	if m.state != Dragging {
		return m.live
	}
	last := m.origin
	if m.hasPrevious {
		last = m.previous
	}
	m.previous = pointer
	m.hasPrevious = true

	if length <= 0 {
		m.full = 0
		m.live = m.constraints.Clamp(0)
		return m.live
	}
	location := m.full*length + (pointer - last)
	if location < 0 {
		location = 0
	}
	if location > length {
		location = length
	}
	m.full = location / length
	m.live = m.constraints.Clamp(m.full)
	return m.live
}

// Rebase moves the drag in progress to fraction without losing the pointer
// history, so the next move continues from there.
func (m *DragMachine) Rebase(fraction float64) {
	if m.state != Dragging {
		return
	}
	m.full = clampUnit(fraction)
	m.live = m.constraints.Clamp(m.full)
}

// SideToHide returns the side the drag in progress would hide on release.
func (m *DragMachine) SideToHide() Side {
	if m.state != Dragging {
		return None
	}
	return m.constraints.SideToHide(m.full)
}

// End finishes the drag and returns the fraction and hide state to commit.
func (m *DragMachine) End() (fraction float64, hide Side) {
	hide = m.SideToHide()
	m.state = Idle
	m.hasPrevious = false
	m.full = m.live
	return m.live, hide
}
