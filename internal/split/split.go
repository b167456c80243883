// Package split implements a two-pane split layout: the geometry that turns
// a fractional split point and constraints into child rectangles, and the
// drag interaction that moves, hides and restores the sides.
//
// Everything here runs on the host's event loop. Nothing is safe for
// concurrent use.
package split

import (
	"go.uber.org/zap"
)

// Config wires a Split. Zero fields get defaults: horizontal axis, fraction
// 0.5, nothing hidden, the default splitter and a no-op logger.
type Config struct {
	Axis        *AxisState
	Fraction    *Fraction
	Hide        *Hide
	Constraints Constraints
	Divider     Divider
	// OnDrag receives the constrained live fraction on every drag move.
	OnDrag func(fraction float64)
	Logger *zap.Logger
}

// Split composes the state objects, the geometry and the drag machine of a
// single split container. The two children are opaque to it: the host lays
// them out in the rectangles returned by Layout.
type Split struct {
	axis        *AxisState
	fraction    *Fraction
	hide        *Hide
	constraints Constraints
	divider     Divider
	onDrag      func(float64)
	logger      *zap.Logger

	drag *DragMachine
	// bounds is the size of the last layout pass, used while dragging.
	bounds Size
	// measured is the resize baseline; nil until the first measurement.
	measured *Size
}

// New creates a Split from cfg.
func New(cfg Config) *Split {
	s := &Split{
		axis:        cfg.Axis,
		fraction:    cfg.Fraction,
		hide:        cfg.Hide,
		constraints: cfg.Constraints,
		divider:     cfg.Divider,
		onDrag:      cfg.OnDrag,
		logger:      cfg.Logger,
	}
	if s.axis == nil {
		s.axis = NewAxisState(Horizontal, nil)
	}
	if s.fraction == nil {
		s.fraction = NewFraction(DefaultFraction, nil)
	}
	if s.hide == nil {
		s.hide = NewHide(None, nil)
	}
	if s.divider == nil {
		s.divider = NewSplitter(nil)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	// Previewing a drag-to-hide with the divider still visible looks like a
	// jump, so the divider always goes with the side.
	if s.constraints.DragToHide() {
		s.divider.Styling().HideSplitter = true
	}
	s.drag = NewDragMachine(s.constraints)
	return s
}

func (s *Split) Axis() *AxisState         { return s.axis }
func (s *Split) Fraction() *Fraction      { return s.fraction }
func (s *Split) Hide() *Hide              { return s.hide }
func (s *Split) Constraints() Constraints { return s.constraints }
func (s *Split) Divider() Divider         { return s.divider }
func (s *Split) Styling() *Styling        { return s.divider.Styling() }

// Dragging reports whether a drag is in progress.
func (s *Split) Dragging() bool { return s.drag.Dragging() }

// CurrentFraction is the live fraction while dragging and the committed one otherwise.
func (s *Split) CurrentFraction() float64 {
	if s.drag.Dragging() {
		return s.drag.Live()
	}
	return s.fraction.Get()
}

// SideToHide returns the side an in-progress drag would hide on release.
func (s *Split) SideToHide() Side { return s.drag.SideToHide() }

func (s *Split) geometry(size Size) Geometry {
	styling := s.Styling()
	return Geometry{
		Size:            size,
		Axis:            s.axis.Get(),
		Fraction:        s.CurrentFraction(),
		Hidden:          s.hide.Side(),
		Previewing:      s.drag.SideToHide(),
		PreviewHide:     styling.PreviewHide(),
		HideSplitter:    styling.HideSplitter,
		Thickness:       styling.VisibleThickness,
		HandleThickness: styling.HandleThickness(),
		Constraints:     s.constraints,
	}
}

// Layout computes the child rectangles for size and remembers size as the
// drag bounds. It does not reconcile the fraction; call Resize for that.
func (s *Split) Layout(size Size) Layout {
	s.bounds = size
	return ComputeLayout(s.geometry(size))
}

// LiveLayout lays out the drag in progress as if no side were about to be
// hidden, so the host can show where the previewed side still sits.
func (s *Split) LiveLayout(size Size) Layout {
	g := s.geometry(size)
	g.Previewing = None
	g.PreviewHide = false
	return ComputeLayout(g)
}

// Draggable reports whether the divider currently accepts drags.
func (s *Split) Draggable() bool {
	return isDraggable(s.geometry(s.bounds))
}

// DragStart begins a drag at p, relative to the container. It returns false
// when the divider is not draggable or a drag is already in progress.
func (s *Split) DragStart(p Point) bool {
	if s.drag.Dragging() || !s.Draggable() {
		return false
	}
	fraction := s.fraction.Get()
	// Start from the edge the hidden side collapsed into rather than the
	// fraction it was hidden at.
	if hidden := s.hide.Side(); hidden != None {
		if hidden == Secondary {
			fraction = 1
		} else {
			fraction = 0
		}
		s.hide.Set(None)
		s.logger.Debug("unhid side to start drag", zap.Stringer("side", hidden))
	}
	s.drag.Begin(s.axis.Get().Along(p), fraction)
	return true
}

// DragMove moves the divider to follow p, relative to the container.
func (s *Split) DragMove(p Point) {
	if !s.drag.Dragging() {
		return
	}
	axis := s.axis.Get()
	live := s.drag.Move(axis.Along(p), axis.Length(s.bounds))
	s.Styling().SetPreviewHide(s.drag.SideToHide() != None || !s.Draggable())
	if s.onDrag != nil {
		s.onDrag(live)
	}
}

// DragEnd commits the drag: the live fraction becomes the fraction and the
// side the drag would hide, if any, becomes hidden.
func (s *Split) DragEnd() {
	if !s.drag.Dragging() {
		return
	}
	fraction, hide := s.drag.End()
	s.Styling().SetPreviewHide(false)
	s.hide.Set(hide)
	s.fraction.Set(fraction)
	s.logger.Debug("drag committed",
		zap.Float64("fraction", fraction),
		zap.Stringer("hidden", hide))
}

// Resize reconciles the fraction with a new container size. With a priority
// side the fraction changes so that side keeps its length. The first
// measurement only records the baseline. Empty sizes are ignored.
func (s *Split) Resize(size Size) {
	s.bounds = size
	axis := s.axis.Get()
	newLength := axis.Length(size)
	if newLength <= 0 {
		return
	}
	if s.constraints.Priority == None {
		return
	}
	if s.measured == nil {
		s.measured = &size
		return
	}
	oldLength := axis.Length(*s.measured)
	s.measured = &size
	if oldLength == newLength {
		return
	}
	fraction := PreservePriority(s.constraints, s.CurrentFraction(), oldLength, newLength)
	if s.drag.Dragging() {
		s.drag.Rebase(fraction)
	}
	s.fraction.Set(fraction)
	s.logger.Debug("resize reconciled",
		zap.Float64("old_length", oldLength),
		zap.Float64("new_length", newLength),
		zap.Float64("fraction", fraction),
		zap.Stringer("priority", s.constraints.Priority))
}

// Nudge moves the committed fraction by delta within the constraints. It is
// ignored while dragging.
func (s *Split) Nudge(delta float64) {
	if s.drag.Dragging() {
		return
	}
	s.fraction.Set(s.constraints.Clamp(s.fraction.Get() + delta))
}
