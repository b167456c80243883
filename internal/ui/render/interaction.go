package render

import (
	"image"

	tea "charm.land/bubbletea/v2"
	"github.com/idursun/splitview/internal/ui/layout"
)

// InteractionType is a set of the inputs a mouse region responds to.
type InteractionType int

const (
	InteractionClick InteractionType = 1 << iota
	InteractionScroll
	InteractionDrag
	InteractionHover
)

const wheelStep = 3

// InteractionOp is a mouse region in absolute cells.
type InteractionOp struct {
	Rect layout.Rectangle
	Msg  tea.Msg
	Type InteractionType
	Z    int
}

// ScrollDeltaCarrier is a scroll region message that wants the wheel delta.
type ScrollDeltaCarrier interface {
	SetDelta(delta int, horizontal bool) tea.Msg
}

// DragStartCarrier is a drag region message that wants the pointer
// position of the press.
type DragStartCarrier interface {
	SetDragStart(x, y int) tea.Msg
}

// ProcessMouseEvent finds the region under the pointer and returns its
// message. A left press prefers drag regions over click regions, motion
// only reaches hover regions while no button is held, and the wheel
// reaches scroll regions.
func (dl *DisplayContext) ProcessMouseEvent(msg tea.MouseMsg) (tea.Msg, bool) {
	regions := dl.InteractionsList()
	mouse := msg.Mouse()
	at := image.Pt(mouse.X, mouse.Y)

	switch msg.(type) {
	case tea.MouseClickMsg:
		if mouse.Button != tea.MouseLeft {
			return nil, false
		}
		if r, ok := hit(regions, InteractionDrag, at); ok {
			if carrier, ok := r.Msg.(DragStartCarrier); ok {
				return carrier.SetDragStart(mouse.X, mouse.Y), true
			}
			return r.Msg, true
		}
		if r, ok := hit(regions, InteractionClick, at); ok {
			return r.Msg, true
		}
	case tea.MouseMotionMsg:
		if mouse.Button != tea.MouseNone {
			return nil, false
		}
		if r, ok := hit(regions, InteractionHover, at); ok {
			return r.Msg, true
		}
	case tea.MouseWheelMsg:
		delta, horizontal := wheelDelta(mouse.Button)
		if delta == 0 {
			return nil, false
		}
		if r, ok := hit(regions, InteractionScroll, at); ok {
			if carrier, ok := r.Msg.(ScrollDeltaCarrier); ok {
				return carrier.SetDelta(delta, horizontal), true
			}
			if horizontal {
				return nil, true
			}
			return r.Msg, true
		}
	}
	return nil, false
}

// hit returns the first region in regions of kind that contains p.
func hit(regions []InteractionOp, kind InteractionType, p image.Point) (InteractionOp, bool) {
	for _, r := range regions {
		if r.Type&kind != 0 && p.In(r.Rect) {
			return r, true
		}
	}
	return InteractionOp{}, false
}

func wheelDelta(button tea.MouseButton) (delta int, horizontal bool) {
	switch button {
	case tea.MouseWheelUp:
		return -wheelStep, false
	case tea.MouseWheelDown:
		return wheelStep, false
	case tea.MouseWheelLeft:
		return -wheelStep, true
	case tea.MouseWheelRight:
		return wheelStep, true
	}
	return 0, false
}
