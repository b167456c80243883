package layoutview

import (
	"github.com/idursun/splitview/internal/split"
	"github.com/idursun/splitview/internal/ui/common"
	"github.com/idursun/splitview/internal/ui/layout"
	"github.com/idursun/splitview/internal/ui/render"
)

// SlotContent is anything a view can place in a box.
type SlotContent interface {
	Render(dl *render.DisplayContext, box layout.Box)
	Visible() bool
}

// Slot sizes one child of a Stack along the stack's axis.
type Slot struct {
	Spec    layout.Spec
	Content SlotContent
}

func Fixed(size int, content SlotContent) Slot {
	return Slot{Spec: layout.Fixed(size), Content: content}
}

func Fill(weight int, content SlotContent) Slot {
	return Slot{Spec: layout.Fill(float64(weight)), Content: content}
}

// Stack lays out its visible slots one after another along Axis: left to
// right for a horizontal stack, top to bottom for a vertical one. Invisible
// slots give their space to the others.
type Stack struct {
	Axis  split.Axis
	Slots []Slot
}

// Column stacks slots top to bottom.
func Column(slots ...Slot) *Stack {
	return &Stack{Axis: split.Vertical, Slots: slots}
}

// Row stacks slots left to right.
func Row(slots ...Slot) *Stack {
	return &Stack{Axis: split.Horizontal, Slots: slots}
}

func (s *Stack) Render(dl *render.DisplayContext, box layout.Box) {
	var shown []Slot
	for _, slot := range s.Slots {
		if visible(slot.Content) {
			shown = append(shown, slot)
		}
	}
	if len(shown) == 0 {
		return
	}
	specs := make([]layout.Spec, len(shown))
	for i, slot := range shown {
		specs[i] = slot.Spec
	}
	var boxes []layout.Box
	if s.Axis.IsHorizontal() {
		boxes = box.H(specs...)
	} else {
		boxes = box.V(specs...)
	}
	for i, b := range boxes {
		if b.R.Empty() {
			continue
		}
		shown[i].Content.Render(dl, b)
	}
}

func (s *Stack) Visible() bool {
	for _, slot := range s.Slots {
		if visible(slot.Content) {
			return true
		}
	}
	return false
}

// ModelSlot renders a child model. When Hidden is set and reports true the
// slot is skipped.
type ModelSlot struct {
	Model  common.ImmediateModel
	Hidden func() bool
}

func Model(m common.ImmediateModel) *ModelSlot {
	return &ModelSlot{Model: m}
}

func (m *ModelSlot) Render(dl *render.DisplayContext, box layout.Box) {
	m.Model.ViewRect(dl, box)
}

func (m *ModelSlot) Visible() bool {
	if m == nil || m.Model == nil {
		return false
	}
	return m.Hidden == nil || !m.Hidden()
}

// Func adapts a plain render function to SlotContent. It is always visible.
type Func func(dl *render.DisplayContext, box layout.Box)

func (f Func) Render(dl *render.DisplayContext, box layout.Box) { f(dl, box) }

func (f Func) Visible() bool { return f != nil }
