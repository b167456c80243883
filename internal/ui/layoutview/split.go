package layoutview

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/idursun/splitview/internal/split"
	"github.com/idursun/splitview/internal/ui/layout"
	"github.com/idursun/splitview/internal/ui/render"
)

// DividerState is what a divider renderer needs to know beyond the styling.
type DividerState struct {
	Axis     split.Axis
	Hovered  bool
	Dragging bool
}

// DividerRenderer draws the divider of a split into its snapped box.
type DividerRenderer interface {
	RenderDivider(dl *render.DisplayContext, box layout.Box, styling *split.Styling, state DividerState, z int)
}

// LineDivider draws the divider as a single line centered in the divider box.
type LineDivider struct {
	// ActiveStyle is applied on top of the styling color while the divider
	// is hovered or dragged.
	ActiveStyle lipgloss.Style
}

func NewLineDivider() *LineDivider {
	return &LineDivider{ActiveStyle: lipgloss.NewStyle().Bold(true)}
}

func (d *LineDivider) RenderDivider(dl *render.DisplayContext, box layout.Box, styling *split.Styling, state DividerState, z int) {
	// A divider that goes with a hidden side disappears while the drag previews it.
	if styling.HideSplitter && styling.PreviewHide() {
		return
	}
	style := lipgloss.NewStyle().Foreground(styling.Color)
	if state.Hovered || state.Dragging {
		style = d.ActiveStyle.Foreground(styling.Color)
	}
	inset := int(styling.Inset)
	r := box.R
	ch := '│'
	if state.Axis.IsHorizontal() {
		center := r.Min.X + r.Dx()/2
		r = layout.Rect(center, r.Min.Y+inset, 1, r.Dy()-2*inset)
	} else {
		ch = '─'
		center := r.Min.Y + r.Dy()/2
		r = layout.Rect(r.Min.X+inset, center, r.Dx()-2*inset, 1)
	}
	dl.AddFill(r, ch, style, z)
}

// SplitView renders a split.Split into a box: the two children go into the
// snapped primary and secondary boxes and the divider is drawn between them.
type SplitView struct {
	Split     *split.Split
	Primary   SlotContent
	Secondary SlotContent
	Divider   DividerRenderer
	// Z is the layer of the divider and its handle.
	Z int

	lastBox    layout.Box
	hasLastBox bool
	hovered    bool
}

func NewSplitView(s *split.Split, primary, secondary SlotContent) *SplitView {
	return &SplitView{
		Split:     s,
		Primary:   primary,
		Secondary: secondary,
		Divider:   NewLineDivider(),
		Z:         1,
	}
}

// Render lays out and renders the split. A change of the box size is
// reported to the split before layout so a priority side keeps its length.
func (s *SplitView) Render(dl *render.DisplayContext, box layout.Box) {
	if s.Split == nil {
		s.Split = split.New(split.Config{})
	}
	if !s.hasLastBox || s.lastBox.R.Size() != box.R.Size() {
		s.Split.Resize(layout.SizeOf(box))
	}
	s.lastBox = box
	s.hasLastBox = true

	l := s.Split.Layout(layout.SizeOf(box))
	boxes := layout.Snap(box, l)

	if !l.PrimaryHidden && visible(s.Primary) && !boxes.Primary.R.Empty() {
		s.Primary.Render(dl, boxes.Primary)
	}
	if !l.SecondaryHidden && visible(s.Secondary) && !boxes.Secondary.R.Empty() {
		s.Secondary.Render(dl, boxes.Secondary)
	}

	// The previewed side is collapsed in l, so dim the area it still covers
	// at the live fraction.
	if side := s.Split.SideToHide(); side != split.None {
		live := layout.Snap(box, s.Split.LiveLayout(layout.SizeOf(box)))
		target := live.Primary
		if side == split.Secondary {
			target = live.Secondary
		}
		if !target.R.Empty() {
			dl.AddDim(target.R, s.Z)
		}
	}

	if l.Spacing > 0 && !boxes.Divider.R.Empty() && s.Divider != nil {
		s.Divider.RenderDivider(dl, boxes.Divider, s.Split.Styling(), DividerState{
			Axis:     s.Split.Axis().Get(),
			Hovered:  s.hovered,
			Dragging: s.Split.Dragging(),
		}, s.Z)
	}

	if l.Draggable && !boxes.Handle.R.Empty() {
		dl.AddInteraction(boxes.Handle.R, SplitDragMsg{View: s}, render.InteractionDrag, s.Z)
		dl.AddInteraction(boxes.Handle.R, SplitHoverMsg{View: s}, render.InteractionHover, s.Z)
	}
}

// Visible returns true if any child is visible.
func (s *SplitView) Visible() bool {
	return visible(s.Primary) || visible(s.Secondary)
}

// Box is the box of the last render.
func (s *SplitView) Box() (layout.Box, bool) {
	return s.lastBox, s.hasLastBox
}

func (s *SplitView) Hovered() bool { return s.hovered }

func (s *SplitView) SetHovered(hovered bool) { s.hovered = hovered }

// DragStart begins a drag at the absolute cell (x, y).
func (s *SplitView) DragStart(x, y int) bool {
	if s == nil || s.Split == nil || !s.hasLastBox {
		return false
	}
	return s.Split.DragStart(layout.Local(s.lastBox, x, y))
}

// DragTo moves an in-progress drag to the absolute cell (x, y).
func (s *SplitView) DragTo(x, y int) bool {
	if s == nil || s.Split == nil || !s.hasLastBox || !s.Split.Dragging() {
		return false
	}
	old := s.Split.CurrentFraction()
	s.Split.DragMove(layout.Local(s.lastBox, x, y))
	return s.Split.CurrentFraction() != old
}

// DragEnd commits an in-progress drag.
func (s *SplitView) DragEnd() {
	if s == nil || s.Split == nil {
		return
	}
	s.Split.DragEnd()
}

// SplitDragMsg is sent when a split handle drag starts.
type SplitDragMsg struct {
	View *SplitView
	X    int
	Y    int
}

// SetDragStart implements render.DragStartCarrier.
func (m SplitDragMsg) SetDragStart(x, y int) tea.Msg {
	m.X = x
	m.Y = y
	return m
}

// SplitHoverMsg is sent when the pointer moves over a split handle.
type SplitHoverMsg struct {
	View *SplitView
}

func visible(c SlotContent) bool {
	return c != nil && c.Visible()
}
