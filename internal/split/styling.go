package split

import "image/color"

// Default splitter measurements, in layout units.
const (
	DefaultInset              = 6
	DefaultVisibleThickness   = 4
	DefaultInvisibleThickness = 30
)

// DefaultColor is the color of the default splitter.
var DefaultColor color.Color = color.Gray{Y: 0x80}

// Styling describes the divider as far as layout is concerned. Only the
// thicknesses and HideSplitter affect geometry; Color and Inset are for the
// host's renderer.
type Styling struct {
	Color color.Color
	// Inset of the visible line from the ends of the divider.
	Inset float64
	// VisibleThickness is the spacing reserved between primary and secondary.
	VisibleThickness float64
	// InvisibleThickness is the width of the drag handle.
	InvisibleThickness float64
	// HideSplitter removes the divider along with a hidden side.
	HideSplitter bool

	previewHide *Value[bool]
}

// DefaultStyling returns the styling of the default splitter.
func DefaultStyling() *Styling {
	return &Styling{
		Color:              DefaultColor,
		Inset:              DefaultInset,
		VisibleThickness:   DefaultVisibleThickness,
		InvisibleThickness: DefaultInvisibleThickness,
	}
}

func (s *Styling) preview() *Value[bool] {
	if s.previewHide == nil {
		s.previewHide = NewValue[bool](false, nil)
	}
	return s.previewHide
}

// PreviewHide reports whether an in-progress drag would hide a side on release.
func (s *Styling) PreviewHide() bool { return s.preview().Get() }

func (s *Styling) SetPreviewHide(preview bool) { s.preview().Set(preview) }

// SubscribePreviewHide registers fn for changes of the preview flag.
func (s *Styling) SubscribePreviewHide(fn func(bool)) func() {
	return s.preview().Subscribe(fn)
}

// Reset copies every field of from into s, keeping s's subscribers.
func (s *Styling) Reset(from *Styling) {
	s.Color = from.Color
	s.Inset = from.Inset
	s.VisibleThickness = from.VisibleThickness
	s.InvisibleThickness = from.InvisibleThickness
	s.HideSplitter = from.HideSplitter
	s.SetPreviewHide(from.PreviewHide())
}

// HandleThickness is the drag handle width, never thinner than the visible line.
func (s *Styling) HandleThickness() float64 {
	if s.InvisibleThickness < s.VisibleThickness {
		return s.VisibleThickness
	}
	return s.InvisibleThickness
}

// Divider is anything that can sit between the two sides of a split. The
// core only measures it through Styling; drawing belongs to the host.
type Divider interface {
	Styling() *Styling
}

// Splitter is the default Divider.
type Splitter struct {
	styling *Styling
}

// NewSplitter returns a splitter with the given styling, or the default
// styling when nil.
func NewSplitter(styling *Styling) *Splitter {
	if styling == nil {
		styling = DefaultStyling()
	}
	return &Splitter{styling: styling}
}

func (s *Splitter) Styling() *Styling { return s.styling }

// Line is a splitter drawn as a line across the full breadth of the split.
// A nil color uses DefaultColor and a zero thickness uses 1.
func Line(c color.Color, thickness float64) *Splitter {
	if c == nil {
		c = DefaultColor
	}
	if thickness == 0 {
		thickness = 1
	}
	styling := DefaultStyling()
	styling.Color = c
	styling.Inset = 0
	styling.VisibleThickness = thickness
	return NewSplitter(styling)
}

// Invisible is a splitter that takes no space but can still be dragged.
func Invisible() *Splitter {
	s := Line(nil, 1)
	s.styling.VisibleThickness = 0
	return s
}
