package split

import "math"

// Size is the measured size of a split container.
type Size struct {
	Width, Height float64
}

// Point is a position relative to the container's top-left corner.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle relative to the container.
type Rect struct {
	X, Y, Width, Height float64
}

func (r Rect) Min() Point { return Point{X: r.X, Y: r.Y} }
func (r Rect) Max() Point { return Point{X: r.X + r.Width, Y: r.Y + r.Height} }
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p lies inside r. The far edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Geometry is everything ComputeLayout needs for one layout pass.
type Geometry struct {
	Size     Size
	Axis     Axis
	Fraction float64
	// Hidden is the committed hide state.
	Hidden Side
	// Previewing is the side an in-progress drag would hide on release.
	Previewing Side
	// PreviewHide is the styling's preview flag.
	PreviewHide bool
	// HideSplitter removes the divider spacing while a side is hidden.
	HideSplitter    bool
	Thickness       float64
	HandleThickness float64
	Constraints     Constraints
}

// Layout is the result of a layout pass.
type Layout struct {
	Primary   Rect
	Secondary Rect
	// Divider is the visible divider area between the sides.
	Divider Rect
	// Handle is the drag hit area, centered on the divider.
	Handle        Rect
	DividerCenter Point
	// Spacing is the divider thickness actually reserved between the sides.
	Spacing float64

	PrimaryHidden   bool
	SecondaryHidden bool
	Draggable       bool
}

// ComputeLayout maps a container size and split state to child rectangles.
// It is a pure function. Minimum lengths are always honoured even when that
// makes the sides overflow the container.
func ComputeLayout(g Geometry) Layout {
	width := math.Max(0, g.Size.Width)
	height := math.Max(0, g.Size.Height)
	size := Size{Width: width, Height: height}
	length := g.Axis.Length(size)
	breadth := g.Axis.Breadth(size)
	fraction := clampUnit(g.Fraction)

	forced := g.Hidden
	if forced == None {
		forced = g.Previewing
	}
	hidePrimary := forced == Primary
	hideSecondary := forced == Secondary

	minPrimaryLength := 0.0
	if !hidePrimary {
		minPrimaryLength = length * g.Constraints.minPrimary()
	}
	minSecondaryLength := 0.0
	if !hideSecondary {
		minSecondaryLength = length * g.Constraints.minSecondary()
	}

	rawPrimary := length * fraction
	rawSecondary := length - rawPrimary
	switch forced {
	case Primary:
		rawPrimary, rawSecondary = 0, length
	case Secondary:
		rawPrimary, rawSecondary = length, 0
	}
	primaryLength := math.Max(minPrimaryLength, rawPrimary)
	secondaryLength := math.Max(minSecondaryLength, rawSecondary)

	spacing := spacing(g)
	if length == 0 {
		spacing = 0
	}
	primaryAlong := math.Max(minPrimaryLength, math.Min(length-spacing, primaryLength-spacing/2))
	secondaryAlong := math.Max(minSecondaryLength, math.Min(length-primaryLength, secondaryLength-spacing/2))
	// Guards against negative lengths when the container is thinner than the divider.
	primaryAlong = math.Max(0, primaryAlong)
	secondaryAlong = math.Max(0, secondaryAlong)

	center := primaryAlong + spacing/2
	handle := math.Max(spacing, g.HandleThickness)

	l := Layout{
		Spacing:         spacing,
		PrimaryHidden:   hidePrimary,
		SecondaryHidden: hideSecondary,
		Draggable:       isDraggable(g),
	}
	if g.Axis == Horizontal {
		l.Primary = Rect{Width: primaryAlong, Height: breadth}
		l.Secondary = Rect{X: primaryAlong + spacing, Width: secondaryAlong, Height: breadth}
		l.Divider = Rect{X: primaryAlong, Width: spacing, Height: breadth}
		l.Handle = Rect{X: center - handle/2, Width: handle, Height: breadth}
		l.DividerCenter = Point{X: center, Y: breadth / 2}
	} else {
		l.Primary = Rect{Width: breadth, Height: primaryAlong}
		l.Secondary = Rect{Y: primaryAlong + spacing, Width: breadth, Height: secondaryAlong}
		l.Divider = Rect{Y: primaryAlong, Width: breadth, Height: spacing}
		l.Handle = Rect{Y: center - handle/2, Width: breadth, Height: handle}
		l.DividerCenter = Point{X: breadth / 2, Y: center}
	}
	return l
}

func spacing(g Geometry) float64 {
	if g.PreviewHide {
		return 0
	}
	if g.Hidden != None && g.HideSplitter {
		return 0
	}
	return math.Max(0, g.Thickness)
}

// isDraggable is false while a side is hidden and either the divider goes
// with it or the hidden side has a minimum. Such a side can only come back
// through an explicit show.
func isDraggable(g Geometry) bool {
	if g.Hidden == None {
		return true
	}
	if g.HideSplitter {
		return false
	}
	_, hasMin := g.Constraints.MinFor(g.Hidden)
	return !hasMin
}

// PreservePriority returns the fraction that keeps the priority side's
// length when the split length changes from oldLength to newLength, clamped
// to the constraints. Without a priority, or with a non-positive new length,
// fraction is returned unchanged.
func PreservePriority(c Constraints, fraction, oldLength, newLength float64) float64 {
	if c.Priority == None || newLength <= 0 || oldLength == newLength {
		return fraction
	}
	primaryLength := fraction * oldLength
	if c.Priority == Secondary {
		primaryLength += newLength - oldLength
	}
	return c.Clamp(primaryLength / newLength)
}
