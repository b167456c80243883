package layout

import (
	"image"
	"math"

	"github.com/idursun/splitview/internal/split"
)

// SplitBoxes is a split layout snapped to terminal cells.
type SplitBoxes struct {
	Primary   Box
	Secondary Box
	Divider   Box
	Handle    Box
}

// SizeOf returns the size of the box in layout units, one unit per cell.
func SizeOf(box Box) split.Size {
	return split.Size{Width: float64(box.R.Dx()), Height: float64(box.R.Dy())}
}

// Local converts absolute screen coordinates to a point relative to the box.
func Local(box Box, x, y int) split.Point {
	return split.Point{X: float64(x - box.R.Min.X), Y: float64(y - box.R.Min.Y)}
}

// Snap converts the rectangles of l, which are relative to box, into
// absolute cell boxes. Edges are rounded independently so adjacent
// rectangles never overlap or leave gaps, and every box is clipped to box.
func Snap(box Box, l split.Layout) SplitBoxes {
	return SplitBoxes{
		Primary:   snapRect(box, l.Primary),
		Secondary: snapRect(box, l.Secondary),
		Divider:   snapRect(box, l.Divider),
		Handle:    snapRect(box, l.Handle),
	}
}

func snapRect(box Box, r split.Rect) Box {
	x0 := box.R.Min.X + int(math.Round(r.X))
	y0 := box.R.Min.Y + int(math.Round(r.Y))
	x1 := box.R.Min.X + int(math.Round(r.X+r.Width))
	y1 := box.R.Min.Y + int(math.Round(r.Y+r.Height))
	snapped := image.Rect(x0, y0, x1, y1).Intersect(box.R)
	return NewBox(snapped)
}
