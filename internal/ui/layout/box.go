package layout

import (
	"image"

	uv "github.com/charmbracelet/ultraviolet"
)

// Rectangle is a cell rectangle on screen.
type Rectangle = uv.Rectangle

// Rect returns the rectangle at (x, y) with the given width and height.
func Rect(x, y, width, height int) Rectangle {
	return image.Rect(x, y, x+width, y+height)
}

// Box is a region being laid out.
type Box struct {
	R Rectangle
}

func NewBox(r Rectangle) Box {
	return Box{R: r}
}

type specKind int

const (
	specFixed specKind = iota
	specPercent
	specFill
)

// Spec sizes one child along the direction of a stack.
type Spec struct {
	kind   specKind
	size   int
	weight float64
}

// Fixed takes exactly n cells, or what is left if that is less.
func Fixed(n int) Spec { return Spec{kind: specFixed, size: n} }

// Percent takes pct percent of the box.
func Percent[T int | float64](pct T) Spec {
	return Spec{kind: specPercent, weight: float64(pct)}
}

// Fill shares whatever fixed and percent children leave, by weight.
func Fill(weight float64) Spec { return Spec{kind: specFill, weight: weight} }

// V splits the box top to bottom.
func (b Box) V(specs ...Spec) []Box {
	sizes := distribute(b.R.Dy(), specs)
	boxes := make([]Box, len(sizes))
	y := b.R.Min.Y
	for i, h := range sizes {
		boxes[i] = NewBox(image.Rect(b.R.Min.X, y, b.R.Max.X, y+h))
		y += h
	}
	return boxes
}

// H splits the box left to right.
func (b Box) H(specs ...Spec) []Box {
	sizes := distribute(b.R.Dx(), specs)
	boxes := make([]Box, len(sizes))
	x := b.R.Min.X
	for i, w := range sizes {
		boxes[i] = NewBox(image.Rect(x, b.R.Min.Y, x+w, b.R.Max.Y))
		x += w
	}
	return boxes
}

// Inset shrinks the box by n cells on every edge.
func (b Box) Inset(n int) Box {
	r := b.R
	r.Min.X += n
	r.Min.Y += n
	r.Max.X -= n
	r.Max.Y -= n
	if r.Dx() < 0 || r.Dy() < 0 {
		return NewBox(image.Rect(b.R.Min.X, b.R.Min.Y, b.R.Min.X, b.R.Min.Y))
	}
	return NewBox(r)
}

func distribute(total int, specs []Spec) []int {
	sizes := make([]int, len(specs))
	remaining := max(total, 0)
	var fillWeight float64
	for i, s := range specs {
		switch s.kind {
		case specFixed:
			sizes[i] = min(max(s.size, 0), remaining)
			remaining -= sizes[i]
		case specPercent:
			sizes[i] = min(int(float64(total)*s.weight/100), remaining)
			remaining -= sizes[i]
		case specFill:
			fillWeight += s.weight
		}
	}
	if fillWeight <= 0 {
		return sizes
	}
	last := -1
	free := remaining
	for i, s := range specs {
		if s.kind != specFill {
			continue
		}
		sizes[i] = int(float64(free) * s.weight / fillWeight)
		remaining -= sizes[i]
		last = i
	}
	// Rounding leftovers go to the last fill child.
	sizes[last] += remaining
	return sizes
}
