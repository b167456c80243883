package render

import (
	"image/color"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/idursun/splitview/internal/ui/layout"
)

// Effect changes cells that are already on the screen.
type Effect interface {
	Apply(buf uv.Screen)
	GetZ() int
	GetRect() layout.Rectangle
}

// ReverseEffect swaps foreground and background.
type ReverseEffect struct {
	Rect layout.Rectangle
	Z    int
}

func (e ReverseEffect) Apply(buf uv.Screen) {
	restyle(buf, e.Rect, func(s *uv.Style) { s.Attrs |= uv.AttrReverse })
}

func (e ReverseEffect) GetZ() int                 { return e.Z }
func (e ReverseEffect) GetRect() layout.Rectangle { return e.Rect }

// DimEffect renders the cells faint.
type DimEffect struct {
	Rect layout.Rectangle
	Z    int
}

func (e DimEffect) Apply(buf uv.Screen) {
	restyle(buf, e.Rect, func(s *uv.Style) { s.Attrs |= uv.AttrFaint })
}

func (e DimEffect) GetZ() int                 { return e.Z }
func (e DimEffect) GetRect() layout.Rectangle { return e.Rect }

// HighlightEffect paints the background of Style under cells that have none.
type HighlightEffect struct {
	Rect  layout.Rectangle
	Style lipgloss.Style
	Z     int
}

func (e HighlightEffect) Apply(buf uv.Screen) {
	bg := ansiColor(e.Style.GetBackground())
	if bg == nil {
		return
	}
	restyle(buf, e.Rect, func(s *uv.Style) {
		if s.Bg == nil {
			s.Bg = bg
		}
	})
}

func (e HighlightEffect) GetZ() int                 { return e.Z }
func (e HighlightEffect) GetRect() layout.Rectangle { return e.Rect }

// FillEffect overwrites every cell of Rect with Char. Dividers are drawn
// this way.
type FillEffect struct {
	Rect  layout.Rectangle
	Char  rune
	Style uv.Style
	Z     int
}

func (e FillEffect) Apply(buf uv.Screen) {
	cell := &uv.Cell{Content: string(e.Char), Width: 1, Style: e.Style}
	r := buf.Bounds().Intersect(e.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			buf.SetCell(x, y, cell)
		}
	}
}

func (e FillEffect) GetZ() int                 { return e.Z }
func (e FillEffect) GetRect() layout.Rectangle { return e.Rect }

// ansiColor keeps palette colors as palette colors so they are not
// written out as 24-bit RGB. NoColor maps to nil.
func ansiColor(c color.Color) ansi.Color {
	switch c := c.(type) {
	case nil, lipgloss.NoColor:
		return nil
	case ansi.Color:
		return c
	}
	return nil
}

func cellStyle(ls lipgloss.Style) uv.Style {
	s := uv.Style{
		Fg: ansiColor(ls.GetForeground()),
		Bg: ansiColor(ls.GetBackground()),
	}
	if ls.GetBold() {
		s.Attrs |= uv.AttrBold
	}
	if ls.GetFaint() {
		s.Attrs |= uv.AttrFaint
	}
	if ls.GetReverse() {
		s.Attrs |= uv.AttrReverse
	}
	return s
}

// restyle applies fn to a copy of every cell in rect and writes it back.
// The zero width tails of wide graphemes are left alone; writing them
// would blank the grapheme.
func restyle(buf uv.Screen, rect layout.Rectangle, fn func(*uv.Style)) {
	r := rect.Intersect(buf.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; {
			cell := buf.CellAt(x, y)
			if cell == nil || cell.Width == 0 {
				x++
				continue
			}
			c := cell.Clone()
			fn(&c.Style)
			buf.SetCell(x, y, c)
			x += max(cell.Width, 1)
		}
	}
}
