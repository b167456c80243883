package render

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/idursun/splitview/internal/ui/layout"
	"github.com/rivo/uniseg"
)

// TextBuilder lays out a run of text segments starting at a fixed cell.
type TextBuilder struct {
	dl       *DisplayContext
	segments []textSegment
	x        int
	y        int
	z        int
}

type textSegment struct {
	text    string
	style   lipgloss.Style
	onClick tea.Msg
	newLine bool
}

func (dl *DisplayContext) Text(x, y, z int) *TextBuilder {
	return &TextBuilder{
		dl: dl,
		x:  x,
		y:  y,
		z:  z,
	}
}

func (tb *TextBuilder) Write(text string) *TextBuilder {
	tb.segments = append(tb.segments, textSegment{text: text})
	return tb
}

func (tb *TextBuilder) Styled(text string, style lipgloss.Style) *TextBuilder {
	tb.segments = append(tb.segments, textSegment{text: text, style: style})
	return tb
}

func (tb *TextBuilder) Clickable(text string, style lipgloss.Style, onClick tea.Msg) *TextBuilder {
	tb.segments = append(tb.segments, textSegment{
		text:    text,
		style:   style,
		onClick: onClick,
	})
	return tb
}

// Space writes n blank cells.
func (tb *TextBuilder) Space(n int) *TextBuilder {
	if n <= 0 {
		return tb
	}
	return tb.Write(strings.Repeat(" ", n))
}

// NewLine moves the cursor to the start of the next row.
func (tb *TextBuilder) NewLine() *TextBuilder {
	tb.segments = append(tb.segments, textSegment{newLine: true})
	return tb
}

// Measure returns the width of the widest row and the number of rows.
func (tb *TextBuilder) Measure() (int, int) {
	width, height, line := 0, 1, 0
	for _, seg := range tb.segments {
		if seg.newLine {
			width = max(width, line)
			line = 0
			height++
			continue
		}
		line += uniseg.StringWidth(seg.text)
	}
	return max(width, line), height
}

func (tb *TextBuilder) Done() {
	x, y := tb.x, tb.y

	for _, seg := range tb.segments {
		if seg.newLine {
			x = tb.x
			y++
			continue
		}
		width := uniseg.StringWidth(seg.text)
		if width == 0 {
			continue
		}

		segRect := layout.Rect(x, y, width, 1)

		tb.dl.AddDraw(segRect, seg.style.Render(seg.text), tb.z)

		if seg.onClick != nil {
			tb.dl.AddInteraction(segRect, seg.onClick, InteractionClick, tb.z)
		}

		x += width
	}
}
