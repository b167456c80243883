package render

import (
	"cmp"
	"slices"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/idursun/splitview/internal/ui/layout"
)

// Draw places pre-rendered content, usually from lipgloss, at Rect.
type Draw struct {
	Rect    layout.Rectangle
	Content string
	Z       int
}

// DisplayContext collects the draws, effects and mouse regions of one frame.
// Nothing reaches the screen until Render, which runs the ops from the
// lowest z to the highest; ops on the same z run in the order they were added.
type DisplayContext struct {
	ops          []op
	interactions []interactionOp
	seq          int
}

// op is either a draw or an effect.
type op struct {
	z      int
	seq    int
	draw   *Draw
	effect Effect
}

type interactionOp struct {
	InteractionOp
	seq int
}

func NewDisplayContext() *DisplayContext {
	return &DisplayContext{}
}

func (dl *DisplayContext) next() int {
	dl.seq++
	return dl.seq
}

func (dl *DisplayContext) AddDraw(rect layout.Rectangle, content string, z int) {
	dl.ops = append(dl.ops, op{
		z:    z,
		seq:  dl.next(),
		draw: &Draw{Rect: rect, Content: content, Z: z},
	})
}

func (dl *DisplayContext) AddEffect(effect Effect) {
	dl.ops = append(dl.ops, op{z: effect.GetZ(), seq: dl.next(), effect: effect})
}

// AddFill covers rect with ch. Empty rects are dropped.
func (dl *DisplayContext) AddFill(rect layout.Rectangle, ch rune, style lipgloss.Style, z int) {
	if rect.Empty() {
		return
	}
	dl.AddEffect(FillEffect{Rect: rect, Char: ch, Style: cellStyle(style), Z: z})
}

func (dl *DisplayContext) AddReverse(rect layout.Rectangle, z int) {
	dl.AddEffect(ReverseEffect{Rect: rect, Z: z})
}

func (dl *DisplayContext) AddDim(rect layout.Rectangle, z int) {
	dl.AddEffect(DimEffect{Rect: rect, Z: z})
}

// AddHighlight gives the cells in rect that have no background the
// background of style.
func (dl *DisplayContext) AddHighlight(rect layout.Rectangle, style lipgloss.Style, z int) {
	dl.AddEffect(HighlightEffect{Rect: rect, Style: style, Z: z})
}

// AddInteraction registers a mouse region. Regions with a higher z win
// when they overlap.
func (dl *DisplayContext) AddInteraction(rect layout.Rectangle, msg tea.Msg, typ InteractionType, z int) {
	dl.interactions = append(dl.interactions, interactionOp{
		InteractionOp: InteractionOp{Rect: rect, Msg: msg, Type: typ, Z: z},
		seq:           dl.next(),
	})
}

func (dl *DisplayContext) Render(buf uv.Screen) {
	ops := slices.Clone(dl.ops)
	slices.SortStableFunc(ops, func(a, b op) int {
		return cmp.Or(cmp.Compare(a.z, b.z), cmp.Compare(a.seq, b.seq))
	})
	for _, op := range ops {
		if op.draw != nil {
			uv.NewStyledString(op.draw.Content).Draw(buf, op.draw.Rect)
			continue
		}
		op.effect.Apply(buf)
	}
}

func (dl *DisplayContext) RenderToString(width, height int) string {
	buf := uv.NewScreenBuffer(width, height)
	dl.Render(buf)
	return buf.Render()
}

// DrawList returns the draws in the order they were added.
func (dl *DisplayContext) DrawList() []Draw {
	var draws []Draw
	for _, op := range dl.ops {
		if op.draw != nil {
			draws = append(draws, *op.draw)
		}
	}
	return draws
}

// EffectsList returns the effects in the order they were added.
func (dl *DisplayContext) EffectsList() []Effect {
	var effects []Effect
	for _, op := range dl.ops {
		if op.effect != nil {
			effects = append(effects, op.effect)
		}
	}
	return effects
}

// InteractionsList returns the mouse regions in priority order: highest z
// first, then the order they were added.
func (dl *DisplayContext) InteractionsList() []InteractionOp {
	sorted := slices.Clone(dl.interactions)
	slices.SortStableFunc(sorted, func(a, b interactionOp) int {
		return cmp.Or(cmp.Compare(b.Z, a.Z), cmp.Compare(a.seq, b.seq))
	})
	result := make([]InteractionOp, len(sorted))
	for i, op := range sorted {
		result[i] = op.InteractionOp
	}
	return result
}

func (dl *DisplayContext) Len() int {
	return len(dl.ops) + len(dl.interactions)
}
