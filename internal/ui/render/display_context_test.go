package render

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/idursun/splitview/internal/ui/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayContext_AddDraw(t *testing.T) {
	dl := NewDisplayContext()

	dl.AddDraw(layout.Rect(0, 0, 10, 1), "test", 3)

	draws := dl.DrawList()
	require.Len(t, draws, 1)
	assert.Equal(t, Draw{Rect: layout.Rect(0, 0, 10, 1), Content: "test", Z: 3}, draws[0])
	assert.Equal(t, 1, dl.Len())
}

func TestDisplayContext_HigherZDrawsOnTop(t *testing.T) {
	dl := NewDisplayContext()
	// Added first but on a higher layer.
	dl.AddDraw(layout.Rect(0, 0, 5, 1), "Front", 1)
	dl.AddDraw(layout.Rect(0, 0, 10, 1), "Background", 0)

	assert.Contains(t, dl.RenderToString(10, 1), "Frontround")
}

func TestDisplayContext_SameZKeepsInsertionOrder(t *testing.T) {
	dl := NewDisplayContext()
	dl.AddDraw(layout.Rect(0, 0, 5, 1), "first", 0)
	dl.AddDraw(layout.Rect(0, 0, 3, 1), "two", 0)

	assert.Contains(t, dl.RenderToString(5, 1), "twost")
}

func TestDisplayContext_EffectsChangeDrawnCells(t *testing.T) {
	tests := []struct {
		name  string
		apply func(dl *DisplayContext, rect layout.Rectangle)
		check func(t *testing.T, cell *uv.Cell)
	}{
		{
			name:  "reverse",
			apply: func(dl *DisplayContext, rect layout.Rectangle) { dl.AddReverse(rect, 0) },
			check: func(t *testing.T, cell *uv.Cell) {
				assert.NotZero(t, cell.Style.Attrs&uv.AttrReverse)
			},
		},
		{
			name:  "dim",
			apply: func(dl *DisplayContext, rect layout.Rectangle) { dl.AddDim(rect, 0) },
			check: func(t *testing.T, cell *uv.Cell) {
				assert.NotZero(t, cell.Style.Attrs&uv.AttrFaint)
			},
		},
		{
			name: "highlight",
			apply: func(dl *DisplayContext, rect layout.Rectangle) {
				dl.AddHighlight(rect, lipgloss.NewStyle().Background(lipgloss.Color("4")), 0)
			},
			check: func(t *testing.T, cell *uv.Cell) {
				assert.NotNil(t, cell.Style.Bg)
			},
		},
		{
			name:  "fill",
			apply: func(dl *DisplayContext, rect layout.Rectangle) { dl.AddFill(rect, '│', lipgloss.NewStyle(), 0) },
			check: func(t *testing.T, cell *uv.Cell) {
				assert.Equal(t, "│", cell.Content)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dl := NewDisplayContext()
			dl.AddDraw(layout.Rect(0, 0, 4, 1), "Test", 0)
			tc.apply(dl, layout.Rect(0, 0, 2, 1))

			buf := uv.NewScreenBuffer(10, 1)
			dl.Render(buf)

			cell := buf.CellAt(1, 0)
			require.NotNil(t, cell)
			tc.check(t, cell)

			untouched := buf.CellAt(3, 0)
			require.NotNil(t, untouched)
			assert.Equal(t, "t", untouched.Content)
			assert.Zero(t, untouched.Style.Attrs)
		})
	}
}

func TestDisplayContext_EffectsClipToScreen(t *testing.T) {
	dl := NewDisplayContext()
	dl.AddDraw(layout.Rect(0, 0, 5, 1), "Hello", 0)
	dl.AddReverse(layout.Rect(3, 0, 20, 1), 0)
	dl.AddFill(layout.Rect(8, -2, 5, 5), '─', lipgloss.NewStyle(), 0)

	buf := uv.NewScreenBuffer(10, 1)
	dl.Render(buf)

	assert.Equal(t, "─", buf.CellAt(9, 0).Content)
	assert.NotZero(t, buf.CellAt(4, 0).Style.Attrs&uv.AttrReverse)
}

func TestDisplayContext_HighlightKeepsExistingBackground(t *testing.T) {
	dl := NewDisplayContext()
	dl.AddDraw(layout.Rect(0, 0, 2, 1), lipgloss.NewStyle().Background(lipgloss.Color("1")).Render("ab"), 0)
	dl.AddHighlight(layout.Rect(0, 0, 4, 1), lipgloss.NewStyle().Background(lipgloss.Color("4")), 1)

	buf := uv.NewScreenBuffer(4, 1)
	dl.Render(buf)

	assert.NotEqual(t, buf.CellAt(0, 0).Style.Bg, buf.CellAt(3, 0).Style.Bg)
	assert.NotNil(t, buf.CellAt(3, 0).Style.Bg)
}

func TestDisplayContext_HighlightPreservesWideCharacters(t *testing.T) {
	dl := NewDisplayContext()
	rect := layout.Rect(0, 0, 4, 1)
	dl.AddDraw(rect, "A🙂B", 0)
	dl.AddHighlight(rect, lipgloss.NewStyle().Background(lipgloss.Color("4")), 1)

	assert.Contains(t, dl.RenderToString(4, 1), "🙂")
}

func TestDisplayContext_FillSkipsEmptyRect(t *testing.T) {
	dl := NewDisplayContext()
	dl.AddFill(layout.Rect(0, 0, 0, 3), '│', lipgloss.NewStyle(), 0)
	assert.Zero(t, dl.Len())
}

func TestDisplayContext_EmptyRender(t *testing.T) {
	assert.NotPanics(t, func() {
		NewDisplayContext().RenderToString(10, 1)
	})
}

func TestDisplayContext_ListsKeepKinds(t *testing.T) {
	dl := NewDisplayContext()
	dl.AddDraw(layout.Rect(0, 0, 1, 1), "x", 0)
	dl.AddDim(layout.Rect(0, 0, 1, 1), 2)
	dl.AddInteraction(layout.Rect(0, 0, 1, 1), "low", InteractionClick, 0)
	dl.AddInteraction(layout.Rect(0, 0, 1, 1), "high", InteractionClick, 5)

	assert.Len(t, dl.DrawList(), 1)
	effects := dl.EffectsList()
	require.Len(t, effects, 1)
	assert.Equal(t, 2, effects[0].GetZ())
	assert.Equal(t, layout.Rect(0, 0, 1, 1), effects[0].GetRect())

	interactions := dl.InteractionsList()
	require.Len(t, interactions, 2)
	assert.Equal(t, "high", interactions[0].Msg)
	assert.Equal(t, 4, dl.Len())
}

type testScrollMsg struct {
	delta      int
	horizontal bool
}

func (m testScrollMsg) SetDelta(delta int, horizontal bool) tea.Msg {
	m.delta = delta
	m.horizontal = horizontal
	return m
}

func TestProcessMouseEvent_Wheel(t *testing.T) {
	tests := []struct {
		button     tea.MouseButton
		delta      int
		horizontal bool
	}{
		{tea.MouseWheelUp, -3, false},
		{tea.MouseWheelDown, 3, false},
		{tea.MouseWheelLeft, -3, true},
		{tea.MouseWheelRight, 3, true},
	}
	for _, tc := range tests {
		dl := NewDisplayContext()
		dl.AddInteraction(layout.Rect(0, 0, 10, 10), testScrollMsg{}, InteractionScroll, 0)

		msg, handled := dl.ProcessMouseEvent(tea.MouseWheelMsg{X: 2, Y: 2, Button: tc.button})

		require.True(t, handled)
		assert.Equal(t, testScrollMsg{delta: tc.delta, horizontal: tc.horizontal}, msg)
	}
}

func TestProcessMouseEvent_HorizontalWheelWithoutCarrier(t *testing.T) {
	dl := NewDisplayContext()
	dl.AddInteraction(layout.Rect(0, 0, 10, 10), "plain", InteractionScroll, 0)

	msg, handled := dl.ProcessMouseEvent(tea.MouseWheelMsg{X: 2, Y: 2, Button: tea.MouseWheelRight})
	assert.True(t, handled)
	assert.Nil(t, msg)

	msg, handled = dl.ProcessMouseEvent(tea.MouseWheelMsg{X: 2, Y: 2, Button: tea.MouseWheelDown})
	assert.True(t, handled)
	assert.Equal(t, "plain", msg)
}
