package pane

import (
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/idursun/splitview/internal/ui/common"
	"github.com/idursun/splitview/internal/ui/layout"
	"github.com/idursun/splitview/internal/ui/render"
)

var _ common.ImmediateModel = (*Model)(nil)

type Styles struct {
	Title       lipgloss.Style
	ActiveTitle lipgloss.Style
	Body        lipgloss.Style
}

// Model is a titled, scrollable block of text.
type Model struct {
	title   string
	content string
	view    viewport.Model
	styles  Styles
	active  bool
}

func New(title, content string, styles Styles) *Model {
	m := &Model{
		title:  title,
		view:   viewport.New(),
		styles: styles,
	}
	m.SetContent(content)
	return m
}

// ScrollMsg scrolls the pane it names.
type ScrollMsg struct {
	Pane  *Model
	Delta int
}

// SetDelta implements render.ScrollDeltaCarrier.
func (m ScrollMsg) SetDelta(delta int, horizontal bool) tea.Msg {
	if horizontal {
		return nil
	}
	m.Delta = delta
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ScrollMsg:
		if msg.Pane != m {
			return nil
		}
		m.Scroll(msg.Delta)
	}
	return nil
}

func (m *Model) Title() string { return m.title }

func (m *Model) SetContent(content string) {
	m.content = content
	m.view.SetContent(content)
}

func (m *Model) SetActive(active bool) { m.active = active }

func (m *Model) Active() bool { return m.active }

func (m *Model) Scroll(delta int) {
	if delta > 0 {
		m.view.ScrollDown(delta)
	} else if delta < 0 {
		m.view.ScrollUp(-delta)
	}
}

func (m *Model) YOffset() int {
	return m.view.YOffset()
}

func (m *Model) ViewRect(dl *render.DisplayContext, box layout.Box) {
	if box.R.Empty() {
		return
	}
	rows := box.V(layout.Fixed(1), layout.Fill(1))
	titleBox, bodyBox := rows[0], rows[1]

	titleStyle := m.styles.Title
	if m.active {
		titleStyle = m.styles.ActiveTitle
	}
	width := titleBox.R.Dx()
	title := ansi.Truncate(" "+m.title, width, "…")
	dl.AddDraw(titleBox.R, titleStyle.Width(width).MaxWidth(width).Render(title), 0)

	if bodyBox.R.Empty() {
		return
	}
	m.view.SetWidth(bodyBox.R.Dx())
	m.view.SetHeight(bodyBox.R.Dy())
	dl.AddDraw(bodyBox.R, m.styles.Body.Render(m.view.View()), 0)
	dl.AddInteraction(bodyBox.R, ScrollMsg{Pane: m}, render.InteractionScroll, 0)
}
