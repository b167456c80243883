package flash

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/idursun/splitview/internal/ui/common"
	"github.com/idursun/splitview/internal/ui/layout"
	"github.com/idursun/splitview/internal/ui/render"
)

var _ common.ImmediateModel = (*Model)(nil)

// DefaultTimeout is how long a notice stays up.
const DefaultTimeout = 3 * time.Second

const zFlash = 10

// AddMsg shows a notice. Errors stay until dismissed.
type AddMsg struct {
	Text string
	Err  error
}

type expireMessageMsg struct {
	id uint64
}

type flashMessage struct {
	text  string
	error error
	id    uint64
}

type Styles struct {
	Text  lipgloss.Style
	Error lipgloss.Style
}

// Model shows short lived notices stacked in the bottom right corner of its box.
type Model struct {
	messages  []flashMessage
	timeout   time.Duration
	styles    Styles
	currentId uint64
}

func New(styles Styles, timeout time.Duration) *Model {
	return &Model{styles: styles, timeout: timeout}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case AddMsg:
		id := m.add(msg.Text, msg.Err)
		if id == 0 || msg.Err != nil || m.timeout <= 0 {
			return nil
		}
		return tea.Tick(m.timeout, func(time.Time) tea.Msg {
			return expireMessageMsg{id: id}
		})
	case expireMessageMsg:
		m.removeByID(msg.id)
	}
	return nil
}

func (m *Model) ViewRect(dl *render.DisplayContext, box layout.Box) {
	area := box.R
	maxWidth := area.Dx() - 4
	if maxWidth <= 0 {
		return
	}
	y := area.Max.Y
	for i := len(m.messages) - 1; i >= 0 && y > area.Min.Y; i-- {
		content := m.renderMessage(m.messages[i], maxWidth)
		w, h := lipgloss.Size(content)
		y -= h
		dl.AddDraw(layout.Rect(area.Max.X-w, y, w, h), content, zFlash)
	}
}

func (m *Model) renderMessage(message flashMessage, maxWidth int) string {
	style := m.styles.Text
	text := message.text
	if message.error != nil {
		style = m.styles.Error
		text = message.error.Error()
	}
	content := style.Render(text)
	if w, _ := lipgloss.Size(content); w > maxWidth {
		content = style.Width(maxWidth).Render(text)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		PaddingLeft(1).
		PaddingRight(1).
		BorderForeground(style.GetForeground()).
		Render(content)
}

func (m *Model) add(text string, err error) uint64 {
	text = strings.TrimSpace(text)
	if text == "" && err == nil {
		return 0
	}
	m.currentId++
	m.messages = append(m.messages, flashMessage{id: m.currentId, text: text, error: err})
	return m.currentId
}

func (m *Model) removeByID(id uint64) {
	for i, message := range m.messages {
		if message.id == id {
			m.messages = append(m.messages[:i], m.messages[i+1:]...)
			return
		}
	}
}

func (m *Model) Any() bool {
	return len(m.messages) > 0
}

func (m *Model) DeleteOldest() {
	if len(m.messages) == 0 {
		return
	}
	m.messages = m.messages[1:]
}
