package ui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/idursun/splitview/internal/split"
	"github.com/idursun/splitview/internal/ui/flash"
	"github.com/idursun/splitview/internal/ui/layout"
	"github.com/idursun/splitview/internal/ui/layoutview"
	"github.com/idursun/splitview/internal/ui/pane"
	"github.com/idursun/splitview/internal/ui/render"
	"go.uber.org/zap"
)

const scrollPage = 10

type Options struct {
	Split     *split.Split
	Primary   *pane.Model
	Secondary *pane.Model
	Keys      KeyMap
	// Nudge is the fraction step of the grow and shrink keys.
	Nudge       float64
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style
	FlashStyles flash.Styles
	// FlashTimeout is how long notices stay up. Zero means
	// flash.DefaultTimeout and a negative value keeps them until dismissed.
	FlashTimeout time.Duration
	Logger       *zap.Logger
}

type Model struct {
	root           layoutview.SlotContent
	split          *layoutview.SplitView
	panes          []*pane.Model
	flash          *flash.Model
	active         int
	keys           KeyMap
	nudge          float64
	statusStyle    lipgloss.Style
	helpStyle      lipgloss.Style
	logger         *zap.Logger
	displayContext *render.DisplayContext
	width          int
	height         int
	activeSplit    *layoutview.SplitView
	splitActive    bool
	hoveredSplit   *layoutview.SplitView
}

func NewUI(opts Options) *Model {
	if opts.Split == nil {
		opts.Split = split.New(split.Config{Logger: opts.Logger})
	}
	if opts.Primary == nil {
		opts.Primary = pane.New("primary", "", pane.Styles{})
	}
	if opts.Secondary == nil {
		opts.Secondary = pane.New("secondary", "", pane.Styles{})
	}
	if opts.Nudge <= 0 {
		opts.Nudge = 0.05
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.FlashTimeout == 0 {
		opts.FlashTimeout = flash.DefaultTimeout
	}
	m := &Model{
		split: layoutview.NewSplitView(opts.Split,
			layoutview.Model(opts.Primary),
			layoutview.Model(opts.Secondary)),
		panes:       []*pane.Model{opts.Primary, opts.Secondary},
		flash:       flash.New(opts.FlashStyles, opts.FlashTimeout),
		keys:        opts.Keys,
		nudge:       opts.Nudge,
		statusStyle: opts.StatusStyle,
		helpStyle:   opts.HelpStyle,
		logger:      opts.Logger,
	}
	m.root = layoutview.Column(
		layoutview.Fill(1, layoutview.Func(m.renderMain)),
		layoutview.Fixed(1, layoutview.Func(m.renderStatus)),
	)
	m.panes[0].SetActive(true)
	return m
}

func (m *Model) Split() *split.Split { return m.split.Split }

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case layoutview.SplitDragMsg:
		if msg.View != nil && msg.View.DragStart(msg.X, msg.Y) {
			m.activeSplit = msg.View
			m.splitActive = true
			m.logger.Debug("drag started", zap.Int("x", msg.X), zap.Int("y", msg.Y))
		}
	case layoutview.SplitHoverMsg:
		m.setHovered(msg.View)
	case pane.ScrollMsg:
		for _, p := range m.panes {
			p.Update(msg)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	default:
		return m.flash.Update(msg)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		if m.splitActive {
			m.endDrag()
		}
		return tea.Quit
	}
	if key.Matches(msg, m.keys.Dismiss) {
		m.flash.DeleteOldest()
		return nil
	}
	// The divider belongs to the pointer until the drag is released.
	if m.splitActive {
		return nil
	}
	s := m.split.Split
	switch {
	case key.Matches(msg, m.keys.ToggleHide):
		s.Hide().Toggle()
		m.logger.Debug("hide toggled", zap.Stringer("hidden", s.Hide().Side()))
	case key.Matches(msg, m.keys.TogglePrimary):
		s.Hide().ToggleSide(split.Primary)
	case key.Matches(msg, m.keys.ToggleSecondary):
		s.Hide().ToggleSide(split.Secondary)
	case key.Matches(msg, m.keys.ToggleAxis):
		s.Axis().Toggle()
	case key.Matches(msg, m.keys.Grow):
		s.Nudge(m.nudge)
	case key.Matches(msg, m.keys.Shrink):
		s.Nudge(-m.nudge)
	case key.Matches(msg, m.keys.NextPane):
		m.panes[m.active].SetActive(false)
		m.active = (m.active + 1) % len(m.panes)
		m.panes[m.active].SetActive(true)
	case key.Matches(msg, m.keys.PageDown):
		m.panes[m.active].Scroll(scrollPage)
	case key.Matches(msg, m.keys.PageUp):
		m.panes[m.active].Scroll(-scrollPage)
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.splitActive {
		mouse := msg.Mouse()
		switch msg.(type) {
		case tea.MouseMotionMsg:
			m.activeSplit.DragTo(mouse.X, mouse.Y)
			return nil
		case tea.MouseReleaseMsg:
			m.activeSplit.DragTo(mouse.X, mouse.Y)
			return m.endDrag()
		}
	}

	if m.displayContext == nil {
		return nil
	}
	interactionMsg, handled := m.displayContext.ProcessMouseEvent(msg)
	if _, motion := msg.(tea.MouseMotionMsg); motion {
		if _, hover := interactionMsg.(layoutview.SplitHoverMsg); !hover {
			m.setHovered(nil)
		}
	}
	if handled && interactionMsg != nil {
		// Send the interaction message back through Update
		return func() tea.Msg { return interactionMsg }
	}
	return nil
}

// endDrag commits the active drag. When the release hides a side it returns
// a notice telling how to bring it back.
func (m *Model) endDrag() tea.Cmd {
	m.splitActive = false
	view := m.activeSplit
	if view == nil {
		return nil
	}
	m.activeSplit = nil
	hide := view.Split.Hide()
	before := hide.Side()
	view.DragEnd()
	side := hide.Side()
	if side == before || side == split.None {
		return nil
	}
	m.logger.Debug("drag hid a side", zap.Stringer("side", side))
	toggle := m.keys.TogglePrimary
	if side == split.Secondary {
		toggle = m.keys.ToggleSecondary
	}
	text := fmt.Sprintf("%s hidden, press %s to show", side, toggle.Help().Key)
	return func() tea.Msg { return flash.AddMsg{Text: text} }
}

func (m *Model) setHovered(view *layoutview.SplitView) {
	if m.hoveredSplit == view {
		return
	}
	if m.hoveredSplit != nil {
		m.hoveredSplit.SetHovered(false)
	}
	m.hoveredSplit = view
	if view != nil {
		view.SetHovered(true)
	}
}

// Render draws the frame into a string of the current window size.
func (m *Model) Render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	m.displayContext = render.NewDisplayContext()

	m.root.Render(m.displayContext, layout.NewBox(layout.Rect(0, 0, m.width, m.height)))

	screenBuf := uv.NewScreenBuffer(m.width, m.height)
	m.displayContext.Render(screenBuf)
	return strings.ReplaceAll(screenBuf.Render(), "\r", "")
}

func (m *Model) renderMain(dl *render.DisplayContext, box layout.Box) {
	m.split.Render(dl, box)
	m.flash.ViewRect(dl, box)
}

func (m *Model) renderStatus(dl *render.DisplayContext, box layout.Box) {
	s := m.split.Split
	state := fmt.Sprintf(" %s %3.0f%%", s.Axis().Get(), s.CurrentFraction()*100)
	if hidden := s.Hide().Side(); hidden != split.None {
		state += " | " + hidden.String() + " hidden"
	}
	if side := s.SideToHide(); side != split.None {
		state += " | release to hide " + side.String()
	}

	tb := dl.Text(box.R.Min.X, box.R.Min.Y, 1).Styled(state, m.statusStyle)
	stateWidth, _ := tb.Measure()
	var help []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		help = append(help, h.Key+" "+h.Desc)
	}
	tb.Space(2).Styled(strings.Join(help, " • "), m.helpStyle).Done()

	dl.AddHighlight(box.R, m.statusStyle, 2)
	if s.Dragging() {
		dl.AddReverse(layout.Rect(box.R.Min.X, box.R.Min.Y, stateWidth, 1), 2)
	}
}

var _ tea.Model = (*wrapper)(nil)

type (
	frameTickMsg struct{}
	wrapper      struct {
		ui                 *Model
		scheduledNextFrame bool
		render             bool
		cachedFrame        string
	}
)

func (w *wrapper) Init() tea.Cmd {
	return w.ui.Init()
}

func (w *wrapper) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(frameTickMsg); ok {
		w.render = true
		w.scheduledNextFrame = false
		return w, nil
	}
	cmd := w.ui.Update(msg)
	if !w.scheduledNextFrame {
		w.scheduledNextFrame = true
		return w, tea.Batch(cmd, tea.Tick(time.Millisecond*8, func(t time.Time) tea.Msg {
			return frameTickMsg{}
		}))
	}
	return w, cmd
}

func (w *wrapper) View() tea.View {
	if w.render {
		w.cachedFrame = w.ui.Render()
		w.render = false
	}
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.SetContent(w.cachedFrame)
	return v
}

// New returns the program model. Frames are rendered at most once per tick
// so a flood of drag events does not re-render on every event.
func New(opts Options) tea.Model {
	return &wrapper{ui: NewUI(opts)}
}
