package ui

import "charm.land/bubbles/v2/key"

type KeyMap struct {
	ToggleHide      key.Binding
	TogglePrimary   key.Binding
	ToggleSecondary key.Binding
	ToggleAxis      key.Binding
	Grow            key.Binding
	Shrink          key.Binding
	NextPane        key.Binding
	PageDown        key.Binding
	PageUp          key.Binding
	Dismiss         key.Binding
	Quit            key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		ToggleHide:      key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hide/show")),
		TogglePrimary:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "primary")),
		ToggleSecondary: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "secondary")),
		ToggleAxis:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "orientation")),
		Grow:            key.NewBinding(key.WithKeys("right", "down", "+"), key.WithHelp("→", "grow")),
		Shrink:          key.NewBinding(key.WithKeys("left", "up", "-"), key.WithHelp("←", "shrink")),
		NextPane:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		PageDown:        key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "scroll")),
		PageUp:          key.NewBinding(key.WithKeys("pgup", "ctrl+u")),
		Dismiss:         key.NewBinding(key.WithKeys("esc")),
		Quit:            key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp lists the bindings shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleHide, k.TogglePrimary, k.ToggleSecondary, k.ToggleAxis, k.Grow, k.Shrink, k.NextPane, k.Quit}
}
