package common

import (
	tea "charm.land/bubbletea/v2"
	"github.com/idursun/splitview/internal/ui/layout"
	"github.com/idursun/splitview/internal/ui/render"
)

// ImmediateModel is a child model that renders itself into a box of the
// frame being built instead of returning a string.
type ImmediateModel interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	ViewRect(dl *render.DisplayContext, box layout.Box)
}
