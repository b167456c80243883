package config

import (
	"testing"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/idursun/splitview/internal/split"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	config, err := Default()
	require.NoError(t, err)
	require.NoError(t, config.Validate())

	assert.Equal(t, split.Horizontal, config.Split.Axis)
	assert.Equal(t, 0.5, config.Split.Fraction)
	assert.Equal(t, split.None, config.Split.Hide)
	assert.Nil(t, config.Split.MinPrimary)
	assert.Equal(t, PresetDefault, config.Splitter.Preset)
	assert.Equal(t, 1.0, config.Splitter.VisibleThickness)
	assert.Equal(t, 3.0, config.Splitter.InvisibleThickness)
	assert.True(t, config.State.Persist)
	assert.Equal(t, 0.05, config.UI.Nudge)
	assert.Equal(t, 3*time.Second, config.UI.FlashTimeout)
	assert.Contains(t, config.UI.Colors, "title")
}

func TestLoad_OverridesDefaults(t *testing.T) {
	config, err := Default()
	require.NoError(t, err)

	content := `
[split]
axis = "vertical"
min_primary = 0.2
priority = "bottom"
drag_to_hide_primary = true

[ui]
primary_title = "log"
`
	require.NoError(t, config.Load(content))

	assert.Equal(t, split.Vertical, config.Split.Axis)
	if assert.NotNil(t, config.Split.MinPrimary) {
		assert.Equal(t, 0.2, *config.Split.MinPrimary)
	}
	assert.Equal(t, split.Secondary, config.Split.Priority)
	assert.Equal(t, "log", config.UI.PrimaryTitle)
	assert.Equal(t, "secondary", config.UI.SecondaryTitle, "untouched keys keep their defaults")
	assert.Equal(t, 0.5, config.Split.Fraction)

	c := config.Split.Constraints()
	assert.True(t, c.DragToHide())
	assert.Equal(t, split.Secondary, c.Priority)
}

func TestLoad_InvalidEnum(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"axis", "[split]\naxis = \"diagonal\""},
		{"side", "[split]\nhide = \"middle\""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			config := &Config{}
			assert.Error(t, config.Load(tc.content))
		})
	}
}

func TestLoad_Colors_StringAndObject(t *testing.T) {
	content := `
[ui.colors]
simple = "red"
complex = { fg = "blue", bg = "white", bold = true }
`
	config := &Config{}
	err := config.Load(content)
	assert.NoError(t, err)
	assert.Len(t, config.UI.Colors, 2)

	assert.Equal(t, Color{Fg: "red"}, config.UI.Colors["simple"])
	assert.Equal(t, Color{Fg: "blue", Bg: "white", Bold: true}, config.UI.Colors["complex"])
}

func TestLoad_Colors_UnknownKey(t *testing.T) {
	config := &Config{}
	err := config.Load("[ui.colors]\nbad = { fg = \"red\", blink = true }")
	assert.ErrorContains(t, err, "blink")
}

func TestColor_Style(t *testing.T) {
	style := Color{Fg: "4", Bold: true}.Style()
	assert.Equal(t, lipgloss.Color("4"), style.GetForeground())
	assert.True(t, style.GetBold())
	assert.False(t, style.GetReverse())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"fraction", func(c *Config) { c.Split.Fraction = 1.5 }, "split.fraction"},
		{"min primary", func(c *Config) { c.Split.MinPrimary = split.Min(-0.1) }, "split.min_primary"},
		{"min secondary", func(c *Config) { c.Split.MinSecondary = split.Min(2) }, "split.min_secondary"},
		{"preset", func(c *Config) { c.Splitter.Preset = "dotted" }, "dotted"},
		{"thickness", func(c *Config) { c.Splitter.VisibleThickness = -1 }, "must not be negative"},
		{"nudge", func(c *Config) { c.UI.Nudge = 0 }, "ui.nudge"},
		{"flash timeout", func(c *Config) { c.UI.FlashTimeout = -time.Second }, "ui.flash_timeout"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			config, err := Default()
			require.NoError(t, err)
			tc.modify(config)
			assert.ErrorContains(t, config.Validate(), tc.errMsg)
		})
	}
}

func TestSplitterConfig_Divider(t *testing.T) {
	tests := []struct {
		name       string
		config     SplitterConfig
		visible    float64
		inset      float64
		hideWithIt bool
	}{
		{
			name:    "default",
			config:  SplitterConfig{Preset: PresetDefault, Inset: 1, VisibleThickness: 2, InvisibleThickness: 5},
			visible: 2,
			inset:   1,
		},
		{
			name:    "line ignores inset",
			config:  SplitterConfig{Preset: PresetLine, Inset: 3, VisibleThickness: 1, InvisibleThickness: 5},
			visible: 1,
		},
		{
			name:       "invisible",
			config:     SplitterConfig{Preset: PresetInvisible, VisibleThickness: 1, InvisibleThickness: 5, HideWithSide: true},
			visible:    0,
			hideWithIt: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			styling := tc.config.Divider().Styling()
			assert.Equal(t, tc.visible, styling.VisibleThickness)
			assert.Equal(t, tc.inset, styling.Inset)
			assert.Equal(t, 5.0, styling.InvisibleThickness)
			assert.Equal(t, tc.hideWithIt, styling.HideSplitter)
		})
	}
}

func TestSplitterConfig_DividerColor(t *testing.T) {
	styling := SplitterConfig{Color: "3"}.Divider().Styling()
	assert.Equal(t, lipgloss.Color("3"), styling.Color)

	styling = SplitterConfig{}.Divider().Styling()
	assert.Equal(t, split.DefaultColor, styling.Color)
}
