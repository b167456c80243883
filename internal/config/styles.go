package config

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/idursun/splitview/internal/split"
)

// Color is a style entry. In TOML it is either a foreground color string or
// a table with fg, bg, bold and reverse keys.
type Color struct {
	Fg      string
	Bg      string
	Bold    bool
	Reverse bool
}

// UnmarshalTOML implements toml.Unmarshaler.
func (c *Color) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		*c = Color{Fg: v}
		return nil
	case map[string]any:
		*c = Color{}
		for key, value := range v {
			var ok bool
			switch key {
			case "fg":
				c.Fg, ok = value.(string)
			case "bg":
				c.Bg, ok = value.(string)
			case "bold":
				c.Bold, ok = value.(bool)
			case "reverse":
				c.Reverse, ok = value.(bool)
			default:
				return fmt.Errorf("unknown color key %q", key)
			}
			if !ok {
				return fmt.Errorf("color key %q has invalid type %T", key, value)
			}
		}
		return nil
	default:
		return fmt.Errorf("color must be a string or a table, got %T", data)
	}
}

func (c Color) Style() lipgloss.Style {
	style := lipgloss.NewStyle()
	if c.Fg != "" {
		style = style.Foreground(lipgloss.Color(c.Fg))
	}
	if c.Bg != "" {
		style = style.Background(lipgloss.Color(c.Bg))
	}
	if c.Bold {
		style = style.Bold(true)
	}
	if c.Reverse {
		style = style.Reverse(true)
	}
	return style
}

// Style returns the named UI style, or an empty style when it is not configured.
func (c UIConfig) Style(name string) lipgloss.Style {
	if color, ok := c.Colors[name]; ok {
		return color.Style()
	}
	return lipgloss.NewStyle()
}

// Divider builds the splitter described by the configuration.
func (c SplitterConfig) Divider() *split.Splitter {
	var color = split.DefaultColor
	if c.Color != "" {
		color = lipgloss.Color(c.Color)
	}

	var s *split.Splitter
	switch c.Preset {
	case PresetLine:
		s = split.Line(color, c.VisibleThickness)
	case PresetInvisible:
		s = split.Invisible()
		s.Styling().Color = color
	default:
		s = split.NewSplitter(nil)
		styling := s.Styling()
		styling.Color = color
		styling.Inset = c.Inset
		styling.VisibleThickness = c.VisibleThickness
	}
	s.Styling().InvisibleThickness = c.InvisibleThickness
	s.Styling().HideSplitter = c.HideWithSide
	return s
}
