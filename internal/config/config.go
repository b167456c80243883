package config

import (
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/idursun/splitview/internal/split"
)

//go:embed default/config.toml
var configFS embed.FS

type Config struct {
	Split    SplitConfig    `toml:"split"`
	Splitter SplitterConfig `toml:"splitter"`
	State    StateConfig    `toml:"state"`
	UI       UIConfig       `toml:"ui"`
}

type SplitConfig struct {
	Axis                split.Axis `toml:"axis"`
	Fraction            float64    `toml:"fraction"`
	Hide                split.Side `toml:"hide"`
	MinPrimary          *float64   `toml:"min_primary"`
	MinSecondary        *float64   `toml:"min_secondary"`
	Priority            split.Side `toml:"priority"`
	DragToHidePrimary   bool       `toml:"drag_to_hide_primary"`
	DragToHideSecondary bool       `toml:"drag_to_hide_secondary"`
}

func (c SplitConfig) Constraints() split.Constraints {
	return split.Constraints{
		MinPrimary:          c.MinPrimary,
		MinSecondary:        c.MinSecondary,
		Priority:            c.Priority,
		DragToHidePrimary:   c.DragToHidePrimary,
		DragToHideSecondary: c.DragToHideSecondary,
	}
}

const (
	PresetDefault   = "default"
	PresetLine      = "line"
	PresetInvisible = "invisible"
)

type SplitterConfig struct {
	Preset             string  `toml:"preset"`
	Color              string  `toml:"color"`
	Inset              float64 `toml:"inset"`
	VisibleThickness   float64 `toml:"visible_thickness"`
	InvisibleThickness float64 `toml:"invisible_thickness"`
	HideWithSide       bool    `toml:"hide_with_side"`
}

type StateConfig struct {
	Persist bool   `toml:"persist"`
	File    string `toml:"file"`
}

type UIConfig struct {
	PrimaryTitle   string           `toml:"primary_title"`
	SecondaryTitle string           `toml:"secondary_title"`
	Nudge          float64          `toml:"nudge"`
	FlashTimeout   time.Duration    `toml:"flash_timeout"`
	Colors         map[string]Color `toml:"colors"`
}

// Validate reports every out of range value in the configuration.
func (c *Config) Validate() error {
	var errs []error
	if c.Split.Fraction < 0 || c.Split.Fraction > 1 {
		errs = append(errs, fmt.Errorf("split.fraction must be within [0, 1], got %v", c.Split.Fraction))
	}
	if err := validateMin("split.min_primary", c.Split.MinPrimary); err != nil {
		errs = append(errs, err)
	}
	if err := validateMin("split.min_secondary", c.Split.MinSecondary); err != nil {
		errs = append(errs, err)
	}
	switch c.Splitter.Preset {
	case "", PresetDefault, PresetLine, PresetInvisible:
	default:
		errs = append(errs, fmt.Errorf("splitter.preset: unknown preset %q", c.Splitter.Preset))
	}
	if c.Splitter.VisibleThickness < 0 || c.Splitter.InvisibleThickness < 0 || c.Splitter.Inset < 0 {
		errs = append(errs, errors.New("splitter: inset and thicknesses must not be negative"))
	}
	if c.UI.Nudge <= 0 || c.UI.Nudge > 1 {
		errs = append(errs, fmt.Errorf("ui.nudge must be within (0, 1], got %v", c.UI.Nudge))
	}
	if c.UI.FlashTimeout < 0 {
		errs = append(errs, fmt.Errorf("ui.flash_timeout must not be negative, got %v", c.UI.FlashTimeout))
	}
	return errors.Join(errs...)
}

func validateMin(name string, v *float64) error {
	if v == nil {
		return nil
	}
	if *v < 0 || *v > 1 {
		return fmt.Errorf("%s must be within [0, 1], got %v", name, *v)
	}
	return nil
}
