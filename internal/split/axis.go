package split

import (
	"fmt"
	"strings"
)

// Axis is the direction along which a split lays out its two sides.
// Horizontal puts primary on the left, Vertical puts primary on top.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// IsHorizontal reports whether width is the split length.
func (a Axis) IsHorizontal() bool { return a == Horizontal }

// IsVertical reports whether height is the split length.
func (a Axis) IsVertical() bool { return a == Vertical }

// Toggle returns the other axis.
func (a Axis) Toggle() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// Length returns the dimension of size along the axis.
func (a Axis) Length(size Size) float64 {
	if a == Horizontal {
		return size.Width
	}
	return size.Height
}

// Breadth returns the dimension of size across the axis.
func (a Axis) Breadth(size Size) float64 {
	if a == Horizontal {
		return size.Height
	}
	return size.Width
}

// Along returns the coordinate of p along the axis.
func (a Axis) Along(p Point) float64 {
	if a == Horizontal {
		return p.X
	}
	return p.Y
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis parses "horizontal" or "vertical" (case-insensitive, "h"/"v" accepted).
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	}
	return Horizontal, fmt.Errorf("unknown axis %q", s)
}

func (a Axis) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Axis) UnmarshalText(text []byte) error {
	parsed, err := ParseAxis(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// AxisState is an observable axis. Hosts share it between renders so a
// toggle survives re-layout.
type AxisState struct {
	value *Value[Axis]
}

// NewAxisState creates an AxisState. A value loaded from store wins over axis.
func NewAxisState(axis Axis, store Store[Axis]) *AxisState {
	return &AxisState{value: NewValue(axis, store)}
}

func (s *AxisState) Get() Axis { return s.value.Get() }

func (s *AxisState) Set(axis Axis) { s.value.Set(axis) }

// Toggle flips between horizontal and vertical.
func (s *AxisState) Toggle() { s.value.Set(s.value.Get().Toggle()) }

func (s *AxisState) Subscribe(fn func(Axis)) func() { return s.value.Subscribe(fn) }
