package split

import (
	"fmt"
	"strings"
)

// Side identifies one of the two regions of a split. None means no side,
// which for hide state means both sides are visible.
type Side int

const (
	None Side = iota
	Primary
	Secondary
)

// Aliases by position. Left/Right apply to horizontal splits, Top/Bottom to vertical.
const (
	Left   = Primary
	Right  = Secondary
	Top    = Primary
	Bottom = Secondary
)

func (s Side) IsPrimary() bool   { return s == Primary }
func (s Side) IsSecondary() bool { return s == Secondary }
func (s Side) IsNone() bool      { return s == None }

// Other returns the opposite side. None has no opposite.
func (s Side) Other() Side {
	switch s {
	case Primary:
		return Secondary
	case Secondary:
		return Primary
	}
	return None
}

func (s Side) String() string {
	switch s {
	case None:
		return "none"
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// ParseSide accepts the canonical names and the positional aliases.
// The empty string parses as None.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, nil
	case "primary", "left", "top":
		return Primary, nil
	case "secondary", "right", "bottom":
		return Secondary, nil
	}
	return None, fmt.Errorf("unknown side %q", s)
}

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(text []byte) error {
	parsed, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
