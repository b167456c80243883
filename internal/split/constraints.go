package split

import "math"

// Constraints bound where the divider may travel and which side keeps its
// size when the container is resized.
type Constraints struct {
	// MinPrimary is the smallest share of the split length primary may take. Nil means unconstrained.
	MinPrimary *float64 `toml:"min_primary"`
	// MinSecondary is the smallest share of the split length secondary may take. Nil means unconstrained.
	MinSecondary *float64 `toml:"min_secondary"`
	// Priority is the side whose length in pixels is kept on resize. None keeps the fraction instead.
	Priority Side `toml:"priority"`
	// DragToHidePrimary hides primary when dragged past half of MinPrimary. Ignored without MinPrimary.
	DragToHidePrimary bool `toml:"drag_to_hide_primary"`
	// DragToHideSecondary hides secondary when dragged past half of MinSecondary. Ignored without MinSecondary.
	DragToHideSecondary bool `toml:"drag_to_hide_secondary"`
}

// Min returns a pointer to f for use in Constraints literals.
func Min(f float64) *float64 { return &f }

func (c Constraints) minPrimary() float64 {
	if c.MinPrimary == nil {
		return 0
	}
	return *c.MinPrimary
}

func (c Constraints) minSecondary() float64 {
	if c.MinSecondary == nil {
		return 0
	}
	return *c.MinSecondary
}

// MinFor returns the minimum fraction of side and whether one is set.
func (c Constraints) MinFor(side Side) (float64, bool) {
	switch side {
	case Primary:
		return c.minPrimary(), c.MinPrimary != nil
	case Secondary:
		return c.minSecondary(), c.MinSecondary != nil
	}
	return 0, false
}

func (c Constraints) dragToHidePrimary() bool {
	return c.DragToHidePrimary && c.MinPrimary != nil
}

func (c Constraints) dragToHideSecondary() bool {
	return c.DragToHideSecondary && c.MinSecondary != nil
}

// DragToHide reports whether either drag-to-hide flag is in effect.
func (c Constraints) DragToHide() bool {
	return c.dragToHidePrimary() || c.dragToHideSecondary()
}

// Clamp bounds f to [MinPrimary, 1-MinSecondary]. When the minimums conflict
// the secondary bound wins, matching the order the bounds are applied in.
func (c Constraints) Clamp(f float64) float64 {
	return math.Min(1-c.minSecondary(), math.Max(c.minPrimary(), f))
}

// SideToHide returns the side a drag ending at the unconstrained fraction
// full would hide, or None. full is rounded to three decimals so it does not
// flap around the threshold.
func (c Constraints) SideToHide(full float64) Side {
	if c.dragToHidePrimary() && roundMilli(full) <= c.minPrimary()/2 {
		return Primary
	}
	if c.dragToHideSecondary() && roundMilli(1-full) <= c.minSecondary()/2 {
		return Secondary
	}
	return None
}

func roundMilli(f float64) float64 {
	return math.Round(f*1000) / 1000
}
