package split

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore[T any] struct {
	value  T
	stored bool
	saves  []T
}

func (m *memoryStore[T]) Load() (T, bool) { return m.value, m.stored }

func (m *memoryStore[T]) Save(v T) {
	m.value = v
	m.stored = true
	m.saves = append(m.saves, v)
}

func TestNewFraction_Sources(t *testing.T) {
	assert.Equal(t, 0.3, NewFraction(0.3, nil).Get())
	assert.Equal(t, DefaultFraction, NewFraction(DefaultFraction, nil).Get())

	stored := &memoryStore[float64]{value: 0.7, stored: true}
	assert.Equal(t, 0.7, NewFraction(0.3, stored).Get(), "stored value wins")

	empty := &memoryStore[float64]{}
	assert.Equal(t, 0.3, NewFraction(0.3, empty).Get())

	getter := Accessor[float64]{Get: func() float64 { return 0.9 }}
	assert.Equal(t, 0.9, NewFraction(0.1, getter).Get())
}

func TestFraction_SetClampsAndPersists(t *testing.T) {
	store := &memoryStore[float64]{}
	f := NewFraction(0.5, store)

	f.Set(1.5)
	assert.Equal(t, 1.0, f.Get())
	f.Set(-0.2)
	assert.Equal(t, 0.0, f.Get())
	f.Set(0.0)

	assert.Equal(t, []float64{1, 0}, store.saves, "unchanged value is not persisted")
}

func TestFraction_StoredValueIsClamped(t *testing.T) {
	stored := &memoryStore[float64]{value: 4, stored: true}
	assert.Equal(t, 1.0, NewFraction(0.5, stored).Get())
}

func TestFraction_Subscribe(t *testing.T) {
	f := NewFraction(0.5, nil)
	var seen []float64
	cancel := f.Subscribe(func(v float64) { seen = append(seen, v) })

	f.Set(0.25)
	f.Set(0.25)
	cancel()
	f.Set(0.75)

	assert.Equal(t, []float64{0.25}, seen)
}

func TestAccessor_SetterCalledOnChange(t *testing.T) {
	var written []float64
	f := NewFraction(0.5, Accessor[float64]{Set: func(v float64) { written = append(written, v) }})
	f.Set(0.6)
	assert.Equal(t, []float64{0.6}, written)
	assert.Equal(t, 0.5, NewFraction(0.5, Accessor[float64]{}).Get())
}

func TestHide_DefaultToggleHidesSecondary(t *testing.T) {
	h := NewHide(None, nil)
	require.Equal(t, None, h.Side())

	h.Toggle()
	assert.Equal(t, Secondary, h.Side())

	h.Toggle()
	assert.Equal(t, None, h.Side())

	h.Toggle()
	assert.Equal(t, Secondary, h.Side())
}

func TestHide_ToggleSide(t *testing.T) {
	h := NewHide(None, nil)
	h.ToggleSide(Primary)
	assert.Equal(t, Primary, h.Side())
	h.ToggleSide(Primary)
	assert.Equal(t, None, h.Side())

	h.ToggleSide(Primary)
	h.ToggleSide(Secondary)
	assert.Equal(t, Secondary, h.Side(), "last explicit side wins")
}

func TestHide_ToggleUndoesExplicitHide(t *testing.T) {
	h := NewHide(None, nil)
	h.Hide(Primary)
	h.Toggle()
	assert.Equal(t, None, h.Side())
	h.Toggle()
	assert.Equal(t, Primary, h.Side())
	h.Toggle()
	assert.Equal(t, None, h.Side())
}

func TestHide_SettingCurrentSideKeepsToggleHistory(t *testing.T) {
	h := NewHide(None, nil)
	h.Hide(Primary)
	h.Show()
	h.Show()
	h.Toggle()
	assert.Equal(t, Primary, h.Side())
}

func TestHide_InitiallyHiddenTogglesToShown(t *testing.T) {
	h := NewHide(Primary, nil)
	h.Toggle()
	assert.Equal(t, None, h.Side())
	h.Toggle()
	assert.Equal(t, Primary, h.Side())
}

func TestHide_StoreAndSubscribe(t *testing.T) {
	store := &memoryStore[Side]{value: Secondary, stored: true}
	h := NewHide(None, store)
	assert.Equal(t, Secondary, h.Side())

	var seen []Side
	h.Subscribe(func(s Side) { seen = append(seen, s) })
	h.Show()
	h.Show()

	assert.Equal(t, []Side{None}, store.saves)
	assert.Equal(t, []Side{None}, seen)
}

func TestHide_StoredNoneFallsBackToInitial(t *testing.T) {
	store := &memoryStore[Side]{value: None, stored: true}
	assert.Equal(t, Primary, NewHide(Primary, store).Side())
}

func TestAxisState_Toggle(t *testing.T) {
	store := &memoryStore[Axis]{}
	a := NewAxisState(Horizontal, store)
	a.Toggle()
	assert.Equal(t, Vertical, a.Get())
	a.Toggle()
	assert.Equal(t, Horizontal, a.Get())
	assert.Equal(t, []Axis{Vertical, Horizontal}, store.saves)
}

func TestParseSide(t *testing.T) {
	tests := []struct {
		in   string
		want Side
	}{
		{"", None},
		{"none", None},
		{"Left", Primary},
		{"top", Primary},
		{"secondary", Secondary},
		{" bottom ", Secondary},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSide(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseSide("middle")
	assert.Error(t, err)
}

func TestAxis_UnmarshalText(t *testing.T) {
	var a Axis
	require.NoError(t, a.UnmarshalText([]byte("vertical")))
	assert.Equal(t, Vertical, a)
	assert.Error(t, a.UnmarshalText([]byte("diagonal")))

	text, err := Vertical.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "vertical", string(text))
}

func TestSide_Aliases(t *testing.T) {
	assert.Equal(t, Primary, Left)
	assert.Equal(t, Primary, Top)
	assert.Equal(t, Secondary, Right)
	assert.Equal(t, Secondary, Bottom)
	assert.Equal(t, Secondary, Primary.Other())
	assert.Equal(t, None, None.Other())
	assert.True(t, None.IsNone())
}

func TestStyling_ResetKeepsSubscribers(t *testing.T) {
	s := DefaultStyling()
	var seen []bool
	s.SubscribePreviewHide(func(v bool) { seen = append(seen, v) })

	other := DefaultStyling()
	other.VisibleThickness = 9
	other.HideSplitter = true
	other.SetPreviewHide(true)
	s.Reset(other)

	assert.Equal(t, 9.0, s.VisibleThickness)
	assert.True(t, s.HideSplitter)
	assert.Equal(t, []bool{true}, seen)
}

func TestSplitterPresets(t *testing.T) {
	line := Line(nil, 0)
	assert.Equal(t, 1.0, line.Styling().VisibleThickness)
	assert.Equal(t, 0.0, line.Styling().Inset)
	assert.Equal(t, DefaultColor, line.Styling().Color)

	invisible := Invisible()
	assert.Equal(t, 0.0, invisible.Styling().VisibleThickness)
	assert.Equal(t, float64(DefaultInvisibleThickness), invisible.Styling().HandleThickness())

	assert.Equal(t, float64(DefaultVisibleThickness), NewSplitter(nil).Styling().VisibleThickness)
}
