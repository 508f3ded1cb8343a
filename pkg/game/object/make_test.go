package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cavegen/pkg/engine/rng"
	"cavegen/pkg/game/data"
)

func newMaker(t *testing.T, seed int64) *Maker {
	t.Helper()
	set := data.MustDefault()
	kinds, err := NewKinds(set.Kinds)
	require.NoError(t, err)
	arts, err := NewArtifacts(set.Artifacts, kinds)
	require.NoError(t, err)
	return NewMaker(kinds, arts, rng.New(seed))
}

func TestNewKindsRejectsUnknownTVal(t *testing.T) {
	_, err := NewKinds([]data.Kind{{Name: "Thing", TVal: "widget"}})
	assert.ErrorContains(t, err, "unknown tval")

	_, err = NewKinds([]data.Kind{{Name: "Thing", TVal: "food", Flags: []string{"GLOWS"}}})
	assert.ErrorContains(t, err, "unknown object flag")
}

func TestMakeRespectsCategory(t *testing.T) {
	m := newMaker(t, 11)
	for i := 0; i < 50; i++ {
		o, rating, ok := m.Make(10, false, false, TVPotion)
		require.True(t, ok)
		assert.Equal(t, TVPotion, o.TVal())
		assert.GreaterOrEqual(t, rating, 0)
		assert.GreaterOrEqual(t, o.Number, 1)
	}
}

func TestMakeGoodItems(t *testing.T) {
	m := newMaker(t, 5)
	for i := 0; i < 100; i++ {
		o, _, ok := m.Make(20, true, false, TVNull)
		require.True(t, ok)
		if o.Artifact != nil {
			continue
		}
		assert.True(t, isGoodKind(o.Kind), o.Kind.Name)
		assert.GreaterOrEqual(t, o.ToH+o.ToD+o.ToA, 0, "good items are never cursed")
	}
}

func TestMakeChargesAndFuel(t *testing.T) {
	m := newMaker(t, 2)
	for i := 0; i < 30; i++ {
		w, _, ok := m.Make(30, false, false, TVWand)
		require.True(t, ok)
		assert.Greater(t, w.Pval, w.Kind.ChargeBase)
		assert.LessOrEqual(t, w.Pval, w.Kind.ChargeBase+w.Kind.ChargeDice)

		l, _, ok := m.Make(30, false, false, TVLight)
		require.True(t, ok)
		assert.Equal(t, l.Kind.Fuel, l.Timeout)
	}
}

func TestArtifactsAreCreatedOnce(t *testing.T) {
	m := newMaker(t, 8)
	seen := map[*Artifact]int{}
	for i := 0; i < 3000; i++ {
		o, _, ok := m.Make(60, true, true, TVNull)
		if ok && o.Artifact != nil {
			seen[o.Artifact]++
			assert.True(t, o.Artifact.Created)
		}
	}
	require.NotEmpty(t, seen)
	for a, n := range seen {
		assert.Equal(t, 1, n, a.Name)
	}
}

func TestGold(t *testing.T) {
	m := newMaker(t, 4)
	for _, level := range []int{1, 20, 50} {
		avg := (18*level)/10 + 18
		spread := level + 10
		for i := 0; i < 50; i++ {
			g := m.Gold(level)
			assert.True(t, g.TVal().IsMoney())
			assert.GreaterOrEqual(t, g.Pval, max(avg-spread, 1))
			assert.LessOrEqual(t, g.Pval, avg+spread)
			assert.Equal(t, g.Pval, Value(&g, 1))
		}
	}
}

func TestValue(t *testing.T) {
	o := Prep(&Kind{Name: "Dagger", TVal: TVSword, Cost: 35})
	o.ToH, o.ToD = 2, 3
	assert.Equal(t, 535, Value(&o, 1))
	assert.Equal(t, 1070, Value(&o, 2))

	o.ToH = -20
	assert.Zero(t, Value(&o, 1))
}
