package monster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cavegen/pkg/engine/rng"
	"cavegen/pkg/engine/world"
	"cavegen/pkg/game/data"
)

func openCave() *world.Cave {
	c := world.NewCave(20, 20)
	c.FillRectangle(0, 0, 19, 19, world.FeatPerm, world.SquareNone)
	c.FillRectangle(1, 1, 18, 18, world.FeatFloor, world.SquareNone)
	return c
}

func TestListPopNeverReturnsZero(t *testing.T) {
	c := openCave()
	l := NewList(4, c)
	race := &Race{Name: "Jackal", MaxNum: 100, Rarity: 1}

	a := l.Place(1, 1, race, false)
	b := l.Place(1, 2, race, false)
	d := l.Place(1, 3, race, false)
	assert.Equal(t, []int{1, 2, 3}, []int{a, b, d})
	assert.Zero(t, l.Place(1, 4, race, false), "full list must return 0")
	assert.Equal(t, 3, race.CurNum)

	l.Delete(b)
	assert.Equal(t, 0, c.MonsterIdx(1, 2))
	assert.Equal(t, 2, l.Count())
	assert.Equal(t, 2, l.Place(2, 2, race, false), "lowest freed slot is reused")
}

func TestDeleteRunsReleaseHook(t *testing.T) {
	c := openCave()
	l := NewList(8, c)
	race := &Race{Name: "Kobold", MaxNum: 100}
	idx := l.Place(5, 5, race, true)
	l.Get(idx).HeldObject = 7

	var released []int
	l.SetReleaseHook(func(i int, m *Monster) {
		released = append(released, i, m.HeldObject)
	})
	l.Delete(idx)
	assert.Equal(t, []int{idx, 7}, released)
	assert.Nil(t, l.Get(idx))
	assert.Zero(t, race.CurNum)
}

func TestWipeRestoresUniques(t *testing.T) {
	c := openCave()
	l := NewList(8, c)
	races := NewRaces([]data.Race{{Name: "Grip", Unique: true, Level: 2}})
	require.Len(t, races, 1)
	s := NewSpawner(races, l, rng.New(1))

	assert.True(t, s.PlaceNewMonster(c, 3, 3, races[0], true, true, 0))
	assert.False(t, s.PlaceNewMonster(c, 4, 4, races[0], true, true, 0), "unique placed twice")
	l.Wipe()
	assert.Zero(t, races[0].CurNum)
	assert.Zero(t, c.MonsterIdx(3, 3))
	assert.True(t, s.PlaceNewMonster(c, 4, 4, races[0], true, true, 0))
}

func TestPickRespectsLevelAndQuestors(t *testing.T) {
	races := NewRaces(data.MustDefault().Races)
	s := NewSpawner(races, NewList(8, openCave()), rng.New(9))
	for i := 0; i < 200; i++ {
		r := s.Pick(5, nil)
		require.NotNil(t, r)
		assert.False(t, r.Questor)
		assert.LessOrEqual(t, r.Level, 10)
	}
	orcs := s.Pick(30, func(r *Race) bool { return r.Base == "orc" })
	require.NotNil(t, orcs)
	assert.Equal(t, "orc", orcs.Base)
	assert.Nil(t, s.Pick(30, func(r *Race) bool { return false }))
}

func TestPlaceAddsRating(t *testing.T) {
	c := openCave()
	l := NewList(32, c)
	race := &Race{Name: "Wolf", Power: 8, MaxNum: 100, Friends: 5}
	s := NewSpawner([]*Race{race}, l, rng.New(4))
	require.True(t, s.PlaceNewMonster(c, 10, 10, race, false, true, 0))
	assert.Equal(t, uint32(640*l.Count()), c.MonRating)
	assert.GreaterOrEqual(t, l.Count(), 1)
}

func TestPlaceSkipsAvoidedGrids(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		c := openCave()
		l := NewList(256, c)
		race := &Race{Name: "Cave spider", Power: 1, MaxNum: 1000, Friends: 60}
		s := NewSpawner([]*Race{race}, l, rng.New(seed))
		s.Avoid = func(y, x int) bool { return y == 10 && x == 11 }

		assert.False(t, s.PlaceNewMonster(c, 10, 11, race, true, true, 0))
		require.True(t, s.PlaceNewMonster(c, 10, 10, race, true, true, 0))
		assert.Zero(t, c.MonsterIdx(10, 11), "seed %d: monster on an avoided grid", seed)
	}
}
