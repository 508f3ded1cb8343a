package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cavegen/pkg/engine/rng"
	"cavegen/pkg/engine/world"
	"cavegen/pkg/game/monster"
)

type fixture struct {
	cave     *world.Cave
	monsters *monster.List
	pool     *Pool
}

func newFixture(limit int) *fixture {
	c := world.NewCave(21, 21)
	c.FillRectangle(0, 0, 20, 20, world.FeatPerm, world.SquareNone)
	c.FillRectangle(1, 1, 19, 19, world.FeatFloor, world.SquareNone)
	ml := monster.NewList(16, c)
	return &fixture{cave: c, monsters: ml, pool: NewPool(limit, c, ml, rng.New(7))}
}

var (
	torchKind  = &Kind{Name: "Wooden Torch", TVal: TVLight, Fuel: 5000, Flags: FlagBurnsOut}
	wandKind   = &Kind{Name: "Wand of Magic Missile", TVal: TVWand, Cost: 100, Aware: true}
	rodKind    = &Kind{Name: "Rod of Illumination", TVal: TVRod, ChargeTime: 30}
	potionKind = &Kind{Name: "Potion of Speed", TVal: TVPotion}
	goldKind   = &Kind{Name: "Gold", TVal: TVGold}
	swordKind  = &Kind{Name: "Dagger", TVal: TVSword, Level: 1}
)

func (f *fixture) drop(y, x int, o Object) int {
	idx := f.pool.FloorCarry(y, x, &o)
	if idx == 0 {
		panic("no room")
	}
	return idx
}

func TestPopNeverReturnsSentinel(t *testing.T) {
	f := newFixture(4)
	var got []int
	for i := 0; i < 3; i++ {
		got = append(got, f.pool.Pop())
	}
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Nil(t, f.pool.Get(0))
}

func TestPopAtCeiling(t *testing.T) {
	f := newFixture(3)
	var msgs []string
	f.pool.SetNotifier(func(s string) { msgs = append(msgs, s) })
	f.pool.SetLive(true)

	f.drop(5, 5, Prep(potionKind))
	f.drop(5, 6, Prep(swordKind))
	require.Equal(t, 2, f.pool.Count())

	assert.Zero(t, f.pool.Pop())
	assert.Equal(t, 2, f.pool.Count(), "failed pop must not change the live count")
	assert.Len(t, msgs, 1)

	o := Prep(goldKind)
	assert.Zero(t, f.pool.FloorCarry(6, 6, &o))
}

func TestPopReusesLowestFreed(t *testing.T) {
	f := newFixture(4)
	a := f.drop(2, 2, Prep(potionKind))
	b := f.drop(2, 3, Prep(swordKind))
	f.drop(2, 4, Prep(swordKind))
	f.pool.Delete(a)
	f.pool.Delete(b)
	assert.Zero(t, f.cave.ObjectIdx(2, 2))
	assert.Equal(t, a, f.pool.Pop())
}

func TestDeleteExcisesFromPile(t *testing.T) {
	f := newFixture(16)
	a := f.drop(4, 4, Prep(potionKind))
	b := f.drop(4, 4, Prep(swordKind))
	c := f.drop(4, 4, Prep(torchKind))
	require.Equal(t, c, f.cave.ObjectIdx(4, 4))

	f.pool.Delete(b)
	var pile []int
	f.pool.ForEachAt(4, 4, func(idx int, _ *Object) { pile = append(pile, idx) })
	assert.Equal(t, []int{c, a}, pile)
}

func TestDeleteMonsterDeletesHeldObjects(t *testing.T) {
	f := newFixture(16)
	race := &monster.Race{Name: "Cutpurse", MaxNum: 10}
	m := f.monsters.Place(8, 8, race, false)

	held := []int{f.pool.Place(Prep(potionKind)), f.pool.Place(Prep(swordKind))}
	for _, idx := range held {
		require.True(t, f.pool.GiveToMonster(idx, m))
	}
	mim := f.drop(9, 9, Prep(goldKind))
	f.pool.Get(mim).MimickingMonster = m
	f.monsters.Get(m).MimickedObject = mim

	f.monsters.Delete(m)
	assert.Zero(t, f.pool.Count())
	assert.Zero(t, f.cave.ObjectIdx(9, 9))
}

func TestDeleteObjectClearsMimic(t *testing.T) {
	f := newFixture(16)
	m := f.monsters.Place(8, 8, &monster.Race{Name: "Creeping coins", MaxNum: 10}, false)
	idx := f.drop(8, 8, Prep(goldKind))
	f.pool.Get(idx).MimickingMonster = m
	mon := f.monsters.Get(m)
	mon.MimickedObject = idx
	mon.Unaware = true

	f.pool.Delete(idx)
	assert.Zero(t, mon.MimickedObject)
	assert.False(t, mon.Unaware)
}

func TestDeleteReleasesUnseenArtifact(t *testing.T) {
	f := newFixture(8)
	art := &Artifact{Name: "'Narthanc'", Base: swordKind, Created: true}
	o := Prep(swordKind)
	o.Artifact = art
	idx := f.drop(3, 3, o)
	f.pool.Delete(idx)
	assert.False(t, art.Created)

	art.Created = true
	o.Ident = IdentSensed
	idx = f.drop(3, 3, o)
	f.pool.Delete(idx)
	assert.True(t, art.Created, "sensed artifacts stay created")
}

func TestDeleteAtRemovesPileAndMimic(t *testing.T) {
	f := newFixture(16)
	m := f.monsters.Place(6, 6, &monster.Race{Name: "Mimic", MaxNum: 10}, false)
	f.drop(6, 6, Prep(potionKind))
	idx := f.drop(6, 6, Prep(swordKind))
	f.pool.Get(idx).MimickingMonster = m
	f.monsters.Get(m).MimickedObject = idx

	f.pool.DeleteAt(6, 6)
	assert.Zero(t, f.pool.Count())
	assert.Zero(t, f.monsters.Count())
	assert.Zero(t, f.cave.ObjectIdx(6, 6))
}

func TestWipePreservesUnseenArtifacts(t *testing.T) {
	f := newFixture(8)
	art := &Artifact{Name: "'Ringil'", Base: swordKind, Created: true}
	o := Prep(swordKind)
	o.Artifact = art
	f.drop(2, 2, o)
	f.pool.Wipe()
	assert.False(t, art.Created)
	assert.Zero(t, f.pool.Count())
	assert.Equal(t, 1, f.pool.Max())
	assert.Zero(t, f.cave.ObjectIdx(2, 2))
}

func TestCompactRepairsReferences(t *testing.T) {
	f := newFixture(64)
	race := &monster.Race{Name: "Orc", MaxNum: 10}
	m := f.monsters.Place(10, 10, race, false)

	var victims []int
	for i := 0; i < 20; i++ {
		idx := f.drop(1+i%5, 1+i/5, Prep(swordKind))
		if i%2 == 0 {
			victims = append(victims, idx)
		}
	}
	held := f.pool.Place(Prep(potionKind))
	require.True(t, f.pool.GiveToMonster(held, m))
	held2 := f.pool.Place(Prep(torchKind))
	require.True(t, f.pool.GiveToMonster(held2, m))

	for _, idx := range victims {
		f.pool.Delete(idx)
	}
	live := f.pool.Count()
	f.pool.Compact(0, 10, 10)

	assert.Equal(t, live+1, f.pool.Max(), "live records are packed at the front")
	seen := 0
	f.cave.ForEach(func(y, x int) {
		f.pool.ForEachAt(y, x, func(idx int, o *Object) {
			require.True(t, o.IsLive(), "grid %d,%d points at dead record %d", y, x, idx)
			assert.Equal(t, y, o.Y)
			assert.Equal(t, x, o.X)
			seen++
		})
	})
	for cur := f.monsters.Get(m).HeldObject; cur != 0; cur = f.pool.Get(cur).Next {
		o := f.pool.Get(cur)
		require.NotNil(t, o)
		assert.Equal(t, m, o.HeldBy)
		seen++
	}
	assert.Equal(t, live, seen)
}

func TestCompactFreesMoneyFirst(t *testing.T) {
	f := newFixture(32)
	for i := 0; i < 5; i++ {
		g := Prep(goldKind)
		g.Pval = 10
		f.drop(2, 2+i, g)
	}
	for i := 0; i < 5; i++ {
		f.drop(3, 2+i, Prep(swordKind))
	}
	f.pool.Compact(5, 3, 3)
	assert.Equal(t, 5, f.pool.Count())
	f.pool.ForEach(func(_ int, o *Object) {
		assert.Equal(t, TVSword, o.TVal())
	})
}

func TestCompactSparesArtifacts(t *testing.T) {
	for trial := 0; trial < 50; trial++ {
		f := newFixture(32)
		f.pool.rand = rng.New(int64(trial))
		art := &Artifact{Name: "'Narthanc'", Base: swordKind, Created: true}
		o := Prep(swordKind)
		o.Artifact = art
		f.drop(19, 19, o)
		for i := 0; i < 8; i++ {
			f.drop(18, 1+i, Prep(swordKind))
		}
		f.pool.Compact(8, 1, 1)

		found := false
		f.pool.ForEach(func(_ int, o *Object) {
			if o.Artifact == art {
				found = true
			}
		})
		require.True(t, found, "trial %d compacted an artifact", trial)
		assert.Equal(t, 1, f.pool.Count())
	}
}
