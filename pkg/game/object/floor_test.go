package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cavegen/pkg/engine/world"
)

func TestFloorCarryMerges(t *testing.T) {
	f := newFixture(16)
	a := f.drop(5, 5, Prep(potionKind))
	b := f.drop(5, 5, Prep(potionKind))
	assert.Equal(t, a, b)
	assert.Equal(t, 2, f.pool.Get(a).Number)
	assert.Equal(t, 1, f.pool.Count())
}

func TestFloorCarryPileLimit(t *testing.T) {
	f := newFixture(64)
	ignored := &Kind{Name: "Ration of Food", TVal: TVFood, Ignore: true}
	f.drop(5, 5, Prep(ignored))
	for i := 1; i < MaxFloorStack; i++ {
		o := Prep(swordKind)
		o.ToH = i
		f.drop(5, 5, o)
	}
	require.Equal(t, MaxFloorStack, f.pool.PileSize(5, 5))

	o := Prep(swordKind)
	o.ToH = 99
	idx := f.pool.FloorCarry(5, 5, &o)
	require.NotZero(t, idx, "the ignored object makes room")
	assert.Equal(t, MaxFloorStack, f.pool.PileSize(5, 5))
	f.pool.ForEachAt(5, 5, func(_ int, o *Object) {
		assert.False(t, o.Ignored())
	})

	o.ToH = 100
	assert.Zero(t, f.pool.FloorCarry(5, 5, &o), "a full pile with nothing ignored is refused")
}

func TestFloorCarryNoStacking(t *testing.T) {
	f := newFixture(16)
	f.pool.NoStacking = true
	f.drop(5, 5, Prep(potionKind))
	o := Prep(swordKind)
	assert.Zero(t, f.pool.FloorCarry(5, 5, &o))
	p := Prep(potionKind)
	assert.NotZero(t, f.pool.FloorCarry(5, 5, &p), "merging is still allowed")
}

func TestDropNearStaysInSight(t *testing.T) {
	f := newFixture(64)
	// A wall splits the room; nothing may land on the far side
	f.cave.FillRectangle(1, 10, 19, 10, world.FeatGranite, world.SquareNone)
	for i := 0; i < 30; i++ {
		o := Prep(swordKind)
		o.ToH = i
		idx := f.pool.DropNear(&o, 0, 10, 8)
		require.NotZero(t, idx)
		got := f.pool.Get(idx)
		assert.Less(t, got.X, 10)
		dy, dx := got.Y-10, got.X-8
		assert.LessOrEqual(t, dy*dy+dx*dx, 10)
	}
}

func TestDropNearPrefersEmptyGrids(t *testing.T) {
	f := newFixture(16)
	idx := f.pool.DropNear(ptr(Prep(swordKind)), 0, 10, 10)
	require.NotZero(t, idx)
	o := f.pool.Get(idx)
	assert.Equal(t, 10, o.Y)
	assert.Equal(t, 10, o.X)

	p := Prep(potionKind)
	idx = f.pool.DropNear(&p, 0, 10, 10)
	o = f.pool.Get(idx)
	assert.False(t, o.Y == 10 && o.X == 10, "an empty neighbour beats a loaded centre")
}

func TestDropNearBreakage(t *testing.T) {
	f := newFixture(16)
	var msgs []string
	f.pool.SetNotifier(func(s string) { msgs = append(msgs, s) })
	p := Prep(potionKind)
	assert.Zero(t, f.pool.DropNear(&p, 100, 10, 10))
	assert.Zero(t, f.pool.Count())
	assert.Len(t, msgs, 1)

	art := &Artifact{Name: "'Narthanc'", Base: swordKind, Created: true}
	o := Prep(swordKind)
	o.Artifact = art
	assert.NotZero(t, f.pool.DropNear(&o, 100, 10, 10), "artifacts never break")
}

func TestDropNearArtifactFindsFloor(t *testing.T) {
	f := newFixture(16)
	// Surround the drop point with rock so the neighbourhood search fails
	f.cave.FillRectangle(1, 1, 19, 19, world.FeatGranite, world.SquareNone)
	f.cave.SetFeat(2, 17, world.FeatFloor)

	art := &Artifact{Name: "'Ringil'", Base: swordKind, Created: true}
	o := Prep(swordKind)
	o.Artifact = art
	idx := f.pool.DropNear(&o, 0, 10, 10)
	require.NotZero(t, idx)
	got := f.pool.Get(idx)
	assert.Equal(t, 2, got.Y)
	assert.Equal(t, 17, got.X)

	plain := Prep(potionKind)
	assert.Zero(t, f.pool.DropNear(&plain, 0, 10, 10), "ordinary objects vanish")
}

func ptr(o Object) *Object { return &o }
