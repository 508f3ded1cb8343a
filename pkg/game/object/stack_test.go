package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cavegen/pkg/engine/rng"
	"cavegen/pkg/game/data"
	"cavegen/pkg/game/monster"
)

func TestTorchesWithDifferentFuelStack(t *testing.T) {
	a := Prep(torchKind)
	a.Timeout = 30
	b := Prep(torchKind)
	b.Timeout = 50

	require.True(t, Similar(&a, &b, StackPack))
	require.True(t, Similar(&b, &a, StackPack))
	Absorb(&a, &b)
	assert.Equal(t, 2, a.Number)
	assert.Equal(t, 80, a.Timeout)
}

func TestSimilarRules(t *testing.T) {
	dagger := Prep(swordKind)
	dagger.Ident = IdentKnown

	enchanted := dagger
	enchanted.ToH = 3

	worn := dagger
	worn.Timeout = 10

	unknown := dagger
	unknown.Ident = 0

	glimpsed := dagger
	glimpsed.Marked = MarkAware

	inscribed := dagger
	inscribed.Note = "@f1"
	otherNote := dagger
	otherNote.Note = "@f2"

	art := dagger
	art.Artifact = &Artifact{Name: "'Narthanc'", Base: swordKind}

	chest := Prep(&Kind{Name: "Small wooden chest", TVal: TVChest})
	wandA := Prep(wandKind)
	wandA.Pval = MaxPval - 5
	wandB := Prep(wandKind)
	wandB.Pval = 6

	big := Prep(potionKind)
	big.Number = 30
	big2 := Prep(potionKind)
	big2.Number = 10

	cases := []struct {
		name string
		a, b Object
		mode StackMode
		want bool
	}{
		{"identical daggers", dagger, dagger, StackPack, true},
		{"different enchantment", dagger, enchanted, StackPack, false},
		{"different timeout on a weapon", dagger, worn, StackPack, false},
		{"unknown wearable listed", dagger, unknown, StackList, false},
		{"unknown wearable in pack", dagger, unknown, StackPack, true},
		{"glimpsed object listed", dagger, glimpsed, StackList, false},
		{"one inscription", dagger, inscribed, StackPack, true},
		{"conflicting inscriptions", inscribed, otherNote, StackPack, false},
		{"artifact", dagger, art, StackPack, false},
		{"chests", chest, chest, StackPack, false},
		{"charge overflow", wandA, wandB, StackPack, false},
		{"stack too large", big, big2, StackPack, false},
		{"stack too large in a store", big, big2, StackStore, true},
		{"different kinds", dagger, Prep(potionKind), StackPack, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, b := tc.a, tc.b
			assert.Equal(t, tc.want, Similar(&a, &b, tc.mode))
			assert.Equal(t, tc.want, Similar(&b, &a, tc.mode), "similarity must be symmetric")
		})
	}

	assert.False(t, Similar(&dagger, &dagger, StackPack), "an object never stacks with itself")
}

func TestSimilarIsSymmetricOverGeneratedObjects(t *testing.T) {
	set := data.MustDefault()
	kinds, err := NewKinds(set.Kinds)
	require.NoError(t, err)
	arts, err := NewArtifacts(set.Artifacts, kinds)
	require.NoError(t, err)
	m := NewMaker(kinds, arts, rng.New(3))

	var objs []Object
	for i := 0; i < 120; i++ {
		o, _, ok := m.Make(1+i%40, i%7 == 0, false, TVNull)
		if !ok {
			continue
		}
		if i%3 == 0 {
			o.Ident = IdentKnown
		}
		if i%11 == 0 {
			o.Marked = MarkAware
		}
		objs = append(objs, o)
	}
	require.NotEmpty(t, objs)
	for _, mode := range []StackMode{StackList, StackPack, StackFloor, StackStore} {
		for i := range objs {
			for j := range objs {
				assert.Equal(t, Similar(&objs[i], &objs[j], mode), Similar(&objs[j], &objs[i], mode))
			}
		}
	}
}

func TestSplitMergeRoundTrip(t *testing.T) {
	wand := Prep(wandKind)
	wand.Number = 5
	wand.Pval = 35

	rod := Prep(rodKind)
	rod.Number = 4
	rod.Timeout = 70

	torch := Prep(torchKind)
	torch.Number = 3
	torch.Timeout = 3000

	for _, orig := range []Object{wand, rod, torch} {
		for n := 1; n < orig.Number; n++ {
			src := orig
			piece := Split(&src, n)
			assert.Equal(t, n, piece.Number)
			assert.Equal(t, orig.Number-n, src.Number)
			require.True(t, Similar(&src, &piece, StackPack))
			Absorb(&src, &piece)
			assert.Equal(t, orig.Number, src.Number, "%s split %d", orig.Name(), n)
			assert.Equal(t, orig.Pval, src.Pval, "%s split %d", orig.Name(), n)
			assert.Equal(t, orig.Timeout, src.Timeout, "%s split %d", orig.Name(), n)
		}
	}
}

func TestSplitCharges(t *testing.T) {
	wand := Prep(wandKind)
	wand.Number = 4
	wand.Pval = 10
	piece := Split(&wand, 1)
	assert.Equal(t, 2, piece.Pval)
	assert.Equal(t, 8, wand.Pval)

	rod := Prep(rodKind)
	rod.Number = 3
	rod.Timeout = 75
	piece = Split(&rod, 1)
	assert.Equal(t, 30, piece.Timeout, "rod timeout is capped at one rod's charge time")
	assert.Equal(t, 45, rod.Timeout)
}

func TestDistributeAndReduceCharges(t *testing.T) {
	wand := Prep(wandKind)
	wand.Number = 2
	wand.Pval = 9
	var dst Object
	DistributeCharges(&wand, &dst, 2)
	assert.Equal(t, 9, dst.Pval)
	assert.Equal(t, 9, wand.Pval, "whole stack moves keep the source untouched")

	ReduceCharges(&wand, 1)
	assert.Equal(t, 5, wand.Pval)
}

func TestAbsorbCapsChargesAndCount(t *testing.T) {
	a := Prep(goldKind)
	a.Pval = MaxPval - 1
	b := Prep(goldKind)
	b.Pval = 10
	Absorb(&a, &b)
	assert.Equal(t, MaxPval, a.Pval)

	p := Prep(potionKind)
	p.Number = 30
	q := Prep(potionKind)
	q.Number = 30
	Absorb(&p, &q)
	assert.Equal(t, MaxStackSize-1, p.Number)
}

func TestAbsorbPartial(t *testing.T) {
	a := Prep(potionKind)
	a.Number = 25
	b := Prep(potionKind)
	b.Number = 30
	AbsorbPartial(&a, &b)
	assert.Equal(t, MaxStackSize-1, a.Number)
	assert.Equal(t, 16, b.Number)

	w := Prep(wandKind)
	w.Number = 20
	w.Pval = 40
	v := Prep(wandKind)
	v.Number = 30
	v.Pval = 60
	AbsorbPartial(&w, &v)
	assert.Equal(t, 39, w.Number)
	assert.Equal(t, 11, v.Number)
	assert.Equal(t, 100, w.Pval+v.Pval, "no charges lost")
	assert.Equal(t, 78, w.Pval)
}

func TestMergeOrigin(t *testing.T) {
	orc := &monster.Race{Name: "Cave orc"}
	grip := &monster.Race{Name: "Grip", Unique: true}

	a := Prep(potionKind)
	a.Origin, a.OriginDepth, a.OriginRace = OriginDrop, 5, orc
	b := Prep(potionKind)
	b.Origin, b.OriginDepth, b.OriginRace = OriginDrop, 5, grip

	x, y := a, b
	Absorb(&x, &y)
	assert.Equal(t, OriginDrop, x.Origin)
	assert.Equal(t, grip, x.OriginRace, "the unique monster's drop wins")

	x, y = b, a
	Absorb(&x, &y)
	assert.Equal(t, grip, x.OriginRace)

	c := Prep(potionKind)
	c.Origin, c.OriginDepth = OriginFloor, 9
	x = a
	Absorb(&x, &c)
	assert.Equal(t, OriginMixed, x.Origin)

	same := a
	x = a
	Absorb(&x, &same)
	assert.Equal(t, OriginDrop, x.Origin)
}

func TestAbsorbUnionsKnowledge(t *testing.T) {
	a := Prep(potionKind)
	b := Prep(potionKind)
	b.Ident = IdentKnown
	b.KnownFlags = FlagSlowDigest
	b.Note = "!q"
	Absorb(&a, &b)
	assert.True(t, a.IsKnown())
	assert.Equal(t, FlagSlowDigest, a.KnownFlags)
	assert.Equal(t, "!q", a.Note)
}

func TestUnknownPlainObjectsStack(t *testing.T) {
	kinds := []*Kind{
		{Name: "Flask of Oil", TVal: TVFlask, Cost: 3},
		{Name: "Magic for Beginners", TVal: TVMagicBook, Cost: 25, EasyKnow: true},
	}
	for _, k := range kinds {
		t.Run(k.Name, func(t *testing.T) {
			a, b := Prep(k), Prep(k)
			require.False(t, a.IsKnown())
			for _, mode := range []StackMode{StackFloor, StackPack, StackList | StackPack} {
				assert.True(t, Similar(&a, &b, mode), "mode %d", mode)
			}
		})
	}
}

func TestAbsorbClearsEmptyMark(t *testing.T) {
	a := Prep(wandKind)
	a.Ident = IdentEmpty
	b := Prep(wandKind)
	b.Ident = IdentEmpty | IdentKnown
	b.Pval = 4

	require.True(t, Similar(&a, &b, StackPack))
	Absorb(&a, &b)
	assert.Equal(t, 4, a.Pval)
	assert.Zero(t, a.Ident&IdentEmpty)
	assert.NotZero(t, a.Ident&IdentKnown)
}

func TestSplitWholeStackTakesEverything(t *testing.T) {
	wand := Prep(wandKind)
	wand.Number = 3
	wand.Pval = 12
	piece := Split(&wand, 5)
	assert.Equal(t, 3, piece.Number)
	assert.Equal(t, 12, piece.Pval)
	assert.Zero(t, wand.Number)
	assert.Zero(t, wand.Pval)

	rod := Prep(rodKind)
	rod.Number = 2
	rod.Timeout = 50
	piece = Split(&rod, 2)
	assert.Equal(t, 50, piece.Timeout)
	assert.Zero(t, rod.Timeout)
}
