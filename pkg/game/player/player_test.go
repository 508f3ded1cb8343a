package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cavegen/pkg/game/object"
)

var (
	magicBook = &object.Kind{Name: "Magic for Beginners", TVal: object.TVMagicBook, SVal: 1, Aware: true, EasyKnow: true}
	potionCLW = &object.Kind{Name: "Potion of Cure Light Wounds", TVal: object.TVPotion, SVal: 1, Cost: 20, Aware: true, EasyKnow: true}
	potionSpd = &object.Kind{Name: "Potion of Speed", TVal: object.TVPotion, SVal: 2, Cost: 75, Aware: true, EasyKnow: true}
	potionUnk = &object.Kind{Name: "Potion of Berserk Strength", TVal: object.TVPotion, SVal: 3, Cost: 100}
	torch     = &object.Kind{Name: "Wooden Torch", TVal: object.TVLight, SVal: 1, Cost: 1, Aware: true}
	dagger    = &object.Kind{Name: "Dagger", TVal: object.TVSword, SVal: 4, Cost: 35, Aware: true}
	arrow     = &object.Kind{Name: "Arrow", TVal: object.TVArrow, SVal: 1, Cost: 1, Aware: true}
	food      = &object.Kind{Name: "Ration of Food", TVal: object.TVFood, SVal: 1, Cost: 3, Aware: true, EasyKnow: true}
	gold      = &object.Kind{Name: "Gold", TVal: object.TVGold}
)

func item(k *object.Kind, n int) *object.Object {
	o := object.Prep(k)
	o.Number = n
	return &o
}

func known(k *object.Kind, n int) *object.Object {
	o := item(k, n)
	o.Ident = object.IdentKnown
	return o
}

func names(p *Player) []string {
	var out []string
	for i := 0; i < PackSize; i++ {
		if o := p.Object(i); o != nil {
			out = append(out, o.Kind.Name)
		}
	}
	return out
}

func TestCarryOrder(t *testing.T) {
	p := New(object.TVMagicBook)
	p.Carry(item(food, 2))
	p.Carry(item(potionUnk, 1))
	p.Carry(item(potionSpd, 1))
	p.Carry(known(dagger, 1))
	p.Carry(item(magicBook, 1))
	p.Carry(item(potionCLW, 1))

	assert.Equal(t, []string{
		"Magic for Beginners",
		"Ration of Food",
		"Potion of Cure Light Wounds",
		"Potion of Speed",
		"Potion of Berserk Strength",
		"Dagger",
	}, names(p))
	assert.Equal(t, 6, p.InvenCnt)
}

func TestCarryMergesFirstMatch(t *testing.T) {
	p := New(object.TVNull)
	p.Carry(item(food, 1))
	first := p.Carry(item(potionCLW, 2))
	again := p.Carry(item(potionCLW, 3))
	assert.Equal(t, 1, first)
	assert.Equal(t, first, again)
	assert.Equal(t, 5, p.Inventory[first].Number)
	assert.Equal(t, 2, p.InvenCnt)
}

func TestLightsSortByFuel(t *testing.T) {
	p := New(object.TVNull)
	for _, fuel := range []int{100, 3000, 1500} {
		o := known(torch, 1)
		o.Timeout = fuel
		o.ToH = fuel // keep them from stacking
		p.Carry(o)
	}
	var got []int
	for i := 0; i < 3; i++ {
		got = append(got, p.Inventory[i].Timeout)
	}
	assert.Equal(t, []int{3000, 1500, 100}, got)
}

func TestCarryFullPack(t *testing.T) {
	p := New(object.TVNull)
	for i := 0; i < PackSize; i++ {
		o := known(dagger, 1)
		o.ToH = i
		require.NotEqual(t, -1, p.Carry(o))
	}
	o := known(dagger, 1)
	o.ToH = 99
	assert.False(t, p.CarryOkay(o))
	assert.True(t, p.CarryOkay(known(dagger, 1)), "stacks onto an existing dagger")
	assert.True(t, p.PackIsFull())
}

func TestCombinePack(t *testing.T) {
	var msgs []string
	p := New(object.TVNull)
	p.SetNotifier(func(s string) { msgs = append(msgs, s) })
	p.Inventory[0] = *item(potionCLW, 30)
	p.Inventory[1] = *item(food, 1)
	p.Inventory[2] = *item(potionCLW, 20)
	g := item(gold, 1)
	g.Pval = 250
	p.Inventory[3] = *g
	p.Inventory[4] = *item(food, 4)
	p.InvenCnt = 5

	p.CombinePack()
	assert.Equal(t, 250, p.Au)
	assert.Equal(t, 39, p.Inventory[0].Number)
	assert.Equal(t, 5, p.Inventory[1].Number)
	assert.Equal(t, 11, p.Inventory[2].Number)
	assert.False(t, p.Inventory[3].IsLive())
	assert.Equal(t, 3, p.InvenCnt)
	assert.Contains(t, msgs, "You combine some items in your pack.")
}

func TestReorderPack(t *testing.T) {
	p := New(object.TVNull)
	p.Inventory[0] = *known(dagger, 1)
	p.Inventory[1] = *item(food, 1)
	p.Inventory[2] = *item(potionSpd, 1)
	p.InvenCnt = 3
	p.ReorderPack()
	assert.Equal(t, []string{"Ration of Food", "Potion of Speed", "Dagger"}, names(p))
}

func TestItemIncreaseAndOptimize(t *testing.T) {
	p := New(object.TVNull)
	p.Carry(item(potionCLW, 2))
	p.Carry(known(dagger, 1))
	p.ItemIncrease(0, -5)
	assert.Zero(t, p.Inventory[0].Number)
	p.ItemOptimize(0)
	assert.Equal(t, []string{"Dagger"}, names(p))
	assert.Equal(t, 1, p.InvenCnt)

	p.ItemIncrease(0, 1000)
	assert.Equal(t, 255, p.Inventory[0].Number)
}

func TestWieldSlot(t *testing.T) {
	p := New(object.TVNull)
	assert.Equal(t, SlotWield, p.WieldSlot(item(dagger, 1)))
	assert.Equal(t, SlotLight, p.WieldSlot(item(torch, 1)))
	assert.Equal(t, -1, p.WieldSlot(item(food, 1)))

	ring := &object.Kind{Name: "Ring of Protection", TVal: object.TVRing}
	assert.Equal(t, SlotRightRing, p.WieldSlot(item(ring, 1)))
	p.Inventory[SlotRightRing] = *item(ring, 1)
	assert.Equal(t, SlotLeftRing, p.WieldSlot(item(ring, 1)))

	a := item(arrow, 10)
	assert.Equal(t, QuiverStart, p.WieldSlot(a))
	a.Note = "@f4"
	assert.Equal(t, QuiverStart+4, p.WieldSlot(a))
}

func TestWieldAndTakeoff(t *testing.T) {
	p := New(object.TVNull)
	p.Carry(known(dagger, 1))
	slot := p.Wield(0)
	require.Equal(t, SlotWield, slot)
	assert.Zero(t, p.InvenCnt)
	assert.Equal(t, 1, p.EquipCnt)

	back := p.Takeoff(SlotWield, 1)
	require.Equal(t, 0, back)
	assert.False(t, p.Inventory[SlotWield].IsLive())
	assert.Equal(t, 1, p.InvenCnt)
}

type floorLog struct{ dropped []object.Object }

func (f *floorLog) DropNear(o *object.Object, _, _, _ int) int {
	f.dropped = append(f.dropped, *o)
	return 1
}

func TestDropSplitsCharges(t *testing.T) {
	wand := &object.Kind{Name: "Wand of Magic Missile", TVal: object.TVWand, Aware: true}
	p := New(object.TVNull)
	w := item(wand, 4)
	w.Pval = 20
	p.Carry(w)

	floor := &floorLog{}
	p.Drop(0, 1, floor)
	require.Len(t, floor.dropped, 1)
	assert.Equal(t, 1, floor.dropped[0].Number)
	assert.Equal(t, 5, floor.dropped[0].Pval)
	assert.Equal(t, 3, p.Inventory[0].Number)
	assert.Equal(t, 15, p.Inventory[0].Pval)

	p.Drop(0, 10, floor)
	assert.Equal(t, 3, floor.dropped[1].Number)
	assert.Zero(t, p.InvenCnt)
}

func TestItemIncreaseTakesCharges(t *testing.T) {
	wand := &object.Kind{Name: "Wand of Stinking Cloud", TVal: object.TVWand, Aware: true}
	p := New(object.TVNull)
	w := item(wand, 4)
	w.Pval = 24
	p.Carry(w)

	p.ItemIncrease(0, -1)
	assert.Equal(t, 3, p.Inventory[0].Number)
	assert.Equal(t, 18, p.Inventory[0].Pval)

	p.ItemIncrease(0, 2)
	assert.Equal(t, 18, p.Inventory[0].Pval, "adding items never adds charges")
}
