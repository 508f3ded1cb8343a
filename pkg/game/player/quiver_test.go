package player

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cavegen/pkg/game/object"
)

func ammo(n int, note string, toh int) object.Object {
	o := object.Prep(arrow)
	o.Number = n
	o.Note = note
	o.ToH = toh
	return o
}

func quiverNotes(p *Player) []string {
	out := make([]string, QuiverSize)
	for i := range out {
		if o := p.Object(QuiverStart + i); o != nil {
			out[i] = o.Note
			if out[i] == "" {
				out[i] = "-"
			}
		}
	}
	return out
}

func TestInscribedSlot(t *testing.T) {
	cases := map[string]int{
		"":          0,
		"@f3":       QuiverStart + 3,
		"@f0":       QuiverStart,
		"fx @f2":    0,
		"fine @f9":  0,
		"@F1":       0,
		"@f":        0,
		"!k @f7":    QuiverStart + 7,
		"of fire@f": 0,
	}
	for note, want := range cases {
		o := ammo(1, note, 0)
		assert.Equal(t, want, InscribedSlot(&o), note)
	}
}

func TestSortQuiverLocksAndCompacts(t *testing.T) {
	p := New(object.TVNull)
	p.Inventory[QuiverStart+0] = ammo(5, "a", 1)
	p.Inventory[QuiverStart+2] = ammo(5, "@f2", 2)
	p.Inventory[QuiverStart+3] = ammo(5, "b", 3)
	p.Inventory[QuiverStart+5] = ammo(5, "@f1", 4)
	p.Inventory[QuiverStart+7] = ammo(5, "c", 5)

	p.SortQuiver()
	assert.Equal(t, []string{"a", "@f1", "@f2", "b", "c", "", "", "", "", ""}, quiverNotes(p))
}

func TestSortQuiverFirstClaimWins(t *testing.T) {
	p := New(object.TVNull)
	p.Inventory[QuiverStart+1] = ammo(5, "@f0", 1)
	p.Inventory[QuiverStart+4] = ammo(5, "@f0", 2)
	p.SortQuiver()
	assert.Equal(t, 1, p.Inventory[QuiverStart].ToH)
	assert.Equal(t, 2, p.Inventory[QuiverStart+1].ToH)
}

func TestOpenQuiverSlot(t *testing.T) {
	p := New(object.TVNull)
	p.Inventory[QuiverStart+0] = ammo(5, "a", 1)
	p.Inventory[QuiverStart+1] = ammo(5, "@f1", 2)
	p.Inventory[QuiverStart+2] = ammo(5, "b", 3)

	assert.True(t, p.OpenQuiverSlot(QuiverStart))
	assert.Equal(t, []string{"", "@f1", "a", "b", "", "", "", "", "", ""}, quiverNotes(p))
	assert.False(t, p.OpenQuiverSlot(QuiverStart+1), "locked slots stay put")
}

func TestSaveQuiverSize(t *testing.T) {
	p := New(object.TVNull)
	p.SaveQuiverSize()
	assert.Zero(t, p.QuiverSlots)

	p.Inventory[QuiverStart] = ammo(39, "", 1)
	p.Inventory[QuiverStart+1] = ammo(1, "", 2)
	p.SaveQuiverSize()
	assert.Equal(t, 40, p.QuiverCount)
	assert.Equal(t, 2, p.QuiverSlots)
	assert.Equal(t, 1, p.QuiverRemainder)
	assert.Equal(t, PackSize-2, p.maxPack())

	p.Inventory[QuiverStart+1].Number = 0
	p.ItemOptimize(QuiverStart + 1)
	assert.Equal(t, 39, p.QuiverCount)
	assert.Equal(t, 1, p.QuiverSlots)
	assert.Zero(t, p.QuiverRemainder)
}

func TestWieldAmmoIntoQuiver(t *testing.T) {
	p := New(object.TVNull)
	a := ammo(12, "", 0)
	p.Carry(&a)
	assert.Equal(t, QuiverStart, p.Wield(0))
	b := ammo(8, "", 0)
	p.Carry(&b)
	assert.Equal(t, QuiverStart, p.Wield(0), "similar ammo joins the existing quiver stack")
	assert.Equal(t, 20, p.Inventory[QuiverStart].Number)
	assert.Equal(t, 20, p.QuiverCount)
	assert.Equal(t, 1, p.QuiverSlots)
	assert.Zero(t, p.InvenCnt)
}
