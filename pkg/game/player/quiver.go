package player

import (
	"strings"

	"cavegen/pkg/game/object"
)

// InscribedSlot returns the quiver slot o asks for with an "@fN"
// inscription, or 0. Only the first 'f' in the inscription counts.
func InscribedSlot(o *object.Object) int {
	i := strings.IndexByte(o.Note, 'f')
	if i < 0 || i+1 >= len(o.Note) {
		return 0
	}
	c := o.Note[i+1]
	if c < '0' || c > '9' {
		return 0
	}
	return QuiverStart + int(c-'0')
}

func (p *Player) swapQuiver(a, b int) {
	p.Inventory[QuiverStart+a], p.Inventory[QuiverStart+b] = p.Inventory[QuiverStart+b], p.Inventory[QuiverStart+a]
}

// compareAmmo orders two quiver slots for the final sort. All ammo ranks
// equally for now, so the sort keeps the existing order.
func (p *Player) compareAmmo(a, b int) int {
	return 0
}

// SortQuiver puts inscribed ammo in the slots it asks for and packs the
// rest towards the front, keeping its relative order.
func (p *Player) SortQuiver() {
	var locked [QuiverSize]bool
	var desired [QuiverSize]int
	for i := range desired {
		desired[i] = -1
	}

	for i := 0; i < QuiverSize; i++ {
		o := p.Object(QuiverStart + i)
		if o == nil {
			continue
		}
		k := InscribedSlot(o)
		if k == 0 {
			continue
		}
		k -= QuiverStart
		if k == i {
			locked[i] = true
		}
		if desired[k] < 0 {
			desired[k] = i
		}
	}

	// Move wanting items into slots nobody has locked
	for i := 0; i < QuiverSize; i++ {
		if locked[i] || desired[i] < 0 {
			continue
		}
		p.swapQuiver(desired[i], i)
		locked[i] = true
	}

	// Everything else fills the free slots in order
	var rest []object.Object
	for i := 0; i < QuiverSize; i++ {
		if locked[i] {
			continue
		}
		if o := p.Object(QuiverStart + i); o != nil {
			rest = append(rest, *o)
		}
		p.Inventory[QuiverStart+i].Wipe()
	}
	for i := 0; i < QuiverSize && len(rest) > 0; i++ {
		if locked[i] {
			continue
		}
		p.Inventory[QuiverStart+i] = rest[0]
		rest = rest[1:]
	}

	for i := 0; i < QuiverSize; i++ {
		if locked[i] {
			continue
		}
		for j := i + 1; j < QuiverSize; j++ {
			if !locked[j] && p.compareAmmo(QuiverStart+i, QuiverStart+j) > 0 {
				p.swapQuiver(i, j)
			}
		}
	}
}

// OpenQuiverSlot shifts unlocked ammo up one slot to free slot, and
// reports whether slot is now empty.
func (p *Player) OpenQuiverSlot(slot int) bool {
	if !IsQuiverSlot(slot) {
		return false
	}
	if !p.Inventory[slot].IsLive() {
		return true
	}
	dest := QuiverEnd - 1
	if p.Inventory[dest].IsLive() {
		return false
	}
	for i := dest - 1; i >= slot; i-- {
		o := p.Object(i)
		if o == nil {
			dest = i
			continue
		}
		if InscribedSlot(o) == i {
			continue
		}
		p.Inventory[dest] = *o
		o.Wipe()
		dest = i
	}
	return !p.Inventory[slot].IsLive()
}

// SaveQuiverSize recounts the quiver and the pack slots it uses up.
func (p *Player) SaveQuiverSize() {
	count := 0
	for i := QuiverStart; i < QuiverEnd; i++ {
		if o := p.Object(i); o != nil {
			count += o.Number
		}
	}
	p.QuiverCount = count
	p.QuiverSlots = (count + quiverSlotSize - 1) / quiverSlotSize
	p.QuiverRemainder = count % quiverSlotSize
}
