package player

import (
	"github.com/leonelquinteros/gotext"

	"cavegen/pkg/game/object"
)

// maxPack is the number of pack slots left over after the quiver's share.
func (p *Player) maxPack() int { return PackSize - p.QuiverSlots }

// PackIsFull reports whether the last usable pack slot is taken.
func (p *Player) PackIsFull() bool {
	return p.Inventory[p.maxPack()-1].IsLive()
}

// StackOkay reports whether o would merge into something already carried.
func (p *Player) StackOkay(o *object.Object) bool {
	limit := AllInvenTotal
	switch {
	case !p.PackIsFull():
	case p.QuiverRemainder == 0:
		limit = QuiverStart
	case p.QuiverRemainder+o.Number > quiverSlotSize:
		// The extra missiles would need a pack slot of their own
		limit = QuiverStart
	}
	for j := 0; j < limit; j++ {
		if j >= PackSize && j < QuiverStart {
			continue
		}
		if jo := p.Object(j); jo != nil && object.Similar(jo, o, object.StackPack) {
			return true
		}
	}
	return false
}

// CarryOkay reports whether o can be put in the pack.
func (p *Player) CarryOkay(o *object.Object) bool {
	return p.InvenCnt < p.maxPack() || p.StackOkay(o)
}

// packBefore reports whether o belongs ahead of j in the pack.
func (p *Player) packBefore(o, j *object.Object) bool {
	book := p.BookTVal
	if book != object.TVNull {
		if o.TVal() == book && j.TVal() != book {
			return true
		}
		if j.TVal() == book && o.TVal() != book {
			return false
		}
	}
	if o.TVal() != j.TVal() {
		return o.TVal() > j.TVal()
	}
	// Unaware objects come last
	if !o.Kind.Aware {
		return false
	}
	if !j.Kind.Aware {
		return true
	}
	if o.Kind.SVal != j.Kind.SVal {
		return o.Kind.SVal < j.Kind.SVal
	}
	if !o.IsKnown() {
		return false
	}
	if !j.IsKnown() {
		return true
	}
	if o.TVal().IsLight() && o.Timeout != j.Timeout {
		return o.Timeout > j.Timeout
	}
	return o.Kind.Cost > j.Kind.Cost
}

// Carry puts o in the pack and returns its slot, or -1 when there is no
// room. o is merged into the first compatible stack if there is one;
// otherwise it is inserted in pack order, shifting later slots down.
func (p *Player) Carry(o *object.Object) int {
	last := -1
	for j := 0; j < PackSize; j++ {
		jo := p.Object(j)
		if jo == nil {
			continue
		}
		last = j
		if object.Similar(jo, o, object.StackPack) {
			object.Absorb(jo, o)
			p.SaveQuiverSize()
			return j
		}
	}

	maxPack := p.maxPack()
	if p.InvenCnt > maxPack {
		return -1
	}

	i := 0
	for i <= maxPack && p.Inventory[i].IsLive() {
		i++
	}

	if i < maxPack {
		j := 0
		for ; j < maxPack; j++ {
			jo := p.Object(j)
			if jo == nil || p.packBefore(o, jo) {
				break
			}
		}
		i = j
		for k := last; k >= i; k-- {
			p.Inventory[k+1] = p.Inventory[k]
		}
		p.Inventory[i].Wipe()
	}

	p.Inventory[i] = *o
	slot := &p.Inventory[i]
	slot.Next = 0
	slot.HeldBy = 0
	slot.Y, slot.X = 0, 0
	slot.Marked = object.MarkNone
	p.InvenCnt++
	p.Notice |= NoticeReorder
	return i
}

// CombinePack merges stacks that have become compatible and banks any
// gold found in the pack.
func (p *Player) CombinePack() {
	combined := false
	for i := PackSize; i > 0; i-- {
		o := p.Object(i)
		if o == nil {
			continue
		}
		slide := false
		if o.TVal().IsMoney() {
			p.Au += o.Pval
			slide = true
		} else {
			for j := 0; j < i; j++ {
				jo := p.Object(j)
				if jo == nil {
					continue
				}
				if object.Similar(jo, o, object.StackPack) {
					object.Absorb(jo, o)
					combined = true
					slide = true
					break
				}
				if jo.Number < object.MaxStackSize-1 && object.Similar(jo, o, object.StackStore) {
					object.AbsorbPartial(jo, o)
					combined = true
					break
				}
			}
		}
		if slide {
			p.InvenCnt--
			p.slidePack(i)
		}
	}
	p.Notice &^= NoticeCombine
	if combined {
		p.message(gotext.Get("You combine some items in your pack."))
	}
}

// slidePack closes the gap at slot i.
func (p *Player) slidePack(i int) {
	k := i
	for ; k < PackSize; k++ {
		p.Inventory[k] = p.Inventory[k+1]
	}
	p.Inventory[k].Wipe()
}

// ReorderPack moves items up the pack until the pack is in order.
func (p *Player) ReorderPack() {
	moved := false
	for i := 0; i < PackSize; i++ {
		o := p.Object(i)
		if o == nil {
			continue
		}
		j := 0
		for ; j < PackSize; j++ {
			jo := p.Object(j)
			if jo == nil || p.packBefore(o, jo) {
				break
			}
		}
		if j >= i {
			continue
		}
		moved = true
		held := *o
		for k := i; k > j; k-- {
			p.Inventory[k] = p.Inventory[k-1]
		}
		p.Inventory[j] = held
	}
	p.Notice &^= NoticeReorder
	if moved {
		p.message(gotext.Get("You reorder some items in your pack."))
	}
}

// Housekeeping runs any pending combine and reorder passes.
func (p *Player) Housekeeping() {
	if p.Notice&NoticeCombine != 0 {
		p.CombinePack()
	}
	if p.Notice&NoticeReorder != 0 {
		p.ReorderPack()
	}
}

// ItemIncrease changes the quantity in slot by num, keeping it in [0, 255].
// Items taken away take their share of the stack's charges with them.
func (p *Player) ItemIncrease(slot, num int) {
	o := p.Object(slot)
	if o == nil {
		return
	}
	n := min(max(o.Number+num, 0), 255)
	if n == o.Number {
		return
	}
	if n < o.Number {
		object.ReduceCharges(o, o.Number-n)
	}
	o.Number = n
	if IsQuiverSlot(slot) {
		p.SaveQuiverSize()
	}
	p.Notice |= NoticeCombine
}

// ItemDescribe tells the player what remains in slot.
func (p *Player) ItemDescribe(slot int) {
	o := &p.Inventory[slot]
	if !o.IsLive() {
		return
	}
	if o.Number == 0 {
		p.message(gotext.Get("You have no more %s.", o.Name()))
		return
	}
	p.message(gotext.Get("You have %s.", o.String()))
}

// ItemOptimize removes the object in slot if none of it is left.
func (p *Player) ItemOptimize(slot int) {
	o := p.Object(slot)
	if o == nil || o.Number > 0 {
		return
	}
	switch {
	case slot < SlotWield:
		p.InvenCnt--
		p.slidePack(slot)
	case IsQuiverSlot(slot):
		p.EquipCnt--
		o.Wipe()
		p.SortQuiver()
		p.SaveQuiverSize()
	default:
		p.EquipCnt--
		o.Wipe()
	}
}

// WieldSlot returns the slot o would be worn in, or -1.
func (p *Player) WieldSlot(o *object.Object) int {
	switch tval := o.TVal(); {
	case tval.IsAmmo():
		return p.ammoSlot(o)
	case tval == object.TVDigging || tval == object.TVHafted || tval == object.TVPolearm || tval == object.TVSword:
		return SlotWield
	case tval == object.TVBow:
		return SlotBow
	case tval == object.TVRing:
		if p.Inventory[SlotRightRing].IsLive() {
			return SlotLeftRing
		}
		return SlotRightRing
	case tval == object.TVAmulet:
		return SlotNeck
	case tval.IsLight():
		return SlotLight
	case tval == object.TVSoftArmor || tval == object.TVHardArmor || tval == object.TVDragArmor:
		return SlotBody
	case tval == object.TVCloak:
		return SlotOuter
	case tval == object.TVShield:
		return SlotArm
	case tval == object.TVHelm || tval == object.TVCrown:
		return SlotHead
	case tval == object.TVGloves:
		return SlotHands
	case tval == object.TVBoots:
		return SlotFeet
	}
	return -1
}

// ammoSlot picks the inscribed quiver slot if it is free, else a slot with
// compatible ammo, else the first empty one.
func (p *Player) ammoSlot(o *object.Object) int {
	if want := InscribedSlot(o); want != 0 && !p.Inventory[want].IsLive() {
		return want
	}
	open := 0
	for i := QuiverStart; i < QuiverEnd; i++ {
		q := p.Object(i)
		if q == nil {
			if open == 0 {
				open = i
			}
			continue
		}
		if object.Similar(q, o, object.StackQuiver) {
			return i
		}
	}
	if open != 0 {
		return open
	}
	return QuiverStart
}

// Wield moves the item in a pack slot into the slot it is worn in and
// returns that slot, or -1. Ammo moves as a whole stack.
func (p *Player) Wield(slot int) int {
	o := p.Object(slot)
	if o == nil || slot >= SlotWield {
		return -1
	}
	dest := p.WieldSlot(o)
	if dest < 0 {
		return -1
	}
	amt := 1
	if o.TVal().IsAmmo() {
		amt = o.Number
	}
	piece := object.Split(o, amt)
	p.ItemOptimize(slot)

	if cur := p.Object(dest); cur != nil {
		switch {
		case IsQuiverSlot(dest) && object.Similar(cur, &piece, object.StackQuiver):
			object.Absorb(cur, &piece)
			p.SaveQuiverSize()
			return dest
		case IsQuiverSlot(dest):
			if !p.OpenQuiverSlot(dest) {
				p.Carry(&piece)
				return -1
			}
		default:
			if p.Takeoff(dest, cur.Number) < 0 {
				p.Carry(&piece)
				return -1
			}
		}
	}
	p.Inventory[dest] = piece
	p.EquipCnt++
	if IsQuiverSlot(dest) {
		p.SaveQuiverSize()
	}
	p.Notice |= NoticeReorder
	return dest
}

// Takeoff moves amt items out of an equipment or quiver slot into the
// pack and returns the pack slot, or -1 if the pack has no room.
func (p *Player) Takeoff(slot, amt int) int {
	o := p.Object(slot)
	if o == nil || slot < SlotWield {
		return -1
	}
	amt = min(amt, o.Number)
	probe := object.CopyAmount(o, amt)
	if !p.CarryOkay(&probe) {
		return -1
	}
	piece := object.Split(o, amt)
	p.ItemOptimize(slot)
	if IsQuiverSlot(slot) {
		p.SaveQuiverSize()
	}
	return p.Carry(&piece)
}

// Dropper puts an object on the floor near the player.
type Dropper interface {
	DropNear(o *object.Object, chance, y, x int) int
}

// Drop removes amt items from slot and drops them at the player's feet.
func (p *Player) Drop(slot, amt int, floor Dropper) {
	o := p.Object(slot)
	if o == nil || amt <= 0 {
		return
	}
	amt = min(amt, o.Number)
	if IsEquipSlot(slot) {
		slot = p.Takeoff(slot, amt)
		if slot < 0 {
			return
		}
		o = &p.Inventory[slot]
	}

	piece := object.Split(o, amt)
	p.message(gotext.Get("You drop %s.", piece.String()))
	floor.DropNear(&piece, 0, p.Y, p.X)

	if IsQuiverSlot(slot) {
		p.SaveQuiverSize()
	}
	p.Notice |= NoticeCombine
	p.ItemDescribe(slot)
	p.ItemOptimize(slot)
}
