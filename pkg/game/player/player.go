// Package player holds the player's position, money and inventory: the pack,
// the equipment slots and the quiver.
package player

import (
	"cavegen/pkg/game/object"
)

// Inventory layout. Pack slots come first, then equipment, then the quiver.
const (
	// PackSize is the number of pack slots; slot PackSize is the overflow.
	PackSize = 23
)

// Equipment slots.
const (
	SlotWield = iota + PackSize + 1
	SlotBow
	SlotLeftRing
	SlotRightRing
	SlotNeck
	SlotLight
	SlotBody
	SlotOuter
	SlotArm
	SlotHead
	SlotHands
	SlotFeet
)

const (
	QuiverStart = SlotFeet + 1
	QuiverSize  = 10
	QuiverEnd   = QuiverStart + QuiverSize
	// AllInvenTotal is the size of the whole inventory array.
	AllInvenTotal = QuiverEnd
)

// quiverSlotSize is how many missiles take up one pack slot.
const quiverSlotSize = object.MaxStackSize - 1

// Notice flags pending inventory housekeeping.
type Notice uint8

const (
	NoticeCombine Notice = 1 << iota
	NoticeReorder
)

// Player is the character the level is generated around.
type Player struct {
	Y, X     int
	Depth    int
	MaxDepth int
	Au       int

	// BookTVal is the kind of spellbook the player can read; those sort
	// first in the pack.
	BookTVal object.TVal

	Inventory [AllInvenTotal]object.Object
	InvenCnt  int
	EquipCnt  int

	QuiverCount     int
	QuiverSlots     int
	QuiverRemainder int

	Notice Notice
	notify func(string)
}

// New returns a player on the surface who reads books of the given kind.
func New(book object.TVal) *Player {
	return &Player{BookTVal: book}
}

// SetNotifier sets the sink for player-visible messages.
func (p *Player) SetNotifier(fn func(string)) { p.notify = fn }

func (p *Player) message(s string) {
	if p.notify != nil {
		p.notify(s)
	}
}

// Object returns the object in slot, or nil when the slot is empty.
func (p *Player) Object(slot int) *object.Object {
	if slot < 0 || slot >= AllInvenTotal || !p.Inventory[slot].IsLive() {
		return nil
	}
	return &p.Inventory[slot]
}

// IsQuiverSlot reports whether slot is in the quiver.
func IsQuiverSlot(slot int) bool { return slot >= QuiverStart && slot < QuiverEnd }

// IsEquipSlot reports whether slot is a worn equipment slot.
func IsEquipSlot(slot int) bool { return slot >= SlotWield && slot < QuiverStart }
