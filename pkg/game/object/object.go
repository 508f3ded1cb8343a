// Package object holds the object slab and everything that moves objects
// around: floor piles, monster-held chains, stacking rules and object creation.
package object

import (
	"fmt"

	"cavegen/pkg/game/monster"
)

const (
	// MaxStackSize bounds the quantity of one stack outside stores.
	MaxStackSize = 40
	// MaxPval bounds combined charges and gold value.
	MaxPval = 32767
	// MaxFloorStack is the largest pile a single grid can hold.
	MaxFloorStack = 23
)

// Ident records what the player has learned about one object.
type Ident uint16

const (
	IdentSensed Ident = 1 << iota
	IdentKnown
	IdentEmpty
	IdentWorn
	IdentFired
	IdentStore
)

// Mark records whether the player has noticed an object on the floor.
type Mark uint8

const (
	MarkNone Mark = iota
	// MarkAware means the player knows something is there but not what.
	MarkAware
	MarkSeen
)

// Origin records where an object came from.
type Origin uint8

const (
	OriginNone Origin = iota
	OriginFloor
	OriginDrop
	OriginChest
	OriginDropSpecial
	OriginDropPit
	OriginDropVault
	OriginSpecial
	OriginPit
	OriginVault
	OriginLabyrinth
	OriginCavern
	OriginRubble
	OriginMixed
	OriginStore
	OriginBirth
	OriginAcquire
	OriginStolen
	OriginCheat
)

// Object is one slab record. A record is live while Kind is set.
//
// A live object is in exactly one place: on the floor at (Y, X), held by the
// monster HeldBy, or in a player inventory slot. Next links floor piles and
// monster-held chains.
type Object struct {
	Kind     *Kind
	Artifact *Artifact
	Ego      int

	Y, X   int
	Number int
	Weight int

	Next             int
	HeldBy           int
	MimickingMonster int

	AC, ToA, ToH, ToD int
	DD, DS            int

	// Pval holds charges for staves and wands and the value of gold.
	Pval int
	// Timeout holds rod recharge time and light fuel.
	Timeout int

	Flags      Flags
	KnownFlags Flags
	Ident      Ident
	Marked     Mark
	Note       string

	Origin      Origin
	OriginDepth int
	OriginRace  *monster.Race
}

// Wipe zeroes the record.
func (o *Object) Wipe() { *o = Object{} }

// IsLive reports whether the record holds an object.
func (o *Object) IsLive() bool { return o != nil && o.Kind != nil }

// TVal returns the object's category.
func (o *Object) TVal() TVal {
	if o.Kind == nil {
		return TVNull
	}
	return o.Kind.TVal
}

// IsKnown reports whether the player fully knows the object.
func (o *Object) IsKnown() bool {
	if o.Ident&IdentKnown != 0 {
		return true
	}
	return o.Kind != nil && o.Kind.EasyKnow && o.Kind.Aware && o.Artifact == nil
}

// WasSensed reports whether the player has sensed or seen the object.
func (o *Object) WasSensed() bool { return o.Ident&(IdentSensed|IdentKnown) != 0 }

// Ignored reports whether the player asked to ignore this kind of object.
func (o *Object) Ignored() bool { return o.Kind != nil && o.Kind.Ignore }

// Name returns the base name of the object.
func (o *Object) Name() string {
	if o.Kind == nil {
		return ""
	}
	if o.Artifact != nil {
		return fmt.Sprintf("%s %s", o.Kind.Name, o.Artifact.Name)
	}
	return o.Kind.Name
}

// String describes the stack, quantity first.
func (o *Object) String() string {
	if o.Number == 1 {
		return o.Name()
	}
	return fmt.Sprintf("%d %s", o.Number, o.Name())
}

// ChargeTime is the recharge time of one rod of this kind.
func (o *Object) ChargeTime() int {
	if o.Kind == nil {
		return 0
	}
	return o.Kind.ChargeTime
}
