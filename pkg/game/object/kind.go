package object

import (
	"fmt"

	"cavegen/pkg/game/data"
)

// TVal is the broad category of an object kind.
type TVal int

// Object categories. The numeric values order the pack.
const (
	TVNull       TVal = 0
	TVChest      TVal = 7
	TVShot       TVal = 16
	TVArrow      TVal = 17
	TVBolt       TVal = 18
	TVBow        TVal = 19
	TVDigging    TVal = 20
	TVHafted     TVal = 21
	TVPolearm    TVal = 22
	TVSword      TVal = 23
	TVBoots      TVal = 30
	TVGloves     TVal = 31
	TVHelm       TVal = 32
	TVCrown      TVal = 33
	TVShield     TVal = 34
	TVCloak      TVal = 35
	TVSoftArmor  TVal = 36
	TVHardArmor  TVal = 37
	TVDragArmor  TVal = 38
	TVLight      TVal = 39
	TVAmulet     TVal = 40
	TVRing       TVal = 45
	TVStaff      TVal = 55
	TVWand       TVal = 65
	TVRod        TVal = 66
	TVScroll     TVal = 70
	TVPotion     TVal = 75
	TVFlask      TVal = 77
	TVFood       TVal = 80
	TVMagicBook  TVal = 90
	TVPrayerBook TVal = 91
	TVGold       TVal = 100
)

var tvalNames = map[string]TVal{
	"chest":       TVChest,
	"shot":        TVShot,
	"arrow":       TVArrow,
	"bolt":        TVBolt,
	"bow":         TVBow,
	"digging":     TVDigging,
	"hafted":      TVHafted,
	"polearm":     TVPolearm,
	"sword":       TVSword,
	"boots":       TVBoots,
	"gloves":      TVGloves,
	"helm":        TVHelm,
	"crown":       TVCrown,
	"shield":      TVShield,
	"cloak":       TVCloak,
	"soft_armor":  TVSoftArmor,
	"hard_armor":  TVHardArmor,
	"drag_armor":  TVDragArmor,
	"light":       TVLight,
	"amulet":      TVAmulet,
	"ring":        TVRing,
	"staff":       TVStaff,
	"wand":        TVWand,
	"rod":         TVRod,
	"scroll":      TVScroll,
	"potion":      TVPotion,
	"flask":       TVFlask,
	"food":        TVFood,
	"magic_book":  TVMagicBook,
	"prayer_book": TVPrayerBook,
	"gold":        TVGold,
}

// ParseTVal converts a data-file category name to a TVal.
func ParseTVal(s string) (TVal, error) {
	t, ok := tvalNames[s]
	if !ok {
		return TVNull, fmt.Errorf("unknown tval %q", s)
	}
	return t, nil
}

// String returns the data-file name of the category.
func (t TVal) String() string {
	for name, v := range tvalNames {
		if v == t {
			return name
		}
	}
	return "none"
}

func (t TVal) IsAmmo() bool   { return t == TVShot || t == TVArrow || t == TVBolt }
func (t TVal) IsChest() bool  { return t == TVChest }
func (t TVal) IsMoney() bool  { return t == TVGold }
func (t TVal) IsLight() bool  { return t == TVLight }
func (t TVal) IsRod() bool    { return t == TVRod }
func (t TVal) IsBook() bool   { return t == TVMagicBook || t == TVPrayerBook }
func (t TVal) IsWeapon() bool { return t >= TVBow && t <= TVSword }
func (t TVal) IsArmour() bool { return t >= TVBoots && t <= TVDragArmor }

// CanHaveCharges reports staves and wands.
func (t TVal) CanHaveCharges() bool { return t == TVStaff || t == TVWand }

// CanHaveTimeout reports objects that recharge over time.
func (t TVal) CanHaveTimeout() bool { return t == TVRod }

// IsWearable reports anything that goes in an equipment or quiver slot.
func (t TVal) IsWearable() bool {
	return t.IsAmmo() || t.IsWeapon() || t.IsArmour() || t == TVLight || t == TVAmulet || t == TVRing
}

// Flags is a set of object properties.
type Flags uint64

// Object flags
const (
	FlagTunnel Flags = 1 << iota
	FlagThrowing
	FlagBurnsOut
	FlagTakesFuel
	FlagIgnoreFire
	FlagIgnoreAcid
	FlagSlowDigest
	FlagSeeInvis
	FlagFreeAct
	FlagBlessed
)

var flagNames = map[string]Flags{
	"TUNNEL":      FlagTunnel,
	"THROWING":    FlagThrowing,
	"BURNS_OUT":   FlagBurnsOut,
	"TAKES_FUEL":  FlagTakesFuel,
	"IGNORE_FIRE": FlagIgnoreFire,
	"IGNORE_ACID": FlagIgnoreAcid,
	"SLOW_DIGEST": FlagSlowDigest,
	"SEE_INVIS":   FlagSeeInvis,
	"FREE_ACT":    FlagFreeAct,
	"BLESSED":     FlagBlessed,
}

// ParseFlags converts data-file flag names to a Flags set.
func ParseFlags(names []string) (Flags, error) {
	var f Flags
	for _, n := range names {
		v, ok := flagNames[n]
		if !ok {
			return 0, fmt.Errorf("unknown object flag %q", n)
		}
		f |= v
	}
	return f, nil
}

// Has reports whether every flag in want is set.
func (f Flags) Has(want Flags) bool { return f&want == want }

// Kind is a type of object.
type Kind struct {
	Index  int
	Name   string
	TVal   TVal
	SVal   int
	Level  int
	Cost   int
	Weight int

	AllocProb int
	AllocMin  int
	AllocMax  int

	DD, DS, AC int

	ChargeBase int
	ChargeDice int
	ChargeTime int
	Fuel       int

	EasyKnow bool
	Flags    Flags

	// Aware is set once the player knows what this kind of object does.
	Aware bool
	// Ignore is set when the player has asked to ignore this kind.
	Ignore bool
}

// NewKinds builds the kind table from data records.
func NewKinds(recs []data.Kind) ([]*Kind, error) {
	kinds := make([]*Kind, 0, len(recs))
	for i, r := range recs {
		tval, err := ParseTVal(r.TVal)
		if err != nil {
			return nil, fmt.Errorf("kind %q: %w", r.Name, err)
		}
		flags, err := ParseFlags(r.Flags)
		if err != nil {
			return nil, fmt.Errorf("kind %q: %w", r.Name, err)
		}
		kinds = append(kinds, &Kind{
			Index:      i,
			Name:       r.Name,
			TVal:       tval,
			SVal:       r.SVal,
			Level:      r.Level,
			Cost:       r.Cost,
			Weight:     r.Weight,
			AllocProb:  r.AllocProb,
			AllocMin:   r.AllocMin,
			AllocMax:   r.AllocMax,
			DD:         r.DD,
			DS:         r.DS,
			AC:         r.AC,
			ChargeBase: r.ChargeBase,
			ChargeDice: r.ChargeDice,
			ChargeTime: r.ChargeTime,
			Fuel:       r.Fuel,
			EasyKnow:   r.EasyKnow,
			Flags:      flags,
		})
	}
	return kinds, nil
}

// Artifact is a unique object.
type Artifact struct {
	Index  int
	Name   string
	Base   *Kind
	Level  int
	Rarity int
	Cost   int
	ToH    int
	ToD    int
	ToA    int

	// Created is set while the artifact exists somewhere in the world.
	Created bool
}

// NewArtifacts builds the artifact table, resolving base kinds by name.
func NewArtifacts(recs []data.Artifact, kinds []*Kind) ([]*Artifact, error) {
	byName := make(map[string]*Kind, len(kinds))
	for _, k := range kinds {
		byName[k.Name] = k
	}
	arts := make([]*Artifact, 0, len(recs))
	for i, r := range recs {
		base, ok := byName[r.Base]
		if !ok {
			return nil, fmt.Errorf("artifact %q: unknown base kind %q", r.Name, r.Base)
		}
		arts = append(arts, &Artifact{
			Index:  i,
			Name:   r.Name,
			Base:   base,
			Level:  r.Level,
			Rarity: max(r.Rarity, 1),
			Cost:   r.Cost,
			ToH:    r.ToH,
			ToD:    r.ToD,
			ToA:    r.ToA,
		})
	}
	return arts, nil
}
