package object

import (
	"cavegen/pkg/engine/rng"
)

// Maker creates new objects from the kind and artifact tables.
type Maker struct {
	Kinds     []*Kind
	Artifacts []*Artifact
	Rand      *rng.Rand

	gold []*Kind
}

// NewMaker returns a Maker drawing from kinds and arts.
func NewMaker(kinds []*Kind, arts []*Artifact, r *rng.Rand) *Maker {
	m := &Maker{Kinds: kinds, Artifacts: arts, Rand: r}
	for _, k := range kinds {
		if k.TVal.IsMoney() {
			m.gold = append(m.gold, k)
		}
	}
	return m
}

// Prep returns a fresh single object of kind k.
func Prep(k *Kind) Object {
	return Object{
		Kind:   k,
		Number: 1,
		Weight: k.Weight,
		AC:     k.AC,
		DD:     k.DD,
		DS:     k.DS,
		Flags:  k.Flags,
	}
}

// Make creates an object appropriate to level. good and great ask for
// better than usual items; a non-null tval restricts the category. It
// returns the object and its rating, or false when nothing fits.
func (m *Maker) Make(level int, good, great bool, tval TVal) (Object, int, bool) {
	if great {
		good = true
	}

	artChance := 1000
	switch {
	case great:
		artChance = 10
	case good:
		artChance = 20
	}
	if m.Rand.OneIn(artChance) {
		if o, ok := m.makeArtifact(level, tval); ok {
			return o, Value(&o, 1), true
		}
	}

	base := level
	if good {
		base += 10
	}
	k := m.pickKind(base, good, tval)
	if k == nil {
		return Object{}, 0, false
	}
	o := Prep(k)
	m.applyMagic(&o, level, good, great)
	return o, Value(&o, o.Number), true
}

func isGoodKind(k *Kind) bool {
	return k.TVal.IsWeapon() || k.TVal.IsArmour() || k.TVal.IsAmmo()
}

// pickKind draws a kind by allocation probability among kinds native to
// level, occasionally reaching deeper.
func (m *Maker) pickKind(level int, good bool, tval TVal) *Kind {
	if level > 0 && m.Rand.OneIn(20) {
		boosted := min(1+level*100/m.Rand.Int1(100), 100)
		if k := m.drawKind(boosted, good, tval); k != nil {
			return k
		}
	}
	return m.drawKind(level, good, tval)
}

func (m *Maker) drawKind(level int, good bool, tval TVal) *Kind {
	total := 0
	weights := make([]int, len(m.Kinds))
	for i, k := range m.Kinds {
		if k.AllocProb <= 0 || k.AllocMin > level {
			continue
		}
		if k.AllocMax > 0 && k.AllocMax < level {
			continue
		}
		if tval != TVNull && k.TVal != tval {
			continue
		}
		if good && !isGoodKind(k) {
			continue
		}
		weights[i] = k.AllocProb
		total += k.AllocProb
	}
	if total == 0 {
		return nil
	}
	v := m.Rand.Int0(total)
	for i, w := range weights {
		if v < w {
			return m.Kinds[i]
		}
		v -= w
	}
	return nil
}

func (m *Maker) makeArtifact(level int, tval TVal) (Object, bool) {
	for _, a := range m.Artifacts {
		if a.Created {
			continue
		}
		if tval != TVNull && a.Base.TVal != tval {
			continue
		}
		if a.Level > level {
			// Out of depth artifacts are rarer still
			if !m.Rand.OneIn((a.Level-level)*2 + 1) {
				continue
			}
		}
		if !m.Rand.OneIn(a.Rarity) {
			continue
		}
		o := Prep(a.Base)
		o.Artifact = a
		o.ToH, o.ToD, o.ToA = a.ToH, a.ToD, a.ToA
		if o.TVal().IsLight() {
			o.Timeout = a.Base.Fuel
		}
		a.Created = true
		return o, true
	}
	return Object{}, false
}

// bonus returns a random enchantment bounded by limit, growing with level.
func (m *Maker) bonus(limit, level int) int {
	level = min(level, 100)
	return m.Rand.Int0(limit*level/100+2) + m.Rand.Int0(limit/4+1)
}

func (m *Maker) applyMagic(o *Object, level int, good, great bool) {
	chance := min(level+10, 75)
	power := 0
	switch {
	case good || m.Rand.Percent(chance):
		power = 1
		if great || m.Rand.Percent(chance/3) {
			power = 2
		}
	case m.Rand.Percent(chance):
		power = -1
	}

	k := o.Kind
	tval := o.TVal()
	switch {
	case tval.IsWeapon() || tval.IsAmmo():
		o.ToH = power * m.bonus(10, level)
		o.ToD = power * m.bonus(10, level)
		if tval.IsAmmo() {
			n := 0
			for i := 0; i < 6; i++ {
				n += m.Rand.Int1(7)
			}
			o.Number = min(n, MaxStackSize-1)
		}
	case tval.IsArmour():
		o.ToA = power * m.bonus(10, level)
	case tval == TVRing || tval == TVAmulet:
		o.ToA = max(power, 0) * m.bonus(8, level)
	case tval.IsLight():
		o.Timeout = k.Fuel
	case tval.CanHaveCharges():
		o.Pval = k.ChargeBase
		if k.ChargeDice > 0 {
			o.Pval += m.Rand.Int1(k.ChargeDice)
		}
	case tval.IsChest():
		o.Pval = m.Rand.Int1(max(level, 1))
	case tval == TVFlask || tval == TVFood || tval == TVPotion || tval == TVScroll:
		if m.Rand.OneIn(3) {
			o.Number = m.Rand.Int1(3)
		}
	}
}

// Gold creates a pile of money appropriate to level.
func (m *Maker) Gold(level int) Object {
	avg := (18*level)/10 + 18
	spread := level + 10
	value := max(m.Rand.Spread(avg, spread), 1)

	var k *Kind
	for _, g := range m.gold {
		if g.Level <= level+m.Rand.Int0(10) && (k == nil || g.Level > k.Level) {
			k = g
		}
	}
	if k == nil && len(m.gold) > 0 {
		k = m.gold[0]
	}
	if k == nil {
		k = &Kind{Name: "Gold", TVal: TVGold}
	}
	o := Prep(k)
	o.Pval = value
	return o
}

// Value estimates what qty items of o are worth.
func Value(o *Object, qty int) int {
	if o.Kind == nil {
		return 0
	}
	if o.TVal().IsMoney() {
		return o.Pval
	}
	v := o.Kind.Cost
	if o.Artifact != nil {
		v = o.Artifact.Cost
	}
	v += (o.ToH + o.ToD + o.ToA) * 100
	if o.TVal().CanHaveCharges() {
		v += o.Pval * o.Kind.Cost / 20
	}
	return max(v, 0) * qty
}
