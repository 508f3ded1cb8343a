package object

// StackMode says where two objects are being compared for stacking.
type StackMode uint8

const (
	// StackList compares objects the player can see listed.
	StackList StackMode = 1 << iota
	StackStore
	StackPack
	StackQuiver
	StackFloor
)

// Similar reports whether o and j can share a stack. The relation is
// symmetric.
func Similar(o, j *Object, mode StackMode) bool {
	if o == j || o.Kind == nil || j.Kind == nil {
		return false
	}
	if mode&StackStore == 0 && o.Number+j.Number >= MaxStackSize {
		return false
	}
	// Piles the player has only glimpsed never combine in a listing
	if mode&StackList != 0 && (o.Marked == MarkAware || j.Marked == MarkAware) {
		return false
	}
	if o.Kind != j.Kind || o.Flags != j.Flags {
		return false
	}
	if o.Artifact != nil || j.Artifact != nil {
		return false
	}

	tval := o.TVal()
	switch {
	case tval.IsChest():
		return false
	case tval == TVFood || tval == TVPotion || tval == TVScroll || tval.IsRod():
	case tval.CanHaveCharges() || tval.IsMoney():
		if o.Pval+j.Pval > MaxPval {
			return false
		}
	case tval.IsWearable():
		if o.AC != j.AC || o.DD != j.DD || o.DS != j.DS {
			return false
		}
		if o.ToH != j.ToH || o.ToD != j.ToD || o.ToA != j.ToA {
			return false
		}
		if o.Pval != j.Pval || o.Ego != j.Ego {
			return false
		}
		// Lights merge their fuel
		if !tval.IsLight() && o.Timeout != j.Timeout {
			return false
		}
		if mode&StackList != 0 && (!o.IsKnown() || !j.IsKnown()) {
			return false
		}
	}

	if o.Note != "" && j.Note != "" && o.Note != j.Note {
		return false
	}
	return true
}

// Absorb merges j into o. The caller discards j afterwards.
func Absorb(o, j *Object) {
	o.Number = min(o.Number+j.Number, MaxStackSize-1)

	tval := o.TVal()
	if tval.IsRod() || tval.IsLight() {
		o.Timeout += j.Timeout
	}
	if tval.CanHaveCharges() || tval.IsMoney() {
		o.Pval = min(o.Pval+j.Pval, MaxPval)
	}
	absorbMerge(o, j)
}

// AbsorbPartial moves as much of j into o as fits in one stack, leaving the
// remainder in j.
func AbsorbPartial(o, j *Object) {
	smallest := min(o.Number, j.Number)
	largest := max(o.Number, j.Number)
	difference := (MaxStackSize - 1) - largest

	moved := largest + difference - o.Number
	if moved > 0 && j.Number > 0 {
		piece := CopyAmount(j, moved)
		tval := o.TVal()
		if tval.CanHaveCharges() {
			o.Pval += piece.Pval
			j.Pval -= piece.Pval
		}
		if tval.IsRod() || tval.IsLight() {
			o.Timeout += piece.Timeout
			j.Timeout -= piece.Timeout
		}
	}

	o.Number = largest + difference
	j.Number = smallest - difference
	absorbMerge(o, j)
}

func absorbMerge(o, j *Object) {
	o.Ident = (o.Ident | j.Ident) &^ IdentEmpty
	o.KnownFlags |= j.KnownFlags
	if j.Note != "" {
		o.Note = j.Note
	}
	mergeOrigin(o, j)
}

// mergeOrigin reconciles provenance. A unique monster's drop beats an
// ordinary one; anything else that differs becomes mixed.
func mergeOrigin(o, j *Object) {
	if o.Origin == j.Origin && o.OriginDepth == j.OriginDepth && o.OriginRace == j.OriginRace {
		return
	}
	if o.OriginRace != nil && j.OriginRace != nil {
		switch {
		case o.OriginRace.Unique && !j.OriginRace.Unique:
			return
		case j.OriginRace.Unique && !o.OriginRace.Unique:
			o.Origin = j.Origin
			o.OriginDepth = j.OriginDepth
			o.OriginRace = j.OriginRace
			return
		}
	}
	o.Origin = OriginMixed
}

// CopyAmount returns a copy of src holding amt items, with its share of
// charges and recharge time. src is unchanged.
func CopyAmount(src *Object, amt int) Object {
	dst := *src
	dst.Next = 0
	dst.HeldBy = 0
	dst.MimickingMonster = 0
	dst.Number = amt

	tval := src.TVal()
	if tval.CanHaveCharges() && src.Number > 0 {
		dst.Pval = src.Pval * amt / src.Number
	}
	if tval.IsLight() && src.Number > 0 {
		dst.Timeout = src.Timeout * amt / src.Number
	}
	if tval.IsRod() {
		dst.Timeout = min(src.Timeout, src.ChargeTime()*amt)
	}
	return dst
}

// Split takes amt items off src and returns them as a new stack. Charges and
// recharge time move with the items, so absorbing the result back restores
// src exactly.
func Split(src *Object, amt int) Object {
	amt = min(amt, src.Number)
	dst := CopyAmount(src, amt)
	tval := src.TVal()
	switch {
	case amt < src.Number:
		DistributeCharges(src, &dst, amt)
	case tval.CanHaveCharges():
		src.Pval = 0
	case tval.IsRod():
		src.Timeout = 0
	}
	if tval.IsLight() {
		src.Timeout -= dst.Timeout
	}
	src.Number -= amt
	return dst
}

// DistributeCharges gives dst its share of src's charges for amt items. When
// only part of src is moving, src keeps the rest.
func DistributeCharges(src, dst *Object, amt int) {
	if src.Number <= 0 {
		return
	}
	tval := src.TVal()
	if tval.CanHaveCharges() {
		dst.Pval = src.Pval * amt / src.Number
		if amt < src.Number {
			src.Pval -= dst.Pval
		}
	}
	if tval.IsRod() {
		dst.Timeout = min(src.Timeout, src.ChargeTime()*amt)
		if amt < src.Number {
			src.Timeout -= dst.Timeout
		}
	}
}

// ReduceCharges removes the charges held by amt items of a stack that are
// about to be destroyed.
func ReduceCharges(o *Object, amt int) {
	if o.TVal().CanHaveCharges() && o.Number > 1 {
		o.Pval -= o.Pval * amt / o.Number
	}
}
