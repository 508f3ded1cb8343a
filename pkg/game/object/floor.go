package object

import (
	"github.com/leonelquinteros/gotext"

	"cavegen/pkg/engine/world"
)

// ForEachAt calls fn for each object in the pile at (y, x), newest first.
func (p *Pool) ForEachAt(y, x int, fn func(idx int, o *Object)) {
	if !p.cave.InBounds(y, x) {
		return
	}
	next := 0
	for cur := p.cave.ObjectIdx(y, x); cur != 0; cur = next {
		next = p.objects[cur].Next
		fn(cur, &p.objects[cur])
	}
}

// PileSize returns the number of records in the pile at (y, x).
func (p *Pool) PileSize(y, x int) int {
	n := 0
	p.ForEachAt(y, x, func(int, *Object) { n++ })
	return n
}

// oldestIgnored returns the oldest ignored object at (y, x), or 0.
func (p *Pool) oldestIgnored(y, x int) int {
	found := 0
	p.ForEachAt(y, x, func(idx int, o *Object) {
		if o.Ignored() {
			found = idx
		}
	})
	return found
}

// FloorCarry puts j on the floor at (y, x), merging it into a compatible
// object already there when it can. It returns the index holding j, or 0
// when there was no room.
func (p *Pool) FloorCarry(y, x int, j *Object) int {
	n := 0
	merged := 0
	p.ForEachAt(y, x, func(idx int, o *Object) {
		if merged == 0 && Similar(o, j, StackFloor) {
			Absorb(o, j)
			merged = idx
		}
		n++
	})
	if merged != 0 {
		return merged
	}
	if p.NoStacking && n > 0 {
		return 0
	}
	if n >= MaxFloorStack {
		victim := p.oldestIgnored(y, x)
		if victim == 0 {
			return 0
		}
		p.Delete(victim)
	}

	idx := p.Pop()
	if idx == 0 {
		return 0
	}
	o := &p.objects[idx]
	*o = *j
	o.Y, o.X = y, x
	o.HeldBy = 0
	o.Next = p.cave.ObjectIdx(y, x)
	p.cave.SetObjectIdx(y, x, idx)
	return idx
}

// DropNear lets j fall as close to (y, x) as it can, breaking chance percent
// of the time unless it is an artifact. It returns the index j landed in, or
// 0 if it was destroyed.
func (p *Pool) DropNear(j *Object, chance, y, x int) int {
	c := p.cave
	if j.Artifact == nil && p.rand.Int0(100) < chance {
		p.message(gotext.Get("The %s breaks.", j.Name()))
		return 0
	}

	bestScore := -1
	bestCount := 0
	by, bx := y, x
	found := false

	for dy := -3; dy <= 3; dy++ {
		for dx := -3; dx <= 3; dx++ {
			d := dy*dy + dx*dx
			if d > 10 {
				continue
			}
			ty, tx := y+dy, x+dx
			if !c.InBoundsFully(ty, tx) || !world.LOS(c, y, x, ty, tx) || !c.IsFloor(ty, tx) {
				continue
			}

			visible, ignored := 0, 0
			comb := false
			p.ForEachAt(ty, tx, func(_ int, o *Object) {
				if Similar(o, j, StackFloor) {
					comb = true
				}
				if o.Ignored() {
					ignored++
				} else {
					visible++
				}
			})
			if !comb {
				visible++
			}
			if p.NoStacking && visible > 1 {
				continue
			}
			if visible+ignored > MaxFloorStack && p.oldestIgnored(ty, tx) == 0 {
				continue
			}

			score := 1000 - (d + visible*5)
			if score < bestScore {
				continue
			}
			if score > bestScore {
				bestCount = 0
			}
			bestCount++
			if bestCount >= 2 && p.rand.Int0(bestCount) != 0 {
				continue
			}
			bestScore = score
			by, bx = ty, tx
			found = true
		}
	}

	if !found && j.Artifact == nil {
		p.message(gotext.Get("The %s disappears.", j.Name()))
		return 0
	}

	// Artifacts bounce around until they land somewhere
	limit := 1000 + 10*c.Height*c.Width
	for i := 0; !found && i < limit; i++ {
		var ty, tx int
		if i < 1000 {
			ty = p.rand.Spread(by, 1)
			tx = p.rand.Spread(bx, 1)
		} else {
			ty = p.rand.Int0(c.Height)
			tx = p.rand.Int0(c.Width)
		}
		if !c.InBounds(ty, tx) || !c.CanPutItem(ty, tx) {
			continue
		}
		by, bx = ty, tx
		found = true
	}

	idx := 0
	if found {
		idx = p.FloorCarry(by, bx, j)
	}
	if idx == 0 {
		p.message(gotext.Get("The %s disappears.", j.Name()))
		if j.Artifact != nil {
			j.Artifact.Created = false
		}
	}
	return idx
}
