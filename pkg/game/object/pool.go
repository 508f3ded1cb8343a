package object

import (
	"github.com/leonelquinteros/gotext"

	"cavegen/pkg/engine/rng"
	"cavegen/pkg/engine/world"
	"cavegen/pkg/game/monster"
)

// Pool is the object slab. Index 0 is the null object and is never handed
// out. Floor grids and monsters refer to records by index.
type Pool struct {
	objects []Object
	max     int
	count   int

	cave     *world.Cave
	monsters *monster.List
	rand     *rng.Rand

	live   bool
	notify func(string)

	// NoPreserve makes lost artifacts permanently lost.
	NoPreserve bool
	// NoStacking refuses to put more than one object on a floor grid.
	NoStacking bool
}

// NewPool creates a pool with room for limit-1 objects. It registers itself
// with the monster list so deleting a monster deletes what it carries.
func NewPool(limit int, c *world.Cave, m *monster.List, r *rng.Rand) *Pool {
	if limit < 2 {
		panic("object pool limit must be at least 2")
	}
	p := &Pool{
		objects:  make([]Object, limit),
		max:      1,
		cave:     c,
		monsters: m,
		rand:     r,
	}
	if m != nil {
		m.SetReleaseHook(p.releaseMonster)
	}
	return p
}

// Cave returns the cave the pool's floor objects live in.
func (p *Pool) Cave() *world.Cave { return p.cave }

// Limit returns the hard ceiling on object indices.
func (p *Pool) Limit() int { return len(p.objects) }

// Max returns one past the highest index ever handed out.
func (p *Pool) Max() int { return p.max }

// Count returns the number of live objects.
func (p *Pool) Count() int { return p.count }

// SetLive marks whether a level is in play. Exhaustion warnings are only
// shown while it is.
func (p *Pool) SetLive(live bool) { p.live = live }

// SetNotifier sets the sink for player-visible pool messages.
func (p *Pool) SetNotifier(fn func(string)) { p.notify = fn }

func (p *Pool) message(s string) {
	if p.notify != nil {
		p.notify(s)
	}
}

// Get returns the live object at idx, or nil.
func (p *Pool) Get(idx int) *Object {
	if idx <= 0 || idx >= p.max {
		return nil
	}
	o := &p.objects[idx]
	if o.Kind == nil {
		return nil
	}
	return o
}

// Live reports whether idx refers to a live object.
func (p *Pool) Live(idx int) bool { return p.Get(idx) != nil }

// Pop returns a free index, or 0 when the pool is full. The caller fills in
// the record.
func (p *Pool) Pop() int {
	if p.max < len(p.objects) {
		i := p.max
		p.max++
		p.count++
		return i
	}
	for i := 1; i < p.max; i++ {
		if p.objects[i].Kind == nil {
			p.count++
			return i
		}
	}
	if p.live {
		p.message(gotext.Get("Too many objects!"))
	}
	return 0
}

// Place stores o in a freshly popped record and returns its index, or 0.
func (p *Pool) Place(o Object) int {
	idx := p.Pop()
	if idx == 0 {
		return 0
	}
	p.objects[idx] = o
	return idx
}

// GiveToMonster pushes the object at idx onto the monster's held chain.
func (p *Pool) GiveToMonster(idx, mIdx int) bool {
	o := p.Get(idx)
	m := p.monsters.Get(mIdx)
	if o == nil || m == nil {
		return false
	}
	o.HeldBy = mIdx
	o.Y, o.X = 0, 0
	o.Next = m.HeldObject
	m.HeldObject = idx
	return true
}

// Excise unlinks the object at idx from the chain that holds it without
// deleting it.
func (p *Pool) Excise(idx int) {
	o := p.Get(idx)
	if o == nil {
		return
	}
	if o.HeldBy != 0 {
		m := p.monsters.Get(o.HeldBy)
		if m == nil {
			return
		}
		prev := 0
		for cur := m.HeldObject; cur != 0; cur = p.objects[cur].Next {
			if cur == idx {
				if prev == 0 {
					m.HeldObject = o.Next
				} else {
					p.objects[prev].Next = o.Next
				}
				o.Next = 0
				return
			}
			prev = cur
		}
		return
	}
	if !p.cave.InBounds(o.Y, o.X) {
		return
	}
	prev := 0
	for cur := p.cave.ObjectIdx(o.Y, o.X); cur != 0; cur = p.objects[cur].Next {
		if cur == idx {
			if prev == 0 {
				p.cave.SetObjectIdx(o.Y, o.X, o.Next)
			} else {
				p.objects[prev].Next = o.Next
			}
			o.Next = 0
			return
		}
		prev = cur
	}
}

// Delete removes the object at idx from the world.
func (p *Pool) Delete(idx int) {
	o := p.Get(idx)
	if o == nil {
		return
	}
	p.Excise(idx)
	if o.MimickingMonster != 0 {
		if m := p.monsters.Get(o.MimickingMonster); m != nil {
			m.MimickedObject = 0
			m.Unaware = false
		}
	}
	// Unseen artifacts may be found again
	if o.Artifact != nil && !o.WasSensed() {
		o.Artifact.Created = false
	}
	o.Wipe()
	p.count--
}

// DeleteAt deletes the whole pile at (y, x), along with any monster
// pretending to be part of it.
func (p *Pool) DeleteAt(y, x int) {
	if !p.cave.InBounds(y, x) {
		return
	}
	next := 0
	for cur := p.cave.ObjectIdx(y, x); cur != 0; cur = next {
		o := &p.objects[cur]
		next = o.Next
		if o.Artifact != nil && !o.WasSensed() {
			o.Artifact.Created = false
		}
		if o.MimickingMonster != 0 {
			if m := p.monsters.Get(o.MimickingMonster); m != nil {
				m.MimickedObject = 0
			}
			p.monsters.Delete(o.MimickingMonster)
		}
		o.Wipe()
		p.count--
	}
	p.cave.SetObjectIdx(y, x, 0)
}

func (p *Pool) releaseMonster(_ int, m *monster.Monster) {
	next := 0
	for cur := m.HeldObject; cur != 0; cur = next {
		o := &p.objects[cur]
		next = o.Next
		o.HeldBy = 0
		o.Next = 0
		p.Delete(cur)
	}
	m.HeldObject = 0
	if m.MimickedObject != 0 {
		idx := m.MimickedObject
		m.MimickedObject = 0
		if o := p.Get(idx); o != nil {
			o.MimickingMonster = 0
			p.Delete(idx)
		}
	}
}

// Wipe deletes every object. Artifacts nobody has sensed go back into
// circulation unless the pool is live in no-preserve mode.
func (p *Pool) Wipe() {
	for i := 1; i < p.max; i++ {
		o := &p.objects[i]
		if o.Kind == nil {
			continue
		}
		if o.Artifact != nil && (!p.live || !p.NoPreserve) && !o.WasSensed() {
			o.Artifact.Created = false
		}
		if o.HeldBy != 0 {
			if m := p.monsters.Get(o.HeldBy); m != nil {
				m.HeldObject = 0
			}
		} else if p.cave.InBounds(o.Y, o.X) {
			p.cave.SetObjectIdx(o.Y, o.X, 0)
		}
		o.Wipe()
	}
	p.max = 1
	p.count = 0
}

// ForEach calls fn for every live object in index order.
func (p *Pool) ForEach(fn func(idx int, o *Object)) {
	for i := 1; i < p.max; i++ {
		if p.objects[i].Kind != nil {
			fn(i, &p.objects[i])
		}
	}
}

// Compact frees at least size records, sparing objects close to (py, px)
// and those guarded by monsters for as long as it can, then slides the
// survivors to the front of the slab. A size of 0 only defragments.
func (p *Pool) Compact(size int, py, px int) {
	if size == 0 {
		p.defragment()
		return
	}
	p.message(gotext.Get("Compacting objects..."))
	size = min(size, p.count)

	for i := 1; i < p.max && size > 0; i++ {
		o := &p.objects[i]
		if o.Kind == nil {
			continue
		}
		if o.TVal().IsMoney() || o.Ignored() {
			p.Delete(i)
			size--
		}
	}

	for cnt := 1; size > 0 && p.count > 0; cnt++ {
		curLev := 5 * cnt
		curDis := 5 * (20 - cnt)
		for i := 1; i < p.max && size > 0; i++ {
			o := &p.objects[i]
			if o.Kind == nil {
				continue
			}
			ignored := o.Ignored()
			if o.Kind.Level > curLev && !ignored {
				continue
			}
			y, x := o.Y, o.X
			if o.HeldBy != 0 {
				if m := p.monsters.Get(o.HeldBy); m != nil {
					y, x = m.Y, m.X
				}
				if p.rand.Int0(100) < 90 && !ignored {
					continue
				}
			} else if o.MimickingMonster != 0 {
				if p.rand.Int0(100) < 90 && !ignored {
					continue
				}
			}
			if curDis > 0 && world.Distance(py, px, y, x) < curDis && !ignored {
				continue
			}
			chance := 90
			if o.Artifact != nil && cnt < 1000 {
				chance = 100
			}
			if p.rand.Int0(100) < chance {
				continue
			}
			p.Delete(i)
			size--
		}
	}

	p.defragment()
}

// defragment moves live records down over dead ones, walking backwards so
// everything above the hole is already live.
func (p *Pool) defragment() {
	for i := p.max - 1; i >= 1; i-- {
		if p.objects[i].Kind != nil {
			continue
		}
		p.move(p.max-1, i)
		p.max--
	}
}

// move relocates record from to index to, repairing every reference.
func (p *Pool) move(from, to int) {
	if from == to {
		return
	}
	for i := 1; i < p.max; i++ {
		if p.objects[i].Kind != nil && p.objects[i].Next == from {
			p.objects[i].Next = to
		}
	}
	o := &p.objects[from]
	if o.HeldBy != 0 {
		if m := p.monsters.Get(o.HeldBy); m != nil && m.HeldObject == from {
			m.HeldObject = to
		}
	} else if p.cave.InBounds(o.Y, o.X) {
		if p.cave.ObjectIdx(o.Y, o.X) == from {
			p.cave.SetObjectIdx(o.Y, o.X, to)
		}
		if o.MimickingMonster != 0 {
			if m := p.monsters.Get(o.MimickingMonster); m != nil && m.MimickedObject == from {
				m.MimickedObject = to
			}
		}
	}
	p.objects[to] = *o
	o.Wipe()
}
