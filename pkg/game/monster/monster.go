// Package monster holds the monster list the cave and object list refer to:
// races, live monsters with their held-object chains, and placement.
package monster

import (
	"cavegen/pkg/engine/world"
	"cavegen/pkg/game/data"
)

// Race is a kind of monster.
type Race struct {
	Index   int
	Name    string
	Glyph   rune
	Base    string
	Level   int
	Rarity  int
	Power   int
	Friends int
	Unique  bool
	Questor bool

	CurNum int
	MaxNum int
}

// NewRaces builds the race table from data records.
func NewRaces(recs []data.Race) []*Race {
	races := make([]*Race, 0, len(recs))
	for i, r := range recs {
		glyph := '?'
		for _, ch := range r.Glyph {
			glyph = ch
			break
		}
		race := &Race{
			Index:   i,
			Name:    r.Name,
			Glyph:   glyph,
			Base:    r.Base,
			Level:   r.Level,
			Rarity:  max(r.Rarity, 1),
			Power:   r.Power,
			Friends: r.Friends,
			Unique:  r.Unique,
			Questor: r.Questor,
			MaxNum:  100,
		}
		if race.Unique {
			race.MaxNum = 1
		}
		races = append(races, race)
	}
	return races
}

// Monster is one live monster.
type Monster struct {
	Race *Race
	Y, X int

	// HeldObject is the head of the chain of objects the monster carries.
	HeldObject int
	// MimickedObject is the object this monster is disguised as, or 0.
	MimickedObject int
	Unaware        bool
	Asleep         bool
	Origin         int
}

// List is the monster slab. Index 0 is never used.
type List struct {
	monsters []Monster
	max      int
	count    int
	cave     *world.Cave
	release  func(idx int, m *Monster)
}

// NewList creates a monster list with room for limit-1 monsters on c.
func NewList(limit int, c *world.Cave) *List {
	if limit < 2 {
		panic("monster list limit must be at least 2")
	}
	return &List{
		monsters: make([]Monster, limit),
		max:      1,
		cave:     c,
	}
}

// SetReleaseHook registers fn to run when a monster is deleted, before its
// record is wiped. The object list uses it to drop held and mimicked objects.
func (l *List) SetReleaseHook(fn func(idx int, m *Monster)) {
	l.release = fn
}

// Limit returns the hard ceiling on monster indices.
func (l *List) Limit() int { return len(l.monsters) }

// Max returns one past the highest index ever handed out.
func (l *List) Max() int { return l.max }

// Count returns the number of live monsters.
func (l *List) Count() int { return l.count }

// Get returns the live monster at idx, or nil.
func (l *List) Get(idx int) *Monster {
	if idx <= 0 || idx >= l.max {
		return nil
	}
	m := &l.monsters[idx]
	if m.Race == nil {
		return nil
	}
	return m
}

// Live reports whether idx refers to a live monster.
func (l *List) Live(idx int) bool {
	return l.Get(idx) != nil
}

// Pop returns a free monster index, or 0 if the list is full.
func (l *List) Pop() int {
	if l.max < len(l.monsters) {
		i := l.max
		l.max++
		l.count++
		return i
	}
	for i := 1; i < l.max; i++ {
		if l.monsters[i].Race == nil {
			l.count++
			return i
		}
	}
	return 0
}

// Place creates a monster of race at (y, x). It returns the new index or 0.
func (l *List) Place(y, x int, race *Race, sleep bool) int {
	idx := l.Pop()
	if idx == 0 {
		return 0
	}
	l.monsters[idx] = Monster{Race: race, Y: y, X: x, Asleep: sleep}
	l.cave.SetMonsterIdx(y, x, idx)
	race.CurNum++
	return idx
}

// Delete removes the monster at idx and everything that refers to it.
func (l *List) Delete(idx int) {
	m := l.Get(idx)
	if m == nil {
		return
	}
	if l.release != nil {
		l.release(idx, m)
	}
	if l.cave.InBounds(m.Y, m.X) && l.cave.MonsterIdx(m.Y, m.X) == idx {
		l.cave.SetMonsterIdx(m.Y, m.X, 0)
	}
	m.Race.CurNum--
	l.monsters[idx] = Monster{}
	l.count--
}

// Wipe removes every monster without running release hooks, restoring the
// race population counts.
func (l *List) Wipe() {
	for i := 1; i < l.max; i++ {
		m := &l.monsters[i]
		if m.Race == nil {
			continue
		}
		m.Race.CurNum--
		if l.cave.InBounds(m.Y, m.X) && l.cave.MonsterIdx(m.Y, m.X) == i {
			l.cave.SetMonsterIdx(m.Y, m.X, 0)
		}
		l.monsters[i] = Monster{}
	}
	l.max = 1
	l.count = 0
}

// ForEach calls fn for every live monster in index order.
func (l *List) ForEach(fn func(idx int, m *Monster)) {
	for i := 1; i < l.max; i++ {
		if l.monsters[i].Race != nil {
			fn(i, &l.monsters[i])
		}
	}
}
