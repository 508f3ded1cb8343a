package monster

import (
	"cavegen/pkg/engine/rng"
	"cavegen/pkg/engine/world"
)

// Placer puts monsters into a cave.
type Placer interface {
	PlaceNewMonster(c *world.Cave, y, x int, race *Race, sleep, groups bool, origin int) bool
}

// Spawner picks and places monsters from a race table into a monster list.
type Spawner struct {
	Races []*Race
	List  *List
	Rand  *rng.Rand

	// Avoid, if set, reports grids no monster may be put on, such as the
	// player's.
	Avoid func(y, x int) bool
	// Equip, if set, is called for every monster placed.
	Equip func(idx int, m *Monster, origin int)
}

// NewSpawner returns a Spawner for races placing into l.
func NewSpawner(races []*Race, l *List, r *rng.Rand) *Spawner {
	return &Spawner{Races: races, List: l, Rand: r}
}

// PlaceNewMonster places one monster of race at (y, x), plus a group of its
// friends when groups is set. It adds the monster's danger to the cave's
// monster rating.
func (s *Spawner) PlaceNewMonster(c *world.Cave, y, x int, race *Race, sleep, groups bool, origin int) bool {
	if !s.placeOne(c, y, x, race, sleep, origin) {
		return false
	}
	if !groups || race.Friends == 0 || race.Unique {
		return true
	}
	n := s.Rand.Int1(race.Friends)
	for i := 0; i < n; i++ {
		ny, nx, ok := s.nearbyEmpty(c, y, x, 3)
		if !ok {
			break
		}
		s.placeOne(c, ny, nx, race, sleep, origin)
	}
	return true
}

func (s *Spawner) placeOne(c *world.Cave, y, x int, race *Race, sleep bool, origin int) bool {
	if race == nil || !c.InBounds(y, x) || !c.IsEmpty(y, x) || s.avoided(y, x) {
		return false
	}
	if race.CurNum >= race.MaxNum {
		return false
	}
	idx := s.List.Place(y, x, race, sleep)
	if idx == 0 {
		return false
	}
	m := s.List.Get(idx)
	m.Origin = origin
	c.MonRating += uint32(race.Power * race.Power * 10)
	if s.Equip != nil {
		s.Equip(idx, m, origin)
	}
	return true
}

func (s *Spawner) avoided(y, x int) bool {
	return s.Avoid != nil && s.Avoid(y, x)
}

func (s *Spawner) nearbyEmpty(c *world.Cave, y, x, d int) (int, int, bool) {
	for tries := 0; tries < 20; tries++ {
		ny := s.Rand.Spread(y, d)
		nx := s.Rand.Spread(x, d)
		if !c.InBoundsFully(ny, nx) || !c.IsEmpty(ny, nx) || s.avoided(ny, nx) {
			continue
		}
		if c.Has(ny, nx, world.SquareMonRestrict) && !c.Has(y, x, world.SquareMonRestrict) {
			continue
		}
		return ny, nx, true
	}
	return 0, 0, false
}

// Pick selects a race for a monster of the given level, weighted by rarity.
// hook, if set, restricts the candidates. Questors are never picked.
func (s *Spawner) Pick(level int, hook func(*Race) bool) *Race {
	// Occasionally boost the level
	if level > 0 && s.Rand.OneIn(25) {
		level += min(level/4+2, 5)
	}
	total := 0
	weights := make([]int, len(s.Races))
	for i, r := range s.Races {
		if r.Questor || r.Level > level || r.CurNum >= r.MaxNum {
			continue
		}
		if hook != nil && !hook(r) {
			continue
		}
		weights[i] = 100 / r.Rarity
		total += weights[i]
	}
	if total == 0 {
		return nil
	}
	v := s.Rand.Int0(total)
	for i, w := range weights {
		if v < w {
			return s.Races[i]
		}
		v -= w
	}
	return nil
}

// PlaceDistant picks a race for level and places it on an empty grid at
// least dis away from (py, px), outside restricted areas.
func (s *Spawner) PlaceDistant(c *world.Cave, py, px, dis int, sleep bool, level int) bool {
	race := s.Pick(level, nil)
	if race == nil {
		return false
	}
	for tries := 0; tries < 10000; tries++ {
		y := s.Rand.Int0(c.Height)
		x := s.Rand.Int0(c.Width)
		if !c.IsEmpty(y, x) || s.avoided(y, x) || c.Has(y, x, world.SquareMonRestrict|world.SquareVault) {
			continue
		}
		if world.Distance(y, x, py, px) <= dis {
			continue
		}
		return s.PlaceNewMonster(c, y, x, race, sleep, true, 0)
	}
	return false
}

// Find returns the race named name, or nil.
func (s *Spawner) Find(name string) *Race {
	for _, r := range s.Races {
		if r.Name == name {
			return r
		}
	}
	return nil
}
