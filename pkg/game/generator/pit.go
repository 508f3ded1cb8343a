package generator

import (
	"slices"

	"cavegen/pkg/engine/world"
	"cavegen/pkg/game/data"
	"cavegen/pkg/game/monster"
	"cavegen/pkg/game/object"
)

// pitTries bounds the search for a pit profile suiting the depth.
const pitTries = 1000

// setPitType picks a pit profile of the given room kind whose average
// level, with some spread, lies near the depth.
func (b *builder) setPitType(room string) *data.Pit {
	pits := b.g.data.PitsOfRoom(room)
	if len(pits) == 0 {
		return nil
	}
	for tries := 0; tries < pitTries; tries++ {
		p := pits[b.r.Int0(len(pits))]
		offset := b.r.Normal(p.Ave, 10)
		if abs(offset-b.depth) < 10 && b.r.OneIn(p.Rarity) {
			return p
		}
	}
	return nil
}

// pitHook accepts the non-unique races of the pit's monster bases.
func pitHook(p *data.Pit) func(*monster.Race) bool {
	return func(r *monster.Race) bool {
		return !r.Unique && slices.Contains(p.Bases, r.Base)
	}
}

// pickPitRaces chooses n races for the current pit, or nil when the depth
// has too few of them.
func (b *builder) pickPitRaces(room string, n int) []*monster.Race {
	p := b.setPitType(room)
	if p == nil {
		return nil
	}
	b.dun.pitType = p
	hook := pitHook(p)
	what := make([]*monster.Race, n)
	for i := range what {
		if what[i] = b.spawn.Pick(b.depth+10, hook); what[i] == nil {
			return nil
		}
	}
	return what
}

// pitRoom draws the shared shell of pits and nests: a large room with an
// inner room behind a secret door.
func (b *builder) pitRoom(y0, x0, xvary int) {
	y1, y2 := y0-4, y0+4
	x1, x2 := x0-11-xvary, x0+11+xvary
	b.walledRoom(y1, x1, y2, x2, false)

	y1, y2 = y1+2, y2-2
	x1, x2 = x1+2, x2-2
	b.c.DrawRectangle(y1-1, x1-1, y2+1, x2+1, world.FeatGranite, world.SquareWallInner)
	b.c.GenerateHole(y1-1, x1-1, y2+1, x2+1, b.r.Int0(4), world.FeatSecret)
}

// pitObjects scatters objects over the inner room of a pit.
func (b *builder) pitObjects(y0, x0 int) {
	alloc := 100 / max(b.dun.pitType.ObjRarity, 1)
	for y := y0 - 2; y <= y0+2; y++ {
		for x := x0 - 9; x <= x0+9; x++ {
			if b.r.Int0(100) < alloc {
				b.placeObject(y, x, b.depth+10, b.r.OneIn(3), false, object.OriginPit, object.TVNull)
			}
		}
	}
}

// buildNest fills an inner room with a jumble of monsters of one kind.
func buildNest(b *builder, y0, x0 int) bool {
	xvary := b.r.Int0(4)
	if !b.fits(y0-5, x0-12-xvary, y0+5, x0+12+xvary) {
		return false
	}
	what := b.pickPitRaces("nest", 64)
	if what == nil {
		return false
	}

	b.pitRoom(y0, x0, xvary)
	b.log.Debug("monster nest", "kind", b.dun.pitType.Name)

	for y := y0 - 2; y <= y0+2; y++ {
		for x := x0 - 9; x <= x0+9; x++ {
			race := what[b.r.Int0(len(what))]
			b.spawn.PlaceNewMonster(b.c, y, x, race, false, false, int(object.OriginDropPit))
		}
	}
	b.pitObjects(y0, x0)
	return true
}

// buildPit fills an inner room with monsters of one kind arranged in rings,
// the strongest in the middle.
func buildPit(b *builder, y0, x0 int) bool {
	if !b.fits(y0-5, x0-12, y0+5, x0+12) {
		return false
	}
	what := b.pickPitRaces("pit", 16)
	if what == nil {
		return false
	}

	slices.SortStableFunc(what, func(a, c *monster.Race) int { return a.Level - c.Level })
	for i := 0; i < 8; i++ {
		what[i] = what[i*2]
	}

	b.pitRoom(y0, x0, 0)
	b.log.Debug("monster pit", "kind", b.dun.pitType.Name)

	place := func(y, x, i int) {
		b.spawn.PlaceNewMonster(b.c, y, x, what[i], false, false, int(object.OriginDropPit))
	}

	// Top and bottom rows
	for x := x0 - 9; x <= x0+9; x++ {
		place(y0-2, x, 0)
		place(y0+2, x, 0)
	}
	// Middle columns, getting stronger towards the centre
	for y := y0 - 1; y <= y0+1; y++ {
		place(y, x0-9, 0)
		place(y, x0+9, 0)
		for d := 8; d >= 2; d-- {
			i := (10 - d) / 2
			place(y, x0-d, i)
			place(y, x0+d, i)
		}
	}
	for x := x0 - 1; x <= x0+1; x++ {
		place(y0+1, x, 5)
		place(y0-1, x, 5)
	}
	place(y0, x0+1, 6)
	place(y0, x0-1, 6)
	place(y0, x0, 7)

	b.pitObjects(y0, x0)
	return true
}
