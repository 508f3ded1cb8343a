package generator

import (
	"log/slog"

	"cavegen/pkg/engine/rng"
	"cavegen/pkg/engine/world"
	"cavegen/pkg/game/monster"
	"cavegen/pkg/game/object"
)

// Where allocObjects may put things.
type allocSet int

const (
	setCorr allocSet = 1 << iota
	setRoom
	setBoth = setCorr | setRoom
)

// What allocObjects puts down.
type allocType int

const (
	typRubble allocType = iota + 1
	typTrap
	typGold
	typObject
	typGood
	typGreat
)

// Average numbers of things scattered over a level.
const (
	roomItemAv      = 9
	bothItemAv      = 3
	bothGoldAv      = 3
	levelMonsterMin = 14
)

// findTries bounds every random search for a grid.
const findTries = 10000

// builder is the state one attempt builds a level with. Every cave builder
// and room builder works through it.
type builder struct {
	g     *Generator
	dun   *dun
	depth int
	turn  int64
	r     *rng.Rand
	log   *slog.Logger

	c     *world.Cave
	mons  *monster.List
	objs  *object.Pool
	spawn *monster.Spawner

	py, px int
	placed bool
}

func (g *Generator) newBuilder(p *caveProfile, depth int, turn int64) *builder {
	return &builder{
		g:     g,
		dun:   newDun(p),
		depth: depth,
		turn:  turn,
		r:     g.rand,
		log:   g.log.With("profile", p.name, "depth", depth),
	}
}

// newCave starts the attempt over on an empty h by w cave, releasing
// anything a previous cave of this attempt held.
func (b *builder) newCave(h, w int) {
	b.discard()
	b.c = world.NewCave(h, w)
	b.c.Depth = b.depth
	b.mons = monster.NewList(b.g.cfg.MonsterMax, b.c)
	b.objs = object.NewPool(b.g.cfg.ObjectMax, b.c, b.mons, b.r)
	b.objs.NoPreserve = b.g.cfg.NoPreserve
	b.objs.NoStacking = b.g.cfg.NoStacking
	b.spawn = monster.NewSpawner(b.g.races, b.mons, b.r)
	b.spawn.Avoid = b.isPlayer
	b.spawn.Equip = b.giveDrop
	b.placed = false
}

// discard puts back the artifacts and unique monsters the current cave
// used up.
func (b *builder) discard() {
	if b.objs != nil {
		b.objs.Wipe()
	}
	if b.mons != nil {
		b.mons.Wipe()
	}
}

// fits reports whether the rectangle lies inside the cave.
func (b *builder) fits(y1, x1, y2, x2 int) bool {
	return b.c.InBounds(y1, x1) && b.c.InBounds(y2, x2)
}

func (b *builder) isPlayer(y, x int) bool {
	return b.placed && y == b.py && x == b.px
}

// findEmpty picks a random empty floor grid without a trap or the player.
func (b *builder) findEmpty() (int, int, bool) {
	for tries := 0; tries < findTries; tries++ {
		y := b.r.Int0(b.c.Height)
		x := b.r.Int0(b.c.Width)
		if b.c.IsEmpty(y, x) && !b.c.Has(y, x, world.SquareTrap) && !b.isPlayer(y, x) {
			return y, x, true
		}
	}
	return 0, 0, false
}

// findNearbyGrid picks a grid within yd rows and xd columns of (y0, x0)
// that is not on the cave edge.
func (b *builder) findNearbyGrid(y0, yd, x0, xd int) (int, int) {
	for tries := 0; tries < 100; tries++ {
		y := b.r.Spread(y0, yd)
		x := b.r.Spread(x0, xd)
		if b.c.InBoundsFully(y, x) {
			return y, x
		}
	}
	return y0, x0
}

// scatter picks a grid within distance d of (y0, x0) that can be seen from it.
func (b *builder) scatter(y0, x0, d int) (int, int, bool) {
	for tries := 0; tries < 100; tries++ {
		y := b.r.Spread(y0, d)
		x := b.r.Spread(x0, d)
		if !b.c.InBoundsFully(y, x) || world.Distance(y0, x0, y, x) > d {
			continue
		}
		if world.LOS(b.c, y0, x0, y, x) {
			return y, x, true
		}
	}
	return 0, 0, false
}

// nextToWalls counts the strong walls orthogonally next to (y, x).
func (b *builder) nextToWalls(y, x int) int {
	n := 0
	for _, d := range world.Orthogonal {
		dy, dx := d.Delta()
		if b.c.InBounds(y+dy, x+dx) && b.c.IsStrongWall(y+dy, x+dx) {
			n++
		}
	}
	return n
}

func (b *builder) placeSecretDoor(y, x int) { b.c.SetFeat(y, x, world.FeatSecret) }

func (b *builder) placeClosedDoor(y, x int) { b.c.SetFeat(y, x, world.FeatClosed) }

func (b *builder) placeRandomDoor(y, x int) {
	switch tmp := b.r.Int0(1000); {
	case tmp < 300:
		b.c.SetFeat(y, x, world.FeatOpen)
	case tmp < 400:
		b.c.SetFeat(y, x, world.FeatBroken)
	case tmp < 600:
		b.c.SetFeat(y, x, world.FeatSecret)
	default:
		b.c.SetFeat(y, x, world.FeatClosed)
	}
}

// placeStairs puts a staircase at (y, x). Down stairs become up stairs
// where the player may not go deeper, and the town only goes down.
func (b *builder) placeStairs(y, x int, feat world.Feature) {
	switch {
	case b.depth == 0:
		feat = world.FeatMore
	case feat == world.FeatMore && b.g.quests.NextDepth(b.depth) == 0:
		feat = world.FeatLess
	}
	b.c.SetFeat(y, x, feat)
}

func (b *builder) placeRandomStairs(y, x int) {
	if !b.c.IsEmpty(y, x) {
		return
	}
	if b.r.OneIn(2) {
		b.placeStairs(y, x, world.FeatLess)
	} else {
		b.placeStairs(y, x, world.FeatMore)
	}
}

// allocStairs places num staircases, preferring grids with at least walls
// strong walls beside them.
func (b *builder) allocStairs(feat world.Feature, num, walls int) {
	for i := 0; i < num; i++ {
		placed := false
		for !placed {
			for j := 0; !placed && j <= 1000; j++ {
				y, x, ok := b.findEmpty()
				if !ok {
					return
				}
				if b.nextToWalls(y, x) < walls {
					continue
				}
				b.placeStairs(y, x, feat)
				placed = true
			}
			if walls > 0 {
				walls--
			}
		}
	}
}

func (b *builder) placeRubble(y, x int) {
	if b.r.OneIn(2) {
		b.c.SetFeat(y, x, world.FeatPassRubble)
	} else {
		b.c.SetFeat(y, x, world.FeatRubble)
	}
}

func (b *builder) placeTrap(y, x int) {
	if b.c.IsFloor(y, x) && b.c.ObjectIdx(y, x) == 0 {
		b.c.On(y, x, world.SquareTrap)
	}
}

// placeObject makes an object for level and drops it at (y, x), adding its
// worth to the level's object rating.
func (b *builder) placeObject(y, x, level int, good, great bool, origin object.Origin, tval object.TVal) {
	if !b.c.CanPutItem(y, x) {
		return
	}
	o, rating, ok := b.g.maker.Make(level, good, great, tval)
	if !ok {
		return
	}
	o.Origin = origin
	o.OriginDepth = b.depth
	if b.objs.FloorCarry(y, x, &o) == 0 {
		if o.Artifact != nil {
			o.Artifact.Created = false
		}
		return
	}
	if o.Artifact != nil {
		b.c.GoodItem = true
	}
	b.c.ObjRating += uint32((rating / 10) * (rating / 10))
}

// giveDrop hands a newly placed unique a good object to carry.
func (b *builder) giveDrop(mIdx int, m *monster.Monster, origin int) {
	if !m.Race.Unique {
		return
	}
	o, _, ok := b.g.maker.Make(max(m.Race.Level, b.depth), true, false, object.TVNull)
	if !ok {
		return
	}
	o.Origin = object.Origin(origin)
	if o.Origin == object.OriginNone {
		o.Origin = object.OriginDrop
	}
	o.OriginDepth = b.depth
	o.OriginRace = m.Race
	idx := b.objs.Place(o)
	if idx == 0 {
		if o.Artifact != nil {
			o.Artifact.Created = false
		}
		return
	}
	b.objs.GiveToMonster(idx, mIdx)
}

func (b *builder) placeGold(y, x, level int, origin object.Origin) {
	if !b.c.CanPutItem(y, x) {
		return
	}
	o := b.g.maker.Gold(level)
	o.Origin = origin
	o.OriginDepth = b.depth
	b.objs.FloorCarry(y, x, &o)
}

// allocObjects scatters num things of typ over the grids allowed by set.
func (b *builder) allocObjects(set allocSet, typ allocType, num, depth int, origin object.Origin) {
	for k := 0; k < num; k++ {
		b.allocObject(set, typ, depth, origin)
	}
}

func (b *builder) allocObject(set allocSet, typ allocType, depth int, origin object.Origin) bool {
	for tries := 0; tries < 2000; tries++ {
		y, x, ok := b.findEmpty()
		if !ok {
			return false
		}
		room := b.c.IsRoom(y, x)
		if (set == setCorr && room) || (set == setRoom && !room) {
			continue
		}
		switch typ {
		case typRubble:
			b.placeRubble(y, x)
		case typTrap:
			b.placeTrap(y, x)
		case typGold:
			b.placeGold(y, x, depth, origin)
		case typObject:
			b.placeObject(y, x, depth, false, false, origin, object.TVNull)
		case typGood:
			b.placeObject(y, x, depth, true, false, origin, object.TVNull)
		case typGreat:
			b.placeObject(y, x, depth, true, true, origin, object.TVNull)
		}
		return true
	}
	return false
}

// vaultObjects puts num objects or piles of gold near (y, x).
func (b *builder) vaultObjects(y, x, depth, num int) {
	for ; num > 0; num-- {
		for i := 0; i < 11; i++ {
			j, k := b.findNearbyGrid(y, 2, x, 3)
			if !b.c.CanPutItem(j, k) {
				continue
			}
			if b.r.Int0(100) < 75 {
				b.placeObject(j, k, depth, false, false, object.OriginSpecial, object.TVNull)
			} else {
				b.placeGold(j, k, depth, object.OriginVault)
			}
			break
		}
	}
}

// vaultTraps sets num traps within yd rows and xd columns of (y, x).
func (b *builder) vaultTraps(y, x, yd, xd, num int) {
	for i := 0; i < num; i++ {
		for count := 0; count <= 5; count++ {
			j, k := b.findNearbyGrid(y, yd, x, xd)
			if !b.c.IsEmpty(j, k) {
				continue
			}
			b.placeTrap(j, k)
			break
		}
	}
}

// vaultMonsters places num monsters right next to (y, x).
func (b *builder) vaultMonsters(y, x, depth, num int) {
	for k := 0; k < num; k++ {
		for i := 0; i < 9; i++ {
			j, l, ok := b.scatter(y, x, 1)
			if !ok || !b.c.IsEmpty(j, l) || b.isPlayer(j, l) {
				continue
			}
			b.pickAndPlaceMonster(j, l, depth, true, true, object.OriginDropSpecial)
			break
		}
	}
}

func (b *builder) pickAndPlaceMonster(y, x, depth int, sleep, groups bool, origin object.Origin) bool {
	race := b.spawn.Pick(depth, nil)
	if race == nil {
		return false
	}
	return b.spawn.PlaceNewMonster(b.c, y, x, race, sleep, groups, int(origin))
}

// placeDistantMonsters puts num monsters well away from the player.
func (b *builder) placeDistantMonsters(num, dis int) {
	for ; num > 0; num-- {
		b.spawn.PlaceDistant(b.c, b.py, b.px, dis, true, b.depth)
	}
}

// newPlayerSpot picks where the player starts.
func (b *builder) newPlayerSpot() error {
	for tries := 0; tries < 1000; tries++ {
		y, x, ok := b.findEmpty()
		if !ok {
			break
		}
		if b.c.IsVault(y, x) {
			continue
		}
		b.py, b.px, b.placed = y, x, true
		return nil
	}
	return errNoPlayerSpot
}

// findFeat reports whether any grid holds feat.
func (b *builder) findFeat(feat world.Feature) bool {
	return b.c.FeatCount(feat) > 0
}
