package generator

import (
	"cavegen/pkg/engine/world"
	"cavegen/pkg/game/object"
)

// levelScale returns the percentage of the full dungeon size a level gets.
// Quest levels are always full size.
func (b *builder) levelScale() int {
	if b.g.quests.IsQuest(b.depth) {
		return 100
	}
	switch i := b.r.Int1(10) + b.depth/24; {
	case i < 2:
		return 75
	case i < 3:
		return 80
	case i < 4:
		return 85
	case i < 5:
		return 90
	case i < 6:
		return 95
	}
	return 100
}

// scaledSize sizes the cave for a level of the given scale, give or take
// five percent, never more than the full dungeon.
func (b *builder) scaledSize(size int) (int, int) {
	cfg := b.g.cfg
	h := cfg.DungeonHgt * (size - 5 + b.r.Int0(10)) / 100
	w := cfg.DungeonWid * (size - 5 + b.r.Int0(10)) / 100
	h = min(max(h, cfg.DungeonHgt/2), cfg.DungeonHgt)
	w = min(max(w, cfg.DungeonWid/2), cfg.DungeonWid)
	return h, w
}

// roomRolls draws the rarity and key that decide which rooms may be tried.
func (b *builder) roomRolls() (rarity, key int) {
	p := b.dun.profile
	key = b.r.Int0(100)
	for i := 0; i == rarity && i < p.maxRarity; i++ {
		if b.r.Int0(p.dunUnusual) < 50+b.depth/2 {
			rarity++
		}
	}
	return rarity, key
}

// tryRooms runs down the profile's room table, calling build for each room
// the rolls allow until one is built.
func (b *builder) tryRooms(build func(rp *roomProfile) bool) bool {
	rarity, key := b.roomRolls()
	rooms := b.dun.profile.rooms
	for i := range rooms {
		rp := &rooms[i]
		if rp.rarity > rarity || rp.cutoff <= key {
			continue
		}
		if build(rp) {
			return true
		}
	}
	return false
}

// roomBuild builds rp with its top left block at (by0, bx0), if the blocks
// it needs are free.
func (b *builder) roomBuild(by0, bx0 int, rp *roomProfile) bool {
	d := b.dun
	if b.depth < rp.level {
		return false
	}
	if rp.pit && d.pitNum >= maxPit {
		return false
	}

	by1, bx1 := by0, bx0
	by2 := by0 + rp.height/d.blockHgt
	bx2 := bx0 + rp.width/d.blockWid
	if by1 < 0 || by2 >= d.rowBlocks || bx1 < 0 || bx2 >= d.colBlocks {
		return false
	}
	for by := by1; by <= by2; by++ {
		for bx := bx1; bx <= bx2; bx++ {
			if d.roomMap[by][bx] {
				return false
			}
		}
	}

	y := ((by1 + by2 + 1) * d.blockHgt) / 2
	x := ((bx1 + bx2 + 1) * d.blockWid) / 2
	if len(d.cent) >= centMax {
		return false
	}
	if !rp.build(b, y, x) {
		return false
	}
	d.addCentre(y, x)

	for by := by1; by < by2; by++ {
		for bx := bx1; bx < bx2; bx++ {
			d.roomMap[by][bx] = true
		}
	}
	if rp.pit {
		d.pitNum++
	}
	b.log.Debug("room built", "room", rp.name, "y", y, "x", x)
	return true
}

// pickBlock chooses a block not tried yet, uniformly.
func (b *builder) pickBlock(tried [][]bool) (int, int, bool) {
	n := 0
	by, bx := 0, 0
	for y := range tried {
		for x := range tried[y] {
			if tried[y][x] {
				continue
			}
			n++
			if b.r.OneIn(n) {
				by, bx = y, x
			}
		}
	}
	return by, bx, n > 0
}

// classicGen builds the traditional level: rooms dropped into a grid of
// blocks, joined by wandering tunnels.
func classicGen(b *builder) error {
	d := b.dun
	size := b.levelScale()
	h, w := b.scaledSize(size)

	b.newCave(h, w)
	b.c.FillRectangle(0, 0, h-1, w-1, world.FeatGranite, world.SquareNone)
	d.setBlocks(h, w)

	tried := make([][]bool, d.rowBlocks)
	for i := range tried {
		tried[i] = make([]bool, d.colBlocks)
	}

	numRooms := d.profile.dunRooms * size / 100
	for i := 0; i < numRooms; i++ {
		by, bx, ok := b.pickBlock(tried)
		if !ok {
			break
		}
		tried[by][bx] = true
		b.tryRooms(func(rp *roomProfile) bool { return b.roomBuild(by, bx, rp) })
	}
	if len(d.cent) == 0 {
		return errNoRooms
	}

	b.c.DrawRectangle(0, 0, h-1, w-1, world.FeatPerm, world.SquareNone)

	if err := b.joinRooms(); err != nil {
		return err
	}
	if err := b.ensureConnected(); err != nil {
		return err
	}
	b.placeDoors()
	b.buildStreamers()

	return b.populate()
}

// populate finishes a room-and-tunnel level: stairs, rubble, traps, the
// player, monsters and objects.
func (b *builder) populate() error {
	b.allocStairs(world.FeatMore, b.r.Range(1, 2), 3)
	b.allocStairs(world.FeatLess, 1, 3)

	k := max(min(b.depth/3, 10), 2)

	b.allocObjects(setCorr, typRubble, b.r.Int1(k), b.depth, object.OriginNone)
	b.allocObjects(setBoth, typTrap, b.r.Int1(k), b.depth, object.OriginNone)

	if err := b.newPlayerSpot(); err != nil {
		return err
	}

	b.placeDistantMonsters(levelMonsterMin+b.r.Int1(8)+k, 0)

	b.allocObjects(setRoom, typObject, b.r.Normal(roomItemAv, 3), b.depth, object.OriginFloor)
	b.allocObjects(setBoth, typObject, b.r.Normal(bothItemAv, 3), b.depth, object.OriginFloor)
	b.allocObjects(setBoth, typGold, b.r.Normal(bothGoldAv, 3), b.depth, object.OriginFloor)
	return nil
}
