package generator

import (
	"cavegen/pkg/engine/world"
	"cavegen/pkg/game/object"
)

// disjoint is a union-find over the cells of a labyrinth.
type disjoint []int

func newDisjoint(n int) disjoint {
	d := make(disjoint, n)
	for i := range d {
		d[i] = i
	}
	return d
}

func (d disjoint) find(i int) int {
	for d[i] != i {
		d[i] = d[d[i]]
		i = d[i]
	}
	return i
}

// union joins the sets of a and b, reporting whether they were apart.
func (d disjoint) union(a, b int) bool {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return false
	}
	d[rb] = ra
	return true
}

// labIsTunnel reports a grid with open grids on exactly one opposite pair
// of sides.
func (b *builder) labIsTunnel(y, x int) bool {
	open := func(y, x int) bool { return b.c.IsFloor(y, x) }
	west, east := open(y, x-1), open(y, x+1)
	north, south := open(y-1, x), open(y+1, x)
	return north == south && west == east && north != west
}

// labyrinthGen builds a perfect maze by knocking down walls between cells
// in random order, joining cells that are not yet connected.
func labyrinthGen(b *builder) error {
	h := 15 + b.r.Int0(b.depth/10)*2
	w := 51 + b.r.Int0(b.depth/10)*10
	n := h * w

	lit := b.r.Int0(b.depth) < 25 || b.r.Int0(2) < 1
	known := lit && b.r.Int0(b.depth) < 25
	soft := b.r.Int0(b.depth) < 35 || b.r.Int0(3) < 2

	b.newCave(h+2, w+2)
	b.c.FillRectangle(0, 0, h+1, w+1, world.FeatPerm, world.SquareNone)
	wall := world.FeatPerm
	if soft {
		wall = world.FeatGranite
	}
	b.c.FillRectangle(1, 1, h, w, wall, world.SquareWallSolid)

	open := func(y, x int) {
		b.c.SetFeat(y+1, x+1, world.FeatFloor)
		if lit {
			b.c.On(y+1, x+1, world.SquareGlow)
		}
	}

	// Cells sit on even coordinates; everything between them is wall.
	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x += 2 {
			open(y, x)
		}
	}

	walls := make([]int, n)
	for i := range walls {
		walls[i] = i
	}
	b.r.Shuffle(n, func(i, j int) { walls[i], walls[j] = walls[j], walls[i] })

	sets := newDisjoint(n)
	for _, j := range walls {
		y, x := j/w, j%w
		if x%2 == y%2 {
			continue
		}
		var a, c int
		if x%2 == 0 {
			a, c = (y-1)*w+x, (y+1)*w+x
		} else {
			a, c = y*w+x-1, y*w+x+1
		}
		if sets.union(a, c) {
			open(y, x)
		}
	}

	if err := b.newPlayerSpot(); err != nil {
		return err
	}

	// A door for every hundred grids, in a corridor where possible.
	for i := n / 100; i > 0; i-- {
		var y, x int
		found := false
		for j := 0; j < 10; j++ {
			var ok bool
			if y, x, ok = b.findEmpty(); !ok {
				break
			}
			found = true
			if b.labIsTunnel(y, x) {
				break
			}
		}
		if found {
			b.placeClosedDoor(y, x)
		}
	}

	if !lit {
		b.allocObjects(setBoth, typGood, b.r.Normal(3, 2), b.depth, object.OriginLabyrinth)
	}
	if !soft {
		b.allocObjects(setBoth, typGreat, b.r.Normal(2, 1), b.depth, object.OriginLabyrinth)
	}

	if known {
		b.c.ForEach(func(y, x int) { b.c.On(y, x, world.SquareMark) })
	}

	if !b.findFeat(world.FeatLess) {
		b.allocStairs(world.FeatLess, 1, 3)
	}
	if !b.findFeat(world.FeatMore) {
		b.allocStairs(world.FeatMore, 1, 3)
	}

	k := max(min(b.depth/3, 10), 2)
	k = 3 * k * n / (b.g.cfg.DungeonHgt * b.g.cfg.DungeonWid)

	b.allocObjects(setBoth, typRubble, b.r.Int1(k), b.depth, object.OriginNone)
	b.allocObjects(setCorr, typTrap, b.r.Int1(k), b.depth, object.OriginNone)

	b.placeDistantMonsters(levelMonsterMin+b.r.Int1(8)+k, 0)

	b.allocObjects(setBoth, typObject, b.r.Normal(k*6, 2), b.depth, object.OriginLabyrinth)
	b.allocObjects(setBoth, typGold, b.r.Normal(k*3, 2), b.depth, object.OriginLabyrinth)
	b.allocObjects(setBoth, typGood, b.r.Int1(2), b.depth, object.OriginLabyrinth)

	b.log.Debug("labyrinth built", "lit", lit, "known", known, "soft", soft)
	return nil
}
