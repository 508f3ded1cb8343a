package generator

import (
	"cavegen/pkg/engine/rng"
	"cavegen/pkg/engine/world"
	"cavegen/pkg/game/chunk"
)

// Town layout
const (
	storeCount  = 8
	storeRows   = 2
	storeCols   = (storeCount + 1) / storeRows
	dayLength   = 100000
	residentsTD = 4
	residentsTN = 8
)

// isDaytime reports whether turn falls in the light half of the day.
func isDaytime(turn int64) bool {
	return turn%dayLength < dayLength/2
}

// townGen builds the town, reusing the stored layout when there is one.
func townGen(b *builder) error {
	cfg := b.g.cfg
	store := b.g.store

	if store != nil && store.Has(cfg.TownName) {
		saved, err := store.Load(cfg.TownName)
		if err != nil {
			return err
		}
		b.newCave(saved.Height, saved.Width)
		if err := chunk.Copy(b.c, saved, 0, 0); err != nil {
			return err
		}
		b.log.Debug("town loaded", "name", cfg.TownName)
	} else {
		b.newCave(cfg.TownHgt, cfg.TownWid)
		b.c.FillRectangle(0, 0, b.c.Height-1, b.c.Width-1, world.FeatPerm, world.SquareNone)
		b.c.FillRectangle(1, 1, b.c.Height-2, b.c.Width-2, world.FeatFloor, world.SquareNone)
		b.townLayout(rng.New(b.g.townSeed))
	}
	b.c.Name = cfg.TownName

	y, x, ok := b.findStairs(world.FeatMore)
	if !ok {
		return errNoPlayerSpot
	}
	b.py, b.px, b.placed = y, x, true

	day := isDaytime(b.turn)
	b.illuminate(day)

	residents := residentsTN
	if day {
		residents = residentsTD
	}
	b.placeDistantMonsters(residents, 3)
	return nil
}

// townLayout places the stores and the way down. It draws from its own
// generator so every game's town looks the same.
func (b *builder) townLayout(r *rng.Rand) {
	rooms := make([]int, storeCount)
	for i := range rooms {
		rooms[i] = i
	}
	n := storeCount
	for yy := 0; yy < storeRows; yy++ {
		for xx := 0; xx < storeCols && n > 0; xx++ {
			k := r.Int0(n)
			b.buildStore(r, rooms[k], yy, xx)
			n--
			rooms[k] = rooms[n]
		}
	}

	for tries := 0; tries < findTries; tries++ {
		y := r.Range(3, b.c.Height-4)
		x := r.Range(3, b.c.Width-4)
		if b.c.IsEmpty(y, x) {
			b.c.SetFeat(y, x, world.FeatMore)
			return
		}
	}
}

// buildStore puts store n in the yy'th row and xx'th column of the town.
func (b *builder) buildStore(r *rng.Rand, n, yy, xx int) {
	y0 := yy*9 + 6
	x0 := xx*14 + 12

	up, down := 2, 2
	if yy == 0 {
		up = 3
	} else {
		down = 3
	}
	y1 := y0 - r.Int1(up)
	y2 := y0 + r.Int1(down)
	x1 := x0 - r.Int1(5)
	x2 := x0 + r.Int1(5)

	b.c.FillRectangle(y1, x1, y2, x2, world.FeatPerm, world.SquareNone)

	// Doors facing the town wall get one more roll.
	side := r.Int0(4)
	if (side == 0 && yy == 1) || (side == 1 && yy == 0) || (side == 2 && xx == storeCols-1) || (side == 3 && xx == 0) {
		side = r.Int0(4)
	}

	var y, x int
	switch side {
	case 0:
		y, x = y2, r.Range(x1, x2)
	case 1:
		y, x = y1, r.Range(x1, x2)
	case 2:
		y, x = r.Range(y1, y2), x2
	default:
		y, x = r.Range(y1, y2), x1
	}
	b.c.SetFeat(y, x, world.FeatShop1+world.Feature(n))
}

func (b *builder) findStairs(feat world.Feature) (int, int, bool) {
	for y := 0; y < b.c.Height; y++ {
		for x := 0; x < b.c.Width; x++ {
			if b.c.Feat(y, x) == feat {
				return y, x, true
			}
		}
	}
	return 0, 0, false
}

// illuminate lights the town. By day every open grid and the walls around
// it are lit and known; by night only the shop entrances are.
func (b *builder) illuminate(day bool) {
	c := b.c
	c.ForEach(func(y, x int) {
		c.Off(y, x, world.SquareGlow|world.SquareMark)
	})
	c.ForEach(func(y, x int) {
		f := c.Feat(y, x)
		switch {
		case f.IsShop():
		case day && (f.IsFloor() || f.IsStair()):
		default:
			return
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if !c.InBounds(y+dy, x+dx) {
					continue
				}
				if dy == 0 && dx == 0 || !c.Feat(y+dy, x+dx).IsFloor() {
					c.On(y+dy, x+dx, world.SquareGlow|world.SquareMark)
				}
			}
		}
	})
}
