package generator

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"cavegen/pkg/engine/world"
	"cavegen/pkg/game/object"
)

const (
	cavernMinDepth = 15
	cavernTries    = 10
	// cavernScale is the size in grids of the noise features that bias the
	// initial fill.
	cavernScale = 8.0
)

// initCavern fills the cave with rock and opens about density percent of
// it, more where the noise is high.
func (b *builder) initCavern(noise opensimplex.Noise, density int) {
	h, w := b.c.Height, b.c.Width
	b.c.FillRectangle(0, 0, h-1, w-1, world.FeatGranite, world.SquareWallSolid)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			bias := int(noise.Eval2(float64(x)/cavernScale, float64(y)/cavernScale) * 15)
			if b.r.Int0(100) < density+bias {
				b.c.SetFeat(y, x, world.FeatFloor)
			}
		}
	}
}

// countAdjWalls counts the granite among the eight neighbours of (y, x).
func (b *builder) countAdjWalls(y, x int) int {
	n := 0
	for _, d := range world.Compass {
		dy, dx := d.Delta()
		if b.c.IsGranite(y+dy, x+dx) {
			n++
		}
	}
	return n
}

// mutateCavern runs one step of the cellular automaton: crowded grids fill
// in and lonely ones open up.
func (b *builder) mutateCavern() {
	h, w := b.c.Height, b.c.Width
	next := make([]world.Feature, h*w)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			switch n := b.countAdjWalls(y, x); {
			case n > 5:
				next[y*w+x] = world.FeatGranite
			case n < 4:
				next[y*w+x] = world.FeatFloor
			default:
				next[y*w+x] = b.c.Feat(y, x)
			}
		}
	}
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			b.c.SetFeat(y, x, next[y*w+x])
		}
	}
}

// keepLargestRegion fills in every open area but the biggest and returns
// its size.
func (b *builder) keepLargestRegion() int {
	c := b.c
	region := make([]int, c.Height*c.Width)
	var sizes []int
	c.ForEach(func(y, x int) {
		if !c.IsFloor(y, x) || region[y*c.Width+x] != 0 {
			return
		}
		id := len(sizes) + 1
		seen := reachable(c, world.Loc{Y: y, X: x})
		seen.Each(func(l world.Loc) { region[l.Y*c.Width+l.X] = id })
		sizes = append(sizes, seen.Size())
	})

	best := 0
	for i, s := range sizes {
		if best == 0 || s > sizes[best-1] {
			best = i + 1
		}
	}
	c.ForEach(func(y, x int) {
		if c.IsFloor(y, x) && region[y*c.Width+x] != best {
			c.SetFeat(y, x, world.FeatGranite)
			c.On(y, x, world.SquareWallSolid)
		}
	})
	if best == 0 {
		return 0
	}
	return sizes[best-1]
}

// cavernGen builds a winding natural cave with no rooms or corridors.
func cavernGen(b *builder) error {
	if b.depth < cavernMinDepth {
		return errTooShallow
	}
	cfg := b.g.cfg
	h := b.r.Range(cfg.DungeonHgt/2, cfg.DungeonHgt*3/4)
	w := b.r.Range(cfg.DungeonWid/2, cfg.DungeonWid*3/4)
	size := h * w
	limit := size / 13
	density := b.r.Range(25, 40)
	times := b.r.Range(3, 6)

	b.newCave(h, w)
	noise := opensimplex.New(b.r.Int63())

	open := 0
	tries := 0
	for ; tries < cavernTries; tries++ {
		b.initCavern(noise, density)
		for i := 0; i < times; i++ {
			b.mutateCavern()
		}
		if open = b.keepLargestRegion(); open >= limit {
			break
		}
		b.log.Debug("cavern too small", "open", open, "limit", limit)
	}
	if tries == cavernTries {
		return errCavernTooSmall
	}
	b.c.DrawRectangle(0, 0, h-1, w-1, world.FeatPerm, world.SquareNone)

	b.allocStairs(world.FeatMore, b.r.Range(1, 3), 3)
	b.allocStairs(world.FeatLess, b.r.Range(1, 2), 3)

	k := max(min(b.depth/3, 10), 2)
	k = max(4*k*size/(cfg.DungeonHgt*cfg.DungeonWid), 6)

	b.allocObjects(setBoth, typRubble, b.r.Int1(k), b.depth, object.OriginNone)
	b.allocObjects(setCorr, typTrap, b.r.Int1(k), b.depth, object.OriginNone)

	if err := b.newPlayerSpot(); err != nil {
		return err
	}
	b.placeDistantMonsters(b.r.Int1(8)+k, 0)

	b.allocObjects(setBoth, typObject, b.r.Normal(k, 2), b.depth+5, object.OriginCavern)
	b.allocObjects(setBoth, typGold, b.r.Normal(k/2, 2), b.depth, object.OriginCavern)
	b.allocObjects(setBoth, typGood, b.r.Int0(k/4), b.depth, object.OriginCavern)

	b.log.Debug("cavern built", "open", open, "limit", limit)
	return nil
}
