package world

import "fmt"

// Cave is one dungeon level: per-grid terrain, flags, flow data and the
// occupancy back-references into the object and monster lists.
type Cave struct {
	Name   string
	Height int
	Width  int
	Depth  int

	feat []Feature
	info []SquareFlag
	cost []uint8
	when []uint8
	oIdx []int
	mIdx []int

	featCount [featCount]int

	ObjRating      uint32
	MonRating      uint32
	GoodItem       bool
	Feeling        int
	FeelingSquares int
	CreatedAt      int64
}

// NewCave creates a cave with the given dimensions, all grids FeatNone.
func NewCave(height, width int) *Cave {
	c := &Cave{}
	c.Resize(height, width)
	return c
}

// Resize reallocates the grid storage for new dimensions and clears every
// grid. Level fields are kept.
func (c *Cave) Resize(height, width int) {
	if height <= 0 || width <= 0 {
		panic("cave dimensions must be positive")
	}
	n := height * width
	c.Height = height
	c.Width = width
	c.feat = make([]Feature, n)
	c.info = make([]SquareFlag, n)
	c.cost = make([]uint8, n)
	c.when = make([]uint8, n)
	c.oIdx = make([]int, n)
	c.mIdx = make([]int, n)
	c.featCount = [featCount]int{}
	c.featCount[FeatNone] = n
}

// Clear wipes every grid and the level-wide ratings.
func (c *Cave) Clear() {
	c.Resize(c.Height, c.Width)
	c.ObjRating = 0
	c.MonRating = 0
	c.GoodItem = false
	c.Feeling = 0
	c.FeelingSquares = 0
	c.CreatedAt = 0
}

func (c *Cave) idx(y, x int) int {
	return y*c.Width + x
}

// InBounds checks if a grid is within the cave.
func (c *Cave) InBounds(y, x int) bool {
	return y >= 0 && y < c.Height && x >= 0 && x < c.Width
}

// InBoundsFully checks if a grid is within the cave and not on its edge.
func (c *Cave) InBoundsFully(y, x int) bool {
	return y > 0 && y < c.Height-1 && x > 0 && x < c.Width-1
}

// Feat returns the terrain at (y, x).
func (c *Cave) Feat(y, x int) Feature {
	return c.feat[c.idx(y, x)]
}

// SetFeat changes the terrain at (y, x) and keeps the feature counts current.
func (c *Cave) SetFeat(y, x int, f Feature) {
	i := c.idx(y, x)
	c.featCount[c.feat[i]]--
	c.feat[i] = f
	c.featCount[f]++
}

// FeatCount returns how many grids hold feature f.
func (c *Cave) FeatCount(f Feature) int {
	if f >= featCount {
		return 0
	}
	return c.featCount[f]
}

// Info returns the flag set at (y, x).
func (c *Cave) Info(y, x int) SquareFlag {
	return c.info[c.idx(y, x)]
}

// Has reports whether any of flags is set at (y, x).
func (c *Cave) Has(y, x int, flags SquareFlag) bool {
	return c.info[c.idx(y, x)]&flags != 0
}

// On sets flags at (y, x).
func (c *Cave) On(y, x int, flags SquareFlag) {
	c.info[c.idx(y, x)] |= flags
}

// Off clears flags at (y, x).
func (c *Cave) Off(y, x int, flags SquareFlag) {
	c.info[c.idx(y, x)] &^= flags
}

// Cost returns the flow cost at (y, x).
func (c *Cave) Cost(y, x int) int { return int(c.cost[c.idx(y, x)]) }

// When returns the flow timestamp at (y, x).
func (c *Cave) When(y, x int) int { return int(c.when[c.idx(y, x)]) }

// SetFlow records the flow cost and timestamp at (y, x).
func (c *Cave) SetFlow(y, x, cost, when int) {
	i := c.idx(y, x)
	c.cost[i] = uint8(cost)
	c.when[i] = uint8(when)
}

// ObjectIdx returns the index of the first object in the pile at (y, x), or 0.
func (c *Cave) ObjectIdx(y, x int) int {
	return c.oIdx[c.idx(y, x)]
}

// SetObjectIdx sets the head of the object pile at (y, x).
func (c *Cave) SetObjectIdx(y, x, idx int) {
	c.oIdx[c.idx(y, x)] = idx
}

// MonsterIdx returns the index of the monster at (y, x), or 0.
func (c *Cave) MonsterIdx(y, x int) int {
	return c.mIdx[c.idx(y, x)]
}

// SetMonsterIdx sets the monster occupying (y, x).
func (c *Cave) SetMonsterIdx(y, x, idx int) {
	c.mIdx[c.idx(y, x)] = idx
}

// ForEach calls fn for every grid in row-major order.
func (c *Cave) ForEach(fn func(y, x int)) {
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			fn(y, x)
		}
	}
}

// ClearGenerationFlags removes the construction-only flags from every grid.
func (c *Cave) ClearGenerationFlags() {
	for i := range c.info {
		c.info[i] &^= GenerationFlags
	}
}

func (c *Cave) IsFloor(y, x int) bool { return c.Feat(y, x).IsFloor() }
func (c *Cave) IsPerm(y, x int) bool { return c.Feat(y, x).IsPerm() }
func (c *Cave) IsGranite(y, x int) bool { return c.Feat(y, x).IsGranite() }
func (c *Cave) IsDoor(y, x int) bool { return c.Feat(y, x).IsDoor() }
func (c *Cave) IsRoom(y, x int) bool { return c.Has(y, x, SquareRoom) }
func (c *Cave) IsVault(y, x int) bool { return c.Has(y, x, SquareVault) }
func (c *Cave) IsFeel(y, x int) bool { return c.Has(y, x, SquareFeel) }
func (c *Cave) IsPassable(y, x int) bool { return c.Feat(y, x).IsPassable() }

// IsGraniteWithFlag reports granite at (y, x) carrying flag.
func (c *Cave) IsGraniteWithFlag(y, x int, flag SquareFlag) bool {
	return c.IsGranite(y, x) && c.Has(y, x, flag)
}

// IsStrongWall reports a wall a doorway may sit between: granite or
// permanent rock.
func (c *Cave) IsStrongWall(y, x int) bool {
	f := c.Feat(y, x)
	return f.IsGranite() || (f.IsPerm() && f.IsWall())
}

// IsEmpty reports open floor with no object or monster on it.
func (c *Cave) IsEmpty(y, x int) bool {
	return c.IsFloor(y, x) && c.ObjectIdx(y, x) == 0 && c.MonsterIdx(y, x) == 0
}

// CanPutItem reports whether objects may be dropped at (y, x).
func (c *Cave) CanPutItem(y, x int) bool {
	return c.Feat(y, x).Has(FFObject)
}

// IsConnective reports a grid a character can cross without digging:
// passable terrain, any door, or rubble.
func (c *Cave) IsConnective(y, x int) bool {
	f := c.Feat(y, x)
	return f.IsPassable() || f.IsDoor() || f.IsRubble()
}

// Validate checks the occupancy indices against the live counts of the
// object and monster lists. It returns an empty string when consistent.
func (c *Cave) Validate(objectLive, monsterLive func(idx int) bool) string {
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if o := c.ObjectIdx(y, x); o != 0 && !objectLive(o) {
				return fmt.Sprintf("grid %d,%d references dead object %d", y, x, o)
			}
			if m := c.MonsterIdx(y, x); m != 0 && !monsterLive(m) {
				return fmt.Sprintf("grid %d,%d references dead monster %d", y, x, m)
			}
		}
	}
	return ""
}

// CopyFrom replaces the terrain and flags of c with those of src, which must
// have the same dimensions. Occupancy is cleared.
func (c *Cave) CopyFrom(src *Cave) error {
	if src.Height != c.Height || src.Width != c.Width {
		return fmt.Errorf("cave size %dx%d does not match %dx%d", src.Height, src.Width, c.Height, c.Width)
	}
	copy(c.feat, src.feat)
	copy(c.info, src.info)
	c.featCount = src.featCount
	for i := range c.oIdx {
		c.oIdx[i] = 0
		c.mIdx[i] = 0
	}
	return nil
}
