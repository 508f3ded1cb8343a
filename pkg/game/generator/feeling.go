package generator

import (
	"github.com/leonelquinteros/gotext"

	"cavegen/pkg/engine/world"
)

// FeelingNeed is how many feeling squares the player must walk over before
// the object half of the level feeling is revealed.
const FeelingNeed = 10

const feelingTries = 500

var monFeelingText = []string{
	"You are still uncertain about this place",
	"Omens of death haunt this place",
	"This place seems murderous",
	"This place seems terribly dangerous",
	"You feel anxious about this place",
	"You feel nervous about this place",
	"This place does not seem too risky",
	"This place seems reasonably safe",
	"This seems a quiet, peaceful place",
	"This place looks uninteresting",
}

var objFeelingText = []string{
	"Looks like any other level.",
	"you sense an item of wondrous power!",
	"there are superb treasures here.",
	"there are excellent treasures here.",
	"there are very good treasures here.",
	"there are good treasures here.",
	"there may be something worthwhile here.",
	"there may not be much interesting here.",
	"there aren't many treasures here.",
	"there are only scraps of junk here.",
	"there are naught but cobwebs here.",
}

// objThresholds maps loot per level of depth to the object feeling.
var objThresholds = []struct {
	above   uint32
	feeling int
}{
	{16000000, 20},
	{4000000, 30},
	{1000000, 40},
	{250000, 50},
	{64000, 60},
	{16000, 70},
	{4000, 80},
	{1000, 90},
}

// monThresholds maps danger per square of depth to the monster feeling.
var monThresholds = []struct {
	above   uint32
	feeling int
}{
	{7000, 1},
	{4500, 2},
	{2500, 3},
	{1500, 4},
	{800, 5},
	{400, 6},
	{150, 7},
	{50, 8},
}

// calcObjFeeling scores the loot on c in tens, 10 for a lost artifact and
// 100 for nothing worth having.
func calcObjFeeling(c *world.Cave, noPreserve bool) int {
	if c.Depth == 0 {
		return 0
	}
	if c.GoodItem && noPreserve {
		return 10
	}
	x := c.ObjRating / uint32(c.Depth)
	if c.GoodItem && x <= 64000 {
		return 60
	}
	for _, t := range objThresholds {
		if x > t.above {
			return t.feeling
		}
	}
	return 100
}

// calcMonFeeling scores the danger on c from 1, deadliest, to 9.
func calcMonFeeling(c *world.Cave) int {
	if c.Depth == 0 {
		return 0
	}
	x := c.MonRating / uint32(c.Depth*c.Depth)
	for _, t := range monThresholds {
		if x > t.above {
			return t.feeling
		}
	}
	return 9
}

// placeFeeling hides n feeling squares on open, unmarked grids. Markers
// that find no grid are left out.
func (b *builder) placeFeeling(n int) {
	c := b.c
	for i := 0; i < n; i++ {
		for j := 0; j < feelingTries; j++ {
			y := b.r.Int0(c.Height)
			x := b.r.Int0(c.Width)
			if c.Feat(y, x).IsWall() || c.IsFeel(y, x) {
				continue
			}
			c.On(y, x, world.SquareFeel)
			break
		}
	}
	c.FeelingSquares = 0
}

// FeelingText describes a level to the player. obj is the object feeling
// in tens and mon the monster feeling; until known, only the danger is told.
func FeelingText(depth, obj, mon int, known bool) string {
	if depth == 0 {
		return translate(objFeelingText[0])
	}
	mon = min(max(mon, 0), len(monFeelingText)-1)
	if !known {
		return translate(monFeelingText[mon]) + "."
	}
	o := min(max(obj/10, 0), len(objFeelingText)-1)

	join := ", and "
	if (mon <= 5 && o > 6) || (mon > 5 && o <= 6) {
		join = ", yet "
	}
	return translate(monFeelingText[mon]) + join + translate(objFeelingText[o])
}

// translate looks up a message held in a table rather than written inline.
// The empty argument list keeps the text from being read as a format.
func translate(key string) string {
	return gotext.Get(key, []any{}...)
}
