package generator

import (
	"cavegen/pkg/engine/world"
)

// buildStreamers lays the profile's magma and quartz veins.
func (b *builder) buildStreamers() {
	s := b.dun.profile.str
	for i := 0; i < s.mag; i++ {
		b.buildStreamer(world.FeatMagma, s.mc)
	}
	for i := 0; i < s.qua; i++ {
		b.buildStreamer(world.FeatQuartz, s.qc)
	}
}

// buildStreamer walks a line from near the middle of the cave in a random
// direction until it leaves the cave, turning granite around each step
// into feat. One in chance of the grids hold treasure.
func (b *builder) buildStreamer(feat world.Feature, chance int) {
	s := b.dun.profile.str

	y := b.r.Spread(b.c.Height/2, min(10, b.c.Height/4))
	x := b.r.Spread(b.c.Width/2, min(15, b.c.Width/4))
	dy, dx := world.Compass[b.r.Int0(len(world.Compass))].Delta()

	for b.c.InBounds(y, x) {
		for i := 0; i < s.den; i++ {
			ty, tx := b.findNearbyGrid(y, s.rng, x, s.rng)
			if !b.c.IsGranite(ty, tx) || b.c.IsVault(ty, tx) {
				continue
			}
			b.c.SetFeat(ty, tx, feat)
			if b.r.OneIn(chance) {
				b.c.SetFeat(ty, tx, withTreasure(feat))
			}
		}
		y += dy
		x += dx
	}
}

func withTreasure(feat world.Feature) world.Feature {
	switch feat {
	case world.FeatMagma:
		return world.FeatMagmaK
	case world.FeatQuartz:
		return world.FeatQuartzK
	}
	return feat
}
