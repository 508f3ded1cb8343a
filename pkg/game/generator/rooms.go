package generator

import (
	"cavegen/pkg/engine/world"
	"cavegen/pkg/game/object"
)

// lit decides whether a room is lit. Deeper rooms are darker.
func (b *builder) lit() bool {
	return b.depth <= b.r.Int1(25)
}

// walledRoom marks the rectangle and its wall ring as a room, draws the
// outer wall and floors the inside.
func (b *builder) walledRoom(y1, x1, y2, x2 int, light bool) {
	b.c.GenerateRoom(y1-1, x1-1, y2+1, x2+1, light)
	b.c.DrawRectangle(y1-1, x1-1, y2+1, x2+1, world.FeatGranite, world.SquareWallOuter)
	b.c.FillRectangle(y1, x1, y2, x2, world.FeatFloor, world.SquareNone)
}

func buildSimple(b *builder, y0, x0 int) bool {
	light := b.lit()

	y1 := y0 - b.r.Int1(4)
	x1 := x0 - b.r.Int1(11)
	y2 := y0 + b.r.Int1(3)
	x2 := x0 + b.r.Int1(11)
	if !b.fits(y1-1, x1-1, y2+1, x2+1) {
		return false
	}

	b.walledRoom(y1, x1, y2, x2, light)

	switch {
	case b.r.OneIn(20):
		// Pillars
		for y := y1; y <= y2; y += 2 {
			for x := x1; x <= x2; x += 2 {
				b.c.SetMarkedGranite(y, x, world.SquareWallInner)
			}
		}
	case b.r.OneIn(50):
		// Ragged edges
		for y := y1 + 2; y <= y2-2; y += 2 {
			b.c.SetMarkedGranite(y, x1, world.SquareWallInner)
			b.c.SetMarkedGranite(y, x2, world.SquareWallInner)
		}
		for x := x1 + 2; x <= x2-2; x += 2 {
			b.c.SetMarkedGranite(y1, x, world.SquareWallInner)
			b.c.SetMarkedGranite(y2, x, world.SquareWallInner)
		}
	}
	return true
}

// buildOverlap builds two overlapping rectangles sharing a centre.
func buildOverlap(b *builder, y0, x0 int) bool {
	light := b.lit()

	y1a, y2a := y0-b.r.Int1(4), y0+b.r.Int1(3)
	x1a, x2a := x0-b.r.Int1(11), x0+b.r.Int1(10)

	y1b, y2b := y0-b.r.Int1(3), y0+b.r.Int1(4)
	x1b, x2b := x0-b.r.Int1(10), x0+b.r.Int1(11)

	if !b.fits(min(y1a, y1b)-1, min(x1a, x1b)-1, max(y2a, y2b)+1, max(x2a, x2b)+1) {
		return false
	}

	b.c.GenerateRoom(y1a-1, x1a-1, y2a+1, x2a+1, light)
	b.c.GenerateRoom(y1b-1, x1b-1, y2b+1, x2b+1, light)
	b.c.DrawRectangle(y1a-1, x1a-1, y2a+1, x2a+1, world.FeatGranite, world.SquareWallOuter)
	b.c.DrawRectangle(y1b-1, x1b-1, y2b+1, x2b+1, world.FeatGranite, world.SquareWallOuter)
	b.c.FillRectangle(y1a, x1a, y2a, x2a, world.FeatFloor, world.SquareNone)
	b.c.FillRectangle(y1b, x1b, y2b, x2b, world.FeatFloor, world.SquareNone)
	return true
}

// buildCrossed builds a plus-shaped room from two crossing rectangles, with
// something special where they meet.
func buildCrossed(b *builder, y0, x0 int) bool {
	light := b.lit()

	const wy, wx = 1, 1
	dy := b.r.Range(3, 4)
	dx := b.r.Range(3, 11)

	y1a, y2a, x1a, x2a := y0-dy, y0+dy, x0-wx, x0+wx
	y1b, y2b, x1b, x2b := y0-wy, y0+wy, x0-dx, x0+dx

	if !b.fits(y1a-1, x1b-1, y2a+1, x2b+1) {
		return false
	}

	b.c.GenerateRoom(y1a-1, x1a-1, y2a+1, x2a+1, light)
	b.c.GenerateRoom(y1b-1, x1b-1, y2b+1, x2b+1, light)
	b.c.DrawRectangle(y1a-1, x1a-1, y2a+1, x2a+1, world.FeatGranite, world.SquareWallOuter)
	b.c.DrawRectangle(y1b-1, x1b-1, y2b+1, x2b+1, world.FeatGranite, world.SquareWallOuter)
	b.c.FillRectangle(y1a, x1a, y2a, x2a, world.FeatFloor, world.SquareNone)
	b.c.FillRectangle(y1b, x1b, y2b, x2b, world.FeatFloor, world.SquareNone)

	switch b.r.Int1(4) {
	case 2:
		// Solid middle
		b.c.FillRectangle(y1b, x1a, y2b, x2a, world.FeatGranite, world.SquareWallInner)

	case 3:
		// A small vault in the middle
		b.c.DrawRectangle(y1b, x1a, y2b, x2a, world.FeatGranite, world.SquareWallInner)
		switch b.r.Int0(4) {
		case 0:
			b.placeSecretDoor(y1b, x0)
		case 1:
			b.placeSecretDoor(y2b, x0)
		case 2:
			b.placeSecretDoor(y0, x1a)
		case 3:
			b.placeSecretDoor(y0, x2a)
		}
		b.placeObject(y0, x0, b.depth, false, false, object.OriginSpecial, object.TVNull)
		b.vaultMonsters(y0, x0, b.depth+2, b.r.Int0(2)+3)
		b.vaultTraps(y0, x0, 4, 4, b.r.Int0(3)+2)

	case 4:
		switch {
		case b.r.OneIn(3):
			// Pinch the middle
			for y := y1b; y <= y2b; y++ {
				if y == y0 {
					continue
				}
				b.c.SetMarkedGranite(y, x1a-1, world.SquareWallInner)
				b.c.SetMarkedGranite(y, x2a+1, world.SquareWallInner)
			}
			for x := x1a; x <= x2a; x++ {
				if x == x0 {
					continue
				}
				b.c.SetMarkedGranite(y1b-1, x, world.SquareWallInner)
				b.c.SetMarkedGranite(y2b+1, x, world.SquareWallInner)
			}
			if b.r.OneIn(3) {
				b.placeSecretDoor(y0, x1a-1)
				b.placeSecretDoor(y0, x2a+1)
				b.placeSecretDoor(y1b-1, x0)
				b.placeSecretDoor(y2b+1, x0)
			}
		case b.r.OneIn(3):
			// A plus in the middle
			b.c.SetMarkedGranite(y0, x0, world.SquareWallInner)
			b.c.SetMarkedGranite(y1b, x0, world.SquareWallInner)
			b.c.SetMarkedGranite(y2b, x0, world.SquareWallInner)
			b.c.SetMarkedGranite(y0, x1a, world.SquareWallInner)
			b.c.SetMarkedGranite(y0, x2a, world.SquareWallInner)
		case b.r.OneIn(3):
			b.c.SetMarkedGranite(y0, x0, world.SquareWallInner)
		}
	}
	return true
}

// generatePlus draws a cross of inner wall through the middle of the
// rectangle, splitting it in four.
func (b *builder) generatePlus(y1, x1, y2, x2 int) {
	y0 := (y1 + y2) / 2
	x0 := (x1 + x2) / 2
	for y := y1; y <= y2; y++ {
		b.c.SetMarkedGranite(y, x0, world.SquareWallInner)
	}
	for x := x1; x <= x2; x++ {
		b.c.SetMarkedGranite(y0, x, world.SquareWallInner)
	}
}

// buildLarge builds a large room with an inner room of one of five kinds.
func buildLarge(b *builder, y0, x0 int) bool {
	light := b.lit()

	y1, y2 := y0-4, y0+4
	x1, x2 := x0-11, x0+11
	if !b.fits(y1-1, x1-1, y2+1, x2+1) {
		return false
	}
	b.walledRoom(y1, x1, y2, x2, light)

	// The inner room
	y1, y2 = y1+2, y2-2
	x1, x2 = x1+2, x2-2
	b.c.DrawRectangle(y1-1, x1-1, y2+1, x2+1, world.FeatGranite, world.SquareWallInner)

	switch b.r.Int1(5) {
	case 1:
		b.c.GenerateHole(y1-1, x1-1, y2+1, x2+1, b.r.Int0(4), world.FeatClosed)
		b.vaultMonsters(y0, x0, b.depth+2, 1)

	case 2:
		// A room within the inner room
		b.c.GenerateHole(y1-1, x1-1, y2+1, x2+1, b.r.Int0(4), world.FeatClosed)
		b.c.DrawRectangle(y0-1, x0-1, y0+1, x0+1, world.FeatGranite, world.SquareWallInner)
		b.c.GenerateHole(y0-1, x0-1, y0+1, x0+1, b.r.Int0(4), world.FeatSecret)
		b.vaultMonsters(y0, x0, b.depth+2, b.r.Int1(3)+2)
		if b.r.Int0(100) < 80 {
			b.placeObject(y0, x0, b.depth, false, false, object.OriginSpecial, object.TVNull)
		} else {
			b.placeRandomStairs(y0, x0)
		}
		b.vaultTraps(y0, x0, 4, 10, 2+b.r.Int1(3))

	case 3:
		// Pillars
		b.c.GenerateHole(y1-1, x1-1, y2+1, x2+1, b.r.Int0(4), world.FeatClosed)
		b.c.FillRectangle(y0-1, x0-1, y0+1, x0+1, world.FeatGranite, world.SquareWallInner)
		if b.r.OneIn(2) {
			if b.r.OneIn(2) {
				b.c.FillRectangle(y0-1, x0-7, y0+1, x0-5, world.FeatGranite, world.SquareWallInner)
				b.c.FillRectangle(y0-1, x0+5, y0+1, x0+7, world.FeatGranite, world.SquareWallInner)
			} else {
				b.c.FillRectangle(y0-1, x0-6, y0+1, x0-4, world.FeatGranite, world.SquareWallInner)
				b.c.FillRectangle(y0-1, x0+4, y0+1, x0+6, world.FeatGranite, world.SquareWallInner)
			}
		}
		if b.r.OneIn(3) {
			// Two closets either side of the middle pillar
			for x := x0 - 5; x <= x0+5; x++ {
				b.c.SetMarkedGranite(y0-1, x, world.SquareWallInner)
				b.c.SetMarkedGranite(y0+1, x, world.SquareWallInner)
			}
			b.c.SetMarkedGranite(y0, x0-5, world.SquareWallInner)
			b.c.SetMarkedGranite(y0, x0+5, world.SquareWallInner)
			b.placeSecretDoor(y0-3+b.r.Int1(2)*2, x0-3)
			b.placeSecretDoor(y0-3+b.r.Int1(2)*2, x0+3)
			b.vaultMonsters(y0, x0-2, b.depth+2, b.r.Int1(2))
			b.vaultMonsters(y0, x0+2, b.depth+2, b.r.Int1(2))
			if b.r.OneIn(3) {
				b.placeObject(y0, x0-2, b.depth, false, false, object.OriginSpecial, object.TVNull)
			}
			if b.r.OneIn(3) {
				b.placeObject(y0, x0+2, b.depth, false, false, object.OriginSpecial, object.TVNull)
			}
		}

	case 4:
		// Checkerboard maze
		b.c.GenerateHole(y1-1, x1-1, y2+1, x2+1, b.r.Int0(4), world.FeatClosed)
		for y := y1; y <= y2; y++ {
			for x := x1; x <= x2; x++ {
				if (x+y)&1 != 0 {
					b.c.SetMarkedGranite(y, x, world.SquareWallInner)
				}
			}
		}
		b.vaultMonsters(y0, x0-5, b.depth+2, b.r.Int1(3))
		b.vaultMonsters(y0, x0+5, b.depth+2, b.r.Int1(3))
		b.vaultTraps(y0, x0-3, 2, 8, b.r.Int1(3))
		b.vaultTraps(y0, x0+3, 2, 8, b.r.Int1(3))
		b.vaultObjects(y0, x0, b.depth, 3)

	case 5:
		// Four small rooms
		b.generatePlus(y1, x1, y2, x2)
		if b.r.Int0(100) < 50 {
			i := b.r.Int1(10)
			b.placeSecretDoor(y1-1, x0-i)
			b.placeSecretDoor(y1-1, x0+i)
			b.placeSecretDoor(y2+1, x0-i)
			b.placeSecretDoor(y2+1, x0+i)
		} else {
			i := b.r.Int1(3)
			b.placeSecretDoor(y0+i, x1-1)
			b.placeSecretDoor(y0-i, x1-1)
			b.placeSecretDoor(y0+i, x2+1)
			b.placeSecretDoor(y0-i, x2+1)
		}
		b.vaultObjects(y0, x0, b.depth, 2+b.r.Int1(2))
		b.vaultMonsters(y0+1, x0-4, b.depth+2, b.r.Int1(4))
		b.vaultMonsters(y0+1, x0+4, b.depth+2, b.r.Int1(4))
		b.vaultMonsters(y0-1, x0-4, b.depth+2, b.r.Int1(4))
		b.vaultMonsters(y0-1, x0+4, b.depth+2, b.r.Int1(4))
	}
	return true
}

// buildCircular builds a round room. Big ones get a small vault in the
// middle.
func buildCircular(b *builder, y0, x0 int) bool {
	radius := 2 + b.r.Int1(2) + b.r.Int1(3)
	light := b.lit()

	if !b.fits(y0-radius-3, x0-radius-3, y0+radius+3, x0+radius+3) {
		return false
	}

	b.c.FillCircle(y0, x0, radius+1, 1, world.FeatGranite, world.SquareWallOuter|world.SquareRoom, light)
	b.c.FillCircle(y0, x0, radius, 0, world.FeatFloor, world.SquareRoom, light)

	if radius-4 > 0 && b.r.Int0(4) < radius-4 {
		dy, dx := b.randDir()
		b.c.DrawRectangle(y0-2, x0-2, y0+2, x0+2, world.FeatGranite, world.SquareWallInner)
		b.c.SetFeat(y0+dy*2, x0+dx*2, world.FeatSecret)
		b.vaultObjects(y0, x0, b.depth, b.r.Int0(2))
		b.vaultMonsters(y0, x0, b.depth+1, b.r.Int0(3))
	}
	return true
}
