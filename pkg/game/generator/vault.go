package generator

import (
	"cavegen/pkg/engine/world"
	"cavegen/pkg/game/data"
	"cavegen/pkg/game/object"
)

// Layout types in the room data.
const (
	layoutTemplate     = "room template"
	layoutLesserVault  = "lesser vault"
	layoutMediumVault  = "medium vault"
	layoutGreaterVault = "greater vault"
)

// randomLayout picks one layout of typ usable at the current depth.
func (b *builder) randomLayout(typ string) *data.Layout {
	var pick *data.Layout
	n := 0
	for _, l := range b.g.data.LayoutsOfType(typ) {
		if b.depth < l.MinLevel || (l.MaxLevel > 0 && b.depth > l.MaxLevel) {
			continue
		}
		n++
		if b.r.OneIn(n) {
			pick = l
		}
	}
	return pick
}

// layoutOrigin returns the top left grid of l centred on (y0, x0), or false
// when it does not fit in the cave.
func (b *builder) layoutOrigin(l *data.Layout, y0, x0 int) (int, int, bool) {
	h, w := l.Height(), l.Width()
	y1 := y0 - h/2
	x1 := x0 - w/2
	return y1, x1, b.fits(y1, x1, y1+h-1, x1+w-1)
}

// eachGrid calls fn for every non-blank grid of l placed at (y1, x1).
func eachGrid(l *data.Layout, y1, x1 int, fn func(y, x int, ch byte)) {
	for dy, row := range l.Rows {
		for dx := 0; dx < len(row); dx++ {
			if row[dx] == ' ' {
				continue
			}
			fn(y1+dy, x1+dx, row[dx])
		}
	}
}

func buildTemplate(b *builder, y0, x0 int) bool {
	l := b.randomLayout(layoutTemplate)
	if l == nil {
		return false
	}
	y1, x1, ok := b.layoutOrigin(l, y0, x0)
	if !ok {
		return false
	}

	light := b.lit()
	door := b.r.Int1(max(l.Doors, 1))

	eachGrid(l, y1, x1, func(y, x int, ch byte) {
		b.c.SetFeat(y, x, world.FeatFloor)
		switch ch {
		case '%':
			b.c.SetMarkedGranite(y, x, world.SquareWallOuter)
		case '#', 'X':
			b.c.SetMarkedGranite(y, x, world.SquareWallSolid)
		case '+':
			b.placeClosedDoor(y, x)
		case '1', '2', '3', '4', '5', '6':
			if int(ch-'0') == door {
				b.placeSecretDoor(y, x)
			} else {
				b.c.SetMarkedGranite(y, x, world.SquareWallSolid)
			}
		}
		b.c.On(y, x, world.SquareRoom)
		if light {
			b.c.On(y, x, world.SquareGlow)
		}
	})

	eachGrid(l, y1, x1, func(y, x int, ch byte) {
		switch ch {
		case '^':
			b.placeTrap(y, x)
		case '*':
			if b.r.Int0(100) < 75 {
				b.placeObject(y, x, b.depth, false, false, object.OriginSpecial, object.TVNull)
			} else {
				b.placeTrap(y, x)
			}
		case ',':
			b.vaultSpot(y, x, b.depth+3, b.depth+7, object.OriginDropSpecial, object.OriginSpecial)
		case '&':
			b.pickAndPlaceMonster(y, x, b.depth+5, true, true, object.OriginDropSpecial)
		case '@':
			b.pickAndPlaceMonster(y, x, b.depth+11, true, true, object.OriginDropSpecial)
		case '9':
			b.pickAndPlaceMonster(y, x, b.depth+9, true, true, object.OriginDropSpecial)
			b.placeObject(y, x, b.depth+7, true, false, object.OriginSpecial, object.TVNull)
		case '8':
			b.pickAndPlaceMonster(y, x, b.depth+40, true, true, object.OriginDropSpecial)
			b.placeObject(y, x, b.depth+20, true, true, object.OriginSpecial, object.TVNull)
		}
	})
	b.log.Debug("room template", "name", l.Name)
	return true
}

// vaultSpot puts either a monster or an object on a ',' grid.
func (b *builder) vaultSpot(y, x, monLevel, objLevel int, monOrigin, objOrigin object.Origin) {
	if b.r.Int0(100) < 50 {
		b.pickAndPlaceMonster(y, x, monLevel, true, true, monOrigin)
	} else {
		b.placeObject(y, x, objLevel, false, false, objOrigin, object.TVNull)
	}
}

// buildVault lays down l centred on (y0, x0) and fills it with its
// treasures and guardians.
func (b *builder) buildVault(l *data.Layout, y0, x0 int) bool {
	y1, x1, ok := b.layoutOrigin(l, y0, x0)
	if !ok {
		return false
	}

	eachGrid(l, y1, x1, func(y, x int, ch byte) {
		b.c.SetFeat(y, x, world.FeatFloor)
		switch ch {
		case '%':
			b.c.SetMarkedGranite(y, x, world.SquareWallOuter)
		case '#':
			b.c.SetMarkedGranite(y, x, world.SquareWallInner)
		case 'X':
			b.c.SetFeat(y, x, world.FeatPerm)
		case '*':
			if b.r.Int0(100) < 75 {
				b.placeObject(y, x, b.depth, false, false, object.OriginVault, object.TVNull)
			} else {
				b.placeTrap(y, x)
			}
		case '+':
			b.placeSecretDoor(y, x)
		case '^':
			b.placeTrap(y, x)
		}
		b.c.On(y, x, world.SquareRoom|world.SquareVault)
	})

	eachGrid(l, y1, x1, func(y, x int, ch byte) {
		switch ch {
		case '&':
			b.pickAndPlaceMonster(y, x, b.depth+5, true, true, object.OriginDropVault)
		case '@':
			b.pickAndPlaceMonster(y, x, b.depth+11, true, true, object.OriginDropVault)
		case '9':
			b.pickAndPlaceMonster(y, x, b.depth+9, true, true, object.OriginDropVault)
			b.placeObject(y, x, b.depth+7, true, false, object.OriginVault, object.TVNull)
		case '8':
			b.pickAndPlaceMonster(y, x, b.depth+40, true, true, object.OriginDropVault)
			b.placeObject(y, x, b.depth+20, true, true, object.OriginVault, object.TVNull)
		case ',':
			b.vaultSpot(y, x, b.depth+3, b.depth+7, object.OriginDropVault, object.OriginVault)
		}
	})

	b.c.MonRating += uint32(l.Rating)
	b.log.Debug("vault", "type", l.Type, "name", l.Name)
	return true
}

func (b *builder) buildVaultType(typ string, y0, x0 int) bool {
	l := b.randomLayout(typ)
	if l == nil {
		return false
	}
	return b.buildVault(l, y0, x0)
}

func buildLesserVault(b *builder, y0, x0 int) bool {
	return b.buildVaultType(layoutLesserVault, y0, x0)
}

func buildMediumVault(b *builder, y0, x0 int) bool {
	return b.buildVaultType(layoutMediumVault, y0, x0)
}

// buildGreaterVault only ever builds as the first room of a level, and
// gets rarer the further the level is above depth 90.
func buildGreaterVault(b *builder, y0, x0 int) bool {
	if len(b.dun.cent) > 0 {
		return false
	}
	num, den := 2, 3
	for i := 90; i > b.depth; i -= 10 {
		num *= 2
		den *= 3
	}
	if b.r.Int0(den) >= num {
		return false
	}
	return b.buildVaultType(layoutGreaterVault, y0, x0)
}
