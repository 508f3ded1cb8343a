package generator

import (
	"github.com/zyedidia/generic/mapset"

	"cavegen/pkg/engine/world"
)

// maxTunnelSteps bounds the walk of one tunnel.
const maxTunnelSteps = 2000

// correctDir points from (y1, x1) towards (y2, x2), never diagonally.
func (b *builder) correctDir(y1, x1, y2, x2 int) (int, int) {
	dy, dx := sign(y2-y1), sign(x2-x1)
	if dy != 0 && dx != 0 {
		if b.r.Int0(100) < 50 {
			dy = 0
		} else {
			dx = 0
		}
	}
	return dy, dx
}

func (b *builder) randDir() (int, int) {
	return world.Orthogonal[b.r.Int0(4)].Delta()
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// tunnel digs a corridor from one room centre towards another. It wanders
// as the profile's tunnel parameters say, goes around permanent rock and
// the solid walls beside earlier piercings, and may stop early where it
// meets an existing corridor. With forced set it never stops early.
func (b *builder) tunnel(from, to world.Loc, forced bool) error {
	d := b.dun
	t := d.profile.tun
	d.tunn = d.tunn[:0]
	d.wall = d.wall[:0]

	y1, x1 := from.Y, from.X
	y2, x2 := to.Y, to.X
	doorFlag := false

	dy, dx := b.correctDir(y1, x1, y2, x2)
	for steps := 0; (y1 != y2 || x1 != x2) && steps < maxTunnelSteps; steps++ {
		if b.r.Int0(100) < t.chg {
			dy, dx = b.correctDir(y1, x1, y2, x2)
			if b.r.Int0(100) < t.rnd {
				dy, dx = b.randDir()
			}
		}

		ty, tx := y1+dy, x1+dx
		for !b.c.InBounds(ty, tx) {
			dy, dx = b.correctDir(y1, x1, y2, x2)
			if b.r.Int0(100) < t.rnd {
				dy, dx = b.randDir()
			}
			ty, tx = y1+dy, x1+dx
		}

		switch {
		case b.c.IsPerm(ty, tx), b.c.IsGraniteWithFlag(ty, tx, world.SquareWallSolid):
			continue

		case b.c.IsGraniteWithFlag(ty, tx, world.SquareWallOuter):
			// Only pierce a wall with room on the other side.
			ny, nx := ty+dy, tx+dx
			if !b.c.InBounds(ny, nx) ||
				b.c.IsPerm(ny, nx) ||
				b.c.IsGraniteWithFlag(ny, nx, world.SquareWallOuter) ||
				b.c.IsGraniteWithFlag(ny, nx, world.SquareWallSolid) {
				continue
			}
			y1, x1 = ty, tx
			if err := d.addWall(y1, x1); err != nil {
				return err
			}
			// No other piercings right next to this one.
			for y := y1 - 1; y <= y1+1; y++ {
				for x := x1 - 1; x <= x1+1; x++ {
					if b.c.InBounds(y, x) && b.c.IsGraniteWithFlag(y, x, world.SquareWallOuter) {
						b.c.SetMarkedGranite(y, x, world.SquareWallSolid)
					}
				}
			}

		case b.c.IsRoom(ty, tx):
			y1, x1 = ty, tx

		case b.c.IsGranite(ty, tx):
			y1, x1 = ty, tx
			if err := d.addTunnel(y1, x1); err != nil {
				return err
			}
			doorFlag = false

		default:
			// An existing corridor.
			y1, x1 = ty, tx
			if !doorFlag {
				if err := d.addDoor(y1, x1); err != nil {
					return err
				}
				doorFlag = true
			}
			if !forced && b.r.Int0(100) >= t.con {
				if abs(y1-from.Y) > 10 || abs(x1-from.X) > 10 {
					return b.finishTunnel()
				}
			}
		}
	}
	return b.finishTunnel()
}

// finishTunnel turns the dug grids to floor and opens the piercings,
// remembering them as entrance door candidates.
func (b *builder) finishTunnel() error {
	d := b.dun
	for _, l := range d.tunn {
		b.c.SetFeat(l.Y, l.X, world.FeatFloor)
	}
	for _, l := range d.wall {
		b.c.SetFeat(l.Y, l.X, world.FeatFloor)
		d.pierced = append(d.pierced, l)
		if b.r.Int0(100) < d.profile.tun.pen {
			d.entrances = append(d.entrances, l)
		}
	}
	return nil
}

// possibleDoorway reports a grid walled in on two opposite sides.
func (b *builder) possibleDoorway(y, x int) bool {
	strong := func(y, x int) bool { return b.c.InBounds(y, x) && b.c.IsStrongWall(y, x) }
	switch {
	case strong(y-1, x) && strong(y+1, x):
		return true
	case strong(y, x-1) && strong(y, x+1):
		return true
	}
	return false
}

// doorNear reports a door orthogonally next to (y, x).
func (b *builder) doorNear(y, x int) bool {
	for _, dir := range world.Orthogonal {
		dy, dx := dir.Delta()
		if b.c.InBounds(y+dy, x+dx) && b.c.IsDoor(y+dy, x+dx) {
			return true
		}
	}
	return false
}

// placeDoors puts doors at the chosen room entrances and, with the
// profile's junction chance, in corridor doorways beside tunnel junctions.
// No door ends up orthogonally next to another.
func (b *builder) placeDoors() {
	d := b.dun
	tried := mapset.New[world.Loc]()

	put := func(l world.Loc) {
		if b.doorNear(l.Y, l.X) {
			return
		}
		b.placeRandomDoor(l.Y, l.X)
		d.doors = append(d.doors, l)
	}

	for _, l := range d.entrances {
		if tried.Has(l) {
			continue
		}
		tried.Put(l)
		if b.c.IsFloor(l.Y, l.X) && b.c.ObjectIdx(l.Y, l.X) == 0 {
			put(l)
		}
	}

	for _, j := range d.door {
		for _, dir := range world.Orthogonal {
			l := j.Step(dir)
			if tried.Has(l) || !b.c.InBounds(l.Y, l.X) {
				continue
			}
			tried.Put(l)
			if !b.c.IsFloor(l.Y, l.X) || b.c.IsRoom(l.Y, l.X) {
				continue
			}
			if b.r.Int0(100) < d.profile.tun.jct && b.possibleDoorway(l.Y, l.X) {
				put(l)
			}
		}
	}
}

// joinRooms scrambles the room centres and tunnels each to the one before,
// starting from the last.
func (b *builder) joinRooms() error {
	d := b.dun
	b.r.Shuffle(len(d.cent), func(i, j int) { d.cent[i], d.cent[j] = d.cent[j], d.cent[i] })

	prev := d.cent[len(d.cent)-1]
	for _, c := range d.cent {
		if err := b.tunnel(c, prev, false); err != nil {
			return err
		}
		prev = c
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
