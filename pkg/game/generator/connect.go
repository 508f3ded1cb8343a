package generator

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"cavegen/pkg/engine/world"
)

// reachable floods out from start over grids a character can cross.
func reachable(c *world.Cave, start world.Loc) mapset.Set[world.Loc] {
	seen := mapset.New[world.Loc]()
	if !c.InBounds(start.Y, start.X) || !c.IsConnective(start.Y, start.X) {
		return seen
	}
	q := queue.New[world.Loc]()
	seen.Put(start)
	q.Enqueue(start)
	for !q.Empty() {
		l := q.Dequeue()
		for _, d := range world.Compass {
			n := l.Step(d)
			if !c.InBounds(n.Y, n.X) || seen.Has(n) || !c.IsConnective(n.Y, n.X) {
				continue
			}
			seen.Put(n)
			q.Enqueue(n)
		}
	}
	return seen
}

// anchor returns a crossable grid standing for the room centred on l: the
// centre itself, or the nearest crossable room grid when something solid
// was built there.
func anchor(c *world.Cave, l world.Loc) world.Loc {
	if c.IsConnective(l.Y, l.X) {
		return l
	}
	for r := 1; r <= 3; r++ {
		for y := l.Y - r; y <= l.Y+r; y++ {
			for x := l.X - r; x <= l.X+r; x++ {
				if c.InBounds(y, x) && c.IsRoom(y, x) && c.IsConnective(y, x) {
					return world.Loc{Y: y, X: x}
				}
			}
		}
	}
	return l
}

// ensureConnected digs extra tunnels until every room can be walked to
// from the first one.
func (b *builder) ensureConnected() error {
	d := b.dun
	if len(d.cent) < 2 {
		return nil
	}
	for tries := 0; tries <= 3*len(d.cent); tries++ {
		seen := reachable(b.c, anchor(b.c, d.cent[0]))

		lost := -1
		for i, c := range d.cent {
			if !seen.Has(anchor(b.c, c)) {
				lost = i
				break
			}
		}
		if lost < 0 {
			return nil
		}
		if tries == 3*len(d.cent) {
			break
		}

		// Join it to the closest room that is reached.
		from := d.cent[lost]
		best, bestDist := -1, 0
		for i, c := range d.cent {
			if i == lost || !seen.Has(anchor(b.c, c)) {
				continue
			}
			dist := world.Distance(from.Y, from.X, c.Y, c.X)
			if best < 0 || dist < bestDist {
				best, bestDist = i, dist
			}
		}
		b.log.Debug("joining unreached room", "y", from.Y, "x", from.X, "try", tries)
		if err := b.tunnel(from, d.cent[best], true); err != nil {
			return err
		}
	}
	return errDisconnected
}
