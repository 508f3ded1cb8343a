package generator

import (
	"cavegen/pkg/engine/world"
)

// Minimum size of a BSP leaf, enough for the footprint of the usual rooms.
const (
	minLeafHgt = 12
	minLeafWid = 34
)

// bspNode is one region of the cave in a binary space partition.
type bspNode struct {
	y, x, height, width int
	left, right         *bspNode
	// centre of the room built in this leaf, if any
	room *world.Loc
}

func (n *bspNode) leaf() bool { return n.left == nil && n.right == nil }

// splitBSP recursively splits a node until its parts would be too small.
func (b *builder) splitBSP(n *bspNode) {
	canH := n.height >= minLeafHgt*2
	canV := n.width >= minLeafWid*2

	var horizontal bool
	switch {
	case canH && canV:
		// Split the longer side, relative to the leaf shape
		switch {
		case n.width*minLeafHgt > n.height*minLeafWid:
			horizontal = false
		case n.width*minLeafHgt < n.height*minLeafWid:
			horizontal = true
		default:
			horizontal = b.r.OneIn(2)
		}
	case canH:
		horizontal = true
	case canV:
		horizontal = false
	default:
		return
	}

	if horizontal {
		at := b.r.Range(minLeafHgt, n.height-minLeafHgt)
		n.left = &bspNode{y: n.y, x: n.x, height: at, width: n.width}
		n.right = &bspNode{y: n.y + at, x: n.x, height: n.height - at, width: n.width}
	} else {
		at := b.r.Range(minLeafWid, n.width-minLeafWid)
		n.left = &bspNode{y: n.y, x: n.x, height: n.height, width: at}
		n.right = &bspNode{y: n.y, x: n.x + at, height: n.height, width: n.width - at}
	}
	b.splitBSP(n.left)
	b.splitBSP(n.right)
}

// collectLeaves returns the leaves under n, left to right.
func collectLeaves(n *bspNode) []*bspNode {
	if n == nil {
		return nil
	}
	if n.leaf() {
		return []*bspNode{n}
	}
	return append(collectLeaves(n.left), collectLeaves(n.right)...)
}

// pickRoom returns a random room centre from the subtree, or nil.
func (b *builder) pickRoom(n *bspNode) *world.Loc {
	if n.leaf() {
		return n.room
	}
	l, r := b.pickRoom(n.left), b.pickRoom(n.right)
	switch {
	case l != nil && r != nil:
		if b.r.OneIn(2) {
			return l
		}
		return r
	case l != nil:
		return l
	}
	return r
}

// connectBSP tunnels between a room on each side of every split, deepest
// splits first.
func (b *builder) connectBSP(n *bspNode) error {
	if n.leaf() {
		return nil
	}
	if err := b.connectBSP(n.left); err != nil {
		return err
	}
	if err := b.connectBSP(n.right); err != nil {
		return err
	}
	l, r := b.pickRoom(n.left), b.pickRoom(n.right)
	if l == nil || r == nil {
		return nil
	}
	return b.tunnel(*l, *r, false)
}

// buildInLeaf tries to build rp centred in the leaf.
func (b *builder) buildInLeaf(n *bspNode, rp *roomProfile) bool {
	d := b.dun
	if b.depth < rp.level || (rp.pit && d.pitNum >= maxPit) {
		return false
	}
	if rp.height > n.height || rp.width > n.width || len(d.cent) >= centMax {
		return false
	}
	y := n.y + n.height/2
	x := n.x + n.width/2
	if !rp.build(b, y, x) {
		return false
	}
	d.addCentre(y, x)
	n.room = &world.Loc{Y: y, X: x}
	if rp.pit {
		d.pitNum++
	}
	b.log.Debug("room built", "room", rp.name, "y", y, "x", x)
	return true
}

// outsized reports whether rp can never fit in a partition leaf.
func outsized(rp *roomProfile) bool {
	return rp.height >= minLeafHgt*2 || rp.width >= minLeafWid*2
}

// buildOutsized tries the rooms too big for any leaf in a strip at one end
// of the cave, and shrinks root to the columns the strip leaves over.
func (b *builder) buildOutsized(root *bspNode) {
	d := b.dun
	for i := range d.profile.rooms {
		rp := &d.profile.rooms[i]
		if !outsized(rp) || b.depth < rp.level {
			continue
		}
		if rp.height > root.height || rp.width+minLeafWid > root.width {
			continue
		}
		strip := rp.width + 1
		left := b.r.OneIn(2)
		y := root.y + root.height/2
		x := root.x + root.width - 1 - rp.width/2
		if left {
			x = root.x + rp.width/2
		}
		if !rp.build(b, y, x) {
			continue
		}
		if left {
			root.x += strip
		}
		d.addCentre(y, x)
		root.width -= strip
		b.log.Debug("room built", "room", rp.name, "y", y, "x", x)
		return
	}
}

// modifiedGen builds a room-and-tunnel level whose rooms are laid out by
// splitting the cave into regions instead of a fixed block grid.
func modifiedGen(b *builder) error {
	d := b.dun
	size := b.levelScale()
	h, w := b.scaledSize(size)

	b.newCave(h, w)
	b.c.FillRectangle(0, 0, h-1, w-1, world.FeatGranite, world.SquareNone)

	root := &bspNode{y: 1, x: 1, height: h - 2, width: w - 2}
	b.buildOutsized(root)
	b.splitBSP(root)

	leaves := collectLeaves(root)
	b.r.Shuffle(len(leaves), func(i, j int) { leaves[i], leaves[j] = leaves[j], leaves[i] })

	numRooms := d.profile.dunRooms * size / 100
	for i, n := range leaves {
		if i >= numRooms {
			break
		}
		// Big rooms want several tries at a leaf before settling for less.
		for tries := 0; tries < 3; tries++ {
			if b.tryRooms(func(rp *roomProfile) bool { return b.buildInLeaf(n, rp) }) {
				break
			}
		}
	}
	if len(d.cent) == 0 {
		return errNoRooms
	}

	b.c.DrawRectangle(0, 0, h-1, w-1, world.FeatPerm, world.SquareNone)

	if err := b.connectBSP(root); err != nil {
		return err
	}
	if err := b.ensureConnected(); err != nil {
		return err
	}
	b.placeDoors()
	b.buildStreamers()

	return b.populate()
}
