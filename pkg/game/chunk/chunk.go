// Package chunk snapshots regions of a cave so a level can be rebuilt later
// without generating it again, and stores those snapshots by name.
package chunk

import (
	"fmt"

	"cavegen/pkg/engine/world"
)

// Write copies the h by w region of c whose top left corner is (y0, x0)
// into a new cave. Only terrain and square flags are kept.
func Write(c *world.Cave, y0, x0, h, w int) (*world.Cave, error) {
	if h <= 0 || w <= 0 || !c.InBounds(y0, x0) || !c.InBounds(y0+h-1, x0+w-1) {
		return nil, fmt.Errorf("region %dx%d at %d,%d is outside the %dx%d cave", h, w, y0, x0, c.Height, c.Width)
	}
	out := world.NewCave(h, w)
	out.Name = c.Name
	out.Depth = c.Depth
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.SetFeat(y, x, c.Feat(y0+y, x0+x))
			out.On(y, x, c.Info(y0+y, x0+x))
		}
	}
	return out, nil
}

// Copy pastes chunk into dst with its top left corner at (y0, x0),
// replacing terrain and square flags there.
func Copy(dst, chunk *world.Cave, y0, x0 int) error {
	if !dst.InBounds(y0, x0) || !dst.InBounds(y0+chunk.Height-1, x0+chunk.Width-1) {
		return fmt.Errorf("chunk %dx%d does not fit at %d,%d in a %dx%d cave",
			chunk.Height, chunk.Width, y0, x0, dst.Height, dst.Width)
	}
	chunk.ForEach(func(y, x int) {
		dst.SetFeat(y0+y, x0+x, chunk.Feat(y, x))
		dst.Off(y0+y, x0+x, ^world.SquareFlag(0))
		dst.On(y0+y, x0+x, chunk.Info(y, x))
	})
	return nil
}
