package world

// LOS returns true if there's a clear path from (y0,x0) to (y1,x1).
// Uses Bresenham's line algorithm; grids that do not let projections pass
// block the line, except the target grid itself.
func LOS(c *Cave, y0, x0, y1, x1 int) bool {
	dy := y1 - y0
	dx := x1 - x0

	if dy == 0 && dx == 0 {
		return true
	}

	ady := abs(dy)
	adx := abs(dx)

	// Adjacent grids are always visible
	if ady <= 1 && adx <= 1 {
		return true
	}

	var stepY, stepX int
	if dy > 0 {
		stepY = 1
	} else if dy < 0 {
		stepY = -1
	}
	if dx > 0 {
		stepX = 1
	} else if dx < 0 {
		stepX = -1
	}

	y, x := y0, x0

	if ady >= adx {
		// Step along rows
		err := 2*adx - ady
		for {
			y += stepY
			if err > 0 {
				x += stepX
				err -= 2 * ady
			}
			err += 2 * adx

			if y == y1 {
				return true
			}
			if !c.InBounds(y, x) || !c.Feat(y, x).IsProjectable() {
				return false
			}
		}
	}

	// Step along cols
	err := 2*ady - adx
	for {
		x += stepX
		if err > 0 {
			y += stepY
			err -= 2 * adx
		}
		err += 2 * ady

		if x == x1 {
			return true
		}
		if !c.InBounds(y, x) || !c.Feat(y, x).IsProjectable() {
			return false
		}
	}
}
