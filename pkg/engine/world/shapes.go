package world

import "math"

// FillRectangle sets every grid in the rectangle to feat and turns on flag.
func (c *Cave) FillRectangle(y1, x1, y2, x2 int, feat Feature, flag SquareFlag) {
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			c.SetFeat(y, x, feat)
			c.On(y, x, flag)
		}
	}
}

// DrawRectangle sets the border of the rectangle to feat and turns on flag.
func (c *Cave) DrawRectangle(y1, x1, y2, x2 int, feat Feature, flag SquareFlag) {
	for y := y1; y <= y2; y++ {
		c.SetFeat(y, x1, feat)
		c.On(y, x1, flag)
		c.SetFeat(y, x2, feat)
		c.On(y, x2, flag)
	}
	for x := x1; x <= x2; x++ {
		c.SetFeat(y1, x, feat)
		c.On(y1, x, flag)
		c.SetFeat(y2, x, feat)
		c.On(y2, x, flag)
	}
}

// GenerateMark turns on flag over the rectangle without touching terrain.
func (c *Cave) GenerateMark(y1, x1, y2, x2 int, flag SquareFlag) {
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			c.On(y, x, flag)
		}
	}
}

// GenerateRoom marks the rectangle as part of a room, lit when light is set.
func (c *Cave) GenerateRoom(y1, x1, y2, x2 int, light bool) {
	flag := SquareRoom
	if light {
		flag |= SquareGlow
	}
	c.GenerateMark(y1, x1, y2, x2, flag)
}

// SetMarkedGranite places granite at (y, x) and records which kind of wall
// it is. The wall markers are exclusive.
func (c *Cave) SetMarkedGranite(y, x int, flag SquareFlag) {
	c.SetFeat(y, x, FeatGranite)
	c.Off(y, x, SquareWallInner|SquareWallOuter|SquareWallSolid)
	c.On(y, x, flag)
}

// GenerateHole opens the middle of one side of the rectangle with feat.
// side is 0 for the top, 1 left, 2 bottom, 3 right.
func (c *Cave) GenerateHole(y1, x1, y2, x2 int, side int, feat Feature) {
	y0 := (y1 + y2) / 2
	x0 := (x1 + x2) / 2
	switch side & 3 {
	case 0:
		y0 = y1
	case 1:
		x0 = x1
	case 2:
		y0 = y2
	case 3:
		x0 = x2
	}
	c.SetFeat(y0, x0, feat)
}

// FillCircle fills a disc of the given radius plus border around (y0, x0).
func (c *Cave) FillCircle(y0, x0, radius, border int, feat Feature, flag SquareFlag, light bool) {
	if light {
		flag |= SquareGlow
	}
	last := 0
	r2 := radius * radius
	for i := 0; i <= radius; i++ {
		k := int(math.Sqrt(float64(r2-i*i)) + 0.5)
		b := border
		if border != 0 && last > k {
			b++
		}
		c.fillXRange(y0-i, x0-k-b, x0+k+b, feat, flag)
		c.fillXRange(y0+i, x0-k-b, x0+k+b, feat, flag)
		c.fillYRange(x0-i, y0-k-b, y0+k+b, feat, flag)
		c.fillYRange(x0+i, y0-k-b, y0+k+b, feat, flag)
		last = k
	}
}

func (c *Cave) fillXRange(y, x1, x2 int, feat Feature, flag SquareFlag) {
	for x := x1; x <= x2; x++ {
		c.SetFeat(y, x, feat)
		c.On(y, x, flag)
	}
}

func (c *Cave) fillYRange(x, y1, y2 int, feat Feature, flag SquareFlag) {
	for y := y1; y <= y2; y++ {
		c.SetFeat(y, x, feat)
		c.On(y, x, flag)
	}
}
