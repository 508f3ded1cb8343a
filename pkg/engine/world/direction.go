package world

// Direction is a keypad direction: 8 is north, 2 is south, 5 is no movement.
type Direction int

// Direction constants
const (
	SouthWest Direction = iota + 1
	South
	SouthEast
	West
	Here
	East
	NorthWest
	North
	NorthEast
)

var (
	ddx = [10]int{0, -1, 0, 1, -1, 0, 1, -1, 0, 1}
	ddy = [10]int{0, 1, 1, 1, 0, 0, 0, -1, -1, -1}
)

// Compass lists the eight movement directions, orthogonal ones first.
var Compass = []Direction{South, North, East, West, SouthEast, SouthWest, NorthEast, NorthWest}

// Orthogonal lists the four cardinal directions.
var Orthogonal = Compass[:4]

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case NorthEast:
		return "NorthEast"
	case East:
		return "East"
	case SouthEast:
		return "SouthEast"
	case South:
		return "South"
	case SouthWest:
		return "SouthWest"
	case West:
		return "West"
	case NorthWest:
		return "NorthWest"
	case Here:
		return "Here"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the eight moves
func (d Direction) IsValid() bool {
	return d >= SouthWest && d <= NorthEast && d != Here
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	if d < SouthWest || d > NorthEast {
		return d
	}
	return 10 - d
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (dy, dx int) {
	if d < 0 || int(d) >= len(ddx) {
		return 0, 0
	}
	return ddy[d], ddx[d]
}

// Loc is a grid coordinate.
type Loc struct {
	Y, X int
}

// Step returns the location one move away in direction d.
func (l Loc) Step(d Direction) Loc {
	dy, dx := d.Delta()
	return Loc{Y: l.Y + dy, X: l.X + dx}
}

// Distance returns the approximate distance between two grids: the longer
// axis plus half the shorter one.
func Distance(y1, x1, y2, x2 int) int {
	ay := abs(y1 - y2)
	ax := abs(x1 - x2)
	if ay > ax {
		return ay + (ax >> 1)
	}
	return ax + (ay >> 1)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
