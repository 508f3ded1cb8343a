package generator

import (
	"errors"

	"cavegen/pkg/engine/world"
	"cavegen/pkg/game/data"
)

// Bounds on the working lists of one generation attempt.
const (
	centMax = 100
	doorMax = 200
	wallMax = 500
	tunnMax = 900

	maxPit = 2
)

// Attempt-local failures. They restart generation and never reach callers.
var (
	errTooManyDoors     = errors.New("too many doors")
	errTooManyPiercings = errors.New("too many wall piercings")
	errTooManyTunnels   = errors.New("too many tunnel grids")
	errTooManyObjects   = errors.New("too many objects")
	errTooManyMonsters  = errors.New("too many monsters")
	errDisconnected     = errors.New("rooms are not connected")
	errTooShallow       = errors.New("level too shallow for profile")
	errCavernTooSmall   = errors.New("cavern too small")
	errNoPlayerSpot     = errors.New("no room for the player")
	errNoRooms          = errors.New("no rooms built")
)

// dun is the working set of one generation attempt. It is thrown away when
// the attempt ends, whether it worked or not.
type dun struct {
	profile *caveProfile

	cent []world.Loc // room centres
	door []world.Loc // tunnel junctions that may get doors
	wall []world.Loc // piercings of the tunnel being dug
	tunn []world.Loc // grids of the tunnel being dug

	// Door candidates at room entrances, and every piercing made, for the
	// whole level.
	entrances []world.Loc
	pierced   []world.Loc
	// Doors placed by the door pass.
	doors []world.Loc

	blockHgt  int
	blockWid  int
	rowBlocks int
	colBlocks int
	roomMap   [][]bool

	pitNum  int
	pitType *data.Pit
}

func newDun(p *caveProfile) *dun {
	return &dun{
		profile:  p,
		cent:     make([]world.Loc, 0, centMax),
		door:     make([]world.Loc, 0, doorMax),
		wall:     make([]world.Loc, 0, wallMax),
		tunn:     make([]world.Loc, 0, tunnMax),
		blockHgt: p.blockSize,
		blockWid: p.blockSize,
	}
}

// setBlocks sizes the block map for a cave of h by w grids.
func (d *dun) setBlocks(h, w int) {
	d.rowBlocks = h / d.blockHgt
	d.colBlocks = w / d.blockWid
	d.roomMap = make([][]bool, d.rowBlocks)
	for i := range d.roomMap {
		d.roomMap[i] = make([]bool, d.colBlocks)
	}
}

func (d *dun) addCentre(y, x int) bool {
	if len(d.cent) >= centMax {
		return false
	}
	d.cent = append(d.cent, world.Loc{Y: y, X: x})
	return true
}

func (d *dun) addDoor(y, x int) error {
	if len(d.door) >= doorMax {
		return errTooManyDoors
	}
	d.door = append(d.door, world.Loc{Y: y, X: x})
	return nil
}

func (d *dun) addWall(y, x int) error {
	if len(d.wall) >= wallMax || len(d.pierced) >= wallMax {
		return errTooManyPiercings
	}
	d.wall = append(d.wall, world.Loc{Y: y, X: x})
	return nil
}

func (d *dun) addTunnel(y, x int) error {
	if len(d.tunn) >= tunnMax {
		return errTooManyTunnels
	}
	d.tunn = append(d.tunn, world.Loc{Y: y, X: x})
	return nil
}
