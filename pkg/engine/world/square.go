package world

// SquareFlag is a per-grid information bit.
type SquareFlag uint32

// Square flags. WallInner, WallOuter, WallSolid and MonRestrict only exist
// while a level is being built.
const (
	SquareMark SquareFlag = 1 << iota
	SquareGlow
	SquareVault
	SquareRoom
	SquareSeen
	SquareView
	SquareFeel
	SquareTrap
	SquareWallInner
	SquareWallOuter
	SquareWallSolid
	SquareMonRestrict
	SquareNoTeleport

	SquareNone SquareFlag = 0
)

// GenerationFlags are the construction aids cleared once a level is accepted.
const GenerationFlags = SquareWallInner | SquareWallOuter | SquareWallSolid | SquareMonRestrict

var squareFlagNames = []struct {
	flag SquareFlag
	name string
}{
	{SquareMark, "MARK"},
	{SquareGlow, "GLOW"},
	{SquareVault, "VAULT"},
	{SquareRoom, "ROOM"},
	{SquareSeen, "SEEN"},
	{SquareView, "VIEW"},
	{SquareFeel, "FEEL"},
	{SquareTrap, "TRAP"},
	{SquareWallInner, "WALL_INNER"},
	{SquareWallOuter, "WALL_OUTER"},
	{SquareWallSolid, "WALL_SOLID"},
	{SquareMonRestrict, "MON_RESTRICT"},
	{SquareNoTeleport, "NO_TELEPORT"},
}

// String lists the set flag names separated by '|'.
func (f SquareFlag) String() string {
	if f == 0 {
		return "NONE"
	}
	s := ""
	for _, n := range squareFlagNames {
		if f&n.flag == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += n.name
	}
	return s
}
