package generator

import "fmt"

// tunnelProfile shapes the corridors of a cave. All values are percentages.
type tunnelProfile struct {
	name string
	rnd  int // chance of a random direction
	chg  int // chance of changing direction
	con  int // chance of carrying on past an intersection
	pen  int // chance of a door at a room entrance
	jct  int // chance of a door at a junction
}

// streamerProfile shapes the mineral veins of a cave.
type streamerProfile struct {
	name string
	den  int // grids per step
	rng  int // width
	mag  int // magma streamers
	mc   int // 1 in mc magma grids hold treasure
	qua  int // quartz streamers
	qc   int // 1 in qc quartz grids hold treasure
}

// roomBuilder builds one room centred on (y0, x0), reporting whether it fit.
type roomBuilder func(b *builder, y0, x0 int) bool

// roomProfile is one entry of a cave profile's room table.
type roomProfile struct {
	name   string
	build  roomBuilder
	height int // footprint in grids
	width  int
	level  int // minimum depth
	pit    bool
	rarity int
	cutoff int // rooms are tried when the key roll is below this
}

// caveBuilder builds a whole level into b.
type caveBuilder func(b *builder) error

// caveProfile is one style of level.
type caveProfile struct {
	name       string
	build      caveBuilder
	blockSize  int
	dunRooms   int
	dunUnusual int
	maxRarity  int
	tun        tunnelProfile
	str        streamerProfile
	rooms      []roomProfile
	cutoff     int // chosen when the percentage roll is at most this; -1 never
}

var classicTunnels = tunnelProfile{"tunnel-classic", 10, 30, 15, 25, 90}

var classicStreamers = streamerProfile{"streamer-classic", 5, 2, 3, 90, 2, 40}

// Greater vaults have rarity 0 but make their own depth check.
var classicRooms = []roomProfile{
	{"greater vault", buildGreaterVault, 44, 66, 35, false, 0, 100},

	{"monster pit", buildPit, 11, 33, 5, true, 2, 8},
	{"monster nest", buildNest, 11, 33, 5, true, 2, 16},
	{"medium vault", buildMediumVault, 22, 33, 30, false, 2, 38},
	{"lesser vault", buildLesserVault, 22, 33, 20, false, 2, 55},

	{"large room", buildLarge, 11, 33, 3, false, 1, 15},
	{"crossed room", buildCrossed, 11, 33, 3, false, 1, 35},
	{"circular room", buildCircular, 22, 22, 1, false, 1, 50},
	{"overlap room", buildOverlap, 11, 33, 1, false, 1, 70},
	{"room template", buildTemplate, 11, 33, 5, false, 1, 100},

	{"simple room", buildSimple, 11, 33, 1, false, 0, 100},
}

// Rooms too big for a partition leaf are tried once, before the split.
var modifiedRooms = []roomProfile{
	{"greater vault", buildGreaterVault, 44, 66, 35, false, 0, 100},

	{"monster pit", buildPit, 11, 33, 5, true, 2, 12},
	{"monster nest", buildNest, 11, 33, 5, true, 2, 20},
	{"medium vault", buildMediumVault, 22, 33, 30, false, 2, 40},
	{"lesser vault", buildLesserVault, 22, 33, 20, false, 2, 60},

	{"large room", buildLarge, 11, 33, 3, false, 1, 25},
	{"crossed room", buildCrossed, 11, 33, 3, false, 1, 40},
	{"circular room", buildCircular, 22, 22, 1, false, 1, 55},
	{"overlap room", buildOverlap, 11, 33, 1, false, 1, 70},
	{"room template", buildTemplate, 11, 33, 5, false, 1, 100},

	{"simple room", buildSimple, 11, 33, 1, false, 0, 100},
}

// profiles is scanned in order when choosing a level style by percentage.
var profiles = []*caveProfile{
	{name: "town", build: townGen, blockSize: 1, dunUnusual: 200, cutoff: -1},
	{
		name: "modified", build: modifiedGen, blockSize: 1, dunRooms: 50, dunUnusual: 250, maxRarity: 2,
		tun: classicTunnels, str: classicStreamers, rooms: modifiedRooms, cutoff: -1,
	},
	{name: "labyrinth", build: labyrinthGen, blockSize: 1, dunUnusual: 200, cutoff: -1},
	{name: "cavern", build: cavernGen, blockSize: 1, dunUnusual: 200, cutoff: 10},
	{
		name: "classic", build: classicGen, blockSize: 11, dunRooms: 50, dunUnusual: 200, maxRarity: 2,
		tun: classicTunnels, str: classicStreamers, rooms: classicRooms, cutoff: 100,
	},
}

// ProfileNames lists the level styles that can be forced by name.
func ProfileNames() []string {
	names := make([]string, len(profiles))
	for i, p := range profiles {
		names[i] = p.name
	}
	return names
}

// findProfile returns the profile called name.
func findProfile(name string) (*caveProfile, error) {
	for _, p := range profiles {
		if p.name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
}

// labyrinthChance returns the percentage chance of a labyrinth at depth.
// Shallow and quest levels never get one.
func labyrinthChance(depth int, quest bool) int {
	if depth < 13 || quest {
		return 0
	}
	chance := 2
	for _, d := range []int{3, 5, 7, 11, 13} {
		if depth%d == 0 {
			chance++
		}
	}
	return chance
}

func (g *Generator) labyrinthCheck(depth int, quest bool) bool {
	chance := labyrinthChance(depth, quest)
	return chance > 0 && g.rand.Int0(100) < chance
}

// chooseProfile picks the style of the next level.
func (g *Generator) chooseProfile(depth int) (*caveProfile, error) {
	if g.cfg.ForceProfile != "" {
		return findProfile(g.cfg.ForceProfile)
	}
	quest := g.quests.IsQuest(depth)
	switch {
	case depth == 0:
		return findProfile("town")
	case quest:
		return findProfile("classic")
	case g.labyrinthCheck(depth, quest):
		return findProfile("labyrinth")
	}
	perc := g.rand.Int0(100)
	for _, p := range profiles {
		if p.cutoff >= perc {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: no profile for roll %d", ErrUnknownProfile, perc)
}
