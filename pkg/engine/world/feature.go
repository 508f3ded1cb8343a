package world

// Feature identifies the terrain occupying a grid.
type Feature uint8

// Terrain features
const (
	FeatNone Feature = iota
	FeatFloor
	FeatClosed
	FeatOpen
	FeatBroken
	FeatLess
	FeatMore
	FeatShop1
	FeatShop2
	FeatShop3
	FeatShop4
	FeatShop5
	FeatShop6
	FeatShop7
	FeatShop8
	FeatSecret
	FeatRubble
	FeatPassRubble
	FeatMagma
	FeatQuartz
	FeatMagmaK
	FeatQuartzK
	FeatGranite
	FeatPerm
	featCount
)

// FeatureCount is the number of terrain features.
const FeatureCount = int(featCount)

// FeatFlag classifies a feature.
type FeatFlag uint16

// Feature classification flags
const (
	FFWall FeatFlag = 1 << iota
	FFFloor
	FFRock
	FFGranite
	FFPerm
	FFDoor
	FFPassable
	FFProject
	FFObject
	FFStair
	FFShop
	FFRubble
	FFTreasure
	FFMagma
	FFQuartz
)

type featureInfo struct {
	name  string
	glyph rune
	flags FeatFlag
}

var features = [featCount]featureInfo{
	FeatNone:       {"nothing", ' ', 0},
	FeatFloor:      {"open floor", '.', FFFloor | FFPassable | FFProject | FFObject},
	FeatClosed:     {"closed door", '+', FFDoor},
	FeatOpen:       {"open door", '\'', FFDoor | FFPassable | FFProject},
	FeatBroken:     {"broken door", '\'', FFDoor | FFPassable | FFProject},
	FeatLess:       {"up staircase", '<', FFStair | FFPassable | FFProject},
	FeatMore:       {"down staircase", '>', FFStair | FFPassable | FFProject},
	FeatShop1:      {"General Store", '1', FFShop | FFPassable | FFProject | FFPerm},
	FeatShop2:      {"Armoury", '2', FFShop | FFPassable | FFProject | FFPerm},
	FeatShop3:      {"Weapon Smiths", '3', FFShop | FFPassable | FFProject | FFPerm},
	FeatShop4:      {"Bookseller", '4', FFShop | FFPassable | FFProject | FFPerm},
	FeatShop5:      {"Alchemy shop", '5', FFShop | FFPassable | FFProject | FFPerm},
	FeatShop6:      {"Magic shop", '6', FFShop | FFPassable | FFProject | FFPerm},
	FeatShop7:      {"Black market", '7', FFShop | FFPassable | FFProject | FFPerm},
	FeatShop8:      {"Home", '8', FFShop | FFPassable | FFProject | FFPerm},
	FeatSecret:     {"secret door", '#', FFWall | FFDoor | FFRock},
	FeatRubble:     {"pile of rubble", ':', FFRock | FFRubble},
	FeatPassRubble: {"pile of passable rubble", ':', FFRock | FFRubble | FFPassable | FFProject},
	FeatMagma:      {"magma vein", '%', FFWall | FFRock | FFMagma},
	FeatQuartz:     {"quartz vein", '%', FFWall | FFRock | FFQuartz},
	FeatMagmaK:     {"magma vein with treasure", '*', FFWall | FFRock | FFMagma | FFTreasure},
	FeatQuartzK:    {"quartz vein with treasure", '*', FFWall | FFRock | FFQuartz | FFTreasure},
	FeatGranite:    {"granite wall", '#', FFWall | FFRock | FFGranite},
	FeatPerm:       {"permanent wall", '#', FFWall | FFRock | FFPerm},
}

// Name returns the display name of the feature.
func (f Feature) Name() string {
	if f >= featCount {
		return "unknown"
	}
	return features[f].name
}

// Glyph returns the map symbol of the feature.
func (f Feature) Glyph() rune {
	if f >= featCount {
		return '?'
	}
	return features[f].glyph
}

// Has reports whether the feature carries flag.
func (f Feature) Has(flag FeatFlag) bool {
	if f >= featCount {
		return false
	}
	return features[f].flags&flag != 0
}

func (f Feature) IsWall() bool { return f.Has(FFWall) }
func (f Feature) IsFloor() bool { return f.Has(FFFloor) }
func (f Feature) IsPerm() bool { return f.Has(FFPerm) }
func (f Feature) IsDoor() bool { return f.Has(FFDoor) }
func (f Feature) IsGranite() bool { return f.Has(FFGranite) }
func (f Feature) IsRock() bool { return f.Has(FFRock) }
func (f Feature) IsPassable() bool { return f.Has(FFPassable) }
func (f Feature) IsProjectable() bool { return f.Has(FFProject) }
func (f Feature) IsRubble() bool { return f.Has(FFRubble) }
func (f Feature) IsStair() bool { return f.Has(FFStair) }
func (f Feature) IsShop() bool { return f.Has(FFShop) }

// ShopNumber returns the shop number (1-8) for a shop feature, or 0.
func (f Feature) ShopNumber() int {
	if f < FeatShop1 || f > FeatShop8 {
		return 0
	}
	return int(f-FeatShop1) + 1
}
