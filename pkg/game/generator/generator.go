// Package generator builds dungeon levels: the town, room-and-corridor
// levels, labyrinths and caverns, complete with stairs, traps, monsters,
// objects and a level feeling.
package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/BurntSushi/toml"

	"cavegen/pkg/engine/rng"
	"cavegen/pkg/engine/world"
	"cavegen/pkg/game/chunk"
	"cavegen/pkg/game/data"
	"cavegen/pkg/game/monster"
	"cavegen/pkg/game/object"
	"cavegen/pkg/game/player"
	"cavegen/pkg/game/quest"
)

var (
	// ErrExhausted is returned when every attempt to build a level failed.
	ErrExhausted = errors.New("level generation failed")
	// ErrUnknownProfile is returned for a level style that does not exist.
	ErrUnknownProfile = errors.New("unknown cave profile")
)

// Config holds the engine limits and options.
type Config struct {
	DungeonHgt   int    `toml:"dungeon_height"`
	DungeonWid   int    `toml:"dungeon_width"`
	TownHgt      int    `toml:"town_height"`
	TownWid      int    `toml:"town_width"`
	ObjectMax    int    `toml:"object_max"`
	MonsterMax   int    `toml:"monster_max"`
	FeelingTotal int    `toml:"feeling_total"`
	MaxAttempts  int    `toml:"max_attempts"`
	NoPreserve   bool   `toml:"no_preserve"`
	NoStacking   bool   `toml:"no_stacking"`
	ForceProfile string `toml:"force_profile"`
	TownName     string `toml:"town_name"`
}

// DefaultConfig returns the standard dungeon.
func DefaultConfig() Config {
	return Config{
		DungeonHgt:   66,
		DungeonWid:   198,
		TownHgt:      22,
		TownWid:      66,
		ObjectMax:    1024,
		MonsterMax:   1024,
		FeelingTotal: 100,
		MaxAttempts:  100,
		TownName:     "Town",
	}
}

// LoadConfig reads a TOML file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Generator builds levels for one game. It owns the race and artifact
// tables, so uniques and artifacts are only created once per game.
type Generator struct {
	cfg      Config
	data     *data.Set
	races    []*monster.Race
	quests   *quest.Log
	store    chunk.Store
	rand     *rng.Rand
	log      *slog.Logger
	maker    *object.Maker
	townSeed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger traces generation to l.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.log = l }
}

// WithStore keeps the town in s between levels.
func WithStore(s chunk.Store) Option {
	return func(g *Generator) { g.store = s }
}

// WithQuests uses q to decide which levels are quest levels.
func WithQuests(q *quest.Log) Option {
	return func(g *Generator) { g.quests = q }
}

// WithRand draws every random number from r.
func WithRand(r *rng.Rand) Option {
	return func(g *Generator) { g.rand = r }
}

// New returns a Generator for the game data in set.
func New(cfg Config, set *data.Set, opts ...Option) (*Generator, error) {
	g := &Generator{
		cfg:  cfg,
		data: set,
		log:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rand == nil {
		g.rand = rng.New(time.Now().UnixNano())
	}
	if g.quests == nil {
		g.quests = quest.New(quest.Defaults)
	}

	kinds, err := object.NewKinds(set.Kinds)
	if err != nil {
		return nil, err
	}
	arts, err := object.NewArtifacts(set.Artifacts, kinds)
	if err != nil {
		return nil, err
	}
	g.races = monster.NewRaces(set.Races)
	g.maker = object.NewMaker(kinds, arts, g.rand)
	g.townSeed = g.rand.Int63()
	return g, nil
}

// Config returns the configuration the generator was built with.
func (g *Generator) Config() Config { return g.cfg }

// Quests returns the quest log the generator consults.
func (g *Generator) Quests() *quest.Log { return g.quests }

// Races returns the monster races shared by every level.
func (g *Generator) Races() []*monster.Race { return g.races }

// Level is a freshly generated level and everything on it.
type Level struct {
	Cave     *world.Cave
	Objects  *object.Pool
	Monsters *monster.List
	Profile  string

	// Rooms holds the room centres, Doors the doors placed on room
	// entrances and junctions, and Piercings every outer wall grid a
	// tunnel went through.
	Rooms     []world.Loc
	Doors     []world.Loc
	Piercings []world.Loc

	// ObjFeeling is in tens, 10 to 100; MonFeeling runs 1 to 9. Both are
	// 0 in the town.
	ObjFeeling int
	MonFeeling int
}

// Discard wipes the level's objects and monsters, returning unseen
// artifacts and unkilled uniques to the pool for later levels.
func (l *Level) Discard() {
	l.Objects.Wipe()
	l.Monsters.Wipe()
}

// Generate builds the level at the player's depth and puts the player on
// it. It fails only when no attempt succeeds.
func (g *Generator) Generate(p *player.Player, turn int64) (*Level, error) {
	depth := p.Depth
	attempts := max(g.cfg.MaxAttempts, 1)

	for attempt := 1; attempt <= attempts; attempt++ {
		prof, err := g.chooseProfile(depth)
		if err != nil {
			return nil, err
		}
		g.log.Debug("profile chosen", "profile", prof.name, "depth", depth, "attempt", attempt)

		b := g.newBuilder(prof, depth, turn)
		if err := b.attempt(); err != nil {
			b.discard()
			g.log.Debug("generation restarted", "attempt", attempt, "profile", prof.name, "reason", err)
			continue
		}
		return g.finish(b, p, turn), nil
	}
	return nil, fmt.Errorf("%w: depth %d after %d attempts", ErrExhausted, depth, attempts)
}

// MustGenerate is Generate for callers with no way to carry on without a
// level. It panics on failure.
func (g *Generator) MustGenerate(p *player.Player, turn int64) *Level {
	l, err := g.Generate(p, turn)
	if err != nil {
		panic(err)
	}
	return l
}

// attempt runs the profile's builder and checks the result.
func (b *builder) attempt() error {
	if err := b.dun.profile.build(b); err != nil {
		return err
	}
	if !b.placed {
		return errNoPlayerSpot
	}
	if b.g.quests.IsQuest(b.depth) {
		b.placeQuestors()
	}
	b.c.ClearGenerationFlags()

	if b.objs.Max() >= b.g.cfg.ObjectMax {
		return errTooManyObjects
	}
	if b.mons.Max() >= b.g.cfg.MonsterMax {
		return errTooManyMonsters
	}
	if msg := b.c.Validate(
		func(i int) bool { return b.objs.Get(i) != nil },
		func(i int) bool { return b.mons.Get(i) != nil },
	); msg != "" {
		return errors.New(msg)
	}
	return nil
}

// placeQuestors puts every questor of this depth not yet in the dungeon on
// a random empty grid.
func (b *builder) placeQuestors() {
	for _, q := range b.g.quests.At(b.depth) {
		race := b.spawn.Find(q.Race)
		if race == nil || !race.Questor || race.CurNum > 0 || race.MaxNum <= 0 {
			continue
		}
		y, x, ok := b.findEmpty()
		if !ok {
			continue
		}
		if b.spawn.PlaceNewMonster(b.c, y, x, race, true, true, int(object.OriginDrop)) {
			b.log.Debug("questor placed", "race", race.Name, "y", y, "x", x)
		}
	}
}

// finish stamps a successful attempt and hands its level over.
func (g *Generator) finish(b *builder, p *player.Player, turn int64) *Level {
	c := b.c
	if b.depth > 0 {
		b.placeFeeling(g.cfg.FeelingTotal)
	}
	obj := calcObjFeeling(c, g.cfg.NoPreserve)
	mon := calcMonFeeling(c)
	c.Feeling = obj + mon
	c.CreatedAt = turn

	if b.depth == 0 && g.store != nil && !g.store.Has(g.cfg.TownName) {
		g.saveTown(c)
	}

	b.objs.SetLive(true)
	p.Y, p.X = b.py, b.px

	d := b.dun
	return &Level{
		Cave:       c,
		Objects:    b.objs,
		Monsters:   b.mons,
		Profile:    d.profile.name,
		Rooms:      append([]world.Loc(nil), d.cent...),
		Doors:      append([]world.Loc(nil), d.doors...),
		Piercings:  append([]world.Loc(nil), d.pierced...),
		ObjFeeling: obj,
		MonFeeling: mon,
	}
}

// saveTown keeps the town layout for the next visit. A failed save only
// costs a rebuild later.
func (g *Generator) saveTown(c *world.Cave) {
	snap, err := chunk.Write(c, 0, 0, c.Height, c.Width)
	if err == nil {
		err = g.store.Save(g.cfg.TownName, snap)
	}
	if err != nil {
		g.log.Warn("town not saved", "err", err)
	}
}
