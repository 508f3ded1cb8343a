package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"cavegen/pkg/engine/rng"
	"cavegen/pkg/engine/terminal"
	"cavegen/pkg/game/chunk"
	"cavegen/pkg/game/data"
	"cavegen/pkg/game/devtools"
	"cavegen/pkg/game/generator"
	"cavegen/pkg/game/player"
	"cavegen/pkg/game/renderer"
	"cavegen/pkg/game/state"
)

func main() {
	depth := flag.Int("depth", 1, "dungeon level to generate (0 is the town)")
	seed := flag.Int64("seed", 0, "random seed; 0 picks one from the clock")
	profile := flag.String("profile", "", "force a cave profile: "+strings.Join(generator.ProfileNames(), ", "))
	configPath := flag.String("config", "", "TOML file overriding the engine limits")
	storePath := flag.String("store", "", "bbolt file that keeps the town between runs")
	dumpPath := flag.String("dump", "", "write a full debug dump of the level to this file")
	useColor := flag.Bool("color", true, "colour the map when writing to a terminal")
	verbose := flag.Bool("v", false, "trace level generation to stderr")
	flag.Parse()

	renderer.InitColors()

	cfg := generator.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = generator.LoadConfig(*configPath); err != nil {
			log.Fatalf("loading config: %v", err)
		}
	}
	if *profile != "" {
		cfg.ForceProfile = *profile
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	opts := []generator.Option{generator.WithRand(rng.New(*seed))}
	if *verbose {
		opts = append(opts, generator.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	}
	if *storePath != "" {
		store, err := chunk.OpenBolt(*storePath)
		if err != nil {
			log.Fatalf("opening store: %v", err)
		}
		defer store.Close()
		opts = append(opts, generator.WithStore(store))
	}

	set, err := data.Default()
	if err != nil {
		log.Fatalf("loading game data: %v", err)
	}
	gen, err := generator.New(cfg, set, opts...)
	if err != nil {
		log.Fatalf("building generator: %v", err)
	}

	g := state.NewGame(gen, player.New(0))
	if err := g.ChangeDepth(*depth); err != nil {
		if errors.Is(err, generator.ErrUnknownProfile) {
			log.Fatalf("%v (known profiles: %s)", err, strings.Join(generator.ProfileNames(), ", "))
		}
		log.Fatalf("generating level: %v", err)
	}

	printSummary(g, *seed)

	plain := !*useColor || !terminal.IsTerminal(os.Stdout)
	if err := renderer.RenderCave(os.Stdout, g.Level, g.Player.Y, g.Player.X, terminal.Width(os.Stdout), plain); err != nil {
		log.Fatalf("rendering: %v", err)
	}

	if *dumpPath != "" {
		path, err := devtools.DumpLevelToFile(*dumpPath, g.Level, g.Player)
		if err != nil {
			log.Fatalf("dumping level: %v", err)
		}
		fmt.Fprintf(os.Stderr, "level dumped to %s\n", path)
	}
}

// printSummary describes the level above the map.
func printSummary(g *state.Game, seed int64) {
	l := g.Level
	c := l.Cave
	renderer.PrintString(os.Stdout, "GT{Depth} %d: FEAT{%s} level, %dx%d, seed %d\n", c.Depth, l.Profile, c.Height, c.Width, seed)
	renderer.PrintString(os.Stdout, "%d rooms, %d doors, ITEM{%d objects}, %d monsters\n",
		len(l.Rooms), len(l.Doors), l.Objects.Count(), l.Monsters.Count())
	for _, msg := range g.Messages {
		fmt.Println(msg)
	}
	fmt.Println()
}
