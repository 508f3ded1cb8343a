// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"cavegen/pkg/engine/world"
	"cavegen/pkg/game/generator"
	"cavegen/pkg/game/monster"
	"cavegen/pkg/game/object"
	"cavegen/pkg/game/player"
	"cavegen/pkg/game/renderer"
)

// DefaultDumpFile is where DumpLevelToFile writes when given no path.
const DefaultDumpFile = "map.txt"

// DumpLevelToFile writes a full debug dump of l to path and returns the
// absolute path written.
func DumpLevelToFile(path string, l *generator.Level, p *player.Player) (string, error) {
	if path == "" {
		path = DefaultDumpFile
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpLevel(f, l, p); err != nil {
		return "", err
	}
	return absPath, f.Close()
}

// DumpLevel writes metadata, a legend, the plain map and detailed lists of
// rooms, doors, monsters and objects. The format is sections of key: value
// lines, readable by people and scripts alike.
func DumpLevel(w io.Writer, l *generator.Level, p *player.Player) error {
	c := l.Cave
	ew := &errWriter{w: w}

	// --- Metadata ---
	ew.println("=== LEVEL DUMP ===")
	ew.println("")
	ew.println("--- Metadata ---")
	ew.printf("name: %q\n", c.Name)
	ew.printf("profile: %s\n", l.Profile)
	ew.printf("depth: %d\n", c.Depth)
	ew.printf("height: %d\n", c.Height)
	ew.printf("width: %d\n", c.Width)
	ew.printf("coordinate_system: y,x (0-based, y=row, x=column)\n")
	ew.printf("player: %d,%d\n", p.Y, p.X)
	ew.printf("created_at: %d\n", c.CreatedAt)
	ew.printf("obj_rating: %d\n", c.ObjRating)
	ew.printf("mon_rating: %d\n", c.MonRating)
	ew.printf("good_item: %v\n", c.GoodItem)
	ew.printf("feeling: %d (objects %d, monsters %d)\n", c.Feeling, l.ObjFeeling, l.MonFeeling)
	ew.printf("feeling_text: %q\n", generator.FeelingText(c.Depth, l.ObjFeeling, l.MonFeeling, true))
	ew.printf("objects: %d\n", l.Objects.Count())
	ew.printf("monsters: %d\n", l.Monsters.Count())
	ew.println("")

	// --- Features ---
	ew.println("--- Feature counts ---")
	for i := 0; i < world.FeatureCount; i++ {
		f := world.Feature(i)
		if n := c.FeatCount(f); n > 0 {
			ew.printf("  %s: %d\n", f.Name(), n)
		}
	}
	ew.println("")

	// --- Legend ---
	ew.println("--- Legend ---")
	ew.println("# = wall  % = mineral vein  * = vein with treasure  . = floor  + = closed door  ' = open door  < > = stairs  1-8 = shop  : = rubble  ^ = trap  $ = gold  & = pile  @ = player  letters = monsters")
	ew.println("")

	// --- Map ---
	ew.println("--- Map ---")
	if ew.err == nil {
		ew.err = renderer.RenderCave(w, l, p.Y, p.X, 0, true)
	}
	ew.println("")

	ew.println("--- Rooms ---")
	for i, r := range l.Rooms {
		ew.printf("  %d: %d,%d\n", i, r.Y, r.X)
	}
	ew.println("")

	ew.println("--- Doors ---")
	for _, d := range l.Doors {
		ew.printf("  %d,%d %s\n", d.Y, d.X, c.Feat(d.Y, d.X).Name())
	}
	ew.println("")

	ew.println("--- Piercings ---")
	for _, d := range l.Piercings {
		ew.printf("  %d,%d\n", d.Y, d.X)
	}
	ew.println("")

	ew.println("--- Monsters ---")
	var mons []string
	l.Monsters.ForEach(func(idx int, m *monster.Monster) {
		mons = append(mons, fmt.Sprintf("  %d: %d,%d %q level: %d", idx, m.Y, m.X, m.Race.Name, m.Race.Level))
	})
	sort.Strings(mons)
	for _, s := range mons {
		ew.println(s)
	}
	ew.println("")

	ew.println("--- Objects ---")
	l.Objects.ForEach(func(idx int, o *object.Object) {
		where := fmt.Sprintf("%d,%d", o.Y, o.X)
		if o.HeldBy != 0 {
			where = fmt.Sprintf("held by %d", o.HeldBy)
		}
		ew.printf("  %d: %s %q x%d origin: %d\n", idx, where, o.Name(), o.Number, o.Origin)
	})

	return ew.err
}

// errWriter remembers the first write error and skips writes after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, a ...any) {
	if ew.err == nil {
		_, ew.err = fmt.Fprintf(ew.w, format, a...)
	}
}

func (ew *errWriter) println(s string) {
	if ew.err == nil {
		_, ew.err = fmt.Fprintln(ew.w, s)
	}
}
