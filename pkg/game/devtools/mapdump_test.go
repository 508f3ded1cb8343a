package devtools

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cavegen/pkg/engine/rng"
	"cavegen/pkg/game/data"
	"cavegen/pkg/game/generator"
	"cavegen/pkg/game/player"
)

func testLevel(t *testing.T) (*generator.Level, *player.Player) {
	t.Helper()
	set, err := data.Default()
	if err != nil {
		t.Fatal(err)
	}
	gen, err := generator.New(generator.DefaultConfig(), set, generator.WithRand(rng.New(3)))
	if err != nil {
		t.Fatal(err)
	}
	p := player.New(0)
	p.Depth = 4
	return gen.MustGenerate(p, 0), p
}

func TestDumpLevel(t *testing.T) {
	l, p := testLevel(t)
	var buf bytes.Buffer
	if err := DumpLevel(&buf, l, p); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"--- Metadata ---", "profile: " + l.Profile, "depth: 4", "--- Map ---", "--- Monsters ---"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q", want)
		}
	}
}

func TestDumpLevelToFile(t *testing.T) {
	l, p := testLevel(t)
	path := filepath.Join(t.TempDir(), "level.txt")
	got, err := DumpLevelToFile(path, l, p)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(got)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(b), "=== LEVEL DUMP ===") {
		t.Errorf("unexpected file start %q", string(b[:min(len(b), 40)]))
	}
}
