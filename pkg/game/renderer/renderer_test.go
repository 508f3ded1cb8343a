package renderer

import (
	"bytes"
	"strings"
	"testing"

	"cavegen/pkg/engine/rng"
	"cavegen/pkg/game/data"
	"cavegen/pkg/game/generator"
	"cavegen/pkg/game/object"
	"cavegen/pkg/game/player"
)

func testLevel(t *testing.T, depth int) (*generator.Level, *player.Player) {
	t.Helper()
	set, err := data.Default()
	if err != nil {
		t.Fatal(err)
	}
	gen, err := generator.New(generator.DefaultConfig(), set, generator.WithRand(rng.New(7)))
	if err != nil {
		t.Fatal(err)
	}
	p := player.New(0)
	p.Depth = depth
	return gen.MustGenerate(p, 0), p
}

func TestRenderCavePlain(t *testing.T) {
	InitColors()
	l, p := testLevel(t, 3)

	var buf bytes.Buffer
	if err := RenderCave(&buf, l, p.Y, p.X, 0, true); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != l.Cave.Height {
		t.Fatalf("got %d lines, want %d", len(lines), l.Cave.Height)
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != l.Cave.Width {
			t.Fatalf("line %d is %d wide, want %d", i, n, l.Cave.Width)
		}
	}
	if !strings.ContainsRune(lines[p.Y], PlayerIcon) {
		t.Errorf("player missing from row %d", p.Y)
	}
}

func TestRenderCaveClipped(t *testing.T) {
	InitColors()
	l, p := testLevel(t, 3)

	var buf bytes.Buffer
	if err := RenderCave(&buf, l, p.Y, p.X, 40, true); err != nil {
		t.Fatal(err)
	}
	for i, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		if n := len([]rune(line)); n != 40 {
			t.Fatalf("line %d is %d wide, want 40", i, n)
		}
	}
	if !strings.ContainsRune(buf.String(), PlayerIcon) {
		t.Error("player clipped out of view")
	}
}

func TestObjectGlyph(t *testing.T) {
	tests := []struct {
		tval object.TVal
		want rune
	}{
		{object.TVGold, '$'},
		{object.TVArrow, '{'},
		{object.TVSword, '|'},
		{object.TVBoots, '['},
		{object.TVPotion, '!'},
		{object.TVMagicBook, '?'},
	}
	for _, tt := range tests {
		if got := objectGlyph(tt.tval); got != tt.want {
			t.Errorf("objectGlyph(%v) = %q, want %q", tt.tval, got, tt.want)
		}
	}
}

func TestFormatString(t *testing.T) {
	InitColors()
	got := FormatString("GT{%s} here", "Stairs")
	if !strings.Contains(got, "Stairs here") {
		t.Errorf("FormatString = %q", got)
	}
}

func TestTranslateKeepsPercent(t *testing.T) {
	if got := translate("50% lit"); got != "50% lit" {
		t.Errorf("translate = %q", got)
	}
}
