// Package data loads the static game data the level generator and object
// code consume: object kinds, artifacts, monster races, pit profiles, room
// templates and vault layouts. The default set is embedded in the binary.
package data

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

//go:embed *.toml
var embedded embed.FS

// Files lists the data files read by Load, in order.
var Files = []string{"objects.toml", "monsters.toml", "rooms.toml"}

// Kind describes one object kind.
type Kind struct {
	Name       string   `toml:"name"`
	TVal       string   `toml:"tval"`
	SVal       int      `toml:"sval"`
	Level      int      `toml:"level"`
	Cost       int      `toml:"cost"`
	Weight     int      `toml:"weight"`
	AllocProb  int      `toml:"alloc_prob"`
	AllocMin   int      `toml:"alloc_min"`
	AllocMax   int      `toml:"alloc_max"`
	DD         int      `toml:"dd"`
	DS         int      `toml:"ds"`
	AC         int      `toml:"ac"`
	ChargeBase int      `toml:"charge_base"`
	ChargeDice int      `toml:"charge_dice"`
	ChargeTime int      `toml:"charge_time"`
	Fuel       int      `toml:"fuel"`
	EasyKnow   bool     `toml:"easy_know"`
	Flags      []string `toml:"flags"`
}

// Artifact describes a unique object built on a base kind.
type Artifact struct {
	Name   string `toml:"name"`
	Base   string `toml:"base"`
	Level  int    `toml:"level"`
	Rarity int    `toml:"rarity"`
	Cost   int    `toml:"cost"`
	ToH    int    `toml:"to_h"`
	ToD    int    `toml:"to_d"`
	ToA    int    `toml:"to_a"`
}

// Race describes a monster race.
type Race struct {
	Name    string `toml:"name"`
	Glyph   string `toml:"glyph"`
	Base    string `toml:"base"`
	Level   int    `toml:"level"`
	Rarity  int    `toml:"rarity"`
	Power   int    `toml:"power"`
	Friends int    `toml:"friends"`
	Unique  bool   `toml:"unique"`
	Questor bool   `toml:"questor"`
}

// Pit describes the monster selection for a pit or nest room.
type Pit struct {
	Name      string   `toml:"name"`
	Room      string   `toml:"room"`
	Ave       int      `toml:"ave"`
	Rarity    int      `toml:"rarity"`
	ObjRarity int      `toml:"obj_rarity"`
	Bases     []string `toml:"bases"`
}

// Layout is a room template or vault: a block of text, one grid per rune.
type Layout struct {
	Name     string `toml:"name"`
	Type     string `toml:"type"`
	Rating   int    `toml:"rating"`
	MinLevel int    `toml:"min_level"`
	MaxLevel int    `toml:"max_level"`
	Doors    int    `toml:"doors"`
	Text     string `toml:"text"`

	Rows []string `toml:"-"`
}

// Height returns the number of rows in the layout.
func (l *Layout) Height() int { return len(l.Rows) }

// Width returns the number of columns in the layout.
func (l *Layout) Width() int {
	if len(l.Rows) == 0 {
		return 0
	}
	return len(l.Rows[0])
}

// Set is a complete collection of game data.
type Set struct {
	Kinds     []Kind     `toml:"kind"`
	Artifacts []Artifact `toml:"artifact"`
	Races     []Race     `toml:"race"`
	Pits      []Pit      `toml:"pit"`
	Layouts   []Layout   `toml:"layout"`
}

var (
	defaultOnce sync.Once
	defaultSet  *Set
	defaultErr  error
)

// Default returns the embedded data set, loading it on first use.
func Default() (*Set, error) {
	defaultOnce.Do(func() {
		defaultSet, defaultErr = Load(embedded)
	})
	return defaultSet, defaultErr
}

// MustDefault is like Default but panics if the embedded data is invalid.
func MustDefault() *Set {
	s, err := Default()
	if err != nil {
		panic(err)
	}
	return s
}

// Load reads every file in Files from fsys and merges them into one Set.
func Load(fsys fs.FS) (*Set, error) {
	set := &Set{}
	for _, name := range Files {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		var part Set
		if err := toml.Unmarshal(raw, &part); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s: %w", name, err)
		}
		set.Kinds = append(set.Kinds, part.Kinds...)
		set.Artifacts = append(set.Artifacts, part.Artifacts...)
		set.Races = append(set.Races, part.Races...)
		set.Pits = append(set.Pits, part.Pits...)
		set.Layouts = append(set.Layouts, part.Layouts...)
	}
	if err := set.prepare(); err != nil {
		return nil, err
	}
	return set, nil
}

func (s *Set) prepare() error {
	kinds := make(map[string]bool, len(s.Kinds))
	for _, k := range s.Kinds {
		if k.Name == "" || k.TVal == "" {
			return fmt.Errorf("object kind %q: missing name or tval", k.Name)
		}
		kinds[k.Name] = true
	}
	for _, a := range s.Artifacts {
		if !kinds[a.Base] {
			return fmt.Errorf("artifact %q: unknown base kind %q", a.Name, a.Base)
		}
	}
	for i := range s.Layouts {
		l := &s.Layouts[i]
		rows := strings.Split(strings.Trim(l.Text, "\n"), "\n")
		width := 0
		for _, r := range rows {
			width = max(width, len(r))
		}
		for j, r := range rows {
			if len(r) < width {
				rows[j] = r + strings.Repeat(" ", width-len(r))
			}
		}
		if len(rows) == 0 || width == 0 {
			return fmt.Errorf("layout %q: empty text", l.Name)
		}
		l.Rows = rows
	}
	return nil
}

// LayoutsOfType returns the layouts whose Type matches typ.
func (s *Set) LayoutsOfType(typ string) []*Layout {
	var out []*Layout
	for i := range s.Layouts {
		if s.Layouts[i].Type == typ {
			out = append(out, &s.Layouts[i])
		}
	}
	return out
}

// PitsOfRoom returns the pit profiles for the given room kind ("pit" or "nest").
func (s *Set) PitsOfRoom(room string) []*Pit {
	var out []*Pit
	for i := range s.Pits {
		if s.Pits[i].Room == room {
			out = append(out, &s.Pits[i])
		}
	}
	return out
}
