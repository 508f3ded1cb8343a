// Package quest defines the fixed quest levels of the dungeon: the depths
// where a questor monster waits and must be killed before the player can go
// deeper. The generator asks it whether a depth is a quest level.
package quest

import (
	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"
)

// MaxDepth is the deepest level of the dungeon.
const MaxDepth = 128

// Quest is one questor monster and the depth it guards.
type Quest struct {
	Name  string // Short name, used as the completion key
	Race  string // Race name in the monster data
	Depth int
}

// Defaults are the two quests every game starts with.
var Defaults = []Quest{
	{Name: "Sauron", Race: "Sauron, the Sorcerer", Depth: 99},
	{Name: "Morgoth", Race: "Morgoth, Lord of Darkness", Depth: 100},
}

// Log tracks which quests are still open.
type Log struct {
	quests []Quest
	done   mapset.Set[string]
}

// New returns a log with every quest in qs open.
func New(qs []Quest) *Log {
	return &Log{
		quests: append([]Quest(nil), qs...),
		done:   mapset.New[string](),
	}
}

// IsQuest reports whether an open quest waits at depth.
func (l *Log) IsQuest(depth int) bool {
	if depth <= 0 {
		return false
	}
	for _, q := range l.quests {
		if q.Depth == depth && !l.done.Has(q.Name) {
			return true
		}
	}
	return false
}

// At returns the open quests at depth.
func (l *Log) At(depth int) []Quest {
	var out []Quest
	for _, q := range l.quests {
		if q.Depth == depth && !l.done.Has(q.Name) {
			out = append(out, q)
		}
	}
	return out
}

// Complete marks the named quest as done.
func (l *Log) Complete(name string) {
	l.done.Put(name)
}

// CompleteRace marks the quest for the given race as done, if there is one.
// It reports whether a quest was completed.
func (l *Log) CompleteRace(race string) bool {
	for _, q := range l.quests {
		if q.Race == race && !l.done.Has(q.Name) {
			l.done.Put(q.Name)
			return true
		}
	}
	return false
}

// Completed reports whether the named quest is done.
func (l *Log) Completed(name string) bool { return l.done.Has(name) }

// Remaining returns the number of open quests.
func (l *Log) Remaining() int { return len(l.quests) - l.done.Size() }

// NextDepth returns the depth below depth, or 0 when the player may not go
// deeper: at the bottom, or standing on an open quest level.
func (l *Log) NextDepth(depth int) int {
	if depth < 0 || depth >= MaxDepth || l.IsQuest(depth) {
		return 0
	}
	return depth + 1
}

// DepthText describes the region of the dungeon a depth lies in.
func DepthText(depth int) string {
	switch {
	case depth <= 0:
		return gotext.Get("the town")
	case depth < 10:
		return gotext.Get("the upper dungeon")
	case depth < 40:
		return gotext.Get("the middle depths")
	case depth < 99:
		return gotext.Get("the deep places")
	default:
		return gotext.Get("the pits of Angband")
	}
}
