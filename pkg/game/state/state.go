// Package state holds one running game: the player, the current level and
// the message log the rest of the game writes to.
package state

import (
	"cavegen/pkg/game/generator"
	"cavegen/pkg/game/player"
	"cavegen/pkg/game/quest"
)

// Game represents the game state
type Game struct {
	Player *player.Player
	Level  *generator.Level
	Turn   int64

	Messages []string

	gen *generator.Generator
}

// NewGame creates a new game for p, building levels with gen
func NewGame(gen *generator.Generator, p *player.Player) *Game {
	g := &Game{
		Player:   p,
		Messages: make([]string, 0),
		gen:      gen,
	}
	p.SetNotifier(g.AddMessage)
	return g
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// Quests returns the quests of this game.
func (g *Game) Quests() *quest.Log {
	return g.gen.Quests()
}

// NewLevel throws away the current level and generates one for the
// player's depth.
func (g *Game) NewLevel() error {
	if g.Level != nil {
		g.Level.Discard()
		g.Level = nil
	}
	l, err := g.gen.Generate(g.Player, g.Turn)
	if err != nil {
		return err
	}
	l.Objects.SetNotifier(g.AddMessage)
	g.Level = l
	g.AddMessage(g.Feeling())
	return nil
}

// ChangeDepth moves the player to depth and builds the level there.
func (g *Game) ChangeDepth(depth int) error {
	g.Player.Depth = depth
	g.Player.MaxDepth = max(g.Player.MaxDepth, depth)
	return g.NewLevel()
}

// Descend takes the player one level down, if the quests allow it.
func (g *Game) Descend() (bool, error) {
	next := g.Quests().NextDepth(g.Player.Depth)
	if next == 0 {
		return false, nil
	}
	return true, g.ChangeDepth(next)
}

// compactSlack is how close the object list may come to its limit before
// room is made.
const compactSlack = 32

// EndTurn advances the game clock. A crowded object list is compacted and
// a sparse one defragmented.
func (g *Game) EndTurn() {
	g.Turn++
	if g.Level == nil {
		return
	}
	objs := g.Level.Objects
	switch {
	case objs.Count()+compactSlack > objs.Limit():
		objs.Compact(2*compactSlack, g.Player.Y, g.Player.X)
	case objs.Count()+compactSlack < objs.Max():
		objs.Compact(0, g.Player.Y, g.Player.X)
	}
}

// Feeling describes the current level. The treasure half is only told once
// the player has walked enough feeling squares.
func (g *Game) Feeling() string {
	if g.Level == nil {
		return ""
	}
	c := g.Level.Cave
	known := c.FeelingSquares >= generator.FeelingNeed
	return generator.FeelingText(c.Depth, g.Level.ObjFeeling, g.Level.MonFeeling, known)
}
