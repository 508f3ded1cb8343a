package renderer

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"cavegen/pkg/engine/world"
	"cavegen/pkg/game/generator"
	"cavegen/pkg/game/object"
)

// Icon constants
const (
	PlayerIcon = '@'
	IconTrap   = '^'
	IconPile   = '&'
	IconVoid   = ' '
)

var (
	ColorWall     color.Style
	ColorPerm     color.Style
	ColorFloor    color.Style
	ColorLit      color.Style
	ColorDoor     color.Style
	ColorStair    color.Style
	ColorShop     color.Style
	ColorMineral  color.Style
	ColorTreasure color.Style
	ColorTrap     color.Style
	ColorItem     color.Style
	ColorMonster  color.Style
	ColorPlayer   color.Style
	ColorSubtle   color.Style
	ColorAction   color.Style

	regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:'.!-]+)}`)
)

// InitColors initializes the color styles
func InitColors() {
	ColorWall = color.Style{color.FgWhite}
	ColorPerm = color.Style{color.FgGray}
	ColorFloor = color.Style{color.FgGray}
	ColorLit = color.Style{color.FgWhite}
	ColorDoor = color.Style{color.FgYellow}
	ColorStair = color.Style{color.FgWhite, color.OpBold}
	ColorShop = color.Style{color.FgCyan, color.OpBold}
	ColorMineral = color.Style{color.FgGray}
	ColorTreasure = color.Style{color.FgYellow, color.OpBold}
	ColorTrap = color.Style{color.FgRed}
	ColorItem = color.Style{color.FgGreen, color.OpBold}
	ColorMonster = color.Style{color.FgRed, color.OpBold}
	ColorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	ColorSubtle = color.Style{color.FgGray, color.OpBold}
	ColorAction = color.Style{color.FgMagenta}
}

// FormatString formats a string with special markup: GT{text} is
// translated, ITEM{name} and FEAT{name} are highlighted.
func FormatString(msg string, a ...any) string {
	ret := fmt.Sprintf(msg, a...)

	for _, match := range regexpStringFunctions.FindAllStringSubmatch(ret, -1) {
		function := match[1]
		operand := match[2]

		var val string
		switch function {
		case "GT":
			val = translate(operand)
		case "ITEM":
			val = ColorItem.Sprint(operand)
		case "FEAT":
			val = ColorSubtle.Sprint(translate(operand))
		case "ACTION":
			val = ColorAction.Sprint(operand)
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// translate looks up markup text, which is never a format.
func translate(key string) string {
	return gotext.Get(key, []any{}...)
}

// PrintString prints a formatted string
func PrintString(w io.Writer, msg string, a ...any) {
	fmt.Fprint(w, FormatString(msg, a...))
}

// objectGlyph picks the symbol for an object category.
func objectGlyph(t object.TVal) rune {
	switch {
	case t.IsMoney():
		return '$'
	case t.IsAmmo():
		return '{'
	case t == object.TVBow:
		return '}'
	case t == object.TVDigging:
		return '\\'
	case t.IsWeapon():
		return '|'
	case t.IsArmour():
		return '['
	case t.IsLight():
		return '~'
	case t == object.TVAmulet:
		return '"'
	case t == object.TVRing:
		return '='
	case t == object.TVStaff:
		return '_'
	case t == object.TVWand, t == object.TVRod:
		return '-'
	case t == object.TVScroll, t.IsBook():
		return '?'
	case t == object.TVPotion, t == object.TVFlask:
		return '!'
	case t == object.TVFood:
		return ','
	case t.IsChest():
		return '~'
	}
	return '*'
}

// featStyle returns the style a terrain feature is drawn in.
func featStyle(c *world.Cave, y, x int) color.Style {
	f := c.Feat(y, x)
	switch {
	case f.IsShop():
		return ColorShop
	case f.IsStair():
		return ColorStair
	case f.IsDoor() && !f.IsWall():
		return ColorDoor
	case f.Has(world.FFTreasure):
		return ColorTreasure
	case f.Has(world.FFMagma), f.Has(world.FFQuartz):
		return ColorMineral
	case f.IsPerm():
		return ColorPerm
	case f.IsWall(), f.IsRubble():
		return ColorWall
	case c.Has(y, x, world.SquareGlow):
		return ColorLit
	}
	return ColorFloor
}

// Glyph returns the symbol and style of one grid of the level, with the
// player standing at (py, px).
func Glyph(l *generator.Level, py, px, y, x int) (rune, color.Style) {
	c := l.Cave
	if !c.InBounds(y, x) {
		return IconVoid, ColorFloor
	}
	if y == py && x == px {
		return PlayerIcon, ColorPlayer
	}
	if m := l.Monsters.Get(c.MonsterIdx(y, x)); m != nil {
		return m.Race.Glyph, ColorMonster
	}
	if o := l.Objects.Get(c.ObjectIdx(y, x)); o != nil {
		if o.Next != 0 {
			return IconPile, ColorItem
		}
		return objectGlyph(o.Kind.TVal), ColorItem
	}
	if c.Has(y, x, world.SquareTrap) {
		return IconTrap, ColorTrap
	}
	return c.Feat(y, x).Glyph(), featStyle(c, y, x)
}

// RenderCave writes the level to w, one line per row, at most cols columns
// wide and centred on the player. Colour is left out when plain is set.
func RenderCave(w io.Writer, l *generator.Level, py, px, cols int, plain bool) error {
	c := l.Cave
	if cols <= 0 || cols > c.Width {
		cols = c.Width
	}
	x0 := min(max(px-cols/2, 0), c.Width-cols)

	var sb strings.Builder
	for y := 0; y < c.Height; y++ {
		sb.Reset()
		for x := x0; x < x0+cols; x++ {
			ch, style := Glyph(l, py, px, y, x)
			if plain {
				sb.WriteRune(ch)
			} else {
				sb.WriteString(style.Sprint(string(ch)))
			}
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}
