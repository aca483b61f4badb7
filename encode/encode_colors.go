package encode

import (
	"strings"

	"github.com/fatih/color"
	"github.com/signadot/keepconf/node"
)

type Colorable struct {
	Type node.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	CommentColor ColorAttr = iota
	KeyColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	sep := color.RGB(255, 0, 196).SprintfFunc()
	for t := node.NoType; t <= node.StringType; t++ {
		colors.Map[Colorable{Type: t, Attr: CommentColor}] = color.BlueString
		colors.Map[Colorable{Type: t, Attr: SepColor}] = sep
		colors.Map[Colorable{Type: t, Attr: KeyColor}] = color.RGB(196, 96, 16).SprintfFunc()
	}
	colors.Map[Colorable{Type: node.NoType, Attr: KeyColor}] = color.RGB(128, 168, 196).SprintfFunc()

	able := Colorable{Attr: ValueColor}
	for _, t := range []node.Type{node.IntType, node.LongType, node.DecimalType, node.FloatType} {
		able.Type = t
		colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	}
	able.Type = node.BoolType
	colors.Map[able] = color.CyanString
	able.Type = node.SymbolType
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
	able.Type = node.StringType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t node.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t node.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
