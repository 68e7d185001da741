package encode

import (
	"strings"

	"github.com/fatih/color"

	"github.com/frenchy64/quotefold/form"
)

type Colorable struct {
	Type form.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	ValueColor ColorAttr = iota
	DelimColor
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
	for _, t := range form.Types() {
		able := Colorable{
			Type: t,
			Attr: DelimColor,
		}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = form.NumberType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = form.NilType
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Type = form.BoolType
	colors.Map[able] = color.CyanString

	able.Type = form.StringType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Type = form.CharType
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()

	able.Type = form.KeywordType
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()

	able.Type = form.SymbolType
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()

	able.Attr = DelimColor
	able.Type = form.UnquoteType
	colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()
	able.Type = form.SpliceType
	colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t form.Type, a ColorAttr, s string) string {
	res := c.Get(t, a)(s)
	return res
}

func (c *Colors) Get(t form.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
