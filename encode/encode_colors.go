package encode

import (
	"github.com/axfmt/jsondoc/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind ir.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
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
	for _, k := range ir.Kinds() {
		colors.Map[Colorable{Kind: k, Attr: SepColor}] = color.RGB(255, 0, 196).SprintfFunc()
	}
	colors.Map[Colorable{Kind: ir.ObjectKind, Attr: FieldColor}] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[Colorable{Kind: ir.LeafKind, Attr: ValueColor}] = color.RGB(128, 216, 236).SprintfFunc()
	return colors
}

func colorDefault(s string, args ...any) string {
	return color.WhiteString(s, args...)
}

func (c *Colors) Color(kind ir.Kind, attr ColorAttr, s string) string {
	f := c.Map[Colorable{Kind: kind, Attr: attr}]
	if f == nil {
		f = c.Default
	}
	return f("%s", s)
}
