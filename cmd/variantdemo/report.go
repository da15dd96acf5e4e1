package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/variant"
	"github.com/wippyai/variant/schema"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB")).
			Width(8)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	discStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// report is everything the demo shows about one container state.
type report struct {
	Echo   string
	Tag    variant.Tag
	Area   float64
	Layout variant.Layout
	WIT    string
	Bytes  []byte
}

func inspect(a *arena, s *Shape) (report, error) {
	r := report{
		Echo:   describe(s),
		Tag:    s.Tag(),
		Layout: s.Layout(),
	}
	if !s.IsEmpty() {
		r.Area = area(s)
	}

	desc, err := schema.Describe(s, "shape")
	if err != nil {
		return r, err
	}
	r.WIT = witVariant(desc)

	if r.Bytes, err = a.lower(s); err != nil {
		return r, err
	}
	return r, nil
}

func (r report) render(w io.Writer) {
	row := func(label, value string) {
		fmt.Fprintln(w, labelStyle.Render(label)+valueStyle.Render(value))
	}

	fmt.Fprintln(w, titleStyle.Render("Variant")+" "+r.Echo)
	fmt.Fprintln(w)
	row("tag", r.Tag.String())
	if r.Tag != variant.Empty {
		row("area", fmt.Sprintf("%.4f", r.Area))
	}
	row("layout", r.Layout.String())
	row("wit", r.WIT)
	fmt.Fprintln(w, labelStyle.Render("memory")+hexdump(r.Bytes, r.Layout))
}

// hexdump prints bytes in groups of eight, highlighting the discriminant.
func hexdump(b []byte, l variant.Layout) string {
	var sb strings.Builder
	for i, c := range b {
		if i > 0 {
			if i%8 == 0 {
				sb.WriteString("  ")
			} else {
				sb.WriteByte(' ')
			}
		}
		cell := fmt.Sprintf("%02x", c)
		if uint32(i) >= l.DiscOffset && uint32(i) < l.DiscOffset+l.DiscSize {
			cell = discStyle.Render(cell)
		}
		sb.WriteString(cell)
	}
	return sb.String()
}

func witVariant(v *schema.Variant) string {
	def := v.Def.Kind.(*wit.Variant)
	cases := make([]string, len(def.Cases))
	for i, c := range def.Cases {
		cases[i] = c.Name
		if c.Type != nil {
			cases[i] += "(" + witTypeStr(c.Type) + ")"
		}
	}
	name := ""
	if v.Def.Name != nil {
		name = *v.Def.Name + " "
	}
	return "variant " + name + "{ " + strings.Join(cases, ", ") + " }"
}

func witTypeStr(t wit.Type) string {
	switch v := t.(type) {
	case wit.Bool:
		return "bool"
	case wit.U8:
		return "u8"
	case wit.S8:
		return "s8"
	case wit.U16:
		return "u16"
	case wit.S16:
		return "s16"
	case wit.U32:
		return "u32"
	case wit.S32:
		return "s32"
	case wit.U64:
		return "u64"
	case wit.S64:
		return "s64"
	case wit.F32:
		return "f32"
	case wit.F64:
		return "f64"
	case wit.String:
		return "string"
	case *wit.TypeDef:
		if v.Name != nil {
			return *v.Name
		}
		switch k := v.Kind.(type) {
		case *wit.List:
			return "list<" + witTypeStr(k.Type) + ">"
		case *wit.Option:
			return "option<" + witTypeStr(k.Type) + ">"
		case *wit.Tuple:
			elems := make([]string, len(k.Types))
			for i, e := range k.Types {
				elems[i] = witTypeStr(e)
			}
			return "tuple<" + strings.Join(elems, ", ") + ">"
		}
		return "typedef"
	default:
		return fmt.Sprintf("%T", t)
	}
}
