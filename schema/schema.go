package schema

import (
	"reflect"
	"slices"
	"strings"
	"unicode"

	"github.com/puzpuzpuz/xsync/v3"
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/variant"
	"github.com/wippyai/variant/errors"
	"github.com/wippyai/variant/internal/layout"
)

// Layout is the canonical ABI layout of a described variant.
type Layout struct {
	Size          uint32
	Align         uint32
	PayloadOffset uint32
}

// Variant is the WIT description of a container instantiation. Def is
// shared between calls and must not be modified.
type Variant struct {
	Def    *wit.TypeDef
	Cases  []string
	Layout Layout
}

// Enumerated is implemented by integer types that map to a WIT enum. The
// value i names case Cases()[i].
type Enumerated interface {
	Cases() []string
}

// FlagSet is implemented by unsigned integer types that map to WIT flags.
// Bit i names flag Flags()[i].
type FlagSet interface {
	Flags() []string
}

type describeKey struct {
	container reflect.Type
	name      string
}

var (
	canon    = layout.NewCanonical()
	defs     = xsync.NewMapOf[reflect.Type, wit.Type]()
	variants = xsync.NewMapOf[describeKey, *Variant]()
)

// Describe returns the WIT variant for the alternatives of v. The variant
// is named after the container's first alternative unless name is given.
func Describe(v variant.Container, name ...string) (*Variant, error) {
	key := describeKey{container: reflect.TypeOf(v)}
	if len(name) > 0 {
		key.name = name[0]
	}
	if d, ok := variants.Load(key); ok {
		return d.copy(), nil
	}

	d, err := describe(v.Types(), key.name)
	if err != nil {
		return nil, err
	}
	d, _ = variants.LoadOrStore(key, d)
	return d.copy(), nil
}

func (d *Variant) copy() *Variant {
	c := *d
	c.Cases = slices.Clone(d.Cases)
	return &c
}

func describe(types []reflect.Type, name string) (*Variant, error) {
	cases := make([]wit.Case, len(types))
	names := make([]string, len(types))

	for i, t := range types {
		names[i] = Kebab(t.Name())
		if names[i] == "" {
			return nil, errors.Unsupported(errors.PhaseSchema, t.String(), "alternative has no type name")
		}
		cases[i].Name = names[i]

		if t.Kind() == reflect.Struct && len(describedFields(t)) == 0 {
			continue
		}
		typ, err := new(walker).typeOf(t, []string{names[i]})
		if err != nil {
			return nil, err
		}
		cases[i].Type = typ
	}

	if dup := duplicate(names); dup != "" {
		return nil, errors.New(errors.PhaseSchema, errors.KindInvalidInput).
			Path(dup).
			Detail("two alternatives map to case %q", dup).
			Build()
	}

	if name == "" {
		name = names[0]
	}
	def := &wit.TypeDef{
		Name: &name,
		Kind: &wit.Variant{Cases: cases},
	}

	info := canon.Of(def)
	return &Variant{
		Def:   def,
		Cases: names,
		Layout: Layout{
			Size:          info.Size,
			Align:         info.Align,
			PayloadOffset: info.PayloadOffset,
		},
	}, nil
}

// TypeOf maps a Go type to its WIT counterpart. Named types map to the
// same definition on every call.
func TypeOf(t reflect.Type) (wit.Type, error) {
	if t == nil {
		return nil, errors.InvalidInput(errors.PhaseSchema, "nil type")
	}
	return new(walker).typeOf(t, nil)
}

// walker maps one type graph, rejecting types that contain themselves.
type walker struct {
	active []reflect.Type
}

func (w *walker) typeOf(t reflect.Type, path []string) (wit.Type, error) {
	if cached, ok := defs.Load(t); ok {
		return cached, nil
	}
	if slices.Contains(w.active, t) {
		return nil, errors.New(errors.PhaseSchema, errors.KindUnsupported).
			Want(t.String()).
			Path(path...).
			Detail("recursive type").
			Build()
	}
	w.active = append(w.active, t)
	defer func() { w.active = w.active[:len(w.active)-1] }()

	typ, err := w.kind(t, path)
	if err != nil {
		return nil, err
	}
	if named(t) {
		typ, _ = defs.LoadOrStore(t, typ)
	}
	return typ, nil
}

func (w *walker) kind(t reflect.Type, path []string) (wit.Type, error) {
	if named(t) {
		if e, ok := reflect.Zero(t).Interface().(Enumerated); ok && isInteger(t) {
			return enum(t, e.Cases())
		}
		if f, ok := reflect.Zero(t).Interface().(FlagSet); ok && isUnsigned(t) {
			return flagSet(t, f.Flags())
		}
	}

	switch t.Kind() {
	case reflect.Slice:
		elem, err := w.typeOf(t.Elem(), sub(path, "[elem]"))
		if err != nil {
			return nil, err
		}
		return &wit.TypeDef{Kind: &wit.List{Type: elem}}, nil
	case reflect.Array:
		return w.tuple(t, path)
	case reflect.Pointer:
		elem, err := w.typeOf(t.Elem(), sub(path, "[some]"))
		if err != nil {
			return nil, err
		}
		return &wit.TypeDef{Kind: &wit.Option{Type: elem}}, nil
	case reflect.Struct:
		return w.record(t, path)
	}

	prim, ok := primitive(t.Kind())
	if !ok {
		return nil, errors.New(errors.PhaseSchema, errors.KindUnsupported).
			Want(t.String()).
			Path(path...).
			Detail("%s has no WIT counterpart", t.Kind()).
			Build()
	}
	if named(t) {
		n := Kebab(t.Name())
		return &wit.TypeDef{Name: &n, Kind: prim}, nil
	}
	return prim, nil
}

func primitive(k reflect.Kind) (wit.Type, bool) {
	switch k {
	case reflect.Bool:
		return wit.Bool{}, true
	case reflect.Int8:
		return wit.S8{}, true
	case reflect.Int16:
		return wit.S16{}, true
	case reflect.Int32:
		return wit.S32{}, true
	case reflect.Int64, reflect.Int:
		return wit.S64{}, true
	case reflect.Uint8:
		return wit.U8{}, true
	case reflect.Uint16:
		return wit.U16{}, true
	case reflect.Uint32:
		return wit.U32{}, true
	case reflect.Uint64, reflect.Uint:
		return wit.U64{}, true
	case reflect.Float32:
		return wit.F32{}, true
	case reflect.Float64:
		return wit.F64{}, true
	case reflect.String:
		return wit.String{}, true
	}
	return nil, false
}

// named reports whether t is a defined type outside the predeclared ones.
func named(t reflect.Type) bool {
	return t.Name() != "" && t.PkgPath() != ""
}

func isInteger(t reflect.Type) bool {
	return t.Kind() >= reflect.Int && t.Kind() <= reflect.Uint64
}

func isUnsigned(t reflect.Type) bool {
	return t.Kind() >= reflect.Uint && t.Kind() <= reflect.Uint64
}

func sub(path []string, elem string) []string {
	return append(path[:len(path):len(path)], elem)
}

func enum(t reflect.Type, names []string) (wit.Type, error) {
	if len(names) == 0 {
		return nil, errors.Unsupported(errors.PhaseSchema, t.String(), "enum without cases")
	}
	cases := make([]wit.EnumCase, len(names))
	for i, n := range names {
		cases[i].Name = n
	}
	n := Kebab(t.Name())
	return &wit.TypeDef{Name: &n, Kind: &wit.Enum{Cases: cases}}, nil
}

func flagSet(t reflect.Type, names []string) (wit.Type, error) {
	if len(names) == 0 || len(names) > t.Bits() {
		return nil, errors.New(errors.PhaseSchema, errors.KindUnsupported).
			Want(t.String()).
			Detail("%d flags do not fit %d bits", len(names), t.Bits()).
			Build()
	}
	flags := make([]wit.Flag, len(names))
	for i, n := range names {
		flags[i].Name = n
	}
	n := Kebab(t.Name())
	return &wit.TypeDef{Name: &n, Kind: &wit.Flags{Flags: flags}}, nil
}

func (w *walker) tuple(t reflect.Type, path []string) (wit.Type, error) {
	if t.Len() == 0 {
		return nil, errors.Unsupported(errors.PhaseSchema, t.String(), "empty array")
	}
	elem, err := w.typeOf(t.Elem(), sub(path, "[elem]"))
	if err != nil {
		return nil, err
	}
	types := make([]wit.Type, t.Len())
	for i := range types {
		types[i] = elem
	}
	return &wit.TypeDef{Kind: &wit.Tuple{Types: types}}, nil
}

func (w *walker) record(t reflect.Type, path []string) (wit.Type, error) {
	described := describedFields(t)
	if len(described) == 0 {
		return nil, errors.Unsupported(errors.PhaseSchema, t.String(), "record without fields")
	}

	fields := make([]wit.Field, 0, len(described))
	for _, f := range described {
		name := fieldName(f)
		typ, err := w.typeOf(f.Type, sub(path, name))
		if err != nil {
			return nil, err
		}
		fields = append(fields, wit.Field{Name: name, Type: typ})
	}

	def := &wit.TypeDef{Kind: &wit.Record{Fields: fields}}
	if n := Kebab(t.Name()); n != "" {
		def.Name = &n
	}
	return def, nil
}

func describedFields(t reflect.Type) []reflect.StructField {
	var fields []reflect.StructField
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() || f.Tag.Get("wit") == "-" {
			continue
		}
		fields = append(fields, f)
	}
	return fields
}

func fieldName(f reflect.StructField) string {
	if tag := f.Tag.Get("wit"); tag != "" {
		return tag
	}
	return Kebab(f.Name)
}

func duplicate(names []string) string {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			return n
		}
		seen[n] = struct{}{}
	}
	return ""
}

// Kebab converts a Go identifier to a WIT identifier. Runs of capitals
// stay together: "XMLParser" becomes "xml-parser".
func Kebab(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (!unicode.IsUpper(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		if r == '_' {
			b.WriteByte('-')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
