package schema_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/variant"
	"github.com/wippyai/variant/errors"
	"github.com/wippyai/variant/schema"
)

type Point struct{ X, Y int32 }

func (p Point) Echo() string { return "point" }
func (p Point) Clone() Point { return p }

type HTTPStatus struct {
	Code   uint16
	Reason string `wit:"message"`
	Cache  []byte `wit:"-"`
	hidden int
}

func (s HTTPStatus) Echo() string { return s.Reason }
func (s HTTPStatus) Clone() HTTPStatus { return s }

type Idle struct{}

func (Idle) Echo() string { return "idle" }
func (i Idle) Clone() Idle { return i }

type Callback struct{ Fn func() }

type Color uint8

func (Color) Cases() []string { return []string{"red", "green", "blue"} }

type Perm uint8

func (Perm) Flags() []string { return []string{"read", "write", "exec"} }

type Wide uint8

func (Wide) Flags() []string {
	return []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}
}

type Celsius float64

type Node struct {
	Value int32
	Next  *Node
}

func (Callback) Echo() string { return "callback" }
func (c Callback) Clone() Callback { return c }

type Reading struct {
	Temp  Celsius
	Unit  Color
	Perms Perm
	Prev  *int32
	Hist  [2]uint8
}

func (Reading) Echo() string { return "reading" }
func (r Reading) Clone() Reading { return r }

func TestTypeOf(t *testing.T) {
	tests := []struct {
		in   reflect.Type
		want wit.Type
	}{
		{reflect.TypeFor[bool](), wit.Bool{}},
		{reflect.TypeFor[int8](), wit.S8{}},
		{reflect.TypeFor[int16](), wit.S16{}},
		{reflect.TypeFor[int32](), wit.S32{}},
		{reflect.TypeFor[int](), wit.S64{}},
		{reflect.TypeFor[uint8](), wit.U8{}},
		{reflect.TypeFor[uint32](), wit.U32{}},
		{reflect.TypeFor[uint](), wit.U64{}},
		{reflect.TypeFor[float32](), wit.F32{}},
		{reflect.TypeFor[float64](), wit.F64{}},
		{reflect.TypeFor[string](), wit.String{}},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			got, err := schema.TypeOf(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTypeOfList(t *testing.T) {
	got, err := schema.TypeOf(reflect.TypeFor[[]uint16]())
	require.NoError(t, err)

	def, ok := got.(*wit.TypeDef)
	require.True(t, ok)
	list, ok := def.Kind.(*wit.List)
	require.True(t, ok)
	assert.Equal(t, wit.U16{}, list.Type)
}

func TestTypeOfRecord(t *testing.T) {
	got, err := schema.TypeOf(reflect.TypeFor[HTTPStatus]())
	require.NoError(t, err)

	def := got.(*wit.TypeDef)
	require.NotNil(t, def.Name)
	assert.Equal(t, "http-status", *def.Name)

	rec, ok := def.Kind.(*wit.Record)
	require.True(t, ok)
	require.Len(t, rec.Fields, 2)
	assert.Equal(t, "code", rec.Fields[0].Name)
	assert.Equal(t, wit.U16{}, rec.Fields[0].Type)
	assert.Equal(t, "message", rec.Fields[1].Name)
	assert.Equal(t, wit.String{}, rec.Fields[1].Type)
}

func TestTypeOfUnsupported(t *testing.T) {
	tests := []reflect.Type{
		reflect.TypeFor[map[string]int](),
		reflect.TypeFor[chan int](),
		reflect.TypeFor[any](),
		reflect.TypeFor[[0]byte](),
		reflect.TypeFor[*func()](),
		reflect.TypeFor[Callback](),
		reflect.TypeFor[[]func()](),
		reflect.TypeFor[Node](),
		reflect.TypeFor[Wide](),
	}

	for _, in := range tests {
		t.Run(in.String(), func(t *testing.T) {
			_, err := schema.TypeOf(in)
			assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseSchema, Kind: errors.KindUnsupported})
		})
	}

	_, err := schema.TypeOf(nil)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseSchema, Kind: errors.KindInvalidInput})
}

func TestTypeOfTuple(t *testing.T) {
	got, err := schema.TypeOf(reflect.TypeFor[[3]uint16]())
	require.NoError(t, err)

	tuple, ok := got.(*wit.TypeDef).Kind.(*wit.Tuple)
	require.True(t, ok)
	assert.Equal(t, []wit.Type{wit.U16{}, wit.U16{}, wit.U16{}}, tuple.Types)
}

func TestTypeOfOption(t *testing.T) {
	got, err := schema.TypeOf(reflect.TypeFor[*Point]())
	require.NoError(t, err)

	opt, ok := got.(*wit.TypeDef).Kind.(*wit.Option)
	require.True(t, ok)
	def := opt.Type.(*wit.TypeDef)
	require.NotNil(t, def.Name)
	assert.Equal(t, "point", *def.Name)
}

func TestTypeOfEnumAndFlags(t *testing.T) {
	got, err := schema.TypeOf(reflect.TypeFor[Color]())
	require.NoError(t, err)
	def := got.(*wit.TypeDef)
	assert.Equal(t, "color", *def.Name)
	enum, ok := def.Kind.(*wit.Enum)
	require.True(t, ok)
	require.Len(t, enum.Cases, 3)
	assert.Equal(t, "blue", enum.Cases[2].Name)

	got, err = schema.TypeOf(reflect.TypeFor[Perm]())
	require.NoError(t, err)
	def = got.(*wit.TypeDef)
	assert.Equal(t, "perm", *def.Name)
	flags, ok := def.Kind.(*wit.Flags)
	require.True(t, ok)
	require.Len(t, flags.Flags, 3)
	assert.Equal(t, "write", flags.Flags[1].Name)
}

func TestTypeOfNamedPrimitive(t *testing.T) {
	got, err := schema.TypeOf(reflect.TypeFor[Celsius]())
	require.NoError(t, err)

	def := got.(*wit.TypeDef)
	require.NotNil(t, def.Name)
	assert.Equal(t, "celsius", *def.Name)
	assert.Equal(t, wit.F64{}, def.Kind)
}

func TestTypeOfReusesDefinitions(t *testing.T) {
	a, err := schema.TypeOf(reflect.TypeFor[HTTPStatus]())
	require.NoError(t, err)
	b, err := schema.TypeOf(reflect.TypeFor[HTTPStatus]())
	require.NoError(t, err)
	assert.Same(t, a, b)

	list, err := schema.TypeOf(reflect.TypeFor[[]HTTPStatus]())
	require.NoError(t, err)
	assert.Same(t, a, list.(*wit.TypeDef).Kind.(*wit.List).Type)
}

func TestRecursiveTypePath(t *testing.T) {
	_, err := schema.TypeOf(reflect.TypeFor[Node]())
	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, []string{"next", "[some]"}, e.Path)
}

func TestUnsupportedFieldPath(t *testing.T) {
	_, err := schema.TypeOf(reflect.TypeFor[Callback]())
	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, []string{"fn"}, e.Path)
}

func TestDescribe(t *testing.T) {
	v := variant.V3Of0[Point, HTTPStatus, Idle](Point{})

	desc, err := schema.Describe(v, "event")
	require.NoError(t, err)

	assert.Equal(t, []string{"point", "http-status", "idle"}, desc.Cases)
	require.NotNil(t, desc.Def.Name)
	assert.Equal(t, "event", *desc.Def.Name)

	vt, ok := desc.Def.Kind.(*wit.Variant)
	require.True(t, ok)
	require.Len(t, vt.Cases, 3)
	assert.NotNil(t, vt.Cases[0].Type)
	assert.NotNil(t, vt.Cases[1].Type)
	assert.Nil(t, vt.Cases[2].Type, "field-less alternative has no payload")

	// http-status record {u16, string} is the largest payload: size 12, align 4
	assert.Equal(t, schema.Layout{Size: 16, Align: 4, PayloadOffset: 4}, desc.Layout)
}

func TestDescribeIsMemoised(t *testing.T) {
	v := variant.V2Of0[Point, HTTPStatus](Point{})

	a, err := schema.Describe(v, "reply")
	require.NoError(t, err)
	a.Cases[0] = "changed"

	b, err := schema.Describe(variant.V2Of1[Point, HTTPStatus](HTTPStatus{}), "reply")
	require.NoError(t, err)
	assert.Same(t, a.Def, b.Def)
	assert.Equal(t, []string{"point", "http-status"}, b.Cases)
	assert.Equal(t, a.Layout, b.Layout)

	c, err := schema.Describe(v, "other")
	require.NoError(t, err)
	assert.NotSame(t, a.Def, c.Def)
	assert.Equal(t, "other", *c.Def.Name)
}

func TestDescribeRichPayloads(t *testing.T) {
	v := variant.V2Of0[Reading, Idle](Reading{})

	desc, err := schema.Describe(v)
	require.NoError(t, err)

	// reading is f64@0, enum@8, flags@9, option<s32>@12, tuple<u8, u8>@20: size 24, align 8
	assert.Equal(t, schema.Layout{Size: 32, Align: 8, PayloadOffset: 8}, desc.Layout)
}

func TestDescribeDefaultName(t *testing.T) {
	v := variant.V2Of1[Point, Idle](Idle{})

	desc, err := schema.Describe(v)
	require.NoError(t, err)
	assert.Equal(t, "point", *desc.Def.Name)
	assert.Equal(t, schema.Layout{Size: 12, Align: 4, PayloadOffset: 4}, desc.Layout)
}

func TestDescribeUnsupportedAlternative(t *testing.T) {
	v := variant.V2Of0[Point, Callback](Point{})

	_, err := schema.Describe(v)
	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errors.KindUnsupported, e.Kind)
	assert.Equal(t, []string{"callback", "fn"}, e.Path)
}

func TestKebab(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"FirstName", "first-name"},
		{"ID", "id"},
		{"XMLParser", "xml-parser"},
		{"simple", "simple"},
		{"HTTPStatus", "http-status"},
		{"snake_case", "snake-case"},
		{"UserID", "user-id"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, schema.Kebab(tt.in))
		})
	}
}
