package guest_test

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/variant"
	"github.com/wippyai/variant/errors"
	"github.com/wippyai/variant/guest"
)

// Minimal module exporting one page of memory as "memory".
var memoryModule = []byte{
	0x00, 0x61, 0x73, 0x6d, // magic
	0x01, 0x00, 0x00, 0x00, // version
	0x05, 0x03, 0x01, 0x00, 0x01, // memory section: 1 memory, min 1 page
	0x07, 0x0a, 0x01, 0x06, 'm', 'e', 'm', 'o', 'r', 'y', 0x02, 0x00, // export "memory"
}

func newMemory(t *testing.T) api.Memory {
	t.Helper()
	ctx := context.Background()

	rt := wazero.NewRuntime(ctx)
	t.Cleanup(func() { _ = rt.Close(ctx) })

	compiled, err := rt.CompileModule(ctx, memoryModule)
	require.NoError(t, err)

	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName("test"))
	require.NoError(t, err)

	mem := mod.Memory()
	require.NotNil(t, mem)
	return mem
}

type Point struct{ X, Y int32 }

func (p Point) Echo() string { return "point" }
func (p Point) Clone() Point { return p }

type Flag struct{ On bool }

func (f Flag) Echo() string { return "flag" }
func (f Flag) Clone() Flag { return f }

type Wide struct{ V uint64 }

func (w Wide) Echo() string { return "wide" }
func (w Wide) Clone() Wide { return w }

type Unit struct{}

func (Unit) Echo() string { return "unit" }
func (u Unit) Clone() Unit { return u }

type Name struct{ S string }

func (n Name) Echo() string { return n.S }
func (n Name) Clone() Name { return n }

var tokenDrops = map[uint32]int{}

// Token is pointer-free but records its destruction.
type Token struct{ ID uint32 }

func (k Token) Echo() string { return "token" }
func (k Token) Clone() Token { return k }
func (k Token) Drop() { tokenDrops[k.ID]++ }

type Shape = variant.V3[Point, Flag, Wide]

func TestLayoutOfShape(t *testing.T) {
	v := variant.V3Of0[Point, Flag, Wide](Point{})
	assert.Equal(t, variant.Layout{Size: 8, Align: 8, DiscOffset: 8, DiscSize: 1, Total: 16}, v.Layout())
}

func TestLowerWritesPayloadAndDiscriminant(t *testing.T) {
	mem := newMemory(t)
	v := variant.V3Of0[Point, Flag, Wide](Point{X: 1, Y: -2})

	require.NoError(t, guest.Lower(mem, 16, v))

	raw, ok := mem.Read(16, 16)
	require.True(t, ok)
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(raw[0:]))
	assert.Equal(t, int32(-2), int32(binary.LittleEndian.Uint32(raw[4:])))
	assert.Equal(t, byte(0), raw[8])
}

func TestLowerZeroFillsStorage(t *testing.T) {
	mem := newMemory(t)
	junk := make([]byte, 16)
	for i := range junk {
		junk[i] = 0xaa
	}
	require.True(t, mem.Write(32, junk))

	v := variant.V3Of1[Point, Flag, Wide](Flag{On: true})
	require.NoError(t, guest.Lower(mem, 32, v))

	raw, _ := mem.Read(32, 16)
	assert.Equal(t, byte(1), raw[0])
	assert.Equal(t, make([]byte, 7), raw[1:8])
	assert.Equal(t, byte(1), raw[8], "discriminant")
	assert.Equal(t, make([]byte, 7), raw[9:16], "padding")
}

func TestLowerEmptyWritesSentinel(t *testing.T) {
	mem := newMemory(t)
	var v Shape

	require.NoError(t, guest.Lower(mem, 0, &v))

	b, ok := mem.ReadByte(8)
	require.True(t, ok)
	assert.Equal(t, byte(0xff), b)
	assert.Equal(t, uint32(0xff), guest.Sentinel(1))
	assert.Equal(t, uint32(0xffff), guest.Sentinel(2))
}

func TestRoundTrip(t *testing.T) {
	mem := newMemory(t)

	tests := []struct {
		name string
		in   *Shape
	}{
		{"point", variant.V3Of0[Point, Flag, Wide](Point{X: 7, Y: 9})},
		{"flag", variant.V3Of1[Point, Flag, Wide](Flag{On: true})},
		{"wide", variant.V3Of2[Point, Flag, Wide](Wide{V: 1 << 60})},
		{"empty", new(Shape)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, guest.Lower(mem, 64, tt.in))

			out := variant.V3Of1[Point, Flag, Wide](Flag{})
			require.NoError(t, guest.Lift(mem, 64, out))

			assert.Equal(t, tt.in.Tag(), out.Tag())
			assert.Equal(t, tt.in.Value(), out.Value())
		})
	}
}

func TestLiftGuestWrittenValue(t *testing.T) {
	mem := newMemory(t)
	require.True(t, mem.WriteUint32Le(128, 5))
	require.True(t, mem.WriteUint32Le(132, 6))
	require.True(t, mem.WriteByte(136, 0))

	var v Shape
	require.NoError(t, guest.Lift(mem, 128, &v))
	assert.Equal(t, Point{X: 5, Y: 6}, v.Get0())
}

func TestLiftDropsPreviousValue(t *testing.T) {
	mem := newMemory(t)
	clear(tokenDrops)

	v := variant.V2Of0[Token, Unit](Token{ID: 3})
	require.NoError(t, guest.Lower(mem, 0, variant.V2Of1[Token, Unit](Unit{})))
	require.NoError(t, guest.Lift(mem, 0, v))

	assert.True(t, v.Is1())
	assert.Equal(t, map[uint32]int{3: 1}, tokenDrops)

	v.Set0(Token{ID: 4})
	require.NoError(t, guest.Lower(mem, 0, new(variant.V2[Token, Unit])))
	require.NoError(t, guest.Lift(mem, 0, v))
	assert.True(t, v.IsEmpty())
	assert.Equal(t, map[uint32]int{3: 1, 4: 1}, tokenDrops)
}

func TestLiftInvalidDiscriminant(t *testing.T) {
	mem := newMemory(t)
	require.True(t, mem.WriteByte(8, 5))

	v := variant.V3Of0[Point, Flag, Wide](Point{X: 1})
	err := guest.Lift(mem, 0, v)

	require.Error(t, err)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseLift, Kind: errors.KindInvalidVariant})
	assert.Equal(t, Point{X: 1}, v.Get0(), "failed lift leaves the container unchanged")
}

func TestLiftRejectsInvalidBool(t *testing.T) {
	mem := newMemory(t)
	require.True(t, mem.WriteByte(256, 2))
	require.True(t, mem.WriteByte(264, 1))

	v := variant.V3Of0[Point, Flag, Wide](Point{X: 1})
	err := guest.Lift(mem, 256, v)

	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errors.PhaseLift, e.Phase)
	assert.Equal(t, errors.KindInvalidInput, e.Kind)
	assert.Equal(t, Point{X: 1}, v.Get0(), "failed lift leaves the container unchanged")

	require.True(t, mem.WriteByte(256, 1))
	require.NoError(t, guest.Lift(mem, 256, v))
	assert.Equal(t, Flag{On: true}, v.Get1())
}

type Switches struct {
	N  uint16
	On [3]bool
}

func (s Switches) Echo() string { return "switches" }
func (s Switches) Clone() Switches { return s }

func TestLiftChecksNestedBools(t *testing.T) {
	mem := newMemory(t)
	v := variant.V2Of0[Switches, Unit](Switches{N: 7, On: [3]bool{true, false, true}})
	require.NoError(t, guest.Lower(mem, 512, v))

	require.True(t, mem.WriteByte(512+2+1, 0x80))
	err := guest.Lift(mem, 512, v)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseLift, Kind: errors.KindInvalidInput})

	require.True(t, mem.WriteByte(512+2+1, 1))
	require.NoError(t, guest.Lift(mem, 512, v))
	assert.Equal(t, Switches{N: 7, On: [3]bool{true, true, true}}, v.Get0())
}

func TestRegionErrors(t *testing.T) {
	mem := newMemory(t)
	v := variant.V3Of0[Point, Flag, Wide](Point{})

	tests := []struct {
		name   string
		offset uint32
		kind   errors.Kind
	}{
		{"misaligned", 4, errors.KindMisaligned},
		{"past end", mem.Size() - 8, errors.KindOutOfBounds},
		{"wraps", 0xfffffff8, errors.KindOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := guest.Lower(mem, tt.offset, v)
			assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseLower, Kind: tt.kind})

			err = guest.Lift(mem, tt.offset, v)
			assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseLift, Kind: tt.kind})
		})
	}
}

func TestCheckRejectsPointers(t *testing.T) {
	ok := variant.V2Of0[Point, Unit](Point{})
	assert.NoError(t, guest.Check(ok))

	bad := variant.V2Of0[Point, Name](Point{})
	err := guest.Check(bad)
	require.Error(t, err)

	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errors.KindUnsupported, e.Kind)
	assert.Equal(t, "guest_test.Name", e.Want)

	mem := newMemory(t)
	assert.Error(t, guest.Lower(mem, 0, bad))
}
