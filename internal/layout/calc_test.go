package layout

import (
	"reflect"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wippyai/variant/errors"
)

func typesOf(vals ...any) []reflect.Type {
	out := make([]reflect.Type, len(vals))
	for i, v := range vals {
		out[i] = reflect.TypeOf(v)
	}
	return out
}

func TestAlignTo(t *testing.T) {
	tests := []struct {
		offset, align, want uint32
	}{
		{0, 1, 0},
		{0, 8, 0},
		{1, 4, 4},
		{4, 4, 4},
		{5, 2, 6},
		{9, 8, 16},
		{7, 0, 7},
	}
	for _, tc := range tests {
		if got := AlignTo(tc.offset, tc.align); got != tc.want {
			t.Errorf("AlignTo(%d, %d) = %d, want %d", tc.offset, tc.align, got, tc.want)
		}
	}
}

func TestDiscriminantSize(t *testing.T) {
	assert.Equal(t, uint32(1), DiscriminantSize(2))
	assert.Equal(t, uint32(1), DiscriminantSize(256))
	assert.Equal(t, uint32(2), DiscriminantSize(257))
	assert.Equal(t, uint32(2), DiscriminantSize(65536))
	assert.Equal(t, uint32(4), DiscriminantSize(65537))
}

func TestOf(t *testing.T) {
	type empty struct{}
	type wide struct {
		A int64
		B byte
	}

	tests := []struct {
		name  string
		types []reflect.Type
		want  Info
	}{
		{
			name:  "empty structs",
			types: typesOf(empty{}, empty{}, empty{}),
			want:  Info{Size: 0, Align: 1, DiscOffset: 0, DiscSize: 1, Total: 1},
		},
		{
			name:  "int32 and bytes",
			types: typesOf(int32(0), [3]byte{}),
			want:  Info{Size: 4, Align: 4, DiscOffset: 4, DiscSize: 1, Total: 8},
		},
		{
			name:  "int64 and bool",
			types: typesOf(int64(0), false),
			want:  Info{Size: 8, Align: 8, DiscOffset: 8, DiscSize: 1, Total: 16},
		},
		{
			name:  "odd byte array widens past smaller aligned type",
			types: typesOf([5]byte{}, uint16(0)),
			want:  Info{Size: 5, Align: 2, DiscOffset: 5, DiscSize: 1, Total: 6},
		},
		{
			name:  "padded struct",
			types: typesOf(wide{}, int32(0), empty{}),
			want:  Info{Size: 16, Align: 8, DiscOffset: 16, DiscSize: 1, Total: 24},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			info, err := Of(tc.types)
			require.NoError(t, err)
			assert.Equal(t, tc.want, info)
		})
	}
}

func TestOfPlatformTypes(t *testing.T) {
	info, err := Of(typesOf("", 0))
	require.NoError(t, err)

	var s string
	slot := AlignTo(uint32(unsafe.Sizeof(s)), uint32(unsafe.Alignof(s)))
	assert.Equal(t, slot, info.Size)
	assert.Equal(t, uint32(unsafe.Alignof(s)), info.Align)
	assert.Equal(t, info.Size, info.DiscOffset)
	assert.Zero(t, info.Total%info.Align)
}

func TestOfRejectsBadInput(t *testing.T) {
	_, err := Of(nil)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseLayout, Kind: errors.KindInvalidInput})

	tooMany := make([]reflect.Type, MaxTypes+1)
	for i := range tooMany {
		tooMany[i] = reflect.TypeFor[int]()
	}
	_, err = Of(tooMany)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseLayout, Kind: errors.KindInvalidInput})

	_, err = Of([]reflect.Type{reflect.TypeFor[int](), nil})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "alternative 1 is nil")
}

func TestForMemoises(t *testing.T) {
	type padA struct{ X [7]byte }
	type padB struct{ Y uint32 }

	types := typesOf(padA{}, padB{})
	before := Cached()

	first, err := For(types...)
	require.NoError(t, err)
	second, err := For(types...)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, before+1, Cached())

	direct, err := Of(types)
	require.NoError(t, err)
	assert.Equal(t, direct, first)

	// order is part of the key
	swapped, err := For(types[1], types[0])
	require.NoError(t, err)
	assert.Equal(t, first, swapped)
	assert.Equal(t, before+2, Cached())
}

func TestForRejectsBadInput(t *testing.T) {
	_, err := For()
	assert.Error(t, err)
}

func TestIndexOf(t *testing.T) {
	types := typesOf(int8(0), "", 1.5)

	assert.Equal(t, 0, IndexOf(reflect.TypeFor[int8](), types))
	assert.Equal(t, 1, IndexOf(reflect.TypeFor[string](), types))
	assert.Equal(t, 2, IndexOf(reflect.TypeFor[float64](), types))
	assert.Equal(t, -1, IndexOf(reflect.TypeFor[int](), types))

	type named int8
	assert.Equal(t, -1, IndexOf(reflect.TypeFor[named](), types), "named types are distinct")
}

func TestPointerFree(t *testing.T) {
	type flat struct {
		A int32
		B [4]float64
		C struct{ D bool }
	}
	type withString struct {
		A int
		S string
	}

	tests := []struct {
		typ  reflect.Type
		want bool
	}{
		{reflect.TypeFor[int](), true},
		{reflect.TypeFor[complex128](), true},
		{reflect.TypeFor[struct{}](), true},
		{reflect.TypeFor[flat](), true},
		{reflect.TypeFor[[0]*int](), true},
		{reflect.TypeFor[string](), false},
		{reflect.TypeFor[[]byte](), false},
		{reflect.TypeFor[*int](), false},
		{reflect.TypeFor[map[int]int](), false},
		{reflect.TypeFor[withString](), false},
		{reflect.TypeFor[[2]*int](), false},
		{reflect.TypeFor[any](), false},
		{reflect.TypeFor[func()](), false},
	}
	for _, tc := range tests {
		t.Run(tc.typ.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, PointerFree(tc.typ))
		})
	}
}

func TestInfoString(t *testing.T) {
	info := Info{Size: 8, Align: 8, DiscOffset: 8, DiscSize: 1, Total: 16}
	assert.Equal(t, "size=8 align=8 disc=1@8 total=16", info.String())
}
