package layout

import (
	"fmt"
	"reflect"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/wippyai/variant/errors"
)

// MaxTypes bounds the number of alternatives a single layout may describe.
const MaxTypes = 8

// Info describes the storage of a container instantiation.
type Info struct {
	Size       uint32 // storage bytes, excluding the discriminant
	Align      uint32
	DiscOffset uint32
	DiscSize   uint32
	Total      uint32 // storage + discriminant, padded to Align
}

func (i Info) String() string {
	return fmt.Sprintf("size=%d align=%d disc=%d@%d total=%d", i.Size, i.Align, i.DiscSize, i.DiscOffset, i.Total)
}

// AlignTo rounds offset up to a multiple of align, which must be a power of two.
func AlignTo(offset, align uint32) uint32 {
	if align == 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}

// DiscriminantSize returns the byte width of a tag able to index numCases.
func DiscriminantSize(numCases int) uint32 {
	if numCases <= 256 {
		return 1
	} else if numCases <= 65536 {
		return 2
	}
	return 4
}

// Of computes the layout of the given ordered alternatives.
func Of(types []reflect.Type) (Info, error) {
	if err := validate(types); err != nil {
		return Info{}, err
	}

	discSize := DiscriminantSize(len(types))
	maxAlign := discSize
	maxSlot := uint32(0)

	for _, t := range types {
		align := uint32(t.Align())
		slot := AlignTo(uint32(t.Size()), align)
		if align > maxAlign {
			maxAlign = align
		}
		if slot > maxSlot {
			maxSlot = slot
		}
	}

	size := AlignTo(maxSlot, discSize)

	return Info{
		Size:       size,
		Align:      maxAlign,
		DiscOffset: size,
		DiscSize:   discSize,
		Total:      AlignTo(size+discSize, maxAlign),
	}, nil
}

func validate(types []reflect.Type) error {
	if len(types) == 0 {
		return errors.InvalidInput(errors.PhaseLayout, "no alternatives")
	}
	if len(types) > MaxTypes {
		return errors.InvalidInput(errors.PhaseLayout,
			fmt.Sprintf("%d alternatives exceed the limit of %d", len(types), MaxTypes))
	}
	for i, t := range types {
		if t == nil {
			return errors.New(errors.PhaseLayout, errors.KindInvalidInput).
				Detail("alternative %d is nil", i).
				Build()
		}
	}
	return nil
}

type cacheKey struct {
	n     int
	types [MaxTypes]reflect.Type
}

var cache = xsync.NewMapOf[cacheKey, Info]()

// For returns the memoised layout of the given ordered alternatives.
func For(types ...reflect.Type) (Info, error) {
	if err := validate(types); err != nil {
		return Info{}, err
	}

	k := cacheKey{n: len(types)}
	copy(k.types[:], types)

	info, _ := cache.LoadOrCompute(k, func() Info {
		info, _ := Of(types)
		return info
	})
	return info, nil
}

// Cached reports how many distinct alternative lists have been laid out.
func Cached() int {
	return cache.Size()
}

// IndexOf returns the position of t in types by exact identity, or -1.
func IndexOf(t reflect.Type, types []reflect.Type) int {
	for i, candidate := range types {
		if candidate == t {
			return i
		}
	}
	return -1
}

// PointerFree reports whether values of t contain no Go pointers and can
// therefore be copied as raw bytes.
func PointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || PointerFree(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !PointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
