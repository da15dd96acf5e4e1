package guest

import (
	"encoding/binary"
	"reflect"
	"unsafe"

	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/variant"
	"github.com/wippyai/variant/errors"
	"github.com/wippyai/variant/internal/layout"
)

// Check reports whether every alternative of v can be copied as raw bytes.
func Check(v variant.Container) error {
	return check(errors.PhaseLower, v)
}

func check(phase errors.Phase, v variant.Container) error {
	for i, t := range v.Types() {
		if !layout.PointerFree(t) {
			return errors.New(phase, errors.KindUnsupported).
				Want(t.String()).
				Path(t.Name()).
				Detail("alternative %d holds Go pointers", i).
				Build()
		}
	}
	return nil
}

// Sentinel returns the discriminant written for an empty container.
func Sentinel(discSize uint32) uint32 {
	switch discSize {
	case 1:
		return 0xff
	case 2:
		return 0xffff
	default:
		return 0xffffffff
	}
}

// Lower writes v at offset in mem. The whole storage region is rewritten,
// so bytes of a previously larger alternative do not survive.
func Lower(mem api.Memory, offset uint32, v variant.Container) error {
	info, err := region(errors.PhaseLower, mem, offset, v)
	if err != nil {
		return err
	}

	buf := make([]byte, info.Total)
	tag := v.Tag()
	disc := Sentinel(info.DiscSize)
	if tag != variant.Empty {
		copy(buf, payload(v.Value()))
		disc = uint32(tag)
	}
	putDisc(buf[info.DiscOffset:], info.DiscSize, disc)

	if !mem.Write(offset, buf) {
		return errors.OutOfBounds(errors.PhaseLower, offset, info.Total, mem.Size())
	}

	Logger().Debug("lowered variant",
		zap.Uint32("offset", offset),
		zap.Stringer("tag", tag),
		zap.Stringer("layout", info))
	return nil
}

// Lift reads the container at offset in mem into v. The previous value of
// v is dropped. An all-ones discriminant leaves v empty.
func Lift(mem api.Memory, offset uint32, v variant.Container) error {
	info, err := region(errors.PhaseLift, mem, offset, v)
	if err != nil {
		return err
	}

	buf, ok := mem.Read(offset, info.Total)
	if !ok {
		return errors.OutOfBounds(errors.PhaseLift, offset, info.Total, mem.Size())
	}

	disc := getDisc(buf[info.DiscOffset:], info.DiscSize)
	if disc == Sentinel(info.DiscSize) {
		v.Drop()
		Logger().Debug("lifted empty variant", zap.Uint32("offset", offset))
		return nil
	}
	if disc >= uint32(v.Len()) {
		return errors.InvalidDiscriminant(errors.PhaseLift, nil, disc, uint32(v.Len()-1))
	}

	t := v.Types()[disc]
	for _, off := range boolOffsets(t, 0) {
		if b := buf[off]; b > 1 {
			return errors.New(errors.PhaseLift, errors.KindInvalidInput).
				Want(t.String()).
				Value(b).
				Detail("bool byte %d at payload offset %d", b, off).
				Build()
		}
	}

	p := reflect.New(t)
	copy(unsafe.Slice((*byte)(p.UnsafePointer()), t.Size()), buf)

	if err := v.Assign(variant.Tag(disc), p.Elem().Interface()); err != nil {
		return errors.Wrap(errors.PhaseLift, errors.KindTypeMismatch, err, "install lifted value")
	}

	Logger().Debug("lifted variant",
		zap.Uint32("offset", offset),
		zap.Uint32("tag", disc),
		zap.String("type", t.String()))
	return nil
}

// region validates v and the memory range it will occupy.
func region(phase errors.Phase, mem api.Memory, offset uint32, v variant.Container) (variant.Layout, error) {
	if err := check(phase, v); err != nil {
		return variant.Layout{}, err
	}
	info := v.Layout()
	if offset%info.Align != 0 {
		return variant.Layout{}, errors.Misaligned(phase, offset, info.Align)
	}
	if uint64(offset)+uint64(info.Total) > uint64(mem.Size()) {
		return variant.Layout{}, errors.OutOfBounds(phase, offset, info.Total, mem.Size())
	}
	return info, nil
}

// boolOffsets returns the byte offsets of every bool inside t, starting
// at base. Only 0 and 1 are valid bool bytes.
func boolOffsets(t reflect.Type, base uintptr) []uintptr {
	switch t.Kind() {
	case reflect.Bool:
		return []uintptr{base}
	case reflect.Array:
		var out []uintptr
		for i := range t.Len() {
			out = append(out, boolOffsets(t.Elem(), base+uintptr(i)*t.Elem().Size())...)
		}
		return out
	case reflect.Struct:
		var out []uintptr
		for i := range t.NumField() {
			f := t.Field(i)
			out = append(out, boolOffsets(f.Type, base+f.Offset)...)
		}
		return out
	default:
		return nil
	}
}

// payload returns the raw bytes of a pointer-free value.
func payload(x any) []byte {
	rv := reflect.ValueOf(x)
	p := reflect.New(rv.Type())
	p.Elem().Set(rv)
	return unsafe.Slice((*byte)(p.UnsafePointer()), rv.Type().Size())
}

func putDisc(b []byte, size, disc uint32) {
	switch size {
	case 1:
		b[0] = uint8(disc)
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(disc))
	default:
		binary.LittleEndian.PutUint32(b, disc)
	}
}

func getDisc(b []byte, size uint32) uint32 {
	switch size {
	case 1:
		return uint32(b[0])
	case 2:
		return uint32(binary.LittleEndian.Uint16(b))
	default:
		return binary.LittleEndian.Uint32(b)
	}
}
