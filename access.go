package variant

import "github.com/wippyai/variant/errors"

// IndexOf returns the position of T among the alternatives of v, or Empty
// when T is not an alternative. The lookup is a type switch generated for
// the container's instantiation; no type descriptors are searched.
func IndexOf[T any, V Container](v V) Tag {
	return v.indexOf((*T)(nil))
}

// Isa reports whether v currently holds a T. It is false for types that are
// not alternatives of v.
func Isa[T any, V Container](v V) bool {
	i := IndexOf[T](v)
	return i != Empty && v.Tag() == i
}

// Get returns the live value of v as a T.
// Panics with an *errors.Error when v does not hold a T.
func Get[T any, V Container](v V) T {
	return as[T](checked[T](errors.PhaseAccess, v))
}

// TryGet returns the live value of v as a T and true, or zero and false.
func TryGet[T any, V Container](v V) (T, bool) {
	if !Isa[T](v) {
		var zero T
		return zero, false
	}
	return as[T](v.storage()), true
}

// UnsafeGet returns the live value of v as a T without checking the tag.
// The caller must have established Isa[T](v); otherwise the result is
// unspecified (currently the zero value of T).
func UnsafeGet[T any, V Container](v V) T {
	return as[T](v.storage())
}

// Take moves the live T out of v and leaves v empty. The value is not
// dropped; the caller owns it.
// Panics with an *errors.Error when v does not hold a T.
func Take[T any, V Container](v V) T {
	x, _ := checked[T](errors.PhaseAccess, v).release().(T)
	return x
}

// UnsafeTake is Take without the tag check. Whatever v held is released
// without being dropped.
func UnsafeTake[T any, V Container](v V) T {
	x, _ := v.storage().release().(T)
	return x
}

// Set drops the live value of v, if any, and installs x.
// Panics with an *errors.Error when T is not an alternative of v; use the
// positional setters of the concrete container to have that checked at
// compile time.
func Set[T any, V Container](v V, x T) {
	i := IndexOf[T](v)
	if i == Empty {
		panic(notMember[T](errors.PhaseAccess, v))
	}
	s := v.storage()
	s.destroy()
	s.install(i, x)
}

// Replace takes the live Tout out of v, installs in, and returns the taken
// value. Panics with an *errors.Error when v does not hold a Tout or Tin is
// not an alternative; v is left unchanged in that case.
func Replace[Tout, Tin any, V Container](v V, in Tin) Tout {
	j := IndexOf[Tin](v)
	if j == Empty {
		panic(notMember[Tin](errors.PhaseAccess, v))
	}
	s := checked[Tout](errors.PhaseAccess, v)
	out, _ := s.release().(Tout)
	s.install(j, in)
	return out
}

// UnsafeReplace is Replace without the tag check. Tin must still be an
// alternative of v.
func UnsafeReplace[Tout, Tin any, V Container](v V, in Tin) Tout {
	j := IndexOf[Tin](v)
	if j == Empty {
		panic(notMember[Tin](errors.PhaseAccess, v))
	}
	s := v.storage()
	out, _ := s.release().(Tout)
	s.install(j, in)
	return out
}

func checked[T any, V Container](phase errors.Phase, v V) *slot {
	i := IndexOf[T](v)
	if i == Empty {
		panic(notMember[T](phase, v))
	}
	s := v.storage()
	if s.tag() != i {
		panic(mismatch[T](phase, s))
	}
	return s
}
