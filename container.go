package variant

import (
	"reflect"

	"github.com/wippyai/variant/errors"
	"github.com/wippyai/variant/internal/layout"
)

// Layout describes the storage a container instantiation needs when its
// value is laid out as raw bytes.
type Layout = layout.Info

// Container is implemented by every generated container type (V2 through
// V6). It cannot be implemented outside this package.
//
// Containers are not safe for concurrent use. A container is owned by one
// goroutine at a time; sharing one requires external synchronization.
type Container interface {
	Echoer

	// Tag returns the index of the live alternative, or Empty.
	Tag() Tag

	// Len returns the number of alternatives.
	Len() int

	// IsEmpty reports whether no alternative is live.
	IsEmpty() bool

	// Value returns the live alternative, or nil when empty.
	Value() Echoer

	// Types returns the alternatives in declaration order.
	Types() []reflect.Type

	// Layout returns the raw storage layout of the instantiation.
	Layout() Layout

	// Assign installs value as alternative tag, dropping the previous value.
	// It is the reflective counterpart of the positional setters and fails
	// when value does not have the alternative's exact type. Assigning Empty
	// drops the live value.
	Assign(tag Tag, value any) error

	// Drop destroys the live value, if any, and leaves the container empty.
	Drop()

	indexOf(ptr any) Tag
	storage() *slot
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

func typeNames(types []reflect.Type) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return names
}

// mismatch reports a checked access for T against s. Callers panic with
// the result.
func mismatch[T any](phase errors.Phase, s *slot) *errors.Error {
	if s.live == 0 {
		return violation(errors.Empty(phase, typeName[T]()))
	}
	return violation(errors.TypeMismatch(phase, typeName[T](), dynamicName(s.value)))
}

// dynamicName names the dynamic type of x. Interface-typed alternatives may
// hold nil.
func dynamicName(x any) string {
	if x == nil {
		return "nil"
	}
	return reflect.TypeOf(x).String()
}

// as reads the slot as T after the caller has checked the tag. A nil
// interface alternative yields the zero T instead of failing the assertion.
func as[T any](s *slot) T {
	x, _ := s.value.(T)
	return x
}

// accepts converts an Assign argument to T. nil is accepted for
// interface-typed alternatives, as it is by the positional constructors.
func accepts[T any](value any) (T, bool) {
	x, ok := value.(T)
	if !ok && value == nil && reflect.TypeFor[T]().Kind() == reflect.Interface {
		return x, true
	}
	return x, ok
}

// cloneOf deep-copies the live T. A nil interface alternative stays nil.
func cloneOf[T Alternative[T]](s *slot) any {
	x, ok := s.value.(T)
	if !ok {
		return s.value
	}
	return x.Clone()
}

func notMember[T any](phase errors.Phase, c Container) *errors.Error {
	return violation(errors.NotMember(phase, typeName[T](), typeNames(c.Types())))
}

func emptyDispatch(phase errors.Phase) *errors.Error {
	return violation(errors.New(phase, errors.KindEmpty).
		Detail("dispatch on a container that holds no value").
		Build())
}

func assignMismatch[T any](value any) error {
	return errors.New(errors.PhaseConstruct, errors.KindTypeMismatch).
		Want(typeName[T]()).
		Have(dynamicName(value)).
		Value(value).
		Build()
}

func badTag(tag Tag, n int) error {
	return errors.New(errors.PhaseConstruct, errors.KindInvalidVariant).
		Value(tag).
		Detail("tag %d out of range (alternatives %d)", tag, n).
		Build()
}

func mustLayout(types []reflect.Type) Layout {
	info, err := layout.For(types...)
	if err != nil {
		panic(err)
	}
	return info
}
