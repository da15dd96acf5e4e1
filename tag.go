package variant

import "strconv"

// Tag is the discriminant of a container: the index of the live alternative
// in declaration order, or Empty.
type Tag int8

// Empty is the sentinel tag of a container that holds no value.
const Empty Tag = -1

// MaxAlternatives is the largest arity generated in this package.
const MaxAlternatives = 6

// Valid reports whether t indexes one of n alternatives.
func (t Tag) Valid(n int) bool {
	return t >= 0 && int(t) < n
}

func (t Tag) String() string {
	if t == Empty {
		return "empty"
	}
	return strconv.Itoa(int(t))
}
