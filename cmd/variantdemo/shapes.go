package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wippyai/variant"
)

type Circle struct{ Radius float64 }

func (c Circle) Echo() string { return fmt.Sprintf("circle r=%g", c.Radius) }

func (c Circle) Clone() Circle { return c }

type Square struct{ Side float64 }

func (s Square) Echo() string { return fmt.Sprintf("square side=%g", s.Side) }

func (s Square) Clone() Square { return s }

type Triangle struct{ A, B, C float64 }

func (t Triangle) Echo() string { return fmt.Sprintf("triangle %g/%g/%g", t.A, t.B, t.C) }

func (t Triangle) Clone() Triangle { return t }

// Shape is the container the demo inspects.
type Shape = variant.V3[Circle, Square, Triangle]

type shapeKind struct {
	name   string
	fields []string
}

var kinds = []shapeKind{
	{"circle", []string{"radius"}},
	{"square", []string{"side"}},
	{"triangle", []string{"a", "b", "c"}},
}

func kindIndex(name string) (variant.Tag, bool) {
	for i, k := range kinds {
		if k.name == name {
			return variant.Tag(i), true
		}
	}
	return variant.Empty, false
}

// build parses the field values of alternative tag.
func build(tag variant.Tag, values []string) (variant.Echoer, error) {
	if !tag.Valid(len(kinds)) {
		return nil, fmt.Errorf("unknown shape %d", tag)
	}
	k := kinds[tag]
	if len(values) != len(k.fields) {
		return nil, fmt.Errorf("%s takes %d values (%s), got %d",
			k.name, len(k.fields), strings.Join(k.fields, ", "), len(values))
	}

	f := make([]float64, len(values))
	for i, s := range values {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k.fields[i], err)
		}
		if v < 0 {
			return nil, fmt.Errorf("%s: negative length %g", k.fields[i], v)
		}
		f[i] = v
	}

	switch tag {
	case 0:
		return Circle{Radius: f[0]}, nil
	case 1:
		return Square{Side: f[0]}, nil
	default:
		return Triangle{A: f[0], B: f[1], C: f[2]}, nil
	}
}

func area(s *Shape) float64 {
	return variant.Match3(s,
		func(c Circle) float64 { return math.Pi * c.Radius * c.Radius },
		func(q Square) float64 { return q.Side * q.Side },
		func(t Triangle) float64 {
			p := (t.A + t.B + t.C) / 2
			return math.Sqrt(max(0, p*(p-t.A)*(p-t.B)*(p-t.C)))
		})
}
