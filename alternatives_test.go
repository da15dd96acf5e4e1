package variant_test

import (
	"fmt"
	"slices"
	"strings"
)

// A, B and C are the trivial alternatives: empty values that only echo.
type A struct{}

func (A) Echo() string { return "this is A" }

func (a A) Clone() A { return a }

type B struct{}

func (B) Echo() string { return "this is B" }

func (b B) Clone() B { return b }

type C struct{}

func (C) Echo() string { return "this is C" }

func (c C) Clone() C { return c }

type D struct{}

func (D) Echo() string { return "this is D" }

func (d D) Clone() D { return d }

type E struct{}

func (E) Echo() string { return "this is E" }

func (e E) Clone() E { return e }

type F struct{}

func (F) Echo() string { return "this is F" }

func (f F) Clone() F { return f }

// Num and Text carry data so equality after access is meaningful.
type Num struct{ N int }

func (n Num) Echo() string { return fmt.Sprintf("num %d", n.N) }

func (n Num) Clone() Num { return n }

type Text struct{ S string }

func (x Text) Echo() string { return "text " + x.S }

func (x Text) Clone() Text { return x }

// Blob owns a slice; Clone must not share it.
type Blob struct{ Data []byte }

func (b Blob) Echo() string { return fmt.Sprintf("blob %d", len(b.Data)) }

func (b Blob) Clone() Blob { return Blob{Data: slices.Clone(b.Data)} }

// ledger records destructor calls per handle id.
type ledger struct {
	drops map[int]int
}

func newLedger() *ledger {
	return &ledger{drops: make(map[int]int)}
}

func (l *ledger) total() int {
	n := 0
	for _, c := range l.drops {
		n += c
	}
	return n
}

// Handle is an alternative with a destructor. Clones get a fresh id so
// their drops are distinguishable from the original's.
type Handle struct {
	ID int
	l  *ledger
}

func (h Handle) Echo() string { return fmt.Sprintf("handle %d", h.ID) }

func (h Handle) Clone() Handle { return Handle{ID: h.ID + 1000, l: h.l} }

func (h Handle) Drop() { h.l.drops[h.ID]++ }

// calls counts Echo invocations per alternative.
type calls map[string]int

type P0 struct{ c calls }

func (p P0) Echo() string { p.c["P0"]++; return "P0" }

func (p P0) Clone() P0 { return p }

type P1 struct{ c calls }

func (p P1) Echo() string { p.c["P1"]++; return "P1" }

func (p P1) Clone() P1 { return p }

type P2 struct{ c calls }

func (p P2) Echo() string { p.c["P2"]++; return "P2" }

func (p P2) Clone() P2 { return p }

// Shouter is an interface-typed alternative; a container may hold a nil
// Shouter.
type Shouter interface {
	Echo() string
	Clone() Shouter
}

type loud struct{ s string }

func (l loud) Echo() string { return strings.ToUpper(l.s) }

func (l loud) Clone() Shouter { return loud{s: l.s} }
