// Package variant provides closed-set polymorphic containers for Go.
//
// A container is declared to hold exactly one of a fixed, ordered list of
// alternative types. All alternatives share one capability, [Echoer], and the
// container forwards that capability to whichever alternative is live
// without the caller knowing which one it is.
//
// # Architecture Overview
//
//	variant/             Containers V2..V6, type-keyed accessors, capability
//	├── internal/layout/ Storage layout of an alternative list
//	├── guest/           Lowering and lifting containers in WASM linear memory
//	├── schema/          WIT description of an alternative list
//	├── errors/          Structured error types
//	├── cmd/variantgen/  Generator for variant_gen.go
//	└── cmd/variantdemo/ Inspector for a Shape container (plain or TUI)
//
// # Declaring a Container
//
// Alternatives implement [Echoer] and an explicit deep copy:
//
//	type Circle struct{ R float64 }
//
//	func (c Circle) Echo() string   { return "circle" }
//	func (c Circle) Clone() Circle  { return c }
//
//	type Shape = variant.V3[Circle, Square, Triangle]
//
// # Construction
//
// Positional constructors and setters fix the alternative at compile time:
//
//	s := variant.V3Of0[Circle, Square, Triangle](Circle{R: 1})
//	s.Set1(Square{Side: 2})
//
// Passing a Square to V3Of0 or Set0 does not compile.
//
// # Access
//
// Each position has checked and unchecked accessors (Is0, Get0, UnsafeGet0,
// Take0, UnsafeTake0, Set0, ...). The same operations are available keyed by
// type through generic functions:
//
//	if variant.Isa[Square](s) {
//	    sq := variant.Get[Square](s)
//	}
//	old := variant.Replace[Square](s, Triangle{})
//
// Checked accessors panic with an *errors.Error when the requested
// alternative is not live. This signals a programming error and is not
// meant to be recovered. Unchecked accessors skip the tag test; the caller
// must have established the tag with Is0 or Isa.
//
// # Dispatch
//
// Echo compares the tag against every position in a generated switch and
// forwards to the single match. MatchN generalises this to arbitrary
// per-alternative functions:
//
//	area := variant.Match3(s,
//	    func(c Circle) float64 { return math.Pi * c.R * c.R },
//	    func(q Square) float64 { return q.Side * q.Side },
//	    func(t Triangle) float64 { return t.Area() })
//
// # Lifecycle
//
// The zero value of a container is empty. Clone deep-copies the live value
// through the alternative's Clone method. Move relocates it into a new
// container and leaves the source empty. Set and Drop destroy the previous
// value, calling [Dropper].Drop exactly once when the alternative implements
// it. Take and Replace hand the value to the caller without dropping it.
//
// Containers are not safe for concurrent use.
package variant
