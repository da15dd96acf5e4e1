// Package schema describes variant containers as WIT types.
//
// A container V3[Circle, Square, Triangle] maps to
//
//	variant shape {
//	    circle(circle),
//	    square(square),
//	    triangle,
//	}
//
// where alternatives without fields become payload-less cases. Case and
// record field names are the kebab-case form of the Go names; a `wit:"name"`
// struct tag overrides a field name and `wit:"-"` omits the field.
// Unexported fields are not described.
//
// Go to WIT mapping:
//
//	Go              WIT
//	──────────────────────────
//	bool            bool
//	int8..int64     s8..s64
//	int             s64
//	uint8..uint64   u8..u64
//	uint            u64
//	float32/64      f32/f64
//	string          string
//	[]T             list<T>
//	[N]T            tuple<T, ...> (N times)
//	*T              option<T>
//	struct          record
//	Enumerated      enum
//	FlagSet         flags
//	named scalar    type alias
//
// Named types map to one shared definition, so Describe and TypeOf return
// the same *wit.TypeDef for them on every call. Recursive types are
// rejected.
//
// Describe also reports the canonical ABI layout of the resulting variant.
package schema
