package layout

import (
	"github.com/puzpuzpuz/xsync/v3"
	"go.bytecodealliance.org/wit"
)

// CanonInfo is the canonical ABI layout of a WIT type.
type CanonInfo struct {
	FieldOffs     map[string]uint32
	Size          uint32
	Align         uint32
	PayloadOffset uint32 // variants and options only
}

// Canonical computes canonical ABI layouts, memoised per type definition.
type Canonical struct {
	cache *xsync.MapOf[*wit.TypeDef, CanonInfo]
}

func NewCanonical() *Canonical {
	return &Canonical{
		cache: xsync.NewMapOf[*wit.TypeDef, CanonInfo](),
	}
}

func (c *Canonical) Of(t wit.Type) CanonInfo {
	switch typ := t.(type) {
	case wit.U8, wit.S8, wit.Bool:
		return CanonInfo{Size: 1, Align: 1}
	case wit.U16, wit.S16:
		return CanonInfo{Size: 2, Align: 2}
	case wit.U32, wit.S32, wit.F32, wit.Char:
		return CanonInfo{Size: 4, Align: 4}
	case wit.U64, wit.S64, wit.F64:
		return CanonInfo{Size: 8, Align: 8}
	case wit.String:
		return CanonInfo{Size: 8, Align: 4} // [ptr: u32, len: u32]
	case *wit.TypeDef:
		return c.typeDef(typ)
	default:
		return CanonInfo{Size: 0, Align: 1}
	}
}

func (c *Canonical) typeDef(t *wit.TypeDef) CanonInfo {
	// Load and Store are split so nested definitions never compute under a
	// bucket lock.
	if cached, ok := c.cache.Load(t); ok {
		return cached
	}

	var info CanonInfo

	switch kind := t.Kind.(type) {
	case *wit.Record:
		info = c.record(kind)
	case *wit.Variant:
		info = c.variant(kind)
	case *wit.Enum:
		size := DiscriminantSize(len(kind.Cases))
		info = CanonInfo{Size: size, Align: size}
	case *wit.List:
		info = CanonInfo{Size: 8, Align: 4}
	case *wit.Option:
		info = c.tagged(1, []wit.Type{kind.Type})
	case *wit.Tuple:
		info = c.sequence(kind.Types, nil)
	case *wit.Flags:
		info = flags(len(kind.Flags))
	case wit.Type: // named alias
		info = c.Of(kind)
	default:
		info = CanonInfo{Size: 0, Align: 1}
	}

	c.cache.Store(t, info)
	return info
}

func (c *Canonical) record(r *wit.Record) CanonInfo {
	types := make([]wit.Type, len(r.Fields))
	names := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		types[i] = f.Type
		names[i] = f.Name
	}
	return c.sequence(types, names)
}

// sequence lays types out one after another; names, when given, label the
// field offsets.
func (c *Canonical) sequence(types []wit.Type, names []string) CanonInfo {
	if len(types) == 0 {
		return CanonInfo{Size: 0, Align: 1}
	}

	var offs map[string]uint32
	if names != nil {
		offs = make(map[string]uint32, len(names))
	}
	maxAlign := uint32(1)
	offset := uint32(0)

	for i, typ := range types {
		elem := c.Of(typ)
		offset = AlignTo(offset, elem.Align)
		if offs != nil {
			offs[names[i]] = offset
		}
		if elem.Align > maxAlign {
			maxAlign = elem.Align
		}
		offset += elem.Size
	}

	return CanonInfo{
		Size:      AlignTo(offset, maxAlign),
		Align:     maxAlign,
		FieldOffs: offs,
	}
}

func (c *Canonical) variant(v *wit.Variant) CanonInfo {
	if len(v.Cases) == 0 {
		return CanonInfo{Size: 0, Align: 1}
	}
	payloads := make([]wit.Type, len(v.Cases))
	for i, cs := range v.Cases {
		payloads[i] = cs.Type
	}
	return c.tagged(DiscriminantSize(len(v.Cases)), payloads)
}

// tagged lays out a discriminant of discSize bytes followed by the largest
// payload. Nil payloads contribute nothing.
func (c *Canonical) tagged(discSize uint32, payloads []wit.Type) CanonInfo {
	maxAlign := discSize
	maxSize := uint32(0)

	for _, p := range payloads {
		if p == nil {
			continue
		}
		pl := c.Of(p)
		if pl.Align > maxAlign {
			maxAlign = pl.Align
		}
		if pl.Size > maxSize {
			maxSize = pl.Size
		}
	}

	payloadOffset := AlignTo(discSize, maxAlign)

	return CanonInfo{
		Size:          AlignTo(payloadOffset+maxSize, maxAlign),
		Align:         maxAlign,
		PayloadOffset: payloadOffset,
	}
}

func flags(n int) CanonInfo {
	switch {
	case n == 0:
		return CanonInfo{Size: 0, Align: 1}
	case n <= 8:
		return CanonInfo{Size: 1, Align: 1}
	case n <= 16:
		return CanonInfo{Size: 2, Align: 2}
	case n <= 32:
		return CanonInfo{Size: 4, Align: 4}
	}
	// multiple u32 words past 32 flags
	words := (n + 31) / 32
	return CanonInfo{Size: uint32(words * 4), Align: 4}
}
