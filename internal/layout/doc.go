// Package layout computes storage layouts for closed alternative sets.
//
// A container holding one of N alternatives needs a storage region large
// enough for the biggest alternative and a discriminant telling which one is
// live. This package derives that region from the ordered list of Go types.
//
// # Layout Rules
//
//   - Each alternative occupies AlignTo(size, align) bytes at offset 0
//   - Storage size is the largest such slot, rounded up to the discriminant size
//   - The discriminant follows the storage (DiscOffset == Size)
//   - Alignment is the largest alignment of any alternative or the discriminant
//
// # Usage
//
//	info, err := layout.For(reflect.TypeFor[A](), reflect.TypeFor[B]())
//	// info.Size, info.Align, info.DiscOffset, info.Total
//
// For is memoised per ordered type list, so every container of the same
// instantiation observes the same Info.
//
// The Canonical calculator computes Component Model canonical ABI layouts for
// WIT types, where the discriminant precedes the payload instead.
//
// This package is internal to the variant module.
package layout
