// Package guest lays variant containers out in WebAssembly linear memory.
//
// A lowered container occupies Layout().Total bytes at an offset aligned to
// Layout().Align:
//
//	offset                          offset+DiscOffset       offset+Total
//	┌───────────────────────────────┬───────────────────────┬─────────┐
//	│ payload of live alternative,  │ discriminant          │ padding │
//	│ zero-filled to Size           │ DiscSize bytes, LE    │ (zero)  │
//	└───────────────────────────────┴───────────────────────┴─────────┘
//
// An empty container is written with an all-ones discriminant.
//
// Only pointer-free alternatives can be lowered; [Check] reports the first
// alternative that holds a Go pointer, slice, string, map or interface.
// Payload bytes are copied in host byte order, which matches the guest on
// the little-endian platforms wazero runs on. Lifted bytes are trusted: a
// guest that writes an out-of-range bool gets one back.
//
// # Usage
//
//	mod, _ := rt.InstantiateWithConfig(ctx, wasmBytes, cfg)
//	if err := guest.Lower(mod.Memory(), ptr, shape); err != nil {
//	    return err
//	}
//	// ... guest mutates the value ...
//	if err := guest.Lift(mod.Memory(), ptr, shape); err != nil {
//	    return err
//	}
package guest
