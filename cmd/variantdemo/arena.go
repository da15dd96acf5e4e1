package main

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/variant/guest"
)

// scratch is a module exporting one page of memory as "memory".
var scratch = []byte{
	0x00, 0x61, 0x73, 0x6d,
	0x01, 0x00, 0x00, 0x00,
	0x05, 0x03, 0x01, 0x00, 0x01,
	0x07, 0x0a, 0x01, 0x06, 'm', 'e', 'm', 'o', 'r', 'y', 0x02, 0x00,
}

// arena owns a wazero runtime with one linear memory that shapes are
// lowered into.
type arena struct {
	mu  sync.Mutex
	rt  wazero.Runtime
	mem api.Memory
}

func newArena(ctx context.Context) (*arena, error) {
	rt := wazero.NewRuntime(ctx)

	compiled, err := rt.CompileModule(ctx, scratch)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("compile scratch module: %w", err)
	}
	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName("scratch"))
	if err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("instantiate scratch module: %w", err)
	}

	return &arena{rt: rt, mem: mod.Memory()}, nil
}

// lower writes s at offset zero and returns a copy of the bytes written.
// The bytes are lifted back into a fresh container to confirm the round
// trip.
func (a *arena) lower(s *Shape) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := guest.Lower(a.mem, 0, s); err != nil {
		return nil, err
	}

	n := s.Layout().Total
	raw, ok := a.mem.Read(0, n)
	if !ok {
		return nil, fmt.Errorf("read back %d bytes", n)
	}
	out := bytes.Clone(raw)

	var back Shape
	if err := guest.Lift(a.mem, 0, &back); err != nil {
		return nil, err
	}
	if back.Tag() != s.Tag() || (!s.IsEmpty() && back.Echo() != s.Echo()) {
		return nil, fmt.Errorf("round trip changed %s into %s", describe(s), describe(&back))
	}
	return out, nil
}

func (a *arena) Close(ctx context.Context) error {
	return a.rt.Close(ctx)
}

func describe(s *Shape) string {
	if s.IsEmpty() {
		return "empty"
	}
	return s.Echo()
}
