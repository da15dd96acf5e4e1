package variant

// slot is the storage shared by all generated containers. value holds
// exactly the live alternative; live is the tag plus one so that the zero
// slot is empty.
type slot struct {
	value any
	live  uint8
}

func (s *slot) tag() Tag {
	return Tag(s.live) - 1
}

func (s *slot) install(t Tag, v any) {
	s.value = v
	s.live = uint8(t) + 1
}

// release relocates the live value out and leaves the slot empty. The
// caller becomes its owner.
func (s *slot) release() any {
	v := s.value
	*s = slot{}
	return v
}

// destroy drops the live value, if any. The slot is emptied before Drop
// runs so a panicking destructor is never invoked twice.
func (s *slot) destroy() {
	if s.live == 0 {
		return
	}
	if d, ok := s.release().(Dropper); ok {
		d.Drop()
	}
}
