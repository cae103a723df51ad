package insts

// session holds the state of one Decode call: the instruction being
// assembled, the read cursor, and the long immediate, which is fetched at
// most once no matter how many operands refer to it.
type session struct {
	mem  Memory
	diag Diagnostics
	inst Instruction

	err error

	limm    uint32
	gotLimm bool
}

func newSession(mem Memory, diag Diagnostics, addr uint32) *session {
	return &session{
		mem:  mem,
		diag: diag,
		inst: Instruction{Address: addr},
	}
}

// next16 reads the halfword at the cursor and advances it. After a failed
// read every further read returns 0 and the first error is kept.
func (s *session) next16() uint32 {
	if s.err != nil {
		return 0
	}
	v, err := s.mem.Read16(s.inst.Address + s.inst.Size)
	if err != nil {
		s.err = err
		return 0
	}
	s.inst.Size += 2
	return uint32(v)
}

// next32 reads the word at the cursor and advances it.
func (s *session) next32() uint32 {
	if s.err != nil {
		return 0
	}
	v, err := s.mem.Read32(s.inst.Address + s.inst.Size)
	if err != nil {
		s.err = err
		return 0
	}
	s.inst.Size += 4
	return v
}

// longImm returns the compact-encoding long immediate, stored as two
// halfwords with the most significant one first.
func (s *session) longImm() uint32 {
	if !s.gotLimm {
		hi := s.next16()
		s.limm = hi<<16 | s.next16()
		s.gotLimm = true
	}
	return s.limm
}

// longImmWord returns the legacy-encoding long immediate, stored as one
// word.
func (s *session) longImmWord() uint32 {
	if !s.gotLimm {
		s.limm = s.next32()
		s.gotLimm = true
	}
	return s.limm
}
