package insts

// decodeCompact decodes one ARCompact instruction. Instructions whose
// major opcode is below 0x0C are 32 bits wide, formed from two halfwords
// with the first one most significant.
func (s *session) decodeCompact() error {
	if s.inst.Address&1 != 0 {
		return ErrMisaligned
	}

	code := s.next16()
	major := Bits(code, 15, 11)
	if major < 0x0C {
		code = code<<16 | s.next16()
	}
	if s.err != nil {
		return s.err
	}

	return s.analyze(code, &tabMajor[major])
}

// analyze follows redirects from e down to a terminal entry and decodes
// the instruction it describes.
func (s *session) analyze(code uint32, e *entry) error {
	for e.next != nil {
		idx := e.next.index(code)
		if int(idx) >= len(e.next.table) {
			return ErrInvalid
		}
		e = &e.next.table[idx]
	}

	if e.op == OpInvalid {
		return ErrInvalid
	}

	s.inst.Op = e.op
	s.decodeAux(code, e.aux, e.cond)
	for slot, kind := range e.args {
		s.inst.Operands[slot] = s.decodeArg(code, slot, kind)
	}

	return s.err
}

// reg16 maps a 3-bit register field onto r0-r3 and r12-r15.
func reg16(r uint32) uint32 {
	if r > 3 {
		return r + 8
	}
	return r
}

func imm(v uint32) Operand {
	return Operand{Type: OperandImm, Value: v}
}

// opReg returns register r, or the long immediate when r is 62. A long
// immediate in a destination-only first slot carries no value and is not
// fetched.
func (s *session) opReg(slot int, r uint32) Operand {
	if uint8(r) != codeLongImm {
		return Operand{Type: OperandReg, Reg: uint8(r)}
	}
	if slot == 0 && s.inst.Op.ChangesFirst() {
		return imm(0)
	}
	return imm(s.longImm())
}

// opDisp returns [base, disp], or direct memory at limm+disp when the base
// is the long immediate.
func (s *session) opDisp(base uint32, disp int32) Operand {
	if uint8(base) == codeLongImm {
		return Operand{Type: OperandMem, Addr: s.longImm() + uint32(disp)}
	}
	return Operand{Type: OperandDispl, Reg: uint8(base), Addr: uint32(disp)}
}

// opBranch returns the target PCL+delta, PCL being the instruction
// address with the low two bits cleared.
func (s *session) opBranch(delta int32) Operand {
	return Operand{
		Type:  OperandNear,
		Width: WidthCode,
		Addr:  s.inst.Address&^3 + uint32(delta),
	}
}

// genC decodes the second source of the general format. The 2-bit mode at
// 23..22 selects a register (0), a u6 (1), an s12 split over 5..0 and
// 11..6 (2), or a conditional form (3) where bit 5 picks u6 over register.
func (s *session) genC(code uint32, slot int, pcrel bool) Operand {
	var v int32

	switch p := Bits(code, 23, 22); {
	case p == 2:
		v = SignExtend(Bits(code, 5, 0)<<6|Bits(code, 11, 6), 12)
	case p == 0 || (p == 3 && Bits(code, 5, 5) == 0):
		op := s.opReg(slot, Bits(code, 11, 6))
		if pcrel && op.Type == OperandImm {
			// an absolute long-immediate target
			return Operand{Type: OperandNear, Width: WidthCode, Addr: op.Value}
		}
		return op
	default:
		v = int32(Bits(code, 11, 6))
	}

	if pcrel {
		return s.opBranch(v * 2)
	}
	return imm(uint32(v))
}

func (s *session) decodeArg(code uint32, slot int, kind argKind) Operand {
	if kind == argNone {
		return Operand{}
	}

	var op Operand

	base := kind &^ argInd
	switch base {
	case argA16:
		op = s.opReg(slot, reg16(Bits(code, 2, 0)))
	case argB16:
		op = s.opReg(slot, reg16(Bits(code, 10, 8)))
	case argC16:
		op = s.opReg(slot, reg16(Bits(code, 7, 5)))
	case argA32:
		op = s.opReg(slot, Bits(code, 5, 0))
	case argB32, argGenB:
		op = s.opReg(slot, Bits(code, 14, 12)<<3|Bits(code, 26, 24))
	case argC32:
		op = s.opReg(slot, Bits(code, 11, 6))
	case argH16:
		op = s.opReg(slot, Bits(code, 2, 0)<<3|Bits(code, 7, 5))

	case argS25, argS25L, argS21, argS21L:
		raw := Bits(code, 15, 6)<<10 | Bits(code, 26, 17)
		var displ int32
		if base == argS25 || base == argS25L {
			displ = SignExtend(raw|Bits(code, 3, 0)<<20, 24)
		} else {
			displ = SignExtend(raw, 20)
		}
		if base == argS25L || base == argS21L {
			displ &^= 1
		}
		op = s.opBranch(displ * 2)
	case argS9:
		displ := int32(Bits(code, 23, 17))
		if Bits(code, 15, 15) != 0 {
			displ -= 1 << 7
		}
		op = s.opBranch(displ * 2)
	case argS7:
		op = s.opBranch(signedBits(code, 5, 0) * 2)
	case argS8:
		op = s.opBranch(signedBits(code, 6, 0) * 2)
	case argS10:
		op = s.opBranch(signedBits(code, 8, 0) * 2)
	case argS13:
		op = s.opBranch(signedBits(code, 10, 0) * 4)

	case argPCLU10:
		op = s.opDisp(uint32(RegPCL), int32(Bits(code, 7, 0))*4)
	case argSPU7:
		op = s.opDisp(uint32(RegSP), int32(Bits(code, 4, 0))*4)

	case argU3:
		op = imm(Bits(code, 2, 0))
	case argU5:
		op = imm(Bits(code, 4, 0))
	case argU6:
		op = imm(Bits(code, 11, 6))
	case argU7:
		op = imm(Bits(code, 6, 0))
	case argU7L:
		op = imm(Bits(code, 4, 0) * 4)
	case argU8:
		op = imm(Bits(code, 7, 0))

	case argBU5, argBU6, argBU7:
		displ := int32(Bits(code, 4, 0))
		switch base {
		case argBU6:
			displ *= 2
		case argBU7:
			displ *= 4
		}
		op = s.opDisp(reg16(Bits(code, 10, 8)), displ)
	case argBS9:
		displ := int32(Bits(code, 23, 16))
		if Bits(code, 15, 15) != 0 {
			displ -= 1 << 8
		}
		op = s.opDisp(Bits(code, 14, 12)<<3|Bits(code, 26, 24), displ)

	case argGenA:
		if Bits(code, 23, 22) <= 1 {
			op = s.opReg(slot, Bits(code, 5, 0))
		} else {
			op = s.opReg(slot, Bits(code, 14, 12)<<3|Bits(code, 26, 24))
		}
	case argGenC:
		op = s.genC(code, slot, false)
	case argGenCPCRel:
		op = s.genC(code, slot, true)

	case argBCInd:
		b := Bits(code, 14, 12)<<3 | Bits(code, 26, 24)
		c := Bits(code, 11, 6)
		op = s.indirect(s.limmField(b), s.limmField(c), false)
	case argBC16Ind:
		b := reg16(Bits(code, 10, 8))
		c := reg16(Bits(code, 7, 5))
		op = s.indirect(regField(uint8(b)), regField(uint8(c)), false)

	case argZero:
		op = imm(0)
	case argSP:
		op = s.opReg(slot, uint32(RegSP))
	case argBlink:
		op = s.opReg(slot, uint32(RegBlink))
	case argR0:
		op = s.opReg(slot, uint32(RegR0))
	case argGP:
		op = s.opReg(slot, uint32(RegGP))

	case argGPS9, argGPS10, argGPS11, argS11:
		displ := signedBits(code, 8, 0)
		switch base {
		case argGPS9:
		case argGPS10:
			displ *= 2
		default:
			displ *= 4
		}
		if base == argS11 {
			op = imm(uint32(displ))
		} else {
			op = s.opDisp(uint32(RegGP), displ)
		}

	default:
		s.diag.Warn("cannot decode operand",
			"addr", s.inst.Address, "slot", slot, "kind", uint32(kind))
		return Operand{}
	}

	if kind&argInd != 0 {
		switch op.Type {
		case OperandReg:
			op.Type = OperandDispl
			op.Addr = 0
		case OperandImm:
			if s.inst.Op.IsJump() {
				op.Type = OperandNear
				op.Width = WidthCode
			} else {
				op.Type = OperandMem
			}
			op.Addr = op.Value
		}
	}

	return op
}

// limmField resolves a 6-bit code of a compact [b, c] operand. Only the
// long immediate code is an immediate here.
func (s *session) limmField(r uint32) field {
	if uint8(r) == codeLongImm {
		return immField(s.longImm())
	}
	return regField(uint8(r))
}
