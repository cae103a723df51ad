package insts

// Legacy instruction word layout:
//
//	31..27  i  major opcode
//	26..21  a  destination
//	20..15  b  first source
//	14..9   c  second source
//	 8..0   d  short immediate, or the flag/condition bits
//
// Branches (i = 4..6) carry a 20-bit word displacement in 26..7.
const noOperand = -1

var legacyALU = [0x20]Op{
	0x08: OpADD,
	0x09: OpADC,
	0x0A: OpSUB,
	0x0B: OpSBC,
	0x0C: OpAND,
	0x0D: OpOR,
	0x0E: OpBIC,
	0x0F: OpXOR,
	0x10: OpASL,
	0x11: OpLSR,
	0x12: OpASR,
	0x13: OpROR,
	0x14: OpMUL64,
	0x15: OpMULU64,
	0x1E: OpMAX,
	0x1F: OpMIN,
}

// selected by c when i = 3
var legacySingle = [...]Op{
	0:  OpFLAG,
	1:  OpASR,
	2:  OpLSR,
	3:  OpROR,
	4:  OpRRC,
	5:  OpSEXB,
	6:  OpSEXW,
	7:  OpEXTB,
	8:  OpEXTW,
	9:  OpSWAP,
	10: OpNORM,
}

// selected by d when i = 3 and c = 0x3F
var legacyZero = [...]Op{
	0: OpBRK,
	1: OpSLEEP,
	2: OpSWI,
}

// legacyNOP is "xor 0x1FF, 0x1FF, 0x1FF".
const legacyNOP = 0x7FFFFFFF

func (s *session) decodeLegacy() error {
	if s.inst.Address&3 != 0 {
		return ErrMisaligned
	}

	code := s.next32()
	if s.err != nil {
		return s.err
	}

	switch i := Bits(code, 31, 27); i {
	case 4, 5, 6:
		s.decodeLegacyBranch(code)
		return nil
	default:
		return s.decodeLegacyRegister(code)
	}
}

func (s *session) decodeLegacyBranch(code uint32) {
	switch Bits(code, 31, 27) {
	case 4:
		s.inst.Op = OpB
	case 5:
		s.inst.Op = OpBL
	case 6:
		s.inst.Op = OpLP
	}

	l := signedBits(code, 26, 7)
	s.inst.Operands[0] = Operand{
		Type:  OperandNear,
		Width: WidthCode,
		Addr:  s.inst.Address + uint32(l)*4 + 4,
	}
	s.inst.Aux = Aux(code & 0x1FF)
}

// legacyAlias describes how foldLegacyAlias rewrote an instruction.
type legacyAlias struct {
	op Op
	// dropC removes the second source, which duplicated the first.
	dropC bool
	// double doubles the shared immediate source.
	double bool
	// nop discards every operand.
	nop bool
}

// foldLegacyAlias recognizes the assembler idioms that the legacy encoding
// has no dedicated form for:
//
//	mov rD, rS    and rD, rS, rS  (or with or)
//	mov rD, #2*n  add rD, #n, #n
//	lsl rD, rS    add rD, rS, rS
//	rlc rD, rS    adc rD, rS, rS
//	nop           xor 0x1FF, 0x1FF, 0x1FF
//
// It runs before operands are materialized, since the folded opcode
// decides how many operands remain.
func foldLegacyAlias(op Op, b, c int, code uint32) legacyAlias {
	fold := legacyAlias{op: op}

	switch op {
	case OpAND, OpOR:
		if b == c {
			fold.op = OpMOV
			fold.dropC = true
		}
	case OpADD:
		if b == c {
			fold.dropC = true
			if b >= int(codeShortImmFlags) {
				fold.op = OpMOV
				fold.double = true
			} else {
				fold.op = OpLSL
			}
		}
	case OpADC:
		if b == c {
			fold.op = OpRLC
			fold.dropC = true
		}
	case OpXOR:
		if code == legacyNOP {
			fold.op = OpNOP
			fold.nop = true
		}
	}

	return fold
}

func (s *session) decodeLegacyRegister(code uint32) error {
	i := Bits(code, 31, 27)
	a := int(Bits(code, 26, 21))
	b := int(Bits(code, 20, 15))
	c := int(Bits(code, 14, 9))
	d := signedBits(code, 8, 0)

	// Flags sit in the low bits unless a short immediate takes them.
	aux := Aux(code & 0x1FF)

	op := OpInvalid
	switch i {
	case 0:
		op = OpLD
	case 1:
		op = OpLD
		if code&(1<<13) != 0 {
			op = OpLR
		}
	case 2:
		op = OpST
		if code&(1<<25) != 0 {
			op = OpSR
		}
	case 3:
		switch {
		case c < len(legacySingle):
			op = legacySingle[c]
			if op == OpFLAG {
				a = b
			}
		case c == 0x3F && d >= 0 && int(d) < len(legacyZero):
			op = legacyZero[d]
			a, b = noOperand, noOperand
			aux = 0
		}
		c = noOperand
	case 7:
		op = OpJ
		if code&(1<<9) != 0 {
			op = OpJL
		}
	default:
		op = legacyALU[i]
	}

	if op == OpInvalid {
		return ErrInvalid
	}

	if a == int(codeShortImmFlags) || b == int(codeShortImmFlags) || c == int(codeShortImmFlags) {
		aux = AuxFlags
	}
	if b == int(codeShortImm) || c == int(codeShortImm) {
		aux = 0
	}

	var limm uint32
	if b == int(codeLongImm) || c == int(codeLongImm) {
		limm = s.longImmWord()
		if s.err != nil {
			return s.err
		}
	}

	if op == OpFLAG {
		// the source already moved to a
		b = noOperand
	}

	fold := foldLegacyAlias(op, b, c, code)
	if fold.double {
		d <<= 1
		limm <<= 1
	}

	s.inst.Op = fold.op
	s.inst.Aux = aux

	if fold.nop {
		s.inst.Aux = 0
		return nil
	}

	ops := &s.inst.Operands
	switch i {
	case 0:
		ops[0] = legacyOperand(a, d, limm, false)
		ops[1] = s.indirect(legacyField(b, d, limm), legacyField(c, d, limm), false)
	case 1, 2:
		switch op {
		case OpLD:
			s.inst.Aux = Aux(Bits(code, 14, 9))
		case OpST:
			s.inst.Aux = Aux(Bits(code, 26, 21))
		default:
			s.inst.Aux = 0
		}
		if op == OpST || op == OpSR {
			// the stored value lives in c
			a = c
		}
		special := op == OpLR || op == OpSR
		ops[0] = legacyOperand(a, d, limm, false)
		ops[1] = s.indirect(legacyField(b, d, limm), immField(uint32(d)), special)
	case 7:
		ops[0] = legacyOperand(b, d, limm, true)
	default:
		// A short immediate in the destination slot carries no value,
		// except for flag, whose only operand is its source.
		dst := int32(0)
		if op == OpFLAG {
			dst = d
		}
		n := 0
		if a != noOperand {
			ops[n] = legacyOperand(a, dst, limm, false)
			n++
		}
		if b != noOperand {
			ops[n] = legacyOperand(b, d, limm, false)
			n++
		}
		if c != noOperand && !fold.dropC {
			ops[n] = legacyOperand(c, d, limm, false)
		}
	}

	return nil
}

// legacyOperand converts a 6-bit operand code. Codes 61 and 63 are the
// short immediate d and 62 the long immediate. Jump targets are in words;
// the top 7 bits of a long-immediate jump target hold flags.
func legacyOperand(code int, d int32, limm uint32, branch bool) Operand {
	switch uint8(code) {
	case codeShortImmFlags, codeShortImm:
		if branch {
			return Operand{Type: OperandNear, Width: WidthCode, Addr: uint32(d) * 4}
		}
		return imm(uint32(d))
	case codeLongImm:
		if branch {
			return Operand{Type: OperandNear, Width: WidthCode, Addr: (limm & 0x1FFFFFF) * 4}
		}
		return imm(limm)
	}
	return Operand{Type: OperandReg, Reg: uint8(code)}
}

func legacyField(code int, d int32, limm uint32) field {
	switch uint8(code) {
	case codeShortImmFlags, codeShortImm:
		return immField(uint32(d))
	case codeLongImm:
		return immField(limm)
	}
	return regField(uint8(code))
}
