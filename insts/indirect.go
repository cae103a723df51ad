package insts

// field is one resolved 6-bit operand code of a [b, c] memory operand:
// either a register or an immediate value.
type field struct {
	reg   uint8
	imm   bool
	value uint32
}

func regField(r uint8) field {
	return field{reg: r}
}

func immField(v uint32) field {
	return field{imm: true, value: v}
}

// indirect builds the memory operand [b, c]:
//
//	imm imm  [imm1+imm2]  direct memory
//	reg imm  [reg, imm]   displacement
//	imm reg  [imm, reg]   displacement, BaseSecond set
//	reg reg  [reg, reg]   register pair
//
// special zeroes the offset immediate of the auxiliary register moves. The
// operand width follows the data-size field already decoded into the
// auxiliary word.
func (s *session) indirect(b, c field, special bool) Operand {
	var op Operand

	switch {
	case b.imm && c.imm:
		off := c.value
		if special {
			off = 0
		}
		op.Type = OperandMem
		op.Addr = b.value + off
	case !b.imm && !c.imm:
		op.Type = OperandPhrase
		op.Reg = b.reg
		op.Index = c.reg
	case c.imm:
		op.Type = OperandDispl
		op.Reg = b.reg
		op.Addr = c.value
		if special {
			op.Addr = 0
		}
	default:
		op.Type = OperandDispl
		op.Reg = c.reg
		op.Addr = b.value
		op.BaseSecond = true
	}

	op.Width = auxWidth(s.inst.Aux)
	return op
}

func auxWidth(a Aux) DataWidth {
	switch a.Size() {
	case AuxSizeByte:
		return WidthByte
	case AuxSizeHalf:
		return WidthHalf
	}
	return WidthWord
}
