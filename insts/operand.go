package insts

import "fmt"

// Core register numbers with a fixed role.
const (
	RegR0      uint8 = 0
	RegGP      uint8 = 26 // global pointer
	RegFP      uint8 = 27 // frame pointer
	RegSP      uint8 = 28 // stack pointer
	RegILink1  uint8 = 29
	RegILink2  uint8 = 30
	RegBlink   uint8 = 31 // branch link
	RegLPCount uint8 = 60
	RegPCL     uint8 = 63 // word-aligned PC, compact encoding only
)

// Reserved 6-bit operand codes. In the legacy encoding codes 61 and 63
// select the short immediate (with and without flag update); in both
// encodings 62 selects the long immediate that follows the instruction.
const (
	codeShortImmFlags uint8 = 61
	codeLongImm       uint8 = 62
	codeShortImm      uint8 = 63
)

// OperandType identifies which fields of an Operand are meaningful.
type OperandType uint8

// Operand types.
const (
	OperandNone   OperandType = iota
	OperandReg                // Reg
	OperandImm                // Value
	OperandMem                // [Addr]
	OperandDispl              // [Reg, Addr], or [Addr, Reg] when BaseSecond
	OperandPhrase             // [Reg, Index]
	OperandNear               // branch target Addr
)

// DataWidth is the size of the datum an operand refers to.
type DataWidth uint8

// Data widths.
const (
	WidthWord DataWidth = iota
	WidthHalf
	WidthByte
	WidthCode
)

// Operand is one decoded instruction operand.
type Operand struct {
	Type  OperandType
	Width DataWidth

	Reg   uint8  // Register, or base register of a memory operand
	Index uint8  // Index register of a phrase operand
	Value uint32 // Immediate value (two's complement when negative)
	Addr  uint32 // Memory address, displacement or branch target

	// BaseSecond marks a displacement written as [imm, reg].
	BaseSecond bool
}

// IsImm reports whether o is the immediate v.
func (o Operand) IsImm(v uint32) bool {
	return o.Type == OperandImm && o.Value == v
}

// Signed returns the immediate value as a signed integer.
func (o Operand) Signed() int32 {
	return int32(o.Value)
}

func (o Operand) String() string {
	switch o.Type {
	case OperandReg:
		return regName(o.Reg)
	case OperandImm:
		return fmt.Sprintf("#%d", o.Signed())
	case OperandMem:
		return fmt.Sprintf("[0x%x]", o.Addr)
	case OperandDispl:
		if o.BaseSecond {
			return fmt.Sprintf("[%d,%s]", int32(o.Addr), regName(o.Reg))
		}
		return fmt.Sprintf("[%s,%d]", regName(o.Reg), int32(o.Addr))
	case OperandPhrase:
		return fmt.Sprintf("[%s,%s]", regName(o.Reg), regName(o.Index))
	case OperandNear:
		return fmt.Sprintf("0x%x", o.Addr)
	}
	return ""
}

func regName(r uint8) string {
	switch r {
	case RegGP:
		return "gp"
	case RegFP:
		return "fp"
	case RegSP:
		return "sp"
	case RegILink1:
		return "ilink1"
	case RegILink2:
		return "ilink2"
	case RegBlink:
		return "blink"
	case RegLPCount:
		return "lp_count"
	case RegPCL:
		return "pcl"
	}
	return fmt.Sprintf("r%d", r)
}

// Instruction represents a decoded ARC instruction.
type Instruction struct {
	Address uint32 // Address decoding started at
	Size    uint32 // Bytes consumed; 0 when decoding failed
	Op      Op

	Operands [3]Operand // Unused slots have type OperandNone
	Aux      Aux
}

// NumOperands returns the number of leading operands in use.
func (i *Instruction) NumOperands() int {
	n := 0
	for n < len(i.Operands) && i.Operands[n].Type != OperandNone {
		n++
	}
	return n
}

func (i Instruction) String() string {
	s := i.Op.String() + i.Aux.suffix()
	for n := 0; n < i.NumOperands(); n++ {
		if n == 0 {
			s += " "
		} else {
			s += ", "
		}
		s += i.Operands[n].String()
	}
	return s
}
