package insts

import "fmt"

// Aux is the packed auxiliary word of an instruction. The low bits are
// shared: ALU and branch instructions use them for the condition code,
// loads and stores for the data-size, addressing-mode and sign-extension
// flags.
type Aux uint32

// Auxiliary word fields.
const (
	AuxCondMask Aux = 0x1F // condition code

	AuxSignExtend Aux = 0x01 // .x

	AuxSizeMask Aux = 0x06
	AuxSizeWord Aux = 0x00
	AuxSizeByte Aux = 0x02 // .b
	AuxSizeHalf Aux = 0x04 // .w

	AuxModeMask Aux = 0x18
	AuxModeA    Aux = 0x08 // .a, pre-update of the base register
	AuxModeAB   Aux = 0x10 // .ab, post-update of the base register
	AuxModeAS   Aux = 0x18 // .as, offset scaled by the data size

	AuxDelayMask Aux = 0x60
	AuxDelay     Aux = 0x20 // .d; cache bypass (.di) on loads and stores
	AuxDelayJump Aux = 0x40 // .jd

	AuxFlags  Aux = 0x100 // .f
	AuxPCLoad Aux = 0x200 // PC-relative load rewritten to an absolute address
)

// Cond represents an ARC condition code.
type Cond uint8

// ARC condition codes.
const (
	CondAL  Cond = 0x00 // Always
	CondEQ  Cond = 0x01 // Zero
	CondNE  Cond = 0x02 // Non-zero
	CondPL  Cond = 0x03 // Positive
	CondMI  Cond = 0x04 // Negative
	CondLO  Cond = 0x05 // Carry set, lower than (unsigned)
	CondHS  Cond = 0x06 // Carry clear, higher or same (unsigned)
	CondVS  Cond = 0x07 // Overflow set
	CondVC  Cond = 0x08 // Overflow clear
	CondGT  Cond = 0x09 // Greater than (signed)
	CondGE  Cond = 0x0A // Greater than or equal to (signed)
	CondLT  Cond = 0x0B // Less than (signed)
	CondLE  Cond = 0x0C // Less than or equal to (signed)
	CondHI  Cond = 0x0D // Higher than (unsigned)
	CondLS  Cond = 0x0E // Lower than or same (unsigned)
	CondPNZ Cond = 0x0F // Positive non-zero
)

var condNames = [...]string{
	"", "eq", "ne", "pl", "mi", "lo", "hs", "vs",
	"vc", "gt", "ge", "lt", "le", "hi", "ls", "pnz",
}

func (c Cond) String() string {
	if int(c) < len(condNames) {
		return condNames[c]
	}
	return fmt.Sprintf("cc%d", uint8(c))
}

// Cond returns the condition code field.
func (a Aux) Cond() Cond { return Cond(a & AuxCondMask) }

// Size returns the data-size field.
func (a Aux) Size() Aux { return a & AuxSizeMask }

// Mode returns the addressing-mode field.
func (a Aux) Mode() Aux { return a & AuxModeMask }

// SetsFlags reports whether the instruction updates the status flags.
func (a Aux) SetsFlags() bool { return a&AuxFlags != 0 }

// suffix renders the condition and flag-update part of the word for
// debugging output.
func (a Aux) suffix() string {
	s := ""
	if c := a.Cond(); c != CondAL {
		s += "." + c.String()
	}
	if a.SetsFlags() {
		s += ".f"
	}
	return s
}

// auxKind selects which auxiliary fields a compact table entry carries and
// where they live in the instruction word.
type auxKind uint16

const (
	auxByte       auxKind = 1 << iota // implicit byte access
	auxHalf                           // implicit halfword access
	auxQ                              // 4..0 condition code
	auxLoadRegReg                     // 23..22, 18..15: aa, ZZ, X, Di (load reg+reg)
	auxLoad                           // 11..6: Di, aa, ZZ, X (load)
	auxStore                          // 5..0: Di, aa, ZZ, R (store)
	auxDelay                          // implicit delay slot
	auxSignExt                        // implicit sign extension
	auxCond                           // implicit condition from the table entry
	auxN5                             // 5: delay slot bit
	auxGen                            // 15: F; 4..0: Q when 23..22 == 3
	auxGen2                           // 4..0: Q when 23..22 == 3
)

// decodeAux fills in the auxiliary word from the fields kind names. Bits
// of kind with no handling rule are reported and otherwise ignored.
func (s *session) decodeAux(code uint32, kind auxKind, cond Cond) {
	aux := s.inst.Aux

	if kind&auxCond != 0 {
		aux = aux&^AuxCondMask | Aux(cond)
		kind &^= auxCond
	}
	if kind&auxQ != 0 {
		aux = aux&^AuxCondMask | Aux(code)&AuxCondMask
		kind &^= auxQ
	}
	if kind&(auxGen|auxGen2) != 0 {
		if kind&auxGen2 == 0 && Bits(code, 15, 15) != 0 {
			aux |= AuxFlags
		}
		if Bits(code, 23, 22) == 3 {
			aux = aux&^AuxCondMask | Aux(code)&AuxCondMask
		}
		kind &^= auxGen | auxGen2
	}
	if kind&auxN5 != 0 {
		aux = aux&^AuxDelay | Aux(code)&AuxDelay
		kind &^= auxN5
	}
	if kind&auxHalf != 0 {
		aux = aux&^AuxSizeMask | AuxSizeHalf
		kind &^= auxHalf
	}
	if kind&auxByte != 0 {
		aux = aux&^AuxSizeMask | AuxSizeByte
		kind &^= auxByte
	}
	if kind&auxSignExt != 0 {
		aux |= AuxSignExtend
		kind &^= auxSignExt
	}
	if kind&auxDelay != 0 {
		aux = aux&^AuxDelayMask | AuxDelay
		kind &^= auxDelay
	}
	if kind&auxLoad != 0 {
		aux = aux&^0x3F | Aux(Bits(code, 11, 6))
		kind &^= auxLoad
	}
	if kind&auxStore != 0 {
		aux = aux&^0x3F | Aux(Bits(code, 5, 0))
		kind &^= auxStore
	}
	if kind&auxLoadRegReg != 0 {
		aux &^= 0x3F
		aux |= Aux(Bits(code, 15, 15)) << 5 // Di
		aux |= Aux(Bits(code, 23, 22)) << 3 // aa
		aux |= Aux(Bits(code, 18, 17)) << 1 // ZZ
		aux |= Aux(Bits(code, 16, 16))      // X
		kind &^= auxLoadRegReg
	}

	if kind != 0 {
		s.diag.Warn("unhandled aux bits", "addr", s.inst.Address, "bits", uint16(kind))
	}
	s.inst.Aux = aux
}
