package insts

// Op represents a canonical ARC operation.
type Op uint16

// ARC opcodes. OpInvalid is the zero value and never describes a
// decoded instruction.
const (
	OpInvalid Op = iota

	// Loads, stores and auxiliary register moves
	OpLD
	OpST
	OpLR
	OpSR
	OpEX
	OpPUSH
	OpPOP

	// Arithmetic and logic
	OpADD
	OpADC
	OpSUB
	OpSBC
	OpRSUB
	OpAND
	OpOR
	OpBIC
	OpXOR
	OpMAX
	OpMIN
	OpMOV
	OpTST
	OpCMP
	OpRCMP
	OpNEG
	OpNOT
	OpABS
	OpBSET
	OpBCLR
	OpBTST
	OpBXOR
	OpBMSK
	OpADD1
	OpADD2
	OpADD3
	OpSUB1
	OpSUB2
	OpSUB3

	// Shifts, rotates and extensions
	OpASL
	OpLSL
	OpASR
	OpLSR
	OpROR
	OpRRC
	OpRLC
	OpSEXB
	OpSEXW
	OpEXTB
	OpEXTW
	OpSWAP
	OpNORM
	OpNORMW

	// Multiply
	OpMUL64
	OpMULU64
	OpMPY
	OpMPYH
	OpMPYHU
	OpMPYU

	// Saturating and DSP extensions
	OpADDS
	OpSUBS
	OpDIVAW
	OpASLS
	OpASRS
	OpADDSDW
	OpSUBSDW
	OpSAT16
	OpRND16
	OpABSSW
	OpABSS
	OpNEGSW
	OpNEGS
	OpMULDW
	OpMULUDW
	OpMULRDW
	OpMACDW
	OpMACUDW
	OpMACRDW
	OpMSUBDW
	OpMULULW
	OpMULLW
	OpMULFLW
	OpMACLW
	OpMACFLW
	OpMACHULW
	OpMACHLW
	OpMACHFLW
	OpMULHLW
	OpMULHFLW

	// Control flow
	OpB
	OpBL
	OpBR
	OpBBIT0
	OpBBIT1
	OpJ
	OpJL
	OpLP

	// System
	OpFLAG
	OpNOP
	OpBRK
	OpSLEEP
	OpSWI
	OpTRAP
	OpSYNC
	OpRTIE
	OpUNIMP

	opCount
)

var opNames = [opCount]string{
	OpInvalid: "invalid",
	OpLD:      "ld",
	OpST:      "st",
	OpLR:      "lr",
	OpSR:      "sr",
	OpEX:      "ex",
	OpPUSH:    "push",
	OpPOP:     "pop",
	OpADD:     "add",
	OpADC:     "adc",
	OpSUB:     "sub",
	OpSBC:     "sbc",
	OpRSUB:    "rsub",
	OpAND:     "and",
	OpOR:      "or",
	OpBIC:     "bic",
	OpXOR:     "xor",
	OpMAX:     "max",
	OpMIN:     "min",
	OpMOV:     "mov",
	OpTST:     "tst",
	OpCMP:     "cmp",
	OpRCMP:    "rcmp",
	OpNEG:     "neg",
	OpNOT:     "not",
	OpABS:     "abs",
	OpBSET:    "bset",
	OpBCLR:    "bclr",
	OpBTST:    "btst",
	OpBXOR:    "bxor",
	OpBMSK:    "bmsk",
	OpADD1:    "add1",
	OpADD2:    "add2",
	OpADD3:    "add3",
	OpSUB1:    "sub1",
	OpSUB2:    "sub2",
	OpSUB3:    "sub3",
	OpASL:     "asl",
	OpLSL:     "lsl",
	OpASR:     "asr",
	OpLSR:     "lsr",
	OpROR:     "ror",
	OpRRC:     "rrc",
	OpRLC:     "rlc",
	OpSEXB:    "sexb",
	OpSEXW:    "sexw",
	OpEXTB:    "extb",
	OpEXTW:    "extw",
	OpSWAP:    "swap",
	OpNORM:    "norm",
	OpNORMW:   "normw",
	OpMUL64:   "mul64",
	OpMULU64:  "mulu64",
	OpMPY:     "mpy",
	OpMPYH:    "mpyh",
	OpMPYHU:   "mpyhu",
	OpMPYU:    "mpyu",
	OpADDS:    "adds",
	OpSUBS:    "subs",
	OpDIVAW:   "divaw",
	OpASLS:    "asls",
	OpASRS:    "asrs",
	OpADDSDW:  "addsdw",
	OpSUBSDW:  "subsdw",
	OpSAT16:   "sat16",
	OpRND16:   "rnd16",
	OpABSSW:   "abssw",
	OpABSS:    "abss",
	OpNEGSW:   "negsw",
	OpNEGS:    "negs",
	OpMULDW:   "muldw",
	OpMULUDW:  "muludw",
	OpMULRDW:  "mulrdw",
	OpMACDW:   "macdw",
	OpMACUDW:  "macudw",
	OpMACRDW:  "macrdw",
	OpMSUBDW:  "msubdw",
	OpMULULW:  "mululw",
	OpMULLW:   "mullw",
	OpMULFLW:  "mulflw",
	OpMACLW:   "maclw",
	OpMACFLW:  "macflw",
	OpMACHULW: "machulw",
	OpMACHLW:  "machlw",
	OpMACHFLW: "machflw",
	OpMULHLW:  "mulhlw",
	OpMULHFLW: "mulhflw",
	OpB:       "b",
	OpBL:      "bl",
	OpBR:      "br",
	OpBBIT0:   "bbit0",
	OpBBIT1:   "bbit1",
	OpJ:       "j",
	OpJL:      "jl",
	OpLP:      "lp",
	OpFLAG:    "flag",
	OpNOP:     "nop",
	OpBRK:     "brk",
	OpSLEEP:   "sleep",
	OpSWI:     "swi",
	OpTRAP:    "trap",
	OpSYNC:    "sync",
	OpRTIE:    "rtie",
	OpUNIMP:   "unimp_s",
}

// String returns the assembler mnemonic of the operation.
func (op Op) String() string {
	if op >= opCount {
		return "invalid"
	}
	return opNames[op]
}

// ChangesFirst reports whether the first operand of op is written and
// never read. A long immediate in that slot carries no value.
func (op Op) ChangesFirst() bool {
	switch op {
	case OpInvalid, OpST, OpSR, OpEX, OpPUSH,
		OpTST, OpCMP, OpRCMP, OpBTST,
		OpMUL64, OpMULU64,
		OpB, OpBL, OpBR, OpBBIT0, OpBBIT1, OpJ, OpJL, OpLP,
		OpFLAG, OpNOP, OpBRK, OpSLEEP, OpSWI, OpTRAP, OpSYNC, OpRTIE, OpUNIMP:
		return false
	}
	return op < opCount
}

// IsJump reports whether op is a register-indirect jump.
func (op Op) IsJump() bool {
	return op == OpJ || op == OpJL
}

// IsLoadStore reports whether op is a memory load or store.
func (op Op) IsLoadStore() bool {
	return op == OpLD || op == OpST
}
