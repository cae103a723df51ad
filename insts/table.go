package insts

// argKind describes where an operand lives in a compact instruction word
// and how it is built. argInd may be or-ed into any kind to make the
// operand indirect.
type argKind uint32

const (
	argNone argKind = iota

	argA32 //  5..0  a register (r0-r63)
	argA16 //  2..0  a register (r0-r3, r12-r15)
	argB32 // 14..12 & 26..24  b register
	argB16 // 10..8  b register (r0-r3, r12-r15)
	argC32 // 11..6  c register
	argC16 //  7..5  c register (r0-r3, r12-r15)
	argH16 //  2..0 & 7..5  h register (r0-r63)

	argS25  // 15..6 & 26..17 & 3..0  branch displacement, halfwords
	argS21  // 15..6 & 26..17  branch displacement, halfwords
	argS25L // as argS25, word aligned
	argS21L // as argS21, word aligned
	argS10  //  8..0  branch displacement, halfwords
	argS9   // 15 & 23..17  branch displacement, halfwords
	argS8   //  6..0  branch displacement, halfwords
	argS7   //  5..0  branch displacement, halfwords
	argS13  // 10..0  branch displacement, words

	argU3  //  2..0
	argU5  //  4..0
	argU6  // 11..6
	argU7  //  6..0
	argU7L //  4..0, scaled by 4
	argU8  //  7..0

	argSPU7   //  4..0  [sp, u5*4]
	argPCLU10 //  7..0  [pcl, u8*4]
	argBU5    // 10..8 & 4..0  [b, u5]
	argBU6    // 10..8 & 4..0  [b, u5*2]
	argBU7    // 10..8 & 4..0  [b, u5*4]
	argBS9    // 14..12 & 26..24, 15 & 23..16  [b, s9]

	argGenA      // general format destination
	argGenB      // general format first source
	argGenC      // general format second source
	argGenCPCRel // general format second source, PC-relative when immediate

	argBCInd   // 14..12 & 26..24, 11..6  [b, c]
	argBC16Ind // 10..8, 7..5  [b, c]

	argSP    // implicit sp
	argBlink // implicit blink
	argZero  // implicit immediate 0
	argR0    // implicit r0
	argGP    // implicit gp

	argGPS9  //  8..0  [gp, s9]
	argGPS10 //  8..0  [gp, s9*2]
	argGPS11 //  8..0  [gp, s9*4]
	argS11   //  8..0  s9*4

	argInd argKind = 1 << 31
)

// entry is one slot of an opcode table: either a terminal instruction
// descriptor or, when next is set, a redirect into a subtable. A terminal
// with OpInvalid marks an unallocated encoding.
type entry struct {
	op   Op
	aux  auxKind
	cond Cond
	args [3]argKind
	next *redirect
}

// redirect selects a subtable slot from one bit range of the instruction
// word or, when two is set, from two ranges with hi1..lo1 placed above
// hi2..lo2.
type redirect struct {
	hi1, lo1 uint
	hi2, lo2 uint
	two      bool
	table    []entry
}

func (r *redirect) index(code uint32) uint32 {
	idx := Bits(code, r.hi2, r.lo2)
	if r.two {
		idx |= Bits(code, r.hi1, r.lo1) << (r.hi2 - r.lo2 + 1)
	}
	return idx
}

func sub(hi, lo uint, table []entry) entry {
	return entry{next: &redirect{hi2: hi, lo2: lo, table: table}}
}

func sub2(hi1, lo1, hi2, lo2 uint, table []entry) entry {
	return entry{next: &redirect{
		hi1: hi1, lo1: lo1, hi2: hi2, lo2: lo2, two: true, table: table,
	}}
}

func ins(op Op, aux auxKind, a, b, c argKind) entry {
	return entry{op: op, aux: aux, args: [3]argKind{a, b, c}}
}

// insc is ins with a condition implied by the opcode.
func insc(op Op, aux auxKind, cond Cond, a, b, c argKind) entry {
	return entry{op: op, aux: aux | auxCond, cond: cond, args: [3]argKind{a, b, c}}
}

// bit 16, major 0x00
var tabB = [2]entry{
	0: ins(OpB, auxQ|auxN5, argS21, 0, 0),
	1: ins(OpB, auxN5, argS25, 0, 0),
}

// bit 17, major 0x01, bit 16 clear
var tabBL = [2]entry{
	0: ins(OpBL, auxQ|auxN5, argS21L, 0, 0),
	1: ins(OpBL, auxN5, argS25L, 0, 0),
}

// bits 3..0, major 0x01, bit 16 set, bit 4 clear
var tabBRRegReg = [0x10]entry{
	0x00: insc(OpBR, auxN5, CondEQ, argB32, argC32, argS9),
	0x01: insc(OpBR, auxN5, CondNE, argB32, argC32, argS9),
	0x02: insc(OpBR, auxN5, CondLT, argB32, argC32, argS9),
	0x03: insc(OpBR, auxN5, CondGE, argB32, argC32, argS9),
	0x04: insc(OpBR, auxN5, CondLO, argB32, argC32, argS9),
	0x05: insc(OpBR, auxN5, CondHS, argB32, argC32, argS9),
	0x0E: ins(OpBBIT0, auxN5, argB32, argC32, argS9),
	0x0F: ins(OpBBIT1, auxN5, argB32, argC32, argS9),
}

// bits 3..0, major 0x01, bit 16 set, bit 4 set
var tabBRRegImm = [0x10]entry{
	0x00: insc(OpBR, auxN5, CondEQ, argB32, argU6, argS9),
	0x01: insc(OpBR, auxN5, CondNE, argB32, argU6, argS9),
	0x02: insc(OpBR, auxN5, CondLT, argB32, argU6, argS9),
	0x03: insc(OpBR, auxN5, CondGE, argB32, argU6, argS9),
	0x04: insc(OpBR, auxN5, CondLO, argB32, argU6, argS9),
	0x05: insc(OpBR, auxN5, CondHS, argB32, argU6, argS9),
	0x0E: ins(OpBBIT0, auxN5, argB32, argU6, argS9),
	0x0F: ins(OpBBIT1, auxN5, argB32, argU6, argS9),
}

// bit 4, major 0x01, bit 16 set
var tabBR = [2]entry{
	0: sub(3, 0, tabBRRegReg[:]),
	1: sub(3, 0, tabBRRegImm[:]),
}

// bit 16, major 0x01
var tabMaj1 = [2]entry{
	0: sub(17, 17, tabBL[:]),
	1: sub(4, 4, tabBR[:]),
}

// bits 14..12 & 26..24, major 0x04, 21..16 = 0x2F, 5..0 = 0x3F
var tabZOP = [0x40]entry{
	0x01: ins(OpSLEEP, 0, argGenC, 0, 0),
	0x02: ins(OpSWI, 0, 0, 0, 0),
	0x03: ins(OpSYNC, 0, 0, 0, 0),
	0x04: ins(OpRTIE, 0, 0, 0, 0),
	0x05: ins(OpBRK, 0, 0, 0, 0),
}

// bits 5..0, major 0x04, 21..16 = 0x2F
var tabSOP = [0x40]entry{
	0x00: ins(OpASL, 0, argGenB, argGenC, 0),
	0x01: ins(OpASR, 0, argGenB, argGenC, 0),
	0x02: ins(OpLSR, 0, argGenB, argGenC, 0),
	0x03: ins(OpROR, 0, argGenB, argGenC, 0),
	0x04: ins(OpRRC, 0, argGenB, argGenC, 0),
	0x05: ins(OpSEXB, 0, argGenB, argGenC, 0),
	0x06: ins(OpSEXW, 0, argGenB, argGenC, 0),
	0x07: ins(OpEXTB, 0, argGenB, argGenC, 0),
	0x08: ins(OpEXTW, 0, argGenB, argGenC, 0),
	0x09: ins(OpABS, 0, argGenB, argGenC, 0),
	0x0A: ins(OpNOT, 0, argGenB, argGenC, 0),
	0x0B: ins(OpRLC, 0, argGenB, argGenC, 0),
	0x0C: ins(OpEX, 0, argGenB, argGenC|argInd, 0),
	0x3F: sub2(14, 12, 26, 24, tabZOP[:]),
}

// bits 21..16, major 0x04
var tabMaj4 = [0x40]entry{
	0x00: ins(OpADD, auxGen, argGenA, argGenB, argGenC),
	0x01: ins(OpADC, auxGen, argGenA, argGenB, argGenC),
	0x02: ins(OpSUB, auxGen, argGenA, argGenB, argGenC),
	0x03: ins(OpSBC, auxGen, argGenA, argGenB, argGenC),
	0x04: ins(OpAND, auxGen, argGenA, argGenB, argGenC),
	0x05: ins(OpOR, auxGen, argGenA, argGenB, argGenC),
	0x06: ins(OpBIC, auxGen, argGenA, argGenB, argGenC),
	0x07: ins(OpXOR, auxGen, argGenA, argGenB, argGenC),
	0x08: ins(OpMAX, auxGen, argGenA, argGenB, argGenC),
	0x09: ins(OpMIN, auxGen, argGenA, argGenB, argGenC),
	0x0A: ins(OpMOV, auxGen, argGenB, argGenC, 0),
	0x0B: ins(OpTST, auxGen2, argGenB, argGenC, 0),
	0x0C: ins(OpCMP, auxGen2, argGenB, argGenC, 0),
	0x0D: ins(OpRCMP, auxGen, argGenB, argGenC, 0),
	0x0E: ins(OpRSUB, auxGen, argGenA, argGenB, argGenC),
	0x0F: ins(OpBSET, auxGen, argGenA, argGenB, argGenC),
	0x10: ins(OpBCLR, auxGen, argGenA, argGenB, argGenC),
	0x11: ins(OpBTST, auxGen2, argGenB, argGenC, 0),
	0x12: ins(OpBXOR, auxGen, argGenA, argGenB, argGenC),
	0x13: ins(OpBMSK, auxGen, argGenA, argGenB, argGenC),
	0x14: ins(OpADD1, auxGen, argGenA, argGenB, argGenC),
	0x15: ins(OpADD2, auxGen, argGenA, argGenB, argGenC),
	0x16: ins(OpADD3, auxGen, argGenA, argGenB, argGenC),
	0x17: ins(OpSUB1, auxGen, argGenA, argGenB, argGenC),
	0x18: ins(OpSUB2, auxGen, argGenA, argGenB, argGenC),
	0x19: ins(OpSUB3, auxGen, argGenA, argGenB, argGenC),
	0x1A: ins(OpMPY, auxGen, argGenA, argGenB, argGenC),
	0x1B: ins(OpMPYH, auxGen, argGenA, argGenB, argGenC),
	0x1C: ins(OpMPYHU, auxGen, argGenA, argGenB, argGenC),
	0x1D: ins(OpMPYU, auxGen, argGenA, argGenB, argGenC),
	0x20: ins(OpJ, auxGen, argGenC|argInd, 0, 0),
	0x21: ins(OpJ, auxGen|auxDelay, argGenC|argInd, 0, 0),
	0x22: ins(OpJL, auxGen, argGenC|argInd, 0, 0),
	0x23: ins(OpJL, auxGen|auxDelay, argGenC|argInd, 0, 0),
	0x28: ins(OpLP, auxGen2, argGenCPCRel, 0, 0),
	0x29: ins(OpFLAG, auxGen2, argGenC, 0, 0),
	0x2A: ins(OpLR, 0, argGenB, argGenC|argInd, 0),
	0x2B: ins(OpSR, 0, argGenB, argGenC|argInd, 0),
	0x2F: sub(5, 0, tabSOP[:]),
	0x30: ins(OpLD, auxLoadRegReg, argA32, argBCInd, 0),
	0x31: ins(OpLD, auxLoadRegReg, argA32, argBCInd, 0),
	0x32: ins(OpLD, auxLoadRegReg, argA32, argBCInd, 0),
	0x33: ins(OpLD, auxLoadRegReg, argA32, argBCInd, 0),
	0x34: ins(OpLD, auxLoadRegReg, argA32, argBCInd, 0),
	0x35: ins(OpLD, auxLoadRegReg, argA32, argBCInd, 0),
	0x36: ins(OpLD, auxLoadRegReg, argA32, argBCInd, 0),
	0x37: ins(OpLD, auxLoadRegReg, argA32, argBCInd, 0),
}

// bits 14..12 & 26..24, major 0x05, 21..16 = 0x2F, 5..0 = 0x3F.
// No zero-operand extension instructions are allocated.
var tabZOP5 = [0x40]entry{}

// bits 5..0, major 0x05, 21..16 = 0x2F
var tabSOP5 = [0x40]entry{
	0x00: ins(OpSWAP, auxGen, argGenB, argGenC, 0),
	0x01: ins(OpNORM, auxGen, argGenB, argGenC, 0),
	0x02: ins(OpSAT16, auxGen, argGenB, argGenC, 0),
	0x03: ins(OpRND16, auxGen, argGenB, argGenC, 0),
	0x04: ins(OpABSSW, auxGen, argGenB, argGenC, 0),
	0x05: ins(OpABSS, auxGen, argGenB, argGenC, 0),
	0x06: ins(OpNEGSW, auxGen, argGenB, argGenC, 0),
	0x07: ins(OpNEGS, auxGen, argGenB, argGenC, 0),
	0x08: ins(OpNORMW, auxGen, argGenB, argGenC, 0),
	0x3F: sub2(14, 12, 26, 24, tabZOP5[:]),
}

// bits 21..16, major 0x05
var tabMaj5 = [0x40]entry{
	0x00: ins(OpASL, auxGen, argGenA, argGenB, argGenC),
	0x01: ins(OpLSR, auxGen, argGenA, argGenB, argGenC),
	0x02: ins(OpASR, auxGen, argGenA, argGenB, argGenC),
	0x03: ins(OpROR, auxGen, argGenA, argGenB, argGenC),
	0x04: ins(OpMUL64, auxGen, argZero, argGenB, argGenC),
	0x05: ins(OpMULU64, auxGen, argZero, argGenB, argGenC),
	0x06: ins(OpADDS, auxGen, argGenA, argGenB, argGenC),
	0x07: ins(OpSUBS, auxGen, argGenA, argGenB, argGenC),
	0x08: ins(OpDIVAW, auxGen, argGenA, argGenB, argGenC),
	0x0A: ins(OpASLS, auxGen, argGenA, argGenB, argGenC),
	0x0B: ins(OpASRS, auxGen, argGenB, argGenC, argGenC),
	0x0C: ins(OpMULDW, auxGen, argGenB, argGenC, argGenC),
	0x0D: ins(OpMULUDW, auxGen, argGenB, argGenC, argGenC),
	0x0E: ins(OpMULRDW, auxGen, argGenB, argGenC, argGenC),
	0x10: ins(OpMACDW, auxGen, argGenB, argGenC, argGenC),
	0x11: ins(OpMACUDW, auxGen, argGenB, argGenC, argGenC),
	0x12: ins(OpMACRDW, auxGen, argGenB, argGenC, argGenC),
	0x14: ins(OpMSUBDW, auxGen, argGenB, argGenC, argGenC),
	0x28: ins(OpADDSDW, auxGen, argGenA, argGenB, argGenC),
	0x29: ins(OpSUBSDW, auxGen, argGenA, argGenB, argGenC),
	0x2F: sub(5, 0, tabSOP5[:]),
	0x30: ins(OpMULULW, auxGen, argGenB, argGenC, argGenC),
	0x31: ins(OpMULLW, auxGen, argGenB, argGenC, argGenC),
	0x32: ins(OpMULFLW, auxGen, argGenB, argGenC, argGenC),
	0x33: ins(OpMACLW, auxGen, argGenB, argGenC, argGenC),
	0x34: ins(OpMACFLW, auxGen, argGenB, argGenC, argGenC),
	0x35: ins(OpMACHULW, auxGen, argGenB, argGenC, argGenC),
	0x36: ins(OpMACHLW, auxGen, argGenB, argGenC, argGenC),
	0x37: ins(OpMACHFLW, auxGen, argGenB, argGenC, argGenC),
	0x38: ins(OpMULHLW, auxGen, argGenB, argGenC, argGenC),
	0x39: ins(OpMULHFLW, auxGen, argGenB, argGenC, argGenC),
}

// bits 4..3, major 0x0C
var tabMaj0C = [4]entry{
	0x0: ins(OpLD, 0, argA16, argBC16Ind, 0),
	0x1: ins(OpLD, auxByte, argA16, argBC16Ind, 0),
	0x2: ins(OpLD, auxHalf, argA16, argBC16Ind, 0),
	0x3: ins(OpADD, 0, argA16, argB16, argC16),
}

// bits 4..3, major 0x0D
var tabMaj0D = [4]entry{
	0x0: ins(OpADD, 0, argC16, argB16, argU3),
	0x1: ins(OpSUB, 0, argC16, argB16, argU3),
	0x2: ins(OpASL, 0, argC16, argB16, argU3),
	0x3: ins(OpASR, 0, argC16, argB16, argU3),
}

// bits 4..3, major 0x0E
var tabMaj0E = [4]entry{
	0x0: ins(OpADD, 0, argB16, argB16, argH16),
	0x1: ins(OpMOV, 0, argB16, argH16, 0),
	0x2: ins(OpCMP, 0, argB16, argH16, 0),
	0x3: ins(OpMOV, 0, argH16, argB16, 0),
}

// bits 10..8, major 0x0F, 7..5 = 7, 4..0 = 0
var tabZOP16 = [8]entry{
	0x0: ins(OpNOP, 0, 0, 0, 0),
	0x1: ins(OpUNIMP, 0, 0, 0, 0),
	0x4: insc(OpJ, 0, CondEQ, argBlink|argInd, 0, 0),
	0x5: insc(OpJ, 0, CondNE, argBlink|argInd, 0, 0),
	0x6: ins(OpJ, 0, argBlink|argInd, 0, 0),
	0x7: ins(OpJ, auxDelay, argBlink|argInd, 0, 0),
}

// bits 7..5, major 0x0F, 4..0 = 0
var tabSOP16 = [8]entry{
	0x0: ins(OpJ, 0, argB16|argInd, 0, 0),
	0x1: ins(OpJ, auxDelay, argB16|argInd, 0, 0),
	0x2: ins(OpJL, 0, argB16|argInd, 0, 0),
	0x3: ins(OpJL, auxDelay, argB16|argInd, 0, 0),
	0x6: insc(OpSUB, 0, CondNE, argB16, argB16, argB16),
	0x7: sub(10, 8, tabZOP16[:]),
}

// bits 4..0, major 0x0F
var tabMaj0F = [0x20]entry{
	0x00: sub(7, 5, tabSOP16[:]),
	0x02: ins(OpSUB, 0, argB16, argB16, argC16),
	0x04: ins(OpAND, 0, argB16, argB16, argC16),
	0x05: ins(OpOR, 0, argB16, argB16, argC16),
	0x06: ins(OpBIC, 0, argB16, argB16, argC16),
	0x07: ins(OpXOR, 0, argB16, argB16, argC16),
	0x0B: ins(OpTST, 0, argB16, argC16, 0),
	0x0C: ins(OpMUL64, 0, argB16, argC16, 0),
	0x0D: ins(OpSEXB, 0, argB16, argC16, 0),
	0x0E: ins(OpSEXW, 0, argB16, argC16, 0),
	0x0F: ins(OpEXTB, 0, argB16, argC16, 0),
	0x10: ins(OpEXTW, 0, argB16, argC16, 0),
	0x11: ins(OpABS, 0, argB16, argC16, 0),
	0x12: ins(OpNOT, 0, argB16, argC16, 0),
	0x13: ins(OpNEG, 0, argB16, argC16, 0),
	0x14: ins(OpADD1, 0, argB16, argB16, argC16),
	0x15: ins(OpADD2, 0, argB16, argB16, argC16),
	0x16: ins(OpADD3, 0, argB16, argB16, argC16),
	0x18: ins(OpASL, 0, argB16, argB16, argC16),
	0x19: ins(OpLSR, 0, argB16, argB16, argC16),
	0x1A: ins(OpASR, 0, argB16, argB16, argC16),
	0x1B: ins(OpASL, 0, argB16, argC16, 0),
	0x1C: ins(OpASR, 0, argB16, argC16, 0),
	0x1D: ins(OpLSR, 0, argB16, argC16, 0),
	0x1E: ins(OpTRAP, 0, 0, 0, 0),
	0x1F: ins(OpBRK, 0, 0, 0, 0),
}

// bits 7..5, major 0x17
var tabMaj17 = [8]entry{
	0x0: ins(OpASL, 0, argB16, argB16, argU5),
	0x1: ins(OpLSR, 0, argB16, argB16, argU5),
	0x2: ins(OpASR, 0, argB16, argB16, argU5),
	0x3: ins(OpSUB, 0, argB16, argB16, argU5),
	0x4: ins(OpBSET, 0, argB16, argB16, argU5),
	0x5: ins(OpBCLR, 0, argB16, argB16, argU5),
	0x6: ins(OpBMSK, 0, argB16, argB16, argU5),
	0x7: ins(OpBTST, 0, argB16, argU5, 0),
}

// bits 10..8, major 0x18, 7..5 = 5
var tabSPAddSub = [8]entry{
	0x0: ins(OpADD, 0, argSP, argSP, argU7L),
	0x1: ins(OpSUB, 0, argSP, argSP, argU7L),
}

// bits 4..0, major 0x18, 7..5 = 6
var tabSPPop = [0x20]entry{
	0x01: ins(OpPOP, 0, argB16, 0, 0),
	0x11: ins(OpPOP, 0, argBlink, 0, 0),
}

// bits 4..0, major 0x18, 7..5 = 7
var tabSPPush = [0x20]entry{
	0x01: ins(OpPUSH, 0, argB16, 0, 0),
	0x11: ins(OpPUSH, 0, argBlink, 0, 0),
}

// bits 7..5, major 0x18: sp-based loads, stores and adjustments
var tabMaj18 = [8]entry{
	0x0: ins(OpLD, 0, argB16, argSPU7, 0),
	0x1: ins(OpLD, auxByte, argB16, argSPU7, 0),
	0x2: ins(OpST, 0, argB16, argSPU7, 0),
	0x3: ins(OpST, auxByte, argB16, argSPU7, 0),
	0x4: ins(OpADD, 0, argB16, argSP, argU7L),
	0x5: sub(10, 8, tabSPAddSub[:]),
	0x6: sub(4, 0, tabSPPop[:]),
	0x7: sub(4, 0, tabSPPush[:]),
}

// bits 10..9, major 0x19: gp-based loads and add
var tabMaj19 = [4]entry{
	0x0: ins(OpLD, 0, argR0, argGPS11, 0),
	0x1: ins(OpLD, auxByte, argR0, argGPS9, 0),
	0x2: ins(OpLD, auxHalf, argR0, argGPS10, 0),
	0x3: ins(OpADD, 0, argR0, argGP, argS11),
}

// bit 7, major 0x1C
var tabMaj1C = [2]entry{
	0: ins(OpADD, 0, argB16, argB16, argU7),
	1: ins(OpCMP, 0, argB16, argU7, 0),
}

// bit 7, major 0x1D
var tabMaj1D = [2]entry{
	0: insc(OpBR, 0, CondEQ, argB16, argZero, argS8),
	1: insc(OpBR, 0, CondNE, argB16, argZero, argS8),
}

// bits 8..6, major 0x1E, 10..9 = 3
var tabBcc16 = [8]entry{
	0x0: insc(OpB, 0, CondGT, argS7, 0, 0),
	0x1: insc(OpB, 0, CondGE, argS7, 0, 0),
	0x2: insc(OpB, 0, CondLT, argS7, 0, 0),
	0x3: insc(OpB, 0, CondLE, argS7, 0, 0),
	0x4: insc(OpB, 0, CondHI, argS7, 0, 0),
	0x5: insc(OpB, 0, CondHS, argS7, 0, 0),
	0x6: insc(OpB, 0, CondLO, argS7, 0, 0),
	0x7: insc(OpB, 0, CondLS, argS7, 0, 0),
}

// bits 10..9, major 0x1E
var tabMaj1E = [4]entry{
	0x0: ins(OpB, 0, argS10, 0, 0),
	0x1: insc(OpB, 0, CondEQ, argS10, 0, 0),
	0x2: insc(OpB, 0, CondNE, argS10, 0, 0),
	0x3: sub(8, 6, tabBcc16[:]),
}

// tabMajor is indexed by the major opcode, bits 15..11 of the first
// halfword.
var tabMajor = [0x20]entry{
	0x00: sub(16, 16, tabB[:]),
	0x01: sub(16, 16, tabMaj1[:]),
	0x02: ins(OpLD, auxLoad, argA32, argBS9, 0),
	0x03: ins(OpST, auxStore, argC32, argBS9, 0),
	0x04: sub(21, 16, tabMaj4[:]),
	0x05: sub(21, 16, tabMaj5[:]),
	0x0C: sub(4, 3, tabMaj0C[:]),
	0x0D: sub(4, 3, tabMaj0D[:]),
	0x0E: sub(4, 3, tabMaj0E[:]),
	0x0F: sub(4, 0, tabMaj0F[:]),
	0x10: ins(OpLD, 0, argC16, argBU7, 0),
	0x11: ins(OpLD, auxByte, argC16, argBU5, 0),
	0x12: ins(OpLD, auxHalf, argC16, argBU6, 0),
	0x13: ins(OpLD, auxHalf|auxSignExt, argC16, argBU6, 0),
	0x14: ins(OpST, 0, argC16, argBU7, 0),
	0x15: ins(OpST, auxByte, argC16, argBU5, 0),
	0x16: ins(OpST, auxHalf, argC16, argBU6, 0),
	0x17: sub(7, 5, tabMaj17[:]),
	0x18: sub(7, 5, tabMaj18[:]),
	0x19: sub(10, 9, tabMaj19[:]),
	0x1A: ins(OpLD, 0, argB16, argPCLU10, 0),
	0x1B: ins(OpMOV, 0, argB16, argU8, 0),
	0x1C: sub(7, 7, tabMaj1C[:]),
	0x1D: sub(7, 7, tabMaj1D[:]),
	0x1E: sub(10, 9, tabMaj1E[:]),
	0x1F: ins(OpBL, 0, argS13, 0, 0),
}
