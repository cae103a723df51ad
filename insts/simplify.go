package insts

// fixLoadStore narrows the memory operand of byte and halfword loads and
// stores.
func fixLoadStore(inst *Instruction) {
	if !inst.Op.IsLoadStore() {
		return
	}

	switch inst.Aux.Size() {
	case AuxSizeByte:
		inst.Operands[1].Width = WidthByte
	case AuxSizeHalf:
		inst.Operands[1].Width = WidthHalf
	}
}

// simplify folds encodings into their canonical aliases:
//
//	ld.as r1, [r2, n]   ->  ld r1, [r2, n*size]
//	add2 r1, r2, #n     ->  add r1, r2, #n*4
//	sub.f 0, r1, r2     ->  cmp r1, r2
//
// The result is a fixed point: simplifying it again changes nothing.
func simplify(inst *Instruction) {
	if inst.Op.IsLoadStore() {
		collapseScaled(inst)
		return
	}

	foldIndexed(inst)
	foldCompare(inst)
}

func collapseScaled(inst *Instruction) {
	mem := &inst.Operands[1]
	if mem.Type != OperandDispl || mem.BaseSecond || inst.Aux.Mode() != AuxModeAS {
		return
	}

	var scale uint32
	switch inst.Aux.Size() {
	case AuxSizeWord:
		scale = 4
	case AuxSizeHalf:
		scale = 2
	default:
		return
	}

	mem.Addr *= scale
	inst.Aux &^= AuxModeMask
}

func foldIndexed(inst *Instruction) {
	var op Op
	var scale uint32

	switch inst.Op {
	case OpADD1:
		op, scale = OpADD, 2
	case OpADD2:
		op, scale = OpADD, 4
	case OpADD3:
		op, scale = OpADD, 8
	case OpSUB1:
		op, scale = OpSUB, 2
	case OpSUB2:
		op, scale = OpSUB, 4
	case OpSUB3:
		op, scale = OpSUB, 8
	default:
		return
	}

	if inst.Operands[2].Type != OperandImm {
		return
	}

	inst.Operands[2].Value *= scale
	inst.Op = op
}

func foldCompare(inst *Instruction) {
	if inst.Op != OpSUB || !inst.Aux.SetsFlags() || !inst.Operands[0].IsImm(0) {
		return
	}

	inst.Op = OpCMP
	inst.Aux &^= AuxFlags
	inst.Operands[0] = inst.Operands[1]
	inst.Operands[1] = inst.Operands[2]
	inst.Operands[2] = Operand{}
}

// inlineConst turns a word load from [pcl, n] into a load from the
// absolute address when mapped reports that address as holding data.
func inlineConst(inst *Instruction, mapped func(uint32) bool) {
	mem := &inst.Operands[1]
	if inst.Op != OpLD || mem.Type != OperandDispl || mem.Reg != RegPCL {
		return
	}
	if inst.Aux&(AuxModeA|AuxSizeMask) != 0 {
		return
	}

	target := inst.Address&^3 + mem.Addr
	if !mapped(target) {
		return
	}

	mem.Type = OperandMem
	mem.Addr = target
	inst.Aux |= AuxPCLoad
}
