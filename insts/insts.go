// Package insts provides ARC instruction definitions and decoding.
//
// This package decodes ARC machine code into structured instruction
// records. Two encodings are supported:
//   - Legacy (ARCtangent-A4): fixed 32-bit words, with assembler aliases
//     such as MOV, LSL, RLC and NOP recognized from their canonical form.
//   - Compact (ARCompact): 16-bit and 32-bit instructions, optionally
//     followed by a 32-bit long immediate, decoded by walking a hierarchy
//     of opcode tables.
//
// Usage:
//
//	mem := insts.NewByteMemory(0x1000, code, binary.LittleEndian)
//	decoder := insts.NewDecoder(mem, insts.WithConfig(insts.DefaultConfig()))
//	inst, err := decoder.Decode(0x1000)
//	fmt.Printf("Op: %v, Size: %d, Ops: %v\n", inst.Op, inst.Size, inst.Operands)
package insts
