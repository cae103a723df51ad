package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/arcdec/insts"
)

var _ = Describe("Legacy Decoder", func() {
	decode := func(addr uint32, ws ...uint32) (insts.Instruction, error) {
		return newDecoder(0x1000, words(ws...), legacyConfig()).Decode(addr)
	}

	Describe("Pseudo-instruction folding", func() {
		// ADD r1, #63, #63 -> 0x403FFE3F
		// Encoding: i=8, a=1, b=63, c=63, d=0x3F
		It("should fold add of a shared short immediate to a doubled mov", func() {
			inst, err := decode(0x1000, 0x403FFE3F)

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Size).To(Equal(uint32(4)))
			Expect(inst.Op).To(Equal(insts.OpMOV))
			Expect(inst.NumOperands()).To(Equal(2))
			Expect(inst.Operands[0]).To(Equal(reg(1)))
			Expect(inst.Operands[1]).To(Equal(immediate(0x7E)))
			Expect(inst.Aux).To(Equal(insts.Aux(0)))
		})

		// ADD r1, r2, r0 -> 0x4021003F
		// Encoding: i=8, a=1, b=2, c=0, flags 0x3F
		It("should leave add with distinct sources alone", func() {
			inst, err := decode(0x1000, 0x4021003F)

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Op).To(Equal(insts.OpADD))
			Expect(inst.Operands).To(Equal([3]insts.Operand{reg(1), reg(2), reg(0)}))
		})

		// ADD r1, r2, r2 -> 0x40210400
		It("should fold add of a shared register to lsl", func() {
			inst, err := decode(0x1000, 0x40210400)

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Op).To(Equal(insts.OpLSL))
			Expect(inst.Operands).To(Equal([3]insts.Operand{reg(1), reg(2), {}}))
		})

		// AND r1, r2, r2 -> 0x60210400
		It("should fold and of a shared register to mov", func() {
			inst, err := decode(0x1000, 0x60210400)

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Op).To(Equal(insts.OpMOV))
			Expect(inst.NumOperands()).To(Equal(2))
		})

		// ADC r1, r2, r2 -> 0x48210400
		It("should fold adc of a shared register to rlc", func() {
			inst, err := decode(0x1000, 0x48210400)

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Op).To(Equal(insts.OpRLC))
			Expect(inst.Operands[1]).To(Equal(reg(2)))
			Expect(inst.NumOperands()).To(Equal(2))
		})

		// XOR 0x1FF, 0x1FF, 0x1FF -> 0x7FFFFFFF
		It("should decode the all-ones xor as nop", func() {
			inst, err := decode(0x1000, 0x7FFFFFFF)

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Op).To(Equal(insts.OpNOP))
			Expect(inst.NumOperands()).To(Equal(0))
			Expect(inst.Aux).To(Equal(insts.Aux(0)))
			Expect(inst.Size).To(Equal(uint32(4)))
		})
	})

	Describe("Long immediates", func() {
		// SUB r1, limm, limm -> 0x503F7C00, 0xCAFEBABE
		// Encoding: i=10, a=1, b=62, c=62
		It("should fetch a shared long immediate once", func() {
			inst, err := decode(0x1000, 0x503F7C00, 0xCAFEBABE)

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Op).To(Equal(insts.OpSUB))
			Expect(inst.Size).To(Equal(uint32(8)))
			Expect(inst.Operands[1]).To(Equal(immediate(0xCAFEBABE)))
			Expect(inst.Operands[2]).To(Equal(immediate(0xCAFEBABE)))
		})

		It("should report a long immediate past the end of memory", func() {
			inst, err := decode(0x1000, 0x503F7C00)

			Expect(err).To(MatchError(insts.ErrTruncated))
			Expect(inst.Size).To(Equal(uint32(0)))
		})
	})

	Describe("Branches", func() {
		// B +1 word -> 0x20000080
		// Encoding: i=4, l=1
		It("should decode a forward branch relative to the next word", func() {
			inst, err := decode(0x1000, 0x20000080)

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Op).To(Equal(insts.OpB))
			Expect(inst.Operands[0]).To(Equal(near(0x1008)))
		})

		// BL -1 word -> 0x2FFFFF80
		// Encoding: i=5, l=-1
		It("should decode a backward branch and link", func() {
			inst, err := decode(0x1000, 0x2FFFFF80)

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Op).To(Equal(insts.OpBL))
			Expect(inst.Operands[0]).To(Equal(near(0x1000)))
		})

		// LP -> 0x30000100
		// Encoding: i=6, l=2
		It("should decode a loop setup", func() {
			inst, err := decode(0x1000, 0x30000100)

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Op).To(Equal(insts.OpLP))
			Expect(inst.Operands[0]).To(Equal(near(0x100C)))
		})

		// J 0x40 -> 0x381F8010
		// Encoding: i=7, b=63, d=0x10 (words)
		It("should decode an absolute jump through the short immediate", func() {
			inst, err := decode(0x1000, 0x381F8010)

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Op).To(Equal(insts.OpJ))
			Expect(inst.Operands[0]).To(Equal(near(0x40)))
			Expect(inst.Aux).To(Equal(insts.Aux(0)))
		})

		// JL limm -> 0x381F0200, 0xFE000100
		// Encoding: i=7, b=62, bit 9 set; top 7 bits of limm are flags
		It("should mask the flag bits of a long-immediate jump target", func() {
			inst, err := decode(0x1000, 0x381F0200, 0xFE000100)

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Op).To(Equal(insts.OpJL))
			Expect(inst.Size).To(Equal(uint32(8)))
			Expect(inst.Operands[0]).To(Equal(near(0x400)))
		})
	})

	Describe("Loads and stores", func() {
		// LD r1, [r2, r3] -> 0x00210600
		It("should decode a register pair load", func() {
			inst, err := decode(0x1000, 0x00210600)

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Op).To(Equal(insts.OpLD))
			Expect(inst.Operands[0]).To(Equal(reg(1)))
			Expect(inst.Operands[1]).To(Equal(insts.Operand{
				Type: insts.OperandPhrase, Reg: 2, Index: 3,
			}))
		})

		// LD r1, [r2, 8] -> 0x08210008
		It("should decode a displacement load", func() {
			inst, err := decode(0x1000, 0x08210008)

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Op).To(Equal(insts.OpLD))
			Expect(inst.Operands[1]).To(Equal(insts.Operand{
				Type: insts.OperandDispl, Reg: 2, Addr: 8,
			}))
		})

		// LDB r1, [r2, 8] -> 0x08210408
		// Encoding: flags in 14..9 select byte size
		It("should narrow a byte load", func() {
			inst, err := decode(0x1000, 0x08210408)

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Aux.Size()).To(Equal(insts.AuxSizeByte))
			Expect(inst.Operands[1].Width).To(Equal(insts.WidthByte))
		})

		// LR r1, [r2] -> 0x08212008
		// Encoding: i=1, bit 13 set
		It("should decode an auxiliary register read with no offset", func() {
			inst, err := decode(0x1000, 0x08212008)

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Op).To(Equal(insts.OpLR))
			Expect(inst.Aux).To(Equal(insts.Aux(0)))
			Expect(inst.Operands[1]).To(Equal(insts.Operand{
				Type: insts.OperandDispl, Reg: 2, Addr: 0,
			}))
		})

		// ST r3, [r2, 4] -> 0x10010604
		It("should take the stored value from c", func() {
			inst, err := decode(0x1000, 0x10010604)

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Op).To(Equal(insts.OpST))
			Expect(inst.Operands[0]).To(Equal(reg(3)))
			Expect(inst.Operands[1]).To(Equal(insts.Operand{
				Type: insts.OperandDispl, Reg: 2, Addr: 4,
			}))
		})

		// SR r3, [r2] -> 0x12010604
		// Encoding: i=2, bit 25 set
		It("should decode an auxiliary register write", func() {
			inst, err := decode(0x1000, 0x12010604)

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Op).To(Equal(insts.OpSR))
			Expect(inst.Operands[0]).To(Equal(reg(3)))
			Expect(inst.Operands[1].Addr).To(Equal(uint32(0)))
		})
	})

	Describe("Single operand instructions", func() {
		// ASR r1, r2 -> 0x18210200
		It("should decode asr", func() {
			inst, err := decode(0x1000, 0x18210200)

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Op).To(Equal(insts.OpASR))
			Expect(inst.Operands).To(Equal([3]insts.Operand{reg(1), reg(2), {}}))
		})

		// FLAG r2 -> 0x18010000
		It("should move the flag source to the first operand", func() {
			inst, err := decode(0x1000, 0x18010000)

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Op).To(Equal(insts.OpFLAG))
			Expect(inst.NumOperands()).To(Equal(1))
			Expect(inst.Operands[0]).To(Equal(reg(2)))
		})

		// FLAG #5 -> 0x181F8005
		It("should keep a short immediate flag source", func() {
			inst, err := decode(0x1000, 0x181F8005)

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Op).To(Equal(insts.OpFLAG))
			Expect(inst.Operands[0]).To(Equal(immediate(5)))
		})

		// BRK -> 0x18007E00
		It("should decode brk without operands", func() {
			inst, err := decode(0x1000, 0x18007E00)

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Op).To(Equal(insts.OpBRK))
			Expect(inst.NumOperands()).To(Equal(0))
			Expect(inst.Aux).To(Equal(insts.Aux(0)))
		})

		// SLEEP -> 0x18007E01
		It("should decode sleep", func() {
			inst, err := decode(0x1000, 0x18007E01)

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Op).To(Equal(insts.OpSLEEP))
		})
	})

	Describe("Invalid encodings", func() {
		It("should reject an unallocated zero-operand selector", func() {
			inst, err := decode(0x1000, 0x18007E03)

			Expect(err).To(MatchError(insts.ErrInvalid))
			Expect(inst.Size).To(Equal(uint32(0)))
		})

		It("should reject an unallocated single-operand selector", func() {
			_, err := decode(0x1000, 0x18001600)
			Expect(err).To(MatchError(insts.ErrInvalid))
		})

		It("should reject an unallocated major opcode", func() {
			_, err := decode(0x1000, 0xB0000000)
			Expect(err).To(MatchError(insts.ErrInvalid))
		})

		It("should reject addresses that are not word aligned", func() {
			for _, addr := range []uint32{0x1001, 0x1002, 0x1003} {
				inst, err := decode(addr, 0x40210400, 0x40210400)
				Expect(err).To(MatchError(insts.ErrMisaligned))
				Expect(inst.Size).To(Equal(uint32(0)))
				Expect(inst.Address).To(Equal(addr))
			}
		})
	})
})
