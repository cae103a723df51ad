package image_test

import (
	"encoding/binary"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/arcdec/cache"
	"github.com/sarchlab/arcdec/image"
	"github.com/sarchlab/arcdec/insts"
	"github.com/sarchlab/arcdec/loader"
)

var _ = Describe("Image", func() {
	var prog *loader.Program

	BeforeEach(func() {
		prog = &loader.Program{
			EntryPoint: 0x1000,
			ByteOrder:  binary.LittleEndian,
			Segments: []loader.Segment{
				{
					VirtAddr: 0x2000,
					Data:     []byte{0x11, 0x22, 0x33, 0x44},
					MemSize:  0x10,
					Flags:    loader.SegmentFlagRead | loader.SegmentFlagWrite,
				},
				{
					// mov_s r1, 0xDEADBEEF; nop_s
					VirtAddr: 0x1000,
					Data:     []byte{0xCF, 0x71, 0xAD, 0xDE, 0xEF, 0xBE, 0xE0, 0x78},
					MemSize:  8,
					Flags:    loader.SegmentFlagRead | loader.SegmentFlagExecute,
				},
			},
		}
	})

	It("should order segments by address", func() {
		m, err := image.New(prog)
		Expect(err).NotTo(HaveOccurred())

		segs := m.Segments()
		Expect(segs).To(HaveLen(2))
		Expect(segs[0].VirtAddr).To(Equal(uint32(0x1000)))
		Expect(segs[1].VirtAddr).To(Equal(uint32(0x2000)))
	})

	It("should report mapped addresses", func() {
		m, err := image.New(prog)
		Expect(err).NotTo(HaveOccurred())

		Expect(m.IsMapped(0x1000)).To(BeTrue())
		Expect(m.IsMapped(0x1007)).To(BeTrue())
		Expect(m.IsMapped(0x1008)).To(BeFalse())
		Expect(m.IsMapped(0x200F)).To(BeTrue())
		Expect(m.IsMapped(0x0FFF)).To(BeFalse())
	})

	It("should read halfwords and words in the program's byte order", func() {
		m, err := image.New(prog)
		Expect(err).NotTo(HaveOccurred())

		h, err := m.Read16(0x1000)
		Expect(err).NotTo(HaveOccurred())
		Expect(h).To(Equal(uint16(0x71CF)))

		w, err := m.Read32(0x2000)
		Expect(err).NotTo(HaveOccurred())
		Expect(w).To(Equal(uint32(0x44332211)))
	})

	It("should read the zero-filled tail of a segment", func() {
		m, err := image.New(prog)
		Expect(err).NotTo(HaveOccurred())

		w, err := m.Read32(0x2008)
		Expect(err).NotTo(HaveOccurred())
		Expect(w).To(BeZero())
	})

	It("should fail reads that leave the image", func() {
		m, err := image.New(prog)
		Expect(err).NotTo(HaveOccurred())

		_, err = m.Read32(0x1006)
		Expect(err).To(MatchError(insts.ErrTruncated))

		_, err = m.Read16(0x3000)
		Expect(err).To(MatchError(insts.ErrTruncated))

		_, err = m.Read32(0xFFFFFFFE)
		Expect(err).To(MatchError(insts.ErrTruncated))
	})

	It("should serve repeated fetches from the cache", func() {
		m, err := image.New(prog)
		Expect(err).NotTo(HaveOccurred())

		_, _ = m.Read16(0x1000)
		_, _ = m.Read16(0x1002)

		stats := m.CacheStats()
		Expect(stats.Misses).To(Equal(uint64(1)))
		Expect(stats.Hits).To(Equal(uint64(1)))
	})

	It("should honor big-endian programs", func() {
		prog.ByteOrder = binary.BigEndian
		m, err := image.New(prog)
		Expect(err).NotTo(HaveOccurred())

		w, err := m.Read32(0x2000)
		Expect(err).NotTo(HaveOccurred())
		Expect(w).To(Equal(uint32(0x11223344)))
	})

	It("should reject overlapping segments", func() {
		prog.Segments[0].VirtAddr = 0x1004
		_, err := image.New(prog)
		Expect(err).To(HaveOccurred())
	})

	It("should reject an invalid cache geometry", func() {
		config := cache.DefaultConfig()
		config.BlockSize = 3
		_, err := image.New(prog, image.WithCacheConfig(config))
		Expect(err).To(HaveOccurred())
	})

	It("should feed a decoder", func() {
		m, err := image.New(prog, image.WithCacheConfig(cache.Config{
			Size: 256, Associativity: 1, BlockSize: 16,
		}))
		Expect(err).NotTo(HaveOccurred())

		d := insts.NewDecoder(m)

		inst, err := d.Decode(0x1000)
		Expect(err).NotTo(HaveOccurred())
		Expect(inst.Op).To(Equal(insts.OpMOV))
		Expect(inst.Size).To(Equal(uint32(6)))
		Expect(inst.Operands[1].Value).To(Equal(uint32(0xDEADBEEF)))

		inst, err = d.Decode(0x1006)
		Expect(err).NotTo(HaveOccurred())
		Expect(inst.Op).To(Equal(insts.OpNOP))

		_, err = d.Decode(0x1008)
		Expect(err).To(MatchError(insts.ErrTruncated))
	})
})
