package loader_test

import (
	"debug/elf"
	"encoding/binary"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/arcdec/insts"
	"github.com/sarchlab/arcdec/loader"
)

var _ = Describe("ELF Loader", func() {
	var tempDir string

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "elf-loader-test")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		_ = os.RemoveAll(tempDir)
	})

	// mov_s r1, limm; nop_s
	code := []byte{0xCF, 0x71, 0xAD, 0xDE, 0xEF, 0xBE, 0xE0, 0x78}

	Describe("Load", func() {
		Context("with a valid ARCompact ELF binary", func() {
			var elfPath string

			BeforeEach(func() {
				elfPath = filepath.Join(tempDir, "test.elf")
				createARCELF(elfPath, elf.EM_ARC_COMPACT, binary.LittleEndian, 0x10080,
					textSegment(0x10000, code))
			})

			It("should load without error", func() {
				prog, err := loader.Load(elfPath)
				Expect(err).NotTo(HaveOccurred())
				Expect(prog).NotTo(BeNil())
			})

			It("should extract the correct entry point", func() {
				prog, err := loader.Load(elfPath)
				Expect(err).NotTo(HaveOccurred())
				Expect(prog.EntryPoint).To(Equal(uint32(0x10080)))
			})

			It("should select the compact encoding", func() {
				prog, err := loader.Load(elfPath)
				Expect(err).NotTo(HaveOccurred())
				Expect(prog.Encoding).To(Equal(insts.EncodingCompact))
				Expect(prog.ByteOrder).To(Equal(binary.LittleEndian))
			})

			It("should correctly load segment contents", func() {
				prog, err := loader.Load(elfPath)
				Expect(err).NotTo(HaveOccurred())
				Expect(prog.Segments).To(HaveLen(1))
				Expect(prog.Segments[0].VirtAddr).To(Equal(uint32(0x10000)))
				Expect(prog.Segments[0].Data).To(Equal(code))
				Expect(prog.Segments[0].End()).To(Equal(uint64(0x10000 + len(code))))
			})

			It("should correctly report permissions", func() {
				prog, err := loader.Load(elfPath)
				Expect(err).NotTo(HaveOccurred())
				Expect(prog.Segments[0].Flags & loader.SegmentFlagExecute).NotTo(BeZero())
				Expect(prog.Segments[0].Flags & loader.SegmentFlagWrite).To(BeZero())
			})
		})

		Context("with other ARC machine types", func() {
			It("should select the legacy encoding for EM_ARC", func() {
				elfPath := filepath.Join(tempDir, "a4.elf")
				createARCELF(elfPath, elf.EM_ARC, binary.LittleEndian, 0x1000,
					textSegment(0x1000, []byte{0xFF, 0xFF, 0xFF, 0x7F}))

				prog, err := loader.Load(elfPath)
				Expect(err).NotTo(HaveOccurred())
				Expect(prog.Encoding).To(Equal(insts.EncodingLegacy))
			})

			It("should select the compact encoding for EM_ARC_COMPACT2", func() {
				elfPath := filepath.Join(tempDir, "hs.elf")
				createARCELF(elfPath, elf.EM_ARC_COMPACT2, binary.LittleEndian, 0x1000,
					textSegment(0x1000, code))

				prog, err := loader.Load(elfPath)
				Expect(err).NotTo(HaveOccurred())
				Expect(prog.Encoding).To(Equal(insts.EncodingCompact))
			})

			It("should keep the file's byte order", func() {
				elfPath := filepath.Join(tempDir, "be.elf")
				createARCELF(elfPath, elf.EM_ARC_COMPACT, binary.BigEndian, 0x1000,
					textSegment(0x1000, code))

				prog, err := loader.Load(elfPath)
				Expect(err).NotTo(HaveOccurred())
				Expect(prog.ByteOrder).To(Equal(binary.BigEndian))
				Expect(prog.EntryPoint).To(Equal(uint32(0x1000)))
			})
		})

		Context("with an invalid file", func() {
			It("should return error for non-existent file", func() {
				_, err := loader.Load("/nonexistent/path/to/file.elf")
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("failed to open"))
			})

			It("should return error for non-ELF file", func() {
				notElfPath := filepath.Join(tempDir, "not-elf.bin")
				err := os.WriteFile(notElfPath, []byte("not an elf file"), 0644)
				Expect(err).NotTo(HaveOccurred())

				_, err = loader.Load(notElfPath)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("ELF"))
			})

			It("should return error for empty file", func() {
				emptyPath := filepath.Join(tempDir, "empty.elf")
				err := os.WriteFile(emptyPath, []byte{}, 0644)
				Expect(err).NotTo(HaveOccurred())

				_, err = loader.Load(emptyPath)
				Expect(err).To(HaveOccurred())
			})
		})

		Context("with a non-ARC ELF", func() {
			It("should return error for an ARM ELF", func() {
				elfPath := filepath.Join(tempDir, "arm.elf")
				createARCELF(elfPath, elf.EM_ARM, binary.LittleEndian, 0x1000)

				_, err := loader.Load(elfPath)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("not an ARC"))
			})
		})

		Context("with a 64-bit ELF", func() {
			It("should return error for 64-bit ELF", func() {
				elfPath := filepath.Join(tempDir, "elf64.elf")
				createMinimal64BitELF(elfPath)

				_, err := loader.Load(elfPath)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("not a 32-bit"))
			})
		})
	})

	Describe("Multi-segment ELFs", func() {
		It("should load multiple PT_LOAD segments", func() {
			elfPath := filepath.Join(tempDir, "multi-segment.elf")
			data := []byte{0x01, 0x02, 0x03, 0x04}
			createARCELF(elfPath, elf.EM_ARC_COMPACT, binary.LittleEndian, 0x10000,
				textSegment(0x10000, code),
				testSegment{vaddr: 0x20000, data: data, memSize: 4, flags: elf.PF_R | elf.PF_W})

			prog, err := loader.Load(elfPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Segments).To(HaveLen(2))

			dataSeg := prog.Segments[1]
			Expect(dataSeg.VirtAddr).To(Equal(uint32(0x20000)))
			Expect(dataSeg.Data).To(Equal(data))
			Expect(dataSeg.Flags & loader.SegmentFlagWrite).NotTo(BeZero())
			Expect(dataSeg.Flags & loader.SegmentFlagExecute).To(BeZero())
		})
	})

	Describe("BSS segments", func() {
		It("should handle BSS segments where Memsz > Filesz", func() {
			elfPath := filepath.Join(tempDir, "bss.elf")
			initial := []byte{0x01, 0x02, 0x03, 0x04}
			createARCELF(elfPath, elf.EM_ARC_COMPACT, binary.LittleEndian, 0x10000,
				testSegment{vaddr: 0x30000, data: initial, memSize: 1024, flags: elf.PF_R | elf.PF_W})

			prog, err := loader.Load(elfPath)
			Expect(err).NotTo(HaveOccurred())

			bss := prog.Segments[0]
			Expect(bss.Data).To(Equal(initial))
			Expect(bss.MemSize).To(Equal(uint32(1024)))
		})

		It("should handle segments with zero file size", func() {
			elfPath := filepath.Join(tempDir, "zero-filesz.elf")
			createARCELF(elfPath, elf.EM_ARC_COMPACT, binary.LittleEndian, 0x10000,
				testSegment{vaddr: 0x40000, memSize: 4096, flags: elf.PF_R | elf.PF_W})

			prog, err := loader.Load(elfPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Segments[0].Data).To(HaveLen(0))
			Expect(prog.Segments[0].MemSize).To(Equal(uint32(4096)))
		})
	})

	Describe("ELFs with no loadable segments", func() {
		It("should return empty segments list", func() {
			elfPath := filepath.Join(tempDir, "no-load.elf")
			createARCELF(elfPath, elf.EM_ARC_COMPACT, binary.LittleEndian, 0x10000,
				testSegment{typ: elf.PT_NOTE, flags: elf.PF_R})

			prog, err := loader.Load(elfPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Segments).To(BeEmpty())
			Expect(prog.EntryPoint).To(Equal(uint32(0x10000)))
		})
	})

	Describe("LoadRaw", func() {
		It("should wrap a flat file in one executable segment", func() {
			path := filepath.Join(tempDir, "flat.bin")
			Expect(os.WriteFile(path, code, 0644)).To(Succeed())

			prog, err := loader.LoadRaw(path, 0x8000, binary.LittleEndian, insts.EncodingCompact)
			Expect(err).NotTo(HaveOccurred())
			Expect(prog.EntryPoint).To(Equal(uint32(0x8000)))
			Expect(prog.Segments).To(HaveLen(1))
			Expect(prog.Segments[0].Data).To(Equal(code))
			Expect(prog.Segments[0].Flags & loader.SegmentFlagExecute).NotTo(BeZero())
		})

		It("should reject an image that wraps the address space", func() {
			path := filepath.Join(tempDir, "flat.bin")
			Expect(os.WriteFile(path, code, 0644)).To(Succeed())

			_, err := loader.LoadRaw(path, 0xFFFFFFFC, binary.LittleEndian, insts.EncodingCompact)
			Expect(err).To(HaveOccurred())
		})

		It("should return error for non-existent file", func() {
			_, err := loader.LoadRaw("/nonexistent/flat.bin", 0, binary.LittleEndian, insts.EncodingLegacy)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("EncodingForMachine", func() {
		It("should reject machines that are not ARC", func() {
			_, err := loader.EncodingForMachine(elf.EM_X86_64)
			Expect(err).To(HaveOccurred())
		})
	})
})

type testSegment struct {
	typ     elf.ProgType
	vaddr   uint32
	data    []byte
	memSize uint32
	flags   elf.ProgFlag
}

func textSegment(vaddr uint32, data []byte) testSegment {
	return testSegment{
		vaddr:   vaddr,
		data:    data,
		memSize: uint32(len(data)),
		flags:   elf.PF_R | elf.PF_X,
	}
}

// createARCELF writes an ELF32 executable with one program header per
// segment, followed by the segment contents in order.
func createARCELF(
	path string,
	machine elf.Machine,
	order binary.ByteOrder,
	entry uint32,
	segs ...testSegment,
) {
	const ehsize, phentsize = 52, 32

	elfHeader := make([]byte, ehsize)
	copy(elfHeader[0:4], []byte{0x7f, 'E', 'L', 'F'})
	elfHeader[4] = 1 // 32-bit
	elfHeader[5] = 1 // little endian
	if order == binary.BigEndian {
		elfHeader[5] = 2
	}
	elfHeader[6] = 1                                     // version
	order.PutUint16(elfHeader[16:18], 2)                 // executable
	order.PutUint16(elfHeader[18:20], uint16(machine))   // machine
	order.PutUint32(elfHeader[20:24], 1)                 // version
	order.PutUint32(elfHeader[24:28], entry)             // entry
	order.PutUint32(elfHeader[28:32], ehsize)            // phoff
	order.PutUint16(elfHeader[40:42], ehsize)            // ehsize
	order.PutUint16(elfHeader[42:44], phentsize)         // phentsize
	order.PutUint16(elfHeader[44:46], uint16(len(segs))) // phnum
	order.PutUint16(elfHeader[46:48], 40)                // shentsize

	offset := uint32(ehsize + phentsize*len(segs))
	progHeaders := make([]byte, 0, phentsize*len(segs))
	for _, seg := range segs {
		typ := seg.typ
		if typ == elf.PT_NULL {
			typ = elf.PT_LOAD
		}

		ph := make([]byte, phentsize)
		order.PutUint32(ph[0:4], uint32(typ))
		order.PutUint32(ph[4:8], offset)
		order.PutUint32(ph[8:12], seg.vaddr)
		order.PutUint32(ph[12:16], seg.vaddr)
		order.PutUint32(ph[16:20], uint32(len(seg.data)))
		order.PutUint32(ph[20:24], seg.memSize)
		order.PutUint32(ph[24:28], uint32(seg.flags))
		order.PutUint32(ph[28:32], 4)
		progHeaders = append(progHeaders, ph...)

		offset += uint32(len(seg.data))
	}

	file, _ := os.Create(path)
	defer func() { _ = file.Close() }()

	_, _ = file.Write(elfHeader)
	_, _ = file.Write(progHeaders)
	for _, seg := range segs {
		_, _ = file.Write(seg.data)
	}
}

// createMinimal64BitELF creates a minimal 64-bit ELF to test rejection.
func createMinimal64BitELF(path string) {
	elfHeader := make([]byte, 64)

	copy(elfHeader[0:4], []byte{0x7f, 'E', 'L', 'F'})
	elfHeader[4] = 2                                    // 64-bit
	elfHeader[5] = 1                                    // little endian
	elfHeader[6] = 1                                    // version
	binary.LittleEndian.PutUint16(elfHeader[16:18], 2)  // executable
	binary.LittleEndian.PutUint16(elfHeader[18:20], 93) // ARCompact (won't matter)
	binary.LittleEndian.PutUint32(elfHeader[20:24], 1)  // version
	binary.LittleEndian.PutUint16(elfHeader[52:54], 64) // ehsize
	binary.LittleEndian.PutUint16(elfHeader[54:56], 56) // phentsize

	file, _ := os.Create(path)
	defer func() { _ = file.Close() }()
	_, _ = file.Write(elfHeader)
}
