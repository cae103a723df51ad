// Package loader provides ELF and raw image loading for ARC executables.
package loader

import (
	"debug/elf"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/sarchlab/arcdec/insts"
)

// SegmentFlags represents memory protection flags for a segment.
type SegmentFlags uint32

const (
	// SegmentFlagExecute indicates the segment is executable.
	SegmentFlagExecute SegmentFlags = 1 << iota
	// SegmentFlagWrite indicates the segment is writable.
	SegmentFlagWrite
	// SegmentFlagRead indicates the segment is readable.
	SegmentFlagRead
)

// Segment represents a loadable segment of an ARC program.
type Segment struct {
	// VirtAddr is the virtual address where this segment is loaded.
	VirtAddr uint32
	// Data contains the segment contents from the file.
	Data []byte
	// MemSize is the size in memory (may be larger than len(Data) for BSS).
	MemSize uint32
	// Flags contains the segment protection flags.
	Flags SegmentFlags
}

// End returns the first address past the segment in memory.
func (s *Segment) End() uint64 {
	return uint64(s.VirtAddr) + uint64(s.MemSize)
}

// Program is a loaded ARC program ready for decoding.
type Program struct {
	// EntryPoint is the virtual address where execution begins.
	EntryPoint uint32
	// Segments contains all loadable segments.
	Segments []Segment
	// ByteOrder is the byte order of halfwords and words in the image.
	ByteOrder binary.ByteOrder
	// Encoding is the instruction set encoding implied by the machine type.
	Encoding insts.Encoding
}

// EncodingForMachine maps an ELF machine type to the instruction encoding
// its code uses.
func EncodingForMachine(m elf.Machine) (insts.Encoding, error) {
	switch m {
	case elf.EM_ARC:
		return insts.EncodingLegacy, nil
	case elf.EM_ARC_COMPACT, elf.EM_ARC_COMPACT2:
		return insts.EncodingCompact, nil
	}
	return 0, fmt.Errorf("not an ARC ELF file (machine type: %v)", m)
}

// Load parses an ARC ELF32 binary and returns its loadable segments.
func Load(path string) (*Program, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ELF file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if f.Class != elf.ELFCLASS32 {
		return nil, fmt.Errorf("not a 32-bit ELF file")
	}

	enc, err := EncodingForMachine(f.Machine)
	if err != nil {
		return nil, err
	}

	prog := &Program{
		EntryPoint: uint32(f.Entry),
		ByteOrder:  f.ByteOrder,
		Encoding:   enc,
	}

	for _, phdr := range f.Progs {
		if phdr.Type != elf.PT_LOAD {
			continue
		}

		data := make([]byte, phdr.Filesz)
		if phdr.Filesz > 0 {
			n, err := phdr.ReadAt(data, 0)
			if err != nil && err != io.EOF {
				return nil, fmt.Errorf("failed to read segment at 0x%x: %w", phdr.Vaddr, err)
			}
			if uint64(n) != phdr.Filesz {
				return nil, fmt.Errorf("short read for segment at 0x%x: got %d bytes, expected %d",
					phdr.Vaddr, n, phdr.Filesz)
			}
		}

		var flags SegmentFlags
		if phdr.Flags&elf.PF_X != 0 {
			flags |= SegmentFlagExecute
		}
		if phdr.Flags&elf.PF_W != 0 {
			flags |= SegmentFlagWrite
		}
		if phdr.Flags&elf.PF_R != 0 {
			flags |= SegmentFlagRead
		}

		prog.Segments = append(prog.Segments, Segment{
			VirtAddr: uint32(phdr.Vaddr),
			Data:     data,
			MemSize:  uint32(phdr.Memsz),
			Flags:    flags,
		})
	}

	return prog, nil
}

// LoadRaw wraps the contents of a flat binary file in a single executable
// segment at base.
func LoadRaw(path string, base uint32, order binary.ByteOrder, enc insts.Encoding) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read raw image: %w", err)
	}
	if uint64(base)+uint64(len(data)) > 1<<32 {
		return nil, fmt.Errorf("raw image of %d bytes does not fit at 0x%x", len(data), base)
	}

	return &Program{
		EntryPoint: base,
		Segments: []Segment{{
			VirtAddr: base,
			Data:     data,
			MemSize:  uint32(len(data)),
			Flags:    SegmentFlagRead | SegmentFlagExecute,
		}},
		ByteOrder: order,
		Encoding:  enc,
	}, nil
}
