package insts

import (
	"encoding/binary"
	"fmt"
)

// Memory supplies instruction words to a Decoder.
type Memory interface {
	// Read16 returns the halfword at addr.
	Read16(addr uint32) (uint16, error)
	// Read32 returns the word at addr.
	Read32(addr uint32) (uint32, error)
}

// MappedMemory is a Memory that can report which addresses hold data.
// A Decoder built on one uses IsMapped for PC-relative literal inlining
// unless WithMappedFunc overrides it.
type MappedMemory interface {
	Memory
	IsMapped(addr uint32) bool
}

// ByteMemory is a Memory over a single contiguous byte slice.
type ByteMemory struct {
	base  uint32
	data  []byte
	order binary.ByteOrder
}

// NewByteMemory returns a memory holding data at base, reading multi-byte
// values in the given byte order.
func NewByteMemory(base uint32, data []byte, order binary.ByteOrder) *ByteMemory {
	return &ByteMemory{base: base, data: data, order: order}
}

// IsMapped reports whether addr falls inside the slice.
func (m *ByteMemory) IsMapped(addr uint32) bool {
	return addr >= m.base && uint64(addr-m.base) < uint64(len(m.data))
}

// Read16 returns the halfword at addr.
func (m *ByteMemory) Read16(addr uint32) (uint16, error) {
	b, err := m.slice(addr, 2)
	if err != nil {
		return 0, err
	}
	return m.order.Uint16(b), nil
}

// Read32 returns the word at addr.
func (m *ByteMemory) Read32(addr uint32) (uint32, error) {
	b, err := m.slice(addr, 4)
	if err != nil {
		return 0, err
	}
	return m.order.Uint32(b), nil
}

func (m *ByteMemory) slice(addr uint32, n int) ([]byte, error) {
	if !m.IsMapped(addr) {
		return nil, fmt.Errorf("%w: 0x%x outside [0x%x, 0x%x)",
			ErrTruncated, addr, m.base, uint64(m.base)+uint64(len(m.data)))
	}
	off := int(addr - m.base)
	if off+n > len(m.data) {
		return nil, fmt.Errorf("%w: %d-byte read at 0x%x", ErrTruncated, n, addr)
	}
	return m.data[off : off+n], nil
}
