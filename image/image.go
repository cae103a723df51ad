// Package image provides the memory image a decoder reads instructions
// from: the loadable segments of a program, fetched through a line cache.
package image

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/sarchlab/arcdec/cache"
	"github.com/sarchlab/arcdec/insts"
	"github.com/sarchlab/arcdec/loader"
)

// Image is a read-only view of a loaded program. It implements
// insts.MappedMemory and is safe for concurrent use.
type Image struct {
	segments []loader.Segment
	order    binary.ByteOrder
	cache    *cache.Cache
}

// Option configures an Image.
type Option func(*options)

type options struct {
	cacheConfig cache.Config
}

// WithCacheConfig sets the geometry of the fetch cache.
func WithCacheConfig(config cache.Config) Option {
	return func(o *options) {
		o.cacheConfig = config
	}
}

// New builds an image from the segments of prog. Segments must not
// overlap; empty ones are dropped.
func New(prog *loader.Program, opts ...Option) (*Image, error) {
	o := options{cacheConfig: cache.DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.cacheConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fetch cache config: %w", err)
	}

	m := &Image{order: prog.ByteOrder}
	if m.order == nil {
		m.order = binary.LittleEndian
	}

	for _, seg := range prog.Segments {
		if seg.MemSize == 0 {
			continue
		}
		if seg.End() > 1<<32 {
			return nil, fmt.Errorf("segment at 0x%x wraps the address space", seg.VirtAddr)
		}
		m.segments = append(m.segments, seg)
	}

	sort.Slice(m.segments, func(i, j int) bool {
		return m.segments[i].VirtAddr < m.segments[j].VirtAddr
	})
	for i := 1; i < len(m.segments); i++ {
		prev := &m.segments[i-1]
		if prev.End() > uint64(m.segments[i].VirtAddr) {
			return nil, fmt.Errorf("segments at 0x%x and 0x%x overlap",
				prev.VirtAddr, m.segments[i].VirtAddr)
		}
	}

	m.cache = cache.New(o.cacheConfig, cache.BackingFunc(m.fill))

	return m, nil
}

// Segments returns the non-empty segments in address order.
func (m *Image) Segments() []loader.Segment {
	return m.segments
}

// ByteOrder returns the byte order used for halfword and word reads.
func (m *Image) ByteOrder() binary.ByteOrder {
	return m.order
}

// CacheStats returns the fetch cache statistics.
func (m *Image) CacheStats() cache.Statistics {
	return m.cache.Stats()
}

func (m *Image) segment(addr uint32) *loader.Segment {
	i := sort.Search(len(m.segments), func(i int) bool {
		return m.segments[i].End() > uint64(addr)
	})
	if i < len(m.segments) && m.segments[i].VirtAddr <= addr {
		return &m.segments[i]
	}
	return nil
}

// IsMapped reports whether addr lies inside a segment.
func (m *Image) IsMapped(addr uint32) bool {
	return m.segment(addr) != nil
}

// Read16 reads the halfword at addr.
func (m *Image) Read16(addr uint32) (uint16, error) {
	var buf [2]byte
	if err := m.read(addr, buf[:]); err != nil {
		return 0, err
	}
	return m.order.Uint16(buf[:]), nil
}

// Read32 reads the word at addr.
func (m *Image) Read32(addr uint32) (uint32, error) {
	var buf [4]byte
	if err := m.read(addr, buf[:]); err != nil {
		return 0, err
	}
	return m.order.Uint32(buf[:]), nil
}

// read fills buf from addr. Every byte must be mapped; a read that runs
// off the end of the image fails with insts.ErrTruncated.
func (m *Image) read(addr uint32, buf []byte) error {
	for i := range buf {
		a := uint64(addr) + uint64(i)
		if a > 0xFFFFFFFF || !m.IsMapped(uint32(a)) {
			return fmt.Errorf("%w: %d-byte read at 0x%x leaves the image",
				insts.ErrTruncated, len(buf), addr)
		}
	}
	return m.cache.Read(addr, buf)
}

// fill supplies a cache line. Bytes outside every segment, and the
// zero-initialized tail of a segment, read as zero.
func (m *Image) fill(addr uint32, buf []byte) error {
	for i := range buf {
		buf[i] = 0
	}

	start := uint64(addr)
	end := start + uint64(len(buf))
	for _, seg := range m.segments {
		lo := max(start, uint64(seg.VirtAddr))
		hi := min(end, uint64(seg.VirtAddr)+uint64(len(seg.Data)))
		if lo >= hi {
			continue
		}
		copy(buf[lo-start:hi-start], seg.Data[lo-uint64(seg.VirtAddr):])
	}

	return nil
}
