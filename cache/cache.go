// Package cache provides a read-only instruction fetch cache built on Akita
// cache components.
package cache

import (
	"fmt"
	"sync"

	akitacache "github.com/sarchlab/akita/v4/mem/cache"
)

// Config holds cache configuration parameters.
type Config struct {
	// Size in bytes
	Size int `json:"size"`
	// Associativity (number of ways)
	Associativity int `json:"associativity"`
	// BlockSize in bytes (cache line size)
	BlockSize int `json:"block_size"`
}

// DefaultConfig returns a 32KB, 2-way instruction cache with 64B lines, the
// shape of the ARC 700 L1 instruction cache.
func DefaultConfig() Config {
	return Config{
		Size:          32 * 1024,
		Associativity: 2,
		BlockSize:     64,
	}
}

// Validate checks that the geometry describes at least one full set of
// power-of-two sized lines.
func (c Config) Validate() error {
	if c.BlockSize < 4 || c.BlockSize&(c.BlockSize-1) != 0 {
		return fmt.Errorf("block size must be a power of two of at least 4, got %d", c.BlockSize)
	}
	if c.Associativity <= 0 {
		return fmt.Errorf("associativity must be positive, got %d", c.Associativity)
	}
	if c.Size <= 0 || c.Size%(c.Associativity*c.BlockSize) != 0 {
		return fmt.Errorf("size %d is not a multiple of %d-way %dB sets",
			c.Size, c.Associativity, c.BlockSize)
	}
	return nil
}

// Statistics holds cache performance statistics.
type Statistics struct {
	Reads     uint64
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// BackingStore supplies whole lines on a miss.
type BackingStore interface {
	// ReadBlock fills buf with the bytes starting at addr.
	ReadBlock(addr uint32, buf []byte) error
}

// Cache is a set-associative, read-only line cache. It is safe for
// concurrent use.
type Cache struct {
	config Config

	mu sync.Mutex

	// Akita cache directory for tag/state management
	directory *akitacache.DirectoryImpl

	// Data storage - indexed by (setID * associativity + wayID)
	dataStore [][]byte

	stats   Statistics
	backing BackingStore
}

// New creates a new cache with the given configuration. The configuration
// must pass Validate.
func New(config Config, backing BackingStore) *Cache {
	numSets := config.Size / (config.Associativity * config.BlockSize)
	totalBlocks := numSets * config.Associativity

	dataStore := make([][]byte, totalBlocks)
	for i := range dataStore {
		dataStore[i] = make([]byte, config.BlockSize)
	}

	return &Cache{
		config: config,
		directory: akitacache.NewDirectory(
			numSets,
			config.Associativity,
			config.BlockSize,
			akitacache.NewLRUVictimFinder(),
		),
		dataStore: dataStore,
		backing:   backing,
	}
}

// Config returns the cache configuration.
func (c *Cache) Config() Config {
	return c.config
}

// Stats returns cache statistics.
func (c *Cache) Stats() Statistics {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// ResetStats clears cache statistics.
func (c *Cache) ResetStats() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats = Statistics{}
}

func (c *Cache) blockIndex(block *akitacache.Block) int {
	return block.SetID*c.config.Associativity + block.WayID
}

func (c *Cache) blockAddr(addr uint64) uint64 {
	return addr &^ uint64(c.config.BlockSize-1)
}

// Read fills buf with the bytes starting at addr, one line at a time. A
// read may span several lines; each counts as one access.
func (c *Cache) Read(addr uint32, buf []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur := uint64(addr)
	for len(buf) > 0 {
		line, err := c.line(cur)
		if err != nil {
			return err
		}

		offset := cur - c.blockAddr(cur)
		n := copy(buf, line[offset:])
		buf = buf[n:]
		cur += uint64(n)
	}

	return nil
}

// line returns the data of the line holding addr, fetching it on a miss.
func (c *Cache) line(addr uint64) ([]byte, error) {
	c.stats.Reads++

	blockAddr := c.blockAddr(addr)
	block := c.directory.Lookup(0, blockAddr)
	if block != nil && block.IsValid {
		c.stats.Hits++
		c.directory.Visit(block)
		return c.dataStore[c.blockIndex(block)], nil
	}

	c.stats.Misses++
	return c.handleMiss(blockAddr)
}

func (c *Cache) handleMiss(blockAddr uint64) ([]byte, error) {
	if blockAddr > 0xFFFFFFFF {
		return nil, fmt.Errorf("line 0x%x outside the 32-bit address space", blockAddr)
	}

	victim := c.directory.FindVictim(blockAddr)
	if victim == nil {
		return nil, fmt.Errorf("no victim for line 0x%x", blockAddr)
	}

	if victim.IsValid {
		c.stats.Evictions++
		victim.IsValid = false
	}

	data := c.dataStore[c.blockIndex(victim)]
	if err := c.backing.ReadBlock(uint32(blockAddr), data); err != nil {
		return nil, fmt.Errorf("failed to fill line 0x%x: %w", blockAddr, err)
	}

	victim.Tag = blockAddr
	victim.IsValid = true
	c.directory.Visit(victim)

	return data, nil
}

// Invalidate drops the line holding addr, if cached.
func (c *Cache) Invalidate(addr uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	block := c.directory.Lookup(0, c.blockAddr(uint64(addr)))
	if block != nil && block.IsValid {
		block.IsValid = false
	}
}

// Reset invalidates all cache lines and clears statistics.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.directory.Reset()
	c.stats = Statistics{}
}
