// Package main provides accuracy validation for the decoder.
// Ensures that concurrent decoding and cached fetches preserve results.
package main

import (
	"encoding/binary"
	"fmt"
	"os"
	"sync"

	"github.com/sarchlab/arcdec/cache"
	"github.com/sarchlab/arcdec/image"
	"github.com/sarchlab/arcdec/insts"
	"github.com/sarchlab/arcdec/loader"
)

var testStream = []uint16{
	0x2600, 0x7F80, 0x1234, 0x5678, // ADD r0, limm, limm
	0x71CF, 0xDEAD, 0xBEEF,         // MOV_S r1, limm
	0x2202, 0x80FE,                 // SUB.F 0, r2, r3
	0x1203, 0x0601,                 // LD.AS r1, [r2, 3]
	0x6261,                         // LD_S r1, [r2, r3]
	0xF801,                         // BL_S +4
	0x78E0,                         // NOP_S
}

func streamBytes() []byte {
	data := make([]byte, 2*len(testStream))
	for i, h := range testStream {
		binary.LittleEndian.PutUint16(data[2*i:], h)
	}
	return data
}

// walk decodes the stream from its first byte to its end.
func walk(dec *insts.Decoder, base, end uint32) ([]insts.Instruction, error) {
	var out []insts.Instruction
	for addr := base; addr < end; {
		inst, err := dec.Decode(addr)
		if err != nil {
			return nil, err
		}
		out = append(out, inst)
		addr += inst.Size
	}
	return out, nil
}

// testConcurrentDecoding validates that one decoder shared by several
// goroutines produces the same records as a sequential walk.
func testConcurrentDecoding() bool {
	fmt.Println("Testing concurrent decoding accuracy...")

	data := streamBytes()
	dec := insts.NewDecoder(insts.NewByteMemory(0x1000, data, binary.LittleEndian))
	end := 0x1000 + uint32(len(data))

	want, err := walk(dec, 0x1000, end)
	if err != nil {
		fmt.Printf("FAIL: sequential walk: %v\n", err)
		return false
	}

	const workers = 16
	results := make([][]insts.Instruction, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = walk(dec, 0x1000, end)
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			fmt.Printf("FAIL: worker %d: %v\n", i, errs[i])
			return false
		}
		if len(results[i]) != len(want) {
			fmt.Printf("FAIL: worker %d decoded %d instructions, want %d\n",
				i, len(results[i]), len(want))
			return false
		}
		for j := range want {
			if results[i][j] != want[j] {
				fmt.Printf("FAIL: worker %d at 0x%x\n", i, want[j].Address)
				fmt.Printf("  sequential: %+v\n", want[j])
				fmt.Printf("  concurrent: %+v\n", results[i][j])
				return false
			}
		}
	}

	fmt.Printf("PASS: %d workers agree on %d instructions\n", workers, len(want))
	return true
}

// testCachedImage validates that decoding through the fetch cache gives
// the same records as decoding from a flat buffer, even with a cache small
// enough to evict on every line.
func testCachedImage() bool {
	fmt.Println("\nTesting cached image accuracy...")

	data := streamBytes()
	end := 0x1000 + uint32(len(data))

	flat := insts.NewDecoder(insts.NewByteMemory(0x1000, data, binary.LittleEndian))
	want, err := walk(flat, 0x1000, end)
	if err != nil {
		fmt.Printf("FAIL: flat walk: %v\n", err)
		return false
	}

	prog := &loader.Program{
		EntryPoint: 0x1000,
		ByteOrder:  binary.LittleEndian,
		Segments: []loader.Segment{{
			VirtAddr: 0x1000,
			Data:     data,
			MemSize:  uint32(len(data)),
			Flags:    loader.SegmentFlagRead | loader.SegmentFlagExecute,
		}},
	}

	geometries := []cache.Config{
		cache.DefaultConfig(),
		{Size: 8, Associativity: 1, BlockSize: 4},
		{Size: 16, Associativity: 2, BlockSize: 8},
	}

	for _, g := range geometries {
		img, err := image.New(prog, image.WithCacheConfig(g))
		if err != nil {
			fmt.Printf("FAIL: %+v: %v\n", g, err)
			return false
		}

		got, err := walk(insts.NewDecoder(img), 0x1000, end)
		if err != nil {
			fmt.Printf("FAIL: %+v: %v\n", g, err)
			return false
		}

		for j := range want {
			if j >= len(got) || got[j] != want[j] {
				fmt.Printf("FAIL: %+v: mismatch at instruction %d\n", g, j)
				return false
			}
		}

		stats := img.CacheStats()
		fmt.Printf("PASS: %dB/%d-way/%dB lines (hits %d, misses %d, evictions %d)\n",
			g.Size, g.Associativity, g.BlockSize, stats.Hits, stats.Misses, stats.Evictions)
	}

	return true
}

func main() {
	ok := testConcurrentDecoding()
	ok = testCachedImage() && ok

	if !ok {
		fmt.Println("\nAccuracy validation FAILED")
		os.Exit(1)
	}
	fmt.Println("\nAccuracy validation passed")
}
