// Validate decoder throughput - measures decode rate and allocations per
// decode for both encodings
package main

import (
	"encoding/binary"
	"fmt"
	"runtime"
	"time"

	"github.com/sarchlab/arcdec/insts"
)

type workload struct {
	name   string
	config *insts.Config
	data   []byte
}

func halfwords(hs ...uint16) []byte {
	data := make([]byte, 2*len(hs))
	for i, h := range hs {
		binary.LittleEndian.PutUint16(data[2*i:], h)
	}
	return data
}

func words(ws ...uint32) []byte {
	data := make([]byte, 4*len(ws))
	for i, w := range ws {
		binary.LittleEndian.PutUint32(data[4*i:], w)
	}
	return data
}

func main() {
	legacy := insts.DefaultConfig()
	legacy.Format = insts.EncodingLegacy

	workloads := []workload{
		{
			name:   "compact",
			config: insts.DefaultConfig(),
			data: halfwords(
				0x2180, 0x0FFF,         // ADD r1, r1, -1
				0x6261,                 // LD_S r1, [r2, r3]
				0x71CF, 0xDEAD, 0xBEEF, // MOV_S r1, limm
				0x2202, 0x80FE,         // SUB.F 0, r2, r3
				0xF801,                 // BL_S +4
			),
		},
		{
			name:   "legacy",
			config: legacy,
			data: words(
				0x403FFE3F,             // ADD r1, 63, 63
				0x503F7C00, 0xCAFEBABE, // SUB r1, limm, limm
				0x20000080,             // B +8
				0x08210008,             // LD r1, [r2, 8]
			),
		},
	}

	fmt.Printf("Decoder Throughput Validation Results:\n")
	fmt.Printf("======================================\n")

	for _, w := range workloads {
		measure(w)
	}
}

func measure(w workload) {
	mem := insts.NewByteMemory(0x1000, w.data, binary.LittleEndian)
	dec := insts.NewDecoder(mem, insts.WithConfig(w.config))
	end := 0x1000 + uint32(len(w.data))

	pass := func() int {
		n := 0
		for addr := uint32(0x1000); addr < end; {
			inst, err := dec.Decode(addr)
			if err != nil {
				panic(err)
			}
			addr += inst.Size
			n++
		}
		return n
	}

	// Warm up
	for i := 0; i < 1000; i++ {
		pass()
	}

	runtime.GC()
	var m1, m2 runtime.MemStats
	runtime.ReadMemStats(&m1)

	start := time.Now()
	iterations := 100000
	totalDecodes := 0
	for i := 0; i < iterations; i++ {
		totalDecodes += pass()
	}

	elapsed := time.Since(start)
	runtime.ReadMemStats(&m2)

	allocations := m2.Mallocs - m1.Mallocs
	allocatedBytes := m2.TotalAlloc - m1.TotalAlloc

	fmt.Printf("\n[%s]\n", w.name)
	fmt.Printf("Total decode operations: %d\n", totalDecodes)
	fmt.Printf("Time elapsed: %v\n", elapsed)
	fmt.Printf("Decodes per second: %.0f\n", float64(totalDecodes)/elapsed.Seconds())
	fmt.Printf("Allocations: %d\n", allocations)
	fmt.Printf("Allocated bytes: %d\n", allocatedBytes)
	fmt.Printf("Allocations per decode: %.3f\n", float64(allocations)/float64(totalDecodes))
	fmt.Printf("Bytes per decode: %.1f\n", float64(allocatedBytes)/float64(totalDecodes))

	if allocations == 0 {
		fmt.Printf("SUCCESS: Zero allocations detected\n")
	} else if float64(allocations)/float64(totalDecodes) < 0.1 {
		fmt.Printf("GOOD: Low allocation rate (< 0.1 per decode)\n")
	} else {
		fmt.Printf("WARNING: High allocation rate detected\n")
	}
}
