package main

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"

	"github.com/sarchlab/arcdec/cache"
	"github.com/sarchlab/arcdec/image"
	"github.com/sarchlab/arcdec/insts"
	"github.com/sarchlab/arcdec/loader"
)

// stepAfterFailure is how far the walk advances past bytes that do not
// decode.
func stepAfterFailure(enc insts.Encoding) uint64 {
	if enc == insts.EncodingLegacy {
		return 4
	}
	return 2
}

func cacheConfig(ctx *cli.Context) cache.Config {
	config := cache.DefaultConfig()
	if ctx.IsSet(CacheSizeFlag.Name) {
		config.Size = ctx.Int(CacheSizeFlag.Name)
	}
	if ctx.IsSet(CacheWaysFlag.Name) {
		config.Associativity = ctx.Int(CacheWaysFlag.Name)
	}
	if ctx.IsSet(CacheLineFlag.Name) {
		config.BlockSize = ctx.Int(CacheLineFlag.Name)
	}
	return config
}

func loadProgram(ctx *cli.Context, path string, config *insts.Config) (*loader.Program, error) {
	if !ctx.Bool(RawFlag.Name) {
		prog, err := loader.Load(path)
		if err != nil {
			return nil, err
		}
		if !ctx.IsSet(FormatFlag.Name) {
			config.Format = prog.Encoding
		}
		return prog, nil
	}

	base, err := parseAddr(ctx.String(BaseFlag.Name))
	if err != nil {
		return nil, err
	}
	order, err := parseByteOrder(ctx.String(ByteOrderFlag.Name))
	if err != nil {
		return nil, err
	}
	return loader.LoadRaw(path, base, order, config.Format)
}

// Disasm linearly disassembles every executable segment of a program.
func Disasm(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("expected one input file, got %d arguments", ctx.NArg())
	}
	path := ctx.Args().First()
	l := commandLogger(ctx)

	config, err := loadDecoderConfig(ctx)
	if err != nil {
		return err
	}
	prog, err := loadProgram(ctx, path, config)
	if err != nil {
		return err
	}
	l.Info("Loaded program", "path", path,
		"entry", hexutil.Uint64(prog.EntryPoint),
		"segments", len(prog.Segments),
		"format", config.Format.String())

	img, err := image.New(prog, image.WithCacheConfig(cacheConfig(ctx)))
	if err != nil {
		return err
	}
	dec := insts.NewDecoder(img, insts.WithConfig(config), insts.WithDiagnostics(l))

	for _, seg := range img.Segments() {
		if seg.Flags&loader.SegmentFlagExecute == 0 {
			continue
		}
		if err := ctx.Context.Err(); err != nil {
			return err
		}

		l.Debug("Walking segment", "start", hexutil.Uint64(seg.VirtAddr), "size", len(seg.Data))
		disassemble(ctx.App.Writer, dec, seg, img.ByteOrder(), stepAfterFailure(config.Format), l)
	}

	stats := img.CacheStats()
	l.Debug("Fetch cache", "reads", stats.Reads, "hits", stats.Hits,
		"misses", stats.Misses, "evictions", stats.Evictions)

	return nil
}

// disassemble walks the file-backed bytes of seg, printing one line per
// instruction. Bytes that fail to decode are printed as data and skipped
// step bytes at a time.
func disassemble(
	w io.Writer,
	dec *insts.Decoder,
	seg loader.Segment,
	order binary.ByteOrder,
	step uint64,
	l log.Logger,
) {
	base := uint64(seg.VirtAddr)
	end := base + uint64(len(seg.Data))

	for addr := base; addr < end; {
		inst, err := dec.Decode(uint32(addr))
		if err != nil {
			l.Debug("Decode failed", "addr", hexutil.Uint64(addr), "err", err)

			raw := seg.Data[addr-base : min(addr+step, end)-base]
			printLine(w, uint32(addr), raw, dataDirective(raw, order))
			addr += uint64(len(raw))
			continue
		}

		raw := seg.Data[addr-base : min(addr+uint64(inst.Size), end)-base]
		printLine(w, uint32(addr), raw, inst.String())
		addr += uint64(inst.Size)
	}
}

func printLine(w io.Writer, addr uint32, raw []byte, text string) {
	_, _ = fmt.Fprintf(w, "%08x: %-20s %s\n", addr, hexutil.Encode(raw), text)
}

func dataDirective(raw []byte, order binary.ByteOrder) string {
	switch len(raw) {
	case 4:
		return fmt.Sprintf(".word 0x%08x", order.Uint32(raw))
	case 2:
		return fmt.Sprintf(".half 0x%04x", order.Uint16(raw))
	}
	return fmt.Sprintf(".byte %s", hexutil.Encode(raw))
}

var DisasmCommand = &cli.Command{
	Name:      "disasm",
	Usage:     "Disassemble the executable segments of an ELF or raw binary",
	ArgsUsage: "<file>",
	Action:    Disasm,
	Flags: []cli.Flag{
		ConfigFlag,
		FormatFlag,
		SimplifyFlag,
		InlineConstFlag,
		RawFlag,
		BaseFlag,
		ByteOrderFlag,
		CacheSizeFlag,
		CacheWaysFlag,
		CacheLineFlag,
	},
}
