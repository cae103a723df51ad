package main

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"

	"github.com/sarchlab/arcdec/insts"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
}

// packWords lays out command-line words in memory. Legacy words are 32
// bits. Compact words of up to four hex digits are halfwords; longer ones
// are 32-bit instructions stored high halfword first.
func packWords(args []string, enc insts.Encoding, order binary.ByteOrder) ([]byte, error) {
	var data []byte

	for _, arg := range args {
		digits := strings.TrimPrefix(strings.TrimPrefix(arg, "0x"), "0X")
		v, err := strconv.ParseUint(digits, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid instruction word %q: %w", arg, err)
		}

		var buf [4]byte
		switch {
		case enc == insts.EncodingLegacy:
			order.PutUint32(buf[:], uint32(v))
			data = append(data, buf[:4]...)
		case len(digits) > 4:
			order.PutUint16(buf[:], uint16(v>>16))
			order.PutUint16(buf[2:], uint16(v))
			data = append(data, buf[:4]...)
		default:
			order.PutUint16(buf[:], uint16(v))
			data = append(data, buf[:2]...)
		}
	}

	return data, nil
}

// Decode decodes instruction words given on the command line.
func Decode(ctx *cli.Context) error {
	l := commandLogger(ctx)

	config, err := loadDecoderConfig(ctx)
	if err != nil {
		return err
	}
	order, err := parseByteOrder(ctx.String(ByteOrderFlag.Name))
	if err != nil {
		return err
	}
	addr, err := parseAddr(ctx.String(AddrFlag.Name))
	if err != nil {
		return err
	}

	var data []byte
	if s := ctx.String(BytesFlag.Name); s != "" {
		data, err = hexutil.Decode(s)
	} else {
		data, err = packWords(ctx.Args().Slice(), config.Format, order)
	}
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return fmt.Errorf("nothing to decode")
	}
	if uint64(addr)+uint64(len(data)) > 1<<32 {
		return fmt.Errorf("%d bytes do not fit at 0x%x", len(data), addr)
	}

	mem := insts.NewByteMemory(addr, data, order)
	dec := insts.NewDecoder(mem, insts.WithConfig(config), insts.WithDiagnostics(l))

	w := ctx.App.Writer
	step := stepAfterFailure(config.Format)
	end := uint64(addr) + uint64(len(data))

	for cur := uint64(addr); cur < end; {
		off := cur - uint64(addr)

		inst, err := dec.Decode(uint32(cur))
		if err != nil {
			_, _ = fmt.Fprintf(w, "%08x: error: %v\n", cur, err)
			cur += step
			continue
		}

		printLine(w, uint32(cur), data[off:off+uint64(inst.Size)], inst.String())
		if ctx.Bool(DumpFlag.Name) {
			dumper.Fdump(w, inst)
		}
		cur += uint64(inst.Size)
	}

	return nil
}

var DecodeCommand = &cli.Command{
	Name:      "decode",
	Usage:     "Decode instruction words given on the command line",
	ArgsUsage: "<hexword>...",
	Action:    Decode,
	Flags: []cli.Flag{
		ConfigFlag,
		FormatFlag,
		SimplifyFlag,
		InlineConstFlag,
		ByteOrderFlag,
		AddrFlag,
		BytesFlag,
		DumpFlag,
	},
}
