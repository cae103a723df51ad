package main

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/sarchlab/arcdec/insts"
)

// loadDecoderConfig resolves the decoder configuration: the defaults or
// the --config file, then any mode flag set on the command line.
func loadDecoderConfig(ctx *cli.Context) (*insts.Config, error) {
	config := insts.DefaultConfig()
	if path := ctx.Path(ConfigFlag.Name); path != "" {
		loaded, err := insts.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		config = loaded
	}

	if ctx.IsSet(FormatFlag.Name) {
		enc, err := insts.ParseEncoding(ctx.String(FormatFlag.Name))
		if err != nil {
			return nil, err
		}
		config.Format = enc
	}
	if ctx.IsSet(SimplifyFlag.Name) {
		config.Simplify = ctx.Bool(SimplifyFlag.Name)
	}
	if ctx.IsSet(InlineConstFlag.Name) {
		config.InlineConst = ctx.Bool(InlineConstFlag.Name)
	}

	return config, nil
}

func parseAddr(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q: %w", s, err)
	}
	return uint32(v), nil
}

func parseByteOrder(s string) (binary.ByteOrder, error) {
	switch s {
	case "little", "le":
		return binary.LittleEndian, nil
	case "big", "be":
		return binary.BigEndian, nil
	}
	return nil, fmt.Errorf("unknown byte order %q", s)
}

// WriteConfig writes the resolved decoder configuration to a file.
func WriteConfig(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("expected one output path, got %d arguments", ctx.NArg())
	}
	path := ctx.Args().First()

	config, err := loadDecoderConfig(ctx)
	if err != nil {
		return err
	}
	if err := config.SaveConfig(path); err != nil {
		return err
	}

	commandLogger(ctx).Info("Wrote decoder config", "path", path, "format", config.Format.String())
	return nil
}

var ConfigCommand = &cli.Command{
	Name:      "config",
	Usage:     "Write a decoder configuration file",
	ArgsUsage: "<out.json>",
	Action:    WriteConfig,
	Flags: []cli.Flag{
		ConfigFlag,
		FormatFlag,
		SimplifyFlag,
		InlineConstFlag,
	},
}
