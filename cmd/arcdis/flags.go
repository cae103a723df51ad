package main

import (
	"github.com/urfave/cli/v2"
)

var (
	LogLevelFlag = &cli.StringFlag{
		Name:    "log.level",
		Usage:   "Log level: trace, debug, info, warn, error or crit",
		Value:   "info",
		EnvVars: []string{"ARCDIS_LOG_LEVEL"},
	}
	PProfCPUFlag = &cli.BoolFlag{
		Name:  "pprof.cpu",
		Usage: "Write a CPU profile to the current directory",
	}

	ConfigFlag = &cli.PathFlag{
		Name:  "config",
		Usage: "Path of a decoder configuration JSON file",
	}
	FormatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "Instruction encoding: compact or legacy",
	}
	SimplifyFlag = &cli.BoolFlag{
		Name:  "simplify",
		Usage: "Fold encodings into their canonical aliases",
		Value: true,
	}
	InlineConstFlag = &cli.BoolFlag{
		Name:  "inline-const",
		Usage: "Rewrite pc-relative constant loads to absolute addresses",
		Value: true,
	}
	ByteOrderFlag = &cli.StringFlag{
		Name:  "byte-order",
		Usage: "Byte order of raw input: little or big",
		Value: "little",
	}

	RawFlag = &cli.BoolFlag{
		Name:  "raw",
		Usage: "Treat the input as a flat binary instead of an ELF file",
	}
	BaseFlag = &cli.StringFlag{
		Name:  "base",
		Usage: "Load address of a raw binary",
		Value: "0",
	}
	CacheSizeFlag = &cli.IntFlag{
		Name:  "cache.size",
		Usage: "Fetch cache size in bytes",
	}
	CacheWaysFlag = &cli.IntFlag{
		Name:  "cache.ways",
		Usage: "Fetch cache associativity",
	}
	CacheLineFlag = &cli.IntFlag{
		Name:  "cache.line",
		Usage: "Fetch cache line size in bytes",
	}

	AddrFlag = &cli.StringFlag{
		Name:  "addr",
		Usage: "Address of the first decoded word",
		Value: "0",
	}
	BytesFlag = &cli.StringFlag{
		Name:  "bytes",
		Usage: "Hex-encoded instruction bytes in memory order, instead of words",
	}
	DumpFlag = &cli.BoolFlag{
		Name:  "dump",
		Usage: "Dump every decoded record in full",
	}
)
