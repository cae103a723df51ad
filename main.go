// Package main provides the entry point for arcdec.
// arcdec decodes ARC legacy (A4) and ARCompact machine code.
//
// For the full CLI, use: go run ./cmd/arcdis
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("arcdec - ARC instruction decoder")
	fmt.Println("")
	fmt.Println("Usage: arcdis [global options] <command> [options] <args>")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  disasm     Disassemble the executable segments of an ELF or raw binary")
	fmt.Println("  decode     Decode instruction words given on the command line")
	fmt.Println("  config     Write a decoder configuration file")
	fmt.Println("")
	fmt.Println("Global options:")
	fmt.Println("  --log.level  Log level (default: info)")
	fmt.Println("  --pprof.cpu  Write a CPU profile to the current directory")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/arcdis' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/arcdis' instead.")
	}
}
