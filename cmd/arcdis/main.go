// Package main provides arcdis, a linear disassembler for ARC legacy and
// ARCompact binaries.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/profile"
	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	var prof interface{ Stop() }

	app := cli.NewApp()
	app.Name = "arcdis"
	app.Usage = "ARC instruction decoder"
	app.Description = "Decode and disassemble ARC legacy (A4) and ARCompact code"
	app.Flags = []cli.Flag{
		LogLevelFlag,
		PProfCPUFlag,
	}
	app.Commands = []*cli.Command{
		DisasmCommand,
		DecodeCommand,
		ConfigCommand,
	}
	app.Before = func(ctx *cli.Context) error {
		if _, err := parseLevel(ctx.String(LogLevelFlag.Name)); err != nil {
			return err
		}
		if ctx.Bool(PProfCPUFlag.Name) {
			prof = profile.Start(profile.NoShutdownHook, profile.ProfilePath("."), profile.CPUProfile)
		}
		return nil
	}
	app.After = func(*cli.Context) error {
		if prof != nil {
			prof.Stop()
		}
		return nil
	}

	return app
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-c
		cancel()
	}()

	err := newApp().RunContext(ctx, os.Args)
	if err != nil {
		if errors.Is(err, ctx.Err()) {
			_, _ = fmt.Fprintf(os.Stderr, "command interrupted\n")
			os.Exit(130)
		}
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
