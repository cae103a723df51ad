package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

// Logger returns a logfmt logger that drops records below lvl.
func Logger(w io.Writer, lvl slog.Level) log.Logger {
	return log.NewLogger(log.LogfmtHandlerWithLevel(w, lvl))
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "trace":
		return log.LevelTrace, nil
	case "debug":
		return log.LevelDebug, nil
	case "info", "":
		return log.LevelInfo, nil
	case "warn":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	case "crit":
		return log.LevelCrit, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

// commandLogger builds the logger for a command from the global flags. It
// writes to the app's error writer.
func commandLogger(ctx *cli.Context) log.Logger {
	// the level was validated in app.Before
	lvl, _ := parseLevel(ctx.String(LogLevelFlag.Name))
	return Logger(ctx.App.ErrWriter, lvl)
}
