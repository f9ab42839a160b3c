package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
)

// Globals are flags shared by every command.
type Globals struct {
	Debug    bool `help:"Enable debug logging"`
	JSONLogs bool `name:"json-logs" help:"Emit structured JSON logs"`
}

// Logger builds the logger selected by the global flags, writing to stderr.
func (g *Globals) Logger() zerolog.Logger {
	return newLogger(os.Stderr, g.Debug, g.JSONLogs)
}

func newLogger(w io.Writer, debug, structured bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	if structured {
		zerolog.TimeFieldFormat = time.RFC3339Nano
	} else {
		w = zerolog.ConsoleWriter{Out: w}
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// signalContext returns a context cancelled on SIGINT or SIGTERM. Call stop
// to release the signal handler.
func signalContext(parent context.Context) (ctx context.Context, stop context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
