package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

var (
	diagLog  zerolog.Logger
	logMu    sync.Mutex
	logReady bool
)

// Init points the diagnostic logger at w. Color is only used when w is a
// terminal.
func Init(w io.Writer) {
	logMu.Lock()
	defer logMu.Unlock()

	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    !isTerminal(w),
	}
	diagLog = zerolog.New(consoleWriter).With().Timestamp().Logger()

	logReady = true
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	diagLog = zerolog.Nop()
	logReady = false
}

func Info(msg string) {
	if logReady {
		diagLog.Info().Msg(msg)
	}
}

func Error(msg string) {
	if logReady {
		diagLog.Error().Msg(msg)
	}
}

func Errorf(format string, args ...any) {
	if logReady {
		diagLog.Error().Msg(fmt.Sprintf(format, args...))
	}
}

func Warn(msg string) {
	if logReady {
		diagLog.Warn().Msg(msg)
	}
}

func Warnf(format string, args ...any) {
	if logReady {
		diagLog.Warn().Msg(fmt.Sprintf(format, args...))
	}
}

// FontSkipped records a font candidate that could not be loaded.
func FontSkipped(path string, err error) {
	if !logReady {
		return
	}
	diagLog.Warn().
		Str("path", path).
		Err(err).
		Msg("font_skipped")
}

func FontResolved(source string, size float64, fallback bool) {
	if !logReady {
		return
	}
	level := zerolog.InfoLevel
	if fallback {
		level = zerolog.WarnLevel
	}
	diagLog.WithLevel(level).
		Str("source", source).
		Float64("size", size).
		Bool("fallback", fallback).
		Msg("font_resolved")
}

func IconWritten(path string, width, height, bytes int, elapsed time.Duration) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("path", path).
		Int("width", width).
		Int("height", height).
		Float64("size_kb", float64(bytes)/1024).
		Float64("total_ms", float64(elapsed.Microseconds())/1000).
		Msg("icon_written")
}
