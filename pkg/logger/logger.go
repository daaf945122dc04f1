// Package logger is the application-wide structured logger. Call sites pass
// a message followed by key/value pairs; a lone error argument is logged
// under the "error" key.
//
//	logger.Info("Server starting", "address", addr)
//	logger.Error("Failed to load snapshot", err)
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

func init() {
	log = newLogger(os.Stderr, "development", "info")
}

// Init configures the global logger. Development environments get console
// output, everything else JSON.
func Init(environment, level string) {
	InitWithWriter(os.Stderr, environment, level)
}

// InitWithWriter is Init with an explicit output, used by tests.
func InitWithWriter(w io.Writer, environment, level string) {
	mu.Lock()
	defer mu.Unlock()
	log = newLogger(w, environment, level)
}

func newLogger(w io.Writer, environment, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	out := w
	if strings.EqualFold(environment, "development") {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	return zerolog.New(out).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func current() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

func Debug(msg string, args ...any) {
	l := current()
	emit(l.Debug(), msg, args)
}

func Info(msg string, args ...any) {
	l := current()
	emit(l.Info(), msg, args)
}

func Warn(msg string, args ...any) {
	l := current()
	emit(l.Warn(), msg, args)
}

func Error(msg string, args ...any) {
	l := current()
	emit(l.Error(), msg, args)
}

// Fatal logs and exits the process.
func Fatal(msg string, args ...any) {
	l := current()
	emit(l.WithLevel(zerolog.FatalLevel), msg, args)
	os.Exit(1)
}

func emit(ev *zerolog.Event, msg string, args []any) {
	if ev == nil {
		return
	}
	for i := 0; i < len(args); i++ {
		switch v := args[i].(type) {
		case error:
			ev = ev.Err(v)
		case string:
			if i+1 < len(args) {
				if err, ok := args[i+1].(error); ok {
					ev = ev.AnErr(v, err)
				} else {
					ev = ev.Interface(v, args[i+1])
				}
				i++
			} else {
				ev = ev.Str("detail", v)
			}
		default:
			ev = ev.Interface(fmt.Sprintf("arg%d", i), v)
		}
	}
	ev.Msg(msg)
}
