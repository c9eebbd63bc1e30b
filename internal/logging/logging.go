package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/natefinch/lumberjack.v2"
)

type SetupParams struct {
	File      string
	Level     string
	Stderr    bool
	MaxSizeMB int
}

// Setup builds the process logger. Records go to a rotating file and,
// when requested, to stderr as well. The returned closer flushes the
// file; with no file configured it is a no-op.
func Setup(params SetupParams) (*slog.Logger, io.Closer) {
	var (
		out    io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	if params.File != "" {
		rotating := &lumberjack.Logger{
			Filename:   params.File,
			MaxSize:    params.MaxSizeMB,
			MaxBackups: 5,
			Compress:   true,
		}
		closer = rotating
		out = rotating
		if params.Stderr {
			out = NewCombinedWriter(os.Stderr, rotating)
		}
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: ParseLevel(params.Level)})
	return slog.New(handler), closer
}

// ParseLevel maps a config level name to a slog level. Unknown names
// read as info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// CombinedWriter fans each write out to every writer. A failing writer
// does not stop the others; all failures are returned together.
type CombinedWriter struct {
	writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{writers: writers}
}

func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var err error
	for _, w := range cw.writers {
		if _, werr := w.Write(p); werr != nil {
			err = multierr.Append(err, werr)
		}
	}
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
