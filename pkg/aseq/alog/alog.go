package alog

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ib-77/aseq/pkg/aseq"
	"github.com/ib-77/aseq/pkg/aseq/pipe"
)

// Logger wraps zerolog for pipeline display. Construct with New or
// NewDefault.
type Logger struct {
	zl zerolog.Logger
}

// New builds a Logger writing to w. An unknown level falls back to info;
// pretty selects the console writer over JSON.
func New(w io.Writer, level string, pretty bool) Logger {
	lv, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lv = zerolog.InfoLevel
	}
	if pretty {
		w = zerolog.ConsoleWriter{Out: w}
	}
	return Logger{
		zl: zerolog.New(w).Level(lv).With().Timestamp().Logger(),
	}
}

// NewDefault builds a pretty info-level Logger on stdout.
func NewDefault() Logger {
	return New(os.Stdout, "info", true)
}

// Print awaits the pipeline, logs its settled value or rejection, and
// returns the pipe unchanged.
func (l Logger) Print(pp *pipe.Pipe) *pipe.Pipe {
	v, err := pp.Await()
	if err != nil {
		l.zl.Error().
			Err(err).
			Str("pipe", pp.Id().String()).
			Str("mode", pp.Mode().String()).
			Msg("pipeline rejected")
		return pp
	}
	l.zl.Info().
		Str("pipe", pp.Id().String()).
		Str("mode", pp.Mode().String()).
		Interface("value", printable(v)).
		Msg("pipeline settled")
	return pp
}

// printable rewrites the sentinels into their display form so the log
// line distinguishes a hole from a concrete value.
func printable(v any) any {
	if s, ok := v.([]any); ok {
		out := make([]any, len(s))
		for i, el := range s {
			out[i] = printable(el)
		}
		return out
	}
	if v == aseq.Hole || v == aseq.Undefined {
		return aseq.Display(v)
	}
	return v
}
