package calc

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// NewLogger returns a JSON zerolog.Logger writing to w at the named level.
// An empty level means DefaultLogLevel.
func NewLogger(w io.Writer, level string) (zerolog.Logger, error) {
	if strings.TrimSpace(level) == "" {
		level = DefaultLogLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Str("component", "matrixcalc").Logger(), nil
}
