package logging

import (
	"errors"
	"fmt"
	"strings"
)

// Supported output formats for New.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
	FormatZap     = "zap"
	FormatNone    = "none"
	FormatBoth    = "both"
)

// ErrOutputRequired is returned for the both format without an
// output path.
var ErrOutputRequired = errors.New("log format both requires an output path")

// New builds a Logger for the given format and level. output is a
// file path for the json and both formats and is ignored otherwise.
// The both format writes console lines to stderr and JSON lines to
// output.
func New(format string, level LogLevel, output string) (Logger, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatConsole:
		return NewConsoleLogger(level == LevelDebug), nil
	case FormatJSON:
		l, err := NewJSONLogger(LoggerConfig{
			OutputPath: output,
			Level:      level,
		})
		if err != nil {
			return nil, err
		}
		return l, nil
	case FormatZap:
		l, err := NewProductionZapLogger(level)
		if err != nil {
			return nil, fmt.Errorf("build zap logger: %w", err)
		}
		return l, nil
	case FormatBoth:
		if output == "" {
			return nil, ErrOutputRequired
		}
		file, err := NewJSONLogger(LoggerConfig{
			OutputPath: output,
			Level:      level,
		})
		if err != nil {
			return nil, err
		}
		return NewMultiLogger(NewConsoleLogger(level == LevelDebug), file), nil
	case FormatNone:
		return NullLogger{}, nil
	default:
		return nil, fmt.Errorf("unknown log format: %q", format)
	}
}
