package settings

import (
	"fmt"
	"strings"
)

// LogLevel is the ordinal form of the VERBOSITY setting. Higher values emit
// more output.
type LogLevel int

const (
	LevelError LogLevel = iota + 1
	LevelWarn
	LevelInfo
	LevelDebug
)

const logLevelPrefix = "LOG_LEVEL."

// String returns the fully qualified symbolic name, mirroring how the
// setting is written in configuration files.
func (l LogLevel) String() string {
	switch l {
	case LevelError:
		return logLevelPrefix + "ERROR"
	case LevelWarn:
		return logLevelPrefix + "WARN"
	case LevelInfo:
		return logLevelPrefix + "INFO"
	case LevelDebug:
		return logLevelPrefix + "DEBUG"
	default:
		return fmt.Sprintf("%s(%d)", logLevelPrefix, int(l))
	}
}

// ParseLogLevel converts a symbolic verbosity name into its ordinal. The
// symbol is matched case-sensitively and may carry the optional LOG_LEVEL.
// prefix. Unknown symbols are a usage error, not a fallback.
func ParseLogLevel(symbol string) (LogLevel, error) {
	name := strings.TrimPrefix(symbol, logLevelPrefix)
	switch name {
	case "ERROR":
		return LevelError, nil
	case "WARN":
		return LevelWarn, nil
	case "INFO":
		return LevelInfo, nil
	case "DEBUG":
		return LevelDebug, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadVerbosity, symbol)
	}
}
