package logger

import (
	"fmt"
	"strings"
)

// Level defines log severity. Levels are ordered: a logger emits every
// event whose level is at or above its minimum.
type Level int

const (
	// DebugLevel enables debug logging.
	DebugLevel Level = iota
	// InfoLevel enables informational logging.
	InfoLevel
	// WarnLevel enables warning logging.
	WarnLevel
	// ErrorLevel enables error logging.
	ErrorLevel
)

// AllLevels returns all supported levels in ascending severity.
func AllLevels() []Level {
	return []Level{DebugLevel, InfoLevel, WarnLevel, ErrorLevel}
}

// String returns the English level name used as the tag when the locale
// table has no entry for it.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "Debug"
	case InfoLevel:
		return "Info"
	case WarnLevel:
		return "Warning"
	case ErrorLevel:
		return "Error"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// levelKeyPrefix keeps level tag keys apart from message keys.
const levelKeyPrefix = "level."

// key is the locale table key of the level tag, e.g. "level.warning".
func (l Level) key() string {
	return levelKeyPrefix + strings.ToLower(l.String())
}

// ParseLevel parses a case-insensitive level name.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	}
	return DebugLevel, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// statusCodeToLevel maps HTTP status codes to log levels.
// 1xx, 2xx, 3xx -> INFO, 4xx -> WARNING, 5xx -> ERROR
func statusCodeToLevel(code int) Level {
	switch {
	case code >= 500:
		return ErrorLevel
	case code >= 400:
		return WarnLevel
	default:
		return InfoLevel
	}
}
