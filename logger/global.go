package logger

import "sync/atomic"

// std is the process-wide logger behind the package-level functions.
var std atomic.Pointer[Logger]

func init() {
	l, err := New(Config{})
	if err != nil {
		// The bundled locale table is compiled in; failing to parse it is a
		// build defect.
		panic(err)
	}
	std.Store(l)
}

// Default returns the process-wide logger.
func Default() *Logger {
	return std.Load()
}

// SetDefault replaces the process-wide logger. A nil l is ignored.
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	std.Store(l)
}

// Init replaces the process-wide logger with one built from cfg.
// On error the previous logger stays in place.
func Init(cfg Config, opts ...Option) error {
	l, err := New(cfg, opts...)
	if err != nil {
		return err
	}
	std.Store(l)
	return nil
}

// Configure replaces the level, language and timezone of the
// process-wide logger. See Logger.Configure.
func Configure(level Level, lang, timezone string) error {
	return Default().Configure(level, lang, timezone)
}

// SetMinimumLevel sets the minimum level of the process-wide logger.
func SetMinimumLevel(level Level) { Default().SetMinimumLevel(level) }

// SetLanguage sets the language of the process-wide logger.
func SetLanguage(lang string) { Default().SetLanguage(lang) }

// SetTimezone sets the timezone of the process-wide logger.
func SetTimezone(name string) error { return Default().SetTimezone(name) }

// Log logs key at level on the process-wide logger.
func Log(level Level, key string) { Default().Log(level, key) }

// Error logs key at ErrorLevel on the process-wide logger.
func Error(key string) { Default().Log(ErrorLevel, key) }

// Warning logs key at WarnLevel on the process-wide logger.
func Warning(key string) { Default().Log(WarnLevel, key) }

// Info logs key at InfoLevel on the process-wide logger.
func Info(key string) { Default().Log(InfoLevel, key) }

// Debug logs key at DebugLevel on the process-wide logger.
func Debug(key string) { Default().Log(DebugLevel, key) }

// Status logs key on the process-wide logger at a level picked from an
// HTTP status code.
func Status(code int, key string) { Default().Status(code, key) }
