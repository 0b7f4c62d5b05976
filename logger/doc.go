// Package logger provides a leveled, localized console logger.
//
// Callers log message keys, not text. Each key is resolved through a locale
// table in the configured language and written to standard output as one
// colorized line:
//
//	2025/3/7 09:05:01 [Info] System started
//
// # Features
//
//   - Four ordered levels: Debug < Info < Warning < Error
//   - Minimum-level filtering (an event at the minimum is emitted)
//   - Message keys translated through YAML locale tables (golang.org/x/text catalog)
//   - Timestamps in a configurable IANA timezone, host local time by default
//   - 24-bit colors per level via lipgloss, plain text when not on a terminal
//   - A visible "Translate Failed!" line when a key has no translation
//   - Global package-level functions, or an explicit *Logger handle
//
// # Usage
//
// Configure once at startup. An unknown timezone is reported as an error
// matching ErrInvalidTimezone; most programs treat it as fatal:
//
//	if err := logger.Configure(logger.InfoLevel, "en", "UTC"); err != nil {
//	    fmt.Fprintln(os.Stderr, err)
//	    os.Exit(1)
//	}
//
// Then log keys:
//
//	logger.Info("startup")
//	logger.Warning("config_invalid")
//	logger.Status(500, "request_server_error")
//
// Or build a dedicated handle:
//
//	log, err := logger.New(logger.Config{MinLevel: logger.WarnLevel, Language: "zh-CN"})
//
// # Missing translations
//
// When the locale table has no entry for a key, the line reads
//
//	Translate Failed! | Lang fr | Tz unknown | Value greeting
//
// naming the language, the timezone ("unknown" when unset) and the key.
// Logging never returns an error.
//
// # Timezones
//
// The package links time/tzdata, so IANA names resolve even on hosts
// without a zoneinfo database.
//
// # Environment
//
// ConfigFromEnv reads LOGGER_LEVEL, LOGGER_LANG, LOGGER_TZ and LOGGER_COLOR:
//
//	LOGGER_LEVEL=warning LOGGER_TZ=Asia/Shanghai ./myapp
package logger
