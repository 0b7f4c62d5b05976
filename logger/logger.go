package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// fallbackTemplate is rendered instead of the message when a key has no
// translation in the configured language.
const fallbackTemplate = "Translate Failed! | Lang %s | Tz %s | Value %s"

// Logger renders localized, colorized console lines. All methods are safe
// for concurrent use; every call holds the logger's mutex for its whole
// duration, so lines from racing goroutines never interleave.
type Logger struct {
	mu sync.Mutex

	minLevel Level
	lang     string
	tz       *time.Location
	tzName   string

	out        io.Writer
	styles     map[Level]levelStyles
	translator Translator
	now        func() time.Time
}

// Option customizes a Logger built by New.
type Option func(*Logger)

// WithOutput sets the destination of log lines. Default: os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.out = w
	}
}

// WithClock replaces time.Now as the source of timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		l.now = now
	}
}

// WithTranslator replaces the bundled locale table.
func WithTranslator(t Translator) Option {
	return func(l *Logger) {
		l.translator = t
	}
}

// New returns a Logger configured from cfg. It fails only when
// cfg.Timezone is set and does not resolve.
func New(cfg Config, opts ...Option) (*Logger, error) {
	cfg = cfg.withDefaults()

	var loc *time.Location
	if cfg.Timezone != "" {
		var err error
		if loc, err = ResolveTimezone(cfg.Timezone); err != nil {
			return nil, err
		}
	}

	l := &Logger{
		minLevel: cfg.MinLevel,
		lang:     cfg.Language,
		tz:       loc,
		tzName:   cfg.Timezone,
		out:      os.Stdout,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.translator == nil {
		c, err := DefaultCatalog()
		if err != nil {
			return nil, fmt.Errorf("failed to load bundled locales: %w", err)
		}
		l.translator = c
	}
	l.styles = newStyles(l.out, cfg.Color)
	return l, nil
}

// Configure replaces the minimum level, language and timezone at once.
// An empty timezone name clears the timezone (host local time).
// On error the previous configuration is left untouched.
func (l *Logger) Configure(level Level, lang, timezone string) error {
	var loc *time.Location
	if timezone != "" {
		var err error
		if loc, err = ResolveTimezone(timezone); err != nil {
			return err
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.minLevel = level
	l.lang = lang
	l.tz = loc
	l.tzName = timezone
	return nil
}

// SetMinimumLevel changes the level below which events are dropped.
func (l *Logger) SetMinimumLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minLevel = level
}

// SetLanguage switches the locale used for all subsequent lines.
func (l *Logger) SetLanguage(lang string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lang = lang
}

// SetTimezone sets the timezone timestamps are rendered in.
func (l *Logger) SetTimezone(name string) error {
	loc, err := ResolveTimezone(name)
	if err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tz = loc
	l.tzName = name
	return nil
}

// MinimumLevel returns the configured minimum level.
func (l *Logger) MinimumLevel() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.minLevel
}

// Language returns the configured language code.
func (l *Logger) Language() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lang
}

// Timezone returns the configured timezone name, or "" when unset.
func (l *Logger) Timezone() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tzName
}

// Log writes the translation of key at level, unless level is below the
// configured minimum. A key without a translation produces a
// "Translate Failed!" line naming the language, timezone and key.
// Log never fails; write errors on the output are ignored.
func (l *Logger) Log(level Level, key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.minLevel {
		return
	}

	ts := formatTimestamp(l.now(), l.tz)

	tag, ok := l.translator.Translate(level.key(), l.lang)
	if !ok {
		tag = level.String()
	}
	msg, ok := l.translator.Translate(key, l.lang)
	if !ok {
		tz := l.tzName
		if tz == "" {
			tz = unknownTimezone
		}
		msg = fmt.Sprintf(fallbackTemplate, l.lang, tz, key)
	}

	st, ok := l.styles[level]
	if !ok {
		st = l.styles[DebugLevel]
	}

	var b strings.Builder
	b.Grow(len(ts) + len(tag) + len(msg) + 8)
	b.WriteString(ts)
	b.WriteString(" [")
	b.WriteString(st.renderTag(tag))
	b.WriteString("] ")
	b.WriteString(st.renderMsg(msg))
	b.WriteByte('\n')

	_, _ = io.WriteString(l.out, b.String())
}

// Error logs key at ErrorLevel.
func (l *Logger) Error(key string) { l.Log(ErrorLevel, key) }

// Warning logs key at WarnLevel.
func (l *Logger) Warning(key string) { l.Log(WarnLevel, key) }

// Info logs key at InfoLevel.
func (l *Logger) Info(key string) { l.Log(InfoLevel, key) }

// Debug logs key at DebugLevel.
func (l *Logger) Debug(key string) { l.Log(DebugLevel, key) }

// Status logs key at a level picked from an HTTP status code:
// 5xx Error, 4xx Warning, anything else Info.
//
// Example:
//
//	log.Status(200, "request_ok")
//	log.Status(404, "request_client_error")
//	log.Status(500, "request_server_error")
func (l *Logger) Status(code int, key string) {
	l.Log(statusCodeToLevel(code), key)
}
