package logger

import (
	"fmt"
	"os"
	"strings"
)

// DefaultLanguage is used when Config.Language is empty.
const DefaultLanguage = "en"

// Environment variables read by ConfigFromEnv.
const (
	EnvLevel    = "LOGGER_LEVEL"
	EnvLanguage = "LOGGER_LANG"
	EnvTimezone = "LOGGER_TZ"
	EnvColor    = "LOGGER_COLOR"
)

// Config defines options for New and Init.
type Config struct {
	// MinLevel drops events below this level.
	// Default: DebugLevel (everything is emitted)
	MinLevel Level
	// Language selects the locale table used to translate message keys.
	// Default: "en"
	Language string
	// Timezone is an IANA name timestamps are rendered in; empty uses
	// host local time.
	// Default: "" (local time)
	Timezone string
	// Color controls ANSI color output.
	// Default: ColorAuto
	Color ColorMode
}

func (c Config) withDefaults() Config {
	if strings.TrimSpace(c.Language) == "" {
		c.Language = DefaultLanguage
	}
	return c
}

// ConfigFromEnv builds a Config from LOGGER_LEVEL, LOGGER_LANG, LOGGER_TZ
// and LOGGER_COLOR. Unset variables keep their defaults; malformed level
// or color values are reported.
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		Language: os.Getenv(EnvLanguage),
		Timezone: strings.TrimSpace(os.Getenv(EnvTimezone)),
	}
	if v := os.Getenv(EnvLevel); v != "" {
		level, err := ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLevel, err)
		}
		cfg.MinLevel = level
	}
	if v := os.Getenv(EnvColor); v != "" {
		mode, err := ParseColorMode(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvColor, err)
		}
		cfg.Color = mode
	}
	return cfg.withDefaults(), nil
}
