package logger

import (
	"strings"
	"time"

	// Embedded IANA database, used when the host has no zoneinfo.
	_ "time/tzdata"
)

// timestampLayout renders YYYY/M/D HH:MM:SS.
const timestampLayout = "2006/1/2 15:04:05"

// unknownTimezone is reported in fallback lines when no timezone is set.
const unknownTimezone = "unknown"

// ResolveTimezone looks up an IANA timezone name such as "UTC" or
// "Asia/Shanghai". The empty name and "Local" are rejected: leaving the
// timezone unset is how a logger is told to use host local time.
func ResolveTimezone(name string) (*time.Location, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || trimmed == "Local" {
		return nil, &TimezoneError{Name: name}
	}
	loc, err := time.LoadLocation(trimmed)
	if err != nil {
		return nil, &TimezoneError{Name: name, Cause: err}
	}
	return loc, nil
}

// formatTimestamp converts t into loc (host local time when loc is nil).
func formatTimestamp(t time.Time, loc *time.Location) string {
	if loc == nil {
		return t.Local().Format(timestampLayout)
	}
	return t.In(loc).Format(timestampLayout)
}
