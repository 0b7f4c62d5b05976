package logger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTimezone(t *testing.T) {
	for _, name := range []string{"UTC", "Asia/Shanghai", "America/New_York", "Europe/Paris"} {
		loc, err := ResolveTimezone(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, loc.String())
	}
}

func TestResolveTimezone_Invalid(t *testing.T) {
	for _, name := range []string{"", "  ", "Local", "Not/AZone", "utc+25"} {
		_, err := ResolveTimezone(name)
		require.ErrorIs(t, err, ErrInvalidTimezone, "name %q", name)

		var tzErr *TimezoneError
		require.ErrorAs(t, err, &tzErr)
		assert.Equal(t, name, tzErr.Name)
	}
}

func TestFormatTimestamp(t *testing.T) {
	shanghai, err := ResolveTimezone("Asia/Shanghai")
	require.NoError(t, err)

	ts := time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, "2024/1/2 03:04:05", formatTimestamp(ts, time.UTC))
	assert.Equal(t, "2024/1/2 11:04:05", formatTimestamp(ts, shanghai))

	late := time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, "2025/1/1 07:59:59", formatTimestamp(late, shanghai))
	assert.Equal(t, late.Local().Format(timestampLayout), formatTimestamp(late, nil))
}
