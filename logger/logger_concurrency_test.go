package logger

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var lineRe = regexp.MustCompile(`^2025/3/7 09:05:01 \[(Debug|Info|Warning|Error)\] (System started|Translate Failed! \| Lang en \| Tz UTC \| Value key-\d+-\d+)$`)

// TestConcurrency_LinesDoNotInterleave verifies that the mutex prevents
// garbled output when many goroutines log simultaneously at different levels.
func TestConcurrency_LinesDoNotInterleave(t *testing.T) {
	l, buf := newTestLogger(t, Config{Timezone: "UTC"})

	const numGoroutines = 200
	const messagesPerGoroutine = 50

	var g errgroup.Group
	for i := range numGoroutines {
		g.Go(func() error {
			for j := range messagesPerGoroutine {
				l.Debug("startup")
				l.Info(fmt.Sprintf("key-%d-%d", i, j))
				l.Warning("startup")
				l.Error(fmt.Sprintf("key-%d-%d", i, j))
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, numGoroutines*messagesPerGoroutine*4)
	for i, line := range lines {
		if !lineRe.MatchString(line) {
			t.Fatalf("line %d appears garbled: %q", i, line)
		}
	}
}

// TestConcurrency_ReconfigureWhileLogging checks that setters racing with
// Log calls never produce a partially applied configuration.
func TestConcurrency_ReconfigureWhileLogging(t *testing.T) {
	l, buf := newTestLogger(t, Config{Timezone: "UTC"})

	var g errgroup.Group
	for i := range 50 {
		g.Go(func() error {
			if i%2 == 0 {
				return l.Configure(DebugLevel, "zh-CN", "Asia/Shanghai")
			}
			return l.Configure(DebugLevel, "en", "UTC")
		})
		g.Go(func() error {
			l.Info("greeting")
			return nil
		})
	}
	require.NoError(t, g.Wait())

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 50)
	for _, line := range lines {
		english := line == "2025/3/7 09:05:01 [Info] Hello"
		chinese := line == "2025/3/7 17:05:01 [信息] 你好"
		assert.True(t, english || chinese, "unexpected line %q", line)
	}
}
