package logger

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// capture routes log output to a buffer for the duration of the test.
func capture(t *testing.T, isVerbose bool) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(isVerbose)
	SetTimestamps(false)

	t.Cleanup(func() {
		SetVerbose(false)
		SetTimestamps(true)
		SetOutput(os.Stderr)
		now = time.Now
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestLevels_WhenVerbose(t *testing.T) {
	buf := capture(t, true)

	Debug("round %d", 1)
	Info("run %s done", "abc")
	Warn("search failed: %v", "timeout")

	assert.Equal(t, "[DEBUG] round 1\n[INFO] run abc done\n[WARN] search failed: timeout\n", buf.String())
}

func TestLevels_WhenNotVerbose(t *testing.T) {
	buf := capture(t, false)

	Debug("round %d", 1)
	Info("info")
	Warn("warn")
	Section("Collection")

	assert.Zero(t, buf.Len())
}

func TestSection(t *testing.T) {
	buf := capture(t, true)

	Section("Collection 42")

	assert.Equal(t, "\n=== Collection 42 ===\n", buf.String())
}

func TestTimestamps(t *testing.T) {
	buf := capture(t, true)
	SetTimestamps(true)
	now = func() time.Time { return time.Date(2025, 3, 1, 14, 5, 9, 250_000_000, time.UTC) }

	Warn("rate limited")

	assert.Equal(t, "14:05:09.250 [WARN] rate limited\n", buf.String())
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "DEBUG", Level(42).String())
}
