package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []LogEntry {
	t.Helper()
	var entries []LogEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var e LogEntry
		require.NoError(t, json.Unmarshal([]byte(line), &e))
		entries = append(entries, e)
	}
	return entries
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel(" Warning "))
	assert.Equal(t, LevelError, ParseLevel("ERROR"))
	assert.Equal(t, LevelInfo, ParseLevel("bogus"))
	assert.Equal(t, LevelInfo, ParseLevel("fatal"))
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", Level(42).String())
}

func TestLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf, Level: LevelWarn})

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("shown")
	log.Error("shown too")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "WARN", entries[0].Level)
	assert.Equal(t, "ERROR", entries[1].Level)
	assert.False(t, log.Enabled(LevelInfo))
	assert.True(t, log.Enabled(LevelError))
}

func TestLogger_FieldsAndWith(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf, Level: LevelDebug}).With(Component("university"))

	log.Info("student enrolled", RosterSize(3), Course("Math"))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "student enrolled", entries[0].Message)
	assert.Equal(t, "university", entries[0].Fields["component"])
	assert.Equal(t, float64(3), entries[0].Fields["roster_size"])
	assert.Equal(t, "Math", entries[0].Fields["course"])
}

func TestLogger_Caller(t *testing.T) {
	var buf bytes.Buffer
	New(Options{Output: &buf, Level: LevelInfo, AddCaller: true}).Info("where")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Caller, "logger_test.go:"), entries[0].Caller)
}

func TestLogger_WithDoesNotLeak(t *testing.T) {
	var buf bytes.Buffer
	parent := New(Options{Output: &buf, Level: LevelDebug}).With(Operation("parent"))
	childA := parent.With(Course("Math"))
	childB := parent.With(Categories([]string{"Bio"}), Latency(1500*time.Millisecond))

	childA.Info("a")
	childB.Info("b")
	parent.Info("p", Operation("override"))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 3)
	assert.Equal(t, "Math", entries[0].Fields["course"])
	assert.NotContains(t, entries[0].Fields, "categories")
	assert.Equal(t, []any{"Bio"}, entries[1].Fields["categories"])
	assert.Equal(t, "1.5s", entries[1].Fields["latency"])
	assert.NotContains(t, entries[1].Fields, "course")
	assert.Equal(t, "override", entries[2].Fields["operation"])
}

func TestErrField(t *testing.T) {
	assert.Nil(t, Err(nil).Value)
	assert.Equal(t, "boom", Err(errors.New("boom")).Value)
}

func TestNop(t *testing.T) {
	log := Nop()
	assert.False(t, log.Enabled(LevelError))
	log.Error("discarded")
}
