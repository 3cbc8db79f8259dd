package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"slider_id": "volume", "component": "catalog"})
	log.Info("catalog loaded")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "catalog loaded", entry["message"])
	require.Equal(t, "volume", entry["slider_id"])
	require.Equal(t, "catalog", entry["component"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerKeyValuePairs(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.Debug("drag started", "handle", "low", "count", 2)

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "low", entry["handle"])
	require.EqualValues(t, 2, entry["count"])
}

func TestLoggerOddPairsAreKept(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.Warn("dangling", "orphan")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "(MISSING)", entry["orphan"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"slider_id": "band"})
	log.Error(errors.New("boom"), "reload failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "reload failed", entry["message"])
	require.Equal(t, "band", entry["slider_id"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestNilLoggerIsSilent(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.Nil(t, log.WithFields(map[string]any{"a": 1}))
	require.NotPanics(t, func() {
		log.Debug("x")
		log.Info("x")
		log.Warn("x")
		log.Error(errors.New("x"), "x")
	})
}
