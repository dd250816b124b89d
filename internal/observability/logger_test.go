package observability

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("info", &buf)

	logger.Info("listing objects", "bucket", "test-bucket", "max_keys", 100)

	entry := parseEntry(t, &buf)
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "listing objects", entry["message"])
	assert.Equal(t, "test-bucket", entry["bucket"])
	assert.Equal(t, float64(100), entry["max_keys"])
	assert.NotEmpty(t, entry["timestamp"])
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("warn", &buf)

	logger.Debug("dropped")
	logger.Info("dropped")
	assert.Zero(t, buf.Len())

	logger.Warn("kept")
	assert.NotZero(t, buf.Len())
}

func TestLoggerErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("error", &buf)

	logger.Error("request failed", "error", errors.New("access denied"))

	entry := parseEntry(t, &buf)
	assert.Equal(t, "access denied", entry["error"])
}

func TestLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("info", &buf).WithFields(map[string]interface{}{
		"service": "bucketlister",
	})

	logger.Info("started")

	entry := parseEntry(t, &buf)
	assert.Equal(t, "bucketlister", entry["service"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("debug"))
	assert.Equal(t, InfoLevel, ParseLevel("INFO"))
	assert.Equal(t, WarnLevel, ParseLevel("warning"))
	assert.Equal(t, ErrorLevel, ParseLevel("error"))
	assert.Equal(t, InfoLevel, ParseLevel("bogus"))
}
