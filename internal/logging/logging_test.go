package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARNING"))
	assert.Equal(t, slog.LevelError, ParseLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestNew_ErrorCarriesStack(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "INFO")

	l.Debug("hidden")
	assert.Zero(t, buf.Len())

	l.Error("boom", "quote_id", "q1")
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "boom", rec["msg"])
	assert.Equal(t, "q1", rec["quote_id"])
	assert.Contains(t, rec["stacktrace"], "goroutine")
}
