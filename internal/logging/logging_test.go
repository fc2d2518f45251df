package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, "info", "json"))

	logger.Info("dataset loaded", "records", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "dataset loaded", entry["msg"])
	assert.Equal(t, 3.0, entry["records"])
}

func TestNewHandler_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, "info", "text"))

	logger.Info("dataset loaded", "records", 3)

	assert.Contains(t, buf.String(), "msg=\"dataset loaded\"")
	assert.Contains(t, buf.String(), "records=3")
}

func TestNewHandler_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, "warn", "json"))

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}
