package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/katalvlaran/periodicity/internal/config"
	"github.com/katalvlaran/periodicity/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseLevel covers every accepted level and a rejection.
func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		" warn": slog.LevelWarn,
		"Error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := logger.ParseLevel(in)
		require.NoError(t, err, "ParseLevel(%q)", in)
		assert.Equal(t, want, got)
	}

	_, err := logger.ParseLevel("fatal")
	assert.ErrorIs(t, err, logger.ErrInvalidLevel)
}

// TestSetup_JSON verifies JSON output and level filtering.
func TestSetup_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.Setup(config.LogConfig{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)

	l.Info("dropped")
	l.Warn("kept", "unit", "ab")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec), "exactly one JSON record expected")
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "ab", rec["unit"])
}

// TestSetup_Text verifies the text handler is chosen.
func TestSetup_Text(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.Setup(config.LogConfig{Level: "debug", Format: "text"}, &buf)
	require.NoError(t, err)

	l.Debug("hello", "k", 2)
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "k=2")
}

// TestSetup_Errors rejects bad levels and formats.
func TestSetup_Errors(t *testing.T) {
	var buf bytes.Buffer
	_, err := logger.Setup(config.LogConfig{Level: "loud", Format: "json"}, &buf)
	assert.ErrorIs(t, err, logger.ErrInvalidLevel)

	_, err = logger.Setup(config.LogConfig{Level: "info", Format: "xml"}, &buf)
	assert.ErrorIs(t, err, logger.ErrInvalidFormat)
}
