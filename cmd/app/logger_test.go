package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	cases := []struct {
		name         string
		level        string
		format       string
		wantInfo     bool
		wantContains string
	}{
		{name: "json_info", level: "info", format: "json", wantInfo: true, wantContains: `"msg":"hello"`},
		{name: "text_debug", level: "debug", format: "text", wantInfo: true, wantContains: "msg=hello"},
		{name: "warn_drops_info", level: "WARN", format: "json", wantInfo: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := newLogger(tc.level, tc.format, &buf)
			require.NoError(t, err)

			logger.Info("hello")
			if !tc.wantInfo {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), tc.wantContains)
		})
	}
}

func TestNewLogger_JSONIsStructured(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	logger, err := newLogger("info", "json", &buf)
	require.NoError(t, err)

	logger.Info("started", "components", 2)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "started", line["msg"])
	assert.InDelta(t, 2, line["components"], 0)
}

func TestNewLogger_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		level  string
		format string
	}{
		{name: "unknown_level", level: "loud", format: "json"},
		{name: "unknown_format", level: "info", format: "xml"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			_, err := newLogger(tc.level, tc.format, &buf)
			assert.Error(t, err)
		})
	}
}
