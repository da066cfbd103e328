package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelCritical, ParseLevel("critical"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestCriticalLevelName(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{Level: "info", Format: "text", Output: &buf})

	logger.Log(context.Background(), LevelCritical, "card redraw failed")

	assert.Contains(t, buf.String(), "level=CRITICAL")
	assert.Contains(t, buf.String(), "card redraw failed")
}
