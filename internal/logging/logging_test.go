package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(" info "))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(""))
	assert.Equal(t, slog.LevelWarn, ParseLevel("bogus"))
}

func TestNew_FallbackWriterHonorsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, closeFn, err := New("warn", "", &buf)
	require.NoError(t, err)
	defer closeFn()

	log.Info("quiet")
	log.Warn("loud", "k", "v")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
	assert.Contains(t, buf.String(), "k=v")
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "listkeeper.log")
	log, closeFn, err := New("debug", path, nil)
	require.NoError(t, err)

	log.Debug("item added", "id", 7)
	require.NoError(t, closeFn())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "item added")
	assert.Contains(t, string(b), "id=7")
}

func TestNew_NilFallbackDiscards(t *testing.T) {
	log, _, err := New("debug", "", nil)
	require.NoError(t, err)
	log.Info("goes nowhere")
}
