package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_DebugOffIsNoop(t *testing.T) {
	dir := t.TempDir()

	logger, closeFn, err := New(Options{Dir: dir, Debug: false})
	require.NoError(t, err)
	defer closeFn()

	logger.Info("never written")

	_, err = os.Stat(filepath.Join(dir, "logs"))
	assert.True(t, os.IsNotExist(err), "no-op logger must not create the logs directory")
}

func TestNew_WritesToFile(t *testing.T) {
	dir := t.TempDir()

	logger, closeFn, err := New(Options{Dir: dir, Debug: true, Level: "debug"})
	require.NoError(t, err)

	logger.Named(CategoryBoot).Info("started")
	closeFn()

	entries, err := os.ReadDir(filepath.Join(dir, "logs"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, "logs", entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "started")
	assert.Contains(t, string(data), CategoryBoot)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("bogus"))
}
